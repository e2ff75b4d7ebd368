package models

import "time"

// Tables holding per-merchant processor secrets. Rows are provisioned elsewhere;
// the gateway only reads them.
const (
	CBDCCredentialTable  = "merchant_api_credentials"
	WiPayCredentialTable = "wipay_api_credentials"
)

// ProcessorCredential is one merchant's login for one payment processor plus the
// optional payment methods enabled for it. The same shape is used by every
// processor table; the repository picks the table.
type ProcessorCredential struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	MerchantID       string    `gorm:"not null" json:"merchant_id"`
	Username         string    `gorm:"not null" json:"username"`
	Password         string    `gorm:"not null" json:"-"`
	APIURL           string    `gorm:"column:api_url" json:"api_url,omitempty"`
	ApplePayEnabled  bool      `gorm:"default:false" json:"apple_pay_enabled"`
	GooglePayEnabled bool      `gorm:"default:false" json:"google_pay_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
