package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WalletStatusActive   = "active"
	WalletStatusInactive = "inactive"
	WalletStatusRevoked  = "revoked"
)

// Wallet types sent by the dashboard. The column is free form; these are not enforced.
const (
	WalletTypeApplePay  = "apple_pay"
	WalletTypeGooglePay = "google_pay"
	WalletTypeCBDC      = "cbdc_wallet"
	WalletTypeWiPay     = "wipay_wallet"
)

// MerchantWallet binds a registered wallet on a device to a merchant.
// No uniqueness is enforced on (merchant_id, wallet_id).
type MerchantWallet struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	MerchantID string    `gorm:"index;not null" json:"merchant_id"`
	WalletType string    `gorm:"not null" json:"wallet_type"`
	WalletID   string    `gorm:"index;not null" json:"wallet_id"`
	DeviceID   string    `gorm:"not null" json:"device_id"`
	Status     string    `gorm:"default:'active'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (MerchantWallet) TableName() string {
	return "merchant_wallets"
}

func (w *MerchantWallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Status == "" {
		w.Status = WalletStatusActive
	}
	return nil
}
