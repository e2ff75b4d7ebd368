package models

import "time"

// IntegrationLog is one row of the append-only audit trail written for every
// attempted upstream processor call.
type IntegrationLog struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	MerchantID   string    `gorm:"index;not null" json:"merchant_id"`
	ServiceName  string    `gorm:"index;not null" json:"service_name"`
	Endpoint     string    `gorm:"not null" json:"endpoint"`
	StatusCode   int       `gorm:"not null" json:"status_code"`
	Success      bool      `gorm:"not null" json:"success"`
	RequestID    string    `gorm:"type:uuid;not null" json:"request_id"`
	ResponseData RawJSON   `gorm:"type:jsonb" json:"response_data,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (IntegrationLog) TableName() string {
	return "integration_logs"
}
