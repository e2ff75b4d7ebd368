package walletconn

import (
	"encoding/json"
	"strings"

	apperrors "paygate/internal/errors"
	"paygate/internal/utils/validation"
)

const (
	ActionRegister = "register"
	ActionValidate = "validate"
)

// RegisterRequest binds a wallet on a device to a merchant. WalletType is free
// form; the models.WalletType* values are the ones the dashboard sends today.
type RegisterRequest struct {
	MerchantID string `json:"merchantId" validate:"required"`
	WalletType string `json:"walletType" validate:"required"`
	WalletID   string `json:"walletId" validate:"required"`
	DeviceID   string `json:"deviceId" validate:"required"`
}

// ValidateRequest asks whether a wallet is actively bound to a merchant.
type ValidateRequest struct {
	MerchantID string `json:"merchantId" validate:"required"`
	WalletID   string `json:"walletId" validate:"required"`
}

// envelope carries the union of both request shapes, dispatched on Action.
type envelope struct {
	Action     string `json:"action"`
	MerchantID string `json:"merchantId"`
	WalletType string `json:"walletType"`
	WalletID   string `json:"walletId"`
	DeviceID   string `json:"deviceId"`
}

// DecodeRequest parses a wallet-connection body into either a *RegisterRequest
// or a *ValidateRequest. Fields are validated before returning.
func DecodeRequest(body []byte) (interface{}, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperrors.ErrInvalidBody
	}

	var req interface{}
	switch strings.TrimSpace(env.Action) {
	case ActionRegister:
		req = &RegisterRequest{
			MerchantID: strings.TrimSpace(env.MerchantID),
			WalletType: strings.TrimSpace(env.WalletType),
			WalletID:   strings.TrimSpace(env.WalletID),
			DeviceID:   strings.TrimSpace(env.DeviceID),
		}
	case ActionValidate:
		req = &ValidateRequest{
			MerchantID: strings.TrimSpace(env.MerchantID),
			WalletID:   strings.TrimSpace(env.WalletID),
		}
	default:
		return nil, apperrors.ErrInvalidAction
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}
