// Package walletconn registers and validates merchant-bound mobile wallets.
// It never calls an external processor and does not write integration logs.
package walletconn

import (
	"context"
	"errors"

	"paygate/internal/models"
	"paygate/internal/repositories"
)

// Validation is the outcome of a validate action. Wallet is nil when Valid is false.
type Validation struct {
	Valid  bool                   `json:"valid"`
	Wallet *models.MerchantWallet `json:"wallet"`
}

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.MerchantWallet, error)
	Validate(ctx context.Context, req *ValidateRequest) (*Validation, error)
}

type service struct {
	wallets repositories.MerchantWalletRepository
}

func NewService(wallets repositories.MerchantWalletRepository) Service {
	return &service{wallets: wallets}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*models.MerchantWallet, error) {
	wallet := &models.MerchantWallet{
		MerchantID: req.MerchantID,
		WalletType: req.WalletType,
		WalletID:   req.WalletID,
		DeviceID:   req.DeviceID,
		Status:     models.WalletStatusActive,
	}
	if err := s.wallets.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// Validate reports whether an active registration exists. A missing wallet is
// a normal result, not an error.
func (s *service) Validate(ctx context.Context, req *ValidateRequest) (*Validation, error) {
	wallet, err := s.wallets.FindActive(ctx, req.MerchantID, req.WalletID)
	if err != nil {
		if errors.Is(err, repositories.ErrMerchantWalletNotFound) {
			return &Validation{Valid: false}, nil
		}
		return nil, err
	}
	return &Validation{Valid: true, Wallet: wallet}, nil
}
