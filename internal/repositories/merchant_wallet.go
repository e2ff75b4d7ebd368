package repositories

import (
	"context"
	"errors"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
)

var ErrMerchantWalletNotFound = errors.New("merchant wallet not found")

// MerchantWalletRepository defines the wallet registration store
type MerchantWalletRepository interface {
	Create(ctx context.Context, wallet *models.MerchantWallet) error
	FindActive(ctx context.Context, merchantID, walletID string) (*models.MerchantWallet, error)
}

type merchantWalletRepository struct {
	db *gorm.DB
}

func NewMerchantWalletRepository(db *gorm.DB) MerchantWalletRepository {
	return &merchantWalletRepository{db: db}
}

func (r *merchantWalletRepository) Create(ctx context.Context, wallet *models.MerchantWallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create merchant wallet: %w", err)
	}
	return nil
}

func (r *merchantWalletRepository) FindActive(ctx context.Context, merchantID, walletID string) (*models.MerchantWallet, error) {
	var wallet models.MerchantWallet
	err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND wallet_id = ? AND status = ?", merchantID, walletID, models.WalletStatusActive).
		Order("created_at DESC").
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantWalletNotFound
		}
		return nil, fmt.Errorf("failed to get merchant wallet: %w", err)
	}
	return &wallet, nil
}
