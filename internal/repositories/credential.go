package repositories

import (
	"context"
	"errors"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
)

var ErrCredentialNotFound = errors.New("processor credential not found")

// CredentialRepository reads processor credentials for one provider table.
type CredentialRepository interface {
	GetByMerchantID(ctx context.Context, merchantID string) (*models.ProcessorCredential, error)
	Upsert(ctx context.Context, cred *models.ProcessorCredential) error
}

type credentialRepository struct {
	db    *gorm.DB
	table string
}

func NewCredentialRepository(db *gorm.DB, table string) CredentialRepository {
	return &credentialRepository{
		db:    db,
		table: table,
	}
}

func (r *credentialRepository) GetByMerchantID(ctx context.Context, merchantID string) (*models.ProcessorCredential, error) {
	var cred models.ProcessorCredential
	err := r.db.WithContext(ctx).
		Table(r.table).
		Where("merchant_id = ?", merchantID).
		First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get credentials from %s: %w", r.table, err)
	}
	return &cred, nil
}

// Upsert is used by provisioning tooling only; the proxy path never writes credentials.
func (r *credentialRepository) Upsert(ctx context.Context, cred *models.ProcessorCredential) error {
	existing, err := r.GetByMerchantID(ctx, cred.MerchantID)
	switch {
	case errors.Is(err, ErrCredentialNotFound):
		if err := r.db.WithContext(ctx).Table(r.table).Create(cred).Error; err != nil {
			return fmt.Errorf("failed to create credentials in %s: %w", r.table, err)
		}
		return nil
	case err != nil:
		return err
	}

	cred.ID = existing.ID
	cred.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Table(r.table).Save(cred).Error; err != nil {
		return fmt.Errorf("failed to update credentials in %s: %w", r.table, err)
	}
	return nil
}
