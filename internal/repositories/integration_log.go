package repositories

import (
	"context"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
)

// IntegrationLogFilter narrows audit trail queries. Zero values match everything.
type IntegrationLogFilter struct {
	MerchantID  string
	ServiceName string
	Success     *bool
}

// IntegrationLogRepository is append-only: there is no update or delete.
type IntegrationLogRepository interface {
	Create(ctx context.Context, entry *models.IntegrationLog) error
	List(ctx context.Context, filter IntegrationLogFilter, limit, offset int) ([]models.IntegrationLog, int64, error)
}

type integrationLogRepository struct {
	db *gorm.DB
}

func NewIntegrationLogRepository(db *gorm.DB) IntegrationLogRepository {
	return &integrationLogRepository{db: db}
}

func (r *integrationLogRepository) Create(ctx context.Context, entry *models.IntegrationLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create integration log: %w", err)
	}
	return nil
}

func (r *integrationLogRepository) List(ctx context.Context, filter IntegrationLogFilter, limit, offset int) ([]models.IntegrationLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.IntegrationLog{})
	if filter.MerchantID != "" {
		query = query.Where("merchant_id = ?", filter.MerchantID)
	}
	if filter.ServiceName != "" {
		query = query.Where("service_name = ?", filter.ServiceName)
	}
	if filter.Success != nil {
		query = query.Where("success = ?", *filter.Success)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count integration logs: %w", err)
	}

	var logs []models.IntegrationLog
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list integration logs: %w", err)
	}
	return logs, total, nil
}
