package handlers

import (
	"context"
	"errors"
	"sync"

	"paygate/internal/models"
	"paygate/internal/repositories"

	"github.com/stretchr/testify/mock"
)

type MockCredentialRepo struct {
	mock.Mock
}

func (m *MockCredentialRepo) GetByMerchantID(ctx context.Context, merchantID string) (*models.ProcessorCredential, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProcessorCredential), args.Error(1)
}

func (m *MockCredentialRepo) Upsert(ctx context.Context, cred *models.ProcessorCredential) error {
	return m.Called(ctx, cred).Error(0)
}

// memoryLogRepo keeps integration log rows in a slice.
type memoryLogRepo struct {
	mu      sync.Mutex
	rows    []models.IntegrationLog
	failing bool
}

func (r *memoryLogRepo) Create(_ context.Context, entry *models.IntegrationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("insert failed")
	}
	r.rows = append(r.rows, *entry)
	return nil
}

func (r *memoryLogRepo) List(_ context.Context, filter repositories.IntegrationLogFilter, limit, offset int) ([]models.IntegrationLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.IntegrationLog
	for _, row := range r.rows {
		if filter.MerchantID != "" && row.MerchantID != filter.MerchantID {
			continue
		}
		if filter.ServiceName != "" && row.ServiceName != filter.ServiceName {
			continue
		}
		if filter.Success != nil && row.Success != *filter.Success {
			continue
		}
		matched = append(matched, row)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.IntegrationLog{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memoryLogRepo) snapshot() []models.IntegrationLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.IntegrationLog(nil), r.rows...)
}

// memoryWalletRepo stores wallets in insertion order.
type memoryWalletRepo struct {
	mu      sync.Mutex
	wallets []*models.MerchantWallet
	err     error
}

func (r *memoryWalletRepo) Create(_ context.Context, wallet *models.MerchantWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if wallet.ID == "" {
		wallet.ID = "wallet-" + wallet.WalletID
	}
	r.wallets = append(r.wallets, wallet)
	return nil
}

func (r *memoryWalletRepo) FindActive(_ context.Context, merchantID, walletID string) (*models.MerchantWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := len(r.wallets) - 1; i >= 0; i-- {
		w := r.wallets[i]
		if w.MerchantID == merchantID && w.WalletID == walletID && w.Status == models.WalletStatusActive {
			return w, nil
		}
	}
	return nil, repositories.ErrMerchantWalletNotFound
}
