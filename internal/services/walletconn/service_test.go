package walletconn

import (
	"context"
	"errors"
	"testing"

	"paygate/internal/models"
	"paygate/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) Create(ctx context.Context, wallet *models.MerchantWallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepo) FindActive(ctx context.Context, merchantID, walletID string) (*models.MerchantWallet, error) {
	args := m.Called(ctx, merchantID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MerchantWallet), args.Error(1)
}

func TestService_Register(t *testing.T) {
	repo := new(MockWalletRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(w *models.MerchantWallet) bool {
		return w.MerchantID == "m-1" && w.WalletType == models.WalletTypeGooglePay &&
			w.WalletID == "w-1" && w.DeviceID == "d-1" && w.Status == models.WalletStatusActive
	})).Return(nil).Once()

	svc := NewService(repo)
	wallet, err := svc.Register(context.Background(), &RegisterRequest{
		MerchantID: "m-1",
		WalletType: models.WalletTypeGooglePay,
		WalletID:   "w-1",
		DeviceID:   "d-1",
	})

	require.NoError(t, err)
	assert.Equal(t, models.WalletStatusActive, wallet.Status)
	repo.AssertExpectations(t)
}

func TestService_RegisterStoreError(t *testing.T) {
	repo := new(MockWalletRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := NewService(repo).Register(context.Background(), &RegisterRequest{MerchantID: "m-1"})
	assert.EqualError(t, err, "connection reset")
}

func TestService_Validate(t *testing.T) {
	active := &models.MerchantWallet{ID: "id-1", MerchantID: "m-1", WalletID: "w-1", Status: models.WalletStatusActive}

	tests := []struct {
		name      string
		setupMock func(*MockWalletRepo)
		want      *Validation
		wantErr   bool
	}{
		{
			name: "active wallet",
			setupMock: func(repo *MockWalletRepo) {
				repo.On("FindActive", mock.Anything, "m-1", "w-1").Return(active, nil)
			},
			want: &Validation{Valid: true, Wallet: active},
		},
		{
			name: "unregistered wallet",
			setupMock: func(repo *MockWalletRepo) {
				repo.On("FindActive", mock.Anything, "m-1", "w-1").Return(nil, repositories.ErrMerchantWalletNotFound)
			},
			want: &Validation{Valid: false},
		},
		{
			name: "store failure",
			setupMock: func(repo *MockWalletRepo) {
				repo.On("FindActive", mock.Anything, "m-1", "w-1").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWalletRepo)
			tt.setupMock(repo)

			got, err := NewService(repo).Validate(context.Background(), &ValidateRequest{MerchantID: "m-1", WalletID: "w-1"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			repo.AssertExpectations(t)
		})
	}
}
