package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	apperrors "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/services/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCredentials struct {
	mock.Mock
}

func (m *MockCredentials) GetByMerchantID(ctx context.Context, merchantID string) (*models.ProcessorCredential, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProcessorCredential), args.Error(1)
}

func (m *MockCredentials) Upsert(ctx context.Context, cred *models.ProcessorCredential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

type MockForwarder struct {
	mock.Mock
}

func (m *MockForwarder) Forward(ctx context.Context, call Call) Outcome {
	args := m.Called(ctx, call)
	return args.Get(0).(Outcome)
}

type MockAudit struct {
	mock.Mock
}

func (m *MockAudit) Record(ctx context.Context, entry audit.Entry) *models.IntegrationLog {
	m.Called(ctx, entry)
	return &models.IntegrationLog{}
}

func TestService_Forward(t *testing.T) {
	cred := &models.ProcessorCredential{
		MerchantID: "m-1",
		Username:   "user",
		Password:   "pass",
	}
	provider := Provider{Name: "cbdc", DefaultBaseURL: "https://cbdc.test/v1"}

	tests := []struct {
		name      string
		req       Request
		setupMock func(*MockCredentials, *MockForwarder, *MockAudit)
		wantErr   error
		wantMsg   string
		want      *Response
	}{
		{
			name: "successful forward is relayed and audited",
			req:  Request{MerchantID: "m-1", Endpoint: "payments", Data: json.RawMessage(`{"amount":5}`)},
			setupMock: func(creds *MockCredentials, fwd *MockForwarder, aud *MockAudit) {
				creds.On("GetByMerchantID", mock.Anything, "m-1").Return(cred, nil)
				fwd.On("Forward", mock.Anything, Call{
					URL:      "https://cbdc.test/v1/payments",
					Username: "user",
					Password: "pass",
					Body:     []byte(`{"amount":5}`),
				}).Return(Outcome{StatusCode: 200, Body: json.RawMessage(`{"ok":true}`)})
				aud.On("Record", mock.Anything, audit.Entry{
					MerchantID:   "m-1",
					Service:      "cbdc",
					Endpoint:     "payments",
					StatusCode:   200,
					Success:      true,
					ResponseData: json.RawMessage(`{"ok":true}`),
				}).Once()
			},
			want: &Response{StatusCode: 200, Body: json.RawMessage(`{"ok":true}`)},
		},
		{
			name: "upstream 4xx is relayed and audited as unsuccessful",
			req:  Request{MerchantID: "m-1", Endpoint: "payments", Data: json.RawMessage(`{}`)},
			setupMock: func(creds *MockCredentials, fwd *MockForwarder, aud *MockAudit) {
				creds.On("GetByMerchantID", mock.Anything, "m-1").Return(cred, nil)
				fwd.On("Forward", mock.Anything, mock.Anything).
					Return(Outcome{StatusCode: 402, Body: json.RawMessage(`{"error":"declined"}`)})
				aud.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
					return e.StatusCode == 402 && !e.Success && e.ErrorMessage == ""
				})).Once()
			},
			want: &Response{StatusCode: 402, Body: json.RawMessage(`{"error":"declined"}`)},
		},
		{
			name: "credential override wins over provider default",
			req:  Request{MerchantID: "m-2", Endpoint: "payments", Data: json.RawMessage(`{}`)},
			setupMock: func(creds *MockCredentials, fwd *MockForwarder, aud *MockAudit) {
				creds.On("GetByMerchantID", mock.Anything, "m-2").
					Return(&models.ProcessorCredential{MerchantID: "m-2", APIURL: "https://sandbox.test/"}, nil)
				fwd.On("Forward", mock.Anything, mock.MatchedBy(func(c Call) bool {
					return c.URL == "https://sandbox.test/payments"
				})).Return(Outcome{StatusCode: 200, Body: json.RawMessage(`{}`)})
				aud.On("Record", mock.Anything, mock.Anything).Once()
			},
			want: &Response{StatusCode: 200, Body: json.RawMessage(`{}`)},
		},
		{
			name: "forward failure is audited once and reported as upstream error",
			req:  Request{MerchantID: "m-1", Endpoint: "payments", Data: json.RawMessage(`{}`)},
			setupMock: func(creds *MockCredentials, fwd *MockForwarder, aud *MockAudit) {
				creds.On("GetByMerchantID", mock.Anything, "m-1").Return(cred, nil)
				fwd.On("Forward", mock.Anything, mock.Anything).
					Return(Outcome{StatusCode: 502, Err: errors.New("dial tcp: connection refused")})
				aud.On("Record", mock.Anything, audit.Entry{
					MerchantID:   "m-1",
					Service:      "cbdc",
					Endpoint:     "payments",
					StatusCode:   http.StatusInternalServerError,
					Success:      false,
					ErrorMessage: "dial tcp: connection refused",
				}).Once()
			},
			wantErr: apperrors.ErrUpstreamFailed,
		},
		{
			name: "missing credentials short-circuit without audit",
			req:  Request{MerchantID: "ghost", Endpoint: "payments"},
			setupMock: func(creds *MockCredentials, fwd *MockForwarder, aud *MockAudit) {
				creds.On("GetByMerchantID", mock.Anything, "ghost").Return(nil, repositories.ErrCredentialNotFound)
			},
			wantErr: apperrors.ErrCredentialsNotFound,
		},
		{
			name: "lookup error is reported as not found",
			req:  Request{MerchantID: "m-1", Endpoint: "payments"},
			setupMock: func(creds *MockCredentials, fwd *MockForwarder, aud *MockAudit) {
				creds.On("GetByMerchantID", mock.Anything, "m-1").Return(nil, errors.New("db timeout"))
			},
			wantErr: apperrors.ErrCredentialsNotFound,
		},
		{
			name: "disabled capability short-circuits without audit",
			req:  Request{MerchantID: "m-1", Endpoint: "apple-pay"},
			setupMock: func(creds *MockCredentials, fwd *MockForwarder, aud *MockAudit) {
				creds.On("GetByMerchantID", mock.Anything, "m-1").Return(cred, nil)
			},
			wantMsg: "Apple Pay not enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := new(MockCredentials)
			fwd := new(MockForwarder)
			aud := new(MockAudit)
			tt.setupMock(creds, fwd, aud)

			svc := NewService(provider, creds, fwd, aud)
			resp, err := svc.Forward(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			case tt.wantMsg != "":
				assert.ErrorContains(t, err, tt.wantMsg)
				assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, resp)
			}

			creds.AssertExpectations(t)
			fwd.AssertExpectations(t)
			aud.AssertExpectations(t)
			forwarded := tt.wantErr == nil && tt.wantMsg == "" || errors.Is(tt.wantErr, apperrors.ErrUpstreamFailed)
			if !forwarded {
				fwd.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
				aud.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProvider_WithBaseURL(t *testing.T) {
	assert.Equal(t, "https://override.test", CBDC.WithBaseURL("https://override.test").DefaultBaseURL)
	assert.Equal(t, CBDC.DefaultBaseURL, CBDC.WithBaseURL("").DefaultBaseURL)
	assert.Equal(t, "https://api.cbdc.example.com/v1", CBDC.DefaultBaseURL, "copy must not mutate the original")
}
