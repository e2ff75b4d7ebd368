package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	apperrors "paygate/internal/errors"
	"paygate/internal/repositories"
	"paygate/internal/services/audit"
)

// Response is the upstream reply relayed verbatim to the caller.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

type Service interface {
	Provider() Provider
	Forward(ctx context.Context, req Request) (*Response, error)
}

type service struct {
	provider    Provider
	credentials repositories.CredentialRepository
	forwarder   Forwarder
	audit       audit.Logger
}

func NewService(
	provider Provider,
	credentials repositories.CredentialRepository,
	forwarder Forwarder,
	auditLogger audit.Logger,
) Service {
	return &service{
		provider:    provider,
		credentials: credentials,
		forwarder:   forwarder,
		audit:       auditLogger,
	}
}

func (s *service) Provider() Provider {
	return s.provider
}

// Forward resolves the merchant's credentials, applies the capability gate and
// performs the upstream call. req must come from ParseRequest.
func (s *service) Forward(ctx context.Context, req Request) (*Response, error) {
	cred, err := s.credentials.GetByMerchantID(ctx, req.MerchantID)
	if err != nil {
		if !errors.Is(err, repositories.ErrCredentialNotFound) {
			log.Printf("⚠️ %s credential lookup failed for merchant %s: %v", s.provider.Name, req.MerchantID, err)
		}
		return nil, apperrors.ErrCredentialsNotFound
	}

	if err := checkCapability(req.Endpoint, cred); err != nil {
		return nil, err
	}

	baseURL := cred.APIURL
	if baseURL == "" {
		baseURL = s.provider.DefaultBaseURL
	}

	outcome := s.forwarder.Forward(ctx, Call{
		URL:      targetURL(baseURL, req.Endpoint),
		Username: cred.Username,
		Password: cred.Password,
		Body:     req.Data,
	})

	s.audit.Record(ctx, s.auditEntry(req, outcome))

	if outcome.Err != nil {
		return nil, apperrors.ErrUpstreamFailed.WithDetails(errorMessage(outcome.Err))
	}
	return &Response{StatusCode: outcome.StatusCode, Body: outcome.Body}, nil
}

// auditEntry maps an outcome onto its integration log row. Failed attempts are
// recorded as a server error regardless of any status the upstream sent.
func (s *service) auditEntry(req Request, outcome Outcome) audit.Entry {
	entry := audit.Entry{
		MerchantID: req.MerchantID,
		Service:    s.provider.Name,
		Endpoint:   req.Endpoint,
	}

	if outcome.Err != nil {
		entry.StatusCode = http.StatusInternalServerError
		entry.Success = false
		entry.ErrorMessage = errorMessage(outcome.Err)
		return entry
	}

	entry.StatusCode = outcome.StatusCode
	entry.Success = outcome.Succeeded()
	entry.ResponseData = outcome.Body
	return entry
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%T", err)
}
