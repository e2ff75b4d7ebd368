// Package audit records attempted upstream processor calls in the integration log.
package audit

import (
	"context"
	"encoding/json"
	"log"

	"paygate/internal/models"
	"paygate/internal/repositories"

	"github.com/google/uuid"
)

// Entry is the outcome of one upstream attempt, ready to be persisted.
type Entry struct {
	MerchantID   string
	Service      string
	Endpoint     string
	StatusCode   int
	Success      bool
	ResponseData json.RawMessage
	ErrorMessage string
}

// Logger writes integration log rows. Record never fails the caller: a write
// error is reported on the process log only.
type Logger interface {
	Record(ctx context.Context, entry Entry) *models.IntegrationLog
}

type logger struct {
	repo repositories.IntegrationLogRepository
}

func NewLogger(repo repositories.IntegrationLogRepository) Logger {
	return &logger{repo: repo}
}

// Record assigns a fresh request ID and persists the entry. The returned row is
// the one attempted, whether or not the write succeeded.
func (l *logger) Record(ctx context.Context, entry Entry) *models.IntegrationLog {
	row := &models.IntegrationLog{
		MerchantID:   entry.MerchantID,
		ServiceName:  entry.Service,
		Endpoint:     entry.Endpoint,
		StatusCode:   entry.StatusCode,
		Success:      entry.Success,
		RequestID:    uuid.NewString(),
		ResponseData: models.RawJSON(entry.ResponseData),
		ErrorMessage: entry.ErrorMessage,
	}

	// The audit write must outlive a client disconnect.
	if err := l.repo.Create(context.WithoutCancel(ctx), row); err != nil {
		log.Printf("⚠️ Failed to write integration log (service=%s merchant=%s endpoint=%s request_id=%s): %v",
			row.ServiceName, row.MerchantID, row.Endpoint, row.RequestID, err)
	}
	return row
}
