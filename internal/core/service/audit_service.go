package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/simplesdental/product-api/internal/api/metrics"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

// AuditService persists audit events handed over by the dispatcher workers.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

func (s *AuditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditEventsTotal.WithLabelValues(event.Entity, "error").Inc()
		return fmt.Errorf("persist audit event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(event.Entity, "ok").Inc()
	s.log.Debug().
		Str("entity", event.Entity).
		Str("entity_id", event.EntityID).
		Str("action", event.Action).
		Msg("audit event persisted")
	return nil
}
