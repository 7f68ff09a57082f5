package ports

import (
	"context"

	"github.com/simplesdental/product-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}

// AuditService processes a single audit event (called by dispatcher workers).
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRecorder is the fire-and-forget side services use to emit audit
// events without blocking on persistence.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
