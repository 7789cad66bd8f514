package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes a single audit event pulled off the queue.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRecorder is the fire-and-forget side used by request-path services.
// Implementations must never block the caller and must never surface errors
// into the request.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
