package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// auditService persists audit events dequeued by the dispatcher.
type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("process audit event: %w", err)
	}
	s.log.Debug().
		Str("action", event.Action).
		Str("user_id", event.UserID).
		Msg("audit event written")
	return nil
}
