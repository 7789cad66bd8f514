package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// AuditRepository persists the append-only audit trail.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_events (id, user_id, action, subject_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		event.ID, event.UserID, event.Action, event.SubjectID, event.CreatedAt,
	)
	if err != nil {
		return storageErr("insert audit event", err)
	}
	return nil
}
