package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TodoRepository defines persistence for todos. All row-level mutations write
// the full entity; partial-update semantics live in the service layer.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	// ListByUser returns the user's todos ordered by created_at descending,
	// ties broken by id.
	ListByUser(ctx context.Context, userID string) ([]*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	// Delete reports whether a row was removed. A second delete of the same
	// id returns (false, nil), not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
