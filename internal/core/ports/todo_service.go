package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// UpdateTodoInput carries the fields of a partial update. Nil means "leave
// unchanged"; is_complete can therefore be set to false explicitly.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	IsComplete  *bool
}

// TodoService defines use-case operations over todos. Every operation takes
// the caller's resolved identity explicitly; ownership is never trusted from
// the request body. Operations on a single todo check existence first
// (domain.ErrTodoNotFound) and ownership second (domain.ErrForbidden).
type TodoService interface {
	List(ctx context.Context, owner *domain.User) ([]*domain.Todo, error)
	Create(ctx context.Context, owner *domain.User, title, description string) (*domain.Todo, error)
	Get(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error)
	Update(ctx context.Context, owner *domain.User, id string, input UpdateTodoInput) (*domain.Todo, error)
	Toggle(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error)
	Delete(ctx context.Context, owner *domain.User, id string) error
}
