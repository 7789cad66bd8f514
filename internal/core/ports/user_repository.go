package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// Create must translate a storage-level unique violation on email into
// domain.ErrEmailTaken: the schema constraint, not the caller's existence
// check, is the authoritative guard against concurrent duplicate signups.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
