package service

import (
	"context"
	"errors"
	"strings"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// IdentityResolver maps an Authorization header to a verified user. It is a
// pure function of its two injected ports, so it can be tested without the
// request pipeline.
type IdentityResolver struct {
	sessions ports.SessionIssuer
	users    ports.UserRepository
}

func NewIdentityResolver(sessions ports.SessionIssuer, users ports.UserRepository) *IdentityResolver {
	return &IdentityResolver{sessions: sessions, users: users}
}

// Resolve validates the bearer credential and loads its subject. Missing
// credential, invalid or expired token, and a deleted subject all fail with
// domain.ErrUnauthenticated; storage failures propagate unchanged.
func (r *IdentityResolver) Resolve(ctx context.Context, authorization string) (*domain.User, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	subject, err := r.sessions.Parse(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := r.users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Token outlived its user.
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

// ResolveOptional runs the same algorithm but maps the unauthenticated case
// to (nil, nil), for endpoints that merely prefer an identity.
func (r *IdentityResolver) ResolveOptional(ctx context.Context, authorization string) (*domain.User, error) {
	user, err := r.Resolve(ctx, authorization)
	if errors.Is(err, domain.ErrUnauthenticated) {
		return nil, nil
	}
	return user, err
}

// bearerToken extracts the credential from "Bearer <token>", scheme
// case-insensitive per RFC 6750.
func bearerToken(authorization string) (string, bool) {
	if authorization == "" {
		return "", false
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
