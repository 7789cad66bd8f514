package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// AuthService implements the credential rules: account creation, credential
// verification, and session issuance on both.
type AuthService interface {
	// Signup registers a new account and returns it with a fresh session
	// (auto-login). Fails with domain.ErrEmailTaken on a duplicate email.
	Signup(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	// Signin verifies credentials and returns the user with a fresh session.
	// Unknown email and wrong password are indistinguishable to the caller:
	// both fail with domain.ErrInvalidCredentials.
	Signin(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	// Signout acknowledges the end of a session. Tokens are stateless, so
	// this records the intent without invalidating the credential.
	Signout(ctx context.Context, user *domain.User) error
}

// SessionIssuer mints and validates bearer tokens.
type SessionIssuer interface {
	Issue(user *domain.User) (*domain.Session, error)
	// Parse returns the subject user id of a valid token. Malformed,
	// tampered, and expired tokens all fail with domain.ErrInvalidSession;
	// a bare identifier string is never accepted as a token.
	Parse(token string) (string, error)
}

// IdentityResolver maps an Authorization header value to a verified user.
type IdentityResolver interface {
	// Resolve fails with domain.ErrUnauthenticated when the credential is
	// missing, invalid, expired, or names a user that no longer exists.
	Resolve(ctx context.Context, authorization string) (*domain.User, error)
	// ResolveOptional applies the same algorithm but reports the absence or
	// invalidity of a credential as (nil, nil) instead of an error.
	ResolveOptional(ctx context.Context, authorization string) (*domain.User, error)
}
