package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// AuthService implements signup, signin, and signout.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionIssuer
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionIssuer, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, audit: audit, logger: logger}
}

// NormalizeEmail applies the single email case policy: trimmed, lowercased.
// Every lookup and the uniqueness constraint operate on this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account and issues a session for auto-login.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, nil, domain.Validationf("email must not be empty")
	}
	if password == "" {
		return nil, nil, domain.Validationf("password must not be empty")
	}

	// Fast path for a friendlier error; the DB unique constraint remains the
	// authoritative guard against a concurrent signup with the same email.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordDigest: string(digest),
		Timestamps:     domain.NewTimestamps(time.Now().UTC()),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.sessions.Issue(created)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		UserID:    created.ID,
		Action:    domain.AuditUserSignup,
		SubjectID: created.ID,
		CreatedAt: time.Now().UTC(),
	})

	return created, session, nil
}

// Signin verifies credentials and issues a session. A missing account and a
// wrong password produce the same error.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.sessions.Issue(user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed in")
	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Action:    domain.AuditUserSignin,
		SubjectID: user.ID,
		CreatedAt: time.Now().UTC(),
	})

	return user, session, nil
}

// Signout acknowledges the end of a session. Tokens are stateless and expire
// on their own, so there is nothing to tear down server-side.
func (s *AuthService) Signout(ctx context.Context, user *domain.User) error {
	s.logger.Info().Str("user_id", user.ID).Msg("user signed out")
	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Action:    domain.AuditUserSignout,
		SubjectID: user.ID,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}
