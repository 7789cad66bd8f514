package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// SessionService mints and validates HS256-signed session tokens. The subject
// always travels inside signed claims; a raw user id presented as a token
// fails Parse because it is not a well-formed JWT.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a session bound to user.ID, expiring after the configured TTL.
func (s *SessionService) Issue(user *domain.User) (*domain.Session, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		Token:     token,
		Subject:   user.ID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse verifies signature, signing method, and expiry, and returns the
// subject user id. Any failure collapses to domain.ErrInvalidSession so the
// caller cannot distinguish tampering from expiry.
func (s *SessionService) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidSession
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidSession
	}
	return claims.Subject, nil
}
