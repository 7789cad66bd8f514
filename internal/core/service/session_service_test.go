package service

import (
	"errors"
	"testing"
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "2dd3cbc9-6b47-4f06-9b3c-0f9b0fbd8c55", Email: "a@x.com"}
}

func TestSessionService_RoundTrip(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)
	user := testUser()

	session, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if session.Token == user.ID {
		t.Fatalf("token must not be the raw user id")
	}
	if !session.ExpiresAt.After(session.IssuedAt) {
		t.Fatalf("expiry %v not after issue %v", session.ExpiresAt, session.IssuedAt)
	}

	subject, err := svc.Parse(session.Token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("subject %q, want %q", subject, user.ID)
	}
}

func TestSessionService_Parse_Tampered(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)
	session, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one bit in the middle of the token.
	raw := []byte(session.Token)
	raw[len(raw)/2] ^= 0x01
	if _, err := svc.Parse(string(raw)); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for tampered token, got %v", err)
	}
}

func TestSessionService_Parse_Expired(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	expired := &SessionService{secret: []byte("secret"), ttl: -time.Minute}
	session, err := expired.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Parse(session.Token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestSessionService_Parse_BareIdentifier(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	// The source defect this design replaces: a raw user id as the token.
	if _, err := svc.Parse(testUser().ID); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for bare id, got %v", err)
	}
	if _, err := svc.Parse(""); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for empty token, got %v", err)
	}
}

func TestSessionService_Parse_WrongSecret(t *testing.T) {
	session, err := NewSessionService("secret-a", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewSessionService("secret-b", time.Hour).Parse(session.Token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession under wrong secret, got %v", err)
	}
}
