package handler

import (
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here for the swagger annotations.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response-only types owned by the transport layer, deliberately decoupled
// from the domain entities so the JSON contract survives internal changes.

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type authResponse struct {
	User    userResponse    `json:"user"`
	Session sessionResponse `json:"session"`
}

type signoutResponse struct {
	Message string `json:"message"`
}

func toAuthResponse(user *domain.User, session *domain.Session) authResponse {
	return authResponse{
		User:    userResponse{ID: user.ID, Email: user.Email},
		Session: sessionResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
	}
}
