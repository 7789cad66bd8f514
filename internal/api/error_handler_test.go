package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"duplicate email", domain.ErrEmailTaken, http.StatusBadRequest, "duplicate_email"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"invalid session", domain.ErrInvalidSession, http.StatusUnauthorized, "unauthenticated"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"todo not found", domain.ErrTodoNotFound, http.StatusNotFound, "not_found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "not_found"},
		{"validation", domain.Validationf("title must not be empty"), http.StatusBadRequest, "validation_error"},
		{"storage down", fmt.Errorf("%w: create user: timeout", domain.ErrStorageUnavailable), http.StatusServiceUnavailable, "storage_unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := renderError(t, tc.err)
			if status != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, status)
			}
			if body.Error != tc.wantReason {
				t.Fatalf("expected reason %q, got %q", tc.wantReason, body.Error)
			}
			if body.Message == "" {
				t.Fatal("expected a human-readable message")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	status, body := renderError(t, fmt.Errorf("signup: %w", domain.ErrEmailTaken))
	if status != http.StatusBadRequest || body.Error != "duplicate_email" {
		t.Fatalf("wrapped error not unwrapped: %d %+v", status, body)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	status, body := renderError(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later"))
	if status != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", status)
	}
	if body.Error != "rate_limited" {
		t.Fatalf("expected rate_limited, got %q", body.Error)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	status, body := renderError(t, errors.New("pq: connection reset"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Error != "internal_error" {
		t.Fatalf("expected internal_error, got %q", body.Error)
	}
	if body.Message != "internal server error" {
		t.Fatalf("internal cause must not leak: %q", body.Message)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("commit response: %v", err)
	}
	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
}
