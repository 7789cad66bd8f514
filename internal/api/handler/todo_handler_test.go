package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

const knownTodoID = "5f4cf4c2-8f2e-4b1a-9a63-0a4f2b7c9d10"

type stubTodoService struct {
	listFn   func(ctx context.Context, owner *domain.User) ([]*domain.Todo, error)
	createFn func(ctx context.Context, owner *domain.User, title, description string) (*domain.Todo, error)
	getFn    func(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error)
	updateFn func(ctx context.Context, owner *domain.User, id string, input ports.UpdateTodoInput) (*domain.Todo, error)
	toggleFn func(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error)
	deleteFn func(ctx context.Context, owner *domain.User, id string) error
}

func (s *stubTodoService) List(ctx context.Context, owner *domain.User) ([]*domain.Todo, error) {
	return s.listFn(ctx, owner)
}

func (s *stubTodoService) Create(ctx context.Context, owner *domain.User, title, description string) (*domain.Todo, error) {
	return s.createFn(ctx, owner, title, description)
}

func (s *stubTodoService) Get(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error) {
	return s.getFn(ctx, owner, id)
}

func (s *stubTodoService) Update(ctx context.Context, owner *domain.User, id string, input ports.UpdateTodoInput) (*domain.Todo, error) {
	return s.updateFn(ctx, owner, id, input)
}

func (s *stubTodoService) Toggle(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error) {
	return s.toggleFn(ctx, owner, id)
}

func (s *stubTodoService) Delete(ctx context.Context, owner *domain.User, id string) error {
	return s.deleteFn(ctx, owner, id)
}

func todoOwner() *domain.User {
	return &domain.User{ID: "owner-1", Email: "alice@example.com"}
}

func sampleTodo(owner *domain.User) *domain.Todo {
	now := time.Now().UTC()
	return &domain.Todo{
		ID:     knownTodoID,
		UserID: owner.ID,
		Title:  "buy milk",
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// todoContext builds an authenticated request context the way the Auth
// middleware would leave it.
func todoContext(t *testing.T, method, target, body string, owner *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if owner != nil {
		c.Set(middleware.UserContextKey, owner)
	}
	return c, rec
}

func TestTodoHandler_List_Success(t *testing.T) {
	owner := todoOwner()
	stub := &stubTodoService{
		listFn: func(ctx context.Context, got *domain.User) ([]*domain.Todo, error) {
			if got.ID != owner.ID {
				t.Fatalf("list called with owner %q", got.ID)
			}
			return []*domain.Todo{sampleTodo(owner)}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := todoContext(t, http.MethodGet, "/todos", "", owner)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", resp["count"])
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one todo, got %+v", resp["data"])
	}
}

func TestTodoHandler_List_Empty(t *testing.T) {
	stub := &stubTodoService{
		listFn: func(ctx context.Context, owner *domain.User) ([]*domain.Todo, error) {
			return nil, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := todoContext(t, http.MethodGet, "/todos", "", todoOwner())
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listTodosResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 0 || resp.Data == nil {
		t.Fatalf("expected empty data array, got %+v", resp)
	}
}

func TestTodoHandler_Create_Success(t *testing.T) {
	owner := todoOwner()
	stub := &stubTodoService{
		createFn: func(ctx context.Context, got *domain.User, title, description string) (*domain.Todo, error) {
			if title != "buy milk" || description != "2 liters" {
				t.Fatalf("unexpected args: %q %q", title, description)
			}
			todo := sampleTodo(got)
			todo.Description = description
			return todo, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := todoContext(t, http.MethodPost, "/todos", `{"title":"buy milk","description":"2 liters"}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != owner.ID || resp.Title != "buy milk" || resp.IsComplete {
		t.Fatalf("unexpected todo payload: %+v", resp)
	}
}

func TestTodoHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubTodoService{
		createFn: func(ctx context.Context, owner *domain.User, title, description string) (*domain.Todo, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(stub)

	c, _ := todoContext(t, http.MethodPost, "/todos", `{"description":"no title"}`, todoOwner())
	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTodoHandler_Get_MalformedID(t *testing.T) {
	stub := &stubTodoService{
		getFn: func(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(stub)

	c, _ := todoContext(t, http.MethodGet, "/todos/not-a-uuid", "", todoOwner())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := h.Get(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTodoHandler_Get_NotFoundAndForbidden(t *testing.T) {
	cases := map[string]error{
		"unknown todo": domain.ErrTodoNotFound,
		"foreign todo": domain.ErrForbidden,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubTodoService{
				getFn: func(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error) {
					return nil, want
				},
			}
			h := NewTodoHandler(stub)

			c, _ := todoContext(t, http.MethodGet, "/todos/"+knownTodoID, "", todoOwner())
			c.SetParamNames("id")
			c.SetParamValues(knownTodoID)

			if err := h.Get(c); !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
		})
	}
}

func TestTodoHandler_Update_PassesPartialFields(t *testing.T) {
	owner := todoOwner()
	stub := &stubTodoService{
		updateFn: func(ctx context.Context, got *domain.User, id string, input ports.UpdateTodoInput) (*domain.Todo, error) {
			if input.Title == nil || *input.Title != "renamed" {
				t.Fatalf("expected title update, got %+v", input)
			}
			if input.Description != nil || input.IsComplete != nil {
				t.Fatalf("unset fields must stay nil: %+v", input)
			}
			todo := sampleTodo(got)
			todo.Title = *input.Title
			return todo, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := todoContext(t, http.MethodPatch, "/todos/"+knownTodoID, `{"title":"renamed"}`, owner)
	c.SetParamNames("id")
	c.SetParamValues(knownTodoID)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTodoHandler_Update_ExplicitFalse(t *testing.T) {
	stub := &stubTodoService{
		updateFn: func(ctx context.Context, owner *domain.User, id string, input ports.UpdateTodoInput) (*domain.Todo, error) {
			if input.IsComplete == nil || *input.IsComplete {
				t.Fatalf("expected explicit is_complete=false, got %+v", input)
			}
			todo := sampleTodo(owner)
			return todo, nil
		},
	}
	h := NewTodoHandler(stub)

	c, _ := todoContext(t, http.MethodPatch, "/todos/"+knownTodoID, `{"is_complete":false}`, todoOwner())
	c.SetParamNames("id")
	c.SetParamValues(knownTodoID)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestTodoHandler_Toggle_Success(t *testing.T) {
	owner := todoOwner()
	stub := &stubTodoService{
		toggleFn: func(ctx context.Context, got *domain.User, id string) (*domain.Todo, error) {
			todo := sampleTodo(got)
			todo.IsComplete = true
			return todo, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := todoContext(t, http.MethodPost, "/todos/"+knownTodoID+"/toggle", "", owner)
	c.SetParamNames("id")
	c.SetParamValues(knownTodoID)

	if err := h.Toggle(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.IsComplete {
		t.Fatalf("expected toggled todo to be complete: %+v", resp)
	}
}

func TestTodoHandler_Delete_Success(t *testing.T) {
	var deleted string
	stub := &stubTodoService{
		deleteFn: func(ctx context.Context, owner *domain.User, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec := todoContext(t, http.MethodDelete, "/todos/"+knownTodoID, "", todoOwner())
	c.SetParamNames("id")
	c.SetParamValues(knownTodoID)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if deleted != knownTodoID {
		t.Fatalf("expected delete for %s, got %q", knownTodoID, deleted)
	}
}

func TestTodoHandler_NoIdentity(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	c, _ := todoContext(t, http.MethodGet, "/todos", "", nil)
	if err := h.List(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
