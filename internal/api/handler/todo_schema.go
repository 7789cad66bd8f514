package handler

import (
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

type createTodoRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty"`
}

// updateTodoRequest carries partial-update fields: nil means "leave
// unchanged", which is distinct from an explicit zero value.
type updateTodoRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=200"`
	Description *string `json:"description"`
	IsComplete  *bool   `json:"is_complete"`
}

type todoResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listTodosResponse struct {
	Data  []todoResponse `json:"data"`
	Count int            `json:"count"`
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		IsComplete:  t.IsComplete,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
