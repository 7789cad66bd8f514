package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TodoService implements todo CRUD with the ownership guard applied before
// every single-resource operation.
type TodoService struct {
	repo   ports.TodoRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, audit ports.AuditRecorder, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, audit: audit, logger: logger}
}

func (s *TodoService) List(ctx context.Context, owner *domain.User) ([]*domain.Todo, error) {
	return s.repo.ListByUser(ctx, owner.ID)
}

func (s *TodoService) Create(ctx context.Context, owner *domain.User, title, description string) (*domain.Todo, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		ID:          uuid.NewString(),
		UserID:      owner.ID,
		Title:       title,
		Description: description,
		Timestamps:  domain.NewTimestamps(time.Now().UTC()),
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	s.logger.Info().Str("todo_id", todo.ID).Str("user_id", owner.ID).Msg("todo created")
	s.recordAudit(owner, domain.AuditTodoCreated, todo.ID)
	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error) {
	return s.authorize(ctx, owner, id)
}

// Update applies partial semantics: only non-nil fields change, and
// updated_at is refreshed on every successful call.
func (s *TodoService) Update(ctx context.Context, owner *domain.User, id string, input ports.UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.authorize(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := domain.ValidateTitle(*input.Title); err != nil {
			return nil, err
		}
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.IsComplete != nil {
		todo.IsComplete = *input.IsComplete
	}
	todo.Touch(time.Now().UTC())

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.recordAudit(owner, domain.AuditTodoUpdated, todo.ID)
	return todo, nil
}

func (s *TodoService) Toggle(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error) {
	todo, err := s.authorize(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	todo.IsComplete = !todo.IsComplete
	todo.Touch(time.Now().UTC())

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.recordAudit(owner, domain.AuditTodoToggled, todo.ID)
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, owner *domain.User, id string) error {
	if _, err := s.authorize(ctx, owner, id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		// Row vanished between the ownership check and the delete.
		return domain.ErrTodoNotFound
	}

	s.logger.Info().Str("todo_id", id).Str("user_id", owner.ID).Msg("todo deleted")
	s.recordAudit(owner, domain.AuditTodoDeleted, id)
	return nil
}

// authorize fetches the todo and enforces the ownership policy. Existence is
// resolved first, so a nonexistent id yields ErrTodoNotFound for every caller
// and a foreign todo yields ErrForbidden.
func (s *TodoService) authorize(ctx context.Context, owner *domain.User, id string) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !todo.OwnedBy(owner.ID) {
		return nil, domain.ErrForbidden
	}
	return todo, nil
}

func (s *TodoService) recordAudit(owner *domain.User, action, subjectID string) {
	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		UserID:    owner.ID,
		Action:    action,
		SubjectID: subjectID,
		CreatedAt: time.Now().UTC(),
	})
}
