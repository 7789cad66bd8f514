package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TodoRepository is the PostgreSQL implementation of ports.TodoRepository.
type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO todos (id, user_id, title, description, is_complete, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		todo.ID, todo.UserID, todo.Title, todo.Description, todo.IsComplete,
		todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		return storageErr("insert todo", err)
	}
	return nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	var t domain.Todo
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, title, description, is_complete, created_at, updated_at
		 FROM todos WHERE id = $1`, id,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsComplete, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, storageErr("find todo", err)
	}
	return &t, nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, title, description, is_complete, created_at, updated_at
		 FROM todos
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, storageErr("list todos", err)
	}
	defer rows.Close()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsComplete, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, storageErr("scan todo", err)
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list todos", err)
	}
	return todos, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE todos
		 SET title = $2, description = $3, is_complete = $4, updated_at = $5
		 WHERE id = $1`,
		todo.ID, todo.Title, todo.Description, todo.IsComplete, todo.UpdatedAt,
	)
	if err != nil {
		return storageErr("update todo", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, storageErr("delete todo", err)
	}
	return tag.RowsAffected() > 0, nil
}
