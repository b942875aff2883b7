package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"todoListManagement/models"
)

var _ TodoRepositoryI = (*TodoRepository)(nil)

type TodoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// ListByOwner returns all todos owned by ownerID in insertion order.
func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := []models.Todo{}
	err := r.db.SelectContext(ctx, &out, `SELECT id, user_id, task, completed FROM todos WHERE user_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new incomplete todo for ownerID.
// Whitespace-only task text is rejected with ErrInvalidInput.
func (r *TodoRepository) Create(ctx context.Context, ownerID int64, task string) (*models.Todo, error) {
	if strings.TrimSpace(task) == "" {
		return nil, ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO todos (user_id, task) VALUES (?, ?)`, ownerID, task)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Todo{ID: id, UserID: ownerID, Task: task, Completed: false}, nil
}

// Update applies a partial update to a todo owned by ownerID. Nil fields keep
// their stored values. Returns ErrTodoNotFound when no such todo exists or it
// belongs to someone else; the ownership check is part of the statement.
func (r *TodoRepository) Update(ctx context.Context, ownerID, todoID int64, task *string, completed *bool) (*models.Todo, error) {
	if task != nil && strings.TrimSpace(*task) == "" {
		return nil, ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET task = COALESCE(?, task), completed = COALESCE(?, completed) WHERE id = ? AND user_id = ?`,
		task, completed, todoID, ownerID)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrTodoNotFound
	}

	var t models.Todo
	err = r.db.GetContext(ctx, &t, `SELECT id, user_id, task, completed FROM todos WHERE id = ? AND user_id = ?`, todoID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes a todo owned by ownerID. Returns ErrTodoNotFound when no such
// todo exists or it belongs to someone else.
func (r *TodoRepository) Delete(ctx context.Context, ownerID, todoID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND user_id = ?`, todoID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTodoNotFound
	}
	return nil
}
