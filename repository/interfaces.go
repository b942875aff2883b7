package repository

import (
	"context"
	"errors"

	"todoListManagement/models"
)

// Sentinel errors returned by the repositories. Handlers map these to HTTP
// status codes; nothing else should leak out of this package unwrapped.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
	ErrTodoNotFound  = errors.New("todo not found")
)

// UserRepositoryI defines the credential store operations.
type UserRepositoryI interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TodoRepositoryI defines the task store operations. Every method takes the
// owner's user id and never observes or mutates another user's rows.
type TodoRepositoryI interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error)
	Create(ctx context.Context, ownerID int64, task string) (*models.Todo, error)
	Update(ctx context.Context, ownerID, todoID int64, task *string, completed *bool) (*models.Todo, error)
	Delete(ctx context.Context, ownerID, todoID int64) error
}
