package repository

import (
	"context"
	"errors"
	"testing"

	"todoListManagement/internal/db"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	d, err := db.Open("file:userrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	// Create
	u, err := repo.Create(ctx, "alice", "hash-of-pw123")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.Username != "alice" || u.PasswordHash != "hash-of-pw123" {
		t.Fatalf("unexpected created user: %+v", u)
	}

	// GetByUsername returns the stored record including the hash
	g, err := repo.GetByUsername(ctx, "alice")
	if err != nil || g == nil || g.ID != u.ID || g.PasswordHash != "hash-of-pw123" {
		t.Fatalf("get by username: %v %+v", err, g)
	}

	// Unknown username
	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	d, err := db.Open("file:userrepodup?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "bob", "h1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Same username fails regardless of the hash
	if _, err := repo.Create(ctx, "bob", "h2"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserRepository_RejectsEmptyInput(t *testing.T) {
	d, err := db.Open("file:userrepoempty?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "", "h"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty username: expected ErrInvalidInput, got %v", err)
	}
	if _, err := repo.Create(ctx, "carol", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty hash: expected ErrInvalidInput, got %v", err)
	}
}
