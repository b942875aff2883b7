package repository

import (
	"context"
	"errors"
	"testing"

	"todoListManagement/internal/db"
	"todoListManagement/models"
)

func setupTodoRepo(t *testing.T, name string) (*TodoRepository, *models.User, *models.User) {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	users := NewUserRepository(d)
	ctx := context.Background()
	u1, err := users.Create(ctx, "alice", "h1")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	u2, err := users.Create(ctx, "bob", "h2")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}
	return NewTodoRepository(d), u1, u2
}

func TestTodoRepository_CreateAndList(t *testing.T) {
	repo, alice, _ := setupTodoRepo(t, "todocreate")
	ctx := context.Background()

	todo, err := repo.Create(ctx, alice.ID, "buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if todo.ID == 0 || todo.Task != "buy milk" || todo.Completed {
		t.Fatalf("unexpected created todo: %+v", todo)
	}

	list, err := repo.ListByOwner(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != todo.ID || list[0].Completed {
		t.Fatalf("created todo should appear exactly once, incomplete: %+v", list)
	}
}

func TestTodoRepository_RejectsBlankTask(t *testing.T) {
	repo, alice, _ := setupTodoRepo(t, "todoblank")
	ctx := context.Background()

	if _, err := repo.Create(ctx, alice.ID, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty task: expected ErrInvalidInput, got %v", err)
	}
	if _, err := repo.Create(ctx, alice.ID, "   \t"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("whitespace task: expected ErrInvalidInput, got %v", err)
	}
}

func TestTodoRepository_OwnerIsolation(t *testing.T) {
	repo, alice, bob := setupTodoRepo(t, "todoisolation")
	ctx := context.Background()

	todo, err := repo.Create(ctx, alice.ID, "alice's secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Bob's list never contains Alice's todo
	list, err := repo.ListByOwner(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("bob sees alice's todos: %+v", list)
	}

	// Bob cannot update or delete it; both read as not found
	done := true
	if _, err := repo.Update(ctx, bob.ID, todo.ID, nil, &done); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("cross-owner update: expected ErrTodoNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, bob.ID, todo.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("cross-owner delete: expected ErrTodoNotFound, got %v", err)
	}

	// The todo is untouched for its owner
	got, err := repo.Update(ctx, alice.ID, todo.ID, nil, nil)
	if err != nil || got.Task != "alice's secret" || got.Completed {
		t.Fatalf("owner's todo changed: %v %+v", err, got)
	}
}

func TestTodoRepository_PartialUpdate(t *testing.T) {
	repo, alice, _ := setupTodoRepo(t, "todopartial")
	ctx := context.Background()

	todo, err := repo.Create(ctx, alice.ID, "water plants")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Only completed supplied: text preserved
	done := true
	got, err := repo.Update(ctx, alice.ID, todo.ID, nil, &done)
	if err != nil {
		t.Fatalf("update completed: %v", err)
	}
	if got.Task != "water plants" || !got.Completed {
		t.Fatalf("text not preserved: %+v", got)
	}

	// Only text supplied: completed preserved
	text := "water plants twice"
	got, err = repo.Update(ctx, alice.ID, todo.ID, &text, nil)
	if err != nil {
		t.Fatalf("update text: %v", err)
	}
	if got.Task != "water plants twice" || !got.Completed {
		t.Fatalf("completed not preserved: %+v", got)
	}

	// Blank replacement text is rejected
	blank := "  "
	if _, err := repo.Update(ctx, alice.ID, todo.ID, &blank, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank text: expected ErrInvalidInput, got %v", err)
	}
}

func TestTodoRepository_DeleteTwice(t *testing.T) {
	repo, alice, _ := setupTodoRepo(t, "tododelete")
	ctx := context.Background()

	todo, err := repo.Create(ctx, alice.ID, "one-shot")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, alice.ID, todo.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := repo.ListByOwner(ctx, alice.ID)
	if err != nil || len(list) != 0 {
		t.Fatalf("deleted todo still listed: %v %+v", err, list)
	}
	if err := repo.Delete(ctx, alice.ID, todo.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("second delete: expected ErrTodoNotFound, got %v", err)
	}
}
