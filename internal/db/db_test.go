package db

import "testing"

func TestOpen_AppliesMigrations(t *testing.T) {
	d, err := Open("file:dbmigrate?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	// Schema from migration 0001 is usable
	if _, err := d.Exec(`INSERT INTO users (username, password_hash) VALUES ('alice', 'h')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO todos (user_id, task) VALUES (1, 'x')`); err != nil {
		t.Fatalf("insert todo: %v", err)
	}

	// Reapplying on an already-migrated database is a no-op
	if err := applyMigrations(d); err != nil {
		t.Fatalf("reapply: %v", err)
	}
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	d, err := Open("file:dbfk?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if _, err := d.Exec(`INSERT INTO todos (user_id, task) VALUES (999, 'orphan')`); err == nil {
		t.Fatalf("expected foreign key violation for missing owner")
	}
}

func TestRollbackLast(t *testing.T) {
	d, err := Open("file:dbrollback?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := RollbackLast(d); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	// Tables from migration 0001 are gone
	if _, err := d.Exec(`INSERT INTO users (username, password_hash) VALUES ('alice', 'h')`); err == nil {
		t.Fatalf("expected users table to be dropped")
	}
	// Rolling back with nothing applied is a no-op
	if err := RollbackLast(d); err != nil {
		t.Fatalf("rollback empty: %v", err)
	}
}
