package models

// Todo represents a single to-do item owned by a user.
// It maps to the `todos` table in SQLite.
type Todo struct {
	ID        int64  `db:"id" json:"id"`
	UserID    int64  `db:"user_id" json:"user_id"`
	Task      string `db:"task" json:"task"`
	Completed bool   `db:"completed" json:"completed"`
}
