package models

// User represents a registered account.
// It maps to the `users` table in SQLite. The password hash never leaves
// the server, hence `json:"-"`.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}
