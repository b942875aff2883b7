package testutil

import (
	"net/http"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"

	"todoListManagement/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// Caller is responsible for closing the DB, typically via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sqlx.DB {
	t.Helper()
	// We use a shared cache memory database so that multiple connections share the same DB if needed.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// GenerateJWTHS256 returns a signed JWT string with the claims the app uses,
// expiring one hour from now.
func GenerateJWTHS256(t *testing.T, secret string, userID int64, username string) string {
	t.Helper()
	return signJWT(t, secret, userID, username, time.Now().Add(time.Hour))
}

// GenerateExpiredJWT returns a correctly signed token whose expiry is already
// in the past.
func GenerateExpiredJWT(t *testing.T, secret string, userID int64, username string) string {
	t.Helper()
	return signJWT(t, secret, userID, username, time.Now().Add(-time.Minute))
}

func signJWT(t *testing.T, secret string, userID int64, username string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// WithBearer sets the Authorization header on the request and returns it.
func WithBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
