package auth

import (
	"context"
	"errors"
	"log"

	"todoListManagement/repository"
)

// Authenticator orchestrates registration, login and token verification over
// the credential store. The signing secret is injected, never embedded.
type Authenticator struct {
	users  repository.UserRepositoryI
	secret string
}

func NewAuthenticator(users repository.UserRepositoryI, secret string) *Authenticator {
	return &Authenticator{users: users, secret: secret}
}

// Register hashes the password and creates the account. Repository errors
// (ErrInvalidInput, ErrUsernameTaken) pass through unchanged.
func (a *Authenticator) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return repository.ErrInvalidInput
	}
	hash, err := HashPassword(password)
	if err != nil {
		log.Printf("[Auth] hash password for %q: %v", username, err)
		return err
	}
	_, err = a.users.Create(ctx, username, hash)
	return err
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password both surface as ErrInvalidCredentials; the real cause
// stays in the server log so usernames cannot be enumerated.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	u, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[Auth] login attempt for unknown user %q", username)
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := CheckPassword(u.PasswordHash, password); err != nil {
		log.Printf("[Auth] wrong password for user %q", username)
		return "", ErrInvalidCredentials
	}
	return NewToken(a.secret, Identity{UserID: u.ID, Username: u.Username})
}

// Verify validates a bearer token and returns the embedded identity.
func (a *Authenticator) Verify(tokenStr string) (*Identity, error) {
	return VerifyToken(tokenStr, a.secret)
}
