package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

var (
	ErrMissingToken       = errors.New("access token required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Identity represents the authenticated caller embedded in a token.
type Identity struct {
	UserID   int64
	Username string
}

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewToken issues a signed HS256 token for the identity, expiring TokenTTL
// from now.
func NewToken(secret string, id Identity) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := Claims{
		UserID:   id.UserID,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken validates signature, format and expiry, and extracts the identity.
func VerifyToken(tokenStr, secret string) (*Identity, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !tok.Valid || claims.UserID == 0 || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// TokenFromHeader extracts a Bearer token from the Authorization header.
// An absent header (or header without a token part) is ErrMissingToken; a
// present token under the wrong scheme is ErrInvalidToken.
func TokenFromHeader(h http.Header) (string, error) {
	raw := h.Get("Authorization")
	if raw == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return "", ErrMissingToken
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

type identityKey struct{}

// WithIdentity stores the identity in context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext retrieves the identity from context (if any).
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok
}
