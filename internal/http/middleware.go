package httpserver

import (
	"errors"
	"net/http"

	"todoListManagement/internal/auth"
)

// RequireAuth extracts and verifies the Bearer token and injects the caller's
// identity into the request context. A missing token is 401; a present but
// invalid or expired token is 403.
func RequireAuth(authn *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := auth.TokenFromHeader(r.Header)
			if err != nil {
				if errors.Is(err, auth.ErrMissingToken) {
					writeError(w, http.StatusUnauthorized, "Access token required")
					return
				}
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}
			id, err := authn.Verify(tokenStr)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					writeError(w, http.StatusForbidden, "Token expired")
					return
				}
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}
