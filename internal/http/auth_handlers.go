package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"todoListManagement/internal/auth"
	"todoListManagement/models"
	"todoListManagement/repository"
)

// Register handles POST /register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	err := h.Auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, "Username already taken")
		return
	case errors.Is(err, repository.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	default:
		log.Printf("[HTTP] register %q: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	token, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid username or password")
			return
		}
		log.Printf("[HTTP] login %q: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Message: "Login successful", Token: token})
}
