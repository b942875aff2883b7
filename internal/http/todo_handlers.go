package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todoListManagement/internal/auth"
	"todoListManagement/models"
	"todoListManagement/repository"
)

// callerIdentity retrieves the authenticated identity placed in context by
// RequireAuth. Its absence on a protected route is a programming error.
func callerIdentity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		log.Printf("[HTTP] %s %s reached handler without identity", r.Method, r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	return id, true
}

// todoID parses the {id} path parameter. Non-numeric ids behave like unknown
// ones: 404.
func todoID(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Todo not found")
		return 0, "", false
	}
	return id, raw, true
}

// ListTodos handles GET /tasks.
func (h *Handlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	id, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	todos, err := h.Todos.ListByOwner(r.Context(), id.UserID)
	if err != nil {
		log.Printf("[HTTP] list todos for user %d: %v", id.UserID, err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, models.TodoListResponse{Tasks: todos})
}

// CreateTodo handles POST /tasks.
func (h *Handlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var req models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Task is required")
		return
	}

	todo, err := h.Todos.Create(r.Context(), id.UserID, req.Task)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Task is required")
			return
		}
		log.Printf("[HTTP] create todo for user %d: %v", id.UserID, err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.Journal.Record("create", id.UserID, todo.ID)
	writeJSON(w, http.StatusCreated, todo)
}

// UpdateTodo handles PUT /tasks/{id}.
func (h *Handlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	tid, raw, ok := todoID(w, r)
	if !ok {
		return
	}
	var req models.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.Todos.Update(r.Context(), id.UserID, tid, req.Task, req.Completed)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrTodoNotFound):
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	case errors.Is(err, repository.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Task is required")
		return
	default:
		log.Printf("[HTTP] update todo %d for user %d: %v", tid, id.UserID, err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.Journal.Record("update", id.UserID, tid)
	writeJSON(w, http.StatusOK, models.UpdatedResponse{UpdatedID: raw})
}

// DeleteTodo handles DELETE /tasks/{id}.
func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	tid, raw, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := h.Todos.Delete(r.Context(), id.UserID, tid); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			writeError(w, http.StatusNotFound, "Todo not found")
			return
		}
		log.Printf("[HTTP] delete todo %d for user %d: %v", tid, id.UserID, err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.Journal.Record("delete", id.UserID, tid)
	writeJSON(w, http.StatusOK, models.DeletedResponse{DeletedID: raw})
}
