// Package httpserver is the request gateway: it routes the HTTP+JSON contract
// onto the authenticator and the task store and owns the status-code mapping.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"todoListManagement/internal/auth"
	"todoListManagement/internal/config"
	"todoListManagement/internal/journal"
	"todoListManagement/repository"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

// Handlers bundles the gateway's dependencies.
type Handlers struct {
	Auth    *auth.Authenticator
	Todos   repository.TodoRepositoryI
	Journal *journal.Journal // may be nil; Record is a no-op then
}

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(h.Auth))
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.ListTodos)
			r.Post("/", h.CreateTodo)
			r.Put("/{id}", h.UpdateTodo)
			r.Delete("/{id}", h.DeleteTodo)
		})
	})
	return r
}

// StartHTTP starts the HTTP server on the configured address and returns a
// shutdown function that drains in-flight requests.
func StartHTTP(cfg *config.Config, h *Handlers) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":3001"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:      NewRouter(h),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	}, nil
}
