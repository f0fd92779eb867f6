// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/action-items/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-items/internal/adapters/http/handlers"
)

// Handlers groups the route handlers NewRouter mounts.
type Handlers struct {
	Notes       *handlers.NoteHandler
	ActionItems *handlers.ActionItemHandler
	Health      *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes and
// methods get problem responses like every other error.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/notes", h.Notes.ListNotes)
		r.Post("/notes", h.Notes.CreateNote)
		r.Get("/notes/{id}", h.Notes.GetNote)

		r.Get("/action-items", h.ActionItems.ListActionItems)
		r.Post("/action-items/extract", h.ActionItems.Extract)
		r.Post("/action-items/extract-llm", h.ActionItems.ExtractLLM)
		r.Post("/action-items/extract-batch", h.ActionItems.ExtractBatch)
		r.Post("/action-items/{id}/done", h.ActionItems.SetDone)
	})

	return r
}
