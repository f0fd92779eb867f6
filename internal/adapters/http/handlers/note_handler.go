// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/action-items/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	svc ports.NoteService
}

// NewNoteHandler creates a new NoteHandler with the given service port.
func NewNoteHandler(svc ports.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// ListNotes handles GET /api/v1/notes.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteListResponse(notes))
}

// CreateNote handles POST /api/v1/notes.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateNote(r.Context(), req.Content)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToNoteResponse(created))
}

// GetNote handles GET /api/v1/notes/{id}.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteResponse(n))
}
