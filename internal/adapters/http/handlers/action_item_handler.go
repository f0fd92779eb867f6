package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/action-items/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

// ActionItemHandler handles HTTP requests for extracting, listing, and
// completing action items.
type ActionItemHandler struct {
	items     ports.ActionItemService
	extractor ports.ExtractionService
}

// NewActionItemHandler creates a new ActionItemHandler with the given service
// ports.
func NewActionItemHandler(items ports.ActionItemService, extractor ports.ExtractionService) *ActionItemHandler {
	return &ActionItemHandler{items: items, extractor: extractor}
}

// Extract handles POST /api/v1/action-items/extract using the heuristic
// strategy.
func (h *ActionItemHandler) Extract(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, ports.StrategyHeuristic)
}

// ExtractLLM handles POST /api/v1/action-items/extract-llm using the model.
func (h *ActionItemHandler) ExtractLLM(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, ports.StrategyLLM)
}

func (h *ActionItemHandler) extract(w http.ResponseWriter, r *http.Request, strategy ports.Strategy) {
	var req dto.ExtractRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.extractor.Extract(r.Context(), req.ToPort(strategy))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExtractResponse(result))
}

// ExtractBatch handles POST /api/v1/action-items/extract-batch. The response
// is 200 even when some entries fail; each failure is reported with its index.
func (h *ActionItemHandler) ExtractBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchExtractRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.extractor.ExtractBatch(r.Context(), req.ToPort())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchExtractResponse(result))
}

// ListActionItems handles GET /api/v1/action-items with an optional
// ?note_id= filter.
func (h *ActionItemHandler) ListActionItems(w http.ResponseWriter, r *http.Request) {
	noteID, err := parseOptionalInt64Query(r, "note_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.items.ListActionItems(r.Context(), actionitem.Filter{NoteID: noteID})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionItemListResponse(items))
}

// SetDone handles POST /api/v1/action-items/{id}/done. An empty body marks
// the item done.
func (h *ActionItemHandler) SetDone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetDoneRequest
	if !decodeOptionalJSONBody(w, r, &req) {
		return
	}

	item, err := h.items.SetDone(r.Context(), id, req.Value())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionItemResponse(item))
}
