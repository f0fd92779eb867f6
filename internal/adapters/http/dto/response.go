// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/domain/note"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

// NoteResponse represents a single note in HTTP responses.
type NoteResponse struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// NoteListResponse represents a list of notes in HTTP responses.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Count int            `json:"count"`
}

// ToNoteResponse converts a domain Note to an HTTP response DTO.
func ToNoteResponse(n *note.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

// ToNoteListResponse converts a slice of domain Notes to an HTTP list
// response DTO.
func ToNoteListResponse(notes []note.Note) NoteListResponse {
	items := make([]NoteResponse, len(notes))
	for i := range notes {
		items[i] = ToNoteResponse(&notes[i])
	}
	return NoteListResponse{
		Notes: items,
		Count: len(items),
	}
}

// ActionItemResponse represents a single action item in HTTP responses.
// NoteID is null for items extracted from unsaved text.
type ActionItemResponse struct {
	ID        int64  `json:"id"`
	NoteID    *int64 `json:"note_id"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"`
}

// ActionItemListResponse represents a list of action items in HTTP responses.
type ActionItemListResponse struct {
	ActionItems []ActionItemResponse `json:"action_items"`
	Count       int                  `json:"count"`
}

// ToActionItemResponse converts a domain ActionItem to an HTTP response DTO.
func ToActionItemResponse(a *actionitem.ActionItem) ActionItemResponse {
	return ActionItemResponse{
		ID:        a.ID,
		NoteID:    a.NoteID,
		Text:      a.Text,
		Done:      a.Done,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// ToActionItemListResponse converts a slice of domain ActionItems to an HTTP
// list response DTO.
func ToActionItemListResponse(items []actionitem.ActionItem) ActionItemListResponse {
	out := make([]ActionItemResponse, len(items))
	for i := range items {
		out[i] = ToActionItemResponse(&items[i])
	}
	return ActionItemListResponse{
		ActionItems: out,
		Count:       len(out),
	}
}

// ExtractedItem is an action item as reported by an extraction.
type ExtractedItem struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// ExtractResponse is the result of a single extraction. Fallback is true when
// the LLM strategy was requested but the heuristic produced the items.
type ExtractResponse struct {
	NoteID   *int64          `json:"note_id"`
	Items    []ExtractedItem `json:"items"`
	Strategy string          `json:"strategy"`
	Fallback bool            `json:"fallback"`
}

// ToExtractResponse converts a ports.ExtractResult to an HTTP response DTO.
func ToExtractResponse(result *ports.ExtractResult) ExtractResponse {
	items := make([]ExtractedItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = ExtractedItem{ID: item.ID, Text: item.Text}
	}
	return ExtractResponse{
		NoteID:   result.NoteID,
		Items:    items,
		Strategy: string(result.Strategy),
		Fallback: result.Fallback,
	}
}

// BatchExtractResponse represents the result of a batch extraction. It
// includes both successful extractions and per-entry errors.
type BatchExtractResponse struct {
	Extracted []BatchExtractedItem  `json:"extracted"`
	Errors    []BatchExtractErrItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BatchExtractedItem is a successful extraction at Index in the request.
type BatchExtractedItem struct {
	Index int `json:"index"`
	ExtractResponse
}

// BatchExtractErrItem is a failed extraction at Index in the request. Status
// is the HTTP status the entry would have produced on its own.
type BatchExtractErrItem struct {
	Index   int    `json:"index"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToBatchExtractResponse converts a ports.BatchExtractResult to an HTTP
// response DTO.
func ToBatchExtractResponse(result *ports.BatchExtractResult) BatchExtractResponse {
	extracted := make([]BatchExtractedItem, len(result.Extracted))
	for i, e := range result.Extracted {
		extracted[i] = BatchExtractedItem{Index: e.Index, ExtractResponse: ToExtractResponse(e.Result)}
	}

	errs := make([]BatchExtractErrItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BatchExtractErrItem{
			Index:   e.Index,
			Status:  StatusFor(e.Err),
			Message: ErrorMessage(e.Err),
		}
	}

	return BatchExtractResponse{
		Extracted: extracted,
		Errors:    errs,
		Total:     len(extracted) + len(errs),
		Succeeded: len(extracted),
		Failed:    len(errs),
	}
}
