package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

const msgMustNotEmpty = "must not be empty"

// CreateNoteRequest represents the JSON body for creating a note.
type CreateNoteRequest struct {
	Content string `json:"content"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateNoteRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return domain.NewValidationError("content", domain.MsgRequired)
	}
	return nil
}

// ExtractRequest represents the JSON body of the single-text extraction
// endpoints. The endpoint decides the strategy.
type ExtractRequest struct {
	Text     string `json:"text"`
	SaveNote bool   `json:"save_note"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ExtractRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return domain.NewValidationError("text", domain.MsgRequired)
	}
	return nil
}

// ToPort converts the request to the service input for strategy.
func (r *ExtractRequest) ToPort(strategy ports.Strategy) ports.ExtractRequest {
	return ports.ExtractRequest{
		Text:     r.Text,
		SaveNote: r.SaveNote,
		Strategy: strategy,
	}
}

// BatchExtractEntry is one text within a batch. An empty Strategy selects the
// configured default.
type BatchExtractEntry struct {
	Text     string `json:"text"`
	SaveNote bool   `json:"save_note"`
	Strategy string `json:"strategy,omitempty"`
}

// BatchExtractRequest represents the JSON body for batch extraction.
type BatchExtractRequest struct {
	Requests []BatchExtractEntry `json:"requests"`
}

// Validate checks that the batch is non-empty and names only known
// strategies. Blank texts are reported per entry in the response instead.
func (r *BatchExtractRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Requests) == 0 {
		fields["requests"] = msgMustNotEmpty
	}
	for i, entry := range r.Requests {
		if entry.Strategy != "" && !ports.Strategy(entry.Strategy).IsValid() {
			fields[fmt.Sprintf("requests[%d].strategy", i)] = fmt.Sprintf("invalid: %q", entry.Strategy)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPort converts the batch to service inputs, preserving order.
func (r *BatchExtractRequest) ToPort() []ports.ExtractRequest {
	reqs := make([]ports.ExtractRequest, len(r.Requests))
	for i, entry := range r.Requests {
		reqs[i] = ports.ExtractRequest{
			Text:     entry.Text,
			SaveNote: entry.SaveNote,
			Strategy: ports.Strategy(entry.Strategy),
		}
	}
	return reqs
}

// SetDoneRequest represents the JSON body for marking an action item done.
// A missing done field means true.
type SetDoneRequest struct {
	Done *bool `json:"done,omitempty"`
}

// Value returns the requested done state, defaulting to true.
func (r *SetDoneRequest) Value() bool {
	if r.Done == nil {
		return true
	}
	return *r.Done
}
