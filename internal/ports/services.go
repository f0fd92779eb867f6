package ports

import (
	"context"

	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
	"github.com/jsamuelsen11/action-items/internal/domain/note"
)

// NoteService defines the service port for note operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type NoteService interface {
	// CreateNote stores a new note.
	// Returns domain.ErrValidation if the content is blank.
	CreateNote(ctx context.Context, content string) (*note.Note, error)

	// GetNote returns a single note by ID.
	// Returns domain.ErrNotFound if the note does not exist.
	GetNote(ctx context.Context, id int64) (*note.Note, error)

	// ListNotes returns all notes, newest first.
	ListNotes(ctx context.Context) ([]note.Note, error)
}

// ActionItemService defines the service port for reading and completing
// persisted action items.
type ActionItemService interface {
	// ListActionItems returns items matching the filter, newest first.
	ListActionItems(ctx context.Context, filter actionitem.Filter) ([]actionitem.ActionItem, error)

	// SetDone marks an item done or not done.
	// Returns domain.ErrNotFound if the item does not exist.
	SetDone(ctx context.Context, id int64, done bool) (*actionitem.ActionItem, error)
}

// ExtractionService defines the service port for running the extraction
// engine over text and persisting what it finds.
type ExtractionService interface {
	// Extract runs the requested strategy over req.Text, optionally saves the
	// text as a note, and persists the resulting items.
	// Returns domain.ErrValidation for blank text or an unknown strategy, and
	// an error matching extraction.ErrModelUnavailable when the model cannot
	// be reached and heuristic fallback is disabled.
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResult, error)

	// ExtractBatch runs Extract for each request concurrently. Uses partial
	// success semantics: each request succeeds or fails independently.
	// Returns a hard error only for request-level failures (empty batch).
	ExtractBatch(ctx context.Context, reqs []ExtractRequest) (*BatchExtractResult, error)
}

// Strategy selects an extraction engine.
type Strategy string

// Extraction strategies.
const (
	StrategyHeuristic Strategy = "heuristic"
	StrategyLLM       Strategy = "llm"
)

// IsValid reports whether s names a known strategy.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyHeuristic, StrategyLLM:
		return true
	default:
		return false
	}
}

// ExtractRequest is the input to a single extraction. An empty Strategy
// selects the configured default.
type ExtractRequest struct {
	Text     string
	SaveNote bool
	Strategy Strategy
}

// ExtractResult is the outcome of a single extraction.
// NoteID is set only when the text was saved as a note. Fallback reports that
// the LLM strategy was requested but the heuristic produced Items.
type ExtractResult struct {
	NoteID   *int64
	Items    []actionitem.ActionItem
	Strategy Strategy
	Fallback bool
}

// Texts returns the item texts in order.
func (r *ExtractResult) Texts() extraction.Result {
	texts := make(extraction.Result, 0, len(r.Items))
	for i := range r.Items {
		texts = append(texts, r.Items[i].Text)
	}
	return texts
}

// BatchExtractItem records a successful extraction at Index in the batch.
type BatchExtractItem struct {
	Index  int
	Result *ExtractResult
}

// BatchExtractError records a failed extraction at Index in the batch.
type BatchExtractError struct {
	Index int
	Err   error
}

// BatchExtractResult holds the outcomes of a batch extraction.
// Extracted and Errors are each ordered by Index.
type BatchExtractResult struct {
	Extracted []BatchExtractItem
	Errors    []BatchExtractError
}
