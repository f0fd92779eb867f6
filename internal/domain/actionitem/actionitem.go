package actionitem

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/action-items/internal/domain"
)

// ActionItem is a persisted task produced by extraction. NoteID is nil when
// the source text was not saved as a note.
type ActionItem struct {
	ID        int64
	NoteID    *int64
	Text      string
	Done      bool
	CreatedAt time.Time
}

// Validate checks business rules for the ActionItem entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (a *ActionItem) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if a.NoteID != nil && *a.NoteID <= 0 {
		fields["note_id"] = fmt.Sprintf("must be positive, got %d", *a.NoteID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Filter holds optional filter criteria for listing action items.
// A nil NoteID means "all notes".
type Filter struct {
	NoteID *int64
}
