package note

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/action-items/internal/domain"
)

// Note is a block of free-form text, such as meeting notes or an email, that
// action items are extracted from.
type Note struct {
	ID        int64
	Content   string
	CreatedAt time.Time
}

// Validate checks business rules for the Note entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Content) == "" {
		return domain.NewValidationError("content", domain.MsgRequired)
	}
	return nil
}
