package ports

import (
	"context"

	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/domain/note"
)

// NoteRepository defines the outbound port for note persistence.
// Implemented by the storage adapter; called by the application layer.
type NoteRepository interface {
	// Create stores a note and returns it with its assigned ID and timestamp.
	Create(ctx context.Context, content string) (*note.Note, error)

	// Get returns a single note by ID.
	// Returns domain.ErrNotFound if the note does not exist.
	Get(ctx context.Context, id int64) (*note.Note, error)

	// List returns all notes, newest first.
	List(ctx context.Context) ([]note.Note, error)
}

// ActionItemRepository defines the outbound port for action item persistence.
// Implemented by the storage adapter; called by the application layer.
type ActionItemRepository interface {
	// CreateMany stores texts as action items, in order, within a single
	// transaction. noteID may be nil for items extracted from unsaved text.
	// Returns domain.ErrNotFound if noteID refers to a missing note.
	CreateMany(ctx context.Context, noteID *int64, texts []string) ([]actionitem.ActionItem, error)

	// List returns action items matching the filter, newest first.
	// Pass a zero-value Filter to list all items.
	List(ctx context.Context, filter actionitem.Filter) ([]actionitem.ActionItem, error)

	// SetDone updates the completion flag and returns the updated item.
	// Returns domain.ErrNotFound if the item does not exist.
	SetDone(ctx context.Context, id int64, done bool) (*actionitem.ActionItem, error)
}

// Transactor runs a unit of work atomically. Repository calls made with the
// ctx passed to fn join the same transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
