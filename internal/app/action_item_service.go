package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

// Compile-time check that ActionItemService implements ports.ActionItemService.
var _ ports.ActionItemService = (*ActionItemService)(nil)

// ActionItemService implements ports.ActionItemService on top of an
// ActionItemRepository.
type ActionItemService struct {
	items  ports.ActionItemRepository
	logger *slog.Logger
}

// NewActionItemService creates an ActionItemService. A nil logger discards
// output.
func NewActionItemService(items ports.ActionItemRepository, logger *slog.Logger) *ActionItemService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ActionItemService{items: items, logger: logger}
}

// ListActionItems returns items matching filter, newest first.
func (s *ActionItemService) ListActionItems(ctx context.Context, filter actionitem.Filter) ([]actionitem.ActionItem, error) {
	if filter.NoteID != nil && *filter.NoteID <= 0 {
		return nil, domain.NewValidationError("note_id", fmt.Sprintf("must be positive, got %d", *filter.NoteID))
	}

	items, err := s.items.List(ctx, filter)
	if err != nil {
		attrs := []any{slog.String("operation", "ListActionItems"), slog.Any("error", err)}
		if filter.NoteID != nil {
			attrs = append(attrs, slog.Int64("note_id", *filter.NoteID))
		}
		s.logger.ErrorContext(ctx, "failed to list action items", attrs...)
		return nil, err
	}
	return items, nil
}

// SetDone marks an item done or not done.
func (s *ActionItemService) SetDone(ctx context.Context, id int64, done bool) (*actionitem.ActionItem, error) {
	s.logger.InfoContext(ctx, "updating action item",
		slog.Int64("action_item_id", id),
		slog.Bool("done", done),
	)

	item, err := s.items.SetDone(ctx, id, done)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update action item",
			slog.String("operation", "SetDone"),
			slog.Int64("action_item_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return item, nil
}
