package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/action-items/internal/domain/note"
	"github.com/jsamuelsen11/action-items/internal/platform/logging"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

// Compile-time check that NoteService implements ports.NoteService.
var _ ports.NoteService = (*NoteService)(nil)

// NoteService implements ports.NoteService on top of a NoteRepository.
type NoteService struct {
	notes  ports.NoteRepository
	logger *slog.Logger
}

// NewNoteService creates a NoteService. A nil logger discards output.
func NewNoteService(notes ports.NoteRepository, logger *slog.Logger) *NoteService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NoteService{notes: notes, logger: logger}
}

// CreateNote validates and stores content, trimmed of surrounding whitespace.
func (s *NoteService) CreateNote(ctx context.Context, content string) (*note.Note, error) {
	n := note.Note{Content: strings.TrimSpace(content)}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating note", logging.TextStats("content", n.Content))

	created, err := s.notes.Create(ctx, n.Content)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create note",
			slog.String("operation", "CreateNote"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// GetNote returns a single note by ID.
func (s *NoteService) GetNote(ctx context.Context, id int64) (*note.Note, error) {
	n, err := s.notes.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch note",
			slog.String("operation", "GetNote"),
			slog.Int64("note_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return n, nil
}

// ListNotes returns all notes, newest first.
func (s *NoteService) ListNotes(ctx context.Context) ([]note.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list notes",
			slog.String("operation", "ListNotes"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return notes, nil
}
