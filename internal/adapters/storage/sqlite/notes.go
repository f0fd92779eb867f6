package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/domain/note"
)

// NoteRepository implements ports.NoteRepository on a Store.
type NoteRepository struct {
	store *Store
}

// NewNoteRepository returns a NoteRepository backed by store.
func NewNoteRepository(store *Store) *NoteRepository {
	return &NoteRepository{store: store}
}

// Create stores a note and returns it with its assigned ID.
func (r *NoteRepository) Create(ctx context.Context, content string) (*note.Note, error) {
	createdAt := r.store.timestamp()

	var id int64
	err := r.store.conn(ctx).QueryRowContext(ctx,
		`INSERT INTO notes (content, created_at) VALUES (?, ?) RETURNING id`,
		content, createdAt).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting note: %w", err)
	}

	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	return &note.Note{ID: id, Content: content, CreatedAt: ts}, nil
}

// Get returns the note with the given ID or domain.ErrNotFound.
func (r *NoteRepository) Get(ctx context.Context, id int64) (*note.Note, error) {
	row := r.store.conn(ctx).QueryRowContext(ctx,
		`SELECT id, content, created_at FROM notes WHERE id = ?`, id)

	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting note %d: %w", id, err)
	}
	return n, nil
}

// List returns all notes, newest first.
func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	rows, err := r.store.conn(ctx).QueryContext(ctx,
		`SELECT id, content, created_at FROM notes ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*note.Note, error) {
	var (
		n         note.Note
		createdAt string
	)
	if err := s.Scan(&n.ID, &n.Content, &createdAt); err != nil {
		return nil, err
	}
	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	n.CreatedAt = ts
	return &n, nil
}
