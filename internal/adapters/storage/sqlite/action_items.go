package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
)

const actionItemColumns = `id, note_id, text, done, created_at`

// ActionItemRepository implements ports.ActionItemRepository on a Store.
type ActionItemRepository struct {
	store *Store
}

// NewActionItemRepository returns an ActionItemRepository backed by store.
func NewActionItemRepository(store *Store) *ActionItemRepository {
	return &ActionItemRepository{store: store}
}

// CreateMany inserts texts in order inside one transaction, joining the
// caller's transaction when ctx carries one. Either every item is stored or
// none is.
func (r *ActionItemRepository) CreateMany(
	ctx context.Context, noteID *int64, texts []string,
) ([]actionitem.ActionItem, error) {
	items := make([]actionitem.ActionItem, 0, len(texts))
	if len(texts) == 0 {
		return items, nil
	}

	createdAt := r.store.timestamp()
	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}

	err = r.store.WithinTx(ctx, func(ctx context.Context) error {
		q := r.store.conn(ctx)
		if noteID != nil {
			var exists int
			err := q.QueryRowContext(ctx, `SELECT 1 FROM notes WHERE id = ?`, *noteID).Scan(&exists)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("note %d: %w", *noteID, domain.ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("checking note %d: %w", *noteID, err)
			}
		}

		stmt, err := q.PrepareContext(ctx,
			`INSERT INTO action_items (note_id, text, done, created_at) VALUES (?, ?, 0, ?) RETURNING id`)
		if err != nil {
			return fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		for _, text := range texts {
			var id int64
			if err := stmt.QueryRowContext(ctx, nullableID(noteID), text, createdAt).Scan(&id); err != nil {
				return fmt.Errorf("inserting action item: %w", err)
			}
			items = append(items, actionitem.ActionItem{
				ID:        id,
				NoteID:    copyID(noteID),
				Text:      text,
				CreatedAt: ts,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// List returns action items matching filter, newest first.
func (r *ActionItemRepository) List(ctx context.Context, filter actionitem.Filter) ([]actionitem.ActionItem, error) {
	query := `SELECT ` + actionItemColumns + ` FROM action_items`
	var args []any
	if filter.NoteID != nil {
		query += ` WHERE note_id = ?`
		args = append(args, *filter.NoteID)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.store.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing action items: %w", err)
	}
	defer rows.Close()

	items := []actionitem.ActionItem{}
	for rows.Next() {
		item, err := scanActionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning action item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing action items: %w", err)
	}
	return items, nil
}

// SetDone updates the done flag and returns the updated item, or
// domain.ErrNotFound.
func (r *ActionItemRepository) SetDone(ctx context.Context, id int64, done bool) (*actionitem.ActionItem, error) {
	row := r.store.conn(ctx).QueryRowContext(ctx,
		`UPDATE action_items SET done = ? WHERE id = ? RETURNING `+actionItemColumns,
		done, id)

	item, err := scanActionItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("action item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("updating action item %d: %w", id, err)
	}
	return item, nil
}

func scanActionItem(s scanner) (*actionitem.ActionItem, error) {
	var (
		item      actionitem.ActionItem
		noteID    sql.NullInt64
		createdAt string
	)
	if err := s.Scan(&item.ID, &noteID, &item.Text, &item.Done, &createdAt); err != nil {
		return nil, err
	}
	if noteID.Valid {
		item.NoteID = &noteID.Int64
	}
	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	item.CreatedAt = ts
	return &item, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
