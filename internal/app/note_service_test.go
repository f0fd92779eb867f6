package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/domain/note"
	"github.com/jsamuelsen11/action-items/mocks"
)

var testTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func int64Ptr(v int64) *int64 { return &v }

func TestNewNoteService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(mocks.NewMockNoteRepository(t), nil)
	if svc.logger == nil {
		t.Fatal("NewNoteService(nil logger) should create a no-op logger, got nil")
	}
}

func TestNoteService_CreateNote(t *testing.T) {
	t.Parallel()

	t.Run("stores trimmed content", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockNoteRepository(t)
		svc := NewNoteService(repo, discardLogger())

		want := &note.Note{ID: 7, Content: "- [ ] ship it", CreatedAt: testTime}
		repo.EXPECT().Create(mock.Anything, "- [ ] ship it").Return(want, nil)

		got, err := svc.CreateNote(context.Background(), "  - [ ] ship it \n")
		if err != nil {
			t.Fatalf("CreateNote() error = %v", err)
		}
		if got.ID != 7 {
			t.Errorf("CreateNote().ID = %d, want 7", got.ID)
		}
	})

	t.Run("blank content is a validation error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockNoteRepository(t)
		svc := NewNoteService(repo, discardLogger())

		_, err := svc.CreateNote(context.Background(), " \n\t ")

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("CreateNote() error = %v, want *domain.ValidationError", err)
		}
		if verr.Fields["content"] != domain.MsgRequired {
			t.Errorf("Fields[content] = %q, want %q", verr.Fields["content"], domain.MsgRequired)
		}
	})

	t.Run("propagates repository error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockNoteRepository(t)
		svc := NewNoteService(repo, discardLogger())

		errDisk := errors.New("disk I/O error")
		repo.EXPECT().Create(mock.Anything, "notes").Return(nil, errDisk)

		if _, err := svc.CreateNote(context.Background(), "notes"); !errors.Is(err, errDisk) {
			t.Errorf("CreateNote() error = %v, want %v", err, errDisk)
		}
	})
}

func TestNoteService_GetNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ret     *note.Note
		retErr  error
		wantErr error
	}{
		{name: "found", ret: &note.Note{ID: 3, Content: "c", CreatedAt: testTime}},
		{name: "not found", retErr: domain.ErrNotFound, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := mocks.NewMockNoteRepository(t)
			svc := NewNoteService(repo, discardLogger())

			repo.EXPECT().Get(mock.Anything, int64(3)).Return(tt.ret, tt.retErr)

			got, err := svc.GetNote(context.Background(), 3)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetNote() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.ID != 3 {
				t.Errorf("GetNote().ID = %d, want 3", got.ID)
			}
		})
	}
}

func TestNoteService_ListNotes(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockNoteRepository(t)
	svc := NewNoteService(repo, discardLogger())

	want := []note.Note{{ID: 2, Content: "b"}, {ID: 1, Content: "a"}}
	repo.EXPECT().List(mock.Anything).Return(want, nil)

	got, err := svc.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("ListNotes() = %+v, want newest first", got)
	}
}
