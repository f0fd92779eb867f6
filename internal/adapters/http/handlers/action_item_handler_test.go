package handlers_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/action-items/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-items/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
	"github.com/jsamuelsen11/action-items/internal/ports"
	"github.com/jsamuelsen11/action-items/mocks"
)

type actionItemMocks struct {
	items     *mocks.MockActionItemService
	extractor *mocks.MockExtractionService
}

func newActionItemHandler(t *testing.T) (*handlers.ActionItemHandler, actionItemMocks) {
	t.Helper()
	m := actionItemMocks{
		items:     mocks.NewMockActionItemService(t),
		extractor: mocks.NewMockExtractionService(t),
	}
	return handlers.NewActionItemHandler(m.items, m.extractor), m
}

func postJSON(target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Extract / ExtractLLM ---

func TestExtract_StrategyPerEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(h *handlers.ActionItemHandler) http.HandlerFunc
		strategy ports.Strategy
	}{
		{name: "extract", call: func(h *handlers.ActionItemHandler) http.HandlerFunc { return h.Extract }, strategy: ports.StrategyHeuristic},
		{name: "extract-llm", call: func(h *handlers.ActionItemHandler) http.HandlerFunc { return h.ExtractLLM }, strategy: ports.StrategyLLM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newActionItemHandler(t)

			item := validActionItem()
			want := ports.ExtractRequest{Text: "- [ ] Email the vendor", SaveNote: true, Strategy: tt.strategy}
			m.extractor.EXPECT().Extract(mock.Anything, want).Return(&ports.ExtractResult{
				NoteID:   int64Ptr(1),
				Items:    []actionitem.ActionItem{item},
				Strategy: tt.strategy,
			}, nil)

			body := jsonBody(t, dto.ExtractRequest{Text: want.Text, SaveNote: true})
			rec := httptest.NewRecorder()
			tt.call(h)(rec, postJSON("/api/v1/action-items/"+tt.name, body))

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[dto.ExtractResponse](t, rec)
			if resp.NoteID == nil || *resp.NoteID != 1 {
				t.Errorf("NoteID = %v, want 1", resp.NoteID)
			}
			if len(resp.Items) != 1 || resp.Items[0].Text != "Email the vendor" {
				t.Errorf("Items = %+v", resp.Items)
			}
			if resp.Strategy != string(tt.strategy) {
				t.Errorf("Strategy = %q, want %q", resp.Strategy, tt.strategy)
			}
		})
	}
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid JSON", body: "{", wantStatus: http.StatusBadRequest},
		{name: "blank text", body: `{"text":"  "}`, wantStatus: http.StatusBadRequest},
		{
			name:       "model unavailable",
			body:       `{"text":"call Bo"}`,
			serviceErr: &extraction.ModelUnavailableError{Model: "llama3.1:8b", Err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "storage failure",
			body:       `{"text":"call Bo"}`,
			serviceErr: errors.New("saving action items: disk full"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newActionItemHandler(t)
			if tt.serviceErr != nil {
				m.extractor.EXPECT().Extract(mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			h.ExtractLLM(rec, postJSON("/api/v1/action-items/extract-llm", bytes.NewBufferString(tt.body)))

			requireStatus(t, rec, tt.wantStatus)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("problem status = %d, want %d", resp.Status, tt.wantStatus)
			}
		})
	}
}

// --- ExtractBatch ---

func TestExtractBatch_PartialSuccess(t *testing.T) {
	t.Parallel()
	h, m := newActionItemHandler(t)

	m.extractor.EXPECT().ExtractBatch(mock.Anything, []ports.ExtractRequest{
		{Text: "- one"},
		{Text: ""},
	}).Return(&ports.BatchExtractResult{
		Extracted: []ports.BatchExtractItem{{Index: 0, Result: &ports.ExtractResult{
			Items:    []actionitem.ActionItem{{ID: 1, Text: "one"}},
			Strategy: ports.StrategyHeuristic,
		}}},
		Errors: []ports.BatchExtractError{{Index: 1, Err: domain.NewValidationError("text", domain.MsgRequired)}},
	}, nil)

	body := jsonBody(t, dto.BatchExtractRequest{Requests: []dto.BatchExtractEntry{{Text: "- one"}, {Text: ""}}})
	rec := httptest.NewRecorder()
	h.ExtractBatch(rec, postJSON("/api/v1/action-items/extract-batch", body))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BatchExtractResponse](t, rec)
	if resp.Succeeded != 1 || resp.Failed != 1 {
		t.Errorf("Succeeded, Failed = %d, %d; want 1, 1", resp.Succeeded, resp.Failed)
	}
	if resp.Errors[0].Index != 1 || resp.Errors[0].Status != http.StatusBadRequest {
		t.Errorf("Errors[0] = %+v, want index 1 with status 400", resp.Errors[0])
	}
}

func TestExtractBatch_RejectedRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		serviceErr error
	}{
		{name: "empty batch", body: `{"requests":[]}`},
		{name: "unknown strategy", body: `{"requests":[{"text":"a","strategy":"magic"}]}`},
		{
			name:       "too many entries",
			body:       `{"requests":[{"text":"a"}]}`,
			serviceErr: domain.NewValidationError("requests", "must contain at most 100 entries, got 101"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newActionItemHandler(t)
			if tt.serviceErr != nil {
				m.extractor.EXPECT().ExtractBatch(mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			h.ExtractBatch(rec, postJSON("/api/v1/action-items/extract-batch", bytes.NewBufferString(tt.body)))

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

// --- ListActionItems ---

func TestListActionItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantFilter *actionitem.Filter
		wantStatus int
	}{
		{name: "all items", query: "", wantFilter: &actionitem.Filter{}, wantStatus: http.StatusOK},
		{name: "by note", query: "?note_id=3", wantFilter: &actionitem.Filter{NoteID: int64Ptr(3)}, wantStatus: http.StatusOK},
		{name: "bad note_id", query: "?note_id=x", wantStatus: http.StatusBadRequest},
		{name: "negative note_id", query: "?note_id=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newActionItemHandler(t)
			if tt.wantFilter != nil {
				m.items.EXPECT().ListActionItems(mock.Anything, *tt.wantFilter).
					Return([]actionitem.ActionItem{validActionItem()}, nil)
			}

			rec := httptest.NewRecorder()
			h.ListActionItems(rec, httptest.NewRequest(http.MethodGet, "/api/v1/action-items"+tt.query, nil))

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus == http.StatusOK {
				resp := decodeJSON[dto.ActionItemListResponse](t, rec)
				if resp.Count != 1 {
					t.Errorf("Count = %d, want 1", resp.Count)
				}
			}
		})
	}
}

// --- SetDone ---

func TestSetDone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		body       io.Reader
		chunked    bool
		wantDone   bool
		serviceErr error
		wantStatus int
	}{
		{name: "empty body marks done", id: "7", body: nil, wantDone: true, wantStatus: http.StatusOK},
		{name: "empty chunked body marks done", id: "7", body: bytes.NewBufferString(""), chunked: true, wantDone: true, wantStatus: http.StatusOK},
		{name: "whitespace body marks done", id: "7", body: bytes.NewBufferString(" \n"), wantDone: true, wantStatus: http.StatusOK},
		{name: "chunked body is decoded", id: "7", body: bytes.NewBufferString(`{"done":false}`), chunked: true, wantDone: false, wantStatus: http.StatusOK},
		{name: "truncated body", id: "7", body: bytes.NewBufferString(`{"done":`), wantStatus: http.StatusBadRequest},
		{name: "omitted field marks done", id: "7", body: bytes.NewBufferString(`{}`), wantDone: true, wantStatus: http.StatusOK},
		{name: "explicit false reopens", id: "7", body: bytes.NewBufferString(`{"done":false}`), wantDone: false, wantStatus: http.StatusOK},
		{name: "missing item", id: "8", body: nil, wantDone: true, serviceErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "bad id", id: "seven", body: nil, wantStatus: http.StatusBadRequest},
		{name: "bad body", id: "7", body: bytes.NewBufferString(`{"done":"yes"}`), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newActionItemHandler(t)

			if tt.wantStatus == http.StatusOK || tt.serviceErr != nil {
				item := validActionItem()
				item.Done = tt.wantDone
				call := m.items.EXPECT().SetDone(mock.Anything, mock.AnythingOfType("int64"), tt.wantDone)
				if tt.serviceErr != nil {
					call.Return(nil, tt.serviceErr)
				} else {
					call.Return(&item, nil)
				}
			}

			req := postJSON("/api/v1/action-items/"+tt.id+"/done", tt.body)
			if tt.chunked {
				req.ContentLength = -1
				req.TransferEncoding = []string{"chunked"}
			}
			req = withChiParams(req, map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()
			h.SetDone(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus == http.StatusOK {
				resp := decodeJSON[dto.ActionItemResponse](t, rec)
				if resp.Done != tt.wantDone {
					t.Errorf("Done = %v, want %v", resp.Done, tt.wantDone)
				}
			}
		})
	}
}
