package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/action-items/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

func boolPtr(b bool) *bool { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateNoteRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.CreateNoteRequest
		wantErr bool
	}{
		{name: "valid content", req: dto.CreateNoteRequest{Content: "Standup notes"}},
		{name: "empty content", req: dto.CreateNoteRequest{}, wantErr: true},
		{name: "whitespace content", req: dto.CreateNoteRequest{Content: "  \n\t"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "content")
		})
	}
}

func TestExtractRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.ExtractRequest
		wantErr bool
	}{
		{name: "valid text", req: dto.ExtractRequest{Text: "- [ ] Ship it"}},
		{name: "valid with save_note", req: dto.ExtractRequest{Text: "TODO: call Sam", SaveNote: true}},
		{name: "empty text", req: dto.ExtractRequest{}, wantErr: true},
		{name: "whitespace text", req: dto.ExtractRequest{Text: "\r\n "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "text")
		})
	}
}

func TestExtractRequest_ToPort(t *testing.T) {
	t.Parallel()

	req := dto.ExtractRequest{Text: "Review the PR", SaveNote: true}
	got := req.ToPort(ports.StrategyLLM)

	want := ports.ExtractRequest{Text: "Review the PR", SaveNote: true, Strategy: ports.StrategyLLM}
	if got != want {
		t.Errorf("ToPort() = %+v, want %+v", got, want)
	}
}

func TestBatchExtractRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.BatchExtractRequest
		wantField string
	}{
		{
			name: "valid batch",
			req: dto.BatchExtractRequest{Requests: []dto.BatchExtractEntry{
				{Text: "- one"},
				{Text: "- two", Strategy: "llm"},
				{Text: "", Strategy: "heuristic"},
			}},
		},
		{
			name:      "empty batch",
			req:       dto.BatchExtractRequest{},
			wantField: "requests",
		},
		{
			name: "unknown strategy names its index",
			req: dto.BatchExtractRequest{Requests: []dto.BatchExtractEntry{
				{Text: "- one"},
				{Text: "- two", Strategy: "gpt"},
			}},
			wantField: "requests[1].strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestBatchExtractRequest_ToPort(t *testing.T) {
	t.Parallel()

	req := dto.BatchExtractRequest{Requests: []dto.BatchExtractEntry{
		{Text: "a", SaveNote: true},
		{Text: "b", Strategy: "llm"},
	}}

	got := req.ToPort()

	if len(got) != 2 {
		t.Fatalf("len(ToPort()) = %d, want 2", len(got))
	}
	if got[0].Text != "a" || !got[0].SaveNote || got[0].Strategy != "" {
		t.Errorf("ToPort()[0] = %+v", got[0])
	}
	if got[1].Text != "b" || got[1].Strategy != ports.StrategyLLM {
		t.Errorf("ToPort()[1] = %+v", got[1])
	}
}

func TestSetDoneRequest_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  dto.SetDoneRequest
		want bool
	}{
		{name: "omitted defaults to true", req: dto.SetDoneRequest{}, want: true},
		{name: "explicit true", req: dto.SetDoneRequest{Done: boolPtr(true)}, want: true},
		{name: "explicit false", req: dto.SetDoneRequest{Done: boolPtr(false)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.req.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}
