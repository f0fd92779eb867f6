package ports

import (
	"slices"
	"testing"

	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
)

func TestStrategy_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		strategy Strategy
		want     bool
	}{
		{StrategyHeuristic, true},
		{StrategyLLM, true},
		{"", false},
		{"LLM", false},
		{"regex", false},
	}

	for _, tt := range tests {
		if got := tt.strategy.IsValid(); got != tt.want {
			t.Errorf("Strategy(%q).IsValid() = %v, want %v", tt.strategy, got, tt.want)
		}
	}
}

func TestExtractResult_Texts(t *testing.T) {
	t.Parallel()

	r := &ExtractResult{Items: []actionitem.ActionItem{{Text: "a"}, {Text: "b"}}}
	if got := r.Texts(); !slices.Equal(got, extraction.Result{"a", "b"}) {
		t.Errorf("Texts() = %q, want [a b]", got)
	}

	empty := &ExtractResult{}
	if got := empty.Texts(); got == nil || len(got) != 0 {
		t.Errorf("Texts() = %#v, want empty non-nil", got)
	}
}
