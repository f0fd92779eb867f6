// Package extraction turns free-form text (meeting notes, emails) into an
// ordered list of action item strings.
//
// Two strategies share the same output contract, a [Result]:
//
//	// Deterministic, line-oriented heuristics. Never fails.
//	items := extraction.ExtractHeuristic(text)
//
//	// Delegated to a language model behind a ModelClient.
//	llm := extraction.NewLLMExtractor(client, "llama3.1:8b", extraction.WithTimeout(30*time.Second))
//	items, err := llm.Extract(ctx, text)
//	if errors.Is(err, extraction.ErrModelUnavailable) {
//	    // caller decides: surface the error or fall back to ExtractHeuristic
//	}
//
// Every item in a Result is trimmed, non-empty, and free of leading bullet or
// checkbox markup. Order follows the source text (heuristic) or the model's
// answer (LLM). Duplicates are preserved.
//
// The package holds no state and performs no I/O other than the single
// ModelClient call made by LLMExtractor, so all functions are safe for
// concurrent use.
package extraction

// Result is the ordered list of action item texts produced by an extractor.
// Extractors return an empty, non-nil Result when nothing is found.
type Result []string
