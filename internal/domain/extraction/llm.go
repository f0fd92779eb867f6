package extraction

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/action-items/internal/domain"
)

// DefaultTimeout bounds a single model call when no WithTimeout option is
// given.
const DefaultTimeout = 60 * time.Second

// ErrModelUnavailable is matched by every error returned from
// LLMExtractor.Extract. It wraps domain.ErrUnavailable.
var ErrModelUnavailable = fmt.Errorf("model unavailable: %w", domain.ErrUnavailable)

// ModelUnavailableError carries the model name and the client failure that
// moved the extractor to StateFailed.
type ModelUnavailableError struct {
	Model string
	Err   error
}

// Error implements the error interface.
func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model %q unavailable: %v", e.Model, e.Err)
}

// Unwrap exposes both ErrModelUnavailable and the underlying client error.
func (e *ModelUnavailableError) Unwrap() []error {
	return []error{ErrModelUnavailable, e.Err}
}

// ModelClient sends a prompt to a language model and returns its raw text
// answer. Implementations must honor ctx cancellation and release any
// connection before returning.
type ModelClient interface {
	Generate(ctx context.Context, prompt Prompt, model string) (string, error)
}

// State is a step of an LLM extraction.
type State int

// Extraction states. StateFailed is reachable only from StateCallModel.
const (
	StateBuildPrompt State = iota
	StateCallModel
	StateParseResponse
	StateDone
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateBuildPrompt:
		return "build_prompt"
	case StateCallModel:
		return "call_model"
	case StateParseResponse:
		return "parse_response"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Option configures an LLMExtractor.
type Option func(*LLMExtractor)

// WithTimeout bounds the model call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(e *LLMExtractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithMaxInputBytes truncates input longer than n bytes, at a rune boundary,
// before the prompt is built. Zero disables truncation.
func WithMaxInputBytes(n int) Option {
	return func(e *LLMExtractor) {
		if n >= 0 {
			e.maxInputBytes = n
		}
	}
}

// WithStateHook registers fn to observe every state transition. fn runs
// synchronously on the calling goroutine.
func WithStateHook(fn func(State)) Option {
	return func(e *LLMExtractor) {
		e.onState = fn
	}
}

// LLMExtractor extracts action items by delegating to a language model. It
// holds only immutable configuration and is safe for concurrent use.
type LLMExtractor struct {
	client        ModelClient
	model         string
	timeout       time.Duration
	maxInputBytes int
	onState       func(State)
}

// NewLLMExtractor returns an extractor that calls model through client.
func NewLLMExtractor(client ModelClient, model string, opts ...Option) *LLMExtractor {
	e := &LLMExtractor{
		client:  client,
		model:   model,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the configured model name.
func (e *LLMExtractor) Model() string {
	return e.model
}

// Extract runs one BUILD_PROMPT, CALL_MODEL, PARSE_RESPONSE pass. The model is
// called exactly once; any client failure, including the timeout expiring or
// ctx being canceled, returns a *ModelUnavailableError and never an empty
// success. Empty text still produces a prompt and a model call.
func (e *LLMExtractor) Extract(ctx context.Context, text string) (Result, error) {
	e.transition(StateBuildPrompt)
	prompt := BuildPrompt(truncate(text, e.maxInputBytes))

	e.transition(StateCallModel)
	raw, err := e.call(ctx, prompt)
	if err != nil {
		e.transition(StateFailed)
		return nil, &ModelUnavailableError{Model: e.model, Err: err}
	}

	e.transition(StateParseResponse)
	items := ParseResponse(raw)

	e.transition(StateDone)
	return items, nil
}

func (e *LLMExtractor) call(ctx context.Context, prompt Prompt) (string, error) {
	if e.client == nil {
		return "", errors.New("no model client configured")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.Generate(ctx, prompt, e.model)
	if err != nil {
		return "", err
	}
	// A client that ignores cancellation must not turn a timeout into success.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	return raw, nil
}

func (e *LLMExtractor) transition(s State) {
	if e.onState != nil {
		e.onState(s)
	}
}

// ExtractLLM is a one-shot helper equivalent to
// NewLLMExtractor(client, model).Extract(ctx, text).
func ExtractLLM(ctx context.Context, text string, client ModelClient, model string) (Result, error) {
	return NewLLMExtractor(client, model).Extract(ctx, text)
}

func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
