package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/action-items/internal/app/fanout"
	"github.com/jsamuelsen11/action-items/internal/domain"
	"github.com/jsamuelsen11/action-items/internal/domain/actionitem"
	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
	"github.com/jsamuelsen11/action-items/internal/platform/logging"
	"github.com/jsamuelsen11/action-items/internal/platform/telemetry"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

// Compile-time check that ExtractionService implements ports.ExtractionService.
var _ ports.ExtractionService = (*ExtractionService)(nil)

const (
	// DefaultBatchWorkers bounds concurrent extractions in a batch.
	DefaultBatchWorkers = 4
	// MaxBatchSize is the largest batch ExtractBatch accepts.
	MaxBatchSize = 100
)

// Metric result labels.
const (
	resultSuccess  = "success"
	resultFallback = "fallback"
	resultError    = "error"
)

// errNoModel is reported when the LLM strategy is requested but no model is
// configured.
var errNoModel = errors.New("no model configured")

// LLM extracts action items through a language model. Implemented by
// *extraction.LLMExtractor.
type LLM interface {
	Extract(ctx context.Context, text string) (extraction.Result, error)
	Model() string
}

// ExtractionOption configures an ExtractionService.
type ExtractionOption func(*ExtractionService)

// WithLLM enables the LLM strategy.
func WithLLM(llm LLM) ExtractionOption {
	return func(s *ExtractionService) {
		s.llm = llm
	}
}

// WithDefaultStrategy sets the strategy used when a request names none.
// Invalid strategies are ignored.
func WithDefaultStrategy(strategy ports.Strategy) ExtractionOption {
	return func(s *ExtractionService) {
		if strategy.IsValid() {
			s.defaultStrategy = strategy
		}
	}
}

// WithHeuristicFallback makes the LLM strategy fall back to the heuristic
// when the model is unavailable, instead of returning the error.
func WithHeuristicFallback(enabled bool) ExtractionOption {
	return func(s *ExtractionService) {
		s.fallback = enabled
	}
}

// WithBatchWorkers bounds concurrent extractions in ExtractBatch.
// Non-positive values are ignored.
func WithBatchWorkers(n int) ExtractionOption {
	return func(s *ExtractionService) {
		if n > 0 {
			s.batchWorkers = n
		}
	}
}

// WithMetrics records extraction metrics. A nil value disables recording.
func WithMetrics(m *telemetry.Metrics) ExtractionOption {
	return func(s *ExtractionService) {
		s.metrics = m
	}
}

// ExtractionService implements ports.ExtractionService. It runs the
// requested extraction strategy and persists the text and items it yields in
// a single transaction.
type ExtractionService struct {
	notes ports.NoteRepository
	items ports.ActionItemRepository
	tx    ports.Transactor
	llm   LLM

	defaultStrategy ports.Strategy
	fallback        bool
	batchWorkers    int

	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewExtractionService creates an ExtractionService. Without WithLLM only the
// heuristic strategy succeeds. A nil logger discards output.
func NewExtractionService(
	notes ports.NoteRepository,
	items ports.ActionItemRepository,
	tx ports.Transactor,
	logger *slog.Logger,
	opts ...ExtractionOption,
) *ExtractionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ExtractionService{
		notes:           notes,
		items:           items,
		tx:              tx,
		defaultStrategy: ports.StrategyHeuristic,
		batchWorkers:    DefaultBatchWorkers,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract runs one extraction. Extraction happens before anything is written,
// so a model failure never leaves a saved note without its items.
func (s *ExtractionService) Extract(ctx context.Context, req ports.ExtractRequest) (*ports.ExtractResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, domain.NewValidationError("text", domain.MsgRequired)
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = s.defaultStrategy
	}
	if !strategy.IsValid() {
		return nil, domain.NewValidationError("strategy",
			fmt.Sprintf("must be %q or %q, got %q", ports.StrategyHeuristic, ports.StrategyLLM, strategy))
	}

	start := time.Now()
	texts, used, fellBack, err := s.run(ctx, strategy, text)
	if err != nil {
		s.metrics.RecordExtraction(ctx, string(strategy), resultError, 0, time.Since(start))
		s.logger.ErrorContext(ctx, "extraction failed",
			slog.String("operation", "Extract"),
			slog.String("strategy", string(strategy)),
			logging.TextStats("input", text),
			slog.Any("error", err),
		)
		return nil, err
	}

	result, err := s.persist(ctx, text, req.SaveNote, texts)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store extraction",
			slog.String("operation", "Extract"),
			slog.Bool("save_note", req.SaveNote),
			slog.Int("items", len(texts)),
			slog.Any("error", err),
		)
		return nil, err
	}
	result.Strategy = used
	result.Fallback = fellBack

	label := resultSuccess
	if fellBack {
		label = resultFallback
	}
	s.metrics.RecordExtraction(ctx, string(strategy), label, len(texts), time.Since(start))

	s.logger.InfoContext(ctx, "extracted action items",
		slog.String("strategy", string(used)),
		slog.Bool("fallback", fellBack),
		slog.Int("items", len(texts)),
	)
	return result, nil
}

// run executes strategy and reports the strategy that produced the items.
func (s *ExtractionService) run(
	ctx context.Context, strategy ports.Strategy, text string,
) (extraction.Result, ports.Strategy, bool, error) {
	if strategy == ports.StrategyHeuristic {
		return extraction.ExtractHeuristic(text), ports.StrategyHeuristic, false, nil
	}

	items, err := s.extractLLM(ctx, text)
	if err == nil {
		return items, ports.StrategyLLM, false, nil
	}
	if !s.fallback || !errors.Is(err, extraction.ErrModelUnavailable) || ctx.Err() != nil {
		return nil, ports.StrategyLLM, false, err
	}

	s.logger.WarnContext(ctx, "model unavailable, falling back to heuristic",
		slog.String("operation", "Extract"),
		slog.String("model", s.modelName()),
		slog.Any("error", err),
	)
	return extraction.ExtractHeuristic(text), ports.StrategyHeuristic, true, nil
}

func (s *ExtractionService) extractLLM(ctx context.Context, text string) (extraction.Result, error) {
	if s.llm == nil {
		return nil, &extraction.ModelUnavailableError{Err: errNoModel}
	}
	return s.llm.Extract(ctx, text)
}

func (s *ExtractionService) modelName() string {
	if s.llm == nil {
		return ""
	}
	return s.llm.Model()
}

// persist stores the optional note and the items atomically.
func (s *ExtractionService) persist(
	ctx context.Context, text string, saveNote bool, texts extraction.Result,
) (*ports.ExtractResult, error) {
	result := &ports.ExtractResult{}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if saveNote {
			n, err := s.notes.Create(ctx, text)
			if err != nil {
				return fmt.Errorf("saving note: %w", err)
			}
			result.NoteID = &n.ID
		}

		items, err := s.items.CreateMany(ctx, result.NoteID, texts)
		if err != nil {
			return fmt.Errorf("saving action items: %w", err)
		}
		result.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []actionitem.ActionItem{}
	}
	return result, nil
}

// ExtractBatch runs Extract for each request with bounded concurrency. Each
// request succeeds or fails on its own; the returned error covers only the
// batch as a whole.
func (s *ExtractionService) ExtractBatch(ctx context.Context, reqs []ports.ExtractRequest) (*ports.BatchExtractResult, error) {
	if len(reqs) == 0 {
		return nil, domain.NewValidationError("requests", "must not be empty")
	}
	if len(reqs) > MaxBatchSize {
		return nil, domain.NewValidationError("requests",
			fmt.Sprintf("must contain at most %d entries, got %d", MaxBatchSize, len(reqs)))
	}

	s.logger.InfoContext(ctx, "extracting batch",
		slog.Int("count", len(reqs)),
		slog.Int("workers", s.batchWorkers),
	)

	results := fanout.Run(ctx, s.batchWorkers, reqs, s.Extract)

	out := &ports.BatchExtractResult{
		Extracted: []ports.BatchExtractItem{},
		Errors:    []ports.BatchExtractError{},
	}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BatchExtractError{Index: i, Err: r.Err})
			continue
		}
		out.Extracted = append(out.Extracted, ports.BatchExtractItem{Index: i, Result: r.Value})
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "batch extraction partially failed",
			slog.String("operation", "ExtractBatch"),
			slog.Int("succeeded", len(out.Extracted)),
			slog.Int("failed", len(out.Errors)),
		)
	}
	return out, nil
}
