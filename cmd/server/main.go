// Package main is the entry point for the action item service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/action-items/internal/adapters/clients/ollama"
	adapthttp "github.com/jsamuelsen11/action-items/internal/adapters/http"
	"github.com/jsamuelsen11/action-items/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/action-items/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/action-items/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/action-items/internal/app"
	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
	"github.com/jsamuelsen11/action-items/internal/platform/config"
	"github.com/jsamuelsen11/action-items/internal/platform/health"
	"github.com/jsamuelsen11/action-items/internal/platform/httpclient"
	"github.com/jsamuelsen11/action-items/internal/platform/logging"
	"github.com/jsamuelsen11/action-items/internal/platform/telemetry"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	store, err := sqlite.Open(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("storage close error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(do.MustInvoke[*ollama.Client](injector))

	logger.Info("extraction configured",
		slog.String("default_strategy", cfg.Extraction.DefaultStrategy),
		slog.Bool("fallback_to_heuristic", cfg.Extraction.FallbackToHeuristic),
		slog.String("model", cfg.Model.Name),
		slog.String("model_url", cfg.Model.BaseURL),
		slog.String("storage_path", cfg.Storage.Path),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests before the store closes.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func flushTelemetry(otel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Model, "ollama", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*ollama.Client, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return ollama.New(client, logger, ollama.WithStructuredOutput(cfg.Model.StructuredOutput)), nil
	})

	do.Provide(injector, func(i do.Injector) (app.LLM, error) {
		client := do.MustInvoke[*ollama.Client](i)
		return extraction.NewLLMExtractor(client, cfg.Model.Name,
			extraction.WithTimeout(cfg.Model.Timeout),
			extraction.WithMaxInputBytes(cfg.Model.MaxInputBytes),
			extraction.WithStateHook(func(s extraction.State) {
				logger.Debug("llm extraction state", slog.String("state", s.String()))
			}),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NoteRepository, error) {
		return sqlite.NewNoteRepository(do.MustInvoke[*sqlite.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActionItemRepository, error) {
		return sqlite.NewActionItemRepository(do.MustInvoke[*sqlite.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NoteService, error) {
		notes := do.MustInvoke[ports.NoteRepository](i)
		return app.NewNoteService(notes, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActionItemService, error) {
		items := do.MustInvoke[ports.ActionItemRepository](i)
		return app.NewActionItemService(items, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExtractionService, error) {
		notes := do.MustInvoke[ports.NoteRepository](i)
		items := do.MustInvoke[ports.ActionItemRepository](i)
		store := do.MustInvoke[*sqlite.Store](i)
		llm := do.MustInvoke[app.LLM](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewExtractionService(notes, items, store, logger,
			app.WithLLM(llm),
			app.WithDefaultStrategy(ports.Strategy(cfg.Extraction.DefaultStrategy)),
			app.WithHeuristicFallback(cfg.Extraction.FallbackToHeuristic),
			app.WithBatchWorkers(cfg.Extraction.BatchWorkers),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.NoteHandler, error) {
		return handlers.NewNoteHandler(do.MustInvoke[ports.NoteService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActionItemHandler, error) {
		items := do.MustInvoke[ports.ActionItemService](i)
		extractor := do.MustInvoke[ports.ExtractionService](i)
		return handlers.NewActionItemHandler(items, extractor), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		client := do.MustInvoke[*ollama.Client](i)

		// The model is only required when every default request depends on it.
		var optional []string
		if ports.Strategy(cfg.Extraction.DefaultStrategy) != ports.StrategyLLM || cfg.Extraction.FallbackToHeuristic {
			optional = append(optional, client.Name())
		}
		return handlers.NewHealthHandler(registry, optional...), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Notes:       do.MustInvoke[*handlers.NoteHandler](i),
			ActionItems: do.MustInvoke[*handlers.ActionItemHandler](i),
			Health:      do.MustInvoke[*handlers.HealthHandler](i),
		},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
