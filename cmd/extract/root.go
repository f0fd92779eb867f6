package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/action-items/internal/adapters/clients/ollama"
	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
	"github.com/jsamuelsen11/action-items/internal/platform/config"
	"github.com/jsamuelsen11/action-items/internal/platform/httpclient"
	"github.com/jsamuelsen11/action-items/internal/platform/logging"
)

const (
	defaultHost    = "http://localhost:11434"
	defaultModel   = "llama3.1:8b"
	defaultTimeout = 60 * time.Second
)

// options holds the parsed command-line flags.
type options struct {
	llm        bool
	host       string
	model      string
	timeout    time.Duration
	structured bool
	asJSON     bool
	verbose    bool
}

// output is the --json document.
type output struct {
	Strategy string   `json:"strategy"`
	Model    string   `json:"model,omitempty"`
	Items    []string `json:"items"`
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract action items from notes",
		Long: `extract reads free-form notes from a file or stdin and prints the action
items found in them, one per line.

By default the rule-based heuristic runs locally. With --llm the text is sent
to an Ollama server instead; if the model cannot be reached the command fails
with a non-zero exit code rather than printing an empty list.

Examples:
  # Heuristic extraction from a file
  extract notes.txt

  # From stdin, as JSON
  cat notes.txt | extract --json -

  # Through a local model
  extract --llm --model llama3.1:8b --timeout 30s notes.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, stdin, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.llm, "llm", false, "extract with a language model instead of the heuristic")
	flags.StringVar(&opts.host, "host", defaultHost, "Ollama base URL")
	flags.StringVar(&opts.model, "model", defaultModel, "model name")
	flags.DurationVar(&opts.timeout, "timeout", defaultTimeout, "bound on the model call")
	flags.BoolVar(&opts.structured, "structured", false, "ask the model for a JSON array via a response schema")
	flags.BoolVar(&opts.asJSON, "json", false, "print a JSON document instead of one item per line")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log extraction steps to stderr")

	return cmd
}

func run(ctx context.Context, opts *options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger := logging.New(level, "text", stderr)
	ctx = logging.WithLogger(ctx, logger)

	text, err := readInput(args, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	out := output{Strategy: "heuristic"}
	var items extraction.Result
	if opts.llm {
		out.Strategy = "llm"
		out.Model = opts.model
		items, err = newExtractor(opts, logger).Extract(ctx, text)
		if err != nil {
			if errors.Is(err, extraction.ErrModelUnavailable) {
				fmt.Fprintf(stderr, "error: %v\nIs Ollama running at %s?\n", err, opts.host)
			} else {
				fmt.Fprintf(stderr, "error: %v\n", err)
			}
			return err
		}
	} else {
		items = extraction.ExtractHeuristic(text)
	}

	out.Items = items
	if out.Items == nil {
		out.Items = []string{}
	}
	return write(stdout, out, opts.asJSON)
}

func newExtractor(opts *options, logger *slog.Logger) *extraction.LLMExtractor {
	cfg := &config.ModelConfig{
		BaseURL: opts.host,
		Name:    opts.model,
		Timeout: opts.timeout,
		Retry:   config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   1,
			Timeout:       opts.timeout,
			HalfOpenLimit: 1,
		},
	}
	client := ollama.New(httpclient.New(cfg, "ollama", nil, logger), logger,
		ollama.WithStructuredOutput(opts.structured))

	return extraction.NewLLMExtractor(client, opts.model,
		extraction.WithTimeout(opts.timeout),
		extraction.WithStateHook(func(s extraction.State) {
			logger.Debug("llm extraction state", slog.String("state", s.String()))
		}),
	)
}

// readInput reads the file named by args[0], or stdin when no file or "-"
// is given.
func readInput(args []string, stdin io.Reader) (string, error) {
	var (
		content []byte
		err     error
	)
	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
	}

	if strings.TrimSpace(string(content)) == "" {
		return "", errors.New("no text to extract from")
	}
	return string(content), nil
}

func write(w io.Writer, out output, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, item := range out.Items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
