// Package ollama is the outbound adapter for an Ollama server. It implements
// [extraction.ModelClient] over POST /api/chat, translating between the
// extraction package's [extraction.Prompt] and Ollama's chat schema.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry, OpenTelemetry tracing, and health checking for every call.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
	"github.com/jsamuelsen11/action-items/internal/platform/httpclient"
	"github.com/jsamuelsen11/action-items/internal/ports"
)

const chatPath = "/api/chat"

// Compile-time interface checks.
var (
	_ extraction.ModelClient = (*Client)(nil)
	_ ports.HealthChecker    = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithStructuredOutput sends a JSON schema for an array of strings as the
// request "format", so the model answers with a JSON array.
func WithStructuredOutput(enabled bool) Option {
	return func(c *Client) {
		c.structured = enabled
	}
}

// Client sends extraction prompts to an Ollama server.
type Client struct {
	http       *httpclient.Client
	logger     *slog.Logger
	structured bool
}

// New creates a Client that sends requests through client, whose base URL
// must point at the Ollama root (e.g. "http://localhost:11434"). A nil logger
// discards diagnostics.
func New(client *httpclient.Client, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{http: client, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate sends prompt to model and returns the assistant message content.
// The instruction becomes the system message and the text the user message.
// The response body is closed on every path.
func (c *Client) Generate(ctx context.Context, prompt extraction.Prompt, model string) (string, error) {
	reqDTO := toChatRequest(prompt, model, c.structured)

	body, err := json.Marshal(reqDTO)
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.http.URL(chatPath), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var respDTO chatResponseDTO
	if err := c.execute(req, &respDTO); err != nil {
		return "", err
	}
	return fromChatResponse(&respDTO)
}

// Name identifies the model endpoint in the health registry.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the endpoint's circuit breaker state. No network call
// is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

// execute sends req, translates non-2xx statuses, and decodes the body into
// out. httpclient.Do may return both a response and an error when retries
// are exhausted; the response is translated and closed in that case too.
func (c *Client) execute(req *http.Request, out *chatResponseDTO) error {
	ctx := req.Context()

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}
	if err != nil {
		if resp != nil && !isSuccess(resp.StatusCode) {
			return translateHTTPError(resp)
		}
		c.logger.WarnContext(ctx, "model request failed",
			slog.String("operation", "ollama.Generate"),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("POST %s: %w", chatPath, err)
	}

	if !isSuccess(resp.StatusCode) {
		translated := translateHTTPError(resp)
		c.logger.WarnContext(ctx, "unexpected model status",
			slog.String("operation", "ollama.Generate"),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translated),
		)
		return translated
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding chat response: %w", err)
	}
	return nil
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func toChatRequest(prompt extraction.Prompt, model string, structured bool) chatRequestDTO {
	messages := make([]chatMessage, 0, 2)
	if prompt.Instruction != "" {
		messages = append(messages, chatMessage{Role: "system", Content: prompt.Instruction})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt.Text})

	req := chatRequestDTO{
		Model:    model,
		Messages: messages,
		Stream:   false,
		Options:  chatOptions{Temperature: 0},
	}
	if structured {
		req.Format = stringArraySchema
	}
	return req
}

// errIncomplete is returned when the server ends a non-streaming answer
// without marking it done.
var errIncomplete = errors.New("ollama: response not marked done")

func fromChatResponse(dto *chatResponseDTO) (string, error) {
	if dto.Error != "" {
		return "", fmt.Errorf("ollama: %s", dto.Error)
	}
	if !dto.Done {
		return "", errIncomplete
	}
	return dto.Message.Content, nil
}
