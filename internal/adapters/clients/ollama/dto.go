package ollama

// chatMessage matches the Ollama chat message schema.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatOptions carries sampling parameters. Temperature is pinned to zero so
// repeated extractions of the same text agree as far as the model allows.
type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

// chatRequestDTO matches the POST /api/chat request body. Stream is always
// false; the extractor needs the whole answer before parsing.
type chatRequestDTO struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   any           `json:"format,omitempty"`
	Options  chatOptions   `json:"options"`
}

// chatResponseDTO matches the non-streaming POST /api/chat response body.
type chatResponseDTO struct {
	Model      string      `json:"model"`
	Message    chatMessage `json:"message"`
	Done       bool        `json:"done"`
	DoneReason string      `json:"done_reason,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// errorDTO is the body Ollama returns with non-2xx statuses.
type errorDTO struct {
	Error string `json:"error"`
}

// stringArraySchema is the JSON schema sent as "format" when structured
// output is enabled.
var stringArraySchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}
