package logging

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/masq"
)

// Meeting notes routinely hold names, customer details, and personnel
// matters. Note text reaches logs only as TextStats; the redactor below
// catches attributes that carry it anyway.

// noteContentFields name attributes whose value is raw note text, a prompt
// built from it, or a model answer about it.
var noteContentFields = []string{
	"note_content",
	"input_text",
	"prompt",
	"model_response",
	"item_text",
}

// noteContentPrefixes cover variants such as "prompt_user" or "note_text_raw".
var noteContentPrefixes = []string{"prompt_", "note_text"}

// SensitiveHeaders is the set of HTTP header names (lowercase) redacted both
// here and by the HTTP middleware's RedactHeaders.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// emailPattern matches addresses copied out of notes into error strings.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// bearerPattern matches "Bearer <token>", for instance from a proxied model
// endpoint that requires auth.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// apiKeyInlinePattern matches "api_key=<value>" or "apikey:<value>".
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// newNotePrivacyRedactor returns the slog ReplaceAttr hook installed by New.
func newNotePrivacyRedactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(noteContentFields)+len(noteContentPrefixes)+len(SensitiveHeaders)+4)

	for _, name := range noteContentFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range noteContentPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithRegex(emailPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}

// TextStats describes free-form text by size only, as a group attribute:
// {"bytes": 812, "runes": 790, "lines": 14}.
func TextStats(key, text string) slog.Attr {
	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n") + 1
	}
	return slog.Group(key,
		slog.Int("bytes", len(text)),
		slog.Int("runes", utf8.RuneCountInString(text)),
		slog.Int("lines", lines),
	)
}
