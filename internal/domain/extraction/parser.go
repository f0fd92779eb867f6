package extraction

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"github.com/kaptinlin/jsonrepair"
)

var (
	fencePattern    = regexp.MustCompile("^(?:```|~~~)")
	headingPattern  = regexp.MustCompile(`^#{1,6}(?:\s|$)`)
	preamblePattern = regexp.MustCompile(`(?i)^(?:sure|certainly|okay|ok|of course|here is|here are|here's)\b`)
)

// nothingFound lists the replies a model gives when the text has no tasks.
// Compared lower-cased with a trailing period removed.
var nothingFound = map[string]struct{}{
	"none":                       {},
	"n/a":                        {},
	"no action items":            {},
	"no action items found":      {},
	"no action items were found": {},
}

// maxHeaderWords bounds how long a colon-terminated line may be and still be
// treated as a section header rather than a task.
const maxHeaderWords = 6

// Keys probed, in order, when the model answers with JSON objects instead of
// plain strings.
var (
	jsonListKeys = []string{"action_items", "items", "tasks"}
	jsonItemKeys = []string{"task", "text", "title", "action", "description"}
)

// ParseResponse recovers an ordered list of action items from a model's raw
// answer. It accepts numbered, bulleted, and checkbox lists, plain lines, JSON
// arrays (fenced or slightly malformed), and a single prose sentence. Lines
// that are formatting artifacts are dropped. ParseResponse never panics; the
// worst case is an empty Result.
func ParseResponse(raw string) Result {
	body := strings.TrimSpace(raw)
	if body == "" {
		return Result{}
	}

	if items, ok := parseJSON(body); ok {
		return items
	}

	items := Result{}
	for _, line := range splitLines(body) {
		if text, ok := cleanLine(line); ok {
			items = append(items, text)
		}
	}

	if len(items) == 0 && !strings.ContainsAny(body, "\r\n") {
		text := stripMarkup(body)
		if text != "" && !isArtifact(text) && !isHeader(text) {
			items = append(items, text)
		}
	}
	return items
}

func cleanLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isArtifact(trimmed) {
		return "", false
	}

	text := stripMarkup(trimmed)
	listed := text != trimmed
	text = stripMarkup(strings.ReplaceAll(text, "**", ""))

	switch {
	case text == "", isArtifact(text), isHeader(text):
		return "", false
	case !listed && preamblePattern.MatchString(text):
		return "", false
	}
	return text, true
}

// isArtifact reports whether s is formatting noise that never holds a task.
func isArtifact(s string) bool {
	if fencePattern.MatchString(s) || headingPattern.MatchString(s) || !hasAlnum(s) {
		return true
	}
	_, ok := nothingFound[strings.TrimSuffix(strings.ToLower(s), ".")]
	return ok
}

func isHeader(s string) bool {
	return strings.HasSuffix(s, ":") && len(strings.Fields(s)) <= maxHeaderWords
}

func hasAlnum(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// parseJSON handles answers that are a JSON array of strings or objects, or
// an object wrapping such an array. The second result is false when body is
// not JSON, in which case the line pass takes over.
func parseJSON(body string) (Result, bool) {
	payload := jsonPayload(body)
	if payload == "" {
		return nil, false
	}

	var decoded any
	repaired := false
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		fixed, ok := repairJSON(payload)
		if !ok || json.Unmarshal([]byte(fixed), &decoded) != nil {
			return nil, false
		}
		repaired = true
	}

	values, ok := jsonList(decoded)
	if !ok {
		return nil, false
	}

	items := Result{}
	for _, v := range values {
		text := stripMarkup(jsonItemText(v))
		if text != "" && !isArtifact(text) {
			items = append(items, text)
		}
	}
	// A repair that produced nothing usable is not trusted over the line pass.
	if repaired && len(items) == 0 {
		return nil, false
	}
	return items, true
}

// jsonPayload returns the JSON candidate inside body: the first fenced block
// if there is one, otherwise body itself. It returns "" when the candidate
// does not look like JSON or is a checkbox list.
func jsonPayload(body string) string {
	if start := strings.Index(body, "```"); start >= 0 {
		inner := body[start+3:]
		nl := strings.IndexByte(inner, '\n')
		if nl < 0 {
			return ""
		}
		inner = inner[nl+1:]
		if end := strings.Index(inner, "```"); end >= 0 {
			inner = inner[:end]
		}
		body = strings.TrimSpace(inner)
	}
	if body == "" || (body[0] != '[' && body[0] != '{') {
		return ""
	}
	if checkboxPattern.MatchString(body) {
		return ""
	}
	return body
}

// repairJSON runs jsonrepair on input that at least contains a quoted string.
// The repair library is guarded so that a panic on hostile input degrades to
// "not JSON".
func repairJSON(payload string) (fixed string, ok bool) {
	if !strings.Contains(payload, `"`) {
		return "", false
	}
	defer func() {
		if recover() != nil {
			fixed, ok = "", false
		}
	}()

	out, err := jsonrepair.JSONRepair(payload)
	if err != nil {
		return "", false
	}
	return out, true
}

func jsonList(decoded any) ([]any, bool) {
	switch v := decoded.(type) {
	case []any:
		return v, true
	case map[string]any:
		for _, key := range jsonListKeys {
			if list, ok := v[key].([]any); ok {
				return list, true
			}
		}
	}
	return nil, false
}

func jsonItemText(v any) string {
	switch item := v.(type) {
	case string:
		return item
	case map[string]any:
		for _, key := range jsonItemKeys {
			if s, ok := item[key].(string); ok {
				return s
			}
		}
	}
	return ""
}
