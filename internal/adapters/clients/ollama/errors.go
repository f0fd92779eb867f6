package ollama

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/action-items/internal/domain"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 64 << 10

// maxExcerpt bounds the body excerpt carried in error messages.
const maxExcerpt = 200

// translateHTTPError maps a non-2xx Ollama response to a domain error. The
// detail is the "error" field when the body is JSON, otherwise an excerpt of
// the raw body.
//
//	404 (model not pulled)        -> domain.ErrNotFound
//	400                           -> domain.ErrValidation
//	429, 5xx                      -> domain.ErrUnavailable
func translateHTTPError(resp *http.Response) error {
	detail := errorDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("ollama: %s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("ollama: %s: %w", detail, domain.ErrValidation)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("ollama: status %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("ollama: unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func errorDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return ""
	}

	var e errorDTO
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return excerpt(strings.TrimSpace(string(body)))
}

// excerpt shortens s to maxExcerpt bytes at a rune boundary.
func excerpt(s string) string {
	if len(s) <= maxExcerpt {
		return s
	}
	cut := maxExcerpt
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
