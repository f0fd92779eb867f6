package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/action-items/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-items/internal/domain"
)

const (
	msgInvalidInteger = "must be a positive integer"
	msgInvalidJSON    = "invalid JSON"
	msgBodyRequired   = "is required"
)

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	return parsePositiveInt64(chi.URLParam(r, param), param)
}

// parseOptionalInt64Query returns nil when the query parameter is absent.
func parseOptionalInt64Query(r *http.Request, param string) (*int64, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, nil
	}
	v, err := parsePositiveInt64(raw, param)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parsePositiveInt64 rejects zero and negatives: SQLite row ids start at 1.
func parsePositiveInt64(raw, field string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, domain.NewValidationError(field, msgInvalidInteger)
	}
	return v, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes caps a JSON request body at 1 MiB; notes beyond that are
// rejected with 413 rather than silently truncated.
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes exactly one JSON value from the request body into
// dst. On failure it writes a problem response (400, or 413 for an oversized
// body) and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, false)
}

// decodeOptionalJSONBody is decodeJSONBody for endpoints where an empty body
// means defaults. Emptiness is detected at EOF, so chunked requests with no
// Content-Length are handled the same as Content-Length: 0.
func decodeOptionalJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	if r.Body == nil {
		r.Body = http.NoBody
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("trailing data after JSON value")
	}
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		dto.WriteProblem(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	case errors.Is(err, io.EOF):
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msgBodyRequired))
	default:
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msgInvalidJSON))
	}
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
