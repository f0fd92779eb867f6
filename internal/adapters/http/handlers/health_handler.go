package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/action-items/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// readinessResponse is the body of GET /health/ready. Checks maps each
// component name to "ok" or its failure message.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]bool
}

// NewHealthHandler creates a HealthHandler over registry. Components named
// in optional degrade readiness instead of failing it: the service keeps
// taking traffic because heuristic extraction does not need them.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, optional: make(map[string]bool, len(optional))}
	for _, name := range optional {
		h.optional[name] = true
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. A failing required component answers
// 503 not_ready; failing optional components alone answer 200 degraded.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		switch {
		case !h.optional[name]:
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		case resp.Status == statusReady:
			resp.Status = statusDegraded
		}
	}

	writeJSON(w, code, resp)
}
