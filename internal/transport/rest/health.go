package rest

import (
	"context"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

// Check is a named dependency probe run by the readiness and health endpoints.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// PingCheck adapts anything with a Ping method, such as a connection pool.
func PingCheck(name string, p interface{ Ping(ctx context.Context) error }) Check {
	return Check{Name: name, Ping: p.Ping}
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	version string
	checks  []Check
	now     func() time.Time
}

func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{version: version, checks: checks, now: time.Now}
}

// HealthResponse is the body of every probe endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of one Check.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports that the process is serving. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready returns 503 when any check fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.run(r.Context())
	status, code := overall(ok)
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health is Ready plus the version and per-check status with latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.run(r.Context())
	status, code := overall(ok)
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// run executes every check sequentially, each under its own timeout.
func (h *HealthHandler) run(ctx context.Context) (map[string]CompStatus, bool) {
	components := make(map[string]CompStatus, len(h.checks))
	ok := true
	for _, c := range h.checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		start := time.Now()
		err := c.Ping(checkCtx)
		latency := time.Since(start)
		cancel()

		if err != nil {
			components[c.Name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
	}
	return components, ok
}

func overall(ok bool) (string, int) {
	if ok {
		return "ok", http.StatusOK
	}
	return "down", http.StatusServiceUnavailable
}
