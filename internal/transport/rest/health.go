package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type queueCounter interface {
	Stats(ctx context.Context) (domain.ReviewStats, error)
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	queue   queueCounter
	version string
}

// NewHealthHandler creates a HealthHandler. queue may be nil, in which case
// /health reports the database only.
func NewHealthHandler(db dbPinger, queue queueCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, queue: queue, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus describes one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	// Pending is the number of lessons waiting for review.
	Pending *int `json:"pending,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports database latency, the review backlog and the build version.
// Only the database decides the overall status; a failing backlog query is
// reported as degraded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "down"
		resp.Components["database"] = CompStatus{Status: "down"}
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	if h.queue != nil && resp.Status == "ok" {
		if stats, err := h.queue.Stats(ctx); err != nil {
			resp.Components["review_queue"] = CompStatus{Status: "degraded"}
		} else {
			resp.Components["review_queue"] = CompStatus{Status: "ok", Pending: &stats.Pending}
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}
