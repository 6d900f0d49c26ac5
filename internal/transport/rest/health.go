package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// pingTimeout caps how long a readiness or health probe may block on the
// database; sync clients poll these endpoints and need a fast answer.
const pingTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

// dbPinger is satisfied by *pgxpool.Pool.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers the liveness, readiness, and full health probes.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler reporting the given build version.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the wire shape of every probe answer. Version and
// Components appear only on the full health check.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus reports one dependency of the full health check.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports process liveness only; it never touches the database, so a
// broken dependency cannot get the process restarted.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready reports whether the service can take traffic: 200 when the database
// answers a ping within the timeout, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, up := h.pingDatabase(r.Context())

	status, code := statusOK, http.StatusOK
	if !up {
		status, code = statusDown, http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the operator-facing probe: per-dependency status with measured
// latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db, up := h.pingDatabase(r.Context())

	status, code := statusOK, http.StatusOK
	if !up {
		status, code = statusDown, http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now(),
	})
}

// pingDatabase checks the database within pingTimeout and reports its
// component status along with whether it is reachable.
func (h *HealthHandler) pingDatabase(ctx context.Context) (CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}, false
	}

	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
