package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Probe checks one optional dependency. A nil probe means the dependency is
// not configured and is reported as skipped.
type Probe func(ctx context.Context, timeout time.Duration) error

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	DB           Probe
	Redis        Probe
	DBTimeout    time.Duration
	RedisTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the configured dependency probes.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	healthy := true

	status := map[string]string{
		"db":    "skipped",
		"redis": "skipped",
	}
	if h.DB != nil {
		status["db"] = "ok"
		if err := h.DB(ctx, h.dbTimeout()); err != nil {
			status["db"] = err.Error()
			healthy = false
		}
	}
	if h.Redis != nil {
		status["redis"] = "ok"
		if err := h.Redis(ctx, h.redisTimeout()); err != nil {
			status["redis"] = err.Error()
			healthy = false
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) dbTimeout() time.Duration {
	if h.DBTimeout <= 0 {
		return 500 * time.Millisecond
	}
	return h.DBTimeout
}

func (h Handler) redisTimeout() time.Duration {
	if h.RedisTimeout <= 0 {
		return 300 * time.Millisecond
	}
	return h.RedisTimeout
}
