package api

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marciopitersena/clinca-neuro/internal/ai"
)

type HealthHandler struct {
	redis   *redis.Client // nil when caching is disabled
	ai      *ai.Client
	env     string
	version string
}

func NewHealthHandler(rdb *redis.Client, aiClient *ai.Client, env, version string) *HealthHandler {
	return &HealthHandler{
		redis:   rdb,
		ai:      aiClient,
		env:     env,
		version: version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Env          string            `json:"env,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness reports the optional collaborators. Neither failing makes the
// service unready: the dataset is in memory and every AI failure degrades to
// a fallback string, so the worst overall status is "degraded".
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)
	status := "ok"

	if h.redis == nil {
		deps["redis"] = "off"
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		err := h.redis.Ping(ctx).Err()
		cancel()
		if err != nil {
			deps["redis"] = "down"
			status = "degraded"
		} else {
			deps["redis"] = "ok"
		}
	}

	if h.ai != nil && h.ai.Configured() {
		deps["ai"] = "configured"
	} else {
		deps["ai"] = "unconfigured"
		status = "degraded"
	}

	resp := ReadinessResponse{
		Status:       status,
		Version:      h.version,
		Env:          h.env,
		Dependencies: deps,
	}

	writeJSON(w, http.StatusOK, resp)
}
