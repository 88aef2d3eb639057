package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
)

// HealthHandler serves liveness, readiness and version endpoints.
type HealthHandler struct {
	service   *services.HealthService
	version   string
	buildTime string
	logger    *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service *services.HealthService, version, buildTime string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service:   service,
		version:   version,
		buildTime: buildTime,
		logger:    logger.With(slog.String("handler", "health")),
	}
}

// HealthCheck handles GET /api/health
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Status(r.Context()))
}

// ReadinessCheck handles GET /api/health/ready. Ready means a snapshot
// exists and analytics requests can be served.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status(r.Context())
	if !status.SnapshotReady {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]interface{}{
			"ready":  false,
			"status": status.Status,
		})
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"ready":        true,
		"snapshot_id":  status.SnapshotID,
		"refreshed_at": status.RefreshedAt,
	})
}

// LivenessCheck handles GET /api/health/live
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"alive": true,
	})
}

// Version handles GET /api/version
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"version":    h.version,
		"build_time": h.buildTime,
	})
}
