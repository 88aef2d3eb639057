package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "github.com/Johan-Arul/skylark-ai-agent/internal/errors"
	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
)

// SnapshotHandler exposes the current snapshot and its data quality
// report.
type SnapshotHandler struct {
	service      *services.AnalyticsService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(service *services.AnalyticsService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *SnapshotHandler {
	return &SnapshotHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "snapshot")),
		errorHandler: errorHandler,
	}
}

// Routes returns the snapshot routes.
func (h *SnapshotHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.Summary)
	r.Get("/deals", h.Deals)
	r.Get("/work-orders", h.WorkOrders)
	r.Get("/caveats", h.Caveats)

	return r
}

// Summary handles GET /api/snapshot
func (h *SnapshotHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	deals, workOrders := snapshot.Counts()
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"snapshot_id":  snapshot.ID,
			"refreshed_at": snapshot.RefreshedAt,
			"deals":        deals,
			"work_orders":  workOrders,
		},
	})
}

// Deals handles GET /api/snapshot/deals
func (h *SnapshotHandler) Deals(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   snapshot.Deals,
		"count":  len(snapshot.Deals),
	})
}

// WorkOrders handles GET /api/snapshot/work-orders
func (h *SnapshotHandler) WorkOrders(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   snapshot.WorkOrders,
		"count":  len(snapshot.WorkOrders),
	})
}

// Caveats handles GET /api/snapshot/caveats
func (h *SnapshotHandler) Caveats(w http.ResponseWriter, r *http.Request) {
	caveats, err := h.service.Caveats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   caveats,
	})
}

func (h *SnapshotHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrNoSnapshot) {
		h.errorHandler.HandleError(w, r, apierrors.ErrSnapshotNotReady)
		return
	}
	h.errorHandler.HandleError(w, r, err)
}
