package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "github.com/Johan-Arul/skylark-ai-agent/internal/errors"
	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// AnalyticsHandler serves rollup endpoints with RFC 7807 error responses.
type AnalyticsHandler struct {
	service      *services.AnalyticsService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service *services.AnalyticsService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "analytics")),
		errorHandler: errorHandler,
	}
}

// Routes returns the analytics routes.
func (h *AnalyticsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/revenue", h.Revenue)
	r.Get("/pipeline", h.Pipeline)
	r.Get("/operations", h.Operations)
	r.Get("/crossboard", h.CrossBoard)
	r.Get("/leadership", h.Leadership)

	return r
}

// Revenue handles GET /api/analytics/revenue?period=ytd
func (h *AnalyticsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	period, ok := h.periodParam(w, r)
	if !ok {
		return
	}

	revenue, err := h.service.Revenue(r.Context(), period)
	if err != nil {
		h.handleServiceError(w, r, "revenue", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   revenue,
	})
}

// Pipeline handles GET /api/analytics/pipeline?period=this_quarter
func (h *AnalyticsHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	period, ok := h.periodParam(w, r)
	if !ok {
		return
	}

	pipeline, err := h.service.Pipeline(r.Context(), period)
	if err != nil {
		h.handleServiceError(w, r, "pipeline", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   pipeline,
	})
}

// Operations handles GET /api/analytics/operations
func (h *AnalyticsHandler) Operations(w http.ResponseWriter, r *http.Request) {
	ops, err := h.service.Operations(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "operations", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   ops,
	})
}

// CrossBoard handles GET /api/analytics/crossboard
func (h *AnalyticsHandler) CrossBoard(w http.ResponseWriter, r *http.Request) {
	cross, err := h.service.CrossBoard(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "crossboard", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   cross,
	})
}

// Leadership handles GET /api/analytics/leadership
func (h *AnalyticsHandler) Leadership(w http.ResponseWriter, r *http.Request) {
	update, err := h.service.Leadership(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "leadership", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   update,
	})
}

// periodParam parses the optional ?period= query parameter. An empty
// value means no date filter. A false return means the response has
// already been written.
func (h *AnalyticsHandler) periodParam(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	raw := r.URL.Query().Get("period")
	period := domain.Period(raw)
	switch period {
	case domain.PeriodAll, domain.PeriodThisMonth, domain.PeriodThisQuarter, domain.PeriodYTD:
		return period, true
	}

	h.errorHandler.HandleError(w, r, apierrors.ErrValidation("period",
		fmt.Sprintf("unknown period %q; use this_month, this_quarter or ytd", raw)))
	return "", false
}

func (h *AnalyticsHandler) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.WarnContext(r.Context(), "analytics request failed",
		slog.String("operation", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("error", err.Error()),
	)

	if errors.Is(err, services.ErrNoSnapshot) {
		h.errorHandler.HandleError(w, r, apierrors.ErrSnapshotNotReady)
		return
	}
	h.errorHandler.HandleError(w, r, err)
}
