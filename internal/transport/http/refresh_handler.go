package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "github.com/Johan-Arul/skylark-ai-agent/internal/errors"
	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
)

// RefreshHandler triggers snapshot rebuilds from the source boards.
type RefreshHandler struct {
	service      *services.RefreshService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(service *services.RefreshService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *RefreshHandler {
	return &RefreshHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "refresh")),
		errorHandler: errorHandler,
	}
}

// Routes returns the refresh routes.
func (h *RefreshHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.Trigger)

	return r
}

// Trigger handles POST /api/refresh. The refresh runs synchronously;
// websocket subscribers get progress events while it runs.
func (h *RefreshHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	h.logger.InfoContext(r.Context(), "refresh requested",
		slog.String("request_id", reqID),
		slog.String("remote_addr", r.RemoteAddr),
	)

	snapshot, err := h.service.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrRefreshInProgress) {
			h.errorHandler.HandleError(w, r, apierrors.ErrRefreshInProgress)
			return
		}
		h.errorHandler.HandleError(w, r, err)
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
