package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Johan-Arul/skylark-ai-agent/internal/config"
	"github.com/Johan-Arul/skylark-ai-agent/internal/errors"
	"github.com/Johan-Arul/skylark-ai-agent/internal/infrastructure"
	customMiddleware "github.com/Johan-Arul/skylark-ai-agent/internal/middleware"
	"github.com/Johan-Arul/skylark-ai-agent/internal/monday"
	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
	handlers "github.com/Johan-Arul/skylark-ai-agent/internal/transport/http"
	ws "github.com/Johan-Arul/skylark-ai-agent/internal/websocket"
)

const (
	// Version identifies this build in health and version responses.
	Version = "1.2.0"
	AppName = "Skylark Board Analytics"
)

// BuildTime is set at compile time via -ldflags.
var BuildTime = time.Now().Format(time.RFC3339)

// Application wires configuration, services, the websocket hub and the
// HTTP server together.
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	Router *chi.Mux
	Server *http.Server

	Store        *services.SnapshotStore
	Refresh      *services.RefreshService
	Analytics    *services.AnalyticsService
	Health       *services.HealthService
	WebSocketHub *ws.Hub
	Metrics      *infrastructure.Metrics
}

// NewApplication creates a new application instance with dependency injection.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	app := &Application{
		Config: cfg,
		Logger: logger,
	}

	app.initializeServices()
	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices builds the service graph bottom-up: board client,
// snapshot store, hub, then the services that depend on them.
func (a *Application) initializeServices() {
	a.Metrics = infrastructure.NewMetrics()
	a.Store = services.NewSnapshotStore()

	hub := ws.NewHub(a.Logger)
	hub.Start()
	a.WebSocketHub = hub

	client := monday.NewClient(a.Config.Monday.APIToken, a.Logger,
		monday.WithPageSize(a.Config.Monday.PageSize),
		monday.WithHTTPClient(&http.Client{Timeout: a.Config.Monday.RequestTimeout}),
	)

	a.Refresh = services.NewRefreshService(
		client,
		a.Store,
		a.Config.Monday.DealsBoardID,
		a.Config.Monday.WorkOrdersBoardID,
		a.Config.Refresh.Timeout,
		hub,
		a.Metrics,
		a.Logger,
	)
	a.Analytics = services.NewAnalyticsService(a.Store, a.Logger)
	a.Health = services.NewHealthService(a.Store, a.Logger)
}

// setupRouter configures the HTTP router with all routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	// Minimal middleware that is safe for the websocket upgrade
	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	// WebSocket route stays outside the full middleware group; wrapped
	// ResponseWriters break the upgrade.
	r.HandleFunc("/ws", a.handleWebSocket)

	// Prometheus scrape endpoint, also outside the group
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.Logger))
		r.Use(customMiddleware.Compress(5))
		r.Use(customMiddleware.SecurityHeaders)

		if len(a.Config.Security.AllowedOrigins) > 0 {
			r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
				AllowedOrigins: a.Config.Security.AllowedOrigins,
				Logger:         a.Logger,
			}))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
			).Handler)
		}

		a.setupAPIRoutes(r)
	})

	a.Router = r
}

// setupAPIRoutes configures API endpoints.
func (a *Application) setupAPIRoutes(r chi.Router) {
	errorHandler := errors.NewErrorHandler(a.Logger, false)

	// Unmatched routes answer in problem detail format too
	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	healthHandler := handlers.NewHealthHandler(a.Health, Version, BuildTime, a.Logger)
	analyticsHandler := handlers.NewAnalyticsHandler(a.Analytics, a.Logger, errorHandler)
	snapshotHandler := handlers.NewSnapshotHandler(a.Analytics, a.Logger, errorHandler)
	refreshHandler := handlers.NewRefreshHandler(a.Refresh, a.Logger, errorHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		// Read endpoints get the standard timeout
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.Timeout(a.Config.Server.ReadTimeout, a.Logger))

			r.Get("/health", healthHandler.HealthCheck)
			r.Get("/health/ready", healthHandler.ReadinessCheck)
			r.Get("/health/live", healthHandler.LivenessCheck)
			r.Get("/version", healthHandler.Version)

			r.Mount("/analytics", analyticsHandler.Routes())
			r.Mount("/snapshot", snapshotHandler.Routes())
			r.Get("/caveats", snapshotHandler.Caveats)
		})

		// Refresh runs a full two-board fetch and needs a longer timeout
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.Timeout(a.Config.Refresh.Timeout+10*time.Second, a.Logger))
			r.Mount("/refresh", refreshHandler.Routes())
		})
	})
}

// createServer creates the HTTP server.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Start starts the HTTP server and the background refresh loop.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting application",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	if a.Config.Refresh.OnStart {
		go func() {
			if _, err := a.Refresh.Refresh(ctx); err != nil {
				a.Logger.WarnContext(ctx, "initial snapshot refresh failed",
					slog.String("error", err.Error()))
			}
		}()
	}

	go a.Refresh.RunPeriodic(ctx, a.Config.Refresh.Interval)

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))
	return nil
}

// Stop gracefully stops the application.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.WebSocketHub.Shutdown()

	if err := infrastructure.CloseLogFile(); err != nil {
		a.Logger.ErrorContext(ctx, "Error closing log file", slog.String("error", err.Error()))
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until interrupted.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}

// handleWebSocket upgrades the connection and hands it to the hub.
func (a *Application) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a.Logger.InfoContext(ctx, "WebSocket upgrade request",
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("origin", r.Header.Get("Origin")))

	upgrader := websocket.Upgrader{
		ReadBufferSize:  a.Config.WebSocket.ReadBufferSize,
		WriteBufferSize: a.Config.WebSocket.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if len(a.Config.Security.AllowedOrigins) == 0 {
				return true
			}
			for _, allowed := range a.Config.Security.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.Logger.ErrorContext(ctx, "WebSocket upgrade failed",
			slog.String("error", err.Error()))
		return
	}

	ws.ServeWS(a.WebSocketHub, conn)
}
