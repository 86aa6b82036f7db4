package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	core_port "github.com/srinugalla/the-slice-x/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// Handlers - обработчики, которые монтирует сервер. Metrics может быть nil.
type Handlers struct {
	Reveal  *RevealContactHandler
	Filters *FilterHandler
	Health  *HealthHandler
	Auth    *AuthMiddleware
	Metrics http.Handler
}

func NewServer(port string, handlers Handlers, httpMetrics HTTPMetrics, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           NewRouter(handlers, httpMetrics, baseLogger),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: baseLogger,
	}
}

// NewRouter собирает цепочку middleware и маршруты. Порядок важен: заголовки CORS
// ставятся до всего остального, OPTIONS отвечает раньше маршрутизации, а
// аутентификация стоит только на маршрутах раскрытия контакта.
func NewRouter(handlers Handlers, httpMetrics HTTPMetrics, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		middleware.SetHeader("Access-Control-Allow-Origin", "*"),
		middleware.SetHeader("Content-Type", "application/json"),
		LoggerMiddleware(baseLogger),
		MetricsMiddleware(httpMetrics),
		RecoverMiddleware,
		corsMiddleware(),
		PreflightMiddleware,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Group(func(r chi.Router) {
		r.Use(handlers.Auth.Authenticate)
		r.Post("/reveal-contact", handlers.Reveal.RevealContact)
		r.Post("/api/reveal-contact", handlers.Reveal.RevealContact)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/filters/options", handlers.Filters.GetFilterOptions)
	})

	r.Get("/healthz", handlers.Health.Health)
	if handlers.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", handlers.Metrics)
	}

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
