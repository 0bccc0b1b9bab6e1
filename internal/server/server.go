package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/auth"
	"github.com/damayanti/damayanti-be/internal/config"
	"github.com/damayanti/damayanti-be/internal/http/docs"
	"github.com/damayanti/damayanti-be/internal/http/handlers"
	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/middleware"
	"github.com/damayanti/damayanti-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

type gate = func(http.Handler) http.Handler

// crud is the endpoint set every resource handler exposes.
type crud interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, log *logrus.Logger) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, store, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return &Server{inner: httpServer}
}

// NewHandler builds the routed handler tree.
func NewHandler(cfg config.Config, store storage.Store, log *logrus.Logger) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if pool, ok := store.(interface{ DB() *sql.DB }); ok {
		registry.MustRegister(collectors.NewDBStatsCollector(pool.DB(), "damayanti"))
	}
	metrics := middleware.NewMetrics(registry)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)
	authn := middleware.NewAuthenticator(tokens, store, log)
	loginFlow := auth.NewService(store, tokens, log)

	health := handlers.NewHealthHandler(time.Now(), store, log)
	authH := handlers.NewAuthHandler(loginFlow, log)
	apiDocs := docs.NewHandler()

	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.Logging(log),
		metrics.Handler,
		chimw.Recoverer,
		chimw.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.CORS(cfg.CORSOrigins),
	)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, "API endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/api-docs", apiDocs.UI)
	r.Get("/openapi.yaml", apiDocs.YAML)
	r.Get("/openapi.json", apiDocs.JSON)
	r.Get("/doc.json", apiDocs.JSON)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Check)
		r.Post("/auth/login", authH.Login)
		r.With(authn.RequireUser).Get("/auth/me", authH.Me)

		mount(r, "/users", handlers.NewUserHandler(store, log), authn.RequireAdmin, authn.RequireAdmin)
		mount(r, "/students", handlers.NewStudentHandler(store, log), authn.OptionalUser, authn.RequireAdmin)
		mount(r, "/containers", handlers.NewContainerHandler(store, log), authn.OptionalUser, authn.RequireAdmin)

		sensors := handlers.NewSensorDataHandler(store, log)
		r.With(authn.OptionalUser).Get("/sensor-data/latest/{containerID}", sensors.Latest)
		mount(r, "/sensor-data", sensors, authn.OptionalUser, authn.OptionalUser)

		mount(r, "/reports", handlers.NewReportHandler(store, log), authn.OptionalUser, authn.RequireUser)
		mount(r, "/sheeps", handlers.NewSheepHandler(store, log), authn.OptionalUser, authn.RequireUser)

		feedings := handlers.NewSheepReportHandler(store, log)
		r.With(authn.OptionalUser).Get("/sheep-reports/recent/{status}", feedings.Recent)
		mount(r, "/sheep-reports", feedings, authn.OptionalUser, authn.RequireUser)
	})

	return r
}

// mount registers the five CRUD routes under prefix, guarding reads and writes separately.
func mount(r chi.Router, prefix string, h crud, read, write gate) {
	r.With(read).Get(prefix, h.List)
	r.With(read).Get(prefix+"/{id}", h.Get)
	r.With(write).Post(prefix, h.Create)
	r.With(write).Put(prefix+"/{id}", h.Update)
	r.With(write).Delete(prefix+"/{id}", h.Delete)
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
