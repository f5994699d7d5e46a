package api

import (
	"net/http"

	"github.com/dom/floricola-erp/internal/api/handlers"
	"github.com/dom/floricola-erp/internal/api/middleware"
	"github.com/dom/floricola-erp/internal/config"
	"github.com/dom/floricola-erp/internal/metrics"
	"github.com/dom/floricola-erp/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(services.Schema)
	authHandler := handlers.NewAuthHandler(services.Auth)
	clienteHandler := handlers.NewClienteHandler(services.Clientes)

	r.Get("/health", systemHandler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	// Schema initialization
	r.Get("/init", systemHandler.InitClientes)
	r.Get("/init-users", systemHandler.InitUsers)

	// Public auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth, log, m))

		r.Get("/me", authHandler.Me)

		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", clienteHandler.List)
			r.Post("/", clienteHandler.Create)
			r.Delete("/{id}", clienteHandler.Delete)
		})
	})

	return r
}
