// Package server assembles the backend HTTP handler: Connect services,
// uploaded receipts, health and metrics endpoints.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ElvisGalvez/bill-app/internal/auth"
	billmw "github.com/ElvisGalvez/bill-app/internal/middleware"
	"github.com/ElvisGalvez/bill-app/pkg/api"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Auth       api.AuthServiceHandler
	Bills      api.BillServiceHandler
	JWTManager *auth.JWTManager

	// Users backs the account check on bill RPCs.
	Users billmw.UserLookup

	// UploadsDir is served read-only under /public/.
	UploadsDir     string
	AllowedOrigins []string

	// Registry receives the RPC metrics and backs /metrics. Nil uses a
	// fresh registry.
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// NewRouter builds the HTTP handler for the backend.
func NewRouter(d Deps) *chi.Mux {
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	metrics := billmw.NewMetrics(d.Registry)
	logging := billmw.LoggingInterceptor(d.Logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(d.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders:   []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		AllowCredentials: true,
	}))

	authPath, authHandler := api.NewAuthServiceHandler(d.Auth,
		connect.WithInterceptors(metrics.Interceptor(), logging),
	)
	r.Mount(authPath, authHandler)

	// Authentication runs before logging so log lines carry the user ID.
	billPath, billHandler := api.NewBillServiceHandler(d.Bills,
		connect.WithInterceptors(metrics.Interceptor(), billmw.RequireAuth(d.JWTManager, d.Users), logging),
	)
	r.Mount(billPath, billHandler)

	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(d.UploadsDir))))
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

// requestLogger logs all incoming requests.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
