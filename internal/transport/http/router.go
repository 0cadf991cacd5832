package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"sumbandila/internal/platform/health"
	"sumbandila/internal/platform/metrics"
	"sumbandila/pkg/platform/middleware/request"
	"sumbandila/pkg/platform/validation"
)

// Registrar mounts a service's routes.
type Registrar interface {
	Register(r chi.Router)
}

// RouterConfig carries the shared pieces every service router needs.
type RouterConfig struct {
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	Health         *health.Handler
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// NewRouter wires the middleware stack, health probes and /metrics, then
// mounts each service's routes at the root.
func NewRouter(cfg RouterConfig, services ...Registrar) http.Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = validation.MaxBodySize
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.ClientMetadata)
	r.Use(request.Logger(cfg.Logger))
	if cfg.Registry != nil {
		r.Use(request.LatencyMiddleware(request.NewMetrics(cfg.Registry)))
	}
	r.Use(request.BodyLimit(cfg.MaxBodyBytes))
	r.Use(request.Timeout(cfg.RequestTimeout))

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Registry != nil {
		r.Handle("/metrics", metrics.Handler(cfg.Registry))
	}

	for _, svc := range services {
		svc.Register(r)
	}

	return r
}
