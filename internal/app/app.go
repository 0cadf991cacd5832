// Package app assembles each HTTP service from configuration: stores,
// services, handlers and the shared router. Resources acquired while building
// are released by Service.Close, or immediately when building fails.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"sumbandila/internal/audit"
	"sumbandila/internal/platform/config"
	"sumbandila/internal/platform/database"
	"sumbandila/internal/platform/health"
	"sumbandila/internal/platform/kafka/producer"
	"sumbandila/internal/platform/metrics"
	httptransport "sumbandila/internal/transport/http"
)

// Service names, also used as the health "service" field.
const (
	NameAuth         = "auth"
	NameProviders    = "providers"
	NameCertificates = "certificates"
)

// Service is an assembled HTTP service and the resources it holds.
type Service struct {
	Name     string
	Handler  http.Handler
	Registry *prometheus.Registry

	closers []func() error
}

// Close releases resources in reverse acquisition order.
func (s *Service) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *Service) onClose(fn func() error) {
	s.closers = append(s.closers, fn)
}

type builder struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *Service
	health *health.Handler
}

func newBuilder(name string, cfg *config.Config, logger *slog.Logger) *builder {
	return &builder{
		cfg:    cfg,
		logger: logger.With("service", name),
		svc: &Service{
			Name:     name,
			Registry: metrics.NewRegistry(),
		},
		health: health.New(name, cfg.Environment, logger),
	}
}

// fail releases everything acquired so far and returns err.
func (b *builder) fail(err error) (*Service, error) {
	if closeErr := b.svc.Close(); closeErr != nil {
		b.logger.Warn("cleanup after failed startup", "error", closeErr)
	}
	return nil, err
}

func (b *builder) finish(services ...httptransport.Registrar) *Service {
	b.svc.Handler = httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         b.logger,
		Registry:       b.svc.Registry,
		Health:         b.health,
		RequestTimeout: b.cfg.Server.RequestTimeout,
	}, services...)
	return b.svc
}

// auditPublisher sends events to Kafka when brokers are configured and to
// the structured log otherwise.
func (b *builder) auditPublisher() (*audit.Publisher, error) {
	if b.cfg.Kafka.Brokers == "" {
		return audit.NewPublisher(audit.NewLogStore(b.logger)), nil
	}

	p, err := producer.New(b.cfg.Kafka, b.logger)
	if err != nil {
		return nil, fmt.Errorf("audit producer: %w", err)
	}
	b.svc.onClose(p.Close)
	b.health.RegisterCheck("kafka", p.Health)
	b.svc.Registry.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "audit_kafka_delivery_failures_total",
		Help: "Audit records the Kafka producer failed to deliver.",
	}, func() float64 { return float64(p.DeliveryFailures()) }))

	publisher := audit.NewPublisher(
		audit.NewKafkaStore(p, b.cfg.Kafka.AuditTopic),
		audit.WithAsyncBuffer(1024),
		audit.WithPublisherLogger(b.logger),
	)
	b.svc.onClose(func() error {
		publisher.Close()
		return nil
	})
	b.logger.Info("audit events published to kafka", "topic", b.cfg.Kafka.AuditTopic)
	return publisher, nil
}

// database opens the shared Postgres pool and registers its readiness check.
func (b *builder) database(ctx context.Context) (*database.Pool, error) {
	pool, err := database.New(ctx, b.cfg.Database)
	if err != nil {
		return nil, err
	}
	b.svc.onClose(pool.Close)
	if err := pool.RegisterMetrics(b.svc.Registry, "sumbandila"); err != nil {
		return nil, fmt.Errorf("database metrics: %w", err)
	}
	b.health.RegisterCheck("postgres", pool.Health)
	return pool, nil
}
