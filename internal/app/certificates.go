package app

import (
	"context"
	"log/slog"

	certhandler "sumbandila/internal/certificate/handler"
	certmetrics "sumbandila/internal/certificate/metrics"
	certservice "sumbandila/internal/certificate/service"
	certstore "sumbandila/internal/certificate/store"
	"sumbandila/internal/certificate/tracer"
	"sumbandila/internal/platform/config"
)

// BuildCertificates assembles the certificate registry. Without database.url
// it serves the demo certificates from memory.
func BuildCertificates(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Service, error) {
	b := newBuilder(NameCertificates, cfg, logger)

	var store certservice.Store
	if cfg.Database.URL != "" {
		pool, err := b.database(ctx)
		if err != nil {
			return b.fail(err)
		}
		store = certstore.NewPostgres(pool.DB())
	} else {
		b.logger.Warn("database.url not set; serving demo certificates from memory")
		store = certstore.NewInMemoryStore(certstore.DemoCertificates()...)
	}

	publisher, err := b.auditPublisher()
	if err != nil {
		return b.fail(err)
	}

	svc := certservice.New(store,
		certservice.WithLogger(b.logger),
		certservice.WithTracer(tracer.NewOTel()),
		certservice.WithMetrics(certmetrics.New(b.svc.Registry)),
		certservice.WithAuditPublisher(publisher),
	)

	return b.finish(certhandler.New(svc, b.logger)), nil
}
