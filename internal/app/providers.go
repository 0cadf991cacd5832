package app

import (
	"context"
	"log/slog"

	"sumbandila/internal/platform/config"
	providerhandler "sumbandila/internal/provider/handler"
	providermetrics "sumbandila/internal/provider/metrics"
	providerservice "sumbandila/internal/provider/service"
	providerstore "sumbandila/internal/provider/store"
)

// BuildProviders assembles the provider registry from the embedded seed or
// providers.seed_file.
func BuildProviders(_ context.Context, cfg *config.Config, logger *slog.Logger) (*Service, error) {
	b := newBuilder(NameProviders, cfg, logger)

	records, err := providerstore.LoadSeed(cfg.Providers.SeedFile)
	if err != nil {
		return b.fail(err)
	}
	store, err := providerstore.NewInMemoryStore(records)
	if err != nil {
		return b.fail(err)
	}

	m := providermetrics.New(b.svc.Registry)
	m.SetRecordsLoaded(store.Len())

	svc := providerservice.New(store,
		providerservice.WithLogger(b.logger),
		providerservice.WithMetrics(m),
	)

	b.logger.Info("provider registry loaded",
		"records", store.Len(),
		"seed_file", cfg.Providers.SeedFile,
	)
	return b.finish(providerhandler.New(svc, b.logger)), nil
}
