package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sumbandila/internal/app"
	"sumbandila/internal/platform/config"
	"sumbandila/internal/platform/httpserver"
)

type buildFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app.Service, error)

var appBuilders = map[string]buildFunc{
	app.NameAuth:         app.BuildAuth,
	app.NameProviders:    app.BuildProviders,
	app.NameCertificates: app.BuildCertificates,
}

func (c *cli) serveCmd(name, short string, build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return c.serve(ctx, build)
		},
	}
}

// serve builds the service, runs it until ctx ends and releases its
// resources on every exit path.
func (c *cli) serve(ctx context.Context, build buildFunc) error {
	svc, err := build(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := svc.Close(); closeErr != nil {
			c.logger.Error("failed to release resources", "service", svc.Name, "error", closeErr)
		}
	}()

	c.logger.Info("starting service",
		"service", svc.Name,
		"addr", c.cfg.Server.Addr,
		"environment", c.cfg.Environment,
	)

	srv := httpserver.New(c.cfg.Server, svc.Handler)
	if err := httpserver.Run(ctx, srv, c.cfg.Server.ShutdownTimeout, c.logger); err != nil {
		return err
	}
	c.logger.Info("service stopped", "service", svc.Name)
	return nil
}
