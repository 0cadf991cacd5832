package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sumbandila/internal/platform/config"
	"sumbandila/internal/platform/logger"
)

// cli holds state resolved by the root command before any subcommand runs.
type cli struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           "server",
		Short:         "Sumbandila verification services",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default ./sumbandila.yaml when present)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("addr", config.DefaultAddr, "HTTP listen address")
	flags.String("environment", "local", "deployment environment")
	_ = c.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = c.v.BindPFlag("server.addr", flags.Lookup("addr"))
	_ = c.v.BindPFlag("environment", flags.Lookup("environment"))

	root.AddCommand(
		c.serveCmd("auth", "Run the token issuer and credential store", appBuilders["auth"]),
		c.serveCmd("providers", "Run the provider registry", appBuilders["providers"]),
		c.serveCmd("certificates", "Run the certificate registry", appBuilders["certificates"]),
		c.migrateCmd(),
		c.tokenCmd(),
	)
	return root
}

func (c *cli) load() error {
	config.SetDefaults(c.v)
	config.BindEnv(c.v)

	used, err := config.ReadFile(c.v, c.configFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger.New(cfg.LogLevel)
	slog.SetDefault(c.logger)

	if used != "" {
		c.logger.Debug("using config file", "path", used)
	}
	return nil
}
