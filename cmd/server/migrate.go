package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sumbandila/internal/platform/database"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := database.New(cmd.Context(), c.cfg.Database)
			if errors.Is(err, database.ErrNotConfigured) {
				return fmt.Errorf("%w (set SUMBANDILA_DATABASE_URL)", err)
			}
			if err != nil {
				return err
			}
			defer pool.Close() //nolint:errcheck // process exits right after

			return database.Migrate(pool.DB(), c.logger)
		},
	}
}
