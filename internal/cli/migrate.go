package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/volunteerhub-dev/volunteerhub/db"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			gdb, err := db.ConnectDatabase(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}

			if err := db.MigrateDatabase(gdb); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			logger := log.WithComponent("cli")
			logger.Info().Msg("Database migrated")
			return nil
		},
	}
}
