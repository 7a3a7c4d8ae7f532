// Package cli wires configuration, storage and the HTTP server behind the
// volunteerhub command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/volunteerhub-dev/volunteerhub/internal/config"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "volunteerhub",
		Short:         "VolunteerHub - volunteer matching API server",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(fmt.Sprintf(
		"VolunteerHub version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	root.PersistentFlags().String("config", "", "Path to a YAML config file (environment variables take precedence)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads and validates configuration, then sets up logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Init(log.Config{
		Level:      log.Level(cfg.LogLevel),
		JSONOutput: cfg.LogJSON,
	})

	return cfg, nil
}
