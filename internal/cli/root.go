package cli

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"surfsup/internal/config"
	"surfsup/internal/logging"
)

const appName = "surfsup"

var rootCmd = &cobra.Command{
	Use:   "surfsup",
	Short: "Hawaii climate data loader and API server",
	Long: `surfsup loads the cleaned Hawaii weather station and measurement
datasets into a file-backed SQLite store and serves aggregate climate
queries (precipitation history, station activity, temperature stats)
over HTTP.

Configuration comes from environment variables (see .env support below):
  APP_ENV, LOG_LEVEL, HTTP_ADDR, DB_DRIVER, DB_DSN, SQLITE_PATH,
  DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS, DB_CONN_MAX_LIFETIME

A .env file in the working directory is loaded automatically when present.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadDotEnv,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadDotEnv(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setupConfig loads the environment config and installs the process logger.
func setupConfig() (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, err
	}
	slog.SetDefault(logging.New(cfg, version, appName))
	return cfg, nil
}
