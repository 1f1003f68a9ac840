package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"surfsup/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the climate query API over HTTP",
	Long: `Serve exposes read-only aggregate queries over the loaded store:

  GET /healthz
  GET /metrics
  GET /api/v1.0/stations
  GET /api/v1.0/precipitation
  GET /api/v1.0/tobs
  GET /api/v1.0/temps/{start}
  GET /api/v1.0/temps/{start}/{end}

Run 'surfsup load' first; serving an empty store works but every data
route returns empty results.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setupConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
