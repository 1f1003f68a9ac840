package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"surfsup/internal/db"
	"surfsup/internal/modules/climate/loader"
	"surfsup/internal/modules/climate/repository"
	"surfsup/internal/observability"
)

var loadFlags struct {
	stations     string
	measurements string
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the cleaned Hawaii CSV datasets into the store",
	Long: `Load reads the cleaned station and measurement CSV files, converts
every row into a typed record, and commits the whole batch atomically.
The cleaned inputs must carry exactly these headers:

  stations:     station,name,latitude,longitude,elevation
  measurements: station,date,prcp,tobs

Any row that fails conversion aborts the load; nothing is persisted on
failure. Re-running load appends another copy of the data (the store
enforces no uniqueness), so recreate the store file first if you want a
fresh load.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadFlags.stations, "stations", "resources/clean_hawaii_stations.csv", "path to the cleaned stations CSV")
	loadCmd.Flags().StringVar(&loadFlags.measurements, "measurements", "resources/clean_hawaii_measurements.csv", "path to the cleaned measurements CSV")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := setupConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(dbConn); closeErr != nil {
			slog.Error("db close", "error", closeErr)
		}
	}()

	if err := db.Migrate(dbConn); err != nil {
		return err
	}

	repo := repository.NewRepository(dbConn)
	metrics := observability.NewMetrics()
	l := loader.New(repo, metrics, slog.Default())

	res, err := l.LoadAll(ctx, loadFlags.stations, loadFlags.measurements)
	if err != nil {
		return err
	}

	slog.Info("load complete",
		"run_id", res.RunID,
		"stations", res.Stations,
		"measurements", res.Measurements,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return nil
}
