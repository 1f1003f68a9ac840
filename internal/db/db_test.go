package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfsup/internal/config"
)

func TestBuildDSN_PlainPath(t *testing.T) {
	dsn, err := buildDSN(config.Config{Path: "hawaii.db"})
	require.NoError(t, err)
	assert.Equal(t, "file:hawaii.db?_busy_timeout=5000&_journal_mode=WAL", dsn)
}

func TestBuildDSN_FilePrefixNotDoubleWrapped(t *testing.T) {
	dsn, err := buildDSN(config.Config{Path: "file:/data/hawaii.db?mode=rwc"})
	require.NoError(t, err)
	assert.Equal(t, "file:/data/hawaii.db?mode=rwc&_busy_timeout=5000&_journal_mode=WAL", dsn)
}

func TestBuildDSN_ExplicitDSNWins(t *testing.T) {
	dsn, err := buildDSN(config.Config{DSN: ":memory:", Path: "ignored.db"})
	require.NoError(t, err)
	assert.Equal(t, ":memory:", dsn)
}

func TestOpen_CreatesBackingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store", "hawaii.db")
	cfg := config.Config{Driver: "sqlite3", Path: path, MaxOpenConns: 1, MaxIdleConns: 1}

	conn, err := Open(cfg)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, Close(conn))
	}()

	_, err = os.Stat(path)
	assert.NoError(t, err, "backing file should exist after open")
}

func TestMigrate_Idempotent(t *testing.T) {
	cfg := config.Config{
		Driver:       "sqlite3",
		Path:         filepath.Join(t.TempDir(), "hawaii.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	conn, err := Open(cfg)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, Close(conn))
	}()

	require.NoError(t, Migrate(conn))
	// Second run must be a clean no-op.
	require.NoError(t, Migrate(conn))

	var n int
	err = conn.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('hawaii_stations', 'hawaii_measurements')`,
	).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMigrate_PreservesExistingData(t *testing.T) {
	cfg := config.Config{
		Driver:       "sqlite3",
		Path:         filepath.Join(t.TempDir(), "hawaii.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	conn, err := Open(cfg)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, Close(conn))
	}()

	require.NoError(t, Migrate(conn))
	_, err = conn.Exec(
		`INSERT INTO hawaii_stations (station, name, latitude, longitude, elevation) VALUES ('USC00519397', 'WAIKIKI 717.2, HI US', 21.2716, -157.8168, 3.0)`,
	)
	require.NoError(t, err)

	require.NoError(t, Migrate(conn))

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM hawaii_stations`).Scan(&n))
	assert.Equal(t, 1, n)
}
