package loader

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlitedb "surfsup/internal/db"
	"surfsup/internal/modules/climate/repository"
	"surfsup/internal/observability"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func setupRepo(t *testing.T) repository.ClimateRepository {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() {
		assert.NoError(t, conn.Close())
	})
	require.NoError(t, sqlitedb.Migrate(conn))
	return repository.NewRepository(conn)
}

func newLoader(t *testing.T, repo repository.ClimateRepository) *Loader {
	t.Helper()
	return New(repo, observability.NewMetricsForTesting(), nil)
}

func TestReadStations_RoundTrip(t *testing.T) {
	stations, err := ReadStations(testdata("stations_ok.csv"))
	require.NoError(t, err)
	require.Len(t, stations, 3)

	assert.Equal(t, "USC00519397", stations[0].Station)
	assert.Equal(t, "WAIKIKI 717.2, HI US", stations[0].Name)
	assert.Equal(t, 21.2716, stations[0].Latitude)
	assert.Equal(t, -157.8168, stations[0].Longitude)
	assert.Equal(t, 3.0, stations[0].Elevation)
}

func TestReadMeasurements_RoundTrip(t *testing.T) {
	measurements, err := ReadMeasurements(testdata("measurements_ok.csv"))
	require.NoError(t, err)
	require.Len(t, measurements, 4)

	assert.Equal(t, "USC00519397", measurements[0].Station)
	assert.Equal(t, "2010-01-01", measurements[0].Date)
	assert.Equal(t, 0.08, measurements[0].Prcp)
	assert.Equal(t, 65, measurements[0].Tobs)
}

func TestReadStations_HeadersOnly(t *testing.T) {
	stations, err := ReadStations(testdata("stations_headers_only.csv"))
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestReadStations_BadHeader(t *testing.T) {
	_, err := ReadStations(testdata("stations_bad_header.csv"))
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.ErrorContains(t, err, "Station")
	assert.ErrorContains(t, err, "latitude")
}

func TestReadMeasurements_MissingValue(t *testing.T) {
	_, err := ReadMeasurements(testdata("measurements_missing_prcp.csv"))
	require.ErrorIs(t, err, ErrBadValue)
	assert.ErrorContains(t, err, "Measurement")
	assert.ErrorContains(t, err, "prcp")
	assert.ErrorContains(t, err, "row 3")
}

func TestReadMeasurements_NonIntegerTobs(t *testing.T) {
	_, err := ReadMeasurements(testdata("measurements_bad_tobs.csv"))
	require.ErrorIs(t, err, ErrBadValue)
	assert.ErrorContains(t, err, "tobs")
	assert.ErrorContains(t, err, "65.0")
}

func TestReadStations_MissingFile(t *testing.T) {
	_, err := ReadStations(testdata("does_not_exist.csv"))
	assert.ErrorContains(t, err, "open")
}

func TestLoadAll_RowCountsMatchInput(t *testing.T) {
	repo := setupRepo(t)
	l := newLoader(t, repo)

	res, err := l.LoadAll(context.Background(), testdata("stations_ok.csv"), testdata("measurements_ok.csv"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Stations)
	assert.Equal(t, 4, res.Measurements)
	assert.NotEmpty(t, res.RunID)

	stations, err := repo.GetStations()
	require.NoError(t, err)
	assert.Len(t, stations, 3)
	assert.Equal(t, "WAIKIKI 717.2, HI US", stations[0].Name)

	measurements, err := repo.GetMeasurements(0)
	require.NoError(t, err)
	assert.Len(t, measurements, 4)

	first, err := repo.FirstMeasurement()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 65, first.Tobs)
}

func TestLoadAll_EmptyInputsCommitCleanly(t *testing.T) {
	repo := setupRepo(t)
	l := newLoader(t, repo)

	res, err := l.LoadAll(context.Background(), testdata("stations_headers_only.csv"), testdata("measurements_headers_only.csv"))
	require.NoError(t, err)
	assert.Zero(t, res.Stations)
	assert.Zero(t, res.Measurements)

	measurements, err := repo.GetMeasurements(0)
	require.NoError(t, err)
	assert.Empty(t, measurements)
}

func TestLoadAll_BadMeasurementPersistsNothing(t *testing.T) {
	repo := setupRepo(t)
	l := newLoader(t, repo)

	_, err := l.LoadAll(context.Background(), testdata("stations_ok.csv"), testdata("measurements_missing_prcp.csv"))
	require.ErrorIs(t, err, ErrBadValue)

	// All-or-nothing: the valid station set must not have leaked through.
	stations, err := repo.GetStations()
	require.NoError(t, err)
	assert.Empty(t, stations)
}
