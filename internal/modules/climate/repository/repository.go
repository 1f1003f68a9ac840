package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"surfsup/internal/modules/climate/types"
)

//go:embed sql/get-stations.sql
var getStationsSQL string

//go:embed sql/get-measurements.sql
var getMeasurementsSQL string

//go:embed sql/get-first-measurement.sql
var getFirstMeasurementSQL string

//go:embed sql/get-precipitation.sql
var getPrecipitationSQL string

//go:embed sql/get-last-date.sql
var getLastDateSQL string

//go:embed sql/get-final-year-start.sql
var getFinalYearStartSQL string

//go:embed sql/get-temperature-stats.sql
var getTemperatureStatsSQL string

//go:embed sql/get-station-activity.sql
var getStationActivitySQL string

//go:embed sql/get-tobs.sql
var getTobsSQL string

//go:embed sql/insert-station.sql
var insertStationSQL string

//go:embed sql/insert-measurement.sql
var insertMeasurementSQL string

type ClimateRepository interface {
	GetStations() ([]types.Station, error)
	GetMeasurements(limit int) ([]types.Measurement, error)
	FirstMeasurement() (*types.Measurement, error)
	GetPrecipitation(start, end string) ([]types.PrecipitationPoint, error)
	LastMeasurementDate() (string, error)
	FinalYearStart() (string, error)
	GetTemperatureStats(start, end string) (*types.TemperatureStats, error)
	GetStationActivity() ([]types.StationActivity, error)
	GetTobs(station, start, end string) ([]int, error)
	NewSession(ctx context.Context) (*Session, error)
}

// querier is satisfied by both *sql.DB and *sql.Tx so the read paths can be
// shared between the repository and an open session.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ClimateRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) GetStations() ([]types.Station, error) {
	return queryStations(r.db)
}

func (r *repositoryImpl) GetMeasurements(limit int) ([]types.Measurement, error) {
	return queryMeasurements(r.db, limit)
}

func (r *repositoryImpl) FirstMeasurement() (*types.Measurement, error) {
	var m types.Measurement
	err := r.db.QueryRow(getFirstMeasurementSQL).Scan(&m.Station, &m.Date, &m.Prcp, &m.Tobs)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) GetPrecipitation(start, end string) ([]types.PrecipitationPoint, error) {
	rows, err := r.db.Query(getPrecipitationSQL, start, end)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, "precipitation")
	var out []types.PrecipitationPoint
	for rows.Next() {
		var p types.PrecipitationPoint
		if err := rows.Scan(&p.Date, &p.Prcp); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// LastMeasurementDate returns the latest date in the store, or "" when no
// measurements are loaded.
func (r *repositoryImpl) LastMeasurementDate() (string, error) {
	return scanDate(r.db.QueryRow(getLastDateSQL))
}

// FinalYearStart returns the date one year before the latest measurement,
// or "" when no measurements are loaded.
func (r *repositoryImpl) FinalYearStart() (string, error) {
	return scanDate(r.db.QueryRow(getFinalYearStartSQL))
}

func (r *repositoryImpl) GetTemperatureStats(start, end string) (*types.TemperatureStats, error) {
	var (
		tmin, tmax sql.NullInt64
		tavg       sql.NullFloat64
		count      int
	)
	err := r.db.QueryRow(getTemperatureStatsSQL, start, end).Scan(&tmin, &tavg, &tmax, &count)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	return &types.TemperatureStats{
		Min: int(tmin.Int64),
		Avg: tavg.Float64,
		Max: int(tmax.Int64),
	}, nil
}

func (r *repositoryImpl) GetStationActivity() ([]types.StationActivity, error) {
	rows, err := r.db.Query(getStationActivitySQL)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, "station activity")
	var out []types.StationActivity
	for rows.Next() {
		var a types.StationActivity
		if err := rows.Scan(&a.Station, &a.Observations); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) GetTobs(station, start, end string) ([]int, error) {
	rows, err := r.db.Query(getTobsSQL, station, start, end)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, "tobs")
	var out []int
	for rows.Next() {
		var t int
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func queryStations(q querier) ([]types.Station, error) {
	rows, err := q.Query(getStationsSQL)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, "stations")
	var out []types.Station
	for rows.Next() {
		var s types.Station
		if err := rows.Scan(&s.Station, &s.Name, &s.Latitude, &s.Longitude, &s.Elevation); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// queryMeasurements returns measurements in insertion order. A limit <= 0
// means no limit.
func queryMeasurements(q querier, limit int) ([]types.Measurement, error) {
	if limit <= 0 {
		limit = -1 // SQLite: LIMIT -1 disables the limit
	}
	rows, err := q.Query(getMeasurementsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, "measurements")
	var out []types.Measurement
	for rows.Next() {
		var m types.Measurement
		if err := rows.Scan(&m.Station, &m.Date, &m.Prcp, &m.Tobs); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanDate(row *sql.Row) (string, error) {
	var d sql.NullString
	if err := row.Scan(&d); err != nil {
		return "", err
	}
	if !d.Valid {
		return "", nil
	}
	return d.String, nil
}

func closeRows(rows *sql.Rows, what string) {
	if err := rows.Close(); err != nil {
		slog.Error(fmt.Sprintf("close %s rows", what), "error", err)
	}
}
