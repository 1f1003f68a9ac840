package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"surfsup/internal/modules/climate/types"
)

// Column sets the cleaned inputs must carry, in order. Every column maps to
// exactly one record field; anything else is a schema mismatch.
var (
	stationColumns     = []string{"station", "name", "latitude", "longitude", "elevation"}
	measurementColumns = []string{"station", "date", "prcp", "tobs"}
)

// ReadStations reads a cleaned stations CSV into typed records, preserving
// file order. A headers-only file yields an empty slice.
func ReadStations(path string) ([]types.Station, error) {
	rows, err := readRows(path, "Station", stationColumns)
	if err != nil {
		return nil, err
	}
	out := make([]types.Station, 0, len(rows))
	for i, row := range rows {
		s, err := stationFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// ReadMeasurements reads a cleaned measurements CSV into typed records,
// preserving file order.
func ReadMeasurements(path string) ([]types.Measurement, error) {
	rows, err := readRows(path, "Measurement", measurementColumns)
	if err != nil {
		return nil, err
	}
	out := make([]types.Measurement, 0, len(rows))
	for i, row := range rows {
		m, err := measurementFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// readRows parses the file into one name->value mapping per data row. The
// header must equal the declared column set exactly.
func readRows(path, recordType string, columns []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %s: empty file, expected header %s: %w",
			path, recordType, strings.Join(columns, ","), ErrSchemaMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	if err := checkHeader(recordType, header, columns); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Includes csv.ErrFieldCount when a row has the wrong shape.
			return nil, fmt.Errorf("%s: %s: %v: %w", path, recordType, err, ErrSchemaMismatch)
		}
		row := make(map[string]string, len(columns))
		for i, name := range columns {
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkHeader(recordType string, header, columns []string) error {
	if len(header) != len(columns) {
		return fmt.Errorf("%s: header has %d columns, want %s: %w",
			recordType, len(header), strings.Join(columns, ","), ErrSchemaMismatch)
	}
	for i, name := range columns {
		if strings.TrimSpace(header[i]) != name {
			return fmt.Errorf("%s: header column %d is %q, want %q: %w",
				recordType, i+1, header[i], name, ErrSchemaMismatch)
		}
	}
	return nil
}

// Explicit field-by-field construction: each named value is validated and
// coerced on its own, never unpacked by reflection.

func stationFromRow(row map[string]string) (types.Station, error) {
	station, err := stringField("Station", row, "station")
	if err != nil {
		return types.Station{}, err
	}
	name, err := stringField("Station", row, "name")
	if err != nil {
		return types.Station{}, err
	}
	latitude, err := floatField("Station", row, "latitude")
	if err != nil {
		return types.Station{}, err
	}
	longitude, err := floatField("Station", row, "longitude")
	if err != nil {
		return types.Station{}, err
	}
	elevation, err := floatField("Station", row, "elevation")
	if err != nil {
		return types.Station{}, err
	}
	return types.Station{
		Station:   station,
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Elevation: elevation,
	}, nil
}

func measurementFromRow(row map[string]string) (types.Measurement, error) {
	station, err := stringField("Measurement", row, "station")
	if err != nil {
		return types.Measurement{}, err
	}
	date, err := stringField("Measurement", row, "date")
	if err != nil {
		return types.Measurement{}, err
	}
	prcp, err := floatField("Measurement", row, "prcp")
	if err != nil {
		return types.Measurement{}, err
	}
	tobs, err := intField("Measurement", row, "tobs")
	if err != nil {
		return types.Measurement{}, err
	}
	return types.Measurement{
		Station: station,
		Date:    date,
		Prcp:    prcp,
		Tobs:    tobs,
	}, nil
}

func stringField(recordType string, row map[string]string, name string) (string, error) {
	raw, ok := row[name]
	if !ok {
		return "", fmt.Errorf("%s: no column maps to field %q: %w", recordType, name, ErrSchemaMismatch)
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s: field %q: missing value: %w", recordType, name, ErrBadValue)
	}
	return raw, nil
}

func floatField(recordType string, row map[string]string, name string) (float64, error) {
	raw, err := stringField(recordType, row, name)
	if err != nil {
		return 0, err
	}
	v, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil {
		return 0, fmt.Errorf("%s: field %q: cannot coerce %q to float: %w", recordType, name, raw, ErrBadValue)
	}
	return v, nil
}

func intField(recordType string, row map[string]string, name string) (int, error) {
	raw, err := stringField(recordType, row, name)
	if err != nil {
		return 0, err
	}
	v, parseErr := strconv.Atoi(raw)
	if parseErr != nil {
		return 0, fmt.Errorf("%s: field %q: cannot coerce %q to int: %w", recordType, name, raw, ErrBadValue)
	}
	return v, nil
}
