package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"surfsup/internal/modules/climate/types"
)

// ErrSessionClosed is returned by every Session operation after Commit or
// Close.
var ErrSessionClosed = errors.New("session is closed")

// Session is a transactional write handle over the store. Staged records are
// pending until Commit, which applies the whole set atomically or not at all.
// A Session is not safe for concurrent use; callers must serialize access
// and Close it on every exit path.
type Session struct {
	tx     *sql.Tx
	closed bool
}

// NewSession opens a write transaction against the store.
func (r *repositoryImpl) NewSession(ctx context.Context) (*Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	return &Session{tx: tx}, nil
}

// StageStation adds one station to the pending write set.
func (s *Session) StageStation(st types.Station) error {
	if s.closed {
		return ErrSessionClosed
	}
	_, err := s.tx.Exec(insertStationSQL, st.Station, st.Name, st.Latitude, st.Longitude, st.Elevation)
	if err != nil {
		return fmt.Errorf("stage station %q: %w", st.Station, err)
	}
	return nil
}

// StageMeasurement adds one measurement to the pending write set.
func (s *Session) StageMeasurement(m types.Measurement) error {
	if s.closed {
		return ErrSessionClosed
	}
	_, err := s.tx.Exec(insertMeasurementSQL, m.Station, m.Date, m.Prcp, m.Tobs)
	if err != nil {
		return fmt.Errorf("stage measurement %q %s: %w", m.Station, m.Date, err)
	}
	return nil
}

// Stations reads the station set visible to this session, staged rows
// included.
func (s *Session) Stations() ([]types.Station, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return queryStations(s.tx)
}

// Measurements reads the measurement set visible to this session in
// insertion order, staged rows included. A limit <= 0 means no limit.
func (s *Session) Measurements(limit int) ([]types.Measurement, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return queryMeasurements(s.tx, limit)
}

// Commit applies the full pending write set atomically. On failure nothing
// is persisted and the store keeps its prior state. The session is closed
// either way.
func (s *Session) Commit() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close rolls back any uncommitted work and releases the transaction.
// Closing an already closed session is a no-op, so it is safe to defer.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
