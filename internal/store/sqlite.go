package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/weather"
)

//go:embed sql/schema.sql
var schemaSQL string

//go:embed sql/get-stations.sql
var getStationsSQL string

//go:embed sql/get-station.sql
var getStationSQL string

//go:embed sql/upsert-station.sql
var upsertStationSQL string

//go:embed sql/get-record.sql
var getRecordSQL string

//go:embed sql/upsert-record.sql
var upsertRecordSQL string

//go:embed sql/delete-record.sql
var deleteRecordSQL string

// SQLiteStore persists the station directory and cached weather
// records in a single SQLite database. It implements both
// StationRepository and weather.RecordStore.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the database at path and
// applies the schema. Use ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SeedStations upserts the given stations into the directory. Called at
// startup with the configured station list.
func (s *SQLiteStore) SeedStations(stations []types.Station) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	for _, st := range stations {
		if _, err := tx.Exec(upsertStationSQL, st.ID, st.Title, st.Latitude, st.Longitude); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to seed station %d: %w", st.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetStations() ([]types.Station, error) {
	rows, err := s.db.Query(getStationsSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []types.Station
	for rows.Next() {
		var st types.Station
		if err := rows.Scan(&st.ID, &st.Title, &st.Latitude, &st.Longitude); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetStation(id int) (*types.Station, error) {
	var st types.Station
	err := s.db.QueryRow(getStationSQL, id).Scan(&st.ID, &st.Title, &st.Latitude, &st.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetRecord returns the cached weather record for a station, or
// (nil, nil) when none has been written yet.
func (s *SQLiteStore) GetRecord(stationID int) (*weather.CachedRecord, error) {
	var (
		payload   string
		updatedAt int64
	)
	err := s.db.QueryRow(getRecordSQL, stationID).Scan(&payload, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec weather.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode cached record: %w", err)
	}

	return &weather.CachedRecord{
		Record:    rec,
		UpdatedAt: time.Unix(updatedAt, 0),
	}, nil
}

// SetRecord replaces the station's cached record wholesale.
func (s *SQLiteStore) SetRecord(stationID int, rec weather.Record, updatedAt time.Time) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	_, err = s.db.Exec(upsertRecordSQL, stationID, string(payload), updatedAt.Unix())
	return err
}

func (s *SQLiteStore) ClearRecord(stationID int) error {
	_, err := s.db.Exec(deleteRecordSQL, stationID)
	return err
}
