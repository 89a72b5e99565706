package store

import (
	"sync"
	"time"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/weather"
)

// MemoryStore is an in-memory StationRepository and weather.RecordStore
// for running without a database file and for tests.
type MemoryStore struct {
	mu       sync.RWMutex
	stations []types.Station
	byID     map[int]types.Station
	records  map[int]weather.CachedRecord
}

func NewMemoryStore(stations []types.Station) *MemoryStore {
	byID := make(map[int]types.Station, len(stations))
	for _, st := range stations {
		byID[st.ID] = st
	}
	return &MemoryStore{
		stations: stations,
		byID:     byID,
		records:  make(map[int]weather.CachedRecord),
	}
}

func (m *MemoryStore) GetStations() ([]types.Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	out := make([]types.Station, len(m.stations))
	copy(out, m.stations)
	return out, nil
}

func (m *MemoryStore) GetStation(id int) (*types.Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &st, nil
}

func (m *MemoryStore) GetRecord(stationID int) (*weather.CachedRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[stationID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *MemoryStore) SetRecord(stationID int, rec weather.Record, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[stationID] = weather.CachedRecord{Record: rec, UpdatedAt: updatedAt}
	return nil
}

func (m *MemoryStore) ClearRecord(stationID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, stationID)
	return nil
}
