package store

import (
	"errors"
	"testing"
	"time"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/weather"
)

func TestMemoryStoreStations(t *testing.T) {
	m := NewMemoryStore(testStations())

	stations, err := m.GetStations()
	if err != nil {
		t.Fatalf("GetStations: %v", err)
	}
	if len(stations) != 3 {
		t.Fatalf("len(stations) = %d, want 3", len(stations))
	}

	st, err := m.GetStation(1)
	if err != nil {
		t.Fatalf("GetStation: %v", err)
	}
	if st.Title != "Oslo" {
		t.Errorf("title = %q, want %q", st.Title, "Oslo")
	}

	if _, err := m.GetStation(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreRecords(t *testing.T) {
	m := NewMemoryStore(testStations())

	got, err := m.GetRecord(1)
	if err != nil || got != nil {
		t.Fatalf("GetRecord before write = (%+v, %v), want (nil, nil)", got, err)
	}

	at := time.Unix(1700000000, 0)
	if err := m.SetRecord(1, weather.Record{Name: "Oslo"}, at); err != nil {
		t.Fatalf("SetRecord: %v", err)
	}

	got, err = m.GetRecord(1)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got == nil || got.Record.Name != "Oslo" || !got.UpdatedAt.Equal(at) {
		t.Errorf("unexpected record: %+v", got)
	}

	if err := m.ClearRecord(1); err != nil {
		t.Fatalf("ClearRecord: %v", err)
	}
	got, _ = m.GetRecord(1)
	if got != nil {
		t.Errorf("expected no record after clear, got %+v", got)
	}
}
