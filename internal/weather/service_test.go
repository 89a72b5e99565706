package weather

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/providers/openweather"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
)

type mockProvider struct {
	mu       sync.Mutex
	calls    []types.Units
	metric      *openweather.CurrentAPIResponse
	imperial    *openweather.CurrentAPIResponse
	err         error
	imperialErr error
}

func (m *mockProvider) GetCurrent(latitude, longitude float64, units types.Units) (*openweather.CurrentAPIResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, units)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if units == types.UnitsImperial {
		if m.imperialErr != nil {
			return nil, m.imperialErr
		}
		return m.imperial, nil
	}
	return m.metric, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockProvider) callsPerUnits() map[types.Units]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[types.Units]int)
	for _, u := range m.calls {
		out[u]++
	}
	return out
}

type mockStore struct {
	cached  *CachedRecord
	getErr  error
	set     []CachedRecord
	cleared []int
}

func (m *mockStore) GetRecord(stationID int) (*CachedRecord, error) {
	return m.cached, m.getErr
}

func (m *mockStore) SetRecord(stationID int, rec Record, updatedAt time.Time) error {
	m.set = append(m.set, CachedRecord{Record: rec, UpdatedAt: updatedAt})
	return nil
}

func (m *mockStore) ClearRecord(stationID int) error {
	m.cleared = append(m.cleared, stationID)
	return nil
}

func sampleResponse(temp float64) *openweather.CurrentAPIResponse {
	return &openweather.CurrentAPIResponse{
		Weather: []openweather.Condition{
			{ID: 803, Main: "Clouds", Description: "broken clouds", Icon: "04d"},
		},
		Main: openweather.MainBlock{
			Temp:      temp,
			FeelsLike: temp - 1,
			Pressure:  1012,
			Humidity:  81,
		},
		ObservedAt: 1700000000,
		Name:       "Oslo",
	}
}

func testStation() types.Station {
	return types.Station{ID: 42, Title: "Oslo", Coords: types.NewCoords(59.9139, 10.7522)}
}

func newTestService(provider Provider, store RecordStore, now time.Time) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewServiceWithProvider(provider, store, logger).(*weatherService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetStationWeatherFreshRecordSkipsProvider(t *testing.T) {
	now := time.Now()
	provider := &mockProvider{}
	store := &mockStore{
		cached: &CachedRecord{
			Record:    Record{Name: "Oslo"},
			UpdatedAt: now.Add(-1 * time.Hour),
		},
	}

	rec, err := newTestService(provider, store, now).GetStationWeather(testStation())
	if err != nil {
		t.Fatalf("GetStationWeather returned error: %v", err)
	}
	if provider.callCount() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.callCount())
	}
	if rec.Name != "Oslo" {
		t.Errorf("record name = %q, want %q", rec.Name, "Oslo")
	}
	if len(store.set) != 0 {
		t.Errorf("cache writes = %d, want 0", len(store.set))
	}
}

func TestGetStationWeatherStaleRecordRefreshes(t *testing.T) {
	now := time.Now()
	provider := &mockProvider{
		metric:   sampleResponse(12.3),
		imperial: sampleResponse(54.1),
	}
	store := &mockStore{
		cached: &CachedRecord{
			Record:    Record{Name: "old"},
			UpdatedAt: now.Add(-25 * time.Hour),
		},
	}

	rec, err := newTestService(provider, store, now).GetStationWeather(testStation())
	if err != nil {
		t.Fatalf("GetStationWeather returned error: %v", err)
	}

	perUnits := provider.callsPerUnits()
	if perUnits[types.UnitsMetric] != 1 || perUnits[types.UnitsImperial] != 1 {
		t.Errorf("provider calls = %v, want one metric and one imperial", perUnits)
	}

	if len(store.set) != 1 {
		t.Fatalf("cache writes = %d, want 1", len(store.set))
	}
	if !store.set[0].UpdatedAt.Equal(now) {
		t.Errorf("cache timestamp = %v, want %v", store.set[0].UpdatedAt, now)
	}

	if rec.Main.Metric.Temp != 12.3 {
		t.Errorf("metric temp = %v, want 12.3", rec.Main.Metric.Temp)
	}
	if rec.Main.Imperial.Temp != 54.1 {
		t.Errorf("imperial temp = %v, want 54.1", rec.Main.Imperial.Temp)
	}
	if rec.Name != "Oslo" {
		t.Errorf("top-level fields should come from the metric response, name = %q", rec.Name)
	}
}

func TestGetStationWeatherMissingRecordRefreshes(t *testing.T) {
	now := time.Now()
	provider := &mockProvider{
		metric:   sampleResponse(12.3),
		imperial: sampleResponse(54.1),
	}
	store := &mockStore{}

	rec, err := newTestService(provider, store, now).GetStationWeather(testStation())
	if err != nil {
		t.Fatalf("GetStationWeather returned error: %v", err)
	}
	if provider.callCount() != 2 {
		t.Errorf("provider calls = %d, want 2", provider.callCount())
	}
	if rec == nil || len(store.set) != 1 {
		t.Fatalf("expected one persisted record, got %d", len(store.set))
	}
}

func TestGetStationWeatherFailedRefreshServesPriorRecord(t *testing.T) {
	now := time.Now()
	provider := &mockProvider{err: errors.New("upstream down")}
	store := &mockStore{
		cached: &CachedRecord{
			Record:    Record{Name: "stale-but-present"},
			UpdatedAt: now.Add(-48 * time.Hour),
		},
	}

	rec, err := newTestService(provider, store, now).GetStationWeather(testStation())
	if err != nil {
		t.Fatalf("expected graceful degradation, got error: %v", err)
	}
	if rec.Name != "stale-but-present" {
		t.Errorf("record name = %q, want the prior record", rec.Name)
	}
	if len(store.set) != 0 {
		t.Errorf("cache writes = %d, want 0 on failed refresh", len(store.set))
	}
}

func TestGetStationWeatherPartialFailureFailsWholeRefresh(t *testing.T) {
	// One unit system succeeding is not enough: both are written
	// together or not at all.
	now := time.Now()
	provider := &mockProvider{
		metric:      sampleResponse(12.3),
		imperialErr: errors.New("upstream down"),
	}
	store := &mockStore{}

	_, err := newTestService(provider, store, now).GetStationWeather(testStation())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
	if len(store.set) != 0 {
		t.Errorf("cache writes = %d, want 0", len(store.set))
	}
}

func TestGetStationWeatherFailedRefreshWithoutRecord(t *testing.T) {
	provider := &mockProvider{err: errors.New("upstream down")}
	store := &mockStore{}

	_, err := newTestService(provider, store, time.Now()).GetStationWeather(testStation())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestGetStationWeatherStoreReadError(t *testing.T) {
	provider := &mockProvider{}
	store := &mockStore{getErr: errors.New("disk on fire")}

	_, err := newTestService(provider, store, time.Now()).GetStationWeather(testStation())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if provider.callCount() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.callCount())
	}
}
