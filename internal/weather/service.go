package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/providers/openweather"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
)

// A record older than this is stale and refreshed before being served.
const freshFor = 24 * time.Hour

// ErrUnavailable is returned when weather data can neither be fetched
// nor served from a previous record. It is distinct from "station not
// found", which the caller handles before reaching this service.
var ErrUnavailable = errors.New("weather data unavailable")

// Provider fetches current conditions for a coordinate pair in one
// unit system.
type Provider interface {
	GetCurrent(latitude, longitude float64, units types.Units) (*openweather.CurrentAPIResponse, error)
}

// RecordStore persists one cached record per station. Get returns
// (nil, nil) when no record exists.
type RecordStore interface {
	GetRecord(stationID int) (*CachedRecord, error)
	SetRecord(stationID int, rec Record, updatedAt time.Time) error
	ClearRecord(stationID int) error
}

// Service serves per-station weather records, refreshing them from the
// provider when stale.
type Service interface {
	GetStationWeather(station types.Station) (*Record, error)
}

type weatherService struct {
	provider Provider
	records  RecordStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a weather service backed by a real OpenWeather
// client.
func NewService(apiKey string, records RecordStore, logger *slog.Logger) Service {
	return NewServiceWithProvider(openweather.NewClient(apiKey, logger), records, logger)
}

// NewServiceWithProvider creates a weather service with a custom
// provider. This is useful for testing with mock providers.
func NewServiceWithProvider(provider Provider, records RecordStore, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		records:  records,
		logger:   logger.With("component", "weather-service"),
		now:      time.Now,
	}
}

// GetStationWeather returns the cached record for the station,
// refreshing it first when absent or older than 24 hours. A failed
// refresh degrades to the previous record when one exists; concurrent
// refreshes of the same stale station are allowed, last write wins.
func (s *weatherService) GetStationWeather(station types.Station) (*Record, error) {
	cached, err := s.records.GetRecord(station.ID)
	if err != nil {
		s.logger.Error("failed to read cached record", "station_id", station.ID, "error", err)
		return nil, fmt.Errorf("failed to read cached record: %w", err)
	}

	if cached != nil && s.now().Sub(cached.UpdatedAt) < freshFor {
		return &cached.Record, nil
	}

	rec, err := s.refresh(station)
	if err != nil {
		if cached != nil {
			s.logger.Warn("refresh failed, serving previous record",
				"station_id", station.ID,
				"record_age", s.now().Sub(cached.UpdatedAt),
				"error", err,
			)
			return &cached.Record, nil
		}
		s.logger.Error("refresh failed with no previous record", "station_id", station.ID, "error", err)
		return nil, ErrUnavailable
	}

	return rec, nil
}

// refresh fetches both unit systems in parallel, merges them into one
// record and persists it wholesale.
func (s *weatherService) refresh(station types.Station) (*Record, error) {
	var (
		wg          sync.WaitGroup
		metric      *openweather.CurrentAPIResponse
		imperial    *openweather.CurrentAPIResponse
		metricErr   error
		imperialErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		metric, metricErr = s.provider.GetCurrent(station.Latitude, station.Longitude, types.UnitsMetric)
		if metricErr != nil {
			metricErr = fmt.Errorf("failed to get metric conditions: %w", metricErr)
		}
	}()

	go func() {
		defer wg.Done()
		imperial, imperialErr = s.provider.GetCurrent(station.Latitude, station.Longitude, types.UnitsImperial)
		if imperialErr != nil {
			imperialErr = fmt.Errorf("failed to get imperial conditions: %w", imperialErr)
		}
	}()

	wg.Wait()

	// No partial results: either call failing fails the whole refresh.
	if metricErr != nil && imperialErr != nil {
		return nil, fmt.Errorf("multiple errors: %v; %v", metricErr, imperialErr)
	}
	if metricErr != nil {
		return nil, metricErr
	}
	if imperialErr != nil {
		return nil, imperialErr
	}

	rec := mergeRecord(metric, imperial)

	if err := s.records.SetRecord(station.ID, rec, s.now()); err != nil {
		// The fetched data is still good; log and serve it.
		s.logger.Error("failed to persist refreshed record", "station_id", station.ID, "error", err)
	}

	s.logger.Debug("refreshed weather record", "station_id", station.ID)

	return &rec, nil
}
