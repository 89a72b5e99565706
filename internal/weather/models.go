package weather

import (
	"time"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/providers/openweather"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
)

// Record is the normalized per-station weather payload held in the
// cache and embedded in endpoint responses. The condition fields come
// from the metric provider response; the provider's numeric block is
// replaced by a pair of unit-specific sub-objects so a single record
// serves both display modes.
type Record struct {
	Weather    []openweather.Condition `json:"weather"`
	Base       string                  `json:"base,omitempty"`
	Visibility int                     `json:"visibility,omitempty"`
	Wind       openweather.WindBlock   `json:"wind"`
	Clouds     openweather.CloudsBlock `json:"clouds"`
	ObservedAt int64                   `json:"dt"`
	Name       string                  `json:"name,omitempty"`
	Main       UnitsMain               `json:"main"`
}

// UnitsMain carries both unit representations of the numeric
// conditions. Both are fetched and written together; there is no
// partial merge across units.
type UnitsMain struct {
	Metric   openweather.MainBlock `json:"metric"`
	Imperial openweather.MainBlock `json:"imperial"`
}

// Block returns the numeric conditions for the requested unit system.
func (m UnitsMain) Block(units types.Units) openweather.MainBlock {
	if units == types.UnitsImperial {
		return m.Imperial
	}
	return m.Metric
}

// CachedRecord is a Record together with the time it was written.
type CachedRecord struct {
	Record    Record
	UpdatedAt time.Time
}

// StationPayload is the endpoint response body: station identity plus,
// when the station has coordinates and data is available, the cached
// weather record.
type StationPayload struct {
	ID      int     `json:"id"`
	Title   string  `json:"title"`
	Weather *Record `json:"weather,omitempty"`
}

// mergeRecord builds a Record from the metric and imperial provider
// responses. Top-level fields are taken from the metric response.
func mergeRecord(metric, imperial *openweather.CurrentAPIResponse) Record {
	return Record{
		Weather:    metric.Weather,
		Base:       metric.Base,
		Visibility: metric.Visibility,
		Wind:       metric.Wind,
		Clouds:     metric.Clouds,
		ObservedAt: metric.ObservedAt,
		Name:       metric.Name,
		Main: UnitsMain{
			Metric:   metric.Main,
			Imperial: imperial.Main,
		},
	}
}
