// Package sidebar implements the map/sidebar selection workflow: the
// currently selected station, the sidebar render model, the
// saved-station set and deep-link fragments. It is the headless
// counterpart of the map page script and talks to the weather-station
// endpoint through the WeatherAPI boundary.
package sidebar

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/weather"
)

// State identifies the sidebar display phase.
type State int

const (
	// StateIdle shows the default panel; nothing is selected.
	StateIdle State = iota
	// StateSelecting has a station chosen and the header rendered, but
	// no fetch started yet.
	StateSelecting
	// StateLoading has a fetch in flight; the content area shows a
	// loading indicator.
	StateLoading
	// StateLoaded has weather fields rendered for the selection.
	StateLoaded
)

// WeatherAPI is the controller's view of the request endpoint.
type WeatherAPI interface {
	GetStationWeather(id int, units types.Units) (*weather.StationPayload, error)
}

// Controller owns the selection state machine. It is single threaded,
// mirroring the event-driven page it models: callers drive it from one
// goroutine.
type Controller struct {
	stations []types.Station
	api      WeatherAPI
	saved    *SavedStations
	logger   *slog.Logger

	state    State
	selected *types.Station
	units    types.Units
	payload  *weather.StationPayload
	fields   *Fields

	// gen increments on every selection; a response delivered for an
	// older generation is discarded instead of overwriting the sidebar.
	gen int
}

func NewController(stations []types.Station, api WeatherAPI, storage Storage, logger *slog.Logger) *Controller {
	return &Controller{
		stations: stations,
		api:      api,
		saved:    NewSavedStations(storage),
		logger:   logger.With("component", "sidebar-controller"),
		units:    types.UnitsMetric,
	}
}

// State returns the current display phase.
func (c *Controller) State() State {
	return c.state
}

// Selected returns the active station, if any.
func (c *Controller) Selected() (types.Station, bool) {
	if c.selected == nil {
		return types.Station{}, false
	}
	return *c.selected, true
}

// Units returns the active display unit system.
func (c *Controller) Units() types.Units {
	return c.units
}

// Saved exposes the bookmarked-station set.
func (c *Controller) Saved() *SavedStations {
	return c.saved
}

// Fragment returns the addressable location fragment for the current
// selection, or the empty string when idle.
func (c *Controller) Fragment() string {
	if c.selected == nil {
		return ""
	}
	return fmt.Sprintf("#%d", c.selected.ID)
}

// View returns the sidebar render model for the current state.
func (c *Controller) View() View {
	if c.selected == nil {
		return View{}
	}
	return View{
		Header: &Header{
			Title: c.selected.Title,
			Units: c.units,
			Saved: c.saved.Has(c.selected.ID),
		},
		Loading: c.state == StateLoading,
		Fields:  c.fields,
	}
}

// Select activates the station with the given id (marker click or deep
// link). The header renders immediately; weather data follows. An
// unknown id is ignored.
func (c *Controller) Select(id int) {
	st, ok := c.findStation(id)
	if !ok {
		c.logger.Debug("ignoring selection of unknown station", "station_id", id)
		return
	}
	c.activate(st)
}

// ClickAt selects the station nearest to a map click.
func (c *Controller) ClickAt(latitude, longitude float64) {
	st, ok := nearestStation(c.stations, types.NewCoords(latitude, longitude))
	if !ok {
		return
	}
	c.activate(st)
}

// HandleFragment resolves a location fragment ("#42") to a station and
// replays the selection transition. Unknown or malformed fragments are
// ignored and the state is left as is.
func (c *Controller) HandleFragment(fragment string) {
	id, err := strconv.Atoi(strings.TrimPrefix(fragment, "#"))
	if err != nil || id <= 0 {
		return
	}
	c.Select(id)
}

// ToggleUnits switches metric/imperial. When the held response already
// carries both unit blocks the fields re-render locally; otherwise a
// fresh fetch is triggered with the new units.
func (c *Controller) ToggleUnits() {
	c.units = c.units.Other()
	if c.selected == nil {
		return
	}
	if c.payload != nil && c.payload.Weather != nil {
		c.fields = renderFields(c.payload.Weather, c.units)
		return
	}
	c.fetch(*c.selected)
}

// ToggleSave flips the selected station's membership in the saved set.
// Purely local; no network call.
func (c *Controller) ToggleSave() {
	if c.selected == nil {
		return
	}
	c.saved.Toggle(c.selected.ID)
}

// activate replaces the previous selection wholesale and starts the
// weather fetch. Selecting the already-selected station refetches,
// matching a repeated marker click.
func (c *Controller) activate(st types.Station) {
	c.selected = &st
	c.state = StateSelecting
	c.payload = nil
	c.fields = nil
	c.fetch(st)
}

func (c *Controller) fetch(st types.Station) {
	c.gen++
	gen := c.gen
	c.state = StateLoading

	payload, err := c.api.GetStationWeather(st.ID, c.units)
	c.deliver(gen, payload, err)
}

// deliver applies a fetch result unless a newer selection superseded
// it while the request was in flight.
func (c *Controller) deliver(gen int, payload *weather.StationPayload, err error) {
	if gen != c.gen {
		c.logger.Debug("discarding superseded response", "generation", gen)
		return
	}
	if err != nil {
		// Leave the sidebar in its prior state; the user can retry by
		// re-selecting the station.
		c.logger.Warn("weather fetch failed", "station_id", c.selected.ID, "error", err)
		c.state = StateSelecting
		return
	}

	c.payload = payload
	if payload.Weather != nil {
		c.fields = renderFields(payload.Weather, c.units)
	}
	c.state = StateLoaded
}

func (c *Controller) findStation(id int) (types.Station, bool) {
	for _, st := range c.stations {
		if st.ID == id {
			return st, true
		}
	}
	return types.Station{}, false
}
