package sidebar

import (
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/weather"
)

// View is the render model for the sidebar. A nil Header means the
// default idle panel (logo plus instructional text) is shown.
type View struct {
	Header  *Header
	Loading bool
	Fields  *Fields
}

// Header is the optimistically rendered top of the sidebar: it appears
// as soon as a station is selected, before weather data returns.
type Header struct {
	Title string
	Units types.Units
	Saved bool
}

// Fields are the rendered weather values for the active unit system.
type Fields struct {
	Condition   string
	Description string
	Temperature float64
	FeelsLike   float64
	Pressure    float64
	Humidity    int
}

// renderFields projects a weather record into display fields for the
// given unit system.
func renderFields(rec *weather.Record, units types.Units) *Fields {
	f := &Fields{}
	if len(rec.Weather) > 0 {
		f.Condition = rec.Weather[0].Main
		f.Description = rec.Weather[0].Description
	}
	main := rec.Main.Block(units)
	f.Temperature = main.Temp
	f.FeelsLike = main.FeelsLike
	f.Pressure = main.Pressure
	f.Humidity = main.Humidity
	return f
}
