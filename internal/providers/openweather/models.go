package openweather

import "html"

// CurrentAPIResponse models the OpenWeather current weather response.
// Only the fields the service consumes are mapped; see
// https://openweathermap.org/current for the full payload.
type CurrentAPIResponse struct {
	Coord      CoordBlock  `json:"coord"`
	Weather    []Condition `json:"weather"`
	Base       string      `json:"base,omitempty"`
	Main       MainBlock   `json:"main"`
	Visibility int         `json:"visibility,omitempty"`
	Wind       WindBlock   `json:"wind"`
	Clouds     CloudsBlock `json:"clouds"`
	ObservedAt int64       `json:"dt"`
	Name       string      `json:"name,omitempty"`
}

type CoordBlock struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Condition is one entry of the "weather" array: a coded condition
// summary plus human-readable description and icon id.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainBlock holds the numeric conditions in whichever unit system the
// request asked for.
type MainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min,omitempty"`
	TempMax   float64 `json:"temp_max,omitempty"`
	Pressure  float64 `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type WindBlock struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

type CloudsBlock struct {
	All int `json:"all"`
}

// sanitize escapes every string field in place so the payload is safe
// to render verbatim later. Numeric and condition-code fields are left
// untouched.
func (r *CurrentAPIResponse) sanitize() {
	r.Base = html.EscapeString(r.Base)
	r.Name = html.EscapeString(r.Name)
	for i := range r.Weather {
		r.Weather[i].Main = html.EscapeString(r.Weather[i].Main)
		r.Weather[i].Description = html.EscapeString(r.Weather[i].Description)
		r.Weather[i].Icon = html.EscapeString(r.Weather[i].Icon)
	}
}
