package types

type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// IsZero reports whether either coordinate is unset. A zero value on
// either axis means an administrator has not placed the station yet.
func (c Coords) IsZero() bool {
	return c.Latitude == 0 || c.Longitude == 0
}
