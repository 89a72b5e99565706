package types

// Station is a fixed point of interest about which weather is reported.
// Stations are created and edited by an administrator and are immutable
// from the client's perspective.
type Station struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Coords        // lat/lng, inlined in JSON
}

// HasCoordinates reports whether the station has been placed on the map.
func (s Station) HasCoordinates() bool {
	return !s.Coords.IsZero()
}
