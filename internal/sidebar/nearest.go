package sidebar

import (
	"math"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance between two coordinate
// pairs in kilometers.
func haversineKm(a, b types.Coords) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// nearestStation picks the station closest to the point. Stations
// without coordinates are skipped. Ties go to the first station in
// input order because the comparison is strictly less-than.
func nearestStation(stations []types.Station, point types.Coords) (types.Station, bool) {
	var (
		best     types.Station
		bestDist = math.Inf(1)
		found    bool
	)
	for _, st := range stations {
		if !st.HasCoordinates() {
			continue
		}
		if d := haversineKm(point, st.Coords); d < bestDist {
			best = st
			bestDist = d
			found = true
		}
	}
	return best, found
}
