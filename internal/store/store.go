package store

import (
	"errors"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
)

// ErrNotFound is returned when no published station matches an id.
var ErrNotFound = errors.New("station not found")

// StationRepository provides the published station directory. The
// directory is fixed from the client's perspective; it changes only
// through content management, which is outside this service.
type StationRepository interface {
	GetStations() ([]types.Station, error)
	GetStation(id int) (*types.Station, error)
}
