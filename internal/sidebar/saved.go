package sidebar

import (
	"encoding/json"
	"slices"
)

// Saved station ids live under this storage key as a JSON array.
const savedStationsKey = "wncc_saved_stations"

// SavedStations is the client-local set of bookmarked station ids. It
// is owned entirely by the client and never transmitted to the server.
type SavedStations struct {
	storage Storage
}

func NewSavedStations(storage Storage) *SavedStations {
	return &SavedStations{storage: storage}
}

// List returns the saved ids in insertion order.
func (s *SavedStations) List() []int {
	raw, ok := s.storage.Get(savedStationsKey)
	if !ok {
		return nil
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// Corrupt entry; treat as empty rather than failing the UI.
		return nil
	}
	return ids
}

// Has reports whether the station id is saved.
func (s *SavedStations) Has(id int) bool {
	return slices.Contains(s.List(), id)
}

// Add saves a station id. Adding an already-saved id is a no-op.
func (s *SavedStations) Add(id int) {
	ids := s.List()
	if slices.Contains(ids, id) {
		return
	}
	s.write(append(ids, id))
}

// Remove deletes a station id from the set. Removing an absent id is a
// no-op.
func (s *SavedStations) Remove(id int) {
	ids := s.List()
	i := slices.Index(ids, id)
	if i < 0 {
		return
	}
	s.write(slices.Delete(ids, i, i+1))
}

// Toggle flips membership and returns the new state.
func (s *SavedStations) Toggle(id int) bool {
	if s.Has(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

func (s *SavedStations) write(ids []int) {
	if len(ids) == 0 {
		s.storage.Remove(savedStationsKey)
		return
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	s.storage.Set(savedStationsKey, string(raw))
}
