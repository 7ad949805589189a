package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/hpapi"
)

// Catalog is one successful load of the remote collections.
type Catalog struct {
	Characters []hpapi.Character
	Spells     []hpapi.Spell
	Houses     []hpapi.House
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Characters          []hpapi.Character
	Spells              []hpapi.Spell
	Houses              []hpapi.House
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	SelectedHouse       catalog.House
}

// IsOffline returns true when the API has been unreachable for multiple attempts.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// HouseRecord returns the fetched record for h, if the houses endpoint had one.
func (s Snapshot) HouseRecord(h catalog.House) (hpapi.House, bool) {
	for _, rec := range s.Houses {
		if rec.Name == string(h) {
			return rec, true
		}
	}
	return hpapi.House{}, false
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored collections. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(data *Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || data == nil {
		if err == nil {
			err = fmt.Errorf("empty catalog")
		}
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Characters = cloneSlice(data.Characters)
	s.snapshot.Spells = cloneSlice(data.Spells)
	s.snapshot.Houses = cloneSlice(data.Houses)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// SelectHouse records the house chosen on the house view. It is the only
// writer of SelectedHouse; HouseNone returns the app to the neutral theme.
func (s *Store) SelectHouse(h catalog.House) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SelectedHouse = h
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Characters = cloneSlice(s.snapshot.Characters)
	snap.Spells = cloneSlice(s.snapshot.Spells)
	snap.Houses = cloneSlice(s.snapshot.Houses)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
