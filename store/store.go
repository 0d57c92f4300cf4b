package store

import "sync"

// Store guards the accumulated state for concurrent HTTP handlers. All
// mutation goes through Apply/Clear/Hydrate; readers work on deep copies so
// projections stay pure functions of a stable snapshot.
type Store struct {
	mu    sync.RWMutex
	state *State
}

// NewStore returns a store wrapping an empty state.
func NewStore() *Store {
	return &Store{state: NewState()}
}

// Apply merges a normalization patch into the state.
func (s *Store) Apply(p *Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Merge(s.state, p)
}

// Clear drops everything.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NewState()
}

// Hydrate replaces the state wholesale, typically with a persisted snapshot
// at startup. A nil snapshot resets to empty.
func (s *Store) Hydrate(snapshot *State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot == nil {
		s.state = NewState()
		return
	}
	if snapshot.Searches == nil {
		snapshot.Searches = make(map[string]Search)
	}
	if snapshot.Entities.Users == nil {
		snapshot.Entities.Users = make(map[string]User)
	}
	if snapshot.Entities.Categories == nil {
		snapshot.Entities.Categories = make(map[string]Category)
	}
	if snapshot.Entities.Venues == nil {
		snapshot.Entities.Venues = make(map[string]Venue)
	}
	s.state = snapshot
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := NewState()
	out.SearchOrder = append(out.SearchOrder, s.state.SearchOrder...)
	for id, sr := range s.state.Searches {
		sr.Results = append([]string(nil), sr.Results...)
		out.Searches[id] = sr
	}
	for id, u := range s.state.Entities.Users {
		out.Entities.Users[id] = u
	}
	for id, c := range s.state.Entities.Categories {
		out.Entities.Categories[id] = c
	}
	for id, v := range s.state.Entities.Venues {
		v.Categories = append([]string(nil), v.Categories...)
		v.Photos = append([]Photo(nil), v.Photos...)
		v.Tips = append([]Tip(nil), v.Tips...)
		out.Entities.Venues[id] = v
	}
	return out
}
