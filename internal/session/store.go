package session

import (
	"sync"

	"github.com/mrmohdriyas/digital-wellness/internal"
)

// Store accumulates the app entries added during one editing session.
// Entries live only in memory and survive submission; nothing short of a
// process restart clears them.
type Store struct {
	mu      sync.RWMutex
	entries []internal.AppEntry
}

func NewStore() *Store {
	return &Store{}
}

// Append adds an already-validated entry to the end of the sequence.
func (s *Store) Append(entry internal.AppEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// RemoveAt deletes the entry at index. Out-of-range indices are silently
// ignored: the UI may issue removals against positions that went stale
// after another mutation.
func (s *Store) RemoveAt(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.entries) {
		return
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
}

// Enumerate returns a copy of the current entries in insertion order.
func (s *Store) Enumerate() []internal.AppEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.AppEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Aggregate folds the current entries into summary totals and a name-keyed
// usage map. Totals count every entry; the map is last-write-wins per name,
// so of duplicate-named entries only the most recent survives there.
func (s *Store) Aggregate() (totalScreenTime, totalOpens int64, apps map[string]internal.AppUsage) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	apps = make(map[string]internal.AppUsage, len(s.entries))
	for _, e := range s.entries {
		totalScreenTime += e.ScreenTimeSeconds
		totalOpens += e.Opens
		apps[e.Name] = internal.AppUsage{ScreenTimeSeconds: e.ScreenTimeSeconds, Opens: e.Opens}
	}
	return totalScreenTime, totalOpens, apps
}
