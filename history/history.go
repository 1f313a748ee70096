// Package history tracks the conjugation lookups of the current session.
//
// History lives in memory only. The sole way it crosses the process
// boundary is the permalink exchange format from the verb package.
package history

import (
	"sync"

	"github.com/Neicx/kana-dojo/verb"
	"github.com/spf13/viper"

	"github.com/Neicx/kana-dojo/key"
)

var (
	mu      sync.RWMutex
	lookups []*SavedLookup
	index   = make(map[string]*SavedLookup)
)

// Get returns the session's lookups, most recent last.
func Get() []*SavedLookup {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]*SavedLookup, len(lookups))
	copy(out, lookups)
	return out
}

// Save records a lookup. Re-looking up a verb moves it to the most recent
// position instead of duplicating it.
func Save(v *verb.Verb, engineID string) {
	if !viper.GetBool(key.HistorySaveOnLookup) {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	record := newSavedLookup(v, engineID)

	if existing, exists := index[record.encode()]; exists {
		for i, l := range lookups {
			if l == existing {
				lookups = append(lookups[:i], lookups[i+1:]...)
				break
			}
		}
	}

	lookups = append(lookups, record)
	index[record.encode()] = record

	if limit := viper.GetInt(key.HistoryLimit); limit > 0 && len(lookups) > limit {
		evicted := lookups[:len(lookups)-limit]
		for _, l := range evicted {
			delete(index, l.encode())
		}
		lookups = lookups[len(lookups)-limit:]
	}
}

// Remove deletes a lookup from the session history.
func Remove(lookup *SavedLookup) {
	mu.Lock()
	defer mu.Unlock()

	k := lookup.encode()
	existing, exists := index[k]
	if !exists {
		return
	}

	for i, l := range lookups {
		if l == existing {
			lookups = append(lookups[:i], lookups[i+1:]...)
			break
		}
	}
	delete(index, k)
}

// Clear drops the whole session history.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	lookups = nil
	index = make(map[string]*SavedLookup)
}

// Export captures the session history as a shareable permalink.
func Export() verb.Permalink {
	mu.RLock()
	defer mu.RUnlock()

	p := verb.Permalink{}
	for _, l := range lookups {
		p.History = append(p.History, l.Dictionary)
	}
	return p
}

// Import restores history entries from a permalink, oldest first. Entries
// already present keep their position.
func Import(p verb.Permalink, engineID string) {
	if !viper.GetBool(key.HistorySaveOnLookup) {
		return
	}

	for _, dictionary := range p.History {
		mu.RLock()
		_, exists := index[(&SavedLookup{Dictionary: dictionary, EngineID: engineID}).encode()]
		mu.RUnlock()
		if exists {
			continue
		}

		Save(&verb.Verb{Dictionary: dictionary}, engineID)
	}
}
