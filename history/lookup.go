package history

import (
	"fmt"
	"time"

	"github.com/Neicx/kana-dojo/verb"
)

// SavedLookup represents a single conjugation lookup kept in session history.
type SavedLookup struct {
	Dictionary string
	Reading    string
	Romaji     string
	EngineID   string
	When       time.Time
}

func (s *SavedLookup) encode() string {
	return fmt.Sprintf("%s (%s)", s.Dictionary, s.EngineID)
}

func (s *SavedLookup) String() string {
	if s.Reading == "" || s.Reading == s.Dictionary {
		return s.Dictionary
	}
	return fmt.Sprintf("%s (%s)", s.Dictionary, s.Reading)
}

func newSavedLookup(v *verb.Verb, engineID string) *SavedLookup {
	return &SavedLookup{
		Dictionary: v.Dictionary,
		Reading:    v.Reading,
		Romaji:     v.Romaji,
		EngineID:   engineID,
		When:       time.Now(),
	}
}
