package engine

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/viper"
)

// BuiltinID is the identifier of the embedded dataset engine.
const BuiltinID = "builtin"

// The builtin engine ships a pre-conjugated dataset of common verbs.
// Forms are data, not rules: the engine never derives a conjugation.
//
//go:embed dataset.json
var datasetJSON []byte

type datasetEntry struct {
	Verb       *verb.Verb      `json:"verb"`
	Categories []verb.Category `json:"categories"`
}

type builtinEngine struct {
	verbs  []*verb.Verb
	tables map[string][]verb.Category
}

var (
	builtinOnce     sync.Once
	builtinInstance *builtinEngine
	builtinErr      error
)

func loadBuiltin() (*builtinEngine, error) {
	builtinOnce.Do(func() {
		var entries []datasetEntry
		if err := json.Unmarshal(datasetJSON, &entries); err != nil {
			builtinErr = fmt.Errorf("load builtin dataset: %w", err)
			return
		}

		e := &builtinEngine{tables: make(map[string][]verb.Category)}
		for _, entry := range entries {
			e.verbs = append(e.verbs, entry.Verb)
			e.tables[entry.Verb.Dictionary] = entry.Categories
		}
		builtinInstance = e
	})

	return builtinInstance, builtinErr
}

func (e *builtinEngine) ID() string {
	return BuiltinID
}

func (e *builtinEngine) Name() string {
	return BuiltinID
}

// Search matches the query fuzzily against dictionary form, reading, romaji
// and meanings, and orders results by edit distance to the query.
func (e *builtinEngine) Search(query string) ([]*verb.Verb, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var matched []*verb.Verb
	for _, v := range e.verbs {
		if matchesVerb(query, v) {
			matched = append(matched, v)
		}
	}

	matched = Closest(query, matched)

	if limit := viper.GetInt(key.SearchLimit); limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func matchesVerb(query string, v *verb.Verb) bool {
	candidates := append([]string{v.Dictionary, v.Reading, v.Romaji}, v.Meanings...)
	for _, c := range candidates {
		if fuzzy.MatchNormalizedFold(query, c) {
			return true
		}
	}
	return false
}

func (e *builtinEngine) Conjugate(v *verb.Verb) (*verb.Conjugation, error) {
	categories, ok := e.tables[v.Dictionary]
	if !ok {
		return nil, fmt.Errorf("verb %s is not in the builtin dataset", v.Dictionary)
	}

	return &verb.Conjugation{
		Verb:       v,
		Categories: categories,
		EngineID:   e.ID(),
	}, nil
}
