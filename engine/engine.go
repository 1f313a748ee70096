// Package engine manages built-in and custom conjugation engines.
//
// An engine is the opaque producer of verb forms: the application never
// conjugates anything itself, it only searches an engine for verbs and asks
// it for complete conjugation tables.
package engine

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/Neicx/kana-dojo/engine/custom"
	"github.com/Neicx/kana-dojo/filesystem"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/Neicx/kana-dojo/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
)

// Engine defines the required capabilities of a conjugation engine.
type Engine interface {
	// ID returns the unique identifier of the engine.
	ID() string

	// Name returns the human-readable engine name.
	Name() string

	// Search discovers verbs matching a query.
	Search(query string) ([]*verb.Verb, error)

	// Conjugate produces the complete conjugation table for a verb.
	Conjugate(v *verb.Verb) (*verb.Conjugation, error)
}

// Descriptor represents a registered engine before it is loaded.
type Descriptor struct {
	ID       string
	Name     string
	IsCustom bool // Reserved for Lua-based engines.
	Load     func() (Engine, error)
}

func (d *Descriptor) String() string {
	return d.Name
}

// Builtins returns built-in engines.
func Builtins() []*Descriptor {
	return []*Descriptor{
		{
			ID:   BuiltinID,
			Name: BuiltinID,
			Load: func() (Engine, error) {
				return loadBuiltin()
			},
		},
	}
}

// Customs returns all available Lua engines.
func Customs() []*Descriptor {
	descriptors, _ := CustomEngines()
	return descriptors
}

// Get finds an engine by name among builtins and customs.
func Get(name string) (*Descriptor, bool) {
	for _, d := range append(Builtins(), Customs()...) {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// CustomEngines enumerates the Lua engine scripts under the engines directory.
func CustomEngines() ([]*Descriptor, error) {
	files, err := filesystem.API().ReadDir(where.Engines())
	if err != nil {
		return nil, err
	}

	var descriptors []*Descriptor
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		path := filepath.Join(where.Engines(), f.Name())
		name := util.FileStem(f.Name())

		descriptors = append(descriptors, &Descriptor{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			Load: func() (Engine, error) {
				return custom.LoadEngine(path)
			},
		})
	}

	return descriptors, nil
}

// Closest orders candidates by levenshtein distance to the query, closest
// first. Distances are computed against whichever representation of the
// verb is nearest to the query.
func Closest(query string, candidates []*verb.Verb) []*verb.Verb {
	ordered := make([]*verb.Verb, len(candidates))
	copy(ordered, candidates)

	distance := func(v *verb.Verb) int {
		q := strings.ToLower(query)
		return util.Min(
			levenshtein.Distance(q, v.Dictionary),
			levenshtein.Distance(q, v.Reading),
			levenshtein.Distance(q, strings.ToLower(v.Romaji)),
		)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return distance(ordered[i]) < distance(ordered[j])
	})

	return ordered
}
