// Package jisho provides a client for the Jisho.org dictionary API.
package jisho

import (
	"fmt"
	"strings"

	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/log"
	"github.com/Neicx/kana-dojo/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
)

// notFound marks a query with no results in the relation cache.
const notFound = "\x00"

// normalizedQuery returns a lowercased, trimmed string for consistent comparison.
func normalizedQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// SetRelation persists a mapping between a query and a dictionary entry.
func SetRelation(q string, to *Entry) error {
	err := relationCacher.Set(q, to.Slug)
	if err != nil {
		return err
	}

	if slug := slugCacher.Get(to.Slug); slug.IsAbsent() {
		return slugCacher.Set(to.Slug, to)
	}

	return nil
}

// FindClosest returns the dictionary entry closest to the given word.
// It levenshtein-compares the word with every candidate from the search.
func FindClosest(word string) (*Entry, error) {
	if !viper.GetBool(key.JishoEnable) {
		return nil, fmt.Errorf("jisho integration is disabled")
	}

	word = normalizedQuery(word)

	slug := relationCacher.Get(word)
	if slug.IsPresent() {
		if slug.MustGet() == notFound {
			return nil, fmt.Errorf("no results found on Jisho for %s", word)
		}

		if entry, ok := slugCacher.Get(slug.MustGet()).Get(); ok {
			return entry, nil
		}

		// The cached relation exists but the entry itself is gone from
		// the record cache. Drop the stale relation and search again.
		_ = relationCacher.Delete(word)
		log.Infof("Entry %s expired from the Jisho cache", slug.MustGet())
	}

	entries, err := Search(word)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	if len(entries) == 0 {
		err := fmt.Errorf("no results found on Jisho for %s", word)
		log.Error(err)
		_ = relationCacher.Set(word, notFound)
		return nil, err
	}

	closest := lo.MinBy(entries, func(a, b *Entry) bool {
		return distance(word, a) < distance(word, b)
	})

	log.Info("Found closest match: " + closest.Name())

	_ = relationCacher.Set(word, closest.Slug)
	_ = slugCacher.Set(closest.Slug, closest)
	return closest, nil
}

// distance is the edit distance between the word and whichever written
// representation of the entry is nearest to it.
func distance(word string, e *Entry) int {
	best := levenshtein.Distance(word, normalizedQuery(e.Slug))
	for _, j := range e.Japanese {
		best = util.Min(best,
			levenshtein.Distance(word, j.Word),
			levenshtein.Distance(word, j.Reading),
		)
	}
	return best
}
