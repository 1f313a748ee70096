// Package jisho provides a client for the Jisho.org dictionary API.
package jisho

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/log"
	"github.com/Neicx/kana-dojo/network"
	"github.com/Neicx/kana-dojo/query"
	"github.com/Neicx/kana-dojo/util"
	"github.com/samber/lo"
)

const endpoint = "https://jisho.org/api/v1/search/words"

// searchResponse defines the anticipated JSON response structure for word searches.
type searchResponse struct {
	Data []*Entry `json:"data"`
}

// GetBySlug returns the dictionary entry with the given slug.
func GetBySlug(slug string) (*Entry, error) {
	if entry := slugCacher.Get(slug); entry.IsPresent() {
		return entry.MustGet(), nil
	}

	entries, err := Search(slug)
	if err != nil {
		return nil, err
	}

	entry, ok := lo.Find(entries, func(e *Entry) bool {
		return e.Slug == slug
	})
	if !ok {
		return nil, fmt.Errorf("no entry on Jisho with slug %s", slug)
	}
	return entry, nil
}

// Search returns the dictionary entries that match the given word.
func Search(word string) ([]*Entry, error) {
	word = normalizedQuery(word)
	_ = query.Remember(word, 1)

	if _, failed := failCacher.Get(word).Get(); failed {
		return nil, fmt.Errorf("failed to search for %s", word)
	}

	if slugs, ok := searchCacher.Get(word).Get(); ok {
		entries := lo.FilterMap(slugs, func(slug string, _ int) (*Entry, bool) {
			return slugCacher.Get(slug).Get()
		})

		if len(entries) == 0 {
			_ = searchCacher.Delete(word)
			return Search(word)
		}

		return entries, nil
	}

	log.Infof("Searching Jisho for word %s", word)
	req, err := http.NewRequest(http.MethodGet, endpoint+"?keyword="+url.QueryEscape(word), nil)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Error(err)
		_ = failCacher.Set(word, true)
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		log.Error("Jisho returned status code " + strconv.Itoa(resp.StatusCode))
		_ = failCacher.Set(word, true)
		return nil, fmt.Errorf("invalid response code %d", resp.StatusCode)
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Error(err)
		return nil, err
	}

	entries := response.Data
	log.Infof("Got response from Jisho, found %d results", len(entries))

	slugs := make([]string, len(entries))
	for i, entry := range entries {
		slugs[i] = entry.Slug
		_ = slugCacher.Set(entry.Slug, entry)
	}
	_ = searchCacher.Set(word, slugs)
	return entries, nil
}
