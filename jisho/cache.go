// Package jisho provides a client for the Jisho.org dictionary API.
package jisho

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/Neicx/kana-dojo/filesystem"
	"github.com/Neicx/kana-dojo/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// cacheData defines the structured format for persisting cached Jisho records to disk.
type cacheData[K comparable, T any] struct {
	Entries map[K]T `json:"entries"`
}

// cacher provides a generic, thread-safe wrapper for high-level caching operations.
type cacher[K comparable, T any] struct {
	internal   *gache.Cache[*cacheData[K, T]]
	keyWrapper func(K) K
	mu         sync.RWMutex
}

// Get retrieves a value from the cache associated with the specified key.
func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	entry, ok := data.Entries[c.keyWrapper(key)]
	if ok {
		return mo.Some(entry)
	}

	return mo.None[T]()
}

// Set persists a key-value pair to the cache.
func (c *cacher[K, T]) Set(key K, t T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if !expired && data != nil {
		data.Entries[c.keyWrapper(key)] = t
		return c.internal.Set(data)
	}

	internal := &cacheData[K, T]{Entries: make(map[K]T)}
	internal.Entries[c.keyWrapper(key)] = t
	return c.internal.Set(internal)
}

// Delete removes the entry associated with the specified key from the cache.
func (c *cacher[K, T]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if !expired && data != nil {
		delete(data.Entries, c.keyWrapper(key))
		return c.internal.Set(data)
	}

	return nil
}

// relationCacher persists query-to-slug mappings.
var relationCacher = &cacher[string, string]{
	internal: gache.New[*cacheData[string, string]](
		&gache.Options{
			Path:       where.Jisho(),
			FileSystem: &filesystem.GacheFs{},
		},
	),
	keyWrapper: normalizedQuery,
}

// searchCacher persists search result pages for optimized lookup.
var searchCacher = &cacher[string, []string]{
	internal: gache.New[*cacheData[string, []string]](
		&gache.Options{
			Path:       filepath.Join(where.Cache(), "jisho_search_cache.json"),
			Lifetime:   time.Hour * 24 * 10,
			FileSystem: &filesystem.GacheFs{},
		},
	),
	keyWrapper: normalizedQuery,
}

// slugCacher provides local persistence for full dictionary entries.
var slugCacher = &cacher[string, *Entry]{
	internal: gache.New[*cacheData[string, *Entry]](
		&gache.Options{
			Path:       filepath.Join(where.Cache(), "jisho_slug_cache.json"),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		},
	),
	keyWrapper: func(slug string) string { return slug },
}

// failCacher serves as short-term persistence for failed queries to mitigate redundant API pressure.
var failCacher = &cacher[string, bool]{
	internal: gache.New[*cacheData[string, bool]](
		&gache.Options{
			Path:       filepath.Join(where.Cache(), "jisho_fail_cache.json"),
			Lifetime:   time.Minute,
			FileSystem: &filesystem.GacheFs{},
		},
	),
	keyWrapper: normalizedQuery,
}
