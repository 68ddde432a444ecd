// Package cache provides the bounded LRU style cache that makes per-render style resolution cheap.
//
// The cache is confined to a single render sequence; callers must not share
// one instance across goroutines without external synchronization.
package cache

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// DefaultMaxSize bounds a cache constructed without an explicit capacity.
const DefaultMaxSize = 1000

// Style is a flat, theme-resolved bag of style properties.
type Style map[string]any

// Stats exposes cache occupancy for introspection.
type Stats struct {
	Size    int `json:"size"`
	MaxSize int `json:"maxSize"`
}

// entry pairs a resolved style with its draw from the global access counter.
// accessCount is a total order of "most recently touched", not a timestamp.
type entry struct {
	style       Style
	accessCount uint64
}

// Cache is a capacity-bounded key→style map with least-recently-used
// eviction and theme-scoped bulk invalidation. Staleness is governed
// entirely by explicit invalidation, never by time.
type Cache struct {
	entries map[string]*entry
	maxSize int
	counter uint64
}

// New constructs a cache holding at most maxSize entries. A non-positive
// capacity falls back to DefaultMaxSize.
func New(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache{
		entries: make(map[string]*entry),
		maxSize: maxSize,
	}
}

// BuildKey derives the canonical cache key for a style query. The key is a
// pure function of its inputs: variant insertion order and interaction order
// never change the result. Variant entries holding nil or false are treated
// as "not set" and excluded so they cannot fragment the cache.
func BuildKey(component, appearance string, variants map[string]any, interactions []string, themeID string) string {
	if appearance == "" {
		appearance = "default"
	}

	names := make([]string, 0, len(variants))
	for name, value := range variants {
		if value == nil || value == false {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+":"+stringify(variants[name]))
	}

	flags := make([]string, len(interactions))
	copy(flags, interactions)
	sort.Strings(flags)

	segments := []string{
		component,
		appearance,
		strings.Join(pairs, "|"),
		strings.Join(flags, "|"),
		themeID,
	}
	return strings.Join(segments, "::")
}

// stringify renders a variant value the same way regardless of its dynamic
// type, so that logically identical queries hash to identical keys.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// Get returns the style stored under key and marks it most recently used.
// A miss returns (nil, false) and never creates an entry.
func (c *Cache) Get(key string) (Style, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	c.counter++
	e.accessCount = c.counter
	return e.style, true
}

// Set stores a style under key. Inserting a new key at capacity first evicts
// the single entry with the globally smallest access count; overwriting an
// existing key never evicts.
func (c *Cache) Set(key string, style Style) {
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.counter++
	c.entries[key] = &entry{style: style, accessCount: c.counter}
}

func (c *Cache) evictOldest() {
	if len(c.entries) == 0 {
		return
	}

	oldest := lo.MinBy(lo.Keys(c.entries), func(a, b string) bool {
		return c.entries[a].accessCount < c.entries[b].accessCount
	})
	delete(c.entries, oldest)
}

// InvalidateTheme removes every entry whose key was built against themeID.
// Keys are collected before deletion so the map is never mutated while it is
// being iterated.
func (c *Cache) InvalidateTheme(themeID string) {
	suffix := "::" + themeID

	stale := lo.Filter(lo.Keys(c.entries), func(key string, _ int) bool {
		return strings.HasSuffix(key, suffix)
	})

	for _, key := range stale {
		delete(c.entries, key)
	}
}

// Clear drops every entry and resets the access counter. Used when the
// mapping itself changes: a mapping change can alter the shape of cached
// styles, not merely their token values, so partial invalidation is unsafe.
func (c *Cache) Clear() {
	c.entries = make(map[string]*entry)
	c.counter = 0
}

// GetStats reports current occupancy. Introspection only, no side effects.
func (c *Cache) GetStats() Stats {
	return Stats{Size: len(c.entries), MaxSize: c.maxSize}
}
