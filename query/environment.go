// Package query orchestrates per-widget style resolution against the ambient mapping, theme store and style cache.
package query

import (
	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/mapping"
	"github.com/tinct-ui/tinct/theme"
)

// Environment threads the ambient styling inputs through the engine
// explicitly: the computed mapping, the theme store and the style cache.
// One environment corresponds to one styled widget tree; independent trees
// get independent environments.
type Environment struct {
	mapping     mapping.Computed
	store       *theme.Store
	cache       *cache.Cache
	lastThemeID string
	unsubscribe func()
}

// NewEnvironment wires an environment together. The environment subscribes
// to the store so that every published theme invalidates the cache entries
// keyed by its predecessor; the mapping may be nil until styling data is
// available.
func NewEnvironment(m mapping.Computed, store *theme.Store, c *cache.Cache) *Environment {
	if c == nil {
		c = cache.New(cache.DefaultMaxSize)
	}

	env := &Environment{
		mapping: m,
		store:   store,
		cache:   c,
	}

	if store != nil {
		if snapshot := store.GetSnapshot(); snapshot != nil {
			env.lastThemeID = snapshot.ID
		}
		env.unsubscribe = store.Subscribe(env.onThemeChange)
	}

	return env
}

// onThemeChange drops the cache partition of the theme being replaced. Only
// the superseded theme's entries go; styles resolved against other themes
// stay valid.
func (e *Environment) onThemeChange() {
	var next string
	if snapshot := e.store.GetSnapshot(); snapshot != nil {
		next = snapshot.ID
	}

	if e.lastThemeID != "" && e.lastThemeID != next {
		e.cache.InvalidateTheme(e.lastThemeID)
	}
	e.lastThemeID = next
}

// SetMapping swaps the computed mapping and clears the whole cache. A
// mapping change can alter the shape of cached styles, not merely their
// token values, so theme-scoped invalidation would be unsafe here.
func (e *Environment) SetMapping(m mapping.Computed) {
	e.mapping = m
	e.cache.Clear()
}

// Mapping returns the currently ambient mapping.
func (e *Environment) Mapping() mapping.Computed {
	return e.mapping
}

// Store returns the theme store the environment reads from.
func (e *Environment) Store() *theme.Store {
	return e.store
}

// Snapshot returns the currently published theme snapshot, or nil while the
// environment is not yet themed.
func (e *Environment) Snapshot() *theme.Snapshot {
	if e.store == nil {
		return nil
	}
	return e.store.GetSnapshot()
}

// CacheStats exposes the style cache occupancy.
func (e *Environment) CacheStats() cache.Stats {
	return e.cache.GetStats()
}

// Close cancels the environment's theme subscription.
func (e *Environment) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}
