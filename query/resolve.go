package query

import (
	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/log"
	"github.com/tinct-ui/tinct/mapping"
	"github.com/tinct-ui/tinct/theme"
	"github.com/tinct-ui/tinct/token"
)

// Options carries the caller's per-widget styling request: an optional
// appearance and the variant values to merge over the widget kind's
// defaults. A nil variant value never overrides a default.
type Options struct {
	Appearance string
	Variants   map[string]any
}

// Handle is the per-widget-instance entry point returned by ResolveStyle.
// It owns the instance's ephemeral interaction flags; the flags are never
// cached globally and die with the handle.
type Handle struct {
	env          *Environment
	component    string
	appearance   string
	variants     map[string]any
	interactions []string
}

// ResolveStyle builds a style handle for one widget instance. The widget
// kind's default appearance and variant values are derived from the mapping
// and the caller's options are merged over them. An unknown component or a
// missing mapping is not an error: the handle simply resolves to an empty
// style until the environment is ready.
func (e *Environment) ResolveStyle(component string, opts Options) *Handle {
	handle := &Handle{
		env:        e,
		component:  component,
		appearance: mapping.Meta{}.Appearance(opts.Appearance),
		variants:   opts.Variants,
	}

	if e.mapping == nil {
		return handle
	}

	e.mapping.Component(component).ForEach(func(c mapping.Component) {
		handle.appearance = c.Meta.Appearance(opts.Appearance)

		merged := mapping.DefaultProps(c.Meta)
		for name, value := range opts.Variants {
			if value == nil {
				continue
			}
			merged[name] = value
		}
		handle.variants = merged
	})

	return handle
}

// SetInteractions replaces the instance's active interaction flags. Order is
// irrelevant for caching; resolution order comes from the declared state
// priorities, not from this list.
func (h *Handle) SetInteractions(flags ...string) {
	h.interactions = flags
}

// Interactions returns the currently active interaction flags.
func (h *Handle) Interactions() []string {
	return h.interactions
}

// Theme returns the snapshot the handle currently resolves against.
func (h *Handle) Theme() *theme.Snapshot {
	return h.env.Snapshot()
}

// Style returns the theme-resolved style for the instance's current state,
// served from the cache when the exact combination has been resolved before.
func (h *Handle) Style() cache.Style {
	snapshot := h.env.Snapshot()
	if h.env.mapping == nil || snapshot == nil {
		return cache.Style{}
	}

	component, ok := h.env.mapping[h.component]
	if !ok {
		return cache.Style{}
	}

	key := cache.BuildKey(h.component, h.appearance, h.variants, h.interactions, snapshot.ID)
	if style, hit := h.env.cache.Get(key); hit {
		return style
	}

	style := ResolveVariant(component, h.appearance, h.interactions, snapshot)
	h.env.cache.Set(key, style)
	return style
}

// ResolveVariant flattens one (appearance, interactions) combination of a
// widget kind into a theme-resolved style bag. The base appearance bag is
// laid down first, then each applicable active state in ascending priority,
// so a higher-priority state wins on conflicting properties. Every value
// runs through token resolution; a property whose indirection chain cannot
// be resolved is dropped on its own without aborting the computation.
func ResolveVariant(component mapping.Component, appearance string, interactions []string, snapshot *theme.Snapshot) cache.Style {
	resolved := cache.Style{}

	layer := func(path string) {
		bag, ok := component.Styles[path]
		if !ok {
			return
		}
		for property, raw := range bag {
			value, err := token.Resolve(snapshot.Tokens, raw)
			if err != nil {
				log.Warnf("dropping style property %s at %s: %v", property, path, err)
				continue
			}
			resolved[property] = value
		}
	}

	layer(appearance)
	for _, state := range component.Meta.ApplicableStates(appearance, interactions) {
		layer(appearance + "." + state)
	}

	return resolved
}
