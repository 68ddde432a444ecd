// Package mapping models the computed per-widget style rules consumed by the resolution engine.
//
// A Computed mapping is produced by an external token compiler from a raw
// design schema; tinct consumes it as-is and treats it as immutable for the
// lifetime of the schema.
package mapping

import (
	"sort"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/tinct-ui/tinct/cache"
)

// ScopeAll marks an interaction state as applicable to every appearance of
// its widget kind; any other scope value restricts it to that appearance.
const ScopeAll = "all"

// DefaultAppearance names the style path used when a widget kind declares no
// appearance of its own and the caller requests none.
const DefaultAppearance = "default"

// VariantDef declares one variant dimension of a widget kind: the values it
// admits and the value assumed when the caller sets none.
type VariantDef struct {
	Values  []string `json:"values,omitempty"`
	Default any      `json:"default,omitempty"`
}

// StateDef declares one interaction state. Priority orders resolution when
// several active states redefine the same property; higher priorities are
// layered later and win.
type StateDef struct {
	Priority int    `json:"priority"`
	Scope    string `json:"scope,omitempty"`
}

// Meta carries the declarative surface of a widget kind: its default
// appearance, its variant dimensions, and its interaction states.
type Meta struct {
	DefaultAppearance string                `json:"defaultAppearance,omitempty"`
	Variants          map[string]VariantDef `json:"variants,omitempty"`
	States            map[string]StateDef   `json:"states,omitempty"`
}

// Component pairs a widget kind's meta with its raw, unthemed style bags.
// Styles are keyed by "<appearance>" or "<appearance>.<state>".
type Component struct {
	Meta   Meta                   `json:"meta"`
	Styles map[string]cache.Style `json:"styles"`
}

// Computed maps widget-kind names to their style rules.
type Computed map[string]Component

// Component looks a widget kind up by name.
func (c Computed) Component(name string) mo.Option[Component] {
	component, ok := c[name]
	if !ok {
		return mo.None[Component]()
	}
	return mo.Some(component)
}

// Names returns every widget-kind name, sorted.
func (c Computed) Names() []string {
	names := lo.Keys(c)
	sort.Strings(names)
	return names
}

// Appearance resolves the effective appearance for a request: the caller's
// explicit choice first, then the kind's declared default, then the shared
// fallback.
func (m Meta) Appearance(requested string) string {
	if requested != "" {
		return requested
	}
	if m.DefaultAppearance != "" {
		return m.DefaultAppearance
	}
	return DefaultAppearance
}

// DefaultProps derives the default variant values of a widget kind. The
// result is computed once per mapping change and merged under any
// caller-supplied values.
func DefaultProps(meta Meta) map[string]any {
	props := make(map[string]any, len(meta.Variants))
	for name, variant := range meta.Variants {
		if variant.Default != nil {
			props[name] = variant.Default
		}
	}
	return props
}

// ApplicableStates filters the active interaction flags down to states
// applicable to the given appearance and orders them by ascending priority,
// name-ordered on ties, so that layering is deterministic. A flag the meta
// never declares stays applicable at priority zero: sparse mappings list
// only the style paths themselves, and an absent bag is simply skipped
// during resolution.
func (m Meta) ApplicableStates(appearance string, active []string) []string {
	applicable := lo.Filter(active, func(flag string, _ int) bool {
		state, declared := m.States[flag]
		if !declared {
			return true
		}
		return state.Scope == "" || state.Scope == ScopeAll || state.Scope == appearance
	})

	sort.Slice(applicable, func(i, j int) bool {
		a, b := m.States[applicable[i]], m.States[applicable[j]]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return applicable[i] < applicable[j]
	})

	return applicable
}
