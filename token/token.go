// Package token implements design-token resolution against a theme, including transitive indirection chains.
package token

import (
	"errors"
	"fmt"
	"strings"
)

// ReferencePrefix marks a token value as an indirection to another token.
const ReferencePrefix = "$"

// MaxDepth bounds indirection chains. Trusted compilers never emit cycles,
// but a hand-edited theme can; the guard turns an infinite loop into an error.
const MaxDepth = 32

// ErrCircularReference indicates an indirection chain that exceeded MaxDepth.
var ErrCircularReference = errors.New("circular token reference")

// Theme maps token names to their values. Values are strings or numbers;
// a string of the form "$name" is an indirection to another token.
// A Theme is immutable once published: a change is a new Theme, never a
// mutation of an existing one.
type Theme map[string]any

// IsReference reports whether a raw value is an indirection to another token.
func IsReference(raw any) bool {
	s, ok := raw.(string)
	return ok && strings.HasPrefix(s, ReferencePrefix)
}

// Resolve returns the terminal value of a raw style property against the theme.
// Non-indirection values are returned unchanged. Indirections are followed
// transitively until a literal is reached. A missing token resolves to the
// bare reference string, matching the lenient behavior of the compilers that
// produce themes.
func Resolve(theme Theme, raw any) (any, error) {
	return resolve(theme, raw, 0)
}

func resolve(theme Theme, raw any, depth int) (any, error) {
	if !IsReference(raw) {
		return raw, nil
	}

	if depth >= MaxDepth {
		return nil, fmt.Errorf("%w: %q", ErrCircularReference, raw)
	}

	name := strings.TrimPrefix(raw.(string), ReferencePrefix)
	next, ok := theme[name]
	if !ok {
		return raw, nil
	}

	return resolve(theme, next, depth+1)
}

// Flatten resolves every token of a theme eagerly, producing a theme free of
// indirections. Tokens whose chains cannot be resolved are dropped rather
// than aborting the whole theme.
func Flatten(theme Theme) Theme {
	flat := make(Theme, len(theme))
	for name, raw := range theme {
		value, err := Resolve(theme, raw)
		if err != nil {
			continue
		}
		flat[name] = value
	}
	return flat
}
