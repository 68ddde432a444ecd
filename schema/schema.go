// Package schema defines the on-disk document formats for themes and computed mappings, their loaders and their JSON Schemas.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/tinct-ui/tinct/mapping"
	"github.com/tinct-ui/tinct/token"
)

// ThemeDocument is the serialized form of a theme: named design tokens,
// possibly indirected through "$name" references.
type ThemeDocument struct {
	Name   string      `json:"name,omitempty"`
	Tokens token.Theme `json:"tokens"`
}

// MappingDocument is the serialized form of a computed mapping, as produced
// by an external token compiler.
type MappingDocument struct {
	Name       string           `json:"name,omitempty"`
	Components mapping.Computed `json:"components"`
}

// Validate checks that every token value is a string or a number. JSON
// numbers arrive as float64; anything else has no meaning as a design token.
func (d *ThemeDocument) Validate() error {
	for name, value := range d.Tokens {
		switch value.(type) {
		case string, float64, int:
		default:
			return fmt.Errorf("token %q: unsupported value type %T", name, value)
		}
	}
	return nil
}

// Validate checks every style path for the "<appearance>" or
// "<appearance>.<state>" shape.
func (d *MappingDocument) Validate() error {
	for name, component := range d.Components {
		for path := range component.Styles {
			if path == "" {
				return fmt.Errorf("component %q: empty style path", name)
			}
			if dots := countDots(path); dots > 1 {
				return fmt.Errorf("component %q: style path %q has more than one state segment", name, path)
			}
		}
	}
	return nil
}

func countDots(s string) int {
	n := 0
	for _, ch := range s {
		if ch == '.' {
			n++
		}
	}
	return n
}

// ParseTheme decodes and validates a theme document.
func ParseTheme(data []byte) (*ThemeDocument, error) {
	var doc ThemeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse theme document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseMapping decodes and validates a mapping document.
func ParseMapping(data []byte) (*MappingDocument, error) {
	var doc MappingDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse mapping document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ThemeSchema reflects the JSON Schema of the theme document format.
func ThemeSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&ThemeDocument{})
}

// MappingSchema reflects the JSON Schema of the mapping document format.
func MappingSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&MappingDocument{})
}
