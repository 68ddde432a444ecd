// Package render translates resolved style property bags into lipgloss styles for terminal output.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/color"
)

// Recognized style properties. Resolved bags may carry more; unknown
// properties are ignored so mappings can target richer hosts than a
// terminal.
const (
	PropBackgroundColor   = "backgroundColor"
	PropColor             = "color"
	PropBorderColor       = "borderColor"
	PropBorder            = "border"
	PropBold              = "bold"
	PropItalic            = "italic"
	PropUnderline         = "underline"
	PropFaint             = "faint"
	PropPaddingHorizontal = "paddingHorizontal"
	PropPaddingVertical   = "paddingVertical"
	PropWidth             = "width"
)

// Style builds a lipgloss style from a resolved property bag. Properties a
// terminal cannot express are skipped silently; the bag stays authoritative.
func Style(bag cache.Style) lipgloss.Style {
	s := lipgloss.NewStyle()

	if v, ok := str(bag, PropColor); ok {
		s = s.Foreground(color.New(v))
	}
	if v, ok := str(bag, PropBackgroundColor); ok {
		s = s.Background(color.New(v))
	}
	if boolean(bag, PropBold) {
		s = s.Bold(true)
	}
	if boolean(bag, PropItalic) {
		s = s.Italic(true)
	}
	if boolean(bag, PropUnderline) {
		s = s.Underline(true)
	}
	if boolean(bag, PropFaint) {
		s = s.Faint(true)
	}

	h, hasH := number(bag, PropPaddingHorizontal)
	v, hasV := number(bag, PropPaddingVertical)
	if hasH || hasV {
		s = s.Padding(v, h)
	}

	if w, ok := number(bag, PropWidth); ok {
		s = s.Width(w)
	}

	if border, ok := str(bag, PropBorder); ok {
		s = s.Border(borderStyle(border))
		if bc, ok := str(bag, PropBorderColor); ok {
			s = s.BorderForeground(color.New(bc))
		}
	}

	return s
}

func borderStyle(name string) lipgloss.Border {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

func str(bag cache.Style, prop string) (string, bool) {
	v, ok := bag[prop].(string)
	return v, ok && v != ""
}

func boolean(bag cache.Style, prop string) bool {
	v, ok := bag[prop].(bool)
	return ok && v
}

// number accepts the types a JSON decoder or Go literal can produce.
func number(bag cache.Style, prop string) (int, bool) {
	switch v := bag[prop].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
