// Package preview implements an interactive previewer for mapped widget styles.
//
// The previewer drives the full resolution pipeline: picking a component
// queries the style engine, toggling interaction flags re-resolves through
// the cache, and switching themes exercises store notification and
// theme-scoped invalidation live.
package preview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinct-ui/tinct/query"
	"github.com/tinct-ui/tinct/schema"
)

// Options encapsulates the runtime configuration for the previewer.
type Options struct {
	Environment *query.Environment
	Themes      []*schema.ThemeDocument
}

// Run initializes and executes the previewer's Bubble Tea application loop.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
