// Package preview implements an interactive previewer for mapped widget styles.
package preview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinct-ui/tinct/query"
)

// Update routes terminal events to the previewer state machine.
func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.componentsC.SetSize(msg.Width/3, msg.Height-4)
		b.helpC.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		// Filtering captures every key until accepted or cancelled.
		if b.componentsC.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, b.keymap.forceQuit), key.Matches(msg, b.keymap.quit):
			return b, tea.Quit

		case key.Matches(msg, b.keymap.toggleHover):
			b.toggleFlag(query.Hover)
			return b, nil
		case key.Matches(msg, b.keymap.toggleFocused):
			b.toggleFlag(query.Focused)
			return b, nil
		case key.Matches(msg, b.keymap.toggleActive):
			b.toggleFlag(query.Active)
			return b, nil
		case key.Matches(msg, b.keymap.toggleDisabled):
			b.toggleFlag(query.Disabled)
			return b, nil
		case key.Matches(msg, b.keymap.toggleChecked):
			b.toggleFlag(query.Checked)
			return b, nil
		case key.Matches(msg, b.keymap.toggleIndeterminate):
			b.toggleFlag(query.Indeterminate)
			return b, nil

		case key.Matches(msg, b.keymap.clearFlags):
			b.flags = nil
			if b.handle != nil {
				b.handle.SetInteractions()
			}
			return b, nil

		case key.Matches(msg, b.keymap.nextTheme):
			b.rotateTheme()
			return b, nil
		case key.Matches(msg, b.keymap.previousTheme):
			b.restoreTheme()
			return b, nil

		case key.Matches(msg, b.keymap.toggleRaw):
			b.showRaw = !b.showRaw
			return b, nil

		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.componentsC, cmd = b.componentsC.Update(msg)
	b.selectComponent()
	return b, cmd
}
