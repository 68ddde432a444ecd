// Package preview implements an interactive previewer for mapped widget styles.
package preview

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap defines the keyboard interactions available within the previewer.
type keymap struct {
	quit, forceQuit,
	toggleHover, toggleFocused, toggleActive,
	toggleDisabled, toggleChecked, toggleIndeterminate,
	clearFlags,
	nextTheme, previousTheme,
	toggleRaw,
	up, down,
	showHelp key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		toggleHover: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hover"),
		),
		toggleFocused: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "focused"),
		),
		toggleActive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "active"),
		),
		toggleDisabled: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disabled"),
		),
		toggleChecked: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "checked"),
		),
		toggleIndeterminate: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "indeterminate"),
		),
		clearFlags: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "clear flags"),
		),
		nextTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		previousTheme: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "previous theme"),
		),
		toggleRaw: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "raw values"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// shortHelp returns the supplementary keybinding legend rendered under the view.
func (k *keymap) shortHelp() []key.Binding {
	return []key.Binding{
		k.up, k.down,
		k.toggleHover, k.toggleFocused, k.toggleActive, k.toggleDisabled,
		k.nextTheme, k.quit,
	}
}

// fullHelp returns the complete keybinding legend.
func (k *keymap) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		{k.toggleHover, k.toggleFocused, k.toggleActive, k.toggleDisabled, k.toggleChecked, k.toggleIndeterminate, k.clearFlags},
		{k.nextTheme, k.previousTheme, k.toggleRaw},
		{k.showHelp, k.quit, k.forceQuit},
	}
}
