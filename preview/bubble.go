// Package preview implements an interactive previewer for mapped widget styles.
package preview

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/query"
	"github.com/tinct-ui/tinct/schema"
	"github.com/tinct-ui/tinct/theme"
	"github.com/tinct-ui/tinct/util"
)

// componentItem adapts a widget-kind name to the bubbles list contract.
type componentItem struct {
	name       string
	appearance string
	variants   int
	states     int
}

func (c componentItem) Title() string       { return c.name }
func (c componentItem) FilterValue() string { return c.name }
func (c componentItem) Description() string {
	return util.Quantify(c.variants, "variant", "variants") + ", " +
		util.Quantify(c.states, "state", "states")
}

// bubble encapsulates the previewer state: the component list, the style
// handle of the selected widget kind, the active interaction flags and the
// theme rotation.
type bubble struct {
	env    *query.Environment
	keymap *keymap

	componentsC list.Model
	helpC       help.Model

	handle *query.Handle
	flags  []string

	themes       []*schema.ThemeDocument
	themeIndex   int
	themeHistory util.Stack[int]

	// chrome follows the active theme's accent and text tokens so the
	// previewer itself is styled by the engine it demonstrates.
	chrome *theme.Selection[map[string]any]

	showRaw       bool
	width, height int
}

func newBubble(options *Options) (*bubble, error) {
	if options.Environment == nil {
		return nil, errors.New("preview: environment is required")
	}
	if len(options.Themes) == 0 {
		return nil, errors.New("preview: at least one theme is required")
	}

	env := options.Environment

	items := lo.Map(env.Mapping().Names(), func(name string, _ int) list.Item {
		component := env.Mapping()[name]
		return componentItem{
			name:       name,
			appearance: component.Meta.Appearance(""),
			variants:   len(component.Meta.Variants),
			states:     len(component.Meta.States),
		}
	})

	width, height := initialSize()

	componentsC := list.New(items, list.NewDefaultDelegate(), width/3, height-4)
	componentsC.Title = "Components"
	componentsC.SetShowHelp(false)

	chrome, err := theme.SelectMany(env.Store(), map[string]theme.Selector[any]{
		"accent": func(s *theme.Snapshot) any { value, _ := s.Token(theme.SignatureAccent); return value },
		"text":   func(s *theme.Snapshot) any { value, _ := s.Token("textColor"); return value },
	})
	if err != nil {
		return nil, err
	}

	b := &bubble{
		env:         env,
		keymap:      newKeymap(),
		componentsC: componentsC,
		helpC:       help.New(),
		themes:      options.Themes,
		chrome:      chrome,
		showRaw:     viper.GetBool(key.PreviewShowRaw),
		width:       width,
		height:      height,
	}
	b.helpC.Width = width

	env.Store().SetTheme(options.Themes[0].Tokens)
	b.selectComponent()
	return b, nil
}

// initialSize probes the terminal so the first frame is laid out before any
// WindowSizeMsg arrives; Bubble Tea corrects the dimensions on resize.
func initialSize() (width, height int) {
	width, height, err := util.TerminalSize()
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

// Init satisfies the Bubble Tea model contract; the previewer has no
// asynchronous startup work.
func (b *bubble) Init() tea.Cmd {
	return nil
}

// selectComponent rebuilds the style handle for the highlighted widget kind,
// carrying the active interaction flags over.
func (b *bubble) selectComponent() {
	item, ok := b.componentsC.SelectedItem().(componentItem)
	if !ok {
		b.handle = nil
		return
	}

	b.handle = b.env.ResolveStyle(item.name, query.Options{})
	b.handle.SetInteractions(b.flags...)
}

// toggleFlag flips one interaction flag on the current handle.
func (b *bubble) toggleFlag(flag string) {
	if lo.Contains(b.flags, flag) {
		b.flags = lo.Without(b.flags, flag)
	} else {
		b.flags = append(b.flags, flag)
	}

	if b.handle != nil {
		b.handle.SetInteractions(b.flags...)
	}
}

// rotateTheme publishes the next theme document, remembering the current one
// for the previous-theme key.
func (b *bubble) rotateTheme() {
	if len(b.themes) < 2 {
		return
	}

	b.themeHistory.Push(b.themeIndex)
	b.themeIndex = (b.themeIndex + 1) % len(b.themes)
	b.env.Store().SetTheme(b.themes[b.themeIndex].Tokens)
}

// restoreTheme republishes the previously active theme document, if any.
func (b *bubble) restoreTheme() {
	if b.themeHistory.Len() == 0 {
		return
	}

	b.themeIndex = b.themeHistory.Pop()
	b.env.Store().SetTheme(b.themes[b.themeIndex].Tokens)
}
