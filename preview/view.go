// Package preview implements an interactive previewer for mapped widget styles.
package preview

import (
	"fmt"
	"sort"
	"strings"

	bubbleskey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/color"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/query"
	"github.com/tinct-ui/tinct/render"
	"github.com/tinct-ui/tinct/style"
	"github.com/tinct-ui/tinct/util"
)

var (
	paneStyle    = lipgloss.NewStyle().Padding(1, 2)
	swatchFrame  = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder())
	propertyName = style.Fg(color.Cyan)
)

// View renders the component list next to the resolved swatch and its
// property table.
func (b *bubble) View() string {
	left := paneStyle.Render(b.componentsC.View())
	right := paneStyle.Render(b.viewDetail())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	legend := b.helpC.View(b)
	return lipgloss.JoinVertical(lipgloss.Left, body, legend)
}

// ShortHelp satisfies help.KeyMap.
func (b *bubble) ShortHelp() []bubbleskey.Binding {
	return b.keymap.shortHelp()
}

// FullHelp satisfies help.KeyMap.
func (b *bubble) FullHelp() [][]bubbleskey.Binding {
	return b.keymap.fullHelp()
}

func (b *bubble) viewDetail() string {
	if b.handle == nil {
		return style.Faint("No component selected")
	}

	item, _ := b.componentsC.SelectedItem().(componentItem)
	resolved := b.handle.Style()

	lines := []string{
		b.titleStyle()(util.Capitalize(item.name)),
		"",
		b.viewThemeLine(),
		b.viewFlagsLine(),
		"",
		swatchFrame.Render(render.Style(resolved).Render(viper.GetString(key.PreviewSampleText))),
		"",
	}

	lines = append(lines, b.viewProperties(resolved)...)

	stats := b.env.CacheStats()
	lines = append(lines, "", style.Faint(fmt.Sprintf("cache %d/%d", stats.Size, stats.MaxSize)))

	width := util.Max(20, b.width-b.width/3-8)
	return wordwrap.String(strings.Join(lines, "\n"), width)
}

// titleStyle colors section titles with the active theme's accent token,
// read through the stabilized chrome selection.
func (b *bubble) titleStyle() func(string) string {
	chrome := b.chrome.Get()

	accent, ok := chrome["accent"].(string)
	if !ok || accent == "" {
		return style.Title
	}
	return style.Tag(color.New("230"), color.New(accent))
}

func (b *bubble) viewThemeLine() string {
	doc := b.themes[b.themeIndex]

	name := doc.Name
	if name == "" {
		name = fmt.Sprintf("theme %d", b.themeIndex+1)
	}

	id := ""
	if snapshot := b.env.Snapshot(); snapshot != nil {
		id = snapshot.ID
	}

	return fmt.Sprintf("%s %s %s", style.Bold("Theme:"), style.Italic(name), style.Faint(id))
}

func (b *bubble) viewFlagsLine() string {
	rendered := lo.Map(query.Interactions(), func(flag string, _ int) string {
		if lo.Contains(b.flags, flag) {
			return style.Tag(color.New("230"), color.New("62"))(flag)
		}
		return style.Faint(flag)
	})

	return strings.Join(rendered, " ")
}

func (b *bubble) viewProperties(resolved map[string]any) []string {
	names := lo.Keys(resolved)
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		line := fmt.Sprintf("%s %v", propertyName(name+":"), resolved[name])

		if b.showRaw {
			if raw, ok := b.rawValue(name); ok {
				line += " " + style.Faint(fmt.Sprintf("(%v)", raw))
			}
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		lines = append(lines, style.Faint("empty style"))
	}
	return lines
}

// rawValue finds the unresolved source of a property in the selected
// component's base bag, for the raw-values display mode.
func (b *bubble) rawValue(property string) (any, bool) {
	item, ok := b.componentsC.SelectedItem().(componentItem)
	if !ok {
		return nil, false
	}

	component, ok := b.env.Mapping()[item.name]
	if !ok {
		return nil, false
	}

	bag, ok := component.Styles[item.appearance]
	if !ok {
		return nil, false
	}

	raw, ok := bag[property]
	return raw, ok
}
