package query

// Well-known interaction flags. States are not mutually exclusive: a widget
// can be focused and active at once, with declared state priorities breaking
// ties when both redefine a property. Mappings are free to declare states
// beyond this set.
const (
	Hover         = "hover"
	Focused       = "focused"
	Active        = "active"
	Disabled      = "disabled"
	Checked       = "checked"
	Indeterminate = "indeterminate"
)

// Interactions lists the well-known flags in declaration order, for CLI
// completion and the previewer's toggle keys.
func Interactions() []string {
	return []string{Hover, Focused, Active, Disabled, Checked, Indeterminate}
}
