package mapping

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tinct-ui/tinct/cache"
)

func buttonMeta() Meta {
	return Meta{
		DefaultAppearance: "filled",
		Variants: map[string]VariantDef{
			"status": {Values: []string{"basic", "primary", "danger"}, Default: "basic"},
			"size":   {Values: []string{"small", "medium", "large"}, Default: "medium"},
		},
		States: map[string]StateDef{
			"disabled": {Priority: 0, Scope: ScopeAll},
			"active":   {Priority: 1, Scope: ScopeAll},
			"focused":  {Priority: 2, Scope: "outline"},
		},
	}
}

func TestComputed(t *testing.T) {
	Convey("Computed mapping", t, func() {
		computed := Computed{
			"Button": {Meta: buttonMeta(), Styles: map[string]cache.Style{"filled": {}}},
			"Input":  {},
		}

		Convey("Component lookup should distinguish present from absent", func() {
			So(computed.Component("Button").IsPresent(), ShouldBeTrue)
			So(computed.Component("Calendar").IsPresent(), ShouldBeFalse)
		})

		Convey("Names should come back sorted", func() {
			So(computed.Names(), ShouldResemble, []string{"Button", "Input"})
		})
	})
}

func TestAppearance(t *testing.T) {
	Convey("Appearance resolution", t, func() {
		Convey("Caller choice wins", func() {
			So(buttonMeta().Appearance("outline"), ShouldEqual, "outline")
		})
		Convey("Declared default is next", func() {
			So(buttonMeta().Appearance(""), ShouldEqual, "filled")
		})
		Convey("Shared fallback covers bare metas", func() {
			So(Meta{}.Appearance(""), ShouldEqual, "default")
		})
	})
}

func TestDefaultProps(t *testing.T) {
	Convey("Default props derivation", t, func() {
		props := DefaultProps(buttonMeta())
		So(props, ShouldResemble, map[string]any{"status": "basic", "size": "medium"})

		Convey("Dimensions without defaults stay unset", func() {
			meta := Meta{Variants: map[string]VariantDef{"shape": {Values: []string{"round"}}}}
			So(DefaultProps(meta), ShouldBeEmpty)
		})
	})
}

func TestApplicableStates(t *testing.T) {
	Convey("Applicable state filtering", t, func() {
		meta := buttonMeta()

		Convey("Should order by ascending priority", func() {
			states := meta.ApplicableStates("filled", []string{"active", "disabled"})
			So(states, ShouldResemble, []string{"disabled", "active"})
		})

		Convey("Should drop states scoped to other appearances", func() {
			states := meta.ApplicableStates("filled", []string{"focused", "active"})
			So(states, ShouldResemble, []string{"active"})

			states = meta.ApplicableStates("outline", []string{"focused", "active"})
			So(states, ShouldResemble, []string{"active", "focused"})
		})

		Convey("Undeclared flags stay applicable at priority zero", func() {
			states := Meta{}.ApplicableStates("default", []string{"active"})
			So(states, ShouldResemble, []string{"active"})
		})

		Convey("Ties break by name for determinism", func() {
			meta := Meta{States: map[string]StateDef{
				"hover":   {Priority: 1},
				"checked": {Priority: 1},
			}}
			states := meta.ApplicableStates("default", []string{"hover", "checked"})
			So(states, ShouldResemble, []string{"checked", "hover"})
		})
	})
}
