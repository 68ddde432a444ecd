package preview

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tinct-ui/tinct/cache"
	"github.com/tinct-ui/tinct/mapping"
	"github.com/tinct-ui/tinct/query"
	"github.com/tinct-ui/tinct/schema"
	"github.com/tinct-ui/tinct/theme"
	"github.com/tinct-ui/tinct/token"
)

func previewFixture() (*query.Environment, []*schema.ThemeDocument) {
	m := mapping.Computed{
		"Button": {
			Styles: map[string]cache.Style{
				"default": {"color": "$textColor"},
			},
		},
	}

	light := &schema.ThemeDocument{Name: "light", Tokens: token.Theme{
		theme.SignatureBackground: "#FFFFFF",
		theme.SignatureAccent:     "#3366FF",
		"textColor":               "#111111",
	}}
	dark := &schema.ThemeDocument{Name: "dark", Tokens: token.Theme{
		theme.SignatureBackground: "#000000",
		theme.SignatureAccent:     "#88CCFF",
		"textColor":               "#EEEEEE",
	}}

	env := query.NewEnvironment(m, theme.NewStore(), nil)
	return env, []*schema.ThemeDocument{light, dark}
}

func TestNewBubble(t *testing.T) {
	Convey("Previewer construction", t, func() {
		Convey("Should require an environment", func() {
			_, themes := previewFixture()
			_, err := newBubble(&Options{Themes: themes})
			So(err, ShouldNotBeNil)
		})

		Convey("Should require at least one theme", func() {
			env, _ := previewFixture()
			defer env.Close()

			_, err := newBubble(&Options{Environment: env})
			So(err, ShouldNotBeNil)
		})

		Convey("Should lay out a first frame before any resize event", func() {
			env, themes := previewFixture()
			defer env.Close()

			b, err := newBubble(&Options{Environment: env, Themes: themes})
			So(err, ShouldBeNil)
			So(b.width, ShouldBeGreaterThan, 0)
			So(b.height, ShouldBeGreaterThan, 0)
			So(b.View(), ShouldNotBeEmpty)
		})

		Convey("Should publish the first theme and resolve the selection", func() {
			env, themes := previewFixture()
			defer env.Close()

			b, err := newBubble(&Options{Environment: env, Themes: themes})
			So(err, ShouldBeNil)
			So(env.Snapshot(), ShouldNotBeNil)
			So(b.handle.Style()["color"], ShouldEqual, "#111111")
		})
	})
}

func TestThemeRotation(t *testing.T) {
	Convey("Given a previewer with two themes", t, func() {
		env, themes := previewFixture()
		defer env.Close()

		b, err := newBubble(&Options{Environment: env, Themes: themes})
		So(err, ShouldBeNil)

		first := env.Snapshot().ID

		Convey("Rotating should publish the next theme", func() {
			b.rotateTheme()
			So(env.Snapshot().ID, ShouldNotEqual, first)
			So(b.handle.Style()["color"], ShouldEqual, "#EEEEEE")

			Convey("And restoring should bring the previous one back", func() {
				b.restoreTheme()
				So(env.Snapshot().ID, ShouldEqual, first)
			})
		})
	})
}

func TestToggleFlag(t *testing.T) {
	Convey("Toggling an interaction flag", t, func() {
		env, themes := previewFixture()
		defer env.Close()

		b, err := newBubble(&Options{Environment: env, Themes: themes})
		So(err, ShouldBeNil)

		b.toggleFlag(query.Hover)
		So(b.handle.Interactions(), ShouldContain, query.Hover)

		b.toggleFlag(query.Hover)
		So(b.handle.Interactions(), ShouldNotContain, query.Hover)
	})
}
