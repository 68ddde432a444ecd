package token

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Token resolution", t, func() {
		theme := Theme{
			"defaultColor": "#000",
			"activeColor":  "#3366FF",
			"surface":      "$defaultColor",
			"button":       "$surface",
			"radius":       4,
		}

		Convey("Should return non-indirection values unchanged", func() {
			value, err := Resolve(theme, "#FFF")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "#FFF")

			value, err = Resolve(theme, 12)
			So(err, ShouldBeNil)
			So(value, ShouldEqual, 12)
		})

		Convey("Should follow a single indirection", func() {
			value, err := Resolve(theme, "$activeColor")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "#3366FF")
		})

		Convey("Should follow chains of arbitrary depth", func() {
			value, err := Resolve(theme, "$button")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "#000")
		})

		Convey("Should resolve numeric tokens", func() {
			value, err := Resolve(theme, "$radius")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, 4)
		})

		Convey("Should leave an unknown reference as-is", func() {
			value, err := Resolve(theme, "$missing")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "$missing")
		})

		Convey("Should fail on a circular chain instead of looping", func() {
			cyclic := Theme{
				"a": "$b",
				"b": "$a",
			}

			_, err := Resolve(cyclic, "$a")
			So(err, ShouldNotBeNil)
			So(err, ShouldWrap, ErrCircularReference)
		})
	})
}

func TestFlatten(t *testing.T) {
	Convey("Theme flattening", t, func() {
		Convey("Should resolve every indirection eagerly", func() {
			flat := Flatten(Theme{
				"base":   "#1e1e2e",
				"panel":  "$base",
				"button": "$panel",
			})

			So(flat["base"], ShouldEqual, "#1e1e2e")
			So(flat["panel"], ShouldEqual, "#1e1e2e")
			So(flat["button"], ShouldEqual, "#1e1e2e")
		})

		Convey("Should drop unresolvable tokens without aborting", func() {
			flat := Flatten(Theme{
				"good": "#fff",
				"a":    "$b",
				"b":    "$a",
			})

			So(flat["good"], ShouldEqual, "#fff")
			_, ok := flat["a"]
			So(ok, ShouldBeFalse)
			_, ok = flat["b"]
			So(ok, ShouldBeFalse)
		})
	})
}
