package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestThemeName(t *testing.T) {
	Convey("Theme display name", t, func() {
		Convey("Should prefer the document's own name", func() {
			So(themeName("Catppuccin", "themes/mocha.json"), ShouldEqual, "Catppuccin")
		})

		Convey("Should fall back to the document's file stem", func() {
			So(themeName("", "themes/mocha.json"), ShouldEqual, "mocha")
		})

		Convey("Should label fully anonymous themes", func() {
			So(themeName("", ""), ShouldEqual, "unnamed theme")
		})
	})
}
