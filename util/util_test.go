package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("my:theme?.json"), ShouldEqual, "my_theme_.json")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("my__theme.json"), ShouldEqual, "my_theme.json")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-my-theme-"), ShouldEqual, "my-theme")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "token", "tokens"), ShouldEqual, "1 token")
		So(Quantify(2, "token", "tokens"), ShouldEqual, "2 tokens")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hover"), ShouldEqual, "Hover")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("themes/light.json"), ShouldEqual, "light")
		So(FileStem("light"), ShouldEqual, "light")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max(20, 7), ShouldEqual, 20)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		item := s.Pop()
		So(item, ShouldEqual, 2)
		item = s.Pop()
		So(item, ShouldEqual, 1)
		item = s.Pop()
		So(item, ShouldEqual, 0)
	})
}
