package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tinct-ui/tinct/token"
)

func TestSelect(t *testing.T) {
	Convey("Selector subscriptions", t, func() {
		Convey("Should fail loudly without a store in scope", func() {
			_, err := Select(nil, func(s *Snapshot) any { return nil })
			So(err, ShouldWrap, ErrNoStore)
		})

		store := NewStore()
		store.SetTheme(token.Theme{
			"backgroundColor": "#ffffff",
			"accentColor":     "#3366FF",
			"textColor":       "#111111",
		})

		Convey("Should not re-invoke the selector for an identical snapshot", func() {
			invocations := 0
			selection, err := Select(store, func(s *Snapshot) any {
				invocations++
				value, _ := s.Token("accentColor")
				return value
			})
			So(err, ShouldBeNil)

			So(selection.Get(), ShouldEqual, "#3366FF")
			So(selection.Get(), ShouldEqual, "#3366FF")
			So(invocations, ShouldEqual, 1)
		})

		Convey("Should keep the previous reference for shallow-equal results", func() {
			selection, _ := Select(store, func(s *Snapshot) map[string]any {
				accent, _ := s.Token("accentColor")
				return map[string]any{"accent": accent}
			})

			first := selection.Get()

			// A new theme whose selected slice is value-identical.
			store.SetTheme(token.Theme{
				"backgroundColor": "#000000",
				"accentColor":     "#3366FF",
				"textColor":       "#eeeeee",
			})

			// The same underlying map is returned.
			second := selection.Get()
			first["probe"] = true
			_, shared := second["probe"]
			So(shared, ShouldBeTrue)
		})

		Convey("Should adopt the new result when the slice actually changes", func() {
			selection, _ := Select(store, func(s *Snapshot) any {
				accent, _ := s.Token("accentColor")
				return accent
			})

			So(selection.Get(), ShouldEqual, "#3366FF")

			store.SetTheme(token.Theme{
				"backgroundColor": "#ffffff",
				"accentColor":     "#ff0000",
			})
			So(selection.Get(), ShouldEqual, "#ff0000")
		})

		Convey("Watch should fire only on observable changes", func() {
			selection, _ := Select(store, func(s *Snapshot) any {
				accent, _ := s.Token("accentColor")
				return accent
			})
			selection.Get()

			var notified []any
			unwatch := selection.Watch(func(value any) { notified = append(notified, value) })

			// Unobservable: accent unchanged.
			store.SetTheme(token.Theme{
				"backgroundColor": "#222222",
				"accentColor":     "#3366FF",
			})
			So(notified, ShouldBeEmpty)

			// Observable: accent changed.
			store.SetTheme(token.Theme{
				"backgroundColor": "#222222",
				"accentColor":     "#00ff00",
			})
			So(notified, ShouldResemble, []any{"#00ff00"})

			unwatch()
			store.SetTheme(token.Theme{"accentColor": "#123456"})
			So(len(notified), ShouldEqual, 1)
		})

		Convey("SelectMany should stabilize field-wise", func() {
			batch, err := SelectMany(store, map[string]Selector[any]{
				"accent": func(s *Snapshot) any { value, _ := s.Token("accentColor"); return value },
				"text":   func(s *Snapshot) any { value, _ := s.Token("textColor"); return value },
			})
			So(err, ShouldBeNil)

			first := batch.Get()
			So(first, ShouldResemble, map[string]any{"accent": "#3366FF", "text": "#111111"})

			store.SetTheme(token.Theme{
				"backgroundColor": "#0a0a0a",
				"accentColor":     "#3366FF",
				"textColor":       "#111111",
			})

			second := batch.Get()
			first["probe"] = true
			_, shared := second["probe"]
			So(shared, ShouldBeTrue)
		})
	})
}

func TestShallowEqual(t *testing.T) {
	Convey("Shallow equality", t, func() {
		Convey("Primitives compare by value", func() {
			So(shallowEqual("a", "a"), ShouldBeTrue)
			So(shallowEqual("a", "b"), ShouldBeFalse)
			So(shallowEqual(1, 1), ShouldBeTrue)
			So(shallowEqual(nil, nil), ShouldBeTrue)
			So(shallowEqual("a", nil), ShouldBeFalse)
		})

		Convey("Maps compare per-field one level deep", func() {
			So(shallowEqual(map[string]any{"a": 1}, map[string]any{"a": 1}), ShouldBeTrue)
			So(shallowEqual(map[string]any{"a": 1}, map[string]any{"a": 2}), ShouldBeFalse)
			So(shallowEqual(map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}), ShouldBeFalse)
			So(shallowEqual(map[string]any{}, map[string]any{}), ShouldBeTrue)
		})

		Convey("A map never equals a primitive", func() {
			So(shallowEqual(map[string]any{}, "x"), ShouldBeFalse)
		})
	})
}
