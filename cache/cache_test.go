package cache

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildKey(t *testing.T) {
	Convey("Key construction", t, func() {
		Convey("Should be invariant to variant insertion order", func() {
			a := BuildKey("Button", "filled", map[string]any{"status": "primary", "size": "medium"}, []string{"active"}, "light")
			b := BuildKey("Button", "filled", map[string]any{"size": "medium", "status": "primary"}, []string{"active"}, "light")
			So(a, ShouldEqual, b)
		})

		Convey("Should be invariant to interaction ordering", func() {
			a := BuildKey("Button", "filled", nil, []string{"active", "focused"}, "light")
			b := BuildKey("Button", "filled", nil, []string{"focused", "active"}, "light")
			So(a, ShouldEqual, b)
		})

		Convey("Should filter falsy variant values", func() {
			a := BuildKey("Button", "", map[string]any{"status": "primary", "disabled": false, "checked": nil}, nil, "light")
			b := BuildKey("Button", "", map[string]any{"status": "primary"}, nil, "light")
			So(a, ShouldEqual, b)
		})

		Convey("Should keep the format positional with empty segments", func() {
			key := BuildKey("Button", "", nil, nil, "light")
			So(key, ShouldEqual, "Button::default::::light")
		})

		Convey("Should render boolean variants as text", func() {
			key := BuildKey("Toggle", "outline", map[string]any{"checked": true}, nil, "dark")
			So(key, ShouldEqual, "Toggle::outline::checked:true::::dark")
		})

		Convey("Should order pairs by variant name, not by rendered pair", func() {
			// "size:..." sorts before "size2:..." by name, although the
			// rendered strings compare the other way (':' > '2').
			key := BuildKey("Button", "", map[string]any{"size2": "wide", "size": "medium"}, nil, "light")
			So(key, ShouldEqual, "Button::default::size:medium|size2:wide::::light")
		})
	})
}

func TestLRU(t *testing.T) {
	Convey("Given a cache of capacity 5", t, func() {
		c := New(5)

		keys := make([]string, 5)
		for i := range keys {
			keys[i] = BuildKey(fmt.Sprintf("Widget%d", i), "", nil, nil, "light")
			c.Set(keys[i], Style{"index": i})
		}

		Convey("Reading an entry should protect it from eviction", func() {
			c.Get(keys[0])
			c.Get(keys[0])

			c.Set(BuildKey("Widget5", "", nil, nil, "light"), Style{"index": 5})

			_, survived := c.Get(keys[0])
			So(survived, ShouldBeTrue)

			// keys[1] was the least recently touched.
			_, survived = c.Get(keys[1])
			So(survived, ShouldBeFalse)

			So(c.GetStats().Size, ShouldEqual, 5)
		})

		Convey("Re-setting an existing key at capacity should not evict", func() {
			c.Set(keys[2], Style{"index": 22})

			So(c.GetStats().Size, ShouldEqual, 5)
			for _, key := range keys {
				_, ok := c.Get(key)
				So(ok, ShouldBeTrue)
			}

			style, _ := c.Get(keys[2])
			So(style["index"], ShouldEqual, 22)
		})

		Convey("A miss should not create an entry", func() {
			_, ok := c.Get("Nothing::default::::light")
			So(ok, ShouldBeFalse)
			So(c.GetStats().Size, ShouldEqual, 5)
		})
	})
}

func TestInvalidation(t *testing.T) {
	Convey("Theme-scoped invalidation", t, func() {
		c := New(10)

		c.Set(BuildKey("Button", "", nil, nil, "light"), Style{})
		c.Set(BuildKey("Input", "", nil, nil, "light"), Style{})
		c.Set(BuildKey("Button", "", nil, nil, "dark"), Style{})

		Convey("Should remove exactly the entries of the invalidated theme", func() {
			c.InvalidateTheme("light")

			So(c.GetStats().Size, ShouldEqual, 1)
			_, ok := c.Get(BuildKey("Button", "", nil, nil, "dark"))
			So(ok, ShouldBeTrue)
		})

		Convey("Clear should remove everything and reset the counter", func() {
			c.Clear()

			So(c.GetStats().Size, ShouldEqual, 0)
			So(c.counter, ShouldEqual, 0)
		})
	})
}

func TestStats(t *testing.T) {
	Convey("Stats", t, func() {
		c := New(3)
		So(c.GetStats(), ShouldResemble, Stats{Size: 0, MaxSize: 3})

		c.Set("a::default::::t", Style{})
		So(c.GetStats(), ShouldResemble, Stats{Size: 1, MaxSize: 3})
	})
}
