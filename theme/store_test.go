package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tinct-ui/tinct/token"
)

func TestStore(t *testing.T) {
	Convey("Theme store", t, func() {
		store := NewStore()

		Convey("Should publish no snapshot before the first SetTheme", func() {
			So(store.GetSnapshot(), ShouldBeNil)
			So(store.GetServerSnapshot(), ShouldBeNil)
		})

		Convey("SetTheme should flatten tokens into the snapshot", func() {
			store.SetTheme(token.Theme{
				"backgroundColor": "#1e1e2e",
				"accentColor":     "$backgroundColor",
			})

			snapshot := store.GetSnapshot()
			So(snapshot, ShouldNotBeNil)
			So(snapshot.Tokens["accentColor"], ShouldEqual, "#1e1e2e")
			So(snapshot.ID, ShouldStartWith, "theme_")
		})

		Convey("Snapshots should be referentially stable between publishes", func() {
			store.SetTheme(token.Theme{"backgroundColor": "#fff"})

			first := store.GetSnapshot()
			second := store.GetSnapshot()
			So(first == second, ShouldBeTrue)

			store.SetTheme(token.Theme{"backgroundColor": "#000"})
			So(store.GetSnapshot() == first, ShouldBeFalse)
		})

		Convey("Listeners should be notified synchronously and unconditionally", func() {
			calls := 0
			unsubscribe := store.Subscribe(func() { calls++ })

			store.SetTheme(token.Theme{"backgroundColor": "#fff"})
			So(calls, ShouldEqual, 1)

			// Same theme again: notification still fires; observability is
			// the selector layer's concern.
			store.SetTheme(token.Theme{"backgroundColor": "#fff"})
			So(calls, ShouldEqual, 2)

			unsubscribe()
			store.SetTheme(token.Theme{"backgroundColor": "#000"})
			So(calls, ShouldEqual, 2)
		})

		Convey("Listeners may unsubscribe during notification", func() {
			var unsubscribe func()
			calls := 0
			unsubscribe = store.Subscribe(func() {
				calls++
				unsubscribe()
			})
			store.Subscribe(func() { calls++ })

			So(func() {
				store.SetTheme(token.Theme{"backgroundColor": "#fff"})
			}, ShouldNotPanic)
			So(calls, ShouldEqual, 2)

			store.SetTheme(token.Theme{"backgroundColor": "#000"})
			So(calls, ShouldEqual, 3)
		})
	})
}

func TestComputeID(t *testing.T) {
	Convey("Theme fingerprinting", t, func() {
		light := token.Theme{SignatureBackground: "#ffffff", SignatureAccent: "#3366FF"}
		dark := token.Theme{SignatureBackground: "#1e1e2e", SignatureAccent: "#3366FF"}

		Convey("Should be deterministic", func() {
			So(ComputeID(light), ShouldEqual, ComputeID(light))
		})

		Convey("Should distinguish themes by their signature pair", func() {
			So(ComputeID(light), ShouldNotEqual, ComputeID(dark))
		})

		Convey("Should alias themes that differ only outside the signature", func() {
			a := token.Theme{SignatureBackground: "#fff", SignatureAccent: "#36f", "textColor": "#111"}
			b := token.Theme{SignatureBackground: "#fff", SignatureAccent: "#36f", "textColor": "#222"}
			So(ComputeID(a), ShouldEqual, ComputeID(b))
		})

		Convey("Should tolerate missing signature tokens", func() {
			So(ComputeID(token.Theme{}), ShouldStartWith, "theme_")
		})
	})
}
