package version

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUpdateAvailable(t *testing.T) {
	Convey("Update notification gating", t, func() {
		Convey("Should stay silent when the lookup failed", func() {
			So(updateAvailable("", errors.New("network down")), ShouldBeFalse)
			So(updateAvailable("99.0.0", errors.New("network down")), ShouldBeFalse)
		})

		Convey("Should stay silent on an empty version", func() {
			So(updateAvailable("", nil), ShouldBeFalse)
		})

		Convey("Should stay silent on the running or an older version", func() {
			So(updateAvailable("0.1.0", nil), ShouldBeFalse)
			So(updateAvailable("0.0.9", nil), ShouldBeFalse)
		})

		Convey("Should notify on a newer version", func() {
			So(updateAvailable("0.2.0", nil), ShouldBeTrue)
			So(updateAvailable("1.0.0", nil), ShouldBeTrue)
		})

		Convey("Should stay silent on an unparsable version", func() {
			So(updateAvailable("latest", nil), ShouldBeFalse)
		})
	})
}
