package where

import (
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tinct-ui/tinct/filesystem"
)

func TestWhere(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Path resolution", t, func() {
		Convey("Config should honor the environment override", func() {
			So(os.Setenv(EnvConfigPath, "/custom/tinct"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, "/custom/tinct")
		})

		Convey("Themes and Mappings should live under Config", func() {
			So(os.Setenv(EnvConfigPath, "/custom/tinct"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(strings.HasPrefix(Themes(), Config()), ShouldBeTrue)
			So(strings.HasPrefix(Mappings(), Config()), ShouldBeTrue)
			So(strings.HasPrefix(Logs(), Config()), ShouldBeTrue)
		})

		Convey("Documents should live under Cache", func() {
			So(strings.HasPrefix(Documents(), Cache()), ShouldBeTrue)
		})
	})
}
