package cmd

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tinct-ui/tinct/filesystem"
	"github.com/tinct-ui/tinct/where"
)

func TestClear(t *testing.T) {
	Convey("Given a populated temp directory", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		leftover := filepath.Join(where.Temp(), "leftover.json")
		So(filesystem.API().WriteFile(leftover, []byte("{}"), 0644), ShouldBeNil)

		Convey("Clearing temp should remove its contents exactly once", func() {
			So(clearCmd.Flags().Set("temp", "true"), ShouldBeNil)
			defer func() {
				So(clearCmd.Flags().Set("temp", "false"), ShouldBeNil)
			}()

			clearCmd.Run(clearCmd, nil)

			exists, err := filesystem.API().Exists(leftover)
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
