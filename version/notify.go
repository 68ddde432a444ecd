// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tinct-ui/tinct/color"
	"github.com/tinct-ui/tinct/constant"
	"github.com/tinct-ui/tinct/icon"
	"github.com/tinct-ui/tinct/key"
	"github.com/tinct-ui/tinct/style"
	"github.com/tinct-ui/tinct/util"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()

	if !updateAvailable(version, err) {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/tinct-ui/tinct/releases/tag/v"+version),
	)

}

// updateAvailable reports whether latest names a release newer than the
// running build. A failed or empty lookup never notifies.
func updateAvailable(latest string, err error) bool {
	if err != nil || latest == "" {
		return false
	}

	comp, err := Compare(latest, constant.Version)
	return err == nil && comp > 0
}
