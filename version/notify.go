// Package version provides unified mechanisms for application version tracking and update discovery.
package version

import (
	"fmt"

	"github.com/Neicx/kana-dojo/color"
	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/icon"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
	"github.com/spf13/viper"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		theme.Fg(color.Green)("▇▇▇"),
		theme.Bold(version),
		theme.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		theme.Faint("https://github.com/Neicx/kana-dojo/releases/tag/v"+version),
	)
}
