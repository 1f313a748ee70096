package theme

import (
	"strings"
	"testing"

	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/oklch"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func setDefaults() {
	viper.Set(key.ThemePolarity, "dark")
	viper.Set(key.ThemeAccent, "oklch(74.61% 0.1715 51.56 / 1)")
	viper.Set(key.ThemeSurface, "oklch(62.00% 0.0240 260.00 / 1)")
	viper.Set(key.ThemeCardLightnessBoost, oklch.DefaultCardLightnessBoost)
	viper.Set(key.ThemeCardChromaMult, oklch.DefaultCardChromaMultiplier)
	viper.Set(key.ThemeBorderLightnessBoost, oklch.DefaultBorderLightnessBoost)
	viper.Set(key.ThemeBorderChromaMult, oklch.DefaultBorderChromaMultiplier)
	viper.Set(key.ThemeAccentLightnessCut, oklch.DefaultAccentLightnessReduction)
	viper.Set(key.ThemeAccentChromaBoost, oklch.DefaultAccentChromaBoost)
}

func TestIsLight(t *testing.T) {
	Convey("IsLight honors the configured polarity", t, func() {
		viper.Set(key.ThemePolarity, "light")
		So(IsLight(), ShouldBeTrue)

		viper.Set(key.ThemePolarity, "dark")
		So(IsLight(), ShouldBeFalse)
	})
}

func TestReload(t *testing.T) {
	Convey("Reload resolves a complete palette", t, func() {
		setDefaults()
		p := Reload()

		So(p.IsLight, ShouldBeFalse)

		Convey("Every derived color is terminal-renderable hex", func() {
			for _, c := range []string{
				string(p.Accent),
				string(p.AccentPressed),
				string(p.Card),
				string(p.Border),
				string(p.ButtonBorder),
			} {
				So(strings.HasPrefix(c, "#"), ShouldBeTrue)
				So(c, ShouldHaveLength, 7)
			}
		})

		Convey("The pressed accent is darker than the accent itself", func() {
			So(string(p.AccentPressed), ShouldNotEqual, string(p.Accent))
		})

		Convey("Active returns the reloaded palette", func() {
			So(Active(), ShouldEqual, p)
		})
	})
}

func TestTerminalPassThrough(t *testing.T) {
	Convey("Unparseable base colors pass through to lipgloss unchanged", t, func() {
		setDefaults()
		viper.Set(key.ThemeAccent, "#ffb703")
		p := Reload()
		So(string(p.Accent), ShouldEqual, "#ffb703")
	})
}
