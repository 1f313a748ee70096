package config

import (
	"testing"

	"github.com/Neicx/kana-dojo/filesystem"
	"github.com/Neicx/kana-dojo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Derivation coefficients should default to the oklch package values", func() {
			_ = Setup()
			So(viper.GetFloat64(key.ThemeCardLightnessBoost), ShouldEqual, 0.2)
			So(viper.GetFloat64(key.ThemeBorderChromaMult), ShouldEqual, 1.85)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("theme.card_lightness_boost")
			So(result, ShouldEqual, "theme_card_lightness_boost")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field.Env", t, func() {
		f := Default[key.ThemeAccent]
		So(f.Env(), ShouldEqual, "KANADOJO_THEME_ACCENT")
	})
}
