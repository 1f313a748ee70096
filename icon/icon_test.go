package icon

import (
	"testing"

	"github.com/Neicx/kana-dojo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Lua

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})

		Convey("Every registered icon has all variants", func() {
			for id, def := range icons {
				So(id, ShouldBeGreaterThan, 0)
				So(def.emoji, ShouldNotBeEmpty)
				So(def.nerd, ShouldNotBeEmpty)
				So(def.plain, ShouldNotBeEmpty)
				So(def.kaomoji, ShouldNotBeEmpty)
				So(def.squares, ShouldNotBeEmpty)
			}
		})
	})
}
