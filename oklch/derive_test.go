package oklch

import (
	"fmt"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCardColor(t *testing.T) {
	Convey("CardColor", t, func() {
		Convey("Light theme should darken pure white by the tuned offset", func() {
			So(CardColor("oklch(100% 0 0)", true, nil), ShouldEqual, "oklch(88.00% 0.0000 0.00 / 1)")
		})

		Convey("Dark theme boost should have no effect at zero lightness", func() {
			So(CardColor("oklch(0 0.1 200)", false, nil), ShouldEqual, "oklch(0.00% 0.1200 200.00 / 1)")
		})

		Convey("Dark theme should lighten proportionally and clamp chroma", func() {
			So(CardColor("oklch(50% 0.35 10)", false, nil), ShouldEqual, "oklch(60.00% 0.3700 10.00 / 1)")
		})

		Convey("Should honor coefficient overrides", func() {
			got := CardColor("oklch(40% 0.1 10)", false, &ShiftOptions{LightnessBoost: mo.Some(0.5)})
			So(got, ShouldEqual, "oklch(60.00% 0.1200 10.00 / 1)")
		})

		Convey("Should pass hue and alpha through unchanged", func() {
			So(CardColor("oklch(50% 0.1 321.5 / 0.5)", false, nil), ShouldEqual, "oklch(60.00% 0.1200 321.50 / 0.5)")
		})
	})
}

func TestBorderColor(t *testing.T) {
	Convey("BorderColor", t, func() {
		Convey("Light theme should shift further than cards do", func() {
			So(BorderColor("oklch(100% 0 0)", true, nil), ShouldEqual, "oklch(77.50% 0.0000 0.00 / 1)")
		})

		Convey("Dark theme boost should have no effect at zero lightness", func() {
			So(BorderColor("oklch(0 0.2 90)", false, nil), ShouldEqual, "oklch(0.00% 0.3700 90.00 / 1)")
		})
	})
}

func TestAccentColor(t *testing.T) {
	Convey("AccentColor", t, func() {
		Convey("Should darken proportionally with an additive chroma boost", func() {
			So(AccentColor("oklch(80% 0.2 120)", nil), ShouldEqual, "oklch(60.00% 0.2500 120.00 / 1)")
		})

		Convey("Should floor lightness above zero", func() {
			So(AccentColor("oklch(6% 0.1 10)", nil), ShouldEqual, "oklch(5.00% 0.1500 10.00 / 1)")
		})

		Convey("Should cap the boosted chroma", func() {
			So(AccentColor("oklch(50% 0.36 10)", nil), ShouldEqual, "oklch(37.50% 0.3700 10.00 / 1)")
		})
	})
}

func TestButtonBorderColor(t *testing.T) {
	Convey("ButtonBorderColor", t, func() {
		Convey("Should share the accent math", func() {
			base := "oklch(80% 0.2 120)"
			So(ButtonBorderColor(base, nil), ShouldEqual, AccentColor(base, nil))
		})

		Convey("Should honor coefficient overrides", func() {
			got := ButtonBorderColor("oklch(50% 0.1 10)", &AccentOptions{LightnessReduction: mo.Some(0.5)})
			So(got, ShouldEqual, "oklch(25.00% 0.1500 10.00 / 1)")
		})
	})
}

func TestDeriveFallback(t *testing.T) {
	Convey("Unparseable input passes through every derivation unchanged", t, func() {
		derivations := map[string]func(string) string{
			"card":          func(s string) string { return CardColor(s, true, nil) },
			"border":        func(s string) string { return BorderColor(s, false, nil) },
			"accent":        func(s string) string { return AccentColor(s, nil) },
			"button border": func(s string) string { return ButtonBorderColor(s, nil) },
		}

		for name, d := range derivations {
			Convey(name, func() {
				So(d("not-a-color"), ShouldEqual, "not-a-color")
			})
		}
	})
}

func TestDerivationInvariants(t *testing.T) {
	Convey("Derived chroma never exceeds the ceiling", t, func() {
		bases := []string{
			"oklch(10% 0.05 0)",
			"oklch(50% 0.2 120)",
			"oklch(90% 0.36 240)",
			"oklch(100% 0.5 359)",
		}

		check := func(derived string) {
			c, ok := Parse(derived).Get()
			So(ok, ShouldBeTrue)
			So(c.C, ShouldBeLessThanOrEqualTo, MaxChroma)
		}

		for _, base := range bases {
			for _, isLight := range []bool{true, false} {
				Convey(fmt.Sprintf("%s light=%v", base, isLight), func() {
					check(CardColor(base, isLight, nil))
					check(BorderColor(base, isLight, nil))
					check(AccentColor(base, nil))
					check(ButtonBorderColor(base, nil))
				})
			}
		}
	})

	Convey("Accent lightness never drops below the floor", t, func() {
		for _, base := range []string{"oklch(0 0.1 0)", "oklch(2% 0.1 0)", "oklch(6% 0.1 0)"} {
			c, ok := Parse(AccentColor(base, nil)).Get()
			So(ok, ShouldBeTrue)
			So(c.L, ShouldBeGreaterThanOrEqualTo, MinAccentLightness)
		}
	})
}
