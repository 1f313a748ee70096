package oklch

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Format", t, func() {
		Convey("Should render the canonical asymmetric precision", func() {
			So(Format(0.7461, 0.1715, 51.56, 1), ShouldEqual, "oklch(74.61% 0.1715 51.56 / 1)")
		})
		Convey("Should render alpha unformatted", func() {
			So(Format(0.5, 0.2, 180, 0.5), ShouldEqual, "oklch(50.00% 0.2000 180.00 / 0.5)")
		})
		Convey("Color.String should match Format", func() {
			c := Color{L: 0.7461, C: 0.1715, H: 51.56, A: 1}
			So(c.String(), ShouldEqual, Format(c.L, c.C, c.H, c.A))
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should normalize percentage lightness", func() {
			c, ok := Parse("oklch(50% 0.1 200)").Get()
			So(ok, ShouldBeTrue)
			So(c.L, ShouldEqual, 0.5)
			So(c.C, ShouldEqual, 0.1)
			So(c.H, ShouldEqual, 200)
		})

		Convey("Should accept fractional lightness as-is", func() {
			c, ok := Parse("oklch(0.5 0.1 200)").Get()
			So(ok, ShouldBeTrue)
			So(c.L, ShouldEqual, 0.5)
		})

		Convey("Should divide any lightness literal above 1 by 100", func() {
			// The percent sign is optional; the magnitude alone decides.
			c, ok := Parse("oklch(50 0.1 200)").Get()
			So(ok, ShouldBeTrue)
			So(c.L, ShouldEqual, 0.5)
		})

		Convey("Should default alpha to 1", func() {
			c, ok := Parse("oklch(74.61% 0.1715 51.56)").Get()
			So(ok, ShouldBeTrue)
			So(c.A, ShouldEqual, 1)
		})

		Convey("Should read an explicit alpha segment", func() {
			c, ok := Parse("oklch(74.61% 0.1715 51.56 / 0.25)").Get()
			So(ok, ShouldBeTrue)
			So(c.A, ShouldEqual, 0.25)
		})

		Convey("Should tolerate flexible whitespace", func() {
			c, ok := Parse("  oklch(  74.61%   0.1715\t51.56  /  0.25  )  ").Get()
			So(ok, ShouldBeTrue)
			So(c.L, ShouldAlmostEqual, 0.7461, 1e-9)
		})

		Convey("Should pass hue through without range-wrapping", func() {
			c, ok := Parse("oklch(50% 0.1 -30)").Get()
			So(ok, ShouldBeTrue)
			So(c.H, ShouldEqual, -30)

			c, ok = Parse("oklch(50% 0.1 540.5)").Get()
			So(ok, ShouldBeTrue)
			So(c.H, ShouldEqual, 540.5)
		})

		Convey("Should return the sentinel for unparseable input", func() {
			So(Parse("not-a-color").IsAbsent(), ShouldBeTrue)
			So(Parse("").IsAbsent(), ShouldBeTrue)
			So(Parse("rgb(1 2 3)").IsAbsent(), ShouldBeTrue)
			So(Parse("oklch(0.5 0.1)").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Format then Parse reproduces components within formatter precision", t, func() {
		lightnesses := []float64{0, 0.25, 0.5, 0.7461, 1}
		chromas := []float64{0, 0.1715, 0.37}
		hues := []float64{0, 51.56, 200, 359.9}
		alphas := []float64{0.5, 1}

		for _, l := range lightnesses {
			for _, c := range chromas {
				for _, h := range hues {
					for _, a := range alphas {
						got, ok := Parse(Format(l, c, h, a)).Get()
						So(ok, ShouldBeTrue)
						So(math.Abs(got.L-l), ShouldBeLessThan, 1e-2)
						So(math.Abs(got.C-c), ShouldBeLessThan, 1e-2)
						So(math.Abs(got.H-h), ShouldBeLessThan, 1e-2)
						So(math.Abs(got.A-a), ShouldBeLessThan, 1e-2)
					}
				}
			}
		}
	})
}
