package oklch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHex(t *testing.T) {
	Convey("Hex", t, func() {
		Convey("White and black map to the gamut corners", func() {
			So(Color{L: 1, A: 1}.Hex(), ShouldEqual, "#ffffff")
			So(Color{L: 0, A: 1}.Hex(), ShouldEqual, "#000000")
		})

		Convey("A saturated red lands near pure sRGB red", func() {
			r, g, b := Color{L: 0.628, C: 0.2577, H: 29.23, A: 1}.RGB()
			So(r, ShouldAlmostEqual, 1, 0.01)
			So(g, ShouldAlmostEqual, 0, 0.01)
			So(b, ShouldAlmostEqual, 0, 0.01)
		})

		Convey("Out-of-gamut chroma clamps instead of overflowing", func() {
			r, g, b := Color{L: 0.5, C: 2, H: 145, A: 1}.RGB()
			for _, v := range []float64{r, g, b} {
				So(v, ShouldBeBetweenOrEqual, 0, 1)
			}
		})
	})
}
