package oklch

import (
	"fmt"
	"math"
)

// RGB converts the color to sRGB components in [0, 1].
// OKLCH -> OKLab -> LMS -> linear RGB -> sRGB, with out-of-gamut values clamped.
func (c Color) RGB() (r, g, b float64) {
	h := c.H * math.Pi / 180
	a := c.C * math.Cos(h)
	bb := c.C * math.Sin(h)

	// OKLab -> LMS'
	l_ := c.L + 0.3963377774*a + 0.2158037573*bb
	m_ := c.L - 0.1055613458*a - 0.0638541728*bb
	s_ := c.L - 0.0894841775*a - 1.2914855480*bb

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	// LMS -> linear RGB
	rl := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	gl := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	r = clamp01(linearToSrgb(rl))
	g = clamp01(linearToSrgb(gl))
	b = clamp01(linearToSrgb(bl))
	return
}

// Hex renders the color as a `#rrggbb` string for terminal color profiles
// that do not understand the OKLCH notation.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(r*255)),
		uint8(math.Round(g*255)),
		uint8(math.Round(b*255)),
	)
}

func linearToSrgb(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
