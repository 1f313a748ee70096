// Package oklch implements parsing, formatting and theme-oriented derivation
// of colors in the OKLCH textual notation.
//
// OKLCH is a perceptually-uniform representation built from Lightness,
// Chroma, Hue and Alpha. Everything in this package is pure and reentrant:
// colors are parsed, transformed and reformatted without shared state.
package oklch

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Neicx/kana-dojo/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Color holds the numeric components of an OKLCH color.
// L is lightness normalized to [0, 1], C is non-negative chroma,
// H is the hue angle in degrees (not range-wrapped), A is alpha in [0, 1].
type Color struct {
	L, C, H, A float64
}

// MaxChroma is the ceiling applied to the chroma component of every derived color.
const MaxChroma = 0.37

// colorPattern matches `oklch(<L>[%] <C> <H> [/ <A>])` with flexible whitespace.
// The percent sign on lightness and the alpha segment are both optional.
var colorPattern = regexp.MustCompile(
	`^\s*oklch\(\s*(?P<l>\d*\.?\d+)%?\s+(?P<c>\d*\.?\d+)\s+(?P<h>-?\d*\.?\d+)\s*(?:/\s*(?P<a>\d*\.?\d+)\s*)?\)\s*$`,
)

// Parse attempts to read a color from its OKLCH textual notation.
// A lightness literal greater than 1 is treated as a percentage and divided
// by 100; alpha defaults to 1 when the optional segment is absent.
// Returns mo.None when the string does not match the grammar.
func Parse(s string) mo.Option[Color] {
	groups := util.ReGroups(colorPattern, s)
	if groups["l"] == "" {
		return mo.None[Color]()
	}

	l := lo.Must(strconv.ParseFloat(groups["l"], 64))
	if l > 1 {
		l /= 100
	}

	color := Color{
		L: l,
		C: lo.Must(strconv.ParseFloat(groups["c"], 64)),
		H: lo.Must(strconv.ParseFloat(groups["h"], 64)),
		A: 1,
	}

	if a := groups["a"]; a != "" {
		color.A = lo.Must(strconv.ParseFloat(a, 64))
	}

	return mo.Some(color)
}

// Format renders numeric components into the canonical textual form.
// The precision is asymmetric on purpose: lightness as a percentage with
// 2 decimals, chroma with 4, hue with 2, alpha as given.
func Format(l, c, h, a float64) string {
	return fmt.Sprintf("oklch(%.2f%% %.4f %.2f / %v)", l*100, c, h, a)
}

func (c Color) String() string {
	return Format(c.L, c.C, c.H, c.A)
}
