package oklch

import (
	"math"

	"github.com/Neicx/kana-dojo/log"
	"github.com/samber/mo"
)

// MinAccentLightness is the floor applied to accent and button-border
// derivations so pressed/hovered colors never go fully black.
const MinAccentLightness = 0.05

// Default derivation coefficients. The light-theme formulas below carry
// empirically-tuned constants (+0.12, x5, +0.15, x2); they are deliberate
// magic numbers, not derived from a general model.
const (
	DefaultCardLightnessBoost   = 0.2
	DefaultCardChromaMultiplier = 1.2

	DefaultBorderLightnessBoost   = 0.75
	DefaultBorderChromaMultiplier = 1.85

	DefaultAccentLightnessReduction = 0.25
	DefaultAccentChromaBoost        = 0.05
)

// ShiftOptions overrides the coefficients of the theme-polarity-aware
// derivations (card and border). Absent fields fall back to the
// per-derivation defaults.
type ShiftOptions struct {
	LightnessBoost   mo.Option[float64]
	ChromaMultiplier mo.Option[float64]
}

// AccentOptions overrides the coefficients of the polarity-agnostic
// derivations (accent and button border).
type AccentOptions struct {
	LightnessReduction mo.Option[float64]
	ChromaBoost        mo.Option[float64]
}

// CardColor derives a card background color from a base color. Light themes
// darken the card relative to a near-white background, with the shift
// growing as the base lightness drops; dark themes lighten proportionally
// to the existing lightness, so near-black bases barely move.
// An unparseable base is returned unchanged with a warning diagnostic.
func CardColor(base string, isLight bool, options *ShiftOptions) string {
	if options == nil {
		options = &ShiftOptions{}
	}
	boost := options.LightnessBoost.OrElse(DefaultCardLightnessBoost)
	chromaMul := options.ChromaMultiplier.OrElse(DefaultCardChromaMultiplier)

	return derive(base, func(c Color) Color {
		if isLight {
			c.L = math.Max(0, c.L-(1-c.L+0.12)*boost*5)
		} else {
			c.L = math.Min(1, c.L+c.L*boost)
		}
		c.C = math.Min(MaxChroma, c.C*chromaMul)
		return c
	})
}

// BorderColor derives a border color from a base color. Same contract shape
// as CardColor, but borders shift further from the background than cards do
// in both theme polarities.
func BorderColor(base string, isLight bool, options *ShiftOptions) string {
	if options == nil {
		options = &ShiftOptions{}
	}
	boost := options.LightnessBoost.OrElse(DefaultBorderLightnessBoost)
	chromaMul := options.ChromaMultiplier.OrElse(DefaultBorderChromaMultiplier)

	return derive(base, func(c Color) Color {
		if isLight {
			c.L = math.Max(0, c.L-(1-c.L+0.15)*boost*2)
		} else {
			c.L = math.Min(1, c.L+c.L*boost)
		}
		c.C = math.Min(MaxChroma, c.C*chromaMul)
		return c
	})
}

// AccentColor derives a pressed/hovered accent color: darkening implies
// depth and shadow, while the small additive chroma boost keeps the
// darkened color from reading as desaturated.
func AccentColor(base string, options *AccentOptions) string {
	return derive(base, accentShift(options))
}

// ButtonBorderColor derives a button border color. The math is shared with
// AccentColor; the separate entry point exists for call-site semantics.
func ButtonBorderColor(base string, options *AccentOptions) string {
	return derive(base, accentShift(options))
}

func accentShift(options *AccentOptions) func(Color) Color {
	if options == nil {
		options = &AccentOptions{}
	}
	reduction := options.LightnessReduction.OrElse(DefaultAccentLightnessReduction)
	chromaBoost := options.ChromaBoost.OrElse(DefaultAccentChromaBoost)

	return func(c Color) Color {
		c.L = math.Max(MinAccentLightness, c.L-reduction*c.L)
		c.C = math.Min(MaxChroma, c.C+chromaBoost)
		return c
	}
}

// derive runs a transform over a parsed base color. Unparseable input is a
// routine, expected condition: it degrades to the original string plus a
// warning rather than an error the caller has to handle.
func derive(base string, transform func(Color) Color) string {
	parsed, ok := Parse(base).Get()
	if !ok {
		log.Warnf("unparseable oklch color %q, passing through unchanged", base)
		return base
	}
	return transform(parsed).String()
}
