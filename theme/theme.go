package theme

import (
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/oklch"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Palette holds the resolved theme-dependent colors. Card, border and
// pressed-accent colors are derived from the configured base colors rather
// than hardcoded, so a single accent choice restyles the whole interface.
type Palette struct {
	IsLight bool

	Accent        lipgloss.Color
	AccentPressed lipgloss.Color
	Card          lipgloss.Color
	Border        lipgloss.Color
	ButtonBorder  lipgloss.Color
}

var active *Palette

// Active returns the resolved palette, loading it on first use.
// Call Reload after configuration changes.
func Active() *Palette {
	if active == nil {
		active = load()
	}
	return active
}

// Reload recomputes the palette from the current configuration.
func Reload() *Palette {
	active = load()
	return active
}

func load() *Palette {
	accent := viper.GetString(key.ThemeAccent)
	surface := viper.GetString(key.ThemeSurface)
	isLight := IsLight()

	shift := func(boostKey, multKey string) *oklch.ShiftOptions {
		return &oklch.ShiftOptions{
			LightnessBoost:   mo.Some(viper.GetFloat64(boostKey)),
			ChromaMultiplier: mo.Some(viper.GetFloat64(multKey)),
		}
	}
	accentOptions := &oklch.AccentOptions{
		LightnessReduction: mo.Some(viper.GetFloat64(key.ThemeAccentLightnessCut)),
		ChromaBoost:        mo.Some(viper.GetFloat64(key.ThemeAccentChromaBoost)),
	}

	return &Palette{
		IsLight:       isLight,
		Accent:        terminal(accent),
		AccentPressed: terminal(oklch.AccentColor(accent, accentOptions)),
		Card:          terminal(oklch.CardColor(surface, isLight, shift(key.ThemeCardLightnessBoost, key.ThemeCardChromaMult))),
		Border:        terminal(oklch.BorderColor(surface, isLight, shift(key.ThemeBorderLightnessBoost, key.ThemeBorderChromaMult))),
		ButtonBorder:  terminal(oklch.ButtonBorderColor(accent, accentOptions)),
	}
}

// IsLight reports the active theme polarity. The configured value wins;
// "auto" falls back to terminal background detection.
func IsLight() bool {
	switch viper.GetString(key.ThemePolarity) {
	case "light":
		return true
	case "dark":
		return false
	default:
		return !lipgloss.HasDarkBackground()
	}
}

// terminal converts an OKLCH color string to a lipgloss color. Terminal
// color profiles do not understand the OKLCH notation, so parseable values
// are rendered as hex; anything else passes through unchanged.
func terminal(s string) lipgloss.Color {
	if parsed, ok := oklch.Parse(s).Get(); ok {
		return lipgloss.Color(parsed.Hex())
	}
	return lipgloss.Color(s)
}
