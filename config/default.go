// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/Neicx/kana-dojo/color"
	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/oklch"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.KanaDojo + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case float64:
		return "float64"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DefaultEngine, "builtin", "Default conjugation engine to use.\nType \"kanadojo engines list\" to show available engines")
	register(key.ThemePolarity, "auto", "Theme polarity.\nAvailable options are: auto, light, dark.\n\"auto\" detects the terminal background")
	register(key.ThemeAccent, "oklch(74.61% 0.1715 51.56 / 1)", "Base accent color in OKLCH notation.\nCard, border and button-border colors are derived from it")
	register(key.ThemeSurface, "oklch(62.00% 0.0240 260.00 / 1)", "Base surface color in OKLCH notation used for card backgrounds")
	register(key.ThemeCardLightnessBoost, oklch.DefaultCardLightnessBoost, "Lightness boost coefficient for derived card colors")
	register(key.ThemeCardChromaMult, oklch.DefaultCardChromaMultiplier, "Chroma multiplier for derived card colors")
	register(key.ThemeBorderLightnessBoost, oklch.DefaultBorderLightnessBoost, "Lightness boost coefficient for derived border colors")
	register(key.ThemeBorderChromaMult, oklch.DefaultBorderChromaMultiplier, "Chroma multiplier for derived border colors")
	register(key.ThemeAccentLightnessCut, oklch.DefaultAccentLightnessReduction, "Lightness reduction for the pressed/hovered accent color")
	register(key.ThemeAccentChromaBoost, oklch.DefaultAccentChromaBoost, "Additive chroma boost for the pressed/hovered accent color")
	register(key.HistorySaveOnLookup, true, "Record lookups in the session history panel")
	register(key.HistoryLimit, 50, "Maximum number of entries kept in the session history")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.SearchLimit, 20, "Limit of search results to show")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.JishoEnable, false, "Fetch dictionary metadata from Jisho for the verb info card\nIt will also cache the results to not spam the API")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIConjugateOnEnter, true, "Conjugate the highlighted verb on enter")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIShowRomaji, true, "Show romaji readings under conjugated forms")
	register(key.TUICopyRevertInterval, 2, "Seconds before the \"copied\" indicator reverts")
	register(key.MiniSearchLimit, 15, "Limit of search results to show in the mini mode")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Use colored output for CLI help")
	register(key.CliVersionCheck, true, "Check for a newer release on startup")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    theme.Faint,
	"bold":     theme.Bold,
	"purple":   theme.Fg(color.Purple),
	"blue":     theme.Fg(color.Blue),
	"cyan":     theme.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return theme.Fg(color.Green)(b)
			}
			return theme.Fg(color.Red)(b)
		case string:
			return theme.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
