// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Conjugation Engine Selection - these keys manage the registration and selection of conjugation engines.
const (
	DefaultEngine = "engine.default"
)

// Theme Configuration - these keys govern the base palette and the color derivation coefficients.
const (
	ThemePolarity             = "theme.polarity"
	ThemeAccent               = "theme.accent"
	ThemeSurface              = "theme.surface"
	ThemeCardLightnessBoost   = "theme.card_lightness_boost"
	ThemeCardChromaMult       = "theme.card_chroma_multiplier"
	ThemeBorderLightnessBoost = "theme.border_lightness_boost"
	ThemeBorderChromaMult     = "theme.border_chroma_multiplier"
	ThemeAccentLightnessCut   = "theme.accent_lightness_reduction"
	ThemeAccentChromaBoost    = "theme.accent_chroma_boost"
)

// History Tracking - these keys configure the in-memory lookup history.
const (
	HistorySaveOnLookup = "history.save_on_lookup"
	HistoryLimit        = "history.limit"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchLimit                = "search.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Jisho Dictionary Integration - these keys manage the retrieval of verb metadata for the info card.
const (
	JishoEnable = "jisho.enable"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUIConjugateOnEnter   = "tui.conjugate_on_enter"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowRomaji         = "tui.show_romaji"
	TUICopyRevertInterval = "tui.copy_revert_interval"
)

// Mini Mode - these keys configure the prompt-driven minimalist interface.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
