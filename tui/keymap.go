// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/Neicx/kana-dojo/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	back,
	acceptSearchSuggestion,
	changeEngine,
	toggle,
	toggleAll,
	copyForm,
	copyTable,
	copyPermalink,
	toggleRomaji,
	info,
	openHistory,
	importPermalink,
	remove,
	openURL,
	filter,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	accent := theme.Fg(theme.Active().Accent)

	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(accent("enter"), accent("confirm")),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept search suggestion"),
		),
		changeEngine: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "change engine"),
		),
		toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "expand/collapse"),
		),
		toggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "expand/collapse all"),
		),
		copyForm: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy form"),
		),
		copyTable: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "copy table"),
		),
		copyPermalink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy permalink"),
		),
		toggleRomaji: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle romaji"),
		),
		info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "dictionary info"),
		),
		openHistory: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		importPermalink: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "paste permalink"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open url"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case enginesState:
		return to2(h(k.confirm, k.back, k.quit))
	case searchState:
		return to2(h(k.confirm, k.acceptSearchSuggestion, k.importPermalink, k.changeEngine, k.forceQuit))
	case verbsState:
		return h(k.confirm, k.info, k.back), h(k.confirm, k.info, k.openHistory, k.changeEngine, k.back)
	case resultsState:
		return h(k.toggle, k.copyForm, k.copyPermalink, k.back),
			h(k.toggle, k.toggleAll, k.copyForm, k.copyTable, k.copyPermalink, k.toggleRomaji, k.info, k.openHistory, k.back)
	case historyState:
		return to2(h(k.confirm, k.remove, k.copyPermalink, k.back))
	case infoState:
		return to2(h(k.openURL, k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               k.filter,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
