// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/internal/ui"
	"github.com/Neicx/kana-dojo/jisho"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool
	busy          bool // Protects against rapid input during async ops

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	enginesC list.Model
	verbsC   list.Model
	historyC list.Model
	helpC    help.Model

	activeEngine engine.Engine
	selectedVerb *verb.Verb
	conjugation  *verb.Conjugation
	jishoEntry   *jisho.Entry

	// accordion state for the conjugation table
	expanded     map[int]struct{}
	resultCursor int

	engineLoadedChannel chan engine.Engine
	foundVerbsChannel   chan []*verb.Verb
	conjugationChannel  chan *verb.Conjugation
	jishoEntryChannel   chan *jisho.Entry
	errorChannel        chan error

	progressStatus string
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState facilitates an idempotent transition to a target state, recording the previous state in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push these states to history
	if !lo.Contains([]state{
		loadingState,
		infoState,
	}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		s := b.statesHistory.Pop()
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.enginesC.SetSize(listWidth, listHeight)
	b.enginesC.Help.Width = listWidth

	b.verbsC.SetSize(listWidth, listHeight)
	b.verbsC.Help.Width = listWidth

	b.historyC.SetSize(listWidth, listHeight)
	b.historyC.Help.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

// startLoading enters a concurrent loading state, initializing visual indicators across child components.
func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	b.busy = true
	return tea.Batch(b.verbsC.StartSpinner(), b.spinnerC.Tick)
}

// stopLoading exits the loading state and synchronizes child component visual indicators.
func (b *statefulBubble) stopLoading() tea.Cmd {
	b.loading = false
	b.busy = false
	b.verbsC.StopSpinner()
	return nil
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	palette := theme.Active()

	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,

		engineLoadedChannel: make(chan engine.Engine),
		foundVerbsChannel:   make(chan []*verb.Verb),
		conjugationChannel:  make(chan *verb.Conjugation),
		jishoEntryChannel:   make(chan *jisho.Entry),
		errorChannel:        make(chan error),

		expanded: make(map[int]struct{}),
		notifier: &ui.Model{},
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(palette.Accent).
			Foreground(palette.Accent).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(palette.Accent)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search Verbs (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.enginesC = makeList("Conjugation Engines", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(theme.Base).Background(palette.Accent).Padding(0, 1),
		),
	})
	bubble.enginesC.SetStatusBarItemName("engine", "engines")

	bubble.verbsC = makeList("Verbs", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(theme.Base).Background(theme.Lavender).Padding(0, 1),
		),
	})
	bubble.verbsC.SetStatusBarItemName("verb", "verbs")

	bubble.historyC = makeList("History", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(theme.Base).Background(theme.Yellow).Padding(0, 1),
		),
	})
	bubble.historyC.SetStatusBarItemName("lookup", "lookups")

	bubble.options = options

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
