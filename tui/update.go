// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/history"
	"github.com/Neicx/kana-dojo/icon"
	"github.com/Neicx/kana-dojo/jisho"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/open"
	"github.com/Neicx/kana-dojo/query"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/atotto/clipboard"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		}

		// Input Guard: Ignore non-priority keys during asynchronous operations.
		if b.busy && b.state != errorState {
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			onListBack := func(l *list.Model) tea.Cmd {
				l.ResetSelected()
				l.ResetFilter()
				return tea.Batch(cmd, l.NewStatusMessage(""))
			}

			switch b.state {
			case searchState:
				b.inputC.SetValue("")
			case verbsState:
				if b.verbsC.FilterState() != list.Unfiltered {
					b.verbsC, cmd = b.verbsC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.verbsC)
			case historyState:
				if b.historyC.FilterState() != list.Unfiltered {
					b.historyC, cmd = b.historyC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.historyC)
			case enginesState:
				if b.enginesC.FilterState() != list.Unfiltered {
					b.enginesC, cmd = b.enginesC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.enginesC)
			case resultsState:
				b.resultCursor = 0
			}

			b.previousState()
			b.stopLoading()
			return b, cmd
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case enginesState:
		return b.updateEngines(msg)
	case searchState:
		return b.updateSearch(msg)
	case verbsState:
		return b.updateVerbs(msg)
	case resultsState:
		return b.updateResults(msg)
	case historyState:
		return b.updateHistory(msg)
	case infoState:
		return b.updateInfo(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds = make([]tea.Cmd, 0)
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
			} else {
				return b, tea.Quit
			}
		}
	case engine.Engine:
		b.activeEngine = msg
		b.stopLoading()

		if q := b.options.Query; q != "" {
			b.options.Query = "" // consume the flag so it only auto-searches once
			b.inputC.SetValue(q)
			b.setState(searchState)
			b.progressStatus = fmt.Sprintf("Searching for %s", theme.Fg(theme.Active().Accent)(q))
			b.newState(loadingState)
			go query.Remember(q, 1)
			return b, tea.Batch(b.startLoading(), b.searchVerbs(q), b.waitForVerbs())
		}

		if b.options.History {
			b.options.History = false
			b.setState(searchState)
			b.newState(historyState)
			return b, b.loadHistory()
		}

		b.newState(searchState)
	case []*verb.Verb:
		if len(msg) == 0 {
			b.stopLoading()
			b.previousState()
			return b, func() tea.Msg {
				return fmt.Sprintf("%s Nothing found", icon.Get(icon.Fail))
			}
		}

		items := make([]list.Item, len(msg))
		for i, v := range msg {
			items[i] = &listItem{internal: v}
		}

		cmds = append(cmds, b.verbsC.SetItems(items))
		b.verbsC.ResetSelected()
		b.newState(verbsState)
		b.stopLoading()
	case *verb.Conjugation:
		b.conjugation = msg
		b.selectedVerb = msg.Verb
		// Mark the looked-up verb in the results list.
		for _, item := range b.verbsC.Items() {
			item := item.(*listItem)
			if v, ok := item.internal.(*verb.Verb); ok {
				item.marked = v.Dictionary == msg.Verb.Dictionary
			}
		}
		b.expanded = make(map[int]struct{})
		// The first category starts expanded so results are visible at once.
		if len(msg.Categories) > 0 {
			b.expanded[0] = struct{}{}
		}
		b.resultCursor = 0
		b.newState(resultsState)
		b.stopLoading()
	case *jisho.Entry:
		b.jishoEntry = msg
		b.newState(infoState)
		b.stopLoading()
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateEngines(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.enginesC.Items()); n > 0 && b.enginesC.Index() == 0 {
				b.enginesC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.enginesC.Items()); n > 0 && b.enginesC.Index() == n-1 {
				b.enginesC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.enginesC.SelectedItem() == nil {
				break
			}
			d := b.enginesC.SelectedItem().(*listItem).internal.(*engine.Descriptor)

			b.progressStatus = fmt.Sprintf("Loading %s...", d.Name)
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.loadEngine(d), b.waitForEngine())
		}
	}

	b.enginesC, cmd = b.enginesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.changeEngine):
			b.newState(enginesState)
			return b, b.loadEngines()
		case bubblesKey.Matches(msg, b.keymap.importPermalink):
			raw, err := clipboard.ReadAll()
			if err != nil {
				break
			}
			p, err := verb.ParsePermalink(raw)
			if err != nil || (p.Verb == "" && len(p.History) == 0) {
				break
			}

			engineID := p.Engine
			if engineID == "" && b.activeEngine != nil {
				engineID = b.activeEngine.ID()
			}
			history.Import(p, engineID)

			if p.Verb != "" {
				b.inputC.SetValue(p.Verb)
				b.inputC.SetCursor(len(b.inputC.Value()))
			}
			return b, func() tea.Msg {
				return fmt.Sprintf("%s Permalink imported", icon.Get(icon.Link))
			}
		case bubblesKey.Matches(msg, b.keymap.openHistory):
			b.newState(historyState)
			return b, b.loadHistory()
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			b.progressStatus = fmt.Sprintf("Searching for %s...", b.inputC.Value())
			b.startLoading()
			b.newState(loadingState)
			go query.Remember(b.inputC.Value(), 1)
			return b, tea.Batch(b.searchVerbs(b.inputC.Value()), b.waitForVerbs(), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateVerbs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.changeEngine):
			b.newState(enginesState)
			return b, b.loadEngines()
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.verbsC.Items()); n > 0 && b.verbsC.Index() == 0 {
				b.verbsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.verbsC.Items()); n > 0 && b.verbsC.Index() == n-1 {
				b.verbsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.info):
			if b.verbsC.SelectedItem() == nil {
				break
			}
			if !viper.GetBool(key.JishoEnable) {
				return b, func() tea.Msg {
					return fmt.Sprintf("%s Jisho integration is disabled", icon.Get(icon.Fail))
				}
			}
			v := b.verbsC.SelectedItem().(*listItem).internal.(*verb.Verb)
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.fetchJishoEntry(v), b.waitForJishoEntry())
		case bubblesKey.Matches(msg, b.keymap.openHistory):
			b.newState(historyState)
			return b, b.loadHistory()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.verbsC.SelectedItem() == nil {
				break
			}
			if !viper.GetBool(key.TUIConjugateOnEnter) {
				break
			}
			v := b.verbsC.SelectedItem().(*listItem).internal.(*verb.Verb)
			b.selectedVerb = v
			go query.Remember(v.Dictionary, 2)
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.conjugateVerb(v), b.waitForConjugation())
		}
	}

	b.verbsC, cmd = b.verbsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	rows := b.visibleRows()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if len(rows) > 0 {
				b.resultCursor = (b.resultCursor - 1 + len(rows)) % len(rows)
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if len(rows) > 0 {
				b.resultCursor = (b.resultCursor + 1) % len(rows)
			}
		case bubblesKey.Matches(msg, b.keymap.top):
			b.resultCursor = 0
		case bubblesKey.Matches(msg, b.keymap.bottom):
			if len(rows) > 0 {
				b.resultCursor = len(rows) - 1
			}
		case bubblesKey.Matches(msg, b.keymap.toggle):
			if len(rows) == 0 {
				break
			}
			row := rows[b.resultCursor]
			if row.form == -1 {
				if _, ok := b.expanded[row.category]; ok {
					delete(b.expanded, row.category)
				} else {
					b.expanded[row.category] = struct{}{}
				}
				b.clampCursor()
				break
			}
			// Toggling on a form row copies it, same as the copy key.
			return b, b.copySelectedForm(rows)
		case bubblesKey.Matches(msg, b.keymap.toggleAll):
			if len(b.expanded) == len(b.conjugation.Categories) {
				b.expanded = make(map[int]struct{})
			} else {
				for i := range b.conjugation.Categories {
					b.expanded[i] = struct{}{}
				}
			}
			b.clampCursor()
		case bubblesKey.Matches(msg, b.keymap.copyForm):
			return b, b.copySelectedForm(rows)
		case bubblesKey.Matches(msg, b.keymap.copyTable):
			return b, b.copyConjugationTable()
		case bubblesKey.Matches(msg, b.keymap.copyPermalink):
			if err := clipboard.WriteAll(b.permalink()); err != nil {
				b.raiseError(err)
				break
			}
			return b, func() tea.Msg {
				return fmt.Sprintf("%s Permalink copied", icon.Get(icon.Link))
			}
		case bubblesKey.Matches(msg, b.keymap.toggleRomaji):
			viper.Set(key.TUIShowRomaji, !viper.GetBool(key.TUIShowRomaji))
		case bubblesKey.Matches(msg, b.keymap.info):
			if !viper.GetBool(key.JishoEnable) {
				return b, func() tea.Msg {
					return fmt.Sprintf("%s Jisho integration is disabled", icon.Get(icon.Fail))
				}
			}
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.fetchJishoEntry(b.conjugation.Verb), b.waitForJishoEntry())
		case bubblesKey.Matches(msg, b.keymap.openHistory):
			b.newState(historyState)
			return b, b.loadHistory()
		}
	}

	return b, nil
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == 0 {
				b.historyC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == n-1 {
				b.historyC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			if b.historyC.SelectedItem() != nil {
				entry := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedLookup)
				history.Remove(entry)
				return b, b.loadHistory()
			}
		case bubblesKey.Matches(msg, b.keymap.copyPermalink):
			if err := clipboard.WriteAll(b.permalink()); err != nil {
				b.raiseError(err)
				break
			}
			return b, func() tea.Msg {
				return fmt.Sprintf("%s Permalink copied", icon.Get(icon.Link))
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.historyC.SelectedItem() == nil {
				break
			}
			if b.activeEngine == nil {
				b.raiseError(fmt.Errorf("no engine loaded"))
				break
			}

			entry := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedLookup)
			v := &verb.Verb{
				Dictionary: entry.Dictionary,
				Reading:    entry.Reading,
				Romaji:     entry.Romaji,
			}
			b.selectedVerb = v
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.conjugateVerb(v), b.waitForConjugation())
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.jishoEntry == nil {
				break
			}
			if err := open.Start("https://jisho.org/word/" + b.jishoEntry.Slug); err != nil {
				b.raiseError(err)
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}
	return b, nil
}

// resultRow addresses one visible line of the conjugation accordion:
// a category header (form == -1) or a form inside an expanded category.
type resultRow struct {
	category int
	form     int
}

func (b *statefulBubble) visibleRows() []resultRow {
	if b.conjugation == nil {
		return nil
	}

	var rows []resultRow
	for c, category := range b.conjugation.Categories {
		rows = append(rows, resultRow{category: c, form: -1})
		if _, ok := b.expanded[c]; !ok {
			continue
		}
		for f := range category.Forms {
			rows = append(rows, resultRow{category: c, form: f})
		}
	}
	return rows
}

func (b *statefulBubble) clampCursor() {
	if rows := b.visibleRows(); b.resultCursor >= len(rows) {
		b.resultCursor = len(rows) - 1
	}
	if b.resultCursor < 0 {
		b.resultCursor = 0
	}
}

func (b *statefulBubble) copySelectedForm(rows []resultRow) tea.Cmd {
	if len(rows) == 0 {
		return nil
	}

	row := rows[b.resultCursor]
	if row.form == -1 {
		return nil
	}

	form := b.conjugation.Categories[row.category].Forms[row.form]
	if err := clipboard.WriteAll(form.Value); err != nil {
		b.raiseError(err)
		return nil
	}

	return func() tea.Msg {
		return fmt.Sprintf("%s Copied %s", icon.Get(icon.Copy), form.Value)
	}
}

func (b *statefulBubble) copyConjugationTable() tea.Cmd {
	if b.conjugation == nil {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(b.conjugation.Verb.String() + "\n")
	for _, category := range b.conjugation.Categories {
		sb.WriteString("\n" + category.Name + "\n")
		for _, form := range category.Forms {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", form.Name, form.Value))
		}
	}

	if err := clipboard.WriteAll(sb.String()); err != nil {
		b.raiseError(err)
		return nil
	}

	return func() tea.Msg {
		return fmt.Sprintf("%s Copied conjugation table", icon.Get(icon.Copy))
	}
}
