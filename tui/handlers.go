// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/history"
	"github.com/Neicx/kana-dojo/jisho"
	"github.com/Neicx/kana-dojo/log"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

func (b *statefulBubble) loadEngines() tea.Cmd {
	builtins := engine.Builtins()
	customs := engine.Customs()

	var items []list.Item
	for _, d := range builtins {
		items = append(items, &listItem{
			internal: d,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.Compare(items[i].FilterValue(), items[j].FilterValue()) < 0
	})

	var customItems []list.Item
	for _, d := range customs {
		customItems = append(customItems, &listItem{
			internal: d,
		})
	}
	sort.Slice(customItems, func(i, j int) bool {
		return strings.Compare(customItems[i].FilterValue(), customItems[j].FilterValue()) < 0
	})

	return b.enginesC.SetItems(append(items, customItems...))
}

func (b *statefulBubble) loadHistory() tea.Cmd {
	entries := history.Get()

	items := make([]list.Item, len(entries))
	for i := range entries {
		// Most recent lookups first.
		items[i] = &listItem{
			internal: entries[len(entries)-1-i],
		}
	}

	return b.historyC.SetItems(items)
}

func (b *statefulBubble) loadEngine(d *engine.Descriptor) tea.Cmd {
	return func() tea.Msg {
		log.Info("loading engine " + d.ID)
		b.progressStatus = fmt.Sprintf("Loading %s", theme.Fg(theme.Active().Accent)(d.Name))

		e, err := d.Load()
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		log.Info("engine " + d.ID + " loaded")
		b.engineLoadedChannel <- e
		return nil
	}
}

func (b *statefulBubble) waitForEngine() tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-b.engineLoadedChannel:
			return e
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) searchVerbs(query string) tea.Cmd {
	return func() tea.Msg {
		log.Info("searching for " + query)
		b.progressStatus = fmt.Sprintf("Searching for %s", theme.Fg(theme.Active().Accent)(query))

		verbs, err := b.activeEngine.Search(query)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		log.Infof("found %s", util.Quantify(len(verbs), "verb", "verbs"))
		b.foundVerbsChannel <- verbs
		return nil
	}
}

func (b *statefulBubble) waitForVerbs() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundVerbsChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) conjugateVerb(v *verb.Verb) tea.Cmd {
	return func() tea.Msg {
		log.Info("conjugating " + v.Dictionary)
		b.progressStatus = fmt.Sprintf("Conjugating %s", theme.Fg(theme.Active().Accent)(v.String()))

		conjugation, err := b.activeEngine.Conjugate(v)
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		history.Save(v, b.activeEngine.ID())

		log.Infof("got %s", util.Quantify(len(conjugation.Categories), "category", "categories"))
		b.conjugationChannel <- conjugation
		return nil
	}
}

func (b *statefulBubble) waitForConjugation() tea.Cmd {
	return func() tea.Msg {
		select {
		case conjugation := <-b.conjugationChannel:
			return conjugation
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) fetchJishoEntry(v *verb.Verb) tea.Cmd {
	return func() tea.Msg {
		log.Info("fetching dictionary entry for " + v.Dictionary)
		b.progressStatus = fmt.Sprintf("Asking Jisho about %s", theme.Fg(theme.Active().Accent)(v.Dictionary))

		entry, err := jisho.FindClosest(v.Dictionary)
		if err != nil {
			log.Warn(err)
			b.errorChannel <- err
			return nil
		}

		b.jishoEntryChannel <- entry
		return nil
	}
}

func (b *statefulBubble) waitForJishoEntry() tea.Cmd {
	return func() tea.Msg {
		select {
		case entry := <-b.jishoEntryChannel:
			return entry
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

// permalink builds the exchange URL for the current lookup plus the session
// history, so a session can be restored elsewhere.
func (b *statefulBubble) permalink() string {
	p := history.Export()
	if b.selectedVerb != nil {
		p.Verb = b.selectedVerb.Dictionary
	}
	if b.activeEngine != nil {
		p.Engine = b.activeEngine.Name()
	}
	return p.Encode()
}

// findDescriptor resolves an engine name to its descriptor, falling back to
// fuzzy candidates for a helpful error.
func findDescriptor(name string) (*engine.Descriptor, error) {
	d, ok := engine.Get(name)
	if ok {
		return d, nil
	}

	names := lo.Map(append(engine.Builtins(), engine.Customs()...), func(d *engine.Descriptor, _ int) string {
		return d.Name
	})
	return nil, fmt.Errorf("engine %s not found, available: %s", name, strings.Join(names, ", "))
}
