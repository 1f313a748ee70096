package mini

import (
	"fmt"
	"strings"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/history"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/query"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/atotto/clipboard"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type state int

const (
	engineSelectState state = iota + 1
	verbSearchState
	verbSelectState
	conjugationViewState
	historySelectState
	quitState
)

func (m *mini) handleEngineSelectState() error {
	var err error

	if name := viper.GetString(key.DefaultEngine); name != "" {
		d, ok := engine.Get(name)
		if !ok {
			return fmt.Errorf("unknown engine \"%s\"", name)
		}

		m.activeEngine, err = d.Load()
		if err != nil {
			return err
		}
	} else {
		var descriptors []*engine.Descriptor
		descriptors = append(descriptors, engine.Builtins()...)
		descriptors = append(descriptors, engine.Customs()...)

		slices.SortFunc(descriptors, func(a, b *engine.Descriptor) int {
			return strings.Compare(a.String(), b.String())
		})

		title("Select Engine")
		b, d, err := menu(descriptors)
		if err != nil {
			return err
		}

		if quit.eq(b) {
			m.newState(quitState)
			return nil
		}

		erase := progress("Initializing Engine..")
		m.activeEngine, err = d.Load()
		if err != nil {
			return err
		}
		erase()
	}

	m.newState(verbSearchState)
	return nil
}

func (m *mini) handleVerbSearchState() error {
	var searchLoop func() error
	title("Search Verbs")

	searchLoop = func() error {
		in, err := getInput(func(s string) bool {
			return s != ""
		})

		if err != nil {
			return err
		}

		q := in.value

		erase := progress("Searching Query..")
		m.cachedVerbs[q], err = m.activeEngine.Search(q)
		if err != nil {
			erase()
			return err
		}

		max := lo.Min([]int{len(m.cachedVerbs[q]), viper.GetInt(key.MiniSearchLimit)})
		m.cachedVerbs[q] = m.cachedVerbs[q][:max]
		erase()

		if len(m.cachedVerbs[q]) == 0 {
			fail("No verbs found")
			return searchLoop()
		}

		query.Remember(q, 1)

		m.query = q
		m.newState(verbSelectState)
		return nil
	}

	return searchLoop()
}

func (m *mini) handleVerbSelectState() error {
	title("Query Results >>")
	b, v, err := menu(m.cachedVerbs[m.query], search)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
		return nil
	case search.eq(b):
		m.newState(verbSearchState)
		return nil
	}

	m.selectedVerb = v
	m.newState(conjugationViewState)
	return nil
}

func (m *mini) handleConjugationViewState() error {
	v := m.selectedVerb

	conjugation, ok := m.cachedConjugations[v.Dictionary]
	if !ok {
		erase := progress("Conjugating..")
		c, err := m.activeEngine.Conjugate(v)
		erase()
		if err != nil {
			return err
		}

		m.cachedConjugations[v.Dictionary] = c
		conjugation = c
	}

	history.Save(v, m.activeEngine.ID())

	var viewLoop func() error
	viewLoop = func() error {
		util.ClearScreen()
		m.renderConjugation(conjugation)

		b, _, err := menu([]fmt.Stringer{}, romaji, copyLink, back, search, hist)
		if err != nil {
			return err
		}

		switch {
		case romaji.eq(b):
			viper.Set(key.TUIShowRomaji, !viper.GetBool(key.TUIShowRomaji))
			return viewLoop()
		case copyLink.eq(b):
			p := history.Export()
			p.Verb = v.Dictionary
			p.Engine = m.activeEngine.Name()
			if err := clipboard.WriteAll(p.Encode()); err != nil {
				fail("Clipboard unavailable")
			}
			return viewLoop()
		case back.eq(b):
			m.selectedVerb = nil
			m.previousState()
		case search.eq(b):
			m.newState(verbSearchState)
		case hist.eq(b):
			m.newState(historySelectState)
		case quit.eq(b):
			m.newState(quitState)
		}

		return nil
	}

	return viewLoop()
}

func (m *mini) renderConjugation(c *verb.Conjugation) {
	title(c.Verb.String())
	if gloss := c.Verb.Gloss(); gloss != "" {
		fmt.Println(theme.Faint(gloss))
	}
	fmt.Println()

	showRomaji := viper.GetBool(key.TUIShowRomaji)

	for _, category := range c.Categories {
		fmt.Println(theme.Bold(category.Name))

		for _, form := range category.Forms {
			line := fmt.Sprintf("  %s: %s", form.Name, form.Value)
			if form.Reading != "" && form.Reading != form.Value {
				line += fmt.Sprintf(" (%s)", form.Reading)
			}
			if showRomaji && form.Romaji != "" {
				line += " " + theme.Faint(form.Romaji)
			}

			fmt.Println(theme.Truncate(truncateAt)(line))
		}

		fmt.Println()
	}
}

func (m *mini) handleHistorySelectState() error {
	lookups := history.Get()

	if len(lookups) == 0 {
		fail("History is empty")
		m.newState(engineSelectState)
		return nil
	}

	// Most recent first.
	slices.Reverse(lookups)

	title("History Results >>")
	b, l, err := menu(lookups)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	if m.activeEngine == nil || m.activeEngine.ID() != l.EngineID {
		var descriptors []*engine.Descriptor
		descriptors = append(descriptors, engine.Builtins()...)
		descriptors = append(descriptors, engine.Customs()...)

		d, ok := lo.Find(descriptors, func(d *engine.Descriptor) bool {
			return d.ID == l.EngineID
		})
		if !ok {
			return fmt.Errorf("engine \"%s\" is no longer available", l.EngineID)
		}

		erase := progress("Initializing Engine..")
		m.activeEngine, err = d.Load()
		erase()
		if err != nil {
			return err
		}
	}

	m.selectedVerb = &verb.Verb{
		Dictionary: l.Dictionary,
		Reading:    l.Reading,
		Romaji:     l.Romaji,
	}

	m.newState(conjugationViewState)
	return nil
}
