// Package mini implements a lightweight, prompt-driven interface for verb lookup and conjugation.
package mini

import (
	"os"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/samber/lo"
)

var (
	truncateAt = 100
)

type Options struct {
	Continue bool
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	activeEngine engine.Engine

	cachedVerbs        map[string][]*verb.Verb
	cachedConjugations map[string]*verb.Conjugation

	query        string
	selectedVerb *verb.Verb
}

func newMini() *mini {
	return &mini{
		statesHistory:      util.Stack[state]{},
		cachedVerbs:        make(map[string][]*verb.Verb),
		cachedConjugations: make(map[string]*verb.Conjugation),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini()
	m.state = engineSelectState
	if options.Continue {
		m.state = historySelectState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case historySelectState:
		return m.handleHistorySelectState()
	case engineSelectState:
		return m.handleEngineSelectState()
	case verbSearchState:
		return m.handleVerbSearchState()
	case verbSelectState:
		return m.handleVerbSelectState()
	case conjugationViewState:
		return m.handleConjugationViewState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
