// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/Neicx/kana-dojo/icon"
	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case enginesState:
		output = b.viewEngines()
	case searchState:
		output = b.viewSearch()
	case verbsState:
		output = b.viewVerbs()
	case resultsState:
		output = b.viewResults()
	case historyState:
		output = b.viewHistory()
	case infoState:
		output = b.viewInfo()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			theme.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewEngines() string {
	return listExtraPaddingStyle.Render(b.enginesC.View())
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		theme.Title("Search Verbs"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, theme.Faint(fmt.Sprintf("tab: %s", suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewVerbs() string {
	return listExtraPaddingStyle.Render(b.verbsC.View())
}

func (b *statefulBubble) viewHistory() string {
	return listExtraPaddingStyle.Render(b.historyC.View())
}

// viewResults renders the conjugation table as an accordion of categories.
// The selected row carries the accent color; expanded categories list their
// forms with value, reading and optional romaji columns.
func (b *statefulBubble) viewResults() string {
	if b.conjugation == nil {
		return b.renderLines(true, []string{theme.ErrorTitle("Error"), "", "No conjugation loaded"})
	}

	palette := theme.Active()
	showRomaji := viper.GetBool(key.TUIShowRomaji)

	v := b.conjugation.Verb
	header := fmt.Sprintf("%s %s", theme.Bold(v.String()), theme.Faint(v.Gloss()))

	lines := []string{
		theme.Title("Conjugations"),
		"",
		theme.Truncate(b.width)(header),
		"",
	}

	rows := b.visibleRows()
	for i, row := range rows {
		selected := i == b.resultCursor
		category := b.conjugation.Categories[row.category]

		if row.form == -1 {
			chevron := "▸"
			if _, ok := b.expanded[row.category]; ok {
				chevron = "▾"
			}
			line := fmt.Sprintf("%s %s", chevron, category.Name)
			if selected {
				line = theme.Fg(palette.Accent)(line)
			} else {
				line = theme.Bold(line)
			}
			lines = append(lines, line)
			continue
		}

		form := category.Forms[row.form]
		var sb strings.Builder
		sb.WriteString(form.Name)
		sb.WriteString(": ")
		sb.WriteString(form.Value)
		if form.Reading != "" && form.Reading != form.Value {
			sb.WriteString(" ")
			sb.WriteString(theme.Faint(fmt.Sprintf("(%s)", form.Reading)))
		}
		if showRomaji && form.Romaji != "" {
			sb.WriteString(" ")
			sb.WriteString(theme.Italic(theme.Faint(form.Romaji)))
		}

		line := "  " + sb.String()
		if selected {
			line = theme.Fg(palette.Accent)("  " + form.Name + ": " + form.Value)
			if form.Reading != "" && form.Reading != form.Value {
				line += " " + theme.Faint(fmt.Sprintf("(%s)", form.Reading))
			}
			if showRomaji && form.Romaji != "" {
				line += " " + theme.Italic(theme.Faint(form.Romaji))
			}
		}
		lines = append(lines, theme.Truncate(b.width)(line))
	}

	return b.renderLines(true, lines)
}

// viewInfo renders the Jisho dictionary entry inside a framed card that uses
// the derived card and border colors.
func (b *statefulBubble) viewInfo() string {
	if b.jishoEntry == nil {
		return b.renderLines(true, []string{theme.ErrorTitle("Error"), "", "No dictionary entry loaded"})
	}

	e := b.jishoEntry

	var lines []string
	lines = append(lines, fmt.Sprintf("%s %s", icon.Get(icon.Book), theme.Bold(e.Name())))
	if reading := e.Reading(); reading != "" && reading != e.Name() {
		lines = append(lines, theme.Faint(reading))
	}
	lines = append(lines, "")
	if gloss := e.Gloss(); gloss != "" {
		lines = append(lines, wrap.String(gloss, util.Max(b.width-8, 20)))
	}

	var tags []string
	if e.IsCommon {
		tags = append(tags, theme.Tag(theme.Base, theme.Green)("common"))
	}
	for _, level := range e.JLPT {
		tags = append(tags, theme.Tag(theme.Base, theme.Blue)(level))
	}
	if len(tags) > 0 {
		lines = append(lines, "", strings.Join(tags, " "))
	}

	card := theme.Card().Render(strings.Join(lines, "\n"))

	return b.renderLines(true, []string{
		theme.Title("Dictionary"),
		"",
		card,
	})
}

func (b *statefulBubble) viewError() string {
	errorBody := theme.Fg(theme.ErrorColor)(theme.Bold(fmt.Sprintf("Failure: %v", b.lastError)))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			theme.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
