// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/history"
	"github.com/Neicx/kana-dojo/icon"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
)

// listItem implements the list.Item interface, wrapping various domain models for terminal display.
type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case *verb.Verb:
		return theme.Bold(theme.Fg(theme.Active().Accent)(icon.Get(icon.Mark)))
	case *engine.Descriptor:
		return icon.Get(icon.Search)
	default:
		return ""
	}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *verb.Verb:
		title = e.String()
	case *engine.Descriptor:
		title = e.Name
		if e.IsCustom {
			title = fmt.Sprintf("%s %s", title, icon.Get(icon.Lua))
		}
	case *history.SavedLookup:
		title = e.String()
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *verb.Verb:
		var parts []string

		if e.Class != "" {
			parts = append(parts, theme.Fg(theme.Teal)(util.Capitalize(string(e.Class))))
		}
		if e.Romaji != "" {
			parts = append(parts, theme.Faint(e.Romaji))
		}
		if gloss := e.Gloss(); gloss != "" {
			parts = append(parts, gloss)
		}

		description = strings.Join(parts, " • ")
	case *engine.Descriptor:
		if e.IsCustom {
			description = "Lua Extension"
		} else {
			description = "Built-in Engine"
		}
	case *history.SavedLookup:
		description = fmt.Sprintf("%s • %s", e.EngineID, e.When.Format("15:04"))
	case string:
		description = ""
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *verb.Verb:
		return strings.Join([]string{e.Dictionary, e.Reading, e.Romaji}, " ")
	case *engine.Descriptor:
		return e.Name
	case *history.SavedLookup:
		return e.Dictionary + " " + e.Reading
	case string:
		return e
	default:
		return ""
	}
}
