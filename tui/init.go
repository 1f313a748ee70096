// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/Neicx/kana-dojo/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// Init initializes the terminal user interface, triggering initial data loads.
func (b *statefulBubble) Init() tea.Cmd {
	name := b.options.Engine
	if name == "" {
		name = viper.GetString(key.DefaultEngine)
	}

	// Auto-load the engine when one is preselected via flag or config.
	if name != "" {
		d, err := findDescriptor(name)
		if err != nil {
			b.raiseError(err)
			return nil
		}

		b.setState(loadingState)
		return tea.Batch(b.startLoading(), b.loadEngines(), b.loadEngine(d), b.waitForEngine())
	}

	b.setState(enginesState)
	return tea.Batch(textinput.Blink, b.loadEngines())
}
