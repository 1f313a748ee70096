// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Engine preselects a conjugation engine by name, skipping the picker.
	Engine string
	// Query prefills the search input and runs the search immediately.
	Query string
	// History opens the session history view after the engine is loaded.
	History bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
