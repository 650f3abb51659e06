// Package tui provides the interactive channel browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tvplay/tvplay/fetch"
	"github.com/tvplay/tvplay/playback"
)

// Options wires the browser to the application state.
type Options struct {
	// Controller receives every playback command.
	Controller *playback.Controller

	// Loader fetches the playlist into the controller's catalog.
	Loader *fetch.Loader

	// Reloaded is signalled after a background reload. Nil disables it.
	Reloaded <-chan struct{}
}

// Run executes the Bubble Tea program until the user quits.
func Run(options *Options) error {
	bubble := newBubble(options)
	bubble.setState(loadingState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
