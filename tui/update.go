package tui

import (
	"context"
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/internal/ui"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/playback"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/util"
)

type (
	playlistLoadedMsg struct{}
	reloadedMsg       struct{}
	dispatchedMsg     struct {
		command playback.Command
		result  player.Result
	}
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.startLoading(), b.loadPlaylist(), b.waitForReload())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// captures string notifications and their expiry
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		// a reload failure keeps the catalog that is already shown
		if b.state == channelsState {
			log.Warn(msg)
			return b, tea.Batch(cmd, ui.Notify(fmt.Sprintf("%s %s", icon.Get(icon.Fail), msg)))
		}
		b.stopLoading()
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case reloadedMsg:
		if b.state == channelsState {
			b.onLoaded()
		}
		return b, tea.Batch(cmd, b.waitForReload())
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var next tea.Cmd
	switch b.state {
	case loadingState:
		next = b.updateLoading(msg)
	case channelsState:
		next = b.updateChannels(msg)
	case errorState:
		next = b.updateError(msg)
	}

	return b, tea.Batch(cmd, next)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !b.loading {
			return nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return cmd
	case playlistLoadedMsg:
		b.onLoaded()
		b.setState(channelsState)
		return ui.Notify(fmt.Sprintf("%s loaded %s", icon.Get(icon.Success), util.Quantify(b.controller.Catalog().Len(), "channel", "channels")))
	}
	return nil
}

func (b *statefulBubble) updateChannels(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case playlistLoadedMsg:
		b.onLoaded()
		return ui.Notify(fmt.Sprintf("%s reloaded %s", icon.Get(icon.Success), util.Quantify(b.controller.Catalog().Len(), "channel", "channels")))
	case dispatchedMsg:
		b.playback = b.controller.State()
		b.refreshItems()
		switch msg.command.(type) {
		case playback.SelectIndex, playback.Step:
			b.focusCurrent()
		}
		if !msg.result.OK && msg.result.Err != nil {
			return ui.Notify(fmt.Sprintf("%s %s", icon.Get(icon.Fail), msg.result.Err))
		}
		return nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.nextGroup):
			b.cycleGroup(1)
			return nil
		case bubblesKey.Matches(msg, b.keymap.prevGroup):
			b.cycleGroup(-1)
			return nil
		case bubblesKey.Matches(msg, b.keymap.reload):
			return tea.Batch(ui.Notify(icon.Get(icon.Progress)+" reloading"), b.loadPlaylist())
		}

		if command, ok := b.keymap.command(msg, b.focused()); ok {
			return b.dispatch(command)
		}
	}

	var cmd tea.Cmd
	b.channelsC, cmd = b.channelsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.reload):
			b.lastError = nil
			b.setState(loadingState)
			return tea.Batch(b.startLoading(), b.loadPlaylist())
		}
	}
	return nil
}

// onLoaded refreshes everything derived from the catalog.
func (b *statefulBubble) onLoaded() {
	b.stopLoading()
	b.playback = b.controller.State()
	b.refreshGroups()
	b.refreshItems()
	b.focusCurrent()
}

func (b *statefulBubble) loadPlaylist() tea.Cmd {
	loader := b.loader
	return func() tea.Msg {
		if _, err := loader.Load(context.Background()); err != nil {
			return fmt.Errorf("failed to load playlist %s: %w", loader.Location(), err)
		}
		return playlistLoadedMsg{}
	}
}

func (b *statefulBubble) waitForReload() tea.Cmd {
	if b.reloaded == nil {
		return nil
	}

	reloaded := b.reloaded
	return func() tea.Msg {
		<-reloaded
		return reloadedMsg{}
	}
}

// dispatch applies command off the UI goroutine, since starting a player can take a while.
func (b *statefulBubble) dispatch(command playback.Command) tea.Cmd {
	controller := b.controller
	return func() tea.Msg {
		result := controller.Dispatch(command)
		log.Debugf("%T: %s", command, result)
		return dispatchedMsg{command: command, result: result}
	}
}
