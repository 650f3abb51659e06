package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/tvplay/tvplay/color"
	"github.com/tvplay/tvplay/playback"
	"github.com/tvplay/tvplay/style"
)

// statefulKeymap defines the keyboard interactions available within each application state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	play,
	next, prev,
	playPause, stop,
	volumeUp, volumeDown,
	nextGroup, prevGroup,
	reload,
	up, down,
	pageUp, pageDown,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("play")),
		),
		next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next channel"),
		),
		prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev channel"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause/resume"),
		),
		stop: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "stop"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "volume down"),
		),
		nextGroup: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next group"),
		),
		prevGroup: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev group"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// command maps a key press onto the playback command it stands for.
// focused is the catalog index under the cursor.
func (k *statefulKeymap) command(msg tea.KeyMsg, focused mo.Option[int]) (playback.Command, bool) {
	switch {
	case key.Matches(msg, k.play):
		if i, ok := focused.Get(); ok {
			return playback.SelectIndex{I: i}, true
		}
	case key.Matches(msg, k.next):
		return playback.Step{Delta: 1}, true
	case key.Matches(msg, k.prev):
		return playback.Step{Delta: -1}, true
	case key.Matches(msg, k.playPause):
		return playback.TogglePause{}, true
	case key.Matches(msg, k.stop):
		return playback.Stop{}, true
	case key.Matches(msg, k.volumeUp):
		return playback.NudgeVolume{Delta: playback.VolumeStep}, true
	case key.Matches(msg, k.volumeDown):
		return playback.NudgeVolume{Delta: -playback.VolumeStep}, true
	}

	return nil, false
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case channelsState:
		return h(k.play, k.playPause, k.stop, k.nextGroup, k.showHelp),
			h(k.play, k.next, k.prev, k.playPause, k.stop, k.volumeUp, k.volumeDown, k.nextGroup, k.prevGroup, k.reload, k.quit)
	case errorState:
		return to2(h(k.reload, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:      k.up,
		CursorDown:    k.down,
		NextPage:      k.pageDown,
		PrevPage:      k.pageUp,
		GoToStart:     k.top,
		GoToEnd:       k.bottom,
		ShowFullHelp:  k.showHelp,
		CloseFullHelp: k.showHelp,
		Quit:          k.quit,
		ForceQuit:     k.forceQuit,
	}
}
