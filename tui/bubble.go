package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/fetch"
	"github.com/tvplay/tvplay/internal/ui"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/playback"
	"github.com/tvplay/tvplay/style"
	"github.com/tvplay/tvplay/util"
)

type statefulBubble struct {
	state   state
	loading bool

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	channelsC list.Model
	helpC     help.Model

	controller *playback.Controller
	loader     *fetch.Loader
	reloaded   <-chan struct{}

	groups     []string
	groupIndex int
	playback   playback.State

	lastError error

	width, height int
	notifier      *ui.Model
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	// group tabs and the now playing bar take two lines each
	listHeight := height - yy - 4

	b.channelsC.SetSize(listWidth, util.Max(listHeight, 0))
	b.channelsC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
}

// group returns the selected group label.
func (b *statefulBubble) group() string {
	if b.groupIndex < 0 || b.groupIndex >= len(b.groups) {
		return constant.AllGroups
	}
	return b.groups[b.groupIndex]
}

// cycleGroup moves the group selection by delta, wrapping around.
func (b *statefulBubble) cycleGroup(delta int) {
	if len(b.groups) == 0 {
		return
	}
	b.groupIndex = (b.groupIndex + delta + len(b.groups)) % len(b.groups)
	b.refreshItems()
	b.channelsC.ResetSelected()
}

// refreshGroups re-reads the catalog groups, keeping the selected one when it still exists.
func (b *statefulBubble) refreshGroups() {
	selected := b.group()
	b.groups = b.controller.Catalog().Groups()
	b.groupIndex = lo.IndexOf(b.groups, selected)
	if b.groupIndex < 0 {
		b.groupIndex = 0
	}
}

// refreshItems rebuilds the channel list for the selected group.
func (b *statefulBubble) refreshItems() {
	current := b.playback.Current

	entries := b.controller.Catalog().Filtered(b.group())
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = &listItem{
			entry:   entry,
			playing: current.IsPresent() && current.MustGet() == entry.Index,
		}
	}

	b.channelsC.SetItems(items)
	b.channelsC.Title = fmt.Sprintf("%s %s", constant.App, b.group())
}

// focused returns the catalog index under the cursor.
func (b *statefulBubble) focused() mo.Option[int] {
	item, ok := b.channelsC.SelectedItem().(*listItem)
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(item.entry.Index)
}

// focusCurrent moves the cursor onto the playing channel when it is visible.
func (b *statefulBubble) focusCurrent() {
	current, ok := b.playback.Current.Get()
	if !ok {
		return
	}

	for i, item := range b.channelsC.Items() {
		if item.(*listItem).entry.Index == current {
			b.channelsC.Select(i)
			return
		}
	}
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:     keymap,
		controller: options.Controller,
		loader:     options.Loader,
		reloaded:   options.Reloaded,
		groups:     []string{constant.AllGroups},
		playback:   playback.State{Current: mo.None[int]()},
		notifier:   &ui.Model{},
	}

	if bubble.controller != nil {
		bubble.playback = bubble.controller.State()
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.channelsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.channelsC.KeyMap = keymap.forList()
	bubble.channelsC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.channelsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.channelsC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	bubble.channelsC.Styles.NoItems = paddingStyle
	bubble.channelsC.StatusMessageLifetime = time.Second * 3
	bubble.channelsC.SetFilteringEnabled(false)
	bubble.channelsC.SetStatusBarItemName("channel", "channels")
	bubble.channelsC.Title = constant.App

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
