package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/catalog"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/style"
)

// listItem wraps a catalog entry for the channel list.
type listItem struct {
	entry   catalog.Entry
	playing bool
}

func (t *listItem) Title() string {
	title := t.entry.Channel.Title
	if t.playing {
		mark := lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Playing))
		title = fmt.Sprintf("%s %s", title, mark)
	}
	return title
}

func (t *listItem) Description() string {
	description := fmt.Sprintf("%s %s", icon.Get(icon.Group), t.entry.Channel.Group)

	if viper.GetBool(key.TUIShowURLs) && t.entry.Channel.Logo != "" {
		description += " " + style.Faint(t.entry.Channel.Logo)
	}

	return description
}

func (t *listItem) FilterValue() string {
	return t.entry.Channel.Title
}
