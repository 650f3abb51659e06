// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/tvplay/tvplay/color"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	barStyle              = lipgloss.NewStyle().Padding(0, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case channelsState:
		output = b.viewChannels()
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
			style.Title("Loading"),
			"",
			fmt.Sprintf("%s Fetching %s", b.spinnerC.View(), style.Fg(color.Purple)(b.loader.Location())),
		},
	)
}

func (b *statefulBubble) viewChannels() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		barStyle.Render(b.fit(b.viewGroups())),
		listExtraPaddingStyle.Render(b.channelsC.View()),
		barStyle.Render(b.fit(b.viewNowPlaying())),
	)
}

func (b *statefulBubble) viewGroups() string {
	active := style.Tag(style.Base, style.AccentColor)
	tabs := make([]string, len(b.groups))
	for i, group := range b.groups {
		if i == b.groupIndex {
			tabs[i] = active(group)
		} else {
			tabs[i] = style.Faint(group)
		}
	}
	return strings.Join(tabs, " ")
}

func (b *statefulBubble) viewNowPlaying() string {
	state := b.playback

	var status string
	switch {
	case state.Channel == nil:
		status = fmt.Sprintf("%s %s", icon.Get(icon.Stopped), style.Faint("nothing playing"))
	case state.Stopped:
		status = fmt.Sprintf("%s %s", icon.Get(icon.Stopped), style.Faint(state.Channel.Title))
	case state.Paused:
		status = fmt.Sprintf("%s %s", icon.Get(icon.Paused), state.Channel.Title)
	default:
		status = fmt.Sprintf("%s %s %s", icon.Get(icon.Playing), style.Bold(state.Channel.Title), style.Faint(state.Channel.Group))
	}

	volume := fmt.Sprintf("%s %d%%", icon.Get(icon.Volume), int(math.Round(state.Volume*100)))
	return fmt.Sprintf("%s  %s", status, style.Fg(style.SecondaryColor)(volume))
}

// fit truncates a rendered line to the terminal width.
func (b *statefulBubble) fit(line string) string {
	if b.width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(b.width), "…")
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Could not load the playlist:",
			"",
			errorMsg,
		},
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
