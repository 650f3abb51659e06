package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/style"
)

// checkPlayers exits when none of the configured players can be started.
func checkPlayers() {
	chain := append([]string{viper.GetString(key.Player)}, viper.GetStringSlice(key.PlayerFallbacks)...)
	for _, name := range chain {
		if player.IsAvailable(name) {
			return
		}
	}

	printMissingDependencyError(viper.GetString(key.Player))
	os.Exit(1)
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install mpv"
	case "linux":
		installCmd = "sudo apt install mpv"
	case "windows":
		installCmd = "scoop install mpv"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: No Player", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("Neither '%s' nor any of the fallback players can be started.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install mpv, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
