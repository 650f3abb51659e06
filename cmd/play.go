package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tvplay/tvplay/color"
	"github.com/tvplay/tvplay/fetch"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/network"
	"github.com/tvplay/tvplay/playback"
	"github.com/tvplay/tvplay/playlist"
	"github.com/tvplay/tvplay/style"
	"github.com/tvplay/tvplay/util"
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Float64P("volume", "V", -1, "Set the volume (0 to 1) before playing")
}

// playCmd plays one channel without the interface and waits for the player to exit.
var playCmd = &cobra.Command{
	Use:   "play [index]",
	Short: "Play a channel by index, or the last played one",
	Long: `Play a channel by its index in the channels listing.
Without an index the last played channel is restored.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		location, err := playlistLocation(nil)
		handleErr(err)
		checkPlayers()

		app := newApp(location, func(title, group string) {
			if title != "" {
				fmt.Printf("%s %s %s\n", icon.Get(icon.Playing), style.Bold(title), style.Fg(color.Purple)(group))
			}
		})

		if volume, _ := cmd.Flags().GetFloat64("volume"); volume >= 0 {
			app.controller.Dispatch(playback.SetVolume{V: volume})
		}

		// an explicit index skips restoring the last played channel
		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), location))
		if len(args) > 0 {
			var p *playlist.Playlist
			if p, err = fetch.New(network.Client()).Fetch(cmd.Context(), location); err == nil {
				app.controller.Catalog().Load(p)
			}
		} else {
			_, err = app.loader.Load(cmd.Context())
		}
		erase()
		if err != nil {
			util.Ignore(app.Close)
			handleErr(err)
		}

		if len(args) > 0 {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				util.Ignore(app.Close)
				handleErr(fmt.Errorf("invalid index %q", args[0]))
			}

			if result := app.controller.Dispatch(playback.SelectIndex{I: index}); !result.OK {
				util.Ignore(app.Close)
				handleErr(result.Err)
			}
		}

		if !app.controller.State().Current.IsPresent() {
			util.Ignore(app.Close)
			handleErr(fmt.Errorf("nothing to play, pass a channel index"))
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)

		select {
		case <-app.adapter.Wait():
		case <-interrupt:
		}

		handleErr(app.Close())
	},
}
