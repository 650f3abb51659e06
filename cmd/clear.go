package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/util"
	"github.com/tvplay/tvplay/where"
)

// clearTarget defines a persisted file or directory that can be removed.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"last played channel", "last-played", mo.Some("p"), where.LastPlayed},
	{"volume", "volume", mo.Some("v"), where.Volume},
	{"logs", "logs", mo.Some("l"), where.Logs},
	{"cache directory", "cache", mo.Some("c"), where.Cache},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
	clearCmd.Flags().BoolP("all", "a", false, "clear everything above")
}

// clearCmd removes persisted playback state, logs and caches.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear persisted playback state, logs and caches",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			anyCleared bool
			all        = lo.Must(cmd.Flags().GetBool("all"))
		)

		doClear := func(what string) bool {
			return all || lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			e()
			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

