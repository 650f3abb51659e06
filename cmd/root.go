// Package cmd implements the command-line interface for tvplay.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/color"
	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/style"
	"github.com/tvplay/tvplay/tui"
	"github.com/tvplay/tvplay/util"
	"github.com/tvplay/tvplay/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("player", "p", "", "Preferred media player")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Available(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))

	rootCmd.PersistentFlags().StringP("playlist", "P", "", "Playlist URL or file path")
	lo.Must0(viper.BindPFlag(key.PlaylistURL, rootCmd.PersistentFlags().Lookup("playlist")))

	// sockets left behind by players that were killed
	go player.RemoveStaleSockets(where.Temp())
}

// rootCmd defines the entry point for the tvplay application.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [playlist]",
	Short: "A minimal IPTV player for the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimal IPTV player for the terminal"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		location, err := playlistLocation(args)
		handleErr(err)
		checkPlayers()

		app := newApp(location, nil)
		if err := app.loader.Schedule(viper.GetString(key.PlaylistRefresh)); err != nil {
			util.Ignore(app.Close)
			handleErr(err)
		}

		err = tui.Run(&tui.Options{
			Controller: app.controller,
			Loader:     app.loader,
			Reloaded:   app.reloaded,
		})
		util.Ignore(app.Close)
		handleErr(err)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
