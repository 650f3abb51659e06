package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tvplay/tvplay/catalog"
	"github.com/tvplay/tvplay/color"
	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/fetch"
	"github.com/tvplay/tvplay/icon"
	"github.com/tvplay/tvplay/network"
	"github.com/tvplay/tvplay/playlist"
	"github.com/tvplay/tvplay/style"
	"github.com/tvplay/tvplay/util"
)

// errUnknownGroup suggests the group closest to the one asked for.
func errUnknownGroup(group string, groups []string) error {
	ranks := fuzzy.RankFindFold(group, groups)
	if len(ranks) == 0 {
		return fmt.Errorf("unknown group %s", style.Fg(color.Red)(group))
	}

	sort.Sort(ranks)
	return fmt.Errorf(
		"unknown group %s, did you mean %s?",
		style.Fg(color.Red)(group),
		style.Fg(color.Yellow)(ranks[0].Target),
	)
}

func init() {
	rootCmd.AddCommand(channelsCmd)

	channelsCmd.Flags().StringP("group", "g", constant.AllGroups, "List only the channels of this group")
	channelsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	channelsCmd.Flags().BoolP("m3u", "m", false, "Format the output as an extended M3U playlist")
	channelsCmd.MarkFlagsMutuallyExclusive("json", "m3u")

	channelsCmd.SetOut(os.Stdout)
}

// channelsCmd prints the catalog without starting the interface.
var channelsCmd = &cobra.Command{
	Use:   "channels [playlist]",
	Short: "List the channels of a playlist",
	Long: `List the channels of a playlist in catalog order.
The index in the first column is the one accepted by the play command.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			group  = lo.Must(cmd.Flags().GetString("group"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			asM3U  = lo.Must(cmd.Flags().GetBool("m3u"))
		)

		location, err := playlistLocation(args)
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), location))
		p, err := fetch.New(network.Client()).Fetch(cmd.Context(), location)
		erase()
		handleErr(err)

		c := catalog.New()
		c.Load(p)

		if !lo.Contains(c.Groups(), group) {
			handleErr(errUnknownGroup(group, c.Groups()))
		}

		entries := c.Filtered(group)
		channels := lo.Map(entries, func(entry catalog.Entry, _ int) *playlist.Channel {
			return entry.Channel
		})

		switch {
		case asJson:
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(channels))
		case asM3U:
			handleErr(playlist.Encode(cmd.OutOrStdout(), channels))
		default:
			width := len(fmt.Sprint(c.Len()))
			for _, entry := range entries {
				cmd.Printf(
					"%s %s %s\n",
					style.Faint(fmt.Sprintf("%*d", width, entry.Index)),
					entry.Channel.Title,
					style.Fg(color.Purple)(entry.Channel.Group),
				)
			}
		}
	},
}

func init() {
	channelsCmd.AddCommand(channelsSchemaCmd)
}

// channelsSchemaCmd prints the JSON schema of the channels --json output.
var channelsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the channels --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.DoNotReference = true

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect([]*playlist.Channel{})))
	},
}
