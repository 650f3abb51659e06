package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/fetch"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/network"
	"github.com/tvplay/tvplay/playback"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/playlist"
	"github.com/tvplay/tvplay/store"
)

var errNoPlaylist = fmt.Errorf("no playlist given, pass one as an argument or run `%s config init`", constant.App)

// app holds everything a playing session needs.
type app struct {
	adapter    *player.Adapter
	controller *playback.Controller
	loader     *fetch.Loader
	reloaded   chan struct{}
}

func newApp(location string, display playback.Display) *app {
	if display == nil {
		display = func(title, group string) {
			if title == "" {
				log.Info("playback stopped")
				return
			}
			log.WithField("group", group).Infof("now playing %s", title)
		}
	}

	adapter := player.NewAdapter()
	controller := playback.NewController(adapter, store.Default(), display)
	controller.Init()

	// buffered so a reload never blocks on a busy UI
	reloaded := make(chan struct{}, 1)
	loader := fetch.NewLoader(fetch.New(network.Client()), location, func(p *playlist.Playlist) {
		controller.Load(p)
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	return &app{
		adapter:    adapter,
		controller: controller,
		loader:     loader,
		reloaded:   reloaded,
	}
}

func (a *app) Close() error {
	a.loader.Close()
	return a.adapter.Close()
}

// playlistLocation picks the playlist from the arguments, falling back to the configured one.
func playlistLocation(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	if location := viper.GetString(key.PlaylistURL); location != "" {
		return location, nil
	}

	return "", errNoPlaylist
}

