// Package playback owns the currently playing channel and the volume level.
// Every user action is a Command applied by a Controller.
package playback

import (
	"github.com/samber/mo"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/store"
)

// Output plays streams. *player.Adapter implements it.
type Output interface {
	Play(url, title string) player.Result
	Stop() player.Result
	TogglePause() player.Result
	SetVolume(level float64) player.Result
}

// Store persists playback state. *store.Store implements it.
type Store interface {
	SaveLastPlayed(record store.LastPlayed) error
	LoadLastPlayed() mo.Option[store.LastPlayed]
	SaveVolume(level float64) error
	LoadVolume() mo.Option[float64]
}

// Display is told what is on screen. Empty title and group mean nothing is playing.
type Display func(title, group string)

var (
	_ Output = (*player.Adapter)(nil)
	_ Store  = (*store.Store)(nil)
)
