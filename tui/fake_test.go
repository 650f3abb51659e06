package tui

import (
	"context"
	"errors"

	"github.com/samber/mo"
	"github.com/tvplay/tvplay/fetch"
	"github.com/tvplay/tvplay/playback"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/playlist"
	"github.com/tvplay/tvplay/store"
)

const samplePlaylist = `#EXTM3U
#EXTINF:-1 group-title="News",BBC
http://a
#EXTINF:-1 group-title="Sports",ESPN
http://b
#EXTINF:-1 group-title="News",CNN
http://c
`

type fakeOutput struct {
	plays []string
	fail  bool
}

func (f *fakeOutput) result() player.Result {
	if f.fail {
		return player.Result{Err: player.ErrNoPlayer}
	}
	return player.Result{OK: true, Backend: "fake"}
}

func (f *fakeOutput) Play(url, _ string) player.Result {
	f.plays = append(f.plays, url)
	return f.result()
}

func (f *fakeOutput) Stop() player.Result             { return f.result() }
func (f *fakeOutput) TogglePause() player.Result      { return f.result() }
func (f *fakeOutput) SetVolume(float64) player.Result { return f.result() }

type fakeStore struct{}

func (fakeStore) SaveLastPlayed(store.LastPlayed) error       { return nil }
func (fakeStore) LoadLastPlayed() mo.Option[store.LastPlayed] { return mo.None[store.LastPlayed]() }
func (fakeStore) SaveVolume(float64) error                    { return nil }
func (fakeStore) LoadVolume() mo.Option[float64]              { return mo.None[float64]() }

type fakeSource struct {
	text string
	err  error
}

func (f *fakeSource) Fetch(context.Context, string) (*playlist.Playlist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return playlist.Parse(f.text), nil
}

var errUnreachable = errors.New("unreachable")

func newTestBubble(source *fakeSource) (*statefulBubble, *fakeOutput) {
	output := &fakeOutput{}
	controller := playback.NewController(output, fakeStore{}, nil)
	controller.Init()

	loader := fetch.NewLoader(source, "test.m3u", controller.Load)
	bubble := newBubble(&Options{Controller: controller, Loader: loader})
	bubble.setState(loadingState)
	bubble.resize(80, 40)
	return bubble, output
}
