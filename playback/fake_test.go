package playback

import (
	"github.com/samber/mo"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/store"
)

type fakeOutput struct {
	plays   []string
	stops   int
	pauses  int
	volumes []float64
	fail    bool
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

func (f *fakeOutput) Stop() player.Result {
	f.stops++
	return f.result()
}

func (f *fakeOutput) TogglePause() player.Result {
	f.pauses++
	return f.result()
}

func (f *fakeOutput) SetVolume(level float64) player.Result {
	f.volumes = append(f.volumes, level)
	return f.result()
}

type fakeStore struct {
	last    mo.Option[store.LastPlayed]
	volume  mo.Option[float64]
	records []store.LastPlayed
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		last:   mo.None[store.LastPlayed](),
		volume: mo.None[float64](),
	}
}

func (f *fakeStore) SaveLastPlayed(record store.LastPlayed) error {
	f.records = append(f.records, record)
	f.last = mo.Some(record)
	return nil
}

func (f *fakeStore) LoadLastPlayed() mo.Option[store.LastPlayed] { return f.last }

func (f *fakeStore) SaveVolume(level float64) error {
	f.volume = mo.Some(level)
	return nil
}

func (f *fakeStore) LoadVolume() mo.Option[float64] { return f.volume }

type display struct {
	calls [][2]string
}

func (d *display) show(title, group string) {
	d.calls = append(d.calls, [2]string{title, group})
}
