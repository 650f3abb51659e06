package player

import (
	"context"
	"errors"
	"fmt"
)

type fakePlayer struct {
	name    string
	running bool
	failOn  string
	plays   []string
	volumes []float64
	stops   int
	pauses  int
	closed  int
}

func (f *fakePlayer) Play(url, _ string) error {
	if f.failOn == "play" {
		return fmt.Errorf("%s refuses to play", f.name)
	}
	f.plays = append(f.plays, url)
	f.running = true
	return nil
}

func (f *fakePlayer) Stop() error {
	f.stops++
	return nil
}

func (f *fakePlayer) TogglePause() error {
	if f.failOn == "pause" {
		return ErrUnsupported
	}
	f.pauses++
	return nil
}

func (f *fakePlayer) SetVolume(level float64) error {
	f.volumes = append(f.volumes, level)
	return nil
}

func (f *fakePlayer) IsRunning() bool { return f.running }

func (f *fakePlayer) Close() error {
	f.closed++
	f.running = false
	return nil
}

func (f *fakePlayer) Wait() <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

type fakeRegistry struct {
	available map[string]bool
	failOn    map[string]string
	created   []*fakePlayer
}

func (r *fakeRegistry) isAvailable(name string) bool {
	return r.available[name]
}

func (r *fakeRegistry) create(name string) (Player, error) {
	p := &fakePlayer{name: name, failOn: r.failOn[name]}
	r.created = append(r.created, p)
	return p, nil
}

func (r *fakeRegistry) option() Option {
	return WithFactory(r.isAvailable, r.create)
}

type fakeResolver struct {
	rewrite map[string]string

	// block holds every resolution until closed
	block chan struct{}
}

func (r fakeResolver) Resolve(_ context.Context, url string) (string, error) {
	if r.block != nil {
		<-r.block
	}
	if resolved, ok := r.rewrite[url]; ok {
		return resolved, nil
	}
	return "", errors.New("not a manifest")
}
