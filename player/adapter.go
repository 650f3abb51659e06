package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/hls"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/log"
)

const resolveTimeout = 10 * time.Second

// ErrNoPlayer is reported when no backend of the chain could start the stream.
var ErrNoPlayer = errors.New("no player could start the stream")

// Result describes the outcome of an adapter operation.
// Failures are carried here instead of being returned as errors.
type Result struct {
	OK      bool
	Backend string
	Err     error
}

func (r Result) String() string {
	if r.OK {
		return fmt.Sprintf("ok (%s)", r.Backend)
	}
	return fmt.Sprintf("failed (%s): %v", r.Backend, r.Err)
}

// Resolver rewrites a stream URL before it is handed to a backend.
type Resolver interface {
	Resolve(ctx context.Context, url string) (string, error)
}

// Adapter drives one backend at a time, picked from an ordered chain of candidates.
type Adapter struct {
	mu sync.Mutex

	candidates []string
	available  func(name string) bool
	create     func(name string) (Player, error)
	resolver   Resolver

	active  Player
	backend string
	volume  mo.Option[float64]
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithBackends sets the candidate chain, most preferred first.
func WithBackends(names ...string) Option {
	return func(a *Adapter) {
		a.candidates = lo.Uniq(names)
	}
}

// WithFactory replaces the backend registry.
func WithFactory(available func(name string) bool, create func(name string) (Player, error)) Option {
	return func(a *Adapter) {
		a.available = available
		a.create = create
	}
}

// WithResolver makes the adapter rewrite stream URLs before playback. Nil disables it.
func WithResolver(r Resolver) Option {
	return func(a *Adapter) {
		a.resolver = r
	}
}

// NewAdapter returns an adapter configured from the player.* settings, then opts.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{
		candidates: lo.Uniq(append(
			[]string{viper.GetString(key.Player)},
			viper.GetStringSlice(key.PlayerFallbacks)...,
		)),
		available: IsAvailable,
		create:    New,
	}

	if viper.GetBool(key.PlayerResolveHLS) {
		a.resolver = hls.New(nil)
	}

	for _, opt := range opts {
		opt(a)
	}

	a.candidates = lo.Compact(a.candidates)
	return a
}

// Play starts url on the active backend, or on the first backend of the chain that accepts it.
// The URL is resolved before the lock is taken.
func (a *Adapter) Play(url, title string) Result {
	target := a.resolve(url)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active != nil {
		if a.active.IsRunning() {
			err := a.active.Play(target, title)
			if err == nil {
				return a.report("play", Result{OK: true, Backend: a.backend})
			}
			log.WithField("backend", a.backend).Warnf("running player rejected the stream: %s", err)
		}
		a.teardown()
	}

	var errs []error
	for _, name := range a.candidates {
		if !a.available(name) {
			errs = append(errs, fmt.Errorf("%s: not available", name))
			continue
		}

		p, err := a.create(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		if level, ok := a.volume.Get(); ok {
			_ = p.SetVolume(level)
		}

		if err := p.Play(target, title); err != nil {
			_ = p.Close()
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		a.active, a.backend = p, name
		return a.report("play", Result{OK: true, Backend: name})
	}

	return a.report("play", Result{Err: errors.Join(append([]error{ErrNoPlayer}, errs...)...)})
}

// Stop ends the current stream.
func (a *Adapter) Stop() Result {
	return a.apply("stop", func(p Player) error { return p.Stop() })
}

// TogglePause pauses or resumes the current stream.
func (a *Adapter) TogglePause() Result {
	return a.apply("pause", func(p Player) error { return p.TogglePause() })
}

// SetVolume applies level to the active backend and to every backend started later.
func (a *Adapter) SetVolume(level float64) Result {
	a.mu.Lock()
	a.volume = mo.Some(level)
	a.mu.Unlock()

	return a.apply("volume", func(p Player) error { return p.SetVolume(level) })
}

// Backend returns the name of the active backend, if any.
func (a *Adapter) Backend() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.backend
}

// Wait returns a channel closed when the active session ends.
func (a *Adapter) Wait() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return a.active.Wait()
}

// Close tears down the active backend.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.teardown()
	return nil
}

func (a *Adapter) apply(op string, f func(Player) error) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == nil {
		return Result{OK: true}
	}

	if err := f(a.active); err != nil {
		return a.report(op, Result{Backend: a.backend, Err: err})
	}
	return Result{OK: true, Backend: a.backend}
}

func (a *Adapter) resolve(url string) string {
	if a.resolver == nil {
		return url
	}

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	resolved, err := a.resolver.Resolve(ctx, url)
	if err != nil {
		log.WithField("url", url).Warnf("hls resolution failed, playing as is: %s", err)
		return url
	}
	return resolved
}

func (a *Adapter) teardown() {
	if a.active == nil {
		return
	}
	if err := a.active.Close(); err != nil {
		log.WithField("backend", a.backend).Warnf("close player: %s", err)
	}
	a.active, a.backend = nil, ""
}

func (a *Adapter) report(op string, r Result) Result {
	entry := log.WithFields(logrus.Fields{"op": op, "backend": r.Backend})
	if r.OK {
		entry.Debug("player ok")
	} else {
		entry.Errorf("player failed: %s", r.Err)
	}
	return r
}
