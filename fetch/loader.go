package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/playlist"
	"golang.org/x/sync/singleflight"
)

// Loader reloads one playlist location. Overlapping Load calls share a single fetch.
type Loader struct {
	source   Source
	location string
	onLoad   func(*playlist.Playlist)

	flight singleflight.Group

	mu   sync.Mutex
	cron *cron.Cron
}

// NewLoader returns a loader that hands every successfully fetched playlist to onLoad.
func NewLoader(source Source, location string, onLoad func(*playlist.Playlist)) *Loader {
	return &Loader{
		source:   source,
		location: location,
		onLoad:   onLoad,
	}
}

// Location returns the playlist location.
func (l *Loader) Location() string {
	return l.location
}

// Load fetches the playlist, or waits for the fetch already in flight.
func (l *Loader) Load(ctx context.Context) (*playlist.Playlist, error) {
	v, err, shared := l.flight.Do(l.location, func() (any, error) {
		p, err := l.source.Fetch(ctx, l.location)
		if err != nil {
			return nil, err
		}

		if l.onLoad != nil {
			l.onLoad(p)
		}
		return p, nil
	})

	if shared {
		log.Debug("joined a playlist load already in flight")
	}

	if err != nil {
		return nil, err
	}
	return v.(*playlist.Playlist), nil
}

// Schedule reloads the playlist on a cron schedule such as "@every 6h" or "0 4 * * *".
// An empty schedule disables reloading.
func (l *Loader) Schedule(schedule string) error {
	if schedule == "" {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := l.Load(context.Background()); err != nil {
			log.Warnf("scheduled playlist reload failed: %s", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cron != nil {
		l.cron.Stop()
	}
	l.cron = c
	c.Start()

	log.WithField("schedule", schedule).Info("playlist reload scheduled")
	return nil
}

// Close stops scheduled reloads and waits for a running one to finish.
func (l *Loader) Close() {
	l.mu.Lock()
	c := l.cron
	l.cron = nil
	l.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}
