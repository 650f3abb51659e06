package playback

import (
	"time"

	"github.com/samber/mo"
	"github.com/tvplay/tvplay/catalog"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/store"
	"github.com/tvplay/tvplay/util"
)

// Selector tracks which catalog index is playing.
type Selector struct {
	catalog *catalog.Catalog
	output  Output
	store   Store
	display Display
	now     func() time.Time

	current mo.Option[int]
	paused  bool
	stopped bool
}

// NewSelector returns a selector with nothing selected. A nil display is ignored.
func NewSelector(c *catalog.Catalog, output Output, st Store, display Display) *Selector {
	if display == nil {
		display = func(string, string) {}
	}

	return &Selector{
		catalog: c,
		output:  output,
		store:   st,
		display: display,
		now:     time.Now,
		current: mo.None[int](),
	}
}

// Current returns the selected index.
func (s *Selector) Current() mo.Option[int] {
	return s.current
}

// Paused reports whether the last successful toggle left playback paused.
func (s *Selector) Paused() bool {
	return s.paused
}

// Stopped reports whether playback was stopped after the last selection.
func (s *Selector) Stopped() bool {
	return s.stopped
}

// SelectIndex plays the channel at i, clamped into the catalog bounds.
// Every call plays, displays and persists again, even for the current index.
func (s *Selector) SelectIndex(i int) player.Result {
	n := s.catalog.Len()
	if n == 0 {
		return player.Result{}
	}

	i = util.Clamp(i, 0, n-1)
	channel, ok := s.catalog.At(i)
	if !ok {
		return player.Result{}
	}

	s.current = mo.Some(i)
	s.paused = false
	s.stopped = false

	result := s.output.Play(channel.URL, channel.Title)
	s.display(channel.Title, channel.Group)

	if err := s.store.SaveLastPlayed(store.LastPlayed{Index: i, Time: s.now().UnixMilli()}); err != nil {
		log.Warnf("persist last played: %s", err)
	}

	return result
}

// Step moves the selection by delta without wrapping.
// With nothing selected the step starts from index 0.
func (s *Selector) Step(delta int) player.Result {
	return s.SelectIndex(s.current.OrElse(0) + delta)
}

// Restore selects the persisted index if it is still inside the catalog.
// It reports whether anything was restored.
func (s *Selector) Restore() bool {
	record, ok := s.store.LoadLastPlayed().Get()
	if !ok {
		return false
	}

	if record.Index < 0 || record.Index >= s.catalog.Len() {
		log.Infof("last played index %d is outside the catalog, not restoring", record.Index)
		return false
	}

	s.SelectIndex(record.Index)
	return true
}

// Stop ends playback. The selection is kept so Step continues from it.
func (s *Selector) Stop() player.Result {
	result := s.output.Stop()
	if s.current.IsPresent() {
		s.stopped = true
	}
	s.paused = false
	s.display("", "")
	return result
}

// TogglePause pauses or resumes the stream.
func (s *Selector) TogglePause() player.Result {
	result := s.output.TogglePause()
	if result.OK && s.current.IsPresent() && !s.stopped {
		s.paused = !s.paused
	}
	return result
}
