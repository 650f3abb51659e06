package player

import (
	"fmt"

	"github.com/tvplay/tvplay/open"
)

// System hands the stream to whatever the OS opens URLs with.
// Once handed off the stream is out of reach, so only Play does anything.
type System struct {
	done chan struct{}
}

func NewSystem() *System {
	done := make(chan struct{})
	close(done)
	return &System{done: done}
}

func (s *System) Play(rawURL, _ string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if err := open.Start(target); err != nil {
		return fmt.Errorf("open with system handler: %w", err)
	}
	return nil
}

func (s *System) Stop() error               { return ErrUnsupported }
func (s *System) TogglePause() error        { return ErrUnsupported }
func (s *System) SetVolume(_ float64) error { return ErrUnsupported }
func (s *System) IsRunning() bool           { return false }
func (s *System) Close() error              { return nil }
func (s *System) Wait() <-chan struct{}     { return s.done }
