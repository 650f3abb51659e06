// Package player drives external media players.
// The primary backend is mpv, controlled through its JSON-IPC interface.
package player

import "errors"

// ErrUnsupported is returned by backends that cannot perform an operation.
var ErrUnsupported = errors.New("operation not supported by this player")

// Player encapsulates the capabilities needed to play a live stream.
type Player interface {
	// Play starts playback of url. A running instance switches to the new
	// stream, tearing down the previous one.
	Play(url, title string) error

	// Stop ends the current stream but keeps the player alive when possible.
	Stop() error

	// TogglePause inverts the current playback suspension state.
	TogglePause() error

	// SetVolume applies a level in [0, 1].
	SetVolume(level float64) error

	// IsRunning validates the liveness of the underlying playback process.
	IsRunning() bool

	// Close terminates the player and releases its resources.
	Close() error

	// Wait returns a channel that is closed when the playback session terminates.
	Wait() <-chan struct{}
}
