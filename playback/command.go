package playback

import "github.com/tvplay/tvplay/player"

// Command is a single user action.
type Command interface {
	apply(c *Controller) player.Result
}

type (
	// SelectIndex plays the channel at catalog index I.
	SelectIndex struct{ I int }

	// Step moves the selection by Delta channels.
	Step struct{ Delta int }

	// SetVolume sets the volume to V.
	SetVolume struct{ V float64 }

	// NudgeVolume changes the volume by Delta.
	NudgeVolume struct{ Delta float64 }

	// TogglePause pauses or resumes playback.
	TogglePause struct{}

	// Stop ends playback.
	Stop struct{}
)

func (cmd SelectIndex) apply(c *Controller) player.Result { return c.selector.SelectIndex(cmd.I) }
func (cmd Step) apply(c *Controller) player.Result        { return c.selector.Step(cmd.Delta) }
func (TogglePause) apply(c *Controller) player.Result     { return c.selector.TogglePause() }
func (Stop) apply(c *Controller) player.Result            { return c.selector.Stop() }

func (cmd SetVolume) apply(c *Controller) player.Result {
	c.volume.Set(cmd.V)
	return player.Result{OK: true}
}

func (cmd NudgeVolume) apply(c *Controller) player.Result {
	c.volume.Nudge(cmd.Delta)
	return player.Result{OK: true}
}
