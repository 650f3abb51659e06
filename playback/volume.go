package playback

import (
	"math"

	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/util"
)

const (
	// DefaultVolume is used until a level has been persisted.
	DefaultVolume = 1.0

	// VolumeStep is the change applied by one volume key press.
	VolumeStep = 0.1
)

// Volume is the process wide volume level in [0, 1].
type Volume struct {
	output Output
	store  Store
	level  float64
}

// NewVolume returns a volume at DefaultVolume. Call Init to load the persisted level.
func NewVolume(output Output, st Store) *Volume {
	return &Volume{output: output, store: st, level: DefaultVolume}
}

// Init loads the persisted level and applies it to the output.
func (v *Volume) Init() float64 {
	v.level = clampVolume(v.store.LoadVolume().OrElse(DefaultVolume))
	v.output.SetVolume(v.level)
	return v.level
}

// Level returns the current level.
func (v *Volume) Level() float64 {
	return v.level
}

// Set clamps level into [0, 1], applies and persists it, and returns the stored value.
func (v *Volume) Set(level float64) float64 {
	v.level = clampVolume(level)

	if result := v.output.SetVolume(v.level); !result.OK {
		log.Debugf("volume not applied: %s", result)
	}

	if err := v.store.SaveVolume(v.level); err != nil {
		log.Warnf("persist volume: %s", err)
	}

	return v.level
}

// Nudge changes the level by delta, rounded to hundredths so repeated steps land on round values.
func (v *Volume) Nudge(delta float64) float64 {
	return v.Set(math.Round((v.level+delta)*100) / 100)
}

// clampVolume bounds level into [0, 1].
func clampVolume(level float64) float64 {
	if math.IsNaN(level) {
		return DefaultVolume
	}
	return util.Clamp(level, 0, 1)
}
