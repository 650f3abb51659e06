package player

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/samber/lo"
	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/open"
)

// Backend names accepted by the player.default and player.fallbacks settings.
const (
	MPVName    = "mpv"
	IINAName   = "iina"
	SystemName = "system"
)

type backend struct {
	available func() bool
	create    func() Player
}

var backends = map[string]backend{
	MPVName: {
		available: func() bool {
			_, err := exec.LookPath("mpv")
			return err == nil
		},
		create: func() Player { return NewMPV() },
	},
	IINAName: {
		available: func() bool {
			if runtime.GOOS != constant.Darwin {
				return false
			}
			_, err := os.Stat("/Applications/IINA.app")
			return err == nil
		},
		create: func() Player { return NewIINA() },
	},
	SystemName: {
		available: open.Supported,
		create:    func() Player { return NewSystem() },
	},
}

// Available returns the names of all known backends.
func Available() []string {
	return []string{MPVName, IINAName, SystemName}
}

// IsAvailable reports whether the named backend can run on this machine.
func IsAvailable(name string) bool {
	b, ok := backends[name]
	return ok && b.available()
}

// New creates the named backend.
func New(name string) (Player, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown player %q, available: %v", name, lo.Keys(backends))
	}
	return b.create(), nil
}
