// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, or Unicode squares
// depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a registered symbol.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Playing
	Paused
	Stopped
	Volume
	Group
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "~",
		squares: "🟦",
	},
	Playing: {
		emoji:   "📺",
		nerd:    "",
		plain:   ">",
		squares: "▶",
	},
	Paused: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		squares: "⏸",
	},
	Stopped: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		squares: "⏹",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		squares: "🔈",
	},
	Group: {
		emoji:   "🗂️",
		nerd:    "",
		plain:   "#",
		squares: "🟨",
	},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
