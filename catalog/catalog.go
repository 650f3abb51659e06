// Package catalog holds the loaded channel list and the groups derived from it.
package catalog

import (
	"sync"

	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/playlist"
)

// Entry is a channel together with its position in the unfiltered catalog.
type Entry struct {
	Index   int
	Channel *playlist.Channel
}

type snapshot struct {
	channels []*playlist.Channel
	groups   []string
}

// Catalog is safe for concurrent use. Load swaps the whole snapshot at once.
type Catalog struct {
	mu   sync.RWMutex
	snap *snapshot
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{snap: &snapshot{}}
}

// Load replaces the channels and groups with the contents of p.
func (c *Catalog) Load(p *playlist.Playlist) {
	next := &snapshot{}
	if p != nil {
		next.channels = append([]*playlist.Channel(nil), p.Channels...)
		next.groups = append([]string(nil), p.Groups...)
	}

	c.mu.Lock()
	c.snap = next
	c.mu.Unlock()
}

func (c *Catalog) current() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Len returns the number of channels.
func (c *Catalog) Len() int {
	return len(c.current().channels)
}

// At returns the channel at index i.
func (c *Catalog) At(i int) (*playlist.Channel, bool) {
	channels := c.current().channels
	if i < 0 || i >= len(channels) {
		return nil, false
	}
	return channels[i], true
}

// Channels returns a copy of the channel list.
func (c *Catalog) Channels() []*playlist.Channel {
	return append([]*playlist.Channel(nil), c.current().channels...)
}

// Groups returns the group labels prefixed with the "All" pseudo group.
func (c *Catalog) Groups() []string {
	groups := c.current().groups
	return append([]string{constant.AllGroups}, groups...)
}

// Filtered returns the channels of group in catalog order.
// The "All" pseudo group returns every channel.
func (c *Catalog) Filtered(group string) []Entry {
	channels := c.current().channels

	entries := make([]Entry, 0, len(channels))
	for i, channel := range channels {
		if group == constant.AllGroups || channel.Group == group {
			entries = append(entries, Entry{Index: i, Channel: channel})
		}
	}
	return entries
}
