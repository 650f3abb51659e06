package playback

import (
	"sync"

	"github.com/samber/mo"
	"github.com/tvplay/tvplay/catalog"
	"github.com/tvplay/tvplay/player"
	"github.com/tvplay/tvplay/playlist"
)

// State is a snapshot of the controller for rendering.
type State struct {
	Current mo.Option[int]
	Channel *playlist.Channel
	Volume  float64
	Paused  bool
	Stopped bool
}

// Controller owns the catalog, the selector and the volume, and applies commands one at a time.
type Controller struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	selector *Selector
	volume   *Volume
	restored bool
}

// NewController wires a controller around an empty catalog.
func NewController(output Output, st Store, display Display) *Controller {
	c := catalog.New()
	return &Controller{
		catalog:  c,
		selector: NewSelector(c, output, st, display),
		volume:   NewVolume(output, st),
	}
}

// Catalog returns the catalog owned by the controller.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Init loads the persisted volume.
func (c *Controller) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.volume.Init()
}

// Load replaces the catalog. The first load also restores the last played channel.
func (c *Controller) Load(p *playlist.Playlist) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.catalog.Load(p)
	if !c.restored {
		c.restored = true
		c.selector.Restore()
	}
}

// Dispatch applies cmd to the owned state.
func (c *Controller) Dispatch(cmd Command) player.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cmd.apply(c)
}

// State returns a snapshot of the playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := State{
		Current: c.selector.Current(),
		Volume:  c.volume.Level(),
		Paused:  c.selector.Paused(),
		Stopped: c.selector.Stopped(),
	}

	if i, ok := state.Current.Get(); ok {
		state.Channel, _ = c.catalog.At(i)
	}

	return state
}
