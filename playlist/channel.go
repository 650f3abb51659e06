// Package playlist parses extended M3U playlists into an ordered list of channels.
package playlist

import "fmt"

// Channel is a single playable entry of a playlist.
type Channel struct {
	Title string `json:"title" jsonschema:"description=Display title taken after the first comma of the metadata line"`
	URL   string `json:"url" jsonschema:"description=Stream location,minLength=1"`
	Group string `json:"group" jsonschema:"description=Value of the group-title attribute,default=uncategorized"`
	Logo  string `json:"logo,omitempty" jsonschema:"description=Value of the tvg-logo (or legacy logo) attribute"`
	TvgID string `json:"tvg_id,omitempty" jsonschema:"description=Value of the tvg-id attribute"`
}

// String returns the channel as "Title (Group)".
func (c *Channel) String() string {
	return fmt.Sprintf("%s (%s)", c.Title, c.Group)
}

// Playlist is the result of a parse.
type Playlist struct {
	// Channels sorted by group then title.
	Channels []*Channel `json:"channels"`

	// Groups in the order they were first seen in the source text.
	Groups []string `json:"groups"`
}
