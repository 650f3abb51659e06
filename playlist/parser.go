package playlist

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/tvplay/tvplay/constant"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	headerMarker = "#EXTM3U"
	entryMarker  = "#EXTINF"
)

// maxLineSize bounds a single playlist line. Some providers inline base64 logos.
const maxLineSize = 1 << 20

var (
	groupAttr  = attribute("group-title")
	logoAttr   = attribute("tvg-logo")
	legacyLogo = attribute("logo")
	tvgIDAttr  = attribute("tvg-id")
)

func attribute(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `="([^"]+)"`)
}

func lookup(line string, patterns ...*regexp.Regexp) (string, bool) {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(line); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// Option changes how a playlist is parsed.
type Option func(*options)

type options struct {
	locale string
}

// WithLocale orders titles and groups using the collation rules of the given BCP 47 tag.
// An empty tag keeps byte order.
func WithLocale(tag string) Option {
	return func(o *options) {
		o.locale = tag
	}
}

type scanner struct {
	pending  *Channel
	channels []*Channel
	groups   *orderedmap.OrderedMap[string, struct{}]
}

func newScanner() *scanner {
	return &scanner{
		groups: orderedmap.New[string, struct{}](),
	}
}

func (s *scanner) feed(line string) {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
	case strings.HasPrefix(line, entryMarker):
		s.pending = parseEntry(line)
	case strings.HasPrefix(line, "#"):
	default:
		if s.pending == nil {
			return
		}

		s.pending.URL = line
		s.channels = append(s.channels, s.pending)
		s.groups.Set(s.pending.Group, struct{}{})
		s.pending = nil
	}
}

func (s *scanner) result(opts []Option) *Playlist {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	groups := make([]string, 0, s.groups.Len())
	for pair := s.groups.Oldest(); pair != nil; pair = pair.Next() {
		groups = append(groups, pair.Key)
	}

	channels := s.channels
	if channels == nil {
		channels = []*Channel{}
	}
	Sort(channels, o.locale)

	return &Playlist{
		Channels: channels,
		Groups:   groups,
	}
}

func parseEntry(line string) *Channel {
	channel := &Channel{
		Title: constant.Untitled,
		Group: constant.Uncategorized,
	}

	if _, title, found := strings.Cut(line, ","); found {
		if title = strings.TrimSpace(title); title != "" {
			channel.Title = title
		}
	}

	if group, ok := lookup(line, groupAttr); ok {
		channel.Group = group
	}

	channel.Logo, _ = lookup(line, logoAttr, legacyLogo)
	channel.TvgID, _ = lookup(line, tvgIDAttr)

	return channel
}

// Parse converts extended M3U text into a sorted playlist.
// Malformed metadata falls back to defaults and never fails the parse.
func Parse(text string, opts ...Option) *Playlist {
	s := newScanner()
	for _, line := range strings.Split(text, "\n") {
		s.feed(line)
	}
	return s.result(opts)
}

// Decode is the streaming form of Parse. It fails only when the reader does.
func Decode(r io.Reader, opts ...Option) (*Playlist, error) {
	s := newScanner()

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for lines.Scan() {
		s.feed(lines.Text())
	}

	if err := lines.Err(); err != nil {
		return nil, err
	}

	return s.result(opts), nil
}
