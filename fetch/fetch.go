// Package fetch loads playlists from http(s) URLs or local files.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/imroc/req/v3"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/filesystem"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/network"
	"github.com/tvplay/tvplay/playlist"
)

// ErrNoSource is returned when no playlist location was configured.
var ErrNoSource = errors.New("no playlist given, pass one as an argument or set " + key.PlaylistURL)

// Source fetches a playlist from a location.
type Source interface {
	Fetch(ctx context.Context, location string) (*playlist.Playlist, error)
}

// Fetcher reads remote playlists with a req client and local ones through the filesystem API.
type Fetcher struct {
	client *req.Client
	locale string
}

// New returns a fetcher that uses client, or the shared client when nil.
func New(client *req.Client) *Fetcher {
	if client == nil {
		client = network.Client()
	}

	return &Fetcher{
		client: client,
		locale: viper.GetString(key.PlaylistLocale),
	}
}

// IsRemote reports whether location is fetched over http(s).
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch downloads or reads location and parses it.
func (f *Fetcher) Fetch(ctx context.Context, location string) (*playlist.Playlist, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrNoSource
	}

	log.WithField("location", location).Info("fetching playlist")

	var (
		p   *playlist.Playlist
		err error
	)
	if IsRemote(location) {
		p, err = f.remote(ctx, location)
	} else {
		p, err = f.local(location)
	}

	if err != nil {
		log.WithField("location", location).Errorf("fetch failed: %s", err)
		return nil, err
	}

	log.WithField("location", location).Infof("loaded %d channels in %d groups", len(p.Channels), len(p.Groups))
	return p, nil
}

func (f *Fetcher) remote(ctx context.Context, location string) (*playlist.Playlist, error) {
	resp, err := f.client.R().SetContext(ctx).Get(location)
	if err != nil {
		return nil, fmt.Errorf("download playlist: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download playlist: unexpected status %s", resp.Status)
	}

	p, err := playlist.Decode(bytes.NewReader(resp.Bytes()), playlist.WithLocale(f.locale))
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return p, nil
}

func (f *Fetcher) local(location string) (*playlist.Playlist, error) {
	file, err := filesystem.API().Open(location)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer file.Close()

	p, err := playlist.Decode(file, playlist.WithLocale(f.locale))
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return p, nil
}
