// Package hls picks a single variant out of an HLS master playlist.
package hls

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"

	"github.com/grafov/m3u8"
	"github.com/imroc/req/v3"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/network"
)

// maxManifestSize guards against endpoints that answer with the stream itself.
const maxManifestSize = 10 * 1024 * 1024

var (
	// ErrUnknownPlaylist is returned when the manifest is neither a master nor a media playlist.
	ErrUnknownPlaylist = errors.New("unknown type of playlist")

	// ErrNotManifest is returned when the server answers with media instead of a playlist.
	ErrNotManifest = errors.New("not an HLS manifest")
)

// Resolver fetches manifests with its own client.
type Resolver struct {
	client *req.Client
}

// New returns a resolver that uses client, or the shared client when nil.
// Response bodies are read by the resolver itself, so live streams are never buffered.
func New(client *req.Client) *Resolver {
	if client == nil {
		client = network.Client()
	}
	return &Resolver{client: client.Clone().DisableAutoReadResponse()}
}

// Resolve returns the URL that should be handed to the player.
// Media playlists resolve to themselves. Master playlists resolve to their
// highest-bandwidth variant, unless they carry alternative audio renditions,
// in which case the master itself is kept.
func (r *Resolver) Resolve(ctx context.Context, link string) (string, error) {
	resp, err := r.client.R().SetContext(ctx).Get(link)
	if err != nil {
		return "", fmt.Errorf("fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch manifest: unexpected status %s", resp.Status)
	}

	if contentType := resp.Header.Get("Content-Type"); isMedia(contentType) {
		return "", fmt.Errorf("%w: %s", ErrNotManifest, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize+1))
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}
	if len(body) > maxManifestSize {
		return "", fmt.Errorf("%w: larger than %d bytes", ErrNotManifest, maxManifestSize)
	}

	return Pick(link, body)
}

// isMedia reports whether contentType names audio or video rather than a playlist.
// audio/mpegurl and audio/x-mpegurl are playlists.
func isMedia(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	if strings.Contains(mediaType, "mpegurl") {
		return false
	}
	return strings.HasPrefix(mediaType, "video/") || strings.HasPrefix(mediaType, "audio/")
}

// Pick applies the variant choice to an already downloaded manifest.
func Pick(link string, manifest []byte) (string, error) {
	playlist, listType, err := m3u8.DecodeFrom(bytes.NewReader(manifest), true)
	if playlist == nil {
		if err == nil {
			err = ErrUnknownPlaylist
		}
		return "", fmt.Errorf("decode manifest: %w", err)
	}

	switch listType {
	case m3u8.MEDIA:
		return link, nil
	case m3u8.MASTER:
		master := playlist.(*m3u8.MasterPlaylist)

		var (
			best      *m3u8.Variant
			bandwidth uint32
		)
		for _, variant := range master.Variants {
			if variant == nil {
				continue
			}

			if variant.Audio != "" {
				log.Debugf("keeping master %s: variants reference separate audio", link)
				return link, nil
			}

			if best == nil || variant.Bandwidth >= bandwidth {
				best = variant
				bandwidth = variant.Bandwidth
			}
		}

		if best == nil {
			return link, nil
		}

		return absolute(link, best.URI)
	default:
		return "", ErrUnknownPlaylist
	}
}

func absolute(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse manifest url: %w", err)
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse variant url: %w", err)
	}

	return baseURL.ResolveReference(refURL).String(), nil
}
