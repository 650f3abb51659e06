package hls

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/imroc/req/v3"
	. "github.com/smartystreets/goconvey/convey"
)

const master = `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=800000,RESOLUTION=640x360
low/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2400000,RESOLUTION=1280x720
high/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=1200000,RESOLUTION=960x540
mid/index.m3u8
`

const masterWithAudio = `#EXTM3U
#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aud",NAME="en",URI="audio/en.m3u8"
#EXT-X-STREAM-INF:BANDWIDTH=800000,AUDIO="aud"
low/index.m3u8
`

const media = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:0
#EXTINF:10.0,
seg0.ts
`

func TestPick(t *testing.T) {
	Convey("A master playlist resolves to its highest bandwidth variant", t, func() {
		link, err := Pick("http://cdn/live/master.m3u8", []byte(master))
		So(err, ShouldBeNil)
		So(link, ShouldEqual, "http://cdn/live/high/index.m3u8")
	})

	Convey("Absolute variant URIs are kept", t, func() {
		link, err := Pick("http://cdn/master.m3u8", []byte("#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1\nhttps://other/v.m3u8\n"))
		So(err, ShouldBeNil)
		So(link, ShouldEqual, "https://other/v.m3u8")
	})

	Convey("A master with separate audio is kept as is", t, func() {
		link, err := Pick("http://cdn/master.m3u8", []byte(masterWithAudio))
		So(err, ShouldBeNil)
		So(link, ShouldEqual, "http://cdn/master.m3u8")
	})

	Convey("A media playlist resolves to itself", t, func() {
		link, err := Pick("http://cdn/media.m3u8", []byte(media))
		So(err, ShouldBeNil)
		So(link, ShouldEqual, "http://cdn/media.m3u8")
	})

	Convey("Garbage fails", t, func() {
		_, err := Pick("http://cdn/x", []byte("<html></html>"))
		So(err, ShouldNotBeNil)
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a server publishing a master playlist", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/master.m3u8":
				w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
				_, _ = w.Write([]byte(master))
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		resolver := New(req.C())

		Convey("The best variant is resolved against the server", func() {
			link, err := resolver.Resolve(context.Background(), server.URL+"/master.m3u8")
			So(err, ShouldBeNil)
			So(link, ShouldEqual, server.URL+"/high/index.m3u8")
		})

		Convey("A missing manifest fails", func() {
			_, err := resolver.Resolve(context.Background(), server.URL+"/missing.m3u8")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a server streaming endless media", t, func() {
		endless := func(contentType string) http.HandlerFunc {
			chunk := bytes.Repeat([]byte{0x47}, 188*100)
			return func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", contentType)
				for {
					if _, err := w.Write(chunk); err != nil || r.Context().Err() != nil {
						return
					}
				}
			}
		}

		mux := http.NewServeMux()
		mux.Handle("/live.ts", endless("video/mp2t"))
		mux.Handle("/live", endless("application/octet-stream"))
		server := httptest.NewServer(mux)
		defer server.Close()

		resolver := New(req.C())

		Convey("A media content type is rejected without reading the stream", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_, err := resolver.Resolve(ctx, server.URL+"/live.ts")
			So(errors.Is(err, ErrNotManifest), ShouldBeTrue)
			So(ctx.Err(), ShouldBeNil)
		})

		Convey("An untyped stream stops at the manifest size limit", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_, err := resolver.Resolve(ctx, server.URL+"/live")
			So(errors.Is(err, ErrNotManifest), ShouldBeTrue)
			So(ctx.Err(), ShouldBeNil)
		})
	})
}

func TestIsMedia(t *testing.T) {
	Convey("Playlist content types are not media", t, func() {
		So(isMedia("application/vnd.apple.mpegurl"), ShouldBeFalse)
		So(isMedia("audio/x-mpegurl; charset=utf-8"), ShouldBeFalse)
		So(isMedia("text/plain"), ShouldBeFalse)
		So(isMedia(""), ShouldBeFalse)
	})

	Convey("Audio and video content types are media", t, func() {
		So(isMedia("video/mp2t"), ShouldBeTrue)
		So(isMedia("audio/aac"), ShouldBeTrue)
	})
}
