package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/imroc/req/v3"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvplay/tvplay/filesystem"
	"github.com/tvplay/tvplay/playlist"
)

const sample = `#EXTM3U
#EXTINF:-1 group-title="News",Channel A
http://stream/a.m3u8
#EXTINF:-1,Channel B
http://stream/b.m3u8
`

func TestFetch(t *testing.T) {
	Convey("Given a server publishing a playlist", t, func() {
		var userAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.UserAgent()
			switch r.URL.Path {
			case "/list.m3u":
				_, _ = w.Write([]byte(sample))
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
		}))
		defer server.Close()

		fetcher := New(req.C().SetUserAgent("tvplay-test"))

		Convey("It is downloaded and parsed", func() {
			p, err := fetcher.Fetch(context.Background(), server.URL+"/list.m3u")
			So(err, ShouldBeNil)
			So(p.Channels, ShouldHaveLength, 2)
			So(userAgent, ShouldEqual, "tvplay-test")
		})

		Convey("A non-success status fails", func() {
			_, err := fetcher.Fetch(context.Background(), server.URL+"/broken")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a playlist on disk", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/lists/tv.m3u", []byte(sample), 0o644), ShouldBeNil)

		fetcher := New(req.C())

		Convey("It is read through the filesystem", func() {
			p, err := fetcher.Fetch(context.Background(), "/lists/tv.m3u")
			So(err, ShouldBeNil)
			So(p.Groups, ShouldResemble, []string{"News", "uncategorized"})
		})

		Convey("A missing file fails", func() {
			_, err := fetcher.Fetch(context.Background(), "/lists/missing.m3u")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("An empty location fails", t, func() {
		_, err := New(req.C()).Fetch(context.Background(), "  ")
		So(errors.Is(err, ErrNoSource), ShouldBeTrue)
	})

	Convey("Remote locations are told apart from paths", t, func() {
		So(IsRemote("HTTPS://host/list.m3u"), ShouldBeTrue)
		So(IsRemote("/home/me/list.m3u"), ShouldBeFalse)
	})
}

type slowSource struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (s *slowSource) Fetch(context.Context, string) (*playlist.Playlist, error) {
	s.calls.Add(1)
	<-s.release
	if s.err != nil {
		return nil, s.err
	}
	return playlist.Parse(sample), nil
}

func TestLoader(t *testing.T) {
	Convey("Given a slow source", t, func() {
		source := &slowSource{release: make(chan struct{})}

		var loads atomic.Int32
		loader := NewLoader(source, "http://list", func(*playlist.Playlist) { loads.Add(1) })

		Convey("Overlapping loads share one fetch", func() {
			var wg sync.WaitGroup
			results := make([]*playlist.Playlist, 5)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i], _ = loader.Load(context.Background())
				}(i)
			}

			time.Sleep(50 * time.Millisecond)
			close(source.release)
			wg.Wait()

			So(source.calls.Load(), ShouldEqual, int32(1))
			So(loads.Load(), ShouldEqual, int32(1))
			for _, p := range results {
				So(p, ShouldEqual, results[0])
			}
		})

		Convey("Failures are returned and not loaded", func() {
			source.err = errors.New("offline")
			close(source.release)

			_, err := loader.Load(context.Background())
			So(err, ShouldNotBeNil)
			So(loads.Load(), ShouldEqual, int32(0))
		})

		Convey("Sequential loads fetch again", func() {
			close(source.release)
			_, _ = loader.Load(context.Background())
			_, _ = loader.Load(context.Background())
			So(source.calls.Load(), ShouldEqual, int32(2))
		})
	})

	Convey("Scheduling", t, func() {
		loader := NewLoader(&slowSource{release: make(chan struct{})}, "x", nil)
		defer loader.Close()

		Convey("An empty schedule disables reloading", func() {
			So(loader.Schedule(""), ShouldBeNil)
			So(loader.cron, ShouldBeNil)
		})

		Convey("An invalid schedule is rejected", func() {
			So(loader.Schedule("every now and then"), ShouldNotBeNil)
		})

		Convey("A valid schedule starts the scheduler", func() {
			So(loader.Schedule("@every 6h"), ShouldBeNil)
			So(loader.cron, ShouldNotBeNil)
		})
	})
}
