package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeMPV answers JSON-IPC requests the way mpv does, prefixing every reply with an event.
type fakeMPV struct {
	listener net.Listener
	mu       sync.Mutex
	commands [][]any
}

func newFakeMPV(t *testing.T) *fakeMPV {
	listener, err := net.Listen("unix", filepath.Join(t.TempDir(), "mpv.sock"))
	if err != nil {
		t.Fatal(err)
	}

	f := &fakeMPV{listener: listener}
	go f.serve()
	return f
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}

		go func(conn net.Conn) {
			defer conn.Close()

			lines := bufio.NewScanner(conn)
			for lines.Scan() {
				var cmd ipcCommand
				if err := json.Unmarshal(lines.Bytes(), &cmd); err != nil {
					return
				}

				f.mu.Lock()
				f.commands = append(f.commands, cmd.Command)
				f.mu.Unlock()

				fmt.Fprintln(conn, `{"event":"property-change","name":"pause","data":false}`)
				fmt.Fprintf(conn, `{"request_id":%d,"error":"success","data":42}`+"\n", cmd.RequestID)
			}
		}(conn)
	}
}

func (f *fakeMPV) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.commands))
	for _, cmd := range f.commands {
		names = append(names, fmt.Sprint(cmd[0]))
	}
	return names
}

func (f *fakeMPV) last() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commands[len(f.commands)-1]
}

func TestMPV(t *testing.T) {
	Convey("Given an mpv instance listening on its IPC socket", t, func() {
		server := newFakeMPV(t)
		defer server.listener.Close()

		mpv := NewMPV()
		mpv.socketPath = server.listener.Addr().String()
		mpv.exited = make(chan struct{})

		So(mpv.IsRunning(), ShouldBeTrue)

		Convey("Play replaces the stream in place", func() {
			So(mpv.Play("http://stream/b.m3u8", "Channel\nB"), ShouldBeNil)
			So(server.names(), ShouldContain, "loadfile")

			last := server.last()
			So(last[0], ShouldEqual, "set_property")
			So(last[1], ShouldEqual, "force-media-title")
			So(last[2], ShouldEqual, "Channel B")
		})

		Convey("SetVolume converts to a percentage", func() {
			So(mpv.SetVolume(0.5), ShouldBeNil)
			So(server.last(), ShouldResemble, []any{"set_property", "volume", float64(50)})
		})

		Convey("TogglePause cycles the pause property", func() {
			So(mpv.TogglePause(), ShouldBeNil)
			So(server.last(), ShouldResemble, []any{"cycle", "pause"})
		})

		Convey("Stop unloads the stream", func() {
			So(mpv.Stop(), ShouldBeNil)
			So(server.last(), ShouldResemble, []any{"stop"})
		})
	})

	Convey("Given an mpv that is not running", t, func() {
		mpv := NewMPV()

		So(mpv.IsRunning(), ShouldBeFalse)

		Convey("Controls are no-ops", func() {
			So(mpv.Stop(), ShouldBeNil)
			So(mpv.TogglePause(), ShouldBeNil)
			So(mpv.Close(), ShouldBeNil)
		})

		Convey("The volume is kept for the next start", func() {
			So(mpv.SetVolume(0.25), ShouldBeNil)
			So(volumePercent(mpv.volume), ShouldEqual, 25)
		})

		Convey("Wait does not block", func() {
			_, open := <-mpv.Wait()
			So(open, ShouldBeFalse)
		})
	})
}

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("Stream URLs are accepted", t, func() {
		for _, link := range []string{"http://a/b.m3u8", "https://a", "rtmp://a/live", "udp://239.0.0.1:1234"} {
			_, err := sanitizeMediaTarget(link)
			So(err, ShouldBeNil)
		}
	})

	Convey("Flag-like and malformed targets are rejected", t, func() {
		for _, link := range []string{"", "--script=evil.lua", "http://a\nb", "javascript://x"} {
			_, err := sanitizeMediaTarget(link)
			So(err, ShouldNotBeNil)
		}
	})

	Convey("Local paths are cleaned", t, func() {
		target, err := sanitizeMediaTarget("/videos/../videos/a.ts")
		So(err, ShouldBeNil)
		So(target, ShouldEqual, "/videos/a.ts")
	})
}
