package playback

import (
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvplay/tvplay/catalog"
	"github.com/tvplay/tvplay/playlist"
	"github.com/tvplay/tvplay/store"
)

const channels = `#EXTM3U
#EXTINF:-1 group-title="News",N1
http://n/1
#EXTINF:-1 group-title="News",N2
http://n/2
#EXTINF:-1 group-title="Sport",S1
http://s/1
`

func newSelector() (*Selector, *fakeOutput, *fakeStore, *display) {
	c := catalog.New()
	c.Load(playlist.Parse(channels))

	out, st, d := &fakeOutput{}, newFakeStore(), &display{}
	s := NewSelector(c, out, st, d.show)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s, out, st, d
}

func TestSelectIndex(t *testing.T) {
	Convey("Given a selector over three channels", t, func() {
		s, out, st, d := newSelector()

		So(s.Current().IsAbsent(), ShouldBeTrue)

		Convey("Selecting plays, displays and persists", func() {
			result := s.SelectIndex(1)
			So(result.OK, ShouldBeTrue)
			So(s.Current().MustGet(), ShouldEqual, 1)
			So(out.plays, ShouldResemble, []string{"http://n/2"})
			So(d.calls, ShouldResemble, [][2]string{{"N2", "News"}})
			So(st.records, ShouldResemble, []store.LastPlayed{{Index: 1, Time: 1700000000000}})
		})

		Convey("Selecting twice re-emits every effect", func() {
			s.SelectIndex(2)
			s.SelectIndex(2)
			So(s.Current().MustGet(), ShouldEqual, 2)
			So(out.plays, ShouldHaveLength, 2)
			So(d.calls, ShouldHaveLength, 2)
			So(st.records, ShouldHaveLength, 2)
		})

		Convey("Indices are clamped into the catalog", func() {
			s.SelectIndex(99)
			So(s.Current().MustGet(), ShouldEqual, 2)
			s.SelectIndex(-5)
			So(s.Current().MustGet(), ShouldEqual, 0)
		})

		Convey("A failed start still moves the selection", func() {
			out.fail = true
			result := s.SelectIndex(0)
			So(result.OK, ShouldBeFalse)
			So(s.Current().MustGet(), ShouldEqual, 0)
		})
	})

	Convey("Given an empty catalog", t, func() {
		out, st, d := &fakeOutput{}, newFakeStore(), &display{}
		s := NewSelector(catalog.New(), out, st, d.show)

		Convey("Selection is a no-op", func() {
			s.SelectIndex(0)
			s.Step(1)
			So(s.Current().IsAbsent(), ShouldBeTrue)
			So(out.plays, ShouldBeEmpty)
			So(d.calls, ShouldBeEmpty)
			So(st.records, ShouldBeEmpty)
		})
	})
}

func TestStep(t *testing.T) {
	Convey("Given a selector over three channels", t, func() {
		s, out, _, _ := newSelector()

		Convey("Stepping with nothing selected starts from zero", func() {
			s.Step(1)
			So(s.Current().MustGet(), ShouldEqual, 1)
		})

		Convey("Stepping forward from the last index stays there", func() {
			s.SelectIndex(2)
			s.Step(1)
			So(s.Current().MustGet(), ShouldEqual, 2)
			So(out.plays, ShouldHaveLength, 2)
		})

		Convey("Stepping back from the first index stays there", func() {
			s.SelectIndex(0)
			s.Step(-1)
			So(s.Current().MustGet(), ShouldEqual, 0)
		})
	})
}

func TestRestore(t *testing.T) {
	Convey("Given a selector over three channels", t, func() {
		s, out, st, _ := newSelector()

		Convey("Nothing persisted restores nothing", func() {
			So(s.Restore(), ShouldBeFalse)
			So(s.Current().IsAbsent(), ShouldBeTrue)
		})

		Convey("A persisted index in range is played", func() {
			st.last = mo.Some(store.Now(2))
			So(s.Restore(), ShouldBeTrue)
			So(s.Current().MustGet(), ShouldEqual, 2)
			So(out.plays, ShouldResemble, []string{"http://s/1"})
		})

		Convey("A persisted index out of range leaves the selection absent", func() {
			for _, index := range []int{3, -1} {
				st.last = mo.Some(store.LastPlayed{Index: index})
				So(s.Restore(), ShouldBeFalse)
				So(s.Current().IsAbsent(), ShouldBeTrue)
				So(out.plays, ShouldBeEmpty)
			}
		})
	})
}

func TestStopAndPause(t *testing.T) {
	Convey("Given a playing channel", t, func() {
		s, out, _, d := newSelector()
		s.SelectIndex(1)

		Convey("Stop keeps the selection and clears the display", func() {
			s.Stop()
			So(out.stops, ShouldEqual, 1)
			So(s.Current().MustGet(), ShouldEqual, 1)
			So(s.Stopped(), ShouldBeTrue)
			So(d.calls[len(d.calls)-1], ShouldResemble, [2]string{"", ""})

			Convey("Stepping resumes from the kept selection", func() {
				s.Step(1)
				So(s.Current().MustGet(), ShouldEqual, 2)
				So(s.Stopped(), ShouldBeFalse)
			})
		})

		Convey("TogglePause flips the paused flag", func() {
			s.TogglePause()
			So(s.Paused(), ShouldBeTrue)
			s.TogglePause()
			So(s.Paused(), ShouldBeFalse)
			So(out.pauses, ShouldEqual, 2)
		})

		Convey("A rejected toggle leaves the flag alone", func() {
			out.fail = true
			s.TogglePause()
			So(s.Paused(), ShouldBeFalse)
		})
	})
}
