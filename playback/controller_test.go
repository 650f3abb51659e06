package playback

import (
	"sync"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvplay/tvplay/playlist"
	"github.com/tvplay/tvplay/store"
)

func TestController(t *testing.T) {
	Convey("Given a controller with a persisted selection", t, func() {
		out, st, d := &fakeOutput{}, newFakeStore(), &display{}
		st.last = mo.Some(store.LastPlayed{Index: 1})
		st.volume = mo.Some(0.5)

		c := NewController(out, st, d.show)
		c.Init()

		Convey("Nothing is selected before the first load", func() {
			So(c.State().Current.IsAbsent(), ShouldBeTrue)
			So(c.State().Volume, ShouldEqual, 0.5)
		})

		Convey("The first load restores the last played channel", func() {
			c.Load(playlist.Parse(channels))
			state := c.State()
			So(state.Current.MustGet(), ShouldEqual, 1)
			So(state.Channel.Title, ShouldEqual, "N2")

			Convey("Later loads do not restore again", func() {
				c.Dispatch(SelectIndex{I: 0})
				c.Load(playlist.Parse(channels))
				So(c.State().Current.MustGet(), ShouldEqual, 0)
				So(out.plays, ShouldHaveLength, 2)
			})
		})

		Convey("Commands are applied to the owned state", func() {
			c.Load(playlist.Parse(channels))

			So(c.Dispatch(SelectIndex{I: 2}).OK, ShouldBeTrue)
			So(c.State().Current.MustGet(), ShouldEqual, 2)

			c.Dispatch(Step{Delta: -1})
			So(c.State().Current.MustGet(), ShouldEqual, 1)

			c.Dispatch(SetVolume{V: 1.7})
			So(c.State().Volume, ShouldEqual, 1.0)

			c.Dispatch(NudgeVolume{Delta: -VolumeStep})
			So(c.State().Volume, ShouldEqual, 0.9)

			c.Dispatch(TogglePause{})
			So(c.State().Paused, ShouldBeTrue)

			c.Dispatch(Stop{})
			state := c.State()
			So(state.Stopped, ShouldBeTrue)
			So(state.Paused, ShouldBeFalse)
			So(state.Current.MustGet(), ShouldEqual, 1)
		})

		Convey("Concurrent commands are serialized", func() {
			c.Load(playlist.Parse(channels))

			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					c.Dispatch(SelectIndex{I: i % 3})
				}(i)
			}
			wg.Wait()

			So(out.plays, ShouldHaveLength, 21)
		})
	})

	Convey("Given a controller that failed to load", t, func() {
		out := &fakeOutput{}
		c := NewController(out, newFakeStore(), nil)

		Convey("Navigation is a no-op", func() {
			c.Dispatch(Step{Delta: 1})
			c.Dispatch(SelectIndex{I: 0})
			So(c.State().Current.IsAbsent(), ShouldBeTrue)
			So(out.plays, ShouldBeEmpty)
		})
	})
}
