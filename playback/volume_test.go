package playback

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVolume(t *testing.T) {
	Convey("Given a fresh volume", t, func() {
		out, st := &fakeOutput{}, newFakeStore()
		v := NewVolume(out, st)

		Convey("Init defaults to full volume", func() {
			So(v.Init(), ShouldEqual, DefaultVolume)
			So(out.volumes, ShouldResemble, []float64{DefaultVolume})
		})

		Convey("Init loads the persisted level", func() {
			st.volume = mo.Some(0.4)
			So(v.Init(), ShouldEqual, 0.4)
		})

		Convey("Init clamps a persisted level out of range", func() {
			st.volume = mo.Some(3.0)
			So(v.Init(), ShouldEqual, 1.0)
		})

		Convey("Set clamps below zero", func() {
			So(v.Set(-0.3), ShouldEqual, 0.0)
			So(st.volume.MustGet(), ShouldEqual, 0.0)
		})

		Convey("Set clamps above one", func() {
			So(v.Set(1.7), ShouldEqual, 1.0)
			So(st.volume.MustGet(), ShouldEqual, 1.0)
		})

		Convey("Set applies and persists", func() {
			So(v.Set(0.55), ShouldEqual, 0.55)
			So(out.volumes, ShouldResemble, []float64{0.55})
			So(v.Level(), ShouldEqual, 0.55)
		})

		Convey("Set keeps the exact level", func() {
			So(v.Set(0.555), ShouldEqual, 0.555)
			So(st.volume.MustGet(), ShouldEqual, 0.555)
		})

		Convey("Repeated nudges land on round values", func() {
			for i := 0; i < 3; i++ {
				v.Nudge(-VolumeStep)
			}
			So(v.Level(), ShouldEqual, 0.7)

			for i := 0; i < 20; i++ {
				v.Nudge(-VolumeStep)
			}
			So(v.Level(), ShouldEqual, 0.0)
		})

		Convey("A backend without volume control still persists", func() {
			out.fail = true
			So(v.Set(0.2), ShouldEqual, 0.2)
			So(st.volume.MustGet(), ShouldEqual, 0.2)
		})
	})
}
