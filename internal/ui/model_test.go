package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		m := &Model{}

		Convey("The view is left untouched", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("A notification is appended to the last line until cleared", func() {
			So(m.Update(Notify("saved")()), ShouldNotBeNil)
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
			So(m.View("a\nb"), ShouldContainSubstring, "saved")

			So(m.Update(ClearNotificationMsg{}), ShouldBeNil)
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})
	})
}
