package open

import (
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvplay/tvplay/constant"
)

func TestCommand(t *testing.T) {
	Convey("Given a stream URL", t, func() {
		const link = "http://stream/a.m3u8"

		cmd, err := Command(link)

		switch runtime.GOOS {
		case constant.Linux, constant.Darwin, constant.Windows, constant.Android:
			Convey("The handler receives it as the last argument", func() {
				So(err, ShouldBeNil)
				So(cmd.Args[len(cmd.Args)-1], ShouldEqual, link)
				So(Supported(), ShouldBeTrue)
			})
		default:
			Convey("The OS is reported as unsupported", func() {
				So(err, ShouldNotBeNil)
				So(Supported(), ShouldBeFalse)
			})
		}
	})
}
