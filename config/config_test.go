package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/filesystem"
	"github.com/tvplay/tvplay/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.Player), ShouldEqual, "mpv")
			So(viper.GetStringSlice(key.PlayerFallbacks), ShouldResemble, []string{"system"})
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("playlist.user_agent"), ShouldEqual, "playlist_user_agent")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PlaylistURL]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "TVPLAY_PLAYLIST_URL")
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.PlaylistURL)
		})

		Convey("MarshalJSON reports the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"string"`)
		})
	})
}
