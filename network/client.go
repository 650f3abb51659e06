// Package network provides the HTTP client shared by the playlist fetcher and the HLS resolver.
package network

import (
	"time"

	"github.com/imroc/req/v3"
	"github.com/spf13/viper"
	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/key"
	"github.com/tvplay/tvplay/log"
)

const retries = 2

// Client returns a client configured from the playlist.* settings.
// Transient failures are retried a couple of times before giving up.
func Client() *req.Client {
	userAgent := viper.GetString(key.PlaylistUserAgent)
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	client := req.C().
		SetUserAgent(userAgent).
		SetCommonRetryCount(retries).
		SetCommonRetryBackoffInterval(200*time.Millisecond, 2*time.Second).
		SetLogger(log.Logger())

	if timeout := viper.GetInt(key.PlaylistTimeout); timeout > 0 {
		client.SetTimeout(time.Duration(timeout) * time.Second)
	}

	return client
}
