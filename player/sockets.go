package player

import (
	"net"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/filesystem"
	"github.com/tvplay/tvplay/log"
)

const (
	socketSuffix      = ".sock"
	socketDialTimeout = 200 * time.Millisecond
)

// RemoveStaleSockets deletes mpv IPC sockets in dir that nothing answers on anymore.
// Sockets of players that are still running are kept. It returns the number removed.
func RemoveStaleSockets(dir string) int {
	fs := filesystem.API()

	paths, err := afero.Glob(fs, filepath.Join(dir, constant.App+"-*"+socketSuffix))
	if err != nil {
		log.Warnf("list player sockets: %s", err)
		return 0
	}

	var removed int
	for _, path := range paths {
		if conn, err := net.DialTimeout("unix", path, socketDialTimeout); err == nil {
			_ = conn.Close()
			continue
		}

		if err := fs.Remove(path); err != nil {
			log.WithField("socket", path).Warnf("remove stale socket: %s", err)
			continue
		}
		removed++
	}

	return removed
}
