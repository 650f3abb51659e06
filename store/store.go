// Package store persists the last played channel and the volume level between sessions.
package store

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/tvplay/tvplay/filesystem"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/where"
)

const (
	lastPlayedFile = "last_played.json"
	volumeFile     = "volume"
)

// LastPlayed records which catalog index was selected and when.
type LastPlayed struct {
	Index int   `json:"index"`
	Time  int64 `json:"time"`
}

// Now returns a record for index stamped with the current time in epoch milliseconds.
func Now(index int) LastPlayed {
	return LastPlayed{Index: index, Time: time.Now().UnixMilli()}
}

// Store reads and writes the persisted playback state under a single directory.
type Store struct {
	dir        string
	lastPlayed *gache.Cache[*LastPlayed]
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{
		dir: dir,
		lastPlayed: gache.New[*LastPlayed](
			&gache.Options{
				Path:       filepath.Join(dir, lastPlayedFile),
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

// Default returns a store rooted at the configuration directory.
func Default() *Store {
	return New(where.Config())
}

// SaveLastPlayed persists the record, replacing any previous one.
func (s *Store) SaveLastPlayed(record LastPlayed) error {
	if err := s.lastPlayed.Set(&record); err != nil {
		return fmt.Errorf("save last played: %w", err)
	}
	return nil
}

// LoadLastPlayed returns the persisted record. Missing or unreadable data is absent.
func (s *Store) LoadLastPlayed() mo.Option[LastPlayed] {
	record, expired, err := s.lastPlayed.Get()
	if err != nil {
		log.Warnf("last played record is unreadable: %s", err)
		return mo.None[LastPlayed]()
	}

	if expired || record == nil {
		return mo.None[LastPlayed]()
	}

	return mo.Some(*record)
}

// SaveVolume persists level as a plain decimal string.
func (s *Store) SaveVolume(level float64) error {
	fs := filesystem.API()
	if err := fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("save volume: %w", err)
	}

	text := strconv.FormatFloat(level, 'f', -1, 64)
	if err := fs.WriteFile(filepath.Join(s.dir, volumeFile), []byte(text), 0o644); err != nil {
		return fmt.Errorf("save volume: %w", err)
	}
	return nil
}

// LoadVolume returns the persisted volume. Missing or unparsable data is absent.
func (s *Store) LoadVolume() mo.Option[float64] {
	path := filepath.Join(s.dir, volumeFile)

	fs := filesystem.API()
	exists, err := fs.Exists(path)
	if err != nil || !exists {
		return mo.None[float64]()
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		log.Warnf("volume is unreadable: %s", err)
		return mo.None[float64]()
	}

	level, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || math.IsNaN(level) {
		log.Warnf("volume %q is not a number", string(data))
		return mo.None[float64]()
	}

	return mo.Some(level)
}

// Clear removes the persisted record and volume.
func (s *Store) Clear() error {
	fs := filesystem.API()
	for _, name := range []string{lastPlayedFile, volumeFile} {
		path := filepath.Join(s.dir, name)
		if exists, _ := fs.Exists(path); !exists {
			continue
		}
		if err := fs.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
