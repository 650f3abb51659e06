package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tvplay/tvplay/constant"
	"github.com/tvplay/tvplay/log"
	"github.com/tvplay/tvplay/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// MPV implements the Player interface using mpv's JSON-IPC protocol.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the mpv process exits
	volume     float64
	mu         sync.Mutex // serializes socket round trips
}

// NewMPV creates a new MPV player instance (does not start playback).
func NewMPV() *MPV {
	exited := make(chan struct{})
	close(exited)

	return &MPV{
		exited: exited,
		volume: 1,
	}
}

// Play starts playback of the given URL. If mpv is already running,
// the stream is replaced in the existing instance via IPC.
func (m *MPV) Play(rawURL, title string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	title = sanitizeTitle(title)

	if m.IsRunning() {
		if _, err := m.sendCommand([]any{"loadfile", target, "replace"}); err != nil {
			return fmt.Errorf("load stream: %w", err)
		}
		_ = m.set("force-media-title", title)
		return nil
	}

	return m.spawn(target, title)
}

func (m *MPV) spawn(target, title string) error {
	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%x%s", constant.App, randomBytes, socketSuffix))
	}

	// Only socket, title, volume and URL are passed so the user's mpv.conf stays in charge.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--force-media-title=%s", title),
		fmt.Sprintf("--title=%s", title),
		fmt.Sprintf("--volume=%d", volumePercent(m.volume)),
		"--force-window=yes",
		"--idle=yes",
		target,
	}

	m.cmd = exec.Command("mpv", args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.WithField("socket", m.socketPath).Debug("mpv started")
	return nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]any{"get_property", "pid"})
	return err == nil
}

// Stop unloads the current stream. mpv stays idle with its window open.
func (m *MPV) Stop() error {
	if !m.IsRunning() {
		return nil
	}
	_, err := m.sendCommand([]any{"stop"})
	return err
}

// TogglePause toggles the pause state.
func (m *MPV) TogglePause() error {
	if !m.IsRunning() {
		return nil
	}
	_, err := m.sendCommand([]any{"cycle", "pause"})
	return err
}

// SetVolume applies level now if mpv is running and remembers it for the next start.
func (m *MPV) SetVolume(level float64) error {
	m.volume = level
	if !m.IsRunning() {
		return nil
	}
	return m.set("volume", volumePercent(level))
}

// Close shuts down the mpv process and cleans up resources.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	m.socketPath = ""

	return nil
}

func (m *MPV) set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

func volumePercent(level float64) int {
	return int(level*100 + 0.5)
}

// sanitizeMediaTarget validates that a playlist URL is safe to pass to mpv.
// Playlist entries are untrusted, so anything resembling a flag is rejected.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "rtmp", "rtmps", "rtsp", "rtp", "udp", "mms":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
