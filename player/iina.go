package player

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/tvplay/tvplay/constant"
)

// IINA plays streams through the macOS IINA app.
// IINA has no IPC socket, so each Play restarts the session.
type IINA struct {
	cmd    *exec.Cmd
	exited chan struct{}
	volume float64
}

func NewIINA() *IINA {
	exited := make(chan struct{})
	close(exited)

	return &IINA{exited: exited, volume: 1}
}

func (m *IINA) Play(rawURL, title string) error {
	if runtime.GOOS != constant.Darwin {
		return fmt.Errorf("IINA is only supported on macOS")
	}

	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	_ = m.Close()

	// IINA forwards mpv options given after --args with an mpv- prefix.
	m.cmd = exec.Command(
		"open", "-W", "-n", "-a", "IINA",
		"--args",
		fmt.Sprintf("--mpv-force-media-title=%s", sanitizeTitle(title)),
		fmt.Sprintf("--mpv-volume=%d", volumePercent(m.volume)),
		target,
	)

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	return nil
}

func (m *IINA) Wait() <-chan struct{} {
	return m.exited
}

func (m *IINA) Stop() error {
	return m.Close()
}

func (m *IINA) TogglePause() error {
	return ErrUnsupported
}

// SetVolume takes effect on the next Play.
func (m *IINA) SetVolume(level float64) error {
	m.volume = level
	return nil
}

func (m *IINA) IsRunning() bool {
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

func (m *IINA) Close() error {
	if m.cmd != nil && m.IsRunning() {
		_ = killProcess(m.cmd)
	}
	return nil
}
