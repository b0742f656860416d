//go:build darwin
// +build darwin

package diag

import (
	"os"

	"golang.org/x/sys/unix"
)

const SupportsColorEscapes = true

// GetTerminalInfo probes file with a termios ioctl to tell a real terminal
// from a redirected pipe/file, the same check esbuild's logger package
// makes before deciding whether to emit color escapes.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := file.Fd()

	if _, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = !hasNoColorEnvironmentVariable()

		if w, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil {
			info.Width = int(w.Col)
			info.Height = int(w.Row)
		}
	}

	return
}
