//go:build linux
// +build linux

package diag

import (
	"os"

	"golang.org/x/sys/unix"
)

const SupportsColorEscapes = true

// GetTerminalInfo probes file with a termios ioctl the same way the darwin
// build does, using the Linux-specific ioctl request constants.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := file.Fd()

	if _, err := unix.IoctlGetTermios(int(fd), unix.TCGETS); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = !hasNoColorEnvironmentVariable()

		if w, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil {
			info.Width = int(w.Col)
			info.Height = int(w.Row)
		}
	}

	return
}
