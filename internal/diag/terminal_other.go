//go:build !darwin && !linux && !windows
// +build !darwin,!linux,!windows

package diag

import "os"

const SupportsColorEscapes = false

func GetTerminalInfo(*os.File) TerminalInfo {
	return TerminalInfo{}
}
