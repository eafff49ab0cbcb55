// Package term reports whether a file descriptor refers to a terminal.
package term

import "os"

// IsTerminalFile reports whether f is connected to a terminal. A nil file
// is not a terminal.
func IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return IsTerminal(f.Fd())
}
