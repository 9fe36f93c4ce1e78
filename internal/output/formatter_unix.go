//go:build !windows
// +build !windows

package output

// enableANSI returns true on Unix-like systems if stdout is a terminal;
// no setup is needed there.
func enableANSI() bool {
	return true
}
