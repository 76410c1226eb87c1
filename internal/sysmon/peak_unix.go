//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package sysmon

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PeakRSS returns the high-water resident set size of the current process in
// bytes. The second result is false when the value is unavailable.
func PeakRSS() (uint64, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	if ru.Maxrss <= 0 {
		return 0, false
	}
	// Darwin reports bytes, the BSDs and Linux kilobytes.
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return uint64(ru.Maxrss), true
	}
	return uint64(ru.Maxrss) * 1024, true
}
