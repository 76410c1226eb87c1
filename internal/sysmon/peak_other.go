//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package sysmon

// PeakRSS is not available on this platform.
func PeakRSS() (uint64, bool) {
	return 0, false
}
