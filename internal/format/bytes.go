package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a byte count with binary units, e.g. "4.0 GiB".
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}

// FormatSignedBytes renders a delta that may be negative.
func FormatSignedBytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return "+" + humanize.IBytes(uint64(n))
}

// FormatSignedMB renders a memory delta in MiB with an explicit sign.
func FormatSignedMB(mb float64) string {
	return fmt.Sprintf("%+.2f MB", mb)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
