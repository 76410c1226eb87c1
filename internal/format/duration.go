// Package format turns measurements into display strings. Nothing here
// performs I/O.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds below a millisecond, milliseconds below a second,
// and the default string representation otherwise. A zero duration, which a
// coarse clock can report for a tiny workload, reads "< 1µs".
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// FormatSeconds renders elapsed wall-clock time with the four decimals used
// in the CSV line.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.4f", d.Seconds())
}
