// Package ui provides theme and color support for the report printed after a
// benchmark run. It defines color schemes and ANSI escape code helpers so the
// CLI never hard-codes escape sequences.
package ui
