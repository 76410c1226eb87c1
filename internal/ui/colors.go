package ui

import "github.com/charmbracelet/lipgloss"

// ColorPrimary returns the escape code for headings.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the escape code for labels.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the color used for figures.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// Title renders a section heading. With colors disabled it is plain text so
// piped output stays clean.
func Title(text string) string {
	t := GetCurrentTheme()
	if t.Name == NoColorTheme.Name {
		return text
	}
	color := lipgloss.Color("39")
	if t.Name == LightTheme.Name {
		color = lipgloss.Color("27")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
