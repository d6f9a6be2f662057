package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Day labels: cyan
	colorDay = color.New(color.FgCyan, color.Bold)

	// Completed blocks: green
	colorDone = color.New(color.FgGreen)

	// Sleep and wake markers: yellow
	colorMarker = color.New(color.FgYellow)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatDay formats a day label.
func formatDay(s string) string {
	return colorDay.Sprint(s)
}

// formatDone formats a finished block.
func formatDone(s string) string {
	return colorDone.Sprint(s)
}

// formatMarker formats a wake or sleep line.
func formatMarker(s string) string {
	return colorMarker.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
