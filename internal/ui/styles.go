package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent = "86"  // Cyan/green - for the heading
	ColorText   = "252" // Light gray - for normal text
	ColorMuted  = "241" // Gray - for dimmed text, hints
)

// Styles contains shared style definitions used across the app's views.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color - for the heading
	Normal lipgloss.Style // Normal text (text color) - for list rows
	Empty  lipgloss.Style // Empty state text (muted, italic)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
