package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorBrand is the bistro accent, used for headings.
	ColorBrand = lipgloss.Color("125")

	// ColorCyan is used for identifiable nouns: paths, module names, commands.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" status and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (creating, installing, initializing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step status constants.
const (
	StatusCreated = "created"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// StatusStyle returns the style for a step status. Unknown statuses are
// unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// Styles groups the styles used by renderers.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Noun    lipgloss.Style
	Heading lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// GetStyles returns the default styles.
func GetStyles() *Styles {
	return &Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(ColorDimGray),
		Noun:    StyleNoun,
		Heading: lipgloss.NewStyle().Bold(true).Foreground(ColorBrand),
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Error:   lipgloss.NewStyle().Foreground(ColorBoldRed),
	}
}

// NoColorStyles returns styles that render text unchanged.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Bold:    plain,
		Muted:   plain,
		Noun:    plain,
		Heading: plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatStep renders "<action> <noun>" followed by a colored status.
func FormatStep(action, noun, status string) string {
	return StyleAction.Render(action) + " " + StyleNoun.Render(noun) + "  " + StatusStyle(status).Render(status)
}
