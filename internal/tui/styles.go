package tui

import (
	"charm.land/lipgloss/v2"

	"tkapp/internal/config"
)

// Styles holds all lipgloss styles derived from the user settings.
type Styles struct {
	// Screen
	Screen lipgloss.Style
	Title  lipgloss.Style

	// Tab bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabGap      lipgloss.Style

	// Buttons
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style

	// About view
	AboutText     lipgloss.Style
	FooterLink    lipgloss.Style
	FooterFocused lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogError  lipgloss.Style
	DialogButton lipgloss.Style

	// Help line
	HelpLine lipgloss.Style
}

// NewStyles builds the style set from the UI settings. The accent color and
// the border toggle are the only user-tunable parts.
func NewStyles(ui config.UISettings) Styles {
	accent := lipgloss.Color(ui.Accent)
	dim := lipgloss.Color("240")
	errColor := lipgloss.Color("196")

	border := lipgloss.RoundedBorder()
	buttonBorder := lipgloss.NormalBorder()
	if !ui.Borders {
		border = lipgloss.HiddenBorder()
		buttonBorder = lipgloss.HiddenBorder()
	}

	return Styles{
		Screen: lipgloss.NewStyle().Padding(1, 2),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),

		TabActive: lipgloss.NewStyle().
			Border(border).
			BorderForeground(accent).
			Padding(0, 2).
			Bold(true),
		TabInactive: lipgloss.NewStyle().
			Border(border).
			BorderForeground(dim).
			Foreground(dim).
			Padding(0, 2),
		TabGap: lipgloss.NewStyle().Foreground(dim),

		ButtonActive: lipgloss.NewStyle().
			Border(buttonBorder).
			BorderForeground(accent).
			Foreground(accent).
			Padding(0, 3).
			Bold(true),
		ButtonInactive: lipgloss.NewStyle().
			Border(buttonBorder).
			BorderForeground(dim).
			Padding(0, 3),

		AboutText: lipgloss.NewStyle().Align(lipgloss.Center),
		FooterLink: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Underline(true),
		FooterFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Underline(true).
			Reverse(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 3),
		DialogTitle:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		DialogError:  lipgloss.NewStyle().Bold(true).Foreground(errColor),
		DialogButton: lipgloss.NewStyle().Reverse(true).Padding(0, 2),

		HelpLine: lipgloss.NewStyle().Foreground(dim),
	}
}
