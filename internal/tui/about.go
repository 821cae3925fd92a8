package tui

import (
	"charm.land/lipgloss/v2"
	zone "github.com/lrstanley/bubblezone/v2"

	"tkapp/internal/constants"
)

// zoneAboutLink marks the clickable attribution link on the About tab.
const zoneAboutLink = "about/link"

// renderAbout renders the mandatory About tab: the free-text from the
// configuration plus the fixed attribution footer. The footer is focusable
// so Enter (or a mouse click) opens the project page in the browser.
func renderAbout(styles Styles, about string, width int, linkFocused bool) string {
	textWidth := width - 4
	if textWidth < 20 {
		textWidth = 20
	}
	if textWidth > 60 {
		textWidth = 60
	}

	text := styles.AboutText.Width(textWidth).Render(about)

	footerStyle := styles.FooterLink
	if linkFocused {
		footerStyle = styles.FooterFocused
	}
	footer := zone.Mark(zoneAboutLink, footerStyle.Render("Built with "+constants.ProjectURL))

	return lipgloss.JoinVertical(
		lipgloss.Center,
		text,
		"",
		footer,
	)
}
