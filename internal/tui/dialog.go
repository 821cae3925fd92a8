package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	zone "github.com/lrstanley/bubblezone/v2"
)

// MessageType represents the type of message dialog
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageError
)

// zoneDialogOK marks the clickable OK button of the active dialog.
const zoneDialogOK = "dialog/ok"

// messageDialog is a modal message box. Any key press or a click on OK
// dismisses it; the model owns that handling.
type messageDialog struct {
	title       string
	message     string
	messageType MessageType
}

func newMessageDialog(title, message string, msgType MessageType) *messageDialog {
	return &messageDialog{
		title:       title,
		message:     message,
		messageType: msgType,
	}
}

// render returns the dialog box, sized to its content and capped at width.
func (d *messageDialog) render(styles Styles, width int) string {
	titleStyle := styles.DialogTitle
	if d.messageType == MessageError {
		titleStyle = styles.DialogError
	}

	maxWidth := width - 10
	if maxWidth < 20 {
		maxWidth = 20
	}

	body := lipgloss.NewStyle().Width(min(maxWidth, widest(d.message))).Render(d.message)
	ok := zone.Mark(zoneDialogOK, styles.DialogButton.Render("OK"))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(d.title),
		"",
		body,
		"",
		ok,
	)

	return styles.Dialog.Render(content)
}

// widest returns the visual width of the longest line in s.
func widest(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}
