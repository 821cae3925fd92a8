package strutil

import (
	"charm.land/lipgloss/v2"
)

// Limit truncates a string to a specific visual width, accounting for ANSI
// codes. Tab labels and button captions go through this so long names never
// break the layout.
func Limit(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// Repeat returns a string consisting of count copies of s. Unlike
// strings.Repeat it treats negative counts as zero instead of panicking,
// which keeps layout math safe on tiny terminals.
func Repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < count; i++ {
		result += s
	}
	return result
}
