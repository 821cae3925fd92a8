package cmd

import (
	"fmt"
	"strings"

	"tkapp/internal/version"
)

// Usage returns the full help text.
func Usage() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — a tabbed application launcher\n\n", version.ApplicationName)
	fmt.Fprintf(&b, "Usage: %s [options]\n\n", version.CommandName)
	b.WriteString("Options:\n")
	b.WriteString(NewFlagSet().FlagUsages())
	b.WriteString("\n")
	fmt.Fprintf(&b, "The configuration file describes the window title, the About text and\n")
	fmt.Fprintf(&b, "the categorized applications to launch. See the project page for the\n")
	fmt.Fprintf(&b, "document schema.\n")

	return b.String()
}

// VersionString returns the one-line version output.
func VersionString() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)",
		version.ApplicationName, version.Version, version.Commit, version.BuildDate)
}
