package cmd

import (
	"tkapp/internal/constants"
	"tkapp/internal/version"

	"github.com/spf13/pflag"
)

// NewFlagSet defines the pflags used for argument validation and help.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.CommandName, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringP("config", "c", constants.ConfigFileName, "Path to the JSON configuration file")
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.BoolP("debug", "x", false, "Debug output")
	fs.BoolP("version", "V", false, "Show version")
	fs.BoolP("help", "h", false, "Show help")

	// Errors and usage are rendered by ParseError/Usage, not by pflag
	fs.Usage = func() {}
	fs.SetOutput(discard{})

	return fs
}

// discard swallows pflag's own error printing.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
