package cmd

import (
	"fmt"
	"strings"

	"tkapp/internal/version"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	ConfigSet  bool // whether --config was given explicitly

	Verbose     bool
	Debug       bool
	ShowVersion bool
	ShowHelp    bool
}

// ParseError wraps argument parsing errors to provide rich output: the
// offending command line is echoed with a caret marker under the failing
// argument.
type ParseError struct {
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred
	Message string   // The specific error message
}

func (e *ParseError) Error() string {
	indent := "   "

	// Build command line string up to and including the failing argument
	parts := []string{version.CommandName}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		parts = append(parts, e.Args[i])
	}
	cmdLine := "'" + strings.Join(parts, " ") + "'"

	// Indent + ' + command name + space + previous args + spaces
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "^"

	return fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n\n%sRun '%s --help' for usage.\n",
		indent, cmdLine, pointerLine, indent, e.Message, indent, version.CommandName)
}

// Parse validates the command line and returns the launcher options. There
// are no subcommands: anything pflag rejects, and any positional argument,
// becomes a ParseError.
func Parse(args []string) (Options, error) {
	fs := NewFlagSet()

	if err := fs.Parse(args); err != nil {
		return Options{}, &ParseError{
			Args:    args,
			Index:   failingIndex(args, err),
			Message: err.Error(),
		}
	}

	if rest := fs.Args(); len(rest) > 0 {
		return Options{}, &ParseError{
			Args:    args,
			Index:   indexOf(args, rest[0]),
			Message: fmt.Sprintf("unexpected argument '%s'", rest[0]),
		}
	}

	configPath, _ := fs.GetString("config")
	verbose, _ := fs.GetBool("verbose")
	debug, _ := fs.GetBool("debug")
	showVersion, _ := fs.GetBool("version")
	showHelp, _ := fs.GetBool("help")

	return Options{
		ConfigPath:  configPath,
		ConfigSet:   fs.Changed("config"),
		Verbose:     verbose,
		Debug:       debug,
		ShowVersion: showVersion,
		ShowHelp:    showHelp,
	}, nil
}

// failingIndex locates the argument a pflag error refers to. pflag errors
// name the flag after a colon (e.g. "unknown flag: --foo").
func failingIndex(args []string, err error) int {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		needle := strings.TrimSpace(msg[i+2:])
		for j, arg := range args {
			if arg == needle || strings.HasPrefix(arg, needle+"=") {
				return j
			}
		}
		// Shorthand errors name the letter only (e.g. "unknown shorthand flag: 'z' in -z")
		needle = strings.Trim(needle, "'")
		for j, arg := range args {
			if strings.HasPrefix(arg, "-") && strings.Contains(arg, needle) {
				return j
			}
		}
	}
	return 0
}

// indexOf returns the position of target in args, or 0.
func indexOf(args []string, target string) int {
	for i, arg := range args {
		if arg == target {
			return i
		}
	}
	return 0
}
