// Package launch maps a launcher entry to a process-creation strategy and
// starts it as a detached OS process. Creation is the only step the
// dispatcher observes: it keeps no handle on the child, captures no output,
// and never waits for it to exit.
package launch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tkapp/internal/config"
	"tkapp/internal/constants"
	"tkapp/internal/logger"

	shellwords "github.com/mattn/go-shellwords"
)

// ErrMissingPath is returned when an entry has no launch target. No process
// is spawned.
var ErrMissingPath = errors.New("application path not specified")

// UnknownTypeError is returned when an entry declares an unsupported type.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown application type: %s", e.Type)
}

// SpawnError wraps an OS-level process-creation failure.
type SpawnError struct {
	Type string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %s application: %v", e.Type, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// strategy builds the argument vector for one entry type.
type strategy func(d *Dispatcher, entry config.Entry) ([]string, error)

// Dispatcher turns entries into detached processes. It is built once from
// the loaded configuration and settings and is safe for concurrent use: all
// fields are read-only after New.
type Dispatcher struct {
	// Terminal is the terminal emulator command for bash-type entries.
	Terminal string
	// Interpreter is the interpreter command for python-type entries.
	Interpreter string

	starter    Starter
	strategies map[string]strategy
}

// New builds a Dispatcher from the launcher document and the app settings,
// applying the documented defaults for empty fields.
func New(cfg config.LauncherConfig, settings config.AppSettings) *Dispatcher {
	terminal := cfg.Terminal
	if terminal == "" {
		terminal = constants.DefaultTerminal
	}
	interpreter := settings.Launch.Interpreter
	if interpreter == "" {
		interpreter = constants.DefaultInterpreter
	}

	return &Dispatcher{
		Terminal:    terminal,
		Interpreter: interpreter,
		starter:     osStarter{},
		strategies: map[string]strategy{
			constants.TypePython: (*Dispatcher).buildPython,
			constants.TypeBash:   (*Dispatcher).buildBash,
		},
	}
}

// Launch starts the entry as a new, independent process. It returns as soon
// as process creation succeeded or failed; the child is never waited on.
// Failures are returned as ErrMissingPath, *UnknownTypeError or *SpawnError
// and must be reported to the user by the caller, never allowed to take the
// UI loop down.
func (d *Dispatcher) Launch(ctx context.Context, entry config.Entry) error {
	if strings.TrimSpace(entry.Path) == "" {
		return ErrMissingPath
	}

	appType := entry.Type
	if appType == "" {
		appType = constants.TypePython
	}

	build, ok := d.strategies[appType]
	if !ok {
		return &UnknownTypeError{Type: appType}
	}

	argv, err := build(d, entry)
	if err != nil {
		return err
	}

	logger.Info(ctx, "Launching '%s': %s", entry.Name, strings.Join(argv, " "))

	if err := d.starter.Start(argv[0], argv[1:]); err != nil {
		return &SpawnError{Type: appType, Err: err}
	}

	return nil
}

// buildPython builds [interpreter, path, args...] with the args string split
// using shell-word rules, so quoted segments stay single tokens.
func (d *Dispatcher) buildPython(entry config.Entry) ([]string, error) {
	argv := []string{d.Interpreter, entry.Path}
	if entry.Args != "" {
		extra, err := shellwords.Parse(entry.Args)
		if err != nil {
			return nil, fmt.Errorf("split arguments for '%s': %w", entry.Name, err)
		}
		argv = append(argv, extra...)
	}
	return argv, nil
}

// buildBash hands the whole command string to a shell inside the configured
// terminal emulator. The trailing "exec bash" keeps the terminal window open
// after the command exits so the user can read its output.
func (d *Dispatcher) buildBash(entry config.Entry) ([]string, error) {
	command := entry.Path
	if entry.Args != "" {
		command = entry.Path + " " + entry.Args
	}
	return []string{d.Terminal, "--", "bash", "-c", command + "; exec bash"}, nil
}
