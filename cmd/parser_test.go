package cmd

import (
	"errors"
	"strings"
	"testing"

	"tkapp/internal/constants"
	"tkapp/internal/version"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if opts.ConfigPath != constants.ConfigFileName {
		t.Errorf("Expected default config '%s', got '%s'", constants.ConfigFileName, opts.ConfigPath)
	}
	if opts.ConfigSet {
		t.Error("ConfigSet must be false when --config is not given")
	}
	if opts.Verbose || opts.Debug || opts.ShowVersion || opts.ShowHelp {
		t.Error("No flag may default to true")
	}
}

func TestParseConfigFlag(t *testing.T) {
	for _, args := range [][]string{
		{"-c", "/tmp/custom.conf"},
		{"--config", "/tmp/custom.conf"},
		{"--config=/tmp/custom.conf"},
	} {
		opts, err := Parse(args)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", args, err)
		}
		if opts.ConfigPath != "/tmp/custom.conf" {
			t.Errorf("Parse(%q): expected '/tmp/custom.conf', got '%s'", args, opts.ConfigPath)
		}
		if !opts.ConfigSet {
			t.Errorf("Parse(%q): ConfigSet must be true", args)
		}
	}
}

func TestParseLevelFlags(t *testing.T) {
	opts, err := Parse([]string{"-v", "-x"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !opts.Verbose || !opts.Debug {
		t.Error("Expected verbose and debug both set")
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"--bogus"})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	if parseErr.Index != 0 {
		t.Errorf("Expected failing index 0, got %d", parseErr.Index)
	}
	if !strings.Contains(err.Error(), "^") {
		t.Error("ParseError output must contain the caret marker")
	}
}

func TestParseUnexpectedArgument(t *testing.T) {
	_, err := Parse([]string{"-v", "stray"})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	if parseErr.Index != 1 {
		t.Errorf("Expected failing index 1, got %d", parseErr.Index)
	}
}

func TestParseErrorCaretAlignment(t *testing.T) {
	perr := &ParseError{
		Args:    []string{"-v", "--bogus"},
		Index:   1,
		Message: "unknown flag: --bogus",
	}

	lines := strings.Split(perr.Error(), "\n")
	var cmdLine, pointerLine string
	for i, line := range lines {
		if strings.Contains(line, "--bogus") && strings.HasPrefix(strings.TrimSpace(line), "'") {
			cmdLine = line
			pointerLine = lines[i+1]
			break
		}
	}
	if cmdLine == "" {
		t.Fatalf("Echoed command line not found in:\n%s", perr.Error())
	}

	caret := strings.Index(pointerLine, "^")
	if caret < 0 {
		t.Fatal("Caret marker missing")
	}
	// The caret must sit under the first character of the failing argument:
	// indent + quote + command name + space + "-v" + space
	want := 3 + 1 + len(version.CommandName) + 1 + len("-v") + 1
	if caret != want {
		t.Errorf("Expected caret at column %d, got %d", want, caret)
	}
}
