package config

import (
	"os"
	"path/filepath"
	"testing"

	"tkapp/internal/constants"
	"tkapp/internal/paths"
)

func TestSettingsRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	defer func() { paths.ConfigHomeOverride = "" }()

	// First load creates the file with defaults
	settings := LoadSettings()
	if settings.Launch.Interpreter != constants.DefaultInterpreter {
		t.Errorf("Expected interpreter '%s', got '%s'",
			constants.DefaultInterpreter, settings.Launch.Interpreter)
	}
	if !settings.UI.Borders {
		t.Error("Expected Borders to default to true")
	}
	if _, err := os.Stat(paths.GetSettingsFilePath()); err != nil {
		t.Errorf("Expected settings file to be created: %v", err)
	}

	// Changed settings survive a save/load cycle
	settings.Launch.Interpreter = "python3"
	settings.UI.Borders = false
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	loaded := LoadSettings()
	if loaded.Launch.Interpreter != "python3" {
		t.Errorf("Expected interpreter 'python3', got '%s'", loaded.Launch.Interpreter)
	}
	if loaded.UI.Borders {
		t.Error("Expected Borders false after save")
	}
}

func TestSettingsInvalidFileFallsBack(t *testing.T) {
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	defer func() { paths.ConfigHomeOverride = "" }()

	path := paths.GetSettingsFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	settings := LoadSettings()
	if settings.Launch.Interpreter != constants.DefaultInterpreter {
		t.Errorf("Expected defaults on invalid settings, got interpreter '%s'",
			settings.Launch.Interpreter)
	}
}
