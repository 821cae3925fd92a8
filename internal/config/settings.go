package config

import (
	"os"
	"path/filepath"

	"tkapp/internal/constants"
	"tkapp/internal/paths"

	toml "github.com/pelletier/go-toml/v2"
)

// AppSettings holds the per-user application settings, separate from the
// launcher document. They live in tkapp.toml in the config directory.
type AppSettings struct {
	Launch LaunchSettings `toml:"launch"`
	UI     UISettings     `toml:"ui"`
}

// LaunchSettings holds process-creation related settings.
type LaunchSettings struct {
	// Interpreter is the command used for python-type entries.
	Interpreter string `toml:"interpreter"`
}

// UISettings holds user interface related settings.
type UISettings struct {
	Borders bool   `toml:"borders"`
	Accent  string `toml:"accent"` // ANSI 256 color used for highlights
}

// DefaultSettings returns the settings used when no tkapp.toml exists yet.
func DefaultSettings() AppSettings {
	return AppSettings{
		Launch: LaunchSettings{
			Interpreter: constants.DefaultInterpreter,
		},
		UI: UISettings{
			Borders: true,
			Accent:  "39",
		},
	}
}

// LoadSettings reads the settings file and returns the settings. If the file
// is missing or invalid, defaults are saved and returned.
func LoadSettings() AppSettings {
	settings := DefaultSettings()

	path := paths.GetSettingsFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &settings); err == nil {
			if settings.Launch.Interpreter == "" {
				settings.Launch.Interpreter = constants.DefaultInterpreter
			}
			return settings
		}
		// Invalid TOML falls through to rewriting defaults
		settings = DefaultSettings()
	}

	SaveSettings(settings)
	return settings
}

// SaveSettings writes the settings to tkapp.toml.
func SaveSettings(settings AppSettings) error {
	path := paths.GetSettingsFilePath()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
