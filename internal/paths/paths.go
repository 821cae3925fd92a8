package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"tkapp/internal/constants"
	"tkapp/internal/version"

	"github.com/adrg/xdg"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// WorkDirOverride allows overriding the working directory for tests.
	WorkDirOverride string
)

// configHome returns the base directory for per-user configuration.
func configHome() string {
	if ConfigHomeOverride != "" {
		return ConfigHomeOverride
	}

	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config")
	}
	return xdg.ConfigHome
}

// GetConfigDir returns the absolute path to the tkapp configuration directory
// (e.g., ~/.config/tkapp).
func GetConfigDir() string {
	appName := strings.ToLower(version.ApplicationName)
	return filepath.Join(configHome(), appName)
}

// GetSettingsFilePath returns the absolute path to the tkapp.toml settings file.
func GetSettingsFilePath() string {
	return filepath.Join(GetConfigDir(), constants.SettingsFileName)
}

// GetStateDir returns the absolute path to the tkapp state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return StateHomeOverride
	}
	appName := strings.ToLower(version.ApplicationName)
	return filepath.Join(xdg.StateHome, appName)
}

// GetLogFilePath returns the absolute path to the application log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// SearchConfigFile resolves the launcher document path when no explicit
// --config flag was given. The default file name is looked up in the working
// directory first, then in the tkapp configuration directory. If neither
// exists, the working-directory path is returned so the load failure is
// reported against the documented default location.
func SearchConfigFile() string {
	workDir := WorkDirOverride
	if workDir == "" {
		workDir, _ = os.Getwd()
	}

	local := filepath.Join(workDir, constants.ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	shared := filepath.Join(GetConfigDir(), constants.ConfigFileName)
	if _, err := os.Stat(shared); err == nil {
		return shared
	}

	return local
}

// GetExecDirectory returns the directory of the currently running executable.
func GetExecDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
