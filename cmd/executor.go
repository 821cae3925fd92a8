package cmd

import (
	"context"
	"fmt"
	"os"

	"tkapp/internal/config"
	"tkapp/internal/launch"
	"tkapp/internal/logger"
	"tkapp/internal/paths"
	"tkapp/internal/tui"
)

// Execute runs the launcher for the parsed options and returns the process
// exit code. A configuration-load failure is still exit 0: the UI starts
// with the default (About-only) configuration and reports the error in a
// dialog, the same "never crash" behavior the original launcher had. Only a
// UI that cannot start at all exits non-zero.
func Execute(ctx context.Context, opts Options) int {
	if opts.ShowHelp {
		fmt.Print(Usage())
		return 0
	}
	if opts.ShowVersion {
		fmt.Println(VersionString())
		return 0
	}

	if opts.Debug {
		logger.SetLevel(logger.LevelDebug)
	} else if opts.Verbose {
		logger.SetLevel(logger.LevelInfo)
	}

	settings := config.LoadSettings()

	// An explicit --config path is used verbatim; the default name is
	// searched in the working directory, then the config directory.
	configPath := opts.ConfigPath
	if !opts.ConfigSet {
		configPath = paths.SearchConfigFile()
	}

	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		logger.Error(ctx, "%v", loadErr)
	} else {
		logger.Info(ctx, "Loaded configuration from '%s' (%d categories, %d apps)",
			configPath, len(cfg.Categories), cfg.EntryCount())
	}

	checkIcon(ctx, cfg.Icon)

	dispatcher := launch.New(cfg, settings)

	if err := tui.Start(ctx, cfg, settings, dispatcher, loadErr); err != nil {
		// The only non-zero exit: no UI could be shown at all
		logger.Fatal(ctx, "UI failed: %v", err)
	}

	return 0
}

// checkIcon logs when the configured icon file cannot be used. Never fatal;
// a terminal cannot display it anyway.
func checkIcon(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		logger.Warn(ctx, "Icon file '%s' not found.", path)
	}
}
