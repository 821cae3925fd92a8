package tui

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone/v2"
	"github.com/pkg/browser"

	"tkapp/internal/config"
	"tkapp/internal/launch"
	"tkapp/internal/logger"
)

// Start runs the launcher UI until the user quits. A non-nil startupErr is
// the configuration-load failure to show once at startup; the UI still runs,
// with only the About tab when the configuration is empty. Already-launched
// child processes are left alone when the UI exits.
func Start(ctx context.Context, cfg config.LauncherConfig, settings config.AppSettings, dispatcher *launch.Dispatcher, startupErr error) error {
	logger.Info(ctx, "TUI starting...")

	// Global zone manager for mouse support
	zone.NewGlobal()

	model := NewModel(ctx, cfg, settings, dispatcher, startupErr)

	p := tea.NewProgram(model)
	_, err := p.Run()

	// Reset terminal colors on exit to prevent "bleeding" into the shell prompt
	fmt.Print("\x1b[0m\n")
	return err
}

// openURL opens the URL in the default browser, with the helper's own output
// silenced so it cannot scribble over the UI.
func openURL(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}
