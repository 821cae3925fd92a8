package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"tkapp/cmd"
	"tkapp/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx := context.Background()

	// Defer cleanup to ensure it runs even if we return early or panic
	defer cleanup(ctx)

	// Recover from logger.FatalError to ensure cleanup runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				// This panic was intentional from logger.Fatal
				exitCode = 1
			} else {
				// Re-panic for other errors
				panic(r)
			}
		}
	}()

	// Parse command line arguments
	opts, err := cmd.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		return 2
	}

	// Hand off execution to the cmd package
	return cmd.Execute(ctx, opts)
}

func cleanup(ctx context.Context) {
	logger.Debug(ctx, "Cleaning up...")
	logger.Cleanup()
}
