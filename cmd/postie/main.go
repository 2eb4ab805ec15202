package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"

	postieApp "github.com/shhac/postie/internal/app"
	"github.com/shhac/postie/internal/ui"
	"github.com/shhac/postie/internal/ui/settings"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting Postie")

	// Load configuration from environment
	cfg := postieApp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.postie.client")
	ui.LoadThemePreference(fyneApp)

	a, err := postieApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// A timeout saved in preferences wins over the environment
	a.SetRequestTimeout(settings.RequestTimeout(fyneApp.Preferences(), cfg.RequestTimeout))

	mainWindow := ui.NewMainWindow(fyneApp, a)

	// Run the application (blocking)
	a.Run(mainWindow.Window())

	a.Logger().Info("application shutdown complete")
	return nil
}
