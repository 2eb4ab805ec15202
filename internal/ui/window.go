package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/postie/internal/domain"
	apperrors "github.com/shhac/postie/internal/errors"
	"github.com/shhac/postie/internal/model"
	uierrors "github.com/shhac/postie/internal/ui/errors"
	"github.com/shhac/postie/internal/ui/request"
	"github.com/shhac/postie/internal/ui/response"
	"github.com/shhac/postie/internal/ui/settings"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	Submit(ctx context.Context) (domain.ResponseResult, error)
	SelectEnvironment(env domain.Environment) error
	SaveBaseURL() error
	SetRequestTimeout(d time.Duration)
	RequestTimeout() time.Duration
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	fyneApp fyne.App
	window  fyne.Window
	state   *model.ApplicationState
	logger  *slog.Logger
	app     AppController

	// Panel widgets
	requestPanel  *request.RequestPanel
	responsePanel *response.ResponsePanel
	statusBar     *uierrors.StatusBar
}

// NewMainWindow creates a new main window with the application layout.
// The window is split vertically with the request form on top, the
// response below and a status bar at the bottom.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Postie")

	mw := &MainWindow{
		fyneApp: fyneApp,
		window:  window,
		state:   app.State(),
		logger:  app.Logger(),
		app:     app,
	}

	mw.requestPanel = request.NewRequestPanel(mw.state.Request, mw.state.Environment, mw.logger)
	mw.responsePanel = response.NewResponsePanel(mw.state.Response, fyneApp.Clipboard())
	mw.statusBar = uierrors.NewStatusBar(mw.state.Status)

	// Wire up callbacks
	mw.wireCallbacks()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	// Set up the window content
	mw.SetContent()

	// Set default window size
	window.Resize(fyne.NewSize(900, 800))

	return mw
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	w.requestPanel.SetOnSend(w.handleSendRequest)
	w.requestPanel.SetOnSaveBaseURL(w.handleSaveBaseURL)
	w.requestPanel.SetOnEnvironmentChange(w.handleEnvironmentChange)

	// The Send button stays disabled while a request is in flight
	w.state.Response.Loading.AddListener(binding.NewDataListener(func() {
		loading, _ := w.state.Response.Loading.Get()
		w.requestPanel.SetBusy(loading)
	}))
}

// handleSendRequest runs one submission off the UI goroutine
func (w *MainWindow) handleSendRequest() {
	go func() {
		_, err := w.app.Submit(context.Background())
		switch {
		case err == nil:
			return
		case errors.Is(err, apperrors.ErrInvalidRequestBody), errors.Is(err, apperrors.ErrRequestFailed):
			// Already shown in the response panel
			return
		case errors.Is(err, apperrors.ErrBusy):
			w.logger.Debug("send ignored, request in flight")
			return
		}

		w.logger.Error("send failed", slog.Any("error", err))
		fyne.Do(func() {
			uierrors.ShowError(err, w.window)
		})
	}()
}

// handleSaveBaseURL persists the base URL of the active environment
func (w *MainWindow) handleSaveBaseURL() {
	if err := w.app.SaveBaseURL(); err != nil {
		uierrors.ShowError(err, w.window)
		return
	}
	env, _ := w.state.Environment.Get()
	w.state.Status.Set(model.StatusDone, "Saved base URL for "+env)
}

// handleEnvironmentChange shows the saved base URL of env; unsaved edits are dropped
func (w *MainWindow) handleEnvironmentChange(env domain.Environment) {
	if err := w.app.SelectEnvironment(env); err != nil {
		uierrors.ShowError(err, w.window)
	}
}

func (w *MainWindow) showPreferences() {
	settings.ShowPreferencesDialog(w.fyneApp, w.window, w.app.RequestTimeout(), settings.PreferencesCallbacks{
		OnThemeChange:   func(mode string) { ApplyTheme(w.fyneApp, mode) },
		OnTimeoutChange: w.app.SetRequestTimeout,
	})
}

func (w *MainWindow) setupMainMenu() {
	w.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Preferences…", w.showPreferences),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
			fyne.NewMenuItem("About Postie", func() { ShowAboutDialog(w.window) }),
		),
	))
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌──────────────────────────────┐
//	│      Request Panel           │
//	├──────────────────────────────┤
//	│      Response Panel          │
//	├──────────────────────────────┤
//	│      Status Bar              │
//	└──────────────────────────────┘
func (w *MainWindow) SetContent() {
	split := container.NewVSplit(
		w.requestPanel,  // top half
		w.responsePanel, // bottom half
	)
	split.SetOffset(0.45)

	w.window.SetContent(container.NewBorder(
		nil,         // top
		w.statusBar, // bottom (status bar)
		nil,         // left
		nil,         // right
		split,
	))
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
