package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/format"
	"github.com/shhac/postie/internal/httpclient"
	"github.com/shhac/postie/internal/logging"
	"github.com/shhac/postie/internal/model"
	"github.com/shhac/postie/internal/pipeline"
	"github.com/shhac/postie/internal/storage"
)

// Services are the shell-independent parts of Postie: the request pipeline,
// its single-flight guard and the saved environments.
type Services struct {
	Config       *Config
	Logger       *slog.Logger
	Pipeline     *pipeline.Pipeline
	Submitter    *pipeline.Submitter
	Environments *EnvironmentSession
}

// NewServices wires the pipeline and environment session over store.
func NewServices(cfg *Config, store storage.KeyValueStore, logger *slog.Logger) *Services {
	p := pipeline.New(httpclient.New(0, logger), logger)
	p.SetTimeout(cfg.RequestTimeout)

	return &Services{
		Config:       cfg,
		Logger:       logger,
		Pipeline:     p,
		Submitter:    pipeline.NewSubmitter(p),
		Environments: NewEnvironmentSession(storage.NewEnvironmentStore(store, logger), logger),
	}
}

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	state    *model.ApplicationState
	services *Services
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	// Initialize logger
	logger, err := logging.InitLogger("postie", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("initializing Postie application",
		slog.Bool("debug", cfg.Debug),
		slog.Duration("request_timeout", cfg.RequestTimeout),
	)

	a := NewWithStore(fyneApp, cfg, storage.NewPreferencesStore(fyneApp.Preferences()), logger)

	logger.Info("application initialized successfully")
	return a, nil
}

// NewWithStore builds an App over an explicit store and logger.
func NewWithStore(fyneApp fyne.App, cfg *Config, store storage.KeyValueStore, logger *slog.Logger) *App {
	services := NewServices(cfg, store, logger)
	state := model.NewApplicationState()

	// Show the saved URL of the initial environment
	env := services.Environments.Active()
	_ = state.Environment.Set(string(env))
	_ = state.Request.BaseURL.Set(services.Environments.SavedURL(env))

	return &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		state:    state,
		services: services,
	}
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}

// Services returns the shell-independent services.
func (a *App) Services() *Services {
	return a.services
}

// Submit snapshots the request form and runs it. The response panel is
// updated with the result either way; the returned error is for callers
// that want to surface it differently (busy, invalid form).
func (a *App) Submit(ctx context.Context) (domain.ResponseResult, error) {
	cfg, err := a.state.Request.Snapshot()
	if err != nil {
		return domain.ResponseResult{}, err
	}

	// Take the busy flag before touching the panel so a rejected call
	// leaves the running submission's state alone. Loading is reset
	// before the flag is released.
	release, err := a.services.Submitter.Begin()
	if err != nil {
		return domain.ResponseResult{}, err
	}
	defer release()

	_ = a.state.Response.Loading.Set(true)
	defer func() { _ = a.state.Response.Loading.Set(false) }()
	a.state.Response.Clear()
	a.state.Status.Set(model.StatusSending, fmt.Sprintf("Sending %s %s", cfg.Method,
		pipeline.BuildURL(cfg.BaseURL, cfg.Path, cfg.QueryString)))

	result, err := a.services.Submitter.Run(ctx, cfg)
	a.state.Response.Apply(result)

	if err != nil {
		a.state.Status.Set(model.StatusError, result.ErrorMessage)
	} else {
		a.state.Status.Set(model.StatusDone, strings.TrimSpace(fmt.Sprintf("%s  %s",
			format.StatusLabel(result.StatusCode), model.FormatDuration(result.Duration))))
	}
	return result, err
}

// SelectEnvironment switches the active environment and shows its saved
// base URL in the form, replacing whatever was typed.
func (a *App) SelectEnvironment(env domain.Environment) error {
	url, err := a.services.Environments.Select(env)
	if err != nil {
		return err
	}
	_ = a.state.Environment.Set(string(env))
	_ = a.state.Request.BaseURL.Set(url)
	return nil
}

// SaveBaseURL persists the form's base URL for the active environment.
func (a *App) SaveBaseURL() error {
	url, _ := a.state.Request.BaseURL.Get()
	return a.services.Environments.Save(url)
}

// SetRequestTimeout changes the timeout applied to later submissions.
func (a *App) SetRequestTimeout(d time.Duration) {
	a.services.Pipeline.SetTimeout(d)
	a.logger.Info("request timeout changed", slog.Duration("timeout", d))
}

// RequestTimeout returns the timeout applied to submissions.
func (a *App) RequestTimeout() time.Duration {
	return a.services.Pipeline.Timeout()
}
