package app

import (
	"log/slog"
	"sync"

	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/storage"
)

// EnvironmentSession tracks the active environment and the saved base URL
// for each environment.
//
// Select only re-displays what was saved. A base URL edited but not saved
// is lost when the user switches away; callers save explicitly.
type EnvironmentSession struct {
	store  *storage.EnvironmentStore
	logger *slog.Logger

	mu     sync.Mutex
	active domain.Environment
	saved  domain.EnvironmentURLs
}

// NewEnvironmentSession loads saved URLs from store. A storage failure is
// logged and the session starts with empty URLs.
func NewEnvironmentSession(store *storage.EnvironmentStore, logger *slog.Logger) *EnvironmentSession {
	saved, err := store.Load()
	if err != nil {
		logger.Warn("could not load saved environments", slog.Any("error", err))
	}

	return &EnvironmentSession{
		store:  store,
		logger: logger,
		active: domain.EnvDevelopment,
		saved:  saved,
	}
}

// Active returns the selected environment.
func (s *EnvironmentSession) Active() domain.Environment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Select makes env active and returns its saved base URL ("" if none).
func (s *EnvironmentSession) Select(env domain.Environment) (string, error) {
	if _, err := domain.ParseEnvironment(string(env)); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = env
	return s.saved.Get(env), nil
}

// SavedURL returns the saved base URL for env.
func (s *EnvironmentSession) SavedURL(env domain.Environment) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.Get(env)
}

// Saved returns a copy of every saved URL.
func (s *EnvironmentSession) Saved() domain.EnvironmentURLs {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := domain.NewEnvironmentURLs()
	for env, url := range s.saved {
		out[env] = url
	}
	return out
}

// Save stores url as the base URL of the active environment.
func (s *EnvironmentSession) Save(url string) error {
	return s.SaveFor(s.Active(), url)
}

// SaveFor stores url as the base URL of env and persists the full map.
// The in-memory map only changes once the write succeeds.
func (s *EnvironmentSession) SaveFor(env domain.Environment, url string) error {
	if _, err := domain.ParseEnvironment(string(env)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.saved.With(env, url)
	if err := s.store.Save(next); err != nil {
		s.logger.Error("failed to save environment",
			slog.String("environment", string(env)),
			slog.Any("error", err),
		)
		return err
	}
	s.saved = next

	s.logger.Info("environment saved", slog.String("environment", string(env)))
	return nil
}
