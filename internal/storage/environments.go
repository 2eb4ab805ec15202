package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shhac/postie/internal/domain"
	apperrors "github.com/shhac/postie/internal/errors"
)

// EnvironmentsKey is the fixed key holding the saved base-URL map.
const EnvironmentsKey = "postie.environments"

// EnvironmentStore persists base URLs per environment.
type EnvironmentStore struct {
	store  KeyValueStore
	logger *slog.Logger
}

// NewEnvironmentStore creates an environment store backed by store.
func NewEnvironmentStore(store KeyValueStore, logger *slog.Logger) *EnvironmentStore {
	return &EnvironmentStore{
		store:  store,
		logger: logger,
	}
}

// Load returns the saved URLs. Absent or corrupt data yields an empty URL
// for every environment; only a failing store returns an error, and the
// defaults are still returned alongside it.
func (s *EnvironmentStore) Load() (domain.EnvironmentURLs, error) {
	urls := domain.NewEnvironmentURLs()

	raw, ok, err := s.store.GetItem(EnvironmentsKey)
	if err != nil {
		return urls, fmt.Errorf("%w: load environments: %v", apperrors.ErrStorage, err)
	}
	if !ok {
		return urls, nil
	}

	var saved map[string]string
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Warn("ignoring corrupt saved environments", slog.Any("error", err))
		return urls, nil
	}

	for _, env := range domain.Environments {
		urls[env] = saved[string(env)]
	}

	s.logger.Debug("loaded environments")
	return urls, nil
}

// Save persists the full map, overwriting whatever was stored before.
func (s *EnvironmentStore) Save(urls domain.EnvironmentURLs) error {
	out := make(map[string]string, len(domain.Environments))
	for _, env := range domain.Environments {
		out[string(env)] = urls[env]
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal environments: %w", err)
	}
	if err := s.store.SetItem(EnvironmentsKey, string(data)); err != nil {
		return fmt.Errorf("%w: save environments: %v", apperrors.ErrStorage, err)
	}

	s.logger.Debug("saved environments")
	return nil
}
