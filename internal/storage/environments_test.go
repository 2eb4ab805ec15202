package storage

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/postie/internal/domain"
	apperrors "github.com/shhac/postie/internal/errors"
	"github.com/shhac/postie/internal/logging"
)

// failingStore returns err from every call.
type failingStore struct{ err error }

func (f failingStore) GetItem(string) (string, bool, error) { return "", false, f.err }
func (f failingStore) SetItem(string, string) error         { return f.err }

func TestEnvironmentStore_LoadDefaults(t *testing.T) {
	envs := NewEnvironmentStore(NewMemoryStore(), logging.NewNopLogger())

	urls, err := envs.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.EnvironmentURLs{
		domain.EnvDevelopment: "",
		domain.EnvProduction:  "",
	}, urls)
}

func TestEnvironmentStore_SaveLoadRoundTrip(t *testing.T) {
	maps := []domain.EnvironmentURLs{
		{domain.EnvDevelopment: "http://localhost:3000", domain.EnvProduction: "https://api.example.com"},
		{domain.EnvDevelopment: "", domain.EnvProduction: "https://api.example.com"},
		{domain.EnvDevelopment: "with \"quotes\" and ünïcode", domain.EnvProduction: ""},
		{domain.EnvDevelopment: "", domain.EnvProduction: ""},
	}

	stores := map[string]KeyValueStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(t.TempDir(), logging.NewNopLogger()),
	}

	for name, kv := range stores {
		t.Run(name, func(t *testing.T) {
			envs := NewEnvironmentStore(kv, logging.NewNopLogger())
			for _, want := range maps {
				require.NoError(t, envs.Save(want))
				got, err := envs.Load()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestEnvironmentStore_PreferencesRoundTrip(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	envs := NewEnvironmentStore(NewPreferencesStore(app.Preferences()), logging.NewNopLogger())

	want := domain.EnvironmentURLs{
		domain.EnvDevelopment: "http://10.0.2.2:3000",
		domain.EnvProduction:  "https://api.example.com",
	}
	require.NoError(t, envs.Save(want))

	got, err := envs.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvironmentStore_SaveOverwrites(t *testing.T) {
	kv := NewMemoryStore()
	envs := NewEnvironmentStore(kv, logging.NewNopLogger())

	require.NoError(t, envs.Save(domain.EnvironmentURLs{domain.EnvDevelopment: "a", domain.EnvProduction: "b"}))
	require.NoError(t, envs.Save(domain.EnvironmentURLs{domain.EnvDevelopment: "c"}))

	got, err := envs.Load()
	require.NoError(t, err)
	assert.Equal(t, "c", got.Get(domain.EnvDevelopment))
	assert.Equal(t, "", got.Get(domain.EnvProduction))
}

func TestEnvironmentStore_CorruptDataFallsBack(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.SetItem(EnvironmentsKey, "{not json"))

	urls, err := NewEnvironmentStore(kv, logging.NewNopLogger()).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewEnvironmentURLs(), urls)
}

func TestEnvironmentStore_DropsUnknownKeys(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.SetItem(EnvironmentsKey, `{"development":"http://dev","staging":"http://stage"}`))

	urls, err := NewEnvironmentStore(kv, logging.NewNopLogger()).Load()
	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Equal(t, "http://dev", urls.Get(domain.EnvDevelopment))
	assert.Equal(t, "", urls.Get(domain.EnvProduction))
}

func TestEnvironmentStore_StoreFailure(t *testing.T) {
	envs := NewEnvironmentStore(failingStore{err: errors.New("disk full")}, logging.NewNopLogger())

	urls, err := envs.Load()
	assert.True(t, errors.Is(err, apperrors.ErrStorage))
	assert.Equal(t, domain.NewEnvironmentURLs(), urls)

	err = envs.Save(domain.NewEnvironmentURLs())
	assert.True(t, errors.Is(err, apperrors.ErrStorage))
	assert.Contains(t, err.Error(), "disk full")
}

func TestPreferencesStore_EmptyIsAbsent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	store := NewPreferencesStore(app.Preferences())
	_, ok, err := store.GetItem("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetItem("present", "v"))
	value, ok, err := store.GetItem("present")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	_, ok, _ := store.GetItem("k")
	assert.False(t, ok)

	require.NoError(t, store.SetItem("k", ""))
	value, ok, _ := store.GetItem("k")
	assert.True(t, ok)
	assert.Equal(t, "", value)
}
