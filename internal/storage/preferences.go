package storage

import "fyne.io/fyne/v2"

// PreferencesStore implements KeyValueStore on top of Fyne app preferences,
// the device-local storage of the app shell.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps prefs.
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// GetItem returns the preference for key. Fyne does not distinguish a missing
// key from an empty string, so "" is reported as absent.
func (p *PreferencesStore) GetItem(key string) (string, bool, error) {
	value := p.prefs.String(key)
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// SetItem stores value under key.
func (p *PreferencesStore) SetItem(key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}
