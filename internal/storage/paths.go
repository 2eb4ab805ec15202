package storage

import (
	"os"
	"path/filepath"
)

const appDir = ".postie"

// DefaultStoragePath returns the default storage location for Postie
// Platform-specific paths:
//   - macOS/Linux: ~/.postie
//   - Windows: %USERPROFILE%\.postie
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}
