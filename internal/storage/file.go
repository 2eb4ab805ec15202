package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	storeFile      = "store.json"
	filePermission = 0644
	dirPermission  = 0755

	// corruptSuffix is appended to a store file that could not be parsed
	// when a write moves it aside.
	corruptSuffix = ".corrupt"
)

// errCorruptStore marks a store file that exists but is not a JSON object.
var errCorruptStore = errors.New("corrupt store file")

// FileStore implements KeyValueStore as a single JSON object file.
type FileStore struct {
	basePath string
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewFileStore creates a store that keeps its data under basePath.
func NewFileStore(basePath string, logger *slog.Logger) *FileStore {
	return &FileStore{
		basePath: basePath,
		logger:   logger,
	}
}

// GetItem reads one key from the store file.
func (s *FileStore) GetItem(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

// SetItem writes one key, rewriting the store file atomically.
func (s *FileStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.basePath, dirPermission); err != nil {
		return fmt.Errorf("create base directory: %w", err)
	}

	items, err := s.load()
	if errors.Is(err, errCorruptStore) {
		items, err = s.quarantine()
	}
	if err != nil {
		return err
	}
	items[key] = value

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	if err := atomicWriteFile(s.path(), data, filePermission); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	s.logger.Debug("saved item",
		slog.String("key", key),
		slog.String("path", s.path()))

	return nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.basePath, storeFile)
}

// load reads the store file. A missing file is an empty store. A file that
// does not parse is reported as errCorruptStore.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	items := map[string]string{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorruptStore, err)
	}
	return items, nil
}

// quarantine moves an unparsable store file to store.json.corrupt and
// returns an empty store, so the next write starts fresh without losing
// the old bytes.
func (s *FileStore) quarantine() (map[string]string, error) {
	aside := s.path() + corruptSuffix
	if err := os.Rename(s.path(), aside); err != nil {
		return nil, fmt.Errorf("move corrupt store file: %w", err)
	}
	s.logger.Warn("corrupt store file moved aside",
		slog.String("path", aside))
	return map[string]string{}, nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// Clean up temp file on any failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
