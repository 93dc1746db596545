// Package cas implements the persistent store of lock generation state.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/podfiler/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is the state file used when podfiler runs from a project root.
const DefaultPath = ".podfiler/state.json"

var _ ports.LockInfoStore = (*Store)(nil)

// Store implements ports.LockInfoStore using a flat JSON file keyed by lock path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.LockInfo
}

// NewStore creates a new LockInfoStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.LockInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", s.path)
	}

	return nil
}

// save writes the whole cache to disk. The caller must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the lock info recorded for a lock file.
func (s *Store) Get(lockPath string) (*domain.LockInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[filepath.Clean(lockPath)]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the lock info and persists the store.
func (s *Store) Put(info domain.LockInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[filepath.Clean(info.LockPath)] = info
	return s.save()
}
