// Package persistence implements the file-backed record store. Each
// collection is one JSON document on disk, rewritten whole on every
// mutation, mirroring a serialized key/value layout.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const namespace = "dovepeak"

// Store reads and writes namespaced JSON documents under a data directory.
// An empty directory path means storage is unavailable: reads yield empty
// documents and writes are accepted no-ops. A single mutex serializes all
// access; the store is safe for concurrent use.
type Store struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewStore creates a store rooted at dir, creating the directory if needed.
// Pass an empty dir to run with storage disabled.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return &Store{
		dir:    dir,
		logger: logger,
	}, nil
}

// Available reports whether the store has a backing directory
func (s *Store) Available() bool {
	return s.dir != ""
}

// read unmarshals the document stored under key into out. A missing file or
// unavailable store leaves out untouched, so callers see their zero value.
func (s *Store) read(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readLocked(key, out)
}

// write marshals value and atomically replaces the document under key
func (s *Store) write(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(key, value)
}

// mutate applies fn to the document under key and writes the result back,
// all under the store lock. fn receives the unmarshaled current value.
func (s *Store) mutate(key string, current any, fn func() (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readLocked(key, current); err != nil {
		return err
	}

	next, err := fn()
	if err != nil {
		return err
	}

	return s.writeLocked(key, next)
}

func (s *Store) readLocked(key string, out any) error {
	if !s.Available() {
		return nil
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt document: degrade to empty rather than wedge every caller
		s.logger.Warn("Discarding corrupt store document",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}

	return nil
}

func (s *Store) writeLocked(key string, value any) error {
	if !s.Available() {
		return nil
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	// Write to a temp file in the same directory, then rename over the
	// target so readers never observe a partially written document.
	tmp, err := os.CreateTemp(s.dir, namespace+"_*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}

	return nil
}

// Clear removes every document in the store's namespace
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Available() {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(s.dir, namespace+"_*.json"))
	if err != nil {
		return fmt.Errorf("failed to list store documents: %w", err)
	}

	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("failed to remove %s: %w", match, err)
		}
	}

	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, namespace+"_"+key+".json")
}
