// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"
)

// Store persists resolved poster URLs keyed by movie id.
type Store interface {
	// Load returns every persisted entry. A store that does not exist yet
	// loads as empty without error.
	Load() (map[int]string, error)

	// Save persists the full set of entries.
	Save(entries map[int]string) error

	Close() error
}

// FileStore keeps the cache as a flat JSON object {"<id>": "<url>"}.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the cache file. A missing file is an empty cache; unparsable
// content or keys are returned as an error.
func (s *FileStore) Load() (map[int]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[int]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read poster cache: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode poster cache: %w", err)
	}

	entries := make(map[int]string, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("decode poster cache: invalid movie id %q", k)
		}
		entries[id] = v
	}
	return entries, nil
}

// Save rewrites the whole file through a temp file and rename so readers
// never observe a partial write.
func (s *FileStore) Save(entries map[int]string) error {
	raw := make(map[string]string, len(entries))
	for id, url := range entries {
		raw[strconv.Itoa(id)] = url
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode poster cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create poster cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp poster cache: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write poster cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close poster cache: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace poster cache: %w", err)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }
