// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/cinematch/internal/logging"
)

const badgerKeyPrefix = "poster:"

// BadgerStore persists posters in an embedded BadgerDB, one key per movie.
// Save only writes entries whose value changed since the last Load or Save.
type BadgerStore struct {
	db *badger.DB

	mu    sync.Mutex
	saved map[int]string
}

// OpenBadgerStore opens (or creates) a badger database at path. An empty
// path opens an in-memory database.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.SyncWrites = true

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open poster badger store: %w", err)
	}

	logging.Info().Str("path", path).Msg("Poster badger store opened")
	return &BadgerStore{db: db, saved: map[int]string{}}, nil
}

func badgerKey(id int) []byte {
	return []byte(badgerKeyPrefix + strconv.Itoa(id))
}

// Load iterates every poster key. Entries with malformed keys are skipped.
func (s *BadgerStore) Load() (map[int]string, error) {
	entries := make(map[int]string)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			id, err := strconv.Atoi(strings.TrimPrefix(key, badgerKeyPrefix))
			if err != nil {
				logging.Warn().Str("key", key).Msg("Skipping malformed poster key")
				continue
			}
			err = item.Value(func(val []byte) error {
				entries[id] = string(val)
				return nil
			})
			if err != nil {
				return fmt.Errorf("read poster %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate posters: %w", err)
	}

	s.mu.Lock()
	for id, url := range entries {
		s.saved[id] = url
	}
	s.mu.Unlock()
	return entries, nil
}

// Save upserts new or changed entries in a single write batch.
func (s *BadgerStore) Save(entries map[int]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	pending := make(map[int]string)
	for id, url := range entries {
		if prev, ok := s.saved[id]; ok && prev == url {
			continue
		}
		if err := wb.Set(badgerKey(id), []byte(url)); err != nil {
			return fmt.Errorf("stage poster %d: %w", id, err)
		}
		pending[id] = url
	}
	if len(pending) == 0 {
		return nil
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush posters: %w", err)
	}
	for id, url := range pending {
		s.saved[id] = url
	}
	return nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
