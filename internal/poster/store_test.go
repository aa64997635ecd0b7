// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "poster_cache.json")
	store := NewFileStore(path)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load() on missing file = %v, want empty", got)
	}

	want := map[int]string{
		19995: "https://image.tmdb.org/t/p/w500/avatar.jpg",
		285:   "https://image.tmdb.org/t/p/w500/pirates.jpg",
		0:     "https://image.tmdb.org/t/p/w500/zero.png",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err = NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the cache file, found %d entries", len(entries))
	}
}

func TestFileStoreStringKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cache.json")
	if err := NewFileStore(path).Save(map[int]string{42: "u"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"42":"u"}` {
		t.Errorf("file = %s, want string-keyed object", data)
	}
}

func TestFileStoreLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"corrupt json", `{"1": "a",`},
		{"non-integer key", `{"abc": "https://x/y.jpg"}`},
		{"wrong value type", `{"1": 5}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "cache.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := NewFileStore(path).Load(); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestBadgerStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}

	if err := store.Save(map[int]string{1: "a", 2: "b"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(map[int]string{1: "a", 2: "b", 3: "c"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := map[int]string{1: "a", 2: "b", 3: "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestBadgerStoreInMemory(t *testing.T) {
	t.Parallel()

	store, err := OpenBadgerStore("")
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	got, err := store.Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("Load() = %v, %v; want empty", got, err)
	}
}
