// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestLRU_GetAdd(t *testing.T) {
	t.Parallel()

	c := NewLRU[[]string](2)
	c.Add("av", []string{"Avatar"})
	c.Add("ti", []string{"Titanic"})

	if got, ok := c.Get("av"); !ok || got[0] != "Avatar" {
		t.Fatalf("Get(av) = %v, %v", got, ok)
	}

	// "ti" is now least recently used and should be evicted.
	c.Add("up", []string{"Up"})
	if _, ok := c.Get("ti"); ok {
		t.Error("expected ti to be evicted")
	}
	if _, ok := c.Get("av"); !ok {
		t.Error("expected av to survive eviction")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	hits, misses := c.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 1", hits, misses)
	}
}

func TestLRU_Replace(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](0)
	c.Add("k", 1)
	c.Add("k", 2)
	if v, _ := c.Get("k"); v != 2 {
		t.Errorf("Get(k) = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa((g*31 + i) % 100)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
