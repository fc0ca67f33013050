// Package modestore keeps the per-user report mode selection.
// The association lives for the process lifetime and is never evicted.
package modestore

import (
	"sync"

	"inncheck/internal/domain"
)

// Store is a concurrency-safe map from user id to selected mode.
// Upserts are atomic per key; concurrent writes to the same key
// resolve last-write-wins.
type Store struct {
	mu    sync.RWMutex
	modes map[int64]domain.Mode
}

// New creates an empty store.
func New() *Store {
	return &Store{modes: make(map[int64]domain.Mode)}
}

// Get returns the user's mode, or false if the user never selected one.
func (s *Store) Get(userID int64) (domain.Mode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mode, ok := s.modes[userID]
	return mode, ok
}

// Set upserts the user's mode.
func (s *Store) Set(userID int64, mode domain.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[userID] = mode
}
