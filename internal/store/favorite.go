package store

import (
	"context"
	"sync"
)

// favoriteStore holds the favorited bank ids for the process lifetime.
// Favorites are intentionally not persisted.
type favoriteStore struct {
	mu  sync.RWMutex
	ids map[string]bool
}

func NewFavoriteStore() *favoriteStore {
	return &favoriteStore{ids: make(map[string]bool)}
}

// Toggle flips membership and reports whether the bank is now a favorite.
func (s *favoriteStore) Toggle(ctx context.Context, bankID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[bankID] {
		delete(s.ids, bankID)
		return false
	}
	s.ids[bankID] = true
	return true
}

func (s *favoriteStore) Has(ctx context.Context, bankID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[bankID]
}

func (s *favoriteStore) Set(ctx context.Context) map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		out[id] = true
	}
	return out
}
