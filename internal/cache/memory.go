package cache

import (
	"context"
	"sync"
	"time"
)

// cleanupInterval is how often expired in-memory entries are swept.
const cleanupInterval = time.Minute

type memoryEntry struct {
	entry     *Entry
	expiresAt time.Time
}

// MemoryStore is an in-process Store with per-entry TTL. It serves
// single-instance deployments and tests; multi-instance deployments should use
// RedisStore so cache hits survive across replicas.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

// NewMemoryStore creates a MemoryStore and starts its cleanup goroutine.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{items: make(map[string]memoryEntry)}
	go s.startCleanup()
	return s
}

// Get returns the entry for key if present and unexpired.
func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok || time.Now().After(item.expiresAt) {
		return nil, false, nil
	}
	return item.entry, true, nil
}

// SetEx stores the entry under key, expiring after ttl.
func (s *MemoryStore) SetEx(_ context.Context, key string, entry *Entry, ttl time.Duration) error {
	s.mu.Lock()
	s.items[key] = memoryEntry{entry: entry, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) startCleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *MemoryStore) cleanup() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, item := range s.items {
		if now.After(item.expiresAt) {
			delete(s.items, key)
		}
	}
}
