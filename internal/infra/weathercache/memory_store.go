package weathercache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
)

type entry struct {
	obs       wardrobe.Observation
	expiresAt time.Time
}

// MemoryStore is an in-memory observation cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get implements wardrobe.WeatherCache.
func (s *MemoryStore) Get(_ context.Context, location string) (wardrobe.Observation, bool, error) {
	if location == "" {
		return wardrobe.Observation{}, false, nil
	}
	s.mu.RLock()
	record, ok := s.entries[location]
	s.mu.RUnlock()
	if !ok {
		return wardrobe.Observation{}, false, nil
	}
	if s.hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.entries, location)
		s.mu.Unlock()
		return wardrobe.Observation{}, false, nil
	}
	return record.obs, true, nil
}

// Set caches the observation with optional TTL.
func (s *MemoryStore) Set(_ context.Context, location string, obs wardrobe.Observation, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.entries[location] = entry{obs: obs, expiresAt: exp}
	return nil
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ wardrobe.WeatherCache = (*MemoryStore)(nil)
