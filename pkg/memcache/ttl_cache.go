package mem

import (
	"sync"
	"time"
)

// Store is a TTL map safe for concurrent use.
type Store[V any] interface {
	Set(key string, value V, ttl time.Duration)

	// Get returns the value for key if it has not expired.
	Get(key string) (V, bool)

	Delete(key string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLCache[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time
}

func NewTTLCache[V any]() *TTLCache[V] {
	return &TTLCache[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

func (s *TTLCache[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLCache[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		s.Delete(key) // cleanup expired
		return zero, false
	}
	return e.value, true
}

func (s *TTLCache[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *TTLCache[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
