package memcache

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so tests can drive expiry deterministically.
type Clock func() time.Time

// TTLStore is a process-local key/value cache with recency-based expiry.
// Expired entries are treated as misses; they are overwritten in place on the
// next Set rather than proactively evicted. Concurrent writers to the same
// key last-write-win.
type TTLStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  Clock
	data map[string]entry
}

type entry struct {
	payload  []byte
	storedAt time.Time
}

func NewTTLStore(ttl time.Duration, now Clock) *TTLStore {
	if now == nil {
		now = time.Now
	}
	return &TTLStore{
		ttl:  ttl,
		now:  now,
		data: make(map[string]entry),
	}
}

func (s *TTLStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.payload, true
}

func (s *TTLStore) Set(key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{payload: payload, storedAt: s.now()}
}
