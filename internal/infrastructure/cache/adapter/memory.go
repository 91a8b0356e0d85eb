package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/cache/port"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a process-local port.Cache used when REDIS_URL is unset and in tests.
// Expired keys are dropped lazily on read.
type MemoryCache struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]memoryEntry), now: time.Now}
}

var _ port.Cache = (*MemoryCache)(nil)

func (m *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[key]
	if !ok {
		return "", port.ErrMiss
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.items, key)
		return "", port.ErrMiss
	}
	return e.value, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = e
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Del(ctx context.Context, keys ...string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.items[k]; ok {
			delete(m.items, k)
			n++
		}
	}
	return n, nil
}

func (m *MemoryCache) Ping(ctx context.Context) error { return ctx.Err() }

func (m *MemoryCache) Close() error { return nil }
