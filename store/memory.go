package libpack_store

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

const shardCount = 32 // must be a power of 2

type entry struct {
	expiresAt time.Time
	value     string
}

type shard struct {
	entries map[string]entry
	sync.RWMutex
}

// Memory is an in-process Store split into shards. Entries live until deleted unless
// the store was created with a positive ttl.
type Memory struct {
	stop   chan struct{}
	shards [shardCount]*shard
	ttl    time.Duration
	once   sync.Once
}

func NewMemory(ttl time.Duration) *Memory {
	m := &Memory{ttl: ttl, stop: make(chan struct{})}
	for i := 0; i < shardCount; i++ {
		m.shards[i] = &shard{entries: make(map[string]entry)}
	}
	if ttl > 0 {
		go m.cleanupRoutine()
	}
	return m
}

func (m *Memory) getShard(key string) *shard {
	hash := fnv.New32a()
	hash.Write([]byte(key))
	return m.shards[hash.Sum32()&(shardCount-1)]
}

func (m *Memory) cleanupRoutine() {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.CleanExpiredEntries()
		case <-m.stop:
			return
		}
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s := m.getShard(key)
	s.RLock()
	e, ok := s.entries[key]
	s.RUnlock()
	if !ok || m.expired(e, time.Now()) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	e := entry{value: value}
	if m.ttl > 0 {
		e.expiresAt = time.Now().Add(m.ttl)
	}
	s := m.getShard(key)
	s.Lock()
	s.entries[key] = e
	s.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	s := m.getShard(key)
	s.Lock()
	delete(s.entries, key)
	s.Unlock()
	return nil
}

func (m *Memory) CleanExpiredEntries() {
	now := time.Now()
	for _, s := range m.shards {
		s.Lock()
		for key, e := range s.entries {
			if m.expired(e, now) {
				delete(s.entries, key)
			}
		}
		s.Unlock()
	}
}

func (m *Memory) expired(e entry, now time.Time) bool {
	return !e.expiresAt.IsZero() && e.expiresAt.Before(now)
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (m *Memory) Stop() {
	m.once.Do(func() { close(m.stop) })
}
