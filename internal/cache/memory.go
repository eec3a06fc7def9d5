package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process LRU cache with per-entry expiry.
type Memory struct {
	lru *lru.Cache
	now func() time.Time
}

// NewMemory returns an LRU cache holding at most size entries.
func NewMemory(size int) (*Memory, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Memory{lru: c, now: time.Now}, nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	e := v.(memoryEntry)
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.lru.Remove(key)
		return nil, ErrCacheMiss
	}
	return e.value, nil
}

// Set stores value; a non-positive ttl never expires.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.lru.Add(key, e)
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	return m.lru.Len()
}
