// Package cache stores rendered compliance reports keyed by guidelines and text.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// ErrCacheMiss is returned by Get when no live entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented report cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key derives a stable cache key from the guideline codes and the text.
func Key(codes []string, text string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(codes, ",")))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

type noop struct{}

// NewNoop returns a cache that never stores anything.
func NewNoop() Cache { return noop{} }

func (noop) Get(context.Context, string) ([]byte, error) { return nil, ErrCacheMiss }

func (noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
