// Package memcache holds short-lived process-local state with expiry.
package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a typed TTL map. Expired entries are never returned.
type Store[T any] interface {
	Set(key string, value T)
	Get(key string) (T, bool)
	Delete(key string)
	// Touch re-arms the TTL of an existing entry.
	Touch(key string) bool
	Len() int
}

type ttlStore[T any] struct {
	c   *gocache.Cache
	ttl time.Duration
}

// New creates a Store whose entries live for ttl. Expired entries are purged
// every cleanup interval.
func New[T any](ttl, cleanup time.Duration) Store[T] {
	return &ttlStore[T]{c: gocache.New(ttl, cleanup), ttl: ttl}
}

func (s *ttlStore[T]) Set(key string, value T) {
	s.c.Set(key, value, s.ttl)
}

func (s *ttlStore[T]) Get(key string) (T, bool) {
	var zero T
	v, ok := s.c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

func (s *ttlStore[T]) Delete(key string) {
	s.c.Delete(key)
}

func (s *ttlStore[T]) Touch(key string) bool {
	v, ok := s.c.Get(key)
	if !ok {
		return false
	}
	s.c.Set(key, v, s.ttl)
	return true
}

func (s *ttlStore[T]) Len() int {
	return s.c.ItemCount()
}
