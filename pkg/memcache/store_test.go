package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetGetDelete(t *testing.T) {
	s := New[string](time.Minute, time.Minute)

	s.Set("a", "1")
	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, s.Len())

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	s := New[int](20*time.Millisecond, time.Hour)
	s.Set("k", 7)
	assert.True(t, s.Touch("k"))

	time.Sleep(40 * time.Millisecond)
	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.False(t, s.Touch("k"))
}
