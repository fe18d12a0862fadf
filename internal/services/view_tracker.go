package services

import (
	"context"
	"sync"

	"weddy/pkg/utils"
)

// ViewTracker remembers the active request per viewer and scope. Starting a
// new one cancels the previous, whose result is then discarded.
type ViewTracker struct {
	mu     sync.Mutex
	seq    uint64
	active map[string]activeView
}

type activeView struct {
	id     uint64
	cancel context.CancelFunc
}

func NewViewTracker() *ViewTracker {
	return &ViewTracker{active: make(map[string]activeView)}
}

func (t *ViewTracker) begin(parent context.Context, key string) (context.Context, func() bool) {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	t.seq++
	id := t.seq
	if prev, ok := t.active[key]; ok {
		prev.cancel()
	}
	t.active[key] = activeView{id: id, cancel: cancel}
	t.mu.Unlock()

	finish := func() bool {
		t.mu.Lock()
		defer t.mu.Unlock()
		cur, ok := t.active[key]
		current := ok && cur.id == id
		if current {
			delete(t.active, key)
		}
		cancel()
		return current
	}
	return ctx, finish
}

// Track runs fn as the viewer's active request for scope. It returns
// utils.ErrStaleSubject when a newer request replaced this one before fn
// finished. An empty viewer is not tracked.
func Track[T any](t *ViewTracker, ctx context.Context, viewer, scope string, fn func(context.Context) (T, error)) (T, error) {
	if viewer == "" || t == nil {
		return fn(ctx)
	}
	ctx, finish := t.begin(ctx, scope+"|"+viewer)
	out, err := fn(ctx)
	if !finish() {
		var zero T
		return zero, utils.ErrStaleSubject
	}
	return out, err
}

func (t *ViewTracker) activeCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}
