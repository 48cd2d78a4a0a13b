// Package collection holds one authoritative in-memory slice per entity type
// and mirrors every mutation to its persister.
package collection

import (
	"context"
	"log/slog"
	"sync"
)

// Persister is the durable mirror of a collection.
type Persister[T any] interface {
	Load(ctx context.Context) []T
	Save(ctx context.Context, items []T) error
	Key() string
}

// Collection is safe for concurrent use. Mutations build a new slice, swap it in
// and save it while holding the write lock, so storage sees writes in order.
// A failed save is logged and the in-memory state is kept: memory wins.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	p     Persister[T]
}

// Open loads the initial state from p.
func Open[T any](ctx context.Context, p Persister[T]) *Collection[T] {
	return &Collection[T]{items: p.Load(ctx), p: p}
}

// Snapshot returns a copy of the current state.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Mutate applies fn to a copy of the state. fn returns the new state and whether
// anything changed; unchanged states are neither swapped nor saved.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(cur []T) ([]T, bool)) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, changed := fn(clone(c.items))
	if !changed {
		return clone(c.items)
	}
	c.items = next
	c.persist(ctx)
	return clone(c.items)
}

// ReplaceAll overwrites the whole collection.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) []T {
	return c.Mutate(ctx, func([]T) ([]T, bool) { return clone(items), true })
}

func (c *Collection[T]) persist(ctx context.Context) {
	if err := c.p.Save(ctx, c.items); err != nil {
		slog.Error("persist collection failed", "key", c.p.Key(), "items", len(c.items), "error", err)
	}
}

// Prepend returns item followed by items.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// RemoveWhere drops every element matching match and reports whether any was dropped.
func RemoveWhere[T any](items []T, match func(T) bool) ([]T, bool) {
	out := items[:0:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out, len(out) != len(items)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
