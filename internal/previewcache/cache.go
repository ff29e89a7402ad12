// Package previewcache memoizes preview lookups for the length of a run.
//
// Projects often share a host or even a URL (a monorepo linked from several
// entries). The cache keeps one fetch per URL: concurrent callers for the same
// key share a single in-flight call through singleflight, and completed
// values land in a ristretto cache. Errors are never stored, so a failed URL
// is retried by the next caller that asks for it.
package previewcache

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the number of entries kept when none is configured.
const DefaultCapacity = 1024

// Sentinel errors for cache operations.
var (
	// ErrClosed is returned by Do after Close.
	ErrClosed = errors.New("preview cache closed")

	// ErrPanic wraps a panic raised by the function given to Do.
	ErrPanic = errors.New("preview lookup panicked")
)

// Cache is a per-run memo of values keyed by URL.
type Cache[V any] struct {
	c      *ristretto.Cache[string, V]
	group  singleflight.Group
	closed chan struct{}
}

// New creates a cache holding up to capacity entries (each entry costs 1).
func New[V any](capacity int64) (*Cache[V], error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters:        capacity * 10, // ~10x expected items
		MaxCost:            capacity,
		BufferItems:        64,
		IgnoreInternalCost: true, // entries are counted, not sized
	})
	if err != nil {
		return nil, fmt.Errorf("creating preview cache: %w", err)
	}
	return &Cache[V]{c: c, closed: make(chan struct{})}, nil
}

// Do returns the cached value for key or calls fn once to produce it.
// Callers waiting on the same key share fn's result, and fn runs with the
// context of the caller that started it. shared reports whether the value
// came from the cache or another caller's in-flight call. A panic in fn is
// returned as an error wrapping ErrPanic and is not cached.
func (c *Cache[V]) Do(ctx context.Context, key string, fn func(context.Context) (V, error)) (v V, shared bool, err error) {
	select {
	case <-c.closed:
		return v, false, ErrClosed
	default:
	}

	if cached, ok := c.c.Get(key); ok {
		return cached, true, nil
	}

	ch := c.group.DoChan(key, func() (res any, err error) {
		// singleflight re-panics on its own goroutine, where no caller can
		// recover.
		defer func() {
			if r := recover(); r != nil {
				res, err = nil, fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		// A call that finished between our Get and DoChan has already
		// stored its value.
		if cached, ok := c.c.Get(key); ok {
			return cached, nil
		}
		val, err := fn(ctx)
		if err != nil {
			return val, err
		}
		c.c.Set(key, val, 1)
		c.c.Wait()
		return val, nil
	})

	select {
	case <-ctx.Done():
		return v, false, ctx.Err()
	case res := <-ch:
		if res.Val != nil {
			v = res.Val.(V)
		}
		return v, res.Shared, res.Err
	}
}

// Close releases the cache. Safe to call more than once.
func (c *Cache[V]) Close() {
	select {
	case <-c.closed:
		return
	default:
		close(c.closed)
	}
	c.c.Close()
}
