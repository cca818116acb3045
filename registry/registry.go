// Package registry manages structure lifecycles: process-wide singletons
// for parameterless structures and parameter-keyed caches for families of
// structures such as ℤ/nℤ.
//
// Cache.Get is an atomic get-or-create: concurrent callers asking for the
// same key observe exactly one constructed instance, and no caller ever
// observes a partially constructed one. Constructor errors are returned to
// every waiting caller and are not cached.
//
// Complexity:
//
//   - Singleton: O(1) after first use
//   - Cache.Get: O(1) amortized; construction runs once per key
package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Singleton returns a function that lazily builds and then always returns one value.
func Singleton[S any](build func() S) func() S {
	return sync.OnceValue(build)
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	name   string
	logger *zap.Logger
}

// WithName labels the cache in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger for construction events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Cache holds one S per key K.
type Cache[K comparable, S any] struct {
	build  func(K) (S, error)
	items  sync.Map // K → S
	flight singleflight.Group
	name   string
	logger atomic.Pointer[zap.Logger]
}

// NewCache returns a cache that builds missing entries with build.
func NewCache[K comparable, S any](build func(K) (S, error), opts ...Option) *Cache[K, S] {
	o := options{name: "cache", logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Cache[K, S]{build: build, name: o.name}
	c.logger.Store(o.logger)
	return c
}

// SetLogger replaces the logger for construction events. A nil logger is ignored.
func (c *Cache[K, S]) SetLogger(l *zap.Logger) {
	if l != nil {
		c.logger.Store(l)
	}
}

// Get returns the entry for key, building it on first request.
func (c *Cache[K, S]) Get(key K) (S, error) {
	// 1. Fast path
	if v, ok := c.items.Load(key); ok {
		return v.(S), nil
	}
	// 2. One builder per key; latecomers share its result
	v, err, _ := c.flight.Do(flightKey(key), func() (any, error) {
		if v, ok := c.items.Load(key); ok {
			return v, nil
		}
		s, err := c.build(key)
		if err != nil {
			c.logger.Load().Debug("construction failed",
				zap.String("cache", c.name), zap.Any("key", key), zap.Error(err))
			return nil, err
		}
		actual, loaded := c.items.LoadOrStore(key, s)
		if !loaded {
			c.logger.Load().Debug("constructed",
				zap.String("cache", c.name), zap.Any("key", key))
		}
		return actual, nil
	})
	if err != nil {
		var zero S
		return zero, err
	}
	return v.(S), nil
}

// MustGet is Get for keys known to be valid. It panics on error.
func (c *Cache[K, S]) MustGet(key K) S {
	s, err := c.Get(key)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of constructed entries.
func (c *Cache[K, S]) Len() int {
	n := 0
	c.items.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Range calls fn for every entry until fn returns false. Order is unspecified.
func (c *Cache[K, S]) Range(fn func(K, S) bool) {
	c.items.Range(func(k, v any) bool {
		return fn(k.(K), v.(S))
	})
}

func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%T:%#v", key, key)
}
