package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Cache stores opaque bytes by key. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

const (
	PrefixServices  = "services:"
	PrefixProviders = "providers:"
)

// Remember returns the cached value for key or loads, stores and returns it.
// Cache failures never fail the call; they only cost a reload.
func Remember[T any](
	ctx context.Context,
	c Cache,
	key string,
	ttl time.Duration,
	load func() (T, error),
) (T, error) {

	if raw, ok, err := c.Get(ctx, key); err != nil {
		log.Printf("cache get %s: %v", key, err)
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := c.Set(ctx, key, raw, ttl); err != nil {
			log.Printf("cache set %s: %v", key, err)
		}
	}
	return v, nil
}

// Invalidate drops every key under the given prefixes and logs failures.
func Invalidate(ctx context.Context, c Cache, prefixes ...string) {
	for _, p := range prefixes {
		if err := c.DeletePrefix(ctx, p); err != nil {
			log.Printf("cache invalidate %s: %v", p, err)
		}
	}
}

// Noop is used when REDIS_URL is not set.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Noop) DeletePrefix(context.Context, string) error               { return nil }
