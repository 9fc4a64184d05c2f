package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func TestRememberLoadsOnce(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()

	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"Plumbing", "Painting"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, PrefixServices+"all", time.Minute, load)
		if err != nil {
			t.Fatalf("remember: %v", err)
		}
		if len(got) != 2 || got[0] != "Plumbing" {
			t.Fatalf("unexpected value: %v", got)
		}
	}

	if calls != 1 {
		t.Errorf("expected a single load, got %d", calls)
	}

	Invalidate(ctx, c, PrefixServices)
	if _, err := Remember(ctx, c, PrefixServices+"all", time.Minute, load); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("expected reload after invalidation, got %d loads", calls)
	}
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	c := newMemoryCache()
	boom := errors.New("db down")

	_, err := Remember(context.Background(), c, "k", time.Minute, func() (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if len(c.data) != 0 {
		t.Error("failed load must not be cached")
	}
}

func TestNoopAlwaysMisses(t *testing.T) {
	var c Cache = Noop{}
	calls := 0
	for i := 0; i < 2; i++ {
		Remember(context.Background(), c, "k", time.Minute, func() (int, error) {
			calls++
			return 1, nil
		})
	}
	if calls != 2 {
		t.Errorf("noop cache should load every time, got %d", calls)
	}
}
