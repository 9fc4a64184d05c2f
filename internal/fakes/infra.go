package fakes

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
)

// AuditSink records events in memory.
type AuditSink struct {
	mu     sync.Mutex
	Events []audit.Event
}

func (s *AuditSink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, ev)
	return nil
}

func (s *AuditSink) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.Events))
	for i, ev := range s.Events {
		out[i] = ev.Action
	}
	return out
}

// Audit returns a dispatcher writing to a fresh sink. Call Close on the
// dispatcher before reading the sink.
func Audit() (*audit.Dispatcher, *AuditSink) {
	sink := &AuditSink{}
	return audit.NewDispatcher(sink), sink
}

// Notifier records booking notifications synchronously.
type Notifier struct {
	mu        sync.Mutex
	Requested []dto.BookingView
	Changed   []dto.BookingView
	Reminded  []dto.BookingView

	// ReminderErr makes BookingReminder refuse every reminder.
	ReminderErr error
}

func (n *Notifier) BookingRequested(b dto.BookingView) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Requested = append(n.Requested, b)
}

func (n *Notifier) BookingStatusChanged(b dto.BookingView, _ uint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Changed = append(n.Changed, b)
}

func (n *Notifier) BookingReminder(b dto.BookingView) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ReminderErr != nil {
		return n.ReminderErr
	}
	n.Reminded = append(n.Reminded, b)
	return nil
}

// Cache is an in-memory cache.Cache that records invalidated prefixes.
type Cache struct {
	mu          sync.Mutex
	data        map[string][]byte
	Invalidated []string
}

func NewCache() *Cache {
	return &Cache{data: map[string][]byte{}}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *Cache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	c.Invalidated = append(c.Invalidated, prefix)
	return nil
}
