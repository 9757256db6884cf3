package testfixtures

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/events"
)

// EventRecorder captures dispatched lifecycle events.
type EventRecorder struct {
	mu     sync.Mutex
	Events []events.Event
}

func (r *EventRecorder) Dispatch(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}

func (r *EventRecorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Type)
	}
	return out
}

var _ events.Sink = (*EventRecorder)(nil)

// SlotCacheSpy is a pass-through in-memory slot cache that records
// invalidations so tests can assert cache hygiene.
type SlotCacheSpy struct {
	mu            sync.Mutex
	entries       map[string][]domain.TimeSlot
	Invalidations []string
}

func NewSlotCacheSpy() *SlotCacheSpy {
	return &SlotCacheSpy{entries: make(map[string][]domain.TimeSlot)}
}

func (c *SlotCacheSpy) key(providerID, serviceID uint, date string) string {
	return fmt.Sprintf("%d|%d|%s", providerID, serviceID, date)
}

func (c *SlotCacheSpy) Get(_ context.Context, providerID, serviceID uint, date string) ([]domain.TimeSlot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots, ok := c.entries[c.key(providerID, serviceID, date)]
	return slots, ok
}

func (c *SlotCacheSpy) Set(_ context.Context, providerID, serviceID uint, date string, slots []domain.TimeSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.key(providerID, serviceID, date)] = slots
}

func (c *SlotCacheSpy) Invalidate(_ context.Context, providerID uint, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidations = append(c.Invalidations, date)
	for k := range c.entries {
		delete(c.entries, k)
	}
}
