// Package analytics is a fire-and-forget event sink. Callers hand over an
// event snapshot and move on; delivery happens on a background worker and
// is allowed to fail silently. Nothing in the application depends on this
// package succeeding.
package analytics

import (
	"log"
	"sync/atomic"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Event is one tracked occurrence with its parameters.
type Event struct {
	Name   string
	Params map[string]interface{}
}

// Tracker queues events to a background worker. Track never blocks: when
// the buffer is full the event is dropped and counted.
type Tracker struct {
	ch      chan Event
	done    chan struct{}
	dropped uint64
}

// NewTracker starts a tracker that logs each event.
func NewTracker(buffer int) *Tracker {
	return NewTrackerFunc(buffer, func(ev Event) {
		log.Printf("analytics: %s %v", ev.Name, ev.Params)
	})
}

// NewTrackerFunc starts a tracker delivering events to sink.
func NewTrackerFunc(buffer int, sink func(Event)) *Tracker {
	if buffer < 1 {
		buffer = 1
	}
	t := &Tracker{
		ch:   make(chan Event, buffer),
		done: make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		for ev := range t.ch {
			sink(ev)
		}
	}()
	return t
}

// Track queues an event. Never blocks; a full buffer drops the event.
func (t *Tracker) Track(name string, params map[string]interface{}) {
	select {
	case t.ch <- Event{Name: name, Params: params}:
	default:
		atomic.AddUint64(&t.dropped, 1)
	}
}

// Dropped returns how many events were discarded due to a full buffer.
func (t *Tracker) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

// Close drains the queue and stops the worker. Track must not be called
// after Close.
func (t *Tracker) Close() {
	close(t.ch)
	<-t.done
}

// ItemParams snapshots a product for a cart event.
func ItemParams(p catalogEntity.Product, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"item_id":       p.ID,
		"item_name":     p.Name,
		"item_category": p.Category,
		"price":         p.Price,
		"quantity":      quantity,
	}
}
