package realtime

import (
	"log"
	"sync"
)

// Event names pushed over the live channel. Every connected dashboard
// receives every event; payloads are always the full joined report record
// so viewers can merge by id without a re-fetch.
const (
	EventReportNew     = "report:new"
	EventReportUpdated = "report:updated"
)

// Event is one named payload delivered to subscribers.
type Event struct {
	Name    string
	Payload any
}

// subscriberBuffer bounds how far a slow consumer may fall behind before
// events are dropped for it. Missed events are recovered by the next full
// list fetch, never replayed.
const subscriberBuffer = 16

// Subscriber is one connected viewer session.
type Subscriber struct {
	id     uint64
	events chan Event
}

// Events is the subscriber's receive channel. Closed on Unsubscribe.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Hub is the subscriber registry and change broadcaster. One instance is
// constructed at startup and injected into whatever performs mutations;
// there is no package-level hub.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint64]*Subscriber
	nextID      uint64
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[uint64]*Subscriber)}
}

func (h *Hub) Subscribe() *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscriber{
		id:     h.nextID,
		events: make(chan Event, subscriberBuffer),
	}
	h.subscribers[sub.id] = sub
	return sub
}

// Unsubscribe removes the subscriber and closes its channel. The close
// happens under the write lock so it cannot race a concurrent Publish.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub.id]; !ok {
		return
	}
	delete(h.subscribers, sub.id)
	close(sub.events)
}

// Publish fans the event out to every current subscriber. Fire and forget:
// a subscriber with a full buffer has the event dropped for it alone, so a
// slow consumer never blocks the mutation path or its peers. Per-subscriber
// delivery order follows publish order.
func (h *Hub) Publish(name string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ev := Event{Name: name, Payload: payload}
	for _, sub := range h.subscribers {
		select {
		case sub.events <- ev:
		default:
			log.Printf("realtime: dropping %s for slow subscriber %d", name, sub.id)
		}
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
