// Package events fans out charger status transitions to live subscribers,
// such as the WebSocket status feed.
package events

import (
	"sync"
	"time"

	"voltedge/internal/models"
)

// ChargerStatus describes one charger status transition.
type ChargerStatus struct {
	StationID  int                  `json:"station_id"`
	ChargerID  int                  `json:"charger_id"`
	Status     models.ChargerStatus `json:"status"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// Hub tracks subscribers and broadcasts events. Publishing never blocks;
// events for slow subscribers are dropped.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan ChargerStatus]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan ChargerStatus]struct{})}
}

// Subscribe registers a buffered subscription channel. The returned cancel
// function removes the subscription and closes the channel.
func (h *Hub) Subscribe(buffer int) (<-chan ChargerStatus, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan ChargerStatus, buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber with room in its buffer.
func (h *Hub) Publish(event ChargerStatus) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
