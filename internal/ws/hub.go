// Package ws implements the real-time channel: a hub owning the set of
// connected listeners and fanning broadcast events out to all of them.
package ws

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/api/metrics"
	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

const welcomeMessage = "Welcome to SmartHealthcare Real-Time Updates!"

// Hub owns the live set of listener connections. Register, Unregister and
// Broadcast are its only mutators and are safe to call concurrently; a
// broadcast never observes a connection mid-teardown. The set is unbounded.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	log     zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		log:     log,
	}
}

// Register adds the connection to the live set and queues a single welcome
// event for that connection only. Late joiners receive no earlier events.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnectionsActive.Set(float64(n))
	h.log.Info().Stringer("connection_id", c.ID).Int("listeners", n).Msg("listener connected")

	c.enqueue(domain.Event{Type: domain.EventWelcome, Message: welcomeMessage})
}

// Unregister removes the connection and closes its send queue. Safe to call
// more than once for the same connection.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}

	c.close()
	metrics.WSConnectionsActive.Set(float64(n))
	h.log.Info().Stringer("connection_id", c.ID).Int("listeners", n).Msg("listener disconnected")
}

// Broadcast queues the event for every connected listener. Delivery is
// best-effort and at-most-once: a listener whose send queue is full or
// closed is dropped from the live set, and its failure does not affect
// delivery to the rest. No ordering is guaranteed across listeners.
func (h *Hub) Broadcast(event domain.Event) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if c.enqueue(event) {
			metrics.BroadcastsDeliveredTotal.WithLabelValues(event.Type).Inc()
			continue
		}
		metrics.BroadcastsDroppedTotal.Inc()
		h.log.Warn().Stringer("connection_id", c.ID).Str("type", event.Type).Msg("dropping unresponsive listener")
		h.Unregister(c)
	}
}

// Len reports the current number of connected listeners.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
