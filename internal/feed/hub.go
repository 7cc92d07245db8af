// Package feed streams scene frames to websocket subscribers.
package feed

import (
	"sync"

	"chosenoffset.com/raycaster/internal/core/scene"
)

// subscriberBuffer is how many frames a slow subscriber may fall behind
// before frames are dropped for it.
const subscriberBuffer = 8

// Hub fans frames out to subscribers. Broadcast never blocks the caller.
type Hub struct {
	mu          sync.RWMutex
	nextID      uint64
	subscribers map[uint64]chan Message
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uint64]chan Message),
	}
}

// Register creates a channel for a new subscriber.
func (h *Hub) Register() (uint64, <-chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	ch := make(chan Message, subscriberBuffer)
	h.subscribers[h.nextID] = ch
	return h.nextID, ch
}

// Unregister removes a subscriber and closes its channel.
func (h *Hub) Unregister(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
}

// Broadcast sends a frame to every subscriber, skipping those whose buffer
// is full. The snapshot is only converted when someone is listening.
func (h *Hub) Broadcast(s scene.Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.subscribers) == 0 {
		return
	}

	msg := NewMessage(s)
	for _, ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close unregisters every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
}
