// Package realtime fans notifications out to connected clients.
package realtime

import (
	"sync"

	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// DefaultBufferSize is the per-subscriber channel capacity
const DefaultBufferSize = 16

type subscriber struct {
	ch chan *notifications.Notification
}

// Hub keeps the live subscribers per user. Publishing never blocks: a subscriber
// whose buffer is full misses the notification.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
	bufferSize  int
	logger      logger.Logger
}

var _ notifications.Broadcaster = (*Hub)(nil)

// NewHub creates a hub. A non-positive bufferSize selects DefaultBufferSize.
func NewHub(bufferSize int, logger logger.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		subscribers: make(map[string]map[*subscriber]struct{}),
		bufferSize:  bufferSize,
		logger:      logger,
	}
}

// Publish delivers n to every subscriber of n.UserID
func (h *Hub) Publish(n *notifications.Notification) {
	if n == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[n.UserID] {
		select {
		case sub.ch <- n:
		default:
			h.logger.Warn("Dropping notification ", n.ID, " for slow subscriber of user ", n.UserID)
		}
	}
}

// Subscribe registers a subscriber for userID. The returned cancel func removes it
// and closes the channel; calling it more than once is safe.
func (h *Hub) Subscribe(userID string) (<-chan *notifications.Notification, func()) {
	sub := &subscriber{ch: make(chan *notifications.Notification, h.bufferSize)}

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[*subscriber]struct{})
	}
	h.subscribers[userID][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[userID], sub)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
			h.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// SubscriberCount returns the number of live subscribers of userID
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
