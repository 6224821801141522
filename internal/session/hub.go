// Package session tracks per-user login state: the note snapshot, the
// edit form and the transient banner message.
package session

import (
	"sync"

	"github.com/marcomarassi/note-keeper-service/internal/domain"

	"go.uber.org/zap"
)

// StateEvent announces an auth state change. A nil User means the uid
// logged out.
type StateEvent struct {
	UID  int64
	User *domain.SessionUser
}

// Hub fans auth state events out to subscribers. Publishing never
// blocks; a subscriber that falls behind loses events and a warning is
// logged.
type Hub struct {
	mu     sync.RWMutex
	subs   map[chan StateEvent]struct{}
	buffer int
	logger *zap.Logger
}

func NewHub(buffer int, logger *zap.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		subs:   make(map[chan StateEvent]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

func (h *Hub) Subscribe() chan StateEvent {
	ch := make(chan StateEvent, h.buffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan StateEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(ev StateEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("session hub subscriber is full, event dropped",
				zap.Int64("uid", ev.UID))
		}
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}
