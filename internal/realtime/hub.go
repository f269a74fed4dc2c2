// Package realtime pushes row change events to connected websocket clients
// so they know when to refetch.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
)

const broadcastBuffer = 256

// Hub fans change events out to registered clients.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan domain.ChangeEvent
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stop       sync.Once

	mu    sync.RWMutex
	count int
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan domain.ChangeEvent, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.setCount()
			zap.L().Debug("realtime client registered",
				zap.String("user_id", c.userID.String()),
				zap.Bool("admin", c.admin))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

// join hands c to the running hub. It reports false once Run has returned.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.setCount()
}

func (h *Hub) setCount() {
	h.mu.Lock()
	h.count = len(h.clients)
	h.mu.Unlock()
}

func (h *Hub) deliver(event domain.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal change event", zap.Error(err))
		return
	}
	for c := range h.clients {
		if !c.wants(event) {
			continue
		}
		select {
		case c.send <- data:
		default:
			zap.L().Warn("realtime client too slow, disconnecting", zap.String("user_id", c.userID.String()))
			h.drop(c)
		}
	}
}

// Publish queues an event for delivery. It never blocks; when the queue is full the event is dropped.
func (h *Hub) Publish(event domain.ChangeEvent) {
	select {
	case h.broadcast <- event:
	default:
		zap.L().Warn("realtime queue full, event dropped", zap.String("table", event.Table))
	}
}

// Clients is the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// wants reports whether the client may see the event: admins see everything,
// members see their own rows and events that name no member.
func (c *Client) wants(event domain.ChangeEvent) bool {
	if c.admin {
		return true
	}
	return event.UserID == uuid.Nil || event.UserID == c.userID
}
