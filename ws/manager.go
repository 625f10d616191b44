package ws

import (
	"sync"

	"github.com/kiri-yossy/bezihuri/internal/logger"
)

// Hub tracks connected clients by user ID and fans chat messages out to the
// participants of a conversation. A user may hold several connections at
// once (multiple tabs or devices).
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}
			h.mu.Unlock()
			logger.Debug("ws client unregistered", "user_id", client.UserID)
		}
	}
}

// BroadcastToUsers delivers payload to every connection of the given users,
// skipping excludeUserID (the sender already has the message). A client
// whose send buffer is full is dropped rather than blocking the rest.
func (h *Hub) BroadcastToUsers(userIDs []string, excludeUserID string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range userIDs {
		if userID == excludeUserID {
			continue
		}
		for client := range h.clients[userID] {
			select {
			case client.send <- payload:
			default:
				go func(c *Client) { h.unregister <- c }(client)
			}
		}
	}
}
