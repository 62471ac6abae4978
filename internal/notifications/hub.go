// Package notifications provides real-time change-signal delivery to connected clients.
package notifications

import (
	"context"
	"errors"
	"log"
	"sync"

	"userdir/internal/observability"

	"github.com/gofiber/websocket/v2"
)

// UserChangedSignal is the single named event pushed to every connected
// client after a successful mutation. It carries no payload; clients are
// expected to re-fetch the directory on receipt.
const UserChangedSignal = `{"type":"user_changed"}`

// Max total connections the hub will accept.
const maxTotalConns = 10000

// Hub maintains the set of currently connected websocket clients and fans
// the change signal out to all of them. Connections are binary: registered
// on connect, removed on disconnect or error. No session or backlog state
// is tracked, and clients that are offline at broadcast time miss the signal.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	shutdown chan struct{}
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[*Client]struct{}),
		shutdown: make(chan struct{}),
	}
}

// Name returns a human-readable identifier for this hub.
func (h *Hub) Name() string { return "directory hub" }

// Register adds a connection to the hub. Returns the Client or an error if
// the connection limit is exceeded.
func (h *Hub) Register(conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) >= maxTotalConns {
		return nil, errors.New("server connection limit reached")
	}

	client := NewClient(h, conn)
	h.clients[client] = struct{}{}
	return client, nil
}

// UnregisterClient removes a connection from the hub.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
}

// ClientCount reports the number of currently registered connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastUserChanged sends the change signal to every connected client.
// Delivery is best-effort: no acknowledgment, no ordering relative to the
// HTTP response that triggered it, no replay for late joiners.
func (h *Hub) BroadcastUserChanged() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	observability.DirectoryBroadcastsTotal.Inc()
	data := []byte(UserChangedSignal)
	for c := range h.clients {
		c.TrySend(data)
	}
}

// Shutdown gracefully closes all websocket connections.
func (h *Hub) Shutdown(_ context.Context) error {
	close(h.shutdown)

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if client.Conn == nil {
			continue
		}
		if err := client.Conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "Server shutting down")); err != nil {
			log.Printf("failed to write close message: %v", err)
		}
		if err := client.Conn.Close(); err != nil {
			log.Printf("failed to close websocket: %v", err)
		}
	}
	h.clients = make(map[*Client]struct{})

	return nil
}
