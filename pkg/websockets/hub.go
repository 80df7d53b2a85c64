package websockets

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub keeps the WebSocket connections of the local development server and publishes to them
// directly, without API Gateway.
type Hub struct {
	mu     sync.Mutex
	conns  map[string]*hubConn
	logger *slog.Logger
}

type hubConn struct {
	vendorID string
	ws       *websocket.Conn
	writeMu  sync.Mutex
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{conns: make(map[string]*hubConn), logger: logger}
}

var _ Publisher = (*Hub)(nil)

// Register tracks an upgraded connection and returns its generated ID.
func (h *Hub) Register(vendorID string, ws *websocket.Conn) string {
	id := uuid.New().String()
	h.mu.Lock()
	h.conns[id] = &hubConn{vendorID: vendorID, ws: ws}
	h.mu.Unlock()
	return id
}

// Unregister forgets a connection.
func (h *Hub) Unregister(connectionID string) {
	h.mu.Lock()
	delete(h.conns, connectionID)
	h.mu.Unlock()
}

// Publish writes the message to every matching connection. Connections that fail to accept the
// write are dropped.
func (h *Hub) Publish(_ context.Context, vendorID string, message Message) error {
	h.mu.Lock()
	targets := make(map[string]*hubConn)
	for id, c := range h.conns {
		if vendorID == "" || c.vendorID == vendorID {
			targets[id] = c
		}
	}
	h.mu.Unlock()

	for id, c := range targets {
		c.writeMu.Lock()
		err := c.ws.WriteJSON(message)
		c.writeMu.Unlock()
		if err != nil {
			h.logger.Error("failed to write to local connection", "connectionId", id, "error", err)
			h.Unregister(id)
		}
	}
	return nil
}

// Count returns the number of connections listening for vendorID, or all connections when
// vendorID is empty.
func (h *Hub) Count(vendorID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, c := range h.conns {
		if vendorID == "" || c.vendorID == vendorID {
			n++
		}
	}
	return n
}
