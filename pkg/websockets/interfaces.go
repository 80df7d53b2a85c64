package websockets

import (
	"context"
)

// Connection is a live WebSocket client. VendorID is empty for connections that did not
// identify themselves as a vendor.
type Connection struct {
	ConnectionID string
	VendorID     string
}

// ConnectionManager defines the interface for managing WebSocket connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, conn Connection) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// ConnectionLister finds the connections a message should be delivered to.
type ConnectionLister interface {
	ListConnections(ctx context.Context, vendorID string) ([]string, error)
}

// Publisher defines the interface for publishing messages to WebSocket clients.
// An empty vendorID broadcasts to every connection.
type Publisher interface {
	Publish(ctx context.Context, vendorID string, message Message) error
}

// NoOpPublisher drops every message. It is used when no WebSocket endpoint is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, vendorID string, message Message) error {
	return nil
}
