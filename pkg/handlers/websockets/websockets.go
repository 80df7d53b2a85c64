package websockets

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/amc-warranty-claims/pkg/websockets"
	"github.com/gorilla/websocket"
)

// VendorQueryParam identifies the vendor a client listens for, on both the API Gateway
// $connect route and the local /ws endpoint.
const VendorQueryParam = "vendorId"

// Handler handles WebSocket connections.
type Handler struct {
	connManager websockets.ConnectionManager
	hub         *websockets.Hub
	logger      *slog.Logger
}

// NewHandler creates a Handler for the API Gateway routes. hub is only needed by ServeHTTP
// and may be nil in the lambda.
func NewHandler(connManager websockets.ConnectionManager, hub *websockets.Hub, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{connManager: connManager, hub: hub, logger: logger}
}

// HandleConnect records a new client connection.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	conn := websockets.Connection{
		ConnectionID: request.RequestContext.ConnectionID,
		VendorID:     request.QueryStringParameters[VendorQueryParam],
	}
	h.logger.Info("client connected", "connectionId", conn.ConnectionID, "vendorId", conn.VendorID)

	if err := h.connManager.AddConnection(ctx, conn); err != nil {
		h.logger.Error("failed to save connection", "connectionId", conn.ConnectionID, "error", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDisconnect forgets a client connection.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	connectionID := request.RequestContext.ConnectionID
	h.logger.Info("client disconnected", "connectionId", connectionID)

	if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
		h.logger.Error("failed to delete connection", "connectionId", connectionID, "error", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDefault acknowledges messages sent by a client. Clients only listen.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Debug("ignoring client message", "connectionId", request.RequestContext.ConnectionID)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// Route dispatches an API Gateway WebSocket event by its route key.
func (h *Handler) Route(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return h.HandleConnect(ctx, request)
	case "$disconnect":
		return h.HandleDisconnect(ctx, request)
	default:
		return h.HandleDefault(ctx, request)
	}
}

var upgrader = websocket.Upgrader{
	// The local server is for development; any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeHTTP upgrades a local development connection and registers it with the hub until the
// client goes away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		http.Error(w, "websocket hub not configured", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	vendorID := r.URL.Query().Get(VendorQueryParam)
	connectionID := h.hub.Register(vendorID, conn)
	h.logger.Info("client connected locally", "connectionId", connectionID, "vendorId", vendorID)
	defer func() {
		h.hub.Unregister(connectionID)
		h.logger.Info("client disconnected locally", "connectionId", connectionID)
	}()

	// Reading is the only way to notice the client closing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("unexpected close error", "error", err)
			}
			return
		}
	}
}
