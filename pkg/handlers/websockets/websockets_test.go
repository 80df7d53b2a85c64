package websockets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	handler "github.com/chris/amc-warranty-claims/pkg/handlers/websockets"
	"github.com/chris/amc-warranty-claims/pkg/websockets"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnManager struct {
	added   []websockets.Connection
	removed []string
	err     error
}

func (f *fakeConnManager) AddConnection(_ context.Context, conn websockets.Connection) error {
	f.added = append(f.added, conn)
	return f.err
}

func (f *fakeConnManager) RemoveConnection(_ context.Context, connectionID string) error {
	f.removed = append(f.removed, connectionID)
	return f.err
}

func wsRequest(routeKey, connectionID string, query map[string]string) events.APIGatewayWebsocketProxyRequest {
	return events.APIGatewayWebsocketProxyRequest{
		QueryStringParameters: query,
		RequestContext: events.APIGatewayWebsocketProxyRequestContext{
			RouteKey:     routeKey,
			ConnectionID: connectionID,
		},
	}
}

func TestRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("Connect Records Vendor", func(t *testing.T) {
		cm := &fakeConnManager{}
		h := handler.NewHandler(cm, nil, nil)

		resp, err := h.Route(ctx, wsRequest("$connect", "conn-1", map[string]string{"vendorId": "v-1"}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []websockets.Connection{{ConnectionID: "conn-1", VendorID: "v-1"}}, cm.added)
	})

	t.Run("Disconnect", func(t *testing.T) {
		cm := &fakeConnManager{}
		h := handler.NewHandler(cm, nil, nil)

		resp, err := h.Route(ctx, wsRequest("$disconnect", "conn-1", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"conn-1"}, cm.removed)
	})

	t.Run("Store Failure", func(t *testing.T) {
		cm := &fakeConnManager{err: assert.AnError}
		h := handler.NewHandler(cm, nil, nil)

		resp, err := h.Route(ctx, wsRequest("$connect", "conn-1", nil))

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("Default", func(t *testing.T) {
		h := handler.NewHandler(&fakeConnManager{}, nil, nil)
		resp, err := h.Route(ctx, wsRequest("$default", "conn-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestServeHTTPDeliversHubMessages(t *testing.T) {
	hub := websockets.NewHub(nil)
	srv := httptest.NewServer(handler.NewHandler(&fakeConnManager{}, hub, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?vendorId=v-1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	msg := websockets.Message{Type: websockets.MessageTypeVendorAssignment, Payload: map[string]string{"claimId": "c-1"}}

	// Registration happens after the upgrade completes.
	require.Eventually(t, func() bool { return hub.Count("v-1") == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(context.Background(), "v-1", msg))
	require.NoError(t, hub.Publish(context.Background(), "v-2", msg))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got websockets.Message
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, websockets.MessageTypeVendorAssignment, got.Type)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Count("") == 0 }, 2*time.Second, 10*time.Millisecond)
}
