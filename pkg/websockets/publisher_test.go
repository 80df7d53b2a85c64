package websockets

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnections struct {
	byVendor map[string][]string
	removed  []string
	added    []Connection
}

func (f *fakeConnections) ListConnections(_ context.Context, vendorID string) ([]string, error) {
	return f.byVendor[vendorID], nil
}

func (f *fakeConnections) AddConnection(_ context.Context, conn Connection) error {
	f.added = append(f.added, conn)
	return nil
}

func (f *fakeConnections) RemoveConnection(_ context.Context, connectionID string) error {
	f.removed = append(f.removed, connectionID)
	return nil
}

type fakeGateway struct {
	posted map[string][]byte
	errs   map[string]error
}

func (f *fakeGateway) PostToConnection(_ context.Context, in *apigatewaymanagementapi.PostToConnectionInput, _ ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error) {
	id := aws.ToString(in.ConnectionId)
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	f.posted[id] = in.Data
	return &apigatewaymanagementapi.PostToConnectionOutput{}, nil
}

func TestPublish(t *testing.T) {
	conns := &fakeConnections{byVendor: map[string][]string{"v-1": {"live", "gone", "broken"}}}
	gw := &fakeGateway{
		posted: map[string][]byte{},
		errs: map[string]error{
			"gone":   &apigwtypes.GoneException{},
			"broken": assert.AnError,
		},
	}
	p := newPublisher(gw, conns, conns, nil)

	err := p.Publish(context.Background(), "v-1", Message{
		Type:    MessageTypeWalletUpdate,
		Payload: WalletUpdatePayload{VendorID: "v-1", CaseID: "c-1", Kind: "earning", Change: 52373},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"gone"}, conns.removed)
	require.Contains(t, gw.posted, "live")

	var got struct {
		Type    string              `json:"type"`
		Payload WalletUpdatePayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(gw.posted["live"], &got))
	assert.Equal(t, "walletUpdate", got.Type)
	assert.Equal(t, int64(52373), got.Payload.Change)
}

func TestPublishWithoutConnections(t *testing.T) {
	conns := &fakeConnections{}
	gw := &fakeGateway{posted: map[string][]byte{}}

	err := newPublisher(gw, conns, conns, nil).Publish(context.Background(), "v-9", Message{Type: MessageTypeVendorAssignment})

	require.NoError(t, err)
	assert.Empty(t, gw.posted)
}
