package dynamodb

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/amc-warranty-claims/pkg/storage/dynamodb/mocks"
)

func newTestStore(client *mocks.DynamoDBAPI) *Store {
	return New(client, "subscriptions", "claims", "wallets", "ledger", "connections")
}

// cancelled builds the error DynamoDB returns when a transaction is cancelled, one code per item.
func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, len(codes))
	for i, code := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(code)}
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}
