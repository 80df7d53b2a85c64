package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/storage"
)

const ledgerByVendorIndex = "vendor_id-timestamp-index"

// CreateWallet creates a new wallet record in DynamoDB.
func (s *Store) CreateWallet(ctx context.Context, wallet *models.VendorWallet) (*models.VendorWallet, error) {
	walletAV, err := attributevalue.MarshalMap(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.WalletsTableName),
		Item:                walletAV,
		ConditionExpression: aws.String("attribute_not_exists(vendor_id)"),
	})
	if err != nil {
		if isConditionFailure(err) {
			return nil, fmt.Errorf("wallet for vendor %s: %w", wallet.VendorID, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return wallet, nil
}

// GetWallet retrieves a vendor's wallet from DynamoDB.
func (s *Store) GetWallet(ctx context.Context, vendorID string) (*models.VendorWallet, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key: map[string]types.AttributeValue{
			"vendor_id": &types.AttributeValueMemberS{Value: vendorID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("wallet for vendor %s: %w", vendorID, storage.ErrNotFound)
	}

	var wallet models.VendorWallet
	if err := attributevalue.UnmarshalMap(result.Item, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}
	return &wallet, nil
}

// ListWallets retrieves all wallets from DynamoDB.
func (s *Store) ListWallets(ctx context.Context) ([]models.VendorWallet, error) {
	items, err := s.scanAll(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.WalletsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallets table: %w", err)
	}

	var wallets []models.VendorWallet
	if err := attributevalue.UnmarshalListOfMaps(items, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}
	return wallets, nil
}

// AppendEntry writes a ledger entry and moves the vendor's cached balance in one transaction.
func (s *Store) AppendEntry(ctx context.Context, entry *models.WalletLedgerEntry) error {
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}
	nowAV, err := attributevalue.Marshal(entry.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the ledger entry.
				Put: &types.Put{
					TableName:           aws.String(s.LedgerTableName),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
			{
				// Operation 2: Move the vendor's balance.
				Update: &types.Update{
					TableName: aws.String(s.WalletsTableName),
					Key: map[string]types.AttributeValue{
						"vendor_id": &types.AttributeValueMemberS{Value: entry.VendorID},
					},
					UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(vendor_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: strconv.FormatInt(entry.Amount, 10)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
						":now":    nowAV,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if idx, ok := failedCondition(err); ok {
			if idx == 0 {
				return fmt.Errorf("entry %s: %w", entry.EntryID, storage.ErrDuplicateEntry)
			}
			return fmt.Errorf("wallet for vendor %s: %w", entry.VendorID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to execute ledger transaction: %w", err)
	}
	return nil
}

// ListEntries retrieves a vendor's ledger entries, newest first.
func (s *Store) ListEntries(ctx context.Context, vendorID string) ([]models.WalletLedgerEntry, error) {
	items, err := s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.LedgerTableName),
		IndexName:              aws.String(ledgerByVendorIndex),
		KeyConditionExpression: aws.String("vendor_id = :vendor_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vendor_id": &types.AttributeValueMemberS{Value: vendorID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query for ledger entries: %w", err)
	}

	var entries []models.WalletLedgerEntry
	if err := attributevalue.UnmarshalListOfMaps(items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}
	return entries, nil
}
