package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/donation-reconciler/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
// Declared here so tests can mock it.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB. The
// donations table is the ledger; the claims table holds one item per
// external transaction id and provides the uniqueness constraint.
type Store struct {
	Client             DynamoDBAPI
	DonationsTableName string
	ClaimsTableName    string
}

// New creates a new Store.
func New(client DynamoDBAPI, donationsTable, claimsTable string) *Store {
	return &Store{
		Client:             client,
		DonationsTableName: donationsTable,
		ClaimsTableName:    claimsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
