package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/storage"
)

const transactionIDIndex = "transaction_id-index"

// GetDonationByTransactionID retrieves a donation by its external
// transaction id.
func (s *Store) GetDonationByTransactionID(ctx context.Context, transactionID string) (*models.Donation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DonationsTableName),
		IndexName:              aws.String(transactionIDIndex),
		KeyConditionExpression: aws.String("transaction_id = :txn_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":txn_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query donation by transaction id: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrDonationNotFound
	}

	var rec donationRecord
	if err := attributevalue.UnmarshalMap(result.Items[0], &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donation: %w", err)
	}

	donation := fromRecord(rec)
	return &donation, nil
}
