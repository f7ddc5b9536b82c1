package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/donation-reconciler/pkg/models"
)

const paymentDateGSI = "gsi1pk-payment_date-index"

// RecentDonations returns the total row count and a page of donations
// ordered by payment date descending. The total is computed over the
// unfiltered set before paging.
func (s *Store) RecentDonations(ctx context.Context, limit, offset int) (int, []models.Donation, error) {
	donations, err := s.listAllDonations(ctx)
	if err != nil {
		return 0, nil, err
	}

	count := len(donations)
	return count, page(donations, limit, offset), nil
}

// listAllDonations reads the whole ledger via the chronological GSI,
// newest first, following pagination keys.
func (s *Store) listAllDonations(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.DonationsTableName),
			IndexName:              aws.String(paymentDateGSI),
			KeyConditionExpression: aws.String("gsi1pk = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: donationsPartition},
			},
			ScanIndexForward:  aws.Bool(false), // Sort by payment_date in descending order
			ExclusiveStartKey: startKey,
		}

		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query donations: %w", err)
		}

		var records []donationRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal donations: %w", err)
		}
		for _, rec := range records {
			donations = append(donations, fromRecord(rec))
		}

		if result.LastEvaluatedKey == nil {
			return donations, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// page applies offset and limit to an already-ordered slice. A limit of
// zero or less means no limit.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
