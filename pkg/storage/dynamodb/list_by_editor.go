package dynamodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/donation-reconciler/pkg/models"
)

const editorIndex = "editor_name_lower-index"

// ListDonationsByEditor retrieves all donations for a community handle.
// Handles are matched case-insensitively via the lower-cased attribute
// written with every row.
func (s *Store) ListDonationsByEditor(ctx context.Context, editor string) ([]models.Donation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DonationsTableName),
		IndexName:              aws.String(editorIndex),
		KeyConditionExpression: aws.String("editor_name_lower = :editor"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":editor": &types.AttributeValueMemberS{Value: strings.ToLower(editor)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query donations by editor: %w", err)
	}

	var records []donationRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donations: %w", err)
	}

	donations := make([]models.Donation, 0, len(records))
	for _, rec := range records {
		donations = append(donations, fromRecord(rec))
	}

	return donations, nil
}
