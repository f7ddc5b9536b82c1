package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/storage"
	"github.com/google/uuid"
)

// CreateDonation appends a donation to the ledger. The donation put and
// the transaction-id claim put ride the same TransactWriteItems call, so
// claiming the id and recording the row are a single atomic unit: of two
// concurrent writers carrying the same id, exactly one succeeds and the
// other observes ErrDuplicateTransaction.
func (s *Store) CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	// 1. Complete the donation with server-side details.
	donation.ID = uuid.New().String()
	if donation.PaymentDate.IsZero() {
		donation.PaymentDate = time.Now().UTC()
	}

	slog.Log(ctx, slog.LevelDebug, "creating donation", "transaction_id", donation.TransactionID)

	// 2. Marshal the ledger row.
	donationAV, err := attributevalue.MarshalMap(toRecord(donation))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal donation: %w", err)
	}

	// Manual entries carry no external transaction id, so there is nothing
	// to claim; a plain put suffices.
	if donation.TransactionID == "" {
		_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.DonationsTableName),
			Item:                donationAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to put donation: %w", err)
		}
		return donation, nil
	}

	// 3. Marshal the claim row.
	claimAV, err := attributevalue.MarshalMap(claimRecord{
		TransactionID: donation.TransactionID,
		DonationID:    donation.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction claim: %w", err)
	}

	// 4. Construct the TransactWriteItems input. The claim put is first so
	// its cancellation reason is the first one reported.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: claim the external transaction id.
				Put: &types.Put{
					TableName:           aws.String(s.ClaimsTableName),
					Item:                claimAV,
					ConditionExpression: aws.String("attribute_not_exists(transaction_id)"),
				},
			},
			{
				// Operation 2: append the ledger row.
				Put: &types.Put{
					TableName:           aws.String(s.DonationsTableName),
					Item:                donationAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	// 5. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// A failed conditional check on the claim put means the id has
			// already been recorded.
			if len(tce.CancellationReasons) > 0 && aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed" {
				return nil, storage.ErrDuplicateTransaction
			}
		}
		return nil, fmt.Errorf("failed to execute donation transaction: %w", err)
	}

	return donation, nil
}
