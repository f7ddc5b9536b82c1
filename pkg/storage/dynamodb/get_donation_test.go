package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/donation-reconciler/pkg/storage"
	"github.com/chris/donation-reconciler/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetDonationByTransactionID(t *testing.T) {
	t.Run("returns the matching donation", func(t *testing.T) {
		row := ledgerRow("don-1", "9.41", 0)
		row.TransactionID = "TX1"

		var input *dynamodb.QueryInput
		client := mocks.NewDynamoDBAPI(t)
		client.On("Query", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*dynamodb.QueryInput)
			}).
			Return(&dynamodb.QueryOutput{Items: mustMarshalRecords(t, row)}, nil).Once()

		donation, err := testStore(client).GetDonationByTransactionID(context.Background(), "TX1")
		require.NoError(t, err)
		assert.Equal(t, "don-1", donation.ID)
		assert.Equal(t, "TX1", donation.TransactionID)
		assert.Equal(t, "9.41", donation.Amount.StringFixed(2))

		require.NotNil(t, input)
		assert.Equal(t, transactionIDIndex, *input.IndexName)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "TX1"}, input.ExpressionAttributeValues[":txn_id"])
	})

	t.Run("no match means not found", func(t *testing.T) {
		client := mocks.NewDynamoDBAPI(t)
		client.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{}, nil).Once()

		_, err := testStore(client).GetDonationByTransactionID(context.Background(), "TX404")
		assert.ErrorIs(t, err, storage.ErrDonationNotFound)
	})

	t.Run("query failures surface as errors", func(t *testing.T) {
		client := mocks.NewDynamoDBAPI(t)
		client.On("Query", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		_, err := testStore(client).GetDonationByTransactionID(context.Background(), "TX1")
		assert.Error(t, err)
	})
}
