package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/storage/dynamodb/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMarshalRecords(t *testing.T, donations ...models.Donation) []map[string]types.AttributeValue {
	t.Helper()
	items := make([]map[string]types.AttributeValue, 0, len(donations))
	for _, d := range donations {
		item, err := attributevalue.MarshalMap(toRecord(&d))
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func ledgerRow(id string, amount string, daysAgo int) models.Donation {
	return models.Donation{
		ID:          id,
		FirstName:   "Donor",
		LastName:    id,
		Email:       id + "@example.org",
		PaymentDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestRecentDonations(t *testing.T) {
	t.Run("follows pagination keys and reports the full count", func(t *testing.T) {
		first := ledgerRow("don-1", "30.00", 0)
		second := ledgerRow("don-2", "20.00", 1)
		third := ledgerRow("don-3", "10.00", 2)

		client := mocks.NewDynamoDBAPI(t)
		client.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{
				Items:            mustMarshalRecords(t, first, second),
				LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "don-2"}},
			}, nil).Once()
		client.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{
				Items: mustMarshalRecords(t, third),
			}, nil).Once()

		count, donations, err := testStore(client).RecentDonations(context.Background(), 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		require.Len(t, donations, 2)
		assert.Equal(t, "don-1", donations[0].ID)
		assert.Equal(t, "don-2", donations[1].ID)
	})

	t.Run("offset past the end yields an empty page", func(t *testing.T) {
		client := mocks.NewDynamoDBAPI(t)
		client.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{
				Items: mustMarshalRecords(t, ledgerRow("don-1", "30.00", 0)),
			}, nil).Once()

		count, donations, err := testStore(client).RecentDonations(context.Background(), 10, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Empty(t, donations)
	})
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, page(items, 2, 0))
	assert.Equal(t, []int{3, 4}, page(items, 2, 2))
	assert.Equal(t, []int{5}, page(items, 2, 4))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, page(items, 0, 0))
	assert.Nil(t, page(items, 2, 10))
}
