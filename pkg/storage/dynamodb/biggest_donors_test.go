package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/storage/dynamodb/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBiggestDonors(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fee := decimal.RequireFromString("1.00")

	// Rows arrive newest-first, matching the chronological index order.
	rows := []models.Donation{
		{
			ID: "don-1", FirstName: "Ada", LastName: "Lovelace", EditorName: "ada_editor",
			PaymentDate: now, Amount: decimal.RequireFromString("10.00"), Fee: &fee,
		},
		{
			ID: "don-2", FirstName: "Bob", LastName: "Byrne",
			PaymentDate: now.AddDate(0, 0, -1), Amount: decimal.RequireFromString("20.00"),
		},
		{
			ID: "don-3", FirstName: "Ada", LastName: "Lovelace", EditorName: "ada_editor",
			PaymentDate: now.AddDate(0, 0, -30), Amount: decimal.RequireFromString("5.00"), Fee: &fee,
		},
		{
			ID: "don-4", FirstName: "Shy", LastName: "Donor", Anonymous: true,
			PaymentDate: now, Amount: decimal.RequireFromString("100.00"),
		},
	}

	client := mocks.NewDynamoDBAPI(t)
	client.On("Query", mock.Anything, mock.Anything).
		Return(&dynamodb.QueryOutput{Items: mustMarshalRecords(t, rows...)}, nil).Once()

	count, groups, err := testStore(client).BiggestDonors(context.Background(), 10, 0)
	require.NoError(t, err)

	// The anonymous donor never appears.
	assert.Equal(t, 2, count)
	require.Len(t, groups, 2)

	assert.Equal(t, "Bob", groups[0].FirstName)
	assert.Equal(t, "20.00", groups[0].Amount.StringFixed(2))

	assert.Equal(t, "Ada", groups[1].FirstName)
	assert.Equal(t, "15.00", groups[1].Amount.StringFixed(2))
	assert.Equal(t, "2.00", groups[1].Fee.StringFixed(2))
	// The group carries the donor's most recent payment date.
	assert.True(t, groups[1].PaymentDate.Equal(now))
}
