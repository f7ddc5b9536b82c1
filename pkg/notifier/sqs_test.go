package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSQS captures the sent message.
type stubSQS struct {
	input *sqs.SendMessageInput
	err   error
}

func (s *stubSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	s.input = params
	if s.err != nil {
		return nil, s.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSendReceipt(t *testing.T) {
	receipt := Receipt{
		Email:       "ada@example.org",
		PaymentDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("9.41"),
		DisplayName: "Ada Lovelace",
		EditorName:  "ada_editor",
	}

	t.Run("enqueues the receipt as JSON", func(t *testing.T) {
		client := &stubSQS{}
		n := NewSQSNotifier(client, "https://sqs.example/receipts")

		require.NoError(t, n.SendReceipt(context.Background(), receipt))

		require.NotNil(t, client.input)
		assert.Equal(t, "https://sqs.example/receipts", aws.ToString(client.input.QueueUrl))

		var decoded Receipt
		require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.input.MessageBody)), &decoded))
		assert.Equal(t, receipt.Email, decoded.Email)
		assert.True(t, receipt.Amount.Equal(decoded.Amount))
		assert.Equal(t, receipt.DisplayName, decoded.DisplayName)
	})

	t.Run("send failures are wrapped", func(t *testing.T) {
		client := &stubSQS{err: errors.New("queue unavailable")}
		n := NewSQSNotifier(client, "https://sqs.example/receipts")

		err := n.SendReceipt(context.Background(), receipt)
		assert.ErrorContains(t, err, "queue unavailable")
	})
}
