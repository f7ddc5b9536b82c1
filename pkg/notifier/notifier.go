package notifier

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a request to send a donor a thank-you receipt.
type Receipt struct {
	Email       string          `json:"email"`
	PaymentDate time.Time       `json:"payment_date"`
	Amount      decimal.Decimal `json:"amount"`
	DisplayName string          `json:"display_name"`
	EditorName  string          `json:"editor_name,omitempty"`
}

// Notifier defines the interface for dispatching donor receipts. Dispatch
// is fire-and-forget: a failure is the caller's to log, never to act on.
type Notifier interface {
	// SendReceipt requests that a receipt be sent to the donor.
	SendReceipt(ctx context.Context, receipt Receipt) error
}
