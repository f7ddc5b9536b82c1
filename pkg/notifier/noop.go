package notifier

import "context"

// NoOp is a notifier that does nothing. Useful for local runs and tests.
type NoOp struct{}

// SendReceipt does nothing.
func (n *NoOp) SendReceipt(ctx context.Context, receipt Receipt) error {
	return nil
}
