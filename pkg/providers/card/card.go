// Package card classifies card processor charge events. The webhook body
// is the captured charge object itself; the associated balance transaction
// is fetched from the processor to get the authoritative net and fee.
package card

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/money"
	"github.com/chris/donation-reconciler/pkg/providers"
)

// Charge is the captured charge object pushed by the processor. Donor
// identity and site-side choices ride in the charge metadata.
type Charge struct {
	ID                 string `json:"id"`
	BalanceTransaction string `json:"balance_transaction"`
	Source             struct {
		Name           string `json:"name"`
		AddressLine1   string `json:"address_line1"`
		AddressCity    string `json:"address_city"`
		AddressState   string `json:"address_state"`
		AddressZip     string `json:"address_zip"`
		AddressCountry string `json:"address_country"`
	} `json:"source"`
	Metadata map[string]string `json:"metadata"`
}

// Adapter classifies card charge events.
type Adapter struct {
	client Client
}

// New creates a card adapter.
func New(client Client) *Adapter {
	return &Adapter{client: client}
}

var _ providers.Adapter = (*Adapter)(nil)

// Source returns the card event source.
func (a *Adapter) Source() string { return providers.SourceCard }

// Classify maps a captured charge onto a settlement outcome. A charge
// event always represents money already captured, so a well-formed event
// is always Completed.
func (a *Adapter) Classify(ctx context.Context, event providers.Event) models.Outcome {
	var charge Charge
	if err := json.Unmarshal(event.Body, &charge); err != nil {
		return models.Failed(fmt.Sprintf("malformed charge: %v", err))
	}
	if charge.ID == "" {
		return models.Failed("missing field id")
	}
	if charge.BalanceTransaction == "" {
		return models.Failed("missing field balance_transaction")
	}
	email := charge.Metadata["email"]
	if email == "" {
		return models.Failed("missing field metadata.email")
	}

	bt, err := a.client.GetBalanceTransaction(ctx, charge.BalanceTransaction)
	if err != nil {
		return models.Failed(fmt.Sprintf("provider query failed: %v", err))
	}

	// The balance transaction reports net and fee in minor units.
	amount, err := money.FromMinorUnits(bt.Net)
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid net: %v", err))
	}
	fee, err := money.FromMinorUnits(bt.Fee)
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid fee: %v", err))
	}

	return models.Completed(&models.Donation{
		FirstName:       charge.Source.Name,
		Email:           email,
		EditorName:      charge.Metadata["editor"],
		CanContact:      isTrue(charge.Metadata["can_contact"]),
		Anonymous:       isTrue(charge.Metadata["anonymous"]),
		AddressStreet:   charge.Source.AddressLine1,
		AddressCity:     charge.Source.AddressCity,
		AddressState:    charge.Source.AddressState,
		AddressPostcode: charge.Source.AddressZip,
		AddressCountry:  charge.Source.AddressCountry,
		PaymentMethod:   models.MethodCard,
		TransactionID:   charge.ID,
		Amount:          amount,
		Fee:             &fee,
	})
}

// isTrue parses the string booleans the charge metadata carries.
func isTrue(v string) bool {
	return v == "True" || v == "true"
}
