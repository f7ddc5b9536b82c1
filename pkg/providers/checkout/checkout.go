// Package checkout classifies wallet-checkout events. The inbound webhook
// is only a trigger carrying a checkout identifier; the payload is not
// trusted and the checkout is re-queried against the provider's API
// before anything is recorded.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/money"
	"github.com/chris/donation-reconciler/pkg/providers"
	"github.com/shopspring/decimal"
)

// Trigger is the inbound webhook body. The donor's site-side choices ride
// along with the checkout identifier.
type Trigger struct {
	CheckoutID string `json:"checkout_id"`
	Editor     string `json:"editor"`
	Anonymous  bool   `json:"anonymous"`
	CanContact bool   `json:"can_contact"`
}

// Config carries the threshold check applied to every checkout.
type Config struct {
	MinimumDonation decimal.Decimal
}

// Adapter classifies checkout events.
type Adapter struct {
	client Client
	cfg    Config
}

// New creates a checkout adapter.
func New(client Client, cfg Config) *Adapter {
	return &Adapter{client: client, cfg: cfg}
}

var _ providers.Adapter = (*Adapter)(nil)

// Source returns the checkout event source.
func (a *Adapter) Source() string { return providers.SourceCheckout }

// Classify re-queries the provider for the checkout and maps its state
// onto a settlement outcome.
func (a *Adapter) Classify(ctx context.Context, event providers.Event) models.Outcome {
	var trigger Trigger
	if err := json.Unmarshal(event.Body, &trigger); err != nil {
		return models.Failed(fmt.Sprintf("malformed checkout trigger: %v", err))
	}
	if trigger.CheckoutID == "" {
		return models.Failed("missing field checkout_id")
	}

	details, err := a.client.GetCheckout(ctx, trigger.CheckoutID)
	if err != nil {
		return models.Failed(fmt.Sprintf("provider query failed: %v", err))
	}

	if details.Error != "" {
		reason := details.ErrorDescription
		if reason == "" {
			reason = details.Error
		}
		return models.Failed(fmt.Sprintf("provider error: %s", reason))
	}

	if details.Gross == nil {
		return models.Failed("missing field gross")
	}
	gross, err := money.Parse(details.Gross.String())
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid gross: %v", err))
	}
	if gross.LessThan(a.cfg.MinimumDonation) {
		return models.Ignored(fmt.Sprintf("tiny donation ($%s)", gross))
	}

	switch details.State {
	case "settled", "captured":
		return a.completed(trigger, details, gross)
	case "authorized", "reserved":
		return models.Pending(fmt.Sprintf("payment is pending, state %q", details.State))
	case "expired", "cancelled", "failed", "refunded", "chargeback":
		return models.Failed(fmt.Sprintf("payment has failed, state %q", details.State))
	default:
		return models.Failed(fmt.Sprintf("unknown status %q", details.State))
	}
}

func (a *Adapter) completed(trigger Trigger, details *Checkout, gross decimal.Decimal) models.Outcome {
	fee, err := money.Parse(details.Fee.String())
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid fee: %v", err))
	}
	net, err := money.Net(gross, fee)
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid amounts: %v", err))
	}

	donation := &models.Donation{
		FirstName:     details.PayerName,
		Email:         details.PayerEmail,
		EditorName:    trigger.Editor,
		CanContact:    trigger.CanContact,
		Anonymous:     trigger.Anonymous,
		PaymentMethod: models.MethodWalletCheckout,
		TransactionID: trigger.CheckoutID,
		Amount:        net,
		Fee:           &fee,
	}

	if addr := details.ShippingAddress; addr != nil {
		donation.AddressStreet = strings.TrimSpace(addr.Address1 + "\n" + addr.Address2)
		donation.AddressCity = addr.City
		donation.AddressCountry = addr.Country
		// US addresses use state/zip, everything else region/postcode.
		if addr.State != "" {
			donation.AddressState = addr.State
		} else {
			donation.AddressState = addr.Region
		}
		if addr.Zip != "" {
			donation.AddressPostcode = addr.Zip
		} else {
			donation.AddressPostcode = addr.Postcode
		}
	}

	return models.Completed(donation)
}
