// Package ipn classifies bank-IPN style notifications: form-encoded
// key/value payloads pushed by the provider after a payment settles.
package ipn

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/money"
	"github.com/chris/donation-reconciler/pkg/providers"
	"github.com/shopspring/decimal"
)

const statusCompleted = "Completed"
const statusPending = "Pending"

// Config carries the receiver-address and threshold checks applied to
// every IPN.
type Config struct {
	// BusinessAddress is the internal business-operations receiving
	// address. Payments addressed to it are not donations.
	BusinessAddress string
	// PrimaryAddress is the primary donations receiving address.
	PrimaryAddress string
	// MinimumDonation is the smallest gross amount worth recording.
	MinimumDonation decimal.Decimal
}

// Adapter classifies IPN events.
type Adapter struct {
	cfg Config
}

// New creates an IPN adapter.
func New(cfg Config) *Adapter {
	return &Adapter{cfg: cfg}
}

var _ providers.Adapter = (*Adapter)(nil)

// Source returns the IPN event source.
func (a *Adapter) Source() string { return providers.SourceIPN }

// Classify maps an IPN form onto a settlement outcome.
func (a *Adapter) Classify(_ context.Context, event providers.Event) models.Outcome {
	form := event.Form

	status := form.Get("payment_status")
	if status != statusCompleted {
		if status == statusPending {
			return models.Pending(fmt.Sprintf("payment not completed yet, status %q", status))
		}
		return models.Ignored(fmt.Sprintf("payment not completed, status %q", status))
	}

	// Payments to the business operations address are not donations.
	if form.Get("business") == a.cfg.BusinessAddress {
		return models.Ignored("payment to business operations address")
	}

	if receiver := form.Get("receiver_email"); receiver != a.cfg.PrimaryAddress {
		slog.Warn("ipn: receiver is not the primary donations address", "receiver", receiver)
		return models.Ignored(fmt.Sprintf("receiver %q is not the primary donations address", receiver))
	}

	for _, field := range []string{"txn_id", "mc_gross", "mc_fee", "first_name", "last_name", "payer_email"} {
		if form.Get(field) == "" {
			return models.Failed(fmt.Sprintf("missing field %s", field))
		}
	}

	gross, err := money.Parse(form.Get("mc_gross"))
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid mc_gross: %v", err))
	}
	if gross.LessThan(a.cfg.MinimumDonation) {
		return models.Ignored(fmt.Sprintf("tiny donation ($%s)", gross))
	}

	fee, err := money.Parse(form.Get("mc_fee"))
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid mc_fee: %v", err))
	}
	net, err := money.Net(gross, fee)
	if err != nil {
		return models.Failed(fmt.Sprintf("invalid amounts: %v", err))
	}

	anonymous, canContact := readOptionSlots(form)

	return models.Completed(&models.Donation{
		FirstName:       form.Get("first_name"),
		LastName:        form.Get("last_name"),
		Email:           form.Get("payer_email"),
		EditorName:      form.Get("custom"),
		CanContact:      canContact,
		Anonymous:       anonymous,
		AddressStreet:   form.Get("address_street"),
		AddressCity:     form.Get("address_city"),
		AddressState:    form.Get("address_state"),
		AddressPostcode: form.Get("address_zip"),
		AddressCountry:  form.Get("address_country"),
		PaymentMethod:   models.MethodBankTransfer,
		TransactionID:   form.Get("txn_id"),
		Amount:          net,
		Fee:             &fee,
	})
}

// readOptionSlots derives the anonymity and contact-consent flags from the
// paired custom form options. The form layout is not fixed and slots may
// repeat a label, so each flag is the OR over every slot carrying it.
func readOptionSlots(form url.Values) (anonymous, canContact bool) {
	canContact = true // donors may be contacted unless they opt out

	slotYes := func(label string) (yes, labelled bool) {
		for _, n := range []string{"1", "2"} {
			if form.Get("option_name"+n) != label {
				continue
			}
			labelled = true
			if form.Get("option_selection"+n) == "yes" {
				yes = true
			}
		}
		return yes, labelled
	}

	anonymous, _ = slotYes("anonymous")
	if yes, labelled := slotYes("contact"); labelled {
		canContact = yes
	}
	return anonymous, canContact
}
