package checkout_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/providers"
	"github.com/chris/donation-reconciler/pkg/providers/checkout"
	"github.com/chris/donation-reconciler/pkg/providers/checkout/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAdapter(client checkout.Client) *checkout.Adapter {
	return checkout.New(client, checkout.Config{
		MinimumDonation: decimal.RequireFromString("0.50"),
	})
}

func triggerEvent(t *testing.T, trigger checkout.Trigger) providers.Event {
	t.Helper()
	body, err := json.Marshal(trigger)
	require.NoError(t, err)
	return providers.Event{Source: providers.SourceCheckout, Body: body}
}

func gross(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestClassifySettled(t *testing.T) {
	client := mocks.NewClient(t)
	client.On("GetCheckout", mock.Anything, "CHK-1").Return(&checkout.Checkout{
		CheckoutID: "CHK-1",
		Gross:      gross("20.00"),
		Fee:        json.Number("1.00"),
		State:      "settled",
		PayerName:  "Grace Hopper",
		PayerEmail: "grace@example.org",
		ShippingAddress: &checkout.ShippingAddress{
			Address1: "1 Main St",
			City:     "Arlington",
			State:    "VA",
			Zip:      "22201",
			Country:  "US",
		},
	}, nil)

	outcome := testAdapter(client).Classify(context.Background(), triggerEvent(t, checkout.Trigger{
		CheckoutID: "CHK-1",
		Editor:     "grace_editor",
		CanContact: true,
	}))

	require.Equal(t, models.OutcomeCompleted, outcome.Status)
	d := outcome.Donation
	assert.Equal(t, "CHK-1", d.TransactionID)
	assert.Equal(t, "19.00", d.Amount.StringFixed(2))
	require.NotNil(t, d.Fee)
	assert.Equal(t, "1.00", d.Fee.StringFixed(2))
	assert.Equal(t, "Grace Hopper", d.FirstName)
	assert.Equal(t, "grace@example.org", d.Email)
	assert.Equal(t, "grace_editor", d.EditorName)
	assert.Equal(t, models.MethodWalletCheckout, d.PaymentMethod)
	assert.Equal(t, "1 Main St", d.AddressStreet)
	assert.Equal(t, "VA", d.AddressState)
	assert.Equal(t, "22201", d.AddressPostcode)
}

func TestClassifyAddressVariants(t *testing.T) {
	// Non-US addresses come with region/postcode instead of state/zip.
	client := mocks.NewClient(t)
	client.On("GetCheckout", mock.Anything, "CHK-2").Return(&checkout.Checkout{
		CheckoutID: "CHK-2",
		Gross:      gross("20.00"),
		Fee:        json.Number("1.00"),
		State:      "captured",
		PayerName:  "Alan Turing",
		PayerEmail: "alan@example.org",
		ShippingAddress: &checkout.ShippingAddress{
			Address1: "2 King's Parade",
			Address2: "Flat 3",
			City:     "Cambridge",
			Region:   "Cambridgeshire",
			Postcode: "CB2 1SJ",
			Country:  "GB",
		},
	}, nil)

	outcome := testAdapter(client).Classify(context.Background(), triggerEvent(t, checkout.Trigger{CheckoutID: "CHK-2"}))

	require.Equal(t, models.OutcomeCompleted, outcome.Status)
	d := outcome.Donation
	assert.Equal(t, "2 King's Parade\nFlat 3", d.AddressStreet)
	assert.Equal(t, "Cambridgeshire", d.AddressState)
	assert.Equal(t, "CB2 1SJ", d.AddressPostcode)
}

func TestClassifyStates(t *testing.T) {
	stateOutcome := func(t *testing.T, state string) models.Outcome {
		client := mocks.NewClient(t)
		client.On("GetCheckout", mock.Anything, "CHK-3").Return(&checkout.Checkout{
			CheckoutID: "CHK-3",
			Gross:      gross("20.00"),
			Fee:        json.Number("1.00"),
			State:      state,
		}, nil)
		return testAdapter(client).Classify(context.Background(), triggerEvent(t, checkout.Trigger{CheckoutID: "CHK-3"}))
	}

	t.Run("authorized defers", func(t *testing.T) {
		outcome := stateOutcome(t, "authorized")
		assert.Equal(t, models.OutcomePending, outcome.Status)
	})

	t.Run("reserved defers", func(t *testing.T) {
		outcome := stateOutcome(t, "reserved")
		assert.Equal(t, models.OutcomePending, outcome.Status)
	})

	t.Run("terminal failures fail", func(t *testing.T) {
		for _, state := range []string{"expired", "cancelled", "failed", "refunded", "chargeback"} {
			outcome := stateOutcome(t, state)
			assert.Equal(t, models.OutcomeFailed, outcome.Status, state)
		}
	})

	t.Run("unknown state fails", func(t *testing.T) {
		outcome := stateOutcome(t, "teleported")
		assert.Equal(t, models.OutcomeFailed, outcome.Status)
		assert.Contains(t, outcome.Reason, "teleported")
	})
}

func TestClassifyValidation(t *testing.T) {
	t.Run("malformed trigger fails", func(t *testing.T) {
		adapter := testAdapter(mocks.NewClient(t))
		outcome := adapter.Classify(context.Background(), providers.Event{Body: []byte("not json")})
		assert.Equal(t, models.OutcomeFailed, outcome.Status)
	})

	t.Run("missing checkout id fails", func(t *testing.T) {
		adapter := testAdapter(mocks.NewClient(t))
		outcome := adapter.Classify(context.Background(), triggerEvent(t, checkout.Trigger{}))
		assert.Equal(t, models.OutcomeFailed, outcome.Status)
	})

	t.Run("provider query failure fails", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.On("GetCheckout", mock.Anything, "CHK-4").Return(nil, errors.New("connection refused"))

		outcome := testAdapter(client).Classify(context.Background(), triggerEvent(t, checkout.Trigger{CheckoutID: "CHK-4"}))
		assert.Equal(t, models.OutcomeFailed, outcome.Status)
	})

	t.Run("provider error field fails", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.On("GetCheckout", mock.Anything, "CHK-5").Return(&checkout.Checkout{
			Error:            "access_denied",
			ErrorDescription: "checkout does not belong to this account",
		}, nil)

		outcome := testAdapter(client).Classify(context.Background(), triggerEvent(t, checkout.Trigger{CheckoutID: "CHK-5"}))
		assert.Equal(t, models.OutcomeFailed, outcome.Status)
		assert.Contains(t, outcome.Reason, "checkout does not belong to this account")
	})

	t.Run("missing gross fails", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.On("GetCheckout", mock.Anything, "CHK-6").Return(&checkout.Checkout{State: "settled"}, nil)

		outcome := testAdapter(client).Classify(context.Background(), triggerEvent(t, checkout.Trigger{CheckoutID: "CHK-6"}))
		assert.Equal(t, models.OutcomeFailed, outcome.Status)
	})

	t.Run("tiny donation is ignored", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.On("GetCheckout", mock.Anything, "CHK-7").Return(&checkout.Checkout{
			Gross: gross("0.25"),
			Fee:   json.Number("0.05"),
			State: "settled",
		}, nil)

		outcome := testAdapter(client).Classify(context.Background(), triggerEvent(t, checkout.Trigger{CheckoutID: "CHK-7"}))
		assert.Equal(t, models.OutcomeIgnored, outcome.Status)
	})
}
