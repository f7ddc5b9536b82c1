package dynamodb

import (
	"strings"
	"time"

	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/money"
	"github.com/shopspring/decimal"
)

// donationsPartition is the fixed partition key for the chronological GSI,
// so all ledger rows can be queried in payment-date order.
const donationsPartition = "DONATIONS"

// donationRecord is the DynamoDB shape of a ledger row. Amounts are stored
// as integer cents; the fixed-point conversion happens at this boundary.
type donationRecord struct {
	ID     string `dynamodbav:"id"`
	GSI1PK string `dynamodbav:"gsi1pk"`

	FirstName       string `dynamodbav:"first_name"`
	LastName        string `dynamodbav:"last_name,omitempty"`
	Email           string `dynamodbav:"email"`
	EditorName      string `dynamodbav:"editor_name,omitempty"`
	EditorNameLower string `dynamodbav:"editor_name_lower,omitempty"`
	CanContact      bool   `dynamodbav:"can_contact"`
	Anonymous       bool   `dynamodbav:"anonymous"`

	AddressStreet   string `dynamodbav:"address_street,omitempty"`
	AddressCity     string `dynamodbav:"address_city,omitempty"`
	AddressState    string `dynamodbav:"address_state,omitempty"`
	AddressPostcode string `dynamodbav:"address_postcode,omitempty"`
	AddressCountry  string `dynamodbav:"address_country,omitempty"`

	PaymentDate   time.Time `dynamodbav:"payment_date"`
	PaymentMethod string    `dynamodbav:"payment_method"`
	TransactionID string    `dynamodbav:"transaction_id,omitempty"`
	AmountCents   int64     `dynamodbav:"amount_cents"`
	FeeCents      *int64    `dynamodbav:"fee_cents,omitempty"`
	Memo          string    `dynamodbav:"memo,omitempty"`
}

// claimRecord is one claimed external transaction id. The conditional put
// against this table is what makes recording exactly-once.
type claimRecord struct {
	TransactionID string `dynamodbav:"transaction_id"`
	DonationID    string `dynamodbav:"donation_id"`
}

func toRecord(d *models.Donation) donationRecord {
	rec := donationRecord{
		ID:              d.ID,
		GSI1PK:          donationsPartition,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		EditorName:      d.EditorName,
		EditorNameLower: strings.ToLower(d.EditorName),
		CanContact:      d.CanContact,
		Anonymous:       d.Anonymous,
		AddressStreet:   d.AddressStreet,
		AddressCity:     d.AddressCity,
		AddressState:    d.AddressState,
		AddressPostcode: d.AddressPostcode,
		AddressCountry:  d.AddressCountry,
		PaymentDate:     d.PaymentDate,
		PaymentMethod:   string(d.PaymentMethod),
		TransactionID:   d.TransactionID,
		AmountCents:     money.ToMinorUnits(d.Amount),
		Memo:            d.Memo,
	}
	if d.Fee != nil {
		cents := money.ToMinorUnits(*d.Fee)
		rec.FeeCents = &cents
	}
	return rec
}

func fromRecord(rec donationRecord) models.Donation {
	d := models.Donation{
		ID:              rec.ID,
		FirstName:       rec.FirstName,
		LastName:        rec.LastName,
		Email:           rec.Email,
		EditorName:      rec.EditorName,
		CanContact:      rec.CanContact,
		Anonymous:       rec.Anonymous,
		AddressStreet:   rec.AddressStreet,
		AddressCity:     rec.AddressCity,
		AddressState:    rec.AddressState,
		AddressPostcode: rec.AddressPostcode,
		AddressCountry:  rec.AddressCountry,
		PaymentDate:     rec.PaymentDate,
		PaymentMethod:   models.PaymentMethod(rec.PaymentMethod),
		TransactionID:   rec.TransactionID,
		Amount:          decimal.New(rec.AmountCents, -2),
		Memo:            rec.Memo,
	}
	if rec.FeeCents != nil {
		fee := decimal.New(*rec.FeeCents, -2)
		d.Fee = &fee
	}
	return d
}
