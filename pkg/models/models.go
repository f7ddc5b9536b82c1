package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies the provider that settled a donation.
type PaymentMethod string

const (
	MethodCard           PaymentMethod = "card"
	MethodWalletCheckout PaymentMethod = "wallet_checkout"
	MethodBankTransfer   PaymentMethod = "bank_transfer"
	MethodCryptocurrency PaymentMethod = "cryptocurrency"
	MethodCheck          PaymentMethod = "check"
)

// Donation is a single row in the donation ledger. Rows are append-only:
// once recorded they are never updated or deleted by this service.
type Donation struct {
	ID string

	// Donor details.
	FirstName  string
	LastName   string
	Email      string
	EditorName string // community handle, optional
	CanContact bool
	Anonymous  bool

	AddressStreet   string
	AddressCity     string
	AddressState    string
	AddressPostcode string
	AddressCountry  string

	// Transaction details.
	PaymentDate   time.Time
	PaymentMethod PaymentMethod

	// TransactionID is the provider-assigned settlement identifier and the
	// ledger's idempotency key. Empty for manual check donations.
	TransactionID string

	// Amount is the net credited to the beneficiary (gross minus fee).
	Amount decimal.Decimal
	// Fee is the processor fee. Nil for manual check donations.
	Fee  *decimal.Decimal
	Memo string
}

// Gross reconstructs the provider-reported figure: amount plus fee.
func (d *Donation) Gross() decimal.Decimal {
	if d.Fee == nil {
		return d.Amount
	}
	return d.Amount.Add(*d.Fee)
}

// DisplayName is the name used on receipts and donor listings.
func (d *Donation) DisplayName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// DonorGroup is one row of the grouped biggest-donors view.
type DonorGroup struct {
	FirstName   string
	LastName    string
	EditorName  string
	PaymentDate time.Time // most recent payment in the group
	Amount      decimal.Decimal
	Fee         decimal.Decimal
}
