package storage

import (
	"context"

	"github.com/chris/donation-reconciler/pkg/models"
)

// DonationWriter defines the interface for appending to the donation
// ledger.
type DonationWriter interface {
	// CreateDonation appends a donation to the ledger, atomically claiming
	// its external transaction id. It returns ErrDuplicateTransaction when
	// the id has already been claimed; exactly one of two concurrent
	// writers carrying the same id succeeds.
	CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error)
}

// DonationReader defines the interface for the read views over the ledger.
type DonationReader interface {
	// GetDonationByTransactionID retrieves a donation by its external
	// transaction id. Returns ErrDonationNotFound when absent.
	GetDonationByTransactionID(ctx context.Context, transactionID string) (*models.Donation, error)

	// RecentDonations returns the total row count and a page of donations
	// ordered by payment date descending. Anonymous donations are included.
	RecentDonations(ctx context.Context, limit, offset int) (int, []models.Donation, error)

	// BiggestDonors returns the total group count and a page of donor
	// groups ordered by summed amount descending. Anonymous donations are
	// excluded.
	BiggestDonors(ctx context.Context, limit, offset int) (int, []models.DonorGroup, error)

	// ListDonationsByEditor retrieves all donations for a community handle,
	// matched case-insensitively.
	ListDonationsByEditor(ctx context.Context, editor string) ([]models.Donation, error)
}

// DonationStore combines the reader and writer interfaces.
type DonationStore interface {
	DonationWriter
	DonationReader
}
