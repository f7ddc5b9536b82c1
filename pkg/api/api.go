// Package api holds the JSON shapes of the HTTP surface. Amounts are
// rendered as two-decimal strings.
package api

import "time"

// Donation is one row of the chronological listing.
type Donation struct {
	Id            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name,omitempty"`
	EditorName    string    `json:"editor_name,omitempty"`
	Anonymous     bool      `json:"anonymous"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	Amount        string    `json:"amount"`
	Fee           string    `json:"fee,omitempty"`
}

// RecentDonationsResponse is the paged chronological listing.
type RecentDonationsResponse struct {
	TotalCount int        `json:"total_count"`
	Donations  []Donation `json:"donations"`
}

// DonorGroup is one row of the grouped biggest-donors listing.
type DonorGroup struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name,omitempty"`
	EditorName  string    `json:"editor_name,omitempty"`
	PaymentDate time.Time `json:"payment_date"`
	Amount      string    `json:"amount"`
	Fee         string    `json:"fee"`
}

// BiggestDonorsResponse is the paged biggest-donors listing.
type BiggestDonorsResponse struct {
	TotalCount int          `json:"total_count"`
	Donors     []DonorGroup `json:"donors"`
}

// NagStatusResponse is the lapsed-donor signal for one editor.
type NagStatusResponse struct {
	Editor string  `json:"editor"`
	State  string  `json:"state"`
	Days   float64 `json:"days"`
}

// WebhookResult acknowledges a processed provider event.
type WebhookResult struct {
	Status     string `json:"status"`
	DonationId string `json:"donation_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
}
