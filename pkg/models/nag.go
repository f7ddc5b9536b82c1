package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NagState indicates whether a donor is due for a reminder.
type NagState string

const (
	// NagUnknown means the donor has no recorded donations.
	NagUnknown NagState = "UNKNOWN"
	// NoNagNeeded means the donor's best gift still covers them.
	NoNagNeeded NagState = "NO_NAG_NEEDED"
	// ShouldNag means the donor's day credit has run out.
	ShouldNag NagState = "SHOULD_NAG"
)

// NagStatus is the derived lapsed-donor signal. Days is the remaining day
// credit (negative when the donor is overdue).
type NagStatus struct {
	State NagState
	Days  float64
}

const hoursPerDay = 24

// ComputeNagStatus derives the nag signal from a donor's ledger rows.
// Each gift purchases (amount + fee) * daysPerDollar donor-days from its
// payment date; the donor's single highest-scoring gift decides.
func ComputeNagStatus(donations []Donation, now time.Time, daysPerDollar float64) NagStatus {
	if len(donations) == 0 {
		return NagStatus{State: NagUnknown}
	}

	best := 0.0
	found := false
	for _, d := range donations {
		total := d.Amount
		if d.Fee != nil {
			total = total.Add(*d.Fee)
		}
		credit := total.Mul(decimal.NewFromFloat(daysPerDollar)).InexactFloat64()
		elapsed := now.Sub(d.PaymentDate).Hours() / hoursPerDay
		nag := credit - elapsed
		if !found || nag > best {
			best = nag
			found = true
		}
	}

	if best >= 0 {
		return NagStatus{State: NoNagNeeded, Days: best}
	}
	return NagStatus{State: ShouldNag, Days: best}
}
