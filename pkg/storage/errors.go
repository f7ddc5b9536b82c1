package storage

import "errors"

// ErrDuplicateTransaction is returned when a donation's external
// transaction id has already been recorded. Duplicate webhook delivery is
// expected, so callers treat this as a no-op, not a failure.
var ErrDuplicateTransaction = errors.New("transaction id already recorded")

// ErrDonationNotFound is returned when no donation matches the lookup.
var ErrDonationNotFound = errors.New("donation not found")
