package models

// OutcomeStatus is the normalized classification of a provider event.
type OutcomeStatus string

const (
	OutcomeCompleted OutcomeStatus = "COMPLETED"
	OutcomePending   OutcomeStatus = "PENDING"
	OutcomeFailed    OutcomeStatus = "FAILED"
	OutcomeIgnored   OutcomeStatus = "IGNORED"
)

// Outcome is the result of classifying a raw provider event. Only a
// Completed outcome carries canonical donation fields; the others carry a
// human-readable reason.
type Outcome struct {
	Status   OutcomeStatus
	Reason   string
	Donation *Donation
}

// Completed wraps canonical donation fields for a settled payment.
func Completed(d *Donation) Outcome {
	return Outcome{Status: OutcomeCompleted, Donation: d}
}

// Pending marks a payment that is authorized but not yet settled. The
// provider is expected to redeliver once it settles.
func Pending(reason string) Outcome {
	return Outcome{Status: OutcomePending, Reason: reason}
}

// Failed marks a payment that will never settle, or an event this service
// could not make sense of.
func Failed(reason string) Outcome {
	return Outcome{Status: OutcomeFailed, Reason: reason}
}

// Ignored marks a valid event that is deliberately not recorded, e.g. a
// tiny donation or a payment to the business operations address.
func Ignored(reason string) Outcome {
	return Outcome{Status: OutcomeIgnored, Reason: reason}
}
