package providers

import (
	"context"
	"net/url"

	"github.com/chris/donation-reconciler/pkg/models"
)

// Event source identifiers. Each inbound webhook is tagged with the
// provider it came from so the engine can select the right adapter.
const (
	SourceCard     = "card"
	SourceIPN      = "ipn"
	SourceCheckout = "checkout"
)

// Event is the raw envelope handed to an adapter. Body carries JSON
// payloads (card charge object, checkout trigger); Form carries the
// form-encoded key/value map of an IPN.
type Event struct {
	Source string
	Body   []byte
	Form   url.Values
}

// Adapter classifies a raw provider event into a settlement outcome.
// Adapters never touch persistence; they are pure transformations plus at
// most one outbound lookup against the provider's authoritative API.
// Classification problems (malformed payloads, failed lookups) surface as
// Failed or Ignored outcomes, never as errors.
type Adapter interface {
	// Source returns the event source this adapter handles.
	Source() string

	// Classify validates the event and maps it onto canonical donation
	// fields.
	Classify(ctx context.Context, event Event) models.Outcome
}

// Registry selects adapters by event source.
type Registry map[string]Adapter

// NewRegistry builds a registry from the given adapters.
func NewRegistry(adapters ...Adapter) Registry {
	r := make(Registry, len(adapters))
	for _, a := range adapters {
		r[a.Source()] = a
	}
	return r
}
