// Package webhooks exposes the inbound provider notification endpoints.
package webhooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/chris/donation-reconciler/pkg/mapping"
	"github.com/chris/donation-reconciler/pkg/providers"
	"github.com/chris/donation-reconciler/pkg/recon"
)

// maxBodyBytes bounds webhook payload size; provider payloads are small.
const maxBodyBytes = 1 << 20

// Processor runs the reconciliation flow for one provider event.
type Processor interface {
	Process(ctx context.Context, event providers.Event) (recon.Result, error)
}

// WebhooksHandler holds the dependencies for the webhook endpoints.
type WebhooksHandler struct {
	Engine Processor
}

// NewWebhooksHandler creates a new WebhooksHandler.
func NewWebhooksHandler(engine Processor) *WebhooksHandler {
	return &WebhooksHandler{Engine: engine}
}

// HandleCard handles card processor charge notifications.
func (h *WebhooksHandler) HandleCard(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	h.process(w, r, providers.Event{Source: providers.SourceCard, Body: body})
}

// HandleIPN handles bank-IPN form-encoded notifications.
func (h *WebhooksHandler) HandleIPN(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	h.process(w, r, providers.Event{Source: providers.SourceIPN, Form: r.PostForm})
}

// HandleCheckout handles wallet-checkout trigger notifications.
func (h *WebhooksHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	h.process(w, r, providers.Event{Source: providers.SourceCheckout, Body: body})
}

// process runs the engine and acknowledges the event. Only a storage
// failure produces a non-2xx status, so the provider redelivers exactly
// the events that were not durably recorded.
func (h *WebhooksHandler) process(w http.ResponseWriter, r *http.Request, event providers.Event) {
	result, err := h.Engine.Process(r.Context(), event)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to process event: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiResult(result)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
