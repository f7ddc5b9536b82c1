// Package recon orchestrates provider classification, idempotent ledger
// writes, and receipt dispatch for incoming payment events.
package recon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/notifier"
	"github.com/chris/donation-reconciler/pkg/providers"
	"github.com/chris/donation-reconciler/pkg/storage"
	"github.com/shopspring/decimal"
)

// Status is the terminal result of processing one provider event.
type Status string

const (
	// StatusRecorded means a new ledger row was committed.
	StatusRecorded Status = "RECORDED"
	// StatusDuplicate means the transaction id was already recorded; the
	// event is a redelivery and was dropped without error.
	StatusDuplicate Status = "DUPLICATE"
	// StatusSkipped means the event was classified Failed or Ignored, or
	// filtered out; nothing was written.
	StatusSkipped Status = "SKIPPED"
	// StatusDeferred means the payment is still pending; the provider is
	// expected to redeliver once it settles.
	StatusDeferred Status = "DEFERRED"
)

// Result describes what processing an event did.
type Result struct {
	Status     Status
	DonationID string
	Reason     string
}

// Engine runs the reconciliation flow. Each event is an independent unit
// of work; the only mutual-exclusion boundary is the transaction-id
// uniqueness enforced by the storage layer, so concurrent duplicate
// deliveries are safe across processes.
type Engine struct {
	adapters providers.Registry
	store    storage.DonationWriter
	notifier notifier.Notifier
	minimum  decimal.Decimal
	logger   *slog.Logger
}

// New creates an Engine.
func New(adapters providers.Registry, store storage.DonationWriter, n notifier.Notifier, minimum decimal.Decimal, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		adapters: adapters,
		store:    store,
		notifier: n,
		minimum:  minimum,
		logger:   logger,
	}
}

// Process selects the adapter for the event's source, classifies the
// event, and reconciles the outcome.
func (e *Engine) Process(ctx context.Context, event providers.Event) (Result, error) {
	adapter, ok := e.adapters[event.Source]
	if !ok {
		return Result{}, fmt.Errorf("no adapter registered for source %q", event.Source)
	}

	outcome := adapter.Classify(ctx, event)
	return e.Reconcile(ctx, event.Source, outcome)
}

// Reconcile turns a settlement outcome into at most one ledger row and at
// most one receipt dispatch. Only storage failures are returned as errors;
// everything else is a terminal result the webhook can acknowledge.
func (e *Engine) Reconcile(ctx context.Context, source string, outcome models.Outcome) (Result, error) {
	switch outcome.Status {
	case models.OutcomePending:
		e.logger.Info("payment pending, deferring", "source", source, "reason", outcome.Reason)
		return Result{Status: StatusDeferred, Reason: outcome.Reason}, nil

	case models.OutcomeFailed:
		e.logger.Warn("event failed classification", "source", source, "reason", outcome.Reason)
		return Result{Status: StatusSkipped, Reason: outcome.Reason}, nil

	case models.OutcomeIgnored:
		e.logger.Info("event ignored", "source", source, "reason", outcome.Reason)
		return Result{Status: StatusSkipped, Reason: outcome.Reason}, nil

	case models.OutcomeCompleted:
		return e.record(ctx, source, outcome.Donation)

	default:
		return Result{}, fmt.Errorf("unknown outcome status %q", outcome.Status)
	}
}

func (e *Engine) record(ctx context.Context, source string, donation *models.Donation) (Result, error) {
	if donation == nil {
		return Result{}, fmt.Errorf("completed outcome from %q carried no donation", source)
	}

	// Final floor check: every source gets the same minimum, whatever its
	// adapter already filtered.
	if donation.Gross().LessThan(e.minimum) {
		e.logger.Info("tiny donation, skipping", "source", source, "gross", donation.Gross())
		return Result{Status: StatusSkipped, Reason: fmt.Sprintf("tiny donation ($%s)", donation.Gross())}, nil
	}

	created, err := e.store.CreateDonation(ctx, donation)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateTransaction) {
			e.logger.Info("transaction id has been used before", "source", source, "transaction_id", donation.TransactionID)
			return Result{Status: StatusDuplicate, Reason: "transaction id already recorded"}, nil
		}
		// The event was not durably recorded; surface a hard failure so the
		// provider redelivers.
		return Result{}, fmt.Errorf("failed to record donation: %w", err)
	}

	e.logger.Info("donation recorded", "source", source, "donation_id", created.ID, "amount", created.Amount)

	// Receipt dispatch happens after the commit and is best-effort: a
	// failure here never changes the result or rolls back the row.
	receipt := notifier.Receipt{
		Email:       created.Email,
		PaymentDate: created.PaymentDate,
		Amount:      created.Amount,
		DisplayName: created.DisplayName(),
		EditorName:  created.EditorName,
	}
	if err := e.notifier.SendReceipt(ctx, receipt); err != nil {
		e.logger.Error("donation recorded but receipt dispatch failed", "donation_id", created.ID, "error", err)
	}

	return Result{Status: StatusRecorded, DonationID: created.ID}, nil
}
