// Package reports exposes the read views over the donation ledger.
package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chris/donation-reconciler/pkg/api"
	"github.com/chris/donation-reconciler/pkg/mapping"
	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/storage"
	"github.com/go-chi/chi/v5"
)

const defaultPageSize = 20

// ReportsHandler holds the dependencies for report-related handlers.
type ReportsHandler struct {
	Store         storage.DonationReader
	DaysPerDollar float64
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(store storage.DonationReader, daysPerDollar float64) *ReportsHandler {
	return &ReportsHandler{Store: store, DaysPerDollar: daysPerDollar}
}

// RecentDonations handles the paged chronological listing.
func (h *ReportsHandler) RecentDonations(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	count, donations, err := h.Store.RecentDonations(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve donations: %v", err), http.StatusInternalServerError)
		return
	}

	resp := api.RecentDonationsResponse{
		TotalCount: count,
		Donations:  make([]api.Donation, len(donations)),
	}
	for i, d := range donations {
		resp.Donations[i] = *mapping.ToApiDonation(&d)
	}

	respond(w, resp)
}

// BiggestDonors handles the paged grouped listing. Anonymous donations
// never appear here.
func (h *ReportsHandler) BiggestDonors(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	count, groups, err := h.Store.BiggestDonors(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve donors: %v", err), http.StatusInternalServerError)
		return
	}

	resp := api.BiggestDonorsResponse{
		TotalCount: count,
		Donors:     make([]api.DonorGroup, len(groups)),
	}
	for i, g := range groups {
		resp.Donors[i] = *mapping.ToApiDonorGroup(&g)
	}

	respond(w, resp)
}

// DonationByTransaction handles the lookup of a single donation by its
// external transaction id, used to confirm whether a provider payment has
// been recorded.
func (h *ReportsHandler) DonationByTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")

	donation, err := h.Store.GetDonationByTransactionID(r.Context(), transactionID)
	if err != nil {
		if errors.Is(err, storage.ErrDonationNotFound) {
			http.Error(w, "Donation not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to retrieve donation: %v", err), http.StatusInternalServerError)
		return
	}

	respond(w, mapping.ToApiDonation(donation))
}

// NagCheck handles the lapsed-donor signal for one editor handle.
func (h *ReportsHandler) NagCheck(w http.ResponseWriter, r *http.Request) {
	editor := chi.URLParam(r, "editor")

	donations, err := h.Store.ListDonationsByEditor(r.Context(), editor)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve donations: %v", err), http.StatusInternalServerError)
		return
	}

	status := models.ComputeNagStatus(donations, time.Now(), h.DaysPerDollar)
	respond(w, mapping.ToApiNagStatus(editor, status))
}

func pageParams(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

func respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
