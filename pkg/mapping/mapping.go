package mapping

import (
	"github.com/chris/donation-reconciler/pkg/api"
	"github.com/chris/donation-reconciler/pkg/models"
	"github.com/chris/donation-reconciler/pkg/recon"
)

// ToApiDonation converts a domain Donation model to an API Donation model.
func ToApiDonation(d *models.Donation) *api.Donation {
	out := &api.Donation{
		Id:            d.ID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		EditorName:    d.EditorName,
		Anonymous:     d.Anonymous,
		PaymentDate:   d.PaymentDate,
		PaymentMethod: string(d.PaymentMethod),
		Amount:        d.Amount.StringFixed(2),
	}
	if d.Fee != nil {
		out.Fee = d.Fee.StringFixed(2)
	}
	return out
}

// ToApiDonorGroup converts a domain DonorGroup to an API DonorGroup.
func ToApiDonorGroup(g *models.DonorGroup) *api.DonorGroup {
	return &api.DonorGroup{
		FirstName:   g.FirstName,
		LastName:    g.LastName,
		EditorName:  g.EditorName,
		PaymentDate: g.PaymentDate,
		Amount:      g.Amount.StringFixed(2),
		Fee:         g.Fee.StringFixed(2),
	}
}

// ToApiNagStatus converts a domain NagStatus to an API response.
func ToApiNagStatus(editor string, status models.NagStatus) *api.NagStatusResponse {
	return &api.NagStatusResponse{
		Editor: editor,
		State:  string(status.State),
		Days:   status.Days,
	}
}

// ToApiResult converts an engine result to a webhook acknowledgement.
func ToApiResult(result recon.Result) *api.WebhookResult {
	return &api.WebhookResult{
		Status:     string(result.Status),
		DonationId: result.DonationID,
		Reason:     result.Reason,
	}
}
