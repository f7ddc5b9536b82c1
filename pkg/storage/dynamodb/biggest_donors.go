package dynamodb

import (
	"context"
	"sort"

	"github.com/chris/donation-reconciler/pkg/models"
)

// BiggestDonors returns the total group count and a page of donor groups
// ordered by summed amount descending. Donations from the same person are
// grouped by (first name, last name, editor handle); anonymous rows are
// excluded entirely.
func (s *Store) BiggestDonors(ctx context.Context, limit, offset int) (int, []models.DonorGroup, error) {
	donations, err := s.listAllDonations(ctx)
	if err != nil {
		return 0, nil, err
	}

	type donorKey struct {
		firstName  string
		lastName   string
		editorName string
	}

	groups := make(map[donorKey]*models.DonorGroup)
	var order []donorKey

	// listAllDonations is newest-first, so the first row seen for a donor
	// carries the group's payment date.
	for _, d := range donations {
		if d.Anonymous {
			continue
		}
		key := donorKey{d.FirstName, d.LastName, d.EditorName}
		group, ok := groups[key]
		if !ok {
			group = &models.DonorGroup{
				FirstName:   d.FirstName,
				LastName:    d.LastName,
				EditorName:  d.EditorName,
				PaymentDate: d.PaymentDate,
			}
			groups[key] = group
			order = append(order, key)
		}
		group.Amount = group.Amount.Add(d.Amount)
		if d.Fee != nil {
			group.Fee = group.Fee.Add(*d.Fee)
		}
	}

	result := make([]models.DonorGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})

	count := len(result)
	return count, page(result, limit, offset), nil
}
