package donation

import (
	"fmt"
	"sort"
	"strings"
)

// TopDonorCount is how many donors the public leaderboard shows.
const TopDonorCount = 10

// DonorTotal is one leaderboard row: all verified donations sharing a
// donor email collapsed into a single total.
type DonorTotal struct {
	DonorName    string  `json:"donor_name"`
	DonorEmail   string  `json:"donor_email"`
	DonorCountry string  `json:"donor_country"`
	TotalAmount  float64 `json:"total_amount"`
}

// AggregateDonors groups donations by donor email and returns totals
// sorted by amount descending, truncated to limit. Name and country
// come from the first donation seen for each email. Ties keep
// encounter order. Blank emails should be rejected upstream; if one
// slips through it gets a synthetic key so distinct anonymous rows
// never merge into each other.
func AggregateDonors(donations []Donation, limit int) []DonorTotal {
	totals := make(map[string]*DonorTotal)
	order := make([]string, 0, len(donations))

	for i, d := range donations {
		key := strings.ToLower(strings.TrimSpace(d.DonorEmail))
		if key == "" {
			key = fmt.Sprintf("\x00anonymous:%d", i)
		}

		if acc, ok := totals[key]; ok {
			acc.TotalAmount += d.Amount
			continue
		}
		totals[key] = &DonorTotal{
			DonorName:    d.DonorName,
			DonorEmail:   d.DonorEmail,
			DonorCountry: d.DonorCountry,
			TotalAmount:  d.Amount,
		}
		order = append(order, key)
	}

	result := make([]DonorTotal, 0, len(order))
	for _, key := range order {
		result = append(result, *totals[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalAmount > result[j].TotalAmount
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
