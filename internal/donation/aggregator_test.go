package donation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDonorsGroupsByEmail(t *testing.T) {
	donations := []Donation{
		{DonorName: "Asha", DonorEmail: "a@x.com", DonorCountry: "Nepal", Amount: 100},
		{DonorName: "Asha K", DonorEmail: "a@x.com", DonorCountry: "India", Amount: 50},
		{DonorName: "Bikram", DonorEmail: "b@x.com", DonorCountry: "Nepal", Amount: 200},
	}

	result := AggregateDonors(donations, TopDonorCount)

	require.Len(t, result, 2)
	assert.Equal(t, "b@x.com", result[0].DonorEmail)
	assert.Equal(t, 200.0, result[0].TotalAmount)
	assert.Equal(t, "a@x.com", result[1].DonorEmail)
	assert.Equal(t, 150.0, result[1].TotalAmount)

	// Name and country come from the first donation seen.
	assert.Equal(t, "Asha", result[1].DonorName)
	assert.Equal(t, "Nepal", result[1].DonorCountry)
}

func TestAggregateDonorsSortedNonIncreasing(t *testing.T) {
	var donations []Donation
	for i := 0; i < 25; i++ {
		donations = append(donations, Donation{
			DonorEmail: fmt.Sprintf("donor%d@x.com", i),
			Amount:     float64((i * 37) % 101),
		})
	}

	result := AggregateDonors(donations, 0)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].TotalAmount, result[i].TotalAmount)
	}
}

func TestAggregateDonorsEmptyInput(t *testing.T) {
	result := AggregateDonors(nil, TopDonorCount)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestAggregateDonorsTruncatesToLimit(t *testing.T) {
	var donations []Donation
	for i := 0; i < 15; i++ {
		donations = append(donations, Donation{
			DonorEmail: fmt.Sprintf("donor%d@x.com", i),
			Amount:     float64(100 + i),
		})
	}

	result := AggregateDonors(donations, TopDonorCount)

	require.Len(t, result, TopDonorCount)
	// The ten largest totals survive: 114 down to 105.
	assert.Equal(t, 114.0, result[0].TotalAmount)
	assert.Equal(t, 105.0, result[len(result)-1].TotalAmount)
}

func TestAggregateDonorsTiesKeepEncounterOrder(t *testing.T) {
	donations := []Donation{
		{DonorName: "First", DonorEmail: "first@x.com", Amount: 50},
		{DonorName: "Second", DonorEmail: "second@x.com", Amount: 50},
		{DonorName: "Third", DonorEmail: "third@x.com", Amount: 50},
	}

	result := AggregateDonors(donations, TopDonorCount)

	require.Len(t, result, 3)
	assert.Equal(t, "first@x.com", result[0].DonorEmail)
	assert.Equal(t, "second@x.com", result[1].DonorEmail)
	assert.Equal(t, "third@x.com", result[2].DonorEmail)
}

func TestAggregateDonorsBlankEmailsDoNotCollide(t *testing.T) {
	donations := []Donation{
		{DonorName: "Anon One", DonorEmail: "", Amount: 100},
		{DonorName: "Anon Two", DonorEmail: "  ", Amount: 300},
	}

	result := AggregateDonors(donations, TopDonorCount)

	require.Len(t, result, 2)
	assert.Equal(t, 300.0, result[0].TotalAmount)
	assert.Equal(t, "Anon Two", result[0].DonorName)
	assert.Equal(t, 100.0, result[1].TotalAmount)
}

func TestAggregateDonorsEmailCaseInsensitive(t *testing.T) {
	donations := []Donation{
		{DonorName: "Asha", DonorEmail: "A@X.com", Amount: 10},
		{DonorName: "Asha", DonorEmail: "a@x.com", Amount: 20},
	}

	result := AggregateDonors(donations, TopDonorCount)

	require.Len(t, result, 1)
	assert.Equal(t, 30.0, result[0].TotalAmount)
}
