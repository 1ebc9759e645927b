package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testCatalog = Catalog{
	"Haircut":  {Price: 100000, DurationMinutes: 30},
	"Manicure": {Price: 80000, DurationMinutes: 45},
	"Hair Spa": {Price: 150000, DurationMinutes: 60},
}

// 2026-08-24 is a Monday, 2026-08-29 a Saturday.
var (
	aMonday   = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	aSaturday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
)

func TestTierForBookingCount(t *testing.T) {
	tests := []struct {
		count int
		want  Tier
	}{
		{0, TierBronze},
		{4, TierBronze},
		{5, TierSilver},
		{9, TierSilver},
		{10, TierGold},
		{19, TierGold},
		{20, TierPlatinum},
		{49, TierPlatinum},
		{50, TierDiamond},
		{120, TierDiamond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForBookingCount(tt.count), "count %d", tt.count)
	}
}

func TestNextTierAt(t *testing.T) {
	assert.Equal(t, 5, NextTierAt(0))
	assert.Equal(t, 10, NextTierAt(7))
	assert.Equal(t, 50, NextTierAt(20))
	assert.Equal(t, 0, NextTierAt(50))
}

func TestComputePricePlatinum(t *testing.T) {
	quote := ComputePrice([]string{"Haircut", "Manicure"}, testCatalog, TierPlatinum, aMonday, false)
	assert.Equal(t, int64(180000), quote.Gross)
	assert.Equal(t, int64(18000), quote.Discount)
	assert.Equal(t, int64(162000), quote.Net)
}

func TestComputePriceDiamond(t *testing.T) {
	quote := ComputePrice([]string{"Haircut", "Manicure"}, testCatalog, TierDiamond, aSaturday, false)
	assert.Equal(t, int64(180000), quote.Gross)
	assert.Equal(t, int64(27000), quote.Discount)
	assert.Equal(t, int64(153000), quote.Net)
}

func TestComputePriceSilverWeekdayOnly(t *testing.T) {
	monday := ComputePrice([]string{"Haircut"}, testCatalog, TierSilver, aMonday, false)
	assert.Equal(t, int64(5000), monday.Discount)

	saturday := ComputePrice([]string{"Haircut"}, testCatalog, TierSilver, aSaturday, false)
	assert.Equal(t, int64(0), saturday.Discount)
	assert.Equal(t, saturday.Gross, saturday.Net)
}

func TestComputePriceBronzeFirstBookingOnly(t *testing.T) {
	first := ComputePrice([]string{"Haircut"}, testCatalog, TierBronze, aMonday, true)
	assert.Equal(t, int64(5000), first.Discount)

	repeat := ComputePrice([]string{"Haircut"}, testCatalog, TierBronze, aMonday, false)
	assert.Equal(t, int64(0), repeat.Discount)
}

func TestComputePriceGoldStacksEligibleBonus(t *testing.T) {
	// Haircut and Hair Spa are gold-eligible, Manicure is not.
	selection := []string{"Haircut", "Hair Spa", "Manicure"}

	monday := ComputePrice(selection, testCatalog, TierGold, aMonday, false)
	assert.Equal(t, int64(330000), monday.Gross)
	// 5% of gross (16500) + 5% of eligible subtotal 250000 (12500)
	assert.Equal(t, int64(29000), monday.Discount)
	assert.Equal(t, int64(301000), monday.Net)

	// On a weekend only the eligible-subset bonus applies.
	saturday := ComputePrice(selection, testCatalog, TierGold, aSaturday, false)
	assert.Equal(t, int64(12500), saturday.Discount)
}

func TestComputePriceUnknownServicesContributeNothing(t *testing.T) {
	quote := ComputePrice([]string{"Haircut", "Tarot Reading"}, testCatalog, TierPlatinum, aMonday, false)
	assert.Equal(t, int64(100000), quote.Gross)
}

func TestComputePriceEmptySelection(t *testing.T) {
	quote := ComputePrice(nil, testCatalog, TierDiamond, aMonday, false)
	assert.Equal(t, int64(0), quote.Gross)
	assert.Equal(t, int64(0), quote.Discount)
	assert.Equal(t, int64(0), quote.Net)
}

func TestComputePriceInvariants(t *testing.T) {
	tiers := []Tier{TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond}
	dates := []time.Time{aMonday, aSaturday}
	selections := [][]string{
		{"Haircut"},
		{"Haircut", "Manicure"},
		{"Haircut", "Hair Spa", "Manicure"},
		{},
	}

	for _, tier := range tiers {
		for _, date := range dates {
			for _, sel := range selections {
				for _, first := range []bool{true, false} {
					q := ComputePrice(sel, testCatalog, tier, date, first)
					assert.GreaterOrEqual(t, q.Discount, int64(0))
					assert.GreaterOrEqual(t, q.Net, int64(0))
					assert.Equal(t, q.Gross-q.Discount, q.Net)
				}
			}
		}
	}
}

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, 75, TotalDuration([]string{"Haircut", "Manicure"}, testCatalog))
	assert.Equal(t, 30, TotalDuration([]string{"Haircut", "Unknown"}, testCatalog))
	assert.Equal(t, 0, TotalDuration(nil, testCatalog))
}
