package engine

import (
	"math"
	"time"
)

// Tier is a customer loyalty level derived from lifetime booking count.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// tierThresholds is the canonical rank table, scanned in descending
// order of required booking count.
var tierThresholds = []struct {
	MinBookings int
	Tier        Tier
}{
	{50, TierDiamond},
	{20, TierPlatinum},
	{10, TierGold},
	{5, TierSilver},
	{0, TierBronze},
}

// TierForBookingCount maps a customer's lifetime booking count to a tier.
func TierForBookingCount(count int) Tier {
	for _, t := range tierThresholds {
		if count >= t.MinBookings {
			return t.Tier
		}
	}
	return TierBronze
}

// NextTierAt returns the booking count at which the customer reaches the
// next tier, or 0 if already at the top.
func NextTierAt(count int) int {
	for i := len(tierThresholds) - 1; i >= 0; i-- {
		if count < tierThresholds[i].MinBookings {
			return tierThresholds[i].MinBookings
		}
	}
	return 0
}

// CatalogEntry is one service as priced in the catalog.
type CatalogEntry struct {
	Price           int64
	DurationMinutes int
}

// Catalog maps a service name to its price and duration.
type Catalog map[string]CatalogEntry

// Quote is the result of pricing a service selection.
type Quote struct {
	Gross    int64 `json:"gross"`
	Discount int64 `json:"discount"`
	Net      int64 `json:"net"`
}

// goldEligibleServices is the fixed set of services that earn the extra
// gold-tier discount on top of the weekday rate.
var goldEligibleServices = map[string]bool{
	"Haircut":       true,
	"Hair Coloring": true,
	"Hair Spa":      true,
}

// GoldEligibleServices returns the service names carrying the extra
// gold-tier discount.
func GoldEligibleServices() []string {
	names := make([]string, 0, len(goldEligibleServices))
	for name := range goldEligibleServices {
		names = append(names, name)
	}
	return names
}

func isWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// percentOf rounds pct% of amount to the nearest currency unit.
func percentOf(amount int64, pct float64) int64 {
	return int64(math.Round(float64(amount) * pct / 100))
}

// ComputePrice prices a service selection for a customer. Service names
// missing from the catalog contribute nothing to the gross. The function
// is pure; callers must recompute whenever the selection, date or tier
// changes rather than reuse a stale quote.
//
// Discount rules:
//   - bronze: 5% on the customer's first-ever booking, otherwise none
//   - silver: 5% Monday through Friday
//   - gold: 5% Monday through Friday, plus 5% of the subtotal of
//     gold-eligible services in the selection
//   - platinum: flat 10%
//   - diamond: flat 15%
func ComputePrice(selection []string, catalog Catalog, tier Tier, date time.Time, isFirstBooking bool) Quote {
	var gross int64
	var goldSubtotal int64
	for _, name := range selection {
		entry, ok := catalog[name]
		if !ok {
			continue
		}
		gross += entry.Price
		if goldEligibleServices[name] {
			goldSubtotal += entry.Price
		}
	}

	var discount int64
	switch tier {
	case TierBronze:
		if isFirstBooking {
			discount = percentOf(gross, 5)
		}
	case TierSilver:
		if isWeekday(date) {
			discount = percentOf(gross, 5)
		}
	case TierGold:
		if isWeekday(date) {
			discount = percentOf(gross, 5)
		}
		discount += percentOf(goldSubtotal, 5)
	case TierPlatinum:
		discount = percentOf(gross, 10)
	case TierDiamond:
		discount = percentOf(gross, 15)
	}

	if discount > gross {
		discount = gross
	}

	return Quote{
		Gross:    gross,
		Discount: discount,
		Net:      gross - discount,
	}
}

// TotalDuration sums the catalog durations of the selected services.
// Unknown service names contribute nothing.
func TotalDuration(selection []string, catalog Catalog) int {
	total := 0
	for _, name := range selection {
		if entry, ok := catalog[name]; ok {
			total += entry.DurationMinutes
		}
	}
	return total
}
