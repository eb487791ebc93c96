// Package fare maps loyalty state to discount rates. Everything here is
// pure and total: every (tier, level) combination has a defined rate.
package fare

import (
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

// Mileage thresholds for frequent-flyer membership levels.
const (
	PlatinumMiles = 50000
	GoldMiles     = 25000
)

// DiscountRate returns the fare discount for a traveler. Regular
// customers always get 0 regardless of level, so a stale level on a
// REGULAR row cannot leak a discount.
func DiscountRate(tier models.CustomerType, level models.MembershipLevel) float64 {
	if tier != models.CustomerFrequentFlyer {
		return 0.0
	}
	switch level {
	case models.MembershipPlatinum:
		return 0.20
	case models.MembershipGold:
		return 0.15
	case models.MembershipSilver:
		return 0.10
	default:
		return 0.0
	}
}

// MembershipLevelFor derives the level from accumulated miles. Monotonic
// in miles; callers recompute it on every miles change rather than
// storing it independently.
func MembershipLevelFor(miles int) models.MembershipLevel {
	switch {
	case miles >= PlatinumMiles:
		return models.MembershipPlatinum
	case miles >= GoldMiles:
		return models.MembershipGold
	case miles > 0:
		return models.MembershipSilver
	default:
		return models.MembershipNone
	}
}
