// Package pricing implements the deterministic price and commission engine.
// It is a pure function of distance and commission rate: the rate is passed
// by value on every call so concurrent readers never observe a rate change
// mid-calculation.
package pricing

import (
	"errors"
	"math"

	"github.com/footmanhq/dispatch/internal/pkg/models"
)

// ErrDistanceExceeded is returned when the geometry lies outside the fixed
// service radius and no price tier applies.
var ErrDistanceExceeded = errors.New("distance exceeds service radius")

// Distance breakpoints in kilometers and the base price of each tier.
const (
	nearTierKm   = 0.5
	farTierKm    = 1.0
	nearTierBase = 50.0
	farTierBase  = 100.0
)

// BasePrice resolves the price tier for a distance. The second return value
// is false when the distance is beyond the last breakpoint.
func BasePrice(distanceKm float64) (float64, bool) {
	switch {
	case distanceKm < 0:
		return 0, false
	case distanceKm <= nearTierKm:
		return nearTierBase, true
	case distanceKm <= farTierKm:
		return farTierBase, true
	}
	return 0, false
}

// Quote derives the full commercial outcome for one request. Commission is
// rounded to two decimals and partner earnings are the exact remainder, so
// commission+earnings always equals the base price.
func Quote(distanceKm, commissionRate float64) (models.Quote, error) {
	base, ok := BasePrice(distanceKm)
	if !ok {
		return models.Quote{}, ErrDistanceExceeded
	}

	commission := round2(base * commissionRate)
	return models.Quote{
		DistanceKm:      distanceKm,
		BasePrice:       base,
		CommissionRate:  commissionRate,
		Commission:      commission,
		PartnerEarnings: base - commission,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
