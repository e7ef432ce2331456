// README: Uber mock client (cab, premium cab, auto, bike).
package provider

import (
	"context"

	"farecast/internal/modules/fare"
)

type Uber struct {
	jit *jitter
}

func NewUber(seed int64) *Uber {
	return &Uber{jit: newJitter(seed)}
}

var uberBaseFare = map[string]float64{
	"cab":         50.0,
	"premium_cab": 80.0,
	"auto":        30.0,
	"bike":        20.0,
}

var uberRatePerKm = map[string]float64{
	"cab":         12.0,
	"premium_cab": 18.0,
	"auto":        8.0,
	"bike":        6.0,
}

var uberSurge = surgeModel{
	peak:       map[string]float64{"bike": 1.10, "auto": 1.20, "cab": 1.30, "premium_cab": 1.45},
	offPeak:    map[string]float64{"bike": 0.95, "auto": 1.0, "cab": 1.05, "premium_cab": 1.10},
	night:      map[string]float64{"bike": 1.0, "auto": 1.05, "cab": 1.10, "premium_cab": 1.20},
	peakDef:    1.25,
	offPeakDef: 1.0,
	nightDef:   1.05,
	surgeThreshold: 1.2,
}

func (u *Uber) ProviderID() string   { return "Uber" }
func (u *Uber) ProviderName() string { return "Uber (Mock)" }

func (u *Uber) FaresBatch(_ context.Context, _, _ string, distanceKm float64, opts map[string]string) ([]fare.Offer, error) {
	return []fare.Offer{
		u.offer("Uber Go", "cab", distanceKm, 6, 12, opts),
		u.offer("Uber Premier", "premium_cab", distanceKm, 6, 12, opts),
		u.offer("Uber Auto", "auto", distanceKm, 4, 8, opts),
		u.offer("Uber Moto", "bike", distanceKm, 3, 6, opts),
	}, nil
}

func (u *Uber) offer(product, vehicleType string, km float64, minEta, maxEta int, opts map[string]string) fare.Offer {
	return mockOffer(
		u.ProviderID(), u.ProviderName(), product, vehicleType, km,
		uberBaseFare[vehicleType], uberRatePerKm[vehicleType],
		minEta, maxEta, uberSurge, u.jit, opts,
	)
}
