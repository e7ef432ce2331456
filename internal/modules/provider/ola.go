// README: Ola mock client (cab, premium cab, auto).
package provider

import (
	"context"

	"farecast/internal/modules/fare"
)

type Ola struct {
	jit *jitter
}

func NewOla(seed int64) *Ola {
	return &Ola{jit: newJitter(seed)}
}

var olaBaseFare = map[string]float64{
	"cab":         40.0,
	"premium_cab": 70.0,
	"auto":        25.0,
}

var olaRatePerKm = map[string]float64{
	"cab":         11.0,
	"premium_cab": 16.0,
	"auto":        7.0,
}

var olaSurge = surgeModel{
	peak:       map[string]float64{"auto": 1.10, "cab": 1.20, "premium_cab": 1.35},
	offPeak:    map[string]float64{"auto": 0.95, "cab": 1.0, "premium_cab": 1.05},
	night:      map[string]float64{"auto": 1.0, "cab": 1.05, "premium_cab": 1.15},
	peakDef:    1.15,
	offPeakDef: 1.0,
	nightDef:   1.05,
	surgeThreshold: 1.15,
}

func (o *Ola) ProviderID() string   { return "Ola" }
func (o *Ola) ProviderName() string { return "Ola (Mock)" }

func (o *Ola) FaresBatch(_ context.Context, _, _ string, distanceKm float64, opts map[string]string) ([]fare.Offer, error) {
	return []fare.Offer{
		o.offer("Ola Mini", "cab", distanceKm, 7, 14, opts),
		o.offer("Ola Prime", "premium_cab", distanceKm, 6, 12, opts),
		o.offer("Ola Auto", "auto", distanceKm, 4, 8, opts),
	}, nil
}

func (o *Ola) offer(product, vehicleType string, km float64, minEta, maxEta int, opts map[string]string) fare.Offer {
	return mockOffer(
		o.ProviderID(), o.ProviderName(), product, vehicleType, km,
		olaBaseFare[vehicleType], olaRatePerKm[vehicleType],
		minEta, maxEta, olaSurge, o.jit, opts,
	)
}
