// README: Rapido mock client (bike, auto).
package provider

import (
	"context"

	"farecast/internal/modules/fare"
)

type Rapido struct {
	jit *jitter
}

func NewRapido(seed int64) *Rapido {
	return &Rapido{jit: newJitter(seed)}
}

var rapidoBaseFare = map[string]float64{
	"bike": 20.0,
	"auto": 30.0,
}

var rapidoRatePerKm = map[string]float64{
	"bike": 3.0,
	"auto": 7.0,
}

var rapidoSurge = surgeModel{
	peak:       map[string]float64{"bike": 1.05, "auto": 1.15},
	offPeak:    map[string]float64{"bike": 0.95, "auto": 1.0},
	night:      map[string]float64{"bike": 1.0, "auto": 1.05},
	peakDef:    1.10,
	offPeakDef: 0.95,
	nightDef:   1.0,
	surgeThreshold: 1.1,
}

func (r *Rapido) ProviderID() string   { return "Rapido" }
func (r *Rapido) ProviderName() string { return "Rapido (Mock)" }

func (r *Rapido) FaresBatch(_ context.Context, _, _ string, distanceKm float64, opts map[string]string) ([]fare.Offer, error) {
	return []fare.Offer{
		r.offer("Rapido Bike", "bike", distanceKm, 3, 6, opts),
		r.offer("Rapido Auto", "auto", distanceKm, 4, 8, opts),
	}, nil
}

func (r *Rapido) offer(product, vehicleType string, km float64, minEta, maxEta int, opts map[string]string) fare.Offer {
	return mockOffer(
		r.ProviderID(), r.ProviderName(), product, vehicleType, km,
		rapidoBaseFare[vehicleType], rapidoRatePerKm[vehicleType],
		minEta, maxEta, rapidoSurge, r.jit, opts,
	)
}
