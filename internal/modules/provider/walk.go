// README: Walk client; free option for short trips only.
package provider

import (
	"context"
	"math"

	"farecast/internal/modules/fare"
)

// maxWalkDistanceKm is the longest trip for which walking is offered.
const maxWalkDistanceKm = 3.0

// walkMinutesPerKm assumes an average walking speed of ~5 km/h.
const walkMinutesPerKm = 12

type Walk struct{}

func NewWalk() *Walk { return &Walk{} }

func (w *Walk) ProviderID() string   { return "Walk" }
func (w *Walk) ProviderName() string { return "Walk Your Path" }

func (w *Walk) FaresBatch(_ context.Context, _, _ string, distanceKm float64, _ map[string]string) ([]fare.Offer, error) {
	if distanceKm <= 0 || math.IsNaN(distanceKm) || distanceKm > maxWalkDistanceKm {
		return nil, nil
	}

	etaMinutes := int(math.Ceil(distanceKm * walkMinutesPerKm))
	co2SavedKg := distanceKm * 0.12 // against a cab baseline

	return []fare.Offer{{
		ProviderID:   w.ProviderID(),
		ProviderName: w.ProviderName(),
		VehicleType:  "walk",
		DistanceKm:   distanceKm,
		Price:        0.0,
		EtaMinutes:   etaMinutes,
		Currency:     fare.CanonicalCurrency,
		Surge:        false,
		Metadata: map[string]any{
			fare.MetaCO2Kg:   0.0,
			"co2SavedKg":     co2SavedKg,
			"healthBenefit":  "high",
			"recommendedFor": "short distances",
		},
	}}, nil
}
