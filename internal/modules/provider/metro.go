// README: Metro client gated by station coverage.
package provider

import (
	"context"
	"log"
	"math"

	"farecast/internal/modules/fare"
)

type Metro struct{}

func NewMetro() *Metro { return &Metro{} }

func (m *Metro) ProviderID() string   { return "Metro" }
func (m *Metro) ProviderName() string { return "Metro" }

func (m *Metro) FaresBatch(_ context.Context, origin, destination string, distanceKm float64, _ map[string]string) ([]fare.Offer, error) {
	if !MetroRouteCovered(origin, destination) {
		log.Printf("metro not available for route: %s -> %s", origin, destination)
		return nil, nil
	}
	if distanceKm <= 0 || math.IsNaN(distanceKm) {
		return nil, nil
	}

	price := 10 + (distanceKm*5)/1.5
	eta := int(math.Max(5, distanceKm/0.4))

	return []fare.Offer{{
		ProviderID:   m.ProviderID(),
		ProviderName: m.ProviderName(),
		VehicleType:  "metro",
		DistanceKm:   distanceKm,
		Price:        price,
		EtaMinutes:   eta,
		Currency:     fare.CanonicalCurrency,
		Surge:        false,
		Metadata:     map[string]any{"network": "city-metro"},
	}}, nil
}
