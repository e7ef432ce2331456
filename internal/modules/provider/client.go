// README: Provider client contract for fare integrations.
package provider

import (
	"context"

	"farecast/internal/modules/fare"
)

// Client is the contract every fare provider integration satisfies.
//
// FaresBatch returns zero or more offers for one (origin, destination,
// distance) query. A distanceKm <= 0 or NaN signals an unknown distance
// and implementations should degrade to approximate pricing rather than
// fail. Returning an error is permitted; the aggregator tolerates it and
// treats the provider as contributing zero offers.
type Client interface {
	ProviderID() string
	ProviderName() string
	FaresBatch(ctx context.Context, origin, destination string, distanceKm float64, opts map[string]string) ([]fare.Offer, error)
}
