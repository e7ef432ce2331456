// README: Price normalization into the canonical offer shape.
package fare

import "math"

// Normalize maps a raw provider offer into the canonical shape: price
// rounded to two decimals, currency forced to CanonicalCurrency, distance
// stamped on the offer, and metadata copied then flagged. The input offer
// and its metadata map are never mutated.
func Normalize(o Offer, distanceKm float64) Offer {
	meta := cloneMeta(o.Metadata, 2)
	meta[MetaNormalized] = true
	meta[MetaDistanceKm] = distanceKm

	o.Price = Round2(o.Price)
	o.Currency = CanonicalCurrency
	o.DistanceKm = distanceKm
	o.Metadata = meta
	return o
}

// NormalizeAll normalizes every offer in the slice. A nil slice yields an
// empty, non-nil slice.
func NormalizeAll(offers []Offer, distanceKm float64) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		out = append(out, Normalize(o, distanceKm))
	}
	return out
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
