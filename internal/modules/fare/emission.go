// README: CO2 estimation per offer from vehicle type, distance and surge.
package fare

// baseCO2PerKm is the base emission factor in kg CO2 per km, without
// traffic. Unknown vehicle types fall back to defaultCO2PerKm.
var baseCO2PerKm = map[string]float64{
	"walk":        0.0,
	"metro":       0.02,
	"bus":         0.05,
	"auto":        0.07,
	"bike":        0.08,
	"cab":         0.12,
	"premium_cab": 0.15,
}

const defaultCO2PerKm = 0.1

// EmissionKg estimates kg of CO2 for one trip leg. Walking and metro are
// insensitive to traffic; everything else scales with a traffic multiplier
// derived from the surge factor.
func EmissionKg(vehicleType string, distanceKm, surgeFactor float64) float64 {
	base, ok := baseCO2PerKm[vehicleType]
	if !ok {
		base = defaultCO2PerKm
	}

	if vehicleType == "walk" || vehicleType == "metro" {
		return Round2(distanceKm * base)
	}

	trafficMultiplier := 1 + (surgeFactor-1)*0.6
	return Round2(distanceKm * base * trafficMultiplier)
}

// AnnotateEmission returns a copy of the offer whose metadata carries the
// CO2 estimate. The surge factor is read from the offer's own metadata,
// defaulting to 1.0. The input offer is left untouched.
func AnnotateEmission(o Offer) Offer {
	surge := o.MetaFloat(MetaSurgeFactor, 1.0)
	co2 := EmissionKg(o.VehicleType, o.DistanceKm, surge)

	meta := cloneMeta(o.Metadata, 1)
	meta[MetaCO2Kg] = co2
	o.Metadata = meta
	return o
}

// AnnotateEmissionAll annotates every offer, returning fresh copies.
func AnnotateEmissionAll(offers []Offer) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		out = append(out, AnnotateEmission(o))
	}
	return out
}
