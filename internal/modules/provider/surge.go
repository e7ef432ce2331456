// README: Shared surge model and seedable jitter for the mock clients.
package provider

import (
	"math"
	"math/rand"
	"strconv"
	"sync"

	"farecast/internal/modules/fare"
)

// jitter wraps a seedable random source. Identical seeds reproduce
// identical offer sequences, which is what the tests rely on. The mutex
// makes one client instance safe under the aggregator's fan-out.
type jitter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newJitter(seed int64) *jitter {
	return &jitter{rng: rand.New(rand.NewSource(seed))}
}

func (j *jitter) between(min, max float64) float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.rng.Float64()*(max-min) + min
}

// surgeModel holds a provider's per-vehicle surge factors for the three
// day phases plus the threshold above which an offer is flagged as surge.
type surgeModel struct {
	peak, offPeak, night       map[string]float64
	peakDef, offPeakDef, nightDef float64
	surgeThreshold             float64
}

// factor computes the surge multiplier for one vehicle type. Without a
// departure time the model degrades to controlled randomness; with one,
// the hour picks the phase and a small jitter keeps pricing non-static.
func (m surgeModel) factor(vehicleType string, opts map[string]string, j *jitter) float64 {
	depTime, ok := opts[fare.OptionDepartureTime]
	if !ok || len(depTime) < 13 {
		return j.between(0.95, 1.15)
	}
	hour, err := strconv.Atoi(depTime[11:13])
	if err != nil {
		return j.between(0.95, 1.15)
	}

	var table map[string]float64
	var def float64
	switch {
	case (hour >= 8 && hour <= 11) || (hour >= 17 && hour <= 21):
		table, def = m.peak, m.peakDef
	case hour >= 12 && hour <= 16:
		table, def = m.offPeak, m.offPeakDef
	default:
		table, def = m.night, m.nightDef
	}

	base, ok := table[vehicleType]
	if !ok {
		base = def
	}
	return base + j.between(-0.05, 0.05)
}

// mockOffer assembles one offer from a base-fare pricing model:
// price = (base + distance*rate) * surge. An unknown distance (<= 0 or
// NaN) is clamped to zero and flagged so callers can tell the estimate
// is degraded.
func mockOffer(
	providerID, providerName, product, vehicleType string,
	distanceKm float64,
	baseFare, ratePerKm float64,
	minEta, maxEta int,
	model surgeModel,
	j *jitter,
	opts map[string]string,
) fare.Offer {
	unknownDistance := false
	if !(distanceKm > 0) || math.IsNaN(distanceKm) {
		distanceKm = 0
		unknownDistance = true
	}

	distanceFare := distanceKm * ratePerKm
	surgeFactor := model.factor(vehicleType, opts, j)
	price := (baseFare + distanceFare) * surgeFactor

	meta := map[string]any{
		"productName":      product,
		"baseFare":         baseFare,
		"ratePerKm":        ratePerKm,
		"distanceFare":     distanceFare,
		fare.MetaSurgeFactor: surgeFactor,
		"pricingModel":     "base + distance * surge",
		"source":           "mock",
	}
	if unknownDistance {
		meta["distanceUnknown"] = true
	}

	return fare.Offer{
		ProviderID:   providerID + " : " + vehicleType,
		ProviderName: providerName,
		VehicleType:  vehicleType,
		DistanceKm:   distanceKm,
		Price:        price,
		EtaMinutes:   int(j.between(float64(minEta), float64(maxEta))),
		Currency:     fare.CanonicalCurrency,
		Surge:        surgeFactor > model.surgeThreshold,
		Metadata:     meta,
	}
}
