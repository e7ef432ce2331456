// README: Core fare types shared across modules (trip request, offer, estimate).
package fare

import "time"

// CanonicalCurrency is the currency every normalized offer is priced in,
// regardless of what a provider claims.
const CanonicalCurrency = "INR"

// Option keys recognized inside TripRequest.Options.
const (
	OptionUserChosenProvider = "userChosenProviderId"
	OptionDepartureTime      = "departureTime"
)

// Metadata keys written by the pipeline stages.
const (
	MetaNormalized  = "normalized"
	MetaDistanceKm  = "distanceKm"
	MetaSurgeFactor = "surgeFactor"
	MetaCO2Kg       = "co2EmissionKg"
)

// TripRequest is one incoming comparison request. Built once per request
// and discarded after use.
type TripRequest struct {
	RequestID      string            `json:"request_id"`
	UserID         string            `json:"user_id"`
	Origin         string            `json:"origin"`
	Destination    string            `json:"destination"`
	DepartureTime  string            `json:"departure_time,omitempty"`
	PreferCheapest bool              `json:"prefer_cheapest"`
	PreferFastest  bool              `json:"prefer_fastest"`
	Options        map[string]string `json:"options,omitempty"`
}

// Option returns the named option value, tolerating a nil options map.
func (t TripRequest) Option(key string) (string, bool) {
	if t.Options == nil {
		return "", false
	}
	v, ok := t.Options[key]
	return v, ok
}

// Offer is a single priced option from one provider for one vehicle type.
// Raw offers come from provider clients; normalization and emission
// annotation return fresh copies and never write through to the input.
type Offer struct {
	ProviderID   string         `json:"provider_id"`
	ProviderName string         `json:"provider_name"`
	VehicleType  string         `json:"vehicle_type"`
	Price        float64        `json:"price"`
	DistanceKm   float64        `json:"distance_km"`
	EtaMinutes   int            `json:"eta_minutes"`
	Surge        bool           `json:"is_surge"`
	Currency     string         `json:"currency"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// cloneMeta copies an offer's metadata with room for extra entries.
func cloneMeta(meta map[string]any, extra int) map[string]any {
	out := make(map[string]any, len(meta)+extra)
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// MetaFloat reads a numeric metadata value, returning def when the key is
// absent or not a number.
func (o Offer) MetaFloat(key string, def float64) float64 {
	if o.Metadata == nil {
		return def
	}
	switch v := o.Metadata[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// Estimate is the full set of ranked offers for one trip at one point in
// time. Immutable once produced; it is the unit stored in the snapshot
// store so that a later choose acts on exactly the prices shown.
type Estimate struct {
	EstimateID      string    `json:"estimate_id"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	TotalDistanceKm float64   `json:"total_distance_km"`
	ProviderFares   []Offer   `json:"provider_fares"`
	Timestamp       time.Time `json:"timestamp"`
}

// FindOffer returns the first offer whose provider id matches.
// Duplicate provider ids resolve to the first match in ranked order.
func (e Estimate) FindOffer(providerID string) (Offer, bool) {
	for _, f := range e.ProviderFares {
		if f.ProviderID == providerID {
			return f, true
		}
	}
	return Offer{}, false
}

// MaxPrice returns the highest price in the estimate, or def when empty.
func (e Estimate) MaxPrice(def float64) float64 {
	max := def
	for i, f := range e.ProviderFares {
		if i == 0 || f.Price > max {
			max = f.Price
		}
	}
	return max
}
