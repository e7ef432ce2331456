// README: Distance resolution via Google Distance Matrix with deterministic fallback.
package distance

import (
	"context"
	"hash/fnv"
	"log"
	"strings"

	"googlemaps.github.io/maps"
)

// Resolver turns an (origin, destination) pair into kilometers. It never
// fails outward: with no API key, or on any upstream error, it degrades
// to a deterministic mock distance so the comparison pipeline always has
// a usable value.
type Resolver struct {
	client *maps.Client
}

// NewResolver builds a resolver. An empty apiKey yields a resolver that
// always answers from the mock table.
func NewResolver(apiKey string) (*Resolver, error) {
	if apiKey == "" {
		return &Resolver{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Resolver{client: client}, nil
}

// DistanceKm returns a non-negative distance in kilometers.
func (r *Resolver) DistanceKm(ctx context.Context, origin, destination string) float64 {
	if r.client == nil {
		km := mockDistanceKm(origin, destination)
		log.Printf("maps api key missing, using mock distance %.1f km for %s -> %s", km, origin, destination)
		return km
	}

	resp, err := r.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		log.Printf("distance matrix failed for %s -> %s: %v (falling back to mock)", origin, destination, err)
		return mockDistanceKm(origin, destination)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		log.Printf("distance matrix returned no elements for %s -> %s", origin, destination)
		return mockDistanceKm(origin, destination)
	}
	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" || elem.Distance.Meters <= 0 {
		log.Printf("distance matrix element status %q for %s -> %s", elem.Status, origin, destination)
		return mockDistanceKm(origin, destination)
	}

	return float64(elem.Distance.Meters) / 1000.0
}

// mockRoute is a fixed distance for a known route; matching is by
// substring on both endpoints, order insensitive.
type mockRoute struct {
	a, b string
	km   float64
}

var mockRoutes = []mockRoute{
	{"delhi", "noida", 27.5},
	{"delhi", "rajiv chowk", 3.0},
	{"mumbai", "thane", 32.0},
	{"bangalore", "hyderabad", 575.0},
	{"delhi", "karol bagh", 8.7},
	{"noida", "hyderabad", 1686.0},
	{"pune", "bangalore", 845.0},
	{"pune", "mumbai", 156.0},
	{"mumbai", "hyderabad", 742.0},
}

// mockDistanceKm is the deterministic fallback: a fixed table of common
// routes, then a hash-derived distance in [5, 25) km for everything else.
func mockDistanceKm(origin, destination string) float64 {
	key := strings.ToLower(origin + "->" + destination)

	for _, r := range mockRoutes {
		if strings.Contains(key, r.a) && strings.Contains(key, r.b) {
			return r.km
		}
	}

	diff := int64(hash32(origin)) - int64(hash32(destination))
	if diff < 0 {
		diff = -diff
	}
	return float64(5 + diff%20)
}

func hash32(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(s)))
	return h.Sum32()
}
