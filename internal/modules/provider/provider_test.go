// README: Mock provider tests (determinism, thresholds, coverage, surge).
package provider

import (
	"context"
	"testing"

	"farecast/internal/modules/fare"
)

func TestUberSeedDeterminism(t *testing.T) {
	ctx := context.Background()
	a, _ := NewUber(42).FaresBatch(ctx, "Delhi", "Noida", 27.5, nil)
	b, _ := NewUber(42).FaresBatch(ctx, "Delhi", "Noida", 27.5, nil)

	if len(a) != len(b) {
		t.Fatalf("offer counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Price != b[i].Price || a[i].EtaMinutes != b[i].EtaMinutes {
			t.Errorf("offer %d differs across identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestUberOffersAllVehicleTypes(t *testing.T) {
	offers, err := NewUber(1).FaresBatch(context.Background(), "Delhi", "Noida", 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 4 {
		t.Fatalf("expected 4 offers, got %d", len(offers))
	}
	want := map[string]bool{"cab": false, "premium_cab": false, "auto": false, "bike": false}
	for _, o := range offers {
		want[o.VehicleType] = true
		if o.ProviderID != "Uber : "+o.VehicleType {
			t.Errorf("provider id %q does not follow the id scheme", o.ProviderID)
		}
		if o.Price <= 0 {
			t.Errorf("%s price = %v, want > 0", o.VehicleType, o.Price)
		}
	}
	for vt, seen := range want {
		if !seen {
			t.Errorf("missing vehicle type %s", vt)
		}
	}
}

func TestUberUnknownDistanceDegrades(t *testing.T) {
	offers, _ := NewUber(1).FaresBatch(context.Background(), "A", "B", -1, nil)
	for _, o := range offers {
		if o.Metadata["distanceUnknown"] != true {
			t.Errorf("%s missing distanceUnknown flag", o.ProviderID)
		}
		// base fare only, so price stays at base * surge
		if o.Price <= 0 {
			t.Errorf("%s degraded price = %v, want > 0", o.ProviderID, o.Price)
		}
	}
}

func TestSurgePeakHours(t *testing.T) {
	opts := map[string]string{fare.OptionDepartureTime: "2026-08-29T18:30"}
	got := uberSurge.factor("premium_cab", opts, newJitter(7))
	if got < 1.40 || got > 1.50 {
		t.Errorf("evening peak premium_cab surge = %v, want 1.45 +/- 0.05", got)
	}

	opts = map[string]string{fare.OptionDepartureTime: "2026-08-29T14:00"}
	got = uberSurge.factor("cab", opts, newJitter(7))
	if got < 1.00 || got > 1.10 {
		t.Errorf("afternoon cab surge = %v, want 1.05 +/- 0.05", got)
	}
}

func TestSurgeWithoutDepartureTime(t *testing.T) {
	got := uberSurge.factor("cab", nil, newJitter(7))
	if got < 0.95 || got > 1.15 {
		t.Errorf("no-time surge = %v, want within [0.95, 1.15]", got)
	}
}

func TestWalkWithinThreshold(t *testing.T) {
	offers, err := NewWalk().FaresBatch(context.Background(), "Delhi", "Rajiv Chowk", 2.0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected 1 walk offer, got %d", len(offers))
	}
	o := offers[0]
	if o.Price != 0.0 {
		t.Errorf("walk price = %v, want 0", o.Price)
	}
	if o.EtaMinutes != 24 {
		t.Errorf("walk eta = %d, want 24", o.EtaMinutes)
	}
	if o.VehicleType != "walk" {
		t.Errorf("vehicle type = %q", o.VehicleType)
	}
}

func TestWalkBeyondThreshold(t *testing.T) {
	offers, _ := NewWalk().FaresBatch(context.Background(), "Delhi", "Noida", 27.5, nil)
	if len(offers) != 0 {
		t.Fatalf("expected no walk offer at 27.5 km, got %d", len(offers))
	}
}

func TestWalkUnknownDistance(t *testing.T) {
	offers, _ := NewWalk().FaresBatch(context.Background(), "A", "B", 0, nil)
	if len(offers) != 0 {
		t.Fatalf("expected no walk offer for unknown distance, got %d", len(offers))
	}
}

func TestMetroRouteCovered(t *testing.T) {
	cases := []struct {
		origin, destination string
		want                bool
	}{
		{"Delhi", "Rajiv Chowk", true},
		{"Hauz Khas", "Kashmere Gate", true},
		{"Andheri", "Borivali", true},
		{"Delhi", "Mumbai Andheri", false}, // different cities
		{"Pune", "Bangalore", false},
	}
	for _, tc := range cases {
		if got := MetroRouteCovered(tc.origin, tc.destination); got != tc.want {
			t.Errorf("MetroRouteCovered(%q, %q) = %v, want %v", tc.origin, tc.destination, got, tc.want)
		}
	}
}

func TestMetroFare(t *testing.T) {
	offers, err := NewMetro().FaresBatch(context.Background(), "Delhi", "Rajiv Chowk", 3.0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected 1 metro offer, got %d", len(offers))
	}
	o := offers[0]
	if o.Price != 20.0 { // 10 + 3*5/1.5
		t.Errorf("metro price = %v, want 20", o.Price)
	}
	if o.EtaMinutes != 7 { // max(5, 3/0.4)
		t.Errorf("metro eta = %d, want 7", o.EtaMinutes)
	}
}

func TestMetroUncoveredRoute(t *testing.T) {
	offers, _ := NewMetro().FaresBatch(context.Background(), "Pune", "Bangalore", 845, nil)
	if len(offers) != 0 {
		t.Fatalf("expected no metro offer, got %d", len(offers))
	}
}
