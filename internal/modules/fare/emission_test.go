// README: Emission calculation tests.
package fare

import "testing"

func TestEmissionKgTable(t *testing.T) {
	cases := []struct {
		vehicle string
		km      float64
		surge   float64
		want    float64
	}{
		{"walk", 2.0, 1.0, 0.0},
		{"metro", 10.0, 1.0, 0.2},
		{"bus", 10.0, 1.0, 0.5},
		{"auto", 10.0, 1.0, 0.7},
		{"bike", 10.0, 1.0, 0.8},
		{"cab", 10.0, 1.0, 1.2},
		{"premium_cab", 10.0, 1.0, 1.5},
		// unknown vehicle types fall back to 0.1 kg/km
		{"hoverboard", 10.0, 1.0, 1.0},
		// surge 1.5 -> traffic multiplier 1.3
		{"cab", 10.0, 1.5, 1.56},
	}
	for _, tc := range cases {
		got := EmissionKg(tc.vehicle, tc.km, tc.surge)
		if got != tc.want {
			t.Errorf("EmissionKg(%s, %v, %v) = %v, want %v", tc.vehicle, tc.km, tc.surge, got, tc.want)
		}
	}
}

// Walk and metro emissions must not depend on the surge factor.
func TestEmissionSurgeInsensitiveModes(t *testing.T) {
	for _, vehicle := range []string{"walk", "metro"} {
		low := EmissionKg(vehicle, 7.3, 1.0)
		high := EmissionKg(vehicle, 7.3, 3.0)
		if low != high {
			t.Errorf("%s emission changed with surge: %v vs %v", vehicle, low, high)
		}
	}
}

func TestAnnotateEmissionReadsSurgeFromMetadata(t *testing.T) {
	o := Offer{
		VehicleType: "cab",
		DistanceKm:  10,
		Metadata:    map[string]any{MetaSurgeFactor: 1.5},
	}
	got := AnnotateEmission(o)
	if got.Metadata[MetaCO2Kg] != 1.56 {
		t.Errorf("co2 = %v, want 1.56", got.Metadata[MetaCO2Kg])
	}
}

func TestAnnotateEmissionDefaultSurge(t *testing.T) {
	o := Offer{VehicleType: "cab", DistanceKm: 10}
	got := AnnotateEmission(o)
	if got.Metadata[MetaCO2Kg] != 1.2 {
		t.Errorf("co2 = %v, want 1.2 with default surge", got.Metadata[MetaCO2Kg])
	}
}

func TestAnnotateEmissionDoesNotAliasInput(t *testing.T) {
	o := Offer{
		VehicleType: "auto",
		DistanceKm:  5,
		Metadata:    map[string]any{MetaSurgeFactor: 1.2},
	}
	got := AnnotateEmission(o)
	got.Metadata["tamper"] = true

	if _, ok := o.Metadata[MetaCO2Kg]; ok {
		t.Fatalf("co2 written into input metadata: %v", o.Metadata)
	}
	if _, ok := o.Metadata["tamper"]; ok {
		t.Fatalf("input metadata mutated: %v", o.Metadata)
	}
}
