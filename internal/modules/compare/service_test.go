package compare

import (
	"context"
	"errors"
	"testing"
	"time"

	"farecast/internal/config"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/history"
	"farecast/internal/modules/provider"
	"farecast/internal/modules/recommend"
)

type fixedDistance struct {
	km float64
}

func (d fixedDistance) DistanceKm(_ context.Context, _, _ string) float64 {
	return d.km
}

type memHistory struct {
	records []history.Record
	err     error
}

func (h *memHistory) Record(_ context.Context, rec history.Record) error {
	if h.err != nil {
		return h.err
	}
	h.records = append(h.records, rec)
	return nil
}

func testConfig() config.CompareConfig {
	return config.CompareConfig{
		ProviderTimeout: 2 * time.Second,
		MaxConcurrent:   8,
		SnapshotTTL:     15 * time.Minute,
		SweepInterval:   time.Minute,
		CacheTTL:        10 * time.Minute,
	}
}

func allProviders(seed int64) []provider.Client {
	return []provider.Client{
		provider.NewUber(seed),
		provider.NewOla(seed),
		provider.NewRapido(seed),
		provider.NewWalk(),
		provider.NewMetro(),
	}
}

func newTestService(km float64, hist *memHistory) *Service {
	deps := ServiceDeps{
		Distance:  fixedDistance{km: km},
		Providers: allProviders(7),
		Engine:    recommend.NewEngine(nil),
		Snapshots: NewSnapshotStore(15 * time.Minute),
	}
	if hist != nil {
		deps.History = hist
	}
	return NewService(deps, testConfig())
}

func TestCompareLongTripHasNoWalkOffer(t *testing.T) {
	svc := newTestService(27.5, nil)

	res, err := svc.Compare(context.Background(), fare.TripRequest{
		UserID:      "u1",
		Origin:      "Delhi",
		Destination: "Noida",
	}, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if len(res.Estimate.ProviderFares) == 0 {
		t.Fatal("expected provider fares")
	}
	for _, f := range res.Estimate.ProviderFares {
		if f.VehicleType == "walk" {
			t.Errorf("walk offer present at %.1f km", res.Estimate.TotalDistanceKm)
		}
	}
	if res.Estimate.TotalDistanceKm != 27.5 {
		t.Errorf("TotalDistanceKm = %v, want 27.5", res.Estimate.TotalDistanceKm)
	}
	if res.SnapshotID == "" {
		t.Error("empty snapshot id")
	}
}

func TestCompareShortTripHasWalkOffer(t *testing.T) {
	svc := newTestService(2.0, nil)

	res, err := svc.Compare(context.Background(), fare.TripRequest{
		UserID:      "u1",
		Origin:      "Connaught Place",
		Destination: "India Gate",
	}, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	var walk *fare.Offer
	for i, f := range res.Estimate.ProviderFares {
		if f.VehicleType == "walk" {
			walk = &res.Estimate.ProviderFares[i]
			break
		}
	}
	if walk == nil {
		t.Fatal("expected a walk offer at 2.0 km")
	}
	if walk.Price != 0 {
		t.Errorf("walk price = %v, want 0", walk.Price)
	}
	if walk.EtaMinutes != 24 {
		t.Errorf("walk eta = %d, want 24", walk.EtaMinutes)
	}
	// Walk is free, so the ranked list must start with it.
	if res.Estimate.ProviderFares[0].VehicleType != "walk" {
		t.Errorf("first ranked offer is %q, want walk", res.Estimate.ProviderFares[0].VehicleType)
	}
}

func TestCompareOffersNormalized(t *testing.T) {
	svc := newTestService(10.0, nil)

	res, err := svc.Compare(context.Background(), fare.TripRequest{
		UserID:      "u1",
		Origin:      "a",
		Destination: "b",
	}, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	prev := -1.0
	for _, f := range res.Estimate.ProviderFares {
		if f.Currency != fare.CanonicalCurrency {
			t.Errorf("offer %s currency = %q", f.ProviderID, f.Currency)
		}
		if f.Metadata[fare.MetaNormalized] != true {
			t.Errorf("offer %s missing normalized flag", f.ProviderID)
		}
		if _, ok := f.Metadata[fare.MetaCO2Kg]; !ok {
			t.Errorf("offer %s missing emission annotation", f.ProviderID)
		}
		if f.Price < prev {
			t.Errorf("offers not sorted by price: %v after %v", f.Price, prev)
		}
		prev = f.Price
	}
}

func TestCompareRejectsEmptyRoute(t *testing.T) {
	svc := newTestService(5.0, nil)

	if _, err := svc.Compare(context.Background(), fare.TripRequest{UserID: "u1"}, false); !errors.Is(err, ErrBadRequest) {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}
}

func TestChooseSettlesAgainstSnapshot(t *testing.T) {
	hist := &memHistory{}
	svc := newTestService(10.0, hist)

	res, err := svc.Compare(context.Background(), fare.TripRequest{
		UserID:      "u1",
		Origin:      "a",
		Destination: "b",
	}, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	chosen := res.Estimate.ProviderFares[0]
	rec, err := svc.Choose(context.Background(), ChooseCommand{
		UserID:     "u1",
		SnapshotID: res.SnapshotID,
		ProviderID: chosen.ProviderID,
	})
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}

	wantSavings := res.Estimate.MaxPrice(chosen.Price) - chosen.Price
	if rec.Savings != wantSavings {
		t.Errorf("savings = %v, want %v", rec.Savings, wantSavings)
	}
	if rec.ChosenProviderID != chosen.ProviderID {
		t.Errorf("chosen provider = %q, want %q", rec.ChosenProviderID, chosen.ProviderID)
	}
	if len(hist.records) != 1 {
		t.Fatalf("history records = %d, want 1", len(hist.records))
	}

	// Snapshot is consumed exactly once.
	if _, err := svc.Choose(context.Background(), ChooseCommand{
		UserID:     "u1",
		SnapshotID: res.SnapshotID,
		ProviderID: chosen.ProviderID,
	}); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("second choose err = %v, want ErrSnapshotNotFound", err)
	}
}

func TestChooseWalkRecordsWalkedDistance(t *testing.T) {
	hist := &memHistory{}
	svc := newTestService(2.0, hist)

	res, err := svc.Compare(context.Background(), fare.TripRequest{
		UserID:      "u1",
		Origin:      "a",
		Destination: "b",
	}, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	var walkID string
	for _, f := range res.Estimate.ProviderFares {
		if f.VehicleType == "walk" {
			walkID = f.ProviderID
		}
	}
	if walkID == "" {
		t.Fatal("no walk offer at 2.0 km")
	}

	rec, err := svc.Choose(context.Background(), ChooseCommand{
		UserID:     "u1",
		SnapshotID: res.SnapshotID,
		ProviderID: walkID,
	})
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	if rec.WalkedDistanceKm != 2.0 {
		t.Errorf("walked km = %v, want 2.0", rec.WalkedDistanceKm)
	}
	if rec.CO2EmissionKg == nil || *rec.CO2EmissionKg != 0 {
		t.Errorf("co2 = %v, want 0", rec.CO2EmissionKg)
	}
}

func TestChooseUnknownOffer(t *testing.T) {
	svc := newTestService(10.0, nil)

	res, err := svc.Compare(context.Background(), fare.TripRequest{
		UserID:      "u1",
		Origin:      "a",
		Destination: "b",
	}, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if _, err := svc.Choose(context.Background(), ChooseCommand{
		UserID:     "u1",
		SnapshotID: res.SnapshotID,
		ProviderID: "NoSuch : cab",
	}); !errors.Is(err, ErrOfferNotFound) {
		t.Errorf("err = %v, want ErrOfferNotFound", err)
	}

	// A failed match must not consume the snapshot.
	chosen := res.Estimate.ProviderFares[0]
	if _, err := svc.Choose(context.Background(), ChooseCommand{
		UserID:     "u1",
		SnapshotID: res.SnapshotID,
		ProviderID: chosen.ProviderID,
	}); err != nil {
		t.Errorf("choose after miss failed: %v", err)
	}
}

func TestChooseHistoryFailureIsNotFatal(t *testing.T) {
	hist := &memHistory{err: errors.New("db down")}
	svc := newTestService(10.0, hist)

	res, err := svc.Compare(context.Background(), fare.TripRequest{
		UserID:      "u1",
		Origin:      "a",
		Destination: "b",
	}, false)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if _, err := svc.Choose(context.Background(), ChooseCommand{
		UserID:     "u1",
		SnapshotID: res.SnapshotID,
		ProviderID: res.Estimate.ProviderFares[0].ProviderID,
	}); err != nil {
		t.Errorf("Choose failed on history error: %v", err)
	}
}

func TestChooseValidation(t *testing.T) {
	svc := newTestService(10.0, nil)

	cases := []ChooseCommand{
		{SnapshotID: "s", ProviderID: "p"},
		{UserID: "u", ProviderID: "p"},
		{UserID: "u", SnapshotID: "s"},
	}
	for _, cmd := range cases {
		if _, err := svc.Choose(context.Background(), cmd); !errors.Is(err, ErrBadRequest) {
			t.Errorf("cmd %+v: err = %v, want ErrBadRequest", cmd, err)
		}
	}
}
