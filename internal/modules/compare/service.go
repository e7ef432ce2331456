// README: Compare service; runs the comparison pipeline and settles choices.
package compare

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"farecast/internal/config"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/history"
	"farecast/internal/modules/provider"
	"farecast/internal/modules/recommend"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrSnapshotNotFound = errors.New("snapshot not found or already consumed")
	ErrOfferNotFound    = errors.New("offer not found in snapshot")
)

// cacheDistanceLimitKm: only short-trip estimates are worth caching.
const cacheDistanceLimitKm = 100.0

// Distance resolves a trip to kilometers; must not fail outward.
type Distance interface {
	DistanceKm(ctx context.Context, origin, destination string) float64
}

// HistoryRecorder receives settled choices. Fire-and-forget: failures
// are logged, never surfaced to the user.
type HistoryRecorder interface {
	Record(ctx context.Context, rec history.Record) error
}

// Service runs the full preview/commit flow: compare builds and snapshots
// an estimate, choose settles against that exact snapshot.
type Service struct {
	distance  Distance
	providers []provider.Client
	engine    *recommend.Engine
	snapshots *SnapshotStore
	cache     EstimateCache
	history   HistoryRecorder
	cfg       config.CompareConfig
	now       func() time.Time
}

type ServiceDeps struct {
	Distance  Distance
	Providers []provider.Client
	Engine    *recommend.Engine
	Snapshots *SnapshotStore
	Cache     EstimateCache   // optional
	History   HistoryRecorder // optional
}

func NewService(deps ServiceDeps, cfg config.CompareConfig) *Service {
	return &Service{
		distance:  deps.Distance,
		providers: deps.Providers,
		engine:    deps.Engine,
		snapshots: deps.Snapshots,
		cache:     deps.Cache,
		history:   deps.History,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Result is what one compare call hands back: the snapshotted estimate
// and the recommendation computed over it.
type Result struct {
	SnapshotID string
	Estimate   fare.Estimate
	Suggestion recommend.Suggestion
}

// Compare runs the pipeline: resolve distance, aggregate provider offers,
// normalize, annotate emissions, rank, snapshot, recommend. Partial
// provider failure is absorbed; an empty offer list is a valid outcome.
func (s *Service) Compare(ctx context.Context, trip fare.TripRequest, useModel bool) (Result, error) {
	start := s.now()

	if trip.Origin == "" || trip.Destination == "" {
		return Result{}, ErrBadRequest
	}

	distanceKm := s.distance.DistanceKm(ctx, trip.Origin, trip.Destination)
	log.Printf("distance %s -> %s = %.1f km", trip.Origin, trip.Destination, distanceKm)

	opts := trip.Options
	if trip.DepartureTime != "" {
		opts = make(map[string]string, len(trip.Options)+1)
		for k, v := range trip.Options {
			opts[k] = v
		}
		opts[fare.OptionDepartureTime] = trip.DepartureTime
	}

	raw := s.aggregate(ctx, trip.Origin, trip.Destination, distanceKm, opts)
	normalized := fare.NormalizeAll(raw, distanceKm)
	annotated := fare.AnnotateEmissionAll(normalized)
	ranked := fare.RankByPrice(annotated)

	estimate := fare.Estimate{
		EstimateID:      "est-" + uuid.NewString(),
		Origin:          trip.Origin,
		Destination:     trip.Destination,
		TotalDistanceKm: distanceKm,
		ProviderFares:   ranked,
		Timestamp:       s.now().UTC(),
	}

	if s.cache != nil && distanceKm < cacheDistanceLimitKm {
		if err := s.cache.Save(ctx, estimate); err != nil {
			log.Printf("failed to cache estimate: %v", err)
		}
	}

	snapshotID := uuid.NewString()
	s.snapshots.Save(snapshotID, estimate)

	var suggestion recommend.Suggestion
	if useModel {
		suggestion = s.engine.RecommendUsingModel(ctx, estimate, trip)
	} else {
		suggestion = s.engine.Recommend(estimate, trip)
	}

	log.Printf("fare comparison completed in %s for userId=%s (%d offers)",
		s.now().Sub(start), trip.UserID, len(ranked))

	return Result{SnapshotID: snapshotID, Estimate: estimate, Suggestion: suggestion}, nil
}

// RecentEstimate looks up the cached estimate for a route, if any.
func (s *Service) RecentEstimate(ctx context.Context, origin, destination string) (fare.Estimate, bool, error) {
	if origin == "" || destination == "" {
		return fare.Estimate{}, false, ErrBadRequest
	}
	if s.cache == nil {
		return fare.Estimate{}, false, nil
	}
	return s.cache.Find(ctx, origin, destination)
}

// ChooseCommand commits one offer out of a previously returned snapshot.
type ChooseCommand struct {
	UserID     string
	SnapshotID string
	ProviderID string
}

// Choose settles a user's pick against the exact snapshot they were
// shown: never re-queries providers, computes savings against the most
// expensive offer in that snapshot, hands the record to the history
// recorder and consumes the snapshot.
func (s *Service) Choose(ctx context.Context, cmd ChooseCommand) (history.Record, error) {
	if cmd.UserID == "" || cmd.SnapshotID == "" || cmd.ProviderID == "" {
		return history.Record{}, ErrBadRequest
	}

	estimate, ok := s.snapshots.Get(cmd.SnapshotID)
	if !ok {
		return history.Record{}, ErrSnapshotNotFound
	}

	chosen, found := estimate.FindOffer(cmd.ProviderID)
	if !found {
		return history.Record{}, ErrOfferNotFound
	}

	savings := estimate.MaxPrice(chosen.Price) - chosen.Price

	var co2 *float64
	if v := chosen.MetaFloat(fare.MetaCO2Kg, -1); v >= 0 {
		co2 = &v
	}

	var walkedKm float64
	if strings.EqualFold(chosen.VehicleType, "walk") {
		walkedKm = chosen.DistanceKm
	}

	rec := history.Record{
		UserID:             cmd.UserID,
		Origin:             estimate.Origin,
		Destination:        estimate.Destination,
		ChosenProviderID:   chosen.ProviderID,
		ChosenProviderName: chosen.ProviderName,
		VehicleType:        chosen.VehicleType,
		Price:              chosen.Price,
		Savings:            savings,
		CO2EmissionKg:      co2,
		WalkedDistanceKm:   walkedKm,
		Estimate:           estimate,
		CreatedAt:          s.now().UTC(),
	}

	if s.history != nil {
		if err := s.history.Record(ctx, rec); err != nil {
			log.Printf("failed to record choice for userId=%s: %v", cmd.UserID, err)
		}
	}

	s.snapshots.Remove(cmd.SnapshotID)
	return rec, nil
}
