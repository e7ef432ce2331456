// README: History service; persistence plus the analytics aggregations.
package history

import (
	"context"
	"math"
	"time"
)

// caloriesPerWalkedKm is the rough burn rate used for the summary.
const caloriesPerWalkedKm = 50.0

// recentWindow bounds the co2/walking figures in the summary.
const recentWindow = 30 * 24 * time.Hour

// Storage is the persistence surface the service needs; *Store satisfies
// it, tests use an in-memory fake.
type Storage interface {
	Save(ctx context.Context, rec *Record) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}

type Service struct {
	store Storage
	now   func() time.Time
}

func NewService(store Storage) *Service {
	return &Service{store: store, now: time.Now}
}

// Record persists one settled choice. Fire-and-forget from the compare
// flow's perspective; callers log failures rather than surfacing them.
func (s *Service) Record(ctx context.Context, rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	return s.store.Save(ctx, &rec)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	return s.store.ListByUser(ctx, userID)
}

// Summary aggregates the user's history: lifetime request count and
// average savings, plus co2/walking/calories over the recent window.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	if len(records) == 0 {
		return Summary{MostUsedProvider: "N/A"}, nil
	}

	var totalSavings float64
	providerCounts := map[string]int{}
	for _, r := range records {
		totalSavings += r.Savings
		providerCounts[r.ChosenProviderID]++
	}

	mostUsed, best := "N/A", 0
	for pid, n := range providerCounts {
		if n > best || (n == best && pid < mostUsed) {
			mostUsed, best = pid, n
		}
	}

	cutoff := s.now().Add(-recentWindow)
	var totalCO2, totalWalkedKm float64
	for _, r := range records {
		if r.CreatedAt.Before(cutoff) {
			continue
		}
		if r.CO2EmissionKg != nil {
			totalCO2 += *r.CO2EmissionKg
		}
		totalWalkedKm += r.WalkedDistanceKm
	}

	return Summary{
		TotalRequests:    len(records),
		AverageSavings:   round2(totalSavings / float64(len(records))),
		MostUsedProvider: mostUsed,
		CO2SavedKg:       round2(totalCO2),
		WalkedKm:         round2(totalWalkedKm),
		CaloriesBurned:   int64(math.Round(totalWalkedKm * caloriesPerWalkedKm)),
	}, nil
}

// CO2Trend buckets the user's emissions per day over the last `days`
// days, oldest bucket first. Days with no choices report zero.
func (s *Service) CO2Trend(ctx context.Context, userID string, days int) (CO2Trend, error) {
	if days <= 0 {
		days = 7
	}
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return CO2Trend{}, err
	}

	trend := CO2Trend{Labels: []string{}, Data: []float64{}}
	if len(records) == 0 {
		return trend, nil
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	byDay := map[string]float64{}
	for _, r := range records {
		if r.CO2EmissionKg == nil {
			continue
		}
		byDay[r.CreatedAt.UTC().Format("2006-01-02")] += *r.CO2EmissionKg
	}

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		trend.Labels = append(trend.Labels, day)
		trend.Data = append(trend.Data, round2(byDay[day]))
	}
	return trend, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
