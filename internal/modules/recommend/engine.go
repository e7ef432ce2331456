// README: Rule-based recommendation engine with optional AI-assisted path.
package recommend

import (
	"context"
	"fmt"
	"log"
	"time"

	"farecast/internal/ai"
	"farecast/internal/modules/fare"
)

// etaWeight converts ETA minutes into price units for the hybrid score.
const etaWeight = 0.2

const defaultScorerTimeout = 5 * time.Second

// Engine selects one offer from an estimate. The rule path is fully
// deterministic; the model path delegates to a Scorer and falls back to
// the rules on any failure or invalid answer.
type Engine struct {
	scorer        ai.Scorer
	scorerTimeout time.Duration
}

// NewEngine builds an engine. scorer may be nil, in which case the model
// path silently degrades to the rule path.
func NewEngine(scorer ai.Scorer) *Engine {
	return &Engine{scorer: scorer, scorerTimeout: defaultScorerTimeout}
}

// Recommend applies the deterministic rules, first match wins:
// explicit user override, cheapest, fastest, hybrid score. Ties resolve
// to the first offer in ranked order.
func (e *Engine) Recommend(estimate fare.Estimate, trip fare.TripRequest) Suggestion {
	fares := estimate.ProviderFares
	if len(fares) == 0 {
		return emptySuggestion()
	}

	// User override comes first.
	if chosenID, ok := trip.Option(fare.OptionUserChosenProvider); ok && chosenID != "" {
		if offer, found := estimate.FindOffer(chosenID); found {
			return chosenSuggestion(offer, 1.0, "User explicitly selected this option")
		}
		// Unknown override id falls through to the rules.
	}

	if trip.PreferCheapest {
		return chosenSuggestion(minBy(fares, func(f fare.Offer) float64 { return f.Price }),
			0.85, "Selected because preferCheapest=true (lowest price)")
	}

	if trip.PreferFastest {
		return chosenSuggestion(minBy(fares, func(f fare.Offer) float64 { return float64(f.EtaMinutes) }),
			0.80, "Selected because preferFastest=true (quickest ETA)")
	}

	return chosenSuggestion(minBy(fares, hybridScore),
		0.70, "Selected based on hybrid score = price + eta*0.2")
}

// RecommendUsingModel asks the scorer to pick, validating the answer
// against the estimate. Any scorer failure, timeout or unknown provider
// id falls back to the deterministic rules; the model path never fails
// outward.
func (e *Engine) RecommendUsingModel(ctx context.Context, estimate fare.Estimate, trip fare.TripRequest) Suggestion {
	if e.scorer == nil || len(estimate.ProviderFares) == 0 {
		return e.Recommend(estimate, trip)
	}

	sctx, cancel := context.WithTimeout(ctx, e.scorerTimeout)
	defer cancel()

	result, err := e.scorer.Score(sctx, estimate, trip)
	if err != nil {
		log.Printf("scorer failed: %v (falling back to rule-based)", err)
		return e.Recommend(estimate, trip)
	}

	offer, found := estimate.FindOffer(result.ChosenProviderID)
	if !found {
		log.Printf("scorer returned unknown provider id %q (falling back to rule-based)", result.ChosenProviderID)
		return e.Recommend(estimate, trip)
	}

	return chosenSuggestion(offer, result.Confidence,
		fmt.Sprintf("AI model recommended best provider with confidence %.2f", result.Confidence))
}

func hybridScore(f fare.Offer) float64 {
	return f.Price + float64(f.EtaMinutes)*etaWeight
}

// minBy returns the offer with the minimal key; the first minimum wins.
func minBy(fares []fare.Offer, key func(fare.Offer) float64) fare.Offer {
	best := fares[0]
	bestKey := key(best)
	for _, f := range fares[1:] {
		if k := key(f); k < bestKey {
			best, bestKey = f, k
		}
	}
	return best
}
