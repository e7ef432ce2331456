// README: Scorer contract for AI-assisted recommendation.
package ai

import (
	"context"

	"farecast/internal/modules/fare"
)

// ScoreResult is the structured output expected from a scoring model.
type ScoreResult struct {
	// ChosenProviderID must name one of the estimate's offers; callers
	// validate it and fall back to the rule engine when it does not.
	ChosenProviderID string `json:"chosen_provider_id"`

	// Confidence is in [0, 1]. Not a calibrated probability.
	Confidence float64 `json:"confidence"`
}

// Scorer scores the offers in an estimate and picks one. Implementations
// may fail or time out; callers must treat any error as non-fatal and
// fall back to deterministic rules.
type Scorer interface {
	Score(ctx context.Context, estimate fare.Estimate, trip fare.TripRequest) (ScoreResult, error)
}
