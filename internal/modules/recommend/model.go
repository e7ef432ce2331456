// README: Suggestion produced by the recommendation engine.
package recommend

import (
	"github.com/google/uuid"

	"farecast/internal/modules/fare"
)

// Suggestion is the engine's pick for one estimate. Always produced:
// an empty estimate yields the degenerate form with no choice and
// confidence zero.
type Suggestion struct {
	SuggestionID     string      `json:"suggestion_id"`
	ChosenProviderID string      `json:"chosen_provider_id,omitempty"`
	ChosenFare       *fare.Offer `json:"chosen_fare,omitempty"`
	ConfidenceScore  float64     `json:"confidence_score"`
	Reason           string      `json:"reason"`
}

func newSuggestionID() string {
	return "sugg-" + uuid.NewString()
}

func emptySuggestion() Suggestion {
	return Suggestion{
		SuggestionID:    newSuggestionID(),
		ConfidenceScore: 0.0,
		Reason:          "No provider fares available",
	}
}

func chosenSuggestion(offer fare.Offer, confidence float64, reason string) Suggestion {
	o := offer
	return Suggestion{
		SuggestionID:     newSuggestionID(),
		ChosenProviderID: o.ProviderID,
		ChosenFare:       &o,
		ConfidenceScore:  confidence,
		Reason:           reason,
	}
}
