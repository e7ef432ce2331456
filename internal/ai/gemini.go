// README: Gemini-backed scorer implementation.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"farecast/internal/modules/fare"
)

// GeminiScorer implements Scorer using Google's Gemini models.
type GeminiScorer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiScorer initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiScorer(ctx context.Context, apiKey string) (*GeminiScorer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Flash keeps latency and cost low; scoring is a small prompt.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.2)

	return &GeminiScorer{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (s *GeminiScorer) Close() {
	s.client.Close()
}

// Score asks the model to pick the best offer for the trip.
func (s *GeminiScorer) Score(ctx context.Context, estimate fare.Estimate, trip fare.TripRequest) (ScoreResult, error) {
	fares, err := json.Marshal(estimate.ProviderFares)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("marshal fares: %w", err)
	}

	prompt := buildScorePrompt(trip, estimate.TotalDistanceKm, string(fares))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return ScoreResult{}, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ScoreResult{}, fmt.Errorf("no response candidates from Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	var result ScoreResult
	clean := cleanJSONString(text.String())
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return ScoreResult{}, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, clean)
	}

	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}
	return result, nil
}

func buildScorePrompt(trip fare.TripRequest, distanceKm float64, faresJSON string) string {
	return fmt.Sprintf(`Role: You are the recommendation core of a transport fare comparison service.

Trip:
- Origin: %s
- Destination: %s
- Distance: %.1f km
- Prefer cheapest: %t
- Prefer fastest: %t

Offers (JSON array):
%s

Pick the single best offer for this trip, balancing price, ETA and
emissions. You MUST choose a provider_id that appears in the offers.

Output JSON schema:
{
  "chosen_provider_id": "string (exact provider_id from the offers)",
  "confidence": number between 0 and 1
}
`, trip.Origin, trip.Destination, distanceKm, trip.PreferCheapest, trip.PreferFastest, faresJSON)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
