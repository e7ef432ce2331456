// README: Choice history record and analytics shapes.
package history

import (
	"time"

	"farecast/internal/modules/fare"
)

// Record is one settled choice: the offer the user committed to, plus
// the savings and emission figures derived from the snapshot it came from.
type Record struct {
	ID                 string        `json:"history_id,omitempty"`
	UserID             string        `json:"user_id"`
	Origin             string        `json:"origin"`
	Destination        string        `json:"destination"`
	ChosenProviderID   string        `json:"chosen_provider_id"`
	ChosenProviderName string        `json:"chosen_provider_name"`
	VehicleType        string        `json:"vehicle_type"`
	Price              float64       `json:"price"`
	Savings            float64       `json:"savings"`
	CO2EmissionKg      *float64      `json:"co2_emission_kg,omitempty"`
	WalkedDistanceKm   float64       `json:"walked_distance_km"`
	Estimate           fare.Estimate `json:"fare_estimate"`
	CreatedAt          time.Time     `json:"created_at"`
}

// Summary aggregates a user's settled choices.
type Summary struct {
	TotalRequests    int     `json:"totalRequests"`
	AverageSavings   float64 `json:"averageSavings"`
	MostUsedProvider string  `json:"mostUsedProvider"`
	CO2SavedKg       float64 `json:"co2SavedKg"`
	WalkedKm         float64 `json:"walkedKm"`
	CaloriesBurned   int64   `json:"caloriesBurned"`
}

// CO2Trend is a day-bucketed emission series, oldest first.
type CO2Trend struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
