// README: History store backed by PostgreSQL.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"farecast/internal/modules/fare"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Init creates the fare_history table for local runs.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS fare_history (
            id                   TEXT PRIMARY KEY,
            user_id              TEXT NOT NULL,
            origin               TEXT NOT NULL,
            destination          TEXT NOT NULL,
            chosen_provider_id   TEXT NOT NULL,
            chosen_provider_name TEXT NOT NULL,
            vehicle_type         TEXT NOT NULL,
            price                DOUBLE PRECISION NOT NULL,
            savings              DOUBLE PRECISION NOT NULL,
            co2_emission_kg      DOUBLE PRECISION,
            walked_distance_km   DOUBLE PRECISION NOT NULL DEFAULT 0,
            estimate             JSONB NOT NULL,
            created_at           TIMESTAMPTZ NOT NULL
        );
        CREATE INDEX IF NOT EXISTS fare_history_user_created_idx
            ON fare_history (user_id, created_at DESC)`)
	if err != nil {
		return fmt.Errorf("init fare_history: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	estimate, err := json.Marshal(rec.Estimate)
	if err != nil {
		return fmt.Errorf("marshal estimate: %w", err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO fare_history (
            id, user_id, origin, destination,
            chosen_provider_id, chosen_provider_name, vehicle_type,
            price, savings, co2_emission_kg, walked_distance_km,
            estimate, created_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7,
            $8, $9, $10, $11,
            $12, $13
        )`,
		rec.ID, rec.UserID, rec.Origin, rec.Destination,
		rec.ChosenProviderID, rec.ChosenProviderName, rec.VehicleType,
		rec.Price, rec.Savings, rec.CO2EmissionKg, rec.WalkedDistanceKm,
		estimate, rec.CreatedAt,
	)
	return err
}

// ListByUser returns the user's records, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, user_id, origin, destination,
               chosen_provider_id, chosen_provider_name, vehicle_type,
               price, savings, co2_emission_kg, walked_distance_km,
               estimate, created_at
        FROM fare_history
        WHERE user_id = $1
        ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var estimate []byte
		var co2 *float64
		var createdAt time.Time
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Origin, &rec.Destination,
			&rec.ChosenProviderID, &rec.ChosenProviderName, &rec.VehicleType,
			&rec.Price, &rec.Savings, &co2, &rec.WalkedDistanceKm,
			&estimate, &createdAt,
		); err != nil {
			return nil, err
		}
		rec.CO2EmissionKg = co2
		rec.CreatedAt = createdAt
		if err := json.Unmarshal(estimate, &rec.Estimate); err != nil {
			rec.Estimate = fare.Estimate{}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
