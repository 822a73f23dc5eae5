package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetOnboardingResponse returns the stored answer for (userID, questionKey).
// Returns nil, nil when the user has not answered.
func (db *DB) GetOnboardingResponse(ctx context.Context, userID uuid.UUID, questionKey string) (json.RawMessage, error) {
	var response []byte
	err := db.pool.QueryRow(ctx,
		`SELECT response FROM user_onboarding_responses
		 WHERE user_id = $1 AND question_key = $2
		 ORDER BY created_at DESC LIMIT 1`,
		userID.String(), questionKey,
	).Scan(&response)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get onboarding response %s: %w", questionKey, err)
	}
	return json.RawMessage(response), nil
}

// SaveOnboardingResponse stores the answer for (userID, questionKey), replacing any previous one
func (db *DB) SaveOnboardingResponse(ctx context.Context, userID uuid.UUID, questionKey string, value any) error {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal onboarding response: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_onboarding_responses (user_id, question_key, response)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, question_key) DO UPDATE SET response = $3, created_at = NOW()`,
		userID.String(), questionKey, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save onboarding response %s: %w", questionKey, err)
	}
	return nil
}
