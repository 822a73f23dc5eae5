package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/app-recommender/internal/types"
)

// ReplaceRecommendedApps replaces the user's stored recommendation snapshot
func (db *DB) ReplaceRecommendedApps(ctx context.Context, userID uuid.UUID, recs []types.Recommendation) error {
	err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM user_recommended_apps WHERE user_id = $1`, userID.String(),
		); err != nil {
			return fmt.Errorf("failed to clear recommended apps: %w", err)
		}

		for _, rec := range recs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO user_recommended_apps (user_id, app_id, recommendation_score, shown_at)
				 VALUES ($1, $2, $3, NOW())`,
				userID.String(), rec.App.ID, rec.Score,
			); err != nil {
				return fmt.Errorf("failed to insert recommended app %s: %w", rec.App.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace recommended apps: %w", err)
	}
	return nil
}

// ListRecommendedApps returns the user's stored snapshot, highest score first
func (db *DB) ListRecommendedApps(ctx context.Context, userID uuid.UUID) ([]types.RecommendedApp, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT app_id, COALESCE(recommendation_score, 0)
		 FROM user_recommended_apps WHERE user_id = $1
		 ORDER BY recommendation_score DESC NULLS LAST, app_id`,
		userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommended apps: %w", err)
	}
	defer rows.Close()

	var out []types.RecommendedApp
	for rows.Next() {
		rec := types.RecommendedApp{UserID: userID}
		if err := rows.Scan(&rec.AppID, &rec.Score); err != nil {
			return nil, fmt.Errorf("failed to scan recommended app: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list recommended apps: %w", err)
	}
	return out, nil
}

// SelectApps replaces the user's app list with appIDs in order and marks any
// matching recommendations as accepted
func (db *DB) SelectApps(ctx context.Context, userID uuid.UUID, appIDs []string) error {
	err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM user_apps WHERE user_id = $1`, userID.String(),
		); err != nil {
			return fmt.Errorf("failed to clear user apps: %w", err)
		}

		for i, appID := range appIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO user_apps (user_id, app_id, position, is_pinned)
				 VALUES ($1, $2, $3, false)`,
				userID.String(), appID, i,
			); err != nil {
				return fmt.Errorf("failed to insert user app %s: %w", appID, err)
			}
		}

		if len(appIDs) == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx,
			`UPDATE user_recommended_apps SET accepted = true, accepted_at = NOW()
			 WHERE user_id = $1 AND app_id = ANY($2)`,
			userID.String(), appIDs,
		); err != nil {
			return fmt.Errorf("failed to mark recommendations accepted: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to select apps: %w", err)
	}
	return nil
}
