package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/app-recommender/internal/types"
)

const appColumns = `id, name, description, icon_url, route, category, COALESCE(is_beta, false), COALESCE(is_active, true)`

// ListActiveApps returns every app with is_active = true, ordered by ID
func (db *DB) ListActiveApps(ctx context.Context) ([]types.App, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+appColumns+`
		 FROM apps WHERE is_active = true ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active apps: %w", err)
	}
	defer rows.Close()

	apps, err := scanApps(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list active apps: %w", err)
	}
	return apps, nil
}

// GetApp retrieves an app by ID. Returns nil if not found.
func (db *DB) GetApp(ctx context.Context, id string) (*types.App, error) {
	var app types.App
	err := db.pool.QueryRow(ctx,
		`SELECT `+appColumns+` FROM apps WHERE id = $1`, id,
	).Scan(&app.ID, &app.Name, &app.Description, &app.IconURL, &app.Route, &app.Category, &app.IsBeta, &app.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get app: %w", err)
	}
	return &app, nil
}

func scanApps(rows pgx.Rows) ([]types.App, error) {
	apps := make([]types.App, 0)
	for rows.Next() {
		var app types.App
		if err := rows.Scan(&app.ID, &app.Name, &app.Description, &app.IconURL, &app.Route, &app.Category, &app.IsBeta, &app.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan app: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate apps: %w", err)
	}
	return apps, nil
}
