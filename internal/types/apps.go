// Package types provides type definitions for structured data used throughout the app recommender.
package types

import (
	"github.com/google/uuid"
)

// App represents a catalog entry as stored. Route is nil for apps that cannot be launched directly.
type App struct {
	ID          string
	Name        string
	Description string
	IconURL     string
	Route       *string
	Category    *string
	IsBeta      bool
	IsActive    bool
}

// RouteKey returns the app's route, or "" when it has none.
func (a *App) RouteKey() string {
	if a.Route == nil {
		return ""
	}
	return *a.Route
}

// Summary returns the display-safe view of the app.
func (a *App) Summary() AppSummary {
	s := AppSummary{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		IconURL:     a.IconURL,
		IsBeta:      a.IsBeta,
		Route:       a.RouteKey(),
	}
	if a.Category != nil {
		s.Category = *a.Category
	}
	return s
}

// AppSummary is the app representation returned to clients.
type AppSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	Category    string `json:"category"`
	IsBeta      bool   `json:"isBeta"`
	Route       string `json:"route"`
}

// Recommendation pairs an app with its computed score.
type Recommendation struct {
	App   AppSummary `json:"app"`
	Score int        `json:"score"`
}

// RecommendedApp is a persisted recommendation snapshot row.
type RecommendedApp struct {
	UserID uuid.UUID `json:"user_id"`
	AppID  string    `json:"app_id"`
	Score  int       `json:"score"`
}
