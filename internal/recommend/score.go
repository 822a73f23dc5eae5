// Package recommend ranks catalog apps for a user from their onboarding answers.
package recommend

import (
	"sort"

	"github.com/jonathan/app-recommender/internal/onboarding"
	"github.com/jonathan/app-recommender/internal/types"
)

// BaseScore is the score every eligible app starts from.
const BaseScore = 10

// Score ranks the eligible apps. An app is eligible when it is active and has a
// route; boosts for routes that are not eligible are dropped. The result is
// sorted by score descending, then by app ID ascending.
func Score(apps []types.App, interests, situation onboarding.Answer, tables ScoreTables) []types.Recommendation {
	candidates := make([]*types.App, 0, len(apps))
	scores := make(map[string]int, len(apps))
	for i := range apps {
		app := &apps[i]
		route := app.RouteKey()
		if !app.IsActive || route == "" {
			continue
		}
		if _, dup := scores[route]; dup {
			// Routes are unique in the catalog; keep the first app if that is ever violated.
			continue
		}
		candidates = append(candidates, app)
		scores[route] = BaseScore
	}

	if in, ok := interests.(onboarding.Interests); ok {
		for _, tag := range in.Tags {
			applyBoosts(scores, tables.Interests[tag])
		}
	}
	if sit, ok := situation.(onboarding.Situation); ok {
		applyBoosts(scores, tables.Situations[sit.Tag])
	}

	recs := make([]types.Recommendation, 0, len(candidates))
	for _, app := range candidates {
		recs = append(recs, types.Recommendation{
			App:   app.Summary(),
			Score: scores[app.RouteKey()],
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].App.ID < recs[j].App.ID
	})

	return recs
}

func applyBoosts(scores map[string]int, boosts []Boost) {
	for _, b := range boosts {
		if _, ok := scores[b.Route]; ok {
			scores[b.Route] += b.Weight
		}
	}
}
