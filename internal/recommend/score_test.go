package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/app-recommender/internal/onboarding"
	"github.com/jonathan/app-recommender/internal/types"
)

func TestScore_NoSignals(t *testing.T) {
	apps := testCatalog().apps

	recs := Score(apps, onboarding.Absent{}, onboarding.Absent{}, DefaultTables())

	require.Len(t, recs, 5)
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.App.ID)
		assert.Equal(t, BaseScore, r.Score)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, ids)
}

func TestScore_FiltersInactiveEvenIfCatalogReturnsThem(t *testing.T) {
	apps := []types.App{
		testApp("b", RouteMusicNetwork, false),
		testApp("a", RouteVolunteerPassport, true),
	}

	recs := Score(apps, onboarding.Interests{Tags: []string{"music_bands"}}, nil, DefaultTables())

	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0].App.ID)
}

func TestScore_SummaryCarriesDisplayFields(t *testing.T) {
	app := testApp("a1", RouteMusicNetwork, true)
	app.IsBeta = true

	recs := Score([]types.App{app}, nil, nil, DefaultTables())

	require.Len(t, recs, 1)
	assert.Equal(t, types.AppSummary{
		ID:          "a1",
		Name:        "App a1",
		Description: "Description of a1",
		IconURL:     "/icons/a1.svg",
		Category:    "Community",
		IsBeta:      true,
		Route:       RouteMusicNetwork,
	}, recs[0].App)
}

func TestScore_TieBreakOnID(t *testing.T) {
	apps := []types.App{
		testApp("z", RouteVolunteerPassport, true),
		testApp("m", RouteMusicNetwork, true),
		testApp("b", RouteApprenticeshipHub, true),
	}

	recs := Score(apps, onboarding.Interests{Tags: []string{"employment_jobs"}}, onboarding.Absent{}, DefaultTables())

	require.Len(t, recs, 3)
	assert.Equal(t, "b", recs[0].App.ID)
	assert.Equal(t, "m", recs[1].App.ID)
	assert.Equal(t, "z", recs[2].App.ID)
}

func TestScore_DuplicateRouteKeepsFirst(t *testing.T) {
	apps := []types.App{
		testApp("first", RouteMusicNetwork, true),
		testApp("second", RouteMusicNetwork, true),
	}

	recs := Score(apps, onboarding.Interests{Tags: []string{"music_gear"}}, nil, DefaultTables())

	require.Len(t, recs, 1)
	assert.Equal(t, "first", recs[0].App.ID)
	assert.Equal(t, 35, recs[0].Score)
}

func TestScore_SituationOnlyUsesSituationTable(t *testing.T) {
	tables := ScoreTables{
		Interests:  map[string][]Boost{"shared_tag": {{RouteMusicNetwork, 100}}},
		Situations: map[string][]Boost{"shared_tag": {{RouteMusicNetwork, 1}}},
	}

	recs := Score([]types.App{testApp("a1", RouteMusicNetwork, true)}, onboarding.Absent{}, onboarding.Situation{Tag: "shared_tag"}, tables)

	assert.Equal(t, 11, recs[0].Score)
}
