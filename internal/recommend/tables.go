package recommend

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Routes of the apps the default tables boost.
const (
	RouteMusicNetwork          = "music-network"
	RouteApprenticeshipHub     = "apprenticeship-hub"
	RouteYouthServiceNavigator = "youth-service-navigator"
	RoutePeerSupportFinder     = "peer-support-finder"
	RouteVolunteerPassport     = "volunteer-passport"
)

// Boost adds Weight to the score of the app at Route.
type Boost struct {
	Route  string `yaml:"route"`
	Weight int    `yaml:"weight"`
}

// ScoreTables maps interest and situation tags to the boosts they apply.
// Engines never modify the tables they are given.
type ScoreTables struct {
	Interests  map[string][]Boost `yaml:"interests"`
	Situations map[string][]Boost `yaml:"situations"`
}

// DefaultTables returns a fresh copy of the built-in scoring tables.
func DefaultTables() ScoreTables {
	return ScoreTables{
		Interests: map[string][]Boost{
			// Music
			"music_playing":   {{RouteMusicNetwork, 25}},
			"music_bands":     {{RouteMusicNetwork, 30}},
			"music_events":    {{RouteMusicNetwork, 20}},
			"music_recording": {{RouteMusicNetwork, 20}},
			"music_gear":      {{RouteMusicNetwork, 25}},

			// Employment
			"employment_apprenticeships": {{RouteApprenticeshipHub, 35}},
			"employment_traineeships":    {{RouteApprenticeshipHub, 35}},
			"employment_jobs":            {{RouteApprenticeshipHub, 25}},
			"employment_career_advice":   {{RouteApprenticeshipHub, 20}},
			"employment_tafe":            {{RouteApprenticeshipHub, 30}},

			// Wellbeing
			"wellbeing_mental_health": {{RouteYouthServiceNavigator, 35}, {RoutePeerSupportFinder, 25}},
			"wellbeing_peer_support":  {{RoutePeerSupportFinder, 35}, {RouteYouthServiceNavigator, 20}},
			"wellbeing_counselling":   {{RouteYouthServiceNavigator, 30}},
			"wellbeing_crisis":        {{RouteYouthServiceNavigator, 25}},
			"wellbeing_general":       {{RouteYouthServiceNavigator, 20}, {RoutePeerSupportFinder, 20}},

			// Community
			"community_volunteering": {{RouteVolunteerPassport, 35}},
			"community_events":       {{RouteVolunteerPassport, 20}},
			"community_networking":   {{RouteVolunteerPassport, 15}},
			"community_clubs":        {{RouteVolunteerPassport, 20}},
			"community_mentoring":    {{RouteVolunteerPassport, 25}},
		},
		Situations: map[string][]Boost{
			"student_school":   {{RouteYouthServiceNavigator, 15}, {RouteApprenticeshipHub, 10}},
			"student_tertiary": {{RoutePeerSupportFinder, 10}, {RouteApprenticeshipHub, 15}},
			"looking_for_work": {{RouteApprenticeshipHub, 25}},
			"taking_a_break":   {{RouteYouthServiceNavigator, 15}, {RoutePeerSupportFinder, 15}, {RouteVolunteerPassport, 20}},
		},
	}
}

// LoadTables reads scoring tables from a YAML file.
func LoadTables(path string) (ScoreTables, error) {
	if path == "" {
		return ScoreTables{}, fmt.Errorf("tables path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ScoreTables{}, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}

	return ParseTables(data)
}

// ParseTables decodes and validates YAML scoring tables.
func ParseTables(data []byte) (ScoreTables, error) {
	var tables ScoreTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return ScoreTables{}, fmt.Errorf("failed to parse tables YAML: %w", err)
	}
	if err := tables.Validate(); err != nil {
		return ScoreTables{}, err
	}
	if tables.Interests == nil {
		tables.Interests = map[string][]Boost{}
	}
	if tables.Situations == nil {
		tables.Situations = map[string][]Boost{}
	}
	return tables, nil
}

// Validate checks that every boost names a route and has a non-negative weight.
func (t ScoreTables) Validate() error {
	if err := validateTable("interests", t.Interests); err != nil {
		return err
	}
	return validateTable("situations", t.Situations)
}

func validateTable(name string, table map[string][]Boost) error {
	for _, tag := range sortedTags(table) {
		if tag == "" {
			return fmt.Errorf("tables error: %s has an empty tag", name)
		}
		for i, b := range table[tag] {
			if b.Route == "" {
				return fmt.Errorf("tables error: %s[%s][%d] has an empty route", name, tag, i)
			}
			if b.Weight < 0 {
				return fmt.Errorf("tables error: %s[%s][%d] weight must be non-negative, got %d", name, tag, i, b.Weight)
			}
		}
	}
	return nil
}

// Encode renders the tables as YAML with tags in sorted order.
func (t ScoreTables) Encode() ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tables: %w", err)
	}
	return out, nil
}

// clone deep-copies the tables so callers cannot mutate an engine's view.
func (t ScoreTables) clone() ScoreTables {
	return ScoreTables{
		Interests:  cloneTable(t.Interests),
		Situations: cloneTable(t.Situations),
	}
}

func cloneTable(table map[string][]Boost) map[string][]Boost {
	out := make(map[string][]Boost, len(table))
	for tag, boosts := range table {
		out[tag] = append([]Boost(nil), boosts...)
	}
	return out
}

func sortedTags(table map[string][]Boost) []string {
	tags := make([]string, 0, len(table))
	for tag := range table {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
