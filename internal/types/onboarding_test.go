package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveInterestsRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SaveInterestsRequest
		wantErr bool
	}{
		{name: "valid", req: SaveInterestsRequest{Interests: []string{"music_bands", "community_events"}}},
		{name: "empty list", req: SaveInterestsRequest{Interests: []string{}}},
		{name: "missing", req: SaveInterestsRequest{}, wantErr: true},
		{name: "blank tag", req: SaveInterestsRequest{Interests: []string{"music_bands", ""}}, wantErr: true},
		{name: "tag too long", req: SaveInterestsRequest{Interests: []string{strings.Repeat("x", 65)}}, wantErr: true},
		{name: "too many", req: SaveInterestsRequest{Interests: make51("tag")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveSituationRequest_Validate(t *testing.T) {
	for _, situation := range []string{"student_school", "student_tertiary", "working", "looking_for_work", "taking_a_break", "other"} {
		req := SaveSituationRequest{CurrentSituation: situation}
		assert.NoError(t, req.Validate(), situation)
	}

	for _, situation := range []string{"", "Working", "retired"} {
		req := SaveSituationRequest{CurrentSituation: situation}
		assert.Error(t, req.Validate(), situation)
	}
}

func TestSelectAppsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SelectAppsRequest{}).Validate())
	assert.NoError(t, (&SelectAppsRequest{SelectedAppIDs: []string{"a", "b"}}).Validate())
	assert.Error(t, (&SelectAppsRequest{SelectedAppIDs: []string{"a", ""}}).Validate())
	assert.Error(t, (&SelectAppsRequest{SelectedAppIDs: make51("app")}).Validate())
}

func make51(prefix string) []string {
	out := make([]string, 51)
	for i := range out {
		out[i] = prefix
	}
	return out
}
