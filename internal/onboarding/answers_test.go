package onboarding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterests(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      Answer
		malformed bool
	}{
		{name: "array of tags", raw: `["music_bands","music_gear"]`, want: Interests{Tags: []string{"music_bands", "music_gear"}}},
		{name: "empty array", raw: `[]`, want: Interests{Tags: []string{}}},
		{name: "blank tags dropped", raw: `["music_bands", "  ", ""]`, want: Interests{Tags: []string{"music_bands"}}},
		{name: "nothing stored", raw: ``, want: Absent{}},
		{name: "json null", raw: `null`, want: Absent{}},
		{name: "string instead of array", raw: `"music_bands"`, malformed: true},
		{name: "object instead of array", raw: `{"interests":["music_bands"]}`, malformed: true},
		{name: "array with numbers", raw: `["music_bands", 3]`, malformed: true},
		{name: "invalid json", raw: `[music_bands`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInterests(json.RawMessage(tt.raw))
			if tt.malformed {
				absent, ok := got.(Absent)
				require.True(t, ok, "expected Absent, got %T", got)
				assert.True(t, absent.Malformed())
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSituation(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      Answer
		malformed bool
	}{
		{name: "valid situation", raw: `{"situation":"looking_for_work"}`, want: Situation{Tag: "looking_for_work"}},
		{name: "extra fields ignored", raw: `{"situation":"taking_a_break","note":"x"}`, want: Situation{Tag: "taking_a_break"}},
		{name: "empty situation", raw: `{"situation":""}`, want: Absent{}},
		{name: "nothing stored", raw: ``, want: Absent{}},
		{name: "json null", raw: `null`, want: Absent{}},
		{name: "missing field", raw: `{"status":"working"}`, malformed: true},
		{name: "bare string", raw: `"working"`, malformed: true},
		{name: "non string situation", raw: `{"situation":42}`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSituation(json.RawMessage(tt.raw))
			if tt.malformed {
				absent, ok := got.(Absent)
				require.True(t, ok, "expected Absent, got %T", got)
				assert.True(t, absent.Malformed())
				assert.NotEmpty(t, absent.Reason)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_DispatchesOnKey(t *testing.T) {
	assert.Equal(t, Interests{Tags: []string{"community_events"}}, Parse(KeyInterests, json.RawMessage(`["community_events"]`)))
	assert.Equal(t, Situation{Tag: "working"}, Parse(KeyCurrentSituation, json.RawMessage(`{"situation":"working"}`)))

	got := Parse("intent", json.RawMessage(`{"primaryIntent":"music"}`))
	absent, ok := got.(Absent)
	require.True(t, ok)
	assert.Contains(t, absent.Reason, "unsupported question key")
}

func TestSituationValue_RoundTrip(t *testing.T) {
	raw, err := json.Marshal(SituationValue("looking_for_work"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"situation":"looking_for_work"}`, string(raw))

	assert.Equal(t, Situation{Tag: "looking_for_work"}, ParseSituation(raw))
}
