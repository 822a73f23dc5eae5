package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/app-recommender/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := []types.Recommendation{
		{App: types.AppSummary{ID: "a1", Name: "Music Network", Route: "music-network", Category: "Music"}, Score: 65},
		{App: types.AppSummary{ID: "a2", Name: "Volunteer Passport", Route: "volunteer-passport", IsBeta: true}, Score: 10},
	}

	p.PrintRecommendations("user-1", recs)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDED APPS")
	assert.Contains(t, output, "Apps ranked: 2")
	assert.Contains(t, output, "Music Network")
	assert.Contains(t, output, "65")
	assert.Contains(t, output, "[Music]")
	assert.Contains(t, output, "Volunteer Passport (beta)")
	assert.Less(t, strings.Index(output, "Music Network"), strings.Index(output, "Volunteer Passport"))
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations("user-1", nil)

	assert.Contains(t, buf.String(), "No active apps in the catalog")
}

func TestPrintRecommendations_Truncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := make([]types.Recommendation, 0, 12)
	for i := 0; i < 12; i++ {
		recs = append(recs, types.Recommendation{
			App:   types.AppSummary{ID: fmt.Sprintf("app-%02d", i), Name: fmt.Sprintf("App %02d", i), Route: "r"},
			Score: 10,
		})
	}

	p.PrintRecommendations("user-1", recs)
	output := buf.String()

	assert.Contains(t, output, "App 09")
	assert.NotContains(t, output, "App 10")
	assert.Contains(t, output, "... and 2 more apps")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
