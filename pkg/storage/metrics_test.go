package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

func TestCompetitorRowsRoundTrip(t *testing.T) {
	mentions := []models.CompetitorMention{
		{Competitor: "Salesforce", Mentioned: true, Position: 3, Context: "listed first"},
		{Competitor: "HubSpot", Mentioned: false, Position: -1},
	}

	got := competitorMentions(competitorRows(mentions))
	assert.Equal(t, mentions, got)
}

func TestCompetitorMentionsCoercesPartialRows(t *testing.T) {
	// Rows written before the position column was mandatory decode with
	// the not-ranked sentinel, not a fake first-page position.
	rows := []map[string]any{
		{"competitor": "Salesforce", "mentioned": true},
		{"competitor": "HubSpot", "mentioned": false, "position": float64(7)},
	}

	got := competitorMentions(rows)
	require.Len(t, got, 2)
	assert.Equal(t, -1, got[0].Position)
	assert.Equal(t, 7, got[1].Position)
}

func TestCompetitorMentionsEmpty(t *testing.T) {
	assert.Empty(t, competitorMentions(nil))
	assert.Empty(t, competitorMentions([]map[string]any{}))
}
