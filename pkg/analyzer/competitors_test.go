package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestCoerceNilYieldsEmptyList(t *testing.T) {
	out := CoerceCompetitorAnalysis(nil, nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCoerceCanonicalListPassthrough(t *testing.T) {
	raw := decode(t, `[
		{"competitor": "Salesforce", "mentioned": true, "position": 12, "context": "Salesforce leads"},
		{"competitor": "HubSpot", "mentioned": false}
	]`)

	out := CoerceCompetitorAnalysis(raw, nil)

	require.Len(t, out, 2)
	assert.Equal(t, models.CompetitorMention{
		Competitor: "Salesforce", Mentioned: true, Position: 12, Context: "Salesforce leads",
	}, out[0])
	assert.Equal(t, -1, out[1].Position)
}

func TestCoerceLegacyMapOfObjects(t *testing.T) {
	raw := decode(t, `{
		"HubSpot": {"mentioned": true, "position": 3},
		"Salesforce": {"mentioned": false}
	}`)

	out := CoerceCompetitorAnalysis(raw, nil)

	require.Len(t, out, 2)
	// Map shape is sorted by name for determinism.
	assert.Equal(t, "HubSpot", out[0].Competitor)
	assert.True(t, out[0].Mentioned)
	assert.Equal(t, 3, out[0].Position)
	assert.Equal(t, "Salesforce", out[1].Competitor)
	assert.False(t, out[1].Mentioned)
}

func TestCoerceLegacyMapOfBools(t *testing.T) {
	raw := decode(t, `{"HubSpot": true, "Salesforce": false}`)

	out := CoerceCompetitorAnalysis(raw, nil)

	require.Len(t, out, 2)
	assert.True(t, out[0].Mentioned)
	assert.False(t, out[1].Mentioned)
}

func TestCoerceUnknownShapeNeverPanics(t *testing.T) {
	for _, raw := range []any{"a string", 42.0, true, []any{"loose", 1.0}} {
		out := CoerceCompetitorAnalysis(raw, nil)
		require.NotNil(t, out)
	}
}

func TestCoerceListWithNameKey(t *testing.T) {
	raw := decode(t, `[{"name": "HubSpot", "mentioned": true}]`)

	out := CoerceCompetitorAnalysis(raw, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "HubSpot", out[0].Competitor)
	assert.True(t, out[0].Mentioned)
}
