package querygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
	querygenv1 "github.com/brandlens/brandlens/proto"
)

func TestFromProtoQueryMapsFields(t *testing.T) {
	mapped, ok := fromProtoQuery(&querygenv1.GeneratedQuery{
		Query:               "acme crm vs salesforce",
		Category:            "comparison",
		Type:                "commercial",
		Intent:              "head-to-head",
		Difficulty:          6,
		Priority:            "high",
		MonthlySearchVolume: 1200,
		AiRelevance:         9,
	})

	require.True(t, ok)
	assert.Equal(t, models.GeneratedQuery{
		Query:               "acme crm vs salesforce",
		Category:            models.CategoryComparison,
		Type:                models.QueryTypeCommercial,
		Intent:              "head-to-head",
		Difficulty:          6,
		Priority:            models.PriorityHigh,
		MonthlySearchVolume: 1200,
		AIRelevance:         9,
	}, mapped)
}

func TestFromProtoQueryDropsInvalid(t *testing.T) {
	_, ok := fromProtoQuery(&querygenv1.GeneratedQuery{Query: "q", Category: "made_up"})
	assert.False(t, ok)

	_, ok = fromProtoQuery(&querygenv1.GeneratedQuery{Category: "comparison"})
	assert.False(t, ok)
}

func TestFromProtoQueryDefaultsUnknownEnums(t *testing.T) {
	mapped, ok := fromProtoQuery(&querygenv1.GeneratedQuery{
		Query:    "q",
		Category: "evaluation",
		Type:     "speculative",
		Priority: "urgent",
	})

	require.True(t, ok)
	assert.Equal(t, models.QueryTypeInformational, mapped.Type)
	assert.Equal(t, models.PriorityMedium, mapped.Priority)
}

func TestToProtoRequestCarriesProfile(t *testing.T) {
	req := toProtoRequest(builtinRequest())

	assert.Equal(t, "Acme CRM", req.CompanyName)
	assert.Equal(t, "acme.io", req.Domain)
	assert.Equal(t, []string{"Salesforce", "HubSpot"}, req.Competitors)
	assert.Equal(t, int32(8), req.QueriesPerCategory)
}
