package querygen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/models"
)

func builtinRequest() Request {
	return Request{
		Profile: models.CompanyProfile{
			Name:        "Acme CRM",
			Domain:      "acme.io",
			Industry:    "CRM",
			Competitors: []string{"Salesforce", "HubSpot"},
		},
		QueriesPerCategory: 8,
	}
}

func TestBuiltinGeneratesPerCategory(t *testing.T) {
	out, err := NewBuiltinGenerator().Generate(context.Background(), builtinRequest())
	require.NoError(t, err)

	counts := make(map[models.Category]int)
	for _, q := range out {
		counts[q.Category]++
		assert.NotEmpty(t, q.Query)
		assert.NotEmpty(t, q.Type)
		assert.NotEmpty(t, q.Priority)
	}
	for _, cat := range models.Categories() {
		assert.Equal(t, 8, counts[cat], "category %s", cat)
	}
}

func TestBuiltinSubstitutesProfile(t *testing.T) {
	out, err := NewBuiltinGenerator().Generate(context.Background(), builtinRequest())
	require.NoError(t, err)

	var sawBrand, sawIndustry, sawCompetitor bool
	for _, q := range out {
		assert.NotContains(t, q.Query, "{brand}")
		assert.NotContains(t, q.Query, "{industry}")
		assert.NotContains(t, q.Query, "{competitor}")
		if contains(q.Query, "Acme CRM") {
			sawBrand = true
		}
		if contains(q.Query, "crm") {
			sawIndustry = true
		}
		if contains(q.Query, "Salesforce") || contains(q.Query, "HubSpot") {
			sawCompetitor = true
		}
	}
	assert.True(t, sawBrand)
	assert.True(t, sawIndustry)
	assert.True(t, sawCompetitor)
}

func TestBuiltinNoCompetitorsSkipsComparativeTemplates(t *testing.T) {
	req := builtinRequest()
	req.Profile.Competitors = nil

	out, err := NewBuiltinGenerator().Generate(context.Background(), req)
	require.NoError(t, err)

	for _, q := range out {
		assert.NotContains(t, q.Query, "{competitor}")
	}
	// Comparison still has brand-only templates.
	count := 0
	for _, q := range out {
		if q.Category == models.CategoryComparison {
			count++
		}
	}
	assert.Greater(t, count, 0)
}

func TestBuiltinDeterministic(t *testing.T) {
	g := NewBuiltinGenerator()
	first, err := g.Generate(context.Background(), builtinRequest())
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), builtinRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuiltinDefaultsIndustry(t *testing.T) {
	req := builtinRequest()
	req.Profile.Industry = ""
	req.QueriesPerCategory = 0 // default applies

	out, err := NewBuiltinGenerator().Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	var sawDefault bool
	for _, q := range out {
		if contains(q.Query, "business software") {
			sawDefault = true
		}
	}
	assert.True(t, sawDefault)
}

func TestNewSelectsMode(t *testing.T) {
	g, err := New(config.QueryGenConfig{Mode: "builtin"})
	require.NoError(t, err)
	assert.IsType(t, &BuiltinGenerator{}, g)

	_, err = New(config.QueryGenConfig{Mode: "grpc"})
	assert.Error(t, err) // endpoint required

	_, err = New(config.QueryGenConfig{Mode: "carrier-pigeon"})
	assert.Error(t, err)
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
