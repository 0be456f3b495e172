package querygen

import (
	"context"
	"strings"

	"github.com/brandlens/brandlens/pkg/models"
)

// BuiltinGenerator expands fixed per-category templates with the company
// profile. Output is fully deterministic for a given request, which makes
// audit re-runs reproducible without an external service.
type BuiltinGenerator struct{}

// NewBuiltinGenerator returns the template-backed generator.
func NewBuiltinGenerator() *BuiltinGenerator {
	return &BuiltinGenerator{}
}

// template is one query pattern. Placeholders: {industry}, {brand},
// {competitor} (rotates through the profile's competitor list).
type template struct {
	pattern     string
	typ         models.QueryType
	priority    models.Priority
	intent      string
	difficulty  int // 0-10
	aiRelevance int // 0-10
}

var categoryTemplates = map[models.Category][]template{
	models.CategoryProblemUnaware: {
		{"why is {industry} management so difficult", models.QueryTypeInformational, models.PriorityMedium, "pain discovery", 3, 8},
		{"common {industry} mistakes to avoid", models.QueryTypeInformational, models.PriorityMedium, "pain discovery", 3, 7},
		{"how do i know if i need {industry} software", models.QueryTypeInformational, models.PriorityHigh, "need recognition", 4, 8},
		{"signs your {industry} process is broken", models.QueryTypeInformational, models.PriorityMedium, "need recognition", 4, 7},
		{"what is {industry} automation", models.QueryTypeInformational, models.PriorityLow, "education", 2, 8},
		{"hidden costs of manual {industry} work", models.QueryTypeInformational, models.PriorityLow, "pain discovery", 3, 6},
		{"why do {industry} projects fail", models.QueryTypeInformational, models.PriorityMedium, "pain discovery", 4, 7},
		{"how much time does {industry} admin take", models.QueryTypeInformational, models.PriorityLow, "pain discovery", 2, 6},
		{"problems with spreadsheets for {industry}", models.QueryTypeInformational, models.PriorityMedium, "need recognition", 3, 7},
		{"what slows down {industry} teams", models.QueryTypeInformational, models.PriorityLow, "pain discovery", 3, 6},
	},
	models.CategorySolutionSeeking: {
		{"best {industry} software", models.QueryTypeCommercial, models.PriorityHigh, "solution research", 8, 9},
		{"top {industry} tools 2026", models.QueryTypeCommercial, models.PriorityHigh, "solution research", 7, 9},
		{"{industry} software for small business", models.QueryTypeCommercial, models.PriorityHigh, "solution research", 6, 8},
		{"{industry} tools for startups", models.QueryTypeCommercial, models.PriorityMedium, "solution research", 5, 8},
		{"affordable {industry} platforms", models.QueryTypeCommercial, models.PriorityMedium, "solution research", 5, 7},
		{"{industry} software with api access", models.QueryTypeCommercial, models.PriorityLow, "feature research", 4, 7},
		{"easiest {industry} software to learn", models.QueryTypeCommercial, models.PriorityMedium, "solution research", 5, 7},
		{"enterprise {industry} solutions", models.QueryTypeCommercial, models.PriorityMedium, "solution research", 6, 7},
		{"free {industry} tools", models.QueryTypeCommercial, models.PriorityLow, "solution research", 6, 7},
		{"{industry} software with best integrations", models.QueryTypeCommercial, models.PriorityLow, "feature research", 4, 7},
	},
	models.CategoryBrandSpecific: {
		{"{brand} review", models.QueryTypeNavigational, models.PriorityHigh, "brand research", 3, 9},
		{"{brand} pricing", models.QueryTypeNavigational, models.PriorityHigh, "brand research", 2, 9},
		{"is {brand} any good", models.QueryTypeNavigational, models.PriorityHigh, "brand validation", 3, 9},
		{"{brand} features", models.QueryTypeNavigational, models.PriorityMedium, "brand research", 2, 8},
		{"{brand} customer reviews", models.QueryTypeNavigational, models.PriorityMedium, "brand validation", 3, 8},
		{"{brand} pros and cons", models.QueryTypeNavigational, models.PriorityMedium, "brand validation", 3, 8},
		{"how does {brand} work", models.QueryTypeInformational, models.PriorityMedium, "brand research", 2, 8},
		{"{brand} free trial", models.QueryTypeTransactional, models.PriorityMedium, "conversion", 2, 7},
		{"who uses {brand}", models.QueryTypeInformational, models.PriorityLow, "brand research", 3, 7},
		{"{brand} integrations", models.QueryTypeNavigational, models.PriorityLow, "feature research", 2, 7},
	},
	models.CategoryComparison: {
		{"{brand} vs {competitor}", models.QueryTypeCommercial, models.PriorityHigh, "head-to-head", 6, 9},
		{"{competitor} alternatives", models.QueryTypeCommercial, models.PriorityHigh, "displacement", 7, 9},
		{"{brand} vs {competitor} pricing", models.QueryTypeCommercial, models.PriorityMedium, "head-to-head", 5, 8},
		{"{brand} alternatives", models.QueryTypeCommercial, models.PriorityHigh, "retention risk", 6, 8},
		{"is {brand} better than {competitor}", models.QueryTypeCommercial, models.PriorityMedium, "head-to-head", 5, 8},
		{"{competitor} vs {brand} for small teams", models.QueryTypeCommercial, models.PriorityMedium, "head-to-head", 5, 7},
		{"switch from {competitor} to {brand}", models.QueryTypeTransactional, models.PriorityMedium, "displacement", 4, 8},
		{"compare {industry} software options", models.QueryTypeCommercial, models.PriorityLow, "category comparison", 6, 7},
		{"{brand} compared to {competitor} features", models.QueryTypeCommercial, models.PriorityLow, "head-to-head", 4, 7},
		{"cheaper alternative to {competitor}", models.QueryTypeCommercial, models.PriorityMedium, "displacement", 5, 8},
	},
	models.CategoryEvaluation: {
		{"{brand} pricing plans explained", models.QueryTypeCommercial, models.PriorityHigh, "purchase evaluation", 3, 8},
		{"is {brand} worth it", models.QueryTypeCommercial, models.PriorityHigh, "purchase evaluation", 4, 9},
		{"{brand} demo", models.QueryTypeTransactional, models.PriorityHigh, "conversion", 2, 7},
		{"{brand} for {industry} teams review", models.QueryTypeCommercial, models.PriorityMedium, "purchase evaluation", 4, 8},
		{"{brand} implementation cost", models.QueryTypeCommercial, models.PriorityMedium, "purchase evaluation", 4, 7},
		{"{brand} security and compliance", models.QueryTypeInformational, models.PriorityMedium, "risk evaluation", 4, 7},
		{"{brand} customer support quality", models.QueryTypeInformational, models.PriorityMedium, "risk evaluation", 3, 7},
		{"{brand} roi case study", models.QueryTypeCommercial, models.PriorityLow, "purchase evaluation", 4, 7},
		{"{brand} onboarding time", models.QueryTypeInformational, models.PriorityLow, "risk evaluation", 3, 6},
		{"buy {brand} subscription", models.QueryTypeTransactional, models.PriorityMedium, "conversion", 2, 6},
	},
	models.CategoryPostPurchase: {
		{"how to set up {brand}", models.QueryTypeInformational, models.PriorityHigh, "onboarding", 2, 8},
		{"{brand} tutorial", models.QueryTypeInformational, models.PriorityHigh, "onboarding", 2, 8},
		{"{brand} best practices", models.QueryTypeInformational, models.PriorityMedium, "adoption", 3, 8},
		{"{brand} api documentation", models.QueryTypeNavigational, models.PriorityMedium, "adoption", 2, 7},
		{"{brand} advanced features guide", models.QueryTypeInformational, models.PriorityMedium, "adoption", 3, 7},
		{"migrate data into {brand}", models.QueryTypeInformational, models.PriorityMedium, "onboarding", 4, 7},
		{"{brand} troubleshooting", models.QueryTypeInformational, models.PriorityMedium, "support", 3, 7},
		{"{brand} upgrade plan", models.QueryTypeTransactional, models.PriorityLow, "expansion", 2, 6},
		{"connect {brand} to other tools", models.QueryTypeInformational, models.PriorityLow, "adoption", 3, 7},
		{"cancel {brand} subscription", models.QueryTypeNavigational, models.PriorityLow, "churn risk", 2, 6},
	},
}

// Generate expands every category's templates, capping each category at
// the requested count (or the template count, whichever is smaller).
func (g *BuiltinGenerator) Generate(_ context.Context, req Request) ([]models.GeneratedQuery, error) {
	perCategory := req.QueriesPerCategory
	if perCategory <= 0 {
		perCategory = 8
	}

	industry := strings.ToLower(strings.TrimSpace(req.Profile.Industry))
	if industry == "" {
		industry = "business software"
	}
	brand := strings.TrimSpace(req.Profile.Name)
	if brand == "" {
		brand = req.Profile.Domain
	}

	var out []models.GeneratedQuery
	for _, cat := range models.Categories() {
		added := 0
		competitorIdx := 0

		for _, tpl := range categoryTemplates[cat] {
			if added == perCategory {
				break
			}

			text := strings.ReplaceAll(tpl.pattern, "{industry}", industry)
			text = strings.ReplaceAll(text, "{brand}", brand)
			if strings.Contains(text, "{competitor}") {
				if len(req.Profile.Competitors) == 0 {
					continue
				}
				text = strings.ReplaceAll(text, "{competitor}",
					req.Profile.Competitors[competitorIdx%len(req.Profile.Competitors)])
				competitorIdx++
			}

			out = append(out, models.GeneratedQuery{
				Query:       text,
				Category:    cat,
				Type:        tpl.typ,
				Intent:      tpl.intent,
				Difficulty:  tpl.difficulty,
				Priority:    tpl.priority,
				AIRelevance: tpl.aiRelevance,
			})
			added++
		}
	}
	return out, nil
}
