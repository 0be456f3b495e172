package models

// Category is the buyer-journey classification of a query's intent stage.
// The set is fixed; storage enums mirror it.
type Category string

// Buyer-journey categories.
const (
	CategoryProblemUnaware  Category = "problem_unaware"
	CategorySolutionSeeking Category = "solution_seeking"
	CategoryBrandSpecific   Category = "brand_specific"
	CategoryComparison      Category = "comparison"
	CategoryEvaluation      Category = "evaluation"
	CategoryPostPurchase    Category = "post_purchase"
)

// Categories returns the fixed category set in canonical order.
func Categories() []Category {
	return []Category{
		CategoryProblemUnaware,
		CategorySolutionSeeking,
		CategoryBrandSpecific,
		CategoryComparison,
		CategoryEvaluation,
		CategoryPostPurchase,
	}
}

// Priority of a generated query.
type Priority string

// Query priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// QueryType classifies a query for the ranking analyzer's byQueryType
// grouping. It is independent of the buyer-journey Category.
type QueryType string

// Query types.
const (
	QueryTypeInformational QueryType = "informational"
	QueryTypeCommercial    QueryType = "commercial"
	QueryTypeTransactional QueryType = "transactional"
	QueryTypeNavigational  QueryType = "navigational"
)

// GeneratedQuery is one search-intent query produced by the query
// generator for an audit.
type GeneratedQuery struct {
	Query               string    `json:"query"`
	Category            Category  `json:"category"`
	Type                QueryType `json:"type"`
	Intent              string    `json:"intent,omitempty"`
	Difficulty          int       `json:"difficulty"` // 0-10
	Priority            Priority  `json:"priority"`
	MonthlySearchVolume int       `json:"monthly_search_volume,omitempty"`
	AIRelevance         int       `json:"ai_relevance,omitempty"` // 0-10
}
