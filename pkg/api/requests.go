package api

// SubmitAuditRequest is the HTTP request body for POST /api/v1/audits.
type SubmitAuditRequest struct {
	CompanyName       string   `json:"company_name" binding:"required"`
	CompanyDomain     string   `json:"company_domain" binding:"required"`
	Industry          string   `json:"industry,omitempty"`
	Competitors       []string `json:"competitors,omitempty"`
	BrandAliases      []string `json:"brand_aliases,omitempty"`
	IncludeSubdomains bool     `json:"include_subdomains,omitempty"`
	ProviderPriority  []string `json:"provider_priority,omitempty"`
	Concurrency       int      `json:"concurrency,omitempty" binding:"omitempty,gte=1,lte=20"`
}
