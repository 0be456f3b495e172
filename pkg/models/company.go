// Package models defines the domain types shared across the audit
// pipeline: company profiles, generated queries, SERP inputs, and the
// per-response metrics schema.
package models

// CompanyProfile describes the brand under audit. It is the input to
// query generation and the reference for brand-mention detection.
type CompanyProfile struct {
	Name        string   `json:"name"`
	Domain      string   `json:"domain"`
	Industry    string   `json:"industry,omitempty"`
	Competitors []string `json:"competitors,omitempty"`
	// Aliases are alternative brand spellings ("Acme", "acme.io", "AcmeHQ").
	Aliases []string `json:"aliases,omitempty"`
	// IncludeSubdomains treats *.domain as brand matches when true.
	IncludeSubdomains bool `json:"include_subdomains,omitempty"`
}
