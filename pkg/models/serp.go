package models

import "time"

// SearchResult is one organic result within a SERP-style input.
type SearchResult struct {
	Position int    `json:"position"` // 1-based
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
	Domain   string `json:"domain"`
	IsAd     bool   `json:"is_ad,omitempty"`
}

// SERPFeatures are the structured elements present on a results page.
type SERPFeatures struct {
	HasFeaturedSnippet  bool `json:"has_featured_snippet"`
	HasKnowledgePanel   bool `json:"has_knowledge_panel"`
	HasPeopleAlsoAsk    bool `json:"has_people_also_ask"`
	HasVideoResults     bool `json:"has_video_results"`
	HasLocalPack        bool `json:"has_local_pack"`
	HasImagePack        bool `json:"has_image_pack"`
	TotalOrganicResults int  `json:"total_organic_results"`
}

// SearchResults is the SERP-style input consumed by the ranking analyzer.
type SearchResults struct {
	Query        string         `json:"query"`
	Results      []SearchResult `json:"results"`
	Features     SERPFeatures   `json:"features"`
	TotalResults int64          `json:"total_results,omitempty"`
	SearchTime   float64        `json:"search_time,omitempty"`
	Cost         float64        `json:"cost,omitempty"`
	Provider     string         `json:"provider,omitempty"`
	Cached       bool           `json:"cached,omitempty"`
	Timestamp    time.Time      `json:"timestamp,omitempty"`
}
