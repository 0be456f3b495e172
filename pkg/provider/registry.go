package provider

import "fmt"

// NewAdapter builds the adapter named by cfg.Name. The set of known
// backends is fixed; unknown names are a configuration error.
func NewAdapter(cfg Config) (Adapter, error) {
	switch cfg.Name {
	case "openai":
		return NewOpenAIAdapter(cfg)
	case "anthropic":
		return NewAnthropicAdapter(cfg)
	case "google":
		return NewGoogleAdapter(cfg)
	case "perplexity":
		return NewPerplexityAdapter(cfg)
	case "cohere":
		return NewCohereAdapter(cfg)
	case "mock":
		return NewMockAdapter(cfg.Name, WithMockCost(cfg.CostPerQuery)), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}
