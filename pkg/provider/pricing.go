package provider

// Pricing is a per-model cost table in USD per 1M tokens.
type Pricing struct {
	InputPer1M  float64
	OutputPer1M float64
}

// Cost computes the 4-decimal cost of a usage pair.
func (p Pricing) Cost(tokensIn, tokensOut int) float64 {
	cost := float64(tokensIn)/1_000_000*p.InputPer1M +
		float64(tokensOut)/1_000_000*p.OutputPer1M
	return RoundCost(cost)
}

// pricingFor resolves a model's pricing from a table, falling back to the
// adapter's default model and then to a zero table (cost accounted via
// CostPerQuery estimate instead).
func pricingFor(table map[string]Pricing, model, defaultModel string) Pricing {
	if p, ok := table[model]; ok {
		return p
	}
	if p, ok := table[defaultModel]; ok {
		return p
	}
	return Pricing{}
}

// Published per-1M-token rates. Kept conservative; unknown models fall
// back to the adapter default.
var (
	openAIPricing = map[string]Pricing{
		"gpt-4o":      {InputPer1M: 2.50, OutputPer1M: 10.00},
		"gpt-4o-mini": {InputPer1M: 0.15, OutputPer1M: 0.60},
		"gpt-4.1":     {InputPer1M: 2.00, OutputPer1M: 8.00},
	}

	anthropicPricing = map[string]Pricing{
		"claude-3-5-sonnet-latest": {InputPer1M: 3.00, OutputPer1M: 15.00},
		"claude-3-5-haiku-latest":  {InputPer1M: 0.80, OutputPer1M: 4.00},
	}

	googlePricing = map[string]Pricing{
		"gemini-2.0-flash": {InputPer1M: 0.10, OutputPer1M: 0.40},
		"gemini-1.5-pro":   {InputPer1M: 1.25, OutputPer1M: 5.00},
	}

	perplexityPricing = map[string]Pricing{
		"sonar":     {InputPer1M: 1.00, OutputPer1M: 1.00},
		"sonar-pro": {InputPer1M: 3.00, OutputPer1M: 15.00},
	}

	coherePricing = map[string]Pricing{
		"command-r":      {InputPer1M: 0.15, OutputPer1M: 0.60},
		"command-r-plus": {InputPer1M: 2.50, OutputPer1M: 10.00},
	}
)
