package provider

import (
	"context"
	"os"
	"time"
)

const (
	perplexityDefaultBaseURL = "https://api.perplexity.ai"
	perplexityDefaultModel   = "sonar"
)

// PerplexityAdapter talks to the Perplexity chat completions API. It is
// the one adapter that returns web citations alongside the answer text.
type PerplexityAdapter struct {
	core         httpCore
	apiKey       string
	defaultModel string
	costPerQuery float64
}

// NewPerplexityAdapter builds an adapter from cfg.
func NewPerplexityAdapter(cfg Config) (*PerplexityAdapter, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, NewError(CodeUnauthorized, cfg.Name, "API key env "+cfg.APIKeyEnv+" is empty")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = perplexityDefaultBaseURL
	}
	model := cfg.DefaultModel
	if model == "" {
		model = perplexityDefaultModel
	}
	return &PerplexityAdapter{
		core:         newHTTPCore(cfg.Name, baseURL),
		apiKey:       apiKey,
		defaultModel: model,
		costPerQuery: cfg.CostPerQuery,
	}, nil
}

func (a *PerplexityAdapter) Name() string         { return a.core.name }
func (a *PerplexityAdapter) DefaultModel() string { return a.defaultModel }

func (a *PerplexityAdapter) EstimateCost(req Request) float64 {
	return estimateCost(perplexityPricing, req, a.defaultModel, a.costPerQuery)
}

type perplexityResponse struct {
	Model     string   `json:"model"`
	Citations []string `json:"citations"`
	Choices   []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Search issues one chat completion and keeps the citation URLs.
func (a *PerplexityAdapter) Search(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = a.defaultModel
	}

	body := openAIRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, openAIMessage{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, openAIMessage{Role: "user", Content: req.Prompt})

	start := time.Now()
	var out perplexityResponse
	err := a.core.postJSON(ctx, "/chat/completions", map[string]string{
		"Authorization": "Bearer " + a.apiKey,
	}, body, &out)
	if err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, NewError(CodeProviderUnavailable, a.core.name, "empty choices")
	}

	pricing := pricingFor(perplexityPricing, model, a.defaultModel)
	return &Response{
		Provider:  a.core.name,
		Model:     out.Model,
		Text:      out.Choices[0].Message.Content,
		TokensIn:  out.Usage.PromptTokens,
		TokensOut: out.Usage.CompletionTokens,
		Cost:      pricing.Cost(out.Usage.PromptTokens, out.Usage.CompletionTokens),
		LatencyMS: int(time.Since(start).Milliseconds()),
		Citations: out.Citations,
		CreatedAt: time.Now().UTC(),
	}, nil
}
