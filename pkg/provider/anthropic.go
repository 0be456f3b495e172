package provider

import (
	"context"
	"os"
	"time"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicDefaultModel   = "claude-3-5-haiku-latest"
	anthropicAPIVersion     = "2023-06-01"
	anthropicMaxTokens      = 4096 // API requires max_tokens to be set
)

// AnthropicAdapter talks to the Anthropic messages API.
type AnthropicAdapter struct {
	core         httpCore
	apiKey       string
	defaultModel string
	costPerQuery float64
}

// NewAnthropicAdapter builds an adapter from cfg.
func NewAnthropicAdapter(cfg Config) (*AnthropicAdapter, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, NewError(CodeUnauthorized, cfg.Name, "API key env "+cfg.APIKeyEnv+" is empty")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicDefaultBaseURL
	}
	model := cfg.DefaultModel
	if model == "" {
		model = anthropicDefaultModel
	}
	return &AnthropicAdapter{
		core:         newHTTPCore(cfg.Name, baseURL),
		apiKey:       apiKey,
		defaultModel: model,
		costPerQuery: cfg.CostPerQuery,
	}, nil
}

func (a *AnthropicAdapter) Name() string         { return a.core.name }
func (a *AnthropicAdapter) DefaultModel() string { return a.defaultModel }

func (a *AnthropicAdapter) EstimateCost(req Request) float64 {
	return estimateCost(anthropicPricing, req, a.defaultModel, a.costPerQuery)
}

type anthropicRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    string `json:"system,omitempty"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Search issues one messages call.
func (a *AnthropicAdapter) Search(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = a.defaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicMaxTokens
	}

	body := anthropicRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		System:      req.SystemPrompt,
		Temperature: req.Temperature,
	}
	body.Messages = append(body.Messages, struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{Role: "user", Content: req.Prompt})

	start := time.Now()
	var out anthropicResponse
	err := a.core.postJSON(ctx, "/v1/messages", map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicAPIVersion,
	}, body, &out)
	if err != nil {
		return nil, err
	}

	var text string
	for _, block := range out.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nil, NewError(CodeProviderUnavailable, a.core.name, "empty content")
	}

	pricing := pricingFor(anthropicPricing, model, a.defaultModel)
	return &Response{
		Provider:  a.core.name,
		Model:     out.Model,
		Text:      text,
		TokensIn:  out.Usage.InputTokens,
		TokensOut: out.Usage.OutputTokens,
		Cost:      pricing.Cost(out.Usage.InputTokens, out.Usage.OutputTokens),
		LatencyMS: int(time.Since(start).Milliseconds()),
		CreatedAt: time.Now().UTC(),
	}, nil
}
