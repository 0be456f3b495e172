package provider

import (
	"context"
	"os"
	"time"
)

const (
	cohereDefaultBaseURL = "https://api.cohere.com"
	cohereDefaultModel   = "command-r"
)

// CohereAdapter talks to the Cohere v2 chat API.
type CohereAdapter struct {
	core         httpCore
	apiKey       string
	defaultModel string
	costPerQuery float64
}

// NewCohereAdapter builds an adapter from cfg.
func NewCohereAdapter(cfg Config) (*CohereAdapter, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, NewError(CodeUnauthorized, cfg.Name, "API key env "+cfg.APIKeyEnv+" is empty")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = cohereDefaultBaseURL
	}
	model := cfg.DefaultModel
	if model == "" {
		model = cohereDefaultModel
	}
	return &CohereAdapter{
		core:         newHTTPCore(cfg.Name, baseURL),
		apiKey:       apiKey,
		defaultModel: model,
		costPerQuery: cfg.CostPerQuery,
	}, nil
}

func (a *CohereAdapter) Name() string         { return a.core.name }
func (a *CohereAdapter) DefaultModel() string { return a.defaultModel }

func (a *CohereAdapter) EstimateCost(req Request) float64 {
	return estimateCost(coherePricing, req, a.defaultModel, a.costPerQuery)
}

type cohereResponse struct {
	Message struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
	Usage struct {
		Tokens struct {
			InputTokens  float64 `json:"input_tokens"`
			OutputTokens float64 `json:"output_tokens"`
		} `json:"tokens"`
	} `json:"usage"`
}

// Search issues one chat call.
func (a *CohereAdapter) Search(ctx context.Context, req Request) (*Response, error) {
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
	var out cohereResponse
	err := a.core.postJSON(ctx, "/v2/chat", map[string]string{
		"Authorization": "Bearer " + a.apiKey,
	}, body, &out)
	if err != nil {
		return nil, err
	}

	var text string
	for _, block := range out.Message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nil, NewError(CodeProviderUnavailable, a.core.name, "empty content")
	}

	tokensIn := int(out.Usage.Tokens.InputTokens)
	tokensOut := int(out.Usage.Tokens.OutputTokens)
	pricing := pricingFor(coherePricing, model, a.defaultModel)
	return &Response{
		Provider:  a.core.name,
		Model:     model,
		Text:      text,
		TokensIn:  tokensIn,
		TokensOut: tokensOut,
		Cost:      pricing.Cost(tokensIn, tokensOut),
		LatencyMS: int(time.Since(start).Milliseconds()),
		CreatedAt: time.Now().UTC(),
	}, nil
}
