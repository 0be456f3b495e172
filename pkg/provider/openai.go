package provider

import (
	"context"
	"os"
	"time"
)

const (
	openAIDefaultBaseURL = "https://api.openai.com"
	openAIDefaultModel   = "gpt-4o-mini"
)

// OpenAIAdapter talks to the OpenAI chat completions API.
type OpenAIAdapter struct {
	core         httpCore
	apiKey       string
	defaultModel string
	costPerQuery float64
}

// NewOpenAIAdapter builds an adapter from cfg, reading the API key from
// the configured environment variable.
func NewOpenAIAdapter(cfg Config) (*OpenAIAdapter, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, NewError(CodeUnauthorized, cfg.Name, "API key env "+cfg.APIKeyEnv+" is empty")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	model := cfg.DefaultModel
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAIAdapter{
		core:         newHTTPCore(cfg.Name, baseURL),
		apiKey:       apiKey,
		defaultModel: model,
		costPerQuery: cfg.CostPerQuery,
	}, nil
}

func (a *OpenAIAdapter) Name() string         { return a.core.name }
func (a *OpenAIAdapter) DefaultModel() string { return a.defaultModel }

// EstimateCost returns the configured worst-case per-query estimate, or a
// pricing-table bound when MaxTokens is set.
func (a *OpenAIAdapter) EstimateCost(req Request) float64 {
	return estimateCost(openAIPricing, req, a.defaultModel, a.costPerQuery)
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Seed           int             `json:"seed,omitempty"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type openAIResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Search issues one chat completion.
func (a *OpenAIAdapter) Search(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = a.defaultModel
	}

	body := openAIRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Seed:        req.Seed,
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, openAIMessage{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, openAIMessage{Role: "user", Content: req.Prompt})
	if req.ResponseFormat == "json" {
		body.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	start := time.Now()
	var out openAIResponse
	err := a.core.postJSON(ctx, "/v1/chat/completions", map[string]string{
		"Authorization": "Bearer " + a.apiKey,
	}, body, &out)
	if err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, NewError(CodeProviderUnavailable, a.core.name, "empty choices")
	}

	pricing := pricingFor(openAIPricing, model, a.defaultModel)
	return &Response{
		Provider:  a.core.name,
		Model:     out.Model,
		Text:      out.Choices[0].Message.Content,
		TokensIn:  out.Usage.PromptTokens,
		TokensOut: out.Usage.CompletionTokens,
		Cost:      pricing.Cost(out.Usage.PromptTokens, out.Usage.CompletionTokens),
		LatencyMS: int(time.Since(start).Milliseconds()),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// estimateCost is the shared admission estimate: a real pricing bound when
// MaxTokens is known, the configured per-query estimate otherwise.
func estimateCost(table map[string]Pricing, req Request, defaultModel string, costPerQuery float64) float64 {
	if req.MaxTokens > 0 {
		model := req.Model
		if model == "" {
			model = defaultModel
		}
		p := pricingFor(table, model, defaultModel)
		if p != (Pricing{}) {
			// Rough input bound: 4 chars per token.
			inTokens := (len(req.Prompt) + len(req.SystemPrompt)) / 4
			return p.Cost(inTokens, req.MaxTokens)
		}
	}
	return RoundCost(costPerQuery)
}
