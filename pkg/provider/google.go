package provider

import (
	"context"
	"fmt"
	"os"
	"time"
)

const (
	googleDefaultBaseURL = "https://generativelanguage.googleapis.com"
	googleDefaultModel   = "gemini-2.0-flash"
)

// GoogleAdapter talks to the Gemini generateContent API.
type GoogleAdapter struct {
	core         httpCore
	apiKey       string
	defaultModel string
	costPerQuery float64
}

// NewGoogleAdapter builds an adapter from cfg.
func NewGoogleAdapter(cfg Config) (*GoogleAdapter, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, NewError(CodeUnauthorized, cfg.Name, "API key env "+cfg.APIKeyEnv+" is empty")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = googleDefaultBaseURL
	}
	model := cfg.DefaultModel
	if model == "" {
		model = googleDefaultModel
	}
	return &GoogleAdapter{
		core:         newHTTPCore(cfg.Name, baseURL),
		apiKey:       apiKey,
		defaultModel: model,
		costPerQuery: cfg.CostPerQuery,
	}, nil
}

func (a *GoogleAdapter) Name() string         { return a.core.name }
func (a *GoogleAdapter) DefaultModel() string { return a.defaultModel }

func (a *GoogleAdapter) EstimateCost(req Request) float64 {
	return estimateCost(googlePricing, req, a.defaultModel, a.costPerQuery)
}

type geminiRequest struct {
	SystemInstruction *geminiContent `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature      float64 `json:"temperature"`
		MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
		ResponseMimeType string  `json:"responseMimeType,omitempty"`
	} `json:"generationConfig"`
}

type geminiContent struct {
	Role  string `json:"role,omitempty"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

func geminiText(role, text string) geminiContent {
	return geminiContent{
		Role: role,
		Parts: []struct {
			Text string `json:"text"`
		}{{Text: text}},
	}
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

// Search issues one generateContent call.
func (a *GoogleAdapter) Search(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = a.defaultModel
	}

	body := geminiRequest{
		Contents: []geminiContent{geminiText("user", req.Prompt)},
	}
	if req.SystemPrompt != "" {
		sys := geminiText("", req.SystemPrompt)
		body.SystemInstruction = &sys
	}
	body.GenerationConfig.Temperature = req.Temperature
	body.GenerationConfig.MaxOutputTokens = req.MaxTokens
	if req.ResponseFormat == "json" {
		body.GenerationConfig.ResponseMimeType = "application/json"
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent?key=%s", model, a.apiKey)

	start := time.Now()
	var out geminiResponse
	if err := a.core.postJSON(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, NewError(CodeProviderUnavailable, a.core.name, "empty candidates")
	}

	var text string
	for _, part := range out.Candidates[0].Content.Parts {
		text += part.Text
	}

	pricing := pricingFor(googlePricing, model, a.defaultModel)
	return &Response{
		Provider:  a.core.name,
		Model:     model,
		Text:      text,
		TokensIn:  out.UsageMetadata.PromptTokenCount,
		TokensOut: out.UsageMetadata.CandidatesTokenCount,
		Cost:      pricing.Cost(out.UsageMetadata.PromptTokenCount, out.UsageMetadata.CandidatesTokenCount),
		LatencyMS: int(time.Since(start).Milliseconds()),
		CreatedAt: time.Now().UTC(),
	}, nil
}
