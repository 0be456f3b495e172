package provider

import (
	"context"
	"math"
	"time"
)

// DefaultRequestTimeout bounds a single adapter call when the incoming
// context carries no earlier deadline.
const DefaultRequestTimeout = 30 * time.Second

// Request is the normalized prompt sent to any backend. All fields
// participate in the cache fingerprint, so they must be stable.
type Request struct {
	Prompt         string  `json:"prompt"`
	SystemPrompt   string  `json:"system_prompt,omitempty"`
	Model          string  `json:"model,omitempty"` // empty means adapter default
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"max_tokens,omitempty"`
	ResponseFormat string  `json:"response_format,omitempty"` // "" or "json"
	Seed           int     `json:"seed,omitempty"`
}

// Response is the provider-normalized result of one request.
type Response struct {
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	Text      string    `json:"text"`
	TokensIn  int       `json:"tokens_in"`
	TokensOut int       `json:"tokens_out"`
	Cost      float64   `json:"cost"` // USD, 4-decimal precision
	LatencyMS int       `json:"latency_ms"`
	Cached    bool      `json:"cached"`
	Citations []string  `json:"citations,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Adapter is the uniform surface every backend implements. Adapters own
// provider-specific pricing, error mapping, and citation extraction;
// cross-cutting concerns (limiter, breaker, cache, retry, budget) live in
// the gateway, never here.
type Adapter interface {
	// Name returns the stable provider identifier ("openai", "mock", …).
	Name() string
	// DefaultModel returns the model used when Request.Model is empty.
	DefaultModel() string
	// EstimateCost returns the worst-case cost of req, used for budget
	// admission before the call is made.
	EstimateCost(req Request) float64
	// Search issues one request and returns the normalized response.
	Search(ctx context.Context, req Request) (*Response, error)
}

// StreamFunc receives text chunks during a streaming call.
type StreamFunc func(chunk string)

// Streamer is implemented by adapters whose backend supports streaming.
// CollectStream yields chunks through fn and returns the assembled
// response with final token counts where the backend reports them.
type Streamer interface {
	CollectStream(ctx context.Context, req Request, fn StreamFunc) (*Response, error)
}

// Config is the per-adapter configuration surface, loaded from
// providers.yaml.
type Config struct {
	Name         string  `yaml:"name"`
	APIKeyEnv    string  `yaml:"api_key_env"`
	BaseURL      string  `yaml:"base_url"`
	Priority     int     `yaml:"priority"` // lower = preferred
	Enabled      bool    `yaml:"enabled"`
	CostPerQuery float64 `yaml:"cost_per_query"` // fallback estimate
	DefaultModel string  `yaml:"default_model"`
}

// RoundCost truncates v to the 4-decimal precision used for all cost
// accounting.
func RoundCost(v float64) float64 {
	return math.Round(v*10000) / 10000
}
