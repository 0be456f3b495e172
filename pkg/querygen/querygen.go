// Package querygen produces the search-intent queries an audit fans out
// to providers. Generation is pluggable: a deterministic built-in
// template generator, or an external gRPC service for LLM-backed
// generation.
package querygen

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/models"
)

// Request scopes one generation call.
type Request struct {
	Profile            models.CompanyProfile
	QueriesPerCategory int
}

// Generator produces audit queries for a company profile. An empty result
// with a nil error is valid; the orchestrator treats it as a failed audit.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]models.GeneratedQuery, error)
}

// New builds the generator selected by cfg.Mode.
func New(cfg config.QueryGenConfig) (Generator, error) {
	switch cfg.Mode {
	case "", "builtin":
		return NewBuiltinGenerator(), nil
	case "grpc":
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("querygen mode %q requires an endpoint", cfg.Mode)
		}
		return NewGRPCGenerator(cfg.Endpoint, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown querygen mode %q", cfg.Mode)
	}
}
