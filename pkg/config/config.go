// Package config loads and validates the service configuration from YAML
// files with {{.VAR}} environment expansion, merging user values over
// built-in defaults.
package config

import "github.com/brandlens/brandlens/pkg/provider"

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application wiring.
type Config struct {
	configDir string

	// Providers lists the configured LLM backends, ordered by priority.
	Providers []provider.Config

	// Database connection and pool settings.
	Database *DatabaseConfig

	// Gateway cross-cutting policies.
	Budget    *BudgetConfig
	RateLimit map[string]RateLimitConfig // keyed by provider name
	Breaker   *BreakerConfig
	Cache     *CacheConfig
	Retry     *RetryConfig

	// Audit pipeline settings.
	Audit    *AuditConfig
	QueryGen *QueryGenConfig

	// Queue and worker pool configuration.
	Queue *QueueConfig

	// Retention settings for the background data sweeper.
	Retention *RetentionConfig

	// HTTP ingress settings.
	HTTP *HTTPConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// EnabledProviders returns the enabled provider configs in priority order.
func (c *Config) EnabledProviders() []provider.Config {
	out := make([]provider.Config, 0, len(c.Providers))
	for _, p := range c.Providers {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out
}

// ProviderNames returns the names of all configured providers.
func (c *Config) ProviderNames() []string {
	names := make([]string, 0, len(c.Providers))
	for _, p := range c.Providers {
		names = append(names, p.Name)
	}
	return names
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Providers        int
	EnabledProviders int
	RateLimitRules   int
}

// Stats returns configuration statistics for logging.
func (c *Config) Stats() Stats {
	return Stats{
		Providers:        len(c.Providers),
		EnabledProviders: len(c.EnabledProviders()),
		RateLimitRules:   len(c.RateLimit),
	}
}
