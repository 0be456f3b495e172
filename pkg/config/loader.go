package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/brandlens/brandlens/pkg/provider"
)

// brandlensYAML represents the complete brandlens.yaml file structure.
type brandlensYAML struct {
	Database   *DatabaseConfig            `yaml:"database"`
	Budget     *BudgetConfig              `yaml:"budget"`
	RateLimits map[string]RateLimitConfig `yaml:"rate_limits"`
	Breaker    *BreakerConfig             `yaml:"breaker"`
	Cache      *CacheConfig               `yaml:"cache"`
	Retry      *RetryConfig               `yaml:"retry"`
	Audit      *AuditConfig               `yaml:"audit"`
	QueryGen   *QueryGenConfig            `yaml:"querygen"`
	Queue      *QueueConfig               `yaml:"queue"`
	Retention  *RetentionConfig           `yaml:"retention"`
	HTTP       *HTTPConfig                `yaml:"http"`
}

// providersYAML represents the complete providers.yaml file structure.
type providersYAML struct {
	Providers []provider.Config `yaml:"providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"enabled_providers", stats.EnabledProviders,
		"rate_limit_rules", stats.RateLimitRules)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	var main brandlensYAML
	if err := loader.loadYAML("brandlens.yaml", &main); err != nil {
		return nil, NewLoadError("brandlens.yaml", err)
	}

	var provs providersYAML
	if err := loader.loadYAML("providers.yaml", &provs); err != nil {
		return nil, NewLoadError("providers.yaml", err)
	}

	// Stable priority order, name as tiebreak.
	sort.SliceStable(provs.Providers, func(i, j int) bool {
		if provs.Providers[i].Priority != provs.Providers[j].Priority {
			return provs.Providers[i].Priority < provs.Providers[j].Priority
		}
		return provs.Providers[i].Name < provs.Providers[j].Name
	})

	cfg := &Config{
		configDir: configDir,
		Providers: provs.Providers,
		Database:  DefaultDatabaseConfig(),
		Budget:    DefaultBudgetConfig(),
		Breaker:   DefaultBreakerConfig(),
		Cache:     DefaultCacheConfig(),
		Retry:     DefaultRetryConfig(),
		Audit:     DefaultAuditConfig(),
		QueryGen:  DefaultQueryGenConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		HTTP:      DefaultHTTPConfig(),
	}

	// Merge user sections over defaults. Non-zero user values win.
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"database", cfg.Database, main.Database},
		{"budget", cfg.Budget, main.Budget},
		{"breaker", cfg.Breaker, main.Breaker},
		{"cache", cfg.Cache, main.Cache},
		{"retry", cfg.Retry, main.Retry},
		{"audit", cfg.Audit, main.Audit},
		{"querygen", cfg.QueryGen, main.QueryGen},
		{"queue", cfg.Queue, main.Queue},
		{"retention", cfg.Retention, main.Retention},
		{"http", cfg.HTTP, main.HTTP},
	}
	for _, s := range sections {
		if s.src == nil || isNilPtr(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	// Every provider gets a rate-limit rule: user's where given, the
	// built-in throttle otherwise.
	cfg.RateLimit = make(map[string]RateLimitConfig, len(cfg.Providers))
	for _, p := range cfg.Providers {
		rule := DefaultRateLimitConfig()
		if user, ok := main.RateLimits[p.Name]; ok {
			if err := mergo.Merge(&rule, user, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge rate limit for %s: %w", p.Name, err)
			}
		}
		cfg.RateLimit[p.Name] = rule
	}

	return cfg, nil
}

// isNilPtr reports whether v is a typed nil pointer hidden in an any.
func isNilPtr(v any) bool {
	switch t := v.(type) {
	case *DatabaseConfig:
		return t == nil
	case *BudgetConfig:
		return t == nil
	case *BreakerConfig:
		return t == nil
	case *CacheConfig:
		return t == nil
	case *RetryConfig:
		return t == nil
	case *AuditConfig:
		return t == nil
	case *QueryGenConfig:
		return t == nil
	case *QueueConfig:
		return t == nil
	case *RetentionConfig:
		return t == nil
	case *HTTPConfig:
		return t == nil
	default:
		return false
	}
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}
