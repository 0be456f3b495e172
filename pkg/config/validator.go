package config

import (
	"errors"
	"fmt"
)

var knownProviders = map[string]bool{
	"openai":     true,
	"anthropic":  true,
	"google":     true,
	"perplexity": true,
	"cohere":     true,
	"mock":       true,
}

var knownQueryGenModes = map[string]bool{
	"builtin": true,
	"grpc":    true,
}

var knownBackoffStrategies = map[string]bool{
	"exponential": true,
	"linear":      true,
}

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateProviders(cfg)...)
	errs = append(errs, validateDatabase(cfg)...)
	errs = append(errs, validateGateway(cfg)...)
	errs = append(errs, validatePipeline(cfg)...)
	errs = append(errs, validateQueue(cfg)...)

	return errors.Join(errs...)
}

func validateProviders(cfg *Config) []error {
	var errs []error

	if len(cfg.EnabledProviders()) == 0 {
		errs = append(errs, NewValidationError("providers", "", "",
			fmt.Errorf("%w: at least one enabled provider required", ErrInvalidValue)))
	}

	seen := make(map[string]bool)
	for _, p := range cfg.Providers {
		if p.Name == "" {
			errs = append(errs, NewValidationError("provider", "", "name", ErrMissingRequiredField))
			continue
		}
		if !knownProviders[p.Name] {
			errs = append(errs, NewValidationError("provider", p.Name, "name",
				fmt.Errorf("%w: unknown provider", ErrInvalidValue)))
		}
		if seen[p.Name] {
			errs = append(errs, NewValidationError("provider", p.Name, "name",
				fmt.Errorf("%w: duplicate provider", ErrInvalidValue)))
		}
		seen[p.Name] = true

		if p.Enabled && p.Name != "mock" && p.APIKeyEnv == "" {
			errs = append(errs, NewValidationError("provider", p.Name, "api_key_env", ErrMissingRequiredField))
		}
		if p.CostPerQuery < 0 {
			errs = append(errs, NewValidationError("provider", p.Name, "cost_per_query",
				fmt.Errorf("%w: must be >= 0", ErrInvalidValue)))
		}
	}

	return errs
}

func validateDatabase(cfg *Config) []error {
	var errs []error

	db := cfg.Database
	if db.Host == "" {
		errs = append(errs, NewValidationError("database", "", "host", ErrMissingRequiredField))
	}
	if db.Port <= 0 || db.Port > 65535 {
		errs = append(errs, NewValidationError("database", "", "port",
			fmt.Errorf("%w: must be in [1, 65535]", ErrInvalidValue)))
	}
	if db.Name == "" {
		errs = append(errs, NewValidationError("database", "", "name", ErrMissingRequiredField))
	}
	if db.PasswordEnv == "" {
		errs = append(errs, NewValidationError("database", "", "password_env", ErrMissingRequiredField))
	}
	if db.MaxOpenConns <= 0 {
		errs = append(errs, NewValidationError("database", "", "max_open_conns",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if db.MaxIdleConns < 0 || db.MaxIdleConns > db.MaxOpenConns {
		errs = append(errs, NewValidationError("database", "", "max_idle_conns",
			fmt.Errorf("%w: must be in [0, max_open_conns]", ErrInvalidValue)))
	}

	return errs
}

func validateGateway(cfg *Config) []error {
	var errs []error

	if cfg.Budget.DailyLimit < 0 || cfg.Budget.MonthlyLimit < 0 ||
		cfg.Budget.AuditLimit < 0 || cfg.Budget.PerRequestLimit < 0 {
		errs = append(errs, NewValidationError("budget", "", "",
			fmt.Errorf("%w: limits must be >= 0", ErrInvalidValue)))
	}
	alerts := cfg.Budget.Alerts
	if alerts.WarningThreshold < 0 || alerts.WarningThreshold > 1 ||
		alerts.CriticalThreshold < 0 || alerts.CriticalThreshold > 1 {
		errs = append(errs, NewValidationError("budget", "", "alerts",
			fmt.Errorf("%w: thresholds must be in [0, 1]", ErrInvalidValue)))
	}
	if alerts.WarningThreshold > alerts.CriticalThreshold {
		errs = append(errs, NewValidationError("budget", "", "alerts",
			fmt.Errorf("%w: warning_threshold must not exceed critical_threshold", ErrInvalidValue)))
	}

	for name, rl := range cfg.RateLimit {
		if rl.RequestsPerMinute <= 0 {
			errs = append(errs, NewValidationError("rate_limit", name, "requests_per_minute",
				fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
		}
		if rl.Burst <= 0 {
			errs = append(errs, NewValidationError("rate_limit", name, "burst",
				fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
		}
		if rl.MaxConcurrent <= 0 {
			errs = append(errs, NewValidationError("rate_limit", name, "max_concurrent",
				fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
		}
	}

	if cfg.Breaker.ConsecutiveFailures <= 0 {
		errs = append(errs, NewValidationError("breaker", "", "consecutive_failures",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if cfg.Breaker.Cooldown <= 0 {
		errs = append(errs, NewValidationError("breaker", "", "cooldown",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}

	if cfg.Cache.Enabled && cfg.Cache.Addr == "" {
		errs = append(errs, NewValidationError("cache", "", "addr", ErrMissingRequiredField))
	}

	if cfg.Retry.MaxAttempts <= 0 {
		errs = append(errs, NewValidationError("retry", "", "max_attempts",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if cfg.Retry.Multiplier < 1 {
		errs = append(errs, NewValidationError("retry", "", "multiplier",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue)))
	}
	if !knownBackoffStrategies[cfg.Retry.BackoffStrategy] {
		errs = append(errs, NewValidationError("retry", "", "backoff_strategy",
			fmt.Errorf("%w: must be exponential or linear", ErrInvalidValue)))
	}

	return errs
}

func validatePipeline(cfg *Config) []error {
	var errs []error

	if cfg.Audit.QueriesPerCategory <= 0 {
		errs = append(errs, NewValidationError("audit", "", "queries_per_category",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if cfg.Audit.BatchesPerCategory <= 0 {
		errs = append(errs, NewValidationError("audit", "", "batches_per_category",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if cfg.Audit.DefaultConcurrency <= 0 || cfg.Audit.DefaultConcurrency > cfg.Audit.MaxConcurrency {
		errs = append(errs, NewValidationError("audit", "", "default_concurrency",
			fmt.Errorf("%w: must be in [1, max_concurrency]", ErrInvalidValue)))
	}

	if !knownQueryGenModes[cfg.QueryGen.Mode] {
		errs = append(errs, NewValidationError("querygen", "", "mode",
			fmt.Errorf("%w: must be builtin or grpc", ErrInvalidValue)))
	}
	if cfg.QueryGen.Mode == "grpc" && cfg.QueryGen.Endpoint == "" {
		errs = append(errs, NewValidationError("querygen", "", "endpoint", ErrMissingRequiredField))
	}

	return errs
}

func validateQueue(cfg *Config) []error {
	var errs []error

	q := cfg.Queue
	if q.WorkerCount <= 0 {
		errs = append(errs, NewValidationError("queue", "", "worker_count",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if q.MaxConcurrentAudits <= 0 {
		errs = append(errs, NewValidationError("queue", "", "max_concurrent_audits",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if q.PollInterval <= 0 {
		errs = append(errs, NewValidationError("queue", "", "poll_interval",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if q.HeartbeatInterval <= 0 {
		errs = append(errs, NewValidationError("queue", "", "heartbeat_interval",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		errs = append(errs, NewValidationError("queue", "", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval", ErrInvalidValue)))
	}

	r := cfg.Retention
	if r.AuditRetentionDays <= 0 {
		errs = append(errs, NewValidationError("retention", "", "audit_retention_days",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if r.EventTTL <= 0 {
		errs = append(errs, NewValidationError("retention", "", "event_ttl",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}
	if r.CleanupInterval <= 0 {
		errs = append(errs, NewValidationError("retention", "", "cleanup_interval",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue)))
	}

	return errs
}
