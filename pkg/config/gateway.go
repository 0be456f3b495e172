package config

import "time"

// BudgetConfig caps provider spend. Zero limits mean unlimited.
type BudgetConfig struct {
	// DailyLimit is the per-provider daily spend cap in USD.
	DailyLimit float64 `yaml:"daily_limit"`

	// MonthlyLimit is the per-provider monthly spend cap in USD.
	MonthlyLimit float64 `yaml:"monthly_limit"`

	// AuditLimit is the per-audit spend cap in USD across all providers.
	AuditLimit float64 `yaml:"audit_limit"`

	// PerRequestLimit caps the worst-case cost estimate of a single
	// request in USD. Requests estimated above it are never admitted.
	PerRequestLimit float64 `yaml:"per_request_limit"`

	// Alerts fires spend warnings before a cap is hit.
	Alerts BudgetAlertsConfig `yaml:"alerts"`
}

// BudgetAlertsConfig sets the spend fractions at which alerts fire.
// Thresholds apply to the daily and monthly caps; each level fires at
// most once per rollover period per provider.
type BudgetAlertsConfig struct {
	// WarningThreshold is the spent/limit fraction for a warning alert.
	WarningThreshold float64 `yaml:"warning_threshold"`

	// CriticalThreshold is the spent/limit fraction for a critical alert.
	CriticalThreshold float64 `yaml:"critical_threshold"`
}

// DefaultBudgetConfig returns the built-in budget defaults.
func DefaultBudgetConfig() *BudgetConfig {
	return &BudgetConfig{
		DailyLimit:      50.0,
		MonthlyLimit:    1000.0,
		AuditLimit:      25.0,
		PerRequestLimit: 1.0,
		Alerts: BudgetAlertsConfig{
			WarningThreshold:  0.8,
			CriticalThreshold: 0.95,
		},
	}
}

// RateLimitConfig throttles one provider: a token bucket for request rate
// plus a hard cap on in-flight calls.
type RateLimitConfig struct {
	// RequestsPerMinute refills the token bucket.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// Burst is the bucket capacity.
	Burst int `yaml:"burst"`

	// MaxConcurrent caps simultaneous in-flight requests.
	MaxConcurrent int `yaml:"max_concurrent"`

	// AcquireTimeout bounds how long a caller may wait for a slot before
	// the wait is converted into a rate-limit error.
	AcquireTimeout time.Duration `yaml:"acquire_timeout"`
}

// DefaultRateLimitConfig returns the built-in per-provider throttle.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 60,
		Burst:             10,
		MaxConcurrent:     8,
		AcquireTimeout:    30 * time.Second,
	}
}

// BreakerConfig tunes the per-provider circuit breaker.
type BreakerConfig struct {
	// ConsecutiveFailures trips the breaker open.
	ConsecutiveFailures int `yaml:"consecutive_failures"`

	// Window is the interval after which the closed-state failure count
	// resets.
	Window time.Duration `yaml:"window"`

	// Cooldown is how long the breaker stays open before allowing a
	// half-open probe.
	Cooldown time.Duration `yaml:"cooldown"`
}

// DefaultBreakerConfig returns the built-in breaker tuning.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		ConsecutiveFailures: 5,
		Window:              time.Minute,
		Cooldown:            time.Minute,
	}
}

// CacheConfig controls the Redis response cache.
type CacheConfig struct {
	// Enabled toggles the cache entirely.
	Enabled bool `yaml:"enabled"`

	// Addr is the Redis host:port.
	Addr string `yaml:"addr"`

	// PasswordEnv names the environment variable holding the password.
	PasswordEnv string `yaml:"password_env"`

	// DB is the Redis database index.
	DB int `yaml:"db"`

	// TTL is the default entry lifetime.
	TTL time.Duration `yaml:"ttl"`

	// Namespace prefixes every key, isolating environments sharing one
	// Redis.
	Namespace string `yaml:"namespace"`

	// WarmFromPrevious preloads the cache from the most recent completed
	// audit of the same company before fan-out starts.
	WarmFromPrevious bool `yaml:"warm_from_previous"`
}

// DefaultCacheConfig returns the built-in cache settings.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled:   true,
		Addr:      "localhost:6379",
		TTL:       24 * time.Hour,
		Namespace: "brandlens",
	}
}

// RetryConfig tunes the gateway retry loop for a single provider attempt.
type RetryConfig struct {
	// MaxAttempts is the total number of tries per provider (first call
	// included).
	MaxAttempts int `yaml:"max_attempts"`

	// InitialInterval seeds the exponential backoff.
	InitialInterval time.Duration `yaml:"initial_interval"`

	// MaxInterval caps a single backoff wait.
	MaxInterval time.Duration `yaml:"max_interval"`

	// Multiplier grows the interval between attempts. Ignored by the
	// linear strategy.
	Multiplier float64 `yaml:"multiplier"`

	// BackoffStrategy is "exponential" (jittered growth) or "linear"
	// (fixed steps of initial_interval).
	BackoffStrategy string `yaml:"backoff_strategy"`
}

// DefaultRetryConfig returns the built-in retry tuning.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
		BackoffStrategy: "exponential",
	}
}
