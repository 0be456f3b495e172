package config

import "time"

// AuditConfig tunes the audit pipeline.
type AuditConfig struct {
	// QueriesPerCategory is how many queries the generation phase
	// produces for each buyer-journey category.
	QueriesPerCategory int `yaml:"queries_per_category"`

	// BatchesPerCategory splits each category's responses into this many
	// insight batches.
	BatchesPerCategory int `yaml:"batches_per_category"`

	// DefaultConcurrency bounds parallel provider calls during fan-out
	// when the audit request does not override it.
	DefaultConcurrency int `yaml:"default_concurrency"`

	// MaxConcurrency is the hard upper bound a request may ask for.
	MaxConcurrency int `yaml:"max_concurrency"`

	// ProgressInterval is the minimum spacing between progress events.
	ProgressInterval time.Duration `yaml:"progress_interval"`

	// PhaseTimeout bounds a single pipeline phase.
	PhaseTimeout time.Duration `yaml:"phase_timeout"`

	// CategoryWeights overrides each category's share of the overall
	// score. Empty means uniform weights.
	CategoryWeights map[string]float64 `yaml:"category_weights"`
}

// DefaultAuditConfig returns the built-in pipeline defaults.
func DefaultAuditConfig() *AuditConfig {
	return &AuditConfig{
		QueriesPerCategory: 8,
		BatchesPerCategory: 4,
		DefaultConcurrency: 5,
		MaxConcurrency:     20,
		ProgressInterval:   500 * time.Millisecond,
		PhaseTimeout:       10 * time.Minute,
	}
}

// QueryGenConfig selects how audit queries are generated.
type QueryGenConfig struct {
	// Mode is "builtin" (deterministic templates) or "grpc" (external
	// generation service).
	Mode string `yaml:"mode"`

	// Endpoint is the gRPC address of the generation service, required
	// when Mode is "grpc".
	Endpoint string `yaml:"endpoint"`

	// Timeout bounds one generation call.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultQueryGenConfig returns the built-in generation settings.
func DefaultQueryGenConfig() *QueryGenConfig {
	return &QueryGenConfig{
		Mode:    "builtin",
		Timeout: 60 * time.Second,
	}
}

// HTTPConfig holds ingress server settings.
type HTTPConfig struct {
	// ListenAddr is the bind address of the HTTP API.
	ListenAddr string `yaml:"listen_addr"`

	// ShutdownTimeout bounds graceful HTTP drain on exit.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultHTTPConfig returns the built-in HTTP settings.
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		ListenAddr:      ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}
