package config

import "time"

// QueueConfig contains queue and worker pool configuration. These values
// control how pending audits are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims audits.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentAudits is the global limit of audits being processed
	// across ALL replicas. Enforced by a database COUNT(*) check.
	MaxConcurrentAudits int `yaml:"max_concurrent_audits"`

	// PollInterval is the base interval for checking pending audits.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// AuditTimeout is the maximum wall time one audit may run.
	AuditTimeout time.Duration `yaml:"audit_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active audits
	// to finish during shutdown. Should match AuditTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes the claim
	// heartbeat of its running audit.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned audits.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an audit may go without a heartbeat
	// before it is considered orphaned and requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxConcurrentAudits:     5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		AuditTimeout:            45 * time.Minute,
		GracefulShutdownTimeout: 45 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// RetentionConfig controls the background sweeper that purges old audit
// data and expired event rows.
type RetentionConfig struct {
	// AuditRetentionDays is how long finished audits are kept. Deleting
	// an audit cascades to its queries, responses, insights, aggregates,
	// priorities, summary, and dashboard rows.
	AuditRetentionDays int `yaml:"audit_retention_days"`

	// EventTTL is how long persisted catchup events are kept. Events
	// only matter while a subscriber could still replay them.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the sweeper runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		AuditRetentionDays: 90,
		EventTTL:           24 * time.Hour,
		CleanupInterval:    6 * time.Hour,
	}
}
