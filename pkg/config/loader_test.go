package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, mainYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brandlens.yaml"), []byte(mainYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const minimalProviders = `
providers:
  - name: mock
    enabled: true
    cost_per_query: 0.001
`

func TestInitializeDefaults(t *testing.T) {
	dir := writeConfigDir(t, "", minimalProviders)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentAudits)
	assert.Equal(t, 4, cfg.Audit.BatchesPerCategory)
	assert.Equal(t, 5, cfg.Breaker.ConsecutiveFailures)
	assert.Equal(t, time.Minute, cfg.Breaker.Cooldown)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "builtin", cfg.QueryGen.Mode)

	// Every provider gets a rate-limit rule even without YAML rules.
	rule, ok := cfg.RateLimit["mock"]
	require.True(t, ok)
	assert.Equal(t, 60, rule.RequestsPerMinute)
}

func TestInitializeUserOverrides(t *testing.T) {
	mainYAML := `
budget:
  daily_limit: 5.5
queue:
  worker_count: 7
  audit_timeout: 20m
rate_limits:
  mock:
    requests_per_minute: 10
    max_concurrent: 2
audit:
  batches_per_category: 2
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 5.5, cfg.Budget.DailyLimit)
	// Unset budget fields keep built-in defaults.
	assert.Equal(t, 1000.0, cfg.Budget.MonthlyLimit)

	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 20*time.Minute, cfg.Queue.AuditTimeout)
	// Unset queue fields keep defaults.
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)

	rule := cfg.RateLimit["mock"]
	assert.Equal(t, 10, rule.RequestsPerMinute)
	assert.Equal(t, 2, rule.MaxConcurrent)
	// Unset rule fields keep defaults.
	assert.Equal(t, 10, rule.Burst)

	assert.Equal(t, 2, cfg.Audit.BatchesPerCategory)
}

func TestInitializeProviderPriorityOrder(t *testing.T) {
	providersYAML := `
providers:
  - name: cohere
    api_key_env: COHERE_KEY
    enabled: true
    priority: 3
  - name: openai
    api_key_env: OPENAI_KEY
    enabled: true
    priority: 1
  - name: anthropic
    api_key_env: ANTHROPIC_KEY
    enabled: false
    priority: 2
`
	dir := writeConfigDir(t, "", providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, cfg.Providers, 3)
	assert.Equal(t, "openai", cfg.Providers[0].Name)
	assert.Equal(t, "anthropic", cfg.Providers[1].Name)
	assert.Equal(t, "cohere", cfg.Providers[2].Name)

	enabled := cfg.EnabledProviders()
	require.Len(t, enabled, 2)
	assert.Equal(t, "openai", enabled[0].Name)
	assert.Equal(t, "cohere", enabled[1].Name)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "redis.internal:6380")
	mainYAML := `
cache:
  addr: "{{.TEST_REDIS_ADDR}}"
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.Addr)
}

func TestInitializeMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brandlens.yaml"), []byte(""), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "queue: [broken", minimalProviders)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidationRejectsNoEnabledProviders(t *testing.T) {
	providersYAML := `
providers:
  - name: openai
    api_key_env: OPENAI_KEY
    enabled: false
`
	dir := writeConfigDir(t, "", providersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "at least one enabled provider")
}

func TestValidationRejectsUnknownProvider(t *testing.T) {
	providersYAML := `
providers:
  - name: notreal
    api_key_env: KEY
    enabled: true
`
	dir := writeConfigDir(t, "", providersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidationRejectsMissingAPIKeyEnv(t *testing.T) {
	providersYAML := `
providers:
  - name: openai
    enabled: true
`
	dir := writeConfigDir(t, "", providersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key_env")
}

func TestValidationRejectsGRPCWithoutEndpoint(t *testing.T) {
	mainYAML := `
querygen:
  mode: grpc
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestInitializeDatabaseSection(t *testing.T) {
	mainYAML := `
database:
  host: db.internal
  max_open_conns: 40
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	// Unset fields keep built-in defaults.
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "DB_PASSWORD", cfg.Database.PasswordEnv)
}

func TestDatabaseDSNReadsPasswordFromEnv(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	db := DefaultDatabaseConfig()
	db.Host = "db.internal"
	db.PasswordEnv = "TEST_DB_PASSWORD"

	dsn := db.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "password=s3cret")
	assert.Contains(t, dsn, "dbname=brandlens")
}

func TestValidationRejectsBadDatabasePool(t *testing.T) {
	mainYAML := `
database:
  max_open_conns: 4
  max_idle_conns: 9
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestInitializeBudgetAlertDefaults(t *testing.T) {
	dir := writeConfigDir(t, "", minimalProviders)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.Budget.PerRequestLimit)
	assert.Equal(t, 0.8, cfg.Budget.Alerts.WarningThreshold)
	assert.Equal(t, 0.95, cfg.Budget.Alerts.CriticalThreshold)
}

func TestValidationRejectsInvertedAlertThresholds(t *testing.T) {
	mainYAML := `
budget:
  alerts:
    warning_threshold: 0.9
    critical_threshold: 0.5
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warning_threshold must not exceed critical_threshold")
}

func TestInitializeBackoffStrategy(t *testing.T) {
	mainYAML := `
retry:
  backoff_strategy: linear
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "linear", cfg.Retry.BackoffStrategy)
}

func TestValidationRejectsUnknownBackoffStrategy(t *testing.T) {
	mainYAML := `
retry:
  backoff_strategy: fibonacci
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backoff_strategy")
}

func TestValidationRejectsOrphanThresholdBelowHeartbeat(t *testing.T) {
	mainYAML := `
queue:
  heartbeat_interval: 1m
  orphan_threshold: 30s
`
	dir := writeConfigDir(t, mainYAML, minimalProviders)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orphan_threshold")
}
