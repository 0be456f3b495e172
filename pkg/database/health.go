package database

import (
	"context"
	"time"
)

// PoolStats is a point-in-time snapshot of the connection pool.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
	WaitMS    int64 `json:"wait_ms"`
}

// HealthStatus reports database reachability plus pool pressure, served
// on the health endpoint.
type HealthStatus struct {
	Status         string    `json:"status"`
	ResponseTimeMS int64     `json:"response_time_ms"`
	Pool           PoolStats `json:"pool"`
}

// Health pings the database and snapshots the pool. The returned status
// is populated even on error so the health endpoint can render it.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:         "unhealthy",
			ResponseTimeMS: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	return &HealthStatus{
		Status:         "healthy",
		ResponseTimeMS: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      stats.OpenConnections,
			InUse:     stats.InUse,
			Idle:      stats.Idle,
			MaxOpen:   stats.MaxOpenConnections,
			WaitCount: stats.WaitCount,
			WaitMS:    stats.WaitDuration.Milliseconds(),
		},
	}, nil
}
