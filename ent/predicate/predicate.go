// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Audit is the predicate function for audit builders.
type Audit func(*sql.Selector)

// AuditQuery is the predicate function for auditquery builders.
type AuditQuery func(*sql.Selector)

// BatchInsight is the predicate function for batchinsight builders.
type BatchInsight func(*sql.Selector)

// CategoryAggregate is the predicate function for categoryaggregate builders.
type CategoryAggregate func(*sql.Selector)

// DashboardSnapshot is the predicate function for dashboardsnapshot builders.
type DashboardSnapshot func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExecutiveSummary is the predicate function for executivesummary builders.
type ExecutiveSummary func(*sql.Selector)

// ProviderLedger is the predicate function for providerledger builders.
type ProviderLedger func(*sql.Selector)

// ProviderResponse is the predicate function for providerresponse builders.
type ProviderResponse func(*sql.Selector)

// RankingSnapshot is the predicate function for rankingsnapshot builders.
type RankingSnapshot func(*sql.Selector)

// StrategicPriority is the predicate function for strategicpriority builders.
type StrategicPriority func(*sql.Selector)
