// Package events provides real-time audit progress delivery via WebSocket
// and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two delivery classes exist, distinguished by persistence:
//
// PERSISTENT (stored in the events table, then NOTIFY in the same
// transaction — the insert and the notification commit atomically):
//
//   - audit.stage   — a pipeline stage finished (stage_complete)
//   - audit.status  — the audit reached a lifecycle state, including the
//     terminal audit_complete
//   - audit.error   — a failure worth surfacing, with recoverability info
//
// Persistent events survive reconnects: subscribing replays them from
// the events table, keyed on db_event_id.
//
// TRANSIENT (NOTIFY only, never stored):
//
//   - audit.progress — high-frequency fan-out progress. Lost on
//     disconnect by design; the next stage_complete carries the
//     authoritative counts.
//
// Events are in-order per audit channel. No ordering holds across audits.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeStageComplete = "audit.stage"
	EventTypeAuditStatus   = "audit.status"
	EventTypeAuditError    = "audit.error"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	EventTypeProgress    = "audit.progress"
	EventTypeBudgetAlert = "budget.alert"
)

// Pipeline stage names carried in payloads.
const (
	StageQueryGen    = "query_gen"
	StageFanOut      = "fan_out"
	StageAnalyze     = "analyze"
	StageAggregateL1 = "aggregate_l1"
	StageAggregateL2 = "aggregate_l2"
	StageAggregateL3 = "aggregate_l3"
	StageDashboard   = "dashboard"
	StageVerify      = "verify"
)

// GlobalAuditsChannel carries audit.status copies for every audit. The
// audit list page subscribes to this for live updates.
const GlobalAuditsChannel = "audits"

// AuditChannel returns the channel name for a specific audit's events.
// Format: "audit:{audit_id}"
func AuditChannel(auditID string) string {
	return "audit:" + auditID
}

// ClientMessage is the JSON structure for client → server WebSocket
// messages. A subscribe may carry last_event_id: the last db_event_id
// the client saw, so reconnects replay only what was missed.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "audit:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // Replay position for subscribe
}
