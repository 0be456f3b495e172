package events

// ProgressPayload is the payload for audit.progress transient events.
// Published during fan-out as responses complete — high frequency,
// throttled by the executor, ephemeral.
type ProgressPayload struct {
	Type             string  `json:"type"` // always EventTypeProgress
	AuditID          string  `json:"audit_id"`
	Stage            string  `json:"stage"`
	Progress         float64 `json:"progress"` // percent, [0, 100]
	QueriesCompleted int     `json:"queries_completed"`
	TotalQueries     int     `json:"total_queries"`
	Message          string  `json:"message,omitempty"`
	CostSoFar        float64 `json:"cost_so_far"` // USD
	Timestamp        string  `json:"timestamp"`   // RFC3339Nano
}

// StageCompletePayload is the payload for audit.stage persistent events.
// Published when a pipeline stage reaches a terminal outcome.
type StageCompletePayload struct {
	Type      string  `json:"type"` // always EventTypeStageComplete
	AuditID   string  `json:"audit_id"`
	Stage     string  `json:"stage"`
	Status    string  `json:"status"` // completed, failed, cancelled
	Message   string  `json:"message,omitempty"`
	CostSoFar float64 `json:"cost_so_far"` // USD
	Timestamp string  `json:"timestamp"`   // RFC3339Nano
}

// AuditStatusPayload is the payload for audit.status persistent events.
// Published on every lifecycle transition; the terminal one doubles as
// audit_complete.
type AuditStatusPayload struct {
	Type          string  `json:"type"` // always EventTypeAuditStatus
	AuditID       string  `json:"audit_id"`
	Status        string  `json:"status"` // pending, running, completed, failed, cancelled
	Stage         string  `json:"stage,omitempty"`
	OverallScore  float64 `json:"overall_score,omitempty"` // set on completion
	TotalCost     float64 `json:"total_cost,omitempty"`    // USD, set on completion
	VerifyWarning string  `json:"verify_warning,omitempty"`
	Timestamp     string  `json:"timestamp"` // RFC3339Nano
}

// BudgetAlertPayload is the payload for budget.alert transient events,
// broadcast on the global audits channel when provider spend crosses a
// configured warning or critical threshold.
type BudgetAlertPayload struct {
	Type      string  `json:"type"` // always EventTypeBudgetAlert
	Provider  string  `json:"provider"`
	Period    string  `json:"period"`    // daily, monthly
	Level     string  `json:"level"`     // warning, critical
	Spent     float64 `json:"spent"`     // USD
	Limit     float64 `json:"limit"`     // USD
	Timestamp string  `json:"timestamp"` // RFC3339Nano
}

// ErrorPayload is the payload for audit.error persistent events.
type ErrorPayload struct {
	Type        string `json:"type"` // always EventTypeAuditError
	AuditID     string `json:"audit_id"`
	Stage       string `json:"stage,omitempty"`
	Code        string `json:"code,omitempty"` // provider error taxonomy code
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
	RetryAfterS int    `json:"retry_after_s,omitempty"`
	Timestamp   string `json:"timestamp"` // RFC3339Nano
}
