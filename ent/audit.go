// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/executivesummary"
)

// Audit is the model entity for the Audit schema.
type Audit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Brand name being audited
	CompanyName string `json:"company_name,omitempty"`
	// Primary domain (e.g. example.com)
	CompanyDomain string `json:"company_domain,omitempty"`
	// Industry holds the value of the "industry" field.
	Industry string `json:"industry,omitempty"`
	// Competitors holds the value of the "competitors" field.
	Competitors []string `json:"competitors,omitempty"`
	// Alternative brand spellings matched by the analyzer
	BrandAliases []string `json:"brand_aliases,omitempty"`
	// Whether bare-domain mentions on subdomains count
	IncludeSubdomains bool `json:"include_subdomains,omitempty"`
	// Status holds the value of the "status" field.
	Status audit.Status `json:"status,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase audit.Phase `json:"phase,omitempty"`
	// TotalQueries holds the value of the "total_queries" field.
	TotalQueries int `json:"total_queries,omitempty"`
	// QueriesCompleted holds the value of the "queries_completed" field.
	QueriesCompleted int `json:"queries_completed,omitempty"`
	// Provider iteration order; empty means gateway default
	ProviderPriority []string `json:"provider_priority,omitempty"`
	// Fan-out concurrency override; 0 means gateway default
	Concurrency int `json:"concurrency,omitempty"`
	// CancelRequested holds the value of the "cancel_requested" field.
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// Set when verification returned partial
	VerifyWarning *string `json:"verify_warning,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the audit
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditQuery when eager-loading is set.
	Edges        AuditEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditEdges holds the relations/edges for other nodes in the graph.
type AuditEdges struct {
	// Queries holds the value of the queries edge.
	Queries []*AuditQuery `json:"queries,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*ProviderResponse `json:"responses,omitempty"`
	// BatchInsights holds the value of the batch_insights edge.
	BatchInsights []*BatchInsight `json:"batch_insights,omitempty"`
	// CategoryAggregates holds the value of the category_aggregates edge.
	CategoryAggregates []*CategoryAggregate `json:"category_aggregates,omitempty"`
	// StrategicPriorities holds the value of the strategic_priorities edge.
	StrategicPriorities []*StrategicPriority `json:"strategic_priorities,omitempty"`
	// ExecutiveSummary holds the value of the executive_summary edge.
	ExecutiveSummary *ExecutiveSummary `json:"executive_summary,omitempty"`
	// DashboardSnapshot holds the value of the dashboard_snapshot edge.
	DashboardSnapshot *DashboardSnapshot `json:"dashboard_snapshot,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// QueriesOrErr returns the Queries value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) QueriesOrErr() ([]*AuditQuery, error) {
	if e.loadedTypes[0] {
		return e.Queries, nil
	}
	return nil, &NotLoadedError{edge: "queries"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) ResponsesOrErr() ([]*ProviderResponse, error) {
	if e.loadedTypes[1] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// BatchInsightsOrErr returns the BatchInsights value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) BatchInsightsOrErr() ([]*BatchInsight, error) {
	if e.loadedTypes[2] {
		return e.BatchInsights, nil
	}
	return nil, &NotLoadedError{edge: "batch_insights"}
}

// CategoryAggregatesOrErr returns the CategoryAggregates value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) CategoryAggregatesOrErr() ([]*CategoryAggregate, error) {
	if e.loadedTypes[3] {
		return e.CategoryAggregates, nil
	}
	return nil, &NotLoadedError{edge: "category_aggregates"}
}

// StrategicPrioritiesOrErr returns the StrategicPriorities value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) StrategicPrioritiesOrErr() ([]*StrategicPriority, error) {
	if e.loadedTypes[4] {
		return e.StrategicPriorities, nil
	}
	return nil, &NotLoadedError{edge: "strategic_priorities"}
}

// ExecutiveSummaryOrErr returns the ExecutiveSummary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEdges) ExecutiveSummaryOrErr() (*ExecutiveSummary, error) {
	if e.ExecutiveSummary != nil {
		return e.ExecutiveSummary, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: executivesummary.Label}
	}
	return nil, &NotLoadedError{edge: "executive_summary"}
}

// DashboardSnapshotOrErr returns the DashboardSnapshot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEdges) DashboardSnapshotOrErr() (*DashboardSnapshot, error) {
	if e.DashboardSnapshot != nil {
		return e.DashboardSnapshot, nil
	} else if e.loadedTypes[6] {
		return nil, &NotFoundError{label: dashboardsnapshot.Label}
	}
	return nil, &NotLoadedError{edge: "dashboard_snapshot"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Audit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audit.FieldCompetitors, audit.FieldBrandAliases, audit.FieldProviderPriority:
			values[i] = new([]byte)
		case audit.FieldIncludeSubdomains, audit.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case audit.FieldTotalQueries, audit.FieldQueriesCompleted, audit.FieldConcurrency:
			values[i] = new(sql.NullInt64)
		case audit.FieldID, audit.FieldCompanyName, audit.FieldCompanyDomain, audit.FieldIndustry, audit.FieldStatus, audit.FieldPhase, audit.FieldVerifyWarning, audit.FieldErrorMessage, audit.FieldPodID:
			values[i] = new(sql.NullString)
		case audit.FieldCreatedAt, audit.FieldStartedAt, audit.FieldCompletedAt, audit.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Audit fields.
func (_m *Audit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case audit.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case audit.FieldCompanyDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_domain", values[i])
			} else if value.Valid {
				_m.CompanyDomain = value.String
			}
		case audit.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				_m.Industry = value.String
			}
		case audit.FieldCompetitors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Competitors); err != nil {
					return fmt.Errorf("unmarshal field competitors: %w", err)
				}
			}
		case audit.FieldBrandAliases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field brand_aliases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BrandAliases); err != nil {
					return fmt.Errorf("unmarshal field brand_aliases: %w", err)
				}
			}
		case audit.FieldIncludeSubdomains:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_subdomains", values[i])
			} else if value.Valid {
				_m.IncludeSubdomains = value.Bool
			}
		case audit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = audit.Status(value.String)
			}
		case audit.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = audit.Phase(value.String)
			}
		case audit.FieldTotalQueries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_queries", values[i])
			} else if value.Valid {
				_m.TotalQueries = int(value.Int64)
			}
		case audit.FieldQueriesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field queries_completed", values[i])
			} else if value.Valid {
				_m.QueriesCompleted = int(value.Int64)
			}
		case audit.FieldProviderPriority:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provider_priority", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProviderPriority); err != nil {
					return fmt.Errorf("unmarshal field provider_priority: %w", err)
				}
			}
		case audit.FieldConcurrency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concurrency", values[i])
			} else if value.Valid {
				_m.Concurrency = int(value.Int64)
			}
		case audit.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case audit.FieldVerifyWarning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verify_warning", values[i])
			} else if value.Valid {
				_m.VerifyWarning = new(string)
				*_m.VerifyWarning = value.String
			}
		case audit.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case audit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case audit.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case audit.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case audit.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case audit.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Audit.
// This includes values selected through modifiers, order, etc.
func (_m *Audit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQueries queries the "queries" edge of the Audit entity.
func (_m *Audit) QueryQueries() *AuditQueryQuery {
	return NewAuditClient(_m.config).QueryQueries(_m)
}

// QueryResponses queries the "responses" edge of the Audit entity.
func (_m *Audit) QueryResponses() *ProviderResponseQuery {
	return NewAuditClient(_m.config).QueryResponses(_m)
}

// QueryBatchInsights queries the "batch_insights" edge of the Audit entity.
func (_m *Audit) QueryBatchInsights() *BatchInsightQuery {
	return NewAuditClient(_m.config).QueryBatchInsights(_m)
}

// QueryCategoryAggregates queries the "category_aggregates" edge of the Audit entity.
func (_m *Audit) QueryCategoryAggregates() *CategoryAggregateQuery {
	return NewAuditClient(_m.config).QueryCategoryAggregates(_m)
}

// QueryStrategicPriorities queries the "strategic_priorities" edge of the Audit entity.
func (_m *Audit) QueryStrategicPriorities() *StrategicPriorityQuery {
	return NewAuditClient(_m.config).QueryStrategicPriorities(_m)
}

// QueryExecutiveSummary queries the "executive_summary" edge of the Audit entity.
func (_m *Audit) QueryExecutiveSummary() *ExecutiveSummaryQuery {
	return NewAuditClient(_m.config).QueryExecutiveSummary(_m)
}

// QueryDashboardSnapshot queries the "dashboard_snapshot" edge of the Audit entity.
func (_m *Audit) QueryDashboardSnapshot() *DashboardSnapshotQuery {
	return NewAuditClient(_m.config).QueryDashboardSnapshot(_m)
}

// Update returns a builder for updating this Audit.
// Note that you need to call Audit.Unwrap() before calling this method if this Audit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Audit) Update() *AuditUpdateOne {
	return NewAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Audit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Audit) Unwrap() *Audit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Audit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Audit) String() string {
	var builder strings.Builder
	builder.WriteString("Audit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("company_domain=")
	builder.WriteString(_m.CompanyDomain)
	builder.WriteString(", ")
	builder.WriteString("industry=")
	builder.WriteString(_m.Industry)
	builder.WriteString(", ")
	builder.WriteString("competitors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Competitors))
	builder.WriteString(", ")
	builder.WriteString("brand_aliases=")
	builder.WriteString(fmt.Sprintf("%v", _m.BrandAliases))
	builder.WriteString(", ")
	builder.WriteString("include_subdomains=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncludeSubdomains))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("total_queries=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQueries))
	builder.WriteString(", ")
	builder.WriteString("queries_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueriesCompleted))
	builder.WriteString(", ")
	builder.WriteString("provider_priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderPriority))
	builder.WriteString(", ")
	builder.WriteString("concurrency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concurrency))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.VerifyWarning; v != nil {
		builder.WriteString("verify_warning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Audits is a parsable slice of Audit.
type Audits []*Audit
