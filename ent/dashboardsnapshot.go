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
)

// DashboardSnapshot is the model entity for the DashboardSnapshot schema.
type DashboardSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore float64 `json:"overall_score,omitempty"`
	// TotalQueries holds the value of the "total_queries" field.
	TotalQueries int `json:"total_queries,omitempty"`
	// TotalResponses holds the value of the "total_responses" field.
	TotalResponses int `json:"total_responses,omitempty"`
	// Per-provider response counts and spend
	PlatformBreakdown map[string]interface{} `json:"platform_breakdown,omitempty"`
	// TopRecommendations holds the value of the "top_recommendations" field.
	TopRecommendations []string `json:"top_recommendations,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DashboardSnapshotQuery when eager-loading is set.
	Edges        DashboardSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DashboardSnapshotEdges holds the relations/edges for other nodes in the graph.
type DashboardSnapshotEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DashboardSnapshotEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DashboardSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dashboardsnapshot.FieldPlatformBreakdown, dashboardsnapshot.FieldTopRecommendations:
			values[i] = new([]byte)
		case dashboardsnapshot.FieldOverallScore, dashboardsnapshot.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case dashboardsnapshot.FieldID, dashboardsnapshot.FieldTotalQueries, dashboardsnapshot.FieldTotalResponses:
			values[i] = new(sql.NullInt64)
		case dashboardsnapshot.FieldAuditID:
			values[i] = new(sql.NullString)
		case dashboardsnapshot.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DashboardSnapshot fields.
func (_m *DashboardSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dashboardsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dashboardsnapshot.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case dashboardsnapshot.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case dashboardsnapshot.FieldTotalQueries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_queries", values[i])
			} else if value.Valid {
				_m.TotalQueries = int(value.Int64)
			}
		case dashboardsnapshot.FieldTotalResponses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_responses", values[i])
			} else if value.Valid {
				_m.TotalResponses = int(value.Int64)
			}
		case dashboardsnapshot.FieldPlatformBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field platform_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlatformBreakdown); err != nil {
					return fmt.Errorf("unmarshal field platform_breakdown: %w", err)
				}
			}
		case dashboardsnapshot.FieldTopRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field top_recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopRecommendations); err != nil {
					return fmt.Errorf("unmarshal field top_recommendations: %w", err)
				}
			}
		case dashboardsnapshot.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case dashboardsnapshot.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DashboardSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *DashboardSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the DashboardSnapshot entity.
func (_m *DashboardSnapshot) QueryAudit() *AuditQueryBuilder {
	return NewDashboardSnapshotClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this DashboardSnapshot.
// Note that you need to call DashboardSnapshot.Unwrap() before calling this method if this DashboardSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DashboardSnapshot) Update() *DashboardSnapshotUpdateOne {
	return NewDashboardSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DashboardSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DashboardSnapshot) Unwrap() *DashboardSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DashboardSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DashboardSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("DashboardSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("total_queries=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQueries))
	builder.WriteString(", ")
	builder.WriteString("total_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalResponses))
	builder.WriteString(", ")
	builder.WriteString("platform_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlatformBreakdown))
	builder.WriteString(", ")
	builder.WriteString("top_recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopRecommendations))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DashboardSnapshots is a parsable slice of DashboardSnapshot.
type DashboardSnapshots []*DashboardSnapshot
