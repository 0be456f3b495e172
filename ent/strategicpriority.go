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
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// StrategicPriority is the model entity for the StrategicPriority schema.
type StrategicPriority struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// 1-based; ordering key impact desc, support desc, title asc
	Rank int `json:"rank,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// EvidenceRefs holds the value of the "evidence_refs" field.
	EvidenceRefs []string `json:"evidence_refs,omitempty"`
	// ImpactScore holds the value of the "impact_score" field.
	ImpactScore float64 `json:"impact_score,omitempty"`
	// SupportCount holds the value of the "support_count" field.
	SupportCount int `json:"support_count,omitempty"`
	// EstimatedImpact holds the value of the "estimated_impact" field.
	EstimatedImpact strategicpriority.EstimatedImpact `json:"estimated_impact,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StrategicPriorityQuery when eager-loading is set.
	Edges        StrategicPriorityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StrategicPriorityEdges holds the relations/edges for other nodes in the graph.
type StrategicPriorityEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StrategicPriorityEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StrategicPriority) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case strategicpriority.FieldEvidenceRefs:
			values[i] = new([]byte)
		case strategicpriority.FieldImpactScore:
			values[i] = new(sql.NullFloat64)
		case strategicpriority.FieldID, strategicpriority.FieldRank, strategicpriority.FieldSupportCount:
			values[i] = new(sql.NullInt64)
		case strategicpriority.FieldAuditID, strategicpriority.FieldTitle, strategicpriority.FieldRationale, strategicpriority.FieldEstimatedImpact:
			values[i] = new(sql.NullString)
		case strategicpriority.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StrategicPriority fields.
func (_m *StrategicPriority) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case strategicpriority.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case strategicpriority.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case strategicpriority.FieldRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = int(value.Int64)
			}
		case strategicpriority.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case strategicpriority.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case strategicpriority.FieldEvidenceRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvidenceRefs); err != nil {
					return fmt.Errorf("unmarshal field evidence_refs: %w", err)
				}
			}
		case strategicpriority.FieldImpactScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field impact_score", values[i])
			} else if value.Valid {
				_m.ImpactScore = value.Float64
			}
		case strategicpriority.FieldSupportCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field support_count", values[i])
			} else if value.Valid {
				_m.SupportCount = int(value.Int64)
			}
		case strategicpriority.FieldEstimatedImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_impact", values[i])
			} else if value.Valid {
				_m.EstimatedImpact = strategicpriority.EstimatedImpact(value.String)
			}
		case strategicpriority.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StrategicPriority.
// This includes values selected through modifiers, order, etc.
func (_m *StrategicPriority) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the StrategicPriority entity.
func (_m *StrategicPriority) QueryAudit() *AuditQueryBuilder {
	return NewStrategicPriorityClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this StrategicPriority.
// Note that you need to call StrategicPriority.Unwrap() before calling this method if this StrategicPriority
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StrategicPriority) Update() *StrategicPriorityUpdateOne {
	return NewStrategicPriorityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StrategicPriority entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StrategicPriority) Unwrap() *StrategicPriority {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StrategicPriority is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StrategicPriority) String() string {
	var builder strings.Builder
	builder.WriteString("StrategicPriority(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rank))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("evidence_refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceRefs))
	builder.WriteString(", ")
	builder.WriteString("impact_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImpactScore))
	builder.WriteString(", ")
	builder.WriteString("support_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportCount))
	builder.WriteString(", ")
	builder.WriteString("estimated_impact=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedImpact))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StrategicPriorities is a parsable slice of StrategicPriority.
type StrategicPriorities []*StrategicPriority
