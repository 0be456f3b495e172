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
	"github.com/brandlens/brandlens/ent/executivesummary"
)

// ExecutiveSummary is the model entity for the ExecutiveSummary schema.
type ExecutiveSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// Weighted mean of L1 category scores, [0, 100]
	OverallScore float64 `json:"overall_score,omitempty"`
	// Narrative holds the value of the "narrative" field.
	Narrative string `json:"narrative,omitempty"`
	// TopRecommendations holds the value of the "top_recommendations" field.
	TopRecommendations []string `json:"top_recommendations,omitempty"`
	// Risks holds the value of the "risks" field.
	Risks []string `json:"risks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutiveSummaryQuery when eager-loading is set.
	Edges        ExecutiveSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutiveSummaryEdges holds the relations/edges for other nodes in the graph.
type ExecutiveSummaryEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutiveSummaryEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutiveSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executivesummary.FieldTopRecommendations, executivesummary.FieldRisks:
			values[i] = new([]byte)
		case executivesummary.FieldOverallScore:
			values[i] = new(sql.NullFloat64)
		case executivesummary.FieldID:
			values[i] = new(sql.NullInt64)
		case executivesummary.FieldAuditID, executivesummary.FieldNarrative:
			values[i] = new(sql.NullString)
		case executivesummary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutiveSummary fields.
func (_m *ExecutiveSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executivesummary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case executivesummary.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case executivesummary.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case executivesummary.FieldNarrative:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative", values[i])
			} else if value.Valid {
				_m.Narrative = value.String
			}
		case executivesummary.FieldTopRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field top_recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopRecommendations); err != nil {
					return fmt.Errorf("unmarshal field top_recommendations: %w", err)
				}
			}
		case executivesummary.FieldRisks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Risks); err != nil {
					return fmt.Errorf("unmarshal field risks: %w", err)
				}
			}
		case executivesummary.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutiveSummary.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutiveSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the ExecutiveSummary entity.
func (_m *ExecutiveSummary) QueryAudit() *AuditQueryBuilder {
	return NewExecutiveSummaryClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this ExecutiveSummary.
// Note that you need to call ExecutiveSummary.Unwrap() before calling this method if this ExecutiveSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutiveSummary) Update() *ExecutiveSummaryUpdateOne {
	return NewExecutiveSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutiveSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutiveSummary) Unwrap() *ExecutiveSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutiveSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutiveSummary) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutiveSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("narrative=")
	builder.WriteString(_m.Narrative)
	builder.WriteString(", ")
	builder.WriteString("top_recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopRecommendations))
	builder.WriteString(", ")
	builder.WriteString("risks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Risks))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExecutiveSummaries is a parsable slice of ExecutiveSummary.
type ExecutiveSummaries []*ExecutiveSummary
