// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
)

// AuditQuery is the model entity for the AuditQuery schema.
type AuditQuery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Category holds the value of the "category" field.
	Category auditquery.Category `json:"category,omitempty"`
	// Intent holds the value of the "intent" field.
	Intent string `json:"intent,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority auditquery.Priority `json:"priority,omitempty"`
	// 0-10 scale
	Difficulty int `json:"difficulty,omitempty"`
	// PositionInAudit holds the value of the "position_in_audit" field.
	PositionInAudit int `json:"position_in_audit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditQueryQuery when eager-loading is set.
	Edges        AuditQueryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditQueryEdges holds the relations/edges for other nodes in the graph.
type AuditQueryEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditQueryEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditQuery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditquery.FieldDifficulty, auditquery.FieldPositionInAudit:
			values[i] = new(sql.NullInt64)
		case auditquery.FieldID, auditquery.FieldAuditID, auditquery.FieldText, auditquery.FieldCategory, auditquery.FieldIntent, auditquery.FieldPriority:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditQuery fields.
func (_m *AuditQuery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditquery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditquery.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case auditquery.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case auditquery.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = auditquery.Category(value.String)
			}
		case auditquery.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case auditquery.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = auditquery.Priority(value.String)
			}
		case auditquery.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case auditquery.FieldPositionInAudit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position_in_audit", values[i])
			} else if value.Valid {
				_m.PositionInAudit = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditQuery.
// This includes values selected through modifiers, order, etc.
func (_m *AuditQuery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditQuery entity.
func (_m *AuditQuery) QueryAudit() *AuditQueryBuilder {
	return NewAuditQueryClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this AuditQuery.
// Note that you need to call AuditQuery.Unwrap() before calling this method if this AuditQuery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditQuery) Update() *AuditQueryUpdateOne {
	return NewAuditQueryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditQuery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditQuery) Unwrap() *AuditQuery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditQuery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditQuery) String() string {
	var builder strings.Builder
	builder.WriteString("AuditQuery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("position_in_audit=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositionInAudit))
	builder.WriteByte(')')
	return builder.String()
}

// AuditQueries is a parsable slice of AuditQuery.
type AuditQueries []*AuditQuery
