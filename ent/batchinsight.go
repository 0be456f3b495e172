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
	"github.com/brandlens/brandlens/ent/batchinsight"
)

// BatchInsight is the model entity for the BatchInsight schema.
type BatchInsight struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// Category holds the value of the "category" field.
	Category batchinsight.Category `json:"category,omitempty"`
	// BatchNumber holds the value of the "batch_number" field.
	BatchNumber int `json:"batch_number,omitempty"`
	// ExtractionType holds the value of the "extraction_type" field.
	ExtractionType batchinsight.ExtractionType `json:"extraction_type,omitempty"`
	// At most 10 entries
	Insights []string `json:"insights,omitempty"`
	// ResponseIds holds the value of the "response_ids" field.
	ResponseIds []string `json:"response_ids,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchInsightQuery when eager-loading is set.
	Edges        BatchInsightEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchInsightEdges holds the relations/edges for other nodes in the graph.
type BatchInsightEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BatchInsightEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BatchInsight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batchinsight.FieldInsights, batchinsight.FieldResponseIds:
			values[i] = new([]byte)
		case batchinsight.FieldID, batchinsight.FieldBatchNumber:
			values[i] = new(sql.NullInt64)
		case batchinsight.FieldAuditID, batchinsight.FieldCategory, batchinsight.FieldExtractionType:
			values[i] = new(sql.NullString)
		case batchinsight.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BatchInsight fields.
func (_m *BatchInsight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batchinsight.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case batchinsight.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case batchinsight.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = batchinsight.Category(value.String)
			}
		case batchinsight.FieldBatchNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_number", values[i])
			} else if value.Valid {
				_m.BatchNumber = int(value.Int64)
			}
		case batchinsight.FieldExtractionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_type", values[i])
			} else if value.Valid {
				_m.ExtractionType = batchinsight.ExtractionType(value.String)
			}
		case batchinsight.FieldInsights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Insights); err != nil {
					return fmt.Errorf("unmarshal field insights: %w", err)
				}
			}
		case batchinsight.FieldResponseIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseIds); err != nil {
					return fmt.Errorf("unmarshal field response_ids: %w", err)
				}
			}
		case batchinsight.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BatchInsight.
// This includes values selected through modifiers, order, etc.
func (_m *BatchInsight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the BatchInsight entity.
func (_m *BatchInsight) QueryAudit() *AuditQueryBuilder {
	return NewBatchInsightClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this BatchInsight.
// Note that you need to call BatchInsight.Unwrap() before calling this method if this BatchInsight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BatchInsight) Update() *BatchInsightUpdateOne {
	return NewBatchInsightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BatchInsight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BatchInsight) Unwrap() *BatchInsight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BatchInsight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BatchInsight) String() string {
	var builder strings.Builder
	builder.WriteString("BatchInsight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("batch_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchNumber))
	builder.WriteString(", ")
	builder.WriteString("extraction_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionType))
	builder.WriteString(", ")
	builder.WriteString("insights=")
	builder.WriteString(fmt.Sprintf("%v", _m.Insights))
	builder.WriteString(", ")
	builder.WriteString("response_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseIds))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BatchInsights is a parsable slice of BatchInsight.
type BatchInsights []*BatchInsight
