// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent/rankingsnapshot"
)

// RankingSnapshot is the model entity for the RankingSnapshot schema.
type RankingSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TargetDomain holds the value of the "target_domain" field.
	TargetDomain string `json:"target_domain,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt time.Time `json:"taken_at,omitempty"`
	// Serialized ranking.QueryRanking values
	Rankings     []map[string]interface{} `json:"rankings,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RankingSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rankingsnapshot.FieldRankings:
			values[i] = new([]byte)
		case rankingsnapshot.FieldID, rankingsnapshot.FieldTargetDomain:
			values[i] = new(sql.NullString)
		case rankingsnapshot.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RankingSnapshot fields.
func (_m *RankingSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rankingsnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rankingsnapshot.FieldTargetDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_domain", values[i])
			} else if value.Valid {
				_m.TargetDomain = value.String
			}
		case rankingsnapshot.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		case rankingsnapshot.FieldRankings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rankings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rankings); err != nil {
					return fmt.Errorf("unmarshal field rankings: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RankingSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *RankingSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RankingSnapshot.
// Note that you need to call RankingSnapshot.Unwrap() before calling this method if this RankingSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RankingSnapshot) Update() *RankingSnapshotUpdateOne {
	return NewRankingSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RankingSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RankingSnapshot) Unwrap() *RankingSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RankingSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RankingSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("RankingSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("target_domain=")
	builder.WriteString(_m.TargetDomain)
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("rankings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rankings))
	builder.WriteByte(')')
	return builder.String()
}

// RankingSnapshots is a parsable slice of RankingSnapshot.
type RankingSnapshots []*RankingSnapshot
