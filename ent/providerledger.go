// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent/providerledger"
)

// ProviderLedger is the model entity for the ProviderLedger schema.
type ProviderLedger struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// DailyCost holds the value of the "daily_cost" field.
	DailyCost float64 `json:"daily_cost,omitempty"`
	// MonthlyCost holds the value of the "monthly_cost" field.
	MonthlyCost float64 `json:"monthly_cost,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// RequestsToday holds the value of the "requests_today" field.
	RequestsToday int `json:"requests_today,omitempty"`
	// LastReset holds the value of the "last_reset" field.
	LastReset time.Time `json:"last_reset,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProviderLedger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case providerledger.FieldDailyCost, providerledger.FieldMonthlyCost, providerledger.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case providerledger.FieldID, providerledger.FieldRequestsToday:
			values[i] = new(sql.NullInt64)
		case providerledger.FieldProvider:
			values[i] = new(sql.NullString)
		case providerledger.FieldLastReset, providerledger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProviderLedger fields.
func (_m *ProviderLedger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case providerledger.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case providerledger.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case providerledger.FieldDailyCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_cost", values[i])
			} else if value.Valid {
				_m.DailyCost = value.Float64
			}
		case providerledger.FieldMonthlyCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_cost", values[i])
			} else if value.Valid {
				_m.MonthlyCost = value.Float64
			}
		case providerledger.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case providerledger.FieldRequestsToday:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requests_today", values[i])
			} else if value.Valid {
				_m.RequestsToday = int(value.Int64)
			}
		case providerledger.FieldLastReset:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reset", values[i])
			} else if value.Valid {
				_m.LastReset = value.Time
			}
		case providerledger.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProviderLedger.
// This includes values selected through modifiers, order, etc.
func (_m *ProviderLedger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProviderLedger.
// Note that you need to call ProviderLedger.Unwrap() before calling this method if this ProviderLedger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProviderLedger) Update() *ProviderLedgerUpdateOne {
	return NewProviderLedgerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProviderLedger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProviderLedger) Unwrap() *ProviderLedger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProviderLedger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProviderLedger) String() string {
	var builder strings.Builder
	builder.WriteString("ProviderLedger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("daily_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyCost))
	builder.WriteString(", ")
	builder.WriteString("monthly_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyCost))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("requests_today=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestsToday))
	builder.WriteString(", ")
	builder.WriteString("last_reset=")
	builder.WriteString(_m.LastReset.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProviderLedgers is a parsable slice of ProviderLedger.
type ProviderLedgers []*ProviderLedger
