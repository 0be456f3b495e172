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
	"github.com/brandlens/brandlens/ent/categoryaggregate"
)

// CategoryAggregate is the model entity for the CategoryAggregate schema.
type CategoryAggregate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// Category holds the value of the "category" field.
	Category categoryaggregate.Category `json:"category,omitempty"`
	// ResponseCount holds the value of the "response_count" field.
	ResponseCount int `json:"response_count,omitempty"`
	// AvgGeoScore holds the value of the "avg_geo_score" field.
	AvgGeoScore float64 `json:"avg_geo_score,omitempty"`
	// AvgSovScore holds the value of the "avg_sov_score" field.
	AvgSovScore float64 `json:"avg_sov_score,omitempty"`
	// AvgSentiment holds the value of the "avg_sentiment" field.
	AvgSentiment float64 `json:"avg_sentiment,omitempty"`
	// AvgContextCompleteness holds the value of the "avg_context_completeness" field.
	AvgContextCompleteness float64 `json:"avg_context_completeness,omitempty"`
	// Fraction of responses mentioning the brand
	MentionRate float64 `json:"mention_rate,omitempty"`
	// TopThemes holds the value of the "top_themes" field.
	TopThemes []string `json:"top_themes,omitempty"`
	// At most 3, ranked by support_count x avg_score
	PriorityRecommendations []string `json:"priority_recommendations,omitempty"`
	// CompetitiveSummary holds the value of the "competitive_summary" field.
	CompetitiveSummary string `json:"competitive_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CategoryAggregateQuery when eager-loading is set.
	Edges        CategoryAggregateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CategoryAggregateEdges holds the relations/edges for other nodes in the graph.
type CategoryAggregateEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CategoryAggregateEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryAggregate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categoryaggregate.FieldTopThemes, categoryaggregate.FieldPriorityRecommendations:
			values[i] = new([]byte)
		case categoryaggregate.FieldAvgGeoScore, categoryaggregate.FieldAvgSovScore, categoryaggregate.FieldAvgSentiment, categoryaggregate.FieldAvgContextCompleteness, categoryaggregate.FieldMentionRate:
			values[i] = new(sql.NullFloat64)
		case categoryaggregate.FieldID, categoryaggregate.FieldResponseCount:
			values[i] = new(sql.NullInt64)
		case categoryaggregate.FieldAuditID, categoryaggregate.FieldCategory, categoryaggregate.FieldCompetitiveSummary:
			values[i] = new(sql.NullString)
		case categoryaggregate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryAggregate fields.
func (_m *CategoryAggregate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categoryaggregate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case categoryaggregate.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case categoryaggregate.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = categoryaggregate.Category(value.String)
			}
		case categoryaggregate.FieldResponseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_count", values[i])
			} else if value.Valid {
				_m.ResponseCount = int(value.Int64)
			}
		case categoryaggregate.FieldAvgGeoScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_geo_score", values[i])
			} else if value.Valid {
				_m.AvgGeoScore = value.Float64
			}
		case categoryaggregate.FieldAvgSovScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_sov_score", values[i])
			} else if value.Valid {
				_m.AvgSovScore = value.Float64
			}
		case categoryaggregate.FieldAvgSentiment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_sentiment", values[i])
			} else if value.Valid {
				_m.AvgSentiment = value.Float64
			}
		case categoryaggregate.FieldAvgContextCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_context_completeness", values[i])
			} else if value.Valid {
				_m.AvgContextCompleteness = value.Float64
			}
		case categoryaggregate.FieldMentionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mention_rate", values[i])
			} else if value.Valid {
				_m.MentionRate = value.Float64
			}
		case categoryaggregate.FieldTopThemes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field top_themes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopThemes); err != nil {
					return fmt.Errorf("unmarshal field top_themes: %w", err)
				}
			}
		case categoryaggregate.FieldPriorityRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field priority_recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PriorityRecommendations); err != nil {
					return fmt.Errorf("unmarshal field priority_recommendations: %w", err)
				}
			}
		case categoryaggregate.FieldCompetitiveSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field competitive_summary", values[i])
			} else if value.Valid {
				_m.CompetitiveSummary = value.String
			}
		case categoryaggregate.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryAggregate.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryAggregate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the CategoryAggregate entity.
func (_m *CategoryAggregate) QueryAudit() *AuditQueryBuilder {
	return NewCategoryAggregateClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this CategoryAggregate.
// Note that you need to call CategoryAggregate.Unwrap() before calling this method if this CategoryAggregate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryAggregate) Update() *CategoryAggregateUpdateOne {
	return NewCategoryAggregateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryAggregate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryAggregate) Unwrap() *CategoryAggregate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryAggregate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryAggregate) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryAggregate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("response_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseCount))
	builder.WriteString(", ")
	builder.WriteString("avg_geo_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgGeoScore))
	builder.WriteString(", ")
	builder.WriteString("avg_sov_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgSovScore))
	builder.WriteString(", ")
	builder.WriteString("avg_sentiment=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgSentiment))
	builder.WriteString(", ")
	builder.WriteString("avg_context_completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgContextCompleteness))
	builder.WriteString(", ")
	builder.WriteString("mention_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionRate))
	builder.WriteString(", ")
	builder.WriteString("top_themes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopThemes))
	builder.WriteString(", ")
	builder.WriteString("priority_recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityRecommendations))
	builder.WriteString(", ")
	builder.WriteString("competitive_summary=")
	builder.WriteString(_m.CompetitiveSummary)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CategoryAggregates is a parsable slice of CategoryAggregate.
type CategoryAggregates []*CategoryAggregate
