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
	"github.com/brandlens/brandlens/ent/providerresponse"
)

// ProviderResponse is the model entity for the ProviderResponse schema.
type ProviderResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QueryID holds the value of the "query_id" field.
	QueryID string `json:"query_id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID string `json:"audit_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int `json:"tokens_out,omitempty"`
	// USD, 4-decimal precision
	Cost float64 `json:"cost,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// Cached holds the value of the "cached" field.
	Cached bool `json:"cached,omitempty"`
	// Citations holds the value of the "citations" field.
	Citations []string `json:"citations,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// BrandMentioned holds the value of the "brand_mentioned" field.
	BrandMentioned bool `json:"brand_mentioned,omitempty"`
	// MentionCount holds the value of the "mention_count" field.
	MentionCount int `json:"mention_count,omitempty"`
	// First rune index of the brand mention; -1 when absent
	MentionPosition int `json:"mention_position,omitempty"`
	// Mention position as % of response length
	FirstPositionPercentage float64 `json:"first_position_percentage,omitempty"`
	// MentionContext holds the value of the "mention_context" field.
	MentionContext string `json:"mention_context,omitempty"`
	// [-1, 1]; 0 when evidence is balanced
	Sentiment float64 `json:"sentiment,omitempty"`
	// RecommendationStrength holds the value of the "recommendation_strength" field.
	RecommendationStrength float64 `json:"recommendation_strength,omitempty"`
	// Always a list, never a map — see pkg/analyzer
	CompetitorAnalysis []map[string]interface{} `json:"competitor_analysis,omitempty"`
	// FeaturesMentioned holds the value of the "features_mentioned" field.
	FeaturesMentioned []string `json:"features_mentioned,omitempty"`
	// ValueProps holds the value of the "value_props" field.
	ValueProps []string `json:"value_props,omitempty"`
	// FeaturedSnippetPotential holds the value of the "featured_snippet_potential" field.
	FeaturedSnippetPotential float64 `json:"featured_snippet_potential,omitempty"`
	// VoiceSearchOptimized holds the value of the "voice_search_optimized" field.
	VoiceSearchOptimized bool `json:"voice_search_optimized,omitempty"`
	// [0, 100]
	GeoScore float64 `json:"geo_score,omitempty"`
	// [0, 100]
	SovScore float64 `json:"sov_score,omitempty"`
	// [0, 100]
	ContextCompleteness float64 `json:"context_completeness,omitempty"`
	// BuyerJourneyCategory holds the value of the "buyer_journey_category" field.
	BuyerJourneyCategory providerresponse.BuyerJourneyCategory `json:"buyer_journey_category,omitempty"`
	// ContextQuality holds the value of the "context_quality" field.
	ContextQuality float64 `json:"context_quality,omitempty"`
	// AdditionalMetrics holds the value of the "additional_metrics" field.
	AdditionalMetrics map[string]interface{} `json:"additional_metrics,omitempty"`
	// MetricsExtractedAt holds the value of the "metrics_extracted_at" field.
	MetricsExtractedAt *time.Time `json:"metrics_extracted_at,omitempty"`
	// Set instead of metrics_extracted_at when extraction failed
	ExtractionError *string `json:"extraction_error,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// BatchNumber holds the value of the "batch_number" field.
	BatchNumber int `json:"batch_number,omitempty"`
	// BatchPosition holds the value of the "batch_position" field.
	BatchPosition int `json:"batch_position,omitempty"`
	// Denormalized for the aggregation layers
	QueryText string `json:"query_text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProviderResponseQuery when eager-loading is set.
	Edges        ProviderResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProviderResponseEdges holds the relations/edges for other nodes in the graph.
type ProviderResponseEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProviderResponseEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProviderResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case providerresponse.FieldCitations, providerresponse.FieldCompetitorAnalysis, providerresponse.FieldFeaturesMentioned, providerresponse.FieldValueProps, providerresponse.FieldAdditionalMetrics:
			values[i] = new([]byte)
		case providerresponse.FieldCached, providerresponse.FieldBrandMentioned, providerresponse.FieldVoiceSearchOptimized:
			values[i] = new(sql.NullBool)
		case providerresponse.FieldCost, providerresponse.FieldFirstPositionPercentage, providerresponse.FieldSentiment, providerresponse.FieldRecommendationStrength, providerresponse.FieldFeaturedSnippetPotential, providerresponse.FieldGeoScore, providerresponse.FieldSovScore, providerresponse.FieldContextCompleteness, providerresponse.FieldContextQuality:
			values[i] = new(sql.NullFloat64)
		case providerresponse.FieldTokensIn, providerresponse.FieldTokensOut, providerresponse.FieldLatencyMs, providerresponse.FieldMentionCount, providerresponse.FieldMentionPosition, providerresponse.FieldBatchNumber, providerresponse.FieldBatchPosition:
			values[i] = new(sql.NullInt64)
		case providerresponse.FieldID, providerresponse.FieldQueryID, providerresponse.FieldAuditID, providerresponse.FieldProvider, providerresponse.FieldModel, providerresponse.FieldText, providerresponse.FieldMentionContext, providerresponse.FieldBuyerJourneyCategory, providerresponse.FieldExtractionError, providerresponse.FieldBatchID, providerresponse.FieldQueryText:
			values[i] = new(sql.NullString)
		case providerresponse.FieldCreatedAt, providerresponse.FieldMetricsExtractedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProviderResponse fields.
func (_m *ProviderResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case providerresponse.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case providerresponse.FieldQueryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_id", values[i])
			} else if value.Valid {
				_m.QueryID = value.String
			}
		case providerresponse.FieldAuditID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = value.String
			}
		case providerresponse.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case providerresponse.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case providerresponse.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case providerresponse.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = int(value.Int64)
			}
		case providerresponse.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = int(value.Int64)
			}
		case providerresponse.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case providerresponse.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case providerresponse.FieldCached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cached", values[i])
			} else if value.Valid {
				_m.Cached = value.Bool
			}
		case providerresponse.FieldCitations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field citations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Citations); err != nil {
					return fmt.Errorf("unmarshal field citations: %w", err)
				}
			}
		case providerresponse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case providerresponse.FieldBrandMentioned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field brand_mentioned", values[i])
			} else if value.Valid {
				_m.BrandMentioned = value.Bool
			}
		case providerresponse.FieldMentionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mention_count", values[i])
			} else if value.Valid {
				_m.MentionCount = int(value.Int64)
			}
		case providerresponse.FieldMentionPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mention_position", values[i])
			} else if value.Valid {
				_m.MentionPosition = int(value.Int64)
			}
		case providerresponse.FieldFirstPositionPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field first_position_percentage", values[i])
			} else if value.Valid {
				_m.FirstPositionPercentage = value.Float64
			}
		case providerresponse.FieldMentionContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mention_context", values[i])
			} else if value.Valid {
				_m.MentionContext = value.String
			}
		case providerresponse.FieldSentiment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment", values[i])
			} else if value.Valid {
				_m.Sentiment = value.Float64
			}
		case providerresponse.FieldRecommendationStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_strength", values[i])
			} else if value.Valid {
				_m.RecommendationStrength = value.Float64
			}
		case providerresponse.FieldCompetitorAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompetitorAnalysis); err != nil {
					return fmt.Errorf("unmarshal field competitor_analysis: %w", err)
				}
			}
		case providerresponse.FieldFeaturesMentioned:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features_mentioned", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeaturesMentioned); err != nil {
					return fmt.Errorf("unmarshal field features_mentioned: %w", err)
				}
			}
		case providerresponse.FieldValueProps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value_props", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValueProps); err != nil {
					return fmt.Errorf("unmarshal field value_props: %w", err)
				}
			}
		case providerresponse.FieldFeaturedSnippetPotential:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field featured_snippet_potential", values[i])
			} else if value.Valid {
				_m.FeaturedSnippetPotential = value.Float64
			}
		case providerresponse.FieldVoiceSearchOptimized:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field voice_search_optimized", values[i])
			} else if value.Valid {
				_m.VoiceSearchOptimized = value.Bool
			}
		case providerresponse.FieldGeoScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field geo_score", values[i])
			} else if value.Valid {
				_m.GeoScore = value.Float64
			}
		case providerresponse.FieldSovScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sov_score", values[i])
			} else if value.Valid {
				_m.SovScore = value.Float64
			}
		case providerresponse.FieldContextCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field context_completeness", values[i])
			} else if value.Valid {
				_m.ContextCompleteness = value.Float64
			}
		case providerresponse.FieldBuyerJourneyCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_journey_category", values[i])
			} else if value.Valid {
				_m.BuyerJourneyCategory = providerresponse.BuyerJourneyCategory(value.String)
			}
		case providerresponse.FieldContextQuality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field context_quality", values[i])
			} else if value.Valid {
				_m.ContextQuality = value.Float64
			}
		case providerresponse.FieldAdditionalMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field additional_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdditionalMetrics); err != nil {
					return fmt.Errorf("unmarshal field additional_metrics: %w", err)
				}
			}
		case providerresponse.FieldMetricsExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field metrics_extracted_at", values[i])
			} else if value.Valid {
				_m.MetricsExtractedAt = new(time.Time)
				*_m.MetricsExtractedAt = value.Time
			}
		case providerresponse.FieldExtractionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_error", values[i])
			} else if value.Valid {
				_m.ExtractionError = new(string)
				*_m.ExtractionError = value.String
			}
		case providerresponse.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case providerresponse.FieldBatchNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_number", values[i])
			} else if value.Valid {
				_m.BatchNumber = int(value.Int64)
			}
		case providerresponse.FieldBatchPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_position", values[i])
			} else if value.Valid {
				_m.BatchPosition = int(value.Int64)
			}
		case providerresponse.FieldQueryText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_text", values[i])
			} else if value.Valid {
				_m.QueryText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProviderResponse.
// This includes values selected through modifiers, order, etc.
func (_m *ProviderResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the ProviderResponse entity.
func (_m *ProviderResponse) QueryAudit() *AuditQueryBuilder {
	return NewProviderResponseClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this ProviderResponse.
// Note that you need to call ProviderResponse.Unwrap() before calling this method if this ProviderResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProviderResponse) Update() *ProviderResponseUpdateOne {
	return NewProviderResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProviderResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProviderResponse) Unwrap() *ProviderResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProviderResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProviderResponse) String() string {
	var builder strings.Builder
	builder.WriteString("ProviderResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("query_id=")
	builder.WriteString(_m.QueryID)
	builder.WriteString(", ")
	builder.WriteString("audit_id=")
	builder.WriteString(_m.AuditID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("cached=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cached))
	builder.WriteString(", ")
	builder.WriteString("citations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Citations))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("brand_mentioned=")
	builder.WriteString(fmt.Sprintf("%v", _m.BrandMentioned))
	builder.WriteString(", ")
	builder.WriteString("mention_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionCount))
	builder.WriteString(", ")
	builder.WriteString("mention_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionPosition))
	builder.WriteString(", ")
	builder.WriteString("first_position_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstPositionPercentage))
	builder.WriteString(", ")
	builder.WriteString("mention_context=")
	builder.WriteString(_m.MentionContext)
	builder.WriteString(", ")
	builder.WriteString("sentiment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sentiment))
	builder.WriteString(", ")
	builder.WriteString("recommendation_strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendationStrength))
	builder.WriteString(", ")
	builder.WriteString("competitor_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorAnalysis))
	builder.WriteString(", ")
	builder.WriteString("features_mentioned=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeaturesMentioned))
	builder.WriteString(", ")
	builder.WriteString("value_props=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValueProps))
	builder.WriteString(", ")
	builder.WriteString("featured_snippet_potential=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeaturedSnippetPotential))
	builder.WriteString(", ")
	builder.WriteString("voice_search_optimized=")
	builder.WriteString(fmt.Sprintf("%v", _m.VoiceSearchOptimized))
	builder.WriteString(", ")
	builder.WriteString("geo_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeoScore))
	builder.WriteString(", ")
	builder.WriteString("sov_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SovScore))
	builder.WriteString(", ")
	builder.WriteString("context_completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextCompleteness))
	builder.WriteString(", ")
	builder.WriteString("buyer_journey_category=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerJourneyCategory))
	builder.WriteString(", ")
	builder.WriteString("context_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextQuality))
	builder.WriteString(", ")
	builder.WriteString("additional_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdditionalMetrics))
	builder.WriteString(", ")
	if v := _m.MetricsExtractedAt; v != nil {
		builder.WriteString("metrics_extracted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExtractionError; v != nil {
		builder.WriteString("extraction_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("batch_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchNumber))
	builder.WriteString(", ")
	builder.WriteString("batch_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchPosition))
	builder.WriteString(", ")
	builder.WriteString("query_text=")
	builder.WriteString(_m.QueryText)
	builder.WriteByte(')')
	return builder.String()
}

// ProviderResponses is a parsable slice of ProviderResponse.
type ProviderResponses []*ProviderResponse
