// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/predicate"
)

// CategoryAggregateUpdate is the builder for updating CategoryAggregate entities.
type CategoryAggregateUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryAggregateMutation
}

// Where appends a list predicates to the CategoryAggregateUpdate builder.
func (_u *CategoryAggregateUpdate) Where(ps ...predicate.CategoryAggregate) *CategoryAggregateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditID sets the "audit_id" field.
func (_u *CategoryAggregateUpdate) SetAuditID(v string) *CategoryAggregateUpdate {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableAuditID(v *string) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryAggregateUpdate) SetCategory(v categoryaggregate.Category) *CategoryAggregateUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableCategory(v *categoryaggregate.Category) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *CategoryAggregateUpdate) SetResponseCount(v int) *CategoryAggregateUpdate {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableResponseCount(v *int) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *CategoryAggregateUpdate) AddResponseCount(v int) *CategoryAggregateUpdate {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetAvgGeoScore sets the "avg_geo_score" field.
func (_u *CategoryAggregateUpdate) SetAvgGeoScore(v float64) *CategoryAggregateUpdate {
	_u.mutation.ResetAvgGeoScore()
	_u.mutation.SetAvgGeoScore(v)
	return _u
}

// SetNillableAvgGeoScore sets the "avg_geo_score" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableAvgGeoScore(v *float64) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetAvgGeoScore(*v)
	}
	return _u
}

// AddAvgGeoScore adds value to the "avg_geo_score" field.
func (_u *CategoryAggregateUpdate) AddAvgGeoScore(v float64) *CategoryAggregateUpdate {
	_u.mutation.AddAvgGeoScore(v)
	return _u
}

// SetAvgSovScore sets the "avg_sov_score" field.
func (_u *CategoryAggregateUpdate) SetAvgSovScore(v float64) *CategoryAggregateUpdate {
	_u.mutation.ResetAvgSovScore()
	_u.mutation.SetAvgSovScore(v)
	return _u
}

// SetNillableAvgSovScore sets the "avg_sov_score" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableAvgSovScore(v *float64) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetAvgSovScore(*v)
	}
	return _u
}

// AddAvgSovScore adds value to the "avg_sov_score" field.
func (_u *CategoryAggregateUpdate) AddAvgSovScore(v float64) *CategoryAggregateUpdate {
	_u.mutation.AddAvgSovScore(v)
	return _u
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (_u *CategoryAggregateUpdate) SetAvgSentiment(v float64) *CategoryAggregateUpdate {
	_u.mutation.ResetAvgSentiment()
	_u.mutation.SetAvgSentiment(v)
	return _u
}

// SetNillableAvgSentiment sets the "avg_sentiment" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableAvgSentiment(v *float64) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetAvgSentiment(*v)
	}
	return _u
}

// AddAvgSentiment adds value to the "avg_sentiment" field.
func (_u *CategoryAggregateUpdate) AddAvgSentiment(v float64) *CategoryAggregateUpdate {
	_u.mutation.AddAvgSentiment(v)
	return _u
}

// SetAvgContextCompleteness sets the "avg_context_completeness" field.
func (_u *CategoryAggregateUpdate) SetAvgContextCompleteness(v float64) *CategoryAggregateUpdate {
	_u.mutation.ResetAvgContextCompleteness()
	_u.mutation.SetAvgContextCompleteness(v)
	return _u
}

// SetNillableAvgContextCompleteness sets the "avg_context_completeness" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableAvgContextCompleteness(v *float64) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetAvgContextCompleteness(*v)
	}
	return _u
}

// AddAvgContextCompleteness adds value to the "avg_context_completeness" field.
func (_u *CategoryAggregateUpdate) AddAvgContextCompleteness(v float64) *CategoryAggregateUpdate {
	_u.mutation.AddAvgContextCompleteness(v)
	return _u
}

// SetMentionRate sets the "mention_rate" field.
func (_u *CategoryAggregateUpdate) SetMentionRate(v float64) *CategoryAggregateUpdate {
	_u.mutation.ResetMentionRate()
	_u.mutation.SetMentionRate(v)
	return _u
}

// SetNillableMentionRate sets the "mention_rate" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableMentionRate(v *float64) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetMentionRate(*v)
	}
	return _u
}

// AddMentionRate adds value to the "mention_rate" field.
func (_u *CategoryAggregateUpdate) AddMentionRate(v float64) *CategoryAggregateUpdate {
	_u.mutation.AddMentionRate(v)
	return _u
}

// SetTopThemes sets the "top_themes" field.
func (_u *CategoryAggregateUpdate) SetTopThemes(v []string) *CategoryAggregateUpdate {
	_u.mutation.SetTopThemes(v)
	return _u
}

// AppendTopThemes appends value to the "top_themes" field.
func (_u *CategoryAggregateUpdate) AppendTopThemes(v []string) *CategoryAggregateUpdate {
	_u.mutation.AppendTopThemes(v)
	return _u
}

// ClearTopThemes clears the value of the "top_themes" field.
func (_u *CategoryAggregateUpdate) ClearTopThemes() *CategoryAggregateUpdate {
	_u.mutation.ClearTopThemes()
	return _u
}

// SetPriorityRecommendations sets the "priority_recommendations" field.
func (_u *CategoryAggregateUpdate) SetPriorityRecommendations(v []string) *CategoryAggregateUpdate {
	_u.mutation.SetPriorityRecommendations(v)
	return _u
}

// AppendPriorityRecommendations appends value to the "priority_recommendations" field.
func (_u *CategoryAggregateUpdate) AppendPriorityRecommendations(v []string) *CategoryAggregateUpdate {
	_u.mutation.AppendPriorityRecommendations(v)
	return _u
}

// ClearPriorityRecommendations clears the value of the "priority_recommendations" field.
func (_u *CategoryAggregateUpdate) ClearPriorityRecommendations() *CategoryAggregateUpdate {
	_u.mutation.ClearPriorityRecommendations()
	return _u
}

// SetCompetitiveSummary sets the "competitive_summary" field.
func (_u *CategoryAggregateUpdate) SetCompetitiveSummary(v string) *CategoryAggregateUpdate {
	_u.mutation.SetCompetitiveSummary(v)
	return _u
}

// SetNillableCompetitiveSummary sets the "competitive_summary" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableCompetitiveSummary(v *string) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetCompetitiveSummary(*v)
	}
	return _u
}

// ClearCompetitiveSummary clears the value of the "competitive_summary" field.
func (_u *CategoryAggregateUpdate) ClearCompetitiveSummary() *CategoryAggregateUpdate {
	_u.mutation.ClearCompetitiveSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CategoryAggregateUpdate) SetCreatedAt(v time.Time) *CategoryAggregateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CategoryAggregateUpdate) SetNillableCreatedAt(v *time.Time) *CategoryAggregateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *CategoryAggregateUpdate) SetAudit(v *Audit) *CategoryAggregateUpdate {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the CategoryAggregateMutation object of the builder.
func (_u *CategoryAggregateUpdate) Mutation() *CategoryAggregateMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *CategoryAggregateUpdate) ClearAudit() *CategoryAggregateUpdate {
	_u.mutation.ClearAudit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryAggregateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryAggregateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryAggregateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryAggregateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryAggregateUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := categoryaggregate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryAggregate.category": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryAggregate.audit"`)
	}
	return nil
}

func (_u *CategoryAggregateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryaggregate.Table, categoryaggregate.Columns, sqlgraph.NewFieldSpec(categoryaggregate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categoryaggregate.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(categoryaggregate.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(categoryaggregate.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgGeoScore(); ok {
		_spec.SetField(categoryaggregate.FieldAvgGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgGeoScore(); ok {
		_spec.AddField(categoryaggregate.FieldAvgGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgSovScore(); ok {
		_spec.SetField(categoryaggregate.FieldAvgSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSovScore(); ok {
		_spec.AddField(categoryaggregate.FieldAvgSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgSentiment(); ok {
		_spec.SetField(categoryaggregate.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSentiment(); ok {
		_spec.AddField(categoryaggregate.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgContextCompleteness(); ok {
		_spec.SetField(categoryaggregate.FieldAvgContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgContextCompleteness(); ok {
		_spec.AddField(categoryaggregate.FieldAvgContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MentionRate(); ok {
		_spec.SetField(categoryaggregate.FieldMentionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMentionRate(); ok {
		_spec.AddField(categoryaggregate.FieldMentionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TopThemes(); ok {
		_spec.SetField(categoryaggregate.FieldTopThemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopThemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, categoryaggregate.FieldTopThemes, value)
		})
	}
	if _u.mutation.TopThemesCleared() {
		_spec.ClearField(categoryaggregate.FieldTopThemes, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorityRecommendations(); ok {
		_spec.SetField(categoryaggregate.FieldPriorityRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorityRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, categoryaggregate.FieldPriorityRecommendations, value)
		})
	}
	if _u.mutation.PriorityRecommendationsCleared() {
		_spec.ClearField(categoryaggregate.FieldPriorityRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompetitiveSummary(); ok {
		_spec.SetField(categoryaggregate.FieldCompetitiveSummary, field.TypeString, value)
	}
	if _u.mutation.CompetitiveSummaryCleared() {
		_spec.ClearField(categoryaggregate.FieldCompetitiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(categoryaggregate.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categoryaggregate.AuditTable,
			Columns: []string{categoryaggregate.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categoryaggregate.AuditTable,
			Columns: []string{categoryaggregate.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryAggregateUpdateOne is the builder for updating a single CategoryAggregate entity.
type CategoryAggregateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryAggregateMutation
}

// SetAuditID sets the "audit_id" field.
func (_u *CategoryAggregateUpdateOne) SetAuditID(v string) *CategoryAggregateUpdateOne {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableAuditID(v *string) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryAggregateUpdateOne) SetCategory(v categoryaggregate.Category) *CategoryAggregateUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableCategory(v *categoryaggregate.Category) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *CategoryAggregateUpdateOne) SetResponseCount(v int) *CategoryAggregateUpdateOne {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableResponseCount(v *int) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *CategoryAggregateUpdateOne) AddResponseCount(v int) *CategoryAggregateUpdateOne {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetAvgGeoScore sets the "avg_geo_score" field.
func (_u *CategoryAggregateUpdateOne) SetAvgGeoScore(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.ResetAvgGeoScore()
	_u.mutation.SetAvgGeoScore(v)
	return _u
}

// SetNillableAvgGeoScore sets the "avg_geo_score" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableAvgGeoScore(v *float64) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetAvgGeoScore(*v)
	}
	return _u
}

// AddAvgGeoScore adds value to the "avg_geo_score" field.
func (_u *CategoryAggregateUpdateOne) AddAvgGeoScore(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.AddAvgGeoScore(v)
	return _u
}

// SetAvgSovScore sets the "avg_sov_score" field.
func (_u *CategoryAggregateUpdateOne) SetAvgSovScore(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.ResetAvgSovScore()
	_u.mutation.SetAvgSovScore(v)
	return _u
}

// SetNillableAvgSovScore sets the "avg_sov_score" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableAvgSovScore(v *float64) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetAvgSovScore(*v)
	}
	return _u
}

// AddAvgSovScore adds value to the "avg_sov_score" field.
func (_u *CategoryAggregateUpdateOne) AddAvgSovScore(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.AddAvgSovScore(v)
	return _u
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (_u *CategoryAggregateUpdateOne) SetAvgSentiment(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.ResetAvgSentiment()
	_u.mutation.SetAvgSentiment(v)
	return _u
}

// SetNillableAvgSentiment sets the "avg_sentiment" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableAvgSentiment(v *float64) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetAvgSentiment(*v)
	}
	return _u
}

// AddAvgSentiment adds value to the "avg_sentiment" field.
func (_u *CategoryAggregateUpdateOne) AddAvgSentiment(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.AddAvgSentiment(v)
	return _u
}

// SetAvgContextCompleteness sets the "avg_context_completeness" field.
func (_u *CategoryAggregateUpdateOne) SetAvgContextCompleteness(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.ResetAvgContextCompleteness()
	_u.mutation.SetAvgContextCompleteness(v)
	return _u
}

// SetNillableAvgContextCompleteness sets the "avg_context_completeness" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableAvgContextCompleteness(v *float64) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetAvgContextCompleteness(*v)
	}
	return _u
}

// AddAvgContextCompleteness adds value to the "avg_context_completeness" field.
func (_u *CategoryAggregateUpdateOne) AddAvgContextCompleteness(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.AddAvgContextCompleteness(v)
	return _u
}

// SetMentionRate sets the "mention_rate" field.
func (_u *CategoryAggregateUpdateOne) SetMentionRate(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.ResetMentionRate()
	_u.mutation.SetMentionRate(v)
	return _u
}

// SetNillableMentionRate sets the "mention_rate" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableMentionRate(v *float64) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetMentionRate(*v)
	}
	return _u
}

// AddMentionRate adds value to the "mention_rate" field.
func (_u *CategoryAggregateUpdateOne) AddMentionRate(v float64) *CategoryAggregateUpdateOne {
	_u.mutation.AddMentionRate(v)
	return _u
}

// SetTopThemes sets the "top_themes" field.
func (_u *CategoryAggregateUpdateOne) SetTopThemes(v []string) *CategoryAggregateUpdateOne {
	_u.mutation.SetTopThemes(v)
	return _u
}

// AppendTopThemes appends value to the "top_themes" field.
func (_u *CategoryAggregateUpdateOne) AppendTopThemes(v []string) *CategoryAggregateUpdateOne {
	_u.mutation.AppendTopThemes(v)
	return _u
}

// ClearTopThemes clears the value of the "top_themes" field.
func (_u *CategoryAggregateUpdateOne) ClearTopThemes() *CategoryAggregateUpdateOne {
	_u.mutation.ClearTopThemes()
	return _u
}

// SetPriorityRecommendations sets the "priority_recommendations" field.
func (_u *CategoryAggregateUpdateOne) SetPriorityRecommendations(v []string) *CategoryAggregateUpdateOne {
	_u.mutation.SetPriorityRecommendations(v)
	return _u
}

// AppendPriorityRecommendations appends value to the "priority_recommendations" field.
func (_u *CategoryAggregateUpdateOne) AppendPriorityRecommendations(v []string) *CategoryAggregateUpdateOne {
	_u.mutation.AppendPriorityRecommendations(v)
	return _u
}

// ClearPriorityRecommendations clears the value of the "priority_recommendations" field.
func (_u *CategoryAggregateUpdateOne) ClearPriorityRecommendations() *CategoryAggregateUpdateOne {
	_u.mutation.ClearPriorityRecommendations()
	return _u
}

// SetCompetitiveSummary sets the "competitive_summary" field.
func (_u *CategoryAggregateUpdateOne) SetCompetitiveSummary(v string) *CategoryAggregateUpdateOne {
	_u.mutation.SetCompetitiveSummary(v)
	return _u
}

// SetNillableCompetitiveSummary sets the "competitive_summary" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableCompetitiveSummary(v *string) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetCompetitiveSummary(*v)
	}
	return _u
}

// ClearCompetitiveSummary clears the value of the "competitive_summary" field.
func (_u *CategoryAggregateUpdateOne) ClearCompetitiveSummary() *CategoryAggregateUpdateOne {
	_u.mutation.ClearCompetitiveSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CategoryAggregateUpdateOne) SetCreatedAt(v time.Time) *CategoryAggregateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CategoryAggregateUpdateOne) SetNillableCreatedAt(v *time.Time) *CategoryAggregateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *CategoryAggregateUpdateOne) SetAudit(v *Audit) *CategoryAggregateUpdateOne {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the CategoryAggregateMutation object of the builder.
func (_u *CategoryAggregateUpdateOne) Mutation() *CategoryAggregateMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *CategoryAggregateUpdateOne) ClearAudit() *CategoryAggregateUpdateOne {
	_u.mutation.ClearAudit()
	return _u
}

// Where appends a list predicates to the CategoryAggregateUpdate builder.
func (_u *CategoryAggregateUpdateOne) Where(ps ...predicate.CategoryAggregate) *CategoryAggregateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryAggregateUpdateOne) Select(field string, fields ...string) *CategoryAggregateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryAggregate entity.
func (_u *CategoryAggregateUpdateOne) Save(ctx context.Context) (*CategoryAggregate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryAggregateUpdateOne) SaveX(ctx context.Context) *CategoryAggregate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryAggregateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryAggregateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryAggregateUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := categoryaggregate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryAggregate.category": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryAggregate.audit"`)
	}
	return nil
}

func (_u *CategoryAggregateUpdateOne) sqlSave(ctx context.Context) (_node *CategoryAggregate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryaggregate.Table, categoryaggregate.Columns, sqlgraph.NewFieldSpec(categoryaggregate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryAggregate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categoryaggregate.FieldID)
		for _, f := range fields {
			if !categoryaggregate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categoryaggregate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categoryaggregate.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(categoryaggregate.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(categoryaggregate.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgGeoScore(); ok {
		_spec.SetField(categoryaggregate.FieldAvgGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgGeoScore(); ok {
		_spec.AddField(categoryaggregate.FieldAvgGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgSovScore(); ok {
		_spec.SetField(categoryaggregate.FieldAvgSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSovScore(); ok {
		_spec.AddField(categoryaggregate.FieldAvgSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgSentiment(); ok {
		_spec.SetField(categoryaggregate.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgSentiment(); ok {
		_spec.AddField(categoryaggregate.FieldAvgSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgContextCompleteness(); ok {
		_spec.SetField(categoryaggregate.FieldAvgContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgContextCompleteness(); ok {
		_spec.AddField(categoryaggregate.FieldAvgContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MentionRate(); ok {
		_spec.SetField(categoryaggregate.FieldMentionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMentionRate(); ok {
		_spec.AddField(categoryaggregate.FieldMentionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TopThemes(); ok {
		_spec.SetField(categoryaggregate.FieldTopThemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopThemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, categoryaggregate.FieldTopThemes, value)
		})
	}
	if _u.mutation.TopThemesCleared() {
		_spec.ClearField(categoryaggregate.FieldTopThemes, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorityRecommendations(); ok {
		_spec.SetField(categoryaggregate.FieldPriorityRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorityRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, categoryaggregate.FieldPriorityRecommendations, value)
		})
	}
	if _u.mutation.PriorityRecommendationsCleared() {
		_spec.ClearField(categoryaggregate.FieldPriorityRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompetitiveSummary(); ok {
		_spec.SetField(categoryaggregate.FieldCompetitiveSummary, field.TypeString, value)
	}
	if _u.mutation.CompetitiveSummaryCleared() {
		_spec.ClearField(categoryaggregate.FieldCompetitiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(categoryaggregate.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categoryaggregate.AuditTable,
			Columns: []string{categoryaggregate.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categoryaggregate.AuditTable,
			Columns: []string{categoryaggregate.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CategoryAggregate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
