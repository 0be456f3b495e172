// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
)

// CategoryAggregateCreate is the builder for creating a CategoryAggregate entity.
type CategoryAggregateCreate struct {
	config
	mutation *CategoryAggregateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *CategoryAggregateCreate) SetAuditID(v string) *CategoryAggregateCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CategoryAggregateCreate) SetCategory(v categoryaggregate.Category) *CategoryAggregateCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetResponseCount sets the "response_count" field.
func (_c *CategoryAggregateCreate) SetResponseCount(v int) *CategoryAggregateCreate {
	_c.mutation.SetResponseCount(v)
	return _c
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableResponseCount(v *int) *CategoryAggregateCreate {
	if v != nil {
		_c.SetResponseCount(*v)
	}
	return _c
}

// SetAvgGeoScore sets the "avg_geo_score" field.
func (_c *CategoryAggregateCreate) SetAvgGeoScore(v float64) *CategoryAggregateCreate {
	_c.mutation.SetAvgGeoScore(v)
	return _c
}

// SetNillableAvgGeoScore sets the "avg_geo_score" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableAvgGeoScore(v *float64) *CategoryAggregateCreate {
	if v != nil {
		_c.SetAvgGeoScore(*v)
	}
	return _c
}

// SetAvgSovScore sets the "avg_sov_score" field.
func (_c *CategoryAggregateCreate) SetAvgSovScore(v float64) *CategoryAggregateCreate {
	_c.mutation.SetAvgSovScore(v)
	return _c
}

// SetNillableAvgSovScore sets the "avg_sov_score" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableAvgSovScore(v *float64) *CategoryAggregateCreate {
	if v != nil {
		_c.SetAvgSovScore(*v)
	}
	return _c
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (_c *CategoryAggregateCreate) SetAvgSentiment(v float64) *CategoryAggregateCreate {
	_c.mutation.SetAvgSentiment(v)
	return _c
}

// SetNillableAvgSentiment sets the "avg_sentiment" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableAvgSentiment(v *float64) *CategoryAggregateCreate {
	if v != nil {
		_c.SetAvgSentiment(*v)
	}
	return _c
}

// SetAvgContextCompleteness sets the "avg_context_completeness" field.
func (_c *CategoryAggregateCreate) SetAvgContextCompleteness(v float64) *CategoryAggregateCreate {
	_c.mutation.SetAvgContextCompleteness(v)
	return _c
}

// SetNillableAvgContextCompleteness sets the "avg_context_completeness" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableAvgContextCompleteness(v *float64) *CategoryAggregateCreate {
	if v != nil {
		_c.SetAvgContextCompleteness(*v)
	}
	return _c
}

// SetMentionRate sets the "mention_rate" field.
func (_c *CategoryAggregateCreate) SetMentionRate(v float64) *CategoryAggregateCreate {
	_c.mutation.SetMentionRate(v)
	return _c
}

// SetNillableMentionRate sets the "mention_rate" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableMentionRate(v *float64) *CategoryAggregateCreate {
	if v != nil {
		_c.SetMentionRate(*v)
	}
	return _c
}

// SetTopThemes sets the "top_themes" field.
func (_c *CategoryAggregateCreate) SetTopThemes(v []string) *CategoryAggregateCreate {
	_c.mutation.SetTopThemes(v)
	return _c
}

// SetPriorityRecommendations sets the "priority_recommendations" field.
func (_c *CategoryAggregateCreate) SetPriorityRecommendations(v []string) *CategoryAggregateCreate {
	_c.mutation.SetPriorityRecommendations(v)
	return _c
}

// SetCompetitiveSummary sets the "competitive_summary" field.
func (_c *CategoryAggregateCreate) SetCompetitiveSummary(v string) *CategoryAggregateCreate {
	_c.mutation.SetCompetitiveSummary(v)
	return _c
}

// SetNillableCompetitiveSummary sets the "competitive_summary" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableCompetitiveSummary(v *string) *CategoryAggregateCreate {
	if v != nil {
		_c.SetCompetitiveSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CategoryAggregateCreate) SetCreatedAt(v time.Time) *CategoryAggregateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CategoryAggregateCreate) SetNillableCreatedAt(v *time.Time) *CategoryAggregateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *CategoryAggregateCreate) SetAudit(v *Audit) *CategoryAggregateCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the CategoryAggregateMutation object of the builder.
func (_c *CategoryAggregateCreate) Mutation() *CategoryAggregateMutation {
	return _c.mutation
}

// Save creates the CategoryAggregate in the database.
func (_c *CategoryAggregateCreate) Save(ctx context.Context) (*CategoryAggregate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryAggregateCreate) SaveX(ctx context.Context) *CategoryAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryAggregateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryAggregateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryAggregateCreate) defaults() {
	if _, ok := _c.mutation.ResponseCount(); !ok {
		v := categoryaggregate.DefaultResponseCount
		_c.mutation.SetResponseCount(v)
	}
	if _, ok := _c.mutation.AvgGeoScore(); !ok {
		v := categoryaggregate.DefaultAvgGeoScore
		_c.mutation.SetAvgGeoScore(v)
	}
	if _, ok := _c.mutation.AvgSovScore(); !ok {
		v := categoryaggregate.DefaultAvgSovScore
		_c.mutation.SetAvgSovScore(v)
	}
	if _, ok := _c.mutation.AvgSentiment(); !ok {
		v := categoryaggregate.DefaultAvgSentiment
		_c.mutation.SetAvgSentiment(v)
	}
	if _, ok := _c.mutation.AvgContextCompleteness(); !ok {
		v := categoryaggregate.DefaultAvgContextCompleteness
		_c.mutation.SetAvgContextCompleteness(v)
	}
	if _, ok := _c.mutation.MentionRate(); !ok {
		v := categoryaggregate.DefaultMentionRate
		_c.mutation.SetMentionRate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := categoryaggregate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryAggregateCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "CategoryAggregate.audit_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CategoryAggregate.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := categoryaggregate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryAggregate.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseCount(); !ok {
		return &ValidationError{Name: "response_count", err: errors.New(`ent: missing required field "CategoryAggregate.response_count"`)}
	}
	if _, ok := _c.mutation.AvgGeoScore(); !ok {
		return &ValidationError{Name: "avg_geo_score", err: errors.New(`ent: missing required field "CategoryAggregate.avg_geo_score"`)}
	}
	if _, ok := _c.mutation.AvgSovScore(); !ok {
		return &ValidationError{Name: "avg_sov_score", err: errors.New(`ent: missing required field "CategoryAggregate.avg_sov_score"`)}
	}
	if _, ok := _c.mutation.AvgSentiment(); !ok {
		return &ValidationError{Name: "avg_sentiment", err: errors.New(`ent: missing required field "CategoryAggregate.avg_sentiment"`)}
	}
	if _, ok := _c.mutation.AvgContextCompleteness(); !ok {
		return &ValidationError{Name: "avg_context_completeness", err: errors.New(`ent: missing required field "CategoryAggregate.avg_context_completeness"`)}
	}
	if _, ok := _c.mutation.MentionRate(); !ok {
		return &ValidationError{Name: "mention_rate", err: errors.New(`ent: missing required field "CategoryAggregate.mention_rate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CategoryAggregate.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "CategoryAggregate.audit"`)}
	}
	return nil
}

func (_c *CategoryAggregateCreate) sqlSave(ctx context.Context) (*CategoryAggregate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CategoryAggregateCreate) createSpec() (*CategoryAggregate, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryAggregate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categoryaggregate.Table, sqlgraph.NewFieldSpec(categoryaggregate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(categoryaggregate.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ResponseCount(); ok {
		_spec.SetField(categoryaggregate.FieldResponseCount, field.TypeInt, value)
		_node.ResponseCount = value
	}
	if value, ok := _c.mutation.AvgGeoScore(); ok {
		_spec.SetField(categoryaggregate.FieldAvgGeoScore, field.TypeFloat64, value)
		_node.AvgGeoScore = value
	}
	if value, ok := _c.mutation.AvgSovScore(); ok {
		_spec.SetField(categoryaggregate.FieldAvgSovScore, field.TypeFloat64, value)
		_node.AvgSovScore = value
	}
	if value, ok := _c.mutation.AvgSentiment(); ok {
		_spec.SetField(categoryaggregate.FieldAvgSentiment, field.TypeFloat64, value)
		_node.AvgSentiment = value
	}
	if value, ok := _c.mutation.AvgContextCompleteness(); ok {
		_spec.SetField(categoryaggregate.FieldAvgContextCompleteness, field.TypeFloat64, value)
		_node.AvgContextCompleteness = value
	}
	if value, ok := _c.mutation.MentionRate(); ok {
		_spec.SetField(categoryaggregate.FieldMentionRate, field.TypeFloat64, value)
		_node.MentionRate = value
	}
	if value, ok := _c.mutation.TopThemes(); ok {
		_spec.SetField(categoryaggregate.FieldTopThemes, field.TypeJSON, value)
		_node.TopThemes = value
	}
	if value, ok := _c.mutation.PriorityRecommendations(); ok {
		_spec.SetField(categoryaggregate.FieldPriorityRecommendations, field.TypeJSON, value)
		_node.PriorityRecommendations = value
	}
	if value, ok := _c.mutation.CompetitiveSummary(); ok {
		_spec.SetField(categoryaggregate.FieldCompetitiveSummary, field.TypeString, value)
		_node.CompetitiveSummary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(categoryaggregate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
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
		_node.AuditID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CategoryAggregate.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CategoryAggregateUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *CategoryAggregateCreate) OnConflict(opts ...sql.ConflictOption) *CategoryAggregateUpsertOne {
	_c.conflict = opts
	return &CategoryAggregateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CategoryAggregate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CategoryAggregateCreate) OnConflictColumns(columns ...string) *CategoryAggregateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CategoryAggregateUpsertOne{
		create: _c,
	}
}

type (
	// CategoryAggregateUpsertOne is the builder for "upsert"-ing
	//  one CategoryAggregate node.
	CategoryAggregateUpsertOne struct {
		create *CategoryAggregateCreate
	}

	// CategoryAggregateUpsert is the "OnConflict" setter.
	CategoryAggregateUpsert struct {
		*sql.UpdateSet
	}
)

// SetAuditID sets the "audit_id" field.
func (u *CategoryAggregateUpsert) SetAuditID(v string) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldAuditID, v)
	return u
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateAuditID() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldAuditID)
	return u
}

// SetCategory sets the "category" field.
func (u *CategoryAggregateUpsert) SetCategory(v categoryaggregate.Category) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateCategory() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldCategory)
	return u
}

// SetResponseCount sets the "response_count" field.
func (u *CategoryAggregateUpsert) SetResponseCount(v int) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldResponseCount, v)
	return u
}

// UpdateResponseCount sets the "response_count" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateResponseCount() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldResponseCount)
	return u
}

// AddResponseCount adds v to the "response_count" field.
func (u *CategoryAggregateUpsert) AddResponseCount(v int) *CategoryAggregateUpsert {
	u.Add(categoryaggregate.FieldResponseCount, v)
	return u
}

// SetAvgGeoScore sets the "avg_geo_score" field.
func (u *CategoryAggregateUpsert) SetAvgGeoScore(v float64) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldAvgGeoScore, v)
	return u
}

// UpdateAvgGeoScore sets the "avg_geo_score" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateAvgGeoScore() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldAvgGeoScore)
	return u
}

// AddAvgGeoScore adds v to the "avg_geo_score" field.
func (u *CategoryAggregateUpsert) AddAvgGeoScore(v float64) *CategoryAggregateUpsert {
	u.Add(categoryaggregate.FieldAvgGeoScore, v)
	return u
}

// SetAvgSovScore sets the "avg_sov_score" field.
func (u *CategoryAggregateUpsert) SetAvgSovScore(v float64) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldAvgSovScore, v)
	return u
}

// UpdateAvgSovScore sets the "avg_sov_score" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateAvgSovScore() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldAvgSovScore)
	return u
}

// AddAvgSovScore adds v to the "avg_sov_score" field.
func (u *CategoryAggregateUpsert) AddAvgSovScore(v float64) *CategoryAggregateUpsert {
	u.Add(categoryaggregate.FieldAvgSovScore, v)
	return u
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (u *CategoryAggregateUpsert) SetAvgSentiment(v float64) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldAvgSentiment, v)
	return u
}

// UpdateAvgSentiment sets the "avg_sentiment" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateAvgSentiment() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldAvgSentiment)
	return u
}

// AddAvgSentiment adds v to the "avg_sentiment" field.
func (u *CategoryAggregateUpsert) AddAvgSentiment(v float64) *CategoryAggregateUpsert {
	u.Add(categoryaggregate.FieldAvgSentiment, v)
	return u
}

// SetAvgContextCompleteness sets the "avg_context_completeness" field.
func (u *CategoryAggregateUpsert) SetAvgContextCompleteness(v float64) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldAvgContextCompleteness, v)
	return u
}

// UpdateAvgContextCompleteness sets the "avg_context_completeness" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateAvgContextCompleteness() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldAvgContextCompleteness)
	return u
}

// AddAvgContextCompleteness adds v to the "avg_context_completeness" field.
func (u *CategoryAggregateUpsert) AddAvgContextCompleteness(v float64) *CategoryAggregateUpsert {
	u.Add(categoryaggregate.FieldAvgContextCompleteness, v)
	return u
}

// SetMentionRate sets the "mention_rate" field.
func (u *CategoryAggregateUpsert) SetMentionRate(v float64) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldMentionRate, v)
	return u
}

// UpdateMentionRate sets the "mention_rate" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateMentionRate() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldMentionRate)
	return u
}

// AddMentionRate adds v to the "mention_rate" field.
func (u *CategoryAggregateUpsert) AddMentionRate(v float64) *CategoryAggregateUpsert {
	u.Add(categoryaggregate.FieldMentionRate, v)
	return u
}

// SetTopThemes sets the "top_themes" field.
func (u *CategoryAggregateUpsert) SetTopThemes(v []string) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldTopThemes, v)
	return u
}

// UpdateTopThemes sets the "top_themes" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateTopThemes() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldTopThemes)
	return u
}

// ClearTopThemes clears the value of the "top_themes" field.
func (u *CategoryAggregateUpsert) ClearTopThemes() *CategoryAggregateUpsert {
	u.SetNull(categoryaggregate.FieldTopThemes)
	return u
}

// SetPriorityRecommendations sets the "priority_recommendations" field.
func (u *CategoryAggregateUpsert) SetPriorityRecommendations(v []string) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldPriorityRecommendations, v)
	return u
}

// UpdatePriorityRecommendations sets the "priority_recommendations" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdatePriorityRecommendations() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldPriorityRecommendations)
	return u
}

// ClearPriorityRecommendations clears the value of the "priority_recommendations" field.
func (u *CategoryAggregateUpsert) ClearPriorityRecommendations() *CategoryAggregateUpsert {
	u.SetNull(categoryaggregate.FieldPriorityRecommendations)
	return u
}

// SetCompetitiveSummary sets the "competitive_summary" field.
func (u *CategoryAggregateUpsert) SetCompetitiveSummary(v string) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldCompetitiveSummary, v)
	return u
}

// UpdateCompetitiveSummary sets the "competitive_summary" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateCompetitiveSummary() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldCompetitiveSummary)
	return u
}

// ClearCompetitiveSummary clears the value of the "competitive_summary" field.
func (u *CategoryAggregateUpsert) ClearCompetitiveSummary() *CategoryAggregateUpsert {
	u.SetNull(categoryaggregate.FieldCompetitiveSummary)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CategoryAggregateUpsert) SetCreatedAt(v time.Time) *CategoryAggregateUpsert {
	u.Set(categoryaggregate.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CategoryAggregateUpsert) UpdateCreatedAt() *CategoryAggregateUpsert {
	u.SetExcluded(categoryaggregate.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CategoryAggregate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CategoryAggregateUpsertOne) UpdateNewValues() *CategoryAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CategoryAggregate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CategoryAggregateUpsertOne) Ignore() *CategoryAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CategoryAggregateUpsertOne) DoNothing() *CategoryAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CategoryAggregateCreate.OnConflict
// documentation for more info.
func (u *CategoryAggregateUpsertOne) Update(set func(*CategoryAggregateUpsert)) *CategoryAggregateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CategoryAggregateUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *CategoryAggregateUpsertOne) SetAuditID(v string) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateAuditID() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAuditID()
	})
}

// SetCategory sets the "category" field.
func (u *CategoryAggregateUpsertOne) SetCategory(v categoryaggregate.Category) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateCategory() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateCategory()
	})
}

// SetResponseCount sets the "response_count" field.
func (u *CategoryAggregateUpsertOne) SetResponseCount(v int) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetResponseCount(v)
	})
}

// AddResponseCount adds v to the "response_count" field.
func (u *CategoryAggregateUpsertOne) AddResponseCount(v int) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddResponseCount(v)
	})
}

// UpdateResponseCount sets the "response_count" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateResponseCount() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateResponseCount()
	})
}

// SetAvgGeoScore sets the "avg_geo_score" field.
func (u *CategoryAggregateUpsertOne) SetAvgGeoScore(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgGeoScore(v)
	})
}

// AddAvgGeoScore adds v to the "avg_geo_score" field.
func (u *CategoryAggregateUpsertOne) AddAvgGeoScore(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgGeoScore(v)
	})
}

// UpdateAvgGeoScore sets the "avg_geo_score" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateAvgGeoScore() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgGeoScore()
	})
}

// SetAvgSovScore sets the "avg_sov_score" field.
func (u *CategoryAggregateUpsertOne) SetAvgSovScore(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgSovScore(v)
	})
}

// AddAvgSovScore adds v to the "avg_sov_score" field.
func (u *CategoryAggregateUpsertOne) AddAvgSovScore(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgSovScore(v)
	})
}

// UpdateAvgSovScore sets the "avg_sov_score" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateAvgSovScore() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgSovScore()
	})
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (u *CategoryAggregateUpsertOne) SetAvgSentiment(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgSentiment(v)
	})
}

// AddAvgSentiment adds v to the "avg_sentiment" field.
func (u *CategoryAggregateUpsertOne) AddAvgSentiment(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgSentiment(v)
	})
}

// UpdateAvgSentiment sets the "avg_sentiment" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateAvgSentiment() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgSentiment()
	})
}

// SetAvgContextCompleteness sets the "avg_context_completeness" field.
func (u *CategoryAggregateUpsertOne) SetAvgContextCompleteness(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgContextCompleteness(v)
	})
}

// AddAvgContextCompleteness adds v to the "avg_context_completeness" field.
func (u *CategoryAggregateUpsertOne) AddAvgContextCompleteness(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgContextCompleteness(v)
	})
}

// UpdateAvgContextCompleteness sets the "avg_context_completeness" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateAvgContextCompleteness() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgContextCompleteness()
	})
}

// SetMentionRate sets the "mention_rate" field.
func (u *CategoryAggregateUpsertOne) SetMentionRate(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetMentionRate(v)
	})
}

// AddMentionRate adds v to the "mention_rate" field.
func (u *CategoryAggregateUpsertOne) AddMentionRate(v float64) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddMentionRate(v)
	})
}

// UpdateMentionRate sets the "mention_rate" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateMentionRate() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateMentionRate()
	})
}

// SetTopThemes sets the "top_themes" field.
func (u *CategoryAggregateUpsertOne) SetTopThemes(v []string) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetTopThemes(v)
	})
}

// UpdateTopThemes sets the "top_themes" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateTopThemes() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateTopThemes()
	})
}

// ClearTopThemes clears the value of the "top_themes" field.
func (u *CategoryAggregateUpsertOne) ClearTopThemes() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.ClearTopThemes()
	})
}

// SetPriorityRecommendations sets the "priority_recommendations" field.
func (u *CategoryAggregateUpsertOne) SetPriorityRecommendations(v []string) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetPriorityRecommendations(v)
	})
}

// UpdatePriorityRecommendations sets the "priority_recommendations" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdatePriorityRecommendations() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdatePriorityRecommendations()
	})
}

// ClearPriorityRecommendations clears the value of the "priority_recommendations" field.
func (u *CategoryAggregateUpsertOne) ClearPriorityRecommendations() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.ClearPriorityRecommendations()
	})
}

// SetCompetitiveSummary sets the "competitive_summary" field.
func (u *CategoryAggregateUpsertOne) SetCompetitiveSummary(v string) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetCompetitiveSummary(v)
	})
}

// UpdateCompetitiveSummary sets the "competitive_summary" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateCompetitiveSummary() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateCompetitiveSummary()
	})
}

// ClearCompetitiveSummary clears the value of the "competitive_summary" field.
func (u *CategoryAggregateUpsertOne) ClearCompetitiveSummary() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.ClearCompetitiveSummary()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CategoryAggregateUpsertOne) SetCreatedAt(v time.Time) *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CategoryAggregateUpsertOne) UpdateCreatedAt() *CategoryAggregateUpsertOne {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CategoryAggregateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CategoryAggregateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CategoryAggregateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CategoryAggregateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CategoryAggregateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CategoryAggregateCreateBulk is the builder for creating many CategoryAggregate entities in bulk.
type CategoryAggregateCreateBulk struct {
	config
	err      error
	builders []*CategoryAggregateCreate
	conflict []sql.ConflictOption
}

// Save creates the CategoryAggregate entities in the database.
func (_c *CategoryAggregateCreateBulk) Save(ctx context.Context) ([]*CategoryAggregate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryAggregate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryAggregateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CategoryAggregateCreateBulk) SaveX(ctx context.Context) []*CategoryAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryAggregateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryAggregateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CategoryAggregate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CategoryAggregateUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *CategoryAggregateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CategoryAggregateUpsertBulk {
	_c.conflict = opts
	return &CategoryAggregateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CategoryAggregate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CategoryAggregateCreateBulk) OnConflictColumns(columns ...string) *CategoryAggregateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CategoryAggregateUpsertBulk{
		create: _c,
	}
}

// CategoryAggregateUpsertBulk is the builder for "upsert"-ing
// a bulk of CategoryAggregate nodes.
type CategoryAggregateUpsertBulk struct {
	create *CategoryAggregateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CategoryAggregate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CategoryAggregateUpsertBulk) UpdateNewValues() *CategoryAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CategoryAggregate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CategoryAggregateUpsertBulk) Ignore() *CategoryAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CategoryAggregateUpsertBulk) DoNothing() *CategoryAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CategoryAggregateCreateBulk.OnConflict
// documentation for more info.
func (u *CategoryAggregateUpsertBulk) Update(set func(*CategoryAggregateUpsert)) *CategoryAggregateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CategoryAggregateUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *CategoryAggregateUpsertBulk) SetAuditID(v string) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateAuditID() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAuditID()
	})
}

// SetCategory sets the "category" field.
func (u *CategoryAggregateUpsertBulk) SetCategory(v categoryaggregate.Category) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateCategory() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateCategory()
	})
}

// SetResponseCount sets the "response_count" field.
func (u *CategoryAggregateUpsertBulk) SetResponseCount(v int) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetResponseCount(v)
	})
}

// AddResponseCount adds v to the "response_count" field.
func (u *CategoryAggregateUpsertBulk) AddResponseCount(v int) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddResponseCount(v)
	})
}

// UpdateResponseCount sets the "response_count" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateResponseCount() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateResponseCount()
	})
}

// SetAvgGeoScore sets the "avg_geo_score" field.
func (u *CategoryAggregateUpsertBulk) SetAvgGeoScore(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgGeoScore(v)
	})
}

// AddAvgGeoScore adds v to the "avg_geo_score" field.
func (u *CategoryAggregateUpsertBulk) AddAvgGeoScore(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgGeoScore(v)
	})
}

// UpdateAvgGeoScore sets the "avg_geo_score" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateAvgGeoScore() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgGeoScore()
	})
}

// SetAvgSovScore sets the "avg_sov_score" field.
func (u *CategoryAggregateUpsertBulk) SetAvgSovScore(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgSovScore(v)
	})
}

// AddAvgSovScore adds v to the "avg_sov_score" field.
func (u *CategoryAggregateUpsertBulk) AddAvgSovScore(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgSovScore(v)
	})
}

// UpdateAvgSovScore sets the "avg_sov_score" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateAvgSovScore() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgSovScore()
	})
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (u *CategoryAggregateUpsertBulk) SetAvgSentiment(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgSentiment(v)
	})
}

// AddAvgSentiment adds v to the "avg_sentiment" field.
func (u *CategoryAggregateUpsertBulk) AddAvgSentiment(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgSentiment(v)
	})
}

// UpdateAvgSentiment sets the "avg_sentiment" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateAvgSentiment() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgSentiment()
	})
}

// SetAvgContextCompleteness sets the "avg_context_completeness" field.
func (u *CategoryAggregateUpsertBulk) SetAvgContextCompleteness(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetAvgContextCompleteness(v)
	})
}

// AddAvgContextCompleteness adds v to the "avg_context_completeness" field.
func (u *CategoryAggregateUpsertBulk) AddAvgContextCompleteness(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddAvgContextCompleteness(v)
	})
}

// UpdateAvgContextCompleteness sets the "avg_context_completeness" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateAvgContextCompleteness() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateAvgContextCompleteness()
	})
}

// SetMentionRate sets the "mention_rate" field.
func (u *CategoryAggregateUpsertBulk) SetMentionRate(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetMentionRate(v)
	})
}

// AddMentionRate adds v to the "mention_rate" field.
func (u *CategoryAggregateUpsertBulk) AddMentionRate(v float64) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.AddMentionRate(v)
	})
}

// UpdateMentionRate sets the "mention_rate" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateMentionRate() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateMentionRate()
	})
}

// SetTopThemes sets the "top_themes" field.
func (u *CategoryAggregateUpsertBulk) SetTopThemes(v []string) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetTopThemes(v)
	})
}

// UpdateTopThemes sets the "top_themes" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateTopThemes() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateTopThemes()
	})
}

// ClearTopThemes clears the value of the "top_themes" field.
func (u *CategoryAggregateUpsertBulk) ClearTopThemes() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.ClearTopThemes()
	})
}

// SetPriorityRecommendations sets the "priority_recommendations" field.
func (u *CategoryAggregateUpsertBulk) SetPriorityRecommendations(v []string) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetPriorityRecommendations(v)
	})
}

// UpdatePriorityRecommendations sets the "priority_recommendations" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdatePriorityRecommendations() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdatePriorityRecommendations()
	})
}

// ClearPriorityRecommendations clears the value of the "priority_recommendations" field.
func (u *CategoryAggregateUpsertBulk) ClearPriorityRecommendations() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.ClearPriorityRecommendations()
	})
}

// SetCompetitiveSummary sets the "competitive_summary" field.
func (u *CategoryAggregateUpsertBulk) SetCompetitiveSummary(v string) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetCompetitiveSummary(v)
	})
}

// UpdateCompetitiveSummary sets the "competitive_summary" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateCompetitiveSummary() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateCompetitiveSummary()
	})
}

// ClearCompetitiveSummary clears the value of the "competitive_summary" field.
func (u *CategoryAggregateUpsertBulk) ClearCompetitiveSummary() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.ClearCompetitiveSummary()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CategoryAggregateUpsertBulk) SetCreatedAt(v time.Time) *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CategoryAggregateUpsertBulk) UpdateCreatedAt() *CategoryAggregateUpsertBulk {
	return u.Update(func(s *CategoryAggregateUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CategoryAggregateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CategoryAggregateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CategoryAggregateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CategoryAggregateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
