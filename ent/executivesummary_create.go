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
	"github.com/brandlens/brandlens/ent/executivesummary"
)

// ExecutiveSummaryCreate is the builder for creating a ExecutiveSummary entity.
type ExecutiveSummaryCreate struct {
	config
	mutation *ExecutiveSummaryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *ExecutiveSummaryCreate) SetAuditID(v string) *ExecutiveSummaryCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *ExecutiveSummaryCreate) SetOverallScore(v float64) *ExecutiveSummaryCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNarrative sets the "narrative" field.
func (_c *ExecutiveSummaryCreate) SetNarrative(v string) *ExecutiveSummaryCreate {
	_c.mutation.SetNarrative(v)
	return _c
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_c *ExecutiveSummaryCreate) SetNillableNarrative(v *string) *ExecutiveSummaryCreate {
	if v != nil {
		_c.SetNarrative(*v)
	}
	return _c
}

// SetTopRecommendations sets the "top_recommendations" field.
func (_c *ExecutiveSummaryCreate) SetTopRecommendations(v []string) *ExecutiveSummaryCreate {
	_c.mutation.SetTopRecommendations(v)
	return _c
}

// SetRisks sets the "risks" field.
func (_c *ExecutiveSummaryCreate) SetRisks(v []string) *ExecutiveSummaryCreate {
	_c.mutation.SetRisks(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutiveSummaryCreate) SetCreatedAt(v time.Time) *ExecutiveSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutiveSummaryCreate) SetNillableCreatedAt(v *time.Time) *ExecutiveSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *ExecutiveSummaryCreate) SetAudit(v *Audit) *ExecutiveSummaryCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the ExecutiveSummaryMutation object of the builder.
func (_c *ExecutiveSummaryCreate) Mutation() *ExecutiveSummaryMutation {
	return _c.mutation
}

// Save creates the ExecutiveSummary in the database.
func (_c *ExecutiveSummaryCreate) Save(ctx context.Context) (*ExecutiveSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutiveSummaryCreate) SaveX(ctx context.Context) *ExecutiveSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutiveSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutiveSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutiveSummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executivesummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutiveSummaryCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "ExecutiveSummary.audit_id"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "ExecutiveSummary.overall_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutiveSummary.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "ExecutiveSummary.audit"`)}
	}
	return nil
}

func (_c *ExecutiveSummaryCreate) sqlSave(ctx context.Context) (*ExecutiveSummary, error) {
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

func (_c *ExecutiveSummaryCreate) createSpec() (*ExecutiveSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutiveSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executivesummary.Table, sqlgraph.NewFieldSpec(executivesummary.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(executivesummary.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.Narrative(); ok {
		_spec.SetField(executivesummary.FieldNarrative, field.TypeString, value)
		_node.Narrative = value
	}
	if value, ok := _c.mutation.TopRecommendations(); ok {
		_spec.SetField(executivesummary.FieldTopRecommendations, field.TypeJSON, value)
		_node.TopRecommendations = value
	}
	if value, ok := _c.mutation.Risks(); ok {
		_spec.SetField(executivesummary.FieldRisks, field.TypeJSON, value)
		_node.Risks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executivesummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   executivesummary.AuditTable,
			Columns: []string{executivesummary.AuditColumn},
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
//	client.ExecutiveSummary.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutiveSummaryUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutiveSummaryCreate) OnConflict(opts ...sql.ConflictOption) *ExecutiveSummaryUpsertOne {
	_c.conflict = opts
	return &ExecutiveSummaryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutiveSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutiveSummaryCreate) OnConflictColumns(columns ...string) *ExecutiveSummaryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutiveSummaryUpsertOne{
		create: _c,
	}
}

type (
	// ExecutiveSummaryUpsertOne is the builder for "upsert"-ing
	//  one ExecutiveSummary node.
	ExecutiveSummaryUpsertOne struct {
		create *ExecutiveSummaryCreate
	}

	// ExecutiveSummaryUpsert is the "OnConflict" setter.
	ExecutiveSummaryUpsert struct {
		*sql.UpdateSet
	}
)

// SetAuditID sets the "audit_id" field.
func (u *ExecutiveSummaryUpsert) SetAuditID(v string) *ExecutiveSummaryUpsert {
	u.Set(executivesummary.FieldAuditID, v)
	return u
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsert) UpdateAuditID() *ExecutiveSummaryUpsert {
	u.SetExcluded(executivesummary.FieldAuditID)
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *ExecutiveSummaryUpsert) SetOverallScore(v float64) *ExecutiveSummaryUpsert {
	u.Set(executivesummary.FieldOverallScore, v)
	return u
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsert) UpdateOverallScore() *ExecutiveSummaryUpsert {
	u.SetExcluded(executivesummary.FieldOverallScore)
	return u
}

// AddOverallScore adds v to the "overall_score" field.
func (u *ExecutiveSummaryUpsert) AddOverallScore(v float64) *ExecutiveSummaryUpsert {
	u.Add(executivesummary.FieldOverallScore, v)
	return u
}

// SetNarrative sets the "narrative" field.
func (u *ExecutiveSummaryUpsert) SetNarrative(v string) *ExecutiveSummaryUpsert {
	u.Set(executivesummary.FieldNarrative, v)
	return u
}

// UpdateNarrative sets the "narrative" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsert) UpdateNarrative() *ExecutiveSummaryUpsert {
	u.SetExcluded(executivesummary.FieldNarrative)
	return u
}

// ClearNarrative clears the value of the "narrative" field.
func (u *ExecutiveSummaryUpsert) ClearNarrative() *ExecutiveSummaryUpsert {
	u.SetNull(executivesummary.FieldNarrative)
	return u
}

// SetTopRecommendations sets the "top_recommendations" field.
func (u *ExecutiveSummaryUpsert) SetTopRecommendations(v []string) *ExecutiveSummaryUpsert {
	u.Set(executivesummary.FieldTopRecommendations, v)
	return u
}

// UpdateTopRecommendations sets the "top_recommendations" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsert) UpdateTopRecommendations() *ExecutiveSummaryUpsert {
	u.SetExcluded(executivesummary.FieldTopRecommendations)
	return u
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (u *ExecutiveSummaryUpsert) ClearTopRecommendations() *ExecutiveSummaryUpsert {
	u.SetNull(executivesummary.FieldTopRecommendations)
	return u
}

// SetRisks sets the "risks" field.
func (u *ExecutiveSummaryUpsert) SetRisks(v []string) *ExecutiveSummaryUpsert {
	u.Set(executivesummary.FieldRisks, v)
	return u
}

// UpdateRisks sets the "risks" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsert) UpdateRisks() *ExecutiveSummaryUpsert {
	u.SetExcluded(executivesummary.FieldRisks)
	return u
}

// ClearRisks clears the value of the "risks" field.
func (u *ExecutiveSummaryUpsert) ClearRisks() *ExecutiveSummaryUpsert {
	u.SetNull(executivesummary.FieldRisks)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ExecutiveSummaryUpsert) SetCreatedAt(v time.Time) *ExecutiveSummaryUpsert {
	u.Set(executivesummary.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsert) UpdateCreatedAt() *ExecutiveSummaryUpsert {
	u.SetExcluded(executivesummary.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExecutiveSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutiveSummaryUpsertOne) UpdateNewValues() *ExecutiveSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutiveSummary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutiveSummaryUpsertOne) Ignore() *ExecutiveSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutiveSummaryUpsertOne) DoNothing() *ExecutiveSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutiveSummaryCreate.OnConflict
// documentation for more info.
func (u *ExecutiveSummaryUpsertOne) Update(set func(*ExecutiveSummaryUpsert)) *ExecutiveSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutiveSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *ExecutiveSummaryUpsertOne) SetAuditID(v string) *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertOne) UpdateAuditID() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateAuditID()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *ExecutiveSummaryUpsertOne) SetOverallScore(v float64) *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *ExecutiveSummaryUpsertOne) AddOverallScore(v float64) *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertOne) UpdateOverallScore() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateOverallScore()
	})
}

// SetNarrative sets the "narrative" field.
func (u *ExecutiveSummaryUpsertOne) SetNarrative(v string) *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetNarrative(v)
	})
}

// UpdateNarrative sets the "narrative" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertOne) UpdateNarrative() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateNarrative()
	})
}

// ClearNarrative clears the value of the "narrative" field.
func (u *ExecutiveSummaryUpsertOne) ClearNarrative() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.ClearNarrative()
	})
}

// SetTopRecommendations sets the "top_recommendations" field.
func (u *ExecutiveSummaryUpsertOne) SetTopRecommendations(v []string) *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetTopRecommendations(v)
	})
}

// UpdateTopRecommendations sets the "top_recommendations" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertOne) UpdateTopRecommendations() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateTopRecommendations()
	})
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (u *ExecutiveSummaryUpsertOne) ClearTopRecommendations() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.ClearTopRecommendations()
	})
}

// SetRisks sets the "risks" field.
func (u *ExecutiveSummaryUpsertOne) SetRisks(v []string) *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetRisks(v)
	})
}

// UpdateRisks sets the "risks" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertOne) UpdateRisks() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateRisks()
	})
}

// ClearRisks clears the value of the "risks" field.
func (u *ExecutiveSummaryUpsertOne) ClearRisks() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.ClearRisks()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExecutiveSummaryUpsertOne) SetCreatedAt(v time.Time) *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertOne) UpdateCreatedAt() *ExecutiveSummaryUpsertOne {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ExecutiveSummaryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutiveSummaryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutiveSummaryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutiveSummaryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutiveSummaryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutiveSummaryCreateBulk is the builder for creating many ExecutiveSummary entities in bulk.
type ExecutiveSummaryCreateBulk struct {
	config
	err      error
	builders []*ExecutiveSummaryCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutiveSummary entities in the database.
func (_c *ExecutiveSummaryCreateBulk) Save(ctx context.Context) ([]*ExecutiveSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutiveSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutiveSummaryMutation)
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
func (_c *ExecutiveSummaryCreateBulk) SaveX(ctx context.Context) []*ExecutiveSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutiveSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutiveSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutiveSummary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutiveSummaryUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutiveSummaryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutiveSummaryUpsertBulk {
	_c.conflict = opts
	return &ExecutiveSummaryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutiveSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutiveSummaryCreateBulk) OnConflictColumns(columns ...string) *ExecutiveSummaryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutiveSummaryUpsertBulk{
		create: _c,
	}
}

// ExecutiveSummaryUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutiveSummary nodes.
type ExecutiveSummaryUpsertBulk struct {
	create *ExecutiveSummaryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutiveSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExecutiveSummaryUpsertBulk) UpdateNewValues() *ExecutiveSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutiveSummary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutiveSummaryUpsertBulk) Ignore() *ExecutiveSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutiveSummaryUpsertBulk) DoNothing() *ExecutiveSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutiveSummaryCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutiveSummaryUpsertBulk) Update(set func(*ExecutiveSummaryUpsert)) *ExecutiveSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutiveSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *ExecutiveSummaryUpsertBulk) SetAuditID(v string) *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertBulk) UpdateAuditID() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateAuditID()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *ExecutiveSummaryUpsertBulk) SetOverallScore(v float64) *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *ExecutiveSummaryUpsertBulk) AddOverallScore(v float64) *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertBulk) UpdateOverallScore() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateOverallScore()
	})
}

// SetNarrative sets the "narrative" field.
func (u *ExecutiveSummaryUpsertBulk) SetNarrative(v string) *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetNarrative(v)
	})
}

// UpdateNarrative sets the "narrative" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertBulk) UpdateNarrative() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateNarrative()
	})
}

// ClearNarrative clears the value of the "narrative" field.
func (u *ExecutiveSummaryUpsertBulk) ClearNarrative() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.ClearNarrative()
	})
}

// SetTopRecommendations sets the "top_recommendations" field.
func (u *ExecutiveSummaryUpsertBulk) SetTopRecommendations(v []string) *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetTopRecommendations(v)
	})
}

// UpdateTopRecommendations sets the "top_recommendations" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertBulk) UpdateTopRecommendations() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateTopRecommendations()
	})
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (u *ExecutiveSummaryUpsertBulk) ClearTopRecommendations() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.ClearTopRecommendations()
	})
}

// SetRisks sets the "risks" field.
func (u *ExecutiveSummaryUpsertBulk) SetRisks(v []string) *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetRisks(v)
	})
}

// UpdateRisks sets the "risks" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertBulk) UpdateRisks() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateRisks()
	})
}

// ClearRisks clears the value of the "risks" field.
func (u *ExecutiveSummaryUpsertBulk) ClearRisks() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.ClearRisks()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExecutiveSummaryUpsertBulk) SetCreatedAt(v time.Time) *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExecutiveSummaryUpsertBulk) UpdateCreatedAt() *ExecutiveSummaryUpsertBulk {
	return u.Update(func(s *ExecutiveSummaryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ExecutiveSummaryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutiveSummaryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutiveSummaryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutiveSummaryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
