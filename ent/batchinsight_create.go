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
	"github.com/brandlens/brandlens/ent/batchinsight"
)

// BatchInsightCreate is the builder for creating a BatchInsight entity.
type BatchInsightCreate struct {
	config
	mutation *BatchInsightMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *BatchInsightCreate) SetAuditID(v string) *BatchInsightCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *BatchInsightCreate) SetCategory(v batchinsight.Category) *BatchInsightCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetBatchNumber sets the "batch_number" field.
func (_c *BatchInsightCreate) SetBatchNumber(v int) *BatchInsightCreate {
	_c.mutation.SetBatchNumber(v)
	return _c
}

// SetExtractionType sets the "extraction_type" field.
func (_c *BatchInsightCreate) SetExtractionType(v batchinsight.ExtractionType) *BatchInsightCreate {
	_c.mutation.SetExtractionType(v)
	return _c
}

// SetInsights sets the "insights" field.
func (_c *BatchInsightCreate) SetInsights(v []string) *BatchInsightCreate {
	_c.mutation.SetInsights(v)
	return _c
}

// SetResponseIds sets the "response_ids" field.
func (_c *BatchInsightCreate) SetResponseIds(v []string) *BatchInsightCreate {
	_c.mutation.SetResponseIds(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BatchInsightCreate) SetUpdatedAt(v time.Time) *BatchInsightCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BatchInsightCreate) SetNillableUpdatedAt(v *time.Time) *BatchInsightCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *BatchInsightCreate) SetAudit(v *Audit) *BatchInsightCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the BatchInsightMutation object of the builder.
func (_c *BatchInsightCreate) Mutation() *BatchInsightMutation {
	return _c.mutation
}

// Save creates the BatchInsight in the database.
func (_c *BatchInsightCreate) Save(ctx context.Context) (*BatchInsight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchInsightCreate) SaveX(ctx context.Context) *BatchInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchInsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchInsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchInsightCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := batchinsight.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchInsightCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "BatchInsight.audit_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "BatchInsight.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := batchinsight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "BatchInsight.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BatchNumber(); !ok {
		return &ValidationError{Name: "batch_number", err: errors.New(`ent: missing required field "BatchInsight.batch_number"`)}
	}
	if _, ok := _c.mutation.ExtractionType(); !ok {
		return &ValidationError{Name: "extraction_type", err: errors.New(`ent: missing required field "BatchInsight.extraction_type"`)}
	}
	if v, ok := _c.mutation.ExtractionType(); ok {
		if err := batchinsight.ExtractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_type", err: fmt.Errorf(`ent: validator failed for field "BatchInsight.extraction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Insights(); !ok {
		return &ValidationError{Name: "insights", err: errors.New(`ent: missing required field "BatchInsight.insights"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BatchInsight.updated_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "BatchInsight.audit"`)}
	}
	return nil
}

func (_c *BatchInsightCreate) sqlSave(ctx context.Context) (*BatchInsight, error) {
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

func (_c *BatchInsightCreate) createSpec() (*BatchInsight, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchInsight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchinsight.Table, sqlgraph.NewFieldSpec(batchinsight.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(batchinsight.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.BatchNumber(); ok {
		_spec.SetField(batchinsight.FieldBatchNumber, field.TypeInt, value)
		_node.BatchNumber = value
	}
	if value, ok := _c.mutation.ExtractionType(); ok {
		_spec.SetField(batchinsight.FieldExtractionType, field.TypeEnum, value)
		_node.ExtractionType = value
	}
	if value, ok := _c.mutation.Insights(); ok {
		_spec.SetField(batchinsight.FieldInsights, field.TypeJSON, value)
		_node.Insights = value
	}
	if value, ok := _c.mutation.ResponseIds(); ok {
		_spec.SetField(batchinsight.FieldResponseIds, field.TypeJSON, value)
		_node.ResponseIds = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(batchinsight.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchinsight.AuditTable,
			Columns: []string{batchinsight.AuditColumn},
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
//	client.BatchInsight.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BatchInsightUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *BatchInsightCreate) OnConflict(opts ...sql.ConflictOption) *BatchInsightUpsertOne {
	_c.conflict = opts
	return &BatchInsightUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BatchInsight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BatchInsightCreate) OnConflictColumns(columns ...string) *BatchInsightUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BatchInsightUpsertOne{
		create: _c,
	}
}

type (
	// BatchInsightUpsertOne is the builder for "upsert"-ing
	//  one BatchInsight node.
	BatchInsightUpsertOne struct {
		create *BatchInsightCreate
	}

	// BatchInsightUpsert is the "OnConflict" setter.
	BatchInsightUpsert struct {
		*sql.UpdateSet
	}
)

// SetAuditID sets the "audit_id" field.
func (u *BatchInsightUpsert) SetAuditID(v string) *BatchInsightUpsert {
	u.Set(batchinsight.FieldAuditID, v)
	return u
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *BatchInsightUpsert) UpdateAuditID() *BatchInsightUpsert {
	u.SetExcluded(batchinsight.FieldAuditID)
	return u
}

// SetCategory sets the "category" field.
func (u *BatchInsightUpsert) SetCategory(v batchinsight.Category) *BatchInsightUpsert {
	u.Set(batchinsight.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *BatchInsightUpsert) UpdateCategory() *BatchInsightUpsert {
	u.SetExcluded(batchinsight.FieldCategory)
	return u
}

// SetBatchNumber sets the "batch_number" field.
func (u *BatchInsightUpsert) SetBatchNumber(v int) *BatchInsightUpsert {
	u.Set(batchinsight.FieldBatchNumber, v)
	return u
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *BatchInsightUpsert) UpdateBatchNumber() *BatchInsightUpsert {
	u.SetExcluded(batchinsight.FieldBatchNumber)
	return u
}

// AddBatchNumber adds v to the "batch_number" field.
func (u *BatchInsightUpsert) AddBatchNumber(v int) *BatchInsightUpsert {
	u.Add(batchinsight.FieldBatchNumber, v)
	return u
}

// SetExtractionType sets the "extraction_type" field.
func (u *BatchInsightUpsert) SetExtractionType(v batchinsight.ExtractionType) *BatchInsightUpsert {
	u.Set(batchinsight.FieldExtractionType, v)
	return u
}

// UpdateExtractionType sets the "extraction_type" field to the value that was provided on create.
func (u *BatchInsightUpsert) UpdateExtractionType() *BatchInsightUpsert {
	u.SetExcluded(batchinsight.FieldExtractionType)
	return u
}

// SetInsights sets the "insights" field.
func (u *BatchInsightUpsert) SetInsights(v []string) *BatchInsightUpsert {
	u.Set(batchinsight.FieldInsights, v)
	return u
}

// UpdateInsights sets the "insights" field to the value that was provided on create.
func (u *BatchInsightUpsert) UpdateInsights() *BatchInsightUpsert {
	u.SetExcluded(batchinsight.FieldInsights)
	return u
}

// SetResponseIds sets the "response_ids" field.
func (u *BatchInsightUpsert) SetResponseIds(v []string) *BatchInsightUpsert {
	u.Set(batchinsight.FieldResponseIds, v)
	return u
}

// UpdateResponseIds sets the "response_ids" field to the value that was provided on create.
func (u *BatchInsightUpsert) UpdateResponseIds() *BatchInsightUpsert {
	u.SetExcluded(batchinsight.FieldResponseIds)
	return u
}

// ClearResponseIds clears the value of the "response_ids" field.
func (u *BatchInsightUpsert) ClearResponseIds() *BatchInsightUpsert {
	u.SetNull(batchinsight.FieldResponseIds)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BatchInsightUpsert) SetUpdatedAt(v time.Time) *BatchInsightUpsert {
	u.Set(batchinsight.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BatchInsightUpsert) UpdateUpdatedAt() *BatchInsightUpsert {
	u.SetExcluded(batchinsight.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BatchInsight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BatchInsightUpsertOne) UpdateNewValues() *BatchInsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BatchInsight.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BatchInsightUpsertOne) Ignore() *BatchInsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BatchInsightUpsertOne) DoNothing() *BatchInsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BatchInsightCreate.OnConflict
// documentation for more info.
func (u *BatchInsightUpsertOne) Update(set func(*BatchInsightUpsert)) *BatchInsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BatchInsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *BatchInsightUpsertOne) SetAuditID(v string) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *BatchInsightUpsertOne) UpdateAuditID() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateAuditID()
	})
}

// SetCategory sets the "category" field.
func (u *BatchInsightUpsertOne) SetCategory(v batchinsight.Category) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *BatchInsightUpsertOne) UpdateCategory() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateCategory()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *BatchInsightUpsertOne) SetBatchNumber(v int) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetBatchNumber(v)
	})
}

// AddBatchNumber adds v to the "batch_number" field.
func (u *BatchInsightUpsertOne) AddBatchNumber(v int) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.AddBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *BatchInsightUpsertOne) UpdateBatchNumber() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateBatchNumber()
	})
}

// SetExtractionType sets the "extraction_type" field.
func (u *BatchInsightUpsertOne) SetExtractionType(v batchinsight.ExtractionType) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetExtractionType(v)
	})
}

// UpdateExtractionType sets the "extraction_type" field to the value that was provided on create.
func (u *BatchInsightUpsertOne) UpdateExtractionType() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateExtractionType()
	})
}

// SetInsights sets the "insights" field.
func (u *BatchInsightUpsertOne) SetInsights(v []string) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetInsights(v)
	})
}

// UpdateInsights sets the "insights" field to the value that was provided on create.
func (u *BatchInsightUpsertOne) UpdateInsights() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateInsights()
	})
}

// SetResponseIds sets the "response_ids" field.
func (u *BatchInsightUpsertOne) SetResponseIds(v []string) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetResponseIds(v)
	})
}

// UpdateResponseIds sets the "response_ids" field to the value that was provided on create.
func (u *BatchInsightUpsertOne) UpdateResponseIds() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateResponseIds()
	})
}

// ClearResponseIds clears the value of the "response_ids" field.
func (u *BatchInsightUpsertOne) ClearResponseIds() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.ClearResponseIds()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BatchInsightUpsertOne) SetUpdatedAt(v time.Time) *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BatchInsightUpsertOne) UpdateUpdatedAt() *BatchInsightUpsertOne {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BatchInsightUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BatchInsightCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BatchInsightUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BatchInsightUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BatchInsightUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BatchInsightCreateBulk is the builder for creating many BatchInsight entities in bulk.
type BatchInsightCreateBulk struct {
	config
	err      error
	builders []*BatchInsightCreate
	conflict []sql.ConflictOption
}

// Save creates the BatchInsight entities in the database.
func (_c *BatchInsightCreateBulk) Save(ctx context.Context) ([]*BatchInsight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchInsight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchInsightMutation)
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
func (_c *BatchInsightCreateBulk) SaveX(ctx context.Context) []*BatchInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchInsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchInsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BatchInsight.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BatchInsightUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *BatchInsightCreateBulk) OnConflict(opts ...sql.ConflictOption) *BatchInsightUpsertBulk {
	_c.conflict = opts
	return &BatchInsightUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BatchInsight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BatchInsightCreateBulk) OnConflictColumns(columns ...string) *BatchInsightUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BatchInsightUpsertBulk{
		create: _c,
	}
}

// BatchInsightUpsertBulk is the builder for "upsert"-ing
// a bulk of BatchInsight nodes.
type BatchInsightUpsertBulk struct {
	create *BatchInsightCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BatchInsight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BatchInsightUpsertBulk) UpdateNewValues() *BatchInsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BatchInsight.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BatchInsightUpsertBulk) Ignore() *BatchInsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BatchInsightUpsertBulk) DoNothing() *BatchInsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BatchInsightCreateBulk.OnConflict
// documentation for more info.
func (u *BatchInsightUpsertBulk) Update(set func(*BatchInsightUpsert)) *BatchInsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BatchInsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *BatchInsightUpsertBulk) SetAuditID(v string) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *BatchInsightUpsertBulk) UpdateAuditID() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateAuditID()
	})
}

// SetCategory sets the "category" field.
func (u *BatchInsightUpsertBulk) SetCategory(v batchinsight.Category) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *BatchInsightUpsertBulk) UpdateCategory() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateCategory()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *BatchInsightUpsertBulk) SetBatchNumber(v int) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetBatchNumber(v)
	})
}

// AddBatchNumber adds v to the "batch_number" field.
func (u *BatchInsightUpsertBulk) AddBatchNumber(v int) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.AddBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *BatchInsightUpsertBulk) UpdateBatchNumber() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateBatchNumber()
	})
}

// SetExtractionType sets the "extraction_type" field.
func (u *BatchInsightUpsertBulk) SetExtractionType(v batchinsight.ExtractionType) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetExtractionType(v)
	})
}

// UpdateExtractionType sets the "extraction_type" field to the value that was provided on create.
func (u *BatchInsightUpsertBulk) UpdateExtractionType() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateExtractionType()
	})
}

// SetInsights sets the "insights" field.
func (u *BatchInsightUpsertBulk) SetInsights(v []string) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetInsights(v)
	})
}

// UpdateInsights sets the "insights" field to the value that was provided on create.
func (u *BatchInsightUpsertBulk) UpdateInsights() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateInsights()
	})
}

// SetResponseIds sets the "response_ids" field.
func (u *BatchInsightUpsertBulk) SetResponseIds(v []string) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetResponseIds(v)
	})
}

// UpdateResponseIds sets the "response_ids" field to the value that was provided on create.
func (u *BatchInsightUpsertBulk) UpdateResponseIds() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateResponseIds()
	})
}

// ClearResponseIds clears the value of the "response_ids" field.
func (u *BatchInsightUpsertBulk) ClearResponseIds() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.ClearResponseIds()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BatchInsightUpsertBulk) SetUpdatedAt(v time.Time) *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BatchInsightUpsertBulk) UpdateUpdatedAt() *BatchInsightUpsertBulk {
	return u.Update(func(s *BatchInsightUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BatchInsightUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BatchInsightCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BatchInsightCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BatchInsightUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
