// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/rankingsnapshot"
)

// RankingSnapshotCreate is the builder for creating a RankingSnapshot entity.
type RankingSnapshotCreate struct {
	config
	mutation *RankingSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTargetDomain sets the "target_domain" field.
func (_c *RankingSnapshotCreate) SetTargetDomain(v string) *RankingSnapshotCreate {
	_c.mutation.SetTargetDomain(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *RankingSnapshotCreate) SetTakenAt(v time.Time) *RankingSnapshotCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *RankingSnapshotCreate) SetNillableTakenAt(v *time.Time) *RankingSnapshotCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetRankings sets the "rankings" field.
func (_c *RankingSnapshotCreate) SetRankings(v []map[string]interface{}) *RankingSnapshotCreate {
	_c.mutation.SetRankings(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RankingSnapshotCreate) SetID(v string) *RankingSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RankingSnapshotMutation object of the builder.
func (_c *RankingSnapshotCreate) Mutation() *RankingSnapshotMutation {
	return _c.mutation
}

// Save creates the RankingSnapshot in the database.
func (_c *RankingSnapshotCreate) Save(ctx context.Context) (*RankingSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RankingSnapshotCreate) SaveX(ctx context.Context) *RankingSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RankingSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RankingSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RankingSnapshotCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := rankingsnapshot.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RankingSnapshotCreate) check() error {
	if _, ok := _c.mutation.TargetDomain(); !ok {
		return &ValidationError{Name: "target_domain", err: errors.New(`ent: missing required field "RankingSnapshot.target_domain"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "RankingSnapshot.taken_at"`)}
	}
	if _, ok := _c.mutation.Rankings(); !ok {
		return &ValidationError{Name: "rankings", err: errors.New(`ent: missing required field "RankingSnapshot.rankings"`)}
	}
	return nil
}

func (_c *RankingSnapshotCreate) sqlSave(ctx context.Context) (*RankingSnapshot, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RankingSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RankingSnapshotCreate) createSpec() (*RankingSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &RankingSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rankingsnapshot.Table, sqlgraph.NewFieldSpec(rankingsnapshot.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TargetDomain(); ok {
		_spec.SetField(rankingsnapshot.FieldTargetDomain, field.TypeString, value)
		_node.TargetDomain = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(rankingsnapshot.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.Rankings(); ok {
		_spec.SetField(rankingsnapshot.FieldRankings, field.TypeJSON, value)
		_node.Rankings = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RankingSnapshot.Create().
//		SetTargetDomain(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RankingSnapshotUpsert) {
//			SetTargetDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *RankingSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *RankingSnapshotUpsertOne {
	_c.conflict = opts
	return &RankingSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RankingSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RankingSnapshotCreate) OnConflictColumns(columns ...string) *RankingSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RankingSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// RankingSnapshotUpsertOne is the builder for "upsert"-ing
	//  one RankingSnapshot node.
	RankingSnapshotUpsertOne struct {
		create *RankingSnapshotCreate
	}

	// RankingSnapshotUpsert is the "OnConflict" setter.
	RankingSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetTargetDomain sets the "target_domain" field.
func (u *RankingSnapshotUpsert) SetTargetDomain(v string) *RankingSnapshotUpsert {
	u.Set(rankingsnapshot.FieldTargetDomain, v)
	return u
}

// UpdateTargetDomain sets the "target_domain" field to the value that was provided on create.
func (u *RankingSnapshotUpsert) UpdateTargetDomain() *RankingSnapshotUpsert {
	u.SetExcluded(rankingsnapshot.FieldTargetDomain)
	return u
}

// SetRankings sets the "rankings" field.
func (u *RankingSnapshotUpsert) SetRankings(v []map[string]interface{}) *RankingSnapshotUpsert {
	u.Set(rankingsnapshot.FieldRankings, v)
	return u
}

// UpdateRankings sets the "rankings" field to the value that was provided on create.
func (u *RankingSnapshotUpsert) UpdateRankings() *RankingSnapshotUpsert {
	u.SetExcluded(rankingsnapshot.FieldRankings)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RankingSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rankingsnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RankingSnapshotUpsertOne) UpdateNewValues() *RankingSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rankingsnapshot.FieldID)
		}
		if _, exists := u.create.mutation.TakenAt(); exists {
			s.SetIgnore(rankingsnapshot.FieldTakenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RankingSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RankingSnapshotUpsertOne) Ignore() *RankingSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RankingSnapshotUpsertOne) DoNothing() *RankingSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RankingSnapshotCreate.OnConflict
// documentation for more info.
func (u *RankingSnapshotUpsertOne) Update(set func(*RankingSnapshotUpsert)) *RankingSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RankingSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetTargetDomain sets the "target_domain" field.
func (u *RankingSnapshotUpsertOne) SetTargetDomain(v string) *RankingSnapshotUpsertOne {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.SetTargetDomain(v)
	})
}

// UpdateTargetDomain sets the "target_domain" field to the value that was provided on create.
func (u *RankingSnapshotUpsertOne) UpdateTargetDomain() *RankingSnapshotUpsertOne {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.UpdateTargetDomain()
	})
}

// SetRankings sets the "rankings" field.
func (u *RankingSnapshotUpsertOne) SetRankings(v []map[string]interface{}) *RankingSnapshotUpsertOne {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.SetRankings(v)
	})
}

// UpdateRankings sets the "rankings" field to the value that was provided on create.
func (u *RankingSnapshotUpsertOne) UpdateRankings() *RankingSnapshotUpsertOne {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.UpdateRankings()
	})
}

// Exec executes the query.
func (u *RankingSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RankingSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RankingSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RankingSnapshotUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RankingSnapshotUpsertOne.ID is not supported by MySQL driver. Use RankingSnapshotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RankingSnapshotUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RankingSnapshotCreateBulk is the builder for creating many RankingSnapshot entities in bulk.
type RankingSnapshotCreateBulk struct {
	config
	err      error
	builders []*RankingSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the RankingSnapshot entities in the database.
func (_c *RankingSnapshotCreateBulk) Save(ctx context.Context) ([]*RankingSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RankingSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RankingSnapshotMutation)
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
func (_c *RankingSnapshotCreateBulk) SaveX(ctx context.Context) []*RankingSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RankingSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RankingSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RankingSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RankingSnapshotUpsert) {
//			SetTargetDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *RankingSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *RankingSnapshotUpsertBulk {
	_c.conflict = opts
	return &RankingSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RankingSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RankingSnapshotCreateBulk) OnConflictColumns(columns ...string) *RankingSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RankingSnapshotUpsertBulk{
		create: _c,
	}
}

// RankingSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of RankingSnapshot nodes.
type RankingSnapshotUpsertBulk struct {
	create *RankingSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RankingSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rankingsnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RankingSnapshotUpsertBulk) UpdateNewValues() *RankingSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rankingsnapshot.FieldID)
			}
			if _, exists := b.mutation.TakenAt(); exists {
				s.SetIgnore(rankingsnapshot.FieldTakenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RankingSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RankingSnapshotUpsertBulk) Ignore() *RankingSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RankingSnapshotUpsertBulk) DoNothing() *RankingSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RankingSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *RankingSnapshotUpsertBulk) Update(set func(*RankingSnapshotUpsert)) *RankingSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RankingSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetTargetDomain sets the "target_domain" field.
func (u *RankingSnapshotUpsertBulk) SetTargetDomain(v string) *RankingSnapshotUpsertBulk {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.SetTargetDomain(v)
	})
}

// UpdateTargetDomain sets the "target_domain" field to the value that was provided on create.
func (u *RankingSnapshotUpsertBulk) UpdateTargetDomain() *RankingSnapshotUpsertBulk {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.UpdateTargetDomain()
	})
}

// SetRankings sets the "rankings" field.
func (u *RankingSnapshotUpsertBulk) SetRankings(v []map[string]interface{}) *RankingSnapshotUpsertBulk {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.SetRankings(v)
	})
}

// UpdateRankings sets the "rankings" field to the value that was provided on create.
func (u *RankingSnapshotUpsertBulk) UpdateRankings() *RankingSnapshotUpsertBulk {
	return u.Update(func(s *RankingSnapshotUpsert) {
		s.UpdateRankings()
	})
}

// Exec executes the query.
func (u *RankingSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RankingSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RankingSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RankingSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
