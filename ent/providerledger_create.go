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
	"github.com/brandlens/brandlens/ent/providerledger"
)

// ProviderLedgerCreate is the builder for creating a ProviderLedger entity.
type ProviderLedgerCreate struct {
	config
	mutation *ProviderLedgerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProvider sets the "provider" field.
func (_c *ProviderLedgerCreate) SetProvider(v string) *ProviderLedgerCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetDailyCost sets the "daily_cost" field.
func (_c *ProviderLedgerCreate) SetDailyCost(v float64) *ProviderLedgerCreate {
	_c.mutation.SetDailyCost(v)
	return _c
}

// SetNillableDailyCost sets the "daily_cost" field if the given value is not nil.
func (_c *ProviderLedgerCreate) SetNillableDailyCost(v *float64) *ProviderLedgerCreate {
	if v != nil {
		_c.SetDailyCost(*v)
	}
	return _c
}

// SetMonthlyCost sets the "monthly_cost" field.
func (_c *ProviderLedgerCreate) SetMonthlyCost(v float64) *ProviderLedgerCreate {
	_c.mutation.SetMonthlyCost(v)
	return _c
}

// SetNillableMonthlyCost sets the "monthly_cost" field if the given value is not nil.
func (_c *ProviderLedgerCreate) SetNillableMonthlyCost(v *float64) *ProviderLedgerCreate {
	if v != nil {
		_c.SetMonthlyCost(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *ProviderLedgerCreate) SetTotalCost(v float64) *ProviderLedgerCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *ProviderLedgerCreate) SetNillableTotalCost(v *float64) *ProviderLedgerCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetRequestsToday sets the "requests_today" field.
func (_c *ProviderLedgerCreate) SetRequestsToday(v int) *ProviderLedgerCreate {
	_c.mutation.SetRequestsToday(v)
	return _c
}

// SetNillableRequestsToday sets the "requests_today" field if the given value is not nil.
func (_c *ProviderLedgerCreate) SetNillableRequestsToday(v *int) *ProviderLedgerCreate {
	if v != nil {
		_c.SetRequestsToday(*v)
	}
	return _c
}

// SetLastReset sets the "last_reset" field.
func (_c *ProviderLedgerCreate) SetLastReset(v time.Time) *ProviderLedgerCreate {
	_c.mutation.SetLastReset(v)
	return _c
}

// SetNillableLastReset sets the "last_reset" field if the given value is not nil.
func (_c *ProviderLedgerCreate) SetNillableLastReset(v *time.Time) *ProviderLedgerCreate {
	if v != nil {
		_c.SetLastReset(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProviderLedgerCreate) SetUpdatedAt(v time.Time) *ProviderLedgerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProviderLedgerCreate) SetNillableUpdatedAt(v *time.Time) *ProviderLedgerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProviderLedgerMutation object of the builder.
func (_c *ProviderLedgerCreate) Mutation() *ProviderLedgerMutation {
	return _c.mutation
}

// Save creates the ProviderLedger in the database.
func (_c *ProviderLedgerCreate) Save(ctx context.Context) (*ProviderLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderLedgerCreate) SaveX(ctx context.Context) *ProviderLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderLedgerCreate) defaults() {
	if _, ok := _c.mutation.DailyCost(); !ok {
		v := providerledger.DefaultDailyCost
		_c.mutation.SetDailyCost(v)
	}
	if _, ok := _c.mutation.MonthlyCost(); !ok {
		v := providerledger.DefaultMonthlyCost
		_c.mutation.SetMonthlyCost(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := providerledger.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.RequestsToday(); !ok {
		v := providerledger.DefaultRequestsToday
		_c.mutation.SetRequestsToday(v)
	}
	if _, ok := _c.mutation.LastReset(); !ok {
		v := providerledger.DefaultLastReset()
		_c.mutation.SetLastReset(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := providerledger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderLedgerCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ProviderLedger.provider"`)}
	}
	if _, ok := _c.mutation.DailyCost(); !ok {
		return &ValidationError{Name: "daily_cost", err: errors.New(`ent: missing required field "ProviderLedger.daily_cost"`)}
	}
	if _, ok := _c.mutation.MonthlyCost(); !ok {
		return &ValidationError{Name: "monthly_cost", err: errors.New(`ent: missing required field "ProviderLedger.monthly_cost"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "ProviderLedger.total_cost"`)}
	}
	if _, ok := _c.mutation.RequestsToday(); !ok {
		return &ValidationError{Name: "requests_today", err: errors.New(`ent: missing required field "ProviderLedger.requests_today"`)}
	}
	if _, ok := _c.mutation.LastReset(); !ok {
		return &ValidationError{Name: "last_reset", err: errors.New(`ent: missing required field "ProviderLedger.last_reset"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProviderLedger.updated_at"`)}
	}
	return nil
}

func (_c *ProviderLedgerCreate) sqlSave(ctx context.Context) (*ProviderLedger, error) {
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

func (_c *ProviderLedgerCreate) createSpec() (*ProviderLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providerledger.Table, sqlgraph.NewFieldSpec(providerledger.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(providerledger.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.DailyCost(); ok {
		_spec.SetField(providerledger.FieldDailyCost, field.TypeFloat64, value)
		_node.DailyCost = value
	}
	if value, ok := _c.mutation.MonthlyCost(); ok {
		_spec.SetField(providerledger.FieldMonthlyCost, field.TypeFloat64, value)
		_node.MonthlyCost = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(providerledger.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.RequestsToday(); ok {
		_spec.SetField(providerledger.FieldRequestsToday, field.TypeInt, value)
		_node.RequestsToday = value
	}
	if value, ok := _c.mutation.LastReset(); ok {
		_spec.SetField(providerledger.FieldLastReset, field.TypeTime, value)
		_node.LastReset = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(providerledger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderLedger.Create().
//		SetProvider(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderLedgerUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderLedgerCreate) OnConflict(opts ...sql.ConflictOption) *ProviderLedgerUpsertOne {
	_c.conflict = opts
	return &ProviderLedgerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderLedger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderLedgerCreate) OnConflictColumns(columns ...string) *ProviderLedgerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderLedgerUpsertOne{
		create: _c,
	}
}

type (
	// ProviderLedgerUpsertOne is the builder for "upsert"-ing
	//  one ProviderLedger node.
	ProviderLedgerUpsertOne struct {
		create *ProviderLedgerCreate
	}

	// ProviderLedgerUpsert is the "OnConflict" setter.
	ProviderLedgerUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *ProviderLedgerUpsert) SetProvider(v string) *ProviderLedgerUpsert {
	u.Set(providerledger.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ProviderLedgerUpsert) UpdateProvider() *ProviderLedgerUpsert {
	u.SetExcluded(providerledger.FieldProvider)
	return u
}

// SetDailyCost sets the "daily_cost" field.
func (u *ProviderLedgerUpsert) SetDailyCost(v float64) *ProviderLedgerUpsert {
	u.Set(providerledger.FieldDailyCost, v)
	return u
}

// UpdateDailyCost sets the "daily_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsert) UpdateDailyCost() *ProviderLedgerUpsert {
	u.SetExcluded(providerledger.FieldDailyCost)
	return u
}

// AddDailyCost adds v to the "daily_cost" field.
func (u *ProviderLedgerUpsert) AddDailyCost(v float64) *ProviderLedgerUpsert {
	u.Add(providerledger.FieldDailyCost, v)
	return u
}

// SetMonthlyCost sets the "monthly_cost" field.
func (u *ProviderLedgerUpsert) SetMonthlyCost(v float64) *ProviderLedgerUpsert {
	u.Set(providerledger.FieldMonthlyCost, v)
	return u
}

// UpdateMonthlyCost sets the "monthly_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsert) UpdateMonthlyCost() *ProviderLedgerUpsert {
	u.SetExcluded(providerledger.FieldMonthlyCost)
	return u
}

// AddMonthlyCost adds v to the "monthly_cost" field.
func (u *ProviderLedgerUpsert) AddMonthlyCost(v float64) *ProviderLedgerUpsert {
	u.Add(providerledger.FieldMonthlyCost, v)
	return u
}

// SetTotalCost sets the "total_cost" field.
func (u *ProviderLedgerUpsert) SetTotalCost(v float64) *ProviderLedgerUpsert {
	u.Set(providerledger.FieldTotalCost, v)
	return u
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsert) UpdateTotalCost() *ProviderLedgerUpsert {
	u.SetExcluded(providerledger.FieldTotalCost)
	return u
}

// AddTotalCost adds v to the "total_cost" field.
func (u *ProviderLedgerUpsert) AddTotalCost(v float64) *ProviderLedgerUpsert {
	u.Add(providerledger.FieldTotalCost, v)
	return u
}

// SetRequestsToday sets the "requests_today" field.
func (u *ProviderLedgerUpsert) SetRequestsToday(v int) *ProviderLedgerUpsert {
	u.Set(providerledger.FieldRequestsToday, v)
	return u
}

// UpdateRequestsToday sets the "requests_today" field to the value that was provided on create.
func (u *ProviderLedgerUpsert) UpdateRequestsToday() *ProviderLedgerUpsert {
	u.SetExcluded(providerledger.FieldRequestsToday)
	return u
}

// AddRequestsToday adds v to the "requests_today" field.
func (u *ProviderLedgerUpsert) AddRequestsToday(v int) *ProviderLedgerUpsert {
	u.Add(providerledger.FieldRequestsToday, v)
	return u
}

// SetLastReset sets the "last_reset" field.
func (u *ProviderLedgerUpsert) SetLastReset(v time.Time) *ProviderLedgerUpsert {
	u.Set(providerledger.FieldLastReset, v)
	return u
}

// UpdateLastReset sets the "last_reset" field to the value that was provided on create.
func (u *ProviderLedgerUpsert) UpdateLastReset() *ProviderLedgerUpsert {
	u.SetExcluded(providerledger.FieldLastReset)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderLedgerUpsert) SetUpdatedAt(v time.Time) *ProviderLedgerUpsert {
	u.Set(providerledger.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderLedgerUpsert) UpdateUpdatedAt() *ProviderLedgerUpsert {
	u.SetExcluded(providerledger.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProviderLedger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProviderLedgerUpsertOne) UpdateNewValues() *ProviderLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderLedger.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProviderLedgerUpsertOne) Ignore() *ProviderLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderLedgerUpsertOne) DoNothing() *ProviderLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderLedgerCreate.OnConflict
// documentation for more info.
func (u *ProviderLedgerUpsertOne) Update(set func(*ProviderLedgerUpsert)) *ProviderLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderLedgerUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *ProviderLedgerUpsertOne) SetProvider(v string) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ProviderLedgerUpsertOne) UpdateProvider() *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateProvider()
	})
}

// SetDailyCost sets the "daily_cost" field.
func (u *ProviderLedgerUpsertOne) SetDailyCost(v float64) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetDailyCost(v)
	})
}

// AddDailyCost adds v to the "daily_cost" field.
func (u *ProviderLedgerUpsertOne) AddDailyCost(v float64) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddDailyCost(v)
	})
}

// UpdateDailyCost sets the "daily_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsertOne) UpdateDailyCost() *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateDailyCost()
	})
}

// SetMonthlyCost sets the "monthly_cost" field.
func (u *ProviderLedgerUpsertOne) SetMonthlyCost(v float64) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetMonthlyCost(v)
	})
}

// AddMonthlyCost adds v to the "monthly_cost" field.
func (u *ProviderLedgerUpsertOne) AddMonthlyCost(v float64) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddMonthlyCost(v)
	})
}

// UpdateMonthlyCost sets the "monthly_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsertOne) UpdateMonthlyCost() *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateMonthlyCost()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *ProviderLedgerUpsertOne) SetTotalCost(v float64) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *ProviderLedgerUpsertOne) AddTotalCost(v float64) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsertOne) UpdateTotalCost() *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateTotalCost()
	})
}

// SetRequestsToday sets the "requests_today" field.
func (u *ProviderLedgerUpsertOne) SetRequestsToday(v int) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetRequestsToday(v)
	})
}

// AddRequestsToday adds v to the "requests_today" field.
func (u *ProviderLedgerUpsertOne) AddRequestsToday(v int) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddRequestsToday(v)
	})
}

// UpdateRequestsToday sets the "requests_today" field to the value that was provided on create.
func (u *ProviderLedgerUpsertOne) UpdateRequestsToday() *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateRequestsToday()
	})
}

// SetLastReset sets the "last_reset" field.
func (u *ProviderLedgerUpsertOne) SetLastReset(v time.Time) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetLastReset(v)
	})
}

// UpdateLastReset sets the "last_reset" field to the value that was provided on create.
func (u *ProviderLedgerUpsertOne) UpdateLastReset() *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateLastReset()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderLedgerUpsertOne) SetUpdatedAt(v time.Time) *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderLedgerUpsertOne) UpdateUpdatedAt() *ProviderLedgerUpsertOne {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProviderLedgerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProviderLedgerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderLedgerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProviderLedgerUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProviderLedgerUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProviderLedgerCreateBulk is the builder for creating many ProviderLedger entities in bulk.
type ProviderLedgerCreateBulk struct {
	config
	err      error
	builders []*ProviderLedgerCreate
	conflict []sql.ConflictOption
}

// Save creates the ProviderLedger entities in the database.
func (_c *ProviderLedgerCreateBulk) Save(ctx context.Context) ([]*ProviderLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderLedgerMutation)
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
func (_c *ProviderLedgerCreateBulk) SaveX(ctx context.Context) []*ProviderLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderLedger.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderLedgerUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderLedgerCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProviderLedgerUpsertBulk {
	_c.conflict = opts
	return &ProviderLedgerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderLedger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderLedgerCreateBulk) OnConflictColumns(columns ...string) *ProviderLedgerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderLedgerUpsertBulk{
		create: _c,
	}
}

// ProviderLedgerUpsertBulk is the builder for "upsert"-ing
// a bulk of ProviderLedger nodes.
type ProviderLedgerUpsertBulk struct {
	create *ProviderLedgerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProviderLedger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProviderLedgerUpsertBulk) UpdateNewValues() *ProviderLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderLedger.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProviderLedgerUpsertBulk) Ignore() *ProviderLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderLedgerUpsertBulk) DoNothing() *ProviderLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderLedgerCreateBulk.OnConflict
// documentation for more info.
func (u *ProviderLedgerUpsertBulk) Update(set func(*ProviderLedgerUpsert)) *ProviderLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderLedgerUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *ProviderLedgerUpsertBulk) SetProvider(v string) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ProviderLedgerUpsertBulk) UpdateProvider() *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateProvider()
	})
}

// SetDailyCost sets the "daily_cost" field.
func (u *ProviderLedgerUpsertBulk) SetDailyCost(v float64) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetDailyCost(v)
	})
}

// AddDailyCost adds v to the "daily_cost" field.
func (u *ProviderLedgerUpsertBulk) AddDailyCost(v float64) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddDailyCost(v)
	})
}

// UpdateDailyCost sets the "daily_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsertBulk) UpdateDailyCost() *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateDailyCost()
	})
}

// SetMonthlyCost sets the "monthly_cost" field.
func (u *ProviderLedgerUpsertBulk) SetMonthlyCost(v float64) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetMonthlyCost(v)
	})
}

// AddMonthlyCost adds v to the "monthly_cost" field.
func (u *ProviderLedgerUpsertBulk) AddMonthlyCost(v float64) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddMonthlyCost(v)
	})
}

// UpdateMonthlyCost sets the "monthly_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsertBulk) UpdateMonthlyCost() *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateMonthlyCost()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *ProviderLedgerUpsertBulk) SetTotalCost(v float64) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *ProviderLedgerUpsertBulk) AddTotalCost(v float64) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *ProviderLedgerUpsertBulk) UpdateTotalCost() *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateTotalCost()
	})
}

// SetRequestsToday sets the "requests_today" field.
func (u *ProviderLedgerUpsertBulk) SetRequestsToday(v int) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetRequestsToday(v)
	})
}

// AddRequestsToday adds v to the "requests_today" field.
func (u *ProviderLedgerUpsertBulk) AddRequestsToday(v int) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.AddRequestsToday(v)
	})
}

// UpdateRequestsToday sets the "requests_today" field to the value that was provided on create.
func (u *ProviderLedgerUpsertBulk) UpdateRequestsToday() *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateRequestsToday()
	})
}

// SetLastReset sets the "last_reset" field.
func (u *ProviderLedgerUpsertBulk) SetLastReset(v time.Time) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetLastReset(v)
	})
}

// UpdateLastReset sets the "last_reset" field to the value that was provided on create.
func (u *ProviderLedgerUpsertBulk) UpdateLastReset() *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateLastReset()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderLedgerUpsertBulk) SetUpdatedAt(v time.Time) *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderLedgerUpsertBulk) UpdateUpdatedAt() *ProviderLedgerUpsertBulk {
	return u.Update(func(s *ProviderLedgerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProviderLedgerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProviderLedgerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProviderLedgerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderLedgerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
