// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
)

// AuditQueryCreate is the builder for creating a AuditQuery entity.
type AuditQueryCreate struct {
	config
	mutation *AuditQueryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditQueryCreate) SetAuditID(v string) *AuditQueryCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *AuditQueryCreate) SetText(v string) *AuditQueryCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AuditQueryCreate) SetCategory(v auditquery.Category) *AuditQueryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *AuditQueryCreate) SetIntent(v string) *AuditQueryCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *AuditQueryCreate) SetNillableIntent(v *string) *AuditQueryCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AuditQueryCreate) SetPriority(v auditquery.Priority) *AuditQueryCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AuditQueryCreate) SetNillablePriority(v *auditquery.Priority) *AuditQueryCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AuditQueryCreate) SetDifficulty(v int) *AuditQueryCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *AuditQueryCreate) SetNillableDifficulty(v *int) *AuditQueryCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetPositionInAudit sets the "position_in_audit" field.
func (_c *AuditQueryCreate) SetPositionInAudit(v int) *AuditQueryCreate {
	_c.mutation.SetPositionInAudit(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AuditQueryCreate) SetID(v string) *AuditQueryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditQueryCreate) SetAudit(v *Audit) *AuditQueryCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the AuditQueryMutation object of the builder.
func (_c *AuditQueryCreate) Mutation() *AuditQueryMutation {
	return _c.mutation
}

// Save creates the AuditQuery in the database.
func (_c *AuditQueryCreate) Save(ctx context.Context) (*AuditQuery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditQueryCreate) SaveX(ctx context.Context) *AuditQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditQueryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditQueryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditQueryCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := auditquery.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := auditquery.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditQueryCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditQuery.audit_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "AuditQuery.text"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AuditQuery.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := auditquery.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AuditQuery.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := auditquery.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AuditQuery.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AuditQuery.difficulty"`)}
	}
	if _, ok := _c.mutation.PositionInAudit(); !ok {
		return &ValidationError{Name: "position_in_audit", err: errors.New(`ent: missing required field "AuditQuery.position_in_audit"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditQuery.audit"`)}
	}
	return nil
}

func (_c *AuditQueryCreate) sqlSave(ctx context.Context) (*AuditQuery, error) {
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
			return nil, fmt.Errorf("unexpected AuditQuery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditQueryCreate) createSpec() (*AuditQuery, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditQuery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditquery.Table, sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(auditquery.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(auditquery.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(auditquery.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(auditquery.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(auditquery.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.PositionInAudit(); ok {
		_spec.SetField(auditquery.FieldPositionInAudit, field.TypeInt, value)
		_node.PositionInAudit = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditquery.AuditTable,
			Columns: []string{auditquery.AuditColumn},
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
//	client.AuditQuery.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditQueryUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditQueryCreate) OnConflict(opts ...sql.ConflictOption) *AuditQueryUpsertOne {
	_c.conflict = opts
	return &AuditQueryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditQueryCreate) OnConflictColumns(columns ...string) *AuditQueryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditQueryUpsertOne{
		create: _c,
	}
}

type (
	// AuditQueryUpsertOne is the builder for "upsert"-ing
	//  one AuditQuery node.
	AuditQueryUpsertOne struct {
		create *AuditQueryCreate
	}

	// AuditQueryUpsert is the "OnConflict" setter.
	AuditQueryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditquery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditQueryUpsertOne) UpdateNewValues() *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditquery.FieldID)
		}
		if _, exists := u.create.mutation.AuditID(); exists {
			s.SetIgnore(auditquery.FieldAuditID)
		}
		if _, exists := u.create.mutation.Text(); exists {
			s.SetIgnore(auditquery.FieldText)
		}
		if _, exists := u.create.mutation.Category(); exists {
			s.SetIgnore(auditquery.FieldCategory)
		}
		if _, exists := u.create.mutation.Intent(); exists {
			s.SetIgnore(auditquery.FieldIntent)
		}
		if _, exists := u.create.mutation.Priority(); exists {
			s.SetIgnore(auditquery.FieldPriority)
		}
		if _, exists := u.create.mutation.Difficulty(); exists {
			s.SetIgnore(auditquery.FieldDifficulty)
		}
		if _, exists := u.create.mutation.PositionInAudit(); exists {
			s.SetIgnore(auditquery.FieldPositionInAudit)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditQueryUpsertOne) Ignore() *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditQueryUpsertOne) DoNothing() *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditQueryCreate.OnConflict
// documentation for more info.
func (u *AuditQueryUpsertOne) Update(set func(*AuditQueryUpsert)) *AuditQueryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditQueryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AuditQueryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditQueryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditQueryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditQueryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditQueryUpsertOne.ID is not supported by MySQL driver. Use AuditQueryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditQueryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditQueryCreateBulk is the builder for creating many AuditQuery entities in bulk.
type AuditQueryCreateBulk struct {
	config
	err      error
	builders []*AuditQueryCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditQuery entities in the database.
func (_c *AuditQueryCreateBulk) Save(ctx context.Context) ([]*AuditQuery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditQuery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditQueryMutation)
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
func (_c *AuditQueryCreateBulk) SaveX(ctx context.Context) []*AuditQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditQueryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditQueryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditQuery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditQueryUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditQueryCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditQueryUpsertBulk {
	_c.conflict = opts
	return &AuditQueryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditQueryCreateBulk) OnConflictColumns(columns ...string) *AuditQueryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditQueryUpsertBulk{
		create: _c,
	}
}

// AuditQueryUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditQuery nodes.
type AuditQueryUpsertBulk struct {
	create *AuditQueryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditquery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditQueryUpsertBulk) UpdateNewValues() *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditquery.FieldID)
			}
			if _, exists := b.mutation.AuditID(); exists {
				s.SetIgnore(auditquery.FieldAuditID)
			}
			if _, exists := b.mutation.Text(); exists {
				s.SetIgnore(auditquery.FieldText)
			}
			if _, exists := b.mutation.Category(); exists {
				s.SetIgnore(auditquery.FieldCategory)
			}
			if _, exists := b.mutation.Intent(); exists {
				s.SetIgnore(auditquery.FieldIntent)
			}
			if _, exists := b.mutation.Priority(); exists {
				s.SetIgnore(auditquery.FieldPriority)
			}
			if _, exists := b.mutation.Difficulty(); exists {
				s.SetIgnore(auditquery.FieldDifficulty)
			}
			if _, exists := b.mutation.PositionInAudit(); exists {
				s.SetIgnore(auditquery.FieldPositionInAudit)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditQuery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditQueryUpsertBulk) Ignore() *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditQueryUpsertBulk) DoNothing() *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditQueryCreateBulk.OnConflict
// documentation for more info.
func (u *AuditQueryUpsertBulk) Update(set func(*AuditQueryUpsert)) *AuditQueryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditQueryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AuditQueryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditQueryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditQueryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditQueryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
