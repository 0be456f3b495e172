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
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
)

// DashboardSnapshotCreate is the builder for creating a DashboardSnapshot entity.
type DashboardSnapshotCreate struct {
	config
	mutation *DashboardSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *DashboardSnapshotCreate) SetAuditID(v string) *DashboardSnapshotCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *DashboardSnapshotCreate) SetOverallScore(v float64) *DashboardSnapshotCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetTotalQueries sets the "total_queries" field.
func (_c *DashboardSnapshotCreate) SetTotalQueries(v int) *DashboardSnapshotCreate {
	_c.mutation.SetTotalQueries(v)
	return _c
}

// SetTotalResponses sets the "total_responses" field.
func (_c *DashboardSnapshotCreate) SetTotalResponses(v int) *DashboardSnapshotCreate {
	_c.mutation.SetTotalResponses(v)
	return _c
}

// SetPlatformBreakdown sets the "platform_breakdown" field.
func (_c *DashboardSnapshotCreate) SetPlatformBreakdown(v map[string]interface{}) *DashboardSnapshotCreate {
	_c.mutation.SetPlatformBreakdown(v)
	return _c
}

// SetTopRecommendations sets the "top_recommendations" field.
func (_c *DashboardSnapshotCreate) SetTopRecommendations(v []string) *DashboardSnapshotCreate {
	_c.mutation.SetTopRecommendations(v)
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *DashboardSnapshotCreate) SetTotalCost(v float64) *DashboardSnapshotCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *DashboardSnapshotCreate) SetNillableTotalCost(v *float64) *DashboardSnapshotCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *DashboardSnapshotCreate) SetGeneratedAt(v time.Time) *DashboardSnapshotCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *DashboardSnapshotCreate) SetNillableGeneratedAt(v *time.Time) *DashboardSnapshotCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *DashboardSnapshotCreate) SetAudit(v *Audit) *DashboardSnapshotCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the DashboardSnapshotMutation object of the builder.
func (_c *DashboardSnapshotCreate) Mutation() *DashboardSnapshotMutation {
	return _c.mutation
}

// Save creates the DashboardSnapshot in the database.
func (_c *DashboardSnapshotCreate) Save(ctx context.Context) (*DashboardSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DashboardSnapshotCreate) SaveX(ctx context.Context) *DashboardSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DashboardSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DashboardSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DashboardSnapshotCreate) defaults() {
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := dashboardsnapshot.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := dashboardsnapshot.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DashboardSnapshotCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "DashboardSnapshot.audit_id"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "DashboardSnapshot.overall_score"`)}
	}
	if _, ok := _c.mutation.TotalQueries(); !ok {
		return &ValidationError{Name: "total_queries", err: errors.New(`ent: missing required field "DashboardSnapshot.total_queries"`)}
	}
	if _, ok := _c.mutation.TotalResponses(); !ok {
		return &ValidationError{Name: "total_responses", err: errors.New(`ent: missing required field "DashboardSnapshot.total_responses"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "DashboardSnapshot.total_cost"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "DashboardSnapshot.generated_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "DashboardSnapshot.audit"`)}
	}
	return nil
}

func (_c *DashboardSnapshotCreate) sqlSave(ctx context.Context) (*DashboardSnapshot, error) {
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

func (_c *DashboardSnapshotCreate) createSpec() (*DashboardSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &DashboardSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dashboardsnapshot.Table, sqlgraph.NewFieldSpec(dashboardsnapshot.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(dashboardsnapshot.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.TotalQueries(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalQueries, field.TypeInt, value)
		_node.TotalQueries = value
	}
	if value, ok := _c.mutation.TotalResponses(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalResponses, field.TypeInt, value)
		_node.TotalResponses = value
	}
	if value, ok := _c.mutation.PlatformBreakdown(); ok {
		_spec.SetField(dashboardsnapshot.FieldPlatformBreakdown, field.TypeJSON, value)
		_node.PlatformBreakdown = value
	}
	if value, ok := _c.mutation.TopRecommendations(); ok {
		_spec.SetField(dashboardsnapshot.FieldTopRecommendations, field.TypeJSON, value)
		_node.TopRecommendations = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(dashboardsnapshot.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   dashboardsnapshot.AuditTable,
			Columns: []string{dashboardsnapshot.AuditColumn},
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
//	client.DashboardSnapshot.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DashboardSnapshotUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *DashboardSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *DashboardSnapshotUpsertOne {
	_c.conflict = opts
	return &DashboardSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DashboardSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DashboardSnapshotCreate) OnConflictColumns(columns ...string) *DashboardSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DashboardSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// DashboardSnapshotUpsertOne is the builder for "upsert"-ing
	//  one DashboardSnapshot node.
	DashboardSnapshotUpsertOne struct {
		create *DashboardSnapshotCreate
	}

	// DashboardSnapshotUpsert is the "OnConflict" setter.
	DashboardSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetAuditID sets the "audit_id" field.
func (u *DashboardSnapshotUpsert) SetAuditID(v string) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldAuditID, v)
	return u
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdateAuditID() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldAuditID)
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *DashboardSnapshotUpsert) SetOverallScore(v float64) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldOverallScore, v)
	return u
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdateOverallScore() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldOverallScore)
	return u
}

// AddOverallScore adds v to the "overall_score" field.
func (u *DashboardSnapshotUpsert) AddOverallScore(v float64) *DashboardSnapshotUpsert {
	u.Add(dashboardsnapshot.FieldOverallScore, v)
	return u
}

// SetTotalQueries sets the "total_queries" field.
func (u *DashboardSnapshotUpsert) SetTotalQueries(v int) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldTotalQueries, v)
	return u
}

// UpdateTotalQueries sets the "total_queries" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdateTotalQueries() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldTotalQueries)
	return u
}

// AddTotalQueries adds v to the "total_queries" field.
func (u *DashboardSnapshotUpsert) AddTotalQueries(v int) *DashboardSnapshotUpsert {
	u.Add(dashboardsnapshot.FieldTotalQueries, v)
	return u
}

// SetTotalResponses sets the "total_responses" field.
func (u *DashboardSnapshotUpsert) SetTotalResponses(v int) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldTotalResponses, v)
	return u
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdateTotalResponses() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldTotalResponses)
	return u
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *DashboardSnapshotUpsert) AddTotalResponses(v int) *DashboardSnapshotUpsert {
	u.Add(dashboardsnapshot.FieldTotalResponses, v)
	return u
}

// SetPlatformBreakdown sets the "platform_breakdown" field.
func (u *DashboardSnapshotUpsert) SetPlatformBreakdown(v map[string]interface{}) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldPlatformBreakdown, v)
	return u
}

// UpdatePlatformBreakdown sets the "platform_breakdown" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdatePlatformBreakdown() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldPlatformBreakdown)
	return u
}

// ClearPlatformBreakdown clears the value of the "platform_breakdown" field.
func (u *DashboardSnapshotUpsert) ClearPlatformBreakdown() *DashboardSnapshotUpsert {
	u.SetNull(dashboardsnapshot.FieldPlatformBreakdown)
	return u
}

// SetTopRecommendations sets the "top_recommendations" field.
func (u *DashboardSnapshotUpsert) SetTopRecommendations(v []string) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldTopRecommendations, v)
	return u
}

// UpdateTopRecommendations sets the "top_recommendations" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdateTopRecommendations() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldTopRecommendations)
	return u
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (u *DashboardSnapshotUpsert) ClearTopRecommendations() *DashboardSnapshotUpsert {
	u.SetNull(dashboardsnapshot.FieldTopRecommendations)
	return u
}

// SetTotalCost sets the "total_cost" field.
func (u *DashboardSnapshotUpsert) SetTotalCost(v float64) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldTotalCost, v)
	return u
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdateTotalCost() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldTotalCost)
	return u
}

// AddTotalCost adds v to the "total_cost" field.
func (u *DashboardSnapshotUpsert) AddTotalCost(v float64) *DashboardSnapshotUpsert {
	u.Add(dashboardsnapshot.FieldTotalCost, v)
	return u
}

// SetGeneratedAt sets the "generated_at" field.
func (u *DashboardSnapshotUpsert) SetGeneratedAt(v time.Time) *DashboardSnapshotUpsert {
	u.Set(dashboardsnapshot.FieldGeneratedAt, v)
	return u
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *DashboardSnapshotUpsert) UpdateGeneratedAt() *DashboardSnapshotUpsert {
	u.SetExcluded(dashboardsnapshot.FieldGeneratedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DashboardSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DashboardSnapshotUpsertOne) UpdateNewValues() *DashboardSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DashboardSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DashboardSnapshotUpsertOne) Ignore() *DashboardSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DashboardSnapshotUpsertOne) DoNothing() *DashboardSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DashboardSnapshotCreate.OnConflict
// documentation for more info.
func (u *DashboardSnapshotUpsertOne) Update(set func(*DashboardSnapshotUpsert)) *DashboardSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DashboardSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *DashboardSnapshotUpsertOne) SetAuditID(v string) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdateAuditID() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateAuditID()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *DashboardSnapshotUpsertOne) SetOverallScore(v float64) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *DashboardSnapshotUpsertOne) AddOverallScore(v float64) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdateOverallScore() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateOverallScore()
	})
}

// SetTotalQueries sets the "total_queries" field.
func (u *DashboardSnapshotUpsertOne) SetTotalQueries(v int) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTotalQueries(v)
	})
}

// AddTotalQueries adds v to the "total_queries" field.
func (u *DashboardSnapshotUpsertOne) AddTotalQueries(v int) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddTotalQueries(v)
	})
}

// UpdateTotalQueries sets the "total_queries" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdateTotalQueries() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTotalQueries()
	})
}

// SetTotalResponses sets the "total_responses" field.
func (u *DashboardSnapshotUpsertOne) SetTotalResponses(v int) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTotalResponses(v)
	})
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *DashboardSnapshotUpsertOne) AddTotalResponses(v int) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddTotalResponses(v)
	})
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdateTotalResponses() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTotalResponses()
	})
}

// SetPlatformBreakdown sets the "platform_breakdown" field.
func (u *DashboardSnapshotUpsertOne) SetPlatformBreakdown(v map[string]interface{}) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetPlatformBreakdown(v)
	})
}

// UpdatePlatformBreakdown sets the "platform_breakdown" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdatePlatformBreakdown() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdatePlatformBreakdown()
	})
}

// ClearPlatformBreakdown clears the value of the "platform_breakdown" field.
func (u *DashboardSnapshotUpsertOne) ClearPlatformBreakdown() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.ClearPlatformBreakdown()
	})
}

// SetTopRecommendations sets the "top_recommendations" field.
func (u *DashboardSnapshotUpsertOne) SetTopRecommendations(v []string) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTopRecommendations(v)
	})
}

// UpdateTopRecommendations sets the "top_recommendations" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdateTopRecommendations() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTopRecommendations()
	})
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (u *DashboardSnapshotUpsertOne) ClearTopRecommendations() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.ClearTopRecommendations()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *DashboardSnapshotUpsertOne) SetTotalCost(v float64) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *DashboardSnapshotUpsertOne) AddTotalCost(v float64) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdateTotalCost() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTotalCost()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *DashboardSnapshotUpsertOne) SetGeneratedAt(v time.Time) *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertOne) UpdateGeneratedAt() *DashboardSnapshotUpsertOne {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *DashboardSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DashboardSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DashboardSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DashboardSnapshotUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DashboardSnapshotUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DashboardSnapshotCreateBulk is the builder for creating many DashboardSnapshot entities in bulk.
type DashboardSnapshotCreateBulk struct {
	config
	err      error
	builders []*DashboardSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the DashboardSnapshot entities in the database.
func (_c *DashboardSnapshotCreateBulk) Save(ctx context.Context) ([]*DashboardSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DashboardSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DashboardSnapshotMutation)
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
func (_c *DashboardSnapshotCreateBulk) SaveX(ctx context.Context) []*DashboardSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DashboardSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DashboardSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DashboardSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DashboardSnapshotUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *DashboardSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *DashboardSnapshotUpsertBulk {
	_c.conflict = opts
	return &DashboardSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DashboardSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DashboardSnapshotCreateBulk) OnConflictColumns(columns ...string) *DashboardSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DashboardSnapshotUpsertBulk{
		create: _c,
	}
}

// DashboardSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of DashboardSnapshot nodes.
type DashboardSnapshotUpsertBulk struct {
	create *DashboardSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DashboardSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DashboardSnapshotUpsertBulk) UpdateNewValues() *DashboardSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DashboardSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DashboardSnapshotUpsertBulk) Ignore() *DashboardSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DashboardSnapshotUpsertBulk) DoNothing() *DashboardSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DashboardSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *DashboardSnapshotUpsertBulk) Update(set func(*DashboardSnapshotUpsert)) *DashboardSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DashboardSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *DashboardSnapshotUpsertBulk) SetAuditID(v string) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdateAuditID() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateAuditID()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *DashboardSnapshotUpsertBulk) SetOverallScore(v float64) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *DashboardSnapshotUpsertBulk) AddOverallScore(v float64) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdateOverallScore() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateOverallScore()
	})
}

// SetTotalQueries sets the "total_queries" field.
func (u *DashboardSnapshotUpsertBulk) SetTotalQueries(v int) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTotalQueries(v)
	})
}

// AddTotalQueries adds v to the "total_queries" field.
func (u *DashboardSnapshotUpsertBulk) AddTotalQueries(v int) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddTotalQueries(v)
	})
}

// UpdateTotalQueries sets the "total_queries" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdateTotalQueries() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTotalQueries()
	})
}

// SetTotalResponses sets the "total_responses" field.
func (u *DashboardSnapshotUpsertBulk) SetTotalResponses(v int) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTotalResponses(v)
	})
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *DashboardSnapshotUpsertBulk) AddTotalResponses(v int) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddTotalResponses(v)
	})
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdateTotalResponses() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTotalResponses()
	})
}

// SetPlatformBreakdown sets the "platform_breakdown" field.
func (u *DashboardSnapshotUpsertBulk) SetPlatformBreakdown(v map[string]interface{}) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetPlatformBreakdown(v)
	})
}

// UpdatePlatformBreakdown sets the "platform_breakdown" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdatePlatformBreakdown() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdatePlatformBreakdown()
	})
}

// ClearPlatformBreakdown clears the value of the "platform_breakdown" field.
func (u *DashboardSnapshotUpsertBulk) ClearPlatformBreakdown() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.ClearPlatformBreakdown()
	})
}

// SetTopRecommendations sets the "top_recommendations" field.
func (u *DashboardSnapshotUpsertBulk) SetTopRecommendations(v []string) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTopRecommendations(v)
	})
}

// UpdateTopRecommendations sets the "top_recommendations" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdateTopRecommendations() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTopRecommendations()
	})
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (u *DashboardSnapshotUpsertBulk) ClearTopRecommendations() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.ClearTopRecommendations()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *DashboardSnapshotUpsertBulk) SetTotalCost(v float64) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *DashboardSnapshotUpsertBulk) AddTotalCost(v float64) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdateTotalCost() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateTotalCost()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *DashboardSnapshotUpsertBulk) SetGeneratedAt(v time.Time) *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *DashboardSnapshotUpsertBulk) UpdateGeneratedAt() *DashboardSnapshotUpsertBulk {
	return u.Update(func(s *DashboardSnapshotUpsert) {
		s.UpdateGeneratedAt()
	})
}

// Exec executes the query.
func (u *DashboardSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DashboardSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DashboardSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DashboardSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
