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
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/predicate"
)

// DashboardSnapshotUpdate is the builder for updating DashboardSnapshot entities.
type DashboardSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *DashboardSnapshotMutation
}

// Where appends a list predicates to the DashboardSnapshotUpdate builder.
func (_u *DashboardSnapshotUpdate) Where(ps ...predicate.DashboardSnapshot) *DashboardSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditID sets the "audit_id" field.
func (_u *DashboardSnapshotUpdate) SetAuditID(v string) *DashboardSnapshotUpdate {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *DashboardSnapshotUpdate) SetNillableAuditID(v *string) *DashboardSnapshotUpdate {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *DashboardSnapshotUpdate) SetOverallScore(v float64) *DashboardSnapshotUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *DashboardSnapshotUpdate) SetNillableOverallScore(v *float64) *DashboardSnapshotUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *DashboardSnapshotUpdate) AddOverallScore(v float64) *DashboardSnapshotUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTotalQueries sets the "total_queries" field.
func (_u *DashboardSnapshotUpdate) SetTotalQueries(v int) *DashboardSnapshotUpdate {
	_u.mutation.ResetTotalQueries()
	_u.mutation.SetTotalQueries(v)
	return _u
}

// SetNillableTotalQueries sets the "total_queries" field if the given value is not nil.
func (_u *DashboardSnapshotUpdate) SetNillableTotalQueries(v *int) *DashboardSnapshotUpdate {
	if v != nil {
		_u.SetTotalQueries(*v)
	}
	return _u
}

// AddTotalQueries adds value to the "total_queries" field.
func (_u *DashboardSnapshotUpdate) AddTotalQueries(v int) *DashboardSnapshotUpdate {
	_u.mutation.AddTotalQueries(v)
	return _u
}

// SetTotalResponses sets the "total_responses" field.
func (_u *DashboardSnapshotUpdate) SetTotalResponses(v int) *DashboardSnapshotUpdate {
	_u.mutation.ResetTotalResponses()
	_u.mutation.SetTotalResponses(v)
	return _u
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_u *DashboardSnapshotUpdate) SetNillableTotalResponses(v *int) *DashboardSnapshotUpdate {
	if v != nil {
		_u.SetTotalResponses(*v)
	}
	return _u
}

// AddTotalResponses adds value to the "total_responses" field.
func (_u *DashboardSnapshotUpdate) AddTotalResponses(v int) *DashboardSnapshotUpdate {
	_u.mutation.AddTotalResponses(v)
	return _u
}

// SetPlatformBreakdown sets the "platform_breakdown" field.
func (_u *DashboardSnapshotUpdate) SetPlatformBreakdown(v map[string]interface{}) *DashboardSnapshotUpdate {
	_u.mutation.SetPlatformBreakdown(v)
	return _u
}

// ClearPlatformBreakdown clears the value of the "platform_breakdown" field.
func (_u *DashboardSnapshotUpdate) ClearPlatformBreakdown() *DashboardSnapshotUpdate {
	_u.mutation.ClearPlatformBreakdown()
	return _u
}

// SetTopRecommendations sets the "top_recommendations" field.
func (_u *DashboardSnapshotUpdate) SetTopRecommendations(v []string) *DashboardSnapshotUpdate {
	_u.mutation.SetTopRecommendations(v)
	return _u
}

// AppendTopRecommendations appends value to the "top_recommendations" field.
func (_u *DashboardSnapshotUpdate) AppendTopRecommendations(v []string) *DashboardSnapshotUpdate {
	_u.mutation.AppendTopRecommendations(v)
	return _u
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (_u *DashboardSnapshotUpdate) ClearTopRecommendations() *DashboardSnapshotUpdate {
	_u.mutation.ClearTopRecommendations()
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *DashboardSnapshotUpdate) SetTotalCost(v float64) *DashboardSnapshotUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *DashboardSnapshotUpdate) SetNillableTotalCost(v *float64) *DashboardSnapshotUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *DashboardSnapshotUpdate) AddTotalCost(v float64) *DashboardSnapshotUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *DashboardSnapshotUpdate) SetGeneratedAt(v time.Time) *DashboardSnapshotUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *DashboardSnapshotUpdate) SetAudit(v *Audit) *DashboardSnapshotUpdate {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the DashboardSnapshotMutation object of the builder.
func (_u *DashboardSnapshotUpdate) Mutation() *DashboardSnapshotMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *DashboardSnapshotUpdate) ClearAudit() *DashboardSnapshotUpdate {
	_u.mutation.ClearAudit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DashboardSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DashboardSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DashboardSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DashboardSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DashboardSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := dashboardsnapshot.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DashboardSnapshotUpdate) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DashboardSnapshot.audit"`)
	}
	return nil
}

func (_u *DashboardSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dashboardsnapshot.Table, dashboardsnapshot.Columns, sqlgraph.NewFieldSpec(dashboardsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(dashboardsnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(dashboardsnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalQueries(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQueries(); ok {
		_spec.AddField(dashboardsnapshot.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalResponses(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalResponses(); ok {
		_spec.AddField(dashboardsnapshot.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlatformBreakdown(); ok {
		_spec.SetField(dashboardsnapshot.FieldPlatformBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.PlatformBreakdownCleared() {
		_spec.ClearField(dashboardsnapshot.FieldPlatformBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopRecommendations(); ok {
		_spec.SetField(dashboardsnapshot.FieldTopRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dashboardsnapshot.FieldTopRecommendations, value)
		})
	}
	if _u.mutation.TopRecommendationsCleared() {
		_spec.ClearField(dashboardsnapshot.FieldTopRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(dashboardsnapshot.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(dashboardsnapshot.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dashboardsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DashboardSnapshotUpdateOne is the builder for updating a single DashboardSnapshot entity.
type DashboardSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DashboardSnapshotMutation
}

// SetAuditID sets the "audit_id" field.
func (_u *DashboardSnapshotUpdateOne) SetAuditID(v string) *DashboardSnapshotUpdateOne {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *DashboardSnapshotUpdateOne) SetNillableAuditID(v *string) *DashboardSnapshotUpdateOne {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *DashboardSnapshotUpdateOne) SetOverallScore(v float64) *DashboardSnapshotUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *DashboardSnapshotUpdateOne) SetNillableOverallScore(v *float64) *DashboardSnapshotUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *DashboardSnapshotUpdateOne) AddOverallScore(v float64) *DashboardSnapshotUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTotalQueries sets the "total_queries" field.
func (_u *DashboardSnapshotUpdateOne) SetTotalQueries(v int) *DashboardSnapshotUpdateOne {
	_u.mutation.ResetTotalQueries()
	_u.mutation.SetTotalQueries(v)
	return _u
}

// SetNillableTotalQueries sets the "total_queries" field if the given value is not nil.
func (_u *DashboardSnapshotUpdateOne) SetNillableTotalQueries(v *int) *DashboardSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalQueries(*v)
	}
	return _u
}

// AddTotalQueries adds value to the "total_queries" field.
func (_u *DashboardSnapshotUpdateOne) AddTotalQueries(v int) *DashboardSnapshotUpdateOne {
	_u.mutation.AddTotalQueries(v)
	return _u
}

// SetTotalResponses sets the "total_responses" field.
func (_u *DashboardSnapshotUpdateOne) SetTotalResponses(v int) *DashboardSnapshotUpdateOne {
	_u.mutation.ResetTotalResponses()
	_u.mutation.SetTotalResponses(v)
	return _u
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_u *DashboardSnapshotUpdateOne) SetNillableTotalResponses(v *int) *DashboardSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalResponses(*v)
	}
	return _u
}

// AddTotalResponses adds value to the "total_responses" field.
func (_u *DashboardSnapshotUpdateOne) AddTotalResponses(v int) *DashboardSnapshotUpdateOne {
	_u.mutation.AddTotalResponses(v)
	return _u
}

// SetPlatformBreakdown sets the "platform_breakdown" field.
func (_u *DashboardSnapshotUpdateOne) SetPlatformBreakdown(v map[string]interface{}) *DashboardSnapshotUpdateOne {
	_u.mutation.SetPlatformBreakdown(v)
	return _u
}

// ClearPlatformBreakdown clears the value of the "platform_breakdown" field.
func (_u *DashboardSnapshotUpdateOne) ClearPlatformBreakdown() *DashboardSnapshotUpdateOne {
	_u.mutation.ClearPlatformBreakdown()
	return _u
}

// SetTopRecommendations sets the "top_recommendations" field.
func (_u *DashboardSnapshotUpdateOne) SetTopRecommendations(v []string) *DashboardSnapshotUpdateOne {
	_u.mutation.SetTopRecommendations(v)
	return _u
}

// AppendTopRecommendations appends value to the "top_recommendations" field.
func (_u *DashboardSnapshotUpdateOne) AppendTopRecommendations(v []string) *DashboardSnapshotUpdateOne {
	_u.mutation.AppendTopRecommendations(v)
	return _u
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (_u *DashboardSnapshotUpdateOne) ClearTopRecommendations() *DashboardSnapshotUpdateOne {
	_u.mutation.ClearTopRecommendations()
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *DashboardSnapshotUpdateOne) SetTotalCost(v float64) *DashboardSnapshotUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *DashboardSnapshotUpdateOne) SetNillableTotalCost(v *float64) *DashboardSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *DashboardSnapshotUpdateOne) AddTotalCost(v float64) *DashboardSnapshotUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *DashboardSnapshotUpdateOne) SetGeneratedAt(v time.Time) *DashboardSnapshotUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *DashboardSnapshotUpdateOne) SetAudit(v *Audit) *DashboardSnapshotUpdateOne {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the DashboardSnapshotMutation object of the builder.
func (_u *DashboardSnapshotUpdateOne) Mutation() *DashboardSnapshotMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *DashboardSnapshotUpdateOne) ClearAudit() *DashboardSnapshotUpdateOne {
	_u.mutation.ClearAudit()
	return _u
}

// Where appends a list predicates to the DashboardSnapshotUpdate builder.
func (_u *DashboardSnapshotUpdateOne) Where(ps ...predicate.DashboardSnapshot) *DashboardSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DashboardSnapshotUpdateOne) Select(field string, fields ...string) *DashboardSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DashboardSnapshot entity.
func (_u *DashboardSnapshotUpdateOne) Save(ctx context.Context) (*DashboardSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DashboardSnapshotUpdateOne) SaveX(ctx context.Context) *DashboardSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DashboardSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DashboardSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DashboardSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := dashboardsnapshot.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DashboardSnapshotUpdateOne) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DashboardSnapshot.audit"`)
	}
	return nil
}

func (_u *DashboardSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *DashboardSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dashboardsnapshot.Table, dashboardsnapshot.Columns, sqlgraph.NewFieldSpec(dashboardsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DashboardSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dashboardsnapshot.FieldID)
		for _, f := range fields {
			if !dashboardsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dashboardsnapshot.FieldID {
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
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(dashboardsnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(dashboardsnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalQueries(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQueries(); ok {
		_spec.AddField(dashboardsnapshot.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalResponses(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalResponses(); ok {
		_spec.AddField(dashboardsnapshot.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlatformBreakdown(); ok {
		_spec.SetField(dashboardsnapshot.FieldPlatformBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.PlatformBreakdownCleared() {
		_spec.ClearField(dashboardsnapshot.FieldPlatformBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopRecommendations(); ok {
		_spec.SetField(dashboardsnapshot.FieldTopRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dashboardsnapshot.FieldTopRecommendations, value)
		})
	}
	if _u.mutation.TopRecommendationsCleared() {
		_spec.ClearField(dashboardsnapshot.FieldTopRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(dashboardsnapshot.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(dashboardsnapshot.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(dashboardsnapshot.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DashboardSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dashboardsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
