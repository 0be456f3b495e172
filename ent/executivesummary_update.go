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
	"github.com/brandlens/brandlens/ent/executivesummary"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ExecutiveSummaryUpdate is the builder for updating ExecutiveSummary entities.
type ExecutiveSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutiveSummaryMutation
}

// Where appends a list predicates to the ExecutiveSummaryUpdate builder.
func (_u *ExecutiveSummaryUpdate) Where(ps ...predicate.ExecutiveSummary) *ExecutiveSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditID sets the "audit_id" field.
func (_u *ExecutiveSummaryUpdate) SetAuditID(v string) *ExecutiveSummaryUpdate {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdate) SetNillableAuditID(v *string) *ExecutiveSummaryUpdate {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *ExecutiveSummaryUpdate) SetOverallScore(v float64) *ExecutiveSummaryUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdate) SetNillableOverallScore(v *float64) *ExecutiveSummaryUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ExecutiveSummaryUpdate) AddOverallScore(v float64) *ExecutiveSummaryUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ExecutiveSummaryUpdate) SetNarrative(v string) *ExecutiveSummaryUpdate {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdate) SetNillableNarrative(v *string) *ExecutiveSummaryUpdate {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// ClearNarrative clears the value of the "narrative" field.
func (_u *ExecutiveSummaryUpdate) ClearNarrative() *ExecutiveSummaryUpdate {
	_u.mutation.ClearNarrative()
	return _u
}

// SetTopRecommendations sets the "top_recommendations" field.
func (_u *ExecutiveSummaryUpdate) SetTopRecommendations(v []string) *ExecutiveSummaryUpdate {
	_u.mutation.SetTopRecommendations(v)
	return _u
}

// AppendTopRecommendations appends value to the "top_recommendations" field.
func (_u *ExecutiveSummaryUpdate) AppendTopRecommendations(v []string) *ExecutiveSummaryUpdate {
	_u.mutation.AppendTopRecommendations(v)
	return _u
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (_u *ExecutiveSummaryUpdate) ClearTopRecommendations() *ExecutiveSummaryUpdate {
	_u.mutation.ClearTopRecommendations()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *ExecutiveSummaryUpdate) SetRisks(v []string) *ExecutiveSummaryUpdate {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *ExecutiveSummaryUpdate) AppendRisks(v []string) *ExecutiveSummaryUpdate {
	_u.mutation.AppendRisks(v)
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *ExecutiveSummaryUpdate) ClearRisks() *ExecutiveSummaryUpdate {
	_u.mutation.ClearRisks()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExecutiveSummaryUpdate) SetCreatedAt(v time.Time) *ExecutiveSummaryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdate) SetNillableCreatedAt(v *time.Time) *ExecutiveSummaryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *ExecutiveSummaryUpdate) SetAudit(v *Audit) *ExecutiveSummaryUpdate {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the ExecutiveSummaryMutation object of the builder.
func (_u *ExecutiveSummaryUpdate) Mutation() *ExecutiveSummaryMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *ExecutiveSummaryUpdate) ClearAudit() *ExecutiveSummaryUpdate {
	_u.mutation.ClearAudit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutiveSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutiveSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutiveSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutiveSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutiveSummaryUpdate) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutiveSummary.audit"`)
	}
	return nil
}

func (_u *ExecutiveSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executivesummary.Table, executivesummary.Columns, sqlgraph.NewFieldSpec(executivesummary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(executivesummary.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(executivesummary.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(executivesummary.FieldNarrative, field.TypeString, value)
	}
	if _u.mutation.NarrativeCleared() {
		_spec.ClearField(executivesummary.FieldNarrative, field.TypeString)
	}
	if value, ok := _u.mutation.TopRecommendations(); ok {
		_spec.SetField(executivesummary.FieldTopRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executivesummary.FieldTopRecommendations, value)
		})
	}
	if _u.mutation.TopRecommendationsCleared() {
		_spec.ClearField(executivesummary.FieldTopRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(executivesummary.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executivesummary.FieldRisks, value)
		})
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(executivesummary.FieldRisks, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(executivesummary.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executivesummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutiveSummaryUpdateOne is the builder for updating a single ExecutiveSummary entity.
type ExecutiveSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutiveSummaryMutation
}

// SetAuditID sets the "audit_id" field.
func (_u *ExecutiveSummaryUpdateOne) SetAuditID(v string) *ExecutiveSummaryUpdateOne {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdateOne) SetNillableAuditID(v *string) *ExecutiveSummaryUpdateOne {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *ExecutiveSummaryUpdateOne) SetOverallScore(v float64) *ExecutiveSummaryUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdateOne) SetNillableOverallScore(v *float64) *ExecutiveSummaryUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ExecutiveSummaryUpdateOne) AddOverallScore(v float64) *ExecutiveSummaryUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ExecutiveSummaryUpdateOne) SetNarrative(v string) *ExecutiveSummaryUpdateOne {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdateOne) SetNillableNarrative(v *string) *ExecutiveSummaryUpdateOne {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// ClearNarrative clears the value of the "narrative" field.
func (_u *ExecutiveSummaryUpdateOne) ClearNarrative() *ExecutiveSummaryUpdateOne {
	_u.mutation.ClearNarrative()
	return _u
}

// SetTopRecommendations sets the "top_recommendations" field.
func (_u *ExecutiveSummaryUpdateOne) SetTopRecommendations(v []string) *ExecutiveSummaryUpdateOne {
	_u.mutation.SetTopRecommendations(v)
	return _u
}

// AppendTopRecommendations appends value to the "top_recommendations" field.
func (_u *ExecutiveSummaryUpdateOne) AppendTopRecommendations(v []string) *ExecutiveSummaryUpdateOne {
	_u.mutation.AppendTopRecommendations(v)
	return _u
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (_u *ExecutiveSummaryUpdateOne) ClearTopRecommendations() *ExecutiveSummaryUpdateOne {
	_u.mutation.ClearTopRecommendations()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *ExecutiveSummaryUpdateOne) SetRisks(v []string) *ExecutiveSummaryUpdateOne {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *ExecutiveSummaryUpdateOne) AppendRisks(v []string) *ExecutiveSummaryUpdateOne {
	_u.mutation.AppendRisks(v)
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *ExecutiveSummaryUpdateOne) ClearRisks() *ExecutiveSummaryUpdateOne {
	_u.mutation.ClearRisks()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExecutiveSummaryUpdateOne) SetCreatedAt(v time.Time) *ExecutiveSummaryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExecutiveSummaryUpdateOne) SetNillableCreatedAt(v *time.Time) *ExecutiveSummaryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *ExecutiveSummaryUpdateOne) SetAudit(v *Audit) *ExecutiveSummaryUpdateOne {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the ExecutiveSummaryMutation object of the builder.
func (_u *ExecutiveSummaryUpdateOne) Mutation() *ExecutiveSummaryMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *ExecutiveSummaryUpdateOne) ClearAudit() *ExecutiveSummaryUpdateOne {
	_u.mutation.ClearAudit()
	return _u
}

// Where appends a list predicates to the ExecutiveSummaryUpdate builder.
func (_u *ExecutiveSummaryUpdateOne) Where(ps ...predicate.ExecutiveSummary) *ExecutiveSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutiveSummaryUpdateOne) Select(field string, fields ...string) *ExecutiveSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutiveSummary entity.
func (_u *ExecutiveSummaryUpdateOne) Save(ctx context.Context) (*ExecutiveSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutiveSummaryUpdateOne) SaveX(ctx context.Context) *ExecutiveSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutiveSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutiveSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutiveSummaryUpdateOne) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutiveSummary.audit"`)
	}
	return nil
}

func (_u *ExecutiveSummaryUpdateOne) sqlSave(ctx context.Context) (_node *ExecutiveSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executivesummary.Table, executivesummary.Columns, sqlgraph.NewFieldSpec(executivesummary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutiveSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executivesummary.FieldID)
		for _, f := range fields {
			if !executivesummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executivesummary.FieldID {
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
		_spec.SetField(executivesummary.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(executivesummary.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(executivesummary.FieldNarrative, field.TypeString, value)
	}
	if _u.mutation.NarrativeCleared() {
		_spec.ClearField(executivesummary.FieldNarrative, field.TypeString)
	}
	if value, ok := _u.mutation.TopRecommendations(); ok {
		_spec.SetField(executivesummary.FieldTopRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executivesummary.FieldTopRecommendations, value)
		})
	}
	if _u.mutation.TopRecommendationsCleared() {
		_spec.ClearField(executivesummary.FieldTopRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(executivesummary.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executivesummary.FieldRisks, value)
		})
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(executivesummary.FieldRisks, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(executivesummary.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExecutiveSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executivesummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
