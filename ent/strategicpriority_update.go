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
	"github.com/brandlens/brandlens/ent/predicate"
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// StrategicPriorityUpdate is the builder for updating StrategicPriority entities.
type StrategicPriorityUpdate struct {
	config
	hooks    []Hook
	mutation *StrategicPriorityMutation
}

// Where appends a list predicates to the StrategicPriorityUpdate builder.
func (_u *StrategicPriorityUpdate) Where(ps ...predicate.StrategicPriority) *StrategicPriorityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditID sets the "audit_id" field.
func (_u *StrategicPriorityUpdate) SetAuditID(v string) *StrategicPriorityUpdate {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableAuditID(v *string) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *StrategicPriorityUpdate) SetRank(v int) *StrategicPriorityUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableRank(v *int) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *StrategicPriorityUpdate) AddRank(v int) *StrategicPriorityUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StrategicPriorityUpdate) SetTitle(v string) *StrategicPriorityUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableTitle(v *string) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *StrategicPriorityUpdate) SetRationale(v string) *StrategicPriorityUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableRationale(v *string) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *StrategicPriorityUpdate) ClearRationale() *StrategicPriorityUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetEvidenceRefs sets the "evidence_refs" field.
func (_u *StrategicPriorityUpdate) SetEvidenceRefs(v []string) *StrategicPriorityUpdate {
	_u.mutation.SetEvidenceRefs(v)
	return _u
}

// AppendEvidenceRefs appends value to the "evidence_refs" field.
func (_u *StrategicPriorityUpdate) AppendEvidenceRefs(v []string) *StrategicPriorityUpdate {
	_u.mutation.AppendEvidenceRefs(v)
	return _u
}

// ClearEvidenceRefs clears the value of the "evidence_refs" field.
func (_u *StrategicPriorityUpdate) ClearEvidenceRefs() *StrategicPriorityUpdate {
	_u.mutation.ClearEvidenceRefs()
	return _u
}

// SetImpactScore sets the "impact_score" field.
func (_u *StrategicPriorityUpdate) SetImpactScore(v float64) *StrategicPriorityUpdate {
	_u.mutation.ResetImpactScore()
	_u.mutation.SetImpactScore(v)
	return _u
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableImpactScore(v *float64) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetImpactScore(*v)
	}
	return _u
}

// AddImpactScore adds value to the "impact_score" field.
func (_u *StrategicPriorityUpdate) AddImpactScore(v float64) *StrategicPriorityUpdate {
	_u.mutation.AddImpactScore(v)
	return _u
}

// SetSupportCount sets the "support_count" field.
func (_u *StrategicPriorityUpdate) SetSupportCount(v int) *StrategicPriorityUpdate {
	_u.mutation.ResetSupportCount()
	_u.mutation.SetSupportCount(v)
	return _u
}

// SetNillableSupportCount sets the "support_count" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableSupportCount(v *int) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetSupportCount(*v)
	}
	return _u
}

// AddSupportCount adds value to the "support_count" field.
func (_u *StrategicPriorityUpdate) AddSupportCount(v int) *StrategicPriorityUpdate {
	_u.mutation.AddSupportCount(v)
	return _u
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (_u *StrategicPriorityUpdate) SetEstimatedImpact(v strategicpriority.EstimatedImpact) *StrategicPriorityUpdate {
	_u.mutation.SetEstimatedImpact(v)
	return _u
}

// SetNillableEstimatedImpact sets the "estimated_impact" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableEstimatedImpact(v *strategicpriority.EstimatedImpact) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetEstimatedImpact(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StrategicPriorityUpdate) SetCreatedAt(v time.Time) *StrategicPriorityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StrategicPriorityUpdate) SetNillableCreatedAt(v *time.Time) *StrategicPriorityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *StrategicPriorityUpdate) SetAudit(v *Audit) *StrategicPriorityUpdate {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the StrategicPriorityMutation object of the builder.
func (_u *StrategicPriorityUpdate) Mutation() *StrategicPriorityMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *StrategicPriorityUpdate) ClearAudit() *StrategicPriorityUpdate {
	_u.mutation.ClearAudit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StrategicPriorityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrategicPriorityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StrategicPriorityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrategicPriorityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StrategicPriorityUpdate) check() error {
	if v, ok := _u.mutation.EstimatedImpact(); ok {
		if err := strategicpriority.EstimatedImpactValidator(v); err != nil {
			return &ValidationError{Name: "estimated_impact", err: fmt.Errorf(`ent: validator failed for field "StrategicPriority.estimated_impact": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StrategicPriority.audit"`)
	}
	return nil
}

func (_u *StrategicPriorityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(strategicpriority.Table, strategicpriority.Columns, sqlgraph.NewFieldSpec(strategicpriority.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(strategicpriority.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(strategicpriority.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(strategicpriority.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(strategicpriority.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(strategicpriority.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceRefs(); ok {
		_spec.SetField(strategicpriority.FieldEvidenceRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidenceRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, strategicpriority.FieldEvidenceRefs, value)
		})
	}
	if _u.mutation.EvidenceRefsCleared() {
		_spec.ClearField(strategicpriority.FieldEvidenceRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImpactScore(); ok {
		_spec.SetField(strategicpriority.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpactScore(); ok {
		_spec.AddField(strategicpriority.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SupportCount(); ok {
		_spec.SetField(strategicpriority.FieldSupportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSupportCount(); ok {
		_spec.AddField(strategicpriority.FieldSupportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedImpact(); ok {
		_spec.SetField(strategicpriority.FieldEstimatedImpact, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(strategicpriority.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   strategicpriority.AuditTable,
			Columns: []string{strategicpriority.AuditColumn},
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
			Table:   strategicpriority.AuditTable,
			Columns: []string{strategicpriority.AuditColumn},
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
			err = &NotFoundError{strategicpriority.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StrategicPriorityUpdateOne is the builder for updating a single StrategicPriority entity.
type StrategicPriorityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StrategicPriorityMutation
}

// SetAuditID sets the "audit_id" field.
func (_u *StrategicPriorityUpdateOne) SetAuditID(v string) *StrategicPriorityUpdateOne {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableAuditID(v *string) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *StrategicPriorityUpdateOne) SetRank(v int) *StrategicPriorityUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableRank(v *int) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *StrategicPriorityUpdateOne) AddRank(v int) *StrategicPriorityUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StrategicPriorityUpdateOne) SetTitle(v string) *StrategicPriorityUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableTitle(v *string) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *StrategicPriorityUpdateOne) SetRationale(v string) *StrategicPriorityUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableRationale(v *string) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *StrategicPriorityUpdateOne) ClearRationale() *StrategicPriorityUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetEvidenceRefs sets the "evidence_refs" field.
func (_u *StrategicPriorityUpdateOne) SetEvidenceRefs(v []string) *StrategicPriorityUpdateOne {
	_u.mutation.SetEvidenceRefs(v)
	return _u
}

// AppendEvidenceRefs appends value to the "evidence_refs" field.
func (_u *StrategicPriorityUpdateOne) AppendEvidenceRefs(v []string) *StrategicPriorityUpdateOne {
	_u.mutation.AppendEvidenceRefs(v)
	return _u
}

// ClearEvidenceRefs clears the value of the "evidence_refs" field.
func (_u *StrategicPriorityUpdateOne) ClearEvidenceRefs() *StrategicPriorityUpdateOne {
	_u.mutation.ClearEvidenceRefs()
	return _u
}

// SetImpactScore sets the "impact_score" field.
func (_u *StrategicPriorityUpdateOne) SetImpactScore(v float64) *StrategicPriorityUpdateOne {
	_u.mutation.ResetImpactScore()
	_u.mutation.SetImpactScore(v)
	return _u
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableImpactScore(v *float64) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetImpactScore(*v)
	}
	return _u
}

// AddImpactScore adds value to the "impact_score" field.
func (_u *StrategicPriorityUpdateOne) AddImpactScore(v float64) *StrategicPriorityUpdateOne {
	_u.mutation.AddImpactScore(v)
	return _u
}

// SetSupportCount sets the "support_count" field.
func (_u *StrategicPriorityUpdateOne) SetSupportCount(v int) *StrategicPriorityUpdateOne {
	_u.mutation.ResetSupportCount()
	_u.mutation.SetSupportCount(v)
	return _u
}

// SetNillableSupportCount sets the "support_count" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableSupportCount(v *int) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetSupportCount(*v)
	}
	return _u
}

// AddSupportCount adds value to the "support_count" field.
func (_u *StrategicPriorityUpdateOne) AddSupportCount(v int) *StrategicPriorityUpdateOne {
	_u.mutation.AddSupportCount(v)
	return _u
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (_u *StrategicPriorityUpdateOne) SetEstimatedImpact(v strategicpriority.EstimatedImpact) *StrategicPriorityUpdateOne {
	_u.mutation.SetEstimatedImpact(v)
	return _u
}

// SetNillableEstimatedImpact sets the "estimated_impact" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableEstimatedImpact(v *strategicpriority.EstimatedImpact) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetEstimatedImpact(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StrategicPriorityUpdateOne) SetCreatedAt(v time.Time) *StrategicPriorityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StrategicPriorityUpdateOne) SetNillableCreatedAt(v *time.Time) *StrategicPriorityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *StrategicPriorityUpdateOne) SetAudit(v *Audit) *StrategicPriorityUpdateOne {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the StrategicPriorityMutation object of the builder.
func (_u *StrategicPriorityUpdateOne) Mutation() *StrategicPriorityMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *StrategicPriorityUpdateOne) ClearAudit() *StrategicPriorityUpdateOne {
	_u.mutation.ClearAudit()
	return _u
}

// Where appends a list predicates to the StrategicPriorityUpdate builder.
func (_u *StrategicPriorityUpdateOne) Where(ps ...predicate.StrategicPriority) *StrategicPriorityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StrategicPriorityUpdateOne) Select(field string, fields ...string) *StrategicPriorityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StrategicPriority entity.
func (_u *StrategicPriorityUpdateOne) Save(ctx context.Context) (*StrategicPriority, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrategicPriorityUpdateOne) SaveX(ctx context.Context) *StrategicPriority {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StrategicPriorityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrategicPriorityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StrategicPriorityUpdateOne) check() error {
	if v, ok := _u.mutation.EstimatedImpact(); ok {
		if err := strategicpriority.EstimatedImpactValidator(v); err != nil {
			return &ValidationError{Name: "estimated_impact", err: fmt.Errorf(`ent: validator failed for field "StrategicPriority.estimated_impact": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StrategicPriority.audit"`)
	}
	return nil
}

func (_u *StrategicPriorityUpdateOne) sqlSave(ctx context.Context) (_node *StrategicPriority, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(strategicpriority.Table, strategicpriority.Columns, sqlgraph.NewFieldSpec(strategicpriority.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StrategicPriority.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, strategicpriority.FieldID)
		for _, f := range fields {
			if !strategicpriority.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != strategicpriority.FieldID {
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
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(strategicpriority.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(strategicpriority.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(strategicpriority.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(strategicpriority.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(strategicpriority.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceRefs(); ok {
		_spec.SetField(strategicpriority.FieldEvidenceRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidenceRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, strategicpriority.FieldEvidenceRefs, value)
		})
	}
	if _u.mutation.EvidenceRefsCleared() {
		_spec.ClearField(strategicpriority.FieldEvidenceRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImpactScore(); ok {
		_spec.SetField(strategicpriority.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpactScore(); ok {
		_spec.AddField(strategicpriority.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SupportCount(); ok {
		_spec.SetField(strategicpriority.FieldSupportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSupportCount(); ok {
		_spec.AddField(strategicpriority.FieldSupportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedImpact(); ok {
		_spec.SetField(strategicpriority.FieldEstimatedImpact, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(strategicpriority.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   strategicpriority.AuditTable,
			Columns: []string{strategicpriority.AuditColumn},
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
			Table:   strategicpriority.AuditTable,
			Columns: []string{strategicpriority.AuditColumn},
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
	_node = &StrategicPriority{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{strategicpriority.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
