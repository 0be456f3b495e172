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
	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/ent/predicate"
)

// BatchInsightUpdate is the builder for updating BatchInsight entities.
type BatchInsightUpdate struct {
	config
	hooks    []Hook
	mutation *BatchInsightMutation
}

// Where appends a list predicates to the BatchInsightUpdate builder.
func (_u *BatchInsightUpdate) Where(ps ...predicate.BatchInsight) *BatchInsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuditID sets the "audit_id" field.
func (_u *BatchInsightUpdate) SetAuditID(v string) *BatchInsightUpdate {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *BatchInsightUpdate) SetNillableAuditID(v *string) *BatchInsightUpdate {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BatchInsightUpdate) SetCategory(v batchinsight.Category) *BatchInsightUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BatchInsightUpdate) SetNillableCategory(v *batchinsight.Category) *BatchInsightUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *BatchInsightUpdate) SetBatchNumber(v int) *BatchInsightUpdate {
	_u.mutation.ResetBatchNumber()
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *BatchInsightUpdate) SetNillableBatchNumber(v *int) *BatchInsightUpdate {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// AddBatchNumber adds value to the "batch_number" field.
func (_u *BatchInsightUpdate) AddBatchNumber(v int) *BatchInsightUpdate {
	_u.mutation.AddBatchNumber(v)
	return _u
}

// SetExtractionType sets the "extraction_type" field.
func (_u *BatchInsightUpdate) SetExtractionType(v batchinsight.ExtractionType) *BatchInsightUpdate {
	_u.mutation.SetExtractionType(v)
	return _u
}

// SetNillableExtractionType sets the "extraction_type" field if the given value is not nil.
func (_u *BatchInsightUpdate) SetNillableExtractionType(v *batchinsight.ExtractionType) *BatchInsightUpdate {
	if v != nil {
		_u.SetExtractionType(*v)
	}
	return _u
}

// SetInsights sets the "insights" field.
func (_u *BatchInsightUpdate) SetInsights(v []string) *BatchInsightUpdate {
	_u.mutation.SetInsights(v)
	return _u
}

// AppendInsights appends value to the "insights" field.
func (_u *BatchInsightUpdate) AppendInsights(v []string) *BatchInsightUpdate {
	_u.mutation.AppendInsights(v)
	return _u
}

// SetResponseIds sets the "response_ids" field.
func (_u *BatchInsightUpdate) SetResponseIds(v []string) *BatchInsightUpdate {
	_u.mutation.SetResponseIds(v)
	return _u
}

// AppendResponseIds appends value to the "response_ids" field.
func (_u *BatchInsightUpdate) AppendResponseIds(v []string) *BatchInsightUpdate {
	_u.mutation.AppendResponseIds(v)
	return _u
}

// ClearResponseIds clears the value of the "response_ids" field.
func (_u *BatchInsightUpdate) ClearResponseIds() *BatchInsightUpdate {
	_u.mutation.ClearResponseIds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchInsightUpdate) SetUpdatedAt(v time.Time) *BatchInsightUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *BatchInsightUpdate) SetAudit(v *Audit) *BatchInsightUpdate {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the BatchInsightMutation object of the builder.
func (_u *BatchInsightUpdate) Mutation() *BatchInsightMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *BatchInsightUpdate) ClearAudit() *BatchInsightUpdate {
	_u.mutation.ClearAudit()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchInsightUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchInsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchInsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchInsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchInsightUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batchinsight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchInsightUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := batchinsight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "BatchInsight.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionType(); ok {
		if err := batchinsight.ExtractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_type", err: fmt.Errorf(`ent: validator failed for field "BatchInsight.extraction_type": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchInsight.audit"`)
	}
	return nil
}

func (_u *BatchInsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchinsight.Table, batchinsight.Columns, sqlgraph.NewFieldSpec(batchinsight.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(batchinsight.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(batchinsight.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNumber(); ok {
		_spec.AddField(batchinsight.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionType(); ok {
		_spec.SetField(batchinsight.FieldExtractionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(batchinsight.FieldInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsights(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchinsight.FieldInsights, value)
		})
	}
	if value, ok := _u.mutation.ResponseIds(); ok {
		_spec.SetField(batchinsight.FieldResponseIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponseIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchinsight.FieldResponseIds, value)
		})
	}
	if _u.mutation.ResponseIdsCleared() {
		_spec.ClearField(batchinsight.FieldResponseIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batchinsight.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchInsightUpdateOne is the builder for updating a single BatchInsight entity.
type BatchInsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchInsightMutation
}

// SetAuditID sets the "audit_id" field.
func (_u *BatchInsightUpdateOne) SetAuditID(v string) *BatchInsightUpdateOne {
	_u.mutation.SetAuditID(v)
	return _u
}

// SetNillableAuditID sets the "audit_id" field if the given value is not nil.
func (_u *BatchInsightUpdateOne) SetNillableAuditID(v *string) *BatchInsightUpdateOne {
	if v != nil {
		_u.SetAuditID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BatchInsightUpdateOne) SetCategory(v batchinsight.Category) *BatchInsightUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BatchInsightUpdateOne) SetNillableCategory(v *batchinsight.Category) *BatchInsightUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *BatchInsightUpdateOne) SetBatchNumber(v int) *BatchInsightUpdateOne {
	_u.mutation.ResetBatchNumber()
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *BatchInsightUpdateOne) SetNillableBatchNumber(v *int) *BatchInsightUpdateOne {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// AddBatchNumber adds value to the "batch_number" field.
func (_u *BatchInsightUpdateOne) AddBatchNumber(v int) *BatchInsightUpdateOne {
	_u.mutation.AddBatchNumber(v)
	return _u
}

// SetExtractionType sets the "extraction_type" field.
func (_u *BatchInsightUpdateOne) SetExtractionType(v batchinsight.ExtractionType) *BatchInsightUpdateOne {
	_u.mutation.SetExtractionType(v)
	return _u
}

// SetNillableExtractionType sets the "extraction_type" field if the given value is not nil.
func (_u *BatchInsightUpdateOne) SetNillableExtractionType(v *batchinsight.ExtractionType) *BatchInsightUpdateOne {
	if v != nil {
		_u.SetExtractionType(*v)
	}
	return _u
}

// SetInsights sets the "insights" field.
func (_u *BatchInsightUpdateOne) SetInsights(v []string) *BatchInsightUpdateOne {
	_u.mutation.SetInsights(v)
	return _u
}

// AppendInsights appends value to the "insights" field.
func (_u *BatchInsightUpdateOne) AppendInsights(v []string) *BatchInsightUpdateOne {
	_u.mutation.AppendInsights(v)
	return _u
}

// SetResponseIds sets the "response_ids" field.
func (_u *BatchInsightUpdateOne) SetResponseIds(v []string) *BatchInsightUpdateOne {
	_u.mutation.SetResponseIds(v)
	return _u
}

// AppendResponseIds appends value to the "response_ids" field.
func (_u *BatchInsightUpdateOne) AppendResponseIds(v []string) *BatchInsightUpdateOne {
	_u.mutation.AppendResponseIds(v)
	return _u
}

// ClearResponseIds clears the value of the "response_ids" field.
func (_u *BatchInsightUpdateOne) ClearResponseIds() *BatchInsightUpdateOne {
	_u.mutation.ClearResponseIds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchInsightUpdateOne) SetUpdatedAt(v time.Time) *BatchInsightUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_u *BatchInsightUpdateOne) SetAudit(v *Audit) *BatchInsightUpdateOne {
	return _u.SetAuditID(v.ID)
}

// Mutation returns the BatchInsightMutation object of the builder.
func (_u *BatchInsightUpdateOne) Mutation() *BatchInsightMutation {
	return _u.mutation
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (_u *BatchInsightUpdateOne) ClearAudit() *BatchInsightUpdateOne {
	_u.mutation.ClearAudit()
	return _u
}

// Where appends a list predicates to the BatchInsightUpdate builder.
func (_u *BatchInsightUpdateOne) Where(ps ...predicate.BatchInsight) *BatchInsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchInsightUpdateOne) Select(field string, fields ...string) *BatchInsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchInsight entity.
func (_u *BatchInsightUpdateOne) Save(ctx context.Context) (*BatchInsight, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchInsightUpdateOne) SaveX(ctx context.Context) *BatchInsight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchInsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchInsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchInsightUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batchinsight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchInsightUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := batchinsight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "BatchInsight.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionType(); ok {
		if err := batchinsight.ExtractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_type", err: fmt.Errorf(`ent: validator failed for field "BatchInsight.extraction_type": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchInsight.audit"`)
	}
	return nil
}

func (_u *BatchInsightUpdateOne) sqlSave(ctx context.Context) (_node *BatchInsight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchinsight.Table, batchinsight.Columns, sqlgraph.NewFieldSpec(batchinsight.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchInsight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchinsight.FieldID)
		for _, f := range fields {
			if !batchinsight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchinsight.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(batchinsight.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(batchinsight.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNumber(); ok {
		_spec.AddField(batchinsight.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionType(); ok {
		_spec.SetField(batchinsight.FieldExtractionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(batchinsight.FieldInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsights(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchinsight.FieldInsights, value)
		})
	}
	if value, ok := _u.mutation.ResponseIds(); ok {
		_spec.SetField(batchinsight.FieldResponseIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponseIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchinsight.FieldResponseIds, value)
		})
	}
	if _u.mutation.ResponseIdsCleared() {
		_spec.ClearField(batchinsight.FieldResponseIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batchinsight.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AuditCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchInsight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
