// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/ent/predicate"
)

// AuditQueryUpdate is the builder for updating AuditQuery entities.
type AuditQueryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditQueryMutation
}

// Where appends a list predicates to the AuditQueryUpdate builder.
func (_u *AuditQueryUpdate) Where(ps ...predicate.AuditQuery) *AuditQueryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AuditQueryMutation object of the builder.
func (_u *AuditQueryUpdate) Mutation() *AuditQueryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditQueryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditQueryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditQueryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditQueryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditQueryUpdate) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditQuery.audit"`)
	}
	return nil
}

func (_u *AuditQueryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditquery.Table, auditquery.Columns, sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(auditquery.FieldIntent, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditQueryUpdateOne is the builder for updating a single AuditQuery entity.
type AuditQueryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditQueryMutation
}

// Mutation returns the AuditQueryMutation object of the builder.
func (_u *AuditQueryUpdateOne) Mutation() *AuditQueryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditQueryUpdate builder.
func (_u *AuditQueryUpdateOne) Where(ps ...predicate.AuditQuery) *AuditQueryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditQueryUpdateOne) Select(field string, fields ...string) *AuditQueryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditQuery entity.
func (_u *AuditQueryUpdateOne) Save(ctx context.Context) (*AuditQuery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditQueryUpdateOne) SaveX(ctx context.Context) *AuditQuery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditQueryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditQueryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditQueryUpdateOne) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditQuery.audit"`)
	}
	return nil
}

func (_u *AuditQueryUpdateOne) sqlSave(ctx context.Context) (_node *AuditQuery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditquery.Table, auditquery.Columns, sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditQuery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditquery.FieldID)
		for _, f := range fields {
			if !auditquery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditquery.FieldID {
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
	if _u.mutation.IntentCleared() {
		_spec.ClearField(auditquery.FieldIntent, field.TypeString)
	}
	_node = &AuditQuery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
