// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/predicate"
	"github.com/brandlens/brandlens/ent/rankingsnapshot"
)

// RankingSnapshotUpdate is the builder for updating RankingSnapshot entities.
type RankingSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *RankingSnapshotMutation
}

// Where appends a list predicates to the RankingSnapshotUpdate builder.
func (_u *RankingSnapshotUpdate) Where(ps ...predicate.RankingSnapshot) *RankingSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetDomain sets the "target_domain" field.
func (_u *RankingSnapshotUpdate) SetTargetDomain(v string) *RankingSnapshotUpdate {
	_u.mutation.SetTargetDomain(v)
	return _u
}

// SetNillableTargetDomain sets the "target_domain" field if the given value is not nil.
func (_u *RankingSnapshotUpdate) SetNillableTargetDomain(v *string) *RankingSnapshotUpdate {
	if v != nil {
		_u.SetTargetDomain(*v)
	}
	return _u
}

// SetRankings sets the "rankings" field.
func (_u *RankingSnapshotUpdate) SetRankings(v []map[string]interface{}) *RankingSnapshotUpdate {
	_u.mutation.SetRankings(v)
	return _u
}

// AppendRankings appends value to the "rankings" field.
func (_u *RankingSnapshotUpdate) AppendRankings(v []map[string]interface{}) *RankingSnapshotUpdate {
	_u.mutation.AppendRankings(v)
	return _u
}

// Mutation returns the RankingSnapshotMutation object of the builder.
func (_u *RankingSnapshotUpdate) Mutation() *RankingSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RankingSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RankingSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RankingSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RankingSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RankingSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rankingsnapshot.Table, rankingsnapshot.Columns, sqlgraph.NewFieldSpec(rankingsnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetDomain(); ok {
		_spec.SetField(rankingsnapshot.FieldTargetDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rankings(); ok {
		_spec.SetField(rankingsnapshot.FieldRankings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRankings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rankingsnapshot.FieldRankings, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rankingsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RankingSnapshotUpdateOne is the builder for updating a single RankingSnapshot entity.
type RankingSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RankingSnapshotMutation
}

// SetTargetDomain sets the "target_domain" field.
func (_u *RankingSnapshotUpdateOne) SetTargetDomain(v string) *RankingSnapshotUpdateOne {
	_u.mutation.SetTargetDomain(v)
	return _u
}

// SetNillableTargetDomain sets the "target_domain" field if the given value is not nil.
func (_u *RankingSnapshotUpdateOne) SetNillableTargetDomain(v *string) *RankingSnapshotUpdateOne {
	if v != nil {
		_u.SetTargetDomain(*v)
	}
	return _u
}

// SetRankings sets the "rankings" field.
func (_u *RankingSnapshotUpdateOne) SetRankings(v []map[string]interface{}) *RankingSnapshotUpdateOne {
	_u.mutation.SetRankings(v)
	return _u
}

// AppendRankings appends value to the "rankings" field.
func (_u *RankingSnapshotUpdateOne) AppendRankings(v []map[string]interface{}) *RankingSnapshotUpdateOne {
	_u.mutation.AppendRankings(v)
	return _u
}

// Mutation returns the RankingSnapshotMutation object of the builder.
func (_u *RankingSnapshotUpdateOne) Mutation() *RankingSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the RankingSnapshotUpdate builder.
func (_u *RankingSnapshotUpdateOne) Where(ps ...predicate.RankingSnapshot) *RankingSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RankingSnapshotUpdateOne) Select(field string, fields ...string) *RankingSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RankingSnapshot entity.
func (_u *RankingSnapshotUpdateOne) Save(ctx context.Context) (*RankingSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RankingSnapshotUpdateOne) SaveX(ctx context.Context) *RankingSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RankingSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RankingSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RankingSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *RankingSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(rankingsnapshot.Table, rankingsnapshot.Columns, sqlgraph.NewFieldSpec(rankingsnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RankingSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rankingsnapshot.FieldID)
		for _, f := range fields {
			if !rankingsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rankingsnapshot.FieldID {
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
	if value, ok := _u.mutation.TargetDomain(); ok {
		_spec.SetField(rankingsnapshot.FieldTargetDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rankings(); ok {
		_spec.SetField(rankingsnapshot.FieldRankings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRankings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rankingsnapshot.FieldRankings, value)
		})
	}
	_node = &RankingSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rankingsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
