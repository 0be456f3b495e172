// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/predicate"
)

// CategoryAggregateDelete is the builder for deleting a CategoryAggregate entity.
type CategoryAggregateDelete struct {
	config
	hooks    []Hook
	mutation *CategoryAggregateMutation
}

// Where appends a list predicates to the CategoryAggregateDelete builder.
func (_d *CategoryAggregateDelete) Where(ps ...predicate.CategoryAggregate) *CategoryAggregateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CategoryAggregateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CategoryAggregateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CategoryAggregateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(categoryaggregate.Table, sqlgraph.NewFieldSpec(categoryaggregate.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CategoryAggregateDeleteOne is the builder for deleting a single CategoryAggregate entity.
type CategoryAggregateDeleteOne struct {
	_d *CategoryAggregateDelete
}

// Where appends a list predicates to the CategoryAggregateDelete builder.
func (_d *CategoryAggregateDeleteOne) Where(ps ...predicate.CategoryAggregate) *CategoryAggregateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CategoryAggregateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{categoryaggregate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CategoryAggregateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
