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
	"github.com/brandlens/brandlens/ent/predicate"
	"github.com/brandlens/brandlens/ent/providerledger"
)

// ProviderLedgerUpdate is the builder for updating ProviderLedger entities.
type ProviderLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderLedgerMutation
}

// Where appends a list predicates to the ProviderLedgerUpdate builder.
func (_u *ProviderLedgerUpdate) Where(ps ...predicate.ProviderLedger) *ProviderLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderLedgerUpdate) SetProvider(v string) *ProviderLedgerUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderLedgerUpdate) SetNillableProvider(v *string) *ProviderLedgerUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetDailyCost sets the "daily_cost" field.
func (_u *ProviderLedgerUpdate) SetDailyCost(v float64) *ProviderLedgerUpdate {
	_u.mutation.ResetDailyCost()
	_u.mutation.SetDailyCost(v)
	return _u
}

// SetNillableDailyCost sets the "daily_cost" field if the given value is not nil.
func (_u *ProviderLedgerUpdate) SetNillableDailyCost(v *float64) *ProviderLedgerUpdate {
	if v != nil {
		_u.SetDailyCost(*v)
	}
	return _u
}

// AddDailyCost adds value to the "daily_cost" field.
func (_u *ProviderLedgerUpdate) AddDailyCost(v float64) *ProviderLedgerUpdate {
	_u.mutation.AddDailyCost(v)
	return _u
}

// SetMonthlyCost sets the "monthly_cost" field.
func (_u *ProviderLedgerUpdate) SetMonthlyCost(v float64) *ProviderLedgerUpdate {
	_u.mutation.ResetMonthlyCost()
	_u.mutation.SetMonthlyCost(v)
	return _u
}

// SetNillableMonthlyCost sets the "monthly_cost" field if the given value is not nil.
func (_u *ProviderLedgerUpdate) SetNillableMonthlyCost(v *float64) *ProviderLedgerUpdate {
	if v != nil {
		_u.SetMonthlyCost(*v)
	}
	return _u
}

// AddMonthlyCost adds value to the "monthly_cost" field.
func (_u *ProviderLedgerUpdate) AddMonthlyCost(v float64) *ProviderLedgerUpdate {
	_u.mutation.AddMonthlyCost(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *ProviderLedgerUpdate) SetTotalCost(v float64) *ProviderLedgerUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *ProviderLedgerUpdate) SetNillableTotalCost(v *float64) *ProviderLedgerUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *ProviderLedgerUpdate) AddTotalCost(v float64) *ProviderLedgerUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetRequestsToday sets the "requests_today" field.
func (_u *ProviderLedgerUpdate) SetRequestsToday(v int) *ProviderLedgerUpdate {
	_u.mutation.ResetRequestsToday()
	_u.mutation.SetRequestsToday(v)
	return _u
}

// SetNillableRequestsToday sets the "requests_today" field if the given value is not nil.
func (_u *ProviderLedgerUpdate) SetNillableRequestsToday(v *int) *ProviderLedgerUpdate {
	if v != nil {
		_u.SetRequestsToday(*v)
	}
	return _u
}

// AddRequestsToday adds value to the "requests_today" field.
func (_u *ProviderLedgerUpdate) AddRequestsToday(v int) *ProviderLedgerUpdate {
	_u.mutation.AddRequestsToday(v)
	return _u
}

// SetLastReset sets the "last_reset" field.
func (_u *ProviderLedgerUpdate) SetLastReset(v time.Time) *ProviderLedgerUpdate {
	_u.mutation.SetLastReset(v)
	return _u
}

// SetNillableLastReset sets the "last_reset" field if the given value is not nil.
func (_u *ProviderLedgerUpdate) SetNillableLastReset(v *time.Time) *ProviderLedgerUpdate {
	if v != nil {
		_u.SetLastReset(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderLedgerUpdate) SetUpdatedAt(v time.Time) *ProviderLedgerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderLedgerMutation object of the builder.
func (_u *ProviderLedgerUpdate) Mutation() *ProviderLedgerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderLedgerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderLedgerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providerledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(providerledger.Table, providerledger.Columns, sqlgraph.NewFieldSpec(providerledger.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providerledger.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyCost(); ok {
		_spec.SetField(providerledger.FieldDailyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDailyCost(); ok {
		_spec.AddField(providerledger.FieldDailyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MonthlyCost(); ok {
		_spec.SetField(providerledger.FieldMonthlyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyCost(); ok {
		_spec.AddField(providerledger.FieldMonthlyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(providerledger.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(providerledger.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequestsToday(); ok {
		_spec.SetField(providerledger.FieldRequestsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestsToday(); ok {
		_spec.AddField(providerledger.FieldRequestsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReset(); ok {
		_spec.SetField(providerledger.FieldLastReset, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(providerledger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderLedgerUpdateOne is the builder for updating a single ProviderLedger entity.
type ProviderLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderLedgerMutation
}

// SetProvider sets the "provider" field.
func (_u *ProviderLedgerUpdateOne) SetProvider(v string) *ProviderLedgerUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderLedgerUpdateOne) SetNillableProvider(v *string) *ProviderLedgerUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetDailyCost sets the "daily_cost" field.
func (_u *ProviderLedgerUpdateOne) SetDailyCost(v float64) *ProviderLedgerUpdateOne {
	_u.mutation.ResetDailyCost()
	_u.mutation.SetDailyCost(v)
	return _u
}

// SetNillableDailyCost sets the "daily_cost" field if the given value is not nil.
func (_u *ProviderLedgerUpdateOne) SetNillableDailyCost(v *float64) *ProviderLedgerUpdateOne {
	if v != nil {
		_u.SetDailyCost(*v)
	}
	return _u
}

// AddDailyCost adds value to the "daily_cost" field.
func (_u *ProviderLedgerUpdateOne) AddDailyCost(v float64) *ProviderLedgerUpdateOne {
	_u.mutation.AddDailyCost(v)
	return _u
}

// SetMonthlyCost sets the "monthly_cost" field.
func (_u *ProviderLedgerUpdateOne) SetMonthlyCost(v float64) *ProviderLedgerUpdateOne {
	_u.mutation.ResetMonthlyCost()
	_u.mutation.SetMonthlyCost(v)
	return _u
}

// SetNillableMonthlyCost sets the "monthly_cost" field if the given value is not nil.
func (_u *ProviderLedgerUpdateOne) SetNillableMonthlyCost(v *float64) *ProviderLedgerUpdateOne {
	if v != nil {
		_u.SetMonthlyCost(*v)
	}
	return _u
}

// AddMonthlyCost adds value to the "monthly_cost" field.
func (_u *ProviderLedgerUpdateOne) AddMonthlyCost(v float64) *ProviderLedgerUpdateOne {
	_u.mutation.AddMonthlyCost(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *ProviderLedgerUpdateOne) SetTotalCost(v float64) *ProviderLedgerUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *ProviderLedgerUpdateOne) SetNillableTotalCost(v *float64) *ProviderLedgerUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *ProviderLedgerUpdateOne) AddTotalCost(v float64) *ProviderLedgerUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetRequestsToday sets the "requests_today" field.
func (_u *ProviderLedgerUpdateOne) SetRequestsToday(v int) *ProviderLedgerUpdateOne {
	_u.mutation.ResetRequestsToday()
	_u.mutation.SetRequestsToday(v)
	return _u
}

// SetNillableRequestsToday sets the "requests_today" field if the given value is not nil.
func (_u *ProviderLedgerUpdateOne) SetNillableRequestsToday(v *int) *ProviderLedgerUpdateOne {
	if v != nil {
		_u.SetRequestsToday(*v)
	}
	return _u
}

// AddRequestsToday adds value to the "requests_today" field.
func (_u *ProviderLedgerUpdateOne) AddRequestsToday(v int) *ProviderLedgerUpdateOne {
	_u.mutation.AddRequestsToday(v)
	return _u
}

// SetLastReset sets the "last_reset" field.
func (_u *ProviderLedgerUpdateOne) SetLastReset(v time.Time) *ProviderLedgerUpdateOne {
	_u.mutation.SetLastReset(v)
	return _u
}

// SetNillableLastReset sets the "last_reset" field if the given value is not nil.
func (_u *ProviderLedgerUpdateOne) SetNillableLastReset(v *time.Time) *ProviderLedgerUpdateOne {
	if v != nil {
		_u.SetLastReset(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderLedgerUpdateOne) SetUpdatedAt(v time.Time) *ProviderLedgerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderLedgerMutation object of the builder.
func (_u *ProviderLedgerUpdateOne) Mutation() *ProviderLedgerMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderLedgerUpdate builder.
func (_u *ProviderLedgerUpdateOne) Where(ps ...predicate.ProviderLedger) *ProviderLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderLedgerUpdateOne) Select(field string, fields ...string) *ProviderLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderLedger entity.
func (_u *ProviderLedgerUpdateOne) Save(ctx context.Context) (*ProviderLedger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderLedgerUpdateOne) SaveX(ctx context.Context) *ProviderLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderLedgerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providerledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderLedgerUpdateOne) sqlSave(ctx context.Context) (_node *ProviderLedger, err error) {
	_spec := sqlgraph.NewUpdateSpec(providerledger.Table, providerledger.Columns, sqlgraph.NewFieldSpec(providerledger.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providerledger.FieldID)
		for _, f := range fields {
			if !providerledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providerledger.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providerledger.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyCost(); ok {
		_spec.SetField(providerledger.FieldDailyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDailyCost(); ok {
		_spec.AddField(providerledger.FieldDailyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MonthlyCost(); ok {
		_spec.SetField(providerledger.FieldMonthlyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyCost(); ok {
		_spec.AddField(providerledger.FieldMonthlyCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(providerledger.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(providerledger.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequestsToday(); ok {
		_spec.SetField(providerledger.FieldRequestsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestsToday(); ok {
		_spec.AddField(providerledger.FieldRequestsToday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReset(); ok {
		_spec.SetField(providerledger.FieldLastReset, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(providerledger.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProviderLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
