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
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// StrategicPriorityCreate is the builder for creating a StrategicPriority entity.
type StrategicPriorityCreate struct {
	config
	mutation *StrategicPriorityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuditID sets the "audit_id" field.
func (_c *StrategicPriorityCreate) SetAuditID(v string) *StrategicPriorityCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetRank sets the "rank" field.
func (_c *StrategicPriorityCreate) SetRank(v int) *StrategicPriorityCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StrategicPriorityCreate) SetTitle(v string) *StrategicPriorityCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *StrategicPriorityCreate) SetRationale(v string) *StrategicPriorityCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *StrategicPriorityCreate) SetNillableRationale(v *string) *StrategicPriorityCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetEvidenceRefs sets the "evidence_refs" field.
func (_c *StrategicPriorityCreate) SetEvidenceRefs(v []string) *StrategicPriorityCreate {
	_c.mutation.SetEvidenceRefs(v)
	return _c
}

// SetImpactScore sets the "impact_score" field.
func (_c *StrategicPriorityCreate) SetImpactScore(v float64) *StrategicPriorityCreate {
	_c.mutation.SetImpactScore(v)
	return _c
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_c *StrategicPriorityCreate) SetNillableImpactScore(v *float64) *StrategicPriorityCreate {
	if v != nil {
		_c.SetImpactScore(*v)
	}
	return _c
}

// SetSupportCount sets the "support_count" field.
func (_c *StrategicPriorityCreate) SetSupportCount(v int) *StrategicPriorityCreate {
	_c.mutation.SetSupportCount(v)
	return _c
}

// SetNillableSupportCount sets the "support_count" field if the given value is not nil.
func (_c *StrategicPriorityCreate) SetNillableSupportCount(v *int) *StrategicPriorityCreate {
	if v != nil {
		_c.SetSupportCount(*v)
	}
	return _c
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (_c *StrategicPriorityCreate) SetEstimatedImpact(v strategicpriority.EstimatedImpact) *StrategicPriorityCreate {
	_c.mutation.SetEstimatedImpact(v)
	return _c
}

// SetNillableEstimatedImpact sets the "estimated_impact" field if the given value is not nil.
func (_c *StrategicPriorityCreate) SetNillableEstimatedImpact(v *strategicpriority.EstimatedImpact) *StrategicPriorityCreate {
	if v != nil {
		_c.SetEstimatedImpact(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StrategicPriorityCreate) SetCreatedAt(v time.Time) *StrategicPriorityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StrategicPriorityCreate) SetNillableCreatedAt(v *time.Time) *StrategicPriorityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *StrategicPriorityCreate) SetAudit(v *Audit) *StrategicPriorityCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the StrategicPriorityMutation object of the builder.
func (_c *StrategicPriorityCreate) Mutation() *StrategicPriorityMutation {
	return _c.mutation
}

// Save creates the StrategicPriority in the database.
func (_c *StrategicPriorityCreate) Save(ctx context.Context) (*StrategicPriority, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StrategicPriorityCreate) SaveX(ctx context.Context) *StrategicPriority {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrategicPriorityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrategicPriorityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StrategicPriorityCreate) defaults() {
	if _, ok := _c.mutation.ImpactScore(); !ok {
		v := strategicpriority.DefaultImpactScore
		_c.mutation.SetImpactScore(v)
	}
	if _, ok := _c.mutation.SupportCount(); !ok {
		v := strategicpriority.DefaultSupportCount
		_c.mutation.SetSupportCount(v)
	}
	if _, ok := _c.mutation.EstimatedImpact(); !ok {
		v := strategicpriority.DefaultEstimatedImpact
		_c.mutation.SetEstimatedImpact(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := strategicpriority.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StrategicPriorityCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "StrategicPriority.audit_id"`)}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "StrategicPriority.rank"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StrategicPriority.title"`)}
	}
	if _, ok := _c.mutation.ImpactScore(); !ok {
		return &ValidationError{Name: "impact_score", err: errors.New(`ent: missing required field "StrategicPriority.impact_score"`)}
	}
	if _, ok := _c.mutation.SupportCount(); !ok {
		return &ValidationError{Name: "support_count", err: errors.New(`ent: missing required field "StrategicPriority.support_count"`)}
	}
	if _, ok := _c.mutation.EstimatedImpact(); !ok {
		return &ValidationError{Name: "estimated_impact", err: errors.New(`ent: missing required field "StrategicPriority.estimated_impact"`)}
	}
	if v, ok := _c.mutation.EstimatedImpact(); ok {
		if err := strategicpriority.EstimatedImpactValidator(v); err != nil {
			return &ValidationError{Name: "estimated_impact", err: fmt.Errorf(`ent: validator failed for field "StrategicPriority.estimated_impact": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StrategicPriority.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "StrategicPriority.audit"`)}
	}
	return nil
}

func (_c *StrategicPriorityCreate) sqlSave(ctx context.Context) (*StrategicPriority, error) {
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

func (_c *StrategicPriorityCreate) createSpec() (*StrategicPriority, *sqlgraph.CreateSpec) {
	var (
		_node = &StrategicPriority{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(strategicpriority.Table, sqlgraph.NewFieldSpec(strategicpriority.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(strategicpriority.FieldRank, field.TypeInt, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(strategicpriority.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(strategicpriority.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.EvidenceRefs(); ok {
		_spec.SetField(strategicpriority.FieldEvidenceRefs, field.TypeJSON, value)
		_node.EvidenceRefs = value
	}
	if value, ok := _c.mutation.ImpactScore(); ok {
		_spec.SetField(strategicpriority.FieldImpactScore, field.TypeFloat64, value)
		_node.ImpactScore = value
	}
	if value, ok := _c.mutation.SupportCount(); ok {
		_spec.SetField(strategicpriority.FieldSupportCount, field.TypeInt, value)
		_node.SupportCount = value
	}
	if value, ok := _c.mutation.EstimatedImpact(); ok {
		_spec.SetField(strategicpriority.FieldEstimatedImpact, field.TypeEnum, value)
		_node.EstimatedImpact = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(strategicpriority.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
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
		_node.AuditID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StrategicPriority.Create().
//		SetAuditID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StrategicPriorityUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *StrategicPriorityCreate) OnConflict(opts ...sql.ConflictOption) *StrategicPriorityUpsertOne {
	_c.conflict = opts
	return &StrategicPriorityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StrategicPriority.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StrategicPriorityCreate) OnConflictColumns(columns ...string) *StrategicPriorityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StrategicPriorityUpsertOne{
		create: _c,
	}
}

type (
	// StrategicPriorityUpsertOne is the builder for "upsert"-ing
	//  one StrategicPriority node.
	StrategicPriorityUpsertOne struct {
		create *StrategicPriorityCreate
	}

	// StrategicPriorityUpsert is the "OnConflict" setter.
	StrategicPriorityUpsert struct {
		*sql.UpdateSet
	}
)

// SetAuditID sets the "audit_id" field.
func (u *StrategicPriorityUpsert) SetAuditID(v string) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldAuditID, v)
	return u
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateAuditID() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldAuditID)
	return u
}

// SetRank sets the "rank" field.
func (u *StrategicPriorityUpsert) SetRank(v int) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldRank, v)
	return u
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateRank() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldRank)
	return u
}

// AddRank adds v to the "rank" field.
func (u *StrategicPriorityUpsert) AddRank(v int) *StrategicPriorityUpsert {
	u.Add(strategicpriority.FieldRank, v)
	return u
}

// SetTitle sets the "title" field.
func (u *StrategicPriorityUpsert) SetTitle(v string) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateTitle() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldTitle)
	return u
}

// SetRationale sets the "rationale" field.
func (u *StrategicPriorityUpsert) SetRationale(v string) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldRationale, v)
	return u
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateRationale() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldRationale)
	return u
}

// ClearRationale clears the value of the "rationale" field.
func (u *StrategicPriorityUpsert) ClearRationale() *StrategicPriorityUpsert {
	u.SetNull(strategicpriority.FieldRationale)
	return u
}

// SetEvidenceRefs sets the "evidence_refs" field.
func (u *StrategicPriorityUpsert) SetEvidenceRefs(v []string) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldEvidenceRefs, v)
	return u
}

// UpdateEvidenceRefs sets the "evidence_refs" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateEvidenceRefs() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldEvidenceRefs)
	return u
}

// ClearEvidenceRefs clears the value of the "evidence_refs" field.
func (u *StrategicPriorityUpsert) ClearEvidenceRefs() *StrategicPriorityUpsert {
	u.SetNull(strategicpriority.FieldEvidenceRefs)
	return u
}

// SetImpactScore sets the "impact_score" field.
func (u *StrategicPriorityUpsert) SetImpactScore(v float64) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldImpactScore, v)
	return u
}

// UpdateImpactScore sets the "impact_score" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateImpactScore() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldImpactScore)
	return u
}

// AddImpactScore adds v to the "impact_score" field.
func (u *StrategicPriorityUpsert) AddImpactScore(v float64) *StrategicPriorityUpsert {
	u.Add(strategicpriority.FieldImpactScore, v)
	return u
}

// SetSupportCount sets the "support_count" field.
func (u *StrategicPriorityUpsert) SetSupportCount(v int) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldSupportCount, v)
	return u
}

// UpdateSupportCount sets the "support_count" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateSupportCount() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldSupportCount)
	return u
}

// AddSupportCount adds v to the "support_count" field.
func (u *StrategicPriorityUpsert) AddSupportCount(v int) *StrategicPriorityUpsert {
	u.Add(strategicpriority.FieldSupportCount, v)
	return u
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (u *StrategicPriorityUpsert) SetEstimatedImpact(v strategicpriority.EstimatedImpact) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldEstimatedImpact, v)
	return u
}

// UpdateEstimatedImpact sets the "estimated_impact" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateEstimatedImpact() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldEstimatedImpact)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *StrategicPriorityUpsert) SetCreatedAt(v time.Time) *StrategicPriorityUpsert {
	u.Set(strategicpriority.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StrategicPriorityUpsert) UpdateCreatedAt() *StrategicPriorityUpsert {
	u.SetExcluded(strategicpriority.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StrategicPriority.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StrategicPriorityUpsertOne) UpdateNewValues() *StrategicPriorityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StrategicPriority.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StrategicPriorityUpsertOne) Ignore() *StrategicPriorityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StrategicPriorityUpsertOne) DoNothing() *StrategicPriorityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StrategicPriorityCreate.OnConflict
// documentation for more info.
func (u *StrategicPriorityUpsertOne) Update(set func(*StrategicPriorityUpsert)) *StrategicPriorityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StrategicPriorityUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *StrategicPriorityUpsertOne) SetAuditID(v string) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateAuditID() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateAuditID()
	})
}

// SetRank sets the "rank" field.
func (u *StrategicPriorityUpsertOne) SetRank(v int) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *StrategicPriorityUpsertOne) AddRank(v int) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateRank() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateRank()
	})
}

// SetTitle sets the "title" field.
func (u *StrategicPriorityUpsertOne) SetTitle(v string) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateTitle() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateTitle()
	})
}

// SetRationale sets the "rationale" field.
func (u *StrategicPriorityUpsertOne) SetRationale(v string) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateRationale() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *StrategicPriorityUpsertOne) ClearRationale() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.ClearRationale()
	})
}

// SetEvidenceRefs sets the "evidence_refs" field.
func (u *StrategicPriorityUpsertOne) SetEvidenceRefs(v []string) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetEvidenceRefs(v)
	})
}

// UpdateEvidenceRefs sets the "evidence_refs" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateEvidenceRefs() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateEvidenceRefs()
	})
}

// ClearEvidenceRefs clears the value of the "evidence_refs" field.
func (u *StrategicPriorityUpsertOne) ClearEvidenceRefs() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.ClearEvidenceRefs()
	})
}

// SetImpactScore sets the "impact_score" field.
func (u *StrategicPriorityUpsertOne) SetImpactScore(v float64) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetImpactScore(v)
	})
}

// AddImpactScore adds v to the "impact_score" field.
func (u *StrategicPriorityUpsertOne) AddImpactScore(v float64) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.AddImpactScore(v)
	})
}

// UpdateImpactScore sets the "impact_score" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateImpactScore() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateImpactScore()
	})
}

// SetSupportCount sets the "support_count" field.
func (u *StrategicPriorityUpsertOne) SetSupportCount(v int) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetSupportCount(v)
	})
}

// AddSupportCount adds v to the "support_count" field.
func (u *StrategicPriorityUpsertOne) AddSupportCount(v int) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.AddSupportCount(v)
	})
}

// UpdateSupportCount sets the "support_count" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateSupportCount() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateSupportCount()
	})
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (u *StrategicPriorityUpsertOne) SetEstimatedImpact(v strategicpriority.EstimatedImpact) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetEstimatedImpact(v)
	})
}

// UpdateEstimatedImpact sets the "estimated_impact" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateEstimatedImpact() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateEstimatedImpact()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StrategicPriorityUpsertOne) SetCreatedAt(v time.Time) *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StrategicPriorityUpsertOne) UpdateCreatedAt() *StrategicPriorityUpsertOne {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StrategicPriorityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StrategicPriorityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StrategicPriorityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StrategicPriorityUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StrategicPriorityUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StrategicPriorityCreateBulk is the builder for creating many StrategicPriority entities in bulk.
type StrategicPriorityCreateBulk struct {
	config
	err      error
	builders []*StrategicPriorityCreate
	conflict []sql.ConflictOption
}

// Save creates the StrategicPriority entities in the database.
func (_c *StrategicPriorityCreateBulk) Save(ctx context.Context) ([]*StrategicPriority, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StrategicPriority, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StrategicPriorityMutation)
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
func (_c *StrategicPriorityCreateBulk) SaveX(ctx context.Context) []*StrategicPriority {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrategicPriorityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrategicPriorityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StrategicPriority.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StrategicPriorityUpsert) {
//			SetAuditID(v+v).
//		}).
//		Exec(ctx)
func (_c *StrategicPriorityCreateBulk) OnConflict(opts ...sql.ConflictOption) *StrategicPriorityUpsertBulk {
	_c.conflict = opts
	return &StrategicPriorityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StrategicPriority.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StrategicPriorityCreateBulk) OnConflictColumns(columns ...string) *StrategicPriorityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StrategicPriorityUpsertBulk{
		create: _c,
	}
}

// StrategicPriorityUpsertBulk is the builder for "upsert"-ing
// a bulk of StrategicPriority nodes.
type StrategicPriorityUpsertBulk struct {
	create *StrategicPriorityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StrategicPriority.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StrategicPriorityUpsertBulk) UpdateNewValues() *StrategicPriorityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StrategicPriority.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StrategicPriorityUpsertBulk) Ignore() *StrategicPriorityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StrategicPriorityUpsertBulk) DoNothing() *StrategicPriorityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StrategicPriorityCreateBulk.OnConflict
// documentation for more info.
func (u *StrategicPriorityUpsertBulk) Update(set func(*StrategicPriorityUpsert)) *StrategicPriorityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StrategicPriorityUpsert{UpdateSet: update})
	}))
	return u
}

// SetAuditID sets the "audit_id" field.
func (u *StrategicPriorityUpsertBulk) SetAuditID(v string) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetAuditID(v)
	})
}

// UpdateAuditID sets the "audit_id" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateAuditID() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateAuditID()
	})
}

// SetRank sets the "rank" field.
func (u *StrategicPriorityUpsertBulk) SetRank(v int) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *StrategicPriorityUpsertBulk) AddRank(v int) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateRank() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateRank()
	})
}

// SetTitle sets the "title" field.
func (u *StrategicPriorityUpsertBulk) SetTitle(v string) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateTitle() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateTitle()
	})
}

// SetRationale sets the "rationale" field.
func (u *StrategicPriorityUpsertBulk) SetRationale(v string) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateRationale() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *StrategicPriorityUpsertBulk) ClearRationale() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.ClearRationale()
	})
}

// SetEvidenceRefs sets the "evidence_refs" field.
func (u *StrategicPriorityUpsertBulk) SetEvidenceRefs(v []string) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetEvidenceRefs(v)
	})
}

// UpdateEvidenceRefs sets the "evidence_refs" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateEvidenceRefs() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateEvidenceRefs()
	})
}

// ClearEvidenceRefs clears the value of the "evidence_refs" field.
func (u *StrategicPriorityUpsertBulk) ClearEvidenceRefs() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.ClearEvidenceRefs()
	})
}

// SetImpactScore sets the "impact_score" field.
func (u *StrategicPriorityUpsertBulk) SetImpactScore(v float64) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetImpactScore(v)
	})
}

// AddImpactScore adds v to the "impact_score" field.
func (u *StrategicPriorityUpsertBulk) AddImpactScore(v float64) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.AddImpactScore(v)
	})
}

// UpdateImpactScore sets the "impact_score" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateImpactScore() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateImpactScore()
	})
}

// SetSupportCount sets the "support_count" field.
func (u *StrategicPriorityUpsertBulk) SetSupportCount(v int) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetSupportCount(v)
	})
}

// AddSupportCount adds v to the "support_count" field.
func (u *StrategicPriorityUpsertBulk) AddSupportCount(v int) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.AddSupportCount(v)
	})
}

// UpdateSupportCount sets the "support_count" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateSupportCount() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateSupportCount()
	})
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (u *StrategicPriorityUpsertBulk) SetEstimatedImpact(v strategicpriority.EstimatedImpact) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetEstimatedImpact(v)
	})
}

// UpdateEstimatedImpact sets the "estimated_impact" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateEstimatedImpact() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateEstimatedImpact()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StrategicPriorityUpsertBulk) SetCreatedAt(v time.Time) *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StrategicPriorityUpsertBulk) UpdateCreatedAt() *StrategicPriorityUpsertBulk {
	return u.Update(func(s *StrategicPriorityUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StrategicPriorityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StrategicPriorityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StrategicPriorityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StrategicPriorityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
