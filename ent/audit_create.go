// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/executivesummary"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// AuditCreate is the builder for creating a Audit entity.
type AuditCreate struct {
	config
	mutation *AuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCompanyName sets the "company_name" field.
func (_c *AuditCreate) SetCompanyName(v string) *AuditCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetCompanyDomain sets the "company_domain" field.
func (_c *AuditCreate) SetCompanyDomain(v string) *AuditCreate {
	_c.mutation.SetCompanyDomain(v)
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *AuditCreate) SetIndustry(v string) *AuditCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *AuditCreate) SetNillableIndustry(v *string) *AuditCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetCompetitors sets the "competitors" field.
func (_c *AuditCreate) SetCompetitors(v []string) *AuditCreate {
	_c.mutation.SetCompetitors(v)
	return _c
}

// SetBrandAliases sets the "brand_aliases" field.
func (_c *AuditCreate) SetBrandAliases(v []string) *AuditCreate {
	_c.mutation.SetBrandAliases(v)
	return _c
}

// SetIncludeSubdomains sets the "include_subdomains" field.
func (_c *AuditCreate) SetIncludeSubdomains(v bool) *AuditCreate {
	_c.mutation.SetIncludeSubdomains(v)
	return _c
}

// SetNillableIncludeSubdomains sets the "include_subdomains" field if the given value is not nil.
func (_c *AuditCreate) SetNillableIncludeSubdomains(v *bool) *AuditCreate {
	if v != nil {
		_c.SetIncludeSubdomains(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditCreate) SetStatus(v audit.Status) *AuditCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AuditCreate) SetNillableStatus(v *audit.Status) *AuditCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AuditCreate) SetPhase(v audit.Phase) *AuditCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *AuditCreate) SetNillablePhase(v *audit.Phase) *AuditCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetTotalQueries sets the "total_queries" field.
func (_c *AuditCreate) SetTotalQueries(v int) *AuditCreate {
	_c.mutation.SetTotalQueries(v)
	return _c
}

// SetNillableTotalQueries sets the "total_queries" field if the given value is not nil.
func (_c *AuditCreate) SetNillableTotalQueries(v *int) *AuditCreate {
	if v != nil {
		_c.SetTotalQueries(*v)
	}
	return _c
}

// SetQueriesCompleted sets the "queries_completed" field.
func (_c *AuditCreate) SetQueriesCompleted(v int) *AuditCreate {
	_c.mutation.SetQueriesCompleted(v)
	return _c
}

// SetNillableQueriesCompleted sets the "queries_completed" field if the given value is not nil.
func (_c *AuditCreate) SetNillableQueriesCompleted(v *int) *AuditCreate {
	if v != nil {
		_c.SetQueriesCompleted(*v)
	}
	return _c
}

// SetProviderPriority sets the "provider_priority" field.
func (_c *AuditCreate) SetProviderPriority(v []string) *AuditCreate {
	_c.mutation.SetProviderPriority(v)
	return _c
}

// SetConcurrency sets the "concurrency" field.
func (_c *AuditCreate) SetConcurrency(v int) *AuditCreate {
	_c.mutation.SetConcurrency(v)
	return _c
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (_c *AuditCreate) SetNillableConcurrency(v *int) *AuditCreate {
	if v != nil {
		_c.SetConcurrency(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *AuditCreate) SetCancelRequested(v bool) *AuditCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCancelRequested(v *bool) *AuditCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetVerifyWarning sets the "verify_warning" field.
func (_c *AuditCreate) SetVerifyWarning(v string) *AuditCreate {
	_c.mutation.SetVerifyWarning(v)
	return _c
}

// SetNillableVerifyWarning sets the "verify_warning" field if the given value is not nil.
func (_c *AuditCreate) SetNillableVerifyWarning(v *string) *AuditCreate {
	if v != nil {
		_c.SetVerifyWarning(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditCreate) SetErrorMessage(v string) *AuditCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditCreate) SetNillableErrorMessage(v *string) *AuditCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditCreate) SetCreatedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCreatedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AuditCreate) SetStartedAt(v time.Time) *AuditCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableStartedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AuditCreate) SetCompletedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCompletedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AuditCreate) SetPodID(v string) *AuditCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AuditCreate) SetNillablePodID(v *string) *AuditCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *AuditCreate) SetLastHeartbeatAt(v time.Time) *AuditCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableLastHeartbeatAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditCreate) SetID(v string) *AuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by IDs.
func (_c *AuditCreate) AddQueryIDs(ids ...string) *AuditCreate {
	_c.mutation.AddQueryIDs(ids...)
	return _c
}

// AddQueries adds the "queries" edges to the AuditQuery entity.
func (_c *AuditCreate) AddQueries(v ...*AuditQuery) *AuditCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQueryIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the ProviderResponse entity by IDs.
func (_c *AuditCreate) AddResponseIDs(ids ...string) *AuditCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the ProviderResponse entity.
func (_c *AuditCreate) AddResponses(v ...*ProviderResponse) *AuditCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// AddBatchInsightIDs adds the "batch_insights" edge to the BatchInsight entity by IDs.
func (_c *AuditCreate) AddBatchInsightIDs(ids ...int) *AuditCreate {
	_c.mutation.AddBatchInsightIDs(ids...)
	return _c
}

// AddBatchInsights adds the "batch_insights" edges to the BatchInsight entity.
func (_c *AuditCreate) AddBatchInsights(v ...*BatchInsight) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchInsightIDs(ids...)
}

// AddCategoryAggregateIDs adds the "category_aggregates" edge to the CategoryAggregate entity by IDs.
func (_c *AuditCreate) AddCategoryAggregateIDs(ids ...int) *AuditCreate {
	_c.mutation.AddCategoryAggregateIDs(ids...)
	return _c
}

// AddCategoryAggregates adds the "category_aggregates" edges to the CategoryAggregate entity.
func (_c *AuditCreate) AddCategoryAggregates(v ...*CategoryAggregate) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCategoryAggregateIDs(ids...)
}

// AddStrategicPriorityIDs adds the "strategic_priorities" edge to the StrategicPriority entity by IDs.
func (_c *AuditCreate) AddStrategicPriorityIDs(ids ...int) *AuditCreate {
	_c.mutation.AddStrategicPriorityIDs(ids...)
	return _c
}

// AddStrategicPriorities adds the "strategic_priorities" edges to the StrategicPriority entity.
func (_c *AuditCreate) AddStrategicPriorities(v ...*StrategicPriority) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStrategicPriorityIDs(ids...)
}

// SetExecutiveSummaryID sets the "executive_summary" edge to the ExecutiveSummary entity by ID.
func (_c *AuditCreate) SetExecutiveSummaryID(id int) *AuditCreate {
	_c.mutation.SetExecutiveSummaryID(id)
	return _c
}

// SetNillableExecutiveSummaryID sets the "executive_summary" edge to the ExecutiveSummary entity by ID if the given value is not nil.
func (_c *AuditCreate) SetNillableExecutiveSummaryID(id *int) *AuditCreate {
	if id != nil {
		_c = _c.SetExecutiveSummaryID(*id)
	}
	return _c
}

// SetExecutiveSummary sets the "executive_summary" edge to the ExecutiveSummary entity.
func (_c *AuditCreate) SetExecutiveSummary(v *ExecutiveSummary) *AuditCreate {
	return _c.SetExecutiveSummaryID(v.ID)
}

// SetDashboardSnapshotID sets the "dashboard_snapshot" edge to the DashboardSnapshot entity by ID.
func (_c *AuditCreate) SetDashboardSnapshotID(id int) *AuditCreate {
	_c.mutation.SetDashboardSnapshotID(id)
	return _c
}

// SetNillableDashboardSnapshotID sets the "dashboard_snapshot" edge to the DashboardSnapshot entity by ID if the given value is not nil.
func (_c *AuditCreate) SetNillableDashboardSnapshotID(id *int) *AuditCreate {
	if id != nil {
		_c = _c.SetDashboardSnapshotID(*id)
	}
	return _c
}

// SetDashboardSnapshot sets the "dashboard_snapshot" edge to the DashboardSnapshot entity.
func (_c *AuditCreate) SetDashboardSnapshot(v *DashboardSnapshot) *AuditCreate {
	return _c.SetDashboardSnapshotID(v.ID)
}

// Mutation returns the AuditMutation object of the builder.
func (_c *AuditCreate) Mutation() *AuditMutation {
	return _c.mutation
}

// Save creates the Audit in the database.
func (_c *AuditCreate) Save(ctx context.Context) (*Audit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditCreate) SaveX(ctx context.Context) *Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditCreate) defaults() {
	if _, ok := _c.mutation.IncludeSubdomains(); !ok {
		v := audit.DefaultIncludeSubdomains
		_c.mutation.SetIncludeSubdomains(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := audit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := audit.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.TotalQueries(); !ok {
		v := audit.DefaultTotalQueries
		_c.mutation.SetTotalQueries(v)
	}
	if _, ok := _c.mutation.QueriesCompleted(); !ok {
		v := audit.DefaultQueriesCompleted
		_c.mutation.SetQueriesCompleted(v)
	}
	if _, ok := _c.mutation.Concurrency(); !ok {
		v := audit.DefaultConcurrency
		_c.mutation.SetConcurrency(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := audit.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := audit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Audit.company_name"`)}
	}
	if _, ok := _c.mutation.CompanyDomain(); !ok {
		return &ValidationError{Name: "company_domain", err: errors.New(`ent: missing required field "Audit.company_domain"`)}
	}
	if _, ok := _c.mutation.IncludeSubdomains(); !ok {
		return &ValidationError{Name: "include_subdomains", err: errors.New(`ent: missing required field "Audit.include_subdomains"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Audit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "Audit.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := audit.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Audit.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQueries(); !ok {
		return &ValidationError{Name: "total_queries", err: errors.New(`ent: missing required field "Audit.total_queries"`)}
	}
	if _, ok := _c.mutation.QueriesCompleted(); !ok {
		return &ValidationError{Name: "queries_completed", err: errors.New(`ent: missing required field "Audit.queries_completed"`)}
	}
	if _, ok := _c.mutation.Concurrency(); !ok {
		return &ValidationError{Name: "concurrency", err: errors.New(`ent: missing required field "Audit.concurrency"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Audit.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Audit.created_at"`)}
	}
	return nil
}

func (_c *AuditCreate) sqlSave(ctx context.Context) (*Audit, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Audit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditCreate) createSpec() (*Audit, *sqlgraph.CreateSpec) {
	var (
		_node = &Audit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audit.Table, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(audit.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.CompanyDomain(); ok {
		_spec.SetField(audit.FieldCompanyDomain, field.TypeString, value)
		_node.CompanyDomain = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(audit.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.Competitors(); ok {
		_spec.SetField(audit.FieldCompetitors, field.TypeJSON, value)
		_node.Competitors = value
	}
	if value, ok := _c.mutation.BrandAliases(); ok {
		_spec.SetField(audit.FieldBrandAliases, field.TypeJSON, value)
		_node.BrandAliases = value
	}
	if value, ok := _c.mutation.IncludeSubdomains(); ok {
		_spec.SetField(audit.FieldIncludeSubdomains, field.TypeBool, value)
		_node.IncludeSubdomains = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(audit.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.TotalQueries(); ok {
		_spec.SetField(audit.FieldTotalQueries, field.TypeInt, value)
		_node.TotalQueries = value
	}
	if value, ok := _c.mutation.QueriesCompleted(); ok {
		_spec.SetField(audit.FieldQueriesCompleted, field.TypeInt, value)
		_node.QueriesCompleted = value
	}
	if value, ok := _c.mutation.ProviderPriority(); ok {
		_spec.SetField(audit.FieldProviderPriority, field.TypeJSON, value)
		_node.ProviderPriority = value
	}
	if value, ok := _c.mutation.Concurrency(); ok {
		_spec.SetField(audit.FieldConcurrency, field.TypeInt, value)
		_node.Concurrency = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(audit.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.VerifyWarning(); ok {
		_spec.SetField(audit.FieldVerifyWarning, field.TypeString, value)
		_node.VerifyWarning = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(audit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(audit.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(audit.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.QueriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QueriesTable,
			Columns: []string{audit.QueriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditquery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.ResponsesTable,
			Columns: []string{audit.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BatchInsightsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.BatchInsightsTable,
			Columns: []string{audit.BatchInsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchinsight.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CategoryAggregatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.CategoryAggregatesTable,
			Columns: []string{audit.CategoryAggregatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categoryaggregate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StrategicPrioritiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.StrategicPrioritiesTable,
			Columns: []string{audit.StrategicPrioritiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(strategicpriority.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutiveSummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.ExecutiveSummaryTable,
			Columns: []string{audit.ExecutiveSummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executivesummary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DashboardSnapshotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   audit.DashboardSnapshotTable,
			Columns: []string{audit.DashboardSnapshotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dashboardsnapshot.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Audit.Create().
//		SetCompanyName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditUpsert) {
//			SetCompanyName(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditCreate) OnConflict(opts ...sql.ConflictOption) *AuditUpsertOne {
	_c.conflict = opts
	return &AuditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditCreate) OnConflictColumns(columns ...string) *AuditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditUpsertOne{
		create: _c,
	}
}

type (
	// AuditUpsertOne is the builder for "upsert"-ing
	//  one Audit node.
	AuditUpsertOne struct {
		create *AuditCreate
	}

	// AuditUpsert is the "OnConflict" setter.
	AuditUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompanyName sets the "company_name" field.
func (u *AuditUpsert) SetCompanyName(v string) *AuditUpsert {
	u.Set(audit.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *AuditUpsert) UpdateCompanyName() *AuditUpsert {
	u.SetExcluded(audit.FieldCompanyName)
	return u
}

// SetCompanyDomain sets the "company_domain" field.
func (u *AuditUpsert) SetCompanyDomain(v string) *AuditUpsert {
	u.Set(audit.FieldCompanyDomain, v)
	return u
}

// UpdateCompanyDomain sets the "company_domain" field to the value that was provided on create.
func (u *AuditUpsert) UpdateCompanyDomain() *AuditUpsert {
	u.SetExcluded(audit.FieldCompanyDomain)
	return u
}

// SetIndustry sets the "industry" field.
func (u *AuditUpsert) SetIndustry(v string) *AuditUpsert {
	u.Set(audit.FieldIndustry, v)
	return u
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *AuditUpsert) UpdateIndustry() *AuditUpsert {
	u.SetExcluded(audit.FieldIndustry)
	return u
}

// ClearIndustry clears the value of the "industry" field.
func (u *AuditUpsert) ClearIndustry() *AuditUpsert {
	u.SetNull(audit.FieldIndustry)
	return u
}

// SetCompetitors sets the "competitors" field.
func (u *AuditUpsert) SetCompetitors(v []string) *AuditUpsert {
	u.Set(audit.FieldCompetitors, v)
	return u
}

// UpdateCompetitors sets the "competitors" field to the value that was provided on create.
func (u *AuditUpsert) UpdateCompetitors() *AuditUpsert {
	u.SetExcluded(audit.FieldCompetitors)
	return u
}

// ClearCompetitors clears the value of the "competitors" field.
func (u *AuditUpsert) ClearCompetitors() *AuditUpsert {
	u.SetNull(audit.FieldCompetitors)
	return u
}

// SetBrandAliases sets the "brand_aliases" field.
func (u *AuditUpsert) SetBrandAliases(v []string) *AuditUpsert {
	u.Set(audit.FieldBrandAliases, v)
	return u
}

// UpdateBrandAliases sets the "brand_aliases" field to the value that was provided on create.
func (u *AuditUpsert) UpdateBrandAliases() *AuditUpsert {
	u.SetExcluded(audit.FieldBrandAliases)
	return u
}

// ClearBrandAliases clears the value of the "brand_aliases" field.
func (u *AuditUpsert) ClearBrandAliases() *AuditUpsert {
	u.SetNull(audit.FieldBrandAliases)
	return u
}

// SetIncludeSubdomains sets the "include_subdomains" field.
func (u *AuditUpsert) SetIncludeSubdomains(v bool) *AuditUpsert {
	u.Set(audit.FieldIncludeSubdomains, v)
	return u
}

// UpdateIncludeSubdomains sets the "include_subdomains" field to the value that was provided on create.
func (u *AuditUpsert) UpdateIncludeSubdomains() *AuditUpsert {
	u.SetExcluded(audit.FieldIncludeSubdomains)
	return u
}

// SetStatus sets the "status" field.
func (u *AuditUpsert) SetStatus(v audit.Status) *AuditUpsert {
	u.Set(audit.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsert) UpdateStatus() *AuditUpsert {
	u.SetExcluded(audit.FieldStatus)
	return u
}

// SetPhase sets the "phase" field.
func (u *AuditUpsert) SetPhase(v audit.Phase) *AuditUpsert {
	u.Set(audit.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *AuditUpsert) UpdatePhase() *AuditUpsert {
	u.SetExcluded(audit.FieldPhase)
	return u
}

// SetTotalQueries sets the "total_queries" field.
func (u *AuditUpsert) SetTotalQueries(v int) *AuditUpsert {
	u.Set(audit.FieldTotalQueries, v)
	return u
}

// UpdateTotalQueries sets the "total_queries" field to the value that was provided on create.
func (u *AuditUpsert) UpdateTotalQueries() *AuditUpsert {
	u.SetExcluded(audit.FieldTotalQueries)
	return u
}

// AddTotalQueries adds v to the "total_queries" field.
func (u *AuditUpsert) AddTotalQueries(v int) *AuditUpsert {
	u.Add(audit.FieldTotalQueries, v)
	return u
}

// SetQueriesCompleted sets the "queries_completed" field.
func (u *AuditUpsert) SetQueriesCompleted(v int) *AuditUpsert {
	u.Set(audit.FieldQueriesCompleted, v)
	return u
}

// UpdateQueriesCompleted sets the "queries_completed" field to the value that was provided on create.
func (u *AuditUpsert) UpdateQueriesCompleted() *AuditUpsert {
	u.SetExcluded(audit.FieldQueriesCompleted)
	return u
}

// AddQueriesCompleted adds v to the "queries_completed" field.
func (u *AuditUpsert) AddQueriesCompleted(v int) *AuditUpsert {
	u.Add(audit.FieldQueriesCompleted, v)
	return u
}

// SetProviderPriority sets the "provider_priority" field.
func (u *AuditUpsert) SetProviderPriority(v []string) *AuditUpsert {
	u.Set(audit.FieldProviderPriority, v)
	return u
}

// UpdateProviderPriority sets the "provider_priority" field to the value that was provided on create.
func (u *AuditUpsert) UpdateProviderPriority() *AuditUpsert {
	u.SetExcluded(audit.FieldProviderPriority)
	return u
}

// ClearProviderPriority clears the value of the "provider_priority" field.
func (u *AuditUpsert) ClearProviderPriority() *AuditUpsert {
	u.SetNull(audit.FieldProviderPriority)
	return u
}

// SetConcurrency sets the "concurrency" field.
func (u *AuditUpsert) SetConcurrency(v int) *AuditUpsert {
	u.Set(audit.FieldConcurrency, v)
	return u
}

// UpdateConcurrency sets the "concurrency" field to the value that was provided on create.
func (u *AuditUpsert) UpdateConcurrency() *AuditUpsert {
	u.SetExcluded(audit.FieldConcurrency)
	return u
}

// AddConcurrency adds v to the "concurrency" field.
func (u *AuditUpsert) AddConcurrency(v int) *AuditUpsert {
	u.Add(audit.FieldConcurrency, v)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *AuditUpsert) SetCancelRequested(v bool) *AuditUpsert {
	u.Set(audit.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *AuditUpsert) UpdateCancelRequested() *AuditUpsert {
	u.SetExcluded(audit.FieldCancelRequested)
	return u
}

// SetVerifyWarning sets the "verify_warning" field.
func (u *AuditUpsert) SetVerifyWarning(v string) *AuditUpsert {
	u.Set(audit.FieldVerifyWarning, v)
	return u
}

// UpdateVerifyWarning sets the "verify_warning" field to the value that was provided on create.
func (u *AuditUpsert) UpdateVerifyWarning() *AuditUpsert {
	u.SetExcluded(audit.FieldVerifyWarning)
	return u
}

// ClearVerifyWarning clears the value of the "verify_warning" field.
func (u *AuditUpsert) ClearVerifyWarning() *AuditUpsert {
	u.SetNull(audit.FieldVerifyWarning)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditUpsert) SetErrorMessage(v string) *AuditUpsert {
	u.Set(audit.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditUpsert) UpdateErrorMessage() *AuditUpsert {
	u.SetExcluded(audit.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditUpsert) ClearErrorMessage() *AuditUpsert {
	u.SetNull(audit.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *AuditUpsert) SetStartedAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateStartedAt() *AuditUpsert {
	u.SetExcluded(audit.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AuditUpsert) ClearStartedAt() *AuditUpsert {
	u.SetNull(audit.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AuditUpsert) SetCompletedAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateCompletedAt() *AuditUpsert {
	u.SetExcluded(audit.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AuditUpsert) ClearCompletedAt() *AuditUpsert {
	u.SetNull(audit.FieldCompletedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *AuditUpsert) SetPodID(v string) *AuditUpsert {
	u.Set(audit.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AuditUpsert) UpdatePodID() *AuditUpsert {
	u.SetExcluded(audit.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AuditUpsert) ClearPodID() *AuditUpsert {
	u.SetNull(audit.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AuditUpsert) SetLastHeartbeatAt(v time.Time) *AuditUpsert {
	u.Set(audit.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AuditUpsert) UpdateLastHeartbeatAt() *AuditUpsert {
	u.SetExcluded(audit.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AuditUpsert) ClearLastHeartbeatAt() *AuditUpsert {
	u.SetNull(audit.FieldLastHeartbeatAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(audit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditUpsertOne) UpdateNewValues() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(audit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(audit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditUpsertOne) Ignore() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditUpsertOne) DoNothing() *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditCreate.OnConflict
// documentation for more info.
func (u *AuditUpsertOne) Update(set func(*AuditUpsert)) *AuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *AuditUpsertOne) SetCompanyName(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateCompanyName() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompanyName()
	})
}

// SetCompanyDomain sets the "company_domain" field.
func (u *AuditUpsertOne) SetCompanyDomain(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompanyDomain(v)
	})
}

// UpdateCompanyDomain sets the "company_domain" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateCompanyDomain() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompanyDomain()
	})
}

// SetIndustry sets the "industry" field.
func (u *AuditUpsertOne) SetIndustry(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateIndustry() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *AuditUpsertOne) ClearIndustry() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearIndustry()
	})
}

// SetCompetitors sets the "competitors" field.
func (u *AuditUpsertOne) SetCompetitors(v []string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompetitors(v)
	})
}

// UpdateCompetitors sets the "competitors" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateCompetitors() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompetitors()
	})
}

// ClearCompetitors clears the value of the "competitors" field.
func (u *AuditUpsertOne) ClearCompetitors() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearCompetitors()
	})
}

// SetBrandAliases sets the "brand_aliases" field.
func (u *AuditUpsertOne) SetBrandAliases(v []string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetBrandAliases(v)
	})
}

// UpdateBrandAliases sets the "brand_aliases" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateBrandAliases() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateBrandAliases()
	})
}

// ClearBrandAliases clears the value of the "brand_aliases" field.
func (u *AuditUpsertOne) ClearBrandAliases() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearBrandAliases()
	})
}

// SetIncludeSubdomains sets the "include_subdomains" field.
func (u *AuditUpsertOne) SetIncludeSubdomains(v bool) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetIncludeSubdomains(v)
	})
}

// UpdateIncludeSubdomains sets the "include_subdomains" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateIncludeSubdomains() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateIncludeSubdomains()
	})
}

// SetStatus sets the "status" field.
func (u *AuditUpsertOne) SetStatus(v audit.Status) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateStatus() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStatus()
	})
}

// SetPhase sets the "phase" field.
func (u *AuditUpsertOne) SetPhase(v audit.Phase) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdatePhase() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdatePhase()
	})
}

// SetTotalQueries sets the "total_queries" field.
func (u *AuditUpsertOne) SetTotalQueries(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetTotalQueries(v)
	})
}

// AddTotalQueries adds v to the "total_queries" field.
func (u *AuditUpsertOne) AddTotalQueries(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.AddTotalQueries(v)
	})
}

// UpdateTotalQueries sets the "total_queries" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateTotalQueries() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateTotalQueries()
	})
}

// SetQueriesCompleted sets the "queries_completed" field.
func (u *AuditUpsertOne) SetQueriesCompleted(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetQueriesCompleted(v)
	})
}

// AddQueriesCompleted adds v to the "queries_completed" field.
func (u *AuditUpsertOne) AddQueriesCompleted(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.AddQueriesCompleted(v)
	})
}

// UpdateQueriesCompleted sets the "queries_completed" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateQueriesCompleted() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateQueriesCompleted()
	})
}

// SetProviderPriority sets the "provider_priority" field.
func (u *AuditUpsertOne) SetProviderPriority(v []string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetProviderPriority(v)
	})
}

// UpdateProviderPriority sets the "provider_priority" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateProviderPriority() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateProviderPriority()
	})
}

// ClearProviderPriority clears the value of the "provider_priority" field.
func (u *AuditUpsertOne) ClearProviderPriority() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearProviderPriority()
	})
}

// SetConcurrency sets the "concurrency" field.
func (u *AuditUpsertOne) SetConcurrency(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetConcurrency(v)
	})
}

// AddConcurrency adds v to the "concurrency" field.
func (u *AuditUpsertOne) AddConcurrency(v int) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.AddConcurrency(v)
	})
}

// UpdateConcurrency sets the "concurrency" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateConcurrency() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateConcurrency()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *AuditUpsertOne) SetCancelRequested(v bool) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateCancelRequested() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetVerifyWarning sets the "verify_warning" field.
func (u *AuditUpsertOne) SetVerifyWarning(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetVerifyWarning(v)
	})
}

// UpdateVerifyWarning sets the "verify_warning" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateVerifyWarning() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateVerifyWarning()
	})
}

// ClearVerifyWarning clears the value of the "verify_warning" field.
func (u *AuditUpsertOne) ClearVerifyWarning() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearVerifyWarning()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditUpsertOne) SetErrorMessage(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateErrorMessage() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditUpsertOne) ClearErrorMessage() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AuditUpsertOne) SetStartedAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateStartedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AuditUpsertOne) ClearStartedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AuditUpsertOne) SetCompletedAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateCompletedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AuditUpsertOne) ClearCompletedAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *AuditUpsertOne) SetPodID(v string) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdatePodID() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AuditUpsertOne) ClearPodID() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AuditUpsertOne) SetLastHeartbeatAt(v time.Time) *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AuditUpsertOne) UpdateLastHeartbeatAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AuditUpsertOne) ClearLastHeartbeatAt() *AuditUpsertOne {
	return u.Update(func(s *AuditUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *AuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditUpsertOne.ID is not supported by MySQL driver. Use AuditUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditCreateBulk is the builder for creating many Audit entities in bulk.
type AuditCreateBulk struct {
	config
	err      error
	builders []*AuditCreate
	conflict []sql.ConflictOption
}

// Save creates the Audit entities in the database.
func (_c *AuditCreateBulk) Save(ctx context.Context) ([]*Audit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Audit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditMutation)
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
func (_c *AuditCreateBulk) SaveX(ctx context.Context) []*Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Audit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditUpsert) {
//			SetCompanyName(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditUpsertBulk {
	_c.conflict = opts
	return &AuditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditCreateBulk) OnConflictColumns(columns ...string) *AuditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditUpsertBulk{
		create: _c,
	}
}

// AuditUpsertBulk is the builder for "upsert"-ing
// a bulk of Audit nodes.
type AuditUpsertBulk struct {
	create *AuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(audit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditUpsertBulk) UpdateNewValues() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(audit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(audit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Audit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditUpsertBulk) Ignore() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditUpsertBulk) DoNothing() *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditCreateBulk.OnConflict
// documentation for more info.
func (u *AuditUpsertBulk) Update(set func(*AuditUpsert)) *AuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *AuditUpsertBulk) SetCompanyName(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateCompanyName() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompanyName()
	})
}

// SetCompanyDomain sets the "company_domain" field.
func (u *AuditUpsertBulk) SetCompanyDomain(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompanyDomain(v)
	})
}

// UpdateCompanyDomain sets the "company_domain" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateCompanyDomain() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompanyDomain()
	})
}

// SetIndustry sets the "industry" field.
func (u *AuditUpsertBulk) SetIndustry(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateIndustry() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *AuditUpsertBulk) ClearIndustry() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearIndustry()
	})
}

// SetCompetitors sets the "competitors" field.
func (u *AuditUpsertBulk) SetCompetitors(v []string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompetitors(v)
	})
}

// UpdateCompetitors sets the "competitors" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateCompetitors() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompetitors()
	})
}

// ClearCompetitors clears the value of the "competitors" field.
func (u *AuditUpsertBulk) ClearCompetitors() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearCompetitors()
	})
}

// SetBrandAliases sets the "brand_aliases" field.
func (u *AuditUpsertBulk) SetBrandAliases(v []string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetBrandAliases(v)
	})
}

// UpdateBrandAliases sets the "brand_aliases" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateBrandAliases() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateBrandAliases()
	})
}

// ClearBrandAliases clears the value of the "brand_aliases" field.
func (u *AuditUpsertBulk) ClearBrandAliases() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearBrandAliases()
	})
}

// SetIncludeSubdomains sets the "include_subdomains" field.
func (u *AuditUpsertBulk) SetIncludeSubdomains(v bool) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetIncludeSubdomains(v)
	})
}

// UpdateIncludeSubdomains sets the "include_subdomains" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateIncludeSubdomains() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateIncludeSubdomains()
	})
}

// SetStatus sets the "status" field.
func (u *AuditUpsertBulk) SetStatus(v audit.Status) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateStatus() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStatus()
	})
}

// SetPhase sets the "phase" field.
func (u *AuditUpsertBulk) SetPhase(v audit.Phase) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdatePhase() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdatePhase()
	})
}

// SetTotalQueries sets the "total_queries" field.
func (u *AuditUpsertBulk) SetTotalQueries(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetTotalQueries(v)
	})
}

// AddTotalQueries adds v to the "total_queries" field.
func (u *AuditUpsertBulk) AddTotalQueries(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.AddTotalQueries(v)
	})
}

// UpdateTotalQueries sets the "total_queries" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateTotalQueries() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateTotalQueries()
	})
}

// SetQueriesCompleted sets the "queries_completed" field.
func (u *AuditUpsertBulk) SetQueriesCompleted(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetQueriesCompleted(v)
	})
}

// AddQueriesCompleted adds v to the "queries_completed" field.
func (u *AuditUpsertBulk) AddQueriesCompleted(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.AddQueriesCompleted(v)
	})
}

// UpdateQueriesCompleted sets the "queries_completed" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateQueriesCompleted() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateQueriesCompleted()
	})
}

// SetProviderPriority sets the "provider_priority" field.
func (u *AuditUpsertBulk) SetProviderPriority(v []string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetProviderPriority(v)
	})
}

// UpdateProviderPriority sets the "provider_priority" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateProviderPriority() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateProviderPriority()
	})
}

// ClearProviderPriority clears the value of the "provider_priority" field.
func (u *AuditUpsertBulk) ClearProviderPriority() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearProviderPriority()
	})
}

// SetConcurrency sets the "concurrency" field.
func (u *AuditUpsertBulk) SetConcurrency(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetConcurrency(v)
	})
}

// AddConcurrency adds v to the "concurrency" field.
func (u *AuditUpsertBulk) AddConcurrency(v int) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.AddConcurrency(v)
	})
}

// UpdateConcurrency sets the "concurrency" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateConcurrency() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateConcurrency()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *AuditUpsertBulk) SetCancelRequested(v bool) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateCancelRequested() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetVerifyWarning sets the "verify_warning" field.
func (u *AuditUpsertBulk) SetVerifyWarning(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetVerifyWarning(v)
	})
}

// UpdateVerifyWarning sets the "verify_warning" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateVerifyWarning() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateVerifyWarning()
	})
}

// ClearVerifyWarning clears the value of the "verify_warning" field.
func (u *AuditUpsertBulk) ClearVerifyWarning() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearVerifyWarning()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AuditUpsertBulk) SetErrorMessage(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateErrorMessage() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AuditUpsertBulk) ClearErrorMessage() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AuditUpsertBulk) SetStartedAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateStartedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AuditUpsertBulk) ClearStartedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AuditUpsertBulk) SetCompletedAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateCompletedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AuditUpsertBulk) ClearCompletedAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *AuditUpsertBulk) SetPodID(v string) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdatePodID() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AuditUpsertBulk) ClearPodID() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AuditUpsertBulk) SetLastHeartbeatAt(v time.Time) *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AuditUpsertBulk) UpdateLastHeartbeatAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AuditUpsertBulk) ClearLastHeartbeatAt() *AuditUpsertBulk {
	return u.Update(func(s *AuditUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *AuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
