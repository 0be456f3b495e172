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
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/executivesummary"
	"github.com/brandlens/brandlens/ent/predicate"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// AuditUpdate is the builder for updating Audit entities.
type AuditUpdate struct {
	config
	hooks    []Hook
	mutation *AuditMutation
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdate) Where(ps ...predicate.Audit) *AuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *AuditUpdate) SetCompanyName(v string) *AuditUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCompanyName(v *string) *AuditUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetCompanyDomain sets the "company_domain" field.
func (_u *AuditUpdate) SetCompanyDomain(v string) *AuditUpdate {
	_u.mutation.SetCompanyDomain(v)
	return _u
}

// SetNillableCompanyDomain sets the "company_domain" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCompanyDomain(v *string) *AuditUpdate {
	if v != nil {
		_u.SetCompanyDomain(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *AuditUpdate) SetIndustry(v string) *AuditUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableIndustry(v *string) *AuditUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *AuditUpdate) ClearIndustry() *AuditUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetCompetitors sets the "competitors" field.
func (_u *AuditUpdate) SetCompetitors(v []string) *AuditUpdate {
	_u.mutation.SetCompetitors(v)
	return _u
}

// AppendCompetitors appends value to the "competitors" field.
func (_u *AuditUpdate) AppendCompetitors(v []string) *AuditUpdate {
	_u.mutation.AppendCompetitors(v)
	return _u
}

// ClearCompetitors clears the value of the "competitors" field.
func (_u *AuditUpdate) ClearCompetitors() *AuditUpdate {
	_u.mutation.ClearCompetitors()
	return _u
}

// SetBrandAliases sets the "brand_aliases" field.
func (_u *AuditUpdate) SetBrandAliases(v []string) *AuditUpdate {
	_u.mutation.SetBrandAliases(v)
	return _u
}

// AppendBrandAliases appends value to the "brand_aliases" field.
func (_u *AuditUpdate) AppendBrandAliases(v []string) *AuditUpdate {
	_u.mutation.AppendBrandAliases(v)
	return _u
}

// ClearBrandAliases clears the value of the "brand_aliases" field.
func (_u *AuditUpdate) ClearBrandAliases() *AuditUpdate {
	_u.mutation.ClearBrandAliases()
	return _u
}

// SetIncludeSubdomains sets the "include_subdomains" field.
func (_u *AuditUpdate) SetIncludeSubdomains(v bool) *AuditUpdate {
	_u.mutation.SetIncludeSubdomains(v)
	return _u
}

// SetNillableIncludeSubdomains sets the "include_subdomains" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableIncludeSubdomains(v *bool) *AuditUpdate {
	if v != nil {
		_u.SetIncludeSubdomains(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditUpdate) SetStatus(v audit.Status) *AuditUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableStatus(v *audit.Status) *AuditUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AuditUpdate) SetPhase(v audit.Phase) *AuditUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AuditUpdate) SetNillablePhase(v *audit.Phase) *AuditUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTotalQueries sets the "total_queries" field.
func (_u *AuditUpdate) SetTotalQueries(v int) *AuditUpdate {
	_u.mutation.ResetTotalQueries()
	_u.mutation.SetTotalQueries(v)
	return _u
}

// SetNillableTotalQueries sets the "total_queries" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableTotalQueries(v *int) *AuditUpdate {
	if v != nil {
		_u.SetTotalQueries(*v)
	}
	return _u
}

// AddTotalQueries adds value to the "total_queries" field.
func (_u *AuditUpdate) AddTotalQueries(v int) *AuditUpdate {
	_u.mutation.AddTotalQueries(v)
	return _u
}

// SetQueriesCompleted sets the "queries_completed" field.
func (_u *AuditUpdate) SetQueriesCompleted(v int) *AuditUpdate {
	_u.mutation.ResetQueriesCompleted()
	_u.mutation.SetQueriesCompleted(v)
	return _u
}

// SetNillableQueriesCompleted sets the "queries_completed" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableQueriesCompleted(v *int) *AuditUpdate {
	if v != nil {
		_u.SetQueriesCompleted(*v)
	}
	return _u
}

// AddQueriesCompleted adds value to the "queries_completed" field.
func (_u *AuditUpdate) AddQueriesCompleted(v int) *AuditUpdate {
	_u.mutation.AddQueriesCompleted(v)
	return _u
}

// SetProviderPriority sets the "provider_priority" field.
func (_u *AuditUpdate) SetProviderPriority(v []string) *AuditUpdate {
	_u.mutation.SetProviderPriority(v)
	return _u
}

// AppendProviderPriority appends value to the "provider_priority" field.
func (_u *AuditUpdate) AppendProviderPriority(v []string) *AuditUpdate {
	_u.mutation.AppendProviderPriority(v)
	return _u
}

// ClearProviderPriority clears the value of the "provider_priority" field.
func (_u *AuditUpdate) ClearProviderPriority() *AuditUpdate {
	_u.mutation.ClearProviderPriority()
	return _u
}

// SetConcurrency sets the "concurrency" field.
func (_u *AuditUpdate) SetConcurrency(v int) *AuditUpdate {
	_u.mutation.ResetConcurrency()
	_u.mutation.SetConcurrency(v)
	return _u
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableConcurrency(v *int) *AuditUpdate {
	if v != nil {
		_u.SetConcurrency(*v)
	}
	return _u
}

// AddConcurrency adds value to the "concurrency" field.
func (_u *AuditUpdate) AddConcurrency(v int) *AuditUpdate {
	_u.mutation.AddConcurrency(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AuditUpdate) SetCancelRequested(v bool) *AuditUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCancelRequested(v *bool) *AuditUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetVerifyWarning sets the "verify_warning" field.
func (_u *AuditUpdate) SetVerifyWarning(v string) *AuditUpdate {
	_u.mutation.SetVerifyWarning(v)
	return _u
}

// SetNillableVerifyWarning sets the "verify_warning" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableVerifyWarning(v *string) *AuditUpdate {
	if v != nil {
		_u.SetVerifyWarning(*v)
	}
	return _u
}

// ClearVerifyWarning clears the value of the "verify_warning" field.
func (_u *AuditUpdate) ClearVerifyWarning() *AuditUpdate {
	_u.mutation.ClearVerifyWarning()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditUpdate) SetErrorMessage(v string) *AuditUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableErrorMessage(v *string) *AuditUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditUpdate) ClearErrorMessage() *AuditUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditUpdate) SetStartedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableStartedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditUpdate) ClearStartedAt() *AuditUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdate) SetCompletedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCompletedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdate) ClearCompletedAt() *AuditUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AuditUpdate) SetPodID(v string) *AuditUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AuditUpdate) SetNillablePodID(v *string) *AuditUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AuditUpdate) ClearPodID() *AuditUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AuditUpdate) SetLastHeartbeatAt(v time.Time) *AuditUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableLastHeartbeatAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AuditUpdate) ClearLastHeartbeatAt() *AuditUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by IDs.
func (_u *AuditUpdate) AddQueryIDs(ids ...string) *AuditUpdate {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the AuditQuery entity.
func (_u *AuditUpdate) AddQueries(v ...*AuditQuery) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the ProviderResponse entity by IDs.
func (_u *AuditUpdate) AddResponseIDs(ids ...string) *AuditUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the ProviderResponse entity.
func (_u *AuditUpdate) AddResponses(v ...*ProviderResponse) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddBatchInsightIDs adds the "batch_insights" edge to the BatchInsight entity by IDs.
func (_u *AuditUpdate) AddBatchInsightIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddBatchInsightIDs(ids...)
	return _u
}

// AddBatchInsights adds the "batch_insights" edges to the BatchInsight entity.
func (_u *AuditUpdate) AddBatchInsights(v ...*BatchInsight) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchInsightIDs(ids...)
}

// AddCategoryAggregateIDs adds the "category_aggregates" edge to the CategoryAggregate entity by IDs.
func (_u *AuditUpdate) AddCategoryAggregateIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddCategoryAggregateIDs(ids...)
	return _u
}

// AddCategoryAggregates adds the "category_aggregates" edges to the CategoryAggregate entity.
func (_u *AuditUpdate) AddCategoryAggregates(v ...*CategoryAggregate) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryAggregateIDs(ids...)
}

// AddStrategicPriorityIDs adds the "strategic_priorities" edge to the StrategicPriority entity by IDs.
func (_u *AuditUpdate) AddStrategicPriorityIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddStrategicPriorityIDs(ids...)
	return _u
}

// AddStrategicPriorities adds the "strategic_priorities" edges to the StrategicPriority entity.
func (_u *AuditUpdate) AddStrategicPriorities(v ...*StrategicPriority) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStrategicPriorityIDs(ids...)
}

// SetExecutiveSummaryID sets the "executive_summary" edge to the ExecutiveSummary entity by ID.
func (_u *AuditUpdate) SetExecutiveSummaryID(id int) *AuditUpdate {
	_u.mutation.SetExecutiveSummaryID(id)
	return _u
}

// SetNillableExecutiveSummaryID sets the "executive_summary" edge to the ExecutiveSummary entity by ID if the given value is not nil.
func (_u *AuditUpdate) SetNillableExecutiveSummaryID(id *int) *AuditUpdate {
	if id != nil {
		_u = _u.SetExecutiveSummaryID(*id)
	}
	return _u
}

// SetExecutiveSummary sets the "executive_summary" edge to the ExecutiveSummary entity.
func (_u *AuditUpdate) SetExecutiveSummary(v *ExecutiveSummary) *AuditUpdate {
	return _u.SetExecutiveSummaryID(v.ID)
}

// SetDashboardSnapshotID sets the "dashboard_snapshot" edge to the DashboardSnapshot entity by ID.
func (_u *AuditUpdate) SetDashboardSnapshotID(id int) *AuditUpdate {
	_u.mutation.SetDashboardSnapshotID(id)
	return _u
}

// SetNillableDashboardSnapshotID sets the "dashboard_snapshot" edge to the DashboardSnapshot entity by ID if the given value is not nil.
func (_u *AuditUpdate) SetNillableDashboardSnapshotID(id *int) *AuditUpdate {
	if id != nil {
		_u = _u.SetDashboardSnapshotID(*id)
	}
	return _u
}

// SetDashboardSnapshot sets the "dashboard_snapshot" edge to the DashboardSnapshot entity.
func (_u *AuditUpdate) SetDashboardSnapshot(v *DashboardSnapshot) *AuditUpdate {
	return _u.SetDashboardSnapshotID(v.ID)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdate) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearQueries clears all "queries" edges to the AuditQuery entity.
func (_u *AuditUpdate) ClearQueries() *AuditUpdate {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to AuditQuery entities by IDs.
func (_u *AuditUpdate) RemoveQueryIDs(ids ...string) *AuditUpdate {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to AuditQuery entities.
func (_u *AuditUpdate) RemoveQueries(v ...*AuditQuery) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearResponses clears all "responses" edges to the ProviderResponse entity.
func (_u *AuditUpdate) ClearResponses() *AuditUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to ProviderResponse entities by IDs.
func (_u *AuditUpdate) RemoveResponseIDs(ids ...string) *AuditUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to ProviderResponse entities.
func (_u *AuditUpdate) RemoveResponses(v ...*ProviderResponse) *AuditUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearBatchInsights clears all "batch_insights" edges to the BatchInsight entity.
func (_u *AuditUpdate) ClearBatchInsights() *AuditUpdate {
	_u.mutation.ClearBatchInsights()
	return _u
}

// RemoveBatchInsightIDs removes the "batch_insights" edge to BatchInsight entities by IDs.
func (_u *AuditUpdate) RemoveBatchInsightIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveBatchInsightIDs(ids...)
	return _u
}

// RemoveBatchInsights removes "batch_insights" edges to BatchInsight entities.
func (_u *AuditUpdate) RemoveBatchInsights(v ...*BatchInsight) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchInsightIDs(ids...)
}

// ClearCategoryAggregates clears all "category_aggregates" edges to the CategoryAggregate entity.
func (_u *AuditUpdate) ClearCategoryAggregates() *AuditUpdate {
	_u.mutation.ClearCategoryAggregates()
	return _u
}

// RemoveCategoryAggregateIDs removes the "category_aggregates" edge to CategoryAggregate entities by IDs.
func (_u *AuditUpdate) RemoveCategoryAggregateIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveCategoryAggregateIDs(ids...)
	return _u
}

// RemoveCategoryAggregates removes "category_aggregates" edges to CategoryAggregate entities.
func (_u *AuditUpdate) RemoveCategoryAggregates(v ...*CategoryAggregate) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryAggregateIDs(ids...)
}

// ClearStrategicPriorities clears all "strategic_priorities" edges to the StrategicPriority entity.
func (_u *AuditUpdate) ClearStrategicPriorities() *AuditUpdate {
	_u.mutation.ClearStrategicPriorities()
	return _u
}

// RemoveStrategicPriorityIDs removes the "strategic_priorities" edge to StrategicPriority entities by IDs.
func (_u *AuditUpdate) RemoveStrategicPriorityIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveStrategicPriorityIDs(ids...)
	return _u
}

// RemoveStrategicPriorities removes "strategic_priorities" edges to StrategicPriority entities.
func (_u *AuditUpdate) RemoveStrategicPriorities(v ...*StrategicPriority) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStrategicPriorityIDs(ids...)
}

// ClearExecutiveSummary clears the "executive_summary" edge to the ExecutiveSummary entity.
func (_u *AuditUpdate) ClearExecutiveSummary() *AuditUpdate {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// ClearDashboardSnapshot clears the "dashboard_snapshot" edge to the DashboardSnapshot entity.
func (_u *AuditUpdate) ClearDashboardSnapshot() *AuditUpdate {
	_u.mutation.ClearDashboardSnapshot()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := audit.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Audit.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(audit.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyDomain(); ok {
		_spec.SetField(audit.FieldCompanyDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(audit.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(audit.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Competitors(); ok {
		_spec.SetField(audit.FieldCompetitors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldCompetitors, value)
		})
	}
	if _u.mutation.CompetitorsCleared() {
		_spec.ClearField(audit.FieldCompetitors, field.TypeJSON)
	}
	if value, ok := _u.mutation.BrandAliases(); ok {
		_spec.SetField(audit.FieldBrandAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBrandAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldBrandAliases, value)
		})
	}
	if _u.mutation.BrandAliasesCleared() {
		_spec.ClearField(audit.FieldBrandAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.IncludeSubdomains(); ok {
		_spec.SetField(audit.FieldIncludeSubdomains, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(audit.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalQueries(); ok {
		_spec.SetField(audit.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQueries(); ok {
		_spec.AddField(audit.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueriesCompleted(); ok {
		_spec.SetField(audit.FieldQueriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueriesCompleted(); ok {
		_spec.AddField(audit.FieldQueriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProviderPriority(); ok {
		_spec.SetField(audit.FieldProviderPriority, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProviderPriority(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldProviderPriority, value)
		})
	}
	if _u.mutation.ProviderPriorityCleared() {
		_spec.ClearField(audit.FieldProviderPriority, field.TypeJSON)
	}
	if value, ok := _u.mutation.Concurrency(); ok {
		_spec.SetField(audit.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrency(); ok {
		_spec.AddField(audit.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(audit.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifyWarning(); ok {
		_spec.SetField(audit.FieldVerifyWarning, field.TypeString, value)
	}
	if _u.mutation.VerifyWarningCleared() {
		_spec.ClearField(audit.FieldVerifyWarning, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(audit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(audit.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(audit.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(audit.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(audit.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(audit.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchInsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchInsightsIDs(); len(nodes) > 0 && !_u.mutation.BatchInsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchInsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryAggregatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoryAggregatesIDs(); len(nodes) > 0 && !_u.mutation.CategoryAggregatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryAggregatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StrategicPrioritiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStrategicPrioritiesIDs(); len(nodes) > 0 && !_u.mutation.StrategicPrioritiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrategicPrioritiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutiveSummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DashboardSnapshotCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DashboardSnapshotIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditUpdateOne is the builder for updating a single Audit entity.
type AuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditMutation
}

// SetCompanyName sets the "company_name" field.
func (_u *AuditUpdateOne) SetCompanyName(v string) *AuditUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCompanyName(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetCompanyDomain sets the "company_domain" field.
func (_u *AuditUpdateOne) SetCompanyDomain(v string) *AuditUpdateOne {
	_u.mutation.SetCompanyDomain(v)
	return _u
}

// SetNillableCompanyDomain sets the "company_domain" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCompanyDomain(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetCompanyDomain(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *AuditUpdateOne) SetIndustry(v string) *AuditUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableIndustry(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *AuditUpdateOne) ClearIndustry() *AuditUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetCompetitors sets the "competitors" field.
func (_u *AuditUpdateOne) SetCompetitors(v []string) *AuditUpdateOne {
	_u.mutation.SetCompetitors(v)
	return _u
}

// AppendCompetitors appends value to the "competitors" field.
func (_u *AuditUpdateOne) AppendCompetitors(v []string) *AuditUpdateOne {
	_u.mutation.AppendCompetitors(v)
	return _u
}

// ClearCompetitors clears the value of the "competitors" field.
func (_u *AuditUpdateOne) ClearCompetitors() *AuditUpdateOne {
	_u.mutation.ClearCompetitors()
	return _u
}

// SetBrandAliases sets the "brand_aliases" field.
func (_u *AuditUpdateOne) SetBrandAliases(v []string) *AuditUpdateOne {
	_u.mutation.SetBrandAliases(v)
	return _u
}

// AppendBrandAliases appends value to the "brand_aliases" field.
func (_u *AuditUpdateOne) AppendBrandAliases(v []string) *AuditUpdateOne {
	_u.mutation.AppendBrandAliases(v)
	return _u
}

// ClearBrandAliases clears the value of the "brand_aliases" field.
func (_u *AuditUpdateOne) ClearBrandAliases() *AuditUpdateOne {
	_u.mutation.ClearBrandAliases()
	return _u
}

// SetIncludeSubdomains sets the "include_subdomains" field.
func (_u *AuditUpdateOne) SetIncludeSubdomains(v bool) *AuditUpdateOne {
	_u.mutation.SetIncludeSubdomains(v)
	return _u
}

// SetNillableIncludeSubdomains sets the "include_subdomains" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableIncludeSubdomains(v *bool) *AuditUpdateOne {
	if v != nil {
		_u.SetIncludeSubdomains(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditUpdateOne) SetStatus(v audit.Status) *AuditUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableStatus(v *audit.Status) *AuditUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AuditUpdateOne) SetPhase(v audit.Phase) *AuditUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillablePhase(v *audit.Phase) *AuditUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTotalQueries sets the "total_queries" field.
func (_u *AuditUpdateOne) SetTotalQueries(v int) *AuditUpdateOne {
	_u.mutation.ResetTotalQueries()
	_u.mutation.SetTotalQueries(v)
	return _u
}

// SetNillableTotalQueries sets the "total_queries" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableTotalQueries(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetTotalQueries(*v)
	}
	return _u
}

// AddTotalQueries adds value to the "total_queries" field.
func (_u *AuditUpdateOne) AddTotalQueries(v int) *AuditUpdateOne {
	_u.mutation.AddTotalQueries(v)
	return _u
}

// SetQueriesCompleted sets the "queries_completed" field.
func (_u *AuditUpdateOne) SetQueriesCompleted(v int) *AuditUpdateOne {
	_u.mutation.ResetQueriesCompleted()
	_u.mutation.SetQueriesCompleted(v)
	return _u
}

// SetNillableQueriesCompleted sets the "queries_completed" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableQueriesCompleted(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetQueriesCompleted(*v)
	}
	return _u
}

// AddQueriesCompleted adds value to the "queries_completed" field.
func (_u *AuditUpdateOne) AddQueriesCompleted(v int) *AuditUpdateOne {
	_u.mutation.AddQueriesCompleted(v)
	return _u
}

// SetProviderPriority sets the "provider_priority" field.
func (_u *AuditUpdateOne) SetProviderPriority(v []string) *AuditUpdateOne {
	_u.mutation.SetProviderPriority(v)
	return _u
}

// AppendProviderPriority appends value to the "provider_priority" field.
func (_u *AuditUpdateOne) AppendProviderPriority(v []string) *AuditUpdateOne {
	_u.mutation.AppendProviderPriority(v)
	return _u
}

// ClearProviderPriority clears the value of the "provider_priority" field.
func (_u *AuditUpdateOne) ClearProviderPriority() *AuditUpdateOne {
	_u.mutation.ClearProviderPriority()
	return _u
}

// SetConcurrency sets the "concurrency" field.
func (_u *AuditUpdateOne) SetConcurrency(v int) *AuditUpdateOne {
	_u.mutation.ResetConcurrency()
	_u.mutation.SetConcurrency(v)
	return _u
}

// SetNillableConcurrency sets the "concurrency" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableConcurrency(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetConcurrency(*v)
	}
	return _u
}

// AddConcurrency adds value to the "concurrency" field.
func (_u *AuditUpdateOne) AddConcurrency(v int) *AuditUpdateOne {
	_u.mutation.AddConcurrency(v)
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AuditUpdateOne) SetCancelRequested(v bool) *AuditUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCancelRequested(v *bool) *AuditUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetVerifyWarning sets the "verify_warning" field.
func (_u *AuditUpdateOne) SetVerifyWarning(v string) *AuditUpdateOne {
	_u.mutation.SetVerifyWarning(v)
	return _u
}

// SetNillableVerifyWarning sets the "verify_warning" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableVerifyWarning(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetVerifyWarning(*v)
	}
	return _u
}

// ClearVerifyWarning clears the value of the "verify_warning" field.
func (_u *AuditUpdateOne) ClearVerifyWarning() *AuditUpdateOne {
	_u.mutation.ClearVerifyWarning()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditUpdateOne) SetErrorMessage(v string) *AuditUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableErrorMessage(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditUpdateOne) ClearErrorMessage() *AuditUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditUpdateOne) SetStartedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableStartedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditUpdateOne) ClearStartedAt() *AuditUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdateOne) SetCompletedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCompletedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdateOne) ClearCompletedAt() *AuditUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AuditUpdateOne) SetPodID(v string) *AuditUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillablePodID(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AuditUpdateOne) ClearPodID() *AuditUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AuditUpdateOne) SetLastHeartbeatAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AuditUpdateOne) ClearLastHeartbeatAt() *AuditUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by IDs.
func (_u *AuditUpdateOne) AddQueryIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.AddQueryIDs(ids...)
	return _u
}

// AddQueries adds the "queries" edges to the AuditQuery entity.
func (_u *AuditUpdateOne) AddQueries(v ...*AuditQuery) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQueryIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the ProviderResponse entity by IDs.
func (_u *AuditUpdateOne) AddResponseIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the ProviderResponse entity.
func (_u *AuditUpdateOne) AddResponses(v ...*ProviderResponse) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// AddBatchInsightIDs adds the "batch_insights" edge to the BatchInsight entity by IDs.
func (_u *AuditUpdateOne) AddBatchInsightIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddBatchInsightIDs(ids...)
	return _u
}

// AddBatchInsights adds the "batch_insights" edges to the BatchInsight entity.
func (_u *AuditUpdateOne) AddBatchInsights(v ...*BatchInsight) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchInsightIDs(ids...)
}

// AddCategoryAggregateIDs adds the "category_aggregates" edge to the CategoryAggregate entity by IDs.
func (_u *AuditUpdateOne) AddCategoryAggregateIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddCategoryAggregateIDs(ids...)
	return _u
}

// AddCategoryAggregates adds the "category_aggregates" edges to the CategoryAggregate entity.
func (_u *AuditUpdateOne) AddCategoryAggregates(v ...*CategoryAggregate) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryAggregateIDs(ids...)
}

// AddStrategicPriorityIDs adds the "strategic_priorities" edge to the StrategicPriority entity by IDs.
func (_u *AuditUpdateOne) AddStrategicPriorityIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddStrategicPriorityIDs(ids...)
	return _u
}

// AddStrategicPriorities adds the "strategic_priorities" edges to the StrategicPriority entity.
func (_u *AuditUpdateOne) AddStrategicPriorities(v ...*StrategicPriority) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStrategicPriorityIDs(ids...)
}

// SetExecutiveSummaryID sets the "executive_summary" edge to the ExecutiveSummary entity by ID.
func (_u *AuditUpdateOne) SetExecutiveSummaryID(id int) *AuditUpdateOne {
	_u.mutation.SetExecutiveSummaryID(id)
	return _u
}

// SetNillableExecutiveSummaryID sets the "executive_summary" edge to the ExecutiveSummary entity by ID if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableExecutiveSummaryID(id *int) *AuditUpdateOne {
	if id != nil {
		_u = _u.SetExecutiveSummaryID(*id)
	}
	return _u
}

// SetExecutiveSummary sets the "executive_summary" edge to the ExecutiveSummary entity.
func (_u *AuditUpdateOne) SetExecutiveSummary(v *ExecutiveSummary) *AuditUpdateOne {
	return _u.SetExecutiveSummaryID(v.ID)
}

// SetDashboardSnapshotID sets the "dashboard_snapshot" edge to the DashboardSnapshot entity by ID.
func (_u *AuditUpdateOne) SetDashboardSnapshotID(id int) *AuditUpdateOne {
	_u.mutation.SetDashboardSnapshotID(id)
	return _u
}

// SetNillableDashboardSnapshotID sets the "dashboard_snapshot" edge to the DashboardSnapshot entity by ID if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableDashboardSnapshotID(id *int) *AuditUpdateOne {
	if id != nil {
		_u = _u.SetDashboardSnapshotID(*id)
	}
	return _u
}

// SetDashboardSnapshot sets the "dashboard_snapshot" edge to the DashboardSnapshot entity.
func (_u *AuditUpdateOne) SetDashboardSnapshot(v *DashboardSnapshot) *AuditUpdateOne {
	return _u.SetDashboardSnapshotID(v.ID)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdateOne) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearQueries clears all "queries" edges to the AuditQuery entity.
func (_u *AuditUpdateOne) ClearQueries() *AuditUpdateOne {
	_u.mutation.ClearQueries()
	return _u
}

// RemoveQueryIDs removes the "queries" edge to AuditQuery entities by IDs.
func (_u *AuditUpdateOne) RemoveQueryIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.RemoveQueryIDs(ids...)
	return _u
}

// RemoveQueries removes "queries" edges to AuditQuery entities.
func (_u *AuditUpdateOne) RemoveQueries(v ...*AuditQuery) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQueryIDs(ids...)
}

// ClearResponses clears all "responses" edges to the ProviderResponse entity.
func (_u *AuditUpdateOne) ClearResponses() *AuditUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to ProviderResponse entities by IDs.
func (_u *AuditUpdateOne) RemoveResponseIDs(ids ...string) *AuditUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to ProviderResponse entities.
func (_u *AuditUpdateOne) RemoveResponses(v ...*ProviderResponse) *AuditUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// ClearBatchInsights clears all "batch_insights" edges to the BatchInsight entity.
func (_u *AuditUpdateOne) ClearBatchInsights() *AuditUpdateOne {
	_u.mutation.ClearBatchInsights()
	return _u
}

// RemoveBatchInsightIDs removes the "batch_insights" edge to BatchInsight entities by IDs.
func (_u *AuditUpdateOne) RemoveBatchInsightIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveBatchInsightIDs(ids...)
	return _u
}

// RemoveBatchInsights removes "batch_insights" edges to BatchInsight entities.
func (_u *AuditUpdateOne) RemoveBatchInsights(v ...*BatchInsight) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchInsightIDs(ids...)
}

// ClearCategoryAggregates clears all "category_aggregates" edges to the CategoryAggregate entity.
func (_u *AuditUpdateOne) ClearCategoryAggregates() *AuditUpdateOne {
	_u.mutation.ClearCategoryAggregates()
	return _u
}

// RemoveCategoryAggregateIDs removes the "category_aggregates" edge to CategoryAggregate entities by IDs.
func (_u *AuditUpdateOne) RemoveCategoryAggregateIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveCategoryAggregateIDs(ids...)
	return _u
}

// RemoveCategoryAggregates removes "category_aggregates" edges to CategoryAggregate entities.
func (_u *AuditUpdateOne) RemoveCategoryAggregates(v ...*CategoryAggregate) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryAggregateIDs(ids...)
}

// ClearStrategicPriorities clears all "strategic_priorities" edges to the StrategicPriority entity.
func (_u *AuditUpdateOne) ClearStrategicPriorities() *AuditUpdateOne {
	_u.mutation.ClearStrategicPriorities()
	return _u
}

// RemoveStrategicPriorityIDs removes the "strategic_priorities" edge to StrategicPriority entities by IDs.
func (_u *AuditUpdateOne) RemoveStrategicPriorityIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveStrategicPriorityIDs(ids...)
	return _u
}

// RemoveStrategicPriorities removes "strategic_priorities" edges to StrategicPriority entities.
func (_u *AuditUpdateOne) RemoveStrategicPriorities(v ...*StrategicPriority) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStrategicPriorityIDs(ids...)
}

// ClearExecutiveSummary clears the "executive_summary" edge to the ExecutiveSummary entity.
func (_u *AuditUpdateOne) ClearExecutiveSummary() *AuditUpdateOne {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// ClearDashboardSnapshot clears the "dashboard_snapshot" edge to the DashboardSnapshot entity.
func (_u *AuditUpdateOne) ClearDashboardSnapshot() *AuditUpdateOne {
	_u.mutation.ClearDashboardSnapshot()
	return _u
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdateOne) Where(ps ...predicate.Audit) *AuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditUpdateOne) Select(field string, fields ...string) *AuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Audit entity.
func (_u *AuditUpdateOne) Save(ctx context.Context) (*Audit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdateOne) SaveX(ctx context.Context) *Audit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := audit.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Audit.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditUpdateOne) sqlSave(ctx context.Context) (_node *Audit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Audit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audit.FieldID)
		for _, f := range fields {
			if !audit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audit.FieldID {
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
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(audit.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyDomain(); ok {
		_spec.SetField(audit.FieldCompanyDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(audit.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(audit.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Competitors(); ok {
		_spec.SetField(audit.FieldCompetitors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldCompetitors, value)
		})
	}
	if _u.mutation.CompetitorsCleared() {
		_spec.ClearField(audit.FieldCompetitors, field.TypeJSON)
	}
	if value, ok := _u.mutation.BrandAliases(); ok {
		_spec.SetField(audit.FieldBrandAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBrandAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldBrandAliases, value)
		})
	}
	if _u.mutation.BrandAliasesCleared() {
		_spec.ClearField(audit.FieldBrandAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.IncludeSubdomains(); ok {
		_spec.SetField(audit.FieldIncludeSubdomains, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(audit.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalQueries(); ok {
		_spec.SetField(audit.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQueries(); ok {
		_spec.AddField(audit.FieldTotalQueries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueriesCompleted(); ok {
		_spec.SetField(audit.FieldQueriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueriesCompleted(); ok {
		_spec.AddField(audit.FieldQueriesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProviderPriority(); ok {
		_spec.SetField(audit.FieldProviderPriority, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProviderPriority(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audit.FieldProviderPriority, value)
		})
	}
	if _u.mutation.ProviderPriorityCleared() {
		_spec.ClearField(audit.FieldProviderPriority, field.TypeJSON)
	}
	if value, ok := _u.mutation.Concurrency(); ok {
		_spec.SetField(audit.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrency(); ok {
		_spec.AddField(audit.FieldConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(audit.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifyWarning(); ok {
		_spec.SetField(audit.FieldVerifyWarning, field.TypeString, value)
	}
	if _u.mutation.VerifyWarningCleared() {
		_spec.ClearField(audit.FieldVerifyWarning, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(audit.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(audit.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(audit.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(audit.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(audit.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(audit.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(audit.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQueriesIDs(); len(nodes) > 0 && !_u.mutation.QueriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QueriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchInsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchInsightsIDs(); len(nodes) > 0 && !_u.mutation.BatchInsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchInsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryAggregatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoryAggregatesIDs(); len(nodes) > 0 && !_u.mutation.CategoryAggregatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryAggregatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StrategicPrioritiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStrategicPrioritiesIDs(); len(nodes) > 0 && !_u.mutation.StrategicPrioritiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrategicPrioritiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutiveSummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DashboardSnapshotCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DashboardSnapshotIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Audit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
