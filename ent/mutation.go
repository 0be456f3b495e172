// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/event"
	"github.com/brandlens/brandlens/ent/executivesummary"
	"github.com/brandlens/brandlens/ent/predicate"
	"github.com/brandlens/brandlens/ent/providerledger"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/ent/rankingsnapshot"
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudit             = "Audit"
	TypeAuditQuery        = "AuditQuery"
	TypeBatchInsight      = "BatchInsight"
	TypeCategoryAggregate = "CategoryAggregate"
	TypeDashboardSnapshot = "DashboardSnapshot"
	TypeEvent             = "Event"
	TypeExecutiveSummary  = "ExecutiveSummary"
	TypeProviderLedger    = "ProviderLedger"
	TypeProviderResponse  = "ProviderResponse"
	TypeRankingSnapshot   = "RankingSnapshot"
	TypeStrategicPriority = "StrategicPriority"
)

// AuditMutation represents an operation that mutates the Audit nodes in the graph.
type AuditMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	company_name                *string
	company_domain              *string
	industry                    *string
	competitors                 *[]string
	appendcompetitors           []string
	brand_aliases               *[]string
	appendbrand_aliases         []string
	include_subdomains          *bool
	status                      *audit.Status
	phase                       *audit.Phase
	total_queries               *int
	addtotal_queries            *int
	queries_completed           *int
	addqueries_completed        *int
	provider_priority           *[]string
	appendprovider_priority     []string
	concurrency                 *int
	addconcurrency              *int
	cancel_requested            *bool
	verify_warning              *string
	error_message               *string
	created_at                  *time.Time
	started_at                  *time.Time
	completed_at                *time.Time
	pod_id                      *string
	last_heartbeat_at           *time.Time
	clearedFields               map[string]struct{}
	queries                     map[string]struct{}
	removedqueries              map[string]struct{}
	clearedqueries              bool
	responses                   map[string]struct{}
	removedresponses            map[string]struct{}
	clearedresponses            bool
	batch_insights              map[int]struct{}
	removedbatch_insights       map[int]struct{}
	clearedbatch_insights       bool
	category_aggregates         map[int]struct{}
	removedcategory_aggregates  map[int]struct{}
	clearedcategory_aggregates  bool
	strategic_priorities        map[int]struct{}
	removedstrategic_priorities map[int]struct{}
	clearedstrategic_priorities bool
	executive_summary           *int
	clearedexecutive_summary    bool
	dashboard_snapshot          *int
	cleareddashboard_snapshot   bool
	done                        bool
	oldValue                    func(context.Context) (*Audit, error)
	predicates                  []predicate.Audit
}

var _ ent.Mutation = (*AuditMutation)(nil)

// auditOption allows management of the mutation configuration using functional options.
type auditOption func(*AuditMutation)

// newAuditMutation creates new mutation for the Audit entity.
func newAuditMutation(c config, op Op, opts ...auditOption) *AuditMutation {
	m := &AuditMutation{
		config:        c,
		op:            op,
		typ:           TypeAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditID sets the ID field of the mutation.
func withAuditID(id string) auditOption {
	return func(m *AuditMutation) {
		var (
			err   error
			once  sync.Once
			value *Audit
		)
		m.oldValue = func(ctx context.Context) (*Audit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Audit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudit sets the old Audit of the mutation.
func withAudit(node *Audit) auditOption {
	return func(m *AuditMutation) {
		m.oldValue = func(context.Context) (*Audit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Audit entities.
func (m *AuditMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Audit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyName sets the "company_name" field.
func (m *AuditMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *AuditMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *AuditMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetCompanyDomain sets the "company_domain" field.
func (m *AuditMutation) SetCompanyDomain(s string) {
	m.company_domain = &s
}

// CompanyDomain returns the value of the "company_domain" field in the mutation.
func (m *AuditMutation) CompanyDomain() (r string, exists bool) {
	v := m.company_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyDomain returns the old "company_domain" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompanyDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyDomain: %w", err)
	}
	return oldValue.CompanyDomain, nil
}

// ResetCompanyDomain resets all changes to the "company_domain" field.
func (m *AuditMutation) ResetCompanyDomain() {
	m.company_domain = nil
}

// SetIndustry sets the "industry" field.
func (m *AuditMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *AuditMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ClearIndustry clears the value of the "industry" field.
func (m *AuditMutation) ClearIndustry() {
	m.industry = nil
	m.clearedFields[audit.FieldIndustry] = struct{}{}
}

// IndustryCleared returns if the "industry" field was cleared in this mutation.
func (m *AuditMutation) IndustryCleared() bool {
	_, ok := m.clearedFields[audit.FieldIndustry]
	return ok
}

// ResetIndustry resets all changes to the "industry" field.
func (m *AuditMutation) ResetIndustry() {
	m.industry = nil
	delete(m.clearedFields, audit.FieldIndustry)
}

// SetCompetitors sets the "competitors" field.
func (m *AuditMutation) SetCompetitors(s []string) {
	m.competitors = &s
	m.appendcompetitors = nil
}

// Competitors returns the value of the "competitors" field in the mutation.
func (m *AuditMutation) Competitors() (r []string, exists bool) {
	v := m.competitors
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitors returns the old "competitors" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompetitors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitors: %w", err)
	}
	return oldValue.Competitors, nil
}

// AppendCompetitors adds s to the "competitors" field.
func (m *AuditMutation) AppendCompetitors(s []string) {
	m.appendcompetitors = append(m.appendcompetitors, s...)
}

// AppendedCompetitors returns the list of values that were appended to the "competitors" field in this mutation.
func (m *AuditMutation) AppendedCompetitors() ([]string, bool) {
	if len(m.appendcompetitors) == 0 {
		return nil, false
	}
	return m.appendcompetitors, true
}

// ClearCompetitors clears the value of the "competitors" field.
func (m *AuditMutation) ClearCompetitors() {
	m.competitors = nil
	m.appendcompetitors = nil
	m.clearedFields[audit.FieldCompetitors] = struct{}{}
}

// CompetitorsCleared returns if the "competitors" field was cleared in this mutation.
func (m *AuditMutation) CompetitorsCleared() bool {
	_, ok := m.clearedFields[audit.FieldCompetitors]
	return ok
}

// ResetCompetitors resets all changes to the "competitors" field.
func (m *AuditMutation) ResetCompetitors() {
	m.competitors = nil
	m.appendcompetitors = nil
	delete(m.clearedFields, audit.FieldCompetitors)
}

// SetBrandAliases sets the "brand_aliases" field.
func (m *AuditMutation) SetBrandAliases(s []string) {
	m.brand_aliases = &s
	m.appendbrand_aliases = nil
}

// BrandAliases returns the value of the "brand_aliases" field in the mutation.
func (m *AuditMutation) BrandAliases() (r []string, exists bool) {
	v := m.brand_aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandAliases returns the old "brand_aliases" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldBrandAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandAliases: %w", err)
	}
	return oldValue.BrandAliases, nil
}

// AppendBrandAliases adds s to the "brand_aliases" field.
func (m *AuditMutation) AppendBrandAliases(s []string) {
	m.appendbrand_aliases = append(m.appendbrand_aliases, s...)
}

// AppendedBrandAliases returns the list of values that were appended to the "brand_aliases" field in this mutation.
func (m *AuditMutation) AppendedBrandAliases() ([]string, bool) {
	if len(m.appendbrand_aliases) == 0 {
		return nil, false
	}
	return m.appendbrand_aliases, true
}

// ClearBrandAliases clears the value of the "brand_aliases" field.
func (m *AuditMutation) ClearBrandAliases() {
	m.brand_aliases = nil
	m.appendbrand_aliases = nil
	m.clearedFields[audit.FieldBrandAliases] = struct{}{}
}

// BrandAliasesCleared returns if the "brand_aliases" field was cleared in this mutation.
func (m *AuditMutation) BrandAliasesCleared() bool {
	_, ok := m.clearedFields[audit.FieldBrandAliases]
	return ok
}

// ResetBrandAliases resets all changes to the "brand_aliases" field.
func (m *AuditMutation) ResetBrandAliases() {
	m.brand_aliases = nil
	m.appendbrand_aliases = nil
	delete(m.clearedFields, audit.FieldBrandAliases)
}

// SetIncludeSubdomains sets the "include_subdomains" field.
func (m *AuditMutation) SetIncludeSubdomains(b bool) {
	m.include_subdomains = &b
}

// IncludeSubdomains returns the value of the "include_subdomains" field in the mutation.
func (m *AuditMutation) IncludeSubdomains() (r bool, exists bool) {
	v := m.include_subdomains
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeSubdomains returns the old "include_subdomains" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldIncludeSubdomains(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeSubdomains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeSubdomains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeSubdomains: %w", err)
	}
	return oldValue.IncludeSubdomains, nil
}

// ResetIncludeSubdomains resets all changes to the "include_subdomains" field.
func (m *AuditMutation) ResetIncludeSubdomains() {
	m.include_subdomains = nil
}

// SetStatus sets the "status" field.
func (m *AuditMutation) SetStatus(a audit.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditMutation) Status() (r audit.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStatus(ctx context.Context) (v audit.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditMutation) ResetStatus() {
	m.status = nil
}

// SetPhase sets the "phase" field.
func (m *AuditMutation) SetPhase(a audit.Phase) {
	m.phase = &a
}

// Phase returns the value of the "phase" field in the mutation.
func (m *AuditMutation) Phase() (r audit.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldPhase(ctx context.Context) (v audit.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *AuditMutation) ResetPhase() {
	m.phase = nil
}

// SetTotalQueries sets the "total_queries" field.
func (m *AuditMutation) SetTotalQueries(i int) {
	m.total_queries = &i
	m.addtotal_queries = nil
}

// TotalQueries returns the value of the "total_queries" field in the mutation.
func (m *AuditMutation) TotalQueries() (r int, exists bool) {
	v := m.total_queries
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQueries returns the old "total_queries" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldTotalQueries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQueries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQueries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQueries: %w", err)
	}
	return oldValue.TotalQueries, nil
}

// AddTotalQueries adds i to the "total_queries" field.
func (m *AuditMutation) AddTotalQueries(i int) {
	if m.addtotal_queries != nil {
		*m.addtotal_queries += i
	} else {
		m.addtotal_queries = &i
	}
}

// AddedTotalQueries returns the value that was added to the "total_queries" field in this mutation.
func (m *AuditMutation) AddedTotalQueries() (r int, exists bool) {
	v := m.addtotal_queries
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQueries resets all changes to the "total_queries" field.
func (m *AuditMutation) ResetTotalQueries() {
	m.total_queries = nil
	m.addtotal_queries = nil
}

// SetQueriesCompleted sets the "queries_completed" field.
func (m *AuditMutation) SetQueriesCompleted(i int) {
	m.queries_completed = &i
	m.addqueries_completed = nil
}

// QueriesCompleted returns the value of the "queries_completed" field in the mutation.
func (m *AuditMutation) QueriesCompleted() (r int, exists bool) {
	v := m.queries_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldQueriesCompleted returns the old "queries_completed" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldQueriesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueriesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueriesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueriesCompleted: %w", err)
	}
	return oldValue.QueriesCompleted, nil
}

// AddQueriesCompleted adds i to the "queries_completed" field.
func (m *AuditMutation) AddQueriesCompleted(i int) {
	if m.addqueries_completed != nil {
		*m.addqueries_completed += i
	} else {
		m.addqueries_completed = &i
	}
}

// AddedQueriesCompleted returns the value that was added to the "queries_completed" field in this mutation.
func (m *AuditMutation) AddedQueriesCompleted() (r int, exists bool) {
	v := m.addqueries_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetQueriesCompleted resets all changes to the "queries_completed" field.
func (m *AuditMutation) ResetQueriesCompleted() {
	m.queries_completed = nil
	m.addqueries_completed = nil
}

// SetProviderPriority sets the "provider_priority" field.
func (m *AuditMutation) SetProviderPriority(s []string) {
	m.provider_priority = &s
	m.appendprovider_priority = nil
}

// ProviderPriority returns the value of the "provider_priority" field in the mutation.
func (m *AuditMutation) ProviderPriority() (r []string, exists bool) {
	v := m.provider_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderPriority returns the old "provider_priority" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldProviderPriority(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderPriority: %w", err)
	}
	return oldValue.ProviderPriority, nil
}

// AppendProviderPriority adds s to the "provider_priority" field.
func (m *AuditMutation) AppendProviderPriority(s []string) {
	m.appendprovider_priority = append(m.appendprovider_priority, s...)
}

// AppendedProviderPriority returns the list of values that were appended to the "provider_priority" field in this mutation.
func (m *AuditMutation) AppendedProviderPriority() ([]string, bool) {
	if len(m.appendprovider_priority) == 0 {
		return nil, false
	}
	return m.appendprovider_priority, true
}

// ClearProviderPriority clears the value of the "provider_priority" field.
func (m *AuditMutation) ClearProviderPriority() {
	m.provider_priority = nil
	m.appendprovider_priority = nil
	m.clearedFields[audit.FieldProviderPriority] = struct{}{}
}

// ProviderPriorityCleared returns if the "provider_priority" field was cleared in this mutation.
func (m *AuditMutation) ProviderPriorityCleared() bool {
	_, ok := m.clearedFields[audit.FieldProviderPriority]
	return ok
}

// ResetProviderPriority resets all changes to the "provider_priority" field.
func (m *AuditMutation) ResetProviderPriority() {
	m.provider_priority = nil
	m.appendprovider_priority = nil
	delete(m.clearedFields, audit.FieldProviderPriority)
}

// SetConcurrency sets the "concurrency" field.
func (m *AuditMutation) SetConcurrency(i int) {
	m.concurrency = &i
	m.addconcurrency = nil
}

// Concurrency returns the value of the "concurrency" field in the mutation.
func (m *AuditMutation) Concurrency() (r int, exists bool) {
	v := m.concurrency
	if v == nil {
		return
	}
	return *v, true
}

// OldConcurrency returns the old "concurrency" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldConcurrency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcurrency: %w", err)
	}
	return oldValue.Concurrency, nil
}

// AddConcurrency adds i to the "concurrency" field.
func (m *AuditMutation) AddConcurrency(i int) {
	if m.addconcurrency != nil {
		*m.addconcurrency += i
	} else {
		m.addconcurrency = &i
	}
}

// AddedConcurrency returns the value that was added to the "concurrency" field in this mutation.
func (m *AuditMutation) AddedConcurrency() (r int, exists bool) {
	v := m.addconcurrency
	if v == nil {
		return
	}
	return *v, true
}

// ResetConcurrency resets all changes to the "concurrency" field.
func (m *AuditMutation) ResetConcurrency() {
	m.concurrency = nil
	m.addconcurrency = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *AuditMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *AuditMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *AuditMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetVerifyWarning sets the "verify_warning" field.
func (m *AuditMutation) SetVerifyWarning(s string) {
	m.verify_warning = &s
}

// VerifyWarning returns the value of the "verify_warning" field in the mutation.
func (m *AuditMutation) VerifyWarning() (r string, exists bool) {
	v := m.verify_warning
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifyWarning returns the old "verify_warning" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldVerifyWarning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifyWarning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifyWarning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifyWarning: %w", err)
	}
	return oldValue.VerifyWarning, nil
}

// ClearVerifyWarning clears the value of the "verify_warning" field.
func (m *AuditMutation) ClearVerifyWarning() {
	m.verify_warning = nil
	m.clearedFields[audit.FieldVerifyWarning] = struct{}{}
}

// VerifyWarningCleared returns if the "verify_warning" field was cleared in this mutation.
func (m *AuditMutation) VerifyWarningCleared() bool {
	_, ok := m.clearedFields[audit.FieldVerifyWarning]
	return ok
}

// ResetVerifyWarning resets all changes to the "verify_warning" field.
func (m *AuditMutation) ResetVerifyWarning() {
	m.verify_warning = nil
	delete(m.clearedFields, audit.FieldVerifyWarning)
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[audit.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[audit.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, audit.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AuditMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AuditMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AuditMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[audit.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AuditMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AuditMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, audit.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AuditMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AuditMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AuditMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[audit.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AuditMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AuditMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, audit.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *AuditMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AuditMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AuditMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[audit.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AuditMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[audit.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AuditMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, audit.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *AuditMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *AuditMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *AuditMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[audit.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *AuditMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *AuditMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, audit.FieldLastHeartbeatAt)
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by ids.
func (m *AuditMutation) AddQueryIDs(ids ...string) {
	if m.queries == nil {
		m.queries = make(map[string]struct{})
	}
	for i := range ids {
		m.queries[ids[i]] = struct{}{}
	}
}

// ClearQueries clears the "queries" edge to the AuditQuery entity.
func (m *AuditMutation) ClearQueries() {
	m.clearedqueries = true
}

// QueriesCleared reports if the "queries" edge to the AuditQuery entity was cleared.
func (m *AuditMutation) QueriesCleared() bool {
	return m.clearedqueries
}

// RemoveQueryIDs removes the "queries" edge to the AuditQuery entity by IDs.
func (m *AuditMutation) RemoveQueryIDs(ids ...string) {
	if m.removedqueries == nil {
		m.removedqueries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.queries, ids[i])
		m.removedqueries[ids[i]] = struct{}{}
	}
}

// RemovedQueries returns the removed IDs of the "queries" edge to the AuditQuery entity.
func (m *AuditMutation) RemovedQueriesIDs() (ids []string) {
	for id := range m.removedqueries {
		ids = append(ids, id)
	}
	return
}

// QueriesIDs returns the "queries" edge IDs in the mutation.
func (m *AuditMutation) QueriesIDs() (ids []string) {
	for id := range m.queries {
		ids = append(ids, id)
	}
	return
}

// ResetQueries resets all changes to the "queries" edge.
func (m *AuditMutation) ResetQueries() {
	m.queries = nil
	m.clearedqueries = false
	m.removedqueries = nil
}

// AddResponseIDs adds the "responses" edge to the ProviderResponse entity by ids.
func (m *AuditMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the ProviderResponse entity.
func (m *AuditMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the ProviderResponse entity was cleared.
func (m *AuditMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the ProviderResponse entity by IDs.
func (m *AuditMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the ProviderResponse entity.
func (m *AuditMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *AuditMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *AuditMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// AddBatchInsightIDs adds the "batch_insights" edge to the BatchInsight entity by ids.
func (m *AuditMutation) AddBatchInsightIDs(ids ...int) {
	if m.batch_insights == nil {
		m.batch_insights = make(map[int]struct{})
	}
	for i := range ids {
		m.batch_insights[ids[i]] = struct{}{}
	}
}

// ClearBatchInsights clears the "batch_insights" edge to the BatchInsight entity.
func (m *AuditMutation) ClearBatchInsights() {
	m.clearedbatch_insights = true
}

// BatchInsightsCleared reports if the "batch_insights" edge to the BatchInsight entity was cleared.
func (m *AuditMutation) BatchInsightsCleared() bool {
	return m.clearedbatch_insights
}

// RemoveBatchInsightIDs removes the "batch_insights" edge to the BatchInsight entity by IDs.
func (m *AuditMutation) RemoveBatchInsightIDs(ids ...int) {
	if m.removedbatch_insights == nil {
		m.removedbatch_insights = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.batch_insights, ids[i])
		m.removedbatch_insights[ids[i]] = struct{}{}
	}
}

// RemovedBatchInsights returns the removed IDs of the "batch_insights" edge to the BatchInsight entity.
func (m *AuditMutation) RemovedBatchInsightsIDs() (ids []int) {
	for id := range m.removedbatch_insights {
		ids = append(ids, id)
	}
	return
}

// BatchInsightsIDs returns the "batch_insights" edge IDs in the mutation.
func (m *AuditMutation) BatchInsightsIDs() (ids []int) {
	for id := range m.batch_insights {
		ids = append(ids, id)
	}
	return
}

// ResetBatchInsights resets all changes to the "batch_insights" edge.
func (m *AuditMutation) ResetBatchInsights() {
	m.batch_insights = nil
	m.clearedbatch_insights = false
	m.removedbatch_insights = nil
}

// AddCategoryAggregateIDs adds the "category_aggregates" edge to the CategoryAggregate entity by ids.
func (m *AuditMutation) AddCategoryAggregateIDs(ids ...int) {
	if m.category_aggregates == nil {
		m.category_aggregates = make(map[int]struct{})
	}
	for i := range ids {
		m.category_aggregates[ids[i]] = struct{}{}
	}
}

// ClearCategoryAggregates clears the "category_aggregates" edge to the CategoryAggregate entity.
func (m *AuditMutation) ClearCategoryAggregates() {
	m.clearedcategory_aggregates = true
}

// CategoryAggregatesCleared reports if the "category_aggregates" edge to the CategoryAggregate entity was cleared.
func (m *AuditMutation) CategoryAggregatesCleared() bool {
	return m.clearedcategory_aggregates
}

// RemoveCategoryAggregateIDs removes the "category_aggregates" edge to the CategoryAggregate entity by IDs.
func (m *AuditMutation) RemoveCategoryAggregateIDs(ids ...int) {
	if m.removedcategory_aggregates == nil {
		m.removedcategory_aggregates = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.category_aggregates, ids[i])
		m.removedcategory_aggregates[ids[i]] = struct{}{}
	}
}

// RemovedCategoryAggregates returns the removed IDs of the "category_aggregates" edge to the CategoryAggregate entity.
func (m *AuditMutation) RemovedCategoryAggregatesIDs() (ids []int) {
	for id := range m.removedcategory_aggregates {
		ids = append(ids, id)
	}
	return
}

// CategoryAggregatesIDs returns the "category_aggregates" edge IDs in the mutation.
func (m *AuditMutation) CategoryAggregatesIDs() (ids []int) {
	for id := range m.category_aggregates {
		ids = append(ids, id)
	}
	return
}

// ResetCategoryAggregates resets all changes to the "category_aggregates" edge.
func (m *AuditMutation) ResetCategoryAggregates() {
	m.category_aggregates = nil
	m.clearedcategory_aggregates = false
	m.removedcategory_aggregates = nil
}

// AddStrategicPriorityIDs adds the "strategic_priorities" edge to the StrategicPriority entity by ids.
func (m *AuditMutation) AddStrategicPriorityIDs(ids ...int) {
	if m.strategic_priorities == nil {
		m.strategic_priorities = make(map[int]struct{})
	}
	for i := range ids {
		m.strategic_priorities[ids[i]] = struct{}{}
	}
}

// ClearStrategicPriorities clears the "strategic_priorities" edge to the StrategicPriority entity.
func (m *AuditMutation) ClearStrategicPriorities() {
	m.clearedstrategic_priorities = true
}

// StrategicPrioritiesCleared reports if the "strategic_priorities" edge to the StrategicPriority entity was cleared.
func (m *AuditMutation) StrategicPrioritiesCleared() bool {
	return m.clearedstrategic_priorities
}

// RemoveStrategicPriorityIDs removes the "strategic_priorities" edge to the StrategicPriority entity by IDs.
func (m *AuditMutation) RemoveStrategicPriorityIDs(ids ...int) {
	if m.removedstrategic_priorities == nil {
		m.removedstrategic_priorities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.strategic_priorities, ids[i])
		m.removedstrategic_priorities[ids[i]] = struct{}{}
	}
}

// RemovedStrategicPriorities returns the removed IDs of the "strategic_priorities" edge to the StrategicPriority entity.
func (m *AuditMutation) RemovedStrategicPrioritiesIDs() (ids []int) {
	for id := range m.removedstrategic_priorities {
		ids = append(ids, id)
	}
	return
}

// StrategicPrioritiesIDs returns the "strategic_priorities" edge IDs in the mutation.
func (m *AuditMutation) StrategicPrioritiesIDs() (ids []int) {
	for id := range m.strategic_priorities {
		ids = append(ids, id)
	}
	return
}

// ResetStrategicPriorities resets all changes to the "strategic_priorities" edge.
func (m *AuditMutation) ResetStrategicPriorities() {
	m.strategic_priorities = nil
	m.clearedstrategic_priorities = false
	m.removedstrategic_priorities = nil
}

// SetExecutiveSummaryID sets the "executive_summary" edge to the ExecutiveSummary entity by id.
func (m *AuditMutation) SetExecutiveSummaryID(id int) {
	m.executive_summary = &id
}

// ClearExecutiveSummary clears the "executive_summary" edge to the ExecutiveSummary entity.
func (m *AuditMutation) ClearExecutiveSummary() {
	m.clearedexecutive_summary = true
}

// ExecutiveSummaryCleared reports if the "executive_summary" edge to the ExecutiveSummary entity was cleared.
func (m *AuditMutation) ExecutiveSummaryCleared() bool {
	return m.clearedexecutive_summary
}

// ExecutiveSummaryID returns the "executive_summary" edge ID in the mutation.
func (m *AuditMutation) ExecutiveSummaryID() (id int, exists bool) {
	if m.executive_summary != nil {
		return *m.executive_summary, true
	}
	return
}

// ExecutiveSummaryIDs returns the "executive_summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutiveSummaryID instead. It exists only for internal usage by the builders.
func (m *AuditMutation) ExecutiveSummaryIDs() (ids []int) {
	if id := m.executive_summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecutiveSummary resets all changes to the "executive_summary" edge.
func (m *AuditMutation) ResetExecutiveSummary() {
	m.executive_summary = nil
	m.clearedexecutive_summary = false
}

// SetDashboardSnapshotID sets the "dashboard_snapshot" edge to the DashboardSnapshot entity by id.
func (m *AuditMutation) SetDashboardSnapshotID(id int) {
	m.dashboard_snapshot = &id
}

// ClearDashboardSnapshot clears the "dashboard_snapshot" edge to the DashboardSnapshot entity.
func (m *AuditMutation) ClearDashboardSnapshot() {
	m.cleareddashboard_snapshot = true
}

// DashboardSnapshotCleared reports if the "dashboard_snapshot" edge to the DashboardSnapshot entity was cleared.
func (m *AuditMutation) DashboardSnapshotCleared() bool {
	return m.cleareddashboard_snapshot
}

// DashboardSnapshotID returns the "dashboard_snapshot" edge ID in the mutation.
func (m *AuditMutation) DashboardSnapshotID() (id int, exists bool) {
	if m.dashboard_snapshot != nil {
		return *m.dashboard_snapshot, true
	}
	return
}

// DashboardSnapshotIDs returns the "dashboard_snapshot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DashboardSnapshotID instead. It exists only for internal usage by the builders.
func (m *AuditMutation) DashboardSnapshotIDs() (ids []int) {
	if id := m.dashboard_snapshot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDashboardSnapshot resets all changes to the "dashboard_snapshot" edge.
func (m *AuditMutation) ResetDashboardSnapshot() {
	m.dashboard_snapshot = nil
	m.cleareddashboard_snapshot = false
}

// Where appends a list predicates to the AuditMutation builder.
func (m *AuditMutation) Where(ps ...predicate.Audit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Audit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Audit).
func (m *AuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.company_name != nil {
		fields = append(fields, audit.FieldCompanyName)
	}
	if m.company_domain != nil {
		fields = append(fields, audit.FieldCompanyDomain)
	}
	if m.industry != nil {
		fields = append(fields, audit.FieldIndustry)
	}
	if m.competitors != nil {
		fields = append(fields, audit.FieldCompetitors)
	}
	if m.brand_aliases != nil {
		fields = append(fields, audit.FieldBrandAliases)
	}
	if m.include_subdomains != nil {
		fields = append(fields, audit.FieldIncludeSubdomains)
	}
	if m.status != nil {
		fields = append(fields, audit.FieldStatus)
	}
	if m.phase != nil {
		fields = append(fields, audit.FieldPhase)
	}
	if m.total_queries != nil {
		fields = append(fields, audit.FieldTotalQueries)
	}
	if m.queries_completed != nil {
		fields = append(fields, audit.FieldQueriesCompleted)
	}
	if m.provider_priority != nil {
		fields = append(fields, audit.FieldProviderPriority)
	}
	if m.concurrency != nil {
		fields = append(fields, audit.FieldConcurrency)
	}
	if m.cancel_requested != nil {
		fields = append(fields, audit.FieldCancelRequested)
	}
	if m.verify_warning != nil {
		fields = append(fields, audit.FieldVerifyWarning)
	}
	if m.error_message != nil {
		fields = append(fields, audit.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, audit.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, audit.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, audit.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, audit.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, audit.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldCompanyName:
		return m.CompanyName()
	case audit.FieldCompanyDomain:
		return m.CompanyDomain()
	case audit.FieldIndustry:
		return m.Industry()
	case audit.FieldCompetitors:
		return m.Competitors()
	case audit.FieldBrandAliases:
		return m.BrandAliases()
	case audit.FieldIncludeSubdomains:
		return m.IncludeSubdomains()
	case audit.FieldStatus:
		return m.Status()
	case audit.FieldPhase:
		return m.Phase()
	case audit.FieldTotalQueries:
		return m.TotalQueries()
	case audit.FieldQueriesCompleted:
		return m.QueriesCompleted()
	case audit.FieldProviderPriority:
		return m.ProviderPriority()
	case audit.FieldConcurrency:
		return m.Concurrency()
	case audit.FieldCancelRequested:
		return m.CancelRequested()
	case audit.FieldVerifyWarning:
		return m.VerifyWarning()
	case audit.FieldErrorMessage:
		return m.ErrorMessage()
	case audit.FieldCreatedAt:
		return m.CreatedAt()
	case audit.FieldStartedAt:
		return m.StartedAt()
	case audit.FieldCompletedAt:
		return m.CompletedAt()
	case audit.FieldPodID:
		return m.PodID()
	case audit.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audit.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case audit.FieldCompanyDomain:
		return m.OldCompanyDomain(ctx)
	case audit.FieldIndustry:
		return m.OldIndustry(ctx)
	case audit.FieldCompetitors:
		return m.OldCompetitors(ctx)
	case audit.FieldBrandAliases:
		return m.OldBrandAliases(ctx)
	case audit.FieldIncludeSubdomains:
		return m.OldIncludeSubdomains(ctx)
	case audit.FieldStatus:
		return m.OldStatus(ctx)
	case audit.FieldPhase:
		return m.OldPhase(ctx)
	case audit.FieldTotalQueries:
		return m.OldTotalQueries(ctx)
	case audit.FieldQueriesCompleted:
		return m.OldQueriesCompleted(ctx)
	case audit.FieldProviderPriority:
		return m.OldProviderPriority(ctx)
	case audit.FieldConcurrency:
		return m.OldConcurrency(ctx)
	case audit.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case audit.FieldVerifyWarning:
		return m.OldVerifyWarning(ctx)
	case audit.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case audit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case audit.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case audit.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case audit.FieldPodID:
		return m.OldPodID(ctx)
	case audit.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Audit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audit.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case audit.FieldCompanyDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyDomain(v)
		return nil
	case audit.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case audit.FieldCompetitors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitors(v)
		return nil
	case audit.FieldBrandAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandAliases(v)
		return nil
	case audit.FieldIncludeSubdomains:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeSubdomains(v)
		return nil
	case audit.FieldStatus:
		v, ok := value.(audit.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case audit.FieldPhase:
		v, ok := value.(audit.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case audit.FieldTotalQueries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQueries(v)
		return nil
	case audit.FieldQueriesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueriesCompleted(v)
		return nil
	case audit.FieldProviderPriority:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderPriority(v)
		return nil
	case audit.FieldConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcurrency(v)
		return nil
	case audit.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case audit.FieldVerifyWarning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifyWarning(v)
		return nil
	case audit.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case audit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case audit.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case audit.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case audit.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case audit.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_queries != nil {
		fields = append(fields, audit.FieldTotalQueries)
	}
	if m.addqueries_completed != nil {
		fields = append(fields, audit.FieldQueriesCompleted)
	}
	if m.addconcurrency != nil {
		fields = append(fields, audit.FieldConcurrency)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldTotalQueries:
		return m.AddedTotalQueries()
	case audit.FieldQueriesCompleted:
		return m.AddedQueriesCompleted()
	case audit.FieldConcurrency:
		return m.AddedConcurrency()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	case audit.FieldTotalQueries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQueries(v)
		return nil
	case audit.FieldQueriesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueriesCompleted(v)
		return nil
	case audit.FieldConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConcurrency(v)
		return nil
	}
	return fmt.Errorf("unknown Audit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audit.FieldIndustry) {
		fields = append(fields, audit.FieldIndustry)
	}
	if m.FieldCleared(audit.FieldCompetitors) {
		fields = append(fields, audit.FieldCompetitors)
	}
	if m.FieldCleared(audit.FieldBrandAliases) {
		fields = append(fields, audit.FieldBrandAliases)
	}
	if m.FieldCleared(audit.FieldProviderPriority) {
		fields = append(fields, audit.FieldProviderPriority)
	}
	if m.FieldCleared(audit.FieldVerifyWarning) {
		fields = append(fields, audit.FieldVerifyWarning)
	}
	if m.FieldCleared(audit.FieldErrorMessage) {
		fields = append(fields, audit.FieldErrorMessage)
	}
	if m.FieldCleared(audit.FieldStartedAt) {
		fields = append(fields, audit.FieldStartedAt)
	}
	if m.FieldCleared(audit.FieldCompletedAt) {
		fields = append(fields, audit.FieldCompletedAt)
	}
	if m.FieldCleared(audit.FieldPodID) {
		fields = append(fields, audit.FieldPodID)
	}
	if m.FieldCleared(audit.FieldLastHeartbeatAt) {
		fields = append(fields, audit.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditMutation) ClearField(name string) error {
	switch name {
	case audit.FieldIndustry:
		m.ClearIndustry()
		return nil
	case audit.FieldCompetitors:
		m.ClearCompetitors()
		return nil
	case audit.FieldBrandAliases:
		m.ClearBrandAliases()
		return nil
	case audit.FieldProviderPriority:
		m.ClearProviderPriority()
		return nil
	case audit.FieldVerifyWarning:
		m.ClearVerifyWarning()
		return nil
	case audit.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case audit.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case audit.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case audit.FieldPodID:
		m.ClearPodID()
		return nil
	case audit.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Audit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditMutation) ResetField(name string) error {
	switch name {
	case audit.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case audit.FieldCompanyDomain:
		m.ResetCompanyDomain()
		return nil
	case audit.FieldIndustry:
		m.ResetIndustry()
		return nil
	case audit.FieldCompetitors:
		m.ResetCompetitors()
		return nil
	case audit.FieldBrandAliases:
		m.ResetBrandAliases()
		return nil
	case audit.FieldIncludeSubdomains:
		m.ResetIncludeSubdomains()
		return nil
	case audit.FieldStatus:
		m.ResetStatus()
		return nil
	case audit.FieldPhase:
		m.ResetPhase()
		return nil
	case audit.FieldTotalQueries:
		m.ResetTotalQueries()
		return nil
	case audit.FieldQueriesCompleted:
		m.ResetQueriesCompleted()
		return nil
	case audit.FieldProviderPriority:
		m.ResetProviderPriority()
		return nil
	case audit.FieldConcurrency:
		m.ResetConcurrency()
		return nil
	case audit.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case audit.FieldVerifyWarning:
		m.ResetVerifyWarning()
		return nil
	case audit.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case audit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case audit.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case audit.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case audit.FieldPodID:
		m.ResetPodID()
		return nil
	case audit.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.queries != nil {
		edges = append(edges, audit.EdgeQueries)
	}
	if m.responses != nil {
		edges = append(edges, audit.EdgeResponses)
	}
	if m.batch_insights != nil {
		edges = append(edges, audit.EdgeBatchInsights)
	}
	if m.category_aggregates != nil {
		edges = append(edges, audit.EdgeCategoryAggregates)
	}
	if m.strategic_priorities != nil {
		edges = append(edges, audit.EdgeStrategicPriorities)
	}
	if m.executive_summary != nil {
		edges = append(edges, audit.EdgeExecutiveSummary)
	}
	if m.dashboard_snapshot != nil {
		edges = append(edges, audit.EdgeDashboardSnapshot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.queries))
		for id := range m.queries {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeBatchInsights:
		ids := make([]ent.Value, 0, len(m.batch_insights))
		for id := range m.batch_insights {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeCategoryAggregates:
		ids := make([]ent.Value, 0, len(m.category_aggregates))
		for id := range m.category_aggregates {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeStrategicPriorities:
		ids := make([]ent.Value, 0, len(m.strategic_priorities))
		for id := range m.strategic_priorities {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeExecutiveSummary:
		if id := m.executive_summary; id != nil {
			return []ent.Value{*id}
		}
	case audit.EdgeDashboardSnapshot:
		if id := m.dashboard_snapshot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedqueries != nil {
		edges = append(edges, audit.EdgeQueries)
	}
	if m.removedresponses != nil {
		edges = append(edges, audit.EdgeResponses)
	}
	if m.removedbatch_insights != nil {
		edges = append(edges, audit.EdgeBatchInsights)
	}
	if m.removedcategory_aggregates != nil {
		edges = append(edges, audit.EdgeCategoryAggregates)
	}
	if m.removedstrategic_priorities != nil {
		edges = append(edges, audit.EdgeStrategicPriorities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.removedqueries))
		for id := range m.removedqueries {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeBatchInsights:
		ids := make([]ent.Value, 0, len(m.removedbatch_insights))
		for id := range m.removedbatch_insights {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeCategoryAggregates:
		ids := make([]ent.Value, 0, len(m.removedcategory_aggregates))
		for id := range m.removedcategory_aggregates {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeStrategicPriorities:
		ids := make([]ent.Value, 0, len(m.removedstrategic_priorities))
		for id := range m.removedstrategic_priorities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedqueries {
		edges = append(edges, audit.EdgeQueries)
	}
	if m.clearedresponses {
		edges = append(edges, audit.EdgeResponses)
	}
	if m.clearedbatch_insights {
		edges = append(edges, audit.EdgeBatchInsights)
	}
	if m.clearedcategory_aggregates {
		edges = append(edges, audit.EdgeCategoryAggregates)
	}
	if m.clearedstrategic_priorities {
		edges = append(edges, audit.EdgeStrategicPriorities)
	}
	if m.clearedexecutive_summary {
		edges = append(edges, audit.EdgeExecutiveSummary)
	}
	if m.cleareddashboard_snapshot {
		edges = append(edges, audit.EdgeDashboardSnapshot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditMutation) EdgeCleared(name string) bool {
	switch name {
	case audit.EdgeQueries:
		return m.clearedqueries
	case audit.EdgeResponses:
		return m.clearedresponses
	case audit.EdgeBatchInsights:
		return m.clearedbatch_insights
	case audit.EdgeCategoryAggregates:
		return m.clearedcategory_aggregates
	case audit.EdgeStrategicPriorities:
		return m.clearedstrategic_priorities
	case audit.EdgeExecutiveSummary:
		return m.clearedexecutive_summary
	case audit.EdgeDashboardSnapshot:
		return m.cleareddashboard_snapshot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditMutation) ClearEdge(name string) error {
	switch name {
	case audit.EdgeExecutiveSummary:
		m.ClearExecutiveSummary()
		return nil
	case audit.EdgeDashboardSnapshot:
		m.ClearDashboardSnapshot()
		return nil
	}
	return fmt.Errorf("unknown Audit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditMutation) ResetEdge(name string) error {
	switch name {
	case audit.EdgeQueries:
		m.ResetQueries()
		return nil
	case audit.EdgeResponses:
		m.ResetResponses()
		return nil
	case audit.EdgeBatchInsights:
		m.ResetBatchInsights()
		return nil
	case audit.EdgeCategoryAggregates:
		m.ResetCategoryAggregates()
		return nil
	case audit.EdgeStrategicPriorities:
		m.ResetStrategicPriorities()
		return nil
	case audit.EdgeExecutiveSummary:
		m.ResetExecutiveSummary()
		return nil
	case audit.EdgeDashboardSnapshot:
		m.ResetDashboardSnapshot()
		return nil
	}
	return fmt.Errorf("unknown Audit edge %s", name)
}

// AuditQueryMutation represents an operation that mutates the AuditQuery nodes in the graph.
type AuditQueryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	text                 *string
	category             *auditquery.Category
	intent               *string
	priority             *auditquery.Priority
	difficulty           *int
	adddifficulty        *int
	position_in_audit    *int
	addposition_in_audit *int
	clearedFields        map[string]struct{}
	audit                *string
	clearedaudit         bool
	done                 bool
	oldValue             func(context.Context) (*AuditQuery, error)
	predicates           []predicate.AuditQuery
}

var _ ent.Mutation = (*AuditQueryMutation)(nil)

// auditqueryOption allows management of the mutation configuration using functional options.
type auditqueryOption func(*AuditQueryMutation)

// newAuditQueryMutation creates new mutation for the AuditQuery entity.
func newAuditQueryMutation(c config, op Op, opts ...auditqueryOption) *AuditQueryMutation {
	m := &AuditQueryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditQuery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditQueryID sets the ID field of the mutation.
func withAuditQueryID(id string) auditqueryOption {
	return func(m *AuditQueryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditQuery
		)
		m.oldValue = func(ctx context.Context) (*AuditQuery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditQuery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditQuery sets the old AuditQuery of the mutation.
func withAuditQuery(node *AuditQuery) auditqueryOption {
	return func(m *AuditQueryMutation) {
		m.oldValue = func(context.Context) (*AuditQuery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditQueryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditQueryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditQuery entities.
func (m *AuditQueryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditQueryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditQueryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditQuery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditQueryMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditQueryMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditQueryMutation) ResetAuditID() {
	m.audit = nil
}

// SetText sets the "text" field.
func (m *AuditQueryMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *AuditQueryMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *AuditQueryMutation) ResetText() {
	m.text = nil
}

// SetCategory sets the "category" field.
func (m *AuditQueryMutation) SetCategory(a auditquery.Category) {
	m.category = &a
}

// Category returns the value of the "category" field in the mutation.
func (m *AuditQueryMutation) Category() (r auditquery.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldCategory(ctx context.Context) (v auditquery.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AuditQueryMutation) ResetCategory() {
	m.category = nil
}

// SetIntent sets the "intent" field.
func (m *AuditQueryMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *AuditQueryMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *AuditQueryMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[auditquery.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *AuditQueryMutation) IntentCleared() bool {
	_, ok := m.clearedFields[auditquery.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *AuditQueryMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, auditquery.FieldIntent)
}

// SetPriority sets the "priority" field.
func (m *AuditQueryMutation) SetPriority(a auditquery.Priority) {
	m.priority = &a
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AuditQueryMutation) Priority() (r auditquery.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldPriority(ctx context.Context) (v auditquery.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *AuditQueryMutation) ResetPriority() {
	m.priority = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *AuditQueryMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *AuditQueryMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *AuditQueryMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *AuditQueryMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *AuditQueryMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetPositionInAudit sets the "position_in_audit" field.
func (m *AuditQueryMutation) SetPositionInAudit(i int) {
	m.position_in_audit = &i
	m.addposition_in_audit = nil
}

// PositionInAudit returns the value of the "position_in_audit" field in the mutation.
func (m *AuditQueryMutation) PositionInAudit() (r int, exists bool) {
	v := m.position_in_audit
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionInAudit returns the old "position_in_audit" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldPositionInAudit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionInAudit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionInAudit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionInAudit: %w", err)
	}
	return oldValue.PositionInAudit, nil
}

// AddPositionInAudit adds i to the "position_in_audit" field.
func (m *AuditQueryMutation) AddPositionInAudit(i int) {
	if m.addposition_in_audit != nil {
		*m.addposition_in_audit += i
	} else {
		m.addposition_in_audit = &i
	}
}

// AddedPositionInAudit returns the value that was added to the "position_in_audit" field in this mutation.
func (m *AuditQueryMutation) AddedPositionInAudit() (r int, exists bool) {
	v := m.addposition_in_audit
	if v == nil {
		return
	}
	return *v, true
}

// ResetPositionInAudit resets all changes to the "position_in_audit" field.
func (m *AuditQueryMutation) ResetPositionInAudit() {
	m.position_in_audit = nil
	m.addposition_in_audit = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditQueryMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditquery.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditQueryMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditQueryMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditQueryMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the AuditQueryMutation builder.
func (m *AuditQueryMutation) Where(ps ...predicate.AuditQuery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditQueryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditQueryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditQuery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditQueryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditQueryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditQuery).
func (m *AuditQueryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditQueryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.audit != nil {
		fields = append(fields, auditquery.FieldAuditID)
	}
	if m.text != nil {
		fields = append(fields, auditquery.FieldText)
	}
	if m.category != nil {
		fields = append(fields, auditquery.FieldCategory)
	}
	if m.intent != nil {
		fields = append(fields, auditquery.FieldIntent)
	}
	if m.priority != nil {
		fields = append(fields, auditquery.FieldPriority)
	}
	if m.difficulty != nil {
		fields = append(fields, auditquery.FieldDifficulty)
	}
	if m.position_in_audit != nil {
		fields = append(fields, auditquery.FieldPositionInAudit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditQueryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditquery.FieldAuditID:
		return m.AuditID()
	case auditquery.FieldText:
		return m.Text()
	case auditquery.FieldCategory:
		return m.Category()
	case auditquery.FieldIntent:
		return m.Intent()
	case auditquery.FieldPriority:
		return m.Priority()
	case auditquery.FieldDifficulty:
		return m.Difficulty()
	case auditquery.FieldPositionInAudit:
		return m.PositionInAudit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditQueryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditquery.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditquery.FieldText:
		return m.OldText(ctx)
	case auditquery.FieldCategory:
		return m.OldCategory(ctx)
	case auditquery.FieldIntent:
		return m.OldIntent(ctx)
	case auditquery.FieldPriority:
		return m.OldPriority(ctx)
	case auditquery.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case auditquery.FieldPositionInAudit:
		return m.OldPositionInAudit(ctx)
	}
	return nil, fmt.Errorf("unknown AuditQuery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditQueryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditquery.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditquery.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case auditquery.FieldCategory:
		v, ok := value.(auditquery.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case auditquery.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case auditquery.FieldPriority:
		v, ok := value.(auditquery.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case auditquery.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case auditquery.FieldPositionInAudit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionInAudit(v)
		return nil
	}
	return fmt.Errorf("unknown AuditQuery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditQueryMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, auditquery.FieldDifficulty)
	}
	if m.addposition_in_audit != nil {
		fields = append(fields, auditquery.FieldPositionInAudit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditQueryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditquery.FieldDifficulty:
		return m.AddedDifficulty()
	case auditquery.FieldPositionInAudit:
		return m.AddedPositionInAudit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditQueryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditquery.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case auditquery.FieldPositionInAudit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPositionInAudit(v)
		return nil
	}
	return fmt.Errorf("unknown AuditQuery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditQueryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditquery.FieldIntent) {
		fields = append(fields, auditquery.FieldIntent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditQueryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditQueryMutation) ClearField(name string) error {
	switch name {
	case auditquery.FieldIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditQueryMutation) ResetField(name string) error {
	switch name {
	case auditquery.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditquery.FieldText:
		m.ResetText()
		return nil
	case auditquery.FieldCategory:
		m.ResetCategory()
		return nil
	case auditquery.FieldIntent:
		m.ResetIntent()
		return nil
	case auditquery.FieldPriority:
		m.ResetPriority()
		return nil
	case auditquery.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case auditquery.FieldPositionInAudit:
		m.ResetPositionInAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditQueryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, auditquery.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditQueryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditquery.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditQueryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditQueryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditQueryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, auditquery.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditQueryMutation) EdgeCleared(name string) bool {
	switch name {
	case auditquery.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditQueryMutation) ClearEdge(name string) error {
	switch name {
	case auditquery.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditQueryMutation) ResetEdge(name string) error {
	switch name {
	case auditquery.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery edge %s", name)
}

// BatchInsightMutation represents an operation that mutates the BatchInsight nodes in the graph.
type BatchInsightMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	category           *batchinsight.Category
	batch_number       *int
	addbatch_number    *int
	extraction_type    *batchinsight.ExtractionType
	insights           *[]string
	appendinsights     []string
	response_ids       *[]string
	appendresponse_ids []string
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	audit              *string
	clearedaudit       bool
	done               bool
	oldValue           func(context.Context) (*BatchInsight, error)
	predicates         []predicate.BatchInsight
}

var _ ent.Mutation = (*BatchInsightMutation)(nil)

// batchinsightOption allows management of the mutation configuration using functional options.
type batchinsightOption func(*BatchInsightMutation)

// newBatchInsightMutation creates new mutation for the BatchInsight entity.
func newBatchInsightMutation(c config, op Op, opts ...batchinsightOption) *BatchInsightMutation {
	m := &BatchInsightMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchInsightID sets the ID field of the mutation.
func withBatchInsightID(id int) batchinsightOption {
	return func(m *BatchInsightMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchInsight
		)
		m.oldValue = func(ctx context.Context) (*BatchInsight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchInsight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchInsight sets the old BatchInsight of the mutation.
func withBatchInsight(node *BatchInsight) batchinsightOption {
	return func(m *BatchInsightMutation) {
		m.oldValue = func(context.Context) (*BatchInsight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchInsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchInsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchInsightMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchInsightMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchInsight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *BatchInsightMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *BatchInsightMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the BatchInsight entity.
// If the BatchInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchInsightMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *BatchInsightMutation) ResetAuditID() {
	m.audit = nil
}

// SetCategory sets the "category" field.
func (m *BatchInsightMutation) SetCategory(b batchinsight.Category) {
	m.category = &b
}

// Category returns the value of the "category" field in the mutation.
func (m *BatchInsightMutation) Category() (r batchinsight.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the BatchInsight entity.
// If the BatchInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchInsightMutation) OldCategory(ctx context.Context) (v batchinsight.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *BatchInsightMutation) ResetCategory() {
	m.category = nil
}

// SetBatchNumber sets the "batch_number" field.
func (m *BatchInsightMutation) SetBatchNumber(i int) {
	m.batch_number = &i
	m.addbatch_number = nil
}

// BatchNumber returns the value of the "batch_number" field in the mutation.
func (m *BatchInsightMutation) BatchNumber() (r int, exists bool) {
	v := m.batch_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchNumber returns the old "batch_number" field's value of the BatchInsight entity.
// If the BatchInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchInsightMutation) OldBatchNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchNumber: %w", err)
	}
	return oldValue.BatchNumber, nil
}

// AddBatchNumber adds i to the "batch_number" field.
func (m *BatchInsightMutation) AddBatchNumber(i int) {
	if m.addbatch_number != nil {
		*m.addbatch_number += i
	} else {
		m.addbatch_number = &i
	}
}

// AddedBatchNumber returns the value that was added to the "batch_number" field in this mutation.
func (m *BatchInsightMutation) AddedBatchNumber() (r int, exists bool) {
	v := m.addbatch_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchNumber resets all changes to the "batch_number" field.
func (m *BatchInsightMutation) ResetBatchNumber() {
	m.batch_number = nil
	m.addbatch_number = nil
}

// SetExtractionType sets the "extraction_type" field.
func (m *BatchInsightMutation) SetExtractionType(bt batchinsight.ExtractionType) {
	m.extraction_type = &bt
}

// ExtractionType returns the value of the "extraction_type" field in the mutation.
func (m *BatchInsightMutation) ExtractionType() (r batchinsight.ExtractionType, exists bool) {
	v := m.extraction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionType returns the old "extraction_type" field's value of the BatchInsight entity.
// If the BatchInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchInsightMutation) OldExtractionType(ctx context.Context) (v batchinsight.ExtractionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionType: %w", err)
	}
	return oldValue.ExtractionType, nil
}

// ResetExtractionType resets all changes to the "extraction_type" field.
func (m *BatchInsightMutation) ResetExtractionType() {
	m.extraction_type = nil
}

// SetInsights sets the "insights" field.
func (m *BatchInsightMutation) SetInsights(s []string) {
	m.insights = &s
	m.appendinsights = nil
}

// Insights returns the value of the "insights" field in the mutation.
func (m *BatchInsightMutation) Insights() (r []string, exists bool) {
	v := m.insights
	if v == nil {
		return
	}
	return *v, true
}

// OldInsights returns the old "insights" field's value of the BatchInsight entity.
// If the BatchInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchInsightMutation) OldInsights(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsights: %w", err)
	}
	return oldValue.Insights, nil
}

// AppendInsights adds s to the "insights" field.
func (m *BatchInsightMutation) AppendInsights(s []string) {
	m.appendinsights = append(m.appendinsights, s...)
}

// AppendedInsights returns the list of values that were appended to the "insights" field in this mutation.
func (m *BatchInsightMutation) AppendedInsights() ([]string, bool) {
	if len(m.appendinsights) == 0 {
		return nil, false
	}
	return m.appendinsights, true
}

// ResetInsights resets all changes to the "insights" field.
func (m *BatchInsightMutation) ResetInsights() {
	m.insights = nil
	m.appendinsights = nil
}

// SetResponseIds sets the "response_ids" field.
func (m *BatchInsightMutation) SetResponseIds(s []string) {
	m.response_ids = &s
	m.appendresponse_ids = nil
}

// ResponseIds returns the value of the "response_ids" field in the mutation.
func (m *BatchInsightMutation) ResponseIds() (r []string, exists bool) {
	v := m.response_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseIds returns the old "response_ids" field's value of the BatchInsight entity.
// If the BatchInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchInsightMutation) OldResponseIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseIds: %w", err)
	}
	return oldValue.ResponseIds, nil
}

// AppendResponseIds adds s to the "response_ids" field.
func (m *BatchInsightMutation) AppendResponseIds(s []string) {
	m.appendresponse_ids = append(m.appendresponse_ids, s...)
}

// AppendedResponseIds returns the list of values that were appended to the "response_ids" field in this mutation.
func (m *BatchInsightMutation) AppendedResponseIds() ([]string, bool) {
	if len(m.appendresponse_ids) == 0 {
		return nil, false
	}
	return m.appendresponse_ids, true
}

// ClearResponseIds clears the value of the "response_ids" field.
func (m *BatchInsightMutation) ClearResponseIds() {
	m.response_ids = nil
	m.appendresponse_ids = nil
	m.clearedFields[batchinsight.FieldResponseIds] = struct{}{}
}

// ResponseIdsCleared returns if the "response_ids" field was cleared in this mutation.
func (m *BatchInsightMutation) ResponseIdsCleared() bool {
	_, ok := m.clearedFields[batchinsight.FieldResponseIds]
	return ok
}

// ResetResponseIds resets all changes to the "response_ids" field.
func (m *BatchInsightMutation) ResetResponseIds() {
	m.response_ids = nil
	m.appendresponse_ids = nil
	delete(m.clearedFields, batchinsight.FieldResponseIds)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BatchInsightMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BatchInsightMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BatchInsight entity.
// If the BatchInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchInsightMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BatchInsightMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *BatchInsightMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[batchinsight.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *BatchInsightMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *BatchInsightMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *BatchInsightMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the BatchInsightMutation builder.
func (m *BatchInsightMutation) Where(ps ...predicate.BatchInsight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchInsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchInsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchInsight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchInsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchInsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchInsight).
func (m *BatchInsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchInsightMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.audit != nil {
		fields = append(fields, batchinsight.FieldAuditID)
	}
	if m.category != nil {
		fields = append(fields, batchinsight.FieldCategory)
	}
	if m.batch_number != nil {
		fields = append(fields, batchinsight.FieldBatchNumber)
	}
	if m.extraction_type != nil {
		fields = append(fields, batchinsight.FieldExtractionType)
	}
	if m.insights != nil {
		fields = append(fields, batchinsight.FieldInsights)
	}
	if m.response_ids != nil {
		fields = append(fields, batchinsight.FieldResponseIds)
	}
	if m.updated_at != nil {
		fields = append(fields, batchinsight.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchInsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchinsight.FieldAuditID:
		return m.AuditID()
	case batchinsight.FieldCategory:
		return m.Category()
	case batchinsight.FieldBatchNumber:
		return m.BatchNumber()
	case batchinsight.FieldExtractionType:
		return m.ExtractionType()
	case batchinsight.FieldInsights:
		return m.Insights()
	case batchinsight.FieldResponseIds:
		return m.ResponseIds()
	case batchinsight.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchInsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchinsight.FieldAuditID:
		return m.OldAuditID(ctx)
	case batchinsight.FieldCategory:
		return m.OldCategory(ctx)
	case batchinsight.FieldBatchNumber:
		return m.OldBatchNumber(ctx)
	case batchinsight.FieldExtractionType:
		return m.OldExtractionType(ctx)
	case batchinsight.FieldInsights:
		return m.OldInsights(ctx)
	case batchinsight.FieldResponseIds:
		return m.OldResponseIds(ctx)
	case batchinsight.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BatchInsight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchInsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchinsight.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case batchinsight.FieldCategory:
		v, ok := value.(batchinsight.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case batchinsight.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchNumber(v)
		return nil
	case batchinsight.FieldExtractionType:
		v, ok := value.(batchinsight.ExtractionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionType(v)
		return nil
	case batchinsight.FieldInsights:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsights(v)
		return nil
	case batchinsight.FieldResponseIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseIds(v)
		return nil
	case batchinsight.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BatchInsight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchInsightMutation) AddedFields() []string {
	var fields []string
	if m.addbatch_number != nil {
		fields = append(fields, batchinsight.FieldBatchNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchInsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchinsight.FieldBatchNumber:
		return m.AddedBatchNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchInsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchinsight.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchNumber(v)
		return nil
	}
	return fmt.Errorf("unknown BatchInsight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchInsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchinsight.FieldResponseIds) {
		fields = append(fields, batchinsight.FieldResponseIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchInsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchInsightMutation) ClearField(name string) error {
	switch name {
	case batchinsight.FieldResponseIds:
		m.ClearResponseIds()
		return nil
	}
	return fmt.Errorf("unknown BatchInsight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchInsightMutation) ResetField(name string) error {
	switch name {
	case batchinsight.FieldAuditID:
		m.ResetAuditID()
		return nil
	case batchinsight.FieldCategory:
		m.ResetCategory()
		return nil
	case batchinsight.FieldBatchNumber:
		m.ResetBatchNumber()
		return nil
	case batchinsight.FieldExtractionType:
		m.ResetExtractionType()
		return nil
	case batchinsight.FieldInsights:
		m.ResetInsights()
		return nil
	case batchinsight.FieldResponseIds:
		m.ResetResponseIds()
		return nil
	case batchinsight.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchInsight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchInsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, batchinsight.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchInsightMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchinsight.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchInsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchInsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchInsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, batchinsight.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchInsightMutation) EdgeCleared(name string) bool {
	switch name {
	case batchinsight.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchInsightMutation) ClearEdge(name string) error {
	switch name {
	case batchinsight.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown BatchInsight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchInsightMutation) ResetEdge(name string) error {
	switch name {
	case batchinsight.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown BatchInsight edge %s", name)
}

// CategoryAggregateMutation represents an operation that mutates the CategoryAggregate nodes in the graph.
type CategoryAggregateMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	category                       *categoryaggregate.Category
	response_count                 *int
	addresponse_count              *int
	avg_geo_score                  *float64
	addavg_geo_score               *float64
	avg_sov_score                  *float64
	addavg_sov_score               *float64
	avg_sentiment                  *float64
	addavg_sentiment               *float64
	avg_context_completeness       *float64
	addavg_context_completeness    *float64
	mention_rate                   *float64
	addmention_rate                *float64
	top_themes                     *[]string
	appendtop_themes               []string
	priority_recommendations       *[]string
	appendpriority_recommendations []string
	competitive_summary            *string
	created_at                     *time.Time
	clearedFields                  map[string]struct{}
	audit                          *string
	clearedaudit                   bool
	done                           bool
	oldValue                       func(context.Context) (*CategoryAggregate, error)
	predicates                     []predicate.CategoryAggregate
}

var _ ent.Mutation = (*CategoryAggregateMutation)(nil)

// categoryaggregateOption allows management of the mutation configuration using functional options.
type categoryaggregateOption func(*CategoryAggregateMutation)

// newCategoryAggregateMutation creates new mutation for the CategoryAggregate entity.
func newCategoryAggregateMutation(c config, op Op, opts ...categoryaggregateOption) *CategoryAggregateMutation {
	m := &CategoryAggregateMutation{
		config:        c,
		op:            op,
		typ:           TypeCategoryAggregate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryAggregateID sets the ID field of the mutation.
func withCategoryAggregateID(id int) categoryaggregateOption {
	return func(m *CategoryAggregateMutation) {
		var (
			err   error
			once  sync.Once
			value *CategoryAggregate
		)
		m.oldValue = func(ctx context.Context) (*CategoryAggregate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CategoryAggregate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategoryAggregate sets the old CategoryAggregate of the mutation.
func withCategoryAggregate(node *CategoryAggregate) categoryaggregateOption {
	return func(m *CategoryAggregateMutation) {
		m.oldValue = func(context.Context) (*CategoryAggregate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryAggregateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryAggregateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryAggregateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryAggregateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CategoryAggregate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *CategoryAggregateMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *CategoryAggregateMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *CategoryAggregateMutation) ResetAuditID() {
	m.audit = nil
}

// SetCategory sets the "category" field.
func (m *CategoryAggregateMutation) SetCategory(c categoryaggregate.Category) {
	m.category = &c
}

// Category returns the value of the "category" field in the mutation.
func (m *CategoryAggregateMutation) Category() (r categoryaggregate.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldCategory(ctx context.Context) (v categoryaggregate.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CategoryAggregateMutation) ResetCategory() {
	m.category = nil
}

// SetResponseCount sets the "response_count" field.
func (m *CategoryAggregateMutation) SetResponseCount(i int) {
	m.response_count = &i
	m.addresponse_count = nil
}

// ResponseCount returns the value of the "response_count" field in the mutation.
func (m *CategoryAggregateMutation) ResponseCount() (r int, exists bool) {
	v := m.response_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseCount returns the old "response_count" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldResponseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseCount: %w", err)
	}
	return oldValue.ResponseCount, nil
}

// AddResponseCount adds i to the "response_count" field.
func (m *CategoryAggregateMutation) AddResponseCount(i int) {
	if m.addresponse_count != nil {
		*m.addresponse_count += i
	} else {
		m.addresponse_count = &i
	}
}

// AddedResponseCount returns the value that was added to the "response_count" field in this mutation.
func (m *CategoryAggregateMutation) AddedResponseCount() (r int, exists bool) {
	v := m.addresponse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseCount resets all changes to the "response_count" field.
func (m *CategoryAggregateMutation) ResetResponseCount() {
	m.response_count = nil
	m.addresponse_count = nil
}

// SetAvgGeoScore sets the "avg_geo_score" field.
func (m *CategoryAggregateMutation) SetAvgGeoScore(f float64) {
	m.avg_geo_score = &f
	m.addavg_geo_score = nil
}

// AvgGeoScore returns the value of the "avg_geo_score" field in the mutation.
func (m *CategoryAggregateMutation) AvgGeoScore() (r float64, exists bool) {
	v := m.avg_geo_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgGeoScore returns the old "avg_geo_score" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldAvgGeoScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgGeoScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgGeoScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgGeoScore: %w", err)
	}
	return oldValue.AvgGeoScore, nil
}

// AddAvgGeoScore adds f to the "avg_geo_score" field.
func (m *CategoryAggregateMutation) AddAvgGeoScore(f float64) {
	if m.addavg_geo_score != nil {
		*m.addavg_geo_score += f
	} else {
		m.addavg_geo_score = &f
	}
}

// AddedAvgGeoScore returns the value that was added to the "avg_geo_score" field in this mutation.
func (m *CategoryAggregateMutation) AddedAvgGeoScore() (r float64, exists bool) {
	v := m.addavg_geo_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgGeoScore resets all changes to the "avg_geo_score" field.
func (m *CategoryAggregateMutation) ResetAvgGeoScore() {
	m.avg_geo_score = nil
	m.addavg_geo_score = nil
}

// SetAvgSovScore sets the "avg_sov_score" field.
func (m *CategoryAggregateMutation) SetAvgSovScore(f float64) {
	m.avg_sov_score = &f
	m.addavg_sov_score = nil
}

// AvgSovScore returns the value of the "avg_sov_score" field in the mutation.
func (m *CategoryAggregateMutation) AvgSovScore() (r float64, exists bool) {
	v := m.avg_sov_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgSovScore returns the old "avg_sov_score" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldAvgSovScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgSovScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgSovScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgSovScore: %w", err)
	}
	return oldValue.AvgSovScore, nil
}

// AddAvgSovScore adds f to the "avg_sov_score" field.
func (m *CategoryAggregateMutation) AddAvgSovScore(f float64) {
	if m.addavg_sov_score != nil {
		*m.addavg_sov_score += f
	} else {
		m.addavg_sov_score = &f
	}
}

// AddedAvgSovScore returns the value that was added to the "avg_sov_score" field in this mutation.
func (m *CategoryAggregateMutation) AddedAvgSovScore() (r float64, exists bool) {
	v := m.addavg_sov_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgSovScore resets all changes to the "avg_sov_score" field.
func (m *CategoryAggregateMutation) ResetAvgSovScore() {
	m.avg_sov_score = nil
	m.addavg_sov_score = nil
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (m *CategoryAggregateMutation) SetAvgSentiment(f float64) {
	m.avg_sentiment = &f
	m.addavg_sentiment = nil
}

// AvgSentiment returns the value of the "avg_sentiment" field in the mutation.
func (m *CategoryAggregateMutation) AvgSentiment() (r float64, exists bool) {
	v := m.avg_sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgSentiment returns the old "avg_sentiment" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldAvgSentiment(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgSentiment: %w", err)
	}
	return oldValue.AvgSentiment, nil
}

// AddAvgSentiment adds f to the "avg_sentiment" field.
func (m *CategoryAggregateMutation) AddAvgSentiment(f float64) {
	if m.addavg_sentiment != nil {
		*m.addavg_sentiment += f
	} else {
		m.addavg_sentiment = &f
	}
}

// AddedAvgSentiment returns the value that was added to the "avg_sentiment" field in this mutation.
func (m *CategoryAggregateMutation) AddedAvgSentiment() (r float64, exists bool) {
	v := m.addavg_sentiment
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgSentiment resets all changes to the "avg_sentiment" field.
func (m *CategoryAggregateMutation) ResetAvgSentiment() {
	m.avg_sentiment = nil
	m.addavg_sentiment = nil
}

// SetAvgContextCompleteness sets the "avg_context_completeness" field.
func (m *CategoryAggregateMutation) SetAvgContextCompleteness(f float64) {
	m.avg_context_completeness = &f
	m.addavg_context_completeness = nil
}

// AvgContextCompleteness returns the value of the "avg_context_completeness" field in the mutation.
func (m *CategoryAggregateMutation) AvgContextCompleteness() (r float64, exists bool) {
	v := m.avg_context_completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgContextCompleteness returns the old "avg_context_completeness" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldAvgContextCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgContextCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgContextCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgContextCompleteness: %w", err)
	}
	return oldValue.AvgContextCompleteness, nil
}

// AddAvgContextCompleteness adds f to the "avg_context_completeness" field.
func (m *CategoryAggregateMutation) AddAvgContextCompleteness(f float64) {
	if m.addavg_context_completeness != nil {
		*m.addavg_context_completeness += f
	} else {
		m.addavg_context_completeness = &f
	}
}

// AddedAvgContextCompleteness returns the value that was added to the "avg_context_completeness" field in this mutation.
func (m *CategoryAggregateMutation) AddedAvgContextCompleteness() (r float64, exists bool) {
	v := m.addavg_context_completeness
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgContextCompleteness resets all changes to the "avg_context_completeness" field.
func (m *CategoryAggregateMutation) ResetAvgContextCompleteness() {
	m.avg_context_completeness = nil
	m.addavg_context_completeness = nil
}

// SetMentionRate sets the "mention_rate" field.
func (m *CategoryAggregateMutation) SetMentionRate(f float64) {
	m.mention_rate = &f
	m.addmention_rate = nil
}

// MentionRate returns the value of the "mention_rate" field in the mutation.
func (m *CategoryAggregateMutation) MentionRate() (r float64, exists bool) {
	v := m.mention_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionRate returns the old "mention_rate" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldMentionRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionRate: %w", err)
	}
	return oldValue.MentionRate, nil
}

// AddMentionRate adds f to the "mention_rate" field.
func (m *CategoryAggregateMutation) AddMentionRate(f float64) {
	if m.addmention_rate != nil {
		*m.addmention_rate += f
	} else {
		m.addmention_rate = &f
	}
}

// AddedMentionRate returns the value that was added to the "mention_rate" field in this mutation.
func (m *CategoryAggregateMutation) AddedMentionRate() (r float64, exists bool) {
	v := m.addmention_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionRate resets all changes to the "mention_rate" field.
func (m *CategoryAggregateMutation) ResetMentionRate() {
	m.mention_rate = nil
	m.addmention_rate = nil
}

// SetTopThemes sets the "top_themes" field.
func (m *CategoryAggregateMutation) SetTopThemes(s []string) {
	m.top_themes = &s
	m.appendtop_themes = nil
}

// TopThemes returns the value of the "top_themes" field in the mutation.
func (m *CategoryAggregateMutation) TopThemes() (r []string, exists bool) {
	v := m.top_themes
	if v == nil {
		return
	}
	return *v, true
}

// OldTopThemes returns the old "top_themes" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldTopThemes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopThemes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopThemes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopThemes: %w", err)
	}
	return oldValue.TopThemes, nil
}

// AppendTopThemes adds s to the "top_themes" field.
func (m *CategoryAggregateMutation) AppendTopThemes(s []string) {
	m.appendtop_themes = append(m.appendtop_themes, s...)
}

// AppendedTopThemes returns the list of values that were appended to the "top_themes" field in this mutation.
func (m *CategoryAggregateMutation) AppendedTopThemes() ([]string, bool) {
	if len(m.appendtop_themes) == 0 {
		return nil, false
	}
	return m.appendtop_themes, true
}

// ClearTopThemes clears the value of the "top_themes" field.
func (m *CategoryAggregateMutation) ClearTopThemes() {
	m.top_themes = nil
	m.appendtop_themes = nil
	m.clearedFields[categoryaggregate.FieldTopThemes] = struct{}{}
}

// TopThemesCleared returns if the "top_themes" field was cleared in this mutation.
func (m *CategoryAggregateMutation) TopThemesCleared() bool {
	_, ok := m.clearedFields[categoryaggregate.FieldTopThemes]
	return ok
}

// ResetTopThemes resets all changes to the "top_themes" field.
func (m *CategoryAggregateMutation) ResetTopThemes() {
	m.top_themes = nil
	m.appendtop_themes = nil
	delete(m.clearedFields, categoryaggregate.FieldTopThemes)
}

// SetPriorityRecommendations sets the "priority_recommendations" field.
func (m *CategoryAggregateMutation) SetPriorityRecommendations(s []string) {
	m.priority_recommendations = &s
	m.appendpriority_recommendations = nil
}

// PriorityRecommendations returns the value of the "priority_recommendations" field in the mutation.
func (m *CategoryAggregateMutation) PriorityRecommendations() (r []string, exists bool) {
	v := m.priority_recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityRecommendations returns the old "priority_recommendations" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldPriorityRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityRecommendations: %w", err)
	}
	return oldValue.PriorityRecommendations, nil
}

// AppendPriorityRecommendations adds s to the "priority_recommendations" field.
func (m *CategoryAggregateMutation) AppendPriorityRecommendations(s []string) {
	m.appendpriority_recommendations = append(m.appendpriority_recommendations, s...)
}

// AppendedPriorityRecommendations returns the list of values that were appended to the "priority_recommendations" field in this mutation.
func (m *CategoryAggregateMutation) AppendedPriorityRecommendations() ([]string, bool) {
	if len(m.appendpriority_recommendations) == 0 {
		return nil, false
	}
	return m.appendpriority_recommendations, true
}

// ClearPriorityRecommendations clears the value of the "priority_recommendations" field.
func (m *CategoryAggregateMutation) ClearPriorityRecommendations() {
	m.priority_recommendations = nil
	m.appendpriority_recommendations = nil
	m.clearedFields[categoryaggregate.FieldPriorityRecommendations] = struct{}{}
}

// PriorityRecommendationsCleared returns if the "priority_recommendations" field was cleared in this mutation.
func (m *CategoryAggregateMutation) PriorityRecommendationsCleared() bool {
	_, ok := m.clearedFields[categoryaggregate.FieldPriorityRecommendations]
	return ok
}

// ResetPriorityRecommendations resets all changes to the "priority_recommendations" field.
func (m *CategoryAggregateMutation) ResetPriorityRecommendations() {
	m.priority_recommendations = nil
	m.appendpriority_recommendations = nil
	delete(m.clearedFields, categoryaggregate.FieldPriorityRecommendations)
}

// SetCompetitiveSummary sets the "competitive_summary" field.
func (m *CategoryAggregateMutation) SetCompetitiveSummary(s string) {
	m.competitive_summary = &s
}

// CompetitiveSummary returns the value of the "competitive_summary" field in the mutation.
func (m *CategoryAggregateMutation) CompetitiveSummary() (r string, exists bool) {
	v := m.competitive_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitiveSummary returns the old "competitive_summary" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldCompetitiveSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitiveSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitiveSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitiveSummary: %w", err)
	}
	return oldValue.CompetitiveSummary, nil
}

// ClearCompetitiveSummary clears the value of the "competitive_summary" field.
func (m *CategoryAggregateMutation) ClearCompetitiveSummary() {
	m.competitive_summary = nil
	m.clearedFields[categoryaggregate.FieldCompetitiveSummary] = struct{}{}
}

// CompetitiveSummaryCleared returns if the "competitive_summary" field was cleared in this mutation.
func (m *CategoryAggregateMutation) CompetitiveSummaryCleared() bool {
	_, ok := m.clearedFields[categoryaggregate.FieldCompetitiveSummary]
	return ok
}

// ResetCompetitiveSummary resets all changes to the "competitive_summary" field.
func (m *CategoryAggregateMutation) ResetCompetitiveSummary() {
	m.competitive_summary = nil
	delete(m.clearedFields, categoryaggregate.FieldCompetitiveSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *CategoryAggregateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CategoryAggregateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CategoryAggregate entity.
// If the CategoryAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryAggregateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CategoryAggregateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *CategoryAggregateMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[categoryaggregate.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *CategoryAggregateMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *CategoryAggregateMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *CategoryAggregateMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the CategoryAggregateMutation builder.
func (m *CategoryAggregateMutation) Where(ps ...predicate.CategoryAggregate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryAggregateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryAggregateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CategoryAggregate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryAggregateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryAggregateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CategoryAggregate).
func (m *CategoryAggregateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryAggregateMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.audit != nil {
		fields = append(fields, categoryaggregate.FieldAuditID)
	}
	if m.category != nil {
		fields = append(fields, categoryaggregate.FieldCategory)
	}
	if m.response_count != nil {
		fields = append(fields, categoryaggregate.FieldResponseCount)
	}
	if m.avg_geo_score != nil {
		fields = append(fields, categoryaggregate.FieldAvgGeoScore)
	}
	if m.avg_sov_score != nil {
		fields = append(fields, categoryaggregate.FieldAvgSovScore)
	}
	if m.avg_sentiment != nil {
		fields = append(fields, categoryaggregate.FieldAvgSentiment)
	}
	if m.avg_context_completeness != nil {
		fields = append(fields, categoryaggregate.FieldAvgContextCompleteness)
	}
	if m.mention_rate != nil {
		fields = append(fields, categoryaggregate.FieldMentionRate)
	}
	if m.top_themes != nil {
		fields = append(fields, categoryaggregate.FieldTopThemes)
	}
	if m.priority_recommendations != nil {
		fields = append(fields, categoryaggregate.FieldPriorityRecommendations)
	}
	if m.competitive_summary != nil {
		fields = append(fields, categoryaggregate.FieldCompetitiveSummary)
	}
	if m.created_at != nil {
		fields = append(fields, categoryaggregate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryAggregateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case categoryaggregate.FieldAuditID:
		return m.AuditID()
	case categoryaggregate.FieldCategory:
		return m.Category()
	case categoryaggregate.FieldResponseCount:
		return m.ResponseCount()
	case categoryaggregate.FieldAvgGeoScore:
		return m.AvgGeoScore()
	case categoryaggregate.FieldAvgSovScore:
		return m.AvgSovScore()
	case categoryaggregate.FieldAvgSentiment:
		return m.AvgSentiment()
	case categoryaggregate.FieldAvgContextCompleteness:
		return m.AvgContextCompleteness()
	case categoryaggregate.FieldMentionRate:
		return m.MentionRate()
	case categoryaggregate.FieldTopThemes:
		return m.TopThemes()
	case categoryaggregate.FieldPriorityRecommendations:
		return m.PriorityRecommendations()
	case categoryaggregate.FieldCompetitiveSummary:
		return m.CompetitiveSummary()
	case categoryaggregate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryAggregateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case categoryaggregate.FieldAuditID:
		return m.OldAuditID(ctx)
	case categoryaggregate.FieldCategory:
		return m.OldCategory(ctx)
	case categoryaggregate.FieldResponseCount:
		return m.OldResponseCount(ctx)
	case categoryaggregate.FieldAvgGeoScore:
		return m.OldAvgGeoScore(ctx)
	case categoryaggregate.FieldAvgSovScore:
		return m.OldAvgSovScore(ctx)
	case categoryaggregate.FieldAvgSentiment:
		return m.OldAvgSentiment(ctx)
	case categoryaggregate.FieldAvgContextCompleteness:
		return m.OldAvgContextCompleteness(ctx)
	case categoryaggregate.FieldMentionRate:
		return m.OldMentionRate(ctx)
	case categoryaggregate.FieldTopThemes:
		return m.OldTopThemes(ctx)
	case categoryaggregate.FieldPriorityRecommendations:
		return m.OldPriorityRecommendations(ctx)
	case categoryaggregate.FieldCompetitiveSummary:
		return m.OldCompetitiveSummary(ctx)
	case categoryaggregate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CategoryAggregate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryAggregateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case categoryaggregate.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case categoryaggregate.FieldCategory:
		v, ok := value.(categoryaggregate.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case categoryaggregate.FieldResponseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseCount(v)
		return nil
	case categoryaggregate.FieldAvgGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgGeoScore(v)
		return nil
	case categoryaggregate.FieldAvgSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgSovScore(v)
		return nil
	case categoryaggregate.FieldAvgSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgSentiment(v)
		return nil
	case categoryaggregate.FieldAvgContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgContextCompleteness(v)
		return nil
	case categoryaggregate.FieldMentionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionRate(v)
		return nil
	case categoryaggregate.FieldTopThemes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopThemes(v)
		return nil
	case categoryaggregate.FieldPriorityRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityRecommendations(v)
		return nil
	case categoryaggregate.FieldCompetitiveSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitiveSummary(v)
		return nil
	case categoryaggregate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryAggregate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryAggregateMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_count != nil {
		fields = append(fields, categoryaggregate.FieldResponseCount)
	}
	if m.addavg_geo_score != nil {
		fields = append(fields, categoryaggregate.FieldAvgGeoScore)
	}
	if m.addavg_sov_score != nil {
		fields = append(fields, categoryaggregate.FieldAvgSovScore)
	}
	if m.addavg_sentiment != nil {
		fields = append(fields, categoryaggregate.FieldAvgSentiment)
	}
	if m.addavg_context_completeness != nil {
		fields = append(fields, categoryaggregate.FieldAvgContextCompleteness)
	}
	if m.addmention_rate != nil {
		fields = append(fields, categoryaggregate.FieldMentionRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryAggregateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case categoryaggregate.FieldResponseCount:
		return m.AddedResponseCount()
	case categoryaggregate.FieldAvgGeoScore:
		return m.AddedAvgGeoScore()
	case categoryaggregate.FieldAvgSovScore:
		return m.AddedAvgSovScore()
	case categoryaggregate.FieldAvgSentiment:
		return m.AddedAvgSentiment()
	case categoryaggregate.FieldAvgContextCompleteness:
		return m.AddedAvgContextCompleteness()
	case categoryaggregate.FieldMentionRate:
		return m.AddedMentionRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryAggregateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case categoryaggregate.FieldResponseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseCount(v)
		return nil
	case categoryaggregate.FieldAvgGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgGeoScore(v)
		return nil
	case categoryaggregate.FieldAvgSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgSovScore(v)
		return nil
	case categoryaggregate.FieldAvgSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgSentiment(v)
		return nil
	case categoryaggregate.FieldAvgContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgContextCompleteness(v)
		return nil
	case categoryaggregate.FieldMentionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionRate(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryAggregate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryAggregateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(categoryaggregate.FieldTopThemes) {
		fields = append(fields, categoryaggregate.FieldTopThemes)
	}
	if m.FieldCleared(categoryaggregate.FieldPriorityRecommendations) {
		fields = append(fields, categoryaggregate.FieldPriorityRecommendations)
	}
	if m.FieldCleared(categoryaggregate.FieldCompetitiveSummary) {
		fields = append(fields, categoryaggregate.FieldCompetitiveSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryAggregateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryAggregateMutation) ClearField(name string) error {
	switch name {
	case categoryaggregate.FieldTopThemes:
		m.ClearTopThemes()
		return nil
	case categoryaggregate.FieldPriorityRecommendations:
		m.ClearPriorityRecommendations()
		return nil
	case categoryaggregate.FieldCompetitiveSummary:
		m.ClearCompetitiveSummary()
		return nil
	}
	return fmt.Errorf("unknown CategoryAggregate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryAggregateMutation) ResetField(name string) error {
	switch name {
	case categoryaggregate.FieldAuditID:
		m.ResetAuditID()
		return nil
	case categoryaggregate.FieldCategory:
		m.ResetCategory()
		return nil
	case categoryaggregate.FieldResponseCount:
		m.ResetResponseCount()
		return nil
	case categoryaggregate.FieldAvgGeoScore:
		m.ResetAvgGeoScore()
		return nil
	case categoryaggregate.FieldAvgSovScore:
		m.ResetAvgSovScore()
		return nil
	case categoryaggregate.FieldAvgSentiment:
		m.ResetAvgSentiment()
		return nil
	case categoryaggregate.FieldAvgContextCompleteness:
		m.ResetAvgContextCompleteness()
		return nil
	case categoryaggregate.FieldMentionRate:
		m.ResetMentionRate()
		return nil
	case categoryaggregate.FieldTopThemes:
		m.ResetTopThemes()
		return nil
	case categoryaggregate.FieldPriorityRecommendations:
		m.ResetPriorityRecommendations()
		return nil
	case categoryaggregate.FieldCompetitiveSummary:
		m.ResetCompetitiveSummary()
		return nil
	case categoryaggregate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CategoryAggregate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryAggregateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, categoryaggregate.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryAggregateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case categoryaggregate.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryAggregateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryAggregateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryAggregateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, categoryaggregate.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryAggregateMutation) EdgeCleared(name string) bool {
	switch name {
	case categoryaggregate.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryAggregateMutation) ClearEdge(name string) error {
	switch name {
	case categoryaggregate.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown CategoryAggregate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryAggregateMutation) ResetEdge(name string) error {
	switch name {
	case categoryaggregate.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown CategoryAggregate edge %s", name)
}

// DashboardSnapshotMutation represents an operation that mutates the DashboardSnapshot nodes in the graph.
type DashboardSnapshotMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	overall_score             *float64
	addoverall_score          *float64
	total_queries             *int
	addtotal_queries          *int
	total_responses           *int
	addtotal_responses        *int
	platform_breakdown        *map[string]interface{}
	top_recommendations       *[]string
	appendtop_recommendations []string
	total_cost                *float64
	addtotal_cost             *float64
	generated_at              *time.Time
	clearedFields             map[string]struct{}
	audit                     *string
	clearedaudit              bool
	done                      bool
	oldValue                  func(context.Context) (*DashboardSnapshot, error)
	predicates                []predicate.DashboardSnapshot
}

var _ ent.Mutation = (*DashboardSnapshotMutation)(nil)

// dashboardsnapshotOption allows management of the mutation configuration using functional options.
type dashboardsnapshotOption func(*DashboardSnapshotMutation)

// newDashboardSnapshotMutation creates new mutation for the DashboardSnapshot entity.
func newDashboardSnapshotMutation(c config, op Op, opts ...dashboardsnapshotOption) *DashboardSnapshotMutation {
	m := &DashboardSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeDashboardSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDashboardSnapshotID sets the ID field of the mutation.
func withDashboardSnapshotID(id int) dashboardsnapshotOption {
	return func(m *DashboardSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *DashboardSnapshot
		)
		m.oldValue = func(ctx context.Context) (*DashboardSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DashboardSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDashboardSnapshot sets the old DashboardSnapshot of the mutation.
func withDashboardSnapshot(node *DashboardSnapshot) dashboardsnapshotOption {
	return func(m *DashboardSnapshotMutation) {
		m.oldValue = func(context.Context) (*DashboardSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DashboardSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DashboardSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DashboardSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DashboardSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DashboardSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *DashboardSnapshotMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *DashboardSnapshotMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *DashboardSnapshotMutation) ResetAuditID() {
	m.audit = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *DashboardSnapshotMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *DashboardSnapshotMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *DashboardSnapshotMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *DashboardSnapshotMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *DashboardSnapshotMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetTotalQueries sets the "total_queries" field.
func (m *DashboardSnapshotMutation) SetTotalQueries(i int) {
	m.total_queries = &i
	m.addtotal_queries = nil
}

// TotalQueries returns the value of the "total_queries" field in the mutation.
func (m *DashboardSnapshotMutation) TotalQueries() (r int, exists bool) {
	v := m.total_queries
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQueries returns the old "total_queries" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldTotalQueries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQueries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQueries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQueries: %w", err)
	}
	return oldValue.TotalQueries, nil
}

// AddTotalQueries adds i to the "total_queries" field.
func (m *DashboardSnapshotMutation) AddTotalQueries(i int) {
	if m.addtotal_queries != nil {
		*m.addtotal_queries += i
	} else {
		m.addtotal_queries = &i
	}
}

// AddedTotalQueries returns the value that was added to the "total_queries" field in this mutation.
func (m *DashboardSnapshotMutation) AddedTotalQueries() (r int, exists bool) {
	v := m.addtotal_queries
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQueries resets all changes to the "total_queries" field.
func (m *DashboardSnapshotMutation) ResetTotalQueries() {
	m.total_queries = nil
	m.addtotal_queries = nil
}

// SetTotalResponses sets the "total_responses" field.
func (m *DashboardSnapshotMutation) SetTotalResponses(i int) {
	m.total_responses = &i
	m.addtotal_responses = nil
}

// TotalResponses returns the value of the "total_responses" field in the mutation.
func (m *DashboardSnapshotMutation) TotalResponses() (r int, exists bool) {
	v := m.total_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalResponses returns the old "total_responses" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldTotalResponses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalResponses: %w", err)
	}
	return oldValue.TotalResponses, nil
}

// AddTotalResponses adds i to the "total_responses" field.
func (m *DashboardSnapshotMutation) AddTotalResponses(i int) {
	if m.addtotal_responses != nil {
		*m.addtotal_responses += i
	} else {
		m.addtotal_responses = &i
	}
}

// AddedTotalResponses returns the value that was added to the "total_responses" field in this mutation.
func (m *DashboardSnapshotMutation) AddedTotalResponses() (r int, exists bool) {
	v := m.addtotal_responses
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalResponses resets all changes to the "total_responses" field.
func (m *DashboardSnapshotMutation) ResetTotalResponses() {
	m.total_responses = nil
	m.addtotal_responses = nil
}

// SetPlatformBreakdown sets the "platform_breakdown" field.
func (m *DashboardSnapshotMutation) SetPlatformBreakdown(value map[string]interface{}) {
	m.platform_breakdown = &value
}

// PlatformBreakdown returns the value of the "platform_breakdown" field in the mutation.
func (m *DashboardSnapshotMutation) PlatformBreakdown() (r map[string]interface{}, exists bool) {
	v := m.platform_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformBreakdown returns the old "platform_breakdown" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldPlatformBreakdown(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformBreakdown: %w", err)
	}
	return oldValue.PlatformBreakdown, nil
}

// ClearPlatformBreakdown clears the value of the "platform_breakdown" field.
func (m *DashboardSnapshotMutation) ClearPlatformBreakdown() {
	m.platform_breakdown = nil
	m.clearedFields[dashboardsnapshot.FieldPlatformBreakdown] = struct{}{}
}

// PlatformBreakdownCleared returns if the "platform_breakdown" field was cleared in this mutation.
func (m *DashboardSnapshotMutation) PlatformBreakdownCleared() bool {
	_, ok := m.clearedFields[dashboardsnapshot.FieldPlatformBreakdown]
	return ok
}

// ResetPlatformBreakdown resets all changes to the "platform_breakdown" field.
func (m *DashboardSnapshotMutation) ResetPlatformBreakdown() {
	m.platform_breakdown = nil
	delete(m.clearedFields, dashboardsnapshot.FieldPlatformBreakdown)
}

// SetTopRecommendations sets the "top_recommendations" field.
func (m *DashboardSnapshotMutation) SetTopRecommendations(s []string) {
	m.top_recommendations = &s
	m.appendtop_recommendations = nil
}

// TopRecommendations returns the value of the "top_recommendations" field in the mutation.
func (m *DashboardSnapshotMutation) TopRecommendations() (r []string, exists bool) {
	v := m.top_recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldTopRecommendations returns the old "top_recommendations" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldTopRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopRecommendations: %w", err)
	}
	return oldValue.TopRecommendations, nil
}

// AppendTopRecommendations adds s to the "top_recommendations" field.
func (m *DashboardSnapshotMutation) AppendTopRecommendations(s []string) {
	m.appendtop_recommendations = append(m.appendtop_recommendations, s...)
}

// AppendedTopRecommendations returns the list of values that were appended to the "top_recommendations" field in this mutation.
func (m *DashboardSnapshotMutation) AppendedTopRecommendations() ([]string, bool) {
	if len(m.appendtop_recommendations) == 0 {
		return nil, false
	}
	return m.appendtop_recommendations, true
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (m *DashboardSnapshotMutation) ClearTopRecommendations() {
	m.top_recommendations = nil
	m.appendtop_recommendations = nil
	m.clearedFields[dashboardsnapshot.FieldTopRecommendations] = struct{}{}
}

// TopRecommendationsCleared returns if the "top_recommendations" field was cleared in this mutation.
func (m *DashboardSnapshotMutation) TopRecommendationsCleared() bool {
	_, ok := m.clearedFields[dashboardsnapshot.FieldTopRecommendations]
	return ok
}

// ResetTopRecommendations resets all changes to the "top_recommendations" field.
func (m *DashboardSnapshotMutation) ResetTopRecommendations() {
	m.top_recommendations = nil
	m.appendtop_recommendations = nil
	delete(m.clearedFields, dashboardsnapshot.FieldTopRecommendations)
}

// SetTotalCost sets the "total_cost" field.
func (m *DashboardSnapshotMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *DashboardSnapshotMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *DashboardSnapshotMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *DashboardSnapshotMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *DashboardSnapshotMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *DashboardSnapshotMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *DashboardSnapshotMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the DashboardSnapshot entity.
// If the DashboardSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSnapshotMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *DashboardSnapshotMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *DashboardSnapshotMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[dashboardsnapshot.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *DashboardSnapshotMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *DashboardSnapshotMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *DashboardSnapshotMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the DashboardSnapshotMutation builder.
func (m *DashboardSnapshotMutation) Where(ps ...predicate.DashboardSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DashboardSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DashboardSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DashboardSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DashboardSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DashboardSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DashboardSnapshot).
func (m *DashboardSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DashboardSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.audit != nil {
		fields = append(fields, dashboardsnapshot.FieldAuditID)
	}
	if m.overall_score != nil {
		fields = append(fields, dashboardsnapshot.FieldOverallScore)
	}
	if m.total_queries != nil {
		fields = append(fields, dashboardsnapshot.FieldTotalQueries)
	}
	if m.total_responses != nil {
		fields = append(fields, dashboardsnapshot.FieldTotalResponses)
	}
	if m.platform_breakdown != nil {
		fields = append(fields, dashboardsnapshot.FieldPlatformBreakdown)
	}
	if m.top_recommendations != nil {
		fields = append(fields, dashboardsnapshot.FieldTopRecommendations)
	}
	if m.total_cost != nil {
		fields = append(fields, dashboardsnapshot.FieldTotalCost)
	}
	if m.generated_at != nil {
		fields = append(fields, dashboardsnapshot.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DashboardSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dashboardsnapshot.FieldAuditID:
		return m.AuditID()
	case dashboardsnapshot.FieldOverallScore:
		return m.OverallScore()
	case dashboardsnapshot.FieldTotalQueries:
		return m.TotalQueries()
	case dashboardsnapshot.FieldTotalResponses:
		return m.TotalResponses()
	case dashboardsnapshot.FieldPlatformBreakdown:
		return m.PlatformBreakdown()
	case dashboardsnapshot.FieldTopRecommendations:
		return m.TopRecommendations()
	case dashboardsnapshot.FieldTotalCost:
		return m.TotalCost()
	case dashboardsnapshot.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DashboardSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dashboardsnapshot.FieldAuditID:
		return m.OldAuditID(ctx)
	case dashboardsnapshot.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case dashboardsnapshot.FieldTotalQueries:
		return m.OldTotalQueries(ctx)
	case dashboardsnapshot.FieldTotalResponses:
		return m.OldTotalResponses(ctx)
	case dashboardsnapshot.FieldPlatformBreakdown:
		return m.OldPlatformBreakdown(ctx)
	case dashboardsnapshot.FieldTopRecommendations:
		return m.OldTopRecommendations(ctx)
	case dashboardsnapshot.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case dashboardsnapshot.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DashboardSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DashboardSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dashboardsnapshot.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case dashboardsnapshot.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case dashboardsnapshot.FieldTotalQueries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQueries(v)
		return nil
	case dashboardsnapshot.FieldTotalResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalResponses(v)
		return nil
	case dashboardsnapshot.FieldPlatformBreakdown:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformBreakdown(v)
		return nil
	case dashboardsnapshot.FieldTopRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopRecommendations(v)
		return nil
	case dashboardsnapshot.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case dashboardsnapshot.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DashboardSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DashboardSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, dashboardsnapshot.FieldOverallScore)
	}
	if m.addtotal_queries != nil {
		fields = append(fields, dashboardsnapshot.FieldTotalQueries)
	}
	if m.addtotal_responses != nil {
		fields = append(fields, dashboardsnapshot.FieldTotalResponses)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, dashboardsnapshot.FieldTotalCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DashboardSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dashboardsnapshot.FieldOverallScore:
		return m.AddedOverallScore()
	case dashboardsnapshot.FieldTotalQueries:
		return m.AddedTotalQueries()
	case dashboardsnapshot.FieldTotalResponses:
		return m.AddedTotalResponses()
	case dashboardsnapshot.FieldTotalCost:
		return m.AddedTotalCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DashboardSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dashboardsnapshot.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case dashboardsnapshot.FieldTotalQueries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQueries(v)
		return nil
	case dashboardsnapshot.FieldTotalResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalResponses(v)
		return nil
	case dashboardsnapshot.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown DashboardSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DashboardSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dashboardsnapshot.FieldPlatformBreakdown) {
		fields = append(fields, dashboardsnapshot.FieldPlatformBreakdown)
	}
	if m.FieldCleared(dashboardsnapshot.FieldTopRecommendations) {
		fields = append(fields, dashboardsnapshot.FieldTopRecommendations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DashboardSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DashboardSnapshotMutation) ClearField(name string) error {
	switch name {
	case dashboardsnapshot.FieldPlatformBreakdown:
		m.ClearPlatformBreakdown()
		return nil
	case dashboardsnapshot.FieldTopRecommendations:
		m.ClearTopRecommendations()
		return nil
	}
	return fmt.Errorf("unknown DashboardSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DashboardSnapshotMutation) ResetField(name string) error {
	switch name {
	case dashboardsnapshot.FieldAuditID:
		m.ResetAuditID()
		return nil
	case dashboardsnapshot.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case dashboardsnapshot.FieldTotalQueries:
		m.ResetTotalQueries()
		return nil
	case dashboardsnapshot.FieldTotalResponses:
		m.ResetTotalResponses()
		return nil
	case dashboardsnapshot.FieldPlatformBreakdown:
		m.ResetPlatformBreakdown()
		return nil
	case dashboardsnapshot.FieldTopRecommendations:
		m.ResetTopRecommendations()
		return nil
	case dashboardsnapshot.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case dashboardsnapshot.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown DashboardSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DashboardSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, dashboardsnapshot.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DashboardSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dashboardsnapshot.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DashboardSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DashboardSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DashboardSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, dashboardsnapshot.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DashboardSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case dashboardsnapshot.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DashboardSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case dashboardsnapshot.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown DashboardSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DashboardSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case dashboardsnapshot.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown DashboardSnapshot edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	audit_id      *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *EventMutation) SetAuditID(s string) {
	m.audit_id = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *EventMutation) AuditID() (r string, exists bool) {
	v := m.audit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *EventMutation) ResetAuditID() {
	m.audit_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.audit_id != nil {
		fields = append(fields, event.FieldAuditID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldAuditID:
		return m.AuditID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldAuditID:
		return m.OldAuditID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldAuditID:
		m.ResetAuditID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ExecutiveSummaryMutation represents an operation that mutates the ExecutiveSummary nodes in the graph.
type ExecutiveSummaryMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	overall_score             *float64
	addoverall_score          *float64
	narrative                 *string
	top_recommendations       *[]string
	appendtop_recommendations []string
	risks                     *[]string
	appendrisks               []string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	audit                     *string
	clearedaudit              bool
	done                      bool
	oldValue                  func(context.Context) (*ExecutiveSummary, error)
	predicates                []predicate.ExecutiveSummary
}

var _ ent.Mutation = (*ExecutiveSummaryMutation)(nil)

// executivesummaryOption allows management of the mutation configuration using functional options.
type executivesummaryOption func(*ExecutiveSummaryMutation)

// newExecutiveSummaryMutation creates new mutation for the ExecutiveSummary entity.
func newExecutiveSummaryMutation(c config, op Op, opts ...executivesummaryOption) *ExecutiveSummaryMutation {
	m := &ExecutiveSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutiveSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutiveSummaryID sets the ID field of the mutation.
func withExecutiveSummaryID(id int) executivesummaryOption {
	return func(m *ExecutiveSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutiveSummary
		)
		m.oldValue = func(ctx context.Context) (*ExecutiveSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutiveSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutiveSummary sets the old ExecutiveSummary of the mutation.
func withExecutiveSummary(node *ExecutiveSummary) executivesummaryOption {
	return func(m *ExecutiveSummaryMutation) {
		m.oldValue = func(context.Context) (*ExecutiveSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutiveSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutiveSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutiveSummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutiveSummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutiveSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *ExecutiveSummaryMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *ExecutiveSummaryMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the ExecutiveSummary entity.
// If the ExecutiveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutiveSummaryMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *ExecutiveSummaryMutation) ResetAuditID() {
	m.audit = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *ExecutiveSummaryMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *ExecutiveSummaryMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the ExecutiveSummary entity.
// If the ExecutiveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutiveSummaryMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *ExecutiveSummaryMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *ExecutiveSummaryMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *ExecutiveSummaryMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetNarrative sets the "narrative" field.
func (m *ExecutiveSummaryMutation) SetNarrative(s string) {
	m.narrative = &s
}

// Narrative returns the value of the "narrative" field in the mutation.
func (m *ExecutiveSummaryMutation) Narrative() (r string, exists bool) {
	v := m.narrative
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrative returns the old "narrative" field's value of the ExecutiveSummary entity.
// If the ExecutiveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutiveSummaryMutation) OldNarrative(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrative is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrative requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrative: %w", err)
	}
	return oldValue.Narrative, nil
}

// ClearNarrative clears the value of the "narrative" field.
func (m *ExecutiveSummaryMutation) ClearNarrative() {
	m.narrative = nil
	m.clearedFields[executivesummary.FieldNarrative] = struct{}{}
}

// NarrativeCleared returns if the "narrative" field was cleared in this mutation.
func (m *ExecutiveSummaryMutation) NarrativeCleared() bool {
	_, ok := m.clearedFields[executivesummary.FieldNarrative]
	return ok
}

// ResetNarrative resets all changes to the "narrative" field.
func (m *ExecutiveSummaryMutation) ResetNarrative() {
	m.narrative = nil
	delete(m.clearedFields, executivesummary.FieldNarrative)
}

// SetTopRecommendations sets the "top_recommendations" field.
func (m *ExecutiveSummaryMutation) SetTopRecommendations(s []string) {
	m.top_recommendations = &s
	m.appendtop_recommendations = nil
}

// TopRecommendations returns the value of the "top_recommendations" field in the mutation.
func (m *ExecutiveSummaryMutation) TopRecommendations() (r []string, exists bool) {
	v := m.top_recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldTopRecommendations returns the old "top_recommendations" field's value of the ExecutiveSummary entity.
// If the ExecutiveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutiveSummaryMutation) OldTopRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopRecommendations: %w", err)
	}
	return oldValue.TopRecommendations, nil
}

// AppendTopRecommendations adds s to the "top_recommendations" field.
func (m *ExecutiveSummaryMutation) AppendTopRecommendations(s []string) {
	m.appendtop_recommendations = append(m.appendtop_recommendations, s...)
}

// AppendedTopRecommendations returns the list of values that were appended to the "top_recommendations" field in this mutation.
func (m *ExecutiveSummaryMutation) AppendedTopRecommendations() ([]string, bool) {
	if len(m.appendtop_recommendations) == 0 {
		return nil, false
	}
	return m.appendtop_recommendations, true
}

// ClearTopRecommendations clears the value of the "top_recommendations" field.
func (m *ExecutiveSummaryMutation) ClearTopRecommendations() {
	m.top_recommendations = nil
	m.appendtop_recommendations = nil
	m.clearedFields[executivesummary.FieldTopRecommendations] = struct{}{}
}

// TopRecommendationsCleared returns if the "top_recommendations" field was cleared in this mutation.
func (m *ExecutiveSummaryMutation) TopRecommendationsCleared() bool {
	_, ok := m.clearedFields[executivesummary.FieldTopRecommendations]
	return ok
}

// ResetTopRecommendations resets all changes to the "top_recommendations" field.
func (m *ExecutiveSummaryMutation) ResetTopRecommendations() {
	m.top_recommendations = nil
	m.appendtop_recommendations = nil
	delete(m.clearedFields, executivesummary.FieldTopRecommendations)
}

// SetRisks sets the "risks" field.
func (m *ExecutiveSummaryMutation) SetRisks(s []string) {
	m.risks = &s
	m.appendrisks = nil
}

// Risks returns the value of the "risks" field in the mutation.
func (m *ExecutiveSummaryMutation) Risks() (r []string, exists bool) {
	v := m.risks
	if v == nil {
		return
	}
	return *v, true
}

// OldRisks returns the old "risks" field's value of the ExecutiveSummary entity.
// If the ExecutiveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutiveSummaryMutation) OldRisks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisks: %w", err)
	}
	return oldValue.Risks, nil
}

// AppendRisks adds s to the "risks" field.
func (m *ExecutiveSummaryMutation) AppendRisks(s []string) {
	m.appendrisks = append(m.appendrisks, s...)
}

// AppendedRisks returns the list of values that were appended to the "risks" field in this mutation.
func (m *ExecutiveSummaryMutation) AppendedRisks() ([]string, bool) {
	if len(m.appendrisks) == 0 {
		return nil, false
	}
	return m.appendrisks, true
}

// ClearRisks clears the value of the "risks" field.
func (m *ExecutiveSummaryMutation) ClearRisks() {
	m.risks = nil
	m.appendrisks = nil
	m.clearedFields[executivesummary.FieldRisks] = struct{}{}
}

// RisksCleared returns if the "risks" field was cleared in this mutation.
func (m *ExecutiveSummaryMutation) RisksCleared() bool {
	_, ok := m.clearedFields[executivesummary.FieldRisks]
	return ok
}

// ResetRisks resets all changes to the "risks" field.
func (m *ExecutiveSummaryMutation) ResetRisks() {
	m.risks = nil
	m.appendrisks = nil
	delete(m.clearedFields, executivesummary.FieldRisks)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutiveSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutiveSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutiveSummary entity.
// If the ExecutiveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutiveSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutiveSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *ExecutiveSummaryMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[executivesummary.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *ExecutiveSummaryMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *ExecutiveSummaryMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *ExecutiveSummaryMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the ExecutiveSummaryMutation builder.
func (m *ExecutiveSummaryMutation) Where(ps ...predicate.ExecutiveSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutiveSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutiveSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutiveSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutiveSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutiveSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutiveSummary).
func (m *ExecutiveSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutiveSummaryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.audit != nil {
		fields = append(fields, executivesummary.FieldAuditID)
	}
	if m.overall_score != nil {
		fields = append(fields, executivesummary.FieldOverallScore)
	}
	if m.narrative != nil {
		fields = append(fields, executivesummary.FieldNarrative)
	}
	if m.top_recommendations != nil {
		fields = append(fields, executivesummary.FieldTopRecommendations)
	}
	if m.risks != nil {
		fields = append(fields, executivesummary.FieldRisks)
	}
	if m.created_at != nil {
		fields = append(fields, executivesummary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutiveSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executivesummary.FieldAuditID:
		return m.AuditID()
	case executivesummary.FieldOverallScore:
		return m.OverallScore()
	case executivesummary.FieldNarrative:
		return m.Narrative()
	case executivesummary.FieldTopRecommendations:
		return m.TopRecommendations()
	case executivesummary.FieldRisks:
		return m.Risks()
	case executivesummary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutiveSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executivesummary.FieldAuditID:
		return m.OldAuditID(ctx)
	case executivesummary.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case executivesummary.FieldNarrative:
		return m.OldNarrative(ctx)
	case executivesummary.FieldTopRecommendations:
		return m.OldTopRecommendations(ctx)
	case executivesummary.FieldRisks:
		return m.OldRisks(ctx)
	case executivesummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutiveSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutiveSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executivesummary.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case executivesummary.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case executivesummary.FieldNarrative:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrative(v)
		return nil
	case executivesummary.FieldTopRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopRecommendations(v)
		return nil
	case executivesummary.FieldRisks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisks(v)
		return nil
	case executivesummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutiveSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutiveSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, executivesummary.FieldOverallScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutiveSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executivesummary.FieldOverallScore:
		return m.AddedOverallScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutiveSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executivesummary.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutiveSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutiveSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executivesummary.FieldNarrative) {
		fields = append(fields, executivesummary.FieldNarrative)
	}
	if m.FieldCleared(executivesummary.FieldTopRecommendations) {
		fields = append(fields, executivesummary.FieldTopRecommendations)
	}
	if m.FieldCleared(executivesummary.FieldRisks) {
		fields = append(fields, executivesummary.FieldRisks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutiveSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutiveSummaryMutation) ClearField(name string) error {
	switch name {
	case executivesummary.FieldNarrative:
		m.ClearNarrative()
		return nil
	case executivesummary.FieldTopRecommendations:
		m.ClearTopRecommendations()
		return nil
	case executivesummary.FieldRisks:
		m.ClearRisks()
		return nil
	}
	return fmt.Errorf("unknown ExecutiveSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutiveSummaryMutation) ResetField(name string) error {
	switch name {
	case executivesummary.FieldAuditID:
		m.ResetAuditID()
		return nil
	case executivesummary.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case executivesummary.FieldNarrative:
		m.ResetNarrative()
		return nil
	case executivesummary.FieldTopRecommendations:
		m.ResetTopRecommendations()
		return nil
	case executivesummary.FieldRisks:
		m.ResetRisks()
		return nil
	case executivesummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutiveSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutiveSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, executivesummary.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutiveSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executivesummary.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutiveSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutiveSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutiveSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, executivesummary.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutiveSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case executivesummary.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutiveSummaryMutation) ClearEdge(name string) error {
	switch name {
	case executivesummary.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown ExecutiveSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutiveSummaryMutation) ResetEdge(name string) error {
	switch name {
	case executivesummary.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown ExecutiveSummary edge %s", name)
}

// ProviderLedgerMutation represents an operation that mutates the ProviderLedger nodes in the graph.
type ProviderLedgerMutation struct {
	config
	op                Op
	typ               string
	id                *int
	provider          *string
	daily_cost        *float64
	adddaily_cost     *float64
	monthly_cost      *float64
	addmonthly_cost   *float64
	total_cost        *float64
	addtotal_cost     *float64
	requests_today    *int
	addrequests_today *int
	last_reset        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ProviderLedger, error)
	predicates        []predicate.ProviderLedger
}

var _ ent.Mutation = (*ProviderLedgerMutation)(nil)

// providerledgerOption allows management of the mutation configuration using functional options.
type providerledgerOption func(*ProviderLedgerMutation)

// newProviderLedgerMutation creates new mutation for the ProviderLedger entity.
func newProviderLedgerMutation(c config, op Op, opts ...providerledgerOption) *ProviderLedgerMutation {
	m := &ProviderLedgerMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderLedger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderLedgerID sets the ID field of the mutation.
func withProviderLedgerID(id int) providerledgerOption {
	return func(m *ProviderLedgerMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderLedger
		)
		m.oldValue = func(ctx context.Context) (*ProviderLedger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderLedger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderLedger sets the old ProviderLedger of the mutation.
func withProviderLedger(node *ProviderLedger) providerledgerOption {
	return func(m *ProviderLedgerMutation) {
		m.oldValue = func(context.Context) (*ProviderLedger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderLedgerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderLedgerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderLedgerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderLedgerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderLedger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *ProviderLedgerMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProviderLedgerMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ProviderLedger entity.
// If the ProviderLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderLedgerMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProviderLedgerMutation) ResetProvider() {
	m.provider = nil
}

// SetDailyCost sets the "daily_cost" field.
func (m *ProviderLedgerMutation) SetDailyCost(f float64) {
	m.daily_cost = &f
	m.adddaily_cost = nil
}

// DailyCost returns the value of the "daily_cost" field in the mutation.
func (m *ProviderLedgerMutation) DailyCost() (r float64, exists bool) {
	v := m.daily_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyCost returns the old "daily_cost" field's value of the ProviderLedger entity.
// If the ProviderLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderLedgerMutation) OldDailyCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyCost: %w", err)
	}
	return oldValue.DailyCost, nil
}

// AddDailyCost adds f to the "daily_cost" field.
func (m *ProviderLedgerMutation) AddDailyCost(f float64) {
	if m.adddaily_cost != nil {
		*m.adddaily_cost += f
	} else {
		m.adddaily_cost = &f
	}
}

// AddedDailyCost returns the value that was added to the "daily_cost" field in this mutation.
func (m *ProviderLedgerMutation) AddedDailyCost() (r float64, exists bool) {
	v := m.adddaily_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyCost resets all changes to the "daily_cost" field.
func (m *ProviderLedgerMutation) ResetDailyCost() {
	m.daily_cost = nil
	m.adddaily_cost = nil
}

// SetMonthlyCost sets the "monthly_cost" field.
func (m *ProviderLedgerMutation) SetMonthlyCost(f float64) {
	m.monthly_cost = &f
	m.addmonthly_cost = nil
}

// MonthlyCost returns the value of the "monthly_cost" field in the mutation.
func (m *ProviderLedgerMutation) MonthlyCost() (r float64, exists bool) {
	v := m.monthly_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyCost returns the old "monthly_cost" field's value of the ProviderLedger entity.
// If the ProviderLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderLedgerMutation) OldMonthlyCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyCost: %w", err)
	}
	return oldValue.MonthlyCost, nil
}

// AddMonthlyCost adds f to the "monthly_cost" field.
func (m *ProviderLedgerMutation) AddMonthlyCost(f float64) {
	if m.addmonthly_cost != nil {
		*m.addmonthly_cost += f
	} else {
		m.addmonthly_cost = &f
	}
}

// AddedMonthlyCost returns the value that was added to the "monthly_cost" field in this mutation.
func (m *ProviderLedgerMutation) AddedMonthlyCost() (r float64, exists bool) {
	v := m.addmonthly_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyCost resets all changes to the "monthly_cost" field.
func (m *ProviderLedgerMutation) ResetMonthlyCost() {
	m.monthly_cost = nil
	m.addmonthly_cost = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *ProviderLedgerMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *ProviderLedgerMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the ProviderLedger entity.
// If the ProviderLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderLedgerMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *ProviderLedgerMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *ProviderLedgerMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *ProviderLedgerMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetRequestsToday sets the "requests_today" field.
func (m *ProviderLedgerMutation) SetRequestsToday(i int) {
	m.requests_today = &i
	m.addrequests_today = nil
}

// RequestsToday returns the value of the "requests_today" field in the mutation.
func (m *ProviderLedgerMutation) RequestsToday() (r int, exists bool) {
	v := m.requests_today
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestsToday returns the old "requests_today" field's value of the ProviderLedger entity.
// If the ProviderLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderLedgerMutation) OldRequestsToday(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestsToday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestsToday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestsToday: %w", err)
	}
	return oldValue.RequestsToday, nil
}

// AddRequestsToday adds i to the "requests_today" field.
func (m *ProviderLedgerMutation) AddRequestsToday(i int) {
	if m.addrequests_today != nil {
		*m.addrequests_today += i
	} else {
		m.addrequests_today = &i
	}
}

// AddedRequestsToday returns the value that was added to the "requests_today" field in this mutation.
func (m *ProviderLedgerMutation) AddedRequestsToday() (r int, exists bool) {
	v := m.addrequests_today
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestsToday resets all changes to the "requests_today" field.
func (m *ProviderLedgerMutation) ResetRequestsToday() {
	m.requests_today = nil
	m.addrequests_today = nil
}

// SetLastReset sets the "last_reset" field.
func (m *ProviderLedgerMutation) SetLastReset(t time.Time) {
	m.last_reset = &t
}

// LastReset returns the value of the "last_reset" field in the mutation.
func (m *ProviderLedgerMutation) LastReset() (r time.Time, exists bool) {
	v := m.last_reset
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReset returns the old "last_reset" field's value of the ProviderLedger entity.
// If the ProviderLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderLedgerMutation) OldLastReset(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReset: %w", err)
	}
	return oldValue.LastReset, nil
}

// ResetLastReset resets all changes to the "last_reset" field.
func (m *ProviderLedgerMutation) ResetLastReset() {
	m.last_reset = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProviderLedgerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProviderLedgerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProviderLedger entity.
// If the ProviderLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderLedgerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProviderLedgerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProviderLedgerMutation builder.
func (m *ProviderLedgerMutation) Where(ps ...predicate.ProviderLedger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderLedgerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderLedgerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderLedger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderLedgerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderLedgerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderLedger).
func (m *ProviderLedgerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderLedgerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.provider != nil {
		fields = append(fields, providerledger.FieldProvider)
	}
	if m.daily_cost != nil {
		fields = append(fields, providerledger.FieldDailyCost)
	}
	if m.monthly_cost != nil {
		fields = append(fields, providerledger.FieldMonthlyCost)
	}
	if m.total_cost != nil {
		fields = append(fields, providerledger.FieldTotalCost)
	}
	if m.requests_today != nil {
		fields = append(fields, providerledger.FieldRequestsToday)
	}
	if m.last_reset != nil {
		fields = append(fields, providerledger.FieldLastReset)
	}
	if m.updated_at != nil {
		fields = append(fields, providerledger.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderLedgerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providerledger.FieldProvider:
		return m.Provider()
	case providerledger.FieldDailyCost:
		return m.DailyCost()
	case providerledger.FieldMonthlyCost:
		return m.MonthlyCost()
	case providerledger.FieldTotalCost:
		return m.TotalCost()
	case providerledger.FieldRequestsToday:
		return m.RequestsToday()
	case providerledger.FieldLastReset:
		return m.LastReset()
	case providerledger.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderLedgerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providerledger.FieldProvider:
		return m.OldProvider(ctx)
	case providerledger.FieldDailyCost:
		return m.OldDailyCost(ctx)
	case providerledger.FieldMonthlyCost:
		return m.OldMonthlyCost(ctx)
	case providerledger.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case providerledger.FieldRequestsToday:
		return m.OldRequestsToday(ctx)
	case providerledger.FieldLastReset:
		return m.OldLastReset(ctx)
	case providerledger.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderLedger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderLedgerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providerledger.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case providerledger.FieldDailyCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyCost(v)
		return nil
	case providerledger.FieldMonthlyCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyCost(v)
		return nil
	case providerledger.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case providerledger.FieldRequestsToday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestsToday(v)
		return nil
	case providerledger.FieldLastReset:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReset(v)
		return nil
	case providerledger.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderLedger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderLedgerMutation) AddedFields() []string {
	var fields []string
	if m.adddaily_cost != nil {
		fields = append(fields, providerledger.FieldDailyCost)
	}
	if m.addmonthly_cost != nil {
		fields = append(fields, providerledger.FieldMonthlyCost)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, providerledger.FieldTotalCost)
	}
	if m.addrequests_today != nil {
		fields = append(fields, providerledger.FieldRequestsToday)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderLedgerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case providerledger.FieldDailyCost:
		return m.AddedDailyCost()
	case providerledger.FieldMonthlyCost:
		return m.AddedMonthlyCost()
	case providerledger.FieldTotalCost:
		return m.AddedTotalCost()
	case providerledger.FieldRequestsToday:
		return m.AddedRequestsToday()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderLedgerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case providerledger.FieldDailyCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyCost(v)
		return nil
	case providerledger.FieldMonthlyCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyCost(v)
		return nil
	case providerledger.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	case providerledger.FieldRequestsToday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestsToday(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderLedger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderLedgerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderLedgerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderLedgerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProviderLedger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderLedgerMutation) ResetField(name string) error {
	switch name {
	case providerledger.FieldProvider:
		m.ResetProvider()
		return nil
	case providerledger.FieldDailyCost:
		m.ResetDailyCost()
		return nil
	case providerledger.FieldMonthlyCost:
		m.ResetMonthlyCost()
		return nil
	case providerledger.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case providerledger.FieldRequestsToday:
		m.ResetRequestsToday()
		return nil
	case providerledger.FieldLastReset:
		m.ResetLastReset()
		return nil
	case providerledger.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderLedger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderLedgerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderLedgerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderLedgerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderLedgerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderLedgerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderLedgerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderLedgerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProviderLedger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderLedgerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProviderLedger edge %s", name)
}

// ProviderResponseMutation represents an operation that mutates the ProviderResponse nodes in the graph.
type ProviderResponseMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	query_id                      *string
	provider                      *string
	model                         *string
	text                          *string
	tokens_in                     *int
	addtokens_in                  *int
	tokens_out                    *int
	addtokens_out                 *int
	cost                          *float64
	addcost                       *float64
	latency_ms                    *int
	addlatency_ms                 *int
	cached                        *bool
	citations                     *[]string
	appendcitations               []string
	created_at                    *time.Time
	brand_mentioned               *bool
	mention_count                 *int
	addmention_count              *int
	mention_position              *int
	addmention_position           *int
	first_position_percentage     *float64
	addfirst_position_percentage  *float64
	mention_context               *string
	sentiment                     *float64
	addsentiment                  *float64
	recommendation_strength       *float64
	addrecommendation_strength    *float64
	competitor_analysis           *[]map[string]interface{}
	appendcompetitor_analysis     []map[string]interface{}
	features_mentioned            *[]string
	appendfeatures_mentioned      []string
	value_props                   *[]string
	appendvalue_props             []string
	featured_snippet_potential    *float64
	addfeatured_snippet_potential *float64
	voice_search_optimized        *bool
	geo_score                     *float64
	addgeo_score                  *float64
	sov_score                     *float64
	addsov_score                  *float64
	context_completeness          *float64
	addcontext_completeness       *float64
	buyer_journey_category        *providerresponse.BuyerJourneyCategory
	context_quality               *float64
	addcontext_quality            *float64
	additional_metrics            *map[string]interface{}
	metrics_extracted_at          *time.Time
	extraction_error              *string
	batch_id                      *string
	batch_number                  *int
	addbatch_number               *int
	batch_position                *int
	addbatch_position             *int
	query_text                    *string
	clearedFields                 map[string]struct{}
	audit                         *string
	clearedaudit                  bool
	done                          bool
	oldValue                      func(context.Context) (*ProviderResponse, error)
	predicates                    []predicate.ProviderResponse
}

var _ ent.Mutation = (*ProviderResponseMutation)(nil)

// providerresponseOption allows management of the mutation configuration using functional options.
type providerresponseOption func(*ProviderResponseMutation)

// newProviderResponseMutation creates new mutation for the ProviderResponse entity.
func newProviderResponseMutation(c config, op Op, opts ...providerresponseOption) *ProviderResponseMutation {
	m := &ProviderResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderResponseID sets the ID field of the mutation.
func withProviderResponseID(id string) providerresponseOption {
	return func(m *ProviderResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderResponse
		)
		m.oldValue = func(ctx context.Context) (*ProviderResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderResponse sets the old ProviderResponse of the mutation.
func withProviderResponse(node *ProviderResponse) providerresponseOption {
	return func(m *ProviderResponseMutation) {
		m.oldValue = func(context.Context) (*ProviderResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProviderResponse entities.
func (m *ProviderResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueryID sets the "query_id" field.
func (m *ProviderResponseMutation) SetQueryID(s string) {
	m.query_id = &s
}

// QueryID returns the value of the "query_id" field in the mutation.
func (m *ProviderResponseMutation) QueryID() (r string, exists bool) {
	v := m.query_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryID returns the old "query_id" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldQueryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryID: %w", err)
	}
	return oldValue.QueryID, nil
}

// ResetQueryID resets all changes to the "query_id" field.
func (m *ProviderResponseMutation) ResetQueryID() {
	m.query_id = nil
}

// SetAuditID sets the "audit_id" field.
func (m *ProviderResponseMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *ProviderResponseMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *ProviderResponseMutation) ResetAuditID() {
	m.audit = nil
}

// SetProvider sets the "provider" field.
func (m *ProviderResponseMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProviderResponseMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProviderResponseMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *ProviderResponseMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ProviderResponseMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ProviderResponseMutation) ResetModel() {
	m.model = nil
}

// SetText sets the "text" field.
func (m *ProviderResponseMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ProviderResponseMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ProviderResponseMutation) ResetText() {
	m.text = nil
}

// SetTokensIn sets the "tokens_in" field.
func (m *ProviderResponseMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *ProviderResponseMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *ProviderResponseMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *ProviderResponseMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *ProviderResponseMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *ProviderResponseMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *ProviderResponseMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *ProviderResponseMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *ProviderResponseMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *ProviderResponseMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetCost sets the "cost" field.
func (m *ProviderResponseMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ProviderResponseMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *ProviderResponseMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *ProviderResponseMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *ProviderResponseMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ProviderResponseMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ProviderResponseMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ProviderResponseMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ProviderResponseMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ProviderResponseMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetCached sets the "cached" field.
func (m *ProviderResponseMutation) SetCached(b bool) {
	m.cached = &b
}

// Cached returns the value of the "cached" field in the mutation.
func (m *ProviderResponseMutation) Cached() (r bool, exists bool) {
	v := m.cached
	if v == nil {
		return
	}
	return *v, true
}

// OldCached returns the old "cached" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCached: %w", err)
	}
	return oldValue.Cached, nil
}

// ResetCached resets all changes to the "cached" field.
func (m *ProviderResponseMutation) ResetCached() {
	m.cached = nil
}

// SetCitations sets the "citations" field.
func (m *ProviderResponseMutation) SetCitations(s []string) {
	m.citations = &s
	m.appendcitations = nil
}

// Citations returns the value of the "citations" field in the mutation.
func (m *ProviderResponseMutation) Citations() (r []string, exists bool) {
	v := m.citations
	if v == nil {
		return
	}
	return *v, true
}

// OldCitations returns the old "citations" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCitations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitations: %w", err)
	}
	return oldValue.Citations, nil
}

// AppendCitations adds s to the "citations" field.
func (m *ProviderResponseMutation) AppendCitations(s []string) {
	m.appendcitations = append(m.appendcitations, s...)
}

// AppendedCitations returns the list of values that were appended to the "citations" field in this mutation.
func (m *ProviderResponseMutation) AppendedCitations() ([]string, bool) {
	if len(m.appendcitations) == 0 {
		return nil, false
	}
	return m.appendcitations, true
}

// ClearCitations clears the value of the "citations" field.
func (m *ProviderResponseMutation) ClearCitations() {
	m.citations = nil
	m.appendcitations = nil
	m.clearedFields[providerresponse.FieldCitations] = struct{}{}
}

// CitationsCleared returns if the "citations" field was cleared in this mutation.
func (m *ProviderResponseMutation) CitationsCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldCitations]
	return ok
}

// ResetCitations resets all changes to the "citations" field.
func (m *ProviderResponseMutation) ResetCitations() {
	m.citations = nil
	m.appendcitations = nil
	delete(m.clearedFields, providerresponse.FieldCitations)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProviderResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProviderResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProviderResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (m *ProviderResponseMutation) SetBrandMentioned(b bool) {
	m.brand_mentioned = &b
}

// BrandMentioned returns the value of the "brand_mentioned" field in the mutation.
func (m *ProviderResponseMutation) BrandMentioned() (r bool, exists bool) {
	v := m.brand_mentioned
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandMentioned returns the old "brand_mentioned" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldBrandMentioned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandMentioned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandMentioned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandMentioned: %w", err)
	}
	return oldValue.BrandMentioned, nil
}

// ResetBrandMentioned resets all changes to the "brand_mentioned" field.
func (m *ProviderResponseMutation) ResetBrandMentioned() {
	m.brand_mentioned = nil
}

// SetMentionCount sets the "mention_count" field.
func (m *ProviderResponseMutation) SetMentionCount(i int) {
	m.mention_count = &i
	m.addmention_count = nil
}

// MentionCount returns the value of the "mention_count" field in the mutation.
func (m *ProviderResponseMutation) MentionCount() (r int, exists bool) {
	v := m.mention_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionCount returns the old "mention_count" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldMentionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionCount: %w", err)
	}
	return oldValue.MentionCount, nil
}

// AddMentionCount adds i to the "mention_count" field.
func (m *ProviderResponseMutation) AddMentionCount(i int) {
	if m.addmention_count != nil {
		*m.addmention_count += i
	} else {
		m.addmention_count = &i
	}
}

// AddedMentionCount returns the value that was added to the "mention_count" field in this mutation.
func (m *ProviderResponseMutation) AddedMentionCount() (r int, exists bool) {
	v := m.addmention_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionCount resets all changes to the "mention_count" field.
func (m *ProviderResponseMutation) ResetMentionCount() {
	m.mention_count = nil
	m.addmention_count = nil
}

// SetMentionPosition sets the "mention_position" field.
func (m *ProviderResponseMutation) SetMentionPosition(i int) {
	m.mention_position = &i
	m.addmention_position = nil
}

// MentionPosition returns the value of the "mention_position" field in the mutation.
func (m *ProviderResponseMutation) MentionPosition() (r int, exists bool) {
	v := m.mention_position
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionPosition returns the old "mention_position" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldMentionPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionPosition: %w", err)
	}
	return oldValue.MentionPosition, nil
}

// AddMentionPosition adds i to the "mention_position" field.
func (m *ProviderResponseMutation) AddMentionPosition(i int) {
	if m.addmention_position != nil {
		*m.addmention_position += i
	} else {
		m.addmention_position = &i
	}
}

// AddedMentionPosition returns the value that was added to the "mention_position" field in this mutation.
func (m *ProviderResponseMutation) AddedMentionPosition() (r int, exists bool) {
	v := m.addmention_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionPosition resets all changes to the "mention_position" field.
func (m *ProviderResponseMutation) ResetMentionPosition() {
	m.mention_position = nil
	m.addmention_position = nil
}

// SetFirstPositionPercentage sets the "first_position_percentage" field.
func (m *ProviderResponseMutation) SetFirstPositionPercentage(f float64) {
	m.first_position_percentage = &f
	m.addfirst_position_percentage = nil
}

// FirstPositionPercentage returns the value of the "first_position_percentage" field in the mutation.
func (m *ProviderResponseMutation) FirstPositionPercentage() (r float64, exists bool) {
	v := m.first_position_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstPositionPercentage returns the old "first_position_percentage" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldFirstPositionPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstPositionPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstPositionPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstPositionPercentage: %w", err)
	}
	return oldValue.FirstPositionPercentage, nil
}

// AddFirstPositionPercentage adds f to the "first_position_percentage" field.
func (m *ProviderResponseMutation) AddFirstPositionPercentage(f float64) {
	if m.addfirst_position_percentage != nil {
		*m.addfirst_position_percentage += f
	} else {
		m.addfirst_position_percentage = &f
	}
}

// AddedFirstPositionPercentage returns the value that was added to the "first_position_percentage" field in this mutation.
func (m *ProviderResponseMutation) AddedFirstPositionPercentage() (r float64, exists bool) {
	v := m.addfirst_position_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstPositionPercentage resets all changes to the "first_position_percentage" field.
func (m *ProviderResponseMutation) ResetFirstPositionPercentage() {
	m.first_position_percentage = nil
	m.addfirst_position_percentage = nil
}

// SetMentionContext sets the "mention_context" field.
func (m *ProviderResponseMutation) SetMentionContext(s string) {
	m.mention_context = &s
}

// MentionContext returns the value of the "mention_context" field in the mutation.
func (m *ProviderResponseMutation) MentionContext() (r string, exists bool) {
	v := m.mention_context
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionContext returns the old "mention_context" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldMentionContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionContext: %w", err)
	}
	return oldValue.MentionContext, nil
}

// ClearMentionContext clears the value of the "mention_context" field.
func (m *ProviderResponseMutation) ClearMentionContext() {
	m.mention_context = nil
	m.clearedFields[providerresponse.FieldMentionContext] = struct{}{}
}

// MentionContextCleared returns if the "mention_context" field was cleared in this mutation.
func (m *ProviderResponseMutation) MentionContextCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldMentionContext]
	return ok
}

// ResetMentionContext resets all changes to the "mention_context" field.
func (m *ProviderResponseMutation) ResetMentionContext() {
	m.mention_context = nil
	delete(m.clearedFields, providerresponse.FieldMentionContext)
}

// SetSentiment sets the "sentiment" field.
func (m *ProviderResponseMutation) SetSentiment(f float64) {
	m.sentiment = &f
	m.addsentiment = nil
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *ProviderResponseMutation) Sentiment() (r float64, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldSentiment(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// AddSentiment adds f to the "sentiment" field.
func (m *ProviderResponseMutation) AddSentiment(f float64) {
	if m.addsentiment != nil {
		*m.addsentiment += f
	} else {
		m.addsentiment = &f
	}
}

// AddedSentiment returns the value that was added to the "sentiment" field in this mutation.
func (m *ProviderResponseMutation) AddedSentiment() (r float64, exists bool) {
	v := m.addsentiment
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *ProviderResponseMutation) ResetSentiment() {
	m.sentiment = nil
	m.addsentiment = nil
}

// SetRecommendationStrength sets the "recommendation_strength" field.
func (m *ProviderResponseMutation) SetRecommendationStrength(f float64) {
	m.recommendation_strength = &f
	m.addrecommendation_strength = nil
}

// RecommendationStrength returns the value of the "recommendation_strength" field in the mutation.
func (m *ProviderResponseMutation) RecommendationStrength() (r float64, exists bool) {
	v := m.recommendation_strength
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationStrength returns the old "recommendation_strength" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldRecommendationStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationStrength: %w", err)
	}
	return oldValue.RecommendationStrength, nil
}

// AddRecommendationStrength adds f to the "recommendation_strength" field.
func (m *ProviderResponseMutation) AddRecommendationStrength(f float64) {
	if m.addrecommendation_strength != nil {
		*m.addrecommendation_strength += f
	} else {
		m.addrecommendation_strength = &f
	}
}

// AddedRecommendationStrength returns the value that was added to the "recommendation_strength" field in this mutation.
func (m *ProviderResponseMutation) AddedRecommendationStrength() (r float64, exists bool) {
	v := m.addrecommendation_strength
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecommendationStrength resets all changes to the "recommendation_strength" field.
func (m *ProviderResponseMutation) ResetRecommendationStrength() {
	m.recommendation_strength = nil
	m.addrecommendation_strength = nil
}

// SetCompetitorAnalysis sets the "competitor_analysis" field.
func (m *ProviderResponseMutation) SetCompetitorAnalysis(value []map[string]interface{}) {
	m.competitor_analysis = &value
	m.appendcompetitor_analysis = nil
}

// CompetitorAnalysis returns the value of the "competitor_analysis" field in the mutation.
func (m *ProviderResponseMutation) CompetitorAnalysis() (r []map[string]interface{}, exists bool) {
	v := m.competitor_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorAnalysis returns the old "competitor_analysis" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCompetitorAnalysis(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorAnalysis: %w", err)
	}
	return oldValue.CompetitorAnalysis, nil
}

// AppendCompetitorAnalysis adds value to the "competitor_analysis" field.
func (m *ProviderResponseMutation) AppendCompetitorAnalysis(value []map[string]interface{}) {
	m.appendcompetitor_analysis = append(m.appendcompetitor_analysis, value...)
}

// AppendedCompetitorAnalysis returns the list of values that were appended to the "competitor_analysis" field in this mutation.
func (m *ProviderResponseMutation) AppendedCompetitorAnalysis() ([]map[string]interface{}, bool) {
	if len(m.appendcompetitor_analysis) == 0 {
		return nil, false
	}
	return m.appendcompetitor_analysis, true
}

// ClearCompetitorAnalysis clears the value of the "competitor_analysis" field.
func (m *ProviderResponseMutation) ClearCompetitorAnalysis() {
	m.competitor_analysis = nil
	m.appendcompetitor_analysis = nil
	m.clearedFields[providerresponse.FieldCompetitorAnalysis] = struct{}{}
}

// CompetitorAnalysisCleared returns if the "competitor_analysis" field was cleared in this mutation.
func (m *ProviderResponseMutation) CompetitorAnalysisCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldCompetitorAnalysis]
	return ok
}

// ResetCompetitorAnalysis resets all changes to the "competitor_analysis" field.
func (m *ProviderResponseMutation) ResetCompetitorAnalysis() {
	m.competitor_analysis = nil
	m.appendcompetitor_analysis = nil
	delete(m.clearedFields, providerresponse.FieldCompetitorAnalysis)
}

// SetFeaturesMentioned sets the "features_mentioned" field.
func (m *ProviderResponseMutation) SetFeaturesMentioned(s []string) {
	m.features_mentioned = &s
	m.appendfeatures_mentioned = nil
}

// FeaturesMentioned returns the value of the "features_mentioned" field in the mutation.
func (m *ProviderResponseMutation) FeaturesMentioned() (r []string, exists bool) {
	v := m.features_mentioned
	if v == nil {
		return
	}
	return *v, true
}

// OldFeaturesMentioned returns the old "features_mentioned" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldFeaturesMentioned(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeaturesMentioned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeaturesMentioned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeaturesMentioned: %w", err)
	}
	return oldValue.FeaturesMentioned, nil
}

// AppendFeaturesMentioned adds s to the "features_mentioned" field.
func (m *ProviderResponseMutation) AppendFeaturesMentioned(s []string) {
	m.appendfeatures_mentioned = append(m.appendfeatures_mentioned, s...)
}

// AppendedFeaturesMentioned returns the list of values that were appended to the "features_mentioned" field in this mutation.
func (m *ProviderResponseMutation) AppendedFeaturesMentioned() ([]string, bool) {
	if len(m.appendfeatures_mentioned) == 0 {
		return nil, false
	}
	return m.appendfeatures_mentioned, true
}

// ClearFeaturesMentioned clears the value of the "features_mentioned" field.
func (m *ProviderResponseMutation) ClearFeaturesMentioned() {
	m.features_mentioned = nil
	m.appendfeatures_mentioned = nil
	m.clearedFields[providerresponse.FieldFeaturesMentioned] = struct{}{}
}

// FeaturesMentionedCleared returns if the "features_mentioned" field was cleared in this mutation.
func (m *ProviderResponseMutation) FeaturesMentionedCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldFeaturesMentioned]
	return ok
}

// ResetFeaturesMentioned resets all changes to the "features_mentioned" field.
func (m *ProviderResponseMutation) ResetFeaturesMentioned() {
	m.features_mentioned = nil
	m.appendfeatures_mentioned = nil
	delete(m.clearedFields, providerresponse.FieldFeaturesMentioned)
}

// SetValueProps sets the "value_props" field.
func (m *ProviderResponseMutation) SetValueProps(s []string) {
	m.value_props = &s
	m.appendvalue_props = nil
}

// ValueProps returns the value of the "value_props" field in the mutation.
func (m *ProviderResponseMutation) ValueProps() (r []string, exists bool) {
	v := m.value_props
	if v == nil {
		return
	}
	return *v, true
}

// OldValueProps returns the old "value_props" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldValueProps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueProps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueProps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueProps: %w", err)
	}
	return oldValue.ValueProps, nil
}

// AppendValueProps adds s to the "value_props" field.
func (m *ProviderResponseMutation) AppendValueProps(s []string) {
	m.appendvalue_props = append(m.appendvalue_props, s...)
}

// AppendedValueProps returns the list of values that were appended to the "value_props" field in this mutation.
func (m *ProviderResponseMutation) AppendedValueProps() ([]string, bool) {
	if len(m.appendvalue_props) == 0 {
		return nil, false
	}
	return m.appendvalue_props, true
}

// ClearValueProps clears the value of the "value_props" field.
func (m *ProviderResponseMutation) ClearValueProps() {
	m.value_props = nil
	m.appendvalue_props = nil
	m.clearedFields[providerresponse.FieldValueProps] = struct{}{}
}

// ValuePropsCleared returns if the "value_props" field was cleared in this mutation.
func (m *ProviderResponseMutation) ValuePropsCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldValueProps]
	return ok
}

// ResetValueProps resets all changes to the "value_props" field.
func (m *ProviderResponseMutation) ResetValueProps() {
	m.value_props = nil
	m.appendvalue_props = nil
	delete(m.clearedFields, providerresponse.FieldValueProps)
}

// SetFeaturedSnippetPotential sets the "featured_snippet_potential" field.
func (m *ProviderResponseMutation) SetFeaturedSnippetPotential(f float64) {
	m.featured_snippet_potential = &f
	m.addfeatured_snippet_potential = nil
}

// FeaturedSnippetPotential returns the value of the "featured_snippet_potential" field in the mutation.
func (m *ProviderResponseMutation) FeaturedSnippetPotential() (r float64, exists bool) {
	v := m.featured_snippet_potential
	if v == nil {
		return
	}
	return *v, true
}

// OldFeaturedSnippetPotential returns the old "featured_snippet_potential" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldFeaturedSnippetPotential(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeaturedSnippetPotential is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeaturedSnippetPotential requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeaturedSnippetPotential: %w", err)
	}
	return oldValue.FeaturedSnippetPotential, nil
}

// AddFeaturedSnippetPotential adds f to the "featured_snippet_potential" field.
func (m *ProviderResponseMutation) AddFeaturedSnippetPotential(f float64) {
	if m.addfeatured_snippet_potential != nil {
		*m.addfeatured_snippet_potential += f
	} else {
		m.addfeatured_snippet_potential = &f
	}
}

// AddedFeaturedSnippetPotential returns the value that was added to the "featured_snippet_potential" field in this mutation.
func (m *ProviderResponseMutation) AddedFeaturedSnippetPotential() (r float64, exists bool) {
	v := m.addfeatured_snippet_potential
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeaturedSnippetPotential resets all changes to the "featured_snippet_potential" field.
func (m *ProviderResponseMutation) ResetFeaturedSnippetPotential() {
	m.featured_snippet_potential = nil
	m.addfeatured_snippet_potential = nil
}

// SetVoiceSearchOptimized sets the "voice_search_optimized" field.
func (m *ProviderResponseMutation) SetVoiceSearchOptimized(b bool) {
	m.voice_search_optimized = &b
}

// VoiceSearchOptimized returns the value of the "voice_search_optimized" field in the mutation.
func (m *ProviderResponseMutation) VoiceSearchOptimized() (r bool, exists bool) {
	v := m.voice_search_optimized
	if v == nil {
		return
	}
	return *v, true
}

// OldVoiceSearchOptimized returns the old "voice_search_optimized" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldVoiceSearchOptimized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoiceSearchOptimized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoiceSearchOptimized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoiceSearchOptimized: %w", err)
	}
	return oldValue.VoiceSearchOptimized, nil
}

// ResetVoiceSearchOptimized resets all changes to the "voice_search_optimized" field.
func (m *ProviderResponseMutation) ResetVoiceSearchOptimized() {
	m.voice_search_optimized = nil
}

// SetGeoScore sets the "geo_score" field.
func (m *ProviderResponseMutation) SetGeoScore(f float64) {
	m.geo_score = &f
	m.addgeo_score = nil
}

// GeoScore returns the value of the "geo_score" field in the mutation.
func (m *ProviderResponseMutation) GeoScore() (r float64, exists bool) {
	v := m.geo_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGeoScore returns the old "geo_score" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldGeoScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeoScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeoScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeoScore: %w", err)
	}
	return oldValue.GeoScore, nil
}

// AddGeoScore adds f to the "geo_score" field.
func (m *ProviderResponseMutation) AddGeoScore(f float64) {
	if m.addgeo_score != nil {
		*m.addgeo_score += f
	} else {
		m.addgeo_score = &f
	}
}

// AddedGeoScore returns the value that was added to the "geo_score" field in this mutation.
func (m *ProviderResponseMutation) AddedGeoScore() (r float64, exists bool) {
	v := m.addgeo_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeoScore resets all changes to the "geo_score" field.
func (m *ProviderResponseMutation) ResetGeoScore() {
	m.geo_score = nil
	m.addgeo_score = nil
}

// SetSovScore sets the "sov_score" field.
func (m *ProviderResponseMutation) SetSovScore(f float64) {
	m.sov_score = &f
	m.addsov_score = nil
}

// SovScore returns the value of the "sov_score" field in the mutation.
func (m *ProviderResponseMutation) SovScore() (r float64, exists bool) {
	v := m.sov_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSovScore returns the old "sov_score" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldSovScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSovScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSovScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSovScore: %w", err)
	}
	return oldValue.SovScore, nil
}

// AddSovScore adds f to the "sov_score" field.
func (m *ProviderResponseMutation) AddSovScore(f float64) {
	if m.addsov_score != nil {
		*m.addsov_score += f
	} else {
		m.addsov_score = &f
	}
}

// AddedSovScore returns the value that was added to the "sov_score" field in this mutation.
func (m *ProviderResponseMutation) AddedSovScore() (r float64, exists bool) {
	v := m.addsov_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSovScore resets all changes to the "sov_score" field.
func (m *ProviderResponseMutation) ResetSovScore() {
	m.sov_score = nil
	m.addsov_score = nil
}

// SetContextCompleteness sets the "context_completeness" field.
func (m *ProviderResponseMutation) SetContextCompleteness(f float64) {
	m.context_completeness = &f
	m.addcontext_completeness = nil
}

// ContextCompleteness returns the value of the "context_completeness" field in the mutation.
func (m *ProviderResponseMutation) ContextCompleteness() (r float64, exists bool) {
	v := m.context_completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldContextCompleteness returns the old "context_completeness" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldContextCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextCompleteness: %w", err)
	}
	return oldValue.ContextCompleteness, nil
}

// AddContextCompleteness adds f to the "context_completeness" field.
func (m *ProviderResponseMutation) AddContextCompleteness(f float64) {
	if m.addcontext_completeness != nil {
		*m.addcontext_completeness += f
	} else {
		m.addcontext_completeness = &f
	}
}

// AddedContextCompleteness returns the value that was added to the "context_completeness" field in this mutation.
func (m *ProviderResponseMutation) AddedContextCompleteness() (r float64, exists bool) {
	v := m.addcontext_completeness
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextCompleteness resets all changes to the "context_completeness" field.
func (m *ProviderResponseMutation) ResetContextCompleteness() {
	m.context_completeness = nil
	m.addcontext_completeness = nil
}

// SetBuyerJourneyCategory sets the "buyer_journey_category" field.
func (m *ProviderResponseMutation) SetBuyerJourneyCategory(pjc providerresponse.BuyerJourneyCategory) {
	m.buyer_journey_category = &pjc
}

// BuyerJourneyCategory returns the value of the "buyer_journey_category" field in the mutation.
func (m *ProviderResponseMutation) BuyerJourneyCategory() (r providerresponse.BuyerJourneyCategory, exists bool) {
	v := m.buyer_journey_category
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerJourneyCategory returns the old "buyer_journey_category" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldBuyerJourneyCategory(ctx context.Context) (v providerresponse.BuyerJourneyCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerJourneyCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerJourneyCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerJourneyCategory: %w", err)
	}
	return oldValue.BuyerJourneyCategory, nil
}

// ClearBuyerJourneyCategory clears the value of the "buyer_journey_category" field.
func (m *ProviderResponseMutation) ClearBuyerJourneyCategory() {
	m.buyer_journey_category = nil
	m.clearedFields[providerresponse.FieldBuyerJourneyCategory] = struct{}{}
}

// BuyerJourneyCategoryCleared returns if the "buyer_journey_category" field was cleared in this mutation.
func (m *ProviderResponseMutation) BuyerJourneyCategoryCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldBuyerJourneyCategory]
	return ok
}

// ResetBuyerJourneyCategory resets all changes to the "buyer_journey_category" field.
func (m *ProviderResponseMutation) ResetBuyerJourneyCategory() {
	m.buyer_journey_category = nil
	delete(m.clearedFields, providerresponse.FieldBuyerJourneyCategory)
}

// SetContextQuality sets the "context_quality" field.
func (m *ProviderResponseMutation) SetContextQuality(f float64) {
	m.context_quality = &f
	m.addcontext_quality = nil
}

// ContextQuality returns the value of the "context_quality" field in the mutation.
func (m *ProviderResponseMutation) ContextQuality() (r float64, exists bool) {
	v := m.context_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldContextQuality returns the old "context_quality" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldContextQuality(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextQuality: %w", err)
	}
	return oldValue.ContextQuality, nil
}

// AddContextQuality adds f to the "context_quality" field.
func (m *ProviderResponseMutation) AddContextQuality(f float64) {
	if m.addcontext_quality != nil {
		*m.addcontext_quality += f
	} else {
		m.addcontext_quality = &f
	}
}

// AddedContextQuality returns the value that was added to the "context_quality" field in this mutation.
func (m *ProviderResponseMutation) AddedContextQuality() (r float64, exists bool) {
	v := m.addcontext_quality
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextQuality resets all changes to the "context_quality" field.
func (m *ProviderResponseMutation) ResetContextQuality() {
	m.context_quality = nil
	m.addcontext_quality = nil
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (m *ProviderResponseMutation) SetAdditionalMetrics(value map[string]interface{}) {
	m.additional_metrics = &value
}

// AdditionalMetrics returns the value of the "additional_metrics" field in the mutation.
func (m *ProviderResponseMutation) AdditionalMetrics() (r map[string]interface{}, exists bool) {
	v := m.additional_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalMetrics returns the old "additional_metrics" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldAdditionalMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalMetrics: %w", err)
	}
	return oldValue.AdditionalMetrics, nil
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (m *ProviderResponseMutation) ClearAdditionalMetrics() {
	m.additional_metrics = nil
	m.clearedFields[providerresponse.FieldAdditionalMetrics] = struct{}{}
}

// AdditionalMetricsCleared returns if the "additional_metrics" field was cleared in this mutation.
func (m *ProviderResponseMutation) AdditionalMetricsCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldAdditionalMetrics]
	return ok
}

// ResetAdditionalMetrics resets all changes to the "additional_metrics" field.
func (m *ProviderResponseMutation) ResetAdditionalMetrics() {
	m.additional_metrics = nil
	delete(m.clearedFields, providerresponse.FieldAdditionalMetrics)
}

// SetMetricsExtractedAt sets the "metrics_extracted_at" field.
func (m *ProviderResponseMutation) SetMetricsExtractedAt(t time.Time) {
	m.metrics_extracted_at = &t
}

// MetricsExtractedAt returns the value of the "metrics_extracted_at" field in the mutation.
func (m *ProviderResponseMutation) MetricsExtractedAt() (r time.Time, exists bool) {
	v := m.metrics_extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricsExtractedAt returns the old "metrics_extracted_at" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldMetricsExtractedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricsExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricsExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricsExtractedAt: %w", err)
	}
	return oldValue.MetricsExtractedAt, nil
}

// ClearMetricsExtractedAt clears the value of the "metrics_extracted_at" field.
func (m *ProviderResponseMutation) ClearMetricsExtractedAt() {
	m.metrics_extracted_at = nil
	m.clearedFields[providerresponse.FieldMetricsExtractedAt] = struct{}{}
}

// MetricsExtractedAtCleared returns if the "metrics_extracted_at" field was cleared in this mutation.
func (m *ProviderResponseMutation) MetricsExtractedAtCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldMetricsExtractedAt]
	return ok
}

// ResetMetricsExtractedAt resets all changes to the "metrics_extracted_at" field.
func (m *ProviderResponseMutation) ResetMetricsExtractedAt() {
	m.metrics_extracted_at = nil
	delete(m.clearedFields, providerresponse.FieldMetricsExtractedAt)
}

// SetExtractionError sets the "extraction_error" field.
func (m *ProviderResponseMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *ProviderResponseMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldExtractionError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionError: %w", err)
	}
	return oldValue.ExtractionError, nil
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (m *ProviderResponseMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[providerresponse.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *ProviderResponseMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *ProviderResponseMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, providerresponse.FieldExtractionError)
}

// SetBatchID sets the "batch_id" field.
func (m *ProviderResponseMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ProviderResponseMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *ProviderResponseMutation) ClearBatchID() {
	m.batch_id = nil
	m.clearedFields[providerresponse.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *ProviderResponseMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ProviderResponseMutation) ResetBatchID() {
	m.batch_id = nil
	delete(m.clearedFields, providerresponse.FieldBatchID)
}

// SetBatchNumber sets the "batch_number" field.
func (m *ProviderResponseMutation) SetBatchNumber(i int) {
	m.batch_number = &i
	m.addbatch_number = nil
}

// BatchNumber returns the value of the "batch_number" field in the mutation.
func (m *ProviderResponseMutation) BatchNumber() (r int, exists bool) {
	v := m.batch_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchNumber returns the old "batch_number" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldBatchNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchNumber: %w", err)
	}
	return oldValue.BatchNumber, nil
}

// AddBatchNumber adds i to the "batch_number" field.
func (m *ProviderResponseMutation) AddBatchNumber(i int) {
	if m.addbatch_number != nil {
		*m.addbatch_number += i
	} else {
		m.addbatch_number = &i
	}
}

// AddedBatchNumber returns the value that was added to the "batch_number" field in this mutation.
func (m *ProviderResponseMutation) AddedBatchNumber() (r int, exists bool) {
	v := m.addbatch_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchNumber resets all changes to the "batch_number" field.
func (m *ProviderResponseMutation) ResetBatchNumber() {
	m.batch_number = nil
	m.addbatch_number = nil
}

// SetBatchPosition sets the "batch_position" field.
func (m *ProviderResponseMutation) SetBatchPosition(i int) {
	m.batch_position = &i
	m.addbatch_position = nil
}

// BatchPosition returns the value of the "batch_position" field in the mutation.
func (m *ProviderResponseMutation) BatchPosition() (r int, exists bool) {
	v := m.batch_position
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchPosition returns the old "batch_position" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldBatchPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchPosition: %w", err)
	}
	return oldValue.BatchPosition, nil
}

// AddBatchPosition adds i to the "batch_position" field.
func (m *ProviderResponseMutation) AddBatchPosition(i int) {
	if m.addbatch_position != nil {
		*m.addbatch_position += i
	} else {
		m.addbatch_position = &i
	}
}

// AddedBatchPosition returns the value that was added to the "batch_position" field in this mutation.
func (m *ProviderResponseMutation) AddedBatchPosition() (r int, exists bool) {
	v := m.addbatch_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchPosition resets all changes to the "batch_position" field.
func (m *ProviderResponseMutation) ResetBatchPosition() {
	m.batch_position = nil
	m.addbatch_position = nil
}

// SetQueryText sets the "query_text" field.
func (m *ProviderResponseMutation) SetQueryText(s string) {
	m.query_text = &s
}

// QueryText returns the value of the "query_text" field in the mutation.
func (m *ProviderResponseMutation) QueryText() (r string, exists bool) {
	v := m.query_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryText returns the old "query_text" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldQueryText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryText: %w", err)
	}
	return oldValue.QueryText, nil
}

// ClearQueryText clears the value of the "query_text" field.
func (m *ProviderResponseMutation) ClearQueryText() {
	m.query_text = nil
	m.clearedFields[providerresponse.FieldQueryText] = struct{}{}
}

// QueryTextCleared returns if the "query_text" field was cleared in this mutation.
func (m *ProviderResponseMutation) QueryTextCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldQueryText]
	return ok
}

// ResetQueryText resets all changes to the "query_text" field.
func (m *ProviderResponseMutation) ResetQueryText() {
	m.query_text = nil
	delete(m.clearedFields, providerresponse.FieldQueryText)
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *ProviderResponseMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[providerresponse.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *ProviderResponseMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *ProviderResponseMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *ProviderResponseMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the ProviderResponseMutation builder.
func (m *ProviderResponseMutation) Where(ps ...predicate.ProviderResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderResponse).
func (m *ProviderResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderResponseMutation) Fields() []string {
	fields := make([]string, 0, 36)
	if m.query_id != nil {
		fields = append(fields, providerresponse.FieldQueryID)
	}
	if m.audit != nil {
		fields = append(fields, providerresponse.FieldAuditID)
	}
	if m.provider != nil {
		fields = append(fields, providerresponse.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, providerresponse.FieldModel)
	}
	if m.text != nil {
		fields = append(fields, providerresponse.FieldText)
	}
	if m.tokens_in != nil {
		fields = append(fields, providerresponse.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, providerresponse.FieldTokensOut)
	}
	if m.cost != nil {
		fields = append(fields, providerresponse.FieldCost)
	}
	if m.latency_ms != nil {
		fields = append(fields, providerresponse.FieldLatencyMs)
	}
	if m.cached != nil {
		fields = append(fields, providerresponse.FieldCached)
	}
	if m.citations != nil {
		fields = append(fields, providerresponse.FieldCitations)
	}
	if m.created_at != nil {
		fields = append(fields, providerresponse.FieldCreatedAt)
	}
	if m.brand_mentioned != nil {
		fields = append(fields, providerresponse.FieldBrandMentioned)
	}
	if m.mention_count != nil {
		fields = append(fields, providerresponse.FieldMentionCount)
	}
	if m.mention_position != nil {
		fields = append(fields, providerresponse.FieldMentionPosition)
	}
	if m.first_position_percentage != nil {
		fields = append(fields, providerresponse.FieldFirstPositionPercentage)
	}
	if m.mention_context != nil {
		fields = append(fields, providerresponse.FieldMentionContext)
	}
	if m.sentiment != nil {
		fields = append(fields, providerresponse.FieldSentiment)
	}
	if m.recommendation_strength != nil {
		fields = append(fields, providerresponse.FieldRecommendationStrength)
	}
	if m.competitor_analysis != nil {
		fields = append(fields, providerresponse.FieldCompetitorAnalysis)
	}
	if m.features_mentioned != nil {
		fields = append(fields, providerresponse.FieldFeaturesMentioned)
	}
	if m.value_props != nil {
		fields = append(fields, providerresponse.FieldValueProps)
	}
	if m.featured_snippet_potential != nil {
		fields = append(fields, providerresponse.FieldFeaturedSnippetPotential)
	}
	if m.voice_search_optimized != nil {
		fields = append(fields, providerresponse.FieldVoiceSearchOptimized)
	}
	if m.geo_score != nil {
		fields = append(fields, providerresponse.FieldGeoScore)
	}
	if m.sov_score != nil {
		fields = append(fields, providerresponse.FieldSovScore)
	}
	if m.context_completeness != nil {
		fields = append(fields, providerresponse.FieldContextCompleteness)
	}
	if m.buyer_journey_category != nil {
		fields = append(fields, providerresponse.FieldBuyerJourneyCategory)
	}
	if m.context_quality != nil {
		fields = append(fields, providerresponse.FieldContextQuality)
	}
	if m.additional_metrics != nil {
		fields = append(fields, providerresponse.FieldAdditionalMetrics)
	}
	if m.metrics_extracted_at != nil {
		fields = append(fields, providerresponse.FieldMetricsExtractedAt)
	}
	if m.extraction_error != nil {
		fields = append(fields, providerresponse.FieldExtractionError)
	}
	if m.batch_id != nil {
		fields = append(fields, providerresponse.FieldBatchID)
	}
	if m.batch_number != nil {
		fields = append(fields, providerresponse.FieldBatchNumber)
	}
	if m.batch_position != nil {
		fields = append(fields, providerresponse.FieldBatchPosition)
	}
	if m.query_text != nil {
		fields = append(fields, providerresponse.FieldQueryText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providerresponse.FieldQueryID:
		return m.QueryID()
	case providerresponse.FieldAuditID:
		return m.AuditID()
	case providerresponse.FieldProvider:
		return m.Provider()
	case providerresponse.FieldModel:
		return m.Model()
	case providerresponse.FieldText:
		return m.Text()
	case providerresponse.FieldTokensIn:
		return m.TokensIn()
	case providerresponse.FieldTokensOut:
		return m.TokensOut()
	case providerresponse.FieldCost:
		return m.Cost()
	case providerresponse.FieldLatencyMs:
		return m.LatencyMs()
	case providerresponse.FieldCached:
		return m.Cached()
	case providerresponse.FieldCitations:
		return m.Citations()
	case providerresponse.FieldCreatedAt:
		return m.CreatedAt()
	case providerresponse.FieldBrandMentioned:
		return m.BrandMentioned()
	case providerresponse.FieldMentionCount:
		return m.MentionCount()
	case providerresponse.FieldMentionPosition:
		return m.MentionPosition()
	case providerresponse.FieldFirstPositionPercentage:
		return m.FirstPositionPercentage()
	case providerresponse.FieldMentionContext:
		return m.MentionContext()
	case providerresponse.FieldSentiment:
		return m.Sentiment()
	case providerresponse.FieldRecommendationStrength:
		return m.RecommendationStrength()
	case providerresponse.FieldCompetitorAnalysis:
		return m.CompetitorAnalysis()
	case providerresponse.FieldFeaturesMentioned:
		return m.FeaturesMentioned()
	case providerresponse.FieldValueProps:
		return m.ValueProps()
	case providerresponse.FieldFeaturedSnippetPotential:
		return m.FeaturedSnippetPotential()
	case providerresponse.FieldVoiceSearchOptimized:
		return m.VoiceSearchOptimized()
	case providerresponse.FieldGeoScore:
		return m.GeoScore()
	case providerresponse.FieldSovScore:
		return m.SovScore()
	case providerresponse.FieldContextCompleteness:
		return m.ContextCompleteness()
	case providerresponse.FieldBuyerJourneyCategory:
		return m.BuyerJourneyCategory()
	case providerresponse.FieldContextQuality:
		return m.ContextQuality()
	case providerresponse.FieldAdditionalMetrics:
		return m.AdditionalMetrics()
	case providerresponse.FieldMetricsExtractedAt:
		return m.MetricsExtractedAt()
	case providerresponse.FieldExtractionError:
		return m.ExtractionError()
	case providerresponse.FieldBatchID:
		return m.BatchID()
	case providerresponse.FieldBatchNumber:
		return m.BatchNumber()
	case providerresponse.FieldBatchPosition:
		return m.BatchPosition()
	case providerresponse.FieldQueryText:
		return m.QueryText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providerresponse.FieldQueryID:
		return m.OldQueryID(ctx)
	case providerresponse.FieldAuditID:
		return m.OldAuditID(ctx)
	case providerresponse.FieldProvider:
		return m.OldProvider(ctx)
	case providerresponse.FieldModel:
		return m.OldModel(ctx)
	case providerresponse.FieldText:
		return m.OldText(ctx)
	case providerresponse.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case providerresponse.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case providerresponse.FieldCost:
		return m.OldCost(ctx)
	case providerresponse.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case providerresponse.FieldCached:
		return m.OldCached(ctx)
	case providerresponse.FieldCitations:
		return m.OldCitations(ctx)
	case providerresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case providerresponse.FieldBrandMentioned:
		return m.OldBrandMentioned(ctx)
	case providerresponse.FieldMentionCount:
		return m.OldMentionCount(ctx)
	case providerresponse.FieldMentionPosition:
		return m.OldMentionPosition(ctx)
	case providerresponse.FieldFirstPositionPercentage:
		return m.OldFirstPositionPercentage(ctx)
	case providerresponse.FieldMentionContext:
		return m.OldMentionContext(ctx)
	case providerresponse.FieldSentiment:
		return m.OldSentiment(ctx)
	case providerresponse.FieldRecommendationStrength:
		return m.OldRecommendationStrength(ctx)
	case providerresponse.FieldCompetitorAnalysis:
		return m.OldCompetitorAnalysis(ctx)
	case providerresponse.FieldFeaturesMentioned:
		return m.OldFeaturesMentioned(ctx)
	case providerresponse.FieldValueProps:
		return m.OldValueProps(ctx)
	case providerresponse.FieldFeaturedSnippetPotential:
		return m.OldFeaturedSnippetPotential(ctx)
	case providerresponse.FieldVoiceSearchOptimized:
		return m.OldVoiceSearchOptimized(ctx)
	case providerresponse.FieldGeoScore:
		return m.OldGeoScore(ctx)
	case providerresponse.FieldSovScore:
		return m.OldSovScore(ctx)
	case providerresponse.FieldContextCompleteness:
		return m.OldContextCompleteness(ctx)
	case providerresponse.FieldBuyerJourneyCategory:
		return m.OldBuyerJourneyCategory(ctx)
	case providerresponse.FieldContextQuality:
		return m.OldContextQuality(ctx)
	case providerresponse.FieldAdditionalMetrics:
		return m.OldAdditionalMetrics(ctx)
	case providerresponse.FieldMetricsExtractedAt:
		return m.OldMetricsExtractedAt(ctx)
	case providerresponse.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case providerresponse.FieldBatchID:
		return m.OldBatchID(ctx)
	case providerresponse.FieldBatchNumber:
		return m.OldBatchNumber(ctx)
	case providerresponse.FieldBatchPosition:
		return m.OldBatchPosition(ctx)
	case providerresponse.FieldQueryText:
		return m.OldQueryText(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providerresponse.FieldQueryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryID(v)
		return nil
	case providerresponse.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case providerresponse.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case providerresponse.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case providerresponse.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case providerresponse.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case providerresponse.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case providerresponse.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case providerresponse.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case providerresponse.FieldCached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCached(v)
		return nil
	case providerresponse.FieldCitations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitations(v)
		return nil
	case providerresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case providerresponse.FieldBrandMentioned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandMentioned(v)
		return nil
	case providerresponse.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionCount(v)
		return nil
	case providerresponse.FieldMentionPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionPosition(v)
		return nil
	case providerresponse.FieldFirstPositionPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstPositionPercentage(v)
		return nil
	case providerresponse.FieldMentionContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionContext(v)
		return nil
	case providerresponse.FieldSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case providerresponse.FieldRecommendationStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationStrength(v)
		return nil
	case providerresponse.FieldCompetitorAnalysis:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorAnalysis(v)
		return nil
	case providerresponse.FieldFeaturesMentioned:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeaturesMentioned(v)
		return nil
	case providerresponse.FieldValueProps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueProps(v)
		return nil
	case providerresponse.FieldFeaturedSnippetPotential:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeaturedSnippetPotential(v)
		return nil
	case providerresponse.FieldVoiceSearchOptimized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoiceSearchOptimized(v)
		return nil
	case providerresponse.FieldGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeoScore(v)
		return nil
	case providerresponse.FieldSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSovScore(v)
		return nil
	case providerresponse.FieldContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextCompleteness(v)
		return nil
	case providerresponse.FieldBuyerJourneyCategory:
		v, ok := value.(providerresponse.BuyerJourneyCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerJourneyCategory(v)
		return nil
	case providerresponse.FieldContextQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextQuality(v)
		return nil
	case providerresponse.FieldAdditionalMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalMetrics(v)
		return nil
	case providerresponse.FieldMetricsExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricsExtractedAt(v)
		return nil
	case providerresponse.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case providerresponse.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case providerresponse.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchNumber(v)
		return nil
	case providerresponse.FieldBatchPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchPosition(v)
		return nil
	case providerresponse.FieldQueryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryText(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderResponseMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_in != nil {
		fields = append(fields, providerresponse.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, providerresponse.FieldTokensOut)
	}
	if m.addcost != nil {
		fields = append(fields, providerresponse.FieldCost)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, providerresponse.FieldLatencyMs)
	}
	if m.addmention_count != nil {
		fields = append(fields, providerresponse.FieldMentionCount)
	}
	if m.addmention_position != nil {
		fields = append(fields, providerresponse.FieldMentionPosition)
	}
	if m.addfirst_position_percentage != nil {
		fields = append(fields, providerresponse.FieldFirstPositionPercentage)
	}
	if m.addsentiment != nil {
		fields = append(fields, providerresponse.FieldSentiment)
	}
	if m.addrecommendation_strength != nil {
		fields = append(fields, providerresponse.FieldRecommendationStrength)
	}
	if m.addfeatured_snippet_potential != nil {
		fields = append(fields, providerresponse.FieldFeaturedSnippetPotential)
	}
	if m.addgeo_score != nil {
		fields = append(fields, providerresponse.FieldGeoScore)
	}
	if m.addsov_score != nil {
		fields = append(fields, providerresponse.FieldSovScore)
	}
	if m.addcontext_completeness != nil {
		fields = append(fields, providerresponse.FieldContextCompleteness)
	}
	if m.addcontext_quality != nil {
		fields = append(fields, providerresponse.FieldContextQuality)
	}
	if m.addbatch_number != nil {
		fields = append(fields, providerresponse.FieldBatchNumber)
	}
	if m.addbatch_position != nil {
		fields = append(fields, providerresponse.FieldBatchPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case providerresponse.FieldTokensIn:
		return m.AddedTokensIn()
	case providerresponse.FieldTokensOut:
		return m.AddedTokensOut()
	case providerresponse.FieldCost:
		return m.AddedCost()
	case providerresponse.FieldLatencyMs:
		return m.AddedLatencyMs()
	case providerresponse.FieldMentionCount:
		return m.AddedMentionCount()
	case providerresponse.FieldMentionPosition:
		return m.AddedMentionPosition()
	case providerresponse.FieldFirstPositionPercentage:
		return m.AddedFirstPositionPercentage()
	case providerresponse.FieldSentiment:
		return m.AddedSentiment()
	case providerresponse.FieldRecommendationStrength:
		return m.AddedRecommendationStrength()
	case providerresponse.FieldFeaturedSnippetPotential:
		return m.AddedFeaturedSnippetPotential()
	case providerresponse.FieldGeoScore:
		return m.AddedGeoScore()
	case providerresponse.FieldSovScore:
		return m.AddedSovScore()
	case providerresponse.FieldContextCompleteness:
		return m.AddedContextCompleteness()
	case providerresponse.FieldContextQuality:
		return m.AddedContextQuality()
	case providerresponse.FieldBatchNumber:
		return m.AddedBatchNumber()
	case providerresponse.FieldBatchPosition:
		return m.AddedBatchPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case providerresponse.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case providerresponse.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	case providerresponse.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case providerresponse.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case providerresponse.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionCount(v)
		return nil
	case providerresponse.FieldMentionPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionPosition(v)
		return nil
	case providerresponse.FieldFirstPositionPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstPositionPercentage(v)
		return nil
	case providerresponse.FieldSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentiment(v)
		return nil
	case providerresponse.FieldRecommendationStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendationStrength(v)
		return nil
	case providerresponse.FieldFeaturedSnippetPotential:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeaturedSnippetPotential(v)
		return nil
	case providerresponse.FieldGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeoScore(v)
		return nil
	case providerresponse.FieldSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSovScore(v)
		return nil
	case providerresponse.FieldContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextCompleteness(v)
		return nil
	case providerresponse.FieldContextQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextQuality(v)
		return nil
	case providerresponse.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchNumber(v)
		return nil
	case providerresponse.FieldBatchPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchPosition(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(providerresponse.FieldCitations) {
		fields = append(fields, providerresponse.FieldCitations)
	}
	if m.FieldCleared(providerresponse.FieldMentionContext) {
		fields = append(fields, providerresponse.FieldMentionContext)
	}
	if m.FieldCleared(providerresponse.FieldCompetitorAnalysis) {
		fields = append(fields, providerresponse.FieldCompetitorAnalysis)
	}
	if m.FieldCleared(providerresponse.FieldFeaturesMentioned) {
		fields = append(fields, providerresponse.FieldFeaturesMentioned)
	}
	if m.FieldCleared(providerresponse.FieldValueProps) {
		fields = append(fields, providerresponse.FieldValueProps)
	}
	if m.FieldCleared(providerresponse.FieldBuyerJourneyCategory) {
		fields = append(fields, providerresponse.FieldBuyerJourneyCategory)
	}
	if m.FieldCleared(providerresponse.FieldAdditionalMetrics) {
		fields = append(fields, providerresponse.FieldAdditionalMetrics)
	}
	if m.FieldCleared(providerresponse.FieldMetricsExtractedAt) {
		fields = append(fields, providerresponse.FieldMetricsExtractedAt)
	}
	if m.FieldCleared(providerresponse.FieldExtractionError) {
		fields = append(fields, providerresponse.FieldExtractionError)
	}
	if m.FieldCleared(providerresponse.FieldBatchID) {
		fields = append(fields, providerresponse.FieldBatchID)
	}
	if m.FieldCleared(providerresponse.FieldQueryText) {
		fields = append(fields, providerresponse.FieldQueryText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderResponseMutation) ClearField(name string) error {
	switch name {
	case providerresponse.FieldCitations:
		m.ClearCitations()
		return nil
	case providerresponse.FieldMentionContext:
		m.ClearMentionContext()
		return nil
	case providerresponse.FieldCompetitorAnalysis:
		m.ClearCompetitorAnalysis()
		return nil
	case providerresponse.FieldFeaturesMentioned:
		m.ClearFeaturesMentioned()
		return nil
	case providerresponse.FieldValueProps:
		m.ClearValueProps()
		return nil
	case providerresponse.FieldBuyerJourneyCategory:
		m.ClearBuyerJourneyCategory()
		return nil
	case providerresponse.FieldAdditionalMetrics:
		m.ClearAdditionalMetrics()
		return nil
	case providerresponse.FieldMetricsExtractedAt:
		m.ClearMetricsExtractedAt()
		return nil
	case providerresponse.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	case providerresponse.FieldBatchID:
		m.ClearBatchID()
		return nil
	case providerresponse.FieldQueryText:
		m.ClearQueryText()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderResponseMutation) ResetField(name string) error {
	switch name {
	case providerresponse.FieldQueryID:
		m.ResetQueryID()
		return nil
	case providerresponse.FieldAuditID:
		m.ResetAuditID()
		return nil
	case providerresponse.FieldProvider:
		m.ResetProvider()
		return nil
	case providerresponse.FieldModel:
		m.ResetModel()
		return nil
	case providerresponse.FieldText:
		m.ResetText()
		return nil
	case providerresponse.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case providerresponse.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case providerresponse.FieldCost:
		m.ResetCost()
		return nil
	case providerresponse.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case providerresponse.FieldCached:
		m.ResetCached()
		return nil
	case providerresponse.FieldCitations:
		m.ResetCitations()
		return nil
	case providerresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case providerresponse.FieldBrandMentioned:
		m.ResetBrandMentioned()
		return nil
	case providerresponse.FieldMentionCount:
		m.ResetMentionCount()
		return nil
	case providerresponse.FieldMentionPosition:
		m.ResetMentionPosition()
		return nil
	case providerresponse.FieldFirstPositionPercentage:
		m.ResetFirstPositionPercentage()
		return nil
	case providerresponse.FieldMentionContext:
		m.ResetMentionContext()
		return nil
	case providerresponse.FieldSentiment:
		m.ResetSentiment()
		return nil
	case providerresponse.FieldRecommendationStrength:
		m.ResetRecommendationStrength()
		return nil
	case providerresponse.FieldCompetitorAnalysis:
		m.ResetCompetitorAnalysis()
		return nil
	case providerresponse.FieldFeaturesMentioned:
		m.ResetFeaturesMentioned()
		return nil
	case providerresponse.FieldValueProps:
		m.ResetValueProps()
		return nil
	case providerresponse.FieldFeaturedSnippetPotential:
		m.ResetFeaturedSnippetPotential()
		return nil
	case providerresponse.FieldVoiceSearchOptimized:
		m.ResetVoiceSearchOptimized()
		return nil
	case providerresponse.FieldGeoScore:
		m.ResetGeoScore()
		return nil
	case providerresponse.FieldSovScore:
		m.ResetSovScore()
		return nil
	case providerresponse.FieldContextCompleteness:
		m.ResetContextCompleteness()
		return nil
	case providerresponse.FieldBuyerJourneyCategory:
		m.ResetBuyerJourneyCategory()
		return nil
	case providerresponse.FieldContextQuality:
		m.ResetContextQuality()
		return nil
	case providerresponse.FieldAdditionalMetrics:
		m.ResetAdditionalMetrics()
		return nil
	case providerresponse.FieldMetricsExtractedAt:
		m.ResetMetricsExtractedAt()
		return nil
	case providerresponse.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case providerresponse.FieldBatchID:
		m.ResetBatchID()
		return nil
	case providerresponse.FieldBatchNumber:
		m.ResetBatchNumber()
		return nil
	case providerresponse.FieldBatchPosition:
		m.ResetBatchPosition()
		return nil
	case providerresponse.FieldQueryText:
		m.ResetQueryText()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, providerresponse.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case providerresponse.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, providerresponse.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case providerresponse.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderResponseMutation) ClearEdge(name string) error {
	switch name {
	case providerresponse.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderResponseMutation) ResetEdge(name string) error {
	switch name {
	case providerresponse.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse edge %s", name)
}

// RankingSnapshotMutation represents an operation that mutates the RankingSnapshot nodes in the graph.
type RankingSnapshotMutation struct {
	config
	op             Op
	typ            string
	id             *string
	target_domain  *string
	taken_at       *time.Time
	rankings       *[]map[string]interface{}
	appendrankings []map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*RankingSnapshot, error)
	predicates     []predicate.RankingSnapshot
}

var _ ent.Mutation = (*RankingSnapshotMutation)(nil)

// rankingsnapshotOption allows management of the mutation configuration using functional options.
type rankingsnapshotOption func(*RankingSnapshotMutation)

// newRankingSnapshotMutation creates new mutation for the RankingSnapshot entity.
func newRankingSnapshotMutation(c config, op Op, opts ...rankingsnapshotOption) *RankingSnapshotMutation {
	m := &RankingSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeRankingSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRankingSnapshotID sets the ID field of the mutation.
func withRankingSnapshotID(id string) rankingsnapshotOption {
	return func(m *RankingSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *RankingSnapshot
		)
		m.oldValue = func(ctx context.Context) (*RankingSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RankingSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRankingSnapshot sets the old RankingSnapshot of the mutation.
func withRankingSnapshot(node *RankingSnapshot) rankingsnapshotOption {
	return func(m *RankingSnapshotMutation) {
		m.oldValue = func(context.Context) (*RankingSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RankingSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RankingSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RankingSnapshot entities.
func (m *RankingSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RankingSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RankingSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RankingSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTargetDomain sets the "target_domain" field.
func (m *RankingSnapshotMutation) SetTargetDomain(s string) {
	m.target_domain = &s
}

// TargetDomain returns the value of the "target_domain" field in the mutation.
func (m *RankingSnapshotMutation) TargetDomain() (r string, exists bool) {
	v := m.target_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDomain returns the old "target_domain" field's value of the RankingSnapshot entity.
// If the RankingSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RankingSnapshotMutation) OldTargetDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDomain: %w", err)
	}
	return oldValue.TargetDomain, nil
}

// ResetTargetDomain resets all changes to the "target_domain" field.
func (m *RankingSnapshotMutation) ResetTargetDomain() {
	m.target_domain = nil
}

// SetTakenAt sets the "taken_at" field.
func (m *RankingSnapshotMutation) SetTakenAt(t time.Time) {
	m.taken_at = &t
}

// TakenAt returns the value of the "taken_at" field in the mutation.
func (m *RankingSnapshotMutation) TakenAt() (r time.Time, exists bool) {
	v := m.taken_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTakenAt returns the old "taken_at" field's value of the RankingSnapshot entity.
// If the RankingSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RankingSnapshotMutation) OldTakenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTakenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTakenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTakenAt: %w", err)
	}
	return oldValue.TakenAt, nil
}

// ResetTakenAt resets all changes to the "taken_at" field.
func (m *RankingSnapshotMutation) ResetTakenAt() {
	m.taken_at = nil
}

// SetRankings sets the "rankings" field.
func (m *RankingSnapshotMutation) SetRankings(value []map[string]interface{}) {
	m.rankings = &value
	m.appendrankings = nil
}

// Rankings returns the value of the "rankings" field in the mutation.
func (m *RankingSnapshotMutation) Rankings() (r []map[string]interface{}, exists bool) {
	v := m.rankings
	if v == nil {
		return
	}
	return *v, true
}

// OldRankings returns the old "rankings" field's value of the RankingSnapshot entity.
// If the RankingSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RankingSnapshotMutation) OldRankings(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRankings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRankings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRankings: %w", err)
	}
	return oldValue.Rankings, nil
}

// AppendRankings adds value to the "rankings" field.
func (m *RankingSnapshotMutation) AppendRankings(value []map[string]interface{}) {
	m.appendrankings = append(m.appendrankings, value...)
}

// AppendedRankings returns the list of values that were appended to the "rankings" field in this mutation.
func (m *RankingSnapshotMutation) AppendedRankings() ([]map[string]interface{}, bool) {
	if len(m.appendrankings) == 0 {
		return nil, false
	}
	return m.appendrankings, true
}

// ResetRankings resets all changes to the "rankings" field.
func (m *RankingSnapshotMutation) ResetRankings() {
	m.rankings = nil
	m.appendrankings = nil
}

// Where appends a list predicates to the RankingSnapshotMutation builder.
func (m *RankingSnapshotMutation) Where(ps ...predicate.RankingSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RankingSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RankingSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RankingSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RankingSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RankingSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RankingSnapshot).
func (m *RankingSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RankingSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.target_domain != nil {
		fields = append(fields, rankingsnapshot.FieldTargetDomain)
	}
	if m.taken_at != nil {
		fields = append(fields, rankingsnapshot.FieldTakenAt)
	}
	if m.rankings != nil {
		fields = append(fields, rankingsnapshot.FieldRankings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RankingSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rankingsnapshot.FieldTargetDomain:
		return m.TargetDomain()
	case rankingsnapshot.FieldTakenAt:
		return m.TakenAt()
	case rankingsnapshot.FieldRankings:
		return m.Rankings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RankingSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rankingsnapshot.FieldTargetDomain:
		return m.OldTargetDomain(ctx)
	case rankingsnapshot.FieldTakenAt:
		return m.OldTakenAt(ctx)
	case rankingsnapshot.FieldRankings:
		return m.OldRankings(ctx)
	}
	return nil, fmt.Errorf("unknown RankingSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RankingSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rankingsnapshot.FieldTargetDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDomain(v)
		return nil
	case rankingsnapshot.FieldTakenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTakenAt(v)
		return nil
	case rankingsnapshot.FieldRankings:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRankings(v)
		return nil
	}
	return fmt.Errorf("unknown RankingSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RankingSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RankingSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RankingSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RankingSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RankingSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RankingSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RankingSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RankingSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RankingSnapshotMutation) ResetField(name string) error {
	switch name {
	case rankingsnapshot.FieldTargetDomain:
		m.ResetTargetDomain()
		return nil
	case rankingsnapshot.FieldTakenAt:
		m.ResetTakenAt()
		return nil
	case rankingsnapshot.FieldRankings:
		m.ResetRankings()
		return nil
	}
	return fmt.Errorf("unknown RankingSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RankingSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RankingSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RankingSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RankingSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RankingSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RankingSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RankingSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RankingSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RankingSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RankingSnapshot edge %s", name)
}

// StrategicPriorityMutation represents an operation that mutates the StrategicPriority nodes in the graph.
type StrategicPriorityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	rank                *int
	addrank             *int
	title               *string
	rationale           *string
	evidence_refs       *[]string
	appendevidence_refs []string
	impact_score        *float64
	addimpact_score     *float64
	support_count       *int
	addsupport_count    *int
	estimated_impact    *strategicpriority.EstimatedImpact
	created_at          *time.Time
	clearedFields       map[string]struct{}
	audit               *string
	clearedaudit        bool
	done                bool
	oldValue            func(context.Context) (*StrategicPriority, error)
	predicates          []predicate.StrategicPriority
}

var _ ent.Mutation = (*StrategicPriorityMutation)(nil)

// strategicpriorityOption allows management of the mutation configuration using functional options.
type strategicpriorityOption func(*StrategicPriorityMutation)

// newStrategicPriorityMutation creates new mutation for the StrategicPriority entity.
func newStrategicPriorityMutation(c config, op Op, opts ...strategicpriorityOption) *StrategicPriorityMutation {
	m := &StrategicPriorityMutation{
		config:        c,
		op:            op,
		typ:           TypeStrategicPriority,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStrategicPriorityID sets the ID field of the mutation.
func withStrategicPriorityID(id int) strategicpriorityOption {
	return func(m *StrategicPriorityMutation) {
		var (
			err   error
			once  sync.Once
			value *StrategicPriority
		)
		m.oldValue = func(ctx context.Context) (*StrategicPriority, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StrategicPriority.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStrategicPriority sets the old StrategicPriority of the mutation.
func withStrategicPriority(node *StrategicPriority) strategicpriorityOption {
	return func(m *StrategicPriorityMutation) {
		m.oldValue = func(context.Context) (*StrategicPriority, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StrategicPriorityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StrategicPriorityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StrategicPriorityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StrategicPriorityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StrategicPriority.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *StrategicPriorityMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *StrategicPriorityMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *StrategicPriorityMutation) ResetAuditID() {
	m.audit = nil
}

// SetRank sets the "rank" field.
func (m *StrategicPriorityMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *StrategicPriorityMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *StrategicPriorityMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *StrategicPriorityMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ResetRank resets all changes to the "rank" field.
func (m *StrategicPriorityMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
}

// SetTitle sets the "title" field.
func (m *StrategicPriorityMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StrategicPriorityMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StrategicPriorityMutation) ResetTitle() {
	m.title = nil
}

// SetRationale sets the "rationale" field.
func (m *StrategicPriorityMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *StrategicPriorityMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *StrategicPriorityMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[strategicpriority.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *StrategicPriorityMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[strategicpriority.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *StrategicPriorityMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, strategicpriority.FieldRationale)
}

// SetEvidenceRefs sets the "evidence_refs" field.
func (m *StrategicPriorityMutation) SetEvidenceRefs(s []string) {
	m.evidence_refs = &s
	m.appendevidence_refs = nil
}

// EvidenceRefs returns the value of the "evidence_refs" field in the mutation.
func (m *StrategicPriorityMutation) EvidenceRefs() (r []string, exists bool) {
	v := m.evidence_refs
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceRefs returns the old "evidence_refs" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldEvidenceRefs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceRefs: %w", err)
	}
	return oldValue.EvidenceRefs, nil
}

// AppendEvidenceRefs adds s to the "evidence_refs" field.
func (m *StrategicPriorityMutation) AppendEvidenceRefs(s []string) {
	m.appendevidence_refs = append(m.appendevidence_refs, s...)
}

// AppendedEvidenceRefs returns the list of values that were appended to the "evidence_refs" field in this mutation.
func (m *StrategicPriorityMutation) AppendedEvidenceRefs() ([]string, bool) {
	if len(m.appendevidence_refs) == 0 {
		return nil, false
	}
	return m.appendevidence_refs, true
}

// ClearEvidenceRefs clears the value of the "evidence_refs" field.
func (m *StrategicPriorityMutation) ClearEvidenceRefs() {
	m.evidence_refs = nil
	m.appendevidence_refs = nil
	m.clearedFields[strategicpriority.FieldEvidenceRefs] = struct{}{}
}

// EvidenceRefsCleared returns if the "evidence_refs" field was cleared in this mutation.
func (m *StrategicPriorityMutation) EvidenceRefsCleared() bool {
	_, ok := m.clearedFields[strategicpriority.FieldEvidenceRefs]
	return ok
}

// ResetEvidenceRefs resets all changes to the "evidence_refs" field.
func (m *StrategicPriorityMutation) ResetEvidenceRefs() {
	m.evidence_refs = nil
	m.appendevidence_refs = nil
	delete(m.clearedFields, strategicpriority.FieldEvidenceRefs)
}

// SetImpactScore sets the "impact_score" field.
func (m *StrategicPriorityMutation) SetImpactScore(f float64) {
	m.impact_score = &f
	m.addimpact_score = nil
}

// ImpactScore returns the value of the "impact_score" field in the mutation.
func (m *StrategicPriorityMutation) ImpactScore() (r float64, exists bool) {
	v := m.impact_score
	if v == nil {
		return
	}
	return *v, true
}

// OldImpactScore returns the old "impact_score" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldImpactScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpactScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpactScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpactScore: %w", err)
	}
	return oldValue.ImpactScore, nil
}

// AddImpactScore adds f to the "impact_score" field.
func (m *StrategicPriorityMutation) AddImpactScore(f float64) {
	if m.addimpact_score != nil {
		*m.addimpact_score += f
	} else {
		m.addimpact_score = &f
	}
}

// AddedImpactScore returns the value that was added to the "impact_score" field in this mutation.
func (m *StrategicPriorityMutation) AddedImpactScore() (r float64, exists bool) {
	v := m.addimpact_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetImpactScore resets all changes to the "impact_score" field.
func (m *StrategicPriorityMutation) ResetImpactScore() {
	m.impact_score = nil
	m.addimpact_score = nil
}

// SetSupportCount sets the "support_count" field.
func (m *StrategicPriorityMutation) SetSupportCount(i int) {
	m.support_count = &i
	m.addsupport_count = nil
}

// SupportCount returns the value of the "support_count" field in the mutation.
func (m *StrategicPriorityMutation) SupportCount() (r int, exists bool) {
	v := m.support_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportCount returns the old "support_count" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldSupportCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportCount: %w", err)
	}
	return oldValue.SupportCount, nil
}

// AddSupportCount adds i to the "support_count" field.
func (m *StrategicPriorityMutation) AddSupportCount(i int) {
	if m.addsupport_count != nil {
		*m.addsupport_count += i
	} else {
		m.addsupport_count = &i
	}
}

// AddedSupportCount returns the value that was added to the "support_count" field in this mutation.
func (m *StrategicPriorityMutation) AddedSupportCount() (r int, exists bool) {
	v := m.addsupport_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupportCount resets all changes to the "support_count" field.
func (m *StrategicPriorityMutation) ResetSupportCount() {
	m.support_count = nil
	m.addsupport_count = nil
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (m *StrategicPriorityMutation) SetEstimatedImpact(si strategicpriority.EstimatedImpact) {
	m.estimated_impact = &si
}

// EstimatedImpact returns the value of the "estimated_impact" field in the mutation.
func (m *StrategicPriorityMutation) EstimatedImpact() (r strategicpriority.EstimatedImpact, exists bool) {
	v := m.estimated_impact
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedImpact returns the old "estimated_impact" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldEstimatedImpact(ctx context.Context) (v strategicpriority.EstimatedImpact, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedImpact: %w", err)
	}
	return oldValue.EstimatedImpact, nil
}

// ResetEstimatedImpact resets all changes to the "estimated_impact" field.
func (m *StrategicPriorityMutation) ResetEstimatedImpact() {
	m.estimated_impact = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StrategicPriorityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StrategicPriorityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StrategicPriority entity.
// If the StrategicPriority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategicPriorityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StrategicPriorityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *StrategicPriorityMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[strategicpriority.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *StrategicPriorityMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *StrategicPriorityMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *StrategicPriorityMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the StrategicPriorityMutation builder.
func (m *StrategicPriorityMutation) Where(ps ...predicate.StrategicPriority) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StrategicPriorityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StrategicPriorityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StrategicPriority, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StrategicPriorityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StrategicPriorityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StrategicPriority).
func (m *StrategicPriorityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StrategicPriorityMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.audit != nil {
		fields = append(fields, strategicpriority.FieldAuditID)
	}
	if m.rank != nil {
		fields = append(fields, strategicpriority.FieldRank)
	}
	if m.title != nil {
		fields = append(fields, strategicpriority.FieldTitle)
	}
	if m.rationale != nil {
		fields = append(fields, strategicpriority.FieldRationale)
	}
	if m.evidence_refs != nil {
		fields = append(fields, strategicpriority.FieldEvidenceRefs)
	}
	if m.impact_score != nil {
		fields = append(fields, strategicpriority.FieldImpactScore)
	}
	if m.support_count != nil {
		fields = append(fields, strategicpriority.FieldSupportCount)
	}
	if m.estimated_impact != nil {
		fields = append(fields, strategicpriority.FieldEstimatedImpact)
	}
	if m.created_at != nil {
		fields = append(fields, strategicpriority.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StrategicPriorityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case strategicpriority.FieldAuditID:
		return m.AuditID()
	case strategicpriority.FieldRank:
		return m.Rank()
	case strategicpriority.FieldTitle:
		return m.Title()
	case strategicpriority.FieldRationale:
		return m.Rationale()
	case strategicpriority.FieldEvidenceRefs:
		return m.EvidenceRefs()
	case strategicpriority.FieldImpactScore:
		return m.ImpactScore()
	case strategicpriority.FieldSupportCount:
		return m.SupportCount()
	case strategicpriority.FieldEstimatedImpact:
		return m.EstimatedImpact()
	case strategicpriority.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StrategicPriorityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case strategicpriority.FieldAuditID:
		return m.OldAuditID(ctx)
	case strategicpriority.FieldRank:
		return m.OldRank(ctx)
	case strategicpriority.FieldTitle:
		return m.OldTitle(ctx)
	case strategicpriority.FieldRationale:
		return m.OldRationale(ctx)
	case strategicpriority.FieldEvidenceRefs:
		return m.OldEvidenceRefs(ctx)
	case strategicpriority.FieldImpactScore:
		return m.OldImpactScore(ctx)
	case strategicpriority.FieldSupportCount:
		return m.OldSupportCount(ctx)
	case strategicpriority.FieldEstimatedImpact:
		return m.OldEstimatedImpact(ctx)
	case strategicpriority.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StrategicPriority field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StrategicPriorityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case strategicpriority.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case strategicpriority.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case strategicpriority.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case strategicpriority.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case strategicpriority.FieldEvidenceRefs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceRefs(v)
		return nil
	case strategicpriority.FieldImpactScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpactScore(v)
		return nil
	case strategicpriority.FieldSupportCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportCount(v)
		return nil
	case strategicpriority.FieldEstimatedImpact:
		v, ok := value.(strategicpriority.EstimatedImpact)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedImpact(v)
		return nil
	case strategicpriority.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StrategicPriority field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StrategicPriorityMutation) AddedFields() []string {
	var fields []string
	if m.addrank != nil {
		fields = append(fields, strategicpriority.FieldRank)
	}
	if m.addimpact_score != nil {
		fields = append(fields, strategicpriority.FieldImpactScore)
	}
	if m.addsupport_count != nil {
		fields = append(fields, strategicpriority.FieldSupportCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StrategicPriorityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case strategicpriority.FieldRank:
		return m.AddedRank()
	case strategicpriority.FieldImpactScore:
		return m.AddedImpactScore()
	case strategicpriority.FieldSupportCount:
		return m.AddedSupportCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StrategicPriorityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case strategicpriority.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	case strategicpriority.FieldImpactScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpactScore(v)
		return nil
	case strategicpriority.FieldSupportCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupportCount(v)
		return nil
	}
	return fmt.Errorf("unknown StrategicPriority numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StrategicPriorityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(strategicpriority.FieldRationale) {
		fields = append(fields, strategicpriority.FieldRationale)
	}
	if m.FieldCleared(strategicpriority.FieldEvidenceRefs) {
		fields = append(fields, strategicpriority.FieldEvidenceRefs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StrategicPriorityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StrategicPriorityMutation) ClearField(name string) error {
	switch name {
	case strategicpriority.FieldRationale:
		m.ClearRationale()
		return nil
	case strategicpriority.FieldEvidenceRefs:
		m.ClearEvidenceRefs()
		return nil
	}
	return fmt.Errorf("unknown StrategicPriority nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StrategicPriorityMutation) ResetField(name string) error {
	switch name {
	case strategicpriority.FieldAuditID:
		m.ResetAuditID()
		return nil
	case strategicpriority.FieldRank:
		m.ResetRank()
		return nil
	case strategicpriority.FieldTitle:
		m.ResetTitle()
		return nil
	case strategicpriority.FieldRationale:
		m.ResetRationale()
		return nil
	case strategicpriority.FieldEvidenceRefs:
		m.ResetEvidenceRefs()
		return nil
	case strategicpriority.FieldImpactScore:
		m.ResetImpactScore()
		return nil
	case strategicpriority.FieldSupportCount:
		m.ResetSupportCount()
		return nil
	case strategicpriority.FieldEstimatedImpact:
		m.ResetEstimatedImpact()
		return nil
	case strategicpriority.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StrategicPriority field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StrategicPriorityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, strategicpriority.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StrategicPriorityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case strategicpriority.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StrategicPriorityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StrategicPriorityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StrategicPriorityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, strategicpriority.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StrategicPriorityMutation) EdgeCleared(name string) bool {
	switch name {
	case strategicpriority.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StrategicPriorityMutation) ClearEdge(name string) error {
	switch name {
	case strategicpriority.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown StrategicPriority unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StrategicPriorityMutation) ResetEdge(name string) error {
	switch name {
	case strategicpriority.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown StrategicPriority edge %s", name)
}
