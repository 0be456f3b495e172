// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
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
	"github.com/brandlens/brandlens/ent/predicate"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// AuditQueryBuilder is the builder for querying Audit entities.
type AuditQueryBuilder struct {
	config
	ctx                     *QueryContext
	order                   []audit.OrderOption
	inters                  []Interceptor
	predicates              []predicate.Audit
	withQueries             *AuditQueryQuery
	withResponses           *ProviderResponseQuery
	withBatchInsights       *BatchInsightQuery
	withCategoryAggregates  *CategoryAggregateQuery
	withStrategicPriorities *StrategicPriorityQuery
	withExecutiveSummary    *ExecutiveSummaryQuery
	withDashboardSnapshot   *DashboardSnapshotQuery
	modifiers               []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AuditQueryBuilder builder.
func (_q *AuditQueryBuilder) Where(ps ...predicate.Audit) *AuditQueryBuilder {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AuditQueryBuilder) Limit(limit int) *AuditQueryBuilder {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AuditQueryBuilder) Offset(offset int) *AuditQueryBuilder {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AuditQueryBuilder) Unique(unique bool) *AuditQueryBuilder {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AuditQueryBuilder) Order(o ...audit.OrderOption) *AuditQueryBuilder {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryQueries chains the current query on the "queries" edge.
func (_q *AuditQueryBuilder) QueryQueries() *AuditQueryQuery {
	query := (&AuditQueryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(auditquery.Table, auditquery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.QueriesTable, audit.QueriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResponses chains the current query on the "responses" edge.
func (_q *AuditQueryBuilder) QueryResponses() *ProviderResponseQuery {
	query := (&ProviderResponseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(providerresponse.Table, providerresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.ResponsesTable, audit.ResponsesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBatchInsights chains the current query on the "batch_insights" edge.
func (_q *AuditQueryBuilder) QueryBatchInsights() *BatchInsightQuery {
	query := (&BatchInsightClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(batchinsight.Table, batchinsight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.BatchInsightsTable, audit.BatchInsightsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCategoryAggregates chains the current query on the "category_aggregates" edge.
func (_q *AuditQueryBuilder) QueryCategoryAggregates() *CategoryAggregateQuery {
	query := (&CategoryAggregateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(categoryaggregate.Table, categoryaggregate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.CategoryAggregatesTable, audit.CategoryAggregatesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStrategicPriorities chains the current query on the "strategic_priorities" edge.
func (_q *AuditQueryBuilder) QueryStrategicPriorities() *StrategicPriorityQuery {
	query := (&StrategicPriorityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(strategicpriority.Table, strategicpriority.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.StrategicPrioritiesTable, audit.StrategicPrioritiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExecutiveSummary chains the current query on the "executive_summary" edge.
func (_q *AuditQueryBuilder) QueryExecutiveSummary() *ExecutiveSummaryQuery {
	query := (&ExecutiveSummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(executivesummary.Table, executivesummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, audit.ExecutiveSummaryTable, audit.ExecutiveSummaryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDashboardSnapshot chains the current query on the "dashboard_snapshot" edge.
func (_q *AuditQueryBuilder) QueryDashboardSnapshot() *DashboardSnapshotQuery {
	query := (&DashboardSnapshotClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(dashboardsnapshot.Table, dashboardsnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, audit.DashboardSnapshotTable, audit.DashboardSnapshotColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Audit entity from the query.
// Returns a *NotFoundError when no Audit was found.
func (_q *AuditQueryBuilder) First(ctx context.Context) (*Audit, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{audit.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AuditQueryBuilder) FirstX(ctx context.Context) *Audit {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Audit ID from the query.
// Returns a *NotFoundError when no Audit ID was found.
func (_q *AuditQueryBuilder) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{audit.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AuditQueryBuilder) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Audit entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Audit entity is found.
// Returns a *NotFoundError when no Audit entities are found.
func (_q *AuditQueryBuilder) Only(ctx context.Context) (*Audit, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{audit.Label}
	default:
		return nil, &NotSingularError{audit.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AuditQueryBuilder) OnlyX(ctx context.Context) *Audit {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Audit ID in the query.
// Returns a *NotSingularError when more than one Audit ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AuditQueryBuilder) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{audit.Label}
	default:
		err = &NotSingularError{audit.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AuditQueryBuilder) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Audits.
func (_q *AuditQueryBuilder) All(ctx context.Context) ([]*Audit, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Audit, *AuditQueryBuilder]()
	return withInterceptors[[]*Audit](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AuditQueryBuilder) AllX(ctx context.Context) []*Audit {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Audit IDs.
func (_q *AuditQueryBuilder) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(audit.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AuditQueryBuilder) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AuditQueryBuilder) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AuditQueryBuilder](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AuditQueryBuilder) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AuditQueryBuilder) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AuditQueryBuilder) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AuditQueryBuilder builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AuditQueryBuilder) Clone() *AuditQueryBuilder {
	if _q == nil {
		return nil
	}
	return &AuditQueryBuilder{
		config:                  _q.config,
		ctx:                     _q.ctx.Clone(),
		order:                   append([]audit.OrderOption{}, _q.order...),
		inters:                  append([]Interceptor{}, _q.inters...),
		predicates:              append([]predicate.Audit{}, _q.predicates...),
		withQueries:             _q.withQueries.Clone(),
		withResponses:           _q.withResponses.Clone(),
		withBatchInsights:       _q.withBatchInsights.Clone(),
		withCategoryAggregates:  _q.withCategoryAggregates.Clone(),
		withStrategicPriorities: _q.withStrategicPriorities.Clone(),
		withExecutiveSummary:    _q.withExecutiveSummary.Clone(),
		withDashboardSnapshot:   _q.withDashboardSnapshot.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithQueries tells the query-builder to eager-load the nodes that are connected to
// the "queries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuditQueryBuilder) WithQueries(opts ...func(*AuditQueryQuery)) *AuditQueryBuilder {
	query := (&AuditQueryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQueries = query
	return _q
}

// WithResponses tells the query-builder to eager-load the nodes that are connected to
// the "responses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuditQueryBuilder) WithResponses(opts ...func(*ProviderResponseQuery)) *AuditQueryBuilder {
	query := (&ProviderResponseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResponses = query
	return _q
}

// WithBatchInsights tells the query-builder to eager-load the nodes that are connected to
// the "batch_insights" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuditQueryBuilder) WithBatchInsights(opts ...func(*BatchInsightQuery)) *AuditQueryBuilder {
	query := (&BatchInsightClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBatchInsights = query
	return _q
}

// WithCategoryAggregates tells the query-builder to eager-load the nodes that are connected to
// the "category_aggregates" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuditQueryBuilder) WithCategoryAggregates(opts ...func(*CategoryAggregateQuery)) *AuditQueryBuilder {
	query := (&CategoryAggregateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCategoryAggregates = query
	return _q
}

// WithStrategicPriorities tells the query-builder to eager-load the nodes that are connected to
// the "strategic_priorities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuditQueryBuilder) WithStrategicPriorities(opts ...func(*StrategicPriorityQuery)) *AuditQueryBuilder {
	query := (&StrategicPriorityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStrategicPriorities = query
	return _q
}

// WithExecutiveSummary tells the query-builder to eager-load the nodes that are connected to
// the "executive_summary" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuditQueryBuilder) WithExecutiveSummary(opts ...func(*ExecutiveSummaryQuery)) *AuditQueryBuilder {
	query := (&ExecutiveSummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecutiveSummary = query
	return _q
}

// WithDashboardSnapshot tells the query-builder to eager-load the nodes that are connected to
// the "dashboard_snapshot" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AuditQueryBuilder) WithDashboardSnapshot(opts ...func(*DashboardSnapshotQuery)) *AuditQueryBuilder {
	query := (&DashboardSnapshotClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDashboardSnapshot = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CompanyName string `json:"company_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Audit.Query().
//		GroupBy(audit.FieldCompanyName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AuditQueryBuilder) GroupBy(field string, fields ...string) *AuditGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AuditGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = audit.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CompanyName string `json:"company_name,omitempty"`
//	}
//
//	client.Audit.Query().
//		Select(audit.FieldCompanyName).
//		Scan(ctx, &v)
func (_q *AuditQueryBuilder) Select(fields ...string) *AuditSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AuditSelect{AuditQueryBuilder: _q}
	sbuild.label = audit.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AuditSelect configured with the given aggregations.
func (_q *AuditQueryBuilder) Aggregate(fns ...AggregateFunc) *AuditSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AuditQueryBuilder) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !audit.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AuditQueryBuilder) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Audit, error) {
	var (
		nodes       = []*Audit{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withQueries != nil,
			_q.withResponses != nil,
			_q.withBatchInsights != nil,
			_q.withCategoryAggregates != nil,
			_q.withStrategicPriorities != nil,
			_q.withExecutiveSummary != nil,
			_q.withDashboardSnapshot != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Audit).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Audit{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withQueries; query != nil {
		if err := _q.loadQueries(ctx, query, nodes,
			func(n *Audit) { n.Edges.Queries = []*AuditQuery{} },
			func(n *Audit, e *AuditQuery) { n.Edges.Queries = append(n.Edges.Queries, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResponses; query != nil {
		if err := _q.loadResponses(ctx, query, nodes,
			func(n *Audit) { n.Edges.Responses = []*ProviderResponse{} },
			func(n *Audit, e *ProviderResponse) { n.Edges.Responses = append(n.Edges.Responses, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBatchInsights; query != nil {
		if err := _q.loadBatchInsights(ctx, query, nodes,
			func(n *Audit) { n.Edges.BatchInsights = []*BatchInsight{} },
			func(n *Audit, e *BatchInsight) { n.Edges.BatchInsights = append(n.Edges.BatchInsights, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCategoryAggregates; query != nil {
		if err := _q.loadCategoryAggregates(ctx, query, nodes,
			func(n *Audit) { n.Edges.CategoryAggregates = []*CategoryAggregate{} },
			func(n *Audit, e *CategoryAggregate) {
				n.Edges.CategoryAggregates = append(n.Edges.CategoryAggregates, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withStrategicPriorities; query != nil {
		if err := _q.loadStrategicPriorities(ctx, query, nodes,
			func(n *Audit) { n.Edges.StrategicPriorities = []*StrategicPriority{} },
			func(n *Audit, e *StrategicPriority) {
				n.Edges.StrategicPriorities = append(n.Edges.StrategicPriorities, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withExecutiveSummary; query != nil {
		if err := _q.loadExecutiveSummary(ctx, query, nodes, nil,
			func(n *Audit, e *ExecutiveSummary) { n.Edges.ExecutiveSummary = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDashboardSnapshot; query != nil {
		if err := _q.loadDashboardSnapshot(ctx, query, nodes, nil,
			func(n *Audit, e *DashboardSnapshot) { n.Edges.DashboardSnapshot = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AuditQueryBuilder) loadQueries(ctx context.Context, query *AuditQueryQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *AuditQuery)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(auditquery.FieldAuditID)
	}
	query.Where(predicate.AuditQuery(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.QueriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuditQueryBuilder) loadResponses(ctx context.Context, query *ProviderResponseQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *ProviderResponse)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(providerresponse.FieldAuditID)
	}
	query.Where(predicate.ProviderResponse(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.ResponsesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuditQueryBuilder) loadBatchInsights(ctx context.Context, query *BatchInsightQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *BatchInsight)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(batchinsight.FieldAuditID)
	}
	query.Where(predicate.BatchInsight(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.BatchInsightsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuditQueryBuilder) loadCategoryAggregates(ctx context.Context, query *CategoryAggregateQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *CategoryAggregate)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(categoryaggregate.FieldAuditID)
	}
	query.Where(predicate.CategoryAggregate(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.CategoryAggregatesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuditQueryBuilder) loadStrategicPriorities(ctx context.Context, query *StrategicPriorityQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *StrategicPriority)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(strategicpriority.FieldAuditID)
	}
	query.Where(predicate.StrategicPriority(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.StrategicPrioritiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuditQueryBuilder) loadExecutiveSummary(ctx context.Context, query *ExecutiveSummaryQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *ExecutiveSummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(executivesummary.FieldAuditID)
	}
	query.Where(predicate.ExecutiveSummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.ExecutiveSummaryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AuditQueryBuilder) loadDashboardSnapshot(ctx context.Context, query *DashboardSnapshotQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *DashboardSnapshot)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dashboardsnapshot.FieldAuditID)
	}
	query.Where(predicate.DashboardSnapshot(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.DashboardSnapshotColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AuditQueryBuilder) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AuditQueryBuilder) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audit.FieldID)
		for i := range fields {
			if fields[i] != audit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AuditQueryBuilder) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(audit.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = audit.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *AuditQueryBuilder) ForUpdate(opts ...sql.LockOption) *AuditQueryBuilder {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *AuditQueryBuilder) ForShare(opts ...sql.LockOption) *AuditQueryBuilder {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// AuditGroupBy is the group-by builder for Audit entities.
type AuditGroupBy struct {
	selector
	build *AuditQueryBuilder
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AuditGroupBy) Aggregate(fns ...AggregateFunc) *AuditGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AuditGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuditQueryBuilder, *AuditGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AuditGroupBy) sqlScan(ctx context.Context, root *AuditQueryBuilder, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AuditSelect is the builder for selecting fields of Audit entities.
type AuditSelect struct {
	*AuditQueryBuilder
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AuditSelect) Aggregate(fns ...AggregateFunc) *AuditSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AuditSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuditQueryBuilder, *AuditSelect](ctx, _s.AuditQueryBuilder, _s, _s.inters, v)
}

func (_s *AuditSelect) sqlScan(ctx context.Context, root *AuditQueryBuilder, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
