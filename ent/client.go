// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/brandlens/brandlens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/event"
	"github.com/brandlens/brandlens/ent/executivesummary"
	"github.com/brandlens/brandlens/ent/providerledger"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/ent/rankingsnapshot"
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Audit is the client for interacting with the Audit builders.
	Audit *AuditClient
	// AuditQuery is the client for interacting with the AuditQuery builders.
	AuditQuery *AuditQueryClient
	// BatchInsight is the client for interacting with the BatchInsight builders.
	BatchInsight *BatchInsightClient
	// CategoryAggregate is the client for interacting with the CategoryAggregate builders.
	CategoryAggregate *CategoryAggregateClient
	// DashboardSnapshot is the client for interacting with the DashboardSnapshot builders.
	DashboardSnapshot *DashboardSnapshotClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// ExecutiveSummary is the client for interacting with the ExecutiveSummary builders.
	ExecutiveSummary *ExecutiveSummaryClient
	// ProviderLedger is the client for interacting with the ProviderLedger builders.
	ProviderLedger *ProviderLedgerClient
	// ProviderResponse is the client for interacting with the ProviderResponse builders.
	ProviderResponse *ProviderResponseClient
	// RankingSnapshot is the client for interacting with the RankingSnapshot builders.
	RankingSnapshot *RankingSnapshotClient
	// StrategicPriority is the client for interacting with the StrategicPriority builders.
	StrategicPriority *StrategicPriorityClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Audit = NewAuditClient(c.config)
	c.AuditQuery = NewAuditQueryClient(c.config)
	c.BatchInsight = NewBatchInsightClient(c.config)
	c.CategoryAggregate = NewCategoryAggregateClient(c.config)
	c.DashboardSnapshot = NewDashboardSnapshotClient(c.config)
	c.Event = NewEventClient(c.config)
	c.ExecutiveSummary = NewExecutiveSummaryClient(c.config)
	c.ProviderLedger = NewProviderLedgerClient(c.config)
	c.ProviderResponse = NewProviderResponseClient(c.config)
	c.RankingSnapshot = NewRankingSnapshotClient(c.config)
	c.StrategicPriority = NewStrategicPriorityClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Audit:             NewAuditClient(cfg),
		AuditQuery:        NewAuditQueryClient(cfg),
		BatchInsight:      NewBatchInsightClient(cfg),
		CategoryAggregate: NewCategoryAggregateClient(cfg),
		DashboardSnapshot: NewDashboardSnapshotClient(cfg),
		Event:             NewEventClient(cfg),
		ExecutiveSummary:  NewExecutiveSummaryClient(cfg),
		ProviderLedger:    NewProviderLedgerClient(cfg),
		ProviderResponse:  NewProviderResponseClient(cfg),
		RankingSnapshot:   NewRankingSnapshotClient(cfg),
		StrategicPriority: NewStrategicPriorityClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Audit:             NewAuditClient(cfg),
		AuditQuery:        NewAuditQueryClient(cfg),
		BatchInsight:      NewBatchInsightClient(cfg),
		CategoryAggregate: NewCategoryAggregateClient(cfg),
		DashboardSnapshot: NewDashboardSnapshotClient(cfg),
		Event:             NewEventClient(cfg),
		ExecutiveSummary:  NewExecutiveSummaryClient(cfg),
		ProviderLedger:    NewProviderLedgerClient(cfg),
		ProviderResponse:  NewProviderResponseClient(cfg),
		RankingSnapshot:   NewRankingSnapshotClient(cfg),
		StrategicPriority: NewStrategicPriorityClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Audit.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Audit, c.AuditQuery, c.BatchInsight, c.CategoryAggregate, c.DashboardSnapshot,
		c.Event, c.ExecutiveSummary, c.ProviderLedger, c.ProviderResponse,
		c.RankingSnapshot, c.StrategicPriority,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Audit, c.AuditQuery, c.BatchInsight, c.CategoryAggregate, c.DashboardSnapshot,
		c.Event, c.ExecutiveSummary, c.ProviderLedger, c.ProviderResponse,
		c.RankingSnapshot, c.StrategicPriority,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditMutation:
		return c.Audit.mutate(ctx, m)
	case *AuditQueryMutation:
		return c.AuditQuery.mutate(ctx, m)
	case *BatchInsightMutation:
		return c.BatchInsight.mutate(ctx, m)
	case *CategoryAggregateMutation:
		return c.CategoryAggregate.mutate(ctx, m)
	case *DashboardSnapshotMutation:
		return c.DashboardSnapshot.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ExecutiveSummaryMutation:
		return c.ExecutiveSummary.mutate(ctx, m)
	case *ProviderLedgerMutation:
		return c.ProviderLedger.mutate(ctx, m)
	case *ProviderResponseMutation:
		return c.ProviderResponse.mutate(ctx, m)
	case *RankingSnapshotMutation:
		return c.RankingSnapshot.mutate(ctx, m)
	case *StrategicPriorityMutation:
		return c.StrategicPriority.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditClient is a client for the Audit schema.
type AuditClient struct {
	config
}

// NewAuditClient returns a client for the Audit from the given config.
func NewAuditClient(c config) *AuditClient {
	return &AuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audit.Hooks(f(g(h())))`.
func (c *AuditClient) Use(hooks ...Hook) {
	c.hooks.Audit = append(c.hooks.Audit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audit.Intercept(f(g(h())))`.
func (c *AuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.Audit = append(c.inters.Audit, interceptors...)
}

// Create returns a builder for creating a Audit entity.
func (c *AuditClient) Create() *AuditCreate {
	mutation := newAuditMutation(c.config, OpCreate)
	return &AuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Audit entities.
func (c *AuditClient) CreateBulk(builders ...*AuditCreate) *AuditCreateBulk {
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditClient) MapCreateBulk(slice any, setFunc func(*AuditCreate, int)) *AuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditCreateBulk{err: fmt.Errorf("calling to AuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Audit.
func (c *AuditClient) Update() *AuditUpdate {
	mutation := newAuditMutation(c.config, OpUpdate)
	return &AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditClient) UpdateOne(_m *Audit) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAudit(_m))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditClient) UpdateOneID(id string) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAuditID(id))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Audit.
func (c *AuditClient) Delete() *AuditDelete {
	mutation := newAuditMutation(c.config, OpDelete)
	return &AuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditClient) DeleteOne(_m *Audit) *AuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditClient) DeleteOneID(id string) *AuditDeleteOne {
	builder := c.Delete().Where(audit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditDeleteOne{builder}
}

// Query returns a query builder for Audit.
func (c *AuditClient) Query() *AuditQueryBuilder {
	return &AuditQueryBuilder{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a Audit entity by its id.
func (c *AuditClient) Get(ctx context.Context, id string) (*Audit, error) {
	return c.Query().Where(audit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditClient) GetX(ctx context.Context, id string) *Audit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQueries queries the queries edge of a Audit.
func (c *AuditClient) QueryQueries(_m *Audit) *AuditQueryQuery {
	query := (&AuditQueryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditquery.Table, auditquery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.QueriesTable, audit.QueriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponses queries the responses edge of a Audit.
func (c *AuditClient) QueryResponses(_m *Audit) *ProviderResponseQuery {
	query := (&ProviderResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(providerresponse.Table, providerresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.ResponsesTable, audit.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBatchInsights queries the batch_insights edge of a Audit.
func (c *AuditClient) QueryBatchInsights(_m *Audit) *BatchInsightQuery {
	query := (&BatchInsightClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(batchinsight.Table, batchinsight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.BatchInsightsTable, audit.BatchInsightsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCategoryAggregates queries the category_aggregates edge of a Audit.
func (c *AuditClient) QueryCategoryAggregates(_m *Audit) *CategoryAggregateQuery {
	query := (&CategoryAggregateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(categoryaggregate.Table, categoryaggregate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.CategoryAggregatesTable, audit.CategoryAggregatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStrategicPriorities queries the strategic_priorities edge of a Audit.
func (c *AuditClient) QueryStrategicPriorities(_m *Audit) *StrategicPriorityQuery {
	query := (&StrategicPriorityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(strategicpriority.Table, strategicpriority.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.StrategicPrioritiesTable, audit.StrategicPrioritiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutiveSummary queries the executive_summary edge of a Audit.
func (c *AuditClient) QueryExecutiveSummary(_m *Audit) *ExecutiveSummaryQuery {
	query := (&ExecutiveSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(executivesummary.Table, executivesummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, audit.ExecutiveSummaryTable, audit.ExecutiveSummaryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDashboardSnapshot queries the dashboard_snapshot edge of a Audit.
func (c *AuditClient) QueryDashboardSnapshot(_m *Audit) *DashboardSnapshotQuery {
	query := (&DashboardSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(dashboardsnapshot.Table, dashboardsnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, audit.DashboardSnapshotTable, audit.DashboardSnapshotColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditClient) Hooks() []Hook {
	return c.hooks.Audit
}

// Interceptors returns the client interceptors.
func (c *AuditClient) Interceptors() []Interceptor {
	return c.inters.Audit
}

func (c *AuditClient) mutate(ctx context.Context, m *AuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Audit mutation op: %q", m.Op())
	}
}

// AuditQueryClient is a client for the AuditQuery schema.
type AuditQueryClient struct {
	config
}

// NewAuditQueryClient returns a client for the AuditQuery from the given config.
func NewAuditQueryClient(c config) *AuditQueryClient {
	return &AuditQueryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditquery.Hooks(f(g(h())))`.
func (c *AuditQueryClient) Use(hooks ...Hook) {
	c.hooks.AuditQuery = append(c.hooks.AuditQuery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditquery.Intercept(f(g(h())))`.
func (c *AuditQueryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditQuery = append(c.inters.AuditQuery, interceptors...)
}

// Create returns a builder for creating a AuditQuery entity.
func (c *AuditQueryClient) Create() *AuditQueryCreate {
	mutation := newAuditQueryMutation(c.config, OpCreate)
	return &AuditQueryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditQuery entities.
func (c *AuditQueryClient) CreateBulk(builders ...*AuditQueryCreate) *AuditQueryCreateBulk {
	return &AuditQueryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditQueryClient) MapCreateBulk(slice any, setFunc func(*AuditQueryCreate, int)) *AuditQueryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditQueryCreateBulk{err: fmt.Errorf("calling to AuditQueryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditQueryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditQueryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditQuery.
func (c *AuditQueryClient) Update() *AuditQueryUpdate {
	mutation := newAuditQueryMutation(c.config, OpUpdate)
	return &AuditQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditQueryClient) UpdateOne(_m *AuditQuery) *AuditQueryUpdateOne {
	mutation := newAuditQueryMutation(c.config, OpUpdateOne, withAuditQuery(_m))
	return &AuditQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditQueryClient) UpdateOneID(id string) *AuditQueryUpdateOne {
	mutation := newAuditQueryMutation(c.config, OpUpdateOne, withAuditQueryID(id))
	return &AuditQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditQuery.
func (c *AuditQueryClient) Delete() *AuditQueryDelete {
	mutation := newAuditQueryMutation(c.config, OpDelete)
	return &AuditQueryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditQueryClient) DeleteOne(_m *AuditQuery) *AuditQueryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditQueryClient) DeleteOneID(id string) *AuditQueryDeleteOne {
	builder := c.Delete().Where(auditquery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditQueryDeleteOne{builder}
}

// Query returns a query builder for AuditQuery.
func (c *AuditQueryClient) Query() *AuditQueryQuery {
	return &AuditQueryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditQuery},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditQuery entity by its id.
func (c *AuditQueryClient) Get(ctx context.Context, id string) (*AuditQuery, error) {
	return c.Query().Where(auditquery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditQueryClient) GetX(ctx context.Context, id string) *AuditQuery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditQuery.
func (c *AuditQueryClient) QueryAudit(_m *AuditQuery) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditquery.Table, auditquery.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditquery.AuditTable, auditquery.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditQueryClient) Hooks() []Hook {
	return c.hooks.AuditQuery
}

// Interceptors returns the client interceptors.
func (c *AuditQueryClient) Interceptors() []Interceptor {
	return c.inters.AuditQuery
}

func (c *AuditQueryClient) mutate(ctx context.Context, m *AuditQueryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditQueryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditQueryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditQuery mutation op: %q", m.Op())
	}
}

// BatchInsightClient is a client for the BatchInsight schema.
type BatchInsightClient struct {
	config
}

// NewBatchInsightClient returns a client for the BatchInsight from the given config.
func NewBatchInsightClient(c config) *BatchInsightClient {
	return &BatchInsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchinsight.Hooks(f(g(h())))`.
func (c *BatchInsightClient) Use(hooks ...Hook) {
	c.hooks.BatchInsight = append(c.hooks.BatchInsight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchinsight.Intercept(f(g(h())))`.
func (c *BatchInsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchInsight = append(c.inters.BatchInsight, interceptors...)
}

// Create returns a builder for creating a BatchInsight entity.
func (c *BatchInsightClient) Create() *BatchInsightCreate {
	mutation := newBatchInsightMutation(c.config, OpCreate)
	return &BatchInsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchInsight entities.
func (c *BatchInsightClient) CreateBulk(builders ...*BatchInsightCreate) *BatchInsightCreateBulk {
	return &BatchInsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchInsightClient) MapCreateBulk(slice any, setFunc func(*BatchInsightCreate, int)) *BatchInsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchInsightCreateBulk{err: fmt.Errorf("calling to BatchInsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchInsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchInsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchInsight.
func (c *BatchInsightClient) Update() *BatchInsightUpdate {
	mutation := newBatchInsightMutation(c.config, OpUpdate)
	return &BatchInsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchInsightClient) UpdateOne(_m *BatchInsight) *BatchInsightUpdateOne {
	mutation := newBatchInsightMutation(c.config, OpUpdateOne, withBatchInsight(_m))
	return &BatchInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchInsightClient) UpdateOneID(id int) *BatchInsightUpdateOne {
	mutation := newBatchInsightMutation(c.config, OpUpdateOne, withBatchInsightID(id))
	return &BatchInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchInsight.
func (c *BatchInsightClient) Delete() *BatchInsightDelete {
	mutation := newBatchInsightMutation(c.config, OpDelete)
	return &BatchInsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchInsightClient) DeleteOne(_m *BatchInsight) *BatchInsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchInsightClient) DeleteOneID(id int) *BatchInsightDeleteOne {
	builder := c.Delete().Where(batchinsight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchInsightDeleteOne{builder}
}

// Query returns a query builder for BatchInsight.
func (c *BatchInsightClient) Query() *BatchInsightQuery {
	return &BatchInsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchInsight entity by its id.
func (c *BatchInsightClient) Get(ctx context.Context, id int) (*BatchInsight, error) {
	return c.Query().Where(batchinsight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchInsightClient) GetX(ctx context.Context, id int) *BatchInsight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a BatchInsight.
func (c *BatchInsightClient) QueryAudit(_m *BatchInsight) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchinsight.Table, batchinsight.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, batchinsight.AuditTable, batchinsight.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchInsightClient) Hooks() []Hook {
	return c.hooks.BatchInsight
}

// Interceptors returns the client interceptors.
func (c *BatchInsightClient) Interceptors() []Interceptor {
	return c.inters.BatchInsight
}

func (c *BatchInsightClient) mutate(ctx context.Context, m *BatchInsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchInsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchInsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchInsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchInsight mutation op: %q", m.Op())
	}
}

// CategoryAggregateClient is a client for the CategoryAggregate schema.
type CategoryAggregateClient struct {
	config
}

// NewCategoryAggregateClient returns a client for the CategoryAggregate from the given config.
func NewCategoryAggregateClient(c config) *CategoryAggregateClient {
	return &CategoryAggregateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `categoryaggregate.Hooks(f(g(h())))`.
func (c *CategoryAggregateClient) Use(hooks ...Hook) {
	c.hooks.CategoryAggregate = append(c.hooks.CategoryAggregate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `categoryaggregate.Intercept(f(g(h())))`.
func (c *CategoryAggregateClient) Intercept(interceptors ...Interceptor) {
	c.inters.CategoryAggregate = append(c.inters.CategoryAggregate, interceptors...)
}

// Create returns a builder for creating a CategoryAggregate entity.
func (c *CategoryAggregateClient) Create() *CategoryAggregateCreate {
	mutation := newCategoryAggregateMutation(c.config, OpCreate)
	return &CategoryAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CategoryAggregate entities.
func (c *CategoryAggregateClient) CreateBulk(builders ...*CategoryAggregateCreate) *CategoryAggregateCreateBulk {
	return &CategoryAggregateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryAggregateClient) MapCreateBulk(slice any, setFunc func(*CategoryAggregateCreate, int)) *CategoryAggregateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryAggregateCreateBulk{err: fmt.Errorf("calling to CategoryAggregateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryAggregateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryAggregateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CategoryAggregate.
func (c *CategoryAggregateClient) Update() *CategoryAggregateUpdate {
	mutation := newCategoryAggregateMutation(c.config, OpUpdate)
	return &CategoryAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryAggregateClient) UpdateOne(_m *CategoryAggregate) *CategoryAggregateUpdateOne {
	mutation := newCategoryAggregateMutation(c.config, OpUpdateOne, withCategoryAggregate(_m))
	return &CategoryAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryAggregateClient) UpdateOneID(id int) *CategoryAggregateUpdateOne {
	mutation := newCategoryAggregateMutation(c.config, OpUpdateOne, withCategoryAggregateID(id))
	return &CategoryAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CategoryAggregate.
func (c *CategoryAggregateClient) Delete() *CategoryAggregateDelete {
	mutation := newCategoryAggregateMutation(c.config, OpDelete)
	return &CategoryAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryAggregateClient) DeleteOne(_m *CategoryAggregate) *CategoryAggregateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryAggregateClient) DeleteOneID(id int) *CategoryAggregateDeleteOne {
	builder := c.Delete().Where(categoryaggregate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryAggregateDeleteOne{builder}
}

// Query returns a query builder for CategoryAggregate.
func (c *CategoryAggregateClient) Query() *CategoryAggregateQuery {
	return &CategoryAggregateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategoryAggregate},
		inters: c.Interceptors(),
	}
}

// Get returns a CategoryAggregate entity by its id.
func (c *CategoryAggregateClient) Get(ctx context.Context, id int) (*CategoryAggregate, error) {
	return c.Query().Where(categoryaggregate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryAggregateClient) GetX(ctx context.Context, id int) *CategoryAggregate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a CategoryAggregate.
func (c *CategoryAggregateClient) QueryAudit(_m *CategoryAggregate) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryaggregate.Table, categoryaggregate.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, categoryaggregate.AuditTable, categoryaggregate.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CategoryAggregateClient) Hooks() []Hook {
	return c.hooks.CategoryAggregate
}

// Interceptors returns the client interceptors.
func (c *CategoryAggregateClient) Interceptors() []Interceptor {
	return c.inters.CategoryAggregate
}

func (c *CategoryAggregateClient) mutate(ctx context.Context, m *CategoryAggregateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CategoryAggregate mutation op: %q", m.Op())
	}
}

// DashboardSnapshotClient is a client for the DashboardSnapshot schema.
type DashboardSnapshotClient struct {
	config
}

// NewDashboardSnapshotClient returns a client for the DashboardSnapshot from the given config.
func NewDashboardSnapshotClient(c config) *DashboardSnapshotClient {
	return &DashboardSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dashboardsnapshot.Hooks(f(g(h())))`.
func (c *DashboardSnapshotClient) Use(hooks ...Hook) {
	c.hooks.DashboardSnapshot = append(c.hooks.DashboardSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dashboardsnapshot.Intercept(f(g(h())))`.
func (c *DashboardSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.DashboardSnapshot = append(c.inters.DashboardSnapshot, interceptors...)
}

// Create returns a builder for creating a DashboardSnapshot entity.
func (c *DashboardSnapshotClient) Create() *DashboardSnapshotCreate {
	mutation := newDashboardSnapshotMutation(c.config, OpCreate)
	return &DashboardSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DashboardSnapshot entities.
func (c *DashboardSnapshotClient) CreateBulk(builders ...*DashboardSnapshotCreate) *DashboardSnapshotCreateBulk {
	return &DashboardSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DashboardSnapshotClient) MapCreateBulk(slice any, setFunc func(*DashboardSnapshotCreate, int)) *DashboardSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DashboardSnapshotCreateBulk{err: fmt.Errorf("calling to DashboardSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DashboardSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DashboardSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DashboardSnapshot.
func (c *DashboardSnapshotClient) Update() *DashboardSnapshotUpdate {
	mutation := newDashboardSnapshotMutation(c.config, OpUpdate)
	return &DashboardSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DashboardSnapshotClient) UpdateOne(_m *DashboardSnapshot) *DashboardSnapshotUpdateOne {
	mutation := newDashboardSnapshotMutation(c.config, OpUpdateOne, withDashboardSnapshot(_m))
	return &DashboardSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DashboardSnapshotClient) UpdateOneID(id int) *DashboardSnapshotUpdateOne {
	mutation := newDashboardSnapshotMutation(c.config, OpUpdateOne, withDashboardSnapshotID(id))
	return &DashboardSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DashboardSnapshot.
func (c *DashboardSnapshotClient) Delete() *DashboardSnapshotDelete {
	mutation := newDashboardSnapshotMutation(c.config, OpDelete)
	return &DashboardSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DashboardSnapshotClient) DeleteOne(_m *DashboardSnapshot) *DashboardSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DashboardSnapshotClient) DeleteOneID(id int) *DashboardSnapshotDeleteOne {
	builder := c.Delete().Where(dashboardsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DashboardSnapshotDeleteOne{builder}
}

// Query returns a query builder for DashboardSnapshot.
func (c *DashboardSnapshotClient) Query() *DashboardSnapshotQuery {
	return &DashboardSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDashboardSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a DashboardSnapshot entity by its id.
func (c *DashboardSnapshotClient) Get(ctx context.Context, id int) (*DashboardSnapshot, error) {
	return c.Query().Where(dashboardsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DashboardSnapshotClient) GetX(ctx context.Context, id int) *DashboardSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a DashboardSnapshot.
func (c *DashboardSnapshotClient) QueryAudit(_m *DashboardSnapshot) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dashboardsnapshot.Table, dashboardsnapshot.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, dashboardsnapshot.AuditTable, dashboardsnapshot.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DashboardSnapshotClient) Hooks() []Hook {
	return c.hooks.DashboardSnapshot
}

// Interceptors returns the client interceptors.
func (c *DashboardSnapshotClient) Interceptors() []Interceptor {
	return c.inters.DashboardSnapshot
}

func (c *DashboardSnapshotClient) mutate(ctx context.Context, m *DashboardSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DashboardSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DashboardSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DashboardSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DashboardSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DashboardSnapshot mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// ExecutiveSummaryClient is a client for the ExecutiveSummary schema.
type ExecutiveSummaryClient struct {
	config
}

// NewExecutiveSummaryClient returns a client for the ExecutiveSummary from the given config.
func NewExecutiveSummaryClient(c config) *ExecutiveSummaryClient {
	return &ExecutiveSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executivesummary.Hooks(f(g(h())))`.
func (c *ExecutiveSummaryClient) Use(hooks ...Hook) {
	c.hooks.ExecutiveSummary = append(c.hooks.ExecutiveSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executivesummary.Intercept(f(g(h())))`.
func (c *ExecutiveSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutiveSummary = append(c.inters.ExecutiveSummary, interceptors...)
}

// Create returns a builder for creating a ExecutiveSummary entity.
func (c *ExecutiveSummaryClient) Create() *ExecutiveSummaryCreate {
	mutation := newExecutiveSummaryMutation(c.config, OpCreate)
	return &ExecutiveSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutiveSummary entities.
func (c *ExecutiveSummaryClient) CreateBulk(builders ...*ExecutiveSummaryCreate) *ExecutiveSummaryCreateBulk {
	return &ExecutiveSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutiveSummaryClient) MapCreateBulk(slice any, setFunc func(*ExecutiveSummaryCreate, int)) *ExecutiveSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutiveSummaryCreateBulk{err: fmt.Errorf("calling to ExecutiveSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutiveSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutiveSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutiveSummary.
func (c *ExecutiveSummaryClient) Update() *ExecutiveSummaryUpdate {
	mutation := newExecutiveSummaryMutation(c.config, OpUpdate)
	return &ExecutiveSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutiveSummaryClient) UpdateOne(_m *ExecutiveSummary) *ExecutiveSummaryUpdateOne {
	mutation := newExecutiveSummaryMutation(c.config, OpUpdateOne, withExecutiveSummary(_m))
	return &ExecutiveSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutiveSummaryClient) UpdateOneID(id int) *ExecutiveSummaryUpdateOne {
	mutation := newExecutiveSummaryMutation(c.config, OpUpdateOne, withExecutiveSummaryID(id))
	return &ExecutiveSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutiveSummary.
func (c *ExecutiveSummaryClient) Delete() *ExecutiveSummaryDelete {
	mutation := newExecutiveSummaryMutation(c.config, OpDelete)
	return &ExecutiveSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutiveSummaryClient) DeleteOne(_m *ExecutiveSummary) *ExecutiveSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutiveSummaryClient) DeleteOneID(id int) *ExecutiveSummaryDeleteOne {
	builder := c.Delete().Where(executivesummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutiveSummaryDeleteOne{builder}
}

// Query returns a query builder for ExecutiveSummary.
func (c *ExecutiveSummaryClient) Query() *ExecutiveSummaryQuery {
	return &ExecutiveSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutiveSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutiveSummary entity by its id.
func (c *ExecutiveSummaryClient) Get(ctx context.Context, id int) (*ExecutiveSummary, error) {
	return c.Query().Where(executivesummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutiveSummaryClient) GetX(ctx context.Context, id int) *ExecutiveSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a ExecutiveSummary.
func (c *ExecutiveSummaryClient) QueryAudit(_m *ExecutiveSummary) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executivesummary.Table, executivesummary.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, executivesummary.AuditTable, executivesummary.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutiveSummaryClient) Hooks() []Hook {
	return c.hooks.ExecutiveSummary
}

// Interceptors returns the client interceptors.
func (c *ExecutiveSummaryClient) Interceptors() []Interceptor {
	return c.inters.ExecutiveSummary
}

func (c *ExecutiveSummaryClient) mutate(ctx context.Context, m *ExecutiveSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutiveSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutiveSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutiveSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutiveSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutiveSummary mutation op: %q", m.Op())
	}
}

// ProviderLedgerClient is a client for the ProviderLedger schema.
type ProviderLedgerClient struct {
	config
}

// NewProviderLedgerClient returns a client for the ProviderLedger from the given config.
func NewProviderLedgerClient(c config) *ProviderLedgerClient {
	return &ProviderLedgerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `providerledger.Hooks(f(g(h())))`.
func (c *ProviderLedgerClient) Use(hooks ...Hook) {
	c.hooks.ProviderLedger = append(c.hooks.ProviderLedger, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `providerledger.Intercept(f(g(h())))`.
func (c *ProviderLedgerClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderLedger = append(c.inters.ProviderLedger, interceptors...)
}

// Create returns a builder for creating a ProviderLedger entity.
func (c *ProviderLedgerClient) Create() *ProviderLedgerCreate {
	mutation := newProviderLedgerMutation(c.config, OpCreate)
	return &ProviderLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderLedger entities.
func (c *ProviderLedgerClient) CreateBulk(builders ...*ProviderLedgerCreate) *ProviderLedgerCreateBulk {
	return &ProviderLedgerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderLedgerClient) MapCreateBulk(slice any, setFunc func(*ProviderLedgerCreate, int)) *ProviderLedgerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderLedgerCreateBulk{err: fmt.Errorf("calling to ProviderLedgerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderLedgerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderLedgerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderLedger.
func (c *ProviderLedgerClient) Update() *ProviderLedgerUpdate {
	mutation := newProviderLedgerMutation(c.config, OpUpdate)
	return &ProviderLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderLedgerClient) UpdateOne(_m *ProviderLedger) *ProviderLedgerUpdateOne {
	mutation := newProviderLedgerMutation(c.config, OpUpdateOne, withProviderLedger(_m))
	return &ProviderLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderLedgerClient) UpdateOneID(id int) *ProviderLedgerUpdateOne {
	mutation := newProviderLedgerMutation(c.config, OpUpdateOne, withProviderLedgerID(id))
	return &ProviderLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderLedger.
func (c *ProviderLedgerClient) Delete() *ProviderLedgerDelete {
	mutation := newProviderLedgerMutation(c.config, OpDelete)
	return &ProviderLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderLedgerClient) DeleteOne(_m *ProviderLedger) *ProviderLedgerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderLedgerClient) DeleteOneID(id int) *ProviderLedgerDeleteOne {
	builder := c.Delete().Where(providerledger.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderLedgerDeleteOne{builder}
}

// Query returns a query builder for ProviderLedger.
func (c *ProviderLedgerClient) Query() *ProviderLedgerQuery {
	return &ProviderLedgerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderLedger},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderLedger entity by its id.
func (c *ProviderLedgerClient) Get(ctx context.Context, id int) (*ProviderLedger, error) {
	return c.Query().Where(providerledger.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderLedgerClient) GetX(ctx context.Context, id int) *ProviderLedger {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderLedgerClient) Hooks() []Hook {
	return c.hooks.ProviderLedger
}

// Interceptors returns the client interceptors.
func (c *ProviderLedgerClient) Interceptors() []Interceptor {
	return c.inters.ProviderLedger
}

func (c *ProviderLedgerClient) mutate(ctx context.Context, m *ProviderLedgerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderLedger mutation op: %q", m.Op())
	}
}

// ProviderResponseClient is a client for the ProviderResponse schema.
type ProviderResponseClient struct {
	config
}

// NewProviderResponseClient returns a client for the ProviderResponse from the given config.
func NewProviderResponseClient(c config) *ProviderResponseClient {
	return &ProviderResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `providerresponse.Hooks(f(g(h())))`.
func (c *ProviderResponseClient) Use(hooks ...Hook) {
	c.hooks.ProviderResponse = append(c.hooks.ProviderResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `providerresponse.Intercept(f(g(h())))`.
func (c *ProviderResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderResponse = append(c.inters.ProviderResponse, interceptors...)
}

// Create returns a builder for creating a ProviderResponse entity.
func (c *ProviderResponseClient) Create() *ProviderResponseCreate {
	mutation := newProviderResponseMutation(c.config, OpCreate)
	return &ProviderResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderResponse entities.
func (c *ProviderResponseClient) CreateBulk(builders ...*ProviderResponseCreate) *ProviderResponseCreateBulk {
	return &ProviderResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderResponseClient) MapCreateBulk(slice any, setFunc func(*ProviderResponseCreate, int)) *ProviderResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderResponseCreateBulk{err: fmt.Errorf("calling to ProviderResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderResponse.
func (c *ProviderResponseClient) Update() *ProviderResponseUpdate {
	mutation := newProviderResponseMutation(c.config, OpUpdate)
	return &ProviderResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderResponseClient) UpdateOne(_m *ProviderResponse) *ProviderResponseUpdateOne {
	mutation := newProviderResponseMutation(c.config, OpUpdateOne, withProviderResponse(_m))
	return &ProviderResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderResponseClient) UpdateOneID(id string) *ProviderResponseUpdateOne {
	mutation := newProviderResponseMutation(c.config, OpUpdateOne, withProviderResponseID(id))
	return &ProviderResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderResponse.
func (c *ProviderResponseClient) Delete() *ProviderResponseDelete {
	mutation := newProviderResponseMutation(c.config, OpDelete)
	return &ProviderResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderResponseClient) DeleteOne(_m *ProviderResponse) *ProviderResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderResponseClient) DeleteOneID(id string) *ProviderResponseDeleteOne {
	builder := c.Delete().Where(providerresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderResponseDeleteOne{builder}
}

// Query returns a query builder for ProviderResponse.
func (c *ProviderResponseClient) Query() *ProviderResponseQuery {
	return &ProviderResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderResponse entity by its id.
func (c *ProviderResponseClient) Get(ctx context.Context, id string) (*ProviderResponse, error) {
	return c.Query().Where(providerresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderResponseClient) GetX(ctx context.Context, id string) *ProviderResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a ProviderResponse.
func (c *ProviderResponseClient) QueryAudit(_m *ProviderResponse) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(providerresponse.Table, providerresponse.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, providerresponse.AuditTable, providerresponse.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProviderResponseClient) Hooks() []Hook {
	return c.hooks.ProviderResponse
}

// Interceptors returns the client interceptors.
func (c *ProviderResponseClient) Interceptors() []Interceptor {
	return c.inters.ProviderResponse
}

func (c *ProviderResponseClient) mutate(ctx context.Context, m *ProviderResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderResponse mutation op: %q", m.Op())
	}
}

// RankingSnapshotClient is a client for the RankingSnapshot schema.
type RankingSnapshotClient struct {
	config
}

// NewRankingSnapshotClient returns a client for the RankingSnapshot from the given config.
func NewRankingSnapshotClient(c config) *RankingSnapshotClient {
	return &RankingSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rankingsnapshot.Hooks(f(g(h())))`.
func (c *RankingSnapshotClient) Use(hooks ...Hook) {
	c.hooks.RankingSnapshot = append(c.hooks.RankingSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rankingsnapshot.Intercept(f(g(h())))`.
func (c *RankingSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.RankingSnapshot = append(c.inters.RankingSnapshot, interceptors...)
}

// Create returns a builder for creating a RankingSnapshot entity.
func (c *RankingSnapshotClient) Create() *RankingSnapshotCreate {
	mutation := newRankingSnapshotMutation(c.config, OpCreate)
	return &RankingSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RankingSnapshot entities.
func (c *RankingSnapshotClient) CreateBulk(builders ...*RankingSnapshotCreate) *RankingSnapshotCreateBulk {
	return &RankingSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RankingSnapshotClient) MapCreateBulk(slice any, setFunc func(*RankingSnapshotCreate, int)) *RankingSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RankingSnapshotCreateBulk{err: fmt.Errorf("calling to RankingSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RankingSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RankingSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RankingSnapshot.
func (c *RankingSnapshotClient) Update() *RankingSnapshotUpdate {
	mutation := newRankingSnapshotMutation(c.config, OpUpdate)
	return &RankingSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RankingSnapshotClient) UpdateOne(_m *RankingSnapshot) *RankingSnapshotUpdateOne {
	mutation := newRankingSnapshotMutation(c.config, OpUpdateOne, withRankingSnapshot(_m))
	return &RankingSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RankingSnapshotClient) UpdateOneID(id string) *RankingSnapshotUpdateOne {
	mutation := newRankingSnapshotMutation(c.config, OpUpdateOne, withRankingSnapshotID(id))
	return &RankingSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RankingSnapshot.
func (c *RankingSnapshotClient) Delete() *RankingSnapshotDelete {
	mutation := newRankingSnapshotMutation(c.config, OpDelete)
	return &RankingSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RankingSnapshotClient) DeleteOne(_m *RankingSnapshot) *RankingSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RankingSnapshotClient) DeleteOneID(id string) *RankingSnapshotDeleteOne {
	builder := c.Delete().Where(rankingsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RankingSnapshotDeleteOne{builder}
}

// Query returns a query builder for RankingSnapshot.
func (c *RankingSnapshotClient) Query() *RankingSnapshotQuery {
	return &RankingSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRankingSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a RankingSnapshot entity by its id.
func (c *RankingSnapshotClient) Get(ctx context.Context, id string) (*RankingSnapshot, error) {
	return c.Query().Where(rankingsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RankingSnapshotClient) GetX(ctx context.Context, id string) *RankingSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RankingSnapshotClient) Hooks() []Hook {
	return c.hooks.RankingSnapshot
}

// Interceptors returns the client interceptors.
func (c *RankingSnapshotClient) Interceptors() []Interceptor {
	return c.inters.RankingSnapshot
}

func (c *RankingSnapshotClient) mutate(ctx context.Context, m *RankingSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RankingSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RankingSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RankingSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RankingSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RankingSnapshot mutation op: %q", m.Op())
	}
}

// StrategicPriorityClient is a client for the StrategicPriority schema.
type StrategicPriorityClient struct {
	config
}

// NewStrategicPriorityClient returns a client for the StrategicPriority from the given config.
func NewStrategicPriorityClient(c config) *StrategicPriorityClient {
	return &StrategicPriorityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `strategicpriority.Hooks(f(g(h())))`.
func (c *StrategicPriorityClient) Use(hooks ...Hook) {
	c.hooks.StrategicPriority = append(c.hooks.StrategicPriority, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `strategicpriority.Intercept(f(g(h())))`.
func (c *StrategicPriorityClient) Intercept(interceptors ...Interceptor) {
	c.inters.StrategicPriority = append(c.inters.StrategicPriority, interceptors...)
}

// Create returns a builder for creating a StrategicPriority entity.
func (c *StrategicPriorityClient) Create() *StrategicPriorityCreate {
	mutation := newStrategicPriorityMutation(c.config, OpCreate)
	return &StrategicPriorityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StrategicPriority entities.
func (c *StrategicPriorityClient) CreateBulk(builders ...*StrategicPriorityCreate) *StrategicPriorityCreateBulk {
	return &StrategicPriorityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StrategicPriorityClient) MapCreateBulk(slice any, setFunc func(*StrategicPriorityCreate, int)) *StrategicPriorityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StrategicPriorityCreateBulk{err: fmt.Errorf("calling to StrategicPriorityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StrategicPriorityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StrategicPriorityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StrategicPriority.
func (c *StrategicPriorityClient) Update() *StrategicPriorityUpdate {
	mutation := newStrategicPriorityMutation(c.config, OpUpdate)
	return &StrategicPriorityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StrategicPriorityClient) UpdateOne(_m *StrategicPriority) *StrategicPriorityUpdateOne {
	mutation := newStrategicPriorityMutation(c.config, OpUpdateOne, withStrategicPriority(_m))
	return &StrategicPriorityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StrategicPriorityClient) UpdateOneID(id int) *StrategicPriorityUpdateOne {
	mutation := newStrategicPriorityMutation(c.config, OpUpdateOne, withStrategicPriorityID(id))
	return &StrategicPriorityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StrategicPriority.
func (c *StrategicPriorityClient) Delete() *StrategicPriorityDelete {
	mutation := newStrategicPriorityMutation(c.config, OpDelete)
	return &StrategicPriorityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StrategicPriorityClient) DeleteOne(_m *StrategicPriority) *StrategicPriorityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StrategicPriorityClient) DeleteOneID(id int) *StrategicPriorityDeleteOne {
	builder := c.Delete().Where(strategicpriority.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StrategicPriorityDeleteOne{builder}
}

// Query returns a query builder for StrategicPriority.
func (c *StrategicPriorityClient) Query() *StrategicPriorityQuery {
	return &StrategicPriorityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStrategicPriority},
		inters: c.Interceptors(),
	}
}

// Get returns a StrategicPriority entity by its id.
func (c *StrategicPriorityClient) Get(ctx context.Context, id int) (*StrategicPriority, error) {
	return c.Query().Where(strategicpriority.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StrategicPriorityClient) GetX(ctx context.Context, id int) *StrategicPriority {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a StrategicPriority.
func (c *StrategicPriorityClient) QueryAudit(_m *StrategicPriority) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(strategicpriority.Table, strategicpriority.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, strategicpriority.AuditTable, strategicpriority.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StrategicPriorityClient) Hooks() []Hook {
	return c.hooks.StrategicPriority
}

// Interceptors returns the client interceptors.
func (c *StrategicPriorityClient) Interceptors() []Interceptor {
	return c.inters.StrategicPriority
}

func (c *StrategicPriorityClient) mutate(ctx context.Context, m *StrategicPriorityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StrategicPriorityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StrategicPriorityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StrategicPriorityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StrategicPriorityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StrategicPriority mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Audit, AuditQuery, BatchInsight, CategoryAggregate, DashboardSnapshot, Event,
		ExecutiveSummary, ProviderLedger, ProviderResponse, RankingSnapshot,
		StrategicPriority []ent.Hook
	}
	inters struct {
		Audit, AuditQuery, BatchInsight, CategoryAggregate, DashboardSnapshot, Event,
		ExecutiveSummary, ProviderLedger, ProviderResponse, RankingSnapshot,
		StrategicPriority []ent.Interceptor
	}
)
