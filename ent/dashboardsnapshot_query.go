// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/predicate"
)

// DashboardSnapshotQuery is the builder for querying DashboardSnapshot entities.
type DashboardSnapshotQuery struct {
	config
	ctx        *QueryContext
	order      []dashboardsnapshot.OrderOption
	inters     []Interceptor
	predicates []predicate.DashboardSnapshot
	withAudit  *AuditQueryBuilder
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DashboardSnapshotQuery builder.
func (_q *DashboardSnapshotQuery) Where(ps ...predicate.DashboardSnapshot) *DashboardSnapshotQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DashboardSnapshotQuery) Limit(limit int) *DashboardSnapshotQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DashboardSnapshotQuery) Offset(offset int) *DashboardSnapshotQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DashboardSnapshotQuery) Unique(unique bool) *DashboardSnapshotQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DashboardSnapshotQuery) Order(o ...dashboardsnapshot.OrderOption) *DashboardSnapshotQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAudit chains the current query on the "audit" edge.
func (_q *DashboardSnapshotQuery) QueryAudit() *AuditQueryBuilder {
	query := (&AuditClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dashboardsnapshot.Table, dashboardsnapshot.FieldID, selector),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, dashboardsnapshot.AuditTable, dashboardsnapshot.AuditColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DashboardSnapshot entity from the query.
// Returns a *NotFoundError when no DashboardSnapshot was found.
func (_q *DashboardSnapshotQuery) First(ctx context.Context) (*DashboardSnapshot, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dashboardsnapshot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DashboardSnapshotQuery) FirstX(ctx context.Context) *DashboardSnapshot {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DashboardSnapshot ID from the query.
// Returns a *NotFoundError when no DashboardSnapshot ID was found.
func (_q *DashboardSnapshotQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dashboardsnapshot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DashboardSnapshotQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DashboardSnapshot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DashboardSnapshot entity is found.
// Returns a *NotFoundError when no DashboardSnapshot entities are found.
func (_q *DashboardSnapshotQuery) Only(ctx context.Context) (*DashboardSnapshot, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dashboardsnapshot.Label}
	default:
		return nil, &NotSingularError{dashboardsnapshot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DashboardSnapshotQuery) OnlyX(ctx context.Context) *DashboardSnapshot {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DashboardSnapshot ID in the query.
// Returns a *NotSingularError when more than one DashboardSnapshot ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DashboardSnapshotQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dashboardsnapshot.Label}
	default:
		err = &NotSingularError{dashboardsnapshot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DashboardSnapshotQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DashboardSnapshots.
func (_q *DashboardSnapshotQuery) All(ctx context.Context) ([]*DashboardSnapshot, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DashboardSnapshot, *DashboardSnapshotQuery]()
	return withInterceptors[[]*DashboardSnapshot](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DashboardSnapshotQuery) AllX(ctx context.Context) []*DashboardSnapshot {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DashboardSnapshot IDs.
func (_q *DashboardSnapshotQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(dashboardsnapshot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DashboardSnapshotQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DashboardSnapshotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DashboardSnapshotQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DashboardSnapshotQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DashboardSnapshotQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DashboardSnapshotQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DashboardSnapshotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DashboardSnapshotQuery) Clone() *DashboardSnapshotQuery {
	if _q == nil {
		return nil
	}
	return &DashboardSnapshotQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]dashboardsnapshot.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.DashboardSnapshot{}, _q.predicates...),
		withAudit:  _q.withAudit.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAudit tells the query-builder to eager-load the nodes that are connected to
// the "audit" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DashboardSnapshotQuery) WithAudit(opts ...func(*AuditQueryBuilder)) *DashboardSnapshotQuery {
	query := (&AuditClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAudit = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AuditID string `json:"audit_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DashboardSnapshot.Query().
//		GroupBy(dashboardsnapshot.FieldAuditID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DashboardSnapshotQuery) GroupBy(field string, fields ...string) *DashboardSnapshotGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DashboardSnapshotGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = dashboardsnapshot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AuditID string `json:"audit_id,omitempty"`
//	}
//
//	client.DashboardSnapshot.Query().
//		Select(dashboardsnapshot.FieldAuditID).
//		Scan(ctx, &v)
func (_q *DashboardSnapshotQuery) Select(fields ...string) *DashboardSnapshotSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DashboardSnapshotSelect{DashboardSnapshotQuery: _q}
	sbuild.label = dashboardsnapshot.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DashboardSnapshotSelect configured with the given aggregations.
func (_q *DashboardSnapshotQuery) Aggregate(fns ...AggregateFunc) *DashboardSnapshotSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DashboardSnapshotQuery) prepareQuery(ctx context.Context) error {
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
		if !dashboardsnapshot.ValidColumn(f) {
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

func (_q *DashboardSnapshotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DashboardSnapshot, error) {
	var (
		nodes       = []*DashboardSnapshot{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withAudit != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DashboardSnapshot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DashboardSnapshot{config: _q.config}
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
	if query := _q.withAudit; query != nil {
		if err := _q.loadAudit(ctx, query, nodes, nil,
			func(n *DashboardSnapshot, e *Audit) { n.Edges.Audit = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DashboardSnapshotQuery) loadAudit(ctx context.Context, query *AuditQueryBuilder, nodes []*DashboardSnapshot, init func(*DashboardSnapshot), assign func(*DashboardSnapshot, *Audit)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*DashboardSnapshot)
	for i := range nodes {
		fk := nodes[i].AuditID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(audit.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "audit_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *DashboardSnapshotQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *DashboardSnapshotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dashboardsnapshot.Table, dashboardsnapshot.Columns, sqlgraph.NewFieldSpec(dashboardsnapshot.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dashboardsnapshot.FieldID)
		for i := range fields {
			if fields[i] != dashboardsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAudit != nil {
			_spec.Node.AddColumnOnce(dashboardsnapshot.FieldAuditID)
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

func (_q *DashboardSnapshotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(dashboardsnapshot.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = dashboardsnapshot.Columns
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
func (_q *DashboardSnapshotQuery) ForUpdate(opts ...sql.LockOption) *DashboardSnapshotQuery {
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
func (_q *DashboardSnapshotQuery) ForShare(opts ...sql.LockOption) *DashboardSnapshotQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// DashboardSnapshotGroupBy is the group-by builder for DashboardSnapshot entities.
type DashboardSnapshotGroupBy struct {
	selector
	build *DashboardSnapshotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DashboardSnapshotGroupBy) Aggregate(fns ...AggregateFunc) *DashboardSnapshotGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DashboardSnapshotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DashboardSnapshotQuery, *DashboardSnapshotGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DashboardSnapshotGroupBy) sqlScan(ctx context.Context, root *DashboardSnapshotQuery, v any) error {
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

// DashboardSnapshotSelect is the builder for selecting fields of DashboardSnapshot entities.
type DashboardSnapshotSelect struct {
	*DashboardSnapshotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DashboardSnapshotSelect) Aggregate(fns ...AggregateFunc) *DashboardSnapshotSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DashboardSnapshotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DashboardSnapshotQuery, *DashboardSnapshotSelect](ctx, _s.DashboardSnapshotQuery, _s, _s.inters, v)
}

func (_s *DashboardSnapshotSelect) sqlScan(ctx context.Context, root *DashboardSnapshotQuery, v any) error {
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
