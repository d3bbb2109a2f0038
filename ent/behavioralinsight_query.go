// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralinsight"
	"github.com/abhisek/cadence/ent/predicate"
)

// BehavioralInsightQuery is the builder for querying BehavioralInsight entities.
type BehavioralInsightQuery struct {
	config
	ctx        *QueryContext
	order      []behavioralinsight.OrderOption
	inters     []Interceptor
	predicates []predicate.BehavioralInsight
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BehavioralInsightQuery builder.
func (_q *BehavioralInsightQuery) Where(ps ...predicate.BehavioralInsight) *BehavioralInsightQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BehavioralInsightQuery) Limit(limit int) *BehavioralInsightQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BehavioralInsightQuery) Offset(offset int) *BehavioralInsightQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BehavioralInsightQuery) Unique(unique bool) *BehavioralInsightQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BehavioralInsightQuery) Order(o ...behavioralinsight.OrderOption) *BehavioralInsightQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first BehavioralInsight entity from the query.
// Returns a *NotFoundError when no BehavioralInsight was found.
func (_q *BehavioralInsightQuery) First(ctx context.Context) (*BehavioralInsight, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{behavioralinsight.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BehavioralInsightQuery) FirstX(ctx context.Context) *BehavioralInsight {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BehavioralInsight ID from the query.
// Returns a *NotFoundError when no BehavioralInsight ID was found.
func (_q *BehavioralInsightQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{behavioralinsight.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BehavioralInsightQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BehavioralInsight entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BehavioralInsight entity is found.
// Returns a *NotFoundError when no BehavioralInsight entities are found.
func (_q *BehavioralInsightQuery) Only(ctx context.Context) (*BehavioralInsight, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{behavioralinsight.Label}
	default:
		return nil, &NotSingularError{behavioralinsight.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BehavioralInsightQuery) OnlyX(ctx context.Context) *BehavioralInsight {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BehavioralInsight ID in the query.
// Returns a *NotSingularError when more than one BehavioralInsight ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BehavioralInsightQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{behavioralinsight.Label}
	default:
		err = &NotSingularError{behavioralinsight.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BehavioralInsightQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BehavioralInsights.
func (_q *BehavioralInsightQuery) All(ctx context.Context) ([]*BehavioralInsight, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BehavioralInsight, *BehavioralInsightQuery]()
	return withInterceptors[[]*BehavioralInsight](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BehavioralInsightQuery) AllX(ctx context.Context) []*BehavioralInsight {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BehavioralInsight IDs.
func (_q *BehavioralInsightQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(behavioralinsight.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BehavioralInsightQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BehavioralInsightQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BehavioralInsightQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BehavioralInsightQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BehavioralInsightQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BehavioralInsightQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BehavioralInsightQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BehavioralInsightQuery) Clone() *BehavioralInsightQuery {
	if _q == nil {
		return nil
	}
	return &BehavioralInsightQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]behavioralinsight.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.BehavioralInsight{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BehavioralInsight.Query().
//		GroupBy(behavioralinsight.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BehavioralInsightQuery) GroupBy(field string, fields ...string) *BehavioralInsightGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BehavioralInsightGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = behavioralinsight.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.BehavioralInsight.Query().
//		Select(behavioralinsight.FieldUserID).
//		Scan(ctx, &v)
func (_q *BehavioralInsightQuery) Select(fields ...string) *BehavioralInsightSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BehavioralInsightSelect{BehavioralInsightQuery: _q}
	sbuild.label = behavioralinsight.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BehavioralInsightSelect configured with the given aggregations.
func (_q *BehavioralInsightQuery) Aggregate(fns ...AggregateFunc) *BehavioralInsightSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BehavioralInsightQuery) prepareQuery(ctx context.Context) error {
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
		if !behavioralinsight.ValidColumn(f) {
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

func (_q *BehavioralInsightQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BehavioralInsight, error) {
	var (
		nodes = []*BehavioralInsight{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BehavioralInsight).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BehavioralInsight{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
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
	return nodes, nil
}

func (_q *BehavioralInsightQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BehavioralInsightQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(behavioralinsight.Table, behavioralinsight.Columns, sqlgraph.NewFieldSpec(behavioralinsight.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, behavioralinsight.FieldID)
		for i := range fields {
			if fields[i] != behavioralinsight.FieldID {
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

func (_q *BehavioralInsightQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(behavioralinsight.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = behavioralinsight.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// BehavioralInsightGroupBy is the group-by builder for BehavioralInsight entities.
type BehavioralInsightGroupBy struct {
	selector
	build *BehavioralInsightQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BehavioralInsightGroupBy) Aggregate(fns ...AggregateFunc) *BehavioralInsightGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BehavioralInsightGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BehavioralInsightQuery, *BehavioralInsightGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BehavioralInsightGroupBy) sqlScan(ctx context.Context, root *BehavioralInsightQuery, v any) error {
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

// BehavioralInsightSelect is the builder for selecting fields of BehavioralInsight entities.
type BehavioralInsightSelect struct {
	*BehavioralInsightQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BehavioralInsightSelect) Aggregate(fns ...AggregateFunc) *BehavioralInsightSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BehavioralInsightSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BehavioralInsightQuery, *BehavioralInsightSelect](ctx, _s.BehavioralInsightQuery, _s, _s.inters, v)
}

func (_s *BehavioralInsightSelect) sqlScan(ctx context.Context, root *BehavioralInsightQuery, v any) error {
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
