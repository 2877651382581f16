// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/biologist"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
	"github.com/hemobank/hemobank_backend/internal/repo/predicate"
)

// BloodBagQuery is the builder for querying BloodBag entities.
type BloodBagQuery struct {
	config
	ctx               *QueryContext
	order             []bloodbag.OrderOption
	inters            []Interceptor
	predicates        []predicate.BloodBag
	withBiologist     *BiologistQuery
	withComponents    *ComponentQuery
	withDistributions *DistributionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BloodBagQuery builder.
func (_q *BloodBagQuery) Where(ps ...predicate.BloodBag) *BloodBagQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BloodBagQuery) Limit(limit int) *BloodBagQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BloodBagQuery) Offset(offset int) *BloodBagQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BloodBagQuery) Unique(unique bool) *BloodBagQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BloodBagQuery) Order(o ...bloodbag.OrderOption) *BloodBagQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBiologist chains the current query on the "biologist" edge.
func (_q *BloodBagQuery) QueryBiologist() *BiologistQuery {
	query := (&BiologistClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bloodbag.Table, bloodbag.FieldID, selector),
			sqlgraph.To(biologist.Table, biologist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bloodbag.BiologistTable, bloodbag.BiologistColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryComponents chains the current query on the "components" edge.
func (_q *BloodBagQuery) QueryComponents() *ComponentQuery {
	query := (&ComponentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bloodbag.Table, bloodbag.FieldID, selector),
			sqlgraph.To(component.Table, component.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bloodbag.ComponentsTable, bloodbag.ComponentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDistributions chains the current query on the "distributions" edge.
func (_q *BloodBagQuery) QueryDistributions() *DistributionQuery {
	query := (&DistributionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(bloodbag.Table, bloodbag.FieldID, selector),
			sqlgraph.To(distribution.Table, distribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bloodbag.DistributionsTable, bloodbag.DistributionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BloodBag entity from the query.
// Returns a *NotFoundError when no BloodBag was found.
func (_q *BloodBagQuery) First(ctx context.Context) (*BloodBag, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{bloodbag.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BloodBagQuery) FirstX(ctx context.Context) *BloodBag {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BloodBag ID from the query.
// Returns a *NotFoundError when no BloodBag ID was found.
func (_q *BloodBagQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{bloodbag.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BloodBagQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BloodBag entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BloodBag entity is found.
// Returns a *NotFoundError when no BloodBag entities are found.
func (_q *BloodBagQuery) Only(ctx context.Context) (*BloodBag, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{bloodbag.Label}
	default:
		return nil, &NotSingularError{bloodbag.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BloodBagQuery) OnlyX(ctx context.Context) *BloodBag {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BloodBag ID in the query.
// Returns a *NotSingularError when more than one BloodBag ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BloodBagQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{bloodbag.Label}
	default:
		err = &NotSingularError{bloodbag.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BloodBagQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BloodBags.
func (_q *BloodBagQuery) All(ctx context.Context) ([]*BloodBag, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BloodBag, *BloodBagQuery]()
	return withInterceptors[[]*BloodBag](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BloodBagQuery) AllX(ctx context.Context) []*BloodBag {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BloodBag IDs.
func (_q *BloodBagQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(bloodbag.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BloodBagQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BloodBagQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BloodBagQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BloodBagQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BloodBagQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BloodBagQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BloodBagQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BloodBagQuery) Clone() *BloodBagQuery {
	if _q == nil {
		return nil
	}
	return &BloodBagQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]bloodbag.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.BloodBag{}, _q.predicates...),
		withBiologist:     _q.withBiologist.Clone(),
		withComponents:    _q.withComponents.Clone(),
		withDistributions: _q.withDistributions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBiologist tells the query-builder to eager-load the nodes that are connected to
// the "biologist" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BloodBagQuery) WithBiologist(opts ...func(*BiologistQuery)) *BloodBagQuery {
	query := (&BiologistClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBiologist = query
	return _q
}

// WithComponents tells the query-builder to eager-load the nodes that are connected to
// the "components" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BloodBagQuery) WithComponents(opts ...func(*ComponentQuery)) *BloodBagQuery {
	query := (&ComponentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withComponents = query
	return _q
}

// WithDistributions tells the query-builder to eager-load the nodes that are connected to
// the "distributions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BloodBagQuery) WithDistributions(opts ...func(*DistributionQuery)) *BloodBagQuery {
	query := (&DistributionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDistributions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BloodBag.Query().
//		GroupBy(bloodbag.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *BloodBagQuery) GroupBy(field string, fields ...string) *BloodBagGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BloodBagGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = bloodbag.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.BloodBag.Query().
//		Select(bloodbag.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *BloodBagQuery) Select(fields ...string) *BloodBagSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BloodBagSelect{BloodBagQuery: _q}
	sbuild.label = bloodbag.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BloodBagSelect configured with the given aggregations.
func (_q *BloodBagQuery) Aggregate(fns ...AggregateFunc) *BloodBagSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BloodBagQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !bloodbag.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
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

func (_q *BloodBagQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BloodBag, error) {
	var (
		nodes       = []*BloodBag{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withBiologist != nil,
			_q.withComponents != nil,
			_q.withDistributions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BloodBag).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BloodBag{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
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
	if query := _q.withBiologist; query != nil {
		if err := _q.loadBiologist(ctx, query, nodes, nil,
			func(n *BloodBag, e *Biologist) { n.Edges.Biologist = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withComponents; query != nil {
		if err := _q.loadComponents(ctx, query, nodes,
			func(n *BloodBag) { n.Edges.Components = []*Component{} },
			func(n *BloodBag, e *Component) { n.Edges.Components = append(n.Edges.Components, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDistributions; query != nil {
		if err := _q.loadDistributions(ctx, query, nodes,
			func(n *BloodBag) { n.Edges.Distributions = []*Distribution{} },
			func(n *BloodBag, e *Distribution) { n.Edges.Distributions = append(n.Edges.Distributions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BloodBagQuery) loadBiologist(ctx context.Context, query *BiologistQuery, nodes []*BloodBag, init func(*BloodBag), assign func(*BloodBag, *Biologist)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*BloodBag)
	for i := range nodes {
		fk := nodes[i].BiologistID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(biologist.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "biologist_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BloodBagQuery) loadComponents(ctx context.Context, query *ComponentQuery, nodes []*BloodBag, init func(*BloodBag), assign func(*BloodBag, *Component)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*BloodBag)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(component.FieldBagbloodID)
	}
	query.Where(predicate.Component(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(bloodbag.ComponentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BagbloodID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "bagblood_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BloodBagQuery) loadDistributions(ctx context.Context, query *DistributionQuery, nodes []*BloodBag, init func(*BloodBag), assign func(*BloodBag, *Distribution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*BloodBag)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(distribution.FieldBagbloodID)
	}
	query.Where(predicate.Distribution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(bloodbag.DistributionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BagbloodID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "bagblood_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BloodBagQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BloodBagQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(bloodbag.Table, bloodbag.Columns, sqlgraph.NewFieldSpec(bloodbag.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bloodbag.FieldID)
		for i := range fields {
			if fields[i] != bloodbag.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBiologist != nil {
			_spec.Node.AddColumnOnce(bloodbag.FieldBiologistID)
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

func (_q *BloodBagQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(bloodbag.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = bloodbag.Columns
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

// BloodBagGroupBy is the group-by builder for BloodBag entities.
type BloodBagGroupBy struct {
	selector
	build *BloodBagQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BloodBagGroupBy) Aggregate(fns ...AggregateFunc) *BloodBagGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BloodBagGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BloodBagQuery, *BloodBagGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BloodBagGroupBy) sqlScan(ctx context.Context, root *BloodBagQuery, v any) error {
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

// BloodBagSelect is the builder for selecting fields of BloodBag entities.
type BloodBagSelect struct {
	*BloodBagQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BloodBagSelect) Aggregate(fns ...AggregateFunc) *BloodBagSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BloodBagSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BloodBagQuery, *BloodBagSelect](ctx, _s.BloodBagQuery, _s, _s.inters, v)
}

func (_s *BloodBagSelect) sqlScan(ctx context.Context, root *BloodBagQuery, v any) error {
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
