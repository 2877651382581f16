// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hemobank/hemobank_backend/internal/repo/biologist"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/chefservice"
	"github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
	"github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Biologist is the client for interacting with the Biologist builders.
	Biologist *BiologistClient
	// BloodBag is the client for interacting with the BloodBag builders.
	BloodBag *BloodBagClient
	// ChefService is the client for interacting with the ChefService builders.
	ChefService *ChefServiceClient
	// Component is the client for interacting with the Component builders.
	Component *ComponentClient
	// Distribution is the client for interacting with the Distribution builders.
	Distribution *DistributionClient
	// YearlyStat is the client for interacting with the YearlyStat builders.
	YearlyStat *YearlyStatClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Biologist = NewBiologistClient(c.config)
	c.BloodBag = NewBloodBagClient(c.config)
	c.ChefService = NewChefServiceClient(c.config)
	c.Component = NewComponentClient(c.config)
	c.Distribution = NewDistributionClient(c.config)
	c.YearlyStat = NewYearlyStatClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Biologist:    NewBiologistClient(cfg),
		BloodBag:     NewBloodBagClient(cfg),
		ChefService:  NewChefServiceClient(cfg),
		Component:    NewComponentClient(cfg),
		Distribution: NewDistributionClient(cfg),
		YearlyStat:   NewYearlyStatClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		Biologist:    NewBiologistClient(cfg),
		BloodBag:     NewBloodBagClient(cfg),
		ChefService:  NewChefServiceClient(cfg),
		Component:    NewComponentClient(cfg),
		Distribution: NewDistributionClient(cfg),
		YearlyStat:   NewYearlyStatClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Biologist.
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
		c.Biologist, c.BloodBag, c.ChefService, c.Component, c.Distribution,
		c.YearlyStat,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Biologist, c.BloodBag, c.ChefService, c.Component, c.Distribution,
		c.YearlyStat,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BiologistMutation:
		return c.Biologist.mutate(ctx, m)
	case *BloodBagMutation:
		return c.BloodBag.mutate(ctx, m)
	case *ChefServiceMutation:
		return c.ChefService.mutate(ctx, m)
	case *ComponentMutation:
		return c.Component.mutate(ctx, m)
	case *DistributionMutation:
		return c.Distribution.mutate(ctx, m)
	case *YearlyStatMutation:
		return c.YearlyStat.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// BiologistClient is a client for the Biologist schema.
type BiologistClient struct {
	config
}

// NewBiologistClient returns a client for the Biologist from the given config.
func NewBiologistClient(c config) *BiologistClient {
	return &BiologistClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `biologist.Hooks(f(g(h())))`.
func (c *BiologistClient) Use(hooks ...Hook) {
	c.hooks.Biologist = append(c.hooks.Biologist, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `biologist.Intercept(f(g(h())))`.
func (c *BiologistClient) Intercept(interceptors ...Interceptor) {
	c.inters.Biologist = append(c.inters.Biologist, interceptors...)
}

// Create returns a builder for creating a Biologist entity.
func (c *BiologistClient) Create() *BiologistCreate {
	mutation := newBiologistMutation(c.config, OpCreate)
	return &BiologistCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Biologist entities.
func (c *BiologistClient) CreateBulk(builders ...*BiologistCreate) *BiologistCreateBulk {
	return &BiologistCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BiologistClient) MapCreateBulk(slice any, setFunc func(*BiologistCreate, int)) *BiologistCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BiologistCreateBulk{err: fmt.Errorf("calling to BiologistClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BiologistCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BiologistCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Biologist.
func (c *BiologistClient) Update() *BiologistUpdate {
	mutation := newBiologistMutation(c.config, OpUpdate)
	return &BiologistUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BiologistClient) UpdateOne(_m *Biologist) *BiologistUpdateOne {
	mutation := newBiologistMutation(c.config, OpUpdateOne, withBiologist(_m))
	return &BiologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BiologistClient) UpdateOneID(id uuid.UUID) *BiologistUpdateOne {
	mutation := newBiologistMutation(c.config, OpUpdateOne, withBiologistID(id))
	return &BiologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Biologist.
func (c *BiologistClient) Delete() *BiologistDelete {
	mutation := newBiologistMutation(c.config, OpDelete)
	return &BiologistDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BiologistClient) DeleteOne(_m *Biologist) *BiologistDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BiologistClient) DeleteOneID(id uuid.UUID) *BiologistDeleteOne {
	builder := c.Delete().Where(biologist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BiologistDeleteOne{builder}
}

// Query returns a query builder for Biologist.
func (c *BiologistClient) Query() *BiologistQuery {
	return &BiologistQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBiologist},
		inters: c.Interceptors(),
	}
}

// Get returns a Biologist entity by its id.
func (c *BiologistClient) Get(ctx context.Context, id uuid.UUID) (*Biologist, error) {
	return c.Query().Where(biologist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BiologistClient) GetX(ctx context.Context, id uuid.UUID) *Biologist {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBloodBags queries the blood_bags edge of a Biologist.
func (c *BiologistClient) QueryBloodBags(_m *Biologist) *BloodBagQuery {
	query := (&BloodBagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(biologist.Table, biologist.FieldID, id),
			sqlgraph.To(bloodbag.Table, bloodbag.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, biologist.BloodBagsTable, biologist.BloodBagsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BiologistClient) Hooks() []Hook {
	return c.hooks.Biologist
}

// Interceptors returns the client interceptors.
func (c *BiologistClient) Interceptors() []Interceptor {
	return c.inters.Biologist
}

func (c *BiologistClient) mutate(ctx context.Context, m *BiologistMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BiologistCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BiologistUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BiologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BiologistDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Biologist mutation op: %q", m.Op())
	}
}

// BloodBagClient is a client for the BloodBag schema.
type BloodBagClient struct {
	config
}

// NewBloodBagClient returns a client for the BloodBag from the given config.
func NewBloodBagClient(c config) *BloodBagClient {
	return &BloodBagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bloodbag.Hooks(f(g(h())))`.
func (c *BloodBagClient) Use(hooks ...Hook) {
	c.hooks.BloodBag = append(c.hooks.BloodBag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bloodbag.Intercept(f(g(h())))`.
func (c *BloodBagClient) Intercept(interceptors ...Interceptor) {
	c.inters.BloodBag = append(c.inters.BloodBag, interceptors...)
}

// Create returns a builder for creating a BloodBag entity.
func (c *BloodBagClient) Create() *BloodBagCreate {
	mutation := newBloodBagMutation(c.config, OpCreate)
	return &BloodBagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BloodBag entities.
func (c *BloodBagClient) CreateBulk(builders ...*BloodBagCreate) *BloodBagCreateBulk {
	return &BloodBagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BloodBagClient) MapCreateBulk(slice any, setFunc func(*BloodBagCreate, int)) *BloodBagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BloodBagCreateBulk{err: fmt.Errorf("calling to BloodBagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BloodBagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BloodBagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BloodBag.
func (c *BloodBagClient) Update() *BloodBagUpdate {
	mutation := newBloodBagMutation(c.config, OpUpdate)
	return &BloodBagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BloodBagClient) UpdateOne(_m *BloodBag) *BloodBagUpdateOne {
	mutation := newBloodBagMutation(c.config, OpUpdateOne, withBloodBag(_m))
	return &BloodBagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BloodBagClient) UpdateOneID(id uuid.UUID) *BloodBagUpdateOne {
	mutation := newBloodBagMutation(c.config, OpUpdateOne, withBloodBagID(id))
	return &BloodBagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BloodBag.
func (c *BloodBagClient) Delete() *BloodBagDelete {
	mutation := newBloodBagMutation(c.config, OpDelete)
	return &BloodBagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BloodBagClient) DeleteOne(_m *BloodBag) *BloodBagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BloodBagClient) DeleteOneID(id uuid.UUID) *BloodBagDeleteOne {
	builder := c.Delete().Where(bloodbag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BloodBagDeleteOne{builder}
}

// Query returns a query builder for BloodBag.
func (c *BloodBagClient) Query() *BloodBagQuery {
	return &BloodBagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBloodBag},
		inters: c.Interceptors(),
	}
}

// Get returns a BloodBag entity by its id.
func (c *BloodBagClient) Get(ctx context.Context, id uuid.UUID) (*BloodBag, error) {
	return c.Query().Where(bloodbag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BloodBagClient) GetX(ctx context.Context, id uuid.UUID) *BloodBag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBiologist queries the biologist edge of a BloodBag.
func (c *BloodBagClient) QueryBiologist(_m *BloodBag) *BiologistQuery {
	query := (&BiologistClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bloodbag.Table, bloodbag.FieldID, id),
			sqlgraph.To(biologist.Table, biologist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bloodbag.BiologistTable, bloodbag.BiologistColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryComponents queries the components edge of a BloodBag.
func (c *BloodBagClient) QueryComponents(_m *BloodBag) *ComponentQuery {
	query := (&ComponentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bloodbag.Table, bloodbag.FieldID, id),
			sqlgraph.To(component.Table, component.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bloodbag.ComponentsTable, bloodbag.ComponentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDistributions queries the distributions edge of a BloodBag.
func (c *BloodBagClient) QueryDistributions(_m *BloodBag) *DistributionQuery {
	query := (&DistributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bloodbag.Table, bloodbag.FieldID, id),
			sqlgraph.To(distribution.Table, distribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bloodbag.DistributionsTable, bloodbag.DistributionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BloodBagClient) Hooks() []Hook {
	return c.hooks.BloodBag
}

// Interceptors returns the client interceptors.
func (c *BloodBagClient) Interceptors() []Interceptor {
	return c.inters.BloodBag
}

func (c *BloodBagClient) mutate(ctx context.Context, m *BloodBagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BloodBagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BloodBagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BloodBagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BloodBagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BloodBag mutation op: %q", m.Op())
	}
}

// ChefServiceClient is a client for the ChefService schema.
type ChefServiceClient struct {
	config
}

// NewChefServiceClient returns a client for the ChefService from the given config.
func NewChefServiceClient(c config) *ChefServiceClient {
	return &ChefServiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chefservice.Hooks(f(g(h())))`.
func (c *ChefServiceClient) Use(hooks ...Hook) {
	c.hooks.ChefService = append(c.hooks.ChefService, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chefservice.Intercept(f(g(h())))`.
func (c *ChefServiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChefService = append(c.inters.ChefService, interceptors...)
}

// Create returns a builder for creating a ChefService entity.
func (c *ChefServiceClient) Create() *ChefServiceCreate {
	mutation := newChefServiceMutation(c.config, OpCreate)
	return &ChefServiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChefService entities.
func (c *ChefServiceClient) CreateBulk(builders ...*ChefServiceCreate) *ChefServiceCreateBulk {
	return &ChefServiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChefServiceClient) MapCreateBulk(slice any, setFunc func(*ChefServiceCreate, int)) *ChefServiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChefServiceCreateBulk{err: fmt.Errorf("calling to ChefServiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChefServiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChefServiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChefService.
func (c *ChefServiceClient) Update() *ChefServiceUpdate {
	mutation := newChefServiceMutation(c.config, OpUpdate)
	return &ChefServiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChefServiceClient) UpdateOne(_m *ChefService) *ChefServiceUpdateOne {
	mutation := newChefServiceMutation(c.config, OpUpdateOne, withChefService(_m))
	return &ChefServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChefServiceClient) UpdateOneID(id uuid.UUID) *ChefServiceUpdateOne {
	mutation := newChefServiceMutation(c.config, OpUpdateOne, withChefServiceID(id))
	return &ChefServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChefService.
func (c *ChefServiceClient) Delete() *ChefServiceDelete {
	mutation := newChefServiceMutation(c.config, OpDelete)
	return &ChefServiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChefServiceClient) DeleteOne(_m *ChefService) *ChefServiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChefServiceClient) DeleteOneID(id uuid.UUID) *ChefServiceDeleteOne {
	builder := c.Delete().Where(chefservice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChefServiceDeleteOne{builder}
}

// Query returns a query builder for ChefService.
func (c *ChefServiceClient) Query() *ChefServiceQuery {
	return &ChefServiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChefService},
		inters: c.Interceptors(),
	}
}

// Get returns a ChefService entity by its id.
func (c *ChefServiceClient) Get(ctx context.Context, id uuid.UUID) (*ChefService, error) {
	return c.Query().Where(chefservice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChefServiceClient) GetX(ctx context.Context, id uuid.UUID) *ChefService {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChefServiceClient) Hooks() []Hook {
	return c.hooks.ChefService
}

// Interceptors returns the client interceptors.
func (c *ChefServiceClient) Interceptors() []Interceptor {
	return c.inters.ChefService
}

func (c *ChefServiceClient) mutate(ctx context.Context, m *ChefServiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChefServiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChefServiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChefServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChefServiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ChefService mutation op: %q", m.Op())
	}
}

// ComponentClient is a client for the Component schema.
type ComponentClient struct {
	config
}

// NewComponentClient returns a client for the Component from the given config.
func NewComponentClient(c config) *ComponentClient {
	return &ComponentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `component.Hooks(f(g(h())))`.
func (c *ComponentClient) Use(hooks ...Hook) {
	c.hooks.Component = append(c.hooks.Component, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `component.Intercept(f(g(h())))`.
func (c *ComponentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Component = append(c.inters.Component, interceptors...)
}

// Create returns a builder for creating a Component entity.
func (c *ComponentClient) Create() *ComponentCreate {
	mutation := newComponentMutation(c.config, OpCreate)
	return &ComponentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Component entities.
func (c *ComponentClient) CreateBulk(builders ...*ComponentCreate) *ComponentCreateBulk {
	return &ComponentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComponentClient) MapCreateBulk(slice any, setFunc func(*ComponentCreate, int)) *ComponentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComponentCreateBulk{err: fmt.Errorf("calling to ComponentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComponentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComponentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Component.
func (c *ComponentClient) Update() *ComponentUpdate {
	mutation := newComponentMutation(c.config, OpUpdate)
	return &ComponentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComponentClient) UpdateOne(_m *Component) *ComponentUpdateOne {
	mutation := newComponentMutation(c.config, OpUpdateOne, withComponent(_m))
	return &ComponentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComponentClient) UpdateOneID(id uuid.UUID) *ComponentUpdateOne {
	mutation := newComponentMutation(c.config, OpUpdateOne, withComponentID(id))
	return &ComponentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Component.
func (c *ComponentClient) Delete() *ComponentDelete {
	mutation := newComponentMutation(c.config, OpDelete)
	return &ComponentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComponentClient) DeleteOne(_m *Component) *ComponentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComponentClient) DeleteOneID(id uuid.UUID) *ComponentDeleteOne {
	builder := c.Delete().Where(component.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComponentDeleteOne{builder}
}

// Query returns a query builder for Component.
func (c *ComponentClient) Query() *ComponentQuery {
	return &ComponentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComponent},
		inters: c.Interceptors(),
	}
}

// Get returns a Component entity by its id.
func (c *ComponentClient) Get(ctx context.Context, id uuid.UUID) (*Component, error) {
	return c.Query().Where(component.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComponentClient) GetX(ctx context.Context, id uuid.UUID) *Component {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBag queries the bag edge of a Component.
func (c *ComponentClient) QueryBag(_m *Component) *BloodBagQuery {
	query := (&BloodBagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(component.Table, component.FieldID, id),
			sqlgraph.To(bloodbag.Table, bloodbag.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, component.BagTable, component.BagColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ComponentClient) Hooks() []Hook {
	return c.hooks.Component
}

// Interceptors returns the client interceptors.
func (c *ComponentClient) Interceptors() []Interceptor {
	return c.inters.Component
}

func (c *ComponentClient) mutate(ctx context.Context, m *ComponentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComponentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComponentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComponentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComponentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Component mutation op: %q", m.Op())
	}
}

// DistributionClient is a client for the Distribution schema.
type DistributionClient struct {
	config
}

// NewDistributionClient returns a client for the Distribution from the given config.
func NewDistributionClient(c config) *DistributionClient {
	return &DistributionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `distribution.Hooks(f(g(h())))`.
func (c *DistributionClient) Use(hooks ...Hook) {
	c.hooks.Distribution = append(c.hooks.Distribution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `distribution.Intercept(f(g(h())))`.
func (c *DistributionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Distribution = append(c.inters.Distribution, interceptors...)
}

// Create returns a builder for creating a Distribution entity.
func (c *DistributionClient) Create() *DistributionCreate {
	mutation := newDistributionMutation(c.config, OpCreate)
	return &DistributionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Distribution entities.
func (c *DistributionClient) CreateBulk(builders ...*DistributionCreate) *DistributionCreateBulk {
	return &DistributionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DistributionClient) MapCreateBulk(slice any, setFunc func(*DistributionCreate, int)) *DistributionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DistributionCreateBulk{err: fmt.Errorf("calling to DistributionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DistributionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DistributionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Distribution.
func (c *DistributionClient) Update() *DistributionUpdate {
	mutation := newDistributionMutation(c.config, OpUpdate)
	return &DistributionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DistributionClient) UpdateOne(_m *Distribution) *DistributionUpdateOne {
	mutation := newDistributionMutation(c.config, OpUpdateOne, withDistribution(_m))
	return &DistributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DistributionClient) UpdateOneID(id uuid.UUID) *DistributionUpdateOne {
	mutation := newDistributionMutation(c.config, OpUpdateOne, withDistributionID(id))
	return &DistributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Distribution.
func (c *DistributionClient) Delete() *DistributionDelete {
	mutation := newDistributionMutation(c.config, OpDelete)
	return &DistributionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DistributionClient) DeleteOne(_m *Distribution) *DistributionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DistributionClient) DeleteOneID(id uuid.UUID) *DistributionDeleteOne {
	builder := c.Delete().Where(distribution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DistributionDeleteOne{builder}
}

// Query returns a query builder for Distribution.
func (c *DistributionClient) Query() *DistributionQuery {
	return &DistributionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDistribution},
		inters: c.Interceptors(),
	}
}

// Get returns a Distribution entity by its id.
func (c *DistributionClient) Get(ctx context.Context, id uuid.UUID) (*Distribution, error) {
	return c.Query().Where(distribution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DistributionClient) GetX(ctx context.Context, id uuid.UUID) *Distribution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBag queries the bag edge of a Distribution.
func (c *DistributionClient) QueryBag(_m *Distribution) *BloodBagQuery {
	query := (&BloodBagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distribution.Table, distribution.FieldID, id),
			sqlgraph.To(bloodbag.Table, bloodbag.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, distribution.BagTable, distribution.BagColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DistributionClient) Hooks() []Hook {
	return c.hooks.Distribution
}

// Interceptors returns the client interceptors.
func (c *DistributionClient) Interceptors() []Interceptor {
	return c.inters.Distribution
}

func (c *DistributionClient) mutate(ctx context.Context, m *DistributionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DistributionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DistributionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DistributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DistributionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Distribution mutation op: %q", m.Op())
	}
}

// YearlyStatClient is a client for the YearlyStat schema.
type YearlyStatClient struct {
	config
}

// NewYearlyStatClient returns a client for the YearlyStat from the given config.
func NewYearlyStatClient(c config) *YearlyStatClient {
	return &YearlyStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `yearlystat.Hooks(f(g(h())))`.
func (c *YearlyStatClient) Use(hooks ...Hook) {
	c.hooks.YearlyStat = append(c.hooks.YearlyStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `yearlystat.Intercept(f(g(h())))`.
func (c *YearlyStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.YearlyStat = append(c.inters.YearlyStat, interceptors...)
}

// Create returns a builder for creating a YearlyStat entity.
func (c *YearlyStatClient) Create() *YearlyStatCreate {
	mutation := newYearlyStatMutation(c.config, OpCreate)
	return &YearlyStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of YearlyStat entities.
func (c *YearlyStatClient) CreateBulk(builders ...*YearlyStatCreate) *YearlyStatCreateBulk {
	return &YearlyStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *YearlyStatClient) MapCreateBulk(slice any, setFunc func(*YearlyStatCreate, int)) *YearlyStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &YearlyStatCreateBulk{err: fmt.Errorf("calling to YearlyStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*YearlyStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &YearlyStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for YearlyStat.
func (c *YearlyStatClient) Update() *YearlyStatUpdate {
	mutation := newYearlyStatMutation(c.config, OpUpdate)
	return &YearlyStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *YearlyStatClient) UpdateOne(_m *YearlyStat) *YearlyStatUpdateOne {
	mutation := newYearlyStatMutation(c.config, OpUpdateOne, withYearlyStat(_m))
	return &YearlyStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *YearlyStatClient) UpdateOneID(id uuid.UUID) *YearlyStatUpdateOne {
	mutation := newYearlyStatMutation(c.config, OpUpdateOne, withYearlyStatID(id))
	return &YearlyStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for YearlyStat.
func (c *YearlyStatClient) Delete() *YearlyStatDelete {
	mutation := newYearlyStatMutation(c.config, OpDelete)
	return &YearlyStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *YearlyStatClient) DeleteOne(_m *YearlyStat) *YearlyStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *YearlyStatClient) DeleteOneID(id uuid.UUID) *YearlyStatDeleteOne {
	builder := c.Delete().Where(yearlystat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &YearlyStatDeleteOne{builder}
}

// Query returns a query builder for YearlyStat.
func (c *YearlyStatClient) Query() *YearlyStatQuery {
	return &YearlyStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeYearlyStat},
		inters: c.Interceptors(),
	}
}

// Get returns a YearlyStat entity by its id.
func (c *YearlyStatClient) Get(ctx context.Context, id uuid.UUID) (*YearlyStat, error) {
	return c.Query().Where(yearlystat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *YearlyStatClient) GetX(ctx context.Context, id uuid.UUID) *YearlyStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *YearlyStatClient) Hooks() []Hook {
	return c.hooks.YearlyStat
}

// Interceptors returns the client interceptors.
func (c *YearlyStatClient) Interceptors() []Interceptor {
	return c.inters.YearlyStat
}

func (c *YearlyStatClient) mutate(ctx context.Context, m *YearlyStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&YearlyStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&YearlyStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&YearlyStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&YearlyStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown YearlyStat mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Biologist, BloodBag, ChefService, Component, Distribution, YearlyStat []ent.Hook
	}
	inters struct {
		Biologist, BloodBag, ChefService, Component, Distribution,
		YearlyStat []ent.Interceptor
	}
)
