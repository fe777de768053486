// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/coachsession"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/interventionevent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/llmrequestevent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/signalevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CoachSession is the client for interacting with the CoachSession builders.
	CoachSession *CoachSessionClient
	// InterventionEvent is the client for interacting with the InterventionEvent builders.
	InterventionEvent *InterventionEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// SignalEvent is the client for interacting with the SignalEvent builders.
	SignalEvent *SignalEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CoachSession = NewCoachSessionClient(c.config)
	c.InterventionEvent = NewInterventionEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.SignalEvent = NewSignalEventClient(c.config)
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
		CoachSession:      NewCoachSessionClient(cfg),
		InterventionEvent: NewInterventionEventClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		SignalEvent:       NewSignalEventClient(cfg),
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
		CoachSession:      NewCoachSessionClient(cfg),
		InterventionEvent: NewInterventionEventClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		SignalEvent:       NewSignalEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CoachSession.
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
	c.CoachSession.Use(hooks...)
	c.InterventionEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.SignalEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CoachSession.Intercept(interceptors...)
	c.InterventionEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.SignalEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CoachSessionMutation:
		return c.CoachSession.mutate(ctx, m)
	case *InterventionEventMutation:
		return c.InterventionEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *SignalEventMutation:
		return c.SignalEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CoachSessionClient is a client for the CoachSession schema.
type CoachSessionClient struct {
	config
}

// NewCoachSessionClient returns a client for the CoachSession from the given config.
func NewCoachSessionClient(c config) *CoachSessionClient {
	return &CoachSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coachsession.Hooks(f(g(h())))`.
func (c *CoachSessionClient) Use(hooks ...Hook) {
	c.hooks.CoachSession = append(c.hooks.CoachSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coachsession.Intercept(f(g(h())))`.
func (c *CoachSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoachSession = append(c.inters.CoachSession, interceptors...)
}

// Create returns a builder for creating a CoachSession entity.
func (c *CoachSessionClient) Create() *CoachSessionCreate {
	mutation := newCoachSessionMutation(c.config, OpCreate)
	return &CoachSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoachSession entities.
func (c *CoachSessionClient) CreateBulk(builders ...*CoachSessionCreate) *CoachSessionCreateBulk {
	return &CoachSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoachSessionClient) MapCreateBulk(slice any, setFunc func(*CoachSessionCreate, int)) *CoachSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoachSessionCreateBulk{err: fmt.Errorf("calling to CoachSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoachSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoachSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoachSession.
func (c *CoachSessionClient) Update() *CoachSessionUpdate {
	mutation := newCoachSessionMutation(c.config, OpUpdate)
	return &CoachSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoachSessionClient) UpdateOne(_m *CoachSession) *CoachSessionUpdateOne {
	mutation := newCoachSessionMutation(c.config, OpUpdateOne, withCoachSession(_m))
	return &CoachSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoachSessionClient) UpdateOneID(id int) *CoachSessionUpdateOne {
	mutation := newCoachSessionMutation(c.config, OpUpdateOne, withCoachSessionID(id))
	return &CoachSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoachSession.
func (c *CoachSessionClient) Delete() *CoachSessionDelete {
	mutation := newCoachSessionMutation(c.config, OpDelete)
	return &CoachSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoachSessionClient) DeleteOne(_m *CoachSession) *CoachSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoachSessionClient) DeleteOneID(id int) *CoachSessionDeleteOne {
	builder := c.Delete().Where(coachsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoachSessionDeleteOne{builder}
}

// Query returns a query builder for CoachSession.
func (c *CoachSessionClient) Query() *CoachSessionQuery {
	return &CoachSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoachSession},
		inters: c.Interceptors(),
	}
}

// Get returns a CoachSession entity by its id.
func (c *CoachSessionClient) Get(ctx context.Context, id int) (*CoachSession, error) {
	return c.Query().Where(coachsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoachSessionClient) GetX(ctx context.Context, id int) *CoachSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CoachSessionClient) Hooks() []Hook {
	return c.hooks.CoachSession
}

// Interceptors returns the client interceptors.
func (c *CoachSessionClient) Interceptors() []Interceptor {
	return c.inters.CoachSession
}

func (c *CoachSessionClient) mutate(ctx context.Context, m *CoachSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoachSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoachSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoachSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoachSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoachSession mutation op: %q", m.Op())
	}
}

// InterventionEventClient is a client for the InterventionEvent schema.
type InterventionEventClient struct {
	config
}

// NewInterventionEventClient returns a client for the InterventionEvent from the given config.
func NewInterventionEventClient(c config) *InterventionEventClient {
	return &InterventionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interventionevent.Hooks(f(g(h())))`.
func (c *InterventionEventClient) Use(hooks ...Hook) {
	c.hooks.InterventionEvent = append(c.hooks.InterventionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interventionevent.Intercept(f(g(h())))`.
func (c *InterventionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterventionEvent = append(c.inters.InterventionEvent, interceptors...)
}

// Create returns a builder for creating a InterventionEvent entity.
func (c *InterventionEventClient) Create() *InterventionEventCreate {
	mutation := newInterventionEventMutation(c.config, OpCreate)
	return &InterventionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterventionEvent entities.
func (c *InterventionEventClient) CreateBulk(builders ...*InterventionEventCreate) *InterventionEventCreateBulk {
	return &InterventionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterventionEventClient) MapCreateBulk(slice any, setFunc func(*InterventionEventCreate, int)) *InterventionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterventionEventCreateBulk{err: fmt.Errorf("calling to InterventionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterventionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterventionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterventionEvent.
func (c *InterventionEventClient) Update() *InterventionEventUpdate {
	mutation := newInterventionEventMutation(c.config, OpUpdate)
	return &InterventionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterventionEventClient) UpdateOne(_m *InterventionEvent) *InterventionEventUpdateOne {
	mutation := newInterventionEventMutation(c.config, OpUpdateOne, withInterventionEvent(_m))
	return &InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterventionEventClient) UpdateOneID(id int) *InterventionEventUpdateOne {
	mutation := newInterventionEventMutation(c.config, OpUpdateOne, withInterventionEventID(id))
	return &InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterventionEvent.
func (c *InterventionEventClient) Delete() *InterventionEventDelete {
	mutation := newInterventionEventMutation(c.config, OpDelete)
	return &InterventionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterventionEventClient) DeleteOne(_m *InterventionEvent) *InterventionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterventionEventClient) DeleteOneID(id int) *InterventionEventDeleteOne {
	builder := c.Delete().Where(interventionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterventionEventDeleteOne{builder}
}

// Query returns a query builder for InterventionEvent.
func (c *InterventionEventClient) Query() *InterventionEventQuery {
	return &InterventionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterventionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InterventionEvent entity by its id.
func (c *InterventionEventClient) Get(ctx context.Context, id int) (*InterventionEvent, error) {
	return c.Query().Where(interventionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterventionEventClient) GetX(ctx context.Context, id int) *InterventionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterventionEventClient) Hooks() []Hook {
	return c.hooks.InterventionEvent
}

// Interceptors returns the client interceptors.
func (c *InterventionEventClient) Interceptors() []Interceptor {
	return c.inters.InterventionEvent
}

func (c *InterventionEventClient) mutate(ctx context.Context, m *InterventionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterventionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterventionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterventionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterventionEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// SignalEventClient is a client for the SignalEvent schema.
type SignalEventClient struct {
	config
}

// NewSignalEventClient returns a client for the SignalEvent from the given config.
func NewSignalEventClient(c config) *SignalEventClient {
	return &SignalEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `signalevent.Hooks(f(g(h())))`.
func (c *SignalEventClient) Use(hooks ...Hook) {
	c.hooks.SignalEvent = append(c.hooks.SignalEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `signalevent.Intercept(f(g(h())))`.
func (c *SignalEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SignalEvent = append(c.inters.SignalEvent, interceptors...)
}

// Create returns a builder for creating a SignalEvent entity.
func (c *SignalEventClient) Create() *SignalEventCreate {
	mutation := newSignalEventMutation(c.config, OpCreate)
	return &SignalEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SignalEvent entities.
func (c *SignalEventClient) CreateBulk(builders ...*SignalEventCreate) *SignalEventCreateBulk {
	return &SignalEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SignalEventClient) MapCreateBulk(slice any, setFunc func(*SignalEventCreate, int)) *SignalEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SignalEventCreateBulk{err: fmt.Errorf("calling to SignalEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SignalEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SignalEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SignalEvent.
func (c *SignalEventClient) Update() *SignalEventUpdate {
	mutation := newSignalEventMutation(c.config, OpUpdate)
	return &SignalEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SignalEventClient) UpdateOne(_m *SignalEvent) *SignalEventUpdateOne {
	mutation := newSignalEventMutation(c.config, OpUpdateOne, withSignalEvent(_m))
	return &SignalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SignalEventClient) UpdateOneID(id int) *SignalEventUpdateOne {
	mutation := newSignalEventMutation(c.config, OpUpdateOne, withSignalEventID(id))
	return &SignalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SignalEvent.
func (c *SignalEventClient) Delete() *SignalEventDelete {
	mutation := newSignalEventMutation(c.config, OpDelete)
	return &SignalEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SignalEventClient) DeleteOne(_m *SignalEvent) *SignalEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SignalEventClient) DeleteOneID(id int) *SignalEventDeleteOne {
	builder := c.Delete().Where(signalevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SignalEventDeleteOne{builder}
}

// Query returns a query builder for SignalEvent.
func (c *SignalEventClient) Query() *SignalEventQuery {
	return &SignalEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSignalEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SignalEvent entity by its id.
func (c *SignalEventClient) Get(ctx context.Context, id int) (*SignalEvent, error) {
	return c.Query().Where(signalevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SignalEventClient) GetX(ctx context.Context, id int) *SignalEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SignalEventClient) Hooks() []Hook {
	return c.hooks.SignalEvent
}

// Interceptors returns the client interceptors.
func (c *SignalEventClient) Interceptors() []Interceptor {
	return c.inters.SignalEvent
}

func (c *SignalEventClient) mutate(ctx context.Context, m *SignalEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SignalEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SignalEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SignalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SignalEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SignalEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CoachSession, InterventionEvent, LLMRequestEvent, SignalEvent []ent.Hook
	}
	inters struct {
		CoachSession, InterventionEvent, LLMRequestEvent, SignalEvent []ent.Interceptor
	}
)
