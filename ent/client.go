// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/cadence/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/ent/appliedrecommendation"
	"github.com/abhisek/cadence/ent/behavioralevent"
	"github.com/abhisek/cadence/ent/behavioralinsight"
	"github.com/abhisek/cadence/ent/behavioralpattern"
	"github.com/abhisek/cadence/ent/burnoutassessment"
	"github.com/abhisek/cadence/ent/learningprofile"
	"github.com/abhisek/cadence/ent/loadmetric"
	"github.com/abhisek/cadence/ent/mission"
	"github.com/abhisek/cadence/ent/performancemetric"
	"github.com/abhisek/cadence/ent/recommendation"
	"github.com/abhisek/cadence/ent/reviewevent"
	"github.com/abhisek/cadence/ent/studysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdaptationEvent is the client for interacting with the AdaptationEvent builders.
	AdaptationEvent *AdaptationEventClient
	// AppliedRecommendation is the client for interacting with the AppliedRecommendation builders.
	AppliedRecommendation *AppliedRecommendationClient
	// BehavioralEvent is the client for interacting with the BehavioralEvent builders.
	BehavioralEvent *BehavioralEventClient
	// BehavioralInsight is the client for interacting with the BehavioralInsight builders.
	BehavioralInsight *BehavioralInsightClient
	// BehavioralPattern is the client for interacting with the BehavioralPattern builders.
	BehavioralPattern *BehavioralPatternClient
	// BurnoutAssessment is the client for interacting with the BurnoutAssessment builders.
	BurnoutAssessment *BurnoutAssessmentClient
	// LearningProfile is the client for interacting with the LearningProfile builders.
	LearningProfile *LearningProfileClient
	// LoadMetric is the client for interacting with the LoadMetric builders.
	LoadMetric *LoadMetricClient
	// Mission is the client for interacting with the Mission builders.
	Mission *MissionClient
	// PerformanceMetric is the client for interacting with the PerformanceMetric builders.
	PerformanceMetric *PerformanceMetricClient
	// Recommendation is the client for interacting with the Recommendation builders.
	Recommendation *RecommendationClient
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
	// StudySession is the client for interacting with the StudySession builders.
	StudySession *StudySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdaptationEvent = NewAdaptationEventClient(c.config)
	c.AppliedRecommendation = NewAppliedRecommendationClient(c.config)
	c.BehavioralEvent = NewBehavioralEventClient(c.config)
	c.BehavioralInsight = NewBehavioralInsightClient(c.config)
	c.BehavioralPattern = NewBehavioralPatternClient(c.config)
	c.BurnoutAssessment = NewBurnoutAssessmentClient(c.config)
	c.LearningProfile = NewLearningProfileClient(c.config)
	c.LoadMetric = NewLoadMetricClient(c.config)
	c.Mission = NewMissionClient(c.config)
	c.PerformanceMetric = NewPerformanceMetricClient(c.config)
	c.Recommendation = NewRecommendationClient(c.config)
	c.ReviewEvent = NewReviewEventClient(c.config)
	c.StudySession = NewStudySessionClient(c.config)
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
		ctx:                   ctx,
		config:                cfg,
		AdaptationEvent:       NewAdaptationEventClient(cfg),
		AppliedRecommendation: NewAppliedRecommendationClient(cfg),
		BehavioralEvent:       NewBehavioralEventClient(cfg),
		BehavioralInsight:     NewBehavioralInsightClient(cfg),
		BehavioralPattern:     NewBehavioralPatternClient(cfg),
		BurnoutAssessment:     NewBurnoutAssessmentClient(cfg),
		LearningProfile:       NewLearningProfileClient(cfg),
		LoadMetric:            NewLoadMetricClient(cfg),
		Mission:               NewMissionClient(cfg),
		PerformanceMetric:     NewPerformanceMetricClient(cfg),
		Recommendation:        NewRecommendationClient(cfg),
		ReviewEvent:           NewReviewEventClient(cfg),
		StudySession:          NewStudySessionClient(cfg),
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
		ctx:                   ctx,
		config:                cfg,
		AdaptationEvent:       NewAdaptationEventClient(cfg),
		AppliedRecommendation: NewAppliedRecommendationClient(cfg),
		BehavioralEvent:       NewBehavioralEventClient(cfg),
		BehavioralInsight:     NewBehavioralInsightClient(cfg),
		BehavioralPattern:     NewBehavioralPatternClient(cfg),
		BurnoutAssessment:     NewBurnoutAssessmentClient(cfg),
		LearningProfile:       NewLearningProfileClient(cfg),
		LoadMetric:            NewLoadMetricClient(cfg),
		Mission:               NewMissionClient(cfg),
		PerformanceMetric:     NewPerformanceMetricClient(cfg),
		Recommendation:        NewRecommendationClient(cfg),
		ReviewEvent:           NewReviewEventClient(cfg),
		StudySession:          NewStudySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdaptationEvent.
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
		c.AdaptationEvent, c.AppliedRecommendation, c.BehavioralEvent,
		c.BehavioralInsight, c.BehavioralPattern, c.BurnoutAssessment,
		c.LearningProfile, c.LoadMetric, c.Mission, c.PerformanceMetric,
		c.Recommendation, c.ReviewEvent, c.StudySession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdaptationEvent, c.AppliedRecommendation, c.BehavioralEvent,
		c.BehavioralInsight, c.BehavioralPattern, c.BurnoutAssessment,
		c.LearningProfile, c.LoadMetric, c.Mission, c.PerformanceMetric,
		c.Recommendation, c.ReviewEvent, c.StudySession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdaptationEventMutation:
		return c.AdaptationEvent.mutate(ctx, m)
	case *AppliedRecommendationMutation:
		return c.AppliedRecommendation.mutate(ctx, m)
	case *BehavioralEventMutation:
		return c.BehavioralEvent.mutate(ctx, m)
	case *BehavioralInsightMutation:
		return c.BehavioralInsight.mutate(ctx, m)
	case *BehavioralPatternMutation:
		return c.BehavioralPattern.mutate(ctx, m)
	case *BurnoutAssessmentMutation:
		return c.BurnoutAssessment.mutate(ctx, m)
	case *LearningProfileMutation:
		return c.LearningProfile.mutate(ctx, m)
	case *LoadMetricMutation:
		return c.LoadMetric.mutate(ctx, m)
	case *MissionMutation:
		return c.Mission.mutate(ctx, m)
	case *PerformanceMetricMutation:
		return c.PerformanceMetric.mutate(ctx, m)
	case *RecommendationMutation:
		return c.Recommendation.mutate(ctx, m)
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	case *StudySessionMutation:
		return c.StudySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdaptationEventClient is a client for the AdaptationEvent schema.
type AdaptationEventClient struct {
	config
}

// NewAdaptationEventClient returns a client for the AdaptationEvent from the given config.
func NewAdaptationEventClient(c config) *AdaptationEventClient {
	return &AdaptationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adaptationevent.Hooks(f(g(h())))`.
func (c *AdaptationEventClient) Use(hooks ...Hook) {
	c.hooks.AdaptationEvent = append(c.hooks.AdaptationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adaptationevent.Intercept(f(g(h())))`.
func (c *AdaptationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdaptationEvent = append(c.inters.AdaptationEvent, interceptors...)
}

// Create returns a builder for creating a AdaptationEvent entity.
func (c *AdaptationEventClient) Create() *AdaptationEventCreate {
	mutation := newAdaptationEventMutation(c.config, OpCreate)
	return &AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdaptationEvent entities.
func (c *AdaptationEventClient) CreateBulk(builders ...*AdaptationEventCreate) *AdaptationEventCreateBulk {
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdaptationEventClient) MapCreateBulk(slice any, setFunc func(*AdaptationEventCreate, int)) *AdaptationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdaptationEventCreateBulk{err: fmt.Errorf("calling to AdaptationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdaptationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdaptationEvent.
func (c *AdaptationEventClient) Update() *AdaptationEventUpdate {
	mutation := newAdaptationEventMutation(c.config, OpUpdate)
	return &AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdaptationEventClient) UpdateOne(_m *AdaptationEvent) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEvent(_m))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdaptationEventClient) UpdateOneID(id int) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEventID(id))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdaptationEvent.
func (c *AdaptationEventClient) Delete() *AdaptationEventDelete {
	mutation := newAdaptationEventMutation(c.config, OpDelete)
	return &AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdaptationEventClient) DeleteOne(_m *AdaptationEvent) *AdaptationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdaptationEventClient) DeleteOneID(id int) *AdaptationEventDeleteOne {
	builder := c.Delete().Where(adaptationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdaptationEventDeleteOne{builder}
}

// Query returns a query builder for AdaptationEvent.
func (c *AdaptationEventClient) Query() *AdaptationEventQuery {
	return &AdaptationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdaptationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AdaptationEvent entity by its id.
func (c *AdaptationEventClient) Get(ctx context.Context, id int) (*AdaptationEvent, error) {
	return c.Query().Where(adaptationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdaptationEventClient) GetX(ctx context.Context, id int) *AdaptationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdaptationEventClient) Hooks() []Hook {
	return c.hooks.AdaptationEvent
}

// Interceptors returns the client interceptors.
func (c *AdaptationEventClient) Interceptors() []Interceptor {
	return c.inters.AdaptationEvent
}

func (c *AdaptationEventClient) mutate(ctx context.Context, m *AdaptationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdaptationEvent mutation op: %q", m.Op())
	}
}

// AppliedRecommendationClient is a client for the AppliedRecommendation schema.
type AppliedRecommendationClient struct {
	config
}

// NewAppliedRecommendationClient returns a client for the AppliedRecommendation from the given config.
func NewAppliedRecommendationClient(c config) *AppliedRecommendationClient {
	return &AppliedRecommendationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appliedrecommendation.Hooks(f(g(h())))`.
func (c *AppliedRecommendationClient) Use(hooks ...Hook) {
	c.hooks.AppliedRecommendation = append(c.hooks.AppliedRecommendation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appliedrecommendation.Intercept(f(g(h())))`.
func (c *AppliedRecommendationClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppliedRecommendation = append(c.inters.AppliedRecommendation, interceptors...)
}

// Create returns a builder for creating a AppliedRecommendation entity.
func (c *AppliedRecommendationClient) Create() *AppliedRecommendationCreate {
	mutation := newAppliedRecommendationMutation(c.config, OpCreate)
	return &AppliedRecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppliedRecommendation entities.
func (c *AppliedRecommendationClient) CreateBulk(builders ...*AppliedRecommendationCreate) *AppliedRecommendationCreateBulk {
	return &AppliedRecommendationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppliedRecommendationClient) MapCreateBulk(slice any, setFunc func(*AppliedRecommendationCreate, int)) *AppliedRecommendationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppliedRecommendationCreateBulk{err: fmt.Errorf("calling to AppliedRecommendationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppliedRecommendationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppliedRecommendationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppliedRecommendation.
func (c *AppliedRecommendationClient) Update() *AppliedRecommendationUpdate {
	mutation := newAppliedRecommendationMutation(c.config, OpUpdate)
	return &AppliedRecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppliedRecommendationClient) UpdateOne(_m *AppliedRecommendation) *AppliedRecommendationUpdateOne {
	mutation := newAppliedRecommendationMutation(c.config, OpUpdateOne, withAppliedRecommendation(_m))
	return &AppliedRecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppliedRecommendationClient) UpdateOneID(id string) *AppliedRecommendationUpdateOne {
	mutation := newAppliedRecommendationMutation(c.config, OpUpdateOne, withAppliedRecommendationID(id))
	return &AppliedRecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppliedRecommendation.
func (c *AppliedRecommendationClient) Delete() *AppliedRecommendationDelete {
	mutation := newAppliedRecommendationMutation(c.config, OpDelete)
	return &AppliedRecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppliedRecommendationClient) DeleteOne(_m *AppliedRecommendation) *AppliedRecommendationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppliedRecommendationClient) DeleteOneID(id string) *AppliedRecommendationDeleteOne {
	builder := c.Delete().Where(appliedrecommendation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppliedRecommendationDeleteOne{builder}
}

// Query returns a query builder for AppliedRecommendation.
func (c *AppliedRecommendationClient) Query() *AppliedRecommendationQuery {
	return &AppliedRecommendationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppliedRecommendation},
		inters: c.Interceptors(),
	}
}

// Get returns a AppliedRecommendation entity by its id.
func (c *AppliedRecommendationClient) Get(ctx context.Context, id string) (*AppliedRecommendation, error) {
	return c.Query().Where(appliedrecommendation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppliedRecommendationClient) GetX(ctx context.Context, id string) *AppliedRecommendation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppliedRecommendationClient) Hooks() []Hook {
	return c.hooks.AppliedRecommendation
}

// Interceptors returns the client interceptors.
func (c *AppliedRecommendationClient) Interceptors() []Interceptor {
	return c.inters.AppliedRecommendation
}

func (c *AppliedRecommendationClient) mutate(ctx context.Context, m *AppliedRecommendationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppliedRecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppliedRecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppliedRecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppliedRecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AppliedRecommendation mutation op: %q", m.Op())
	}
}

// BehavioralEventClient is a client for the BehavioralEvent schema.
type BehavioralEventClient struct {
	config
}

// NewBehavioralEventClient returns a client for the BehavioralEvent from the given config.
func NewBehavioralEventClient(c config) *BehavioralEventClient {
	return &BehavioralEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `behavioralevent.Hooks(f(g(h())))`.
func (c *BehavioralEventClient) Use(hooks ...Hook) {
	c.hooks.BehavioralEvent = append(c.hooks.BehavioralEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `behavioralevent.Intercept(f(g(h())))`.
func (c *BehavioralEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BehavioralEvent = append(c.inters.BehavioralEvent, interceptors...)
}

// Create returns a builder for creating a BehavioralEvent entity.
func (c *BehavioralEventClient) Create() *BehavioralEventCreate {
	mutation := newBehavioralEventMutation(c.config, OpCreate)
	return &BehavioralEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BehavioralEvent entities.
func (c *BehavioralEventClient) CreateBulk(builders ...*BehavioralEventCreate) *BehavioralEventCreateBulk {
	return &BehavioralEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BehavioralEventClient) MapCreateBulk(slice any, setFunc func(*BehavioralEventCreate, int)) *BehavioralEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BehavioralEventCreateBulk{err: fmt.Errorf("calling to BehavioralEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BehavioralEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BehavioralEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BehavioralEvent.
func (c *BehavioralEventClient) Update() *BehavioralEventUpdate {
	mutation := newBehavioralEventMutation(c.config, OpUpdate)
	return &BehavioralEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BehavioralEventClient) UpdateOne(_m *BehavioralEvent) *BehavioralEventUpdateOne {
	mutation := newBehavioralEventMutation(c.config, OpUpdateOne, withBehavioralEvent(_m))
	return &BehavioralEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BehavioralEventClient) UpdateOneID(id int) *BehavioralEventUpdateOne {
	mutation := newBehavioralEventMutation(c.config, OpUpdateOne, withBehavioralEventID(id))
	return &BehavioralEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BehavioralEvent.
func (c *BehavioralEventClient) Delete() *BehavioralEventDelete {
	mutation := newBehavioralEventMutation(c.config, OpDelete)
	return &BehavioralEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BehavioralEventClient) DeleteOne(_m *BehavioralEvent) *BehavioralEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BehavioralEventClient) DeleteOneID(id int) *BehavioralEventDeleteOne {
	builder := c.Delete().Where(behavioralevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BehavioralEventDeleteOne{builder}
}

// Query returns a query builder for BehavioralEvent.
func (c *BehavioralEventClient) Query() *BehavioralEventQuery {
	return &BehavioralEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBehavioralEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BehavioralEvent entity by its id.
func (c *BehavioralEventClient) Get(ctx context.Context, id int) (*BehavioralEvent, error) {
	return c.Query().Where(behavioralevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BehavioralEventClient) GetX(ctx context.Context, id int) *BehavioralEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BehavioralEventClient) Hooks() []Hook {
	return c.hooks.BehavioralEvent
}

// Interceptors returns the client interceptors.
func (c *BehavioralEventClient) Interceptors() []Interceptor {
	return c.inters.BehavioralEvent
}

func (c *BehavioralEventClient) mutate(ctx context.Context, m *BehavioralEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BehavioralEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BehavioralEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BehavioralEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BehavioralEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BehavioralEvent mutation op: %q", m.Op())
	}
}

// BehavioralInsightClient is a client for the BehavioralInsight schema.
type BehavioralInsightClient struct {
	config
}

// NewBehavioralInsightClient returns a client for the BehavioralInsight from the given config.
func NewBehavioralInsightClient(c config) *BehavioralInsightClient {
	return &BehavioralInsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `behavioralinsight.Hooks(f(g(h())))`.
func (c *BehavioralInsightClient) Use(hooks ...Hook) {
	c.hooks.BehavioralInsight = append(c.hooks.BehavioralInsight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `behavioralinsight.Intercept(f(g(h())))`.
func (c *BehavioralInsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.BehavioralInsight = append(c.inters.BehavioralInsight, interceptors...)
}

// Create returns a builder for creating a BehavioralInsight entity.
func (c *BehavioralInsightClient) Create() *BehavioralInsightCreate {
	mutation := newBehavioralInsightMutation(c.config, OpCreate)
	return &BehavioralInsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BehavioralInsight entities.
func (c *BehavioralInsightClient) CreateBulk(builders ...*BehavioralInsightCreate) *BehavioralInsightCreateBulk {
	return &BehavioralInsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BehavioralInsightClient) MapCreateBulk(slice any, setFunc func(*BehavioralInsightCreate, int)) *BehavioralInsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BehavioralInsightCreateBulk{err: fmt.Errorf("calling to BehavioralInsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BehavioralInsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BehavioralInsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BehavioralInsight.
func (c *BehavioralInsightClient) Update() *BehavioralInsightUpdate {
	mutation := newBehavioralInsightMutation(c.config, OpUpdate)
	return &BehavioralInsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BehavioralInsightClient) UpdateOne(_m *BehavioralInsight) *BehavioralInsightUpdateOne {
	mutation := newBehavioralInsightMutation(c.config, OpUpdateOne, withBehavioralInsight(_m))
	return &BehavioralInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BehavioralInsightClient) UpdateOneID(id string) *BehavioralInsightUpdateOne {
	mutation := newBehavioralInsightMutation(c.config, OpUpdateOne, withBehavioralInsightID(id))
	return &BehavioralInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BehavioralInsight.
func (c *BehavioralInsightClient) Delete() *BehavioralInsightDelete {
	mutation := newBehavioralInsightMutation(c.config, OpDelete)
	return &BehavioralInsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BehavioralInsightClient) DeleteOne(_m *BehavioralInsight) *BehavioralInsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BehavioralInsightClient) DeleteOneID(id string) *BehavioralInsightDeleteOne {
	builder := c.Delete().Where(behavioralinsight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BehavioralInsightDeleteOne{builder}
}

// Query returns a query builder for BehavioralInsight.
func (c *BehavioralInsightClient) Query() *BehavioralInsightQuery {
	return &BehavioralInsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBehavioralInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a BehavioralInsight entity by its id.
func (c *BehavioralInsightClient) Get(ctx context.Context, id string) (*BehavioralInsight, error) {
	return c.Query().Where(behavioralinsight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BehavioralInsightClient) GetX(ctx context.Context, id string) *BehavioralInsight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BehavioralInsightClient) Hooks() []Hook {
	return c.hooks.BehavioralInsight
}

// Interceptors returns the client interceptors.
func (c *BehavioralInsightClient) Interceptors() []Interceptor {
	return c.inters.BehavioralInsight
}

func (c *BehavioralInsightClient) mutate(ctx context.Context, m *BehavioralInsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BehavioralInsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BehavioralInsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BehavioralInsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BehavioralInsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BehavioralInsight mutation op: %q", m.Op())
	}
}

// BehavioralPatternClient is a client for the BehavioralPattern schema.
type BehavioralPatternClient struct {
	config
}

// NewBehavioralPatternClient returns a client for the BehavioralPattern from the given config.
func NewBehavioralPatternClient(c config) *BehavioralPatternClient {
	return &BehavioralPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `behavioralpattern.Hooks(f(g(h())))`.
func (c *BehavioralPatternClient) Use(hooks ...Hook) {
	c.hooks.BehavioralPattern = append(c.hooks.BehavioralPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `behavioralpattern.Intercept(f(g(h())))`.
func (c *BehavioralPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.BehavioralPattern = append(c.inters.BehavioralPattern, interceptors...)
}

// Create returns a builder for creating a BehavioralPattern entity.
func (c *BehavioralPatternClient) Create() *BehavioralPatternCreate {
	mutation := newBehavioralPatternMutation(c.config, OpCreate)
	return &BehavioralPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BehavioralPattern entities.
func (c *BehavioralPatternClient) CreateBulk(builders ...*BehavioralPatternCreate) *BehavioralPatternCreateBulk {
	return &BehavioralPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BehavioralPatternClient) MapCreateBulk(slice any, setFunc func(*BehavioralPatternCreate, int)) *BehavioralPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BehavioralPatternCreateBulk{err: fmt.Errorf("calling to BehavioralPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BehavioralPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BehavioralPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BehavioralPattern.
func (c *BehavioralPatternClient) Update() *BehavioralPatternUpdate {
	mutation := newBehavioralPatternMutation(c.config, OpUpdate)
	return &BehavioralPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BehavioralPatternClient) UpdateOne(_m *BehavioralPattern) *BehavioralPatternUpdateOne {
	mutation := newBehavioralPatternMutation(c.config, OpUpdateOne, withBehavioralPattern(_m))
	return &BehavioralPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BehavioralPatternClient) UpdateOneID(id string) *BehavioralPatternUpdateOne {
	mutation := newBehavioralPatternMutation(c.config, OpUpdateOne, withBehavioralPatternID(id))
	return &BehavioralPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BehavioralPattern.
func (c *BehavioralPatternClient) Delete() *BehavioralPatternDelete {
	mutation := newBehavioralPatternMutation(c.config, OpDelete)
	return &BehavioralPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BehavioralPatternClient) DeleteOne(_m *BehavioralPattern) *BehavioralPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BehavioralPatternClient) DeleteOneID(id string) *BehavioralPatternDeleteOne {
	builder := c.Delete().Where(behavioralpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BehavioralPatternDeleteOne{builder}
}

// Query returns a query builder for BehavioralPattern.
func (c *BehavioralPatternClient) Query() *BehavioralPatternQuery {
	return &BehavioralPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBehavioralPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a BehavioralPattern entity by its id.
func (c *BehavioralPatternClient) Get(ctx context.Context, id string) (*BehavioralPattern, error) {
	return c.Query().Where(behavioralpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BehavioralPatternClient) GetX(ctx context.Context, id string) *BehavioralPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BehavioralPatternClient) Hooks() []Hook {
	return c.hooks.BehavioralPattern
}

// Interceptors returns the client interceptors.
func (c *BehavioralPatternClient) Interceptors() []Interceptor {
	return c.inters.BehavioralPattern
}

func (c *BehavioralPatternClient) mutate(ctx context.Context, m *BehavioralPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BehavioralPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BehavioralPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BehavioralPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BehavioralPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BehavioralPattern mutation op: %q", m.Op())
	}
}

// BurnoutAssessmentClient is a client for the BurnoutAssessment schema.
type BurnoutAssessmentClient struct {
	config
}

// NewBurnoutAssessmentClient returns a client for the BurnoutAssessment from the given config.
func NewBurnoutAssessmentClient(c config) *BurnoutAssessmentClient {
	return &BurnoutAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `burnoutassessment.Hooks(f(g(h())))`.
func (c *BurnoutAssessmentClient) Use(hooks ...Hook) {
	c.hooks.BurnoutAssessment = append(c.hooks.BurnoutAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `burnoutassessment.Intercept(f(g(h())))`.
func (c *BurnoutAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.BurnoutAssessment = append(c.inters.BurnoutAssessment, interceptors...)
}

// Create returns a builder for creating a BurnoutAssessment entity.
func (c *BurnoutAssessmentClient) Create() *BurnoutAssessmentCreate {
	mutation := newBurnoutAssessmentMutation(c.config, OpCreate)
	return &BurnoutAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BurnoutAssessment entities.
func (c *BurnoutAssessmentClient) CreateBulk(builders ...*BurnoutAssessmentCreate) *BurnoutAssessmentCreateBulk {
	return &BurnoutAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BurnoutAssessmentClient) MapCreateBulk(slice any, setFunc func(*BurnoutAssessmentCreate, int)) *BurnoutAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BurnoutAssessmentCreateBulk{err: fmt.Errorf("calling to BurnoutAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BurnoutAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BurnoutAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BurnoutAssessment.
func (c *BurnoutAssessmentClient) Update() *BurnoutAssessmentUpdate {
	mutation := newBurnoutAssessmentMutation(c.config, OpUpdate)
	return &BurnoutAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BurnoutAssessmentClient) UpdateOne(_m *BurnoutAssessment) *BurnoutAssessmentUpdateOne {
	mutation := newBurnoutAssessmentMutation(c.config, OpUpdateOne, withBurnoutAssessment(_m))
	return &BurnoutAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BurnoutAssessmentClient) UpdateOneID(id string) *BurnoutAssessmentUpdateOne {
	mutation := newBurnoutAssessmentMutation(c.config, OpUpdateOne, withBurnoutAssessmentID(id))
	return &BurnoutAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BurnoutAssessment.
func (c *BurnoutAssessmentClient) Delete() *BurnoutAssessmentDelete {
	mutation := newBurnoutAssessmentMutation(c.config, OpDelete)
	return &BurnoutAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BurnoutAssessmentClient) DeleteOne(_m *BurnoutAssessment) *BurnoutAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BurnoutAssessmentClient) DeleteOneID(id string) *BurnoutAssessmentDeleteOne {
	builder := c.Delete().Where(burnoutassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BurnoutAssessmentDeleteOne{builder}
}

// Query returns a query builder for BurnoutAssessment.
func (c *BurnoutAssessmentClient) Query() *BurnoutAssessmentQuery {
	return &BurnoutAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBurnoutAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a BurnoutAssessment entity by its id.
func (c *BurnoutAssessmentClient) Get(ctx context.Context, id string) (*BurnoutAssessment, error) {
	return c.Query().Where(burnoutassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BurnoutAssessmentClient) GetX(ctx context.Context, id string) *BurnoutAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BurnoutAssessmentClient) Hooks() []Hook {
	return c.hooks.BurnoutAssessment
}

// Interceptors returns the client interceptors.
func (c *BurnoutAssessmentClient) Interceptors() []Interceptor {
	return c.inters.BurnoutAssessment
}

func (c *BurnoutAssessmentClient) mutate(ctx context.Context, m *BurnoutAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BurnoutAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BurnoutAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BurnoutAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BurnoutAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BurnoutAssessment mutation op: %q", m.Op())
	}
}

// LearningProfileClient is a client for the LearningProfile schema.
type LearningProfileClient struct {
	config
}

// NewLearningProfileClient returns a client for the LearningProfile from the given config.
func NewLearningProfileClient(c config) *LearningProfileClient {
	return &LearningProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningprofile.Hooks(f(g(h())))`.
func (c *LearningProfileClient) Use(hooks ...Hook) {
	c.hooks.LearningProfile = append(c.hooks.LearningProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningprofile.Intercept(f(g(h())))`.
func (c *LearningProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningProfile = append(c.inters.LearningProfile, interceptors...)
}

// Create returns a builder for creating a LearningProfile entity.
func (c *LearningProfileClient) Create() *LearningProfileCreate {
	mutation := newLearningProfileMutation(c.config, OpCreate)
	return &LearningProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningProfile entities.
func (c *LearningProfileClient) CreateBulk(builders ...*LearningProfileCreate) *LearningProfileCreateBulk {
	return &LearningProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningProfileClient) MapCreateBulk(slice any, setFunc func(*LearningProfileCreate, int)) *LearningProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningProfileCreateBulk{err: fmt.Errorf("calling to LearningProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningProfile.
func (c *LearningProfileClient) Update() *LearningProfileUpdate {
	mutation := newLearningProfileMutation(c.config, OpUpdate)
	return &LearningProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningProfileClient) UpdateOne(_m *LearningProfile) *LearningProfileUpdateOne {
	mutation := newLearningProfileMutation(c.config, OpUpdateOne, withLearningProfile(_m))
	return &LearningProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningProfileClient) UpdateOneID(id int) *LearningProfileUpdateOne {
	mutation := newLearningProfileMutation(c.config, OpUpdateOne, withLearningProfileID(id))
	return &LearningProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningProfile.
func (c *LearningProfileClient) Delete() *LearningProfileDelete {
	mutation := newLearningProfileMutation(c.config, OpDelete)
	return &LearningProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningProfileClient) DeleteOne(_m *LearningProfile) *LearningProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningProfileClient) DeleteOneID(id int) *LearningProfileDeleteOne {
	builder := c.Delete().Where(learningprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningProfileDeleteOne{builder}
}

// Query returns a query builder for LearningProfile.
func (c *LearningProfileClient) Query() *LearningProfileQuery {
	return &LearningProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningProfile entity by its id.
func (c *LearningProfileClient) Get(ctx context.Context, id int) (*LearningProfile, error) {
	return c.Query().Where(learningprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningProfileClient) GetX(ctx context.Context, id int) *LearningProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningProfileClient) Hooks() []Hook {
	return c.hooks.LearningProfile
}

// Interceptors returns the client interceptors.
func (c *LearningProfileClient) Interceptors() []Interceptor {
	return c.inters.LearningProfile
}

func (c *LearningProfileClient) mutate(ctx context.Context, m *LearningProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningProfile mutation op: %q", m.Op())
	}
}

// LoadMetricClient is a client for the LoadMetric schema.
type LoadMetricClient struct {
	config
}

// NewLoadMetricClient returns a client for the LoadMetric from the given config.
func NewLoadMetricClient(c config) *LoadMetricClient {
	return &LoadMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `loadmetric.Hooks(f(g(h())))`.
func (c *LoadMetricClient) Use(hooks ...Hook) {
	c.hooks.LoadMetric = append(c.hooks.LoadMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `loadmetric.Intercept(f(g(h())))`.
func (c *LoadMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.LoadMetric = append(c.inters.LoadMetric, interceptors...)
}

// Create returns a builder for creating a LoadMetric entity.
func (c *LoadMetricClient) Create() *LoadMetricCreate {
	mutation := newLoadMetricMutation(c.config, OpCreate)
	return &LoadMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LoadMetric entities.
func (c *LoadMetricClient) CreateBulk(builders ...*LoadMetricCreate) *LoadMetricCreateBulk {
	return &LoadMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoadMetricClient) MapCreateBulk(slice any, setFunc func(*LoadMetricCreate, int)) *LoadMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoadMetricCreateBulk{err: fmt.Errorf("calling to LoadMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoadMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoadMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LoadMetric.
func (c *LoadMetricClient) Update() *LoadMetricUpdate {
	mutation := newLoadMetricMutation(c.config, OpUpdate)
	return &LoadMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoadMetricClient) UpdateOne(_m *LoadMetric) *LoadMetricUpdateOne {
	mutation := newLoadMetricMutation(c.config, OpUpdateOne, withLoadMetric(_m))
	return &LoadMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoadMetricClient) UpdateOneID(id int) *LoadMetricUpdateOne {
	mutation := newLoadMetricMutation(c.config, OpUpdateOne, withLoadMetricID(id))
	return &LoadMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LoadMetric.
func (c *LoadMetricClient) Delete() *LoadMetricDelete {
	mutation := newLoadMetricMutation(c.config, OpDelete)
	return &LoadMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoadMetricClient) DeleteOne(_m *LoadMetric) *LoadMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoadMetricClient) DeleteOneID(id int) *LoadMetricDeleteOne {
	builder := c.Delete().Where(loadmetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoadMetricDeleteOne{builder}
}

// Query returns a query builder for LoadMetric.
func (c *LoadMetricClient) Query() *LoadMetricQuery {
	return &LoadMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoadMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a LoadMetric entity by its id.
func (c *LoadMetricClient) Get(ctx context.Context, id int) (*LoadMetric, error) {
	return c.Query().Where(loadmetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoadMetricClient) GetX(ctx context.Context, id int) *LoadMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LoadMetricClient) Hooks() []Hook {
	return c.hooks.LoadMetric
}

// Interceptors returns the client interceptors.
func (c *LoadMetricClient) Interceptors() []Interceptor {
	return c.inters.LoadMetric
}

func (c *LoadMetricClient) mutate(ctx context.Context, m *LoadMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoadMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoadMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoadMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoadMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LoadMetric mutation op: %q", m.Op())
	}
}

// MissionClient is a client for the Mission schema.
type MissionClient struct {
	config
}

// NewMissionClient returns a client for the Mission from the given config.
func NewMissionClient(c config) *MissionClient {
	return &MissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mission.Hooks(f(g(h())))`.
func (c *MissionClient) Use(hooks ...Hook) {
	c.hooks.Mission = append(c.hooks.Mission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mission.Intercept(f(g(h())))`.
func (c *MissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mission = append(c.inters.Mission, interceptors...)
}

// Create returns a builder for creating a Mission entity.
func (c *MissionClient) Create() *MissionCreate {
	mutation := newMissionMutation(c.config, OpCreate)
	return &MissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mission entities.
func (c *MissionClient) CreateBulk(builders ...*MissionCreate) *MissionCreateBulk {
	return &MissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MissionClient) MapCreateBulk(slice any, setFunc func(*MissionCreate, int)) *MissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MissionCreateBulk{err: fmt.Errorf("calling to MissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mission.
func (c *MissionClient) Update() *MissionUpdate {
	mutation := newMissionMutation(c.config, OpUpdate)
	return &MissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MissionClient) UpdateOne(_m *Mission) *MissionUpdateOne {
	mutation := newMissionMutation(c.config, OpUpdateOne, withMission(_m))
	return &MissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MissionClient) UpdateOneID(id int) *MissionUpdateOne {
	mutation := newMissionMutation(c.config, OpUpdateOne, withMissionID(id))
	return &MissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mission.
func (c *MissionClient) Delete() *MissionDelete {
	mutation := newMissionMutation(c.config, OpDelete)
	return &MissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MissionClient) DeleteOne(_m *Mission) *MissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MissionClient) DeleteOneID(id int) *MissionDeleteOne {
	builder := c.Delete().Where(mission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MissionDeleteOne{builder}
}

// Query returns a query builder for Mission.
func (c *MissionClient) Query() *MissionQuery {
	return &MissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMission},
		inters: c.Interceptors(),
	}
}

// Get returns a Mission entity by its id.
func (c *MissionClient) Get(ctx context.Context, id int) (*Mission, error) {
	return c.Query().Where(mission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MissionClient) GetX(ctx context.Context, id int) *Mission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MissionClient) Hooks() []Hook {
	return c.hooks.Mission
}

// Interceptors returns the client interceptors.
func (c *MissionClient) Interceptors() []Interceptor {
	return c.inters.Mission
}

func (c *MissionClient) mutate(ctx context.Context, m *MissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mission mutation op: %q", m.Op())
	}
}

// PerformanceMetricClient is a client for the PerformanceMetric schema.
type PerformanceMetricClient struct {
	config
}

// NewPerformanceMetricClient returns a client for the PerformanceMetric from the given config.
func NewPerformanceMetricClient(c config) *PerformanceMetricClient {
	return &PerformanceMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `performancemetric.Hooks(f(g(h())))`.
func (c *PerformanceMetricClient) Use(hooks ...Hook) {
	c.hooks.PerformanceMetric = append(c.hooks.PerformanceMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `performancemetric.Intercept(f(g(h())))`.
func (c *PerformanceMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.PerformanceMetric = append(c.inters.PerformanceMetric, interceptors...)
}

// Create returns a builder for creating a PerformanceMetric entity.
func (c *PerformanceMetricClient) Create() *PerformanceMetricCreate {
	mutation := newPerformanceMetricMutation(c.config, OpCreate)
	return &PerformanceMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PerformanceMetric entities.
func (c *PerformanceMetricClient) CreateBulk(builders ...*PerformanceMetricCreate) *PerformanceMetricCreateBulk {
	return &PerformanceMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PerformanceMetricClient) MapCreateBulk(slice any, setFunc func(*PerformanceMetricCreate, int)) *PerformanceMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PerformanceMetricCreateBulk{err: fmt.Errorf("calling to PerformanceMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PerformanceMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PerformanceMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PerformanceMetric.
func (c *PerformanceMetricClient) Update() *PerformanceMetricUpdate {
	mutation := newPerformanceMetricMutation(c.config, OpUpdate)
	return &PerformanceMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PerformanceMetricClient) UpdateOne(_m *PerformanceMetric) *PerformanceMetricUpdateOne {
	mutation := newPerformanceMetricMutation(c.config, OpUpdateOne, withPerformanceMetric(_m))
	return &PerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PerformanceMetricClient) UpdateOneID(id int) *PerformanceMetricUpdateOne {
	mutation := newPerformanceMetricMutation(c.config, OpUpdateOne, withPerformanceMetricID(id))
	return &PerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PerformanceMetric.
func (c *PerformanceMetricClient) Delete() *PerformanceMetricDelete {
	mutation := newPerformanceMetricMutation(c.config, OpDelete)
	return &PerformanceMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PerformanceMetricClient) DeleteOne(_m *PerformanceMetric) *PerformanceMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PerformanceMetricClient) DeleteOneID(id int) *PerformanceMetricDeleteOne {
	builder := c.Delete().Where(performancemetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PerformanceMetricDeleteOne{builder}
}

// Query returns a query builder for PerformanceMetric.
func (c *PerformanceMetricClient) Query() *PerformanceMetricQuery {
	return &PerformanceMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerformanceMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a PerformanceMetric entity by its id.
func (c *PerformanceMetricClient) Get(ctx context.Context, id int) (*PerformanceMetric, error) {
	return c.Query().Where(performancemetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PerformanceMetricClient) GetX(ctx context.Context, id int) *PerformanceMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PerformanceMetricClient) Hooks() []Hook {
	return c.hooks.PerformanceMetric
}

// Interceptors returns the client interceptors.
func (c *PerformanceMetricClient) Interceptors() []Interceptor {
	return c.inters.PerformanceMetric
}

func (c *PerformanceMetricClient) mutate(ctx context.Context, m *PerformanceMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PerformanceMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PerformanceMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PerformanceMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PerformanceMetric mutation op: %q", m.Op())
	}
}

// RecommendationClient is a client for the Recommendation schema.
type RecommendationClient struct {
	config
}

// NewRecommendationClient returns a client for the Recommendation from the given config.
func NewRecommendationClient(c config) *RecommendationClient {
	return &RecommendationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recommendation.Hooks(f(g(h())))`.
func (c *RecommendationClient) Use(hooks ...Hook) {
	c.hooks.Recommendation = append(c.hooks.Recommendation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recommendation.Intercept(f(g(h())))`.
func (c *RecommendationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Recommendation = append(c.inters.Recommendation, interceptors...)
}

// Create returns a builder for creating a Recommendation entity.
func (c *RecommendationClient) Create() *RecommendationCreate {
	mutation := newRecommendationMutation(c.config, OpCreate)
	return &RecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Recommendation entities.
func (c *RecommendationClient) CreateBulk(builders ...*RecommendationCreate) *RecommendationCreateBulk {
	return &RecommendationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecommendationClient) MapCreateBulk(slice any, setFunc func(*RecommendationCreate, int)) *RecommendationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecommendationCreateBulk{err: fmt.Errorf("calling to RecommendationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecommendationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecommendationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Recommendation.
func (c *RecommendationClient) Update() *RecommendationUpdate {
	mutation := newRecommendationMutation(c.config, OpUpdate)
	return &RecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecommendationClient) UpdateOne(_m *Recommendation) *RecommendationUpdateOne {
	mutation := newRecommendationMutation(c.config, OpUpdateOne, withRecommendation(_m))
	return &RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecommendationClient) UpdateOneID(id string) *RecommendationUpdateOne {
	mutation := newRecommendationMutation(c.config, OpUpdateOne, withRecommendationID(id))
	return &RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Recommendation.
func (c *RecommendationClient) Delete() *RecommendationDelete {
	mutation := newRecommendationMutation(c.config, OpDelete)
	return &RecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecommendationClient) DeleteOne(_m *Recommendation) *RecommendationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecommendationClient) DeleteOneID(id string) *RecommendationDeleteOne {
	builder := c.Delete().Where(recommendation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecommendationDeleteOne{builder}
}

// Query returns a query builder for Recommendation.
func (c *RecommendationClient) Query() *RecommendationQuery {
	return &RecommendationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecommendation},
		inters: c.Interceptors(),
	}
}

// Get returns a Recommendation entity by its id.
func (c *RecommendationClient) Get(ctx context.Context, id string) (*Recommendation, error) {
	return c.Query().Where(recommendation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecommendationClient) GetX(ctx context.Context, id string) *Recommendation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecommendationClient) Hooks() []Hook {
	return c.hooks.Recommendation
}

// Interceptors returns the client interceptors.
func (c *RecommendationClient) Interceptors() []Interceptor {
	return c.inters.Recommendation
}

func (c *RecommendationClient) mutate(ctx context.Context, m *RecommendationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Recommendation mutation op: %q", m.Op())
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// StudySessionClient is a client for the StudySession schema.
type StudySessionClient struct {
	config
}

// NewStudySessionClient returns a client for the StudySession from the given config.
func NewStudySessionClient(c config) *StudySessionClient {
	return &StudySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studysession.Hooks(f(g(h())))`.
func (c *StudySessionClient) Use(hooks ...Hook) {
	c.hooks.StudySession = append(c.hooks.StudySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studysession.Intercept(f(g(h())))`.
func (c *StudySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudySession = append(c.inters.StudySession, interceptors...)
}

// Create returns a builder for creating a StudySession entity.
func (c *StudySessionClient) Create() *StudySessionCreate {
	mutation := newStudySessionMutation(c.config, OpCreate)
	return &StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudySession entities.
func (c *StudySessionClient) CreateBulk(builders ...*StudySessionCreate) *StudySessionCreateBulk {
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudySessionClient) MapCreateBulk(slice any, setFunc func(*StudySessionCreate, int)) *StudySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudySessionCreateBulk{err: fmt.Errorf("calling to StudySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudySession.
func (c *StudySessionClient) Update() *StudySessionUpdate {
	mutation := newStudySessionMutation(c.config, OpUpdate)
	return &StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudySessionClient) UpdateOne(_m *StudySession) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySession(_m))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudySessionClient) UpdateOneID(id int) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySessionID(id))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudySession.
func (c *StudySessionClient) Delete() *StudySessionDelete {
	mutation := newStudySessionMutation(c.config, OpDelete)
	return &StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudySessionClient) DeleteOne(_m *StudySession) *StudySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudySessionClient) DeleteOneID(id int) *StudySessionDeleteOne {
	builder := c.Delete().Where(studysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudySessionDeleteOne{builder}
}

// Query returns a query builder for StudySession.
func (c *StudySessionClient) Query() *StudySessionQuery {
	return &StudySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudySession},
		inters: c.Interceptors(),
	}
}

// Get returns a StudySession entity by its id.
func (c *StudySessionClient) Get(ctx context.Context, id int) (*StudySession, error) {
	return c.Query().Where(studysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudySessionClient) GetX(ctx context.Context, id int) *StudySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudySessionClient) Hooks() []Hook {
	return c.hooks.StudySession
}

// Interceptors returns the client interceptors.
func (c *StudySessionClient) Interceptors() []Interceptor {
	return c.inters.StudySession
}

func (c *StudySessionClient) mutate(ctx context.Context, m *StudySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdaptationEvent, AppliedRecommendation, BehavioralEvent, BehavioralInsight,
		BehavioralPattern, BurnoutAssessment, LearningProfile, LoadMetric, Mission,
		PerformanceMetric, Recommendation, ReviewEvent, StudySession []ent.Hook
	}
	inters struct {
		AdaptationEvent, AppliedRecommendation, BehavioralEvent, BehavioralInsight,
		BehavioralPattern, BurnoutAssessment, LearningProfile, LoadMetric, Mission,
		PerformanceMetric, Recommendation, ReviewEvent, StudySession []ent.Interceptor
	}
)
