// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
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
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/recommendation"
	"github.com/abhisek/cadence/ent/reviewevent"
	"github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/ent/studysession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdaptationEvent       = "AdaptationEvent"
	TypeAppliedRecommendation = "AppliedRecommendation"
	TypeBehavioralEvent       = "BehavioralEvent"
	TypeBehavioralInsight     = "BehavioralInsight"
	TypeBehavioralPattern     = "BehavioralPattern"
	TypeBurnoutAssessment     = "BurnoutAssessment"
	TypeLearningProfile       = "LearningProfile"
	TypeLoadMetric            = "LoadMetric"
	TypeMission               = "Mission"
	TypePerformanceMetric     = "PerformanceMetric"
	TypeRecommendation        = "Recommendation"
	TypeReviewEvent           = "ReviewEvent"
	TypeStudySession          = "StudySession"
)

// AdaptationEventMutation represents an operation that mutates the AdaptationEvent nodes in the graph.
type AdaptationEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	user_id              *string
	timestamp            *time.Time
	load                 *float64
	addload              *float64
	effective_load       *float64
	addeffective_load    *float64
	zone                 *string
	action               *string
	difficulty_change    *int
	adddifficulty_change *int
	review_ratio         *float64
	addreview_ratio      *float64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*AdaptationEvent, error)
	predicates           []predicate.AdaptationEvent
}

var _ ent.Mutation = (*AdaptationEventMutation)(nil)

// adaptationeventOption allows management of the mutation configuration using functional options.
type adaptationeventOption func(*AdaptationEventMutation)

// newAdaptationEventMutation creates new mutation for the AdaptationEvent entity.
func newAdaptationEventMutation(c config, op Op, opts ...adaptationeventOption) *AdaptationEventMutation {
	m := &AdaptationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAdaptationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdaptationEventID sets the ID field of the mutation.
func withAdaptationEventID(id int) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AdaptationEvent
		)
		m.oldValue = func(ctx context.Context) (*AdaptationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdaptationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdaptationEvent sets the old AdaptationEvent of the mutation.
func withAdaptationEvent(node *AdaptationEvent) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		m.oldValue = func(context.Context) (*AdaptationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdaptationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdaptationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdaptationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdaptationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdaptationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AdaptationEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AdaptationEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AdaptationEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AdaptationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AdaptationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AdaptationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLoad sets the "load" field.
func (m *AdaptationEventMutation) SetLoad(f float64) {
	m.load = &f
	m.addload = nil
}

// Load returns the value of the "load" field in the mutation.
func (m *AdaptationEventMutation) Load() (r float64, exists bool) {
	v := m.load
	if v == nil {
		return
	}
	return *v, true
}

// OldLoad returns the old "load" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldLoad(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoad: %w", err)
	}
	return oldValue.Load, nil
}

// AddLoad adds f to the "load" field.
func (m *AdaptationEventMutation) AddLoad(f float64) {
	if m.addload != nil {
		*m.addload += f
	} else {
		m.addload = &f
	}
}

// AddedLoad returns the value that was added to the "load" field in this mutation.
func (m *AdaptationEventMutation) AddedLoad() (r float64, exists bool) {
	v := m.addload
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoad resets all changes to the "load" field.
func (m *AdaptationEventMutation) ResetLoad() {
	m.load = nil
	m.addload = nil
}

// SetEffectiveLoad sets the "effective_load" field.
func (m *AdaptationEventMutation) SetEffectiveLoad(f float64) {
	m.effective_load = &f
	m.addeffective_load = nil
}

// EffectiveLoad returns the value of the "effective_load" field in the mutation.
func (m *AdaptationEventMutation) EffectiveLoad() (r float64, exists bool) {
	v := m.effective_load
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveLoad returns the old "effective_load" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldEffectiveLoad(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveLoad: %w", err)
	}
	return oldValue.EffectiveLoad, nil
}

// AddEffectiveLoad adds f to the "effective_load" field.
func (m *AdaptationEventMutation) AddEffectiveLoad(f float64) {
	if m.addeffective_load != nil {
		*m.addeffective_load += f
	} else {
		m.addeffective_load = &f
	}
}

// AddedEffectiveLoad returns the value that was added to the "effective_load" field in this mutation.
func (m *AdaptationEventMutation) AddedEffectiveLoad() (r float64, exists bool) {
	v := m.addeffective_load
	if v == nil {
		return
	}
	return *v, true
}

// ResetEffectiveLoad resets all changes to the "effective_load" field.
func (m *AdaptationEventMutation) ResetEffectiveLoad() {
	m.effective_load = nil
	m.addeffective_load = nil
}

// SetZone sets the "zone" field.
func (m *AdaptationEventMutation) SetZone(s string) {
	m.zone = &s
}

// Zone returns the value of the "zone" field in the mutation.
func (m *AdaptationEventMutation) Zone() (r string, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZone returns the old "zone" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldZone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZone: %w", err)
	}
	return oldValue.Zone, nil
}

// ResetZone resets all changes to the "zone" field.
func (m *AdaptationEventMutation) ResetZone() {
	m.zone = nil
}

// SetAction sets the "action" field.
func (m *AdaptationEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AdaptationEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AdaptationEventMutation) ResetAction() {
	m.action = nil
}

// SetDifficultyChange sets the "difficulty_change" field.
func (m *AdaptationEventMutation) SetDifficultyChange(i int) {
	m.difficulty_change = &i
	m.adddifficulty_change = nil
}

// DifficultyChange returns the value of the "difficulty_change" field in the mutation.
func (m *AdaptationEventMutation) DifficultyChange() (r int, exists bool) {
	v := m.difficulty_change
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyChange returns the old "difficulty_change" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldDifficultyChange(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyChange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyChange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyChange: %w", err)
	}
	return oldValue.DifficultyChange, nil
}

// AddDifficultyChange adds i to the "difficulty_change" field.
func (m *AdaptationEventMutation) AddDifficultyChange(i int) {
	if m.adddifficulty_change != nil {
		*m.adddifficulty_change += i
	} else {
		m.adddifficulty_change = &i
	}
}

// AddedDifficultyChange returns the value that was added to the "difficulty_change" field in this mutation.
func (m *AdaptationEventMutation) AddedDifficultyChange() (r int, exists bool) {
	v := m.adddifficulty_change
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyChange resets all changes to the "difficulty_change" field.
func (m *AdaptationEventMutation) ResetDifficultyChange() {
	m.difficulty_change = nil
	m.adddifficulty_change = nil
}

// SetReviewRatio sets the "review_ratio" field.
func (m *AdaptationEventMutation) SetReviewRatio(f float64) {
	m.review_ratio = &f
	m.addreview_ratio = nil
}

// ReviewRatio returns the value of the "review_ratio" field in the mutation.
func (m *AdaptationEventMutation) ReviewRatio() (r float64, exists bool) {
	v := m.review_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewRatio returns the old "review_ratio" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldReviewRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewRatio: %w", err)
	}
	return oldValue.ReviewRatio, nil
}

// AddReviewRatio adds f to the "review_ratio" field.
func (m *AdaptationEventMutation) AddReviewRatio(f float64) {
	if m.addreview_ratio != nil {
		*m.addreview_ratio += f
	} else {
		m.addreview_ratio = &f
	}
}

// AddedReviewRatio returns the value that was added to the "review_ratio" field in this mutation.
func (m *AdaptationEventMutation) AddedReviewRatio() (r float64, exists bool) {
	v := m.addreview_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewRatio resets all changes to the "review_ratio" field.
func (m *AdaptationEventMutation) ResetReviewRatio() {
	m.review_ratio = nil
	m.addreview_ratio = nil
}

// Where appends a list predicates to the AdaptationEventMutation builder.
func (m *AdaptationEventMutation) Where(ps ...predicate.AdaptationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdaptationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdaptationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdaptationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdaptationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdaptationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdaptationEvent).
func (m *AdaptationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdaptationEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, adaptationevent.FieldUserID)
	}
	if m.timestamp != nil {
		fields = append(fields, adaptationevent.FieldTimestamp)
	}
	if m.load != nil {
		fields = append(fields, adaptationevent.FieldLoad)
	}
	if m.effective_load != nil {
		fields = append(fields, adaptationevent.FieldEffectiveLoad)
	}
	if m.zone != nil {
		fields = append(fields, adaptationevent.FieldZone)
	}
	if m.action != nil {
		fields = append(fields, adaptationevent.FieldAction)
	}
	if m.difficulty_change != nil {
		fields = append(fields, adaptationevent.FieldDifficultyChange)
	}
	if m.review_ratio != nil {
		fields = append(fields, adaptationevent.FieldReviewRatio)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdaptationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldUserID:
		return m.UserID()
	case adaptationevent.FieldTimestamp:
		return m.Timestamp()
	case adaptationevent.FieldLoad:
		return m.Load()
	case adaptationevent.FieldEffectiveLoad:
		return m.EffectiveLoad()
	case adaptationevent.FieldZone:
		return m.Zone()
	case adaptationevent.FieldAction:
		return m.Action()
	case adaptationevent.FieldDifficultyChange:
		return m.DifficultyChange()
	case adaptationevent.FieldReviewRatio:
		return m.ReviewRatio()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdaptationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adaptationevent.FieldUserID:
		return m.OldUserID(ctx)
	case adaptationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case adaptationevent.FieldLoad:
		return m.OldLoad(ctx)
	case adaptationevent.FieldEffectiveLoad:
		return m.OldEffectiveLoad(ctx)
	case adaptationevent.FieldZone:
		return m.OldZone(ctx)
	case adaptationevent.FieldAction:
		return m.OldAction(ctx)
	case adaptationevent.FieldDifficultyChange:
		return m.OldDifficultyChange(ctx)
	case adaptationevent.FieldReviewRatio:
		return m.OldReviewRatio(ctx)
	}
	return nil, fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case adaptationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case adaptationevent.FieldLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoad(v)
		return nil
	case adaptationevent.FieldEffectiveLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveLoad(v)
		return nil
	case adaptationevent.FieldZone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZone(v)
		return nil
	case adaptationevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case adaptationevent.FieldDifficultyChange:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyChange(v)
		return nil
	case adaptationevent.FieldReviewRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewRatio(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdaptationEventMutation) AddedFields() []string {
	var fields []string
	if m.addload != nil {
		fields = append(fields, adaptationevent.FieldLoad)
	}
	if m.addeffective_load != nil {
		fields = append(fields, adaptationevent.FieldEffectiveLoad)
	}
	if m.adddifficulty_change != nil {
		fields = append(fields, adaptationevent.FieldDifficultyChange)
	}
	if m.addreview_ratio != nil {
		fields = append(fields, adaptationevent.FieldReviewRatio)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdaptationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldLoad:
		return m.AddedLoad()
	case adaptationevent.FieldEffectiveLoad:
		return m.AddedEffectiveLoad()
	case adaptationevent.FieldDifficultyChange:
		return m.AddedDifficultyChange()
	case adaptationevent.FieldReviewRatio:
		return m.AddedReviewRatio()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoad(v)
		return nil
	case adaptationevent.FieldEffectiveLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEffectiveLoad(v)
		return nil
	case adaptationevent.FieldDifficultyChange:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyChange(v)
		return nil
	case adaptationevent.FieldReviewRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewRatio(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdaptationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdaptationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdaptationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ResetField(name string) error {
	switch name {
	case adaptationevent.FieldUserID:
		m.ResetUserID()
		return nil
	case adaptationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case adaptationevent.FieldLoad:
		m.ResetLoad()
		return nil
	case adaptationevent.FieldEffectiveLoad:
		m.ResetEffectiveLoad()
		return nil
	case adaptationevent.FieldZone:
		m.ResetZone()
		return nil
	case adaptationevent.FieldAction:
		m.ResetAction()
		return nil
	case adaptationevent.FieldDifficultyChange:
		m.ResetDifficultyChange()
		return nil
	case adaptationevent.FieldReviewRatio:
		m.ResetReviewRatio()
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdaptationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdaptationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdaptationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdaptationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdaptationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdaptationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdaptationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdaptationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent edge %s", name)
}

// AppliedRecommendationMutation represents an operation that mutates the AppliedRecommendation nodes in the graph.
type AppliedRecommendationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	recommendation_id *string
	applied_at        *time.Time
	baseline          *schema.MetricsSample
	current           **schema.MetricsSample
	effectiveness     *float64
	addeffectiveness  *float64
	evaluated_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AppliedRecommendation, error)
	predicates        []predicate.AppliedRecommendation
}

var _ ent.Mutation = (*AppliedRecommendationMutation)(nil)

// appliedrecommendationOption allows management of the mutation configuration using functional options.
type appliedrecommendationOption func(*AppliedRecommendationMutation)

// newAppliedRecommendationMutation creates new mutation for the AppliedRecommendation entity.
func newAppliedRecommendationMutation(c config, op Op, opts ...appliedrecommendationOption) *AppliedRecommendationMutation {
	m := &AppliedRecommendationMutation{
		config:        c,
		op:            op,
		typ:           TypeAppliedRecommendation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppliedRecommendationID sets the ID field of the mutation.
func withAppliedRecommendationID(id string) appliedrecommendationOption {
	return func(m *AppliedRecommendationMutation) {
		var (
			err   error
			once  sync.Once
			value *AppliedRecommendation
		)
		m.oldValue = func(ctx context.Context) (*AppliedRecommendation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppliedRecommendation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppliedRecommendation sets the old AppliedRecommendation of the mutation.
func withAppliedRecommendation(node *AppliedRecommendation) appliedrecommendationOption {
	return func(m *AppliedRecommendationMutation) {
		m.oldValue = func(context.Context) (*AppliedRecommendation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppliedRecommendationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppliedRecommendationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AppliedRecommendation entities.
func (m *AppliedRecommendationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppliedRecommendationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppliedRecommendationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppliedRecommendation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AppliedRecommendationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AppliedRecommendationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AppliedRecommendation entity.
// If the AppliedRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppliedRecommendationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AppliedRecommendationMutation) ResetUserID() {
	m.user_id = nil
}

// SetRecommendationID sets the "recommendation_id" field.
func (m *AppliedRecommendationMutation) SetRecommendationID(s string) {
	m.recommendation_id = &s
}

// RecommendationID returns the value of the "recommendation_id" field in the mutation.
func (m *AppliedRecommendationMutation) RecommendationID() (r string, exists bool) {
	v := m.recommendation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationID returns the old "recommendation_id" field's value of the AppliedRecommendation entity.
// If the AppliedRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppliedRecommendationMutation) OldRecommendationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationID: %w", err)
	}
	return oldValue.RecommendationID, nil
}

// ResetRecommendationID resets all changes to the "recommendation_id" field.
func (m *AppliedRecommendationMutation) ResetRecommendationID() {
	m.recommendation_id = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *AppliedRecommendationMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *AppliedRecommendationMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the AppliedRecommendation entity.
// If the AppliedRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppliedRecommendationMutation) OldAppliedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *AppliedRecommendationMutation) ResetAppliedAt() {
	m.applied_at = nil
}

// SetBaseline sets the "baseline" field.
func (m *AppliedRecommendationMutation) SetBaseline(ss schema.MetricsSample) {
	m.baseline = &ss
}

// Baseline returns the value of the "baseline" field in the mutation.
func (m *AppliedRecommendationMutation) Baseline() (r schema.MetricsSample, exists bool) {
	v := m.baseline
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseline returns the old "baseline" field's value of the AppliedRecommendation entity.
// If the AppliedRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppliedRecommendationMutation) OldBaseline(ctx context.Context) (v schema.MetricsSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseline: %w", err)
	}
	return oldValue.Baseline, nil
}

// ResetBaseline resets all changes to the "baseline" field.
func (m *AppliedRecommendationMutation) ResetBaseline() {
	m.baseline = nil
}

// SetCurrent sets the "current" field.
func (m *AppliedRecommendationMutation) SetCurrent(ss *schema.MetricsSample) {
	m.current = &ss
}

// Current returns the value of the "current" field in the mutation.
func (m *AppliedRecommendationMutation) Current() (r *schema.MetricsSample, exists bool) {
	v := m.current
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrent returns the old "current" field's value of the AppliedRecommendation entity.
// If the AppliedRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppliedRecommendationMutation) OldCurrent(ctx context.Context) (v *schema.MetricsSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrent: %w", err)
	}
	return oldValue.Current, nil
}

// ClearCurrent clears the value of the "current" field.
func (m *AppliedRecommendationMutation) ClearCurrent() {
	m.current = nil
	m.clearedFields[appliedrecommendation.FieldCurrent] = struct{}{}
}

// CurrentCleared returns if the "current" field was cleared in this mutation.
func (m *AppliedRecommendationMutation) CurrentCleared() bool {
	_, ok := m.clearedFields[appliedrecommendation.FieldCurrent]
	return ok
}

// ResetCurrent resets all changes to the "current" field.
func (m *AppliedRecommendationMutation) ResetCurrent() {
	m.current = nil
	delete(m.clearedFields, appliedrecommendation.FieldCurrent)
}

// SetEffectiveness sets the "effectiveness" field.
func (m *AppliedRecommendationMutation) SetEffectiveness(f float64) {
	m.effectiveness = &f
	m.addeffectiveness = nil
}

// Effectiveness returns the value of the "effectiveness" field in the mutation.
func (m *AppliedRecommendationMutation) Effectiveness() (r float64, exists bool) {
	v := m.effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveness returns the old "effectiveness" field's value of the AppliedRecommendation entity.
// If the AppliedRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppliedRecommendationMutation) OldEffectiveness(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveness: %w", err)
	}
	return oldValue.Effectiveness, nil
}

// AddEffectiveness adds f to the "effectiveness" field.
func (m *AppliedRecommendationMutation) AddEffectiveness(f float64) {
	if m.addeffectiveness != nil {
		*m.addeffectiveness += f
	} else {
		m.addeffectiveness = &f
	}
}

// AddedEffectiveness returns the value that was added to the "effectiveness" field in this mutation.
func (m *AppliedRecommendationMutation) AddedEffectiveness() (r float64, exists bool) {
	v := m.addeffectiveness
	if v == nil {
		return
	}
	return *v, true
}

// ClearEffectiveness clears the value of the "effectiveness" field.
func (m *AppliedRecommendationMutation) ClearEffectiveness() {
	m.effectiveness = nil
	m.addeffectiveness = nil
	m.clearedFields[appliedrecommendation.FieldEffectiveness] = struct{}{}
}

// EffectivenessCleared returns if the "effectiveness" field was cleared in this mutation.
func (m *AppliedRecommendationMutation) EffectivenessCleared() bool {
	_, ok := m.clearedFields[appliedrecommendation.FieldEffectiveness]
	return ok
}

// ResetEffectiveness resets all changes to the "effectiveness" field.
func (m *AppliedRecommendationMutation) ResetEffectiveness() {
	m.effectiveness = nil
	m.addeffectiveness = nil
	delete(m.clearedFields, appliedrecommendation.FieldEffectiveness)
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *AppliedRecommendationMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *AppliedRecommendationMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the AppliedRecommendation entity.
// If the AppliedRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppliedRecommendationMutation) OldEvaluatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (m *AppliedRecommendationMutation) ClearEvaluatedAt() {
	m.evaluated_at = nil
	m.clearedFields[appliedrecommendation.FieldEvaluatedAt] = struct{}{}
}

// EvaluatedAtCleared returns if the "evaluated_at" field was cleared in this mutation.
func (m *AppliedRecommendationMutation) EvaluatedAtCleared() bool {
	_, ok := m.clearedFields[appliedrecommendation.FieldEvaluatedAt]
	return ok
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *AppliedRecommendationMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
	delete(m.clearedFields, appliedrecommendation.FieldEvaluatedAt)
}

// Where appends a list predicates to the AppliedRecommendationMutation builder.
func (m *AppliedRecommendationMutation) Where(ps ...predicate.AppliedRecommendation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppliedRecommendationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppliedRecommendationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppliedRecommendation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppliedRecommendationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppliedRecommendationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppliedRecommendation).
func (m *AppliedRecommendationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppliedRecommendationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, appliedrecommendation.FieldUserID)
	}
	if m.recommendation_id != nil {
		fields = append(fields, appliedrecommendation.FieldRecommendationID)
	}
	if m.applied_at != nil {
		fields = append(fields, appliedrecommendation.FieldAppliedAt)
	}
	if m.baseline != nil {
		fields = append(fields, appliedrecommendation.FieldBaseline)
	}
	if m.current != nil {
		fields = append(fields, appliedrecommendation.FieldCurrent)
	}
	if m.effectiveness != nil {
		fields = append(fields, appliedrecommendation.FieldEffectiveness)
	}
	if m.evaluated_at != nil {
		fields = append(fields, appliedrecommendation.FieldEvaluatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppliedRecommendationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appliedrecommendation.FieldUserID:
		return m.UserID()
	case appliedrecommendation.FieldRecommendationID:
		return m.RecommendationID()
	case appliedrecommendation.FieldAppliedAt:
		return m.AppliedAt()
	case appliedrecommendation.FieldBaseline:
		return m.Baseline()
	case appliedrecommendation.FieldCurrent:
		return m.Current()
	case appliedrecommendation.FieldEffectiveness:
		return m.Effectiveness()
	case appliedrecommendation.FieldEvaluatedAt:
		return m.EvaluatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppliedRecommendationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appliedrecommendation.FieldUserID:
		return m.OldUserID(ctx)
	case appliedrecommendation.FieldRecommendationID:
		return m.OldRecommendationID(ctx)
	case appliedrecommendation.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case appliedrecommendation.FieldBaseline:
		return m.OldBaseline(ctx)
	case appliedrecommendation.FieldCurrent:
		return m.OldCurrent(ctx)
	case appliedrecommendation.FieldEffectiveness:
		return m.OldEffectiveness(ctx)
	case appliedrecommendation.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AppliedRecommendation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppliedRecommendationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appliedrecommendation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case appliedrecommendation.FieldRecommendationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationID(v)
		return nil
	case appliedrecommendation.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case appliedrecommendation.FieldBaseline:
		v, ok := value.(schema.MetricsSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseline(v)
		return nil
	case appliedrecommendation.FieldCurrent:
		v, ok := value.(*schema.MetricsSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrent(v)
		return nil
	case appliedrecommendation.FieldEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveness(v)
		return nil
	case appliedrecommendation.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AppliedRecommendation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppliedRecommendationMutation) AddedFields() []string {
	var fields []string
	if m.addeffectiveness != nil {
		fields = append(fields, appliedrecommendation.FieldEffectiveness)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppliedRecommendationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appliedrecommendation.FieldEffectiveness:
		return m.AddedEffectiveness()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppliedRecommendationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appliedrecommendation.FieldEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEffectiveness(v)
		return nil
	}
	return fmt.Errorf("unknown AppliedRecommendation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppliedRecommendationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appliedrecommendation.FieldCurrent) {
		fields = append(fields, appliedrecommendation.FieldCurrent)
	}
	if m.FieldCleared(appliedrecommendation.FieldEffectiveness) {
		fields = append(fields, appliedrecommendation.FieldEffectiveness)
	}
	if m.FieldCleared(appliedrecommendation.FieldEvaluatedAt) {
		fields = append(fields, appliedrecommendation.FieldEvaluatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppliedRecommendationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppliedRecommendationMutation) ClearField(name string) error {
	switch name {
	case appliedrecommendation.FieldCurrent:
		m.ClearCurrent()
		return nil
	case appliedrecommendation.FieldEffectiveness:
		m.ClearEffectiveness()
		return nil
	case appliedrecommendation.FieldEvaluatedAt:
		m.ClearEvaluatedAt()
		return nil
	}
	return fmt.Errorf("unknown AppliedRecommendation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppliedRecommendationMutation) ResetField(name string) error {
	switch name {
	case appliedrecommendation.FieldUserID:
		m.ResetUserID()
		return nil
	case appliedrecommendation.FieldRecommendationID:
		m.ResetRecommendationID()
		return nil
	case appliedrecommendation.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case appliedrecommendation.FieldBaseline:
		m.ResetBaseline()
		return nil
	case appliedrecommendation.FieldCurrent:
		m.ResetCurrent()
		return nil
	case appliedrecommendation.FieldEffectiveness:
		m.ResetEffectiveness()
		return nil
	case appliedrecommendation.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	}
	return fmt.Errorf("unknown AppliedRecommendation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppliedRecommendationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppliedRecommendationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppliedRecommendationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppliedRecommendationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppliedRecommendationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppliedRecommendationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppliedRecommendationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AppliedRecommendation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppliedRecommendationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AppliedRecommendation edge %s", name)
}

// BehavioralEventMutation represents an operation that mutates the BehavioralEvent nodes in the graph.
type BehavioralEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *string
	timestamp              *time.Time
	event_type             *string
	content_type           *string
	engaged_ms             *int64
	addengaged_ms          *int64
	score                  *float64
	addscore               *float64
	completed              *bool
	session_performance    *float64
	addsession_performance *float64
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*BehavioralEvent, error)
	predicates             []predicate.BehavioralEvent
}

var _ ent.Mutation = (*BehavioralEventMutation)(nil)

// behavioraleventOption allows management of the mutation configuration using functional options.
type behavioraleventOption func(*BehavioralEventMutation)

// newBehavioralEventMutation creates new mutation for the BehavioralEvent entity.
func newBehavioralEventMutation(c config, op Op, opts ...behavioraleventOption) *BehavioralEventMutation {
	m := &BehavioralEventMutation{
		config:        c,
		op:            op,
		typ:           TypeBehavioralEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBehavioralEventID sets the ID field of the mutation.
func withBehavioralEventID(id int) behavioraleventOption {
	return func(m *BehavioralEventMutation) {
		var (
			err   error
			once  sync.Once
			value *BehavioralEvent
		)
		m.oldValue = func(ctx context.Context) (*BehavioralEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BehavioralEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBehavioralEvent sets the old BehavioralEvent of the mutation.
func withBehavioralEvent(node *BehavioralEvent) behavioraleventOption {
	return func(m *BehavioralEventMutation) {
		m.oldValue = func(context.Context) (*BehavioralEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BehavioralEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BehavioralEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BehavioralEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BehavioralEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BehavioralEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BehavioralEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BehavioralEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BehavioralEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *BehavioralEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *BehavioralEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *BehavioralEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEventType sets the "event_type" field.
func (m *BehavioralEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *BehavioralEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *BehavioralEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetContentType sets the "content_type" field.
func (m *BehavioralEventMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *BehavioralEventMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *BehavioralEventMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[behavioralevent.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *BehavioralEventMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[behavioralevent.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *BehavioralEventMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, behavioralevent.FieldContentType)
}

// SetEngagedMs sets the "engaged_ms" field.
func (m *BehavioralEventMutation) SetEngagedMs(i int64) {
	m.engaged_ms = &i
	m.addengaged_ms = nil
}

// EngagedMs returns the value of the "engaged_ms" field in the mutation.
func (m *BehavioralEventMutation) EngagedMs() (r int64, exists bool) {
	v := m.engaged_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagedMs returns the old "engaged_ms" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldEngagedMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagedMs: %w", err)
	}
	return oldValue.EngagedMs, nil
}

// AddEngagedMs adds i to the "engaged_ms" field.
func (m *BehavioralEventMutation) AddEngagedMs(i int64) {
	if m.addengaged_ms != nil {
		*m.addengaged_ms += i
	} else {
		m.addengaged_ms = &i
	}
}

// AddedEngagedMs returns the value that was added to the "engaged_ms" field in this mutation.
func (m *BehavioralEventMutation) AddedEngagedMs() (r int64, exists bool) {
	v := m.addengaged_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagedMs resets all changes to the "engaged_ms" field.
func (m *BehavioralEventMutation) ResetEngagedMs() {
	m.engaged_ms = nil
	m.addengaged_ms = nil
}

// SetScore sets the "score" field.
func (m *BehavioralEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *BehavioralEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *BehavioralEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *BehavioralEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *BehavioralEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCompleted sets the "completed" field.
func (m *BehavioralEventMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *BehavioralEventMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *BehavioralEventMutation) ResetCompleted() {
	m.completed = nil
}

// SetSessionPerformance sets the "session_performance" field.
func (m *BehavioralEventMutation) SetSessionPerformance(f float64) {
	m.session_performance = &f
	m.addsession_performance = nil
}

// SessionPerformance returns the value of the "session_performance" field in the mutation.
func (m *BehavioralEventMutation) SessionPerformance() (r float64, exists bool) {
	v := m.session_performance
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionPerformance returns the old "session_performance" field's value of the BehavioralEvent entity.
// If the BehavioralEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralEventMutation) OldSessionPerformance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionPerformance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionPerformance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionPerformance: %w", err)
	}
	return oldValue.SessionPerformance, nil
}

// AddSessionPerformance adds f to the "session_performance" field.
func (m *BehavioralEventMutation) AddSessionPerformance(f float64) {
	if m.addsession_performance != nil {
		*m.addsession_performance += f
	} else {
		m.addsession_performance = &f
	}
}

// AddedSessionPerformance returns the value that was added to the "session_performance" field in this mutation.
func (m *BehavioralEventMutation) AddedSessionPerformance() (r float64, exists bool) {
	v := m.addsession_performance
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionPerformance resets all changes to the "session_performance" field.
func (m *BehavioralEventMutation) ResetSessionPerformance() {
	m.session_performance = nil
	m.addsession_performance = nil
}

// Where appends a list predicates to the BehavioralEventMutation builder.
func (m *BehavioralEventMutation) Where(ps ...predicate.BehavioralEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BehavioralEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BehavioralEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BehavioralEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BehavioralEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BehavioralEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BehavioralEvent).
func (m *BehavioralEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BehavioralEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, behavioralevent.FieldUserID)
	}
	if m.timestamp != nil {
		fields = append(fields, behavioralevent.FieldTimestamp)
	}
	if m.event_type != nil {
		fields = append(fields, behavioralevent.FieldEventType)
	}
	if m.content_type != nil {
		fields = append(fields, behavioralevent.FieldContentType)
	}
	if m.engaged_ms != nil {
		fields = append(fields, behavioralevent.FieldEngagedMs)
	}
	if m.score != nil {
		fields = append(fields, behavioralevent.FieldScore)
	}
	if m.completed != nil {
		fields = append(fields, behavioralevent.FieldCompleted)
	}
	if m.session_performance != nil {
		fields = append(fields, behavioralevent.FieldSessionPerformance)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BehavioralEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case behavioralevent.FieldUserID:
		return m.UserID()
	case behavioralevent.FieldTimestamp:
		return m.Timestamp()
	case behavioralevent.FieldEventType:
		return m.EventType()
	case behavioralevent.FieldContentType:
		return m.ContentType()
	case behavioralevent.FieldEngagedMs:
		return m.EngagedMs()
	case behavioralevent.FieldScore:
		return m.Score()
	case behavioralevent.FieldCompleted:
		return m.Completed()
	case behavioralevent.FieldSessionPerformance:
		return m.SessionPerformance()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BehavioralEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case behavioralevent.FieldUserID:
		return m.OldUserID(ctx)
	case behavioralevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case behavioralevent.FieldEventType:
		return m.OldEventType(ctx)
	case behavioralevent.FieldContentType:
		return m.OldContentType(ctx)
	case behavioralevent.FieldEngagedMs:
		return m.OldEngagedMs(ctx)
	case behavioralevent.FieldScore:
		return m.OldScore(ctx)
	case behavioralevent.FieldCompleted:
		return m.OldCompleted(ctx)
	case behavioralevent.FieldSessionPerformance:
		return m.OldSessionPerformance(ctx)
	}
	return nil, fmt.Errorf("unknown BehavioralEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehavioralEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case behavioralevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case behavioralevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case behavioralevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case behavioralevent.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case behavioralevent.FieldEngagedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagedMs(v)
		return nil
	case behavioralevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case behavioralevent.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case behavioralevent.FieldSessionPerformance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionPerformance(v)
		return nil
	}
	return fmt.Errorf("unknown BehavioralEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BehavioralEventMutation) AddedFields() []string {
	var fields []string
	if m.addengaged_ms != nil {
		fields = append(fields, behavioralevent.FieldEngagedMs)
	}
	if m.addscore != nil {
		fields = append(fields, behavioralevent.FieldScore)
	}
	if m.addsession_performance != nil {
		fields = append(fields, behavioralevent.FieldSessionPerformance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BehavioralEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case behavioralevent.FieldEngagedMs:
		return m.AddedEngagedMs()
	case behavioralevent.FieldScore:
		return m.AddedScore()
	case behavioralevent.FieldSessionPerformance:
		return m.AddedSessionPerformance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehavioralEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case behavioralevent.FieldEngagedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagedMs(v)
		return nil
	case behavioralevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case behavioralevent.FieldSessionPerformance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionPerformance(v)
		return nil
	}
	return fmt.Errorf("unknown BehavioralEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BehavioralEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(behavioralevent.FieldContentType) {
		fields = append(fields, behavioralevent.FieldContentType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BehavioralEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BehavioralEventMutation) ClearField(name string) error {
	switch name {
	case behavioralevent.FieldContentType:
		m.ClearContentType()
		return nil
	}
	return fmt.Errorf("unknown BehavioralEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BehavioralEventMutation) ResetField(name string) error {
	switch name {
	case behavioralevent.FieldUserID:
		m.ResetUserID()
		return nil
	case behavioralevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case behavioralevent.FieldEventType:
		m.ResetEventType()
		return nil
	case behavioralevent.FieldContentType:
		m.ResetContentType()
		return nil
	case behavioralevent.FieldEngagedMs:
		m.ResetEngagedMs()
		return nil
	case behavioralevent.FieldScore:
		m.ResetScore()
		return nil
	case behavioralevent.FieldCompleted:
		m.ResetCompleted()
		return nil
	case behavioralevent.FieldSessionPerformance:
		m.ResetSessionPerformance()
		return nil
	}
	return fmt.Errorf("unknown BehavioralEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BehavioralEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BehavioralEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BehavioralEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BehavioralEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BehavioralEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BehavioralEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BehavioralEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BehavioralEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BehavioralEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BehavioralEvent edge %s", name)
}

// BehavioralInsightMutation represents an operation that mutates the BehavioralInsight nodes in the graph.
type BehavioralInsightMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	user_id                  *string
	insight_type             *string
	title                    *string
	body                     *string
	impact                   *float64
	addimpact                *float64
	confidence               *float64
	addconfidence            *float64
	source_pattern_ids       *[]string
	appendsource_pattern_ids []string
	acknowledged             *bool
	created_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*BehavioralInsight, error)
	predicates               []predicate.BehavioralInsight
}

var _ ent.Mutation = (*BehavioralInsightMutation)(nil)

// behavioralinsightOption allows management of the mutation configuration using functional options.
type behavioralinsightOption func(*BehavioralInsightMutation)

// newBehavioralInsightMutation creates new mutation for the BehavioralInsight entity.
func newBehavioralInsightMutation(c config, op Op, opts ...behavioralinsightOption) *BehavioralInsightMutation {
	m := &BehavioralInsightMutation{
		config:        c,
		op:            op,
		typ:           TypeBehavioralInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBehavioralInsightID sets the ID field of the mutation.
func withBehavioralInsightID(id string) behavioralinsightOption {
	return func(m *BehavioralInsightMutation) {
		var (
			err   error
			once  sync.Once
			value *BehavioralInsight
		)
		m.oldValue = func(ctx context.Context) (*BehavioralInsight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BehavioralInsight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBehavioralInsight sets the old BehavioralInsight of the mutation.
func withBehavioralInsight(node *BehavioralInsight) behavioralinsightOption {
	return func(m *BehavioralInsightMutation) {
		m.oldValue = func(context.Context) (*BehavioralInsight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BehavioralInsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BehavioralInsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BehavioralInsight entities.
func (m *BehavioralInsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BehavioralInsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BehavioralInsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BehavioralInsight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BehavioralInsightMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BehavioralInsightMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BehavioralInsightMutation) ResetUserID() {
	m.user_id = nil
}

// SetInsightType sets the "insight_type" field.
func (m *BehavioralInsightMutation) SetInsightType(s string) {
	m.insight_type = &s
}

// InsightType returns the value of the "insight_type" field in the mutation.
func (m *BehavioralInsightMutation) InsightType() (r string, exists bool) {
	v := m.insight_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInsightType returns the old "insight_type" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldInsightType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsightType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsightType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsightType: %w", err)
	}
	return oldValue.InsightType, nil
}

// ResetInsightType resets all changes to the "insight_type" field.
func (m *BehavioralInsightMutation) ResetInsightType() {
	m.insight_type = nil
}

// SetTitle sets the "title" field.
func (m *BehavioralInsightMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BehavioralInsightMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *BehavioralInsightMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *BehavioralInsightMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *BehavioralInsightMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *BehavioralInsightMutation) ClearBody() {
	m.body = nil
	m.clearedFields[behavioralinsight.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *BehavioralInsightMutation) BodyCleared() bool {
	_, ok := m.clearedFields[behavioralinsight.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *BehavioralInsightMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, behavioralinsight.FieldBody)
}

// SetImpact sets the "impact" field.
func (m *BehavioralInsightMutation) SetImpact(f float64) {
	m.impact = &f
	m.addimpact = nil
}

// Impact returns the value of the "impact" field in the mutation.
func (m *BehavioralInsightMutation) Impact() (r float64, exists bool) {
	v := m.impact
	if v == nil {
		return
	}
	return *v, true
}

// OldImpact returns the old "impact" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldImpact(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpact: %w", err)
	}
	return oldValue.Impact, nil
}

// AddImpact adds f to the "impact" field.
func (m *BehavioralInsightMutation) AddImpact(f float64) {
	if m.addimpact != nil {
		*m.addimpact += f
	} else {
		m.addimpact = &f
	}
}

// AddedImpact returns the value that was added to the "impact" field in this mutation.
func (m *BehavioralInsightMutation) AddedImpact() (r float64, exists bool) {
	v := m.addimpact
	if v == nil {
		return
	}
	return *v, true
}

// ResetImpact resets all changes to the "impact" field.
func (m *BehavioralInsightMutation) ResetImpact() {
	m.impact = nil
	m.addimpact = nil
}

// SetConfidence sets the "confidence" field.
func (m *BehavioralInsightMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BehavioralInsightMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BehavioralInsightMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BehavioralInsightMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BehavioralInsightMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (m *BehavioralInsightMutation) SetSourcePatternIds(s []string) {
	m.source_pattern_ids = &s
	m.appendsource_pattern_ids = nil
}

// SourcePatternIds returns the value of the "source_pattern_ids" field in the mutation.
func (m *BehavioralInsightMutation) SourcePatternIds() (r []string, exists bool) {
	v := m.source_pattern_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePatternIds returns the old "source_pattern_ids" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldSourcePatternIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePatternIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePatternIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePatternIds: %w", err)
	}
	return oldValue.SourcePatternIds, nil
}

// AppendSourcePatternIds adds s to the "source_pattern_ids" field.
func (m *BehavioralInsightMutation) AppendSourcePatternIds(s []string) {
	m.appendsource_pattern_ids = append(m.appendsource_pattern_ids, s...)
}

// AppendedSourcePatternIds returns the list of values that were appended to the "source_pattern_ids" field in this mutation.
func (m *BehavioralInsightMutation) AppendedSourcePatternIds() ([]string, bool) {
	if len(m.appendsource_pattern_ids) == 0 {
		return nil, false
	}
	return m.appendsource_pattern_ids, true
}

// ClearSourcePatternIds clears the value of the "source_pattern_ids" field.
func (m *BehavioralInsightMutation) ClearSourcePatternIds() {
	m.source_pattern_ids = nil
	m.appendsource_pattern_ids = nil
	m.clearedFields[behavioralinsight.FieldSourcePatternIds] = struct{}{}
}

// SourcePatternIdsCleared returns if the "source_pattern_ids" field was cleared in this mutation.
func (m *BehavioralInsightMutation) SourcePatternIdsCleared() bool {
	_, ok := m.clearedFields[behavioralinsight.FieldSourcePatternIds]
	return ok
}

// ResetSourcePatternIds resets all changes to the "source_pattern_ids" field.
func (m *BehavioralInsightMutation) ResetSourcePatternIds() {
	m.source_pattern_ids = nil
	m.appendsource_pattern_ids = nil
	delete(m.clearedFields, behavioralinsight.FieldSourcePatternIds)
}

// SetAcknowledged sets the "acknowledged" field.
func (m *BehavioralInsightMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *BehavioralInsightMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *BehavioralInsightMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BehavioralInsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BehavioralInsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BehavioralInsight entity.
// If the BehavioralInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralInsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BehavioralInsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BehavioralInsightMutation builder.
func (m *BehavioralInsightMutation) Where(ps ...predicate.BehavioralInsight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BehavioralInsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BehavioralInsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BehavioralInsight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BehavioralInsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BehavioralInsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BehavioralInsight).
func (m *BehavioralInsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BehavioralInsightMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, behavioralinsight.FieldUserID)
	}
	if m.insight_type != nil {
		fields = append(fields, behavioralinsight.FieldInsightType)
	}
	if m.title != nil {
		fields = append(fields, behavioralinsight.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, behavioralinsight.FieldBody)
	}
	if m.impact != nil {
		fields = append(fields, behavioralinsight.FieldImpact)
	}
	if m.confidence != nil {
		fields = append(fields, behavioralinsight.FieldConfidence)
	}
	if m.source_pattern_ids != nil {
		fields = append(fields, behavioralinsight.FieldSourcePatternIds)
	}
	if m.acknowledged != nil {
		fields = append(fields, behavioralinsight.FieldAcknowledged)
	}
	if m.created_at != nil {
		fields = append(fields, behavioralinsight.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BehavioralInsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case behavioralinsight.FieldUserID:
		return m.UserID()
	case behavioralinsight.FieldInsightType:
		return m.InsightType()
	case behavioralinsight.FieldTitle:
		return m.Title()
	case behavioralinsight.FieldBody:
		return m.Body()
	case behavioralinsight.FieldImpact:
		return m.Impact()
	case behavioralinsight.FieldConfidence:
		return m.Confidence()
	case behavioralinsight.FieldSourcePatternIds:
		return m.SourcePatternIds()
	case behavioralinsight.FieldAcknowledged:
		return m.Acknowledged()
	case behavioralinsight.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BehavioralInsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case behavioralinsight.FieldUserID:
		return m.OldUserID(ctx)
	case behavioralinsight.FieldInsightType:
		return m.OldInsightType(ctx)
	case behavioralinsight.FieldTitle:
		return m.OldTitle(ctx)
	case behavioralinsight.FieldBody:
		return m.OldBody(ctx)
	case behavioralinsight.FieldImpact:
		return m.OldImpact(ctx)
	case behavioralinsight.FieldConfidence:
		return m.OldConfidence(ctx)
	case behavioralinsight.FieldSourcePatternIds:
		return m.OldSourcePatternIds(ctx)
	case behavioralinsight.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case behavioralinsight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BehavioralInsight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehavioralInsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case behavioralinsight.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case behavioralinsight.FieldInsightType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsightType(v)
		return nil
	case behavioralinsight.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case behavioralinsight.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case behavioralinsight.FieldImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpact(v)
		return nil
	case behavioralinsight.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case behavioralinsight.FieldSourcePatternIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePatternIds(v)
		return nil
	case behavioralinsight.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case behavioralinsight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BehavioralInsight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BehavioralInsightMutation) AddedFields() []string {
	var fields []string
	if m.addimpact != nil {
		fields = append(fields, behavioralinsight.FieldImpact)
	}
	if m.addconfidence != nil {
		fields = append(fields, behavioralinsight.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BehavioralInsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case behavioralinsight.FieldImpact:
		return m.AddedImpact()
	case behavioralinsight.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehavioralInsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case behavioralinsight.FieldImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpact(v)
		return nil
	case behavioralinsight.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown BehavioralInsight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BehavioralInsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(behavioralinsight.FieldBody) {
		fields = append(fields, behavioralinsight.FieldBody)
	}
	if m.FieldCleared(behavioralinsight.FieldSourcePatternIds) {
		fields = append(fields, behavioralinsight.FieldSourcePatternIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BehavioralInsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BehavioralInsightMutation) ClearField(name string) error {
	switch name {
	case behavioralinsight.FieldBody:
		m.ClearBody()
		return nil
	case behavioralinsight.FieldSourcePatternIds:
		m.ClearSourcePatternIds()
		return nil
	}
	return fmt.Errorf("unknown BehavioralInsight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BehavioralInsightMutation) ResetField(name string) error {
	switch name {
	case behavioralinsight.FieldUserID:
		m.ResetUserID()
		return nil
	case behavioralinsight.FieldInsightType:
		m.ResetInsightType()
		return nil
	case behavioralinsight.FieldTitle:
		m.ResetTitle()
		return nil
	case behavioralinsight.FieldBody:
		m.ResetBody()
		return nil
	case behavioralinsight.FieldImpact:
		m.ResetImpact()
		return nil
	case behavioralinsight.FieldConfidence:
		m.ResetConfidence()
		return nil
	case behavioralinsight.FieldSourcePatternIds:
		m.ResetSourcePatternIds()
		return nil
	case behavioralinsight.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case behavioralinsight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BehavioralInsight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BehavioralInsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BehavioralInsightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BehavioralInsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BehavioralInsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BehavioralInsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BehavioralInsightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BehavioralInsightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BehavioralInsight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BehavioralInsightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BehavioralInsight edge %s", name)
}

// BehavioralPatternMutation represents an operation that mutates the BehavioralPattern nodes in the graph.
type BehavioralPatternMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	user_id                        *string
	pattern_type                   *string
	pattern_name                   *string
	confidence                     *float64
	addconfidence                  *float64
	data                           *json.RawMessage
	appenddata                     json.RawMessage
	evidence                       *[]string
	appendevidence                 []string
	occurrence_count               *int
	addoccurrence_count            *int
	first_detected_at              *time.Time
	last_seen_at                   *time.Time
	consecutive_non_occurrences    *int
	addconsecutive_non_occurrences *int
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*BehavioralPattern, error)
	predicates                     []predicate.BehavioralPattern
}

var _ ent.Mutation = (*BehavioralPatternMutation)(nil)

// behavioralpatternOption allows management of the mutation configuration using functional options.
type behavioralpatternOption func(*BehavioralPatternMutation)

// newBehavioralPatternMutation creates new mutation for the BehavioralPattern entity.
func newBehavioralPatternMutation(c config, op Op, opts ...behavioralpatternOption) *BehavioralPatternMutation {
	m := &BehavioralPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeBehavioralPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBehavioralPatternID sets the ID field of the mutation.
func withBehavioralPatternID(id string) behavioralpatternOption {
	return func(m *BehavioralPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *BehavioralPattern
		)
		m.oldValue = func(ctx context.Context) (*BehavioralPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BehavioralPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBehavioralPattern sets the old BehavioralPattern of the mutation.
func withBehavioralPattern(node *BehavioralPattern) behavioralpatternOption {
	return func(m *BehavioralPatternMutation) {
		m.oldValue = func(context.Context) (*BehavioralPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BehavioralPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BehavioralPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BehavioralPattern entities.
func (m *BehavioralPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BehavioralPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BehavioralPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BehavioralPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BehavioralPatternMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BehavioralPatternMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BehavioralPatternMutation) ResetUserID() {
	m.user_id = nil
}

// SetPatternType sets the "pattern_type" field.
func (m *BehavioralPatternMutation) SetPatternType(s string) {
	m.pattern_type = &s
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *BehavioralPatternMutation) PatternType() (r string, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldPatternType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *BehavioralPatternMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetPatternName sets the "pattern_name" field.
func (m *BehavioralPatternMutation) SetPatternName(s string) {
	m.pattern_name = &s
}

// PatternName returns the value of the "pattern_name" field in the mutation.
func (m *BehavioralPatternMutation) PatternName() (r string, exists bool) {
	v := m.pattern_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternName returns the old "pattern_name" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldPatternName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternName: %w", err)
	}
	return oldValue.PatternName, nil
}

// ResetPatternName resets all changes to the "pattern_name" field.
func (m *BehavioralPatternMutation) ResetPatternName() {
	m.pattern_name = nil
}

// SetConfidence sets the "confidence" field.
func (m *BehavioralPatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BehavioralPatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BehavioralPatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BehavioralPatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BehavioralPatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetData sets the "data" field.
func (m *BehavioralPatternMutation) SetData(jm json.RawMessage) {
	m.data = &jm
	m.appenddata = nil
}

// Data returns the value of the "data" field in the mutation.
func (m *BehavioralPatternMutation) Data() (r json.RawMessage, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// AppendData adds jm to the "data" field.
func (m *BehavioralPatternMutation) AppendData(jm json.RawMessage) {
	m.appenddata = append(m.appenddata, jm...)
}

// AppendedData returns the list of values that were appended to the "data" field in this mutation.
func (m *BehavioralPatternMutation) AppendedData() (json.RawMessage, bool) {
	if len(m.appenddata) == 0 {
		return nil, false
	}
	return m.appenddata, true
}

// ResetData resets all changes to the "data" field.
func (m *BehavioralPatternMutation) ResetData() {
	m.data = nil
	m.appenddata = nil
}

// SetEvidence sets the "evidence" field.
func (m *BehavioralPatternMutation) SetEvidence(s []string) {
	m.evidence = &s
	m.appendevidence = nil
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *BehavioralPatternMutation) Evidence() (r []string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldEvidence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// AppendEvidence adds s to the "evidence" field.
func (m *BehavioralPatternMutation) AppendEvidence(s []string) {
	m.appendevidence = append(m.appendevidence, s...)
}

// AppendedEvidence returns the list of values that were appended to the "evidence" field in this mutation.
func (m *BehavioralPatternMutation) AppendedEvidence() ([]string, bool) {
	if len(m.appendevidence) == 0 {
		return nil, false
	}
	return m.appendevidence, true
}

// ClearEvidence clears the value of the "evidence" field.
func (m *BehavioralPatternMutation) ClearEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	m.clearedFields[behavioralpattern.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *BehavioralPatternMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[behavioralpattern.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *BehavioralPatternMutation) ResetEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	delete(m.clearedFields, behavioralpattern.FieldEvidence)
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (m *BehavioralPatternMutation) SetOccurrenceCount(i int) {
	m.occurrence_count = &i
	m.addoccurrence_count = nil
}

// OccurrenceCount returns the value of the "occurrence_count" field in the mutation.
func (m *BehavioralPatternMutation) OccurrenceCount() (r int, exists bool) {
	v := m.occurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrenceCount returns the old "occurrence_count" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldOccurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrenceCount: %w", err)
	}
	return oldValue.OccurrenceCount, nil
}

// AddOccurrenceCount adds i to the "occurrence_count" field.
func (m *BehavioralPatternMutation) AddOccurrenceCount(i int) {
	if m.addoccurrence_count != nil {
		*m.addoccurrence_count += i
	} else {
		m.addoccurrence_count = &i
	}
}

// AddedOccurrenceCount returns the value that was added to the "occurrence_count" field in this mutation.
func (m *BehavioralPatternMutation) AddedOccurrenceCount() (r int, exists bool) {
	v := m.addoccurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrenceCount resets all changes to the "occurrence_count" field.
func (m *BehavioralPatternMutation) ResetOccurrenceCount() {
	m.occurrence_count = nil
	m.addoccurrence_count = nil
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (m *BehavioralPatternMutation) SetFirstDetectedAt(t time.Time) {
	m.first_detected_at = &t
}

// FirstDetectedAt returns the value of the "first_detected_at" field in the mutation.
func (m *BehavioralPatternMutation) FirstDetectedAt() (r time.Time, exists bool) {
	v := m.first_detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDetectedAt returns the old "first_detected_at" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldFirstDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDetectedAt: %w", err)
	}
	return oldValue.FirstDetectedAt, nil
}

// ResetFirstDetectedAt resets all changes to the "first_detected_at" field.
func (m *BehavioralPatternMutation) ResetFirstDetectedAt() {
	m.first_detected_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *BehavioralPatternMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *BehavioralPatternMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *BehavioralPatternMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetConsecutiveNonOccurrences sets the "consecutive_non_occurrences" field.
func (m *BehavioralPatternMutation) SetConsecutiveNonOccurrences(i int) {
	m.consecutive_non_occurrences = &i
	m.addconsecutive_non_occurrences = nil
}

// ConsecutiveNonOccurrences returns the value of the "consecutive_non_occurrences" field in the mutation.
func (m *BehavioralPatternMutation) ConsecutiveNonOccurrences() (r int, exists bool) {
	v := m.consecutive_non_occurrences
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveNonOccurrences returns the old "consecutive_non_occurrences" field's value of the BehavioralPattern entity.
// If the BehavioralPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BehavioralPatternMutation) OldConsecutiveNonOccurrences(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveNonOccurrences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveNonOccurrences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveNonOccurrences: %w", err)
	}
	return oldValue.ConsecutiveNonOccurrences, nil
}

// AddConsecutiveNonOccurrences adds i to the "consecutive_non_occurrences" field.
func (m *BehavioralPatternMutation) AddConsecutiveNonOccurrences(i int) {
	if m.addconsecutive_non_occurrences != nil {
		*m.addconsecutive_non_occurrences += i
	} else {
		m.addconsecutive_non_occurrences = &i
	}
}

// AddedConsecutiveNonOccurrences returns the value that was added to the "consecutive_non_occurrences" field in this mutation.
func (m *BehavioralPatternMutation) AddedConsecutiveNonOccurrences() (r int, exists bool) {
	v := m.addconsecutive_non_occurrences
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveNonOccurrences resets all changes to the "consecutive_non_occurrences" field.
func (m *BehavioralPatternMutation) ResetConsecutiveNonOccurrences() {
	m.consecutive_non_occurrences = nil
	m.addconsecutive_non_occurrences = nil
}

// Where appends a list predicates to the BehavioralPatternMutation builder.
func (m *BehavioralPatternMutation) Where(ps ...predicate.BehavioralPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BehavioralPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BehavioralPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BehavioralPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BehavioralPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BehavioralPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BehavioralPattern).
func (m *BehavioralPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BehavioralPatternMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, behavioralpattern.FieldUserID)
	}
	if m.pattern_type != nil {
		fields = append(fields, behavioralpattern.FieldPatternType)
	}
	if m.pattern_name != nil {
		fields = append(fields, behavioralpattern.FieldPatternName)
	}
	if m.confidence != nil {
		fields = append(fields, behavioralpattern.FieldConfidence)
	}
	if m.data != nil {
		fields = append(fields, behavioralpattern.FieldData)
	}
	if m.evidence != nil {
		fields = append(fields, behavioralpattern.FieldEvidence)
	}
	if m.occurrence_count != nil {
		fields = append(fields, behavioralpattern.FieldOccurrenceCount)
	}
	if m.first_detected_at != nil {
		fields = append(fields, behavioralpattern.FieldFirstDetectedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, behavioralpattern.FieldLastSeenAt)
	}
	if m.consecutive_non_occurrences != nil {
		fields = append(fields, behavioralpattern.FieldConsecutiveNonOccurrences)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BehavioralPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case behavioralpattern.FieldUserID:
		return m.UserID()
	case behavioralpattern.FieldPatternType:
		return m.PatternType()
	case behavioralpattern.FieldPatternName:
		return m.PatternName()
	case behavioralpattern.FieldConfidence:
		return m.Confidence()
	case behavioralpattern.FieldData:
		return m.Data()
	case behavioralpattern.FieldEvidence:
		return m.Evidence()
	case behavioralpattern.FieldOccurrenceCount:
		return m.OccurrenceCount()
	case behavioralpattern.FieldFirstDetectedAt:
		return m.FirstDetectedAt()
	case behavioralpattern.FieldLastSeenAt:
		return m.LastSeenAt()
	case behavioralpattern.FieldConsecutiveNonOccurrences:
		return m.ConsecutiveNonOccurrences()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BehavioralPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case behavioralpattern.FieldUserID:
		return m.OldUserID(ctx)
	case behavioralpattern.FieldPatternType:
		return m.OldPatternType(ctx)
	case behavioralpattern.FieldPatternName:
		return m.OldPatternName(ctx)
	case behavioralpattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case behavioralpattern.FieldData:
		return m.OldData(ctx)
	case behavioralpattern.FieldEvidence:
		return m.OldEvidence(ctx)
	case behavioralpattern.FieldOccurrenceCount:
		return m.OldOccurrenceCount(ctx)
	case behavioralpattern.FieldFirstDetectedAt:
		return m.OldFirstDetectedAt(ctx)
	case behavioralpattern.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case behavioralpattern.FieldConsecutiveNonOccurrences:
		return m.OldConsecutiveNonOccurrences(ctx)
	}
	return nil, fmt.Errorf("unknown BehavioralPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehavioralPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case behavioralpattern.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case behavioralpattern.FieldPatternType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case behavioralpattern.FieldPatternName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternName(v)
		return nil
	case behavioralpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case behavioralpattern.FieldData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case behavioralpattern.FieldEvidence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case behavioralpattern.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrenceCount(v)
		return nil
	case behavioralpattern.FieldFirstDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDetectedAt(v)
		return nil
	case behavioralpattern.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case behavioralpattern.FieldConsecutiveNonOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveNonOccurrences(v)
		return nil
	}
	return fmt.Errorf("unknown BehavioralPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BehavioralPatternMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, behavioralpattern.FieldConfidence)
	}
	if m.addoccurrence_count != nil {
		fields = append(fields, behavioralpattern.FieldOccurrenceCount)
	}
	if m.addconsecutive_non_occurrences != nil {
		fields = append(fields, behavioralpattern.FieldConsecutiveNonOccurrences)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BehavioralPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case behavioralpattern.FieldConfidence:
		return m.AddedConfidence()
	case behavioralpattern.FieldOccurrenceCount:
		return m.AddedOccurrenceCount()
	case behavioralpattern.FieldConsecutiveNonOccurrences:
		return m.AddedConsecutiveNonOccurrences()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BehavioralPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case behavioralpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case behavioralpattern.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrenceCount(v)
		return nil
	case behavioralpattern.FieldConsecutiveNonOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveNonOccurrences(v)
		return nil
	}
	return fmt.Errorf("unknown BehavioralPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BehavioralPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(behavioralpattern.FieldEvidence) {
		fields = append(fields, behavioralpattern.FieldEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BehavioralPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BehavioralPatternMutation) ClearField(name string) error {
	switch name {
	case behavioralpattern.FieldEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown BehavioralPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BehavioralPatternMutation) ResetField(name string) error {
	switch name {
	case behavioralpattern.FieldUserID:
		m.ResetUserID()
		return nil
	case behavioralpattern.FieldPatternType:
		m.ResetPatternType()
		return nil
	case behavioralpattern.FieldPatternName:
		m.ResetPatternName()
		return nil
	case behavioralpattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case behavioralpattern.FieldData:
		m.ResetData()
		return nil
	case behavioralpattern.FieldEvidence:
		m.ResetEvidence()
		return nil
	case behavioralpattern.FieldOccurrenceCount:
		m.ResetOccurrenceCount()
		return nil
	case behavioralpattern.FieldFirstDetectedAt:
		m.ResetFirstDetectedAt()
		return nil
	case behavioralpattern.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case behavioralpattern.FieldConsecutiveNonOccurrences:
		m.ResetConsecutiveNonOccurrences()
		return nil
	}
	return fmt.Errorf("unknown BehavioralPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BehavioralPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BehavioralPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BehavioralPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BehavioralPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BehavioralPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BehavioralPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BehavioralPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BehavioralPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BehavioralPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BehavioralPattern edge %s", name)
}

// BurnoutAssessmentMutation represents an operation that mutates the BurnoutAssessment nodes in the graph.
type BurnoutAssessmentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	risk_score      *float64
	addrisk_score   *float64
	risk_level      *string
	factors         *[]schema.FactorSample
	appendfactors   []schema.FactorSample
	signals         *[]schema.SignalSample
	appendsignals   []schema.SignalSample
	intervention    **schema.InterventionSample
	assessment_date *time.Time
	confidence      *float64
	addconfidence   *float64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*BurnoutAssessment, error)
	predicates      []predicate.BurnoutAssessment
}

var _ ent.Mutation = (*BurnoutAssessmentMutation)(nil)

// burnoutassessmentOption allows management of the mutation configuration using functional options.
type burnoutassessmentOption func(*BurnoutAssessmentMutation)

// newBurnoutAssessmentMutation creates new mutation for the BurnoutAssessment entity.
func newBurnoutAssessmentMutation(c config, op Op, opts ...burnoutassessmentOption) *BurnoutAssessmentMutation {
	m := &BurnoutAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeBurnoutAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBurnoutAssessmentID sets the ID field of the mutation.
func withBurnoutAssessmentID(id string) burnoutassessmentOption {
	return func(m *BurnoutAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *BurnoutAssessment
		)
		m.oldValue = func(ctx context.Context) (*BurnoutAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BurnoutAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBurnoutAssessment sets the old BurnoutAssessment of the mutation.
func withBurnoutAssessment(node *BurnoutAssessment) burnoutassessmentOption {
	return func(m *BurnoutAssessmentMutation) {
		m.oldValue = func(context.Context) (*BurnoutAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BurnoutAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BurnoutAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BurnoutAssessment entities.
func (m *BurnoutAssessmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BurnoutAssessmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BurnoutAssessmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BurnoutAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BurnoutAssessmentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BurnoutAssessmentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BurnoutAssessmentMutation) ResetUserID() {
	m.user_id = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *BurnoutAssessmentMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *BurnoutAssessmentMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *BurnoutAssessmentMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *BurnoutAssessmentMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *BurnoutAssessmentMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *BurnoutAssessmentMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *BurnoutAssessmentMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *BurnoutAssessmentMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetFactors sets the "factors" field.
func (m *BurnoutAssessmentMutation) SetFactors(ss []schema.FactorSample) {
	m.factors = &ss
	m.appendfactors = nil
}

// Factors returns the value of the "factors" field in the mutation.
func (m *BurnoutAssessmentMutation) Factors() (r []schema.FactorSample, exists bool) {
	v := m.factors
	if v == nil {
		return
	}
	return *v, true
}

// OldFactors returns the old "factors" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldFactors(ctx context.Context) (v []schema.FactorSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactors: %w", err)
	}
	return oldValue.Factors, nil
}

// AppendFactors adds ss to the "factors" field.
func (m *BurnoutAssessmentMutation) AppendFactors(ss []schema.FactorSample) {
	m.appendfactors = append(m.appendfactors, ss...)
}

// AppendedFactors returns the list of values that were appended to the "factors" field in this mutation.
func (m *BurnoutAssessmentMutation) AppendedFactors() ([]schema.FactorSample, bool) {
	if len(m.appendfactors) == 0 {
		return nil, false
	}
	return m.appendfactors, true
}

// ResetFactors resets all changes to the "factors" field.
func (m *BurnoutAssessmentMutation) ResetFactors() {
	m.factors = nil
	m.appendfactors = nil
}

// SetSignals sets the "signals" field.
func (m *BurnoutAssessmentMutation) SetSignals(ss []schema.SignalSample) {
	m.signals = &ss
	m.appendsignals = nil
}

// Signals returns the value of the "signals" field in the mutation.
func (m *BurnoutAssessmentMutation) Signals() (r []schema.SignalSample, exists bool) {
	v := m.signals
	if v == nil {
		return
	}
	return *v, true
}

// OldSignals returns the old "signals" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldSignals(ctx context.Context) (v []schema.SignalSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignals: %w", err)
	}
	return oldValue.Signals, nil
}

// AppendSignals adds ss to the "signals" field.
func (m *BurnoutAssessmentMutation) AppendSignals(ss []schema.SignalSample) {
	m.appendsignals = append(m.appendsignals, ss...)
}

// AppendedSignals returns the list of values that were appended to the "signals" field in this mutation.
func (m *BurnoutAssessmentMutation) AppendedSignals() ([]schema.SignalSample, bool) {
	if len(m.appendsignals) == 0 {
		return nil, false
	}
	return m.appendsignals, true
}

// ClearSignals clears the value of the "signals" field.
func (m *BurnoutAssessmentMutation) ClearSignals() {
	m.signals = nil
	m.appendsignals = nil
	m.clearedFields[burnoutassessment.FieldSignals] = struct{}{}
}

// SignalsCleared returns if the "signals" field was cleared in this mutation.
func (m *BurnoutAssessmentMutation) SignalsCleared() bool {
	_, ok := m.clearedFields[burnoutassessment.FieldSignals]
	return ok
}

// ResetSignals resets all changes to the "signals" field.
func (m *BurnoutAssessmentMutation) ResetSignals() {
	m.signals = nil
	m.appendsignals = nil
	delete(m.clearedFields, burnoutassessment.FieldSignals)
}

// SetIntervention sets the "intervention" field.
func (m *BurnoutAssessmentMutation) SetIntervention(ss *schema.InterventionSample) {
	m.intervention = &ss
}

// Intervention returns the value of the "intervention" field in the mutation.
func (m *BurnoutAssessmentMutation) Intervention() (r *schema.InterventionSample, exists bool) {
	v := m.intervention
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervention returns the old "intervention" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldIntervention(ctx context.Context) (v *schema.InterventionSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervention is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervention requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervention: %w", err)
	}
	return oldValue.Intervention, nil
}

// ClearIntervention clears the value of the "intervention" field.
func (m *BurnoutAssessmentMutation) ClearIntervention() {
	m.intervention = nil
	m.clearedFields[burnoutassessment.FieldIntervention] = struct{}{}
}

// InterventionCleared returns if the "intervention" field was cleared in this mutation.
func (m *BurnoutAssessmentMutation) InterventionCleared() bool {
	_, ok := m.clearedFields[burnoutassessment.FieldIntervention]
	return ok
}

// ResetIntervention resets all changes to the "intervention" field.
func (m *BurnoutAssessmentMutation) ResetIntervention() {
	m.intervention = nil
	delete(m.clearedFields, burnoutassessment.FieldIntervention)
}

// SetAssessmentDate sets the "assessment_date" field.
func (m *BurnoutAssessmentMutation) SetAssessmentDate(t time.Time) {
	m.assessment_date = &t
}

// AssessmentDate returns the value of the "assessment_date" field in the mutation.
func (m *BurnoutAssessmentMutation) AssessmentDate() (r time.Time, exists bool) {
	v := m.assessment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentDate returns the old "assessment_date" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldAssessmentDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentDate: %w", err)
	}
	return oldValue.AssessmentDate, nil
}

// ResetAssessmentDate resets all changes to the "assessment_date" field.
func (m *BurnoutAssessmentMutation) ResetAssessmentDate() {
	m.assessment_date = nil
}

// SetConfidence sets the "confidence" field.
func (m *BurnoutAssessmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BurnoutAssessmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BurnoutAssessmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BurnoutAssessmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BurnoutAssessmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// Where appends a list predicates to the BurnoutAssessmentMutation builder.
func (m *BurnoutAssessmentMutation) Where(ps ...predicate.BurnoutAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BurnoutAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BurnoutAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BurnoutAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BurnoutAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BurnoutAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BurnoutAssessment).
func (m *BurnoutAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BurnoutAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, burnoutassessment.FieldUserID)
	}
	if m.risk_score != nil {
		fields = append(fields, burnoutassessment.FieldRiskScore)
	}
	if m.risk_level != nil {
		fields = append(fields, burnoutassessment.FieldRiskLevel)
	}
	if m.factors != nil {
		fields = append(fields, burnoutassessment.FieldFactors)
	}
	if m.signals != nil {
		fields = append(fields, burnoutassessment.FieldSignals)
	}
	if m.intervention != nil {
		fields = append(fields, burnoutassessment.FieldIntervention)
	}
	if m.assessment_date != nil {
		fields = append(fields, burnoutassessment.FieldAssessmentDate)
	}
	if m.confidence != nil {
		fields = append(fields, burnoutassessment.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BurnoutAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case burnoutassessment.FieldUserID:
		return m.UserID()
	case burnoutassessment.FieldRiskScore:
		return m.RiskScore()
	case burnoutassessment.FieldRiskLevel:
		return m.RiskLevel()
	case burnoutassessment.FieldFactors:
		return m.Factors()
	case burnoutassessment.FieldSignals:
		return m.Signals()
	case burnoutassessment.FieldIntervention:
		return m.Intervention()
	case burnoutassessment.FieldAssessmentDate:
		return m.AssessmentDate()
	case burnoutassessment.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BurnoutAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case burnoutassessment.FieldUserID:
		return m.OldUserID(ctx)
	case burnoutassessment.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case burnoutassessment.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case burnoutassessment.FieldFactors:
		return m.OldFactors(ctx)
	case burnoutassessment.FieldSignals:
		return m.OldSignals(ctx)
	case burnoutassessment.FieldIntervention:
		return m.OldIntervention(ctx)
	case burnoutassessment.FieldAssessmentDate:
		return m.OldAssessmentDate(ctx)
	case burnoutassessment.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown BurnoutAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BurnoutAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case burnoutassessment.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case burnoutassessment.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case burnoutassessment.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case burnoutassessment.FieldFactors:
		v, ok := value.([]schema.FactorSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactors(v)
		return nil
	case burnoutassessment.FieldSignals:
		v, ok := value.([]schema.SignalSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignals(v)
		return nil
	case burnoutassessment.FieldIntervention:
		v, ok := value.(*schema.InterventionSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervention(v)
		return nil
	case burnoutassessment.FieldAssessmentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentDate(v)
		return nil
	case burnoutassessment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BurnoutAssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addrisk_score != nil {
		fields = append(fields, burnoutassessment.FieldRiskScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, burnoutassessment.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BurnoutAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case burnoutassessment.FieldRiskScore:
		return m.AddedRiskScore()
	case burnoutassessment.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BurnoutAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case burnoutassessment.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	case burnoutassessment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BurnoutAssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(burnoutassessment.FieldSignals) {
		fields = append(fields, burnoutassessment.FieldSignals)
	}
	if m.FieldCleared(burnoutassessment.FieldIntervention) {
		fields = append(fields, burnoutassessment.FieldIntervention)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BurnoutAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BurnoutAssessmentMutation) ClearField(name string) error {
	switch name {
	case burnoutassessment.FieldSignals:
		m.ClearSignals()
		return nil
	case burnoutassessment.FieldIntervention:
		m.ClearIntervention()
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BurnoutAssessmentMutation) ResetField(name string) error {
	switch name {
	case burnoutassessment.FieldUserID:
		m.ResetUserID()
		return nil
	case burnoutassessment.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case burnoutassessment.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case burnoutassessment.FieldFactors:
		m.ResetFactors()
		return nil
	case burnoutassessment.FieldSignals:
		m.ResetSignals()
		return nil
	case burnoutassessment.FieldIntervention:
		m.ResetIntervention()
		return nil
	case burnoutassessment.FieldAssessmentDate:
		m.ResetAssessmentDate()
		return nil
	case burnoutassessment.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BurnoutAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BurnoutAssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BurnoutAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BurnoutAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BurnoutAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BurnoutAssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BurnoutAssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BurnoutAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BurnoutAssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BurnoutAssessment edge %s", name)
}

// LearningProfileMutation represents an operation that mutates the LearningProfile nodes in the graph.
type LearningProfileMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	user_id                 *string
	preferred_windows       *[]schema.WindowSample
	appendpreferred_windows []schema.WindowSample
	optimal_duration_min    *int
	addoptimal_duration_min *int
	content_preferences     *map[string]float64
	learning_style          **schema.StyleSample
	stability_days          *float64
	addstability_days       *float64
	half_life_days          *float64
	addhalf_life_days       *float64
	data_quality_score      *float64
	adddata_quality_score   *float64
	last_analyzed_at        *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*LearningProfile, error)
	predicates              []predicate.LearningProfile
}

var _ ent.Mutation = (*LearningProfileMutation)(nil)

// learningprofileOption allows management of the mutation configuration using functional options.
type learningprofileOption func(*LearningProfileMutation)

// newLearningProfileMutation creates new mutation for the LearningProfile entity.
func newLearningProfileMutation(c config, op Op, opts ...learningprofileOption) *LearningProfileMutation {
	m := &LearningProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningProfileID sets the ID field of the mutation.
func withLearningProfileID(id int) learningprofileOption {
	return func(m *LearningProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningProfile
		)
		m.oldValue = func(ctx context.Context) (*LearningProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningProfile sets the old LearningProfile of the mutation.
func withLearningProfile(node *LearningProfile) learningprofileOption {
	return func(m *LearningProfileMutation) {
		m.oldValue = func(context.Context) (*LearningProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearningProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetPreferredWindows sets the "preferred_windows" field.
func (m *LearningProfileMutation) SetPreferredWindows(ss []schema.WindowSample) {
	m.preferred_windows = &ss
	m.appendpreferred_windows = nil
}

// PreferredWindows returns the value of the "preferred_windows" field in the mutation.
func (m *LearningProfileMutation) PreferredWindows() (r []schema.WindowSample, exists bool) {
	v := m.preferred_windows
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredWindows returns the old "preferred_windows" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldPreferredWindows(ctx context.Context) (v []schema.WindowSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredWindows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredWindows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredWindows: %w", err)
	}
	return oldValue.PreferredWindows, nil
}

// AppendPreferredWindows adds ss to the "preferred_windows" field.
func (m *LearningProfileMutation) AppendPreferredWindows(ss []schema.WindowSample) {
	m.appendpreferred_windows = append(m.appendpreferred_windows, ss...)
}

// AppendedPreferredWindows returns the list of values that were appended to the "preferred_windows" field in this mutation.
func (m *LearningProfileMutation) AppendedPreferredWindows() ([]schema.WindowSample, bool) {
	if len(m.appendpreferred_windows) == 0 {
		return nil, false
	}
	return m.appendpreferred_windows, true
}

// ClearPreferredWindows clears the value of the "preferred_windows" field.
func (m *LearningProfileMutation) ClearPreferredWindows() {
	m.preferred_windows = nil
	m.appendpreferred_windows = nil
	m.clearedFields[learningprofile.FieldPreferredWindows] = struct{}{}
}

// PreferredWindowsCleared returns if the "preferred_windows" field was cleared in this mutation.
func (m *LearningProfileMutation) PreferredWindowsCleared() bool {
	_, ok := m.clearedFields[learningprofile.FieldPreferredWindows]
	return ok
}

// ResetPreferredWindows resets all changes to the "preferred_windows" field.
func (m *LearningProfileMutation) ResetPreferredWindows() {
	m.preferred_windows = nil
	m.appendpreferred_windows = nil
	delete(m.clearedFields, learningprofile.FieldPreferredWindows)
}

// SetOptimalDurationMin sets the "optimal_duration_min" field.
func (m *LearningProfileMutation) SetOptimalDurationMin(i int) {
	m.optimal_duration_min = &i
	m.addoptimal_duration_min = nil
}

// OptimalDurationMin returns the value of the "optimal_duration_min" field in the mutation.
func (m *LearningProfileMutation) OptimalDurationMin() (r int, exists bool) {
	v := m.optimal_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimalDurationMin returns the old "optimal_duration_min" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldOptimalDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimalDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimalDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimalDurationMin: %w", err)
	}
	return oldValue.OptimalDurationMin, nil
}

// AddOptimalDurationMin adds i to the "optimal_duration_min" field.
func (m *LearningProfileMutation) AddOptimalDurationMin(i int) {
	if m.addoptimal_duration_min != nil {
		*m.addoptimal_duration_min += i
	} else {
		m.addoptimal_duration_min = &i
	}
}

// AddedOptimalDurationMin returns the value that was added to the "optimal_duration_min" field in this mutation.
func (m *LearningProfileMutation) AddedOptimalDurationMin() (r int, exists bool) {
	v := m.addoptimal_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetOptimalDurationMin resets all changes to the "optimal_duration_min" field.
func (m *LearningProfileMutation) ResetOptimalDurationMin() {
	m.optimal_duration_min = nil
	m.addoptimal_duration_min = nil
}

// SetContentPreferences sets the "content_preferences" field.
func (m *LearningProfileMutation) SetContentPreferences(value map[string]float64) {
	m.content_preferences = &value
}

// ContentPreferences returns the value of the "content_preferences" field in the mutation.
func (m *LearningProfileMutation) ContentPreferences() (r map[string]float64, exists bool) {
	v := m.content_preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldContentPreferences returns the old "content_preferences" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldContentPreferences(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentPreferences: %w", err)
	}
	return oldValue.ContentPreferences, nil
}

// ClearContentPreferences clears the value of the "content_preferences" field.
func (m *LearningProfileMutation) ClearContentPreferences() {
	m.content_preferences = nil
	m.clearedFields[learningprofile.FieldContentPreferences] = struct{}{}
}

// ContentPreferencesCleared returns if the "content_preferences" field was cleared in this mutation.
func (m *LearningProfileMutation) ContentPreferencesCleared() bool {
	_, ok := m.clearedFields[learningprofile.FieldContentPreferences]
	return ok
}

// ResetContentPreferences resets all changes to the "content_preferences" field.
func (m *LearningProfileMutation) ResetContentPreferences() {
	m.content_preferences = nil
	delete(m.clearedFields, learningprofile.FieldContentPreferences)
}

// SetLearningStyle sets the "learning_style" field.
func (m *LearningProfileMutation) SetLearningStyle(ss *schema.StyleSample) {
	m.learning_style = &ss
}

// LearningStyle returns the value of the "learning_style" field in the mutation.
func (m *LearningProfileMutation) LearningStyle() (r *schema.StyleSample, exists bool) {
	v := m.learning_style
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningStyle returns the old "learning_style" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldLearningStyle(ctx context.Context) (v *schema.StyleSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningStyle: %w", err)
	}
	return oldValue.LearningStyle, nil
}

// ClearLearningStyle clears the value of the "learning_style" field.
func (m *LearningProfileMutation) ClearLearningStyle() {
	m.learning_style = nil
	m.clearedFields[learningprofile.FieldLearningStyle] = struct{}{}
}

// LearningStyleCleared returns if the "learning_style" field was cleared in this mutation.
func (m *LearningProfileMutation) LearningStyleCleared() bool {
	_, ok := m.clearedFields[learningprofile.FieldLearningStyle]
	return ok
}

// ResetLearningStyle resets all changes to the "learning_style" field.
func (m *LearningProfileMutation) ResetLearningStyle() {
	m.learning_style = nil
	delete(m.clearedFields, learningprofile.FieldLearningStyle)
}

// SetStabilityDays sets the "stability_days" field.
func (m *LearningProfileMutation) SetStabilityDays(f float64) {
	m.stability_days = &f
	m.addstability_days = nil
}

// StabilityDays returns the value of the "stability_days" field in the mutation.
func (m *LearningProfileMutation) StabilityDays() (r float64, exists bool) {
	v := m.stability_days
	if v == nil {
		return
	}
	return *v, true
}

// OldStabilityDays returns the old "stability_days" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldStabilityDays(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStabilityDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStabilityDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStabilityDays: %w", err)
	}
	return oldValue.StabilityDays, nil
}

// AddStabilityDays adds f to the "stability_days" field.
func (m *LearningProfileMutation) AddStabilityDays(f float64) {
	if m.addstability_days != nil {
		*m.addstability_days += f
	} else {
		m.addstability_days = &f
	}
}

// AddedStabilityDays returns the value that was added to the "stability_days" field in this mutation.
func (m *LearningProfileMutation) AddedStabilityDays() (r float64, exists bool) {
	v := m.addstability_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetStabilityDays resets all changes to the "stability_days" field.
func (m *LearningProfileMutation) ResetStabilityDays() {
	m.stability_days = nil
	m.addstability_days = nil
}

// SetHalfLifeDays sets the "half_life_days" field.
func (m *LearningProfileMutation) SetHalfLifeDays(f float64) {
	m.half_life_days = &f
	m.addhalf_life_days = nil
}

// HalfLifeDays returns the value of the "half_life_days" field in the mutation.
func (m *LearningProfileMutation) HalfLifeDays() (r float64, exists bool) {
	v := m.half_life_days
	if v == nil {
		return
	}
	return *v, true
}

// OldHalfLifeDays returns the old "half_life_days" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldHalfLifeDays(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHalfLifeDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHalfLifeDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHalfLifeDays: %w", err)
	}
	return oldValue.HalfLifeDays, nil
}

// AddHalfLifeDays adds f to the "half_life_days" field.
func (m *LearningProfileMutation) AddHalfLifeDays(f float64) {
	if m.addhalf_life_days != nil {
		*m.addhalf_life_days += f
	} else {
		m.addhalf_life_days = &f
	}
}

// AddedHalfLifeDays returns the value that was added to the "half_life_days" field in this mutation.
func (m *LearningProfileMutation) AddedHalfLifeDays() (r float64, exists bool) {
	v := m.addhalf_life_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetHalfLifeDays resets all changes to the "half_life_days" field.
func (m *LearningProfileMutation) ResetHalfLifeDays() {
	m.half_life_days = nil
	m.addhalf_life_days = nil
}

// SetDataQualityScore sets the "data_quality_score" field.
func (m *LearningProfileMutation) SetDataQualityScore(f float64) {
	m.data_quality_score = &f
	m.adddata_quality_score = nil
}

// DataQualityScore returns the value of the "data_quality_score" field in the mutation.
func (m *LearningProfileMutation) DataQualityScore() (r float64, exists bool) {
	v := m.data_quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDataQualityScore returns the old "data_quality_score" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldDataQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataQualityScore: %w", err)
	}
	return oldValue.DataQualityScore, nil
}

// AddDataQualityScore adds f to the "data_quality_score" field.
func (m *LearningProfileMutation) AddDataQualityScore(f float64) {
	if m.adddata_quality_score != nil {
		*m.adddata_quality_score += f
	} else {
		m.adddata_quality_score = &f
	}
}

// AddedDataQualityScore returns the value that was added to the "data_quality_score" field in this mutation.
func (m *LearningProfileMutation) AddedDataQualityScore() (r float64, exists bool) {
	v := m.adddata_quality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDataQualityScore resets all changes to the "data_quality_score" field.
func (m *LearningProfileMutation) ResetDataQualityScore() {
	m.data_quality_score = nil
	m.adddata_quality_score = nil
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (m *LearningProfileMutation) SetLastAnalyzedAt(t time.Time) {
	m.last_analyzed_at = &t
}

// LastAnalyzedAt returns the value of the "last_analyzed_at" field in the mutation.
func (m *LearningProfileMutation) LastAnalyzedAt() (r time.Time, exists bool) {
	v := m.last_analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAnalyzedAt returns the old "last_analyzed_at" field's value of the LearningProfile entity.
// If the LearningProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningProfileMutation) OldLastAnalyzedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAnalyzedAt: %w", err)
	}
	return oldValue.LastAnalyzedAt, nil
}

// ResetLastAnalyzedAt resets all changes to the "last_analyzed_at" field.
func (m *LearningProfileMutation) ResetLastAnalyzedAt() {
	m.last_analyzed_at = nil
}

// Where appends a list predicates to the LearningProfileMutation builder.
func (m *LearningProfileMutation) Where(ps ...predicate.LearningProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningProfile).
func (m *LearningProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, learningprofile.FieldUserID)
	}
	if m.preferred_windows != nil {
		fields = append(fields, learningprofile.FieldPreferredWindows)
	}
	if m.optimal_duration_min != nil {
		fields = append(fields, learningprofile.FieldOptimalDurationMin)
	}
	if m.content_preferences != nil {
		fields = append(fields, learningprofile.FieldContentPreferences)
	}
	if m.learning_style != nil {
		fields = append(fields, learningprofile.FieldLearningStyle)
	}
	if m.stability_days != nil {
		fields = append(fields, learningprofile.FieldStabilityDays)
	}
	if m.half_life_days != nil {
		fields = append(fields, learningprofile.FieldHalfLifeDays)
	}
	if m.data_quality_score != nil {
		fields = append(fields, learningprofile.FieldDataQualityScore)
	}
	if m.last_analyzed_at != nil {
		fields = append(fields, learningprofile.FieldLastAnalyzedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningprofile.FieldUserID:
		return m.UserID()
	case learningprofile.FieldPreferredWindows:
		return m.PreferredWindows()
	case learningprofile.FieldOptimalDurationMin:
		return m.OptimalDurationMin()
	case learningprofile.FieldContentPreferences:
		return m.ContentPreferences()
	case learningprofile.FieldLearningStyle:
		return m.LearningStyle()
	case learningprofile.FieldStabilityDays:
		return m.StabilityDays()
	case learningprofile.FieldHalfLifeDays:
		return m.HalfLifeDays()
	case learningprofile.FieldDataQualityScore:
		return m.DataQualityScore()
	case learningprofile.FieldLastAnalyzedAt:
		return m.LastAnalyzedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningprofile.FieldUserID:
		return m.OldUserID(ctx)
	case learningprofile.FieldPreferredWindows:
		return m.OldPreferredWindows(ctx)
	case learningprofile.FieldOptimalDurationMin:
		return m.OldOptimalDurationMin(ctx)
	case learningprofile.FieldContentPreferences:
		return m.OldContentPreferences(ctx)
	case learningprofile.FieldLearningStyle:
		return m.OldLearningStyle(ctx)
	case learningprofile.FieldStabilityDays:
		return m.OldStabilityDays(ctx)
	case learningprofile.FieldHalfLifeDays:
		return m.OldHalfLifeDays(ctx)
	case learningprofile.FieldDataQualityScore:
		return m.OldDataQualityScore(ctx)
	case learningprofile.FieldLastAnalyzedAt:
		return m.OldLastAnalyzedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningprofile.FieldPreferredWindows:
		v, ok := value.([]schema.WindowSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredWindows(v)
		return nil
	case learningprofile.FieldOptimalDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimalDurationMin(v)
		return nil
	case learningprofile.FieldContentPreferences:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentPreferences(v)
		return nil
	case learningprofile.FieldLearningStyle:
		v, ok := value.(*schema.StyleSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningStyle(v)
		return nil
	case learningprofile.FieldStabilityDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStabilityDays(v)
		return nil
	case learningprofile.FieldHalfLifeDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHalfLifeDays(v)
		return nil
	case learningprofile.FieldDataQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataQualityScore(v)
		return nil
	case learningprofile.FieldLastAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAnalyzedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningProfileMutation) AddedFields() []string {
	var fields []string
	if m.addoptimal_duration_min != nil {
		fields = append(fields, learningprofile.FieldOptimalDurationMin)
	}
	if m.addstability_days != nil {
		fields = append(fields, learningprofile.FieldStabilityDays)
	}
	if m.addhalf_life_days != nil {
		fields = append(fields, learningprofile.FieldHalfLifeDays)
	}
	if m.adddata_quality_score != nil {
		fields = append(fields, learningprofile.FieldDataQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningprofile.FieldOptimalDurationMin:
		return m.AddedOptimalDurationMin()
	case learningprofile.FieldStabilityDays:
		return m.AddedStabilityDays()
	case learningprofile.FieldHalfLifeDays:
		return m.AddedHalfLifeDays()
	case learningprofile.FieldDataQualityScore:
		return m.AddedDataQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningprofile.FieldOptimalDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOptimalDurationMin(v)
		return nil
	case learningprofile.FieldStabilityDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStabilityDays(v)
		return nil
	case learningprofile.FieldHalfLifeDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHalfLifeDays(v)
		return nil
	case learningprofile.FieldDataQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDataQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown LearningProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningprofile.FieldPreferredWindows) {
		fields = append(fields, learningprofile.FieldPreferredWindows)
	}
	if m.FieldCleared(learningprofile.FieldContentPreferences) {
		fields = append(fields, learningprofile.FieldContentPreferences)
	}
	if m.FieldCleared(learningprofile.FieldLearningStyle) {
		fields = append(fields, learningprofile.FieldLearningStyle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningProfileMutation) ClearField(name string) error {
	switch name {
	case learningprofile.FieldPreferredWindows:
		m.ClearPreferredWindows()
		return nil
	case learningprofile.FieldContentPreferences:
		m.ClearContentPreferences()
		return nil
	case learningprofile.FieldLearningStyle:
		m.ClearLearningStyle()
		return nil
	}
	return fmt.Errorf("unknown LearningProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningProfileMutation) ResetField(name string) error {
	switch name {
	case learningprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case learningprofile.FieldPreferredWindows:
		m.ResetPreferredWindows()
		return nil
	case learningprofile.FieldOptimalDurationMin:
		m.ResetOptimalDurationMin()
		return nil
	case learningprofile.FieldContentPreferences:
		m.ResetContentPreferences()
		return nil
	case learningprofile.FieldLearningStyle:
		m.ResetLearningStyle()
		return nil
	case learningprofile.FieldStabilityDays:
		m.ResetStabilityDays()
		return nil
	case learningprofile.FieldHalfLifeDays:
		m.ResetHalfLifeDays()
		return nil
	case learningprofile.FieldDataQualityScore:
		m.ResetDataQualityScore()
		return nil
	case learningprofile.FieldLastAnalyzedAt:
		m.ResetLastAnalyzedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningProfile edge %s", name)
}

// LoadMetricMutation represents an operation that mutates the LoadMetric nodes in the graph.
type LoadMetricMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	timestamp     *time.Time
	load_score    *float64
	addload_score *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LoadMetric, error)
	predicates    []predicate.LoadMetric
}

var _ ent.Mutation = (*LoadMetricMutation)(nil)

// loadmetricOption allows management of the mutation configuration using functional options.
type loadmetricOption func(*LoadMetricMutation)

// newLoadMetricMutation creates new mutation for the LoadMetric entity.
func newLoadMetricMutation(c config, op Op, opts ...loadmetricOption) *LoadMetricMutation {
	m := &LoadMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeLoadMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLoadMetricID sets the ID field of the mutation.
func withLoadMetricID(id int) loadmetricOption {
	return func(m *LoadMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *LoadMetric
		)
		m.oldValue = func(ctx context.Context) (*LoadMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LoadMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLoadMetric sets the old LoadMetric of the mutation.
func withLoadMetric(node *LoadMetric) loadmetricOption {
	return func(m *LoadMetricMutation) {
		m.oldValue = func(context.Context) (*LoadMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LoadMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LoadMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LoadMetricMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LoadMetricMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LoadMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LoadMetricMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LoadMetricMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LoadMetric entity.
// If the LoadMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LoadMetricMutation) ResetUserID() {
	m.user_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LoadMetricMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LoadMetricMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LoadMetric entity.
// If the LoadMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LoadMetricMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLoadScore sets the "load_score" field.
func (m *LoadMetricMutation) SetLoadScore(f float64) {
	m.load_score = &f
	m.addload_score = nil
}

// LoadScore returns the value of the "load_score" field in the mutation.
func (m *LoadMetricMutation) LoadScore() (r float64, exists bool) {
	v := m.load_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadScore returns the old "load_score" field's value of the LoadMetric entity.
// If the LoadMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricMutation) OldLoadScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadScore: %w", err)
	}
	return oldValue.LoadScore, nil
}

// AddLoadScore adds f to the "load_score" field.
func (m *LoadMetricMutation) AddLoadScore(f float64) {
	if m.addload_score != nil {
		*m.addload_score += f
	} else {
		m.addload_score = &f
	}
}

// AddedLoadScore returns the value that was added to the "load_score" field in this mutation.
func (m *LoadMetricMutation) AddedLoadScore() (r float64, exists bool) {
	v := m.addload_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoadScore resets all changes to the "load_score" field.
func (m *LoadMetricMutation) ResetLoadScore() {
	m.load_score = nil
	m.addload_score = nil
}

// Where appends a list predicates to the LoadMetricMutation builder.
func (m *LoadMetricMutation) Where(ps ...predicate.LoadMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LoadMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LoadMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LoadMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LoadMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LoadMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LoadMetric).
func (m *LoadMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LoadMetricMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, loadmetric.FieldUserID)
	}
	if m.timestamp != nil {
		fields = append(fields, loadmetric.FieldTimestamp)
	}
	if m.load_score != nil {
		fields = append(fields, loadmetric.FieldLoadScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LoadMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case loadmetric.FieldUserID:
		return m.UserID()
	case loadmetric.FieldTimestamp:
		return m.Timestamp()
	case loadmetric.FieldLoadScore:
		return m.LoadScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LoadMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case loadmetric.FieldUserID:
		return m.OldUserID(ctx)
	case loadmetric.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case loadmetric.FieldLoadScore:
		return m.OldLoadScore(ctx)
	}
	return nil, fmt.Errorf("unknown LoadMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoadMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case loadmetric.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case loadmetric.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case loadmetric.FieldLoadScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadScore(v)
		return nil
	}
	return fmt.Errorf("unknown LoadMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LoadMetricMutation) AddedFields() []string {
	var fields []string
	if m.addload_score != nil {
		fields = append(fields, loadmetric.FieldLoadScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LoadMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case loadmetric.FieldLoadScore:
		return m.AddedLoadScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoadMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case loadmetric.FieldLoadScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoadScore(v)
		return nil
	}
	return fmt.Errorf("unknown LoadMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LoadMetricMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LoadMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LoadMetricMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LoadMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LoadMetricMutation) ResetField(name string) error {
	switch name {
	case loadmetric.FieldUserID:
		m.ResetUserID()
		return nil
	case loadmetric.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case loadmetric.FieldLoadScore:
		m.ResetLoadScore()
		return nil
	}
	return fmt.Errorf("unknown LoadMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LoadMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LoadMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LoadMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LoadMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LoadMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LoadMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LoadMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LoadMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LoadMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LoadMetric edge %s", name)
}

// MissionMutation represents an operation that mutates the Mission nodes in the graph.
type MissionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	user_id              *string
	date                 *time.Time
	status               *string
	difficulty_rating    *int
	adddifficulty_rating *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Mission, error)
	predicates           []predicate.Mission
}

var _ ent.Mutation = (*MissionMutation)(nil)

// missionOption allows management of the mutation configuration using functional options.
type missionOption func(*MissionMutation)

// newMissionMutation creates new mutation for the Mission entity.
func newMissionMutation(c config, op Op, opts ...missionOption) *MissionMutation {
	m := &MissionMutation{
		config:        c,
		op:            op,
		typ:           TypeMission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionID sets the ID field of the mutation.
func withMissionID(id int) missionOption {
	return func(m *MissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Mission
		)
		m.oldValue = func(ctx context.Context) (*Mission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMission sets the old Mission of the mutation.
func withMission(node *Mission) missionOption {
	return func(m *MissionMutation) {
		m.oldValue = func(context.Context) (*Mission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MissionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MissionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MissionMutation) ResetUserID() {
	m.user_id = nil
}

// SetDate sets the "date" field.
func (m *MissionMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *MissionMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *MissionMutation) ResetDate() {
	m.date = nil
}

// SetStatus sets the "status" field.
func (m *MissionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *MissionMutation) ResetStatus() {
	m.status = nil
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (m *MissionMutation) SetDifficultyRating(i int) {
	m.difficulty_rating = &i
	m.adddifficulty_rating = nil
}

// DifficultyRating returns the value of the "difficulty_rating" field in the mutation.
func (m *MissionMutation) DifficultyRating() (r int, exists bool) {
	v := m.difficulty_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyRating returns the old "difficulty_rating" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldDifficultyRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyRating: %w", err)
	}
	return oldValue.DifficultyRating, nil
}

// AddDifficultyRating adds i to the "difficulty_rating" field.
func (m *MissionMutation) AddDifficultyRating(i int) {
	if m.adddifficulty_rating != nil {
		*m.adddifficulty_rating += i
	} else {
		m.adddifficulty_rating = &i
	}
}

// AddedDifficultyRating returns the value that was added to the "difficulty_rating" field in this mutation.
func (m *MissionMutation) AddedDifficultyRating() (r int, exists bool) {
	v := m.adddifficulty_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearDifficultyRating clears the value of the "difficulty_rating" field.
func (m *MissionMutation) ClearDifficultyRating() {
	m.difficulty_rating = nil
	m.adddifficulty_rating = nil
	m.clearedFields[mission.FieldDifficultyRating] = struct{}{}
}

// DifficultyRatingCleared returns if the "difficulty_rating" field was cleared in this mutation.
func (m *MissionMutation) DifficultyRatingCleared() bool {
	_, ok := m.clearedFields[mission.FieldDifficultyRating]
	return ok
}

// ResetDifficultyRating resets all changes to the "difficulty_rating" field.
func (m *MissionMutation) ResetDifficultyRating() {
	m.difficulty_rating = nil
	m.adddifficulty_rating = nil
	delete(m.clearedFields, mission.FieldDifficultyRating)
}

// Where appends a list predicates to the MissionMutation builder.
func (m *MissionMutation) Where(ps ...predicate.Mission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mission).
func (m *MissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, mission.FieldUserID)
	}
	if m.date != nil {
		fields = append(fields, mission.FieldDate)
	}
	if m.status != nil {
		fields = append(fields, mission.FieldStatus)
	}
	if m.difficulty_rating != nil {
		fields = append(fields, mission.FieldDifficultyRating)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldUserID:
		return m.UserID()
	case mission.FieldDate:
		return m.Date()
	case mission.FieldStatus:
		return m.Status()
	case mission.FieldDifficultyRating:
		return m.DifficultyRating()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mission.FieldUserID:
		return m.OldUserID(ctx)
	case mission.FieldDate:
		return m.OldDate(ctx)
	case mission.FieldStatus:
		return m.OldStatus(ctx)
	case mission.FieldDifficultyRating:
		return m.OldDifficultyRating(ctx)
	}
	return nil, fmt.Errorf("unknown Mission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mission.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case mission.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case mission.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mission.FieldDifficultyRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyRating(v)
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_rating != nil {
		fields = append(fields, mission.FieldDifficultyRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldDifficultyRating:
		return m.AddedDifficultyRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mission.FieldDifficultyRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyRating(v)
		return nil
	}
	return fmt.Errorf("unknown Mission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mission.FieldDifficultyRating) {
		fields = append(fields, mission.FieldDifficultyRating)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionMutation) ClearField(name string) error {
	switch name {
	case mission.FieldDifficultyRating:
		m.ClearDifficultyRating()
		return nil
	}
	return fmt.Errorf("unknown Mission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionMutation) ResetField(name string) error {
	switch name {
	case mission.FieldUserID:
		m.ResetUserID()
		return nil
	case mission.FieldDate:
		m.ResetDate()
		return nil
	case mission.FieldStatus:
		m.ResetStatus()
		return nil
	case mission.FieldDifficultyRating:
		m.ResetDifficultyRating()
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Mission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Mission edge %s", name)
}

// PerformanceMetricMutation represents an operation that mutates the PerformanceMetric nodes in the graph.
type PerformanceMetricMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	date               *time.Time
	retention_score    *float64
	addretention_score *float64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*PerformanceMetric, error)
	predicates         []predicate.PerformanceMetric
}

var _ ent.Mutation = (*PerformanceMetricMutation)(nil)

// performancemetricOption allows management of the mutation configuration using functional options.
type performancemetricOption func(*PerformanceMetricMutation)

// newPerformanceMetricMutation creates new mutation for the PerformanceMetric entity.
func newPerformanceMetricMutation(c config, op Op, opts ...performancemetricOption) *PerformanceMetricMutation {
	m := &PerformanceMetricMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceMetricID sets the ID field of the mutation.
func withPerformanceMetricID(id int) performancemetricOption {
	return func(m *PerformanceMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceMetric
		)
		m.oldValue = func(ctx context.Context) (*PerformanceMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceMetric sets the old PerformanceMetric of the mutation.
func withPerformanceMetric(node *PerformanceMetric) performancemetricOption {
	return func(m *PerformanceMetricMutation) {
		m.oldValue = func(context.Context) (*PerformanceMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceMetricMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceMetricMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PerformanceMetricMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PerformanceMetricMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PerformanceMetricMutation) ResetUserID() {
	m.user_id = nil
}

// SetDate sets the "date" field.
func (m *PerformanceMetricMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *PerformanceMetricMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *PerformanceMetricMutation) ResetDate() {
	m.date = nil
}

// SetRetentionScore sets the "retention_score" field.
func (m *PerformanceMetricMutation) SetRetentionScore(f float64) {
	m.retention_score = &f
	m.addretention_score = nil
}

// RetentionScore returns the value of the "retention_score" field in the mutation.
func (m *PerformanceMetricMutation) RetentionScore() (r float64, exists bool) {
	v := m.retention_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionScore returns the old "retention_score" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldRetentionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionScore: %w", err)
	}
	return oldValue.RetentionScore, nil
}

// AddRetentionScore adds f to the "retention_score" field.
func (m *PerformanceMetricMutation) AddRetentionScore(f float64) {
	if m.addretention_score != nil {
		*m.addretention_score += f
	} else {
		m.addretention_score = &f
	}
}

// AddedRetentionScore returns the value that was added to the "retention_score" field in this mutation.
func (m *PerformanceMetricMutation) AddedRetentionScore() (r float64, exists bool) {
	v := m.addretention_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetentionScore resets all changes to the "retention_score" field.
func (m *PerformanceMetricMutation) ResetRetentionScore() {
	m.retention_score = nil
	m.addretention_score = nil
}

// Where appends a list predicates to the PerformanceMetricMutation builder.
func (m *PerformanceMetricMutation) Where(ps ...predicate.PerformanceMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceMetric).
func (m *PerformanceMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceMetricMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, performancemetric.FieldUserID)
	}
	if m.date != nil {
		fields = append(fields, performancemetric.FieldDate)
	}
	if m.retention_score != nil {
		fields = append(fields, performancemetric.FieldRetentionScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performancemetric.FieldUserID:
		return m.UserID()
	case performancemetric.FieldDate:
		return m.Date()
	case performancemetric.FieldRetentionScore:
		return m.RetentionScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performancemetric.FieldUserID:
		return m.OldUserID(ctx)
	case performancemetric.FieldDate:
		return m.OldDate(ctx)
	case performancemetric.FieldRetentionScore:
		return m.OldRetentionScore(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performancemetric.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case performancemetric.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case performancemetric.FieldRetentionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionScore(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceMetricMutation) AddedFields() []string {
	var fields []string
	if m.addretention_score != nil {
		fields = append(fields, performancemetric.FieldRetentionScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performancemetric.FieldRetentionScore:
		return m.AddedRetentionScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performancemetric.FieldRetentionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetentionScore(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceMetricMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceMetricMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PerformanceMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceMetricMutation) ResetField(name string) error {
	switch name {
	case performancemetric.FieldUserID:
		m.ResetUserID()
		return nil
	case performancemetric.FieldDate:
		m.ResetDate()
		return nil
	case performancemetric.FieldRetentionScore:
		m.ResetRetentionScore()
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceMetric edge %s", name)
}

// RecommendationMutation represents an operation that mutates the Recommendation nodes in the graph.
type RecommendationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	user_id                  *string
	rec_type                 *string
	title                    *string
	description              *string
	actionable_text          *string
	confidence               *float64
	addconfidence            *float64
	estimated_impact         *float64
	addestimated_impact      *float64
	ease                     *float64
	addease                  *float64
	user_readiness           *float64
	adduser_readiness        *float64
	priority_score           *float64
	addpriority_score        *float64
	source_pattern_ids       *[]string
	appendsource_pattern_ids []string
	source_insight_ids       *[]string
	appendsource_insight_ids []string
	created_at               *time.Time
	applied_at               *time.Time
	dismissed_at             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Recommendation, error)
	predicates               []predicate.Recommendation
}

var _ ent.Mutation = (*RecommendationMutation)(nil)

// recommendationOption allows management of the mutation configuration using functional options.
type recommendationOption func(*RecommendationMutation)

// newRecommendationMutation creates new mutation for the Recommendation entity.
func newRecommendationMutation(c config, op Op, opts ...recommendationOption) *RecommendationMutation {
	m := &RecommendationMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendationID sets the ID field of the mutation.
func withRecommendationID(id string) recommendationOption {
	return func(m *RecommendationMutation) {
		var (
			err   error
			once  sync.Once
			value *Recommendation
		)
		m.oldValue = func(ctx context.Context) (*Recommendation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recommendation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendation sets the old Recommendation of the mutation.
func withRecommendation(node *Recommendation) recommendationOption {
	return func(m *RecommendationMutation) {
		m.oldValue = func(context.Context) (*Recommendation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recommendation entities.
func (m *RecommendationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recommendation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *RecommendationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RecommendationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RecommendationMutation) ResetUserID() {
	m.user_id = nil
}

// SetRecType sets the "rec_type" field.
func (m *RecommendationMutation) SetRecType(s string) {
	m.rec_type = &s
}

// RecType returns the value of the "rec_type" field in the mutation.
func (m *RecommendationMutation) RecType() (r string, exists bool) {
	v := m.rec_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRecType returns the old "rec_type" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldRecType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecType: %w", err)
	}
	return oldValue.RecType, nil
}

// ResetRecType resets all changes to the "rec_type" field.
func (m *RecommendationMutation) ResetRecType() {
	m.rec_type = nil
}

// SetTitle sets the "title" field.
func (m *RecommendationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RecommendationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *RecommendationMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RecommendationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecommendationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RecommendationMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[recommendation.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RecommendationMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RecommendationMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, recommendation.FieldDescription)
}

// SetActionableText sets the "actionable_text" field.
func (m *RecommendationMutation) SetActionableText(s string) {
	m.actionable_text = &s
}

// ActionableText returns the value of the "actionable_text" field in the mutation.
func (m *RecommendationMutation) ActionableText() (r string, exists bool) {
	v := m.actionable_text
	if v == nil {
		return
	}
	return *v, true
}

// OldActionableText returns the old "actionable_text" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldActionableText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionableText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionableText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionableText: %w", err)
	}
	return oldValue.ActionableText, nil
}

// ClearActionableText clears the value of the "actionable_text" field.
func (m *RecommendationMutation) ClearActionableText() {
	m.actionable_text = nil
	m.clearedFields[recommendation.FieldActionableText] = struct{}{}
}

// ActionableTextCleared returns if the "actionable_text" field was cleared in this mutation.
func (m *RecommendationMutation) ActionableTextCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldActionableText]
	return ok
}

// ResetActionableText resets all changes to the "actionable_text" field.
func (m *RecommendationMutation) ResetActionableText() {
	m.actionable_text = nil
	delete(m.clearedFields, recommendation.FieldActionableText)
}

// SetConfidence sets the "confidence" field.
func (m *RecommendationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RecommendationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RecommendationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RecommendationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RecommendationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (m *RecommendationMutation) SetEstimatedImpact(f float64) {
	m.estimated_impact = &f
	m.addestimated_impact = nil
}

// EstimatedImpact returns the value of the "estimated_impact" field in the mutation.
func (m *RecommendationMutation) EstimatedImpact() (r float64, exists bool) {
	v := m.estimated_impact
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedImpact returns the old "estimated_impact" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldEstimatedImpact(ctx context.Context) (v float64, err error) {
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

// AddEstimatedImpact adds f to the "estimated_impact" field.
func (m *RecommendationMutation) AddEstimatedImpact(f float64) {
	if m.addestimated_impact != nil {
		*m.addestimated_impact += f
	} else {
		m.addestimated_impact = &f
	}
}

// AddedEstimatedImpact returns the value that was added to the "estimated_impact" field in this mutation.
func (m *RecommendationMutation) AddedEstimatedImpact() (r float64, exists bool) {
	v := m.addestimated_impact
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedImpact resets all changes to the "estimated_impact" field.
func (m *RecommendationMutation) ResetEstimatedImpact() {
	m.estimated_impact = nil
	m.addestimated_impact = nil
}

// SetEase sets the "ease" field.
func (m *RecommendationMutation) SetEase(f float64) {
	m.ease = &f
	m.addease = nil
}

// Ease returns the value of the "ease" field in the mutation.
func (m *RecommendationMutation) Ease() (r float64, exists bool) {
	v := m.ease
	if v == nil {
		return
	}
	return *v, true
}

// OldEase returns the old "ease" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEase: %w", err)
	}
	return oldValue.Ease, nil
}

// AddEase adds f to the "ease" field.
func (m *RecommendationMutation) AddEase(f float64) {
	if m.addease != nil {
		*m.addease += f
	} else {
		m.addease = &f
	}
}

// AddedEase returns the value that was added to the "ease" field in this mutation.
func (m *RecommendationMutation) AddedEase() (r float64, exists bool) {
	v := m.addease
	if v == nil {
		return
	}
	return *v, true
}

// ResetEase resets all changes to the "ease" field.
func (m *RecommendationMutation) ResetEase() {
	m.ease = nil
	m.addease = nil
}

// SetUserReadiness sets the "user_readiness" field.
func (m *RecommendationMutation) SetUserReadiness(f float64) {
	m.user_readiness = &f
	m.adduser_readiness = nil
}

// UserReadiness returns the value of the "user_readiness" field in the mutation.
func (m *RecommendationMutation) UserReadiness() (r float64, exists bool) {
	v := m.user_readiness
	if v == nil {
		return
	}
	return *v, true
}

// OldUserReadiness returns the old "user_readiness" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldUserReadiness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserReadiness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserReadiness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserReadiness: %w", err)
	}
	return oldValue.UserReadiness, nil
}

// AddUserReadiness adds f to the "user_readiness" field.
func (m *RecommendationMutation) AddUserReadiness(f float64) {
	if m.adduser_readiness != nil {
		*m.adduser_readiness += f
	} else {
		m.adduser_readiness = &f
	}
}

// AddedUserReadiness returns the value that was added to the "user_readiness" field in this mutation.
func (m *RecommendationMutation) AddedUserReadiness() (r float64, exists bool) {
	v := m.adduser_readiness
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserReadiness resets all changes to the "user_readiness" field.
func (m *RecommendationMutation) ResetUserReadiness() {
	m.user_readiness = nil
	m.adduser_readiness = nil
}

// SetPriorityScore sets the "priority_score" field.
func (m *RecommendationMutation) SetPriorityScore(f float64) {
	m.priority_score = &f
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *RecommendationMutation) PriorityScore() (r float64, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds f to the "priority_score" field.
func (m *RecommendationMutation) AddPriorityScore(f float64) {
	if m.addpriority_score != nil {
		*m.addpriority_score += f
	} else {
		m.addpriority_score = &f
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *RecommendationMutation) AddedPriorityScore() (r float64, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *RecommendationMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (m *RecommendationMutation) SetSourcePatternIds(s []string) {
	m.source_pattern_ids = &s
	m.appendsource_pattern_ids = nil
}

// SourcePatternIds returns the value of the "source_pattern_ids" field in the mutation.
func (m *RecommendationMutation) SourcePatternIds() (r []string, exists bool) {
	v := m.source_pattern_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePatternIds returns the old "source_pattern_ids" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldSourcePatternIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePatternIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePatternIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePatternIds: %w", err)
	}
	return oldValue.SourcePatternIds, nil
}

// AppendSourcePatternIds adds s to the "source_pattern_ids" field.
func (m *RecommendationMutation) AppendSourcePatternIds(s []string) {
	m.appendsource_pattern_ids = append(m.appendsource_pattern_ids, s...)
}

// AppendedSourcePatternIds returns the list of values that were appended to the "source_pattern_ids" field in this mutation.
func (m *RecommendationMutation) AppendedSourcePatternIds() ([]string, bool) {
	if len(m.appendsource_pattern_ids) == 0 {
		return nil, false
	}
	return m.appendsource_pattern_ids, true
}

// ClearSourcePatternIds clears the value of the "source_pattern_ids" field.
func (m *RecommendationMutation) ClearSourcePatternIds() {
	m.source_pattern_ids = nil
	m.appendsource_pattern_ids = nil
	m.clearedFields[recommendation.FieldSourcePatternIds] = struct{}{}
}

// SourcePatternIdsCleared returns if the "source_pattern_ids" field was cleared in this mutation.
func (m *RecommendationMutation) SourcePatternIdsCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldSourcePatternIds]
	return ok
}

// ResetSourcePatternIds resets all changes to the "source_pattern_ids" field.
func (m *RecommendationMutation) ResetSourcePatternIds() {
	m.source_pattern_ids = nil
	m.appendsource_pattern_ids = nil
	delete(m.clearedFields, recommendation.FieldSourcePatternIds)
}

// SetSourceInsightIds sets the "source_insight_ids" field.
func (m *RecommendationMutation) SetSourceInsightIds(s []string) {
	m.source_insight_ids = &s
	m.appendsource_insight_ids = nil
}

// SourceInsightIds returns the value of the "source_insight_ids" field in the mutation.
func (m *RecommendationMutation) SourceInsightIds() (r []string, exists bool) {
	v := m.source_insight_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceInsightIds returns the old "source_insight_ids" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldSourceInsightIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceInsightIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceInsightIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceInsightIds: %w", err)
	}
	return oldValue.SourceInsightIds, nil
}

// AppendSourceInsightIds adds s to the "source_insight_ids" field.
func (m *RecommendationMutation) AppendSourceInsightIds(s []string) {
	m.appendsource_insight_ids = append(m.appendsource_insight_ids, s...)
}

// AppendedSourceInsightIds returns the list of values that were appended to the "source_insight_ids" field in this mutation.
func (m *RecommendationMutation) AppendedSourceInsightIds() ([]string, bool) {
	if len(m.appendsource_insight_ids) == 0 {
		return nil, false
	}
	return m.appendsource_insight_ids, true
}

// ClearSourceInsightIds clears the value of the "source_insight_ids" field.
func (m *RecommendationMutation) ClearSourceInsightIds() {
	m.source_insight_ids = nil
	m.appendsource_insight_ids = nil
	m.clearedFields[recommendation.FieldSourceInsightIds] = struct{}{}
}

// SourceInsightIdsCleared returns if the "source_insight_ids" field was cleared in this mutation.
func (m *RecommendationMutation) SourceInsightIdsCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldSourceInsightIds]
	return ok
}

// ResetSourceInsightIds resets all changes to the "source_insight_ids" field.
func (m *RecommendationMutation) ResetSourceInsightIds() {
	m.source_insight_ids = nil
	m.appendsource_insight_ids = nil
	delete(m.clearedFields, recommendation.FieldSourceInsightIds)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecommendationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecommendationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecommendationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *RecommendationMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *RecommendationMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (m *RecommendationMutation) ClearAppliedAt() {
	m.applied_at = nil
	m.clearedFields[recommendation.FieldAppliedAt] = struct{}{}
}

// AppliedAtCleared returns if the "applied_at" field was cleared in this mutation.
func (m *RecommendationMutation) AppliedAtCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldAppliedAt]
	return ok
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *RecommendationMutation) ResetAppliedAt() {
	m.applied_at = nil
	delete(m.clearedFields, recommendation.FieldAppliedAt)
}

// SetDismissedAt sets the "dismissed_at" field.
func (m *RecommendationMutation) SetDismissedAt(t time.Time) {
	m.dismissed_at = &t
}

// DismissedAt returns the value of the "dismissed_at" field in the mutation.
func (m *RecommendationMutation) DismissedAt() (r time.Time, exists bool) {
	v := m.dismissed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDismissedAt returns the old "dismissed_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldDismissedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDismissedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDismissedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDismissedAt: %w", err)
	}
	return oldValue.DismissedAt, nil
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (m *RecommendationMutation) ClearDismissedAt() {
	m.dismissed_at = nil
	m.clearedFields[recommendation.FieldDismissedAt] = struct{}{}
}

// DismissedAtCleared returns if the "dismissed_at" field was cleared in this mutation.
func (m *RecommendationMutation) DismissedAtCleared() bool {
	_, ok := m.clearedFields[recommendation.FieldDismissedAt]
	return ok
}

// ResetDismissedAt resets all changes to the "dismissed_at" field.
func (m *RecommendationMutation) ResetDismissedAt() {
	m.dismissed_at = nil
	delete(m.clearedFields, recommendation.FieldDismissedAt)
}

// Where appends a list predicates to the RecommendationMutation builder.
func (m *RecommendationMutation) Where(ps ...predicate.Recommendation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recommendation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recommendation).
func (m *RecommendationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendationMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.user_id != nil {
		fields = append(fields, recommendation.FieldUserID)
	}
	if m.rec_type != nil {
		fields = append(fields, recommendation.FieldRecType)
	}
	if m.title != nil {
		fields = append(fields, recommendation.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, recommendation.FieldDescription)
	}
	if m.actionable_text != nil {
		fields = append(fields, recommendation.FieldActionableText)
	}
	if m.confidence != nil {
		fields = append(fields, recommendation.FieldConfidence)
	}
	if m.estimated_impact != nil {
		fields = append(fields, recommendation.FieldEstimatedImpact)
	}
	if m.ease != nil {
		fields = append(fields, recommendation.FieldEase)
	}
	if m.user_readiness != nil {
		fields = append(fields, recommendation.FieldUserReadiness)
	}
	if m.priority_score != nil {
		fields = append(fields, recommendation.FieldPriorityScore)
	}
	if m.source_pattern_ids != nil {
		fields = append(fields, recommendation.FieldSourcePatternIds)
	}
	if m.source_insight_ids != nil {
		fields = append(fields, recommendation.FieldSourceInsightIds)
	}
	if m.created_at != nil {
		fields = append(fields, recommendation.FieldCreatedAt)
	}
	if m.applied_at != nil {
		fields = append(fields, recommendation.FieldAppliedAt)
	}
	if m.dismissed_at != nil {
		fields = append(fields, recommendation.FieldDismissedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldUserID:
		return m.UserID()
	case recommendation.FieldRecType:
		return m.RecType()
	case recommendation.FieldTitle:
		return m.Title()
	case recommendation.FieldDescription:
		return m.Description()
	case recommendation.FieldActionableText:
		return m.ActionableText()
	case recommendation.FieldConfidence:
		return m.Confidence()
	case recommendation.FieldEstimatedImpact:
		return m.EstimatedImpact()
	case recommendation.FieldEase:
		return m.Ease()
	case recommendation.FieldUserReadiness:
		return m.UserReadiness()
	case recommendation.FieldPriorityScore:
		return m.PriorityScore()
	case recommendation.FieldSourcePatternIds:
		return m.SourcePatternIds()
	case recommendation.FieldSourceInsightIds:
		return m.SourceInsightIds()
	case recommendation.FieldCreatedAt:
		return m.CreatedAt()
	case recommendation.FieldAppliedAt:
		return m.AppliedAt()
	case recommendation.FieldDismissedAt:
		return m.DismissedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendation.FieldUserID:
		return m.OldUserID(ctx)
	case recommendation.FieldRecType:
		return m.OldRecType(ctx)
	case recommendation.FieldTitle:
		return m.OldTitle(ctx)
	case recommendation.FieldDescription:
		return m.OldDescription(ctx)
	case recommendation.FieldActionableText:
		return m.OldActionableText(ctx)
	case recommendation.FieldConfidence:
		return m.OldConfidence(ctx)
	case recommendation.FieldEstimatedImpact:
		return m.OldEstimatedImpact(ctx)
	case recommendation.FieldEase:
		return m.OldEase(ctx)
	case recommendation.FieldUserReadiness:
		return m.OldUserReadiness(ctx)
	case recommendation.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case recommendation.FieldSourcePatternIds:
		return m.OldSourcePatternIds(ctx)
	case recommendation.FieldSourceInsightIds:
		return m.OldSourceInsightIds(ctx)
	case recommendation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recommendation.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case recommendation.FieldDismissedAt:
		return m.OldDismissedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recommendation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case recommendation.FieldRecType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecType(v)
		return nil
	case recommendation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case recommendation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case recommendation.FieldActionableText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionableText(v)
		return nil
	case recommendation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case recommendation.FieldEstimatedImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedImpact(v)
		return nil
	case recommendation.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEase(v)
		return nil
	case recommendation.FieldUserReadiness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserReadiness(v)
		return nil
	case recommendation.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case recommendation.FieldSourcePatternIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePatternIds(v)
		return nil
	case recommendation.FieldSourceInsightIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceInsightIds(v)
		return nil
	case recommendation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recommendation.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case recommendation.FieldDismissedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDismissedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendationMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, recommendation.FieldConfidence)
	}
	if m.addestimated_impact != nil {
		fields = append(fields, recommendation.FieldEstimatedImpact)
	}
	if m.addease != nil {
		fields = append(fields, recommendation.FieldEase)
	}
	if m.adduser_readiness != nil {
		fields = append(fields, recommendation.FieldUserReadiness)
	}
	if m.addpriority_score != nil {
		fields = append(fields, recommendation.FieldPriorityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldConfidence:
		return m.AddedConfidence()
	case recommendation.FieldEstimatedImpact:
		return m.AddedEstimatedImpact()
	case recommendation.FieldEase:
		return m.AddedEase()
	case recommendation.FieldUserReadiness:
		return m.AddedUserReadiness()
	case recommendation.FieldPriorityScore:
		return m.AddedPriorityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case recommendation.FieldEstimatedImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedImpact(v)
		return nil
	case recommendation.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEase(v)
		return nil
	case recommendation.FieldUserReadiness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserReadiness(v)
		return nil
	case recommendation.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recommendation.FieldDescription) {
		fields = append(fields, recommendation.FieldDescription)
	}
	if m.FieldCleared(recommendation.FieldActionableText) {
		fields = append(fields, recommendation.FieldActionableText)
	}
	if m.FieldCleared(recommendation.FieldSourcePatternIds) {
		fields = append(fields, recommendation.FieldSourcePatternIds)
	}
	if m.FieldCleared(recommendation.FieldSourceInsightIds) {
		fields = append(fields, recommendation.FieldSourceInsightIds)
	}
	if m.FieldCleared(recommendation.FieldAppliedAt) {
		fields = append(fields, recommendation.FieldAppliedAt)
	}
	if m.FieldCleared(recommendation.FieldDismissedAt) {
		fields = append(fields, recommendation.FieldDismissedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendationMutation) ClearField(name string) error {
	switch name {
	case recommendation.FieldDescription:
		m.ClearDescription()
		return nil
	case recommendation.FieldActionableText:
		m.ClearActionableText()
		return nil
	case recommendation.FieldSourcePatternIds:
		m.ClearSourcePatternIds()
		return nil
	case recommendation.FieldSourceInsightIds:
		m.ClearSourceInsightIds()
		return nil
	case recommendation.FieldAppliedAt:
		m.ClearAppliedAt()
		return nil
	case recommendation.FieldDismissedAt:
		m.ClearDismissedAt()
		return nil
	}
	return fmt.Errorf("unknown Recommendation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendationMutation) ResetField(name string) error {
	switch name {
	case recommendation.FieldUserID:
		m.ResetUserID()
		return nil
	case recommendation.FieldRecType:
		m.ResetRecType()
		return nil
	case recommendation.FieldTitle:
		m.ResetTitle()
		return nil
	case recommendation.FieldDescription:
		m.ResetDescription()
		return nil
	case recommendation.FieldActionableText:
		m.ResetActionableText()
		return nil
	case recommendation.FieldConfidence:
		m.ResetConfidence()
		return nil
	case recommendation.FieldEstimatedImpact:
		m.ResetEstimatedImpact()
		return nil
	case recommendation.FieldEase:
		m.ResetEase()
		return nil
	case recommendation.FieldUserReadiness:
		m.ResetUserReadiness()
		return nil
	case recommendation.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case recommendation.FieldSourcePatternIds:
		m.ResetSourcePatternIds()
		return nil
	case recommendation.FieldSourceInsightIds:
		m.ResetSourceInsightIds()
		return nil
	case recommendation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recommendation.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case recommendation.FieldDismissedAt:
		m.ResetDismissedAt()
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Recommendation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Recommendation edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	reviewed_at        *time.Time
	rating             *string
	stability_after    *float64
	addstability_after *float64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ReviewEvent, error)
	predicates         []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ReviewEventMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ReviewEventMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldReviewedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ReviewEventMutation) ResetReviewedAt() {
	m.reviewed_at = nil
}

// SetRating sets the "rating" field.
func (m *ReviewEventMutation) SetRating(s string) {
	m.rating = &s
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewEventMutation) Rating() (r string, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRating(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewEventMutation) ResetRating() {
	m.rating = nil
}

// SetStabilityAfter sets the "stability_after" field.
func (m *ReviewEventMutation) SetStabilityAfter(f float64) {
	m.stability_after = &f
	m.addstability_after = nil
}

// StabilityAfter returns the value of the "stability_after" field in the mutation.
func (m *ReviewEventMutation) StabilityAfter() (r float64, exists bool) {
	v := m.stability_after
	if v == nil {
		return
	}
	return *v, true
}

// OldStabilityAfter returns the old "stability_after" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldStabilityAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStabilityAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStabilityAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStabilityAfter: %w", err)
	}
	return oldValue.StabilityAfter, nil
}

// AddStabilityAfter adds f to the "stability_after" field.
func (m *ReviewEventMutation) AddStabilityAfter(f float64) {
	if m.addstability_after != nil {
		*m.addstability_after += f
	} else {
		m.addstability_after = &f
	}
}

// AddedStabilityAfter returns the value that was added to the "stability_after" field in this mutation.
func (m *ReviewEventMutation) AddedStabilityAfter() (r float64, exists bool) {
	v := m.addstability_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetStabilityAfter resets all changes to the "stability_after" field.
func (m *ReviewEventMutation) ResetStabilityAfter() {
	m.stability_after = nil
	m.addstability_after = nil
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, reviewevent.FieldUserID)
	}
	if m.reviewed_at != nil {
		fields = append(fields, reviewevent.FieldReviewedAt)
	}
	if m.rating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.stability_after != nil {
		fields = append(fields, reviewevent.FieldStabilityAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldUserID:
		return m.UserID()
	case reviewevent.FieldReviewedAt:
		return m.ReviewedAt()
	case reviewevent.FieldRating:
		return m.Rating()
	case reviewevent.FieldStabilityAfter:
		return m.StabilityAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldUserID:
		return m.OldUserID(ctx)
	case reviewevent.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case reviewevent.FieldRating:
		return m.OldRating(ctx)
	case reviewevent.FieldStabilityAfter:
		return m.OldStabilityAfter(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewevent.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case reviewevent.FieldStabilityAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStabilityAfter(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addstability_after != nil {
		fields = append(fields, reviewevent.FieldStabilityAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldStabilityAfter:
		return m.AddedStabilityAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldStabilityAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStabilityAfter(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewevent.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case reviewevent.FieldRating:
		m.ResetRating()
		return nil
	case reviewevent.FieldStabilityAfter:
		m.ResetStabilityAfter()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	session_id       *string
	started_at       *time.Time
	completed_at     *time.Time
	duration_ms      *int64
	addduration_ms   *int64
	reviews          *[]schema.ReviewSample
	appendreviews    []schema.ReviewSample
	objectives       *[]schema.ObjectiveSample
	appendobjectives []schema.ObjectiveSample
	mission_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*StudySession, error)
	predicates       []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id int) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StudySessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudySessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudySessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *StudySessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StudySessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StudySessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StudySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StudySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
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

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StudySessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StudySessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StudySessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *StudySessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[studysession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StudySessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StudySessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, studysession.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StudySessionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StudySessionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StudySessionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StudySessionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StudySessionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetReviews sets the "reviews" field.
func (m *StudySessionMutation) SetReviews(ss []schema.ReviewSample) {
	m.reviews = &ss
	m.appendreviews = nil
}

// Reviews returns the value of the "reviews" field in the mutation.
func (m *StudySessionMutation) Reviews() (r []schema.ReviewSample, exists bool) {
	v := m.reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldReviews returns the old "reviews" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldReviews(ctx context.Context) (v []schema.ReviewSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviews: %w", err)
	}
	return oldValue.Reviews, nil
}

// AppendReviews adds ss to the "reviews" field.
func (m *StudySessionMutation) AppendReviews(ss []schema.ReviewSample) {
	m.appendreviews = append(m.appendreviews, ss...)
}

// AppendedReviews returns the list of values that were appended to the "reviews" field in this mutation.
func (m *StudySessionMutation) AppendedReviews() ([]schema.ReviewSample, bool) {
	if len(m.appendreviews) == 0 {
		return nil, false
	}
	return m.appendreviews, true
}

// ClearReviews clears the value of the "reviews" field.
func (m *StudySessionMutation) ClearReviews() {
	m.reviews = nil
	m.appendreviews = nil
	m.clearedFields[studysession.FieldReviews] = struct{}{}
}

// ReviewsCleared returns if the "reviews" field was cleared in this mutation.
func (m *StudySessionMutation) ReviewsCleared() bool {
	_, ok := m.clearedFields[studysession.FieldReviews]
	return ok
}

// ResetReviews resets all changes to the "reviews" field.
func (m *StudySessionMutation) ResetReviews() {
	m.reviews = nil
	m.appendreviews = nil
	delete(m.clearedFields, studysession.FieldReviews)
}

// SetObjectives sets the "objectives" field.
func (m *StudySessionMutation) SetObjectives(ss []schema.ObjectiveSample) {
	m.objectives = &ss
	m.appendobjectives = nil
}

// Objectives returns the value of the "objectives" field in the mutation.
func (m *StudySessionMutation) Objectives() (r []schema.ObjectiveSample, exists bool) {
	v := m.objectives
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectives returns the old "objectives" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldObjectives(ctx context.Context) (v []schema.ObjectiveSample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectives is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectives requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectives: %w", err)
	}
	return oldValue.Objectives, nil
}

// AppendObjectives adds ss to the "objectives" field.
func (m *StudySessionMutation) AppendObjectives(ss []schema.ObjectiveSample) {
	m.appendobjectives = append(m.appendobjectives, ss...)
}

// AppendedObjectives returns the list of values that were appended to the "objectives" field in this mutation.
func (m *StudySessionMutation) AppendedObjectives() ([]schema.ObjectiveSample, bool) {
	if len(m.appendobjectives) == 0 {
		return nil, false
	}
	return m.appendobjectives, true
}

// ClearObjectives clears the value of the "objectives" field.
func (m *StudySessionMutation) ClearObjectives() {
	m.objectives = nil
	m.appendobjectives = nil
	m.clearedFields[studysession.FieldObjectives] = struct{}{}
}

// ObjectivesCleared returns if the "objectives" field was cleared in this mutation.
func (m *StudySessionMutation) ObjectivesCleared() bool {
	_, ok := m.clearedFields[studysession.FieldObjectives]
	return ok
}

// ResetObjectives resets all changes to the "objectives" field.
func (m *StudySessionMutation) ResetObjectives() {
	m.objectives = nil
	m.appendobjectives = nil
	delete(m.clearedFields, studysession.FieldObjectives)
}

// SetMissionID sets the "mission_id" field.
func (m *StudySessionMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *StudySessionMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *StudySessionMutation) ClearMissionID() {
	m.mission_id = nil
	m.clearedFields[studysession.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *StudySessionMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[studysession.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *StudySessionMutation) ResetMissionID() {
	m.mission_id = nil
	delete(m.clearedFields, studysession.FieldMissionID)
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, studysession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, studysession.FieldSessionID)
	}
	if m.started_at != nil {
		fields = append(fields, studysession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, studysession.FieldDurationMs)
	}
	if m.reviews != nil {
		fields = append(fields, studysession.FieldReviews)
	}
	if m.objectives != nil {
		fields = append(fields, studysession.FieldObjectives)
	}
	if m.mission_id != nil {
		fields = append(fields, studysession.FieldMissionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldUserID:
		return m.UserID()
	case studysession.FieldSessionID:
		return m.SessionID()
	case studysession.FieldStartedAt:
		return m.StartedAt()
	case studysession.FieldCompletedAt:
		return m.CompletedAt()
	case studysession.FieldDurationMs:
		return m.DurationMs()
	case studysession.FieldReviews:
		return m.Reviews()
	case studysession.FieldObjectives:
		return m.Objectives()
	case studysession.FieldMissionID:
		return m.MissionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldUserID:
		return m.OldUserID(ctx)
	case studysession.FieldSessionID:
		return m.OldSessionID(ctx)
	case studysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case studysession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case studysession.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case studysession.FieldReviews:
		return m.OldReviews(ctx)
	case studysession.FieldObjectives:
		return m.OldObjectives(ctx)
	case studysession.FieldMissionID:
		return m.OldMissionID(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studysession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case studysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case studysession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case studysession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case studysession.FieldReviews:
		v, ok := value.([]schema.ReviewSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviews(v)
		return nil
	case studysession.FieldObjectives:
		v, ok := value.([]schema.ObjectiveSample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectives(v)
		return nil
	case studysession.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, studysession.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldCompletedAt) {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	if m.FieldCleared(studysession.FieldReviews) {
		fields = append(fields, studysession.FieldReviews)
	}
	if m.FieldCleared(studysession.FieldObjectives) {
		fields = append(fields, studysession.FieldObjectives)
	}
	if m.FieldCleared(studysession.FieldMissionID) {
		fields = append(fields, studysession.FieldMissionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case studysession.FieldReviews:
		m.ClearReviews()
		return nil
	case studysession.FieldObjectives:
		m.ClearObjectives()
		return nil
	case studysession.FieldMissionID:
		m.ClearMissionID()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldUserID:
		m.ResetUserID()
		return nil
	case studysession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case studysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case studysession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case studysession.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case studysession.FieldReviews:
		m.ResetReviews()
		return nil
	case studysession.FieldObjectives:
		m.ResetObjectives()
		return nil
	case studysession.FieldMissionID:
		m.ResetMissionID()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudySession edge %s", name)
}
