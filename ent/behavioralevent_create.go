// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralevent"
)

// BehavioralEventCreate is the builder for creating a BehavioralEvent entity.
type BehavioralEventCreate struct {
	config
	mutation *BehavioralEventMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BehavioralEventCreate) SetUserID(v string) *BehavioralEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BehavioralEventCreate) SetTimestamp(v time.Time) *BehavioralEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *BehavioralEventCreate) SetEventType(v string) *BehavioralEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *BehavioralEventCreate) SetContentType(v string) *BehavioralEventCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *BehavioralEventCreate) SetNillableContentType(v *string) *BehavioralEventCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetEngagedMs sets the "engaged_ms" field.
func (_c *BehavioralEventCreate) SetEngagedMs(v int64) *BehavioralEventCreate {
	_c.mutation.SetEngagedMs(v)
	return _c
}

// SetNillableEngagedMs sets the "engaged_ms" field if the given value is not nil.
func (_c *BehavioralEventCreate) SetNillableEngagedMs(v *int64) *BehavioralEventCreate {
	if v != nil {
		_c.SetEngagedMs(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *BehavioralEventCreate) SetScore(v float64) *BehavioralEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *BehavioralEventCreate) SetNillableScore(v *float64) *BehavioralEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *BehavioralEventCreate) SetCompleted(v bool) *BehavioralEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *BehavioralEventCreate) SetNillableCompleted(v *bool) *BehavioralEventCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetSessionPerformance sets the "session_performance" field.
func (_c *BehavioralEventCreate) SetSessionPerformance(v float64) *BehavioralEventCreate {
	_c.mutation.SetSessionPerformance(v)
	return _c
}

// SetNillableSessionPerformance sets the "session_performance" field if the given value is not nil.
func (_c *BehavioralEventCreate) SetNillableSessionPerformance(v *float64) *BehavioralEventCreate {
	if v != nil {
		_c.SetSessionPerformance(*v)
	}
	return _c
}

// Mutation returns the BehavioralEventMutation object of the builder.
func (_c *BehavioralEventCreate) Mutation() *BehavioralEventMutation {
	return _c.mutation
}

// Save creates the BehavioralEvent in the database.
func (_c *BehavioralEventCreate) Save(ctx context.Context) (*BehavioralEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BehavioralEventCreate) SaveX(ctx context.Context) *BehavioralEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehavioralEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehavioralEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BehavioralEventCreate) defaults() {
	if _, ok := _c.mutation.EngagedMs(); !ok {
		v := behavioralevent.DefaultEngagedMs
		_c.mutation.SetEngagedMs(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := behavioralevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := behavioralevent.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.SessionPerformance(); !ok {
		v := behavioralevent.DefaultSessionPerformance
		_c.mutation.SetSessionPerformance(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BehavioralEventCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BehavioralEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := behavioralevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BehavioralEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BehavioralEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "BehavioralEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := behavioralevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EngagedMs(); !ok {
		return &ValidationError{Name: "engaged_ms", err: errors.New(`ent: missing required field "BehavioralEvent.engaged_ms"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "BehavioralEvent.score"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "BehavioralEvent.completed"`)}
	}
	if _, ok := _c.mutation.SessionPerformance(); !ok {
		return &ValidationError{Name: "session_performance", err: errors.New(`ent: missing required field "BehavioralEvent.session_performance"`)}
	}
	return nil
}

func (_c *BehavioralEventCreate) sqlSave(ctx context.Context) (*BehavioralEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BehavioralEventCreate) createSpec() (*BehavioralEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BehavioralEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(behavioralevent.Table, sqlgraph.NewFieldSpec(behavioralevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(behavioralevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(behavioralevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(behavioralevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(behavioralevent.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.EngagedMs(); ok {
		_spec.SetField(behavioralevent.FieldEngagedMs, field.TypeInt64, value)
		_node.EngagedMs = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(behavioralevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(behavioralevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.SessionPerformance(); ok {
		_spec.SetField(behavioralevent.FieldSessionPerformance, field.TypeFloat64, value)
		_node.SessionPerformance = value
	}
	return _node, _spec
}

// BehavioralEventCreateBulk is the builder for creating many BehavioralEvent entities in bulk.
type BehavioralEventCreateBulk struct {
	config
	err      error
	builders []*BehavioralEventCreate
}

// Save creates the BehavioralEvent entities in the database.
func (_c *BehavioralEventCreateBulk) Save(ctx context.Context) ([]*BehavioralEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BehavioralEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BehavioralEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BehavioralEventCreateBulk) SaveX(ctx context.Context) []*BehavioralEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehavioralEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehavioralEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
