// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/adaptationevent"
)

// AdaptationEventCreate is the builder for creating a AdaptationEvent entity.
type AdaptationEventCreate struct {
	config
	mutation *AdaptationEventMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AdaptationEventCreate) SetUserID(v string) *AdaptationEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AdaptationEventCreate) SetTimestamp(v time.Time) *AdaptationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetLoad sets the "load" field.
func (_c *AdaptationEventCreate) SetLoad(v float64) *AdaptationEventCreate {
	_c.mutation.SetLoad(v)
	return _c
}

// SetEffectiveLoad sets the "effective_load" field.
func (_c *AdaptationEventCreate) SetEffectiveLoad(v float64) *AdaptationEventCreate {
	_c.mutation.SetEffectiveLoad(v)
	return _c
}

// SetZone sets the "zone" field.
func (_c *AdaptationEventCreate) SetZone(v string) *AdaptationEventCreate {
	_c.mutation.SetZone(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AdaptationEventCreate) SetAction(v string) *AdaptationEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetDifficultyChange sets the "difficulty_change" field.
func (_c *AdaptationEventCreate) SetDifficultyChange(v int) *AdaptationEventCreate {
	_c.mutation.SetDifficultyChange(v)
	return _c
}

// SetReviewRatio sets the "review_ratio" field.
func (_c *AdaptationEventCreate) SetReviewRatio(v float64) *AdaptationEventCreate {
	_c.mutation.SetReviewRatio(v)
	return _c
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_c *AdaptationEventCreate) Mutation() *AdaptationEventMutation {
	return _c.mutation
}

// Save creates the AdaptationEvent in the database.
func (_c *AdaptationEventCreate) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdaptationEventCreate) SaveX(ctx context.Context) *AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdaptationEventCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AdaptationEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AdaptationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Load(); !ok {
		return &ValidationError{Name: "load", err: errors.New(`ent: missing required field "AdaptationEvent.load"`)}
	}
	if _, ok := _c.mutation.EffectiveLoad(); !ok {
		return &ValidationError{Name: "effective_load", err: errors.New(`ent: missing required field "AdaptationEvent.effective_load"`)}
	}
	if _, ok := _c.mutation.Zone(); !ok {
		return &ValidationError{Name: "zone", err: errors.New(`ent: missing required field "AdaptationEvent.zone"`)}
	}
	if v, ok := _c.mutation.Zone(); ok {
		if err := adaptationevent.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.zone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AdaptationEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := adaptationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyChange(); !ok {
		return &ValidationError{Name: "difficulty_change", err: errors.New(`ent: missing required field "AdaptationEvent.difficulty_change"`)}
	}
	if _, ok := _c.mutation.ReviewRatio(); !ok {
		return &ValidationError{Name: "review_ratio", err: errors.New(`ent: missing required field "AdaptationEvent.review_ratio"`)}
	}
	return nil
}

func (_c *AdaptationEventCreate) sqlSave(ctx context.Context) (*AdaptationEvent, error) {
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

func (_c *AdaptationEventCreate) createSpec() (*AdaptationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdaptationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adaptationevent.Table, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(adaptationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Load(); ok {
		_spec.SetField(adaptationevent.FieldLoad, field.TypeFloat64, value)
		_node.Load = value
	}
	if value, ok := _c.mutation.EffectiveLoad(); ok {
		_spec.SetField(adaptationevent.FieldEffectiveLoad, field.TypeFloat64, value)
		_node.EffectiveLoad = value
	}
	if value, ok := _c.mutation.Zone(); ok {
		_spec.SetField(adaptationevent.FieldZone, field.TypeString, value)
		_node.Zone = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(adaptationevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.DifficultyChange(); ok {
		_spec.SetField(adaptationevent.FieldDifficultyChange, field.TypeInt, value)
		_node.DifficultyChange = value
	}
	if value, ok := _c.mutation.ReviewRatio(); ok {
		_spec.SetField(adaptationevent.FieldReviewRatio, field.TypeFloat64, value)
		_node.ReviewRatio = value
	}
	return _node, _spec
}

// AdaptationEventCreateBulk is the builder for creating many AdaptationEvent entities in bulk.
type AdaptationEventCreateBulk struct {
	config
	err      error
	builders []*AdaptationEventCreate
}

// Save creates the AdaptationEvent entities in the database.
func (_c *AdaptationEventCreateBulk) Save(ctx context.Context) ([]*AdaptationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdaptationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdaptationEventMutation)
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
func (_c *AdaptationEventCreateBulk) SaveX(ctx context.Context) []*AdaptationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdaptationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdaptationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
