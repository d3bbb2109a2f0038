// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralpattern"
)

// BehavioralPatternCreate is the builder for creating a BehavioralPattern entity.
type BehavioralPatternCreate struct {
	config
	mutation *BehavioralPatternMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BehavioralPatternCreate) SetUserID(v string) *BehavioralPatternCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatternType sets the "pattern_type" field.
func (_c *BehavioralPatternCreate) SetPatternType(v string) *BehavioralPatternCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetPatternName sets the "pattern_name" field.
func (_c *BehavioralPatternCreate) SetPatternName(v string) *BehavioralPatternCreate {
	_c.mutation.SetPatternName(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BehavioralPatternCreate) SetConfidence(v float64) *BehavioralPatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetData sets the "data" field.
func (_c *BehavioralPatternCreate) SetData(v json.RawMessage) *BehavioralPatternCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *BehavioralPatternCreate) SetEvidence(v []string) *BehavioralPatternCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *BehavioralPatternCreate) SetOccurrenceCount(v int) *BehavioralPatternCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_c *BehavioralPatternCreate) SetNillableOccurrenceCount(v *int) *BehavioralPatternCreate {
	if v != nil {
		_c.SetOccurrenceCount(*v)
	}
	return _c
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (_c *BehavioralPatternCreate) SetFirstDetectedAt(v time.Time) *BehavioralPatternCreate {
	_c.mutation.SetFirstDetectedAt(v)
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *BehavioralPatternCreate) SetLastSeenAt(v time.Time) *BehavioralPatternCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetConsecutiveNonOccurrences sets the "consecutive_non_occurrences" field.
func (_c *BehavioralPatternCreate) SetConsecutiveNonOccurrences(v int) *BehavioralPatternCreate {
	_c.mutation.SetConsecutiveNonOccurrences(v)
	return _c
}

// SetNillableConsecutiveNonOccurrences sets the "consecutive_non_occurrences" field if the given value is not nil.
func (_c *BehavioralPatternCreate) SetNillableConsecutiveNonOccurrences(v *int) *BehavioralPatternCreate {
	if v != nil {
		_c.SetConsecutiveNonOccurrences(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BehavioralPatternCreate) SetID(v string) *BehavioralPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BehavioralPatternCreate) SetNillableID(v *string) *BehavioralPatternCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BehavioralPatternMutation object of the builder.
func (_c *BehavioralPatternCreate) Mutation() *BehavioralPatternMutation {
	return _c.mutation
}

// Save creates the BehavioralPattern in the database.
func (_c *BehavioralPatternCreate) Save(ctx context.Context) (*BehavioralPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BehavioralPatternCreate) SaveX(ctx context.Context) *BehavioralPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehavioralPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehavioralPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BehavioralPatternCreate) defaults() {
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		v := behavioralpattern.DefaultOccurrenceCount
		_c.mutation.SetOccurrenceCount(v)
	}
	if _, ok := _c.mutation.ConsecutiveNonOccurrences(); !ok {
		v := behavioralpattern.DefaultConsecutiveNonOccurrences
		_c.mutation.SetConsecutiveNonOccurrences(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := behavioralpattern.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BehavioralPatternCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BehavioralPattern.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := behavioralpattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BehavioralPattern.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "BehavioralPattern.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := behavioralpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralPattern.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternName(); !ok {
		return &ValidationError{Name: "pattern_name", err: errors.New(`ent: missing required field "BehavioralPattern.pattern_name"`)}
	}
	if v, ok := _c.mutation.PatternName(); ok {
		if err := behavioralpattern.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "BehavioralPattern.pattern_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "BehavioralPattern.confidence"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "BehavioralPattern.data"`)}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "BehavioralPattern.occurrence_count"`)}
	}
	if _, ok := _c.mutation.FirstDetectedAt(); !ok {
		return &ValidationError{Name: "first_detected_at", err: errors.New(`ent: missing required field "BehavioralPattern.first_detected_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "BehavioralPattern.last_seen_at"`)}
	}
	if _, ok := _c.mutation.ConsecutiveNonOccurrences(); !ok {
		return &ValidationError{Name: "consecutive_non_occurrences", err: errors.New(`ent: missing required field "BehavioralPattern.consecutive_non_occurrences"`)}
	}
	return nil
}

func (_c *BehavioralPatternCreate) sqlSave(ctx context.Context) (*BehavioralPattern, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BehavioralPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BehavioralPatternCreate) createSpec() (*BehavioralPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &BehavioralPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(behavioralpattern.Table, sqlgraph.NewFieldSpec(behavioralpattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(behavioralpattern.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(behavioralpattern.FieldPatternType, field.TypeString, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.PatternName(); ok {
		_spec.SetField(behavioralpattern.FieldPatternName, field.TypeString, value)
		_node.PatternName = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(behavioralpattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(behavioralpattern.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(behavioralpattern.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(behavioralpattern.FieldOccurrenceCount, field.TypeInt, value)
		_node.OccurrenceCount = value
	}
	if value, ok := _c.mutation.FirstDetectedAt(); ok {
		_spec.SetField(behavioralpattern.FieldFirstDetectedAt, field.TypeTime, value)
		_node.FirstDetectedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(behavioralpattern.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.ConsecutiveNonOccurrences(); ok {
		_spec.SetField(behavioralpattern.FieldConsecutiveNonOccurrences, field.TypeInt, value)
		_node.ConsecutiveNonOccurrences = value
	}
	return _node, _spec
}

// BehavioralPatternCreateBulk is the builder for creating many BehavioralPattern entities in bulk.
type BehavioralPatternCreateBulk struct {
	config
	err      error
	builders []*BehavioralPatternCreate
}

// Save creates the BehavioralPattern entities in the database.
func (_c *BehavioralPatternCreateBulk) Save(ctx context.Context) ([]*BehavioralPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BehavioralPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BehavioralPatternMutation)
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
func (_c *BehavioralPatternCreateBulk) SaveX(ctx context.Context) []*BehavioralPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehavioralPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehavioralPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
