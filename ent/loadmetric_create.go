// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/loadmetric"
)

// LoadMetricCreate is the builder for creating a LoadMetric entity.
type LoadMetricCreate struct {
	config
	mutation *LoadMetricMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LoadMetricCreate) SetUserID(v string) *LoadMetricCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LoadMetricCreate) SetTimestamp(v time.Time) *LoadMetricCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetLoadScore sets the "load_score" field.
func (_c *LoadMetricCreate) SetLoadScore(v float64) *LoadMetricCreate {
	_c.mutation.SetLoadScore(v)
	return _c
}

// Mutation returns the LoadMetricMutation object of the builder.
func (_c *LoadMetricCreate) Mutation() *LoadMetricMutation {
	return _c.mutation
}

// Save creates the LoadMetric in the database.
func (_c *LoadMetricCreate) Save(ctx context.Context) (*LoadMetric, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoadMetricCreate) SaveX(ctx context.Context) *LoadMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoadMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoadMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoadMetricCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LoadMetric.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := loadmetric.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LoadMetric.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LoadMetric.timestamp"`)}
	}
	if _, ok := _c.mutation.LoadScore(); !ok {
		return &ValidationError{Name: "load_score", err: errors.New(`ent: missing required field "LoadMetric.load_score"`)}
	}
	return nil
}

func (_c *LoadMetricCreate) sqlSave(ctx context.Context) (*LoadMetric, error) {
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

func (_c *LoadMetricCreate) createSpec() (*LoadMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &LoadMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loadmetric.Table, sqlgraph.NewFieldSpec(loadmetric.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(loadmetric.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(loadmetric.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LoadScore(); ok {
		_spec.SetField(loadmetric.FieldLoadScore, field.TypeFloat64, value)
		_node.LoadScore = value
	}
	return _node, _spec
}

// LoadMetricCreateBulk is the builder for creating many LoadMetric entities in bulk.
type LoadMetricCreateBulk struct {
	config
	err      error
	builders []*LoadMetricCreate
}

// Save creates the LoadMetric entities in the database.
func (_c *LoadMetricCreateBulk) Save(ctx context.Context) ([]*LoadMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LoadMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoadMetricMutation)
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
func (_c *LoadMetricCreateBulk) SaveX(ctx context.Context) []*LoadMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoadMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoadMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
