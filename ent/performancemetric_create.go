// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/performancemetric"
)

// PerformanceMetricCreate is the builder for creating a PerformanceMetric entity.
type PerformanceMetricCreate struct {
	config
	mutation *PerformanceMetricMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PerformanceMetricCreate) SetUserID(v string) *PerformanceMetricCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *PerformanceMetricCreate) SetDate(v time.Time) *PerformanceMetricCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetRetentionScore sets the "retention_score" field.
func (_c *PerformanceMetricCreate) SetRetentionScore(v float64) *PerformanceMetricCreate {
	_c.mutation.SetRetentionScore(v)
	return _c
}

// Mutation returns the PerformanceMetricMutation object of the builder.
func (_c *PerformanceMetricCreate) Mutation() *PerformanceMetricMutation {
	return _c.mutation
}

// Save creates the PerformanceMetric in the database.
func (_c *PerformanceMetricCreate) Save(ctx context.Context) (*PerformanceMetric, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceMetricCreate) SaveX(ctx context.Context) *PerformanceMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceMetricCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PerformanceMetric.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := performancemetric.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceMetric.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "PerformanceMetric.date"`)}
	}
	if _, ok := _c.mutation.RetentionScore(); !ok {
		return &ValidationError{Name: "retention_score", err: errors.New(`ent: missing required field "PerformanceMetric.retention_score"`)}
	}
	return nil
}

func (_c *PerformanceMetricCreate) sqlSave(ctx context.Context) (*PerformanceMetric, error) {
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

func (_c *PerformanceMetricCreate) createSpec() (*PerformanceMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performancemetric.Table, sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(performancemetric.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(performancemetric.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.RetentionScore(); ok {
		_spec.SetField(performancemetric.FieldRetentionScore, field.TypeFloat64, value)
		_node.RetentionScore = value
	}
	return _node, _spec
}

// PerformanceMetricCreateBulk is the builder for creating many PerformanceMetric entities in bulk.
type PerformanceMetricCreateBulk struct {
	config
	err      error
	builders []*PerformanceMetricCreate
}

// Save creates the PerformanceMetric entities in the database.
func (_c *PerformanceMetricCreateBulk) Save(ctx context.Context) ([]*PerformanceMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceMetricMutation)
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
func (_c *PerformanceMetricCreateBulk) SaveX(ctx context.Context) []*PerformanceMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
