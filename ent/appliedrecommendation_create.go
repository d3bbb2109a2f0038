// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/appliedrecommendation"
	"github.com/abhisek/cadence/ent/schema"
)

// AppliedRecommendationCreate is the builder for creating a AppliedRecommendation entity.
type AppliedRecommendationCreate struct {
	config
	mutation *AppliedRecommendationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AppliedRecommendationCreate) SetUserID(v string) *AppliedRecommendationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRecommendationID sets the "recommendation_id" field.
func (_c *AppliedRecommendationCreate) SetRecommendationID(v string) *AppliedRecommendationCreate {
	_c.mutation.SetRecommendationID(v)
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *AppliedRecommendationCreate) SetAppliedAt(v time.Time) *AppliedRecommendationCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetBaseline sets the "baseline" field.
func (_c *AppliedRecommendationCreate) SetBaseline(v schema.MetricsSample) *AppliedRecommendationCreate {
	_c.mutation.SetBaseline(v)
	return _c
}

// SetCurrent sets the "current" field.
func (_c *AppliedRecommendationCreate) SetCurrent(v *schema.MetricsSample) *AppliedRecommendationCreate {
	_c.mutation.SetCurrent(v)
	return _c
}

// SetEffectiveness sets the "effectiveness" field.
func (_c *AppliedRecommendationCreate) SetEffectiveness(v float64) *AppliedRecommendationCreate {
	_c.mutation.SetEffectiveness(v)
	return _c
}

// SetNillableEffectiveness sets the "effectiveness" field if the given value is not nil.
func (_c *AppliedRecommendationCreate) SetNillableEffectiveness(v *float64) *AppliedRecommendationCreate {
	if v != nil {
		_c.SetEffectiveness(*v)
	}
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *AppliedRecommendationCreate) SetEvaluatedAt(v time.Time) *AppliedRecommendationCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_c *AppliedRecommendationCreate) SetNillableEvaluatedAt(v *time.Time) *AppliedRecommendationCreate {
	if v != nil {
		_c.SetEvaluatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppliedRecommendationCreate) SetID(v string) *AppliedRecommendationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppliedRecommendationCreate) SetNillableID(v *string) *AppliedRecommendationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppliedRecommendationMutation object of the builder.
func (_c *AppliedRecommendationCreate) Mutation() *AppliedRecommendationMutation {
	return _c.mutation
}

// Save creates the AppliedRecommendation in the database.
func (_c *AppliedRecommendationCreate) Save(ctx context.Context) (*AppliedRecommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppliedRecommendationCreate) SaveX(ctx context.Context) *AppliedRecommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppliedRecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppliedRecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppliedRecommendationCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := appliedrecommendation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppliedRecommendationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AppliedRecommendation.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := appliedrecommendation.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AppliedRecommendation.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecommendationID(); !ok {
		return &ValidationError{Name: "recommendation_id", err: errors.New(`ent: missing required field "AppliedRecommendation.recommendation_id"`)}
	}
	if v, ok := _c.mutation.RecommendationID(); ok {
		if err := appliedrecommendation.RecommendationIDValidator(v); err != nil {
			return &ValidationError{Name: "recommendation_id", err: fmt.Errorf(`ent: validator failed for field "AppliedRecommendation.recommendation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AppliedAt(); !ok {
		return &ValidationError{Name: "applied_at", err: errors.New(`ent: missing required field "AppliedRecommendation.applied_at"`)}
	}
	if _, ok := _c.mutation.Baseline(); !ok {
		return &ValidationError{Name: "baseline", err: errors.New(`ent: missing required field "AppliedRecommendation.baseline"`)}
	}
	return nil
}

func (_c *AppliedRecommendationCreate) sqlSave(ctx context.Context) (*AppliedRecommendation, error) {
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
			return nil, fmt.Errorf("unexpected AppliedRecommendation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppliedRecommendationCreate) createSpec() (*AppliedRecommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &AppliedRecommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appliedrecommendation.Table, sqlgraph.NewFieldSpec(appliedrecommendation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(appliedrecommendation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RecommendationID(); ok {
		_spec.SetField(appliedrecommendation.FieldRecommendationID, field.TypeString, value)
		_node.RecommendationID = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(appliedrecommendation.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = value
	}
	if value, ok := _c.mutation.Baseline(); ok {
		_spec.SetField(appliedrecommendation.FieldBaseline, field.TypeJSON, value)
		_node.Baseline = value
	}
	if value, ok := _c.mutation.Current(); ok {
		_spec.SetField(appliedrecommendation.FieldCurrent, field.TypeJSON, value)
		_node.Current = value
	}
	if value, ok := _c.mutation.Effectiveness(); ok {
		_spec.SetField(appliedrecommendation.FieldEffectiveness, field.TypeFloat64, value)
		_node.Effectiveness = &value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(appliedrecommendation.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = &value
	}
	return _node, _spec
}

// AppliedRecommendationCreateBulk is the builder for creating many AppliedRecommendation entities in bulk.
type AppliedRecommendationCreateBulk struct {
	config
	err      error
	builders []*AppliedRecommendationCreate
}

// Save creates the AppliedRecommendation entities in the database.
func (_c *AppliedRecommendationCreateBulk) Save(ctx context.Context) ([]*AppliedRecommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppliedRecommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppliedRecommendationMutation)
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
func (_c *AppliedRecommendationCreateBulk) SaveX(ctx context.Context) []*AppliedRecommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppliedRecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppliedRecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
