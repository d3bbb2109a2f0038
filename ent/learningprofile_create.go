// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/learningprofile"
	"github.com/abhisek/cadence/ent/schema"
)

// LearningProfileCreate is the builder for creating a LearningProfile entity.
type LearningProfileCreate struct {
	config
	mutation *LearningProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningProfileCreate) SetUserID(v string) *LearningProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPreferredWindows sets the "preferred_windows" field.
func (_c *LearningProfileCreate) SetPreferredWindows(v []schema.WindowSample) *LearningProfileCreate {
	_c.mutation.SetPreferredWindows(v)
	return _c
}

// SetOptimalDurationMin sets the "optimal_duration_min" field.
func (_c *LearningProfileCreate) SetOptimalDurationMin(v int) *LearningProfileCreate {
	_c.mutation.SetOptimalDurationMin(v)
	return _c
}

// SetNillableOptimalDurationMin sets the "optimal_duration_min" field if the given value is not nil.
func (_c *LearningProfileCreate) SetNillableOptimalDurationMin(v *int) *LearningProfileCreate {
	if v != nil {
		_c.SetOptimalDurationMin(*v)
	}
	return _c
}

// SetContentPreferences sets the "content_preferences" field.
func (_c *LearningProfileCreate) SetContentPreferences(v map[string]float64) *LearningProfileCreate {
	_c.mutation.SetContentPreferences(v)
	return _c
}

// SetLearningStyle sets the "learning_style" field.
func (_c *LearningProfileCreate) SetLearningStyle(v *schema.StyleSample) *LearningProfileCreate {
	_c.mutation.SetLearningStyle(v)
	return _c
}

// SetStabilityDays sets the "stability_days" field.
func (_c *LearningProfileCreate) SetStabilityDays(v float64) *LearningProfileCreate {
	_c.mutation.SetStabilityDays(v)
	return _c
}

// SetNillableStabilityDays sets the "stability_days" field if the given value is not nil.
func (_c *LearningProfileCreate) SetNillableStabilityDays(v *float64) *LearningProfileCreate {
	if v != nil {
		_c.SetStabilityDays(*v)
	}
	return _c
}

// SetHalfLifeDays sets the "half_life_days" field.
func (_c *LearningProfileCreate) SetHalfLifeDays(v float64) *LearningProfileCreate {
	_c.mutation.SetHalfLifeDays(v)
	return _c
}

// SetNillableHalfLifeDays sets the "half_life_days" field if the given value is not nil.
func (_c *LearningProfileCreate) SetNillableHalfLifeDays(v *float64) *LearningProfileCreate {
	if v != nil {
		_c.SetHalfLifeDays(*v)
	}
	return _c
}

// SetDataQualityScore sets the "data_quality_score" field.
func (_c *LearningProfileCreate) SetDataQualityScore(v float64) *LearningProfileCreate {
	_c.mutation.SetDataQualityScore(v)
	return _c
}

// SetNillableDataQualityScore sets the "data_quality_score" field if the given value is not nil.
func (_c *LearningProfileCreate) SetNillableDataQualityScore(v *float64) *LearningProfileCreate {
	if v != nil {
		_c.SetDataQualityScore(*v)
	}
	return _c
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (_c *LearningProfileCreate) SetLastAnalyzedAt(v time.Time) *LearningProfileCreate {
	_c.mutation.SetLastAnalyzedAt(v)
	return _c
}

// Mutation returns the LearningProfileMutation object of the builder.
func (_c *LearningProfileCreate) Mutation() *LearningProfileMutation {
	return _c.mutation
}

// Save creates the LearningProfile in the database.
func (_c *LearningProfileCreate) Save(ctx context.Context) (*LearningProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningProfileCreate) SaveX(ctx context.Context) *LearningProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningProfileCreate) defaults() {
	if _, ok := _c.mutation.OptimalDurationMin(); !ok {
		v := learningprofile.DefaultOptimalDurationMin
		_c.mutation.SetOptimalDurationMin(v)
	}
	if _, ok := _c.mutation.StabilityDays(); !ok {
		v := learningprofile.DefaultStabilityDays
		_c.mutation.SetStabilityDays(v)
	}
	if _, ok := _c.mutation.HalfLifeDays(); !ok {
		v := learningprofile.DefaultHalfLifeDays
		_c.mutation.SetHalfLifeDays(v)
	}
	if _, ok := _c.mutation.DataQualityScore(); !ok {
		v := learningprofile.DefaultDataQualityScore
		_c.mutation.SetDataQualityScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptimalDurationMin(); !ok {
		return &ValidationError{Name: "optimal_duration_min", err: errors.New(`ent: missing required field "LearningProfile.optimal_duration_min"`)}
	}
	if _, ok := _c.mutation.StabilityDays(); !ok {
		return &ValidationError{Name: "stability_days", err: errors.New(`ent: missing required field "LearningProfile.stability_days"`)}
	}
	if _, ok := _c.mutation.HalfLifeDays(); !ok {
		return &ValidationError{Name: "half_life_days", err: errors.New(`ent: missing required field "LearningProfile.half_life_days"`)}
	}
	if _, ok := _c.mutation.DataQualityScore(); !ok {
		return &ValidationError{Name: "data_quality_score", err: errors.New(`ent: missing required field "LearningProfile.data_quality_score"`)}
	}
	if _, ok := _c.mutation.LastAnalyzedAt(); !ok {
		return &ValidationError{Name: "last_analyzed_at", err: errors.New(`ent: missing required field "LearningProfile.last_analyzed_at"`)}
	}
	return nil
}

func (_c *LearningProfileCreate) sqlSave(ctx context.Context) (*LearningProfile, error) {
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

func (_c *LearningProfileCreate) createSpec() (*LearningProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningprofile.Table, sqlgraph.NewFieldSpec(learningprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PreferredWindows(); ok {
		_spec.SetField(learningprofile.FieldPreferredWindows, field.TypeJSON, value)
		_node.PreferredWindows = value
	}
	if value, ok := _c.mutation.OptimalDurationMin(); ok {
		_spec.SetField(learningprofile.FieldOptimalDurationMin, field.TypeInt, value)
		_node.OptimalDurationMin = value
	}
	if value, ok := _c.mutation.ContentPreferences(); ok {
		_spec.SetField(learningprofile.FieldContentPreferences, field.TypeJSON, value)
		_node.ContentPreferences = value
	}
	if value, ok := _c.mutation.LearningStyle(); ok {
		_spec.SetField(learningprofile.FieldLearningStyle, field.TypeJSON, value)
		_node.LearningStyle = value
	}
	if value, ok := _c.mutation.StabilityDays(); ok {
		_spec.SetField(learningprofile.FieldStabilityDays, field.TypeFloat64, value)
		_node.StabilityDays = value
	}
	if value, ok := _c.mutation.HalfLifeDays(); ok {
		_spec.SetField(learningprofile.FieldHalfLifeDays, field.TypeFloat64, value)
		_node.HalfLifeDays = value
	}
	if value, ok := _c.mutation.DataQualityScore(); ok {
		_spec.SetField(learningprofile.FieldDataQualityScore, field.TypeFloat64, value)
		_node.DataQualityScore = value
	}
	if value, ok := _c.mutation.LastAnalyzedAt(); ok {
		_spec.SetField(learningprofile.FieldLastAnalyzedAt, field.TypeTime, value)
		_node.LastAnalyzedAt = value
	}
	return _node, _spec
}

// LearningProfileCreateBulk is the builder for creating many LearningProfile entities in bulk.
type LearningProfileCreateBulk struct {
	config
	err      error
	builders []*LearningProfileCreate
}

// Save creates the LearningProfile entities in the database.
func (_c *LearningProfileCreateBulk) Save(ctx context.Context) ([]*LearningProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningProfileMutation)
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
func (_c *LearningProfileCreateBulk) SaveX(ctx context.Context) []*LearningProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
