// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralinsight"
)

// BehavioralInsightCreate is the builder for creating a BehavioralInsight entity.
type BehavioralInsightCreate struct {
	config
	mutation *BehavioralInsightMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BehavioralInsightCreate) SetUserID(v string) *BehavioralInsightCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetInsightType sets the "insight_type" field.
func (_c *BehavioralInsightCreate) SetInsightType(v string) *BehavioralInsightCreate {
	_c.mutation.SetInsightType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *BehavioralInsightCreate) SetTitle(v string) *BehavioralInsightCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *BehavioralInsightCreate) SetBody(v string) *BehavioralInsightCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *BehavioralInsightCreate) SetNillableBody(v *string) *BehavioralInsightCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetImpact sets the "impact" field.
func (_c *BehavioralInsightCreate) SetImpact(v float64) *BehavioralInsightCreate {
	_c.mutation.SetImpact(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BehavioralInsightCreate) SetConfidence(v float64) *BehavioralInsightCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (_c *BehavioralInsightCreate) SetSourcePatternIds(v []string) *BehavioralInsightCreate {
	_c.mutation.SetSourcePatternIds(v)
	return _c
}

// SetAcknowledged sets the "acknowledged" field.
func (_c *BehavioralInsightCreate) SetAcknowledged(v bool) *BehavioralInsightCreate {
	_c.mutation.SetAcknowledged(v)
	return _c
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_c *BehavioralInsightCreate) SetNillableAcknowledged(v *bool) *BehavioralInsightCreate {
	if v != nil {
		_c.SetAcknowledged(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BehavioralInsightCreate) SetCreatedAt(v time.Time) *BehavioralInsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BehavioralInsightCreate) SetID(v string) *BehavioralInsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BehavioralInsightCreate) SetNillableID(v *string) *BehavioralInsightCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BehavioralInsightMutation object of the builder.
func (_c *BehavioralInsightCreate) Mutation() *BehavioralInsightMutation {
	return _c.mutation
}

// Save creates the BehavioralInsight in the database.
func (_c *BehavioralInsightCreate) Save(ctx context.Context) (*BehavioralInsight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BehavioralInsightCreate) SaveX(ctx context.Context) *BehavioralInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehavioralInsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehavioralInsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BehavioralInsightCreate) defaults() {
	if _, ok := _c.mutation.Acknowledged(); !ok {
		v := behavioralinsight.DefaultAcknowledged
		_c.mutation.SetAcknowledged(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := behavioralinsight.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BehavioralInsightCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BehavioralInsight.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := behavioralinsight.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BehavioralInsight.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InsightType(); !ok {
		return &ValidationError{Name: "insight_type", err: errors.New(`ent: missing required field "BehavioralInsight.insight_type"`)}
	}
	if v, ok := _c.mutation.InsightType(); ok {
		if err := behavioralinsight.InsightTypeValidator(v); err != nil {
			return &ValidationError{Name: "insight_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralInsight.insight_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "BehavioralInsight.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := behavioralinsight.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BehavioralInsight.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Impact(); !ok {
		return &ValidationError{Name: "impact", err: errors.New(`ent: missing required field "BehavioralInsight.impact"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "BehavioralInsight.confidence"`)}
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		return &ValidationError{Name: "acknowledged", err: errors.New(`ent: missing required field "BehavioralInsight.acknowledged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BehavioralInsight.created_at"`)}
	}
	return nil
}

func (_c *BehavioralInsightCreate) sqlSave(ctx context.Context) (*BehavioralInsight, error) {
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
			return nil, fmt.Errorf("unexpected BehavioralInsight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BehavioralInsightCreate) createSpec() (*BehavioralInsight, *sqlgraph.CreateSpec) {
	var (
		_node = &BehavioralInsight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(behavioralinsight.Table, sqlgraph.NewFieldSpec(behavioralinsight.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(behavioralinsight.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.InsightType(); ok {
		_spec.SetField(behavioralinsight.FieldInsightType, field.TypeString, value)
		_node.InsightType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(behavioralinsight.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(behavioralinsight.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Impact(); ok {
		_spec.SetField(behavioralinsight.FieldImpact, field.TypeFloat64, value)
		_node.Impact = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(behavioralinsight.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourcePatternIds(); ok {
		_spec.SetField(behavioralinsight.FieldSourcePatternIds, field.TypeJSON, value)
		_node.SourcePatternIds = value
	}
	if value, ok := _c.mutation.Acknowledged(); ok {
		_spec.SetField(behavioralinsight.FieldAcknowledged, field.TypeBool, value)
		_node.Acknowledged = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(behavioralinsight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BehavioralInsightCreateBulk is the builder for creating many BehavioralInsight entities in bulk.
type BehavioralInsightCreateBulk struct {
	config
	err      error
	builders []*BehavioralInsightCreate
}

// Save creates the BehavioralInsight entities in the database.
func (_c *BehavioralInsightCreateBulk) Save(ctx context.Context) ([]*BehavioralInsight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BehavioralInsight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BehavioralInsightMutation)
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
func (_c *BehavioralInsightCreateBulk) SaveX(ctx context.Context) []*BehavioralInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehavioralInsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehavioralInsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
