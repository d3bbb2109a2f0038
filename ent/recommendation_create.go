// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/recommendation"
)

// RecommendationCreate is the builder for creating a Recommendation entity.
type RecommendationCreate struct {
	config
	mutation *RecommendationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *RecommendationCreate) SetUserID(v string) *RecommendationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRecType sets the "rec_type" field.
func (_c *RecommendationCreate) SetRecType(v string) *RecommendationCreate {
	_c.mutation.SetRecType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RecommendationCreate) SetTitle(v string) *RecommendationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RecommendationCreate) SetDescription(v string) *RecommendationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableDescription(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetActionableText sets the "actionable_text" field.
func (_c *RecommendationCreate) SetActionableText(v string) *RecommendationCreate {
	_c.mutation.SetActionableText(v)
	return _c
}

// SetNillableActionableText sets the "actionable_text" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableActionableText(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetActionableText(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RecommendationCreate) SetConfidence(v float64) *RecommendationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (_c *RecommendationCreate) SetEstimatedImpact(v float64) *RecommendationCreate {
	_c.mutation.SetEstimatedImpact(v)
	return _c
}

// SetEase sets the "ease" field.
func (_c *RecommendationCreate) SetEase(v float64) *RecommendationCreate {
	_c.mutation.SetEase(v)
	return _c
}

// SetUserReadiness sets the "user_readiness" field.
func (_c *RecommendationCreate) SetUserReadiness(v float64) *RecommendationCreate {
	_c.mutation.SetUserReadiness(v)
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *RecommendationCreate) SetPriorityScore(v float64) *RecommendationCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (_c *RecommendationCreate) SetSourcePatternIds(v []string) *RecommendationCreate {
	_c.mutation.SetSourcePatternIds(v)
	return _c
}

// SetSourceInsightIds sets the "source_insight_ids" field.
func (_c *RecommendationCreate) SetSourceInsightIds(v []string) *RecommendationCreate {
	_c.mutation.SetSourceInsightIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecommendationCreate) SetCreatedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *RecommendationCreate) SetAppliedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableAppliedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetDismissedAt sets the "dismissed_at" field.
func (_c *RecommendationCreate) SetDismissedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetDismissedAt(v)
	return _c
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableDismissedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetDismissedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecommendationCreate) SetID(v string) *RecommendationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableID(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RecommendationMutation object of the builder.
func (_c *RecommendationCreate) Mutation() *RecommendationMutation {
	return _c.mutation
}

// Save creates the Recommendation in the database.
func (_c *RecommendationCreate) Save(ctx context.Context) (*Recommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationCreate) SaveX(ctx context.Context) *Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := recommendation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Recommendation.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := recommendation.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecType(); !ok {
		return &ValidationError{Name: "rec_type", err: errors.New(`ent: missing required field "Recommendation.rec_type"`)}
	}
	if v, ok := _c.mutation.RecType(); ok {
		if err := recommendation.RecTypeValidator(v); err != nil {
			return &ValidationError{Name: "rec_type", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rec_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Recommendation.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Recommendation.confidence"`)}
	}
	if _, ok := _c.mutation.EstimatedImpact(); !ok {
		return &ValidationError{Name: "estimated_impact", err: errors.New(`ent: missing required field "Recommendation.estimated_impact"`)}
	}
	if _, ok := _c.mutation.Ease(); !ok {
		return &ValidationError{Name: "ease", err: errors.New(`ent: missing required field "Recommendation.ease"`)}
	}
	if _, ok := _c.mutation.UserReadiness(); !ok {
		return &ValidationError{Name: "user_readiness", err: errors.New(`ent: missing required field "Recommendation.user_readiness"`)}
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		return &ValidationError{Name: "priority_score", err: errors.New(`ent: missing required field "Recommendation.priority_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recommendation.created_at"`)}
	}
	return nil
}

func (_c *RecommendationCreate) sqlSave(ctx context.Context) (*Recommendation, error) {
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
			return nil, fmt.Errorf("unexpected Recommendation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecommendationCreate) createSpec() (*Recommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &Recommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendation.Table, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(recommendation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
		_node.RecType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ActionableText(); ok {
		_spec.SetField(recommendation.FieldActionableText, field.TypeString, value)
		_node.ActionableText = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(recommendation.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.EstimatedImpact(); ok {
		_spec.SetField(recommendation.FieldEstimatedImpact, field.TypeFloat64, value)
		_node.EstimatedImpact = value
	}
	if value, ok := _c.mutation.Ease(); ok {
		_spec.SetField(recommendation.FieldEase, field.TypeFloat64, value)
		_node.Ease = value
	}
	if value, ok := _c.mutation.UserReadiness(); ok {
		_spec.SetField(recommendation.FieldUserReadiness, field.TypeFloat64, value)
		_node.UserReadiness = value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(recommendation.FieldPriorityScore, field.TypeFloat64, value)
		_node.PriorityScore = value
	}
	if value, ok := _c.mutation.SourcePatternIds(); ok {
		_spec.SetField(recommendation.FieldSourcePatternIds, field.TypeJSON, value)
		_node.SourcePatternIds = value
	}
	if value, ok := _c.mutation.SourceInsightIds(); ok {
		_spec.SetField(recommendation.FieldSourceInsightIds, field.TypeJSON, value)
		_node.SourceInsightIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(recommendation.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = &value
	}
	if value, ok := _c.mutation.DismissedAt(); ok {
		_spec.SetField(recommendation.FieldDismissedAt, field.TypeTime, value)
		_node.DismissedAt = &value
	}
	return _node, _spec
}

// RecommendationCreateBulk is the builder for creating many Recommendation entities in bulk.
type RecommendationCreateBulk struct {
	config
	err      error
	builders []*RecommendationCreate
}

// Save creates the Recommendation entities in the database.
func (_c *RecommendationCreateBulk) Save(ctx context.Context) ([]*Recommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationMutation)
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
func (_c *RecommendationCreateBulk) SaveX(ctx context.Context) []*Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
