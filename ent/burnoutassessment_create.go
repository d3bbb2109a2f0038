// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/burnoutassessment"
	"github.com/abhisek/cadence/ent/schema"
)

// BurnoutAssessmentCreate is the builder for creating a BurnoutAssessment entity.
type BurnoutAssessmentCreate struct {
	config
	mutation *BurnoutAssessmentMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BurnoutAssessmentCreate) SetUserID(v string) *BurnoutAssessmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *BurnoutAssessmentCreate) SetRiskScore(v float64) *BurnoutAssessmentCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *BurnoutAssessmentCreate) SetRiskLevel(v string) *BurnoutAssessmentCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetFactors sets the "factors" field.
func (_c *BurnoutAssessmentCreate) SetFactors(v []schema.FactorSample) *BurnoutAssessmentCreate {
	_c.mutation.SetFactors(v)
	return _c
}

// SetSignals sets the "signals" field.
func (_c *BurnoutAssessmentCreate) SetSignals(v []schema.SignalSample) *BurnoutAssessmentCreate {
	_c.mutation.SetSignals(v)
	return _c
}

// SetIntervention sets the "intervention" field.
func (_c *BurnoutAssessmentCreate) SetIntervention(v *schema.InterventionSample) *BurnoutAssessmentCreate {
	_c.mutation.SetIntervention(v)
	return _c
}

// SetAssessmentDate sets the "assessment_date" field.
func (_c *BurnoutAssessmentCreate) SetAssessmentDate(v time.Time) *BurnoutAssessmentCreate {
	_c.mutation.SetAssessmentDate(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BurnoutAssessmentCreate) SetConfidence(v float64) *BurnoutAssessmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BurnoutAssessmentCreate) SetID(v string) *BurnoutAssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BurnoutAssessmentCreate) SetNillableID(v *string) *BurnoutAssessmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BurnoutAssessmentMutation object of the builder.
func (_c *BurnoutAssessmentCreate) Mutation() *BurnoutAssessmentMutation {
	return _c.mutation
}

// Save creates the BurnoutAssessment in the database.
func (_c *BurnoutAssessmentCreate) Save(ctx context.Context) (*BurnoutAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BurnoutAssessmentCreate) SaveX(ctx context.Context) *BurnoutAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BurnoutAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BurnoutAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BurnoutAssessmentCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := burnoutassessment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BurnoutAssessmentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BurnoutAssessment.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := burnoutassessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "BurnoutAssessment.risk_score"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "BurnoutAssessment.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := burnoutassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Factors(); !ok {
		return &ValidationError{Name: "factors", err: errors.New(`ent: missing required field "BurnoutAssessment.factors"`)}
	}
	if _, ok := _c.mutation.AssessmentDate(); !ok {
		return &ValidationError{Name: "assessment_date", err: errors.New(`ent: missing required field "BurnoutAssessment.assessment_date"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "BurnoutAssessment.confidence"`)}
	}
	return nil
}

func (_c *BurnoutAssessmentCreate) sqlSave(ctx context.Context) (*BurnoutAssessment, error) {
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
			return nil, fmt.Errorf("unexpected BurnoutAssessment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BurnoutAssessmentCreate) createSpec() (*BurnoutAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &BurnoutAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(burnoutassessment.Table, sqlgraph.NewFieldSpec(burnoutassessment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(burnoutassessment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(burnoutassessment.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Factors(); ok {
		_spec.SetField(burnoutassessment.FieldFactors, field.TypeJSON, value)
		_node.Factors = value
	}
	if value, ok := _c.mutation.Signals(); ok {
		_spec.SetField(burnoutassessment.FieldSignals, field.TypeJSON, value)
		_node.Signals = value
	}
	if value, ok := _c.mutation.Intervention(); ok {
		_spec.SetField(burnoutassessment.FieldIntervention, field.TypeJSON, value)
		_node.Intervention = value
	}
	if value, ok := _c.mutation.AssessmentDate(); ok {
		_spec.SetField(burnoutassessment.FieldAssessmentDate, field.TypeTime, value)
		_node.AssessmentDate = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(burnoutassessment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// BurnoutAssessmentCreateBulk is the builder for creating many BurnoutAssessment entities in bulk.
type BurnoutAssessmentCreateBulk struct {
	config
	err      error
	builders []*BurnoutAssessmentCreate
}

// Save creates the BurnoutAssessment entities in the database.
func (_c *BurnoutAssessmentCreateBulk) Save(ctx context.Context) ([]*BurnoutAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BurnoutAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BurnoutAssessmentMutation)
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
func (_c *BurnoutAssessmentCreateBulk) SaveX(ctx context.Context) []*BurnoutAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BurnoutAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BurnoutAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
