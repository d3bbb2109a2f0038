// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/appliedrecommendation"
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/schema"
)

// AppliedRecommendationUpdate is the builder for updating AppliedRecommendation entities.
type AppliedRecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *AppliedRecommendationMutation
}

// Where appends a list predicates to the AppliedRecommendationUpdate builder.
func (_u *AppliedRecommendationUpdate) Where(ps ...predicate.AppliedRecommendation) *AppliedRecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecommendationID sets the "recommendation_id" field.
func (_u *AppliedRecommendationUpdate) SetRecommendationID(v string) *AppliedRecommendationUpdate {
	_u.mutation.SetRecommendationID(v)
	return _u
}

// SetNillableRecommendationID sets the "recommendation_id" field if the given value is not nil.
func (_u *AppliedRecommendationUpdate) SetNillableRecommendationID(v *string) *AppliedRecommendationUpdate {
	if v != nil {
		_u.SetRecommendationID(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *AppliedRecommendationUpdate) SetAppliedAt(v time.Time) *AppliedRecommendationUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *AppliedRecommendationUpdate) SetNillableAppliedAt(v *time.Time) *AppliedRecommendationUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// SetBaseline sets the "baseline" field.
func (_u *AppliedRecommendationUpdate) SetBaseline(v schema.MetricsSample) *AppliedRecommendationUpdate {
	_u.mutation.SetBaseline(v)
	return _u
}

// SetNillableBaseline sets the "baseline" field if the given value is not nil.
func (_u *AppliedRecommendationUpdate) SetNillableBaseline(v *schema.MetricsSample) *AppliedRecommendationUpdate {
	if v != nil {
		_u.SetBaseline(*v)
	}
	return _u
}

// SetCurrent sets the "current" field.
func (_u *AppliedRecommendationUpdate) SetCurrent(v *schema.MetricsSample) *AppliedRecommendationUpdate {
	_u.mutation.SetCurrent(v)
	return _u
}

// ClearCurrent clears the value of the "current" field.
func (_u *AppliedRecommendationUpdate) ClearCurrent() *AppliedRecommendationUpdate {
	_u.mutation.ClearCurrent()
	return _u
}

// SetEffectiveness sets the "effectiveness" field.
func (_u *AppliedRecommendationUpdate) SetEffectiveness(v float64) *AppliedRecommendationUpdate {
	_u.mutation.ResetEffectiveness()
	_u.mutation.SetEffectiveness(v)
	return _u
}

// SetNillableEffectiveness sets the "effectiveness" field if the given value is not nil.
func (_u *AppliedRecommendationUpdate) SetNillableEffectiveness(v *float64) *AppliedRecommendationUpdate {
	if v != nil {
		_u.SetEffectiveness(*v)
	}
	return _u
}

// AddEffectiveness adds value to the "effectiveness" field.
func (_u *AppliedRecommendationUpdate) AddEffectiveness(v float64) *AppliedRecommendationUpdate {
	_u.mutation.AddEffectiveness(v)
	return _u
}

// ClearEffectiveness clears the value of the "effectiveness" field.
func (_u *AppliedRecommendationUpdate) ClearEffectiveness() *AppliedRecommendationUpdate {
	_u.mutation.ClearEffectiveness()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *AppliedRecommendationUpdate) SetEvaluatedAt(v time.Time) *AppliedRecommendationUpdate {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *AppliedRecommendationUpdate) SetNillableEvaluatedAt(v *time.Time) *AppliedRecommendationUpdate {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (_u *AppliedRecommendationUpdate) ClearEvaluatedAt() *AppliedRecommendationUpdate {
	_u.mutation.ClearEvaluatedAt()
	return _u
}

// Mutation returns the AppliedRecommendationMutation object of the builder.
func (_u *AppliedRecommendationUpdate) Mutation() *AppliedRecommendationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppliedRecommendationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppliedRecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppliedRecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppliedRecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppliedRecommendationUpdate) check() error {
	if v, ok := _u.mutation.RecommendationID(); ok {
		if err := appliedrecommendation.RecommendationIDValidator(v); err != nil {
			return &ValidationError{Name: "recommendation_id", err: fmt.Errorf(`ent: validator failed for field "AppliedRecommendation.recommendation_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AppliedRecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appliedrecommendation.Table, appliedrecommendation.Columns, sqlgraph.NewFieldSpec(appliedrecommendation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecommendationID(); ok {
		_spec.SetField(appliedrecommendation.FieldRecommendationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(appliedrecommendation.FieldAppliedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Baseline(); ok {
		_spec.SetField(appliedrecommendation.FieldBaseline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(appliedrecommendation.FieldCurrent, field.TypeJSON, value)
	}
	if _u.mutation.CurrentCleared() {
		_spec.ClearField(appliedrecommendation.FieldCurrent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Effectiveness(); ok {
		_spec.SetField(appliedrecommendation.FieldEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectiveness(); ok {
		_spec.AddField(appliedrecommendation.FieldEffectiveness, field.TypeFloat64, value)
	}
	if _u.mutation.EffectivenessCleared() {
		_spec.ClearField(appliedrecommendation.FieldEffectiveness, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(appliedrecommendation.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedAtCleared() {
		_spec.ClearField(appliedrecommendation.FieldEvaluatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appliedrecommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppliedRecommendationUpdateOne is the builder for updating a single AppliedRecommendation entity.
type AppliedRecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppliedRecommendationMutation
}

// SetRecommendationID sets the "recommendation_id" field.
func (_u *AppliedRecommendationUpdateOne) SetRecommendationID(v string) *AppliedRecommendationUpdateOne {
	_u.mutation.SetRecommendationID(v)
	return _u
}

// SetNillableRecommendationID sets the "recommendation_id" field if the given value is not nil.
func (_u *AppliedRecommendationUpdateOne) SetNillableRecommendationID(v *string) *AppliedRecommendationUpdateOne {
	if v != nil {
		_u.SetRecommendationID(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *AppliedRecommendationUpdateOne) SetAppliedAt(v time.Time) *AppliedRecommendationUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *AppliedRecommendationUpdateOne) SetNillableAppliedAt(v *time.Time) *AppliedRecommendationUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// SetBaseline sets the "baseline" field.
func (_u *AppliedRecommendationUpdateOne) SetBaseline(v schema.MetricsSample) *AppliedRecommendationUpdateOne {
	_u.mutation.SetBaseline(v)
	return _u
}

// SetNillableBaseline sets the "baseline" field if the given value is not nil.
func (_u *AppliedRecommendationUpdateOne) SetNillableBaseline(v *schema.MetricsSample) *AppliedRecommendationUpdateOne {
	if v != nil {
		_u.SetBaseline(*v)
	}
	return _u
}

// SetCurrent sets the "current" field.
func (_u *AppliedRecommendationUpdateOne) SetCurrent(v *schema.MetricsSample) *AppliedRecommendationUpdateOne {
	_u.mutation.SetCurrent(v)
	return _u
}

// ClearCurrent clears the value of the "current" field.
func (_u *AppliedRecommendationUpdateOne) ClearCurrent() *AppliedRecommendationUpdateOne {
	_u.mutation.ClearCurrent()
	return _u
}

// SetEffectiveness sets the "effectiveness" field.
func (_u *AppliedRecommendationUpdateOne) SetEffectiveness(v float64) *AppliedRecommendationUpdateOne {
	_u.mutation.ResetEffectiveness()
	_u.mutation.SetEffectiveness(v)
	return _u
}

// SetNillableEffectiveness sets the "effectiveness" field if the given value is not nil.
func (_u *AppliedRecommendationUpdateOne) SetNillableEffectiveness(v *float64) *AppliedRecommendationUpdateOne {
	if v != nil {
		_u.SetEffectiveness(*v)
	}
	return _u
}

// AddEffectiveness adds value to the "effectiveness" field.
func (_u *AppliedRecommendationUpdateOne) AddEffectiveness(v float64) *AppliedRecommendationUpdateOne {
	_u.mutation.AddEffectiveness(v)
	return _u
}

// ClearEffectiveness clears the value of the "effectiveness" field.
func (_u *AppliedRecommendationUpdateOne) ClearEffectiveness() *AppliedRecommendationUpdateOne {
	_u.mutation.ClearEffectiveness()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *AppliedRecommendationUpdateOne) SetEvaluatedAt(v time.Time) *AppliedRecommendationUpdateOne {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *AppliedRecommendationUpdateOne) SetNillableEvaluatedAt(v *time.Time) *AppliedRecommendationUpdateOne {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (_u *AppliedRecommendationUpdateOne) ClearEvaluatedAt() *AppliedRecommendationUpdateOne {
	_u.mutation.ClearEvaluatedAt()
	return _u
}

// Mutation returns the AppliedRecommendationMutation object of the builder.
func (_u *AppliedRecommendationUpdateOne) Mutation() *AppliedRecommendationMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppliedRecommendationUpdate builder.
func (_u *AppliedRecommendationUpdateOne) Where(ps ...predicate.AppliedRecommendation) *AppliedRecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppliedRecommendationUpdateOne) Select(field string, fields ...string) *AppliedRecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppliedRecommendation entity.
func (_u *AppliedRecommendationUpdateOne) Save(ctx context.Context) (*AppliedRecommendation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppliedRecommendationUpdateOne) SaveX(ctx context.Context) *AppliedRecommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppliedRecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppliedRecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppliedRecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.RecommendationID(); ok {
		if err := appliedrecommendation.RecommendationIDValidator(v); err != nil {
			return &ValidationError{Name: "recommendation_id", err: fmt.Errorf(`ent: validator failed for field "AppliedRecommendation.recommendation_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AppliedRecommendationUpdateOne) sqlSave(ctx context.Context) (_node *AppliedRecommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appliedrecommendation.Table, appliedrecommendation.Columns, sqlgraph.NewFieldSpec(appliedrecommendation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AppliedRecommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appliedrecommendation.FieldID)
		for _, f := range fields {
			if !appliedrecommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appliedrecommendation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecommendationID(); ok {
		_spec.SetField(appliedrecommendation.FieldRecommendationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(appliedrecommendation.FieldAppliedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Baseline(); ok {
		_spec.SetField(appliedrecommendation.FieldBaseline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(appliedrecommendation.FieldCurrent, field.TypeJSON, value)
	}
	if _u.mutation.CurrentCleared() {
		_spec.ClearField(appliedrecommendation.FieldCurrent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Effectiveness(); ok {
		_spec.SetField(appliedrecommendation.FieldEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectiveness(); ok {
		_spec.AddField(appliedrecommendation.FieldEffectiveness, field.TypeFloat64, value)
	}
	if _u.mutation.EffectivenessCleared() {
		_spec.ClearField(appliedrecommendation.FieldEffectiveness, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(appliedrecommendation.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedAtCleared() {
		_spec.ClearField(appliedrecommendation.FieldEvaluatedAt, field.TypeTime)
	}
	_node = &AppliedRecommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appliedrecommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
