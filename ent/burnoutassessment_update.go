// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/burnoutassessment"
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/schema"
)

// BurnoutAssessmentUpdate is the builder for updating BurnoutAssessment entities.
type BurnoutAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *BurnoutAssessmentMutation
}

// Where appends a list predicates to the BurnoutAssessmentUpdate builder.
func (_u *BurnoutAssessmentUpdate) Where(ps ...predicate.BurnoutAssessment) *BurnoutAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *BurnoutAssessmentUpdate) SetRiskScore(v float64) *BurnoutAssessmentUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableRiskScore(v *float64) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *BurnoutAssessmentUpdate) AddRiskScore(v float64) *BurnoutAssessmentUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *BurnoutAssessmentUpdate) SetRiskLevel(v string) *BurnoutAssessmentUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableRiskLevel(v *string) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *BurnoutAssessmentUpdate) SetFactors(v []schema.FactorSample) *BurnoutAssessmentUpdate {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *BurnoutAssessmentUpdate) AppendFactors(v []schema.FactorSample) *BurnoutAssessmentUpdate {
	_u.mutation.AppendFactors(v)
	return _u
}

// SetSignals sets the "signals" field.
func (_u *BurnoutAssessmentUpdate) SetSignals(v []schema.SignalSample) *BurnoutAssessmentUpdate {
	_u.mutation.SetSignals(v)
	return _u
}

// AppendSignals appends value to the "signals" field.
func (_u *BurnoutAssessmentUpdate) AppendSignals(v []schema.SignalSample) *BurnoutAssessmentUpdate {
	_u.mutation.AppendSignals(v)
	return _u
}

// ClearSignals clears the value of the "signals" field.
func (_u *BurnoutAssessmentUpdate) ClearSignals() *BurnoutAssessmentUpdate {
	_u.mutation.ClearSignals()
	return _u
}

// SetIntervention sets the "intervention" field.
func (_u *BurnoutAssessmentUpdate) SetIntervention(v *schema.InterventionSample) *BurnoutAssessmentUpdate {
	_u.mutation.SetIntervention(v)
	return _u
}

// ClearIntervention clears the value of the "intervention" field.
func (_u *BurnoutAssessmentUpdate) ClearIntervention() *BurnoutAssessmentUpdate {
	_u.mutation.ClearIntervention()
	return _u
}

// SetAssessmentDate sets the "assessment_date" field.
func (_u *BurnoutAssessmentUpdate) SetAssessmentDate(v time.Time) *BurnoutAssessmentUpdate {
	_u.mutation.SetAssessmentDate(v)
	return _u
}

// SetNillableAssessmentDate sets the "assessment_date" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableAssessmentDate(v *time.Time) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetAssessmentDate(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BurnoutAssessmentUpdate) SetConfidence(v float64) *BurnoutAssessmentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableConfidence(v *float64) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BurnoutAssessmentUpdate) AddConfidence(v float64) *BurnoutAssessmentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the BurnoutAssessmentMutation object of the builder.
func (_u *BurnoutAssessmentUpdate) Mutation() *BurnoutAssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BurnoutAssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BurnoutAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BurnoutAssessmentUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := burnoutassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *BurnoutAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(burnoutassessment.Table, burnoutassessment.Columns, sqlgraph.NewFieldSpec(burnoutassessment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(burnoutassessment.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(burnoutassessment.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldFactors, value)
		})
	}
	if value, ok := _u.mutation.Signals(); ok {
		_spec.SetField(burnoutassessment.FieldSignals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldSignals, value)
		})
	}
	if _u.mutation.SignalsCleared() {
		_spec.ClearField(burnoutassessment.FieldSignals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Intervention(); ok {
		_spec.SetField(burnoutassessment.FieldIntervention, field.TypeJSON, value)
	}
	if _u.mutation.InterventionCleared() {
		_spec.ClearField(burnoutassessment.FieldIntervention, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentDate(); ok {
		_spec.SetField(burnoutassessment.FieldAssessmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(burnoutassessment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(burnoutassessment.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{burnoutassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BurnoutAssessmentUpdateOne is the builder for updating a single BurnoutAssessment entity.
type BurnoutAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BurnoutAssessmentMutation
}

// SetRiskScore sets the "risk_score" field.
func (_u *BurnoutAssessmentUpdateOne) SetRiskScore(v float64) *BurnoutAssessmentUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableRiskScore(v *float64) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *BurnoutAssessmentUpdateOne) AddRiskScore(v float64) *BurnoutAssessmentUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *BurnoutAssessmentUpdateOne) SetRiskLevel(v string) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableRiskLevel(v *string) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *BurnoutAssessmentUpdateOne) SetFactors(v []schema.FactorSample) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *BurnoutAssessmentUpdateOne) AppendFactors(v []schema.FactorSample) *BurnoutAssessmentUpdateOne {
	_u.mutation.AppendFactors(v)
	return _u
}

// SetSignals sets the "signals" field.
func (_u *BurnoutAssessmentUpdateOne) SetSignals(v []schema.SignalSample) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetSignals(v)
	return _u
}

// AppendSignals appends value to the "signals" field.
func (_u *BurnoutAssessmentUpdateOne) AppendSignals(v []schema.SignalSample) *BurnoutAssessmentUpdateOne {
	_u.mutation.AppendSignals(v)
	return _u
}

// ClearSignals clears the value of the "signals" field.
func (_u *BurnoutAssessmentUpdateOne) ClearSignals() *BurnoutAssessmentUpdateOne {
	_u.mutation.ClearSignals()
	return _u
}

// SetIntervention sets the "intervention" field.
func (_u *BurnoutAssessmentUpdateOne) SetIntervention(v *schema.InterventionSample) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetIntervention(v)
	return _u
}

// ClearIntervention clears the value of the "intervention" field.
func (_u *BurnoutAssessmentUpdateOne) ClearIntervention() *BurnoutAssessmentUpdateOne {
	_u.mutation.ClearIntervention()
	return _u
}

// SetAssessmentDate sets the "assessment_date" field.
func (_u *BurnoutAssessmentUpdateOne) SetAssessmentDate(v time.Time) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetAssessmentDate(v)
	return _u
}

// SetNillableAssessmentDate sets the "assessment_date" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableAssessmentDate(v *time.Time) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetAssessmentDate(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BurnoutAssessmentUpdateOne) SetConfidence(v float64) *BurnoutAssessmentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableConfidence(v *float64) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BurnoutAssessmentUpdateOne) AddConfidence(v float64) *BurnoutAssessmentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the BurnoutAssessmentMutation object of the builder.
func (_u *BurnoutAssessmentUpdateOne) Mutation() *BurnoutAssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the BurnoutAssessmentUpdate builder.
func (_u *BurnoutAssessmentUpdateOne) Where(ps ...predicate.BurnoutAssessment) *BurnoutAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BurnoutAssessmentUpdateOne) Select(field string, fields ...string) *BurnoutAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BurnoutAssessment entity.
func (_u *BurnoutAssessmentUpdateOne) Save(ctx context.Context) (*BurnoutAssessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdateOne) SaveX(ctx context.Context) *BurnoutAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BurnoutAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BurnoutAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := burnoutassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *BurnoutAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *BurnoutAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(burnoutassessment.Table, burnoutassessment.Columns, sqlgraph.NewFieldSpec(burnoutassessment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BurnoutAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, burnoutassessment.FieldID)
		for _, f := range fields {
			if !burnoutassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != burnoutassessment.FieldID {
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
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(burnoutassessment.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(burnoutassessment.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldFactors, value)
		})
	}
	if value, ok := _u.mutation.Signals(); ok {
		_spec.SetField(burnoutassessment.FieldSignals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldSignals, value)
		})
	}
	if _u.mutation.SignalsCleared() {
		_spec.ClearField(burnoutassessment.FieldSignals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Intervention(); ok {
		_spec.SetField(burnoutassessment.FieldIntervention, field.TypeJSON, value)
	}
	if _u.mutation.InterventionCleared() {
		_spec.ClearField(burnoutassessment.FieldIntervention, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentDate(); ok {
		_spec.SetField(burnoutassessment.FieldAssessmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(burnoutassessment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(burnoutassessment.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &BurnoutAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{burnoutassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
