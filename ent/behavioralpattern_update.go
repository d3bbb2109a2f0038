// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralpattern"
	"github.com/abhisek/cadence/ent/predicate"
)

// BehavioralPatternUpdate is the builder for updating BehavioralPattern entities.
type BehavioralPatternUpdate struct {
	config
	hooks    []Hook
	mutation *BehavioralPatternMutation
}

// Where appends a list predicates to the BehavioralPatternUpdate builder.
func (_u *BehavioralPatternUpdate) Where(ps ...predicate.BehavioralPattern) *BehavioralPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *BehavioralPatternUpdate) SetPatternType(v string) *BehavioralPatternUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *BehavioralPatternUpdate) SetNillablePatternType(v *string) *BehavioralPatternUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *BehavioralPatternUpdate) SetPatternName(v string) *BehavioralPatternUpdate {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *BehavioralPatternUpdate) SetNillablePatternName(v *string) *BehavioralPatternUpdate {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BehavioralPatternUpdate) SetConfidence(v float64) *BehavioralPatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BehavioralPatternUpdate) SetNillableConfidence(v *float64) *BehavioralPatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BehavioralPatternUpdate) AddConfidence(v float64) *BehavioralPatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetData sets the "data" field.
func (_u *BehavioralPatternUpdate) SetData(v json.RawMessage) *BehavioralPatternUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *BehavioralPatternUpdate) AppendData(v json.RawMessage) *BehavioralPatternUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *BehavioralPatternUpdate) SetEvidence(v []string) *BehavioralPatternUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *BehavioralPatternUpdate) AppendEvidence(v []string) *BehavioralPatternUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *BehavioralPatternUpdate) ClearEvidence() *BehavioralPatternUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *BehavioralPatternUpdate) SetOccurrenceCount(v int) *BehavioralPatternUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *BehavioralPatternUpdate) SetNillableOccurrenceCount(v *int) *BehavioralPatternUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *BehavioralPatternUpdate) AddOccurrenceCount(v int) *BehavioralPatternUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (_u *BehavioralPatternUpdate) SetFirstDetectedAt(v time.Time) *BehavioralPatternUpdate {
	_u.mutation.SetFirstDetectedAt(v)
	return _u
}

// SetNillableFirstDetectedAt sets the "first_detected_at" field if the given value is not nil.
func (_u *BehavioralPatternUpdate) SetNillableFirstDetectedAt(v *time.Time) *BehavioralPatternUpdate {
	if v != nil {
		_u.SetFirstDetectedAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *BehavioralPatternUpdate) SetLastSeenAt(v time.Time) *BehavioralPatternUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *BehavioralPatternUpdate) SetNillableLastSeenAt(v *time.Time) *BehavioralPatternUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetConsecutiveNonOccurrences sets the "consecutive_non_occurrences" field.
func (_u *BehavioralPatternUpdate) SetConsecutiveNonOccurrences(v int) *BehavioralPatternUpdate {
	_u.mutation.ResetConsecutiveNonOccurrences()
	_u.mutation.SetConsecutiveNonOccurrences(v)
	return _u
}

// SetNillableConsecutiveNonOccurrences sets the "consecutive_non_occurrences" field if the given value is not nil.
func (_u *BehavioralPatternUpdate) SetNillableConsecutiveNonOccurrences(v *int) *BehavioralPatternUpdate {
	if v != nil {
		_u.SetConsecutiveNonOccurrences(*v)
	}
	return _u
}

// AddConsecutiveNonOccurrences adds value to the "consecutive_non_occurrences" field.
func (_u *BehavioralPatternUpdate) AddConsecutiveNonOccurrences(v int) *BehavioralPatternUpdate {
	_u.mutation.AddConsecutiveNonOccurrences(v)
	return _u
}

// Mutation returns the BehavioralPatternMutation object of the builder.
func (_u *BehavioralPatternUpdate) Mutation() *BehavioralPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BehavioralPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehavioralPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BehavioralPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehavioralPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehavioralPatternUpdate) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := behavioralpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralPattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := behavioralpattern.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "BehavioralPattern.pattern_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BehavioralPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behavioralpattern.Table, behavioralpattern.Columns, sqlgraph.NewFieldSpec(behavioralpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(behavioralpattern.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(behavioralpattern.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(behavioralpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(behavioralpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(behavioralpattern.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, behavioralpattern.FieldData, value)
		})
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(behavioralpattern.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, behavioralpattern.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(behavioralpattern.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(behavioralpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(behavioralpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstDetectedAt(); ok {
		_spec.SetField(behavioralpattern.FieldFirstDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(behavioralpattern.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConsecutiveNonOccurrences(); ok {
		_spec.SetField(behavioralpattern.FieldConsecutiveNonOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveNonOccurrences(); ok {
		_spec.AddField(behavioralpattern.FieldConsecutiveNonOccurrences, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behavioralpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BehavioralPatternUpdateOne is the builder for updating a single BehavioralPattern entity.
type BehavioralPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BehavioralPatternMutation
}

// SetPatternType sets the "pattern_type" field.
func (_u *BehavioralPatternUpdateOne) SetPatternType(v string) *BehavioralPatternUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *BehavioralPatternUpdateOne) SetNillablePatternType(v *string) *BehavioralPatternUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *BehavioralPatternUpdateOne) SetPatternName(v string) *BehavioralPatternUpdateOne {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *BehavioralPatternUpdateOne) SetNillablePatternName(v *string) *BehavioralPatternUpdateOne {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BehavioralPatternUpdateOne) SetConfidence(v float64) *BehavioralPatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BehavioralPatternUpdateOne) SetNillableConfidence(v *float64) *BehavioralPatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BehavioralPatternUpdateOne) AddConfidence(v float64) *BehavioralPatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetData sets the "data" field.
func (_u *BehavioralPatternUpdateOne) SetData(v json.RawMessage) *BehavioralPatternUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *BehavioralPatternUpdateOne) AppendData(v json.RawMessage) *BehavioralPatternUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *BehavioralPatternUpdateOne) SetEvidence(v []string) *BehavioralPatternUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *BehavioralPatternUpdateOne) AppendEvidence(v []string) *BehavioralPatternUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *BehavioralPatternUpdateOne) ClearEvidence() *BehavioralPatternUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *BehavioralPatternUpdateOne) SetOccurrenceCount(v int) *BehavioralPatternUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *BehavioralPatternUpdateOne) SetNillableOccurrenceCount(v *int) *BehavioralPatternUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *BehavioralPatternUpdateOne) AddOccurrenceCount(v int) *BehavioralPatternUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (_u *BehavioralPatternUpdateOne) SetFirstDetectedAt(v time.Time) *BehavioralPatternUpdateOne {
	_u.mutation.SetFirstDetectedAt(v)
	return _u
}

// SetNillableFirstDetectedAt sets the "first_detected_at" field if the given value is not nil.
func (_u *BehavioralPatternUpdateOne) SetNillableFirstDetectedAt(v *time.Time) *BehavioralPatternUpdateOne {
	if v != nil {
		_u.SetFirstDetectedAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *BehavioralPatternUpdateOne) SetLastSeenAt(v time.Time) *BehavioralPatternUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *BehavioralPatternUpdateOne) SetNillableLastSeenAt(v *time.Time) *BehavioralPatternUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetConsecutiveNonOccurrences sets the "consecutive_non_occurrences" field.
func (_u *BehavioralPatternUpdateOne) SetConsecutiveNonOccurrences(v int) *BehavioralPatternUpdateOne {
	_u.mutation.ResetConsecutiveNonOccurrences()
	_u.mutation.SetConsecutiveNonOccurrences(v)
	return _u
}

// SetNillableConsecutiveNonOccurrences sets the "consecutive_non_occurrences" field if the given value is not nil.
func (_u *BehavioralPatternUpdateOne) SetNillableConsecutiveNonOccurrences(v *int) *BehavioralPatternUpdateOne {
	if v != nil {
		_u.SetConsecutiveNonOccurrences(*v)
	}
	return _u
}

// AddConsecutiveNonOccurrences adds value to the "consecutive_non_occurrences" field.
func (_u *BehavioralPatternUpdateOne) AddConsecutiveNonOccurrences(v int) *BehavioralPatternUpdateOne {
	_u.mutation.AddConsecutiveNonOccurrences(v)
	return _u
}

// Mutation returns the BehavioralPatternMutation object of the builder.
func (_u *BehavioralPatternUpdateOne) Mutation() *BehavioralPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the BehavioralPatternUpdate builder.
func (_u *BehavioralPatternUpdateOne) Where(ps ...predicate.BehavioralPattern) *BehavioralPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BehavioralPatternUpdateOne) Select(field string, fields ...string) *BehavioralPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BehavioralPattern entity.
func (_u *BehavioralPatternUpdateOne) Save(ctx context.Context) (*BehavioralPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehavioralPatternUpdateOne) SaveX(ctx context.Context) *BehavioralPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BehavioralPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehavioralPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehavioralPatternUpdateOne) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := behavioralpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralPattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := behavioralpattern.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "BehavioralPattern.pattern_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BehavioralPatternUpdateOne) sqlSave(ctx context.Context) (_node *BehavioralPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behavioralpattern.Table, behavioralpattern.Columns, sqlgraph.NewFieldSpec(behavioralpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BehavioralPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, behavioralpattern.FieldID)
		for _, f := range fields {
			if !behavioralpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != behavioralpattern.FieldID {
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
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(behavioralpattern.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(behavioralpattern.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(behavioralpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(behavioralpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(behavioralpattern.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, behavioralpattern.FieldData, value)
		})
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(behavioralpattern.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, behavioralpattern.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(behavioralpattern.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(behavioralpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(behavioralpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstDetectedAt(); ok {
		_spec.SetField(behavioralpattern.FieldFirstDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(behavioralpattern.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConsecutiveNonOccurrences(); ok {
		_spec.SetField(behavioralpattern.FieldConsecutiveNonOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveNonOccurrences(); ok {
		_spec.AddField(behavioralpattern.FieldConsecutiveNonOccurrences, field.TypeInt, value)
	}
	_node = &BehavioralPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behavioralpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
