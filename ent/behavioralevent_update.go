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
	"github.com/abhisek/cadence/ent/behavioralevent"
	"github.com/abhisek/cadence/ent/predicate"
)

// BehavioralEventUpdate is the builder for updating BehavioralEvent entities.
type BehavioralEventUpdate struct {
	config
	hooks    []Hook
	mutation *BehavioralEventMutation
}

// Where appends a list predicates to the BehavioralEventUpdate builder.
func (_u *BehavioralEventUpdate) Where(ps ...predicate.BehavioralEvent) *BehavioralEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *BehavioralEventUpdate) SetTimestamp(v time.Time) *BehavioralEventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *BehavioralEventUpdate) SetNillableTimestamp(v *time.Time) *BehavioralEventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *BehavioralEventUpdate) SetEventType(v string) *BehavioralEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *BehavioralEventUpdate) SetNillableEventType(v *string) *BehavioralEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *BehavioralEventUpdate) SetContentType(v string) *BehavioralEventUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *BehavioralEventUpdate) SetNillableContentType(v *string) *BehavioralEventUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *BehavioralEventUpdate) ClearContentType() *BehavioralEventUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetEngagedMs sets the "engaged_ms" field.
func (_u *BehavioralEventUpdate) SetEngagedMs(v int64) *BehavioralEventUpdate {
	_u.mutation.ResetEngagedMs()
	_u.mutation.SetEngagedMs(v)
	return _u
}

// SetNillableEngagedMs sets the "engaged_ms" field if the given value is not nil.
func (_u *BehavioralEventUpdate) SetNillableEngagedMs(v *int64) *BehavioralEventUpdate {
	if v != nil {
		_u.SetEngagedMs(*v)
	}
	return _u
}

// AddEngagedMs adds value to the "engaged_ms" field.
func (_u *BehavioralEventUpdate) AddEngagedMs(v int64) *BehavioralEventUpdate {
	_u.mutation.AddEngagedMs(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *BehavioralEventUpdate) SetScore(v float64) *BehavioralEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *BehavioralEventUpdate) SetNillableScore(v *float64) *BehavioralEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *BehavioralEventUpdate) AddScore(v float64) *BehavioralEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BehavioralEventUpdate) SetCompleted(v bool) *BehavioralEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BehavioralEventUpdate) SetNillableCompleted(v *bool) *BehavioralEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetSessionPerformance sets the "session_performance" field.
func (_u *BehavioralEventUpdate) SetSessionPerformance(v float64) *BehavioralEventUpdate {
	_u.mutation.ResetSessionPerformance()
	_u.mutation.SetSessionPerformance(v)
	return _u
}

// SetNillableSessionPerformance sets the "session_performance" field if the given value is not nil.
func (_u *BehavioralEventUpdate) SetNillableSessionPerformance(v *float64) *BehavioralEventUpdate {
	if v != nil {
		_u.SetSessionPerformance(*v)
	}
	return _u
}

// AddSessionPerformance adds value to the "session_performance" field.
func (_u *BehavioralEventUpdate) AddSessionPerformance(v float64) *BehavioralEventUpdate {
	_u.mutation.AddSessionPerformance(v)
	return _u
}

// Mutation returns the BehavioralEventMutation object of the builder.
func (_u *BehavioralEventUpdate) Mutation() *BehavioralEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BehavioralEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehavioralEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BehavioralEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehavioralEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehavioralEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := behavioralevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BehavioralEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behavioralevent.Table, behavioralevent.Columns, sqlgraph.NewFieldSpec(behavioralevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(behavioralevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(behavioralevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(behavioralevent.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(behavioralevent.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.EngagedMs(); ok {
		_spec.SetField(behavioralevent.FieldEngagedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEngagedMs(); ok {
		_spec.AddField(behavioralevent.FieldEngagedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(behavioralevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(behavioralevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(behavioralevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionPerformance(); ok {
		_spec.SetField(behavioralevent.FieldSessionPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSessionPerformance(); ok {
		_spec.AddField(behavioralevent.FieldSessionPerformance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behavioralevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BehavioralEventUpdateOne is the builder for updating a single BehavioralEvent entity.
type BehavioralEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BehavioralEventMutation
}

// SetTimestamp sets the "timestamp" field.
func (_u *BehavioralEventUpdateOne) SetTimestamp(v time.Time) *BehavioralEventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *BehavioralEventUpdateOne) SetNillableTimestamp(v *time.Time) *BehavioralEventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *BehavioralEventUpdateOne) SetEventType(v string) *BehavioralEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *BehavioralEventUpdateOne) SetNillableEventType(v *string) *BehavioralEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *BehavioralEventUpdateOne) SetContentType(v string) *BehavioralEventUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *BehavioralEventUpdateOne) SetNillableContentType(v *string) *BehavioralEventUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *BehavioralEventUpdateOne) ClearContentType() *BehavioralEventUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetEngagedMs sets the "engaged_ms" field.
func (_u *BehavioralEventUpdateOne) SetEngagedMs(v int64) *BehavioralEventUpdateOne {
	_u.mutation.ResetEngagedMs()
	_u.mutation.SetEngagedMs(v)
	return _u
}

// SetNillableEngagedMs sets the "engaged_ms" field if the given value is not nil.
func (_u *BehavioralEventUpdateOne) SetNillableEngagedMs(v *int64) *BehavioralEventUpdateOne {
	if v != nil {
		_u.SetEngagedMs(*v)
	}
	return _u
}

// AddEngagedMs adds value to the "engaged_ms" field.
func (_u *BehavioralEventUpdateOne) AddEngagedMs(v int64) *BehavioralEventUpdateOne {
	_u.mutation.AddEngagedMs(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *BehavioralEventUpdateOne) SetScore(v float64) *BehavioralEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *BehavioralEventUpdateOne) SetNillableScore(v *float64) *BehavioralEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *BehavioralEventUpdateOne) AddScore(v float64) *BehavioralEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *BehavioralEventUpdateOne) SetCompleted(v bool) *BehavioralEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *BehavioralEventUpdateOne) SetNillableCompleted(v *bool) *BehavioralEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetSessionPerformance sets the "session_performance" field.
func (_u *BehavioralEventUpdateOne) SetSessionPerformance(v float64) *BehavioralEventUpdateOne {
	_u.mutation.ResetSessionPerformance()
	_u.mutation.SetSessionPerformance(v)
	return _u
}

// SetNillableSessionPerformance sets the "session_performance" field if the given value is not nil.
func (_u *BehavioralEventUpdateOne) SetNillableSessionPerformance(v *float64) *BehavioralEventUpdateOne {
	if v != nil {
		_u.SetSessionPerformance(*v)
	}
	return _u
}

// AddSessionPerformance adds value to the "session_performance" field.
func (_u *BehavioralEventUpdateOne) AddSessionPerformance(v float64) *BehavioralEventUpdateOne {
	_u.mutation.AddSessionPerformance(v)
	return _u
}

// Mutation returns the BehavioralEventMutation object of the builder.
func (_u *BehavioralEventUpdateOne) Mutation() *BehavioralEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BehavioralEventUpdate builder.
func (_u *BehavioralEventUpdateOne) Where(ps ...predicate.BehavioralEvent) *BehavioralEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BehavioralEventUpdateOne) Select(field string, fields ...string) *BehavioralEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BehavioralEvent entity.
func (_u *BehavioralEventUpdateOne) Save(ctx context.Context) (*BehavioralEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehavioralEventUpdateOne) SaveX(ctx context.Context) *BehavioralEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BehavioralEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehavioralEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehavioralEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := behavioralevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BehavioralEventUpdateOne) sqlSave(ctx context.Context) (_node *BehavioralEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behavioralevent.Table, behavioralevent.Columns, sqlgraph.NewFieldSpec(behavioralevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BehavioralEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, behavioralevent.FieldID)
		for _, f := range fields {
			if !behavioralevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != behavioralevent.FieldID {
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
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(behavioralevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(behavioralevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(behavioralevent.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(behavioralevent.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.EngagedMs(); ok {
		_spec.SetField(behavioralevent.FieldEngagedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEngagedMs(); ok {
		_spec.AddField(behavioralevent.FieldEngagedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(behavioralevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(behavioralevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(behavioralevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionPerformance(); ok {
		_spec.SetField(behavioralevent.FieldSessionPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSessionPerformance(); ok {
		_spec.AddField(behavioralevent.FieldSessionPerformance, field.TypeFloat64, value)
	}
	_node = &BehavioralEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behavioralevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
