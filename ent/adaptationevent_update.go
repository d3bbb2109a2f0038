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
	"github.com/abhisek/cadence/ent/adaptationevent"
	"github.com/abhisek/cadence/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *AdaptationEventUpdate) SetTimestamp(v time.Time) *AdaptationEventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableTimestamp(v *time.Time) *AdaptationEventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetLoad sets the "load" field.
func (_u *AdaptationEventUpdate) SetLoad(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetLoad()
	_u.mutation.SetLoad(v)
	return _u
}

// SetNillableLoad sets the "load" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableLoad(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetLoad(*v)
	}
	return _u
}

// AddLoad adds value to the "load" field.
func (_u *AdaptationEventUpdate) AddLoad(v float64) *AdaptationEventUpdate {
	_u.mutation.AddLoad(v)
	return _u
}

// SetEffectiveLoad sets the "effective_load" field.
func (_u *AdaptationEventUpdate) SetEffectiveLoad(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetEffectiveLoad()
	_u.mutation.SetEffectiveLoad(v)
	return _u
}

// SetNillableEffectiveLoad sets the "effective_load" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableEffectiveLoad(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetEffectiveLoad(*v)
	}
	return _u
}

// AddEffectiveLoad adds value to the "effective_load" field.
func (_u *AdaptationEventUpdate) AddEffectiveLoad(v float64) *AdaptationEventUpdate {
	_u.mutation.AddEffectiveLoad(v)
	return _u
}

// SetZone sets the "zone" field.
func (_u *AdaptationEventUpdate) SetZone(v string) *AdaptationEventUpdate {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableZone(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AdaptationEventUpdate) SetAction(v string) *AdaptationEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableAction(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDifficultyChange sets the "difficulty_change" field.
func (_u *AdaptationEventUpdate) SetDifficultyChange(v int) *AdaptationEventUpdate {
	_u.mutation.ResetDifficultyChange()
	_u.mutation.SetDifficultyChange(v)
	return _u
}

// SetNillableDifficultyChange sets the "difficulty_change" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableDifficultyChange(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetDifficultyChange(*v)
	}
	return _u
}

// AddDifficultyChange adds value to the "difficulty_change" field.
func (_u *AdaptationEventUpdate) AddDifficultyChange(v int) *AdaptationEventUpdate {
	_u.mutation.AddDifficultyChange(v)
	return _u
}

// SetReviewRatio sets the "review_ratio" field.
func (_u *AdaptationEventUpdate) SetReviewRatio(v float64) *AdaptationEventUpdate {
	_u.mutation.ResetReviewRatio()
	_u.mutation.SetReviewRatio(v)
	return _u
}

// SetNillableReviewRatio sets the "review_ratio" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableReviewRatio(v *float64) *AdaptationEventUpdate {
	if v != nil {
		_u.SetReviewRatio(*v)
	}
	return _u
}

// AddReviewRatio adds value to the "review_ratio" field.
func (_u *AdaptationEventUpdate) AddReviewRatio(v float64) *AdaptationEventUpdate {
	_u.mutation.AddReviewRatio(v)
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.Zone(); ok {
		if err := adaptationevent.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.zone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := adaptationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(adaptationevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Load(); ok {
		_spec.SetField(adaptationevent.FieldLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoad(); ok {
		_spec.AddField(adaptationevent.FieldLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EffectiveLoad(); ok {
		_spec.SetField(adaptationevent.FieldEffectiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectiveLoad(); ok {
		_spec.AddField(adaptationevent.FieldEffectiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(adaptationevent.FieldZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(adaptationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyChange(); ok {
		_spec.SetField(adaptationevent.FieldDifficultyChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyChange(); ok {
		_spec.AddField(adaptationevent.FieldDifficultyChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewRatio(); ok {
		_spec.SetField(adaptationevent.FieldReviewRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReviewRatio(); ok {
		_spec.AddField(adaptationevent.FieldReviewRatio, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetTimestamp sets the "timestamp" field.
func (_u *AdaptationEventUpdateOne) SetTimestamp(v time.Time) *AdaptationEventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableTimestamp(v *time.Time) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetLoad sets the "load" field.
func (_u *AdaptationEventUpdateOne) SetLoad(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetLoad()
	_u.mutation.SetLoad(v)
	return _u
}

// SetNillableLoad sets the "load" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableLoad(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetLoad(*v)
	}
	return _u
}

// AddLoad adds value to the "load" field.
func (_u *AdaptationEventUpdateOne) AddLoad(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddLoad(v)
	return _u
}

// SetEffectiveLoad sets the "effective_load" field.
func (_u *AdaptationEventUpdateOne) SetEffectiveLoad(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetEffectiveLoad()
	_u.mutation.SetEffectiveLoad(v)
	return _u
}

// SetNillableEffectiveLoad sets the "effective_load" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableEffectiveLoad(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetEffectiveLoad(*v)
	}
	return _u
}

// AddEffectiveLoad adds value to the "effective_load" field.
func (_u *AdaptationEventUpdateOne) AddEffectiveLoad(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddEffectiveLoad(v)
	return _u
}

// SetZone sets the "zone" field.
func (_u *AdaptationEventUpdateOne) SetZone(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableZone(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AdaptationEventUpdateOne) SetAction(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableAction(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDifficultyChange sets the "difficulty_change" field.
func (_u *AdaptationEventUpdateOne) SetDifficultyChange(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetDifficultyChange()
	_u.mutation.SetDifficultyChange(v)
	return _u
}

// SetNillableDifficultyChange sets the "difficulty_change" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableDifficultyChange(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetDifficultyChange(*v)
	}
	return _u
}

// AddDifficultyChange adds value to the "difficulty_change" field.
func (_u *AdaptationEventUpdateOne) AddDifficultyChange(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddDifficultyChange(v)
	return _u
}

// SetReviewRatio sets the "review_ratio" field.
func (_u *AdaptationEventUpdateOne) SetReviewRatio(v float64) *AdaptationEventUpdateOne {
	_u.mutation.ResetReviewRatio()
	_u.mutation.SetReviewRatio(v)
	return _u
}

// SetNillableReviewRatio sets the "review_ratio" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableReviewRatio(v *float64) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetReviewRatio(*v)
	}
	return _u
}

// AddReviewRatio adds value to the "review_ratio" field.
func (_u *AdaptationEventUpdateOne) AddReviewRatio(v float64) *AdaptationEventUpdateOne {
	_u.mutation.AddReviewRatio(v)
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.Zone(); ok {
		if err := adaptationevent.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.zone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := adaptationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
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
		_spec.SetField(adaptationevent.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Load(); ok {
		_spec.SetField(adaptationevent.FieldLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoad(); ok {
		_spec.AddField(adaptationevent.FieldLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EffectiveLoad(); ok {
		_spec.SetField(adaptationevent.FieldEffectiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectiveLoad(); ok {
		_spec.AddField(adaptationevent.FieldEffectiveLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(adaptationevent.FieldZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(adaptationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyChange(); ok {
		_spec.SetField(adaptationevent.FieldDifficultyChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyChange(); ok {
		_spec.AddField(adaptationevent.FieldDifficultyChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewRatio(); ok {
		_spec.SetField(adaptationevent.FieldReviewRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReviewRatio(); ok {
		_spec.AddField(adaptationevent.FieldReviewRatio, field.TypeFloat64, value)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
