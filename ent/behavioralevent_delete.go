// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralevent"
	"github.com/abhisek/cadence/ent/predicate"
)

// BehavioralEventDelete is the builder for deleting a BehavioralEvent entity.
type BehavioralEventDelete struct {
	config
	hooks    []Hook
	mutation *BehavioralEventMutation
}

// Where appends a list predicates to the BehavioralEventDelete builder.
func (_d *BehavioralEventDelete) Where(ps ...predicate.BehavioralEvent) *BehavioralEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BehavioralEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehavioralEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BehavioralEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(behavioralevent.Table, sqlgraph.NewFieldSpec(behavioralevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BehavioralEventDeleteOne is the builder for deleting a single BehavioralEvent entity.
type BehavioralEventDeleteOne struct {
	_d *BehavioralEventDelete
}

// Where appends a list predicates to the BehavioralEventDelete builder.
func (_d *BehavioralEventDeleteOne) Where(ps ...predicate.BehavioralEvent) *BehavioralEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BehavioralEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{behavioralevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehavioralEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
