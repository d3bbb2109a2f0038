// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralpattern"
	"github.com/abhisek/cadence/ent/predicate"
)

// BehavioralPatternDelete is the builder for deleting a BehavioralPattern entity.
type BehavioralPatternDelete struct {
	config
	hooks    []Hook
	mutation *BehavioralPatternMutation
}

// Where appends a list predicates to the BehavioralPatternDelete builder.
func (_d *BehavioralPatternDelete) Where(ps ...predicate.BehavioralPattern) *BehavioralPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BehavioralPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehavioralPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BehavioralPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(behavioralpattern.Table, sqlgraph.NewFieldSpec(behavioralpattern.FieldID, field.TypeString))
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

// BehavioralPatternDeleteOne is the builder for deleting a single BehavioralPattern entity.
type BehavioralPatternDeleteOne struct {
	_d *BehavioralPatternDelete
}

// Where appends a list predicates to the BehavioralPatternDelete builder.
func (_d *BehavioralPatternDeleteOne) Where(ps ...predicate.BehavioralPattern) *BehavioralPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BehavioralPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{behavioralpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehavioralPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
