// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/behavioralinsight"
	"github.com/abhisek/cadence/ent/predicate"
)

// BehavioralInsightDelete is the builder for deleting a BehavioralInsight entity.
type BehavioralInsightDelete struct {
	config
	hooks    []Hook
	mutation *BehavioralInsightMutation
}

// Where appends a list predicates to the BehavioralInsightDelete builder.
func (_d *BehavioralInsightDelete) Where(ps ...predicate.BehavioralInsight) *BehavioralInsightDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BehavioralInsightDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehavioralInsightDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BehavioralInsightDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(behavioralinsight.Table, sqlgraph.NewFieldSpec(behavioralinsight.FieldID, field.TypeString))
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

// BehavioralInsightDeleteOne is the builder for deleting a single BehavioralInsight entity.
type BehavioralInsightDeleteOne struct {
	_d *BehavioralInsightDelete
}

// Where appends a list predicates to the BehavioralInsightDelete builder.
func (_d *BehavioralInsightDeleteOne) Where(ps ...predicate.BehavioralInsight) *BehavioralInsightDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BehavioralInsightDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{behavioralinsight.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BehavioralInsightDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
