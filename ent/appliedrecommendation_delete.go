// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/appliedrecommendation"
	"github.com/abhisek/cadence/ent/predicate"
)

// AppliedRecommendationDelete is the builder for deleting a AppliedRecommendation entity.
type AppliedRecommendationDelete struct {
	config
	hooks    []Hook
	mutation *AppliedRecommendationMutation
}

// Where appends a list predicates to the AppliedRecommendationDelete builder.
func (_d *AppliedRecommendationDelete) Where(ps ...predicate.AppliedRecommendation) *AppliedRecommendationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AppliedRecommendationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppliedRecommendationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AppliedRecommendationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(appliedrecommendation.Table, sqlgraph.NewFieldSpec(appliedrecommendation.FieldID, field.TypeString))
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

// AppliedRecommendationDeleteOne is the builder for deleting a single AppliedRecommendation entity.
type AppliedRecommendationDeleteOne struct {
	_d *AppliedRecommendationDelete
}

// Where appends a list predicates to the AppliedRecommendationDelete builder.
func (_d *AppliedRecommendationDeleteOne) Where(ps ...predicate.AppliedRecommendation) *AppliedRecommendationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AppliedRecommendationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{appliedrecommendation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppliedRecommendationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
