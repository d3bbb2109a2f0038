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
	"github.com/abhisek/cadence/ent/performancemetric"
	"github.com/abhisek/cadence/ent/predicate"
)

// PerformanceMetricUpdate is the builder for updating PerformanceMetric entities.
type PerformanceMetricUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceMetricMutation
}

// Where appends a list predicates to the PerformanceMetricUpdate builder.
func (_u *PerformanceMetricUpdate) Where(ps ...predicate.PerformanceMetric) *PerformanceMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *PerformanceMetricUpdate) SetDate(v time.Time) *PerformanceMetricUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PerformanceMetricUpdate) SetNillableDate(v *time.Time) *PerformanceMetricUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetRetentionScore sets the "retention_score" field.
func (_u *PerformanceMetricUpdate) SetRetentionScore(v float64) *PerformanceMetricUpdate {
	_u.mutation.ResetRetentionScore()
	_u.mutation.SetRetentionScore(v)
	return _u
}

// SetNillableRetentionScore sets the "retention_score" field if the given value is not nil.
func (_u *PerformanceMetricUpdate) SetNillableRetentionScore(v *float64) *PerformanceMetricUpdate {
	if v != nil {
		_u.SetRetentionScore(*v)
	}
	return _u
}

// AddRetentionScore adds value to the "retention_score" field.
func (_u *PerformanceMetricUpdate) AddRetentionScore(v float64) *PerformanceMetricUpdate {
	_u.mutation.AddRetentionScore(v)
	return _u
}

// Mutation returns the PerformanceMetricMutation object of the builder.
func (_u *PerformanceMetricUpdate) Mutation() *PerformanceMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PerformanceMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(performancemetric.Table, performancemetric.Columns, sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(performancemetric.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RetentionScore(); ok {
		_spec.SetField(performancemetric.FieldRetentionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRetentionScore(); ok {
		_spec.AddField(performancemetric.FieldRetentionScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceMetricUpdateOne is the builder for updating a single PerformanceMetric entity.
type PerformanceMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceMetricMutation
}

// SetDate sets the "date" field.
func (_u *PerformanceMetricUpdateOne) SetDate(v time.Time) *PerformanceMetricUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PerformanceMetricUpdateOne) SetNillableDate(v *time.Time) *PerformanceMetricUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetRetentionScore sets the "retention_score" field.
func (_u *PerformanceMetricUpdateOne) SetRetentionScore(v float64) *PerformanceMetricUpdateOne {
	_u.mutation.ResetRetentionScore()
	_u.mutation.SetRetentionScore(v)
	return _u
}

// SetNillableRetentionScore sets the "retention_score" field if the given value is not nil.
func (_u *PerformanceMetricUpdateOne) SetNillableRetentionScore(v *float64) *PerformanceMetricUpdateOne {
	if v != nil {
		_u.SetRetentionScore(*v)
	}
	return _u
}

// AddRetentionScore adds value to the "retention_score" field.
func (_u *PerformanceMetricUpdateOne) AddRetentionScore(v float64) *PerformanceMetricUpdateOne {
	_u.mutation.AddRetentionScore(v)
	return _u
}

// Mutation returns the PerformanceMetricMutation object of the builder.
func (_u *PerformanceMetricUpdateOne) Mutation() *PerformanceMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceMetricUpdate builder.
func (_u *PerformanceMetricUpdateOne) Where(ps ...predicate.PerformanceMetric) *PerformanceMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceMetricUpdateOne) Select(field string, fields ...string) *PerformanceMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceMetric entity.
func (_u *PerformanceMetricUpdateOne) Save(ctx context.Context) (*PerformanceMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceMetricUpdateOne) SaveX(ctx context.Context) *PerformanceMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PerformanceMetricUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceMetric, err error) {
	_spec := sqlgraph.NewUpdateSpec(performancemetric.Table, performancemetric.Columns, sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancemetric.FieldID)
		for _, f := range fields {
			if !performancemetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancemetric.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(performancemetric.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RetentionScore(); ok {
		_spec.SetField(performancemetric.FieldRetentionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRetentionScore(); ok {
		_spec.AddField(performancemetric.FieldRetentionScore, field.TypeFloat64, value)
	}
	_node = &PerformanceMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
