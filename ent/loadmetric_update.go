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
	"github.com/abhisek/cadence/ent/loadmetric"
	"github.com/abhisek/cadence/ent/predicate"
)

// LoadMetricUpdate is the builder for updating LoadMetric entities.
type LoadMetricUpdate struct {
	config
	hooks    []Hook
	mutation *LoadMetricMutation
}

// Where appends a list predicates to the LoadMetricUpdate builder.
func (_u *LoadMetricUpdate) Where(ps ...predicate.LoadMetric) *LoadMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *LoadMetricUpdate) SetTimestamp(v time.Time) *LoadMetricUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *LoadMetricUpdate) SetNillableTimestamp(v *time.Time) *LoadMetricUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetLoadScore sets the "load_score" field.
func (_u *LoadMetricUpdate) SetLoadScore(v float64) *LoadMetricUpdate {
	_u.mutation.ResetLoadScore()
	_u.mutation.SetLoadScore(v)
	return _u
}

// SetNillableLoadScore sets the "load_score" field if the given value is not nil.
func (_u *LoadMetricUpdate) SetNillableLoadScore(v *float64) *LoadMetricUpdate {
	if v != nil {
		_u.SetLoadScore(*v)
	}
	return _u
}

// AddLoadScore adds value to the "load_score" field.
func (_u *LoadMetricUpdate) AddLoadScore(v float64) *LoadMetricUpdate {
	_u.mutation.AddLoadScore(v)
	return _u
}

// Mutation returns the LoadMetricMutation object of the builder.
func (_u *LoadMetricUpdate) Mutation() *LoadMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoadMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoadMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoadMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoadMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LoadMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(loadmetric.Table, loadmetric.Columns, sqlgraph.NewFieldSpec(loadmetric.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(loadmetric.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LoadScore(); ok {
		_spec.SetField(loadmetric.FieldLoadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadScore(); ok {
		_spec.AddField(loadmetric.FieldLoadScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loadmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoadMetricUpdateOne is the builder for updating a single LoadMetric entity.
type LoadMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoadMetricMutation
}

// SetTimestamp sets the "timestamp" field.
func (_u *LoadMetricUpdateOne) SetTimestamp(v time.Time) *LoadMetricUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *LoadMetricUpdateOne) SetNillableTimestamp(v *time.Time) *LoadMetricUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetLoadScore sets the "load_score" field.
func (_u *LoadMetricUpdateOne) SetLoadScore(v float64) *LoadMetricUpdateOne {
	_u.mutation.ResetLoadScore()
	_u.mutation.SetLoadScore(v)
	return _u
}

// SetNillableLoadScore sets the "load_score" field if the given value is not nil.
func (_u *LoadMetricUpdateOne) SetNillableLoadScore(v *float64) *LoadMetricUpdateOne {
	if v != nil {
		_u.SetLoadScore(*v)
	}
	return _u
}

// AddLoadScore adds value to the "load_score" field.
func (_u *LoadMetricUpdateOne) AddLoadScore(v float64) *LoadMetricUpdateOne {
	_u.mutation.AddLoadScore(v)
	return _u
}

// Mutation returns the LoadMetricMutation object of the builder.
func (_u *LoadMetricUpdateOne) Mutation() *LoadMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the LoadMetricUpdate builder.
func (_u *LoadMetricUpdateOne) Where(ps ...predicate.LoadMetric) *LoadMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoadMetricUpdateOne) Select(field string, fields ...string) *LoadMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LoadMetric entity.
func (_u *LoadMetricUpdateOne) Save(ctx context.Context) (*LoadMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoadMetricUpdateOne) SaveX(ctx context.Context) *LoadMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoadMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoadMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LoadMetricUpdateOne) sqlSave(ctx context.Context) (_node *LoadMetric, err error) {
	_spec := sqlgraph.NewUpdateSpec(loadmetric.Table, loadmetric.Columns, sqlgraph.NewFieldSpec(loadmetric.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LoadMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loadmetric.FieldID)
		for _, f := range fields {
			if !loadmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != loadmetric.FieldID {
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
		_spec.SetField(loadmetric.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LoadScore(); ok {
		_spec.SetField(loadmetric.FieldLoadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadScore(); ok {
		_spec.AddField(loadmetric.FieldLoadScore, field.TypeFloat64, value)
	}
	_node = &LoadMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loadmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
