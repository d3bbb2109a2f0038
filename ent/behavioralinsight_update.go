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
	"github.com/abhisek/cadence/ent/behavioralinsight"
	"github.com/abhisek/cadence/ent/predicate"
)

// BehavioralInsightUpdate is the builder for updating BehavioralInsight entities.
type BehavioralInsightUpdate struct {
	config
	hooks    []Hook
	mutation *BehavioralInsightMutation
}

// Where appends a list predicates to the BehavioralInsightUpdate builder.
func (_u *BehavioralInsightUpdate) Where(ps ...predicate.BehavioralInsight) *BehavioralInsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInsightType sets the "insight_type" field.
func (_u *BehavioralInsightUpdate) SetInsightType(v string) *BehavioralInsightUpdate {
	_u.mutation.SetInsightType(v)
	return _u
}

// SetNillableInsightType sets the "insight_type" field if the given value is not nil.
func (_u *BehavioralInsightUpdate) SetNillableInsightType(v *string) *BehavioralInsightUpdate {
	if v != nil {
		_u.SetInsightType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BehavioralInsightUpdate) SetTitle(v string) *BehavioralInsightUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BehavioralInsightUpdate) SetNillableTitle(v *string) *BehavioralInsightUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *BehavioralInsightUpdate) SetBody(v string) *BehavioralInsightUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *BehavioralInsightUpdate) SetNillableBody(v *string) *BehavioralInsightUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *BehavioralInsightUpdate) ClearBody() *BehavioralInsightUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetImpact sets the "impact" field.
func (_u *BehavioralInsightUpdate) SetImpact(v float64) *BehavioralInsightUpdate {
	_u.mutation.ResetImpact()
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *BehavioralInsightUpdate) SetNillableImpact(v *float64) *BehavioralInsightUpdate {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// AddImpact adds value to the "impact" field.
func (_u *BehavioralInsightUpdate) AddImpact(v float64) *BehavioralInsightUpdate {
	_u.mutation.AddImpact(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BehavioralInsightUpdate) SetConfidence(v float64) *BehavioralInsightUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BehavioralInsightUpdate) SetNillableConfidence(v *float64) *BehavioralInsightUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BehavioralInsightUpdate) AddConfidence(v float64) *BehavioralInsightUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (_u *BehavioralInsightUpdate) SetSourcePatternIds(v []string) *BehavioralInsightUpdate {
	_u.mutation.SetSourcePatternIds(v)
	return _u
}

// AppendSourcePatternIds appends value to the "source_pattern_ids" field.
func (_u *BehavioralInsightUpdate) AppendSourcePatternIds(v []string) *BehavioralInsightUpdate {
	_u.mutation.AppendSourcePatternIds(v)
	return _u
}

// ClearSourcePatternIds clears the value of the "source_pattern_ids" field.
func (_u *BehavioralInsightUpdate) ClearSourcePatternIds() *BehavioralInsightUpdate {
	_u.mutation.ClearSourcePatternIds()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *BehavioralInsightUpdate) SetAcknowledged(v bool) *BehavioralInsightUpdate {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *BehavioralInsightUpdate) SetNillableAcknowledged(v *bool) *BehavioralInsightUpdate {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BehavioralInsightUpdate) SetCreatedAt(v time.Time) *BehavioralInsightUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BehavioralInsightUpdate) SetNillableCreatedAt(v *time.Time) *BehavioralInsightUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the BehavioralInsightMutation object of the builder.
func (_u *BehavioralInsightUpdate) Mutation() *BehavioralInsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BehavioralInsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehavioralInsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BehavioralInsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehavioralInsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehavioralInsightUpdate) check() error {
	if v, ok := _u.mutation.InsightType(); ok {
		if err := behavioralinsight.InsightTypeValidator(v); err != nil {
			return &ValidationError{Name: "insight_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralInsight.insight_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := behavioralinsight.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BehavioralInsight.title": %w`, err)}
		}
	}
	return nil
}

func (_u *BehavioralInsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behavioralinsight.Table, behavioralinsight.Columns, sqlgraph.NewFieldSpec(behavioralinsight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InsightType(); ok {
		_spec.SetField(behavioralinsight.FieldInsightType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(behavioralinsight.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(behavioralinsight.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(behavioralinsight.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(behavioralinsight.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpact(); ok {
		_spec.AddField(behavioralinsight.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(behavioralinsight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(behavioralinsight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourcePatternIds(); ok {
		_spec.SetField(behavioralinsight.FieldSourcePatternIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourcePatternIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, behavioralinsight.FieldSourcePatternIds, value)
		})
	}
	if _u.mutation.SourcePatternIdsCleared() {
		_spec.ClearField(behavioralinsight.FieldSourcePatternIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(behavioralinsight.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(behavioralinsight.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behavioralinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BehavioralInsightUpdateOne is the builder for updating a single BehavioralInsight entity.
type BehavioralInsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BehavioralInsightMutation
}

// SetInsightType sets the "insight_type" field.
func (_u *BehavioralInsightUpdateOne) SetInsightType(v string) *BehavioralInsightUpdateOne {
	_u.mutation.SetInsightType(v)
	return _u
}

// SetNillableInsightType sets the "insight_type" field if the given value is not nil.
func (_u *BehavioralInsightUpdateOne) SetNillableInsightType(v *string) *BehavioralInsightUpdateOne {
	if v != nil {
		_u.SetInsightType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BehavioralInsightUpdateOne) SetTitle(v string) *BehavioralInsightUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BehavioralInsightUpdateOne) SetNillableTitle(v *string) *BehavioralInsightUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *BehavioralInsightUpdateOne) SetBody(v string) *BehavioralInsightUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *BehavioralInsightUpdateOne) SetNillableBody(v *string) *BehavioralInsightUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *BehavioralInsightUpdateOne) ClearBody() *BehavioralInsightUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetImpact sets the "impact" field.
func (_u *BehavioralInsightUpdateOne) SetImpact(v float64) *BehavioralInsightUpdateOne {
	_u.mutation.ResetImpact()
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *BehavioralInsightUpdateOne) SetNillableImpact(v *float64) *BehavioralInsightUpdateOne {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// AddImpact adds value to the "impact" field.
func (_u *BehavioralInsightUpdateOne) AddImpact(v float64) *BehavioralInsightUpdateOne {
	_u.mutation.AddImpact(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BehavioralInsightUpdateOne) SetConfidence(v float64) *BehavioralInsightUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BehavioralInsightUpdateOne) SetNillableConfidence(v *float64) *BehavioralInsightUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BehavioralInsightUpdateOne) AddConfidence(v float64) *BehavioralInsightUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (_u *BehavioralInsightUpdateOne) SetSourcePatternIds(v []string) *BehavioralInsightUpdateOne {
	_u.mutation.SetSourcePatternIds(v)
	return _u
}

// AppendSourcePatternIds appends value to the "source_pattern_ids" field.
func (_u *BehavioralInsightUpdateOne) AppendSourcePatternIds(v []string) *BehavioralInsightUpdateOne {
	_u.mutation.AppendSourcePatternIds(v)
	return _u
}

// ClearSourcePatternIds clears the value of the "source_pattern_ids" field.
func (_u *BehavioralInsightUpdateOne) ClearSourcePatternIds() *BehavioralInsightUpdateOne {
	_u.mutation.ClearSourcePatternIds()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *BehavioralInsightUpdateOne) SetAcknowledged(v bool) *BehavioralInsightUpdateOne {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *BehavioralInsightUpdateOne) SetNillableAcknowledged(v *bool) *BehavioralInsightUpdateOne {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BehavioralInsightUpdateOne) SetCreatedAt(v time.Time) *BehavioralInsightUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BehavioralInsightUpdateOne) SetNillableCreatedAt(v *time.Time) *BehavioralInsightUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the BehavioralInsightMutation object of the builder.
func (_u *BehavioralInsightUpdateOne) Mutation() *BehavioralInsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the BehavioralInsightUpdate builder.
func (_u *BehavioralInsightUpdateOne) Where(ps ...predicate.BehavioralInsight) *BehavioralInsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BehavioralInsightUpdateOne) Select(field string, fields ...string) *BehavioralInsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BehavioralInsight entity.
func (_u *BehavioralInsightUpdateOne) Save(ctx context.Context) (*BehavioralInsight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehavioralInsightUpdateOne) SaveX(ctx context.Context) *BehavioralInsight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BehavioralInsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehavioralInsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehavioralInsightUpdateOne) check() error {
	if v, ok := _u.mutation.InsightType(); ok {
		if err := behavioralinsight.InsightTypeValidator(v); err != nil {
			return &ValidationError{Name: "insight_type", err: fmt.Errorf(`ent: validator failed for field "BehavioralInsight.insight_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := behavioralinsight.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BehavioralInsight.title": %w`, err)}
		}
	}
	return nil
}

func (_u *BehavioralInsightUpdateOne) sqlSave(ctx context.Context) (_node *BehavioralInsight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behavioralinsight.Table, behavioralinsight.Columns, sqlgraph.NewFieldSpec(behavioralinsight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BehavioralInsight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, behavioralinsight.FieldID)
		for _, f := range fields {
			if !behavioralinsight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != behavioralinsight.FieldID {
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
	if value, ok := _u.mutation.InsightType(); ok {
		_spec.SetField(behavioralinsight.FieldInsightType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(behavioralinsight.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(behavioralinsight.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(behavioralinsight.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(behavioralinsight.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpact(); ok {
		_spec.AddField(behavioralinsight.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(behavioralinsight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(behavioralinsight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourcePatternIds(); ok {
		_spec.SetField(behavioralinsight.FieldSourcePatternIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourcePatternIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, behavioralinsight.FieldSourcePatternIds, value)
		})
	}
	if _u.mutation.SourcePatternIdsCleared() {
		_spec.ClearField(behavioralinsight.FieldSourcePatternIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(behavioralinsight.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(behavioralinsight.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &BehavioralInsight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behavioralinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
