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
	"github.com/abhisek/cadence/ent/learningprofile"
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/schema"
)

// LearningProfileUpdate is the builder for updating LearningProfile entities.
type LearningProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LearningProfileMutation
}

// Where appends a list predicates to the LearningProfileUpdate builder.
func (_u *LearningProfileUpdate) Where(ps ...predicate.LearningProfile) *LearningProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningProfileUpdate) SetUserID(v string) *LearningProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableUserID(v *string) *LearningProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPreferredWindows sets the "preferred_windows" field.
func (_u *LearningProfileUpdate) SetPreferredWindows(v []schema.WindowSample) *LearningProfileUpdate {
	_u.mutation.SetPreferredWindows(v)
	return _u
}

// AppendPreferredWindows appends value to the "preferred_windows" field.
func (_u *LearningProfileUpdate) AppendPreferredWindows(v []schema.WindowSample) *LearningProfileUpdate {
	_u.mutation.AppendPreferredWindows(v)
	return _u
}

// ClearPreferredWindows clears the value of the "preferred_windows" field.
func (_u *LearningProfileUpdate) ClearPreferredWindows() *LearningProfileUpdate {
	_u.mutation.ClearPreferredWindows()
	return _u
}

// SetOptimalDurationMin sets the "optimal_duration_min" field.
func (_u *LearningProfileUpdate) SetOptimalDurationMin(v int) *LearningProfileUpdate {
	_u.mutation.ResetOptimalDurationMin()
	_u.mutation.SetOptimalDurationMin(v)
	return _u
}

// SetNillableOptimalDurationMin sets the "optimal_duration_min" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableOptimalDurationMin(v *int) *LearningProfileUpdate {
	if v != nil {
		_u.SetOptimalDurationMin(*v)
	}
	return _u
}

// AddOptimalDurationMin adds value to the "optimal_duration_min" field.
func (_u *LearningProfileUpdate) AddOptimalDurationMin(v int) *LearningProfileUpdate {
	_u.mutation.AddOptimalDurationMin(v)
	return _u
}

// SetContentPreferences sets the "content_preferences" field.
func (_u *LearningProfileUpdate) SetContentPreferences(v map[string]float64) *LearningProfileUpdate {
	_u.mutation.SetContentPreferences(v)
	return _u
}

// ClearContentPreferences clears the value of the "content_preferences" field.
func (_u *LearningProfileUpdate) ClearContentPreferences() *LearningProfileUpdate {
	_u.mutation.ClearContentPreferences()
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *LearningProfileUpdate) SetLearningStyle(v *schema.StyleSample) *LearningProfileUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// ClearLearningStyle clears the value of the "learning_style" field.
func (_u *LearningProfileUpdate) ClearLearningStyle() *LearningProfileUpdate {
	_u.mutation.ClearLearningStyle()
	return _u
}

// SetStabilityDays sets the "stability_days" field.
func (_u *LearningProfileUpdate) SetStabilityDays(v float64) *LearningProfileUpdate {
	_u.mutation.ResetStabilityDays()
	_u.mutation.SetStabilityDays(v)
	return _u
}

// SetNillableStabilityDays sets the "stability_days" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableStabilityDays(v *float64) *LearningProfileUpdate {
	if v != nil {
		_u.SetStabilityDays(*v)
	}
	return _u
}

// AddStabilityDays adds value to the "stability_days" field.
func (_u *LearningProfileUpdate) AddStabilityDays(v float64) *LearningProfileUpdate {
	_u.mutation.AddStabilityDays(v)
	return _u
}

// SetHalfLifeDays sets the "half_life_days" field.
func (_u *LearningProfileUpdate) SetHalfLifeDays(v float64) *LearningProfileUpdate {
	_u.mutation.ResetHalfLifeDays()
	_u.mutation.SetHalfLifeDays(v)
	return _u
}

// SetNillableHalfLifeDays sets the "half_life_days" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableHalfLifeDays(v *float64) *LearningProfileUpdate {
	if v != nil {
		_u.SetHalfLifeDays(*v)
	}
	return _u
}

// AddHalfLifeDays adds value to the "half_life_days" field.
func (_u *LearningProfileUpdate) AddHalfLifeDays(v float64) *LearningProfileUpdate {
	_u.mutation.AddHalfLifeDays(v)
	return _u
}

// SetDataQualityScore sets the "data_quality_score" field.
func (_u *LearningProfileUpdate) SetDataQualityScore(v float64) *LearningProfileUpdate {
	_u.mutation.ResetDataQualityScore()
	_u.mutation.SetDataQualityScore(v)
	return _u
}

// SetNillableDataQualityScore sets the "data_quality_score" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableDataQualityScore(v *float64) *LearningProfileUpdate {
	if v != nil {
		_u.SetDataQualityScore(*v)
	}
	return _u
}

// AddDataQualityScore adds value to the "data_quality_score" field.
func (_u *LearningProfileUpdate) AddDataQualityScore(v float64) *LearningProfileUpdate {
	_u.mutation.AddDataQualityScore(v)
	return _u
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (_u *LearningProfileUpdate) SetLastAnalyzedAt(v time.Time) *LearningProfileUpdate {
	_u.mutation.SetLastAnalyzedAt(v)
	return _u
}

// SetNillableLastAnalyzedAt sets the "last_analyzed_at" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableLastAnalyzedAt(v *time.Time) *LearningProfileUpdate {
	if v != nil {
		_u.SetLastAnalyzedAt(*v)
	}
	return _u
}

// Mutation returns the LearningProfileMutation object of the builder.
func (_u *LearningProfileUpdate) Mutation() *LearningProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningProfileUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningprofile.Table, learningprofile.Columns, sqlgraph.NewFieldSpec(learningprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningprofile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredWindows(); ok {
		_spec.SetField(learningprofile.FieldPreferredWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningprofile.FieldPreferredWindows, value)
		})
	}
	if _u.mutation.PreferredWindowsCleared() {
		_spec.ClearField(learningprofile.FieldPreferredWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimalDurationMin(); ok {
		_spec.SetField(learningprofile.FieldOptimalDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptimalDurationMin(); ok {
		_spec.AddField(learningprofile.FieldOptimalDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentPreferences(); ok {
		_spec.SetField(learningprofile.FieldContentPreferences, field.TypeJSON, value)
	}
	if _u.mutation.ContentPreferencesCleared() {
		_spec.ClearField(learningprofile.FieldContentPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(learningprofile.FieldLearningStyle, field.TypeJSON, value)
	}
	if _u.mutation.LearningStyleCleared() {
		_spec.ClearField(learningprofile.FieldLearningStyle, field.TypeJSON)
	}
	if value, ok := _u.mutation.StabilityDays(); ok {
		_spec.SetField(learningprofile.FieldStabilityDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStabilityDays(); ok {
		_spec.AddField(learningprofile.FieldStabilityDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HalfLifeDays(); ok {
		_spec.SetField(learningprofile.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHalfLifeDays(); ok {
		_spec.AddField(learningprofile.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DataQualityScore(); ok {
		_spec.SetField(learningprofile.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDataQualityScore(); ok {
		_spec.AddField(learningprofile.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAnalyzedAt(); ok {
		_spec.SetField(learningprofile.FieldLastAnalyzedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningProfileUpdateOne is the builder for updating a single LearningProfile entity.
type LearningProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningProfileMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningProfileUpdateOne) SetUserID(v string) *LearningProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableUserID(v *string) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPreferredWindows sets the "preferred_windows" field.
func (_u *LearningProfileUpdateOne) SetPreferredWindows(v []schema.WindowSample) *LearningProfileUpdateOne {
	_u.mutation.SetPreferredWindows(v)
	return _u
}

// AppendPreferredWindows appends value to the "preferred_windows" field.
func (_u *LearningProfileUpdateOne) AppendPreferredWindows(v []schema.WindowSample) *LearningProfileUpdateOne {
	_u.mutation.AppendPreferredWindows(v)
	return _u
}

// ClearPreferredWindows clears the value of the "preferred_windows" field.
func (_u *LearningProfileUpdateOne) ClearPreferredWindows() *LearningProfileUpdateOne {
	_u.mutation.ClearPreferredWindows()
	return _u
}

// SetOptimalDurationMin sets the "optimal_duration_min" field.
func (_u *LearningProfileUpdateOne) SetOptimalDurationMin(v int) *LearningProfileUpdateOne {
	_u.mutation.ResetOptimalDurationMin()
	_u.mutation.SetOptimalDurationMin(v)
	return _u
}

// SetNillableOptimalDurationMin sets the "optimal_duration_min" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableOptimalDurationMin(v *int) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetOptimalDurationMin(*v)
	}
	return _u
}

// AddOptimalDurationMin adds value to the "optimal_duration_min" field.
func (_u *LearningProfileUpdateOne) AddOptimalDurationMin(v int) *LearningProfileUpdateOne {
	_u.mutation.AddOptimalDurationMin(v)
	return _u
}

// SetContentPreferences sets the "content_preferences" field.
func (_u *LearningProfileUpdateOne) SetContentPreferences(v map[string]float64) *LearningProfileUpdateOne {
	_u.mutation.SetContentPreferences(v)
	return _u
}

// ClearContentPreferences clears the value of the "content_preferences" field.
func (_u *LearningProfileUpdateOne) ClearContentPreferences() *LearningProfileUpdateOne {
	_u.mutation.ClearContentPreferences()
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *LearningProfileUpdateOne) SetLearningStyle(v *schema.StyleSample) *LearningProfileUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// ClearLearningStyle clears the value of the "learning_style" field.
func (_u *LearningProfileUpdateOne) ClearLearningStyle() *LearningProfileUpdateOne {
	_u.mutation.ClearLearningStyle()
	return _u
}

// SetStabilityDays sets the "stability_days" field.
func (_u *LearningProfileUpdateOne) SetStabilityDays(v float64) *LearningProfileUpdateOne {
	_u.mutation.ResetStabilityDays()
	_u.mutation.SetStabilityDays(v)
	return _u
}

// SetNillableStabilityDays sets the "stability_days" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableStabilityDays(v *float64) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetStabilityDays(*v)
	}
	return _u
}

// AddStabilityDays adds value to the "stability_days" field.
func (_u *LearningProfileUpdateOne) AddStabilityDays(v float64) *LearningProfileUpdateOne {
	_u.mutation.AddStabilityDays(v)
	return _u
}

// SetHalfLifeDays sets the "half_life_days" field.
func (_u *LearningProfileUpdateOne) SetHalfLifeDays(v float64) *LearningProfileUpdateOne {
	_u.mutation.ResetHalfLifeDays()
	_u.mutation.SetHalfLifeDays(v)
	return _u
}

// SetNillableHalfLifeDays sets the "half_life_days" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableHalfLifeDays(v *float64) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetHalfLifeDays(*v)
	}
	return _u
}

// AddHalfLifeDays adds value to the "half_life_days" field.
func (_u *LearningProfileUpdateOne) AddHalfLifeDays(v float64) *LearningProfileUpdateOne {
	_u.mutation.AddHalfLifeDays(v)
	return _u
}

// SetDataQualityScore sets the "data_quality_score" field.
func (_u *LearningProfileUpdateOne) SetDataQualityScore(v float64) *LearningProfileUpdateOne {
	_u.mutation.ResetDataQualityScore()
	_u.mutation.SetDataQualityScore(v)
	return _u
}

// SetNillableDataQualityScore sets the "data_quality_score" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableDataQualityScore(v *float64) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetDataQualityScore(*v)
	}
	return _u
}

// AddDataQualityScore adds value to the "data_quality_score" field.
func (_u *LearningProfileUpdateOne) AddDataQualityScore(v float64) *LearningProfileUpdateOne {
	_u.mutation.AddDataQualityScore(v)
	return _u
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (_u *LearningProfileUpdateOne) SetLastAnalyzedAt(v time.Time) *LearningProfileUpdateOne {
	_u.mutation.SetLastAnalyzedAt(v)
	return _u
}

// SetNillableLastAnalyzedAt sets the "last_analyzed_at" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableLastAnalyzedAt(v *time.Time) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetLastAnalyzedAt(*v)
	}
	return _u
}

// Mutation returns the LearningProfileMutation object of the builder.
func (_u *LearningProfileUpdateOne) Mutation() *LearningProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningProfileUpdate builder.
func (_u *LearningProfileUpdateOne) Where(ps ...predicate.LearningProfile) *LearningProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningProfileUpdateOne) Select(field string, fields ...string) *LearningProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningProfile entity.
func (_u *LearningProfileUpdateOne) Save(ctx context.Context) (*LearningProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningProfileUpdateOne) SaveX(ctx context.Context) *LearningProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningProfileUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningProfileUpdateOne) sqlSave(ctx context.Context) (_node *LearningProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningprofile.Table, learningprofile.Columns, sqlgraph.NewFieldSpec(learningprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningprofile.FieldID)
		for _, f := range fields {
			if !learningprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningprofile.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningprofile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredWindows(); ok {
		_spec.SetField(learningprofile.FieldPreferredWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningprofile.FieldPreferredWindows, value)
		})
	}
	if _u.mutation.PreferredWindowsCleared() {
		_spec.ClearField(learningprofile.FieldPreferredWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimalDurationMin(); ok {
		_spec.SetField(learningprofile.FieldOptimalDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptimalDurationMin(); ok {
		_spec.AddField(learningprofile.FieldOptimalDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentPreferences(); ok {
		_spec.SetField(learningprofile.FieldContentPreferences, field.TypeJSON, value)
	}
	if _u.mutation.ContentPreferencesCleared() {
		_spec.ClearField(learningprofile.FieldContentPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(learningprofile.FieldLearningStyle, field.TypeJSON, value)
	}
	if _u.mutation.LearningStyleCleared() {
		_spec.ClearField(learningprofile.FieldLearningStyle, field.TypeJSON)
	}
	if value, ok := _u.mutation.StabilityDays(); ok {
		_spec.SetField(learningprofile.FieldStabilityDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStabilityDays(); ok {
		_spec.AddField(learningprofile.FieldStabilityDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HalfLifeDays(); ok {
		_spec.SetField(learningprofile.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHalfLifeDays(); ok {
		_spec.AddField(learningprofile.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DataQualityScore(); ok {
		_spec.SetField(learningprofile.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDataQualityScore(); ok {
		_spec.AddField(learningprofile.FieldDataQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAnalyzedAt(); ok {
		_spec.SetField(learningprofile.FieldLastAnalyzedAt, field.TypeTime, value)
	}
	_node = &LearningProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
