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
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/recommendation"
)

// RecommendationUpdate is the builder for updating Recommendation entities.
type RecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationMutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdate) Where(ps ...predicate.Recommendation) *RecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecType sets the "rec_type" field.
func (_u *RecommendationUpdate) SetRecType(v string) *RecommendationUpdate {
	_u.mutation.SetRecType(v)
	return _u
}

// SetNillableRecType sets the "rec_type" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableRecType(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetRecType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdate) SetTitle(v string) *RecommendationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableTitle(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationUpdate) SetDescription(v string) *RecommendationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDescription(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RecommendationUpdate) ClearDescription() *RecommendationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetActionableText sets the "actionable_text" field.
func (_u *RecommendationUpdate) SetActionableText(v string) *RecommendationUpdate {
	_u.mutation.SetActionableText(v)
	return _u
}

// SetNillableActionableText sets the "actionable_text" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableActionableText(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetActionableText(*v)
	}
	return _u
}

// ClearActionableText clears the value of the "actionable_text" field.
func (_u *RecommendationUpdate) ClearActionableText() *RecommendationUpdate {
	_u.mutation.ClearActionableText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RecommendationUpdate) SetConfidence(v float64) *RecommendationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableConfidence(v *float64) *RecommendationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RecommendationUpdate) AddConfidence(v float64) *RecommendationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (_u *RecommendationUpdate) SetEstimatedImpact(v float64) *RecommendationUpdate {
	_u.mutation.ResetEstimatedImpact()
	_u.mutation.SetEstimatedImpact(v)
	return _u
}

// SetNillableEstimatedImpact sets the "estimated_impact" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableEstimatedImpact(v *float64) *RecommendationUpdate {
	if v != nil {
		_u.SetEstimatedImpact(*v)
	}
	return _u
}

// AddEstimatedImpact adds value to the "estimated_impact" field.
func (_u *RecommendationUpdate) AddEstimatedImpact(v float64) *RecommendationUpdate {
	_u.mutation.AddEstimatedImpact(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *RecommendationUpdate) SetEase(v float64) *RecommendationUpdate {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableEase(v *float64) *RecommendationUpdate {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *RecommendationUpdate) AddEase(v float64) *RecommendationUpdate {
	_u.mutation.AddEase(v)
	return _u
}

// SetUserReadiness sets the "user_readiness" field.
func (_u *RecommendationUpdate) SetUserReadiness(v float64) *RecommendationUpdate {
	_u.mutation.ResetUserReadiness()
	_u.mutation.SetUserReadiness(v)
	return _u
}

// SetNillableUserReadiness sets the "user_readiness" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableUserReadiness(v *float64) *RecommendationUpdate {
	if v != nil {
		_u.SetUserReadiness(*v)
	}
	return _u
}

// AddUserReadiness adds value to the "user_readiness" field.
func (_u *RecommendationUpdate) AddUserReadiness(v float64) *RecommendationUpdate {
	_u.mutation.AddUserReadiness(v)
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *RecommendationUpdate) SetPriorityScore(v float64) *RecommendationUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillablePriorityScore(v *float64) *RecommendationUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *RecommendationUpdate) AddPriorityScore(v float64) *RecommendationUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (_u *RecommendationUpdate) SetSourcePatternIds(v []string) *RecommendationUpdate {
	_u.mutation.SetSourcePatternIds(v)
	return _u
}

// AppendSourcePatternIds appends value to the "source_pattern_ids" field.
func (_u *RecommendationUpdate) AppendSourcePatternIds(v []string) *RecommendationUpdate {
	_u.mutation.AppendSourcePatternIds(v)
	return _u
}

// ClearSourcePatternIds clears the value of the "source_pattern_ids" field.
func (_u *RecommendationUpdate) ClearSourcePatternIds() *RecommendationUpdate {
	_u.mutation.ClearSourcePatternIds()
	return _u
}

// SetSourceInsightIds sets the "source_insight_ids" field.
func (_u *RecommendationUpdate) SetSourceInsightIds(v []string) *RecommendationUpdate {
	_u.mutation.SetSourceInsightIds(v)
	return _u
}

// AppendSourceInsightIds appends value to the "source_insight_ids" field.
func (_u *RecommendationUpdate) AppendSourceInsightIds(v []string) *RecommendationUpdate {
	_u.mutation.AppendSourceInsightIds(v)
	return _u
}

// ClearSourceInsightIds clears the value of the "source_insight_ids" field.
func (_u *RecommendationUpdate) ClearSourceInsightIds() *RecommendationUpdate {
	_u.mutation.ClearSourceInsightIds()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecommendationUpdate) SetCreatedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableCreatedAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *RecommendationUpdate) SetAppliedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableAppliedAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *RecommendationUpdate) ClearAppliedAt() *RecommendationUpdate {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *RecommendationUpdate) SetDismissedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDismissedAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (_u *RecommendationUpdate) ClearDismissedAt() *RecommendationUpdate {
	_u.mutation.ClearDismissedAt()
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdate) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdate) check() error {
	if v, ok := _u.mutation.RecType(); ok {
		if err := recommendation.RecTypeValidator(v); err != nil {
			return &ValidationError{Name: "rec_type", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rec_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(recommendation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ActionableText(); ok {
		_spec.SetField(recommendation.FieldActionableText, field.TypeString, value)
	}
	if _u.mutation.ActionableTextCleared() {
		_spec.ClearField(recommendation.FieldActionableText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(recommendation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(recommendation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedImpact(); ok {
		_spec.SetField(recommendation.FieldEstimatedImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedImpact(); ok {
		_spec.AddField(recommendation.FieldEstimatedImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(recommendation.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(recommendation.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserReadiness(); ok {
		_spec.SetField(recommendation.FieldUserReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserReadiness(); ok {
		_spec.AddField(recommendation.FieldUserReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(recommendation.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(recommendation.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourcePatternIds(); ok {
		_spec.SetField(recommendation.FieldSourcePatternIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourcePatternIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendation.FieldSourcePatternIds, value)
		})
	}
	if _u.mutation.SourcePatternIdsCleared() {
		_spec.ClearField(recommendation.FieldSourcePatternIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceInsightIds(); ok {
		_spec.SetField(recommendation.FieldSourceInsightIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceInsightIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendation.FieldSourceInsightIds, value)
		})
	}
	if _u.mutation.SourceInsightIdsCleared() {
		_spec.ClearField(recommendation.FieldSourceInsightIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(recommendation.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(recommendation.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(recommendation.FieldDismissedAt, field.TypeTime, value)
	}
	if _u.mutation.DismissedAtCleared() {
		_spec.ClearField(recommendation.FieldDismissedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationUpdateOne is the builder for updating a single Recommendation entity.
type RecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationMutation
}

// SetRecType sets the "rec_type" field.
func (_u *RecommendationUpdateOne) SetRecType(v string) *RecommendationUpdateOne {
	_u.mutation.SetRecType(v)
	return _u
}

// SetNillableRecType sets the "rec_type" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableRecType(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetRecType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdateOne) SetTitle(v string) *RecommendationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableTitle(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationUpdateOne) SetDescription(v string) *RecommendationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDescription(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RecommendationUpdateOne) ClearDescription() *RecommendationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetActionableText sets the "actionable_text" field.
func (_u *RecommendationUpdateOne) SetActionableText(v string) *RecommendationUpdateOne {
	_u.mutation.SetActionableText(v)
	return _u
}

// SetNillableActionableText sets the "actionable_text" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableActionableText(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetActionableText(*v)
	}
	return _u
}

// ClearActionableText clears the value of the "actionable_text" field.
func (_u *RecommendationUpdateOne) ClearActionableText() *RecommendationUpdateOne {
	_u.mutation.ClearActionableText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RecommendationUpdateOne) SetConfidence(v float64) *RecommendationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableConfidence(v *float64) *RecommendationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RecommendationUpdateOne) AddConfidence(v float64) *RecommendationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEstimatedImpact sets the "estimated_impact" field.
func (_u *RecommendationUpdateOne) SetEstimatedImpact(v float64) *RecommendationUpdateOne {
	_u.mutation.ResetEstimatedImpact()
	_u.mutation.SetEstimatedImpact(v)
	return _u
}

// SetNillableEstimatedImpact sets the "estimated_impact" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableEstimatedImpact(v *float64) *RecommendationUpdateOne {
	if v != nil {
		_u.SetEstimatedImpact(*v)
	}
	return _u
}

// AddEstimatedImpact adds value to the "estimated_impact" field.
func (_u *RecommendationUpdateOne) AddEstimatedImpact(v float64) *RecommendationUpdateOne {
	_u.mutation.AddEstimatedImpact(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *RecommendationUpdateOne) SetEase(v float64) *RecommendationUpdateOne {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableEase(v *float64) *RecommendationUpdateOne {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *RecommendationUpdateOne) AddEase(v float64) *RecommendationUpdateOne {
	_u.mutation.AddEase(v)
	return _u
}

// SetUserReadiness sets the "user_readiness" field.
func (_u *RecommendationUpdateOne) SetUserReadiness(v float64) *RecommendationUpdateOne {
	_u.mutation.ResetUserReadiness()
	_u.mutation.SetUserReadiness(v)
	return _u
}

// SetNillableUserReadiness sets the "user_readiness" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableUserReadiness(v *float64) *RecommendationUpdateOne {
	if v != nil {
		_u.SetUserReadiness(*v)
	}
	return _u
}

// AddUserReadiness adds value to the "user_readiness" field.
func (_u *RecommendationUpdateOne) AddUserReadiness(v float64) *RecommendationUpdateOne {
	_u.mutation.AddUserReadiness(v)
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *RecommendationUpdateOne) SetPriorityScore(v float64) *RecommendationUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillablePriorityScore(v *float64) *RecommendationUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *RecommendationUpdateOne) AddPriorityScore(v float64) *RecommendationUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetSourcePatternIds sets the "source_pattern_ids" field.
func (_u *RecommendationUpdateOne) SetSourcePatternIds(v []string) *RecommendationUpdateOne {
	_u.mutation.SetSourcePatternIds(v)
	return _u
}

// AppendSourcePatternIds appends value to the "source_pattern_ids" field.
func (_u *RecommendationUpdateOne) AppendSourcePatternIds(v []string) *RecommendationUpdateOne {
	_u.mutation.AppendSourcePatternIds(v)
	return _u
}

// ClearSourcePatternIds clears the value of the "source_pattern_ids" field.
func (_u *RecommendationUpdateOne) ClearSourcePatternIds() *RecommendationUpdateOne {
	_u.mutation.ClearSourcePatternIds()
	return _u
}

// SetSourceInsightIds sets the "source_insight_ids" field.
func (_u *RecommendationUpdateOne) SetSourceInsightIds(v []string) *RecommendationUpdateOne {
	_u.mutation.SetSourceInsightIds(v)
	return _u
}

// AppendSourceInsightIds appends value to the "source_insight_ids" field.
func (_u *RecommendationUpdateOne) AppendSourceInsightIds(v []string) *RecommendationUpdateOne {
	_u.mutation.AppendSourceInsightIds(v)
	return _u
}

// ClearSourceInsightIds clears the value of the "source_insight_ids" field.
func (_u *RecommendationUpdateOne) ClearSourceInsightIds() *RecommendationUpdateOne {
	_u.mutation.ClearSourceInsightIds()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecommendationUpdateOne) SetCreatedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableCreatedAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *RecommendationUpdateOne) SetAppliedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableAppliedAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *RecommendationUpdateOne) ClearAppliedAt() *RecommendationUpdateOne {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *RecommendationUpdateOne) SetDismissedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDismissedAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (_u *RecommendationUpdateOne) ClearDismissedAt() *RecommendationUpdateOne {
	_u.mutation.ClearDismissedAt()
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdateOne) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdateOne) Where(ps ...predicate.Recommendation) *RecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationUpdateOne) Select(field string, fields ...string) *RecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recommendation entity.
func (_u *RecommendationUpdateOne) Save(ctx context.Context) (*Recommendation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdateOne) SaveX(ctx context.Context) *Recommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.RecType(); ok {
		if err := recommendation.RecTypeValidator(v); err != nil {
			return &ValidationError{Name: "rec_type", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rec_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdateOne) sqlSave(ctx context.Context) (_node *Recommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendation.FieldID)
		for _, f := range fields {
			if !recommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendation.FieldID {
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
	if value, ok := _u.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(recommendation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ActionableText(); ok {
		_spec.SetField(recommendation.FieldActionableText, field.TypeString, value)
	}
	if _u.mutation.ActionableTextCleared() {
		_spec.ClearField(recommendation.FieldActionableText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(recommendation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(recommendation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedImpact(); ok {
		_spec.SetField(recommendation.FieldEstimatedImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedImpact(); ok {
		_spec.AddField(recommendation.FieldEstimatedImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(recommendation.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(recommendation.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UserReadiness(); ok {
		_spec.SetField(recommendation.FieldUserReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserReadiness(); ok {
		_spec.AddField(recommendation.FieldUserReadiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(recommendation.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(recommendation.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourcePatternIds(); ok {
		_spec.SetField(recommendation.FieldSourcePatternIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourcePatternIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendation.FieldSourcePatternIds, value)
		})
	}
	if _u.mutation.SourcePatternIdsCleared() {
		_spec.ClearField(recommendation.FieldSourcePatternIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceInsightIds(); ok {
		_spec.SetField(recommendation.FieldSourceInsightIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceInsightIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recommendation.FieldSourceInsightIds, value)
		})
	}
	if _u.mutation.SourceInsightIdsCleared() {
		_spec.ClearField(recommendation.FieldSourceInsightIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(recommendation.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(recommendation.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(recommendation.FieldDismissedAt, field.TypeTime, value)
	}
	if _u.mutation.DismissedAtCleared() {
		_spec.ClearField(recommendation.FieldDismissedAt, field.TypeTime)
	}
	_node = &Recommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
