// Code generated by ent, DO NOT EDIT.

package appliedrecommendation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldUserID, v))
}

// RecommendationID applies equality check predicate on the "recommendation_id" field. It's identical to RecommendationIDEQ.
func RecommendationID(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldRecommendationID, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldAppliedAt, v))
}

// Effectiveness applies equality check predicate on the "effectiveness" field. It's identical to EffectivenessEQ.
func Effectiveness(v float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldEffectiveness, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldEvaluatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldContainsFold(FieldUserID, v))
}

// RecommendationIDEQ applies the EQ predicate on the "recommendation_id" field.
func RecommendationIDEQ(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldRecommendationID, v))
}

// RecommendationIDNEQ applies the NEQ predicate on the "recommendation_id" field.
func RecommendationIDNEQ(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNEQ(FieldRecommendationID, v))
}

// RecommendationIDIn applies the In predicate on the "recommendation_id" field.
func RecommendationIDIn(vs ...string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIn(FieldRecommendationID, vs...))
}

// RecommendationIDNotIn applies the NotIn predicate on the "recommendation_id" field.
func RecommendationIDNotIn(vs ...string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotIn(FieldRecommendationID, vs...))
}

// RecommendationIDGT applies the GT predicate on the "recommendation_id" field.
func RecommendationIDGT(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGT(FieldRecommendationID, v))
}

// RecommendationIDGTE applies the GTE predicate on the "recommendation_id" field.
func RecommendationIDGTE(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGTE(FieldRecommendationID, v))
}

// RecommendationIDLT applies the LT predicate on the "recommendation_id" field.
func RecommendationIDLT(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLT(FieldRecommendationID, v))
}

// RecommendationIDLTE applies the LTE predicate on the "recommendation_id" field.
func RecommendationIDLTE(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLTE(FieldRecommendationID, v))
}

// RecommendationIDContains applies the Contains predicate on the "recommendation_id" field.
func RecommendationIDContains(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldContains(FieldRecommendationID, v))
}

// RecommendationIDHasPrefix applies the HasPrefix predicate on the "recommendation_id" field.
func RecommendationIDHasPrefix(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldHasPrefix(FieldRecommendationID, v))
}

// RecommendationIDHasSuffix applies the HasSuffix predicate on the "recommendation_id" field.
func RecommendationIDHasSuffix(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldHasSuffix(FieldRecommendationID, v))
}

// RecommendationIDEqualFold applies the EqualFold predicate on the "recommendation_id" field.
func RecommendationIDEqualFold(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEqualFold(FieldRecommendationID, v))
}

// RecommendationIDContainsFold applies the ContainsFold predicate on the "recommendation_id" field.
func RecommendationIDContainsFold(v string) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldContainsFold(FieldRecommendationID, v))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLTE(FieldAppliedAt, v))
}

// CurrentIsNil applies the IsNil predicate on the "current" field.
func CurrentIsNil() predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIsNull(FieldCurrent))
}

// CurrentNotNil applies the NotNil predicate on the "current" field.
func CurrentNotNil() predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotNull(FieldCurrent))
}

// EffectivenessEQ applies the EQ predicate on the "effectiveness" field.
func EffectivenessEQ(v float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldEffectiveness, v))
}

// EffectivenessNEQ applies the NEQ predicate on the "effectiveness" field.
func EffectivenessNEQ(v float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNEQ(FieldEffectiveness, v))
}

// EffectivenessIn applies the In predicate on the "effectiveness" field.
func EffectivenessIn(vs ...float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIn(FieldEffectiveness, vs...))
}

// EffectivenessNotIn applies the NotIn predicate on the "effectiveness" field.
func EffectivenessNotIn(vs ...float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotIn(FieldEffectiveness, vs...))
}

// EffectivenessGT applies the GT predicate on the "effectiveness" field.
func EffectivenessGT(v float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGT(FieldEffectiveness, v))
}

// EffectivenessGTE applies the GTE predicate on the "effectiveness" field.
func EffectivenessGTE(v float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGTE(FieldEffectiveness, v))
}

// EffectivenessLT applies the LT predicate on the "effectiveness" field.
func EffectivenessLT(v float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLT(FieldEffectiveness, v))
}

// EffectivenessLTE applies the LTE predicate on the "effectiveness" field.
func EffectivenessLTE(v float64) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLTE(FieldEffectiveness, v))
}

// EffectivenessIsNil applies the IsNil predicate on the "effectiveness" field.
func EffectivenessIsNil() predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIsNull(FieldEffectiveness))
}

// EffectivenessNotNil applies the NotNil predicate on the "effectiveness" field.
func EffectivenessNotNil() predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotNull(FieldEffectiveness))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldLTE(FieldEvaluatedAt, v))
}

// EvaluatedAtIsNil applies the IsNil predicate on the "evaluated_at" field.
func EvaluatedAtIsNil() predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldIsNull(FieldEvaluatedAt))
}

// EvaluatedAtNotNil applies the NotNil predicate on the "evaluated_at" field.
func EvaluatedAtNotNil() predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.FieldNotNull(FieldEvaluatedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppliedRecommendation) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppliedRecommendation) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppliedRecommendation) predicate.AppliedRecommendation {
	return predicate.AppliedRecommendation(sql.NotPredicates(p))
}
