// Code generated by ent, DO NOT EDIT.

package recommendation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUserID, v))
}

// RecType applies equality check predicate on the "rec_type" field. It's identical to RecTypeEQ.
func RecType(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDescription, v))
}

// ActionableText applies equality check predicate on the "actionable_text" field. It's identical to ActionableTextEQ.
func ActionableText(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldActionableText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldConfidence, v))
}

// EstimatedImpact applies equality check predicate on the "estimated_impact" field. It's identical to EstimatedImpactEQ.
func EstimatedImpact(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldEstimatedImpact, v))
}

// Ease applies equality check predicate on the "ease" field. It's identical to EaseEQ.
func Ease(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldEase, v))
}

// UserReadiness applies equality check predicate on the "user_readiness" field. It's identical to UserReadinessEQ.
func UserReadiness(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUserReadiness, v))
}

// PriorityScore applies equality check predicate on the "priority_score" field. It's identical to PriorityScoreEQ.
func PriorityScore(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPriorityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldAppliedAt, v))
}

// DismissedAt applies equality check predicate on the "dismissed_at" field. It's identical to DismissedAtEQ.
func DismissedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDismissedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldUserID, v))
}

// RecTypeEQ applies the EQ predicate on the "rec_type" field.
func RecTypeEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecType, v))
}

// RecTypeNEQ applies the NEQ predicate on the "rec_type" field.
func RecTypeNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldRecType, v))
}

// RecTypeIn applies the In predicate on the "rec_type" field.
func RecTypeIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldRecType, vs...))
}

// RecTypeNotIn applies the NotIn predicate on the "rec_type" field.
func RecTypeNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldRecType, vs...))
}

// RecTypeGT applies the GT predicate on the "rec_type" field.
func RecTypeGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldRecType, v))
}

// RecTypeGTE applies the GTE predicate on the "rec_type" field.
func RecTypeGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldRecType, v))
}

// RecTypeLT applies the LT predicate on the "rec_type" field.
func RecTypeLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldRecType, v))
}

// RecTypeLTE applies the LTE predicate on the "rec_type" field.
func RecTypeLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldRecType, v))
}

// RecTypeContains applies the Contains predicate on the "rec_type" field.
func RecTypeContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldRecType, v))
}

// RecTypeHasPrefix applies the HasPrefix predicate on the "rec_type" field.
func RecTypeHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldRecType, v))
}

// RecTypeHasSuffix applies the HasSuffix predicate on the "rec_type" field.
func RecTypeHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldRecType, v))
}

// RecTypeEqualFold applies the EqualFold predicate on the "rec_type" field.
func RecTypeEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldRecType, v))
}

// RecTypeContainsFold applies the ContainsFold predicate on the "rec_type" field.
func RecTypeContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldRecType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldDescription, v))
}

// ActionableTextEQ applies the EQ predicate on the "actionable_text" field.
func ActionableTextEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldActionableText, v))
}

// ActionableTextNEQ applies the NEQ predicate on the "actionable_text" field.
func ActionableTextNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldActionableText, v))
}

// ActionableTextIn applies the In predicate on the "actionable_text" field.
func ActionableTextIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldActionableText, vs...))
}

// ActionableTextNotIn applies the NotIn predicate on the "actionable_text" field.
func ActionableTextNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldActionableText, vs...))
}

// ActionableTextGT applies the GT predicate on the "actionable_text" field.
func ActionableTextGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldActionableText, v))
}

// ActionableTextGTE applies the GTE predicate on the "actionable_text" field.
func ActionableTextGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldActionableText, v))
}

// ActionableTextLT applies the LT predicate on the "actionable_text" field.
func ActionableTextLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldActionableText, v))
}

// ActionableTextLTE applies the LTE predicate on the "actionable_text" field.
func ActionableTextLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldActionableText, v))
}

// ActionableTextContains applies the Contains predicate on the "actionable_text" field.
func ActionableTextContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldActionableText, v))
}

// ActionableTextHasPrefix applies the HasPrefix predicate on the "actionable_text" field.
func ActionableTextHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldActionableText, v))
}

// ActionableTextHasSuffix applies the HasSuffix predicate on the "actionable_text" field.
func ActionableTextHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldActionableText, v))
}

// ActionableTextIsNil applies the IsNil predicate on the "actionable_text" field.
func ActionableTextIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldActionableText))
}

// ActionableTextNotNil applies the NotNil predicate on the "actionable_text" field.
func ActionableTextNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldActionableText))
}

// ActionableTextEqualFold applies the EqualFold predicate on the "actionable_text" field.
func ActionableTextEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldActionableText, v))
}

// ActionableTextContainsFold applies the ContainsFold predicate on the "actionable_text" field.
func ActionableTextContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldActionableText, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldConfidence, v))
}

// EstimatedImpactEQ applies the EQ predicate on the "estimated_impact" field.
func EstimatedImpactEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldEstimatedImpact, v))
}

// EstimatedImpactNEQ applies the NEQ predicate on the "estimated_impact" field.
func EstimatedImpactNEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldEstimatedImpact, v))
}

// EstimatedImpactIn applies the In predicate on the "estimated_impact" field.
func EstimatedImpactIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldEstimatedImpact, vs...))
}

// EstimatedImpactNotIn applies the NotIn predicate on the "estimated_impact" field.
func EstimatedImpactNotIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldEstimatedImpact, vs...))
}

// EstimatedImpactGT applies the GT predicate on the "estimated_impact" field.
func EstimatedImpactGT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldEstimatedImpact, v))
}

// EstimatedImpactGTE applies the GTE predicate on the "estimated_impact" field.
func EstimatedImpactGTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldEstimatedImpact, v))
}

// EstimatedImpactLT applies the LT predicate on the "estimated_impact" field.
func EstimatedImpactLT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldEstimatedImpact, v))
}

// EstimatedImpactLTE applies the LTE predicate on the "estimated_impact" field.
func EstimatedImpactLTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldEstimatedImpact, v))
}

// EaseEQ applies the EQ predicate on the "ease" field.
func EaseEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldEase, v))
}

// EaseNEQ applies the NEQ predicate on the "ease" field.
func EaseNEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldEase, v))
}

// EaseIn applies the In predicate on the "ease" field.
func EaseIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldEase, vs...))
}

// EaseNotIn applies the NotIn predicate on the "ease" field.
func EaseNotIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldEase, vs...))
}

// EaseGT applies the GT predicate on the "ease" field.
func EaseGT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldEase, v))
}

// EaseGTE applies the GTE predicate on the "ease" field.
func EaseGTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldEase, v))
}

// EaseLT applies the LT predicate on the "ease" field.
func EaseLT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldEase, v))
}

// EaseLTE applies the LTE predicate on the "ease" field.
func EaseLTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldEase, v))
}

// UserReadinessEQ applies the EQ predicate on the "user_readiness" field.
func UserReadinessEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUserReadiness, v))
}

// UserReadinessNEQ applies the NEQ predicate on the "user_readiness" field.
func UserReadinessNEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldUserReadiness, v))
}

// UserReadinessIn applies the In predicate on the "user_readiness" field.
func UserReadinessIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldUserReadiness, vs...))
}

// UserReadinessNotIn applies the NotIn predicate on the "user_readiness" field.
func UserReadinessNotIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldUserReadiness, vs...))
}

// UserReadinessGT applies the GT predicate on the "user_readiness" field.
func UserReadinessGT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldUserReadiness, v))
}

// UserReadinessGTE applies the GTE predicate on the "user_readiness" field.
func UserReadinessGTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldUserReadiness, v))
}

// UserReadinessLT applies the LT predicate on the "user_readiness" field.
func UserReadinessLT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldUserReadiness, v))
}

// UserReadinessLTE applies the LTE predicate on the "user_readiness" field.
func UserReadinessLTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldUserReadiness, v))
}

// PriorityScoreEQ applies the EQ predicate on the "priority_score" field.
func PriorityScoreEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityScoreNEQ applies the NEQ predicate on the "priority_score" field.
func PriorityScoreNEQ(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldPriorityScore, v))
}

// PriorityScoreIn applies the In predicate on the "priority_score" field.
func PriorityScoreIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldPriorityScore, vs...))
}

// PriorityScoreNotIn applies the NotIn predicate on the "priority_score" field.
func PriorityScoreNotIn(vs ...float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldPriorityScore, vs...))
}

// PriorityScoreGT applies the GT predicate on the "priority_score" field.
func PriorityScoreGT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldPriorityScore, v))
}

// PriorityScoreGTE applies the GTE predicate on the "priority_score" field.
func PriorityScoreGTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldPriorityScore, v))
}

// PriorityScoreLT applies the LT predicate on the "priority_score" field.
func PriorityScoreLT(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldPriorityScore, v))
}

// PriorityScoreLTE applies the LTE predicate on the "priority_score" field.
func PriorityScoreLTE(v float64) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldPriorityScore, v))
}

// SourcePatternIdsIsNil applies the IsNil predicate on the "source_pattern_ids" field.
func SourcePatternIdsIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldSourcePatternIds))
}

// SourcePatternIdsNotNil applies the NotNil predicate on the "source_pattern_ids" field.
func SourcePatternIdsNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldSourcePatternIds))
}

// SourceInsightIdsIsNil applies the IsNil predicate on the "source_insight_ids" field.
func SourceInsightIdsIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldSourceInsightIds))
}

// SourceInsightIdsNotNil applies the NotNil predicate on the "source_insight_ids" field.
func SourceInsightIdsNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldSourceInsightIds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldCreatedAt, v))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldAppliedAt, v))
}

// AppliedAtIsNil applies the IsNil predicate on the "applied_at" field.
func AppliedAtIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldAppliedAt))
}

// AppliedAtNotNil applies the NotNil predicate on the "applied_at" field.
func AppliedAtNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldAppliedAt))
}

// DismissedAtEQ applies the EQ predicate on the "dismissed_at" field.
func DismissedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDismissedAt, v))
}

// DismissedAtNEQ applies the NEQ predicate on the "dismissed_at" field.
func DismissedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldDismissedAt, v))
}

// DismissedAtIn applies the In predicate on the "dismissed_at" field.
func DismissedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldDismissedAt, vs...))
}

// DismissedAtNotIn applies the NotIn predicate on the "dismissed_at" field.
func DismissedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldDismissedAt, vs...))
}

// DismissedAtGT applies the GT predicate on the "dismissed_at" field.
func DismissedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldDismissedAt, v))
}

// DismissedAtGTE applies the GTE predicate on the "dismissed_at" field.
func DismissedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldDismissedAt, v))
}

// DismissedAtLT applies the LT predicate on the "dismissed_at" field.
func DismissedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldDismissedAt, v))
}

// DismissedAtLTE applies the LTE predicate on the "dismissed_at" field.
func DismissedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldDismissedAt, v))
}

// DismissedAtIsNil applies the IsNil predicate on the "dismissed_at" field.
func DismissedAtIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldDismissedAt))
}

// DismissedAtNotNil applies the NotNil predicate on the "dismissed_at" field.
func DismissedAtNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldDismissedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.NotPredicates(p))
}
