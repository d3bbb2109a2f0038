// Code generated by ent, DO NOT EDIT.

package behavioralinsight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldUserID, v))
}

// InsightType applies equality check predicate on the "insight_type" field. It's identical to InsightTypeEQ.
func InsightType(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldInsightType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldBody, v))
}

// Impact applies equality check predicate on the "impact" field. It's identical to ImpactEQ.
func Impact(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldImpact, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldConfidence, v))
}

// Acknowledged applies equality check predicate on the "acknowledged" field. It's identical to AcknowledgedEQ.
func Acknowledged(v bool) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldAcknowledged, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContainsFold(FieldUserID, v))
}

// InsightTypeEQ applies the EQ predicate on the "insight_type" field.
func InsightTypeEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldInsightType, v))
}

// InsightTypeNEQ applies the NEQ predicate on the "insight_type" field.
func InsightTypeNEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldInsightType, v))
}

// InsightTypeIn applies the In predicate on the "insight_type" field.
func InsightTypeIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldInsightType, vs...))
}

// InsightTypeNotIn applies the NotIn predicate on the "insight_type" field.
func InsightTypeNotIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldInsightType, vs...))
}

// InsightTypeGT applies the GT predicate on the "insight_type" field.
func InsightTypeGT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldInsightType, v))
}

// InsightTypeGTE applies the GTE predicate on the "insight_type" field.
func InsightTypeGTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldInsightType, v))
}

// InsightTypeLT applies the LT predicate on the "insight_type" field.
func InsightTypeLT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldInsightType, v))
}

// InsightTypeLTE applies the LTE predicate on the "insight_type" field.
func InsightTypeLTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldInsightType, v))
}

// InsightTypeContains applies the Contains predicate on the "insight_type" field.
func InsightTypeContains(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContains(FieldInsightType, v))
}

// InsightTypeHasPrefix applies the HasPrefix predicate on the "insight_type" field.
func InsightTypeHasPrefix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasPrefix(FieldInsightType, v))
}

// InsightTypeHasSuffix applies the HasSuffix predicate on the "insight_type" field.
func InsightTypeHasSuffix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasSuffix(FieldInsightType, v))
}

// InsightTypeEqualFold applies the EqualFold predicate on the "insight_type" field.
func InsightTypeEqualFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEqualFold(FieldInsightType, v))
}

// InsightTypeContainsFold applies the ContainsFold predicate on the "insight_type" field.
func InsightTypeContainsFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContainsFold(FieldInsightType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldContainsFold(FieldBody, v))
}

// ImpactEQ applies the EQ predicate on the "impact" field.
func ImpactEQ(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldImpact, v))
}

// ImpactNEQ applies the NEQ predicate on the "impact" field.
func ImpactNEQ(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldImpact, v))
}

// ImpactIn applies the In predicate on the "impact" field.
func ImpactIn(vs ...float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldImpact, vs...))
}

// ImpactNotIn applies the NotIn predicate on the "impact" field.
func ImpactNotIn(vs ...float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldImpact, vs...))
}

// ImpactGT applies the GT predicate on the "impact" field.
func ImpactGT(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldImpact, v))
}

// ImpactGTE applies the GTE predicate on the "impact" field.
func ImpactGTE(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldImpact, v))
}

// ImpactLT applies the LT predicate on the "impact" field.
func ImpactLT(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldImpact, v))
}

// ImpactLTE applies the LTE predicate on the "impact" field.
func ImpactLTE(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldImpact, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldConfidence, v))
}

// SourcePatternIdsIsNil applies the IsNil predicate on the "source_pattern_ids" field.
func SourcePatternIdsIsNil() predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIsNull(FieldSourcePatternIds))
}

// SourcePatternIdsNotNil applies the NotNil predicate on the "source_pattern_ids" field.
func SourcePatternIdsNotNil() predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotNull(FieldSourcePatternIds))
}

// AcknowledgedEQ applies the EQ predicate on the "acknowledged" field.
func AcknowledgedEQ(v bool) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedNEQ applies the NEQ predicate on the "acknowledged" field.
func AcknowledgedNEQ(v bool) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldAcknowledged, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BehavioralInsight) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BehavioralInsight) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BehavioralInsight) predicate.BehavioralInsight {
	return predicate.BehavioralInsight(sql.NotPredicates(p))
}
