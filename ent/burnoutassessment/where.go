// Code generated by ent, DO NOT EDIT.

package burnoutassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldUserID, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskScore, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskLevel, v))
}

// AssessmentDate applies equality check predicate on the "assessment_date" field. It's identical to AssessmentDateEQ.
func AssessmentDate(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldAssessmentDate, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldConfidence, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContainsFold(FieldUserID, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldRiskScore, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContainsFold(FieldRiskLevel, v))
}

// SignalsIsNil applies the IsNil predicate on the "signals" field.
func SignalsIsNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIsNull(FieldSignals))
}

// SignalsNotNil applies the NotNil predicate on the "signals" field.
func SignalsNotNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotNull(FieldSignals))
}

// InterventionIsNil applies the IsNil predicate on the "intervention" field.
func InterventionIsNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIsNull(FieldIntervention))
}

// InterventionNotNil applies the NotNil predicate on the "intervention" field.
func InterventionNotNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotNull(FieldIntervention))
}

// AssessmentDateEQ applies the EQ predicate on the "assessment_date" field.
func AssessmentDateEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldAssessmentDate, v))
}

// AssessmentDateNEQ applies the NEQ predicate on the "assessment_date" field.
func AssessmentDateNEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldAssessmentDate, v))
}

// AssessmentDateIn applies the In predicate on the "assessment_date" field.
func AssessmentDateIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldAssessmentDate, vs...))
}

// AssessmentDateNotIn applies the NotIn predicate on the "assessment_date" field.
func AssessmentDateNotIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldAssessmentDate, vs...))
}

// AssessmentDateGT applies the GT predicate on the "assessment_date" field.
func AssessmentDateGT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldAssessmentDate, v))
}

// AssessmentDateGTE applies the GTE predicate on the "assessment_date" field.
func AssessmentDateGTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldAssessmentDate, v))
}

// AssessmentDateLT applies the LT predicate on the "assessment_date" field.
func AssessmentDateLT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldAssessmentDate, v))
}

// AssessmentDateLTE applies the LTE predicate on the "assessment_date" field.
func AssessmentDateLTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldAssessmentDate, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BurnoutAssessment) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BurnoutAssessment) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BurnoutAssessment) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.NotPredicates(p))
}
