// Code generated by ent, DO NOT EDIT.

package behavioralpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldUserID, v))
}

// PatternType applies equality check predicate on the "pattern_type" field. It's identical to PatternTypeEQ.
func PatternType(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldPatternType, v))
}

// PatternName applies equality check predicate on the "pattern_name" field. It's identical to PatternNameEQ.
func PatternName(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldPatternName, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldConfidence, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldOccurrenceCount, v))
}

// FirstDetectedAt applies equality check predicate on the "first_detected_at" field. It's identical to FirstDetectedAtEQ.
func FirstDetectedAt(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldFirstDetectedAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldLastSeenAt, v))
}

// ConsecutiveNonOccurrences applies equality check predicate on the "consecutive_non_occurrences" field. It's identical to ConsecutiveNonOccurrencesEQ.
func ConsecutiveNonOccurrences(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldConsecutiveNonOccurrences, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldContainsFold(FieldUserID, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldPatternType, vs...))
}

// PatternTypeGT applies the GT predicate on the "pattern_type" field.
func PatternTypeGT(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldPatternType, v))
}

// PatternTypeGTE applies the GTE predicate on the "pattern_type" field.
func PatternTypeGTE(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldPatternType, v))
}

// PatternTypeLT applies the LT predicate on the "pattern_type" field.
func PatternTypeLT(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldPatternType, v))
}

// PatternTypeLTE applies the LTE predicate on the "pattern_type" field.
func PatternTypeLTE(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldPatternType, v))
}

// PatternTypeContains applies the Contains predicate on the "pattern_type" field.
func PatternTypeContains(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldContains(FieldPatternType, v))
}

// PatternTypeHasPrefix applies the HasPrefix predicate on the "pattern_type" field.
func PatternTypeHasPrefix(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldHasPrefix(FieldPatternType, v))
}

// PatternTypeHasSuffix applies the HasSuffix predicate on the "pattern_type" field.
func PatternTypeHasSuffix(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldHasSuffix(FieldPatternType, v))
}

// PatternTypeEqualFold applies the EqualFold predicate on the "pattern_type" field.
func PatternTypeEqualFold(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEqualFold(FieldPatternType, v))
}

// PatternTypeContainsFold applies the ContainsFold predicate on the "pattern_type" field.
func PatternTypeContainsFold(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldContainsFold(FieldPatternType, v))
}

// PatternNameEQ applies the EQ predicate on the "pattern_name" field.
func PatternNameEQ(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldPatternName, v))
}

// PatternNameNEQ applies the NEQ predicate on the "pattern_name" field.
func PatternNameNEQ(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldPatternName, v))
}

// PatternNameIn applies the In predicate on the "pattern_name" field.
func PatternNameIn(vs ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldPatternName, vs...))
}

// PatternNameNotIn applies the NotIn predicate on the "pattern_name" field.
func PatternNameNotIn(vs ...string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldPatternName, vs...))
}

// PatternNameGT applies the GT predicate on the "pattern_name" field.
func PatternNameGT(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldPatternName, v))
}

// PatternNameGTE applies the GTE predicate on the "pattern_name" field.
func PatternNameGTE(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldPatternName, v))
}

// PatternNameLT applies the LT predicate on the "pattern_name" field.
func PatternNameLT(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldPatternName, v))
}

// PatternNameLTE applies the LTE predicate on the "pattern_name" field.
func PatternNameLTE(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldPatternName, v))
}

// PatternNameContains applies the Contains predicate on the "pattern_name" field.
func PatternNameContains(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldContains(FieldPatternName, v))
}

// PatternNameHasPrefix applies the HasPrefix predicate on the "pattern_name" field.
func PatternNameHasPrefix(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldHasPrefix(FieldPatternName, v))
}

// PatternNameHasSuffix applies the HasSuffix predicate on the "pattern_name" field.
func PatternNameHasSuffix(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldHasSuffix(FieldPatternName, v))
}

// PatternNameEqualFold applies the EqualFold predicate on the "pattern_name" field.
func PatternNameEqualFold(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEqualFold(FieldPatternName, v))
}

// PatternNameContainsFold applies the ContainsFold predicate on the "pattern_name" field.
func PatternNameContainsFold(v string) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldContainsFold(FieldPatternName, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldConfidence, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotNull(FieldEvidence))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldOccurrenceCount, v))
}

// FirstDetectedAtEQ applies the EQ predicate on the "first_detected_at" field.
func FirstDetectedAtEQ(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldFirstDetectedAt, v))
}

// FirstDetectedAtNEQ applies the NEQ predicate on the "first_detected_at" field.
func FirstDetectedAtNEQ(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldFirstDetectedAt, v))
}

// FirstDetectedAtIn applies the In predicate on the "first_detected_at" field.
func FirstDetectedAtIn(vs ...time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldFirstDetectedAt, vs...))
}

// FirstDetectedAtNotIn applies the NotIn predicate on the "first_detected_at" field.
func FirstDetectedAtNotIn(vs ...time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldFirstDetectedAt, vs...))
}

// FirstDetectedAtGT applies the GT predicate on the "first_detected_at" field.
func FirstDetectedAtGT(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldFirstDetectedAt, v))
}

// FirstDetectedAtGTE applies the GTE predicate on the "first_detected_at" field.
func FirstDetectedAtGTE(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldFirstDetectedAt, v))
}

// FirstDetectedAtLT applies the LT predicate on the "first_detected_at" field.
func FirstDetectedAtLT(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldFirstDetectedAt, v))
}

// FirstDetectedAtLTE applies the LTE predicate on the "first_detected_at" field.
func FirstDetectedAtLTE(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldFirstDetectedAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldLastSeenAt, v))
}

// ConsecutiveNonOccurrencesEQ applies the EQ predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesEQ(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldEQ(FieldConsecutiveNonOccurrences, v))
}

// ConsecutiveNonOccurrencesNEQ applies the NEQ predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesNEQ(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNEQ(FieldConsecutiveNonOccurrences, v))
}

// ConsecutiveNonOccurrencesIn applies the In predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesIn(vs ...int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldIn(FieldConsecutiveNonOccurrences, vs...))
}

// ConsecutiveNonOccurrencesNotIn applies the NotIn predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesNotIn(vs ...int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldNotIn(FieldConsecutiveNonOccurrences, vs...))
}

// ConsecutiveNonOccurrencesGT applies the GT predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesGT(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGT(FieldConsecutiveNonOccurrences, v))
}

// ConsecutiveNonOccurrencesGTE applies the GTE predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesGTE(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldGTE(FieldConsecutiveNonOccurrences, v))
}

// ConsecutiveNonOccurrencesLT applies the LT predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesLT(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLT(FieldConsecutiveNonOccurrences, v))
}

// ConsecutiveNonOccurrencesLTE applies the LTE predicate on the "consecutive_non_occurrences" field.
func ConsecutiveNonOccurrencesLTE(v int) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.FieldLTE(FieldConsecutiveNonOccurrences, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BehavioralPattern) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BehavioralPattern) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BehavioralPattern) predicate.BehavioralPattern {
	return predicate.BehavioralPattern(sql.NotPredicates(p))
}
