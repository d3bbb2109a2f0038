// Code generated by ent, DO NOT EDIT.

package learningprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldUserID, v))
}

// OptimalDurationMin applies equality check predicate on the "optimal_duration_min" field. It's identical to OptimalDurationMinEQ.
func OptimalDurationMin(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldOptimalDurationMin, v))
}

// StabilityDays applies equality check predicate on the "stability_days" field. It's identical to StabilityDaysEQ.
func StabilityDays(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldStabilityDays, v))
}

// HalfLifeDays applies equality check predicate on the "half_life_days" field. It's identical to HalfLifeDaysEQ.
func HalfLifeDays(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldHalfLifeDays, v))
}

// DataQualityScore applies equality check predicate on the "data_quality_score" field. It's identical to DataQualityScoreEQ.
func DataQualityScore(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldDataQualityScore, v))
}

// LastAnalyzedAt applies equality check predicate on the "last_analyzed_at" field. It's identical to LastAnalyzedAtEQ.
func LastAnalyzedAt(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldLastAnalyzedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldContainsFold(FieldUserID, v))
}

// PreferredWindowsIsNil applies the IsNil predicate on the "preferred_windows" field.
func PreferredWindowsIsNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIsNull(FieldPreferredWindows))
}

// PreferredWindowsNotNil applies the NotNil predicate on the "preferred_windows" field.
func PreferredWindowsNotNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotNull(FieldPreferredWindows))
}

// OptimalDurationMinEQ applies the EQ predicate on the "optimal_duration_min" field.
func OptimalDurationMinEQ(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldOptimalDurationMin, v))
}

// OptimalDurationMinNEQ applies the NEQ predicate on the "optimal_duration_min" field.
func OptimalDurationMinNEQ(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldOptimalDurationMin, v))
}

// OptimalDurationMinIn applies the In predicate on the "optimal_duration_min" field.
func OptimalDurationMinIn(vs ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldOptimalDurationMin, vs...))
}

// OptimalDurationMinNotIn applies the NotIn predicate on the "optimal_duration_min" field.
func OptimalDurationMinNotIn(vs ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldOptimalDurationMin, vs...))
}

// OptimalDurationMinGT applies the GT predicate on the "optimal_duration_min" field.
func OptimalDurationMinGT(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldOptimalDurationMin, v))
}

// OptimalDurationMinGTE applies the GTE predicate on the "optimal_duration_min" field.
func OptimalDurationMinGTE(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldOptimalDurationMin, v))
}

// OptimalDurationMinLT applies the LT predicate on the "optimal_duration_min" field.
func OptimalDurationMinLT(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldOptimalDurationMin, v))
}

// OptimalDurationMinLTE applies the LTE predicate on the "optimal_duration_min" field.
func OptimalDurationMinLTE(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldOptimalDurationMin, v))
}

// ContentPreferencesIsNil applies the IsNil predicate on the "content_preferences" field.
func ContentPreferencesIsNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIsNull(FieldContentPreferences))
}

// ContentPreferencesNotNil applies the NotNil predicate on the "content_preferences" field.
func ContentPreferencesNotNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotNull(FieldContentPreferences))
}

// LearningStyleIsNil applies the IsNil predicate on the "learning_style" field.
func LearningStyleIsNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIsNull(FieldLearningStyle))
}

// LearningStyleNotNil applies the NotNil predicate on the "learning_style" field.
func LearningStyleNotNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotNull(FieldLearningStyle))
}

// StabilityDaysEQ applies the EQ predicate on the "stability_days" field.
func StabilityDaysEQ(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldStabilityDays, v))
}

// StabilityDaysNEQ applies the NEQ predicate on the "stability_days" field.
func StabilityDaysNEQ(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldStabilityDays, v))
}

// StabilityDaysIn applies the In predicate on the "stability_days" field.
func StabilityDaysIn(vs ...float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldStabilityDays, vs...))
}

// StabilityDaysNotIn applies the NotIn predicate on the "stability_days" field.
func StabilityDaysNotIn(vs ...float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldStabilityDays, vs...))
}

// StabilityDaysGT applies the GT predicate on the "stability_days" field.
func StabilityDaysGT(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldStabilityDays, v))
}

// StabilityDaysGTE applies the GTE predicate on the "stability_days" field.
func StabilityDaysGTE(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldStabilityDays, v))
}

// StabilityDaysLT applies the LT predicate on the "stability_days" field.
func StabilityDaysLT(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldStabilityDays, v))
}

// StabilityDaysLTE applies the LTE predicate on the "stability_days" field.
func StabilityDaysLTE(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldStabilityDays, v))
}

// HalfLifeDaysEQ applies the EQ predicate on the "half_life_days" field.
func HalfLifeDaysEQ(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldHalfLifeDays, v))
}

// HalfLifeDaysNEQ applies the NEQ predicate on the "half_life_days" field.
func HalfLifeDaysNEQ(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldHalfLifeDays, v))
}

// HalfLifeDaysIn applies the In predicate on the "half_life_days" field.
func HalfLifeDaysIn(vs ...float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldHalfLifeDays, vs...))
}

// HalfLifeDaysNotIn applies the NotIn predicate on the "half_life_days" field.
func HalfLifeDaysNotIn(vs ...float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldHalfLifeDays, vs...))
}

// HalfLifeDaysGT applies the GT predicate on the "half_life_days" field.
func HalfLifeDaysGT(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldHalfLifeDays, v))
}

// HalfLifeDaysGTE applies the GTE predicate on the "half_life_days" field.
func HalfLifeDaysGTE(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldHalfLifeDays, v))
}

// HalfLifeDaysLT applies the LT predicate on the "half_life_days" field.
func HalfLifeDaysLT(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldHalfLifeDays, v))
}

// HalfLifeDaysLTE applies the LTE predicate on the "half_life_days" field.
func HalfLifeDaysLTE(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldHalfLifeDays, v))
}

// DataQualityScoreEQ applies the EQ predicate on the "data_quality_score" field.
func DataQualityScoreEQ(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldDataQualityScore, v))
}

// DataQualityScoreNEQ applies the NEQ predicate on the "data_quality_score" field.
func DataQualityScoreNEQ(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldDataQualityScore, v))
}

// DataQualityScoreIn applies the In predicate on the "data_quality_score" field.
func DataQualityScoreIn(vs ...float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldDataQualityScore, vs...))
}

// DataQualityScoreNotIn applies the NotIn predicate on the "data_quality_score" field.
func DataQualityScoreNotIn(vs ...float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldDataQualityScore, vs...))
}

// DataQualityScoreGT applies the GT predicate on the "data_quality_score" field.
func DataQualityScoreGT(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldDataQualityScore, v))
}

// DataQualityScoreGTE applies the GTE predicate on the "data_quality_score" field.
func DataQualityScoreGTE(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldDataQualityScore, v))
}

// DataQualityScoreLT applies the LT predicate on the "data_quality_score" field.
func DataQualityScoreLT(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldDataQualityScore, v))
}

// DataQualityScoreLTE applies the LTE predicate on the "data_quality_score" field.
func DataQualityScoreLTE(v float64) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldDataQualityScore, v))
}

// LastAnalyzedAtEQ applies the EQ predicate on the "last_analyzed_at" field.
func LastAnalyzedAtEQ(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldLastAnalyzedAt, v))
}

// LastAnalyzedAtNEQ applies the NEQ predicate on the "last_analyzed_at" field.
func LastAnalyzedAtNEQ(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldLastAnalyzedAt, v))
}

// LastAnalyzedAtIn applies the In predicate on the "last_analyzed_at" field.
func LastAnalyzedAtIn(vs ...time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldLastAnalyzedAt, vs...))
}

// LastAnalyzedAtNotIn applies the NotIn predicate on the "last_analyzed_at" field.
func LastAnalyzedAtNotIn(vs ...time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldLastAnalyzedAt, vs...))
}

// LastAnalyzedAtGT applies the GT predicate on the "last_analyzed_at" field.
func LastAnalyzedAtGT(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldLastAnalyzedAt, v))
}

// LastAnalyzedAtGTE applies the GTE predicate on the "last_analyzed_at" field.
func LastAnalyzedAtGTE(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldLastAnalyzedAt, v))
}

// LastAnalyzedAtLT applies the LT predicate on the "last_analyzed_at" field.
func LastAnalyzedAtLT(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldLastAnalyzedAt, v))
}

// LastAnalyzedAtLTE applies the LTE predicate on the "last_analyzed_at" field.
func LastAnalyzedAtLTE(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldLastAnalyzedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningProfile) predicate.LearningProfile {
	return predicate.LearningProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningProfile) predicate.LearningProfile {
	return predicate.LearningProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningProfile) predicate.LearningProfile {
	return predicate.LearningProfile(sql.NotPredicates(p))
}
