// Code generated by ent, DO NOT EDIT.

package performancemetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldDate, v))
}

// RetentionScore applies equality check predicate on the "retention_score" field. It's identical to RetentionScoreEQ.
func RetentionScore(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldRetentionScore, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContainsFold(FieldUserID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldDate, v))
}

// RetentionScoreEQ applies the EQ predicate on the "retention_score" field.
func RetentionScoreEQ(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldRetentionScore, v))
}

// RetentionScoreNEQ applies the NEQ predicate on the "retention_score" field.
func RetentionScoreNEQ(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldRetentionScore, v))
}

// RetentionScoreIn applies the In predicate on the "retention_score" field.
func RetentionScoreIn(vs ...float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldRetentionScore, vs...))
}

// RetentionScoreNotIn applies the NotIn predicate on the "retention_score" field.
func RetentionScoreNotIn(vs ...float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldRetentionScore, vs...))
}

// RetentionScoreGT applies the GT predicate on the "retention_score" field.
func RetentionScoreGT(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldRetentionScore, v))
}

// RetentionScoreGTE applies the GTE predicate on the "retention_score" field.
func RetentionScoreGTE(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldRetentionScore, v))
}

// RetentionScoreLT applies the LT predicate on the "retention_score" field.
func RetentionScoreLT(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldRetentionScore, v))
}

// RetentionScoreLTE applies the LTE predicate on the "retention_score" field.
func RetentionScoreLTE(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldRetentionScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PerformanceMetric) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PerformanceMetric) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PerformanceMetric) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.NotPredicates(p))
}
