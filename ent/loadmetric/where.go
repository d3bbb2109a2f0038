// Code generated by ent, DO NOT EDIT.

package loadmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldTimestamp, v))
}

// LoadScore applies equality check predicate on the "load_score" field. It's identical to LoadScoreEQ.
func LoadScore(v float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldLoadScore, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLTE(FieldTimestamp, v))
}

// LoadScoreEQ applies the EQ predicate on the "load_score" field.
func LoadScoreEQ(v float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldEQ(FieldLoadScore, v))
}

// LoadScoreNEQ applies the NEQ predicate on the "load_score" field.
func LoadScoreNEQ(v float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNEQ(FieldLoadScore, v))
}

// LoadScoreIn applies the In predicate on the "load_score" field.
func LoadScoreIn(vs ...float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldIn(FieldLoadScore, vs...))
}

// LoadScoreNotIn applies the NotIn predicate on the "load_score" field.
func LoadScoreNotIn(vs ...float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldNotIn(FieldLoadScore, vs...))
}

// LoadScoreGT applies the GT predicate on the "load_score" field.
func LoadScoreGT(v float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGT(FieldLoadScore, v))
}

// LoadScoreGTE applies the GTE predicate on the "load_score" field.
func LoadScoreGTE(v float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldGTE(FieldLoadScore, v))
}

// LoadScoreLT applies the LT predicate on the "load_score" field.
func LoadScoreLT(v float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLT(FieldLoadScore, v))
}

// LoadScoreLTE applies the LTE predicate on the "load_score" field.
func LoadScoreLTE(v float64) predicate.LoadMetric {
	return predicate.LoadMetric(sql.FieldLTE(FieldLoadScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LoadMetric) predicate.LoadMetric {
	return predicate.LoadMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LoadMetric) predicate.LoadMetric {
	return predicate.LoadMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LoadMetric) predicate.LoadMetric {
	return predicate.LoadMetric(sql.NotPredicates(p))
}
