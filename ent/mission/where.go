// Code generated by ent, DO NOT EDIT.

package mission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStatus, v))
}

// DifficultyRating applies equality check predicate on the "difficulty_rating" field. It's identical to DifficultyRatingEQ.
func DifficultyRating(v int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDifficultyRating, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldUserID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldStatus, v))
}

// DifficultyRatingEQ applies the EQ predicate on the "difficulty_rating" field.
func DifficultyRatingEQ(v int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDifficultyRating, v))
}

// DifficultyRatingNEQ applies the NEQ predicate on the "difficulty_rating" field.
func DifficultyRatingNEQ(v int) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldDifficultyRating, v))
}

// DifficultyRatingIn applies the In predicate on the "difficulty_rating" field.
func DifficultyRatingIn(vs ...int) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingNotIn applies the NotIn predicate on the "difficulty_rating" field.
func DifficultyRatingNotIn(vs ...int) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingGT applies the GT predicate on the "difficulty_rating" field.
func DifficultyRatingGT(v int) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldDifficultyRating, v))
}

// DifficultyRatingGTE applies the GTE predicate on the "difficulty_rating" field.
func DifficultyRatingGTE(v int) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldDifficultyRating, v))
}

// DifficultyRatingLT applies the LT predicate on the "difficulty_rating" field.
func DifficultyRatingLT(v int) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldDifficultyRating, v))
}

// DifficultyRatingLTE applies the LTE predicate on the "difficulty_rating" field.
func DifficultyRatingLTE(v int) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldDifficultyRating, v))
}

// DifficultyRatingIsNil applies the IsNil predicate on the "difficulty_rating" field.
func DifficultyRatingIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldDifficultyRating))
}

// DifficultyRatingNotNil applies the NotNil predicate on the "difficulty_rating" field.
func DifficultyRatingNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldDifficultyRating))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.NotPredicates(p))
}
