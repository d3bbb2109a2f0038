// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Load applies equality check predicate on the "load" field. It's identical to LoadEQ.
func Load(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldLoad, v))
}

// EffectiveLoad applies equality check predicate on the "effective_load" field. It's identical to EffectiveLoadEQ.
func EffectiveLoad(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldEffectiveLoad, v))
}

// Zone applies equality check predicate on the "zone" field. It's identical to ZoneEQ.
func Zone(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldZone, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAction, v))
}

// DifficultyChange applies equality check predicate on the "difficulty_change" field. It's identical to DifficultyChangeEQ.
func DifficultyChange(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldDifficultyChange, v))
}

// ReviewRatio applies equality check predicate on the "review_ratio" field. It's identical to ReviewRatioEQ.
func ReviewRatio(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReviewRatio, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LoadEQ applies the EQ predicate on the "load" field.
func LoadEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldLoad, v))
}

// LoadNEQ applies the NEQ predicate on the "load" field.
func LoadNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldLoad, v))
}

// LoadIn applies the In predicate on the "load" field.
func LoadIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldLoad, vs...))
}

// LoadNotIn applies the NotIn predicate on the "load" field.
func LoadNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldLoad, vs...))
}

// LoadGT applies the GT predicate on the "load" field.
func LoadGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldLoad, v))
}

// LoadGTE applies the GTE predicate on the "load" field.
func LoadGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldLoad, v))
}

// LoadLT applies the LT predicate on the "load" field.
func LoadLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldLoad, v))
}

// LoadLTE applies the LTE predicate on the "load" field.
func LoadLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldLoad, v))
}

// EffectiveLoadEQ applies the EQ predicate on the "effective_load" field.
func EffectiveLoadEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldEffectiveLoad, v))
}

// EffectiveLoadNEQ applies the NEQ predicate on the "effective_load" field.
func EffectiveLoadNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldEffectiveLoad, v))
}

// EffectiveLoadIn applies the In predicate on the "effective_load" field.
func EffectiveLoadIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldEffectiveLoad, vs...))
}

// EffectiveLoadNotIn applies the NotIn predicate on the "effective_load" field.
func EffectiveLoadNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldEffectiveLoad, vs...))
}

// EffectiveLoadGT applies the GT predicate on the "effective_load" field.
func EffectiveLoadGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldEffectiveLoad, v))
}

// EffectiveLoadGTE applies the GTE predicate on the "effective_load" field.
func EffectiveLoadGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldEffectiveLoad, v))
}

// EffectiveLoadLT applies the LT predicate on the "effective_load" field.
func EffectiveLoadLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldEffectiveLoad, v))
}

// EffectiveLoadLTE applies the LTE predicate on the "effective_load" field.
func EffectiveLoadLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldEffectiveLoad, v))
}

// ZoneEQ applies the EQ predicate on the "zone" field.
func ZoneEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldZone, v))
}

// ZoneNEQ applies the NEQ predicate on the "zone" field.
func ZoneNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldZone, v))
}

// ZoneIn applies the In predicate on the "zone" field.
func ZoneIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldZone, vs...))
}

// ZoneNotIn applies the NotIn predicate on the "zone" field.
func ZoneNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldZone, vs...))
}

// ZoneGT applies the GT predicate on the "zone" field.
func ZoneGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldZone, v))
}

// ZoneGTE applies the GTE predicate on the "zone" field.
func ZoneGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldZone, v))
}

// ZoneLT applies the LT predicate on the "zone" field.
func ZoneLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldZone, v))
}

// ZoneLTE applies the LTE predicate on the "zone" field.
func ZoneLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldZone, v))
}

// ZoneContains applies the Contains predicate on the "zone" field.
func ZoneContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldZone, v))
}

// ZoneHasPrefix applies the HasPrefix predicate on the "zone" field.
func ZoneHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldZone, v))
}

// ZoneHasSuffix applies the HasSuffix predicate on the "zone" field.
func ZoneHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldZone, v))
}

// ZoneEqualFold applies the EqualFold predicate on the "zone" field.
func ZoneEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldZone, v))
}

// ZoneContainsFold applies the ContainsFold predicate on the "zone" field.
func ZoneContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldZone, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldAction, v))
}

// DifficultyChangeEQ applies the EQ predicate on the "difficulty_change" field.
func DifficultyChangeEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldDifficultyChange, v))
}

// DifficultyChangeNEQ applies the NEQ predicate on the "difficulty_change" field.
func DifficultyChangeNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldDifficultyChange, v))
}

// DifficultyChangeIn applies the In predicate on the "difficulty_change" field.
func DifficultyChangeIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldDifficultyChange, vs...))
}

// DifficultyChangeNotIn applies the NotIn predicate on the "difficulty_change" field.
func DifficultyChangeNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldDifficultyChange, vs...))
}

// DifficultyChangeGT applies the GT predicate on the "difficulty_change" field.
func DifficultyChangeGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldDifficultyChange, v))
}

// DifficultyChangeGTE applies the GTE predicate on the "difficulty_change" field.
func DifficultyChangeGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldDifficultyChange, v))
}

// DifficultyChangeLT applies the LT predicate on the "difficulty_change" field.
func DifficultyChangeLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldDifficultyChange, v))
}

// DifficultyChangeLTE applies the LTE predicate on the "difficulty_change" field.
func DifficultyChangeLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldDifficultyChange, v))
}

// ReviewRatioEQ applies the EQ predicate on the "review_ratio" field.
func ReviewRatioEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReviewRatio, v))
}

// ReviewRatioNEQ applies the NEQ predicate on the "review_ratio" field.
func ReviewRatioNEQ(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldReviewRatio, v))
}

// ReviewRatioIn applies the In predicate on the "review_ratio" field.
func ReviewRatioIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldReviewRatio, vs...))
}

// ReviewRatioNotIn applies the NotIn predicate on the "review_ratio" field.
func ReviewRatioNotIn(vs ...float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldReviewRatio, vs...))
}

// ReviewRatioGT applies the GT predicate on the "review_ratio" field.
func ReviewRatioGT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldReviewRatio, v))
}

// ReviewRatioGTE applies the GTE predicate on the "review_ratio" field.
func ReviewRatioGTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldReviewRatio, v))
}

// ReviewRatioLT applies the LT predicate on the "review_ratio" field.
func ReviewRatioLT(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldReviewRatio, v))
}

// ReviewRatioLTE applies the LTE predicate on the "review_ratio" field.
func ReviewRatioLTE(v float64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldReviewRatio, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.NotPredicates(p))
}
