// Code generated by ent, DO NOT EDIT.

package behavioralevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldEventType, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldContentType, v))
}

// EngagedMs applies equality check predicate on the "engaged_ms" field. It's identical to EngagedMsEQ.
func EngagedMs(v int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldEngagedMs, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldScore, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldCompleted, v))
}

// SessionPerformance applies equality check predicate on the "session_performance" field. It's identical to SessionPerformanceEQ.
func SessionPerformance(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldSessionPerformance, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldContainsFold(FieldEventType, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeIsNil applies the IsNil predicate on the "content_type" field.
func ContentTypeIsNil() predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIsNull(FieldContentType))
}

// ContentTypeNotNil applies the NotNil predicate on the "content_type" field.
func ContentTypeNotNil() predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotNull(FieldContentType))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldContainsFold(FieldContentType, v))
}

// EngagedMsEQ applies the EQ predicate on the "engaged_ms" field.
func EngagedMsEQ(v int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldEngagedMs, v))
}

// EngagedMsNEQ applies the NEQ predicate on the "engaged_ms" field.
func EngagedMsNEQ(v int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldEngagedMs, v))
}

// EngagedMsIn applies the In predicate on the "engaged_ms" field.
func EngagedMsIn(vs ...int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldEngagedMs, vs...))
}

// EngagedMsNotIn applies the NotIn predicate on the "engaged_ms" field.
func EngagedMsNotIn(vs ...int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldEngagedMs, vs...))
}

// EngagedMsGT applies the GT predicate on the "engaged_ms" field.
func EngagedMsGT(v int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldEngagedMs, v))
}

// EngagedMsGTE applies the GTE predicate on the "engaged_ms" field.
func EngagedMsGTE(v int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldEngagedMs, v))
}

// EngagedMsLT applies the LT predicate on the "engaged_ms" field.
func EngagedMsLT(v int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldEngagedMs, v))
}

// EngagedMsLTE applies the LTE predicate on the "engaged_ms" field.
func EngagedMsLTE(v int64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldEngagedMs, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldScore, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldCompleted, v))
}

// SessionPerformanceEQ applies the EQ predicate on the "session_performance" field.
func SessionPerformanceEQ(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldEQ(FieldSessionPerformance, v))
}

// SessionPerformanceNEQ applies the NEQ predicate on the "session_performance" field.
func SessionPerformanceNEQ(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNEQ(FieldSessionPerformance, v))
}

// SessionPerformanceIn applies the In predicate on the "session_performance" field.
func SessionPerformanceIn(vs ...float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldIn(FieldSessionPerformance, vs...))
}

// SessionPerformanceNotIn applies the NotIn predicate on the "session_performance" field.
func SessionPerformanceNotIn(vs ...float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldNotIn(FieldSessionPerformance, vs...))
}

// SessionPerformanceGT applies the GT predicate on the "session_performance" field.
func SessionPerformanceGT(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGT(FieldSessionPerformance, v))
}

// SessionPerformanceGTE applies the GTE predicate on the "session_performance" field.
func SessionPerformanceGTE(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldGTE(FieldSessionPerformance, v))
}

// SessionPerformanceLT applies the LT predicate on the "session_performance" field.
func SessionPerformanceLT(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLT(FieldSessionPerformance, v))
}

// SessionPerformanceLTE applies the LTE predicate on the "session_performance" field.
func SessionPerformanceLTE(v float64) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.FieldLTE(FieldSessionPerformance, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BehavioralEvent) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BehavioralEvent) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BehavioralEvent) predicate.BehavioralEvent {
	return predicate.BehavioralEvent(sql.NotPredicates(p))
}
