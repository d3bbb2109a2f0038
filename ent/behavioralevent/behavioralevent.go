// Code generated by ent, DO NOT EDIT.

package behavioralevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the behavioralevent type in the database.
	Label = "behavioral_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldEngagedMs holds the string denoting the engaged_ms field in the database.
	FieldEngagedMs = "engaged_ms"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldSessionPerformance holds the string denoting the session_performance field in the database.
	FieldSessionPerformance = "session_performance"
	// Table holds the table name of the behavioralevent in the database.
	Table = "behavioral_events"
)

// Columns holds all SQL columns for behavioralevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTimestamp,
	FieldEventType,
	FieldContentType,
	FieldEngagedMs,
	FieldScore,
	FieldCompleted,
	FieldSessionPerformance,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	EventTypeValidator func(string) error
	// DefaultEngagedMs holds the default value on creation for the "engaged_ms" field.
	DefaultEngagedMs int64
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultSessionPerformance holds the default value on creation for the "session_performance" field.
	DefaultSessionPerformance float64
)

// OrderOption defines the ordering options for the BehavioralEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByEngagedMs orders the results by the engaged_ms field.
func ByEngagedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagedMs, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// BySessionPerformance orders the results by the session_performance field.
func BySessionPerformance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionPerformance, opts...).ToFunc()
}
