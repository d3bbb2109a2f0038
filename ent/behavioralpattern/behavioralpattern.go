// Code generated by ent, DO NOT EDIT.

package behavioralpattern

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the behavioralpattern type in the database.
	Label = "behavioral_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldPatternName holds the string denoting the pattern_name field in the database.
	FieldPatternName = "pattern_name"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldOccurrenceCount holds the string denoting the occurrence_count field in the database.
	FieldOccurrenceCount = "occurrence_count"
	// FieldFirstDetectedAt holds the string denoting the first_detected_at field in the database.
	FieldFirstDetectedAt = "first_detected_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldConsecutiveNonOccurrences holds the string denoting the consecutive_non_occurrences field in the database.
	FieldConsecutiveNonOccurrences = "consecutive_non_occurrences"
	// Table holds the table name of the behavioralpattern in the database.
	Table = "behavioral_patterns"
)

// Columns holds all SQL columns for behavioralpattern fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPatternType,
	FieldPatternName,
	FieldConfidence,
	FieldData,
	FieldEvidence,
	FieldOccurrenceCount,
	FieldFirstDetectedAt,
	FieldLastSeenAt,
	FieldConsecutiveNonOccurrences,
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
	// PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	PatternTypeValidator func(string) error
	// PatternNameValidator is a validator for the "pattern_name" field. It is called by the builders before save.
	PatternNameValidator func(string) error
	// DefaultOccurrenceCount holds the default value on creation for the "occurrence_count" field.
	DefaultOccurrenceCount int
	// DefaultConsecutiveNonOccurrences holds the default value on creation for the "consecutive_non_occurrences" field.
	DefaultConsecutiveNonOccurrences int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the BehavioralPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByPatternName orders the results by the pattern_name field.
func ByPatternName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternName, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByOccurrenceCount orders the results by the occurrence_count field.
func ByOccurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrenceCount, opts...).ToFunc()
}

// ByFirstDetectedAt orders the results by the first_detected_at field.
func ByFirstDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDetectedAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByConsecutiveNonOccurrences orders the results by the consecutive_non_occurrences field.
func ByConsecutiveNonOccurrences(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveNonOccurrences, opts...).ToFunc()
}
