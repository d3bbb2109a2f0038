// Code generated by ent, DO NOT EDIT.

package learningprofile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningprofile type in the database.
	Label = "learning_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPreferredWindows holds the string denoting the preferred_windows field in the database.
	FieldPreferredWindows = "preferred_windows"
	// FieldOptimalDurationMin holds the string denoting the optimal_duration_min field in the database.
	FieldOptimalDurationMin = "optimal_duration_min"
	// FieldContentPreferences holds the string denoting the content_preferences field in the database.
	FieldContentPreferences = "content_preferences"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldStabilityDays holds the string denoting the stability_days field in the database.
	FieldStabilityDays = "stability_days"
	// FieldHalfLifeDays holds the string denoting the half_life_days field in the database.
	FieldHalfLifeDays = "half_life_days"
	// FieldDataQualityScore holds the string denoting the data_quality_score field in the database.
	FieldDataQualityScore = "data_quality_score"
	// FieldLastAnalyzedAt holds the string denoting the last_analyzed_at field in the database.
	FieldLastAnalyzedAt = "last_analyzed_at"
	// Table holds the table name of the learningprofile in the database.
	Table = "learning_profiles"
)

// Columns holds all SQL columns for learningprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPreferredWindows,
	FieldOptimalDurationMin,
	FieldContentPreferences,
	FieldLearningStyle,
	FieldStabilityDays,
	FieldHalfLifeDays,
	FieldDataQualityScore,
	FieldLastAnalyzedAt,
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
	// DefaultOptimalDurationMin holds the default value on creation for the "optimal_duration_min" field.
	DefaultOptimalDurationMin int
	// DefaultStabilityDays holds the default value on creation for the "stability_days" field.
	DefaultStabilityDays float64
	// DefaultHalfLifeDays holds the default value on creation for the "half_life_days" field.
	DefaultHalfLifeDays float64
	// DefaultDataQualityScore holds the default value on creation for the "data_quality_score" field.
	DefaultDataQualityScore float64
)

// OrderOption defines the ordering options for the LearningProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOptimalDurationMin orders the results by the optimal_duration_min field.
func ByOptimalDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimalDurationMin, opts...).ToFunc()
}

// ByStabilityDays orders the results by the stability_days field.
func ByStabilityDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStabilityDays, opts...).ToFunc()
}

// ByHalfLifeDays orders the results by the half_life_days field.
func ByHalfLifeDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHalfLifeDays, opts...).ToFunc()
}

// ByDataQualityScore orders the results by the data_quality_score field.
func ByDataQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataQualityScore, opts...).ToFunc()
}

// ByLastAnalyzedAt orders the results by the last_analyzed_at field.
func ByLastAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnalyzedAt, opts...).ToFunc()
}
