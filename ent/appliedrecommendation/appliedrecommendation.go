// Code generated by ent, DO NOT EDIT.

package appliedrecommendation

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the appliedrecommendation type in the database.
	Label = "applied_recommendation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRecommendationID holds the string denoting the recommendation_id field in the database.
	FieldRecommendationID = "recommendation_id"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// FieldBaseline holds the string denoting the baseline field in the database.
	FieldBaseline = "baseline"
	// FieldCurrent holds the string denoting the current field in the database.
	FieldCurrent = "current"
	// FieldEffectiveness holds the string denoting the effectiveness field in the database.
	FieldEffectiveness = "effectiveness"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// Table holds the table name of the appliedrecommendation in the database.
	Table = "applied_recommendations"
)

// Columns holds all SQL columns for appliedrecommendation fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldRecommendationID,
	FieldAppliedAt,
	FieldBaseline,
	FieldCurrent,
	FieldEffectiveness,
	FieldEvaluatedAt,
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
	// RecommendationIDValidator is a validator for the "recommendation_id" field. It is called by the builders before save.
	RecommendationIDValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the AppliedRecommendation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRecommendationID orders the results by the recommendation_id field.
func ByRecommendationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationID, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}

// ByEffectiveness orders the results by the effectiveness field.
func ByEffectiveness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveness, opts...).ToFunc()
}

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}
