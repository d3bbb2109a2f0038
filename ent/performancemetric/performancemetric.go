// Code generated by ent, DO NOT EDIT.

package performancemetric

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the performancemetric type in the database.
	Label = "performance_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldRetentionScore holds the string denoting the retention_score field in the database.
	FieldRetentionScore = "retention_score"
	// Table holds the table name of the performancemetric in the database.
	Table = "performance_metrics"
)

// Columns holds all SQL columns for performancemetric fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDate,
	FieldRetentionScore,
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
)

// OrderOption defines the ordering options for the PerformanceMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByRetentionScore orders the results by the retention_score field.
func ByRetentionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetentionScore, opts...).ToFunc()
}
