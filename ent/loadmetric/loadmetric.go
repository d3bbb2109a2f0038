// Code generated by ent, DO NOT EDIT.

package loadmetric

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the loadmetric type in the database.
	Label = "load_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLoadScore holds the string denoting the load_score field in the database.
	FieldLoadScore = "load_score"
	// Table holds the table name of the loadmetric in the database.
	Table = "load_metrics"
)

// Columns holds all SQL columns for loadmetric fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTimestamp,
	FieldLoadScore,
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

// OrderOption defines the ordering options for the LoadMetric queries.
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

// ByLoadScore orders the results by the load_score field.
func ByLoadScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadScore, opts...).ToFunc()
}
