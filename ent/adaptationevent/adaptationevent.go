// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptationevent type in the database.
	Label = "adaptation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLoad holds the string denoting the load field in the database.
	FieldLoad = "load"
	// FieldEffectiveLoad holds the string denoting the effective_load field in the database.
	FieldEffectiveLoad = "effective_load"
	// FieldZone holds the string denoting the zone field in the database.
	FieldZone = "zone"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldDifficultyChange holds the string denoting the difficulty_change field in the database.
	FieldDifficultyChange = "difficulty_change"
	// FieldReviewRatio holds the string denoting the review_ratio field in the database.
	FieldReviewRatio = "review_ratio"
	// Table holds the table name of the adaptationevent in the database.
	Table = "adaptation_events"
)

// Columns holds all SQL columns for adaptationevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTimestamp,
	FieldLoad,
	FieldEffectiveLoad,
	FieldZone,
	FieldAction,
	FieldDifficultyChange,
	FieldReviewRatio,
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
	// ZoneValidator is a validator for the "zone" field. It is called by the builders before save.
	ZoneValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
)

// OrderOption defines the ordering options for the AdaptationEvent queries.
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

// ByLoad orders the results by the load field.
func ByLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoad, opts...).ToFunc()
}

// ByEffectiveLoad orders the results by the effective_load field.
func ByEffectiveLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveLoad, opts...).ToFunc()
}

// ByZone orders the results by the zone field.
func ByZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZone, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByDifficultyChange orders the results by the difficulty_change field.
func ByDifficultyChange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyChange, opts...).ToFunc()
}

// ByReviewRatio orders the results by the review_ratio field.
func ByReviewRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewRatio, opts...).ToFunc()
}
