// Code generated by ent, DO NOT EDIT.

package recommendation

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recommendation type in the database.
	Label = "recommendation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRecType holds the string denoting the rec_type field in the database.
	FieldRecType = "rec_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldActionableText holds the string denoting the actionable_text field in the database.
	FieldActionableText = "actionable_text"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEstimatedImpact holds the string denoting the estimated_impact field in the database.
	FieldEstimatedImpact = "estimated_impact"
	// FieldEase holds the string denoting the ease field in the database.
	FieldEase = "ease"
	// FieldUserReadiness holds the string denoting the user_readiness field in the database.
	FieldUserReadiness = "user_readiness"
	// FieldPriorityScore holds the string denoting the priority_score field in the database.
	FieldPriorityScore = "priority_score"
	// FieldSourcePatternIds holds the string denoting the source_pattern_ids field in the database.
	FieldSourcePatternIds = "source_pattern_ids"
	// FieldSourceInsightIds holds the string denoting the source_insight_ids field in the database.
	FieldSourceInsightIds = "source_insight_ids"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// FieldDismissedAt holds the string denoting the dismissed_at field in the database.
	FieldDismissedAt = "dismissed_at"
	// Table holds the table name of the recommendation in the database.
	Table = "recommendations"
)

// Columns holds all SQL columns for recommendation fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldRecType,
	FieldTitle,
	FieldDescription,
	FieldActionableText,
	FieldConfidence,
	FieldEstimatedImpact,
	FieldEase,
	FieldUserReadiness,
	FieldPriorityScore,
	FieldSourcePatternIds,
	FieldSourceInsightIds,
	FieldCreatedAt,
	FieldAppliedAt,
	FieldDismissedAt,
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
	// RecTypeValidator is a validator for the "rec_type" field. It is called by the builders before save.
	RecTypeValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Recommendation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRecType orders the results by the rec_type field.
func ByRecType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByActionableText orders the results by the actionable_text field.
func ByActionableText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionableText, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEstimatedImpact orders the results by the estimated_impact field.
func ByEstimatedImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedImpact, opts...).ToFunc()
}

// ByEase orders the results by the ease field.
func ByEase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEase, opts...).ToFunc()
}

// ByUserReadiness orders the results by the user_readiness field.
func ByUserReadiness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserReadiness, opts...).ToFunc()
}

// ByPriorityScore orders the results by the priority_score field.
func ByPriorityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}

// ByDismissedAt orders the results by the dismissed_at field.
func ByDismissedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDismissedAt, opts...).ToFunc()
}
