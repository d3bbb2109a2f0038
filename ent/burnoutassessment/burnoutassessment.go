// Code generated by ent, DO NOT EDIT.

package burnoutassessment

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the burnoutassessment type in the database.
	Label = "burnout_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldFactors holds the string denoting the factors field in the database.
	FieldFactors = "factors"
	// FieldSignals holds the string denoting the signals field in the database.
	FieldSignals = "signals"
	// FieldIntervention holds the string denoting the intervention field in the database.
	FieldIntervention = "intervention"
	// FieldAssessmentDate holds the string denoting the assessment_date field in the database.
	FieldAssessmentDate = "assessment_date"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// Table holds the table name of the burnoutassessment in the database.
	Table = "burnout_assessments"
)

// Columns holds all SQL columns for burnoutassessment fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldRiskScore,
	FieldRiskLevel,
	FieldFactors,
	FieldSignals,
	FieldIntervention,
	FieldAssessmentDate,
	FieldConfidence,
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
	// RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	RiskLevelValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the BurnoutAssessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByAssessmentDate orders the results by the assessment_date field.
func ByAssessmentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentDate, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}
