// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/burnoutassessment"
	"github.com/abhisek/cadence/ent/schema"
)

// BurnoutAssessment is the model entity for the BurnoutAssessment schema.
type BurnoutAssessment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// 0-100
	RiskScore float64 `json:"risk_score,omitempty"`
	// LOW, MEDIUM, HIGH, or CRITICAL
	RiskLevel string `json:"risk_level,omitempty"`
	// Factors holds the value of the "factors" field.
	Factors []schema.FactorSample `json:"factors,omitempty"`
	// Signals holds the value of the "signals" field.
	Signals []schema.SignalSample `json:"signals,omitempty"`
	// Intervention holds the value of the "intervention" field.
	Intervention *schema.InterventionSample `json:"intervention,omitempty"`
	// AssessmentDate holds the value of the "assessment_date" field.
	AssessmentDate time.Time `json:"assessment_date,omitempty"`
	// 0-1
	Confidence   float64 `json:"confidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BurnoutAssessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case burnoutassessment.FieldFactors, burnoutassessment.FieldSignals, burnoutassessment.FieldIntervention:
			values[i] = new([]byte)
		case burnoutassessment.FieldRiskScore, burnoutassessment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case burnoutassessment.FieldID, burnoutassessment.FieldUserID, burnoutassessment.FieldRiskLevel:
			values[i] = new(sql.NullString)
		case burnoutassessment.FieldAssessmentDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BurnoutAssessment fields.
func (_m *BurnoutAssessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case burnoutassessment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case burnoutassessment.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case burnoutassessment.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case burnoutassessment.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case burnoutassessment.FieldFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Factors); err != nil {
					return fmt.Errorf("unmarshal field factors: %w", err)
				}
			}
		case burnoutassessment.FieldSignals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Signals); err != nil {
					return fmt.Errorf("unmarshal field signals: %w", err)
				}
			}
		case burnoutassessment.FieldIntervention:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field intervention", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Intervention); err != nil {
					return fmt.Errorf("unmarshal field intervention: %w", err)
				}
			}
		case burnoutassessment.FieldAssessmentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_date", values[i])
			} else if value.Valid {
				_m.AssessmentDate = value.Time
			}
		case burnoutassessment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BurnoutAssessment.
// This includes values selected through modifiers, order, etc.
func (_m *BurnoutAssessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BurnoutAssessment.
// Note that you need to call BurnoutAssessment.Unwrap() before calling this method if this BurnoutAssessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BurnoutAssessment) Update() *BurnoutAssessmentUpdateOne {
	return NewBurnoutAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BurnoutAssessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BurnoutAssessment) Unwrap() *BurnoutAssessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BurnoutAssessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BurnoutAssessment) String() string {
	var builder strings.Builder
	builder.WriteString("BurnoutAssessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Factors))
	builder.WriteString(", ")
	builder.WriteString("signals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Signals))
	builder.WriteString(", ")
	builder.WriteString("intervention=")
	builder.WriteString(fmt.Sprintf("%v", _m.Intervention))
	builder.WriteString(", ")
	builder.WriteString("assessment_date=")
	builder.WriteString(_m.AssessmentDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// BurnoutAssessments is a parsable slice of BurnoutAssessment.
type BurnoutAssessments []*BurnoutAssessment
