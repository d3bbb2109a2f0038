// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/appliedrecommendation"
	"github.com/abhisek/cadence/ent/schema"
)

// AppliedRecommendation is the model entity for the AppliedRecommendation schema.
type AppliedRecommendation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// RecommendationID holds the value of the "recommendation_id" field.
	RecommendationID string `json:"recommendation_id,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt time.Time `json:"applied_at,omitempty"`
	// Baseline holds the value of the "baseline" field.
	Baseline schema.MetricsSample `json:"baseline,omitempty"`
	// Current holds the value of the "current" field.
	Current *schema.MetricsSample `json:"current,omitempty"`
	// Effectiveness holds the value of the "effectiveness" field.
	Effectiveness *float64 `json:"effectiveness,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt  *time.Time `json:"evaluated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppliedRecommendation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appliedrecommendation.FieldBaseline, appliedrecommendation.FieldCurrent:
			values[i] = new([]byte)
		case appliedrecommendation.FieldEffectiveness:
			values[i] = new(sql.NullFloat64)
		case appliedrecommendation.FieldID, appliedrecommendation.FieldUserID, appliedrecommendation.FieldRecommendationID:
			values[i] = new(sql.NullString)
		case appliedrecommendation.FieldAppliedAt, appliedrecommendation.FieldEvaluatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppliedRecommendation fields.
func (_m *AppliedRecommendation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appliedrecommendation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case appliedrecommendation.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case appliedrecommendation.FieldRecommendationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_id", values[i])
			} else if value.Valid {
				_m.RecommendationID = value.String
			}
		case appliedrecommendation.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = value.Time
			}
		case appliedrecommendation.FieldBaseline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field baseline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Baseline); err != nil {
					return fmt.Errorf("unmarshal field baseline: %w", err)
				}
			}
		case appliedrecommendation.FieldCurrent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Current); err != nil {
					return fmt.Errorf("unmarshal field current: %w", err)
				}
			}
		case appliedrecommendation.FieldEffectiveness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field effectiveness", values[i])
			} else if value.Valid {
				_m.Effectiveness = new(float64)
				*_m.Effectiveness = value.Float64
			}
		case appliedrecommendation.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = new(time.Time)
				*_m.EvaluatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppliedRecommendation.
// This includes values selected through modifiers, order, etc.
func (_m *AppliedRecommendation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppliedRecommendation.
// Note that you need to call AppliedRecommendation.Unwrap() before calling this method if this AppliedRecommendation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppliedRecommendation) Update() *AppliedRecommendationUpdateOne {
	return NewAppliedRecommendationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppliedRecommendation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppliedRecommendation) Unwrap() *AppliedRecommendation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AppliedRecommendation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppliedRecommendation) String() string {
	var builder strings.Builder
	builder.WriteString("AppliedRecommendation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("recommendation_id=")
	builder.WriteString(_m.RecommendationID)
	builder.WriteString(", ")
	builder.WriteString("applied_at=")
	builder.WriteString(_m.AppliedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("baseline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Baseline))
	builder.WriteString(", ")
	builder.WriteString("current=")
	builder.WriteString(fmt.Sprintf("%v", _m.Current))
	builder.WriteString(", ")
	if v := _m.Effectiveness; v != nil {
		builder.WriteString("effectiveness=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EvaluatedAt; v != nil {
		builder.WriteString("evaluated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AppliedRecommendations is a parsable slice of AppliedRecommendation.
type AppliedRecommendations []*AppliedRecommendation
