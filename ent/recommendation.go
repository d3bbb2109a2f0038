// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/recommendation"
)

// Recommendation is the model entity for the Recommendation schema.
type Recommendation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// RecType holds the value of the "rec_type" field.
	RecType string `json:"rec_type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ActionableText holds the value of the "actionable_text" field.
	ActionableText string `json:"actionable_text,omitempty"`
	// 0-1, inherited from the source
	Confidence float64 `json:"confidence,omitempty"`
	// 0-1
	EstimatedImpact float64 `json:"estimated_impact,omitempty"`
	// 0-1, ease of implementation
	Ease float64 `json:"ease,omitempty"`
	// 0-1
	UserReadiness float64 `json:"user_readiness,omitempty"`
	// PriorityScore holds the value of the "priority_score" field.
	PriorityScore float64 `json:"priority_score,omitempty"`
	// SourcePatternIds holds the value of the "source_pattern_ids" field.
	SourcePatternIds []string `json:"source_pattern_ids,omitempty"`
	// SourceInsightIds holds the value of the "source_insight_ids" field.
	SourceInsightIds []string `json:"source_insight_ids,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	// DismissedAt holds the value of the "dismissed_at" field.
	DismissedAt  *time.Time `json:"dismissed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recommendation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendation.FieldSourcePatternIds, recommendation.FieldSourceInsightIds:
			values[i] = new([]byte)
		case recommendation.FieldConfidence, recommendation.FieldEstimatedImpact, recommendation.FieldEase, recommendation.FieldUserReadiness, recommendation.FieldPriorityScore:
			values[i] = new(sql.NullFloat64)
		case recommendation.FieldID, recommendation.FieldUserID, recommendation.FieldRecType, recommendation.FieldTitle, recommendation.FieldDescription, recommendation.FieldActionableText:
			values[i] = new(sql.NullString)
		case recommendation.FieldCreatedAt, recommendation.FieldAppliedAt, recommendation.FieldDismissedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recommendation fields.
func (_m *Recommendation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recommendation.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case recommendation.FieldRecType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rec_type", values[i])
			} else if value.Valid {
				_m.RecType = value.String
			}
		case recommendation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case recommendation.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case recommendation.FieldActionableText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actionable_text", values[i])
			} else if value.Valid {
				_m.ActionableText = value.String
			}
		case recommendation.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case recommendation.FieldEstimatedImpact:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_impact", values[i])
			} else if value.Valid {
				_m.EstimatedImpact = value.Float64
			}
		case recommendation.FieldEase:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease", values[i])
			} else if value.Valid {
				_m.Ease = value.Float64
			}
		case recommendation.FieldUserReadiness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field user_readiness", values[i])
			} else if value.Valid {
				_m.UserReadiness = value.Float64
			}
		case recommendation.FieldPriorityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_score", values[i])
			} else if value.Valid {
				_m.PriorityScore = value.Float64
			}
		case recommendation.FieldSourcePatternIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_pattern_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourcePatternIds); err != nil {
					return fmt.Errorf("unmarshal field source_pattern_ids: %w", err)
				}
			}
		case recommendation.FieldSourceInsightIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_insight_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceInsightIds); err != nil {
					return fmt.Errorf("unmarshal field source_insight_ids: %w", err)
				}
			}
		case recommendation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recommendation.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = new(time.Time)
				*_m.AppliedAt = value.Time
			}
		case recommendation.FieldDismissedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dismissed_at", values[i])
			} else if value.Valid {
				_m.DismissedAt = new(time.Time)
				*_m.DismissedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recommendation.
// This includes values selected through modifiers, order, etc.
func (_m *Recommendation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Recommendation.
// Note that you need to call Recommendation.Unwrap() before calling this method if this Recommendation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recommendation) Update() *RecommendationUpdateOne {
	return NewRecommendationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recommendation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recommendation) Unwrap() *Recommendation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recommendation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recommendation) String() string {
	var builder strings.Builder
	builder.WriteString("Recommendation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("rec_type=")
	builder.WriteString(_m.RecType)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("actionable_text=")
	builder.WriteString(_m.ActionableText)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("estimated_impact=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedImpact))
	builder.WriteString(", ")
	builder.WriteString("ease=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ease))
	builder.WriteString(", ")
	builder.WriteString("user_readiness=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserReadiness))
	builder.WriteString(", ")
	builder.WriteString("priority_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityScore))
	builder.WriteString(", ")
	builder.WriteString("source_pattern_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourcePatternIds))
	builder.WriteString(", ")
	builder.WriteString("source_insight_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceInsightIds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AppliedAt; v != nil {
		builder.WriteString("applied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DismissedAt; v != nil {
		builder.WriteString("dismissed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Recommendations is a parsable slice of Recommendation.
type Recommendations []*Recommendation
