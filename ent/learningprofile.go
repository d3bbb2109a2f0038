// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/learningprofile"
	"github.com/abhisek/cadence/ent/schema"
)

// LearningProfile is the model entity for the LearningProfile schema.
type LearningProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PreferredWindows holds the value of the "preferred_windows" field.
	PreferredWindows []schema.WindowSample `json:"preferred_windows,omitempty"`
	// OptimalDurationMin holds the value of the "optimal_duration_min" field.
	OptimalDurationMin int `json:"optimal_duration_min,omitempty"`
	// ContentPreferences holds the value of the "content_preferences" field.
	ContentPreferences map[string]float64 `json:"content_preferences,omitempty"`
	// LearningStyle holds the value of the "learning_style" field.
	LearningStyle *schema.StyleSample `json:"learning_style,omitempty"`
	// StabilityDays holds the value of the "stability_days" field.
	StabilityDays float64 `json:"stability_days,omitempty"`
	// HalfLifeDays holds the value of the "half_life_days" field.
	HalfLifeDays float64 `json:"half_life_days,omitempty"`
	// 0-1
	DataQualityScore float64 `json:"data_quality_score,omitempty"`
	// LastAnalyzedAt holds the value of the "last_analyzed_at" field.
	LastAnalyzedAt time.Time `json:"last_analyzed_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningprofile.FieldPreferredWindows, learningprofile.FieldContentPreferences, learningprofile.FieldLearningStyle:
			values[i] = new([]byte)
		case learningprofile.FieldStabilityDays, learningprofile.FieldHalfLifeDays, learningprofile.FieldDataQualityScore:
			values[i] = new(sql.NullFloat64)
		case learningprofile.FieldID, learningprofile.FieldOptimalDurationMin:
			values[i] = new(sql.NullInt64)
		case learningprofile.FieldUserID:
			values[i] = new(sql.NullString)
		case learningprofile.FieldLastAnalyzedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningProfile fields.
func (_m *LearningProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningprofile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningprofile.FieldPreferredWindows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_windows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredWindows); err != nil {
					return fmt.Errorf("unmarshal field preferred_windows: %w", err)
				}
			}
		case learningprofile.FieldOptimalDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field optimal_duration_min", values[i])
			} else if value.Valid {
				_m.OptimalDurationMin = int(value.Int64)
			}
		case learningprofile.FieldContentPreferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_preferences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentPreferences); err != nil {
					return fmt.Errorf("unmarshal field content_preferences: %w", err)
				}
			}
		case learningprofile.FieldLearningStyle:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_style", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearningStyle); err != nil {
					return fmt.Errorf("unmarshal field learning_style: %w", err)
				}
			}
		case learningprofile.FieldStabilityDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability_days", values[i])
			} else if value.Valid {
				_m.StabilityDays = value.Float64
			}
		case learningprofile.FieldHalfLifeDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field half_life_days", values[i])
			} else if value.Valid {
				_m.HalfLifeDays = value.Float64
			}
		case learningprofile.FieldDataQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field data_quality_score", values[i])
			} else if value.Valid {
				_m.DataQualityScore = value.Float64
			}
		case learningprofile.FieldLastAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_analyzed_at", values[i])
			} else if value.Valid {
				_m.LastAnalyzedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningProfile.
// This includes values selected through modifiers, order, etc.
func (_m *LearningProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningProfile.
// Note that you need to call LearningProfile.Unwrap() before calling this method if this LearningProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningProfile) Update() *LearningProfileUpdateOne {
	return NewLearningProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningProfile) Unwrap() *LearningProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningProfile) String() string {
	var builder strings.Builder
	builder.WriteString("LearningProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("preferred_windows=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredWindows))
	builder.WriteString(", ")
	builder.WriteString("optimal_duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptimalDurationMin))
	builder.WriteString(", ")
	builder.WriteString("content_preferences=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentPreferences))
	builder.WriteString(", ")
	builder.WriteString("learning_style=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningStyle))
	builder.WriteString(", ")
	builder.WriteString("stability_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StabilityDays))
	builder.WriteString(", ")
	builder.WriteString("half_life_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.HalfLifeDays))
	builder.WriteString(", ")
	builder.WriteString("data_quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataQualityScore))
	builder.WriteString(", ")
	builder.WriteString("last_analyzed_at=")
	builder.WriteString(_m.LastAnalyzedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningProfiles is a parsable slice of LearningProfile.
type LearningProfiles []*LearningProfile
