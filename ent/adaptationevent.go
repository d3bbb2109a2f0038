// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/adaptationevent"
)

// AdaptationEvent is the model entity for the AdaptationEvent schema.
type AdaptationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Reported cognitive load, 0-100
	Load float64 `json:"load,omitempty"`
	// EffectiveLoad holds the value of the "effective_load" field.
	EffectiveLoad float64 `json:"effective_load,omitempty"`
	// Zone holds the value of the "zone" field.
	Zone string `json:"zone,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// DifficultyChange holds the value of the "difficulty_change" field.
	DifficultyChange int `json:"difficulty_change,omitempty"`
	// ReviewRatio holds the value of the "review_ratio" field.
	ReviewRatio  float64 `json:"review_ratio,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldLoad, adaptationevent.FieldEffectiveLoad, adaptationevent.FieldReviewRatio:
			values[i] = new(sql.NullFloat64)
		case adaptationevent.FieldID, adaptationevent.FieldDifficultyChange:
			values[i] = new(sql.NullInt64)
		case adaptationevent.FieldUserID, adaptationevent.FieldZone, adaptationevent.FieldAction:
			values[i] = new(sql.NullString)
		case adaptationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptationEvent fields.
func (_m *AdaptationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptationevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case adaptationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adaptationevent.FieldLoad:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field load", values[i])
			} else if value.Valid {
				_m.Load = value.Float64
			}
		case adaptationevent.FieldEffectiveLoad:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field effective_load", values[i])
			} else if value.Valid {
				_m.EffectiveLoad = value.Float64
			}
		case adaptationevent.FieldZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone", values[i])
			} else if value.Valid {
				_m.Zone = value.String
			}
		case adaptationevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case adaptationevent.FieldDifficultyChange:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_change", values[i])
			} else if value.Valid {
				_m.DifficultyChange = int(value.Int64)
			}
		case adaptationevent.FieldReviewRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field review_ratio", values[i])
			} else if value.Valid {
				_m.ReviewRatio = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptationEvent.
// Note that you need to call AdaptationEvent.Unwrap() before calling this method if this AdaptationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptationEvent) Update() *AdaptationEventUpdateOne {
	return NewAdaptationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptationEvent) Unwrap() *AdaptationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("load=")
	builder.WriteString(fmt.Sprintf("%v", _m.Load))
	builder.WriteString(", ")
	builder.WriteString("effective_load=")
	builder.WriteString(fmt.Sprintf("%v", _m.EffectiveLoad))
	builder.WriteString(", ")
	builder.WriteString("zone=")
	builder.WriteString(_m.Zone)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("difficulty_change=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyChange))
	builder.WriteString(", ")
	builder.WriteString("review_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewRatio))
	builder.WriteByte(')')
	return builder.String()
}

// AdaptationEvents is a parsable slice of AdaptationEvent.
type AdaptationEvents []*AdaptationEvent
