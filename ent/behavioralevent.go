// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/behavioralevent"
)

// BehavioralEvent is the model entity for the BehavioralEvent schema.
type BehavioralEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// EngagedMs holds the value of the "engaged_ms" field.
	EngagedMs int64 `json:"engaged_ms,omitempty"`
	// Grade or engagement rating, 0-100
	Score float64 `json:"score,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Surrounding session review performance, 0-100
	SessionPerformance float64 `json:"session_performance,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BehavioralEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case behavioralevent.FieldCompleted:
			values[i] = new(sql.NullBool)
		case behavioralevent.FieldScore, behavioralevent.FieldSessionPerformance:
			values[i] = new(sql.NullFloat64)
		case behavioralevent.FieldID, behavioralevent.FieldEngagedMs:
			values[i] = new(sql.NullInt64)
		case behavioralevent.FieldUserID, behavioralevent.FieldEventType, behavioralevent.FieldContentType:
			values[i] = new(sql.NullString)
		case behavioralevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BehavioralEvent fields.
func (_m *BehavioralEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case behavioralevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case behavioralevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case behavioralevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case behavioralevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case behavioralevent.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case behavioralevent.FieldEngagedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engaged_ms", values[i])
			} else if value.Valid {
				_m.EngagedMs = value.Int64
			}
		case behavioralevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case behavioralevent.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case behavioralevent.FieldSessionPerformance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field session_performance", values[i])
			} else if value.Valid {
				_m.SessionPerformance = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BehavioralEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BehavioralEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BehavioralEvent.
// Note that you need to call BehavioralEvent.Unwrap() before calling this method if this BehavioralEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BehavioralEvent) Update() *BehavioralEventUpdateOne {
	return NewBehavioralEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BehavioralEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BehavioralEvent) Unwrap() *BehavioralEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BehavioralEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BehavioralEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BehavioralEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("engaged_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagedMs))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("session_performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionPerformance))
	builder.WriteByte(')')
	return builder.String()
}

// BehavioralEvents is a parsable slice of BehavioralEvent.
type BehavioralEvents []*BehavioralEvent
