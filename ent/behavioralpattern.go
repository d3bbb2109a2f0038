// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/behavioralpattern"
)

// BehavioralPattern is the model entity for the BehavioralPattern schema.
type BehavioralPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// PatternType holds the value of the "pattern_type" field.
	PatternType string `json:"pattern_type,omitempty"`
	// PatternName holds the value of the "pattern_name" field.
	PatternName string `json:"pattern_name,omitempty"`
	// 0-1
	Confidence float64 `json:"confidence,omitempty"`
	// Tagged payload, shape fixed per pattern_type
	Data json.RawMessage `json:"data,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence []string `json:"evidence,omitempty"`
	// OccurrenceCount holds the value of the "occurrence_count" field.
	OccurrenceCount int `json:"occurrence_count,omitempty"`
	// FirstDetectedAt holds the value of the "first_detected_at" field.
	FirstDetectedAt time.Time `json:"first_detected_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// ConsecutiveNonOccurrences holds the value of the "consecutive_non_occurrences" field.
	ConsecutiveNonOccurrences int `json:"consecutive_non_occurrences,omitempty"`
	selectValues              sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BehavioralPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case behavioralpattern.FieldData, behavioralpattern.FieldEvidence:
			values[i] = new([]byte)
		case behavioralpattern.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case behavioralpattern.FieldOccurrenceCount, behavioralpattern.FieldConsecutiveNonOccurrences:
			values[i] = new(sql.NullInt64)
		case behavioralpattern.FieldID, behavioralpattern.FieldUserID, behavioralpattern.FieldPatternType, behavioralpattern.FieldPatternName:
			values[i] = new(sql.NullString)
		case behavioralpattern.FieldFirstDetectedAt, behavioralpattern.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BehavioralPattern fields.
func (_m *BehavioralPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case behavioralpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case behavioralpattern.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case behavioralpattern.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = value.String
			}
		case behavioralpattern.FieldPatternName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_name", values[i])
			} else if value.Valid {
				_m.PatternName = value.String
			}
		case behavioralpattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case behavioralpattern.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case behavioralpattern.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case behavioralpattern.FieldOccurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrence_count", values[i])
			} else if value.Valid {
				_m.OccurrenceCount = int(value.Int64)
			}
		case behavioralpattern.FieldFirstDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_detected_at", values[i])
			} else if value.Valid {
				_m.FirstDetectedAt = value.Time
			}
		case behavioralpattern.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case behavioralpattern.FieldConsecutiveNonOccurrences:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_non_occurrences", values[i])
			} else if value.Valid {
				_m.ConsecutiveNonOccurrences = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BehavioralPattern.
// This includes values selected through modifiers, order, etc.
func (_m *BehavioralPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BehavioralPattern.
// Note that you need to call BehavioralPattern.Unwrap() before calling this method if this BehavioralPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BehavioralPattern) Update() *BehavioralPatternUpdateOne {
	return NewBehavioralPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BehavioralPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BehavioralPattern) Unwrap() *BehavioralPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BehavioralPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BehavioralPattern) String() string {
	var builder strings.Builder
	builder.WriteString("BehavioralPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("pattern_type=")
	builder.WriteString(_m.PatternType)
	builder.WriteString(", ")
	builder.WriteString("pattern_name=")
	builder.WriteString(_m.PatternName)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("occurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("first_detected_at=")
	builder.WriteString(_m.FirstDetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("consecutive_non_occurrences=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveNonOccurrences))
	builder.WriteByte(')')
	return builder.String()
}

// BehavioralPatterns is a parsable slice of BehavioralPattern.
type BehavioralPatterns []*BehavioralPattern
