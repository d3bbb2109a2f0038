// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/behavioralinsight"
)

// BehavioralInsight is the model entity for the BehavioralInsight schema.
type BehavioralInsight struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// InsightType holds the value of the "insight_type" field.
	InsightType string `json:"insight_type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Impact holds the value of the "impact" field.
	Impact float64 `json:"impact,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SourcePatternIds holds the value of the "source_pattern_ids" field.
	SourcePatternIds []string `json:"source_pattern_ids,omitempty"`
	// Acknowledged holds the value of the "acknowledged" field.
	Acknowledged bool `json:"acknowledged,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BehavioralInsight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case behavioralinsight.FieldSourcePatternIds:
			values[i] = new([]byte)
		case behavioralinsight.FieldAcknowledged:
			values[i] = new(sql.NullBool)
		case behavioralinsight.FieldImpact, behavioralinsight.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case behavioralinsight.FieldID, behavioralinsight.FieldUserID, behavioralinsight.FieldInsightType, behavioralinsight.FieldTitle, behavioralinsight.FieldBody:
			values[i] = new(sql.NullString)
		case behavioralinsight.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BehavioralInsight fields.
func (_m *BehavioralInsight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case behavioralinsight.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case behavioralinsight.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case behavioralinsight.FieldInsightType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insight_type", values[i])
			} else if value.Valid {
				_m.InsightType = value.String
			}
		case behavioralinsight.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case behavioralinsight.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case behavioralinsight.FieldImpact:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field impact", values[i])
			} else if value.Valid {
				_m.Impact = value.Float64
			}
		case behavioralinsight.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case behavioralinsight.FieldSourcePatternIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_pattern_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourcePatternIds); err != nil {
					return fmt.Errorf("unmarshal field source_pattern_ids: %w", err)
				}
			}
		case behavioralinsight.FieldAcknowledged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged", values[i])
			} else if value.Valid {
				_m.Acknowledged = value.Bool
			}
		case behavioralinsight.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BehavioralInsight.
// This includes values selected through modifiers, order, etc.
func (_m *BehavioralInsight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BehavioralInsight.
// Note that you need to call BehavioralInsight.Unwrap() before calling this method if this BehavioralInsight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BehavioralInsight) Update() *BehavioralInsightUpdateOne {
	return NewBehavioralInsightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BehavioralInsight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BehavioralInsight) Unwrap() *BehavioralInsight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BehavioralInsight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BehavioralInsight) String() string {
	var builder strings.Builder
	builder.WriteString("BehavioralInsight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("insight_type=")
	builder.WriteString(_m.InsightType)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("impact=")
	builder.WriteString(fmt.Sprintf("%v", _m.Impact))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source_pattern_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourcePatternIds))
	builder.WriteString(", ")
	builder.WriteString("acknowledged=")
	builder.WriteString(fmt.Sprintf("%v", _m.Acknowledged))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BehavioralInsights is a parsable slice of BehavioralInsight.
type BehavioralInsights []*BehavioralInsight
