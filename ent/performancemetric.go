// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/performancemetric"
)

// PerformanceMetric is the model entity for the PerformanceMetric schema.
type PerformanceMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// 0-1
	RetentionScore float64 `json:"retention_score,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PerformanceMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case performancemetric.FieldRetentionScore:
			values[i] = new(sql.NullFloat64)
		case performancemetric.FieldID:
			values[i] = new(sql.NullInt64)
		case performancemetric.FieldUserID:
			values[i] = new(sql.NullString)
		case performancemetric.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PerformanceMetric fields.
func (_m *PerformanceMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case performancemetric.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case performancemetric.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case performancemetric.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case performancemetric.FieldRetentionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field retention_score", values[i])
			} else if value.Valid {
				_m.RetentionScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PerformanceMetric.
// This includes values selected through modifiers, order, etc.
func (_m *PerformanceMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PerformanceMetric.
// Note that you need to call PerformanceMetric.Unwrap() before calling this method if this PerformanceMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PerformanceMetric) Update() *PerformanceMetricUpdateOne {
	return NewPerformanceMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PerformanceMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PerformanceMetric) Unwrap() *PerformanceMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PerformanceMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PerformanceMetric) String() string {
	var builder strings.Builder
	builder.WriteString("PerformanceMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("retention_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetentionScore))
	builder.WriteByte(')')
	return builder.String()
}

// PerformanceMetrics is a parsable slice of PerformanceMetric.
type PerformanceMetrics []*PerformanceMetric
