// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent/loadmetric"
)

// LoadMetric is the model entity for the LoadMetric schema.
type LoadMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// 0-100
	LoadScore    float64 `json:"load_score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LoadMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case loadmetric.FieldLoadScore:
			values[i] = new(sql.NullFloat64)
		case loadmetric.FieldID:
			values[i] = new(sql.NullInt64)
		case loadmetric.FieldUserID:
			values[i] = new(sql.NullString)
		case loadmetric.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LoadMetric fields.
func (_m *LoadMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case loadmetric.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case loadmetric.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case loadmetric.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case loadmetric.FieldLoadScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field load_score", values[i])
			} else if value.Valid {
				_m.LoadScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LoadMetric.
// This includes values selected through modifiers, order, etc.
func (_m *LoadMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LoadMetric.
// Note that you need to call LoadMetric.Unwrap() before calling this method if this LoadMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LoadMetric) Update() *LoadMetricUpdateOne {
	return NewLoadMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LoadMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LoadMetric) Unwrap() *LoadMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LoadMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LoadMetric) String() string {
	var builder strings.Builder
	builder.WriteString("LoadMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("load_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoadScore))
	builder.WriteByte(')')
	return builder.String()
}

// LoadMetrics is a parsable slice of LoadMetric.
type LoadMetrics []*LoadMetric
