// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/signalevent"
)

// SignalEvent is the model entity for the SignalEvent schema.
type SignalEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// User the signal belongs to
	UserHandle string `json:"user_handle,omitempty"`
	// Signal kind from the closed vocabulary
	Kind string `json:"kind,omitempty"`
	// Signal magnitude
	Value float64 `json:"value,omitempty"`
	// Smoothed burnout score after processing
	ScoreAfter float64 `json:"score_after,omitempty"`
	// Coaching state after processing
	StateAfter string `json:"state_after,omitempty"`
	// Contextual detail threaded through from the sensor
	Metadata     map[string]string `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SignalEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case signalevent.FieldMetadata:
			values[i] = new([]byte)
		case signalevent.FieldValue, signalevent.FieldScoreAfter:
			values[i] = new(sql.NullFloat64)
		case signalevent.FieldID, signalevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case signalevent.FieldUserHandle, signalevent.FieldKind, signalevent.FieldStateAfter:
			values[i] = new(sql.NullString)
		case signalevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SignalEvent fields.
func (_m *SignalEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case signalevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case signalevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case signalevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case signalevent.FieldUserHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_handle", values[i])
			} else if value.Valid {
				_m.UserHandle = value.String
			}
		case signalevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case signalevent.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case signalevent.FieldScoreAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_after", values[i])
			} else if value.Valid {
				_m.ScoreAfter = value.Float64
			}
		case signalevent.FieldStateAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_after", values[i])
			} else if value.Valid {
				_m.StateAfter = value.String
			}
		case signalevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the SignalEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SignalEvent) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SignalEvent.
// Note that you need to call SignalEvent.Unwrap() before calling this method if this SignalEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SignalEvent) Update() *SignalEventUpdateOne {
	return NewSignalEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SignalEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SignalEvent) Unwrap() *SignalEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SignalEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SignalEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SignalEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_handle=")
	builder.WriteString(_m.UserHandle)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("score_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreAfter))
	builder.WriteString(", ")
	builder.WriteString("state_after=")
	builder.WriteString(_m.StateAfter)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// SignalEvents is a parsable slice of SignalEvent.
type SignalEvents []*SignalEvent
