// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/interventionevent"
)

// InterventionEvent is the model entity for the InterventionEvent schema.
type InterventionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// User the intervention targets
	UserHandle string `json:"user_handle,omitempty"`
	// Coaching state at selection time
	State string `json:"state,omitempty"`
	// Selected intervention level: NONE through URGENT
	Level string `json:"level,omitempty"`
	// Behavior/text alignment label
	Alignment string `json:"alignment,omitempty"`
	// Delivered message, empty when suppressed
	Message string `json:"message,omitempty"`
	// True when a cooldown withheld the message
	Suppressed bool `json:"suppressed,omitempty"`
	// State machine trigger, set when a transition fired
	TriggerReason string `json:"trigger_reason,omitempty"`
	// Smoothed burnout score at selection time
	Score        float64 `json:"score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterventionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interventionevent.FieldSuppressed:
			values[i] = new(sql.NullBool)
		case interventionevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case interventionevent.FieldID, interventionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case interventionevent.FieldUserHandle, interventionevent.FieldState, interventionevent.FieldLevel, interventionevent.FieldAlignment, interventionevent.FieldMessage, interventionevent.FieldTriggerReason:
			values[i] = new(sql.NullString)
		case interventionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterventionEvent fields.
func (_m *InterventionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interventionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interventionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interventionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interventionevent.FieldUserHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_handle", values[i])
			} else if value.Valid {
				_m.UserHandle = value.String
			}
		case interventionevent.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case interventionevent.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case interventionevent.FieldAlignment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alignment", values[i])
			} else if value.Valid {
				_m.Alignment = value.String
			}
		case interventionevent.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case interventionevent.FieldSuppressed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field suppressed", values[i])
			} else if value.Valid {
				_m.Suppressed = value.Bool
			}
		case interventionevent.FieldTriggerReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_reason", values[i])
			} else if value.Valid {
				_m.TriggerReason = value.String
			}
		case interventionevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterventionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InterventionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterventionEvent.
// Note that you need to call InterventionEvent.Unwrap() before calling this method if this InterventionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterventionEvent) Update() *InterventionEventUpdateOne {
	return NewInterventionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterventionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterventionEvent) Unwrap() *InterventionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterventionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterventionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InterventionEvent(")
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
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("alignment=")
	builder.WriteString(_m.Alignment)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("suppressed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suppressed))
	builder.WriteString(", ")
	builder.WriteString("trigger_reason=")
	builder.WriteString(_m.TriggerReason)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteByte(')')
	return builder.String()
}

// InterventionEvents is a parsable slice of InterventionEvent.
type InterventionEvents []*InterventionEvent
