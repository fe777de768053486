// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/coachsession"
)

// CoachSession is the model entity for the CoachSession schema.
type CoachSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Primary lookup key, one session per user
	UserHandle string `json:"user_handle,omitempty"`
	// Current smoothed burnout score in [0,1]
	BurnoutScore float64 `json:"burnout_score,omitempty"`
	// Coaching state name: NORMAL, WATCHING, WARNING, PROTECTIVE, RECOVERY
	CurrentState string `json:"current_state,omitempty"`
	// Full session shape as JSON, the source of truth on load
	Data map[string]interface{} `json:"data,omitempty"`
	// Time of last pipeline mutation
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoachSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coachsession.FieldData:
			values[i] = new([]byte)
		case coachsession.FieldBurnoutScore:
			values[i] = new(sql.NullFloat64)
		case coachsession.FieldID:
			values[i] = new(sql.NullInt64)
		case coachsession.FieldUserHandle, coachsession.FieldCurrentState:
			values[i] = new(sql.NullString)
		case coachsession.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoachSession fields.
func (_m *CoachSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coachsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case coachsession.FieldUserHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_handle", values[i])
			} else if value.Valid {
				_m.UserHandle = value.String
			}
		case coachsession.FieldBurnoutScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field burnout_score", values[i])
			} else if value.Valid {
				_m.BurnoutScore = value.Float64
			}
		case coachsession.FieldCurrentState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_state", values[i])
			} else if value.Valid {
				_m.CurrentState = value.String
			}
		case coachsession.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case coachsession.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CoachSession.
// This includes values selected through modifiers, order, etc.
func (_m *CoachSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CoachSession.
// Note that you need to call CoachSession.Unwrap() before calling this method if this CoachSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoachSession) Update() *CoachSessionUpdateOne {
	return NewCoachSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoachSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoachSession) Unwrap() *CoachSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoachSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoachSession) String() string {
	var builder strings.Builder
	builder.WriteString("CoachSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_handle=")
	builder.WriteString(_m.UserHandle)
	builder.WriteString(", ")
	builder.WriteString("burnout_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BurnoutScore))
	builder.WriteString(", ")
	builder.WriteString("current_state=")
	builder.WriteString(_m.CurrentState)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CoachSessions is a parsable slice of CoachSession.
type CoachSessions []*CoachSession
