// Code generated by ent, DO NOT EDIT.

package coachsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the coachsession type in the database.
	Label = "coach_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserHandle holds the string denoting the user_handle field in the database.
	FieldUserHandle = "user_handle"
	// FieldBurnoutScore holds the string denoting the burnout_score field in the database.
	FieldBurnoutScore = "burnout_score"
	// FieldCurrentState holds the string denoting the current_state field in the database.
	FieldCurrentState = "current_state"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the coachsession in the database.
	Table = "coach_sessions"
)

// Columns holds all SQL columns for coachsession fields.
var Columns = []string{
	FieldID,
	FieldUserHandle,
	FieldBurnoutScore,
	FieldCurrentState,
	FieldData,
	FieldLastUpdated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserHandleValidator is a validator for the "user_handle" field. It is called by the builders before save.
	UserHandleValidator func(string) error
	// DefaultBurnoutScore holds the default value on creation for the "burnout_score" field.
	DefaultBurnoutScore float64
	// DefaultCurrentState holds the default value on creation for the "current_state" field.
	DefaultCurrentState string
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the CoachSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserHandle orders the results by the user_handle field.
func ByUserHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserHandle, opts...).ToFunc()
}

// ByBurnoutScore orders the results by the burnout_score field.
func ByBurnoutScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBurnoutScore, opts...).ToFunc()
}

// ByCurrentState orders the results by the current_state field.
func ByCurrentState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentState, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
