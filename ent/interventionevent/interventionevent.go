// Code generated by ent, DO NOT EDIT.

package interventionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interventionevent type in the database.
	Label = "intervention_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserHandle holds the string denoting the user_handle field in the database.
	FieldUserHandle = "user_handle"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldAlignment holds the string denoting the alignment field in the database.
	FieldAlignment = "alignment"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldSuppressed holds the string denoting the suppressed field in the database.
	FieldSuppressed = "suppressed"
	// FieldTriggerReason holds the string denoting the trigger_reason field in the database.
	FieldTriggerReason = "trigger_reason"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// Table holds the table name of the interventionevent in the database.
	Table = "intervention_events"
)

// Columns holds all SQL columns for interventionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserHandle,
	FieldState,
	FieldLevel,
	FieldAlignment,
	FieldMessage,
	FieldSuppressed,
	FieldTriggerReason,
	FieldScore,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserHandleValidator is a validator for the "user_handle" field. It is called by the builders before save.
	UserHandleValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// DefaultMessage holds the default value on creation for the "message" field.
	DefaultMessage string
	// DefaultSuppressed holds the default value on creation for the "suppressed" field.
	DefaultSuppressed bool
	// DefaultTriggerReason holds the default value on creation for the "trigger_reason" field.
	DefaultTriggerReason string
)

// OrderOption defines the ordering options for the InterventionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserHandle orders the results by the user_handle field.
func ByUserHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserHandle, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByAlignment orders the results by the alignment field.
func ByAlignment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlignment, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// BySuppressed orders the results by the suppressed field.
func BySuppressed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuppressed, opts...).ToFunc()
}

// ByTriggerReason orders the results by the trigger_reason field.
func ByTriggerReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerReason, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}
