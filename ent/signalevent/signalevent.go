// Code generated by ent, DO NOT EDIT.

package signalevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the signalevent type in the database.
	Label = "signal_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserHandle holds the string denoting the user_handle field in the database.
	FieldUserHandle = "user_handle"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldScoreAfter holds the string denoting the score_after field in the database.
	FieldScoreAfter = "score_after"
	// FieldStateAfter holds the string denoting the state_after field in the database.
	FieldStateAfter = "state_after"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the signalevent in the database.
	Table = "signal_events"
)

// Columns holds all SQL columns for signalevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserHandle,
	FieldKind,
	FieldValue,
	FieldScoreAfter,
	FieldStateAfter,
	FieldMetadata,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultValue holds the default value on creation for the "value" field.
	DefaultValue float64
)

// OrderOption defines the ordering options for the SignalEvent queries.
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

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByScoreAfter orders the results by the score_after field.
func ByScoreAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreAfter, opts...).ToFunc()
}

// ByStateAfter orders the results by the state_after field.
func ByStateAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateAfter, opts...).ToFunc()
}
