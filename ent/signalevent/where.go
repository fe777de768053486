// Code generated by ent, DO NOT EDIT.

package signalevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserHandle applies equality check predicate on the "user_handle" field. It's identical to UserHandleEQ.
func UserHandle(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldUserHandle, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldKind, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldValue, v))
}

// ScoreAfter applies equality check predicate on the "score_after" field. It's identical to ScoreAfterEQ.
func ScoreAfter(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldScoreAfter, v))
}

// StateAfter applies equality check predicate on the "state_after" field. It's identical to StateAfterEQ.
func StateAfter(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldStateAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserHandleEQ applies the EQ predicate on the "user_handle" field.
func UserHandleEQ(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldUserHandle, v))
}

// UserHandleNEQ applies the NEQ predicate on the "user_handle" field.
func UserHandleNEQ(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldUserHandle, v))
}

// UserHandleIn applies the In predicate on the "user_handle" field.
func UserHandleIn(vs ...string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldUserHandle, vs...))
}

// UserHandleNotIn applies the NotIn predicate on the "user_handle" field.
func UserHandleNotIn(vs ...string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldUserHandle, vs...))
}

// UserHandleGT applies the GT predicate on the "user_handle" field.
func UserHandleGT(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldUserHandle, v))
}

// UserHandleGTE applies the GTE predicate on the "user_handle" field.
func UserHandleGTE(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldUserHandle, v))
}

// UserHandleLT applies the LT predicate on the "user_handle" field.
func UserHandleLT(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldUserHandle, v))
}

// UserHandleLTE applies the LTE predicate on the "user_handle" field.
func UserHandleLTE(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldUserHandle, v))
}

// UserHandleContains applies the Contains predicate on the "user_handle" field.
func UserHandleContains(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldContains(FieldUserHandle, v))
}

// UserHandleHasPrefix applies the HasPrefix predicate on the "user_handle" field.
func UserHandleHasPrefix(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldHasPrefix(FieldUserHandle, v))
}

// UserHandleHasSuffix applies the HasSuffix predicate on the "user_handle" field.
func UserHandleHasSuffix(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldHasSuffix(FieldUserHandle, v))
}

// UserHandleEqualFold applies the EqualFold predicate on the "user_handle" field.
func UserHandleEqualFold(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEqualFold(FieldUserHandle, v))
}

// UserHandleContainsFold applies the ContainsFold predicate on the "user_handle" field.
func UserHandleContainsFold(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldContainsFold(FieldUserHandle, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldContainsFold(FieldKind, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldValue, v))
}

// ScoreAfterEQ applies the EQ predicate on the "score_after" field.
func ScoreAfterEQ(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldScoreAfter, v))
}

// ScoreAfterNEQ applies the NEQ predicate on the "score_after" field.
func ScoreAfterNEQ(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldScoreAfter, v))
}

// ScoreAfterIn applies the In predicate on the "score_after" field.
func ScoreAfterIn(vs ...float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldScoreAfter, vs...))
}

// ScoreAfterNotIn applies the NotIn predicate on the "score_after" field.
func ScoreAfterNotIn(vs ...float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldScoreAfter, vs...))
}

// ScoreAfterGT applies the GT predicate on the "score_after" field.
func ScoreAfterGT(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldScoreAfter, v))
}

// ScoreAfterGTE applies the GTE predicate on the "score_after" field.
func ScoreAfterGTE(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldScoreAfter, v))
}

// ScoreAfterLT applies the LT predicate on the "score_after" field.
func ScoreAfterLT(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldScoreAfter, v))
}

// ScoreAfterLTE applies the LTE predicate on the "score_after" field.
func ScoreAfterLTE(v float64) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldScoreAfter, v))
}

// StateAfterEQ applies the EQ predicate on the "state_after" field.
func StateAfterEQ(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEQ(FieldStateAfter, v))
}

// StateAfterNEQ applies the NEQ predicate on the "state_after" field.
func StateAfterNEQ(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNEQ(FieldStateAfter, v))
}

// StateAfterIn applies the In predicate on the "state_after" field.
func StateAfterIn(vs ...string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIn(FieldStateAfter, vs...))
}

// StateAfterNotIn applies the NotIn predicate on the "state_after" field.
func StateAfterNotIn(vs ...string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotIn(FieldStateAfter, vs...))
}

// StateAfterGT applies the GT predicate on the "state_after" field.
func StateAfterGT(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGT(FieldStateAfter, v))
}

// StateAfterGTE applies the GTE predicate on the "state_after" field.
func StateAfterGTE(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldGTE(FieldStateAfter, v))
}

// StateAfterLT applies the LT predicate on the "state_after" field.
func StateAfterLT(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLT(FieldStateAfter, v))
}

// StateAfterLTE applies the LTE predicate on the "state_after" field.
func StateAfterLTE(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldLTE(FieldStateAfter, v))
}

// StateAfterContains applies the Contains predicate on the "state_after" field.
func StateAfterContains(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldContains(FieldStateAfter, v))
}

// StateAfterHasPrefix applies the HasPrefix predicate on the "state_after" field.
func StateAfterHasPrefix(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldHasPrefix(FieldStateAfter, v))
}

// StateAfterHasSuffix applies the HasSuffix predicate on the "state_after" field.
func StateAfterHasSuffix(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldHasSuffix(FieldStateAfter, v))
}

// StateAfterEqualFold applies the EqualFold predicate on the "state_after" field.
func StateAfterEqualFold(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldEqualFold(FieldStateAfter, v))
}

// StateAfterContainsFold applies the ContainsFold predicate on the "state_after" field.
func StateAfterContainsFold(v string) predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldContainsFold(FieldStateAfter, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.SignalEvent {
	return predicate.SignalEvent(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SignalEvent) predicate.SignalEvent {
	return predicate.SignalEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SignalEvent) predicate.SignalEvent {
	return predicate.SignalEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SignalEvent) predicate.SignalEvent {
	return predicate.SignalEvent(sql.NotPredicates(p))
}
