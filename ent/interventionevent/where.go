// Code generated by ent, DO NOT EDIT.

package interventionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserHandle applies equality check predicate on the "user_handle" field. It's identical to UserHandleEQ.
func UserHandle(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserHandle, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldState, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldLevel, v))
}

// Alignment applies equality check predicate on the "alignment" field. It's identical to AlignmentEQ.
func Alignment(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldAlignment, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldMessage, v))
}

// Suppressed applies equality check predicate on the "suppressed" field. It's identical to SuppressedEQ.
func Suppressed(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSuppressed, v))
}

// TriggerReason applies equality check predicate on the "trigger_reason" field. It's identical to TriggerReasonEQ.
func TriggerReason(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTriggerReason, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserHandleEQ applies the EQ predicate on the "user_handle" field.
func UserHandleEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserHandle, v))
}

// UserHandleNEQ applies the NEQ predicate on the "user_handle" field.
func UserHandleNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldUserHandle, v))
}

// UserHandleIn applies the In predicate on the "user_handle" field.
func UserHandleIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldUserHandle, vs...))
}

// UserHandleNotIn applies the NotIn predicate on the "user_handle" field.
func UserHandleNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldUserHandle, vs...))
}

// UserHandleGT applies the GT predicate on the "user_handle" field.
func UserHandleGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldUserHandle, v))
}

// UserHandleGTE applies the GTE predicate on the "user_handle" field.
func UserHandleGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldUserHandle, v))
}

// UserHandleLT applies the LT predicate on the "user_handle" field.
func UserHandleLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldUserHandle, v))
}

// UserHandleLTE applies the LTE predicate on the "user_handle" field.
func UserHandleLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldUserHandle, v))
}

// UserHandleContains applies the Contains predicate on the "user_handle" field.
func UserHandleContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldUserHandle, v))
}

// UserHandleHasPrefix applies the HasPrefix predicate on the "user_handle" field.
func UserHandleHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldUserHandle, v))
}

// UserHandleHasSuffix applies the HasSuffix predicate on the "user_handle" field.
func UserHandleHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldUserHandle, v))
}

// UserHandleEqualFold applies the EqualFold predicate on the "user_handle" field.
func UserHandleEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldUserHandle, v))
}

// UserHandleContainsFold applies the ContainsFold predicate on the "user_handle" field.
func UserHandleContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldUserHandle, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldState, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldLevel, v))
}

// AlignmentEQ applies the EQ predicate on the "alignment" field.
func AlignmentEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldAlignment, v))
}

// AlignmentNEQ applies the NEQ predicate on the "alignment" field.
func AlignmentNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldAlignment, v))
}

// AlignmentIn applies the In predicate on the "alignment" field.
func AlignmentIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldAlignment, vs...))
}

// AlignmentNotIn applies the NotIn predicate on the "alignment" field.
func AlignmentNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldAlignment, vs...))
}

// AlignmentGT applies the GT predicate on the "alignment" field.
func AlignmentGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldAlignment, v))
}

// AlignmentGTE applies the GTE predicate on the "alignment" field.
func AlignmentGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldAlignment, v))
}

// AlignmentLT applies the LT predicate on the "alignment" field.
func AlignmentLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldAlignment, v))
}

// AlignmentLTE applies the LTE predicate on the "alignment" field.
func AlignmentLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldAlignment, v))
}

// AlignmentContains applies the Contains predicate on the "alignment" field.
func AlignmentContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldAlignment, v))
}

// AlignmentHasPrefix applies the HasPrefix predicate on the "alignment" field.
func AlignmentHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldAlignment, v))
}

// AlignmentHasSuffix applies the HasSuffix predicate on the "alignment" field.
func AlignmentHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldAlignment, v))
}

// AlignmentEqualFold applies the EqualFold predicate on the "alignment" field.
func AlignmentEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldAlignment, v))
}

// AlignmentContainsFold applies the ContainsFold predicate on the "alignment" field.
func AlignmentContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldAlignment, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldMessage, v))
}

// SuppressedEQ applies the EQ predicate on the "suppressed" field.
func SuppressedEQ(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSuppressed, v))
}

// SuppressedNEQ applies the NEQ predicate on the "suppressed" field.
func SuppressedNEQ(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldSuppressed, v))
}

// TriggerReasonEQ applies the EQ predicate on the "trigger_reason" field.
func TriggerReasonEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTriggerReason, v))
}

// TriggerReasonNEQ applies the NEQ predicate on the "trigger_reason" field.
func TriggerReasonNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTriggerReason, v))
}

// TriggerReasonIn applies the In predicate on the "trigger_reason" field.
func TriggerReasonIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTriggerReason, vs...))
}

// TriggerReasonNotIn applies the NotIn predicate on the "trigger_reason" field.
func TriggerReasonNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTriggerReason, vs...))
}

// TriggerReasonGT applies the GT predicate on the "trigger_reason" field.
func TriggerReasonGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTriggerReason, v))
}

// TriggerReasonGTE applies the GTE predicate on the "trigger_reason" field.
func TriggerReasonGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTriggerReason, v))
}

// TriggerReasonLT applies the LT predicate on the "trigger_reason" field.
func TriggerReasonLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTriggerReason, v))
}

// TriggerReasonLTE applies the LTE predicate on the "trigger_reason" field.
func TriggerReasonLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTriggerReason, v))
}

// TriggerReasonContains applies the Contains predicate on the "trigger_reason" field.
func TriggerReasonContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldTriggerReason, v))
}

// TriggerReasonHasPrefix applies the HasPrefix predicate on the "trigger_reason" field.
func TriggerReasonHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldTriggerReason, v))
}

// TriggerReasonHasSuffix applies the HasSuffix predicate on the "trigger_reason" field.
func TriggerReasonHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldTriggerReason, v))
}

// TriggerReasonEqualFold applies the EqualFold predicate on the "trigger_reason" field.
func TriggerReasonEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldTriggerReason, v))
}

// TriggerReasonContainsFold applies the ContainsFold predicate on the "trigger_reason" field.
func TriggerReasonContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldTriggerReason, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.NotPredicates(p))
}
