// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/coachsession"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/interventionevent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/llmrequestevent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/schema"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/signalevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	coachsessionFields := schema.CoachSession{}.Fields()
	_ = coachsessionFields
	// coachsessionDescUserHandle is the schema descriptor for user_handle field.
	coachsessionDescUserHandle := coachsessionFields[0].Descriptor()
	// coachsession.UserHandleValidator is a validator for the "user_handle" field. It is called by the builders before save.
	coachsession.UserHandleValidator = coachsessionDescUserHandle.Validators[0].(func(string) error)
	// coachsessionDescBurnoutScore is the schema descriptor for burnout_score field.
	coachsessionDescBurnoutScore := coachsessionFields[1].Descriptor()
	// coachsession.DefaultBurnoutScore holds the default value on creation for the burnout_score field.
	coachsession.DefaultBurnoutScore = coachsessionDescBurnoutScore.Default.(float64)
	// coachsessionDescCurrentState is the schema descriptor for current_state field.
	coachsessionDescCurrentState := coachsessionFields[2].Descriptor()
	// coachsession.DefaultCurrentState holds the default value on creation for the current_state field.
	coachsession.DefaultCurrentState = coachsessionDescCurrentState.Default.(string)
	// coachsessionDescLastUpdated is the schema descriptor for last_updated field.
	coachsessionDescLastUpdated := coachsessionFields[4].Descriptor()
	// coachsession.DefaultLastUpdated holds the default value on creation for the last_updated field.
	coachsession.DefaultLastUpdated = coachsessionDescLastUpdated.Default.(func() time.Time)
	// coachsession.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	coachsession.UpdateDefaultLastUpdated = coachsessionDescLastUpdated.UpdateDefault.(func() time.Time)
	interventioneventMixin := schema.InterventionEvent{}.Mixin()
	interventioneventMixinFields0 := interventioneventMixin[0].Fields()
	_ = interventioneventMixinFields0
	interventioneventFields := schema.InterventionEvent{}.Fields()
	_ = interventioneventFields
	// interventioneventDescTimestamp is the schema descriptor for timestamp field.
	interventioneventDescTimestamp := interventioneventMixinFields0[1].Descriptor()
	// interventionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interventionevent.DefaultTimestamp = interventioneventDescTimestamp.Default.(func() time.Time)
	// interventioneventDescUserHandle is the schema descriptor for user_handle field.
	interventioneventDescUserHandle := interventioneventFields[0].Descriptor()
	// interventionevent.UserHandleValidator is a validator for the "user_handle" field. It is called by the builders before save.
	interventionevent.UserHandleValidator = interventioneventDescUserHandle.Validators[0].(func(string) error)
	// interventioneventDescState is the schema descriptor for state field.
	interventioneventDescState := interventioneventFields[1].Descriptor()
	// interventionevent.StateValidator is a validator for the "state" field. It is called by the builders before save.
	interventionevent.StateValidator = interventioneventDescState.Validators[0].(func(string) error)
	// interventioneventDescLevel is the schema descriptor for level field.
	interventioneventDescLevel := interventioneventFields[2].Descriptor()
	// interventionevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	interventionevent.LevelValidator = interventioneventDescLevel.Validators[0].(func(string) error)
	// interventioneventDescMessage is the schema descriptor for message field.
	interventioneventDescMessage := interventioneventFields[4].Descriptor()
	// interventionevent.DefaultMessage holds the default value on creation for the message field.
	interventionevent.DefaultMessage = interventioneventDescMessage.Default.(string)
	// interventioneventDescSuppressed is the schema descriptor for suppressed field.
	interventioneventDescSuppressed := interventioneventFields[5].Descriptor()
	// interventionevent.DefaultSuppressed holds the default value on creation for the suppressed field.
	interventionevent.DefaultSuppressed = interventioneventDescSuppressed.Default.(bool)
	// interventioneventDescTriggerReason is the schema descriptor for trigger_reason field.
	interventioneventDescTriggerReason := interventioneventFields[6].Descriptor()
	// interventionevent.DefaultTriggerReason holds the default value on creation for the trigger_reason field.
	interventionevent.DefaultTriggerReason = interventioneventDescTriggerReason.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	signaleventMixin := schema.SignalEvent{}.Mixin()
	signaleventMixinFields0 := signaleventMixin[0].Fields()
	_ = signaleventMixinFields0
	signaleventFields := schema.SignalEvent{}.Fields()
	_ = signaleventFields
	// signaleventDescTimestamp is the schema descriptor for timestamp field.
	signaleventDescTimestamp := signaleventMixinFields0[1].Descriptor()
	// signalevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	signalevent.DefaultTimestamp = signaleventDescTimestamp.Default.(func() time.Time)
	// signaleventDescUserHandle is the schema descriptor for user_handle field.
	signaleventDescUserHandle := signaleventFields[0].Descriptor()
	// signalevent.UserHandleValidator is a validator for the "user_handle" field. It is called by the builders before save.
	signalevent.UserHandleValidator = signaleventDescUserHandle.Validators[0].(func(string) error)
	// signaleventDescKind is the schema descriptor for kind field.
	signaleventDescKind := signaleventFields[1].Descriptor()
	// signalevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	signalevent.KindValidator = signaleventDescKind.Validators[0].(func(string) error)
	// signaleventDescValue is the schema descriptor for value field.
	signaleventDescValue := signaleventFields[2].Descriptor()
	// signalevent.DefaultValue holds the default value on creation for the value field.
	signalevent.DefaultValue = signaleventDescValue.Default.(float64)
}
