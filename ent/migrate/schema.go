// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CoachSessionsColumns holds the columns for the "coach_sessions" table.
	CoachSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_handle", Type: field.TypeString, Unique: true},
		{Name: "burnout_score", Type: field.TypeFloat64, Default: 0},
		{Name: "current_state", Type: field.TypeString, Default: "NORMAL"},
		{Name: "data", Type: field.TypeJSON},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// CoachSessionsTable holds the schema information for the "coach_sessions" table.
	CoachSessionsTable = &schema.Table{
		Name:       "coach_sessions",
		Columns:    CoachSessionsColumns,
		PrimaryKey: []*schema.Column{CoachSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coachsession_user_handle",
				Unique:  false,
				Columns: []*schema.Column{CoachSessionsColumns[1]},
			},
			{
				Name:    "coachsession_current_state",
				Unique:  false,
				Columns: []*schema.Column{CoachSessionsColumns[3]},
			},
		},
	}
	// InterventionEventsColumns holds the columns for the "intervention_events" table.
	InterventionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_handle", Type: field.TypeString},
		{Name: "state", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "alignment", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Default: ""},
		{Name: "suppressed", Type: field.TypeBool, Default: false},
		{Name: "trigger_reason", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeFloat64},
	}
	// InterventionEventsTable holds the schema information for the "intervention_events" table.
	InterventionEventsTable = &schema.Table{
		Name:       "intervention_events",
		Columns:    InterventionEventsColumns,
		PrimaryKey: []*schema.Column{InterventionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interventionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[1]},
			},
			{
				Name:    "interventionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[2]},
			},
			{
				Name:    "interventionevent_user_handle",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[3]},
			},
			{
				Name:    "interventionevent_level",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SignalEventsColumns holds the columns for the "signal_events" table.
	SignalEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_handle", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64, Default: 1},
		{Name: "score_after", Type: field.TypeFloat64},
		{Name: "state_after", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// SignalEventsTable holds the schema information for the "signal_events" table.
	SignalEventsTable = &schema.Table{
		Name:       "signal_events",
		Columns:    SignalEventsColumns,
		PrimaryKey: []*schema.Column{SignalEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "signalevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SignalEventsColumns[1]},
			},
			{
				Name:    "signalevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SignalEventsColumns[2]},
			},
			{
				Name:    "signalevent_user_handle",
				Unique:  false,
				Columns: []*schema.Column{SignalEventsColumns[3]},
			},
			{
				Name:    "signalevent_kind",
				Unique:  false,
				Columns: []*schema.Column{SignalEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CoachSessionsTable,
		InterventionEventsTable,
		LlmRequestEventsTable,
		SignalEventsTable,
	}
)

func init() {
}
