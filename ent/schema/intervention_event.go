package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterventionEvent records every intervention decision that carried a
// level above NONE or a state change, including suppressed ones, so
// cooldown behavior is auditable after the fact.
type InterventionEvent struct {
	ent.Schema
}

func (InterventionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterventionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_handle").
			NotEmpty().
			Comment("User the intervention targets"),
		field.String("state").
			NotEmpty().
			Comment("Coaching state at selection time"),
		field.String("level").
			NotEmpty().
			Comment("Selected intervention level: NONE through URGENT"),
		field.String("alignment").
			Comment("Behavior/text alignment label"),
		field.String("message").
			Default("").
			Comment("Delivered message, empty when suppressed"),
		field.Bool("suppressed").
			Default(false).
			Comment("True when a cooldown withheld the message"),
		field.String("trigger_reason").
			Default("").
			Comment("State machine trigger, set when a transition fired"),
		field.Float("score").
			Comment("Smoothed burnout score at selection time"),
	}
}

func (InterventionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_handle"),
		index.Fields("level"),
	}
}
