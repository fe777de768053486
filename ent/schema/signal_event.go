package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SignalEvent records every processed behavioral signal together with
// the score it produced, forming the replayable history of a user's
// session.
type SignalEvent struct {
	ent.Schema
}

func (SignalEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SignalEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_handle").
			NotEmpty().
			Comment("User the signal belongs to"),
		field.String("kind").
			NotEmpty().
			Comment("Signal kind from the closed vocabulary"),
		field.Float("value").
			Default(1).
			Comment("Signal magnitude"),
		field.Float("score_after").
			Comment("Smoothed burnout score after processing"),
		field.String("state_after").
			Comment("Coaching state after processing"),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Comment("Contextual detail threaded through from the sensor"),
	}
}

func (SignalEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_handle"),
		index.Fields("kind"),
	}
}
