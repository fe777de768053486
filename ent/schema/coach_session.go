package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoachSession is the persisted per-user coaching state. The full
// session shape lives in the data JSON column; score and state are
// extracted into columns so the CLI can inspect sessions without
// deserializing every row.
type CoachSession struct {
	ent.Schema
}

func (CoachSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_handle").
			NotEmpty().
			Unique().
			Comment("Primary lookup key, one session per user"),
		field.Float("burnout_score").
			Default(0).
			Comment("Current smoothed burnout score in [0,1]"),
		field.String("current_state").
			Default("NORMAL").
			Comment("Coaching state name: NORMAL, WATCHING, WARNING, PROTECTIVE, RECOVERY"),
		field.JSON("data", map[string]any{}).
			Comment("Full session shape as JSON, the source of truth on load"),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Time of last pipeline mutation"),
	}
}

func (CoachSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_handle"),
		index.Fields("current_state"),
	}
}
