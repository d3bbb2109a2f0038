package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BehavioralEvent is one client-surface event (graph views, note taking,
// content engagement, prompt answers).
type BehavioralEvent struct {
	ent.Schema
}

func (BehavioralEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (BehavioralEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp"),
		field.String("event_type").
			NotEmpty(),
		field.String("content_type").
			Optional(),
		field.Int64("engaged_ms").
			Default(0),
		field.Float("score").
			Default(0).
			Comment("Grade or engagement rating, 0-100"),
		field.Bool("completed").
			Default(false),
		field.Float("session_performance").
			Default(0).
			Comment("Surrounding session review performance, 0-100"),
	}
}

func (BehavioralEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("event_type"),
	}
}
