package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records one difficulty adjustment decision.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp"),
		field.Float("load").
			Comment("Reported cognitive load, 0-100"),
		field.Float("effective_load"),
		field.String("zone").
			NotEmpty(),
		field.String("action").
			NotEmpty(),
		field.Int("difficulty_change"),
		field.Float("review_ratio"),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
	}
}
