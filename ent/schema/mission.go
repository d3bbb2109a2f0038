package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission is one scheduled daily mission.
type Mission struct {
	ent.Schema
}

func (Mission) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.Time("date"),
		field.String("status").
			NotEmpty().
			Comment("COMPLETED, IN_PROGRESS, or SKIPPED"),
		field.Int("difficulty_rating").
			Optional().
			Nillable().
			Comment("Learner's 1-5 difficulty rating"),
	}
}

func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date"),
	}
}
