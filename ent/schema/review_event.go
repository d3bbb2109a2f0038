package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent is the global spaced-review stream, independent of the
// session a review happened in.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("reviewed_at"),
		field.String("rating").
			NotEmpty().
			Comment("AGAIN, HARD, GOOD, or EASY"),
		field.Float("stability_after").
			Default(0).
			Comment("Scheduler stability estimate in days"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "reviewed_at"),
	}
}
