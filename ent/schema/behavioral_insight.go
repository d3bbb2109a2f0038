package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// BehavioralInsight is a derived, read-mostly projection of high-confidence
// patterns into an actionable statement.
type BehavioralInsight struct {
	ent.Schema
}

func (BehavioralInsight) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (BehavioralInsight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }),
		field.String("insight_type").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("body").
			Optional(),
		field.Float("impact"),
		field.Float("confidence"),
		field.JSON("source_pattern_ids", []string{}).
			Optional(),
		field.Bool("acknowledged").
			Default(false),
		field.Time("created_at"),
	}
}

func (BehavioralInsight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "acknowledged"),
	}
}
