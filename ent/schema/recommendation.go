package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Recommendation is one generated suggestion delivered to the learner.
type Recommendation struct {
	ent.Schema
}

func (Recommendation) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (Recommendation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }),
		field.String("rec_type").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("actionable_text").
			Optional(),
		field.Float("confidence").
			Comment("0-1, inherited from the source"),
		field.Float("estimated_impact").
			Comment("0-1"),
		field.Float("ease").
			Comment("0-1, ease of implementation"),
		field.Float("user_readiness").
			Comment("0-1"),
		field.Float("priority_score"),
		field.JSON("source_pattern_ids", []string{}).
			Optional(),
		field.JSON("source_insight_ids", []string{}).
			Optional(),
		field.Time("created_at"),
		field.Time("applied_at").
			Optional().
			Nillable(),
		field.Time("dismissed_at").
			Optional().
			Nillable(),
	}
}

func (Recommendation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
