package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceMetric is one daily retention measurement.
type PerformanceMetric struct {
	ent.Schema
}

func (PerformanceMetric) Mixin() []ent.Mixin {
	return []ent.Mixin{UserMixin{}}
}

func (PerformanceMetric) Fields() []ent.Field {
	return []ent.Field{
		field.Time("date"),
		field.Float("retention_score").
			Comment("0-1"),
	}
}

func (PerformanceMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date"),
	}
}
